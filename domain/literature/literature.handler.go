package literature

import (
	"folioBackend/auth"
	"folioBackend/utils"

	"github.com/gin-gonic/gin"
)

type (
	Handler interface {
		Get(ctx *gin.Context)
		GetByUuid(ctx *gin.Context)
		Create(ctx *gin.Context)
		Update(ctx *gin.Context)
		Delete(ctx *gin.Context)
		AddToLibrary(ctx *gin.Context)
		RemoveFromLibrary(ctx *gin.Context)
	}

	literatureHandler struct {
		literatureService Service
	}
)

func CreateHandler(literatureService Service) Handler {
	return &literatureHandler{
		literatureService: literatureService,
	}
}

func (h *literatureHandler) Get(ctx *gin.Context) {
	result, err := h.literatureService.Get(ctx)
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(utils.CreateOkResponse(result))
}

func (h *literatureHandler) GetByUuid(ctx *gin.Context) {
	result, err := h.literatureService.GetByUuid(ctx, ctx.Param("literatureId"), auth.UserFromContext(ctx))
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(utils.CreateOkResponse(result))
}

func (h *literatureHandler) Create(ctx *gin.Context) {
	payload := LiteratureIn{}
	if err := ctx.Bind(&payload); err != nil {
		ctx.JSON(utils.CreateValidationError(utils.ErrorValidationError))
		return
	}

	authUser := ctx.MustGet("authUser").(auth.AuthenticatedUser)
	result, err := h.literatureService.Create(ctx, payload, authUser)
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(utils.CreateOkResponse(result))
}

func (h *literatureHandler) Update(ctx *gin.Context) {
	payload := LiteratureIn{}
	if err := ctx.Bind(&payload); err != nil {
		ctx.JSON(utils.CreateValidationError(utils.ErrorValidationError))
		return
	}

	authUser := ctx.MustGet("authUser").(auth.AuthenticatedUser)
	if err := h.literatureService.Update(ctx, payload, ctx.Param("literatureId"), authUser); err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(utils.CreateOkResponse[any](nil))
}

func (h *literatureHandler) Delete(ctx *gin.Context) {
	authUser := ctx.MustGet("authUser").(auth.AuthenticatedUser)
	if err := h.literatureService.Delete(ctx, ctx.Param("literatureId"), authUser); err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(utils.CreateOkResponse[any](nil))
}

func (h *literatureHandler) AddToLibrary(ctx *gin.Context) {
	authUser := ctx.MustGet("authUser").(auth.AuthenticatedUser)
	if err := h.literatureService.AddToLibrary(ctx, ctx.Param("literatureId"), ctx.Param("libraryId"), authUser); err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(utils.CreateOkResponse[any](nil))
}

func (h *literatureHandler) RemoveFromLibrary(ctx *gin.Context) {
	authUser := ctx.MustGet("authUser").(auth.AuthenticatedUser)
	if err := h.literatureService.RemoveFromLibrary(ctx, ctx.Param("literatureId"), ctx.Param("libraryId"), authUser); err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(utils.CreateOkResponse[any](nil))
}
