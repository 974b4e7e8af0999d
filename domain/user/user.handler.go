package user

import (
	"net/http"

	"folioBackend/auth"
	"folioBackend/utils"

	"github.com/gin-gonic/gin"
)

type (
	Handler interface {
		Register(ctx *gin.Context)
		Login(ctx *gin.Context)
		Logout(ctx *gin.Context)
		Verify(ctx *gin.Context)
		RefreshToken(ctx *gin.Context)
		LoginOpenId(ctx *gin.Context)
		LoginOpenIdSuccess(ctx *gin.Context)
	}

	userHandler struct {
		userService Service
	}
)

func CreateHandler(userService Service) Handler {
	return &userHandler{
		userService: userService,
	}
}

func (h *userHandler) Register(ctx *gin.Context) {
	payload := CredentialsIn{}
	if err := ctx.Bind(&payload); err != nil {
		ctx.JSON(utils.CreateErrorResponse(utils.ErrorInvalidCredentials))
		return
	}

	authToken, accessToken, err := h.userService.Register(ctx, payload)
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	setSessionCookies(ctx, authToken, accessToken)
	ctx.JSON(utils.CreateOkResponse[any](nil))
}

func (h *userHandler) Login(ctx *gin.Context) {
	payload := CredentialsIn{}
	if err := ctx.Bind(&payload); err != nil {
		ctx.JSON(utils.CreateErrorResponse(utils.ErrorInvalidCredentials))
		return
	}

	authToken, accessToken, err := h.userService.LoginNative(ctx, payload)
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	setSessionCookies(ctx, authToken, accessToken)
	ctx.JSON(utils.CreateOkResponse[any](nil))
}

func (h *userHandler) Logout(ctx *gin.Context) {
	ctx.SetCookie("authToken", "", -1, "/", "", false, true)
	ctx.SetCookie("accessToken", "", -1, "/", "", false, false)
	ctx.JSON(utils.CreateOkResponse[any](nil))
}

func (h *userHandler) Verify(ctx *gin.Context) {
	authUser := ctx.MustGet("authUser").(auth.AuthenticatedUser)
	result, err := h.userService.Verify(ctx, authUser)
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(utils.CreateOkResponse(result))
}

func (h *userHandler) RefreshToken(ctx *gin.Context) {
	authToken, err := ctx.Cookie("authToken")
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(utils.ErrorUnauthorized))
		return
	}

	accessToken, err := h.userService.RefreshAccessToken(ctx, authToken)
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.SetCookie("accessToken", accessToken, 0, "/", "", false, false)
	ctx.JSON(utils.CreateOkResponse(accessToken))
}

func (h *userHandler) LoginOpenId(ctx *gin.Context) {
	url, err := h.userService.GetAuthCodeURL(ctx.Request.Referer())
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	http.Redirect(ctx.Writer, ctx.Request, url, http.StatusFound)
}

func (h *userHandler) LoginOpenIdSuccess(ctx *gin.Context) {
	authToken, accessToken, err := h.userService.AuthenticateWithCode(ctx, ctx.Query("code"))
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	setSessionCookies(ctx, authToken, accessToken)
	http.Redirect(ctx.Writer, ctx.Request, ctx.Query("state"), http.StatusFound)
}

func setSessionCookies(ctx *gin.Context, authToken string, accessToken string) {
	ctx.SetCookie("authToken", authToken, 0, "/", "", false, true)
	ctx.SetCookie("accessToken", accessToken, 0, "/", "", false, false)
}
