package literature

import (
	"net/url"

	"folioBackend/auth"
	"folioBackend/domain/library"
	"folioBackend/domain/user"
	"folioBackend/utils"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

type (
	Service interface {
		Get(ctx *gin.Context) ([]LiteratureOut, error)
		GetByUuid(ctx *gin.Context, literatureId string, authUser *auth.AuthenticatedUser) (LiteratureDetailOut, error)
		Create(ctx *gin.Context, req LiteratureIn, authUser auth.AuthenticatedUser) (string, error)
		Update(ctx *gin.Context, req LiteratureIn, literatureId string, authUser auth.AuthenticatedUser) error
		Delete(ctx *gin.Context, literatureId string, authUser auth.AuthenticatedUser) error
		AddToLibrary(ctx *gin.Context, literatureId string, libraryId string, authUser auth.AuthenticatedUser) error
		RemoveFromLibrary(ctx *gin.Context, literatureId string, libraryId string, authUser auth.AuthenticatedUser) error
	}

	literatureService struct {
		literatureRepo Repository
		libraryRepo    library.Repository
		userRepo       user.Repository
	}
)

func CreateService(literatureRepo Repository, libraryRepo library.Repository, userRepo user.Repository) Service {
	return &literatureService{
		literatureRepo: literatureRepo,
		libraryRepo:    libraryRepo,
		userRepo:       userRepo,
	}
}

func (s *literatureService) Get(ctx *gin.Context) ([]LiteratureOut, error) {
	literatures, err := s.literatureRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]LiteratureOut, len(literatures))
	for i, obj := range literatures {
		result[i] = toLiteratureOut(&obj)
	}

	return result, nil
}

func (s *literatureService) GetByUuid(ctx *gin.Context, literatureId string, authUser *auth.AuthenticatedUser) (LiteratureDetailOut, error) {
	literature, err := s.literatureRepo.GetByUuid(ctx, literatureId)
	if err != nil {
		return LiteratureDetailOut{}, err
	}

	detail := LiteratureDetailOut{
		Literature:              toLiteratureOut(literature),
		LibrariesNotAssociated:  make([]library.LibraryOut, 0),
		UserAssociatedLibraries: make([]library.LibraryOut, 0),
	}

	if authUser == nil {
		return detail, nil
	}

	owner, err := s.userRepo.GetByUuid(ctx, authUser.UserId)
	if err != nil {
		return LiteratureDetailOut{}, err
	}

	owned, err := s.libraryRepo.GetByCreator(ctx, owner.ID)
	if err != nil {
		return LiteratureDetailOut{}, err
	}

	memberUuids := lo.SliceToMap(literature.Libraries, func(item *library.Library) (string, struct{}) {
		return item.UUID, struct{}{}
	})

	detail.UserAssociatedLibraries, detail.LibrariesNotAssociated = partitionLibraries(owned, memberUuids)

	return detail, nil
}

func (s *literatureService) Create(ctx *gin.Context, req LiteratureIn, authUser auth.AuthenticatedUser) (string, error) {
	if err := validateLiterature(&req); err != nil {
		return "", err
	}

	creator, err := s.userRepo.GetByUuid(ctx, authUser.UserId)
	if err != nil {
		return "", err
	}

	newUuid := utils.GenerateUuid()
	err = s.literatureRepo.Create(ctx, &Literature{
		UUID:           newUuid,
		Title:          req.Title,
		Authors:        req.Authors,
		Description:    req.Description,
		Url:            req.Url,
		LiteratureType: req.LiteratureType.Int(),
		Creator:        *creator,
	})

	return newUuid, err
}

func (s *literatureService) Update(ctx *gin.Context, req LiteratureIn, literatureId string, authUser auth.AuthenticatedUser) error {
	literature, err := s.literatureRepo.GetByUuid(ctx, literatureId)
	if err != nil {
		return err
	}

	if literature.Creator.UUID != authUser.UserId {
		return utils.ErrorNotLiteratureOwner
	}

	if err := validateLiterature(&req); err != nil {
		return err
	}

	literature.Title = req.Title
	literature.Authors = req.Authors
	literature.Description = req.Description
	literature.Url = req.Url
	literature.LiteratureType = req.LiteratureType.Int()

	return s.literatureRepo.Update(ctx, literature)
}

func (s *literatureService) Delete(ctx *gin.Context, literatureId string, authUser auth.AuthenticatedUser) error {
	literature, err := s.literatureRepo.GetByUuid(ctx, literatureId)
	if err != nil {
		return err
	}

	if literature.Creator.UUID != authUser.UserId {
		return utils.ErrorNotLiteratureOwner
	}

	return s.literatureRepo.Delete(ctx, literature)
}

// AddToLibrary attaches the item to one of the caller's libraries. Any
// visible item qualifies; only the library's ownership is gated.
func (s *literatureService) AddToLibrary(ctx *gin.Context, literatureId string, libraryId string, authUser auth.AuthenticatedUser) error {
	literature, err := s.literatureRepo.GetByUuid(ctx, literatureId)
	if err != nil {
		return err
	}

	targetLibrary, err := s.libraryRepo.GetByUuid(ctx, libraryId)
	if err != nil {
		return err
	}

	if targetLibrary.Creator.UUID != authUser.UserId {
		return utils.ErrorNotLibraryOwner
	}

	if isMember, err := s.literatureRepo.HasLibrary(ctx, literature, targetLibrary); err != nil {
		return err
	} else if isMember {
		return utils.ErrorDuplicateMembership
	}

	return s.literatureRepo.AddLibrary(ctx, literature, targetLibrary)
}

// RemoveFromLibrary detaches the item. Removing a non-member is a silent
// no-op; a failed call leaves the relation untouched.
func (s *literatureService) RemoveFromLibrary(ctx *gin.Context, literatureId string, libraryId string, authUser auth.AuthenticatedUser) error {
	literature, err := s.literatureRepo.GetByUuid(ctx, literatureId)
	if err != nil {
		return err
	}

	targetLibrary, err := s.libraryRepo.GetByUuid(ctx, libraryId)
	if err != nil {
		return err
	}

	if targetLibrary.Creator.UUID != authUser.UserId {
		return utils.ErrorNotLibraryOwner
	}

	return s.literatureRepo.RemoveLibrary(ctx, literature, targetLibrary)
}

// partitionLibraries splits the owned libraries by membership of the target
// item. The two halves never overlap and always rebuild from authoritative
// state, never from patched view models.
func partitionLibraries(owned []library.Library, memberUuids map[string]struct{}) (associated []library.LibraryOut, notAssociated []library.LibraryOut) {
	inside, outside := lo.FilterReject(owned, func(item library.Library, _ int) bool {
		_, ok := memberUuids[item.UUID]
		return ok
	})

	toOut := func(item library.Library, _ int) library.LibraryOut {
		return library.ToLibraryOut(&item)
	}

	return lo.Map(inside, toOut), lo.Map(outside, toOut)
}

func validateLiterature(req *LiteratureIn) error {
	code := req.LiteratureType.Int()
	if code < TypeBook || code > TypeThesis {
		return utils.ErrorInvalidLiteratureType
	}

	if req.Url != "" {
		if _, err := url.ParseRequestURI(req.Url); err != nil {
			return utils.ErrorInvalidUrl
		}
	}

	return nil
}

func toLiteratureOut(literature *Literature) LiteratureOut {
	return LiteratureOut{
		ID:                 literature.UUID,
		Title:              literature.Title,
		Authors:            literature.Authors,
		Description:        literature.Description,
		Url:                literature.Url,
		LiteratureType:     literature.LiteratureType,
		LiteratureTypeName: TypeName(literature.LiteratureType),
		CreatorId:          literature.Creator.UUID,
		CreatorName:        literature.Creator.Username,
		CreatedAt:          literature.CreatedAt,
	}
}
