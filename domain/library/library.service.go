package library

import (
	"strings"

	"folioBackend/auth"
	"folioBackend/domain/user"
	"folioBackend/utils"

	"github.com/gin-gonic/gin"
)

// Display cap for the preview titles in the library overview, not a
// data-model limit.
const previewTitleCap = 3

type (
	Service interface {
		Get(ctx *gin.Context, authUser auth.AuthenticatedUser) ([]LibraryListOut, error)
		GetByUuid(ctx *gin.Context, libraryId string, authUser auth.AuthenticatedUser) (LibraryDetailOut, error)
		Create(ctx *gin.Context, req LibraryIn, authUser auth.AuthenticatedUser) (string, error)
		Update(ctx *gin.Context, req LibraryIn, libraryId string, authUser auth.AuthenticatedUser) error
		RemoveLiterature(ctx *gin.Context, libraryId string, literatureId string, authUser auth.AuthenticatedUser) error
		Delete(ctx *gin.Context, libraryId string, authUser auth.AuthenticatedUser) error
	}

	libraryService struct {
		libraryRepo Repository
		userRepo    user.Repository
	}
)

func CreateService(libraryRepo Repository, userRepo user.Repository) Service {
	return &libraryService{
		libraryRepo: libraryRepo,
		userRepo:    userRepo,
	}
}

func (s *libraryService) Get(ctx *gin.Context, authUser auth.AuthenticatedUser) ([]LibraryListOut, error) {
	owner, err := s.userRepo.GetByUuid(ctx, authUser.UserId)
	if err != nil {
		return nil, err
	}

	libraries, err := s.libraryRepo.GetByCreator(ctx, owner.ID)
	if err != nil {
		return nil, err
	}

	result := make([]LibraryListOut, len(libraries))
	for i, obj := range libraries {
		count, err := s.libraryRepo.CountLiterature(ctx, &obj)
		if err != nil {
			return nil, err
		}

		titles, err := s.libraryRepo.PreviewTitles(ctx, &obj, previewTitleCap)
		if err != nil {
			return nil, err
		}

		result[i] = LibraryListOut{
			LibraryOut:      ToLibraryOut(&obj),
			LiteratureCount: count,
			PreviewTitles:   titles,
		}
	}

	return result, nil
}

func (s *libraryService) GetByUuid(ctx *gin.Context, libraryId string, authUser auth.AuthenticatedUser) (LibraryDetailOut, error) {
	library, err := s.libraryRepo.GetByUuid(ctx, libraryId)
	if err != nil {
		return LibraryDetailOut{}, err
	}

	members, err := s.libraryRepo.GetMembers(ctx, library)
	if err != nil {
		return LibraryDetailOut{}, err
	}

	return LibraryDetailOut{
		LibraryOut: ToLibraryOut(library),
		Literature: members,
	}, nil
}

func (s *libraryService) Create(ctx *gin.Context, req LibraryIn, authUser auth.AuthenticatedUser) (string, error) {
	if strings.TrimSpace(req.Name) == "" {
		return "", utils.ErrorLibraryNameEmpty
	}

	owner, err := s.userRepo.GetByUuid(ctx, authUser.UserId)
	if err != nil {
		return "", err
	}

	newUuid := utils.GenerateUuid()
	err = s.libraryRepo.Create(ctx, &Library{
		UUID:        newUuid,
		Name:        req.Name,
		Description: req.Description,
		Creator:     *owner,
	})

	return newUuid, err
}

func (s *libraryService) Update(ctx *gin.Context, req LibraryIn, libraryId string, authUser auth.AuthenticatedUser) error {
	library, err := s.libraryRepo.GetByUuid(ctx, libraryId)
	if err != nil {
		return err
	}

	if library.Creator.UUID != authUser.UserId {
		return utils.ErrorNotLibraryOwner
	}

	if strings.TrimSpace(req.Name) == "" {
		return utils.ErrorLibraryNameEmpty
	}

	library.Name = req.Name
	library.Description = req.Description

	return s.libraryRepo.Update(ctx, library)
}

func (s *libraryService) RemoveLiterature(ctx *gin.Context, libraryId string, literatureId string, authUser auth.AuthenticatedUser) error {
	library, err := s.libraryRepo.GetByUuid(ctx, libraryId)
	if err != nil {
		return err
	}

	if library.Creator.UUID != authUser.UserId {
		return utils.ErrorNotLibraryOwner
	}

	return s.libraryRepo.RemoveMember(ctx, library, literatureId)
}

func (s *libraryService) Delete(ctx *gin.Context, libraryId string, authUser auth.AuthenticatedUser) error {
	library, err := s.libraryRepo.GetByUuid(ctx, libraryId)
	if err != nil {
		return err
	}

	if library.Creator.UUID != authUser.UserId {
		return utils.ErrorNotLibraryOwner
	}

	return s.libraryRepo.Delete(ctx, library)
}

func ToLibraryOut(library *Library) LibraryOut {
	return LibraryOut{
		ID:          library.UUID,
		Name:        library.Name,
		Description: library.Description,
		CreatorId:   library.Creator.UUID,
	}
}
