package library

import (
	"context"
	"errors"

	"folioBackend/utils"

	"gorm.io/gorm"
)

type (
	Repository interface {
		GetByCreator(ctx context.Context, creatorId uint) ([]Library, error)
		GetByUuid(ctx context.Context, libraryId string) (*Library, error)
		Create(ctx context.Context, library *Library) error
		Update(ctx context.Context, library *Library) error
		Delete(ctx context.Context, library *Library) error
		CountLiterature(ctx context.Context, library *Library) (int64, error)
		PreviewTitles(ctx context.Context, library *Library, limit int) ([]string, error)
		GetMembers(ctx context.Context, library *Library) ([]LibraryItemOut, error)
		RemoveMember(ctx context.Context, library *Library, literatureId string) error
	}

	libraryRepository struct {
		db *gorm.DB
	}
)

func CreateRepository(db *gorm.DB) Repository {
	return &libraryRepository{
		db: db,
	}
}

func (r *libraryRepository) GetByCreator(ctx context.Context, creatorId uint) ([]Library, error) {
	libraries := make([]Library, 0)
	result := r.db.WithContext(ctx).Where("creator_id = ?", creatorId).Preload("Creator").Find(&libraries)

	return libraries, result.Error
}

func (r *libraryRepository) GetByUuid(ctx context.Context, libraryId string) (*Library, error) {
	library := &Library{}
	result := r.db.WithContext(ctx).Where("uuid = ?", libraryId).Preload("Creator").First(library)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, utils.ErrorUuidNotFound
	}

	return library, result.Error
}

func (r *libraryRepository) Create(ctx context.Context, library *Library) error {
	return r.db.WithContext(ctx).Create(library).Error
}

func (r *libraryRepository) Update(ctx context.Context, library *Library) error {
	return r.db.WithContext(ctx).Save(library).Error
}

// Delete removes the library and its relation rows. Member items survive,
// only the membership vanishes.
func (r *libraryRepository) Delete(ctx context.Context, library *Library) error {
	if err := r.db.WithContext(ctx).
		Exec("DELETE FROM library_literatures WHERE library_id = ?", library.ID).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(library).Error
}

func (r *libraryRepository) CountLiterature(ctx context.Context, library *Library) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Table("library_literatures").
		Where("library_id = ?", library.ID).
		Count(&count)

	return count, result.Error
}

func (r *libraryRepository) PreviewTitles(ctx context.Context, library *Library, limit int) ([]string, error) {
	titles := make([]string, 0)
	result := r.db.WithContext(ctx).
		Table("literatures").
		Joins("JOIN library_literatures ON library_literatures.literature_id = literatures.id").
		Where("library_literatures.library_id = ? AND literatures.deleted_at IS NULL", library.ID).
		Order("literatures.id").
		Limit(limit).
		Pluck("literatures.title", &titles)

	return titles, result.Error
}

func (r *libraryRepository) GetMembers(ctx context.Context, library *Library) ([]LibraryItemOut, error) {
	members := make([]LibraryItemOut, 0)
	result := r.db.WithContext(ctx).
		Table("literatures").
		Select("literatures.uuid AS id, literatures.title, literatures.authors, literatures.description, literatures.literature_type").
		Joins("JOIN library_literatures ON library_literatures.literature_id = literatures.id").
		Where("library_literatures.library_id = ? AND literatures.deleted_at IS NULL", library.ID).
		Order("literatures.id").
		Scan(&members)

	return members, result.Error
}

// RemoveMember deletes one relation row. Removing an item that is not a
// member is a silent no-op so a stale view racing a delete never errors.
func (r *libraryRepository) RemoveMember(ctx context.Context, library *Library, literatureId string) error {
	return r.db.WithContext(ctx).
		Exec("DELETE FROM library_literatures WHERE library_id = ? AND literature_id IN (SELECT id FROM literatures WHERE uuid = ?)",
			library.ID, literatureId).Error
}
