package literature

import (
	"context"
	"errors"

	"folioBackend/domain/library"
	"folioBackend/utils"

	"gorm.io/gorm"
)

type (
	Repository interface {
		Get(ctx context.Context) ([]Literature, error)
		GetByUuid(ctx context.Context, literatureId string) (*Literature, error)
		Create(ctx context.Context, literature *Literature) error
		Update(ctx context.Context, literature *Literature) error
		Delete(ctx context.Context, literature *Literature) error
		HasLibrary(ctx context.Context, literature *Literature, library *library.Library) (bool, error)
		AddLibrary(ctx context.Context, literature *Literature, library *library.Library) error
		RemoveLibrary(ctx context.Context, literature *Literature, library *library.Library) error
	}

	literatureRepository struct {
		db *gorm.DB
	}
)

func CreateRepository(db *gorm.DB) Repository {
	return &literatureRepository{
		db: db,
	}
}

func (r *literatureRepository) Get(ctx context.Context) ([]Literature, error) {
	literatures := make([]Literature, 0)
	result := r.db.WithContext(ctx).Preload("Creator").Find(&literatures)

	return literatures, result.Error
}

func (r *literatureRepository) GetByUuid(ctx context.Context, literatureId string) (*Literature, error) {
	literature := &Literature{}
	result := r.db.WithContext(ctx).
		Where("uuid = ?", literatureId).
		Preload("Creator").
		Preload("Libraries").
		First(literature)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, utils.ErrorUuidNotFound
	}

	return literature, result.Error
}

func (r *literatureRepository) Create(ctx context.Context, literature *Literature) error {
	return r.db.WithContext(ctx).Create(literature).Error
}

func (r *literatureRepository) Update(ctx context.Context, literature *Literature) error {
	return r.db.WithContext(ctx).Omit("Libraries").Save(literature).Error
}

// Delete cascades: the relation rows go first so the item disappears from
// every library that referenced it.
func (r *literatureRepository) Delete(ctx context.Context, literature *Literature) error {
	if err := r.db.WithContext(ctx).Model(literature).Association("Libraries").Clear(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(literature).Error
}

func (r *literatureRepository) HasLibrary(ctx context.Context, literature *Literature, library *library.Library) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Table("library_literatures").
		Where("literature_id = ? AND library_id = ?", literature.ID, library.ID).
		Count(&count)

	return count > 0, result.Error
}

func (r *literatureRepository) AddLibrary(ctx context.Context, literature *Literature, library *library.Library) error {
	return r.db.WithContext(ctx).Model(literature).Association("Libraries").Append(library)
}

func (r *literatureRepository) RemoveLibrary(ctx context.Context, literature *Literature, library *library.Library) error {
	return r.db.WithContext(ctx).Model(literature).Association("Libraries").Delete(library)
}
