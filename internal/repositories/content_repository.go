package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"papermint/internal/models/db_models"
)

type ContentRepository interface {
	Insert(ctx context.Context, content *db_models.Content) error
	FindById(ctx context.Context, id string) (*db_models.Content, error)
	ListByOwner(ctx context.Context, ownerID string, page int, pageSize int) ([]db_models.Content, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{
		db: db,
	}
}

func (r *contentRepository) Insert(ctx context.Context, content *db_models.Content) error {
	return r.db.WithContext(ctx).Create(content).Error
}

func (r *contentRepository) FindById(ctx context.Context, id string) (*db_models.Content, error) {
	var content db_models.Content
	err := r.db.WithContext(ctx).First(&content, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &content, nil
}

func (r *contentRepository) ListByOwner(ctx context.Context, ownerID string, page int, pageSize int) ([]db_models.Content, error) {
	var contents []db_models.Content
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&contents).Error

	if err != nil {
		return nil, err
	}

	return contents, nil
}

func (r *contentRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Content{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *contentRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.Content{}, "id = ?", id).Error
}
