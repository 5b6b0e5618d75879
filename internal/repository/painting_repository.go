package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gallery/internal/model"
)

// PaintingRepository defines catalog persistence operations.
type PaintingRepository interface {
	Create(ctx context.Context, painting *model.Painting) error
	CreateBatch(ctx context.Context, paintings []model.Painting) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Painting, error)
	List(ctx context.Context) ([]model.Painting, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type paintingRepository struct {
	db *gorm.DB
}

// NewPaintingRepository creates a new painting repository.
func NewPaintingRepository(db *gorm.DB) PaintingRepository {
	return &paintingRepository{db: db}
}

// Create inserts a painting; the generated ID is written back into painting.
func (r *paintingRepository) Create(ctx context.Context, painting *model.Painting) error {
	return r.db.WithContext(ctx).Create(painting).Error
}

// CreateBatch inserts several paintings in a single statement.
func (r *paintingRepository) CreateBatch(ctx context.Context, paintings []model.Painting) error {
	if len(paintings) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&paintings).Error
}

// FindByID finds a painting by ID.
func (r *paintingRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Painting, error) {
	var painting model.Painting
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&painting).Error; err != nil {
		return nil, err
	}
	return &painting, nil
}

// List returns every painting in the store's natural order.
func (r *paintingRepository) List(ctx context.Context) ([]model.Painting, error) {
	paintings := make([]model.Painting, 0)
	if err := r.db.WithContext(ctx).Find(&paintings).Error; err != nil {
		return nil, err
	}
	return paintings, nil
}

// Delete removes a painting, returning gorm.ErrRecordNotFound when nothing matched.
func (r *paintingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Painting{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count returns the number of paintings in the catalog.
func (r *paintingRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Painting{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
