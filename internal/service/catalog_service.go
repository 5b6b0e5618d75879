package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gallery/internal/cache"
	apperrors "gallery/internal/errors"
	"gallery/internal/model"
	"gallery/internal/repository"
)

const (
	paintingCacheTTL = 5 * time.Minute
	// A List that read the store before a concurrent write can still cache
	// its stale result after the write's invalidation; this bounds that window.
	paintingsListTTL = 30 * time.Second
	paintingsListKey = "paintings:all"
)

// CatalogService handles painting operations.
type CatalogService interface {
	List(ctx context.Context) ([]model.Painting, error)
	Get(ctx context.Context, id string) (*model.Painting, error)
	Create(ctx context.Context, title, artist, price, image string) (*model.Painting, error)
	Delete(ctx context.Context, id string) error
	SeedIfEmpty(ctx context.Context, paintings []model.Painting) (int, error)
}

type catalogService struct {
	repo  repository.PaintingRepository
	cache *cache.Client
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(repo repository.PaintingRepository, cache *cache.Client) CatalogService {
	return &catalogService{
		repo:  repo,
		cache: cache,
	}
}

func (s *catalogService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("painting:%s", id.String())
}

// List returns every painting. An empty catalog yields an empty, non-nil slice.
func (s *catalogService) List(ctx context.Context) ([]model.Painting, error) {
	var cached []model.Painting
	if s.cache.GetJSON(ctx, paintingsListKey, &cached) && cached != nil {
		return cached, nil
	}

	paintings, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list paintings: %w", err)
	}
	if paintings == nil {
		paintings = []model.Painting{}
	}

	s.cache.SetJSON(ctx, paintingsListKey, paintings, paintingsListTTL)
	return paintings, nil
}

// Get retrieves a painting by ID with caching. Ids that are not UUIDs are
// reported as not found.
func (s *catalogService) Get(ctx context.Context, id string) (*model.Painting, error) {
	paintingID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.ErrPaintingNotFound
	}

	var cached model.Painting
	if s.cache.GetJSON(ctx, s.cacheKey(paintingID), &cached) {
		return &cached, nil
	}

	painting, err := s.repo.FindByID(ctx, paintingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPaintingNotFound
		}
		return nil, fmt.Errorf("get painting: %w", err)
	}

	s.cache.SetJSON(ctx, s.cacheKey(paintingID), painting, paintingCacheTTL)
	return painting, nil
}

// Create stores a new painting after checking every field is present.
func (s *catalogService) Create(ctx context.Context, title, artist, price, image string) (*model.Painting, error) {
	if title == "" || artist == "" || price == "" || image == "" {
		return nil, apperrors.ErrMissingPaintingFields
	}

	painting := &model.Painting{
		Title:  title,
		Artist: artist,
		Price:  price,
		Image:  image,
	}
	if err := s.repo.Create(ctx, painting); err != nil {
		return nil, fmt.Errorf("create painting: %w", err)
	}

	_ = s.cache.Delete(ctx, paintingsListKey)
	return painting, nil
}

// Delete removes a painting by ID.
func (s *catalogService) Delete(ctx context.Context, id string) error {
	paintingID, err := uuid.Parse(id)
	if err != nil {
		return apperrors.ErrPaintingNotFound
	}

	if err := s.repo.Delete(ctx, paintingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPaintingNotFound
		}
		return fmt.Errorf("delete painting: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(paintingID), paintingsListKey)
	return nil
}

// SeedIfEmpty inserts paintings when the catalog holds none and returns how
// many were inserted.
func (s *catalogService) SeedIfEmpty(ctx context.Context, paintings []model.Painting) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count paintings: %w", err)
	}
	if count > 0 || len(paintings) == 0 {
		return 0, nil
	}

	if err := s.repo.CreateBatch(ctx, paintings); err != nil {
		return 0, fmt.Errorf("seed paintings: %w", err)
	}

	_ = s.cache.Delete(ctx, paintingsListKey)
	return len(paintings), nil
}
