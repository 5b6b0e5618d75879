package service

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gallery/internal/auth"
	"gallery/internal/cache"
	apperrors "gallery/internal/errors"
	"gallery/internal/model"
)

func newTestCache(t *testing.T) *cache.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	c := cache.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestCatalogService_ListCachedUntilCreate(t *testing.T) {
	ctx := context.Background()
	first := model.Painting{ID: uuid.New(), Title: "Sunset Dreams"}
	second := model.Painting{ID: uuid.New(), Title: "Ocean Waves"}

	mockRepo := new(MockPaintingRepository)
	mockRepo.On("List", mock.Anything).Return([]model.Painting{first}, nil).Once()
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Painting")).Return(nil)
	mockRepo.On("List", mock.Anything).Return([]model.Painting{first, second}, nil).Once()

	svc := NewCatalogService(mockRepo, newTestCache(t))

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	listed, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	mockRepo.AssertNumberOfCalls(t, "List", 1)

	_, err = svc.Create(ctx, "Ocean Waves", "Michael Chen", "349", "https://img/2.jpg")
	require.NoError(t, err)

	listed, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, second.ID, listed[1].ID)
	mockRepo.AssertNumberOfCalls(t, "List", 2)
}

func TestCatalogService_GetCachedUntilDelete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	mockRepo := new(MockPaintingRepository)
	mockRepo.On("FindByID", mock.Anything, id).Return(&model.Painting{ID: id, Title: "City Lights"}, nil).Once()
	mockRepo.On("Delete", mock.Anything, id).Return(nil)
	mockRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound).Once()

	svc := NewCatalogService(mockRepo, newTestCache(t))

	for i := 0; i < 2; i++ {
		painting, err := svc.Get(ctx, id.String())
		require.NoError(t, err)
		assert.Equal(t, "City Lights", painting.Title)
	}
	mockRepo.AssertNumberOfCalls(t, "FindByID", 1)

	require.NoError(t, svc.Delete(ctx, id.String()))

	painting, err := svc.Get(ctx, id.String())
	assert.ErrorIs(t, err, apperrors.ErrPaintingNotFound)
	assert.Nil(t, painting)
	mockRepo.AssertNumberOfCalls(t, "FindByID", 2)
}

func TestCatalogService_SeedInvalidatesList(t *testing.T) {
	ctx := context.Background()
	defaults := model.DefaultPaintings()

	mockRepo := new(MockPaintingRepository)
	mockRepo.On("List", mock.Anything).Return([]model.Painting{}, nil).Once()
	mockRepo.On("Count", mock.Anything).Return(int64(0), nil)
	mockRepo.On("CreateBatch", mock.Anything, defaults).Return(nil)
	mockRepo.On("List", mock.Anything).Return(defaults, nil).Once()

	svc := NewCatalogService(mockRepo, newTestCache(t))

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)

	n, err := svc.SeedIfEmpty(ctx, defaults)
	require.NoError(t, err)
	assert.Equal(t, 9, n)

	listed, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 9)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ResolveIdentityCached(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindPublicByID", mock.Anything, userID).
		Return(&model.User{ID: userID, Name: "Root", Email: "root@x.com", Role: model.RoleAdmin}, nil).Once()

	svc := NewAuthService(mockRepo, auth.NewJWTService("s"), newTestCache(t))

	for i := 0; i < 3; i++ {
		user, err := svc.ResolveIdentity(ctx, userID.String())
		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
		assert.True(t, user.IsAdmin())
		assert.Empty(t, user.PasswordHash)
	}
	mockRepo.AssertNumberOfCalls(t, "FindPublicByID", 1)
}
