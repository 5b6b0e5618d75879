package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gallery/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindPublicByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockPaintingRepository is a mock implementation of PaintingRepository.
type MockPaintingRepository struct {
	mock.Mock
}

func (m *MockPaintingRepository) Create(ctx context.Context, painting *model.Painting) error {
	args := m.Called(ctx, painting)
	return args.Error(0)
}

func (m *MockPaintingRepository) CreateBatch(ctx context.Context, paintings []model.Painting) error {
	args := m.Called(ctx, paintings)
	return args.Error(0)
}

func (m *MockPaintingRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Painting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Painting), args.Error(1)
}

func (m *MockPaintingRepository) List(ctx context.Context) ([]model.Painting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Painting), args.Error(1)
}

func (m *MockPaintingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPaintingRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
