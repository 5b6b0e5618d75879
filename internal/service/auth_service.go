package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gallery/internal/auth"
	"gallery/internal/cache"
	apperrors "gallery/internal/errors"
	"gallery/internal/model"
	"gallery/internal/repository"
)

const identityCacheTTL = 5 * time.Minute

// AuthService handles signup, login and identity resolution.
type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
	ResolveIdentity(ctx context.Context, userID string) (*model.User, error)
	EnsureAdmin(ctx context.Context, name, email, password string) (created bool, err error)
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
	cache      *cache.Client
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService, cache *cache.Client) AuthService {
	return &authService{
		users:      users,
		jwtService: jwtService,
		cache:      cache,
	}
}

func (s *authService) cacheKey(id string) string {
	return fmt.Sprintf("identity:%s", id)
}

// Signup creates a regular user. The email pre-check is best effort; the
// unique index settles concurrent signups for the same address.
func (s *authService) Signup(ctx context.Context, name, email, password string) (*model.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, apperrors.ErrMissingSignupFields
	}
	return s.createUser(ctx, name, email, password, model.RoleUser)
}

func (s *authService) createUser(ctx context.Context, name, email, password string, role model.Role) (*model.User, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login verifies credentials and issues an identity token. Unknown emails and
// wrong passwords produce the same error.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	if email == "" || password == "" {
		return "", nil, apperrors.ErrMissingLoginFields
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.IssueToken(user.ID.String(), user.Name, string(user.Role))
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ResolveIdentity loads the user named by a verified token, without the password hash.
func (s *authService) ResolveIdentity(ctx context.Context, userID string) (*model.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	var cached model.User
	if s.cache.GetJSON(ctx, s.cacheKey(userID), &cached) {
		return &cached, nil
	}

	user, err := s.users.FindPublicByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	s.cache.SetJSON(ctx, s.cacheKey(userID), user, identityCacheTTL)
	return user, nil
}

// EnsureAdmin creates an admin account unless the email is already registered.
// An existing account keeps its role.
func (s *authService) EnsureAdmin(ctx context.Context, name, email, password string) (bool, error) {
	if name == "" || email == "" || password == "" {
		return false, apperrors.ErrMissingSignupFields
	}
	_, err := s.createUser(ctx, name, email, password, model.RoleAdmin)
	if errors.Is(err, apperrors.ErrEmailTaken) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
