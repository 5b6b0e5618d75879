package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallery/internal/auth"
	apperrors "gallery/internal/errors"
	"gallery/internal/model"
)

type stubResolver struct {
	users map[string]*model.User
	err   error
}

func (s *stubResolver) ResolveIdentity(_ context.Context, userID string) (*model.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	user, ok := s.users[userID]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func newTestServer(jwtService *auth.JWTService, resolver IdentityResolver) *echo.Echo {
	e := echo.New()
	ok := func(c echo.Context) error {
		user, _ := IdentityFrom(c)
		return c.JSON(http.StatusOK, map[string]string{"name": user.Name})
	}
	e.GET("/me", ok, Authenticate(jwtService, resolver))
	e.POST("/admin", ok, AdminOnly(jwtService, resolver)...)
	return e
}

func do(e *echo.Echo, method, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticate(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	ann := &model.User{ID: uuid.New(), Name: "Ann", Role: model.RoleUser}
	resolver := &stubResolver{users: map[string]*model.User{ann.ID.String(): ann}}
	e := newTestServer(jwtService, resolver)

	valid, err := jwtService.IssueToken(ann.ID.String(), ann.Name, string(ann.Role))
	require.NoError(t, err)
	ghost, err := jwtService.IssueToken(uuid.NewString(), "Ghost", "admin")
	require.NoError(t, err)

	tests := []struct {
		name          string
		authorization string
		status        int
		body          string
	}{
		{"no header", "", http.StatusUnauthorized, `{"message":"Not authorized, no token"}`},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized, `{"message":"Not authorized, no token"}`},
		{"garbage token", "Bearer abc.def.ghi", http.StatusUnauthorized, `{"message":"Not authorized, token failed"}`},
		{"empty token", "Bearer ", http.StatusUnauthorized, `{"message":"Not authorized, token failed"}`},
		{"deleted user", "Bearer " + ghost, http.StatusUnauthorized, `{"message":"Not authorized, user not found"}`},
		{"authenticated", "Bearer " + valid, http.StatusOK, `{"name":"Ann"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, http.MethodGet, "/me", tt.authorization)
			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

func TestAuthenticate_StoreFailure(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	e := newTestServer(jwtService, &stubResolver{err: errors.New("db down")})

	token, err := jwtService.IssueToken(uuid.NewString(), "Ann", "admin")
	require.NoError(t, err)

	rec := do(e, http.MethodGet, "/me", "Bearer "+token)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Server error while authorizing request."}`, rec.Body.String())
}

func TestAdminOnly(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	ann := &model.User{ID: uuid.New(), Name: "Ann", Role: model.RoleUser}
	root := &model.User{ID: uuid.New(), Name: "Root", Role: model.RoleAdmin}
	resolver := &stubResolver{users: map[string]*model.User{
		ann.ID.String():  ann,
		root.ID.String(): root,
	}}
	e := newTestServer(jwtService, resolver)

	userToken, err := jwtService.IssueToken(ann.ID.String(), ann.Name, string(ann.Role))
	require.NoError(t, err)
	adminToken, err := jwtService.IssueToken(root.ID.String(), root.Name, string(root.Role))
	require.NoError(t, err)

	t.Run("missing token is 401 not 403", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/admin", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("regular user is forbidden", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/admin", "Bearer "+userToken)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"message":"Not authorized as an admin"}`, rec.Body.String())
	})

	t.Run("admin passes", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/admin", "Bearer "+adminToken)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"name":"Root"}`, rec.Body.String())
	})
}

func TestRequireAdmin_WithoutIdentity(t *testing.T) {
	e := echo.New()
	e.POST("/admin", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, RequireAdmin())

	rec := do(e, http.MethodPost, "/admin", "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
