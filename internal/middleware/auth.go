package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"gallery/internal/auth"
	apperrors "gallery/internal/errors"
	"gallery/internal/model"
)

const (
	bearerPrefix = "Bearer "
	identityKey  = "identity"
)

// TokenVerifier checks a bearer token and returns its claims.
type TokenVerifier interface {
	VerifyToken(token string) (*auth.Claims, error)
}

// IdentityResolver loads the user named by verified claims.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, userID string) (*model.User, error)
}

// Authenticate resolves the bearer token to a user and attaches it to the
// request context. A verified token naming a user that no longer exists is
// rejected like any other authentication failure.
func Authenticate(tokens TokenVerifier, identities IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), bearerPrefix)
			if !ok {
				return reject(apperrors.ErrNoToken)
			}

			claims, err := tokens.VerifyToken(strings.TrimSpace(token))
			if err != nil {
				return reject(apperrors.ErrTokenFailed)
			}

			user, err := identities.ResolveIdentity(c.Request().Context(), claims.UserID)
			if err != nil {
				return reject(err)
			}

			c.Set(identityKey, user)
			return next(c)
		}
	}
}

// RequireAdmin lets the request through only when Authenticate attached an
// identity holding the admin role.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := IdentityFrom(c)
			if !ok || !user.IsAdmin() {
				return reject(apperrors.ErrNotAdmin)
			}
			return next(c)
		}
	}
}

// AdminOnly is the authenticate-then-authorize chain for admin routes.
func AdminOnly(tokens TokenVerifier, identities IdentityResolver) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{Authenticate(tokens, identities), RequireAdmin()}
}

// IdentityFrom returns the user attached by Authenticate, if any.
func IdentityFrom(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(identityKey).(*model.User)
	return user, ok && user != nil
}

func reject(err error) error {
	httpErr := apperrors.MapErrorToHTTP(err, "Server error while authorizing request.")
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
}
