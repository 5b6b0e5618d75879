package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrMissingPaintingFields is returned when a painting lacks a required field.
	ErrMissingPaintingFields = errors.New("missing painting fields")
	// ErrMissingSignupFields is returned when signup lacks name, email or password.
	ErrMissingSignupFields = errors.New("missing signup fields")
	// ErrMissingLoginFields is returned when login lacks email or password.
	ErrMissingLoginFields = errors.New("missing login fields")
	// ErrPaintingNotFound is returned when no painting has the requested id.
	ErrPaintingNotFound = errors.New("painting not found")
	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned for an unknown email or a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNoToken is returned when the request carries no bearer token.
	ErrNoToken = errors.New("no bearer token")
	// ErrTokenFailed is returned when the bearer token does not verify.
	ErrTokenFailed = errors.New("token verification failed")
	// ErrUserNotFound is returned when a verified token names a user that no longer exists.
	ErrUserNotFound = errors.New("user not found")
	// ErrNotAdmin is returned when the caller lacks the admin role.
	ErrNotAdmin = errors.New("admin role required")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Message: e.Message}
}

var known = []struct {
	err     error
	status  int
	message string
}{
	{ErrMissingPaintingFields, http.StatusBadRequest, "Please provide all painting details."},
	{ErrMissingSignupFields, http.StatusBadRequest, "Please provide name, email, and password."},
	{ErrMissingLoginFields, http.StatusBadRequest, "Please provide email and password."},
	{ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials."},
	{ErrNoToken, http.StatusUnauthorized, "Not authorized, no token"},
	{ErrTokenFailed, http.StatusUnauthorized, "Not authorized, token failed"},
	{ErrUserNotFound, http.StatusUnauthorized, "Not authorized, user not found"},
	{ErrNotAdmin, http.StatusForbidden, "Not authorized as an admin"},
	{ErrPaintingNotFound, http.StatusNotFound, "Painting not found"},
	{ErrEmailTaken, http.StatusConflict, "User with this email already exists."},
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognised becomes
// a 500 carrying internalMessage, so store and signing details never reach clients.
func MapErrorToHTTP(err error, internalMessage string) *HTTPError {
	for _, k := range known {
		if errors.Is(err, k.err) {
			return NewHTTPError(k.status, k.message)
		}
	}
	return NewHTTPError(http.StatusInternalServerError, internalMessage)
}
