package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "gallery/internal/errors"
)

// MessageResponse is the body of every message-only reply.
type MessageResponse struct {
	Message string `json:"message"`
}

// failure converts err into an echo HTTP error. Errors outside the domain
// taxonomy are logged and reported with internalMessage only.
func failure(c echo.Context, logger *zap.Logger, err error, internalMessage string) error {
	httpErr := apperrors.MapErrorToHTTP(err, internalMessage)
	if httpErr.StatusCode == http.StatusInternalServerError {
		logger.Error(internalMessage,
			zap.Error(err),
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
		)
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
}
