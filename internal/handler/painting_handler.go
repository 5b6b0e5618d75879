package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "gallery/internal/errors"
	"gallery/internal/middleware"
	"gallery/internal/service"
)

// PaintingHandler handles catalog endpoints.
type PaintingHandler struct {
	catalog service.CatalogService
	logger  *zap.Logger
}

// NewPaintingHandler creates a new painting handler.
func NewPaintingHandler(catalog service.CatalogService, logger *zap.Logger) *PaintingHandler {
	return &PaintingHandler{catalog: catalog, logger: logger}
}

// CreatePaintingRequest represents a new catalog entry.
type CreatePaintingRequest struct {
	Title  string `json:"title" validate:"required"`
	Artist string `json:"artist" validate:"required"`
	Price  Price  `json:"price" validate:"required" swaggertype:"string"`
	Image  string `json:"image" validate:"required"`
}

// Price accepts a JSON string or number and keeps its textual form, so
// "299" and 299 both store "299".
type Price string

// UnmarshalJSON implements json.Unmarshaler.
func (p *Price) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = Price(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*p = Price(n.String())
	return nil
}

// ListPaintings godoc
// @Summary List paintings
// @Tags paintings
// @Produce json
// @Success 200 {array} model.Painting
// @Failure 500 {object} errors.ErrorResponse
// @Router /paintings [get]
func (h *PaintingHandler) ListPaintings(c echo.Context) error {
	paintings, err := h.catalog.List(c.Request().Context())
	if err != nil {
		return failure(c, h.logger, err, "Error fetching paintings")
	}
	return c.JSON(http.StatusOK, paintings)
}

// GetPainting godoc
// @Summary Get painting by id
// @Tags paintings
// @Produce json
// @Param id path string true "Painting ID"
// @Success 200 {object} model.Painting
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /paintings/{id} [get]
func (h *PaintingHandler) GetPainting(c echo.Context) error {
	painting, err := h.catalog.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return failure(c, h.logger, err, "Error fetching painting")
	}
	return c.JSON(http.StatusOK, painting)
}

// CreatePainting godoc
// @Summary Create painting
// @Tags paintings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreatePaintingRequest true "Painting details"
// @Success 201 {object} model.Painting
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /paintings [post]
func (h *PaintingHandler) CreatePainting(c echo.Context) error {
	var req CreatePaintingRequest
	if err := c.Bind(&req); err != nil {
		return failure(c, h.logger, apperrors.ErrMissingPaintingFields, "")
	}
	if err := c.Validate(&req); err != nil {
		return failure(c, h.logger, apperrors.ErrMissingPaintingFields, "")
	}

	painting, err := h.catalog.Create(c.Request().Context(), req.Title, req.Artist, string(req.Price), req.Image)
	if err != nil {
		return failure(c, h.logger, err, "Server error while creating painting.")
	}

	if admin, ok := middleware.IdentityFrom(c); ok {
		h.logger.Info("painting created",
			zap.String("painting_id", painting.ID.String()),
			zap.String("admin_id", admin.ID.String()),
		)
	}
	return c.JSON(http.StatusCreated, painting)
}

// DeletePainting godoc
// @Summary Delete painting
// @Tags paintings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Painting ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /paintings/{id} [delete]
func (h *PaintingHandler) DeletePainting(c echo.Context) error {
	if err := h.catalog.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return failure(c, h.logger, err, "Server error while deleting painting.")
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Painting removed"})
}
