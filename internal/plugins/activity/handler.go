package activity

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for the activity feed. Handlers are thin:
// bind request, call service, render response. No business logic lives here.
type Handler struct {
	service ActivityService
}

// NewHandler creates a new activity handler.
func NewHandler(service ActivityService) *Handler {
	return &Handler{service: service}
}

// List returns the activity feed, newest first (GET /api/v1/activities).
func (h *Handler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.List(c.Request().Context()))
}

// Clear empties the activity feed (DELETE /api/v1/activities). Always
// returns 204; clear failures degrade silently.
func (h *Handler) Clear(c echo.Context) error {
	h.service.Clear(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}
