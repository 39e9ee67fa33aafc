package drafts

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/auditdesk/auditdesk/internal/apperror"
)

// Handler handles HTTP requests for draft operations. Handlers are thin:
// bind request, call service, render response. Enum validation happens here
// -- the store layer does not validate field shapes.
type Handler struct {
	service DraftService
}

// NewHandler creates a new drafts handler.
func NewHandler(service DraftService) *Handler {
	return &Handler{service: service}
}

// List returns all drafts (GET /api/v1/drafts).
func (h *Handler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.List(c.Request().Context()))
}

// Create stores a new draft (POST /api/v1/drafts).
func (h *Handler) Create(c echo.Context) error {
	var input CreateInput
	if err := c.Bind(&input); err != nil {
		return apperror.NewBadRequest("invalid draft payload")
	}
	if input.Status == "" {
		input.Status = StatusDraft
	}
	if !input.Status.Valid() {
		return apperror.NewValidation("unknown draft status")
	}

	draft, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, draft)
}

// Update applies a partial update to a draft (PATCH /api/v1/drafts/:id).
func (h *Handler) Update(c echo.Context) error {
	id := c.Param("id")

	var input UpdateInput
	if err := c.Bind(&input); err != nil {
		return apperror.NewBadRequest("invalid draft payload")
	}
	if input.Status != nil && !input.Status.Valid() {
		return apperror.NewValidation("unknown draft status")
	}

	draft, err := h.service.Update(c.Request().Context(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, draft)
}

// Delete removes a draft (DELETE /api/v1/drafts/:id). Deleting an unknown
// id still succeeds; only a storage failure produces an error status.
func (h *Handler) Delete(c echo.Context) error {
	if ok := h.service.Delete(c.Request().Context(), c.Param("id")); !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "draft could not be deleted")
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": true})
}
