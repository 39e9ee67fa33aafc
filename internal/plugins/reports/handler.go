package reports

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/auditdesk/auditdesk/internal/apperror"
)

// Handler handles HTTP requests for report operations.
type Handler struct {
	service ReportService
}

// NewHandler creates a new reports handler.
func NewHandler(service ReportService) *Handler {
	return &Handler{service: service}
}

// generateRequest is the payload for report generation.
type generateRequest struct {
	DraftID string `json:"draftId"`
}

// List returns all stored reports (GET /api/v1/reports).
func (h *Handler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.List(c.Request().Context()))
}

// Generate produces and stores a new report (POST /api/v1/reports/generate).
func (h *Handler) Generate(c echo.Context) error {
	var req generateRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid generate payload")
	}

	report, err := h.service.Generate(c.Request().Context(), req.DraftID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, report)
}

// MarkViewed records that the user opened a report
// (POST /api/v1/reports/:id/viewed).
func (h *Handler) MarkViewed(c echo.Context) error {
	if err := h.service.MarkViewed(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
