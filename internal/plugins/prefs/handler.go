package prefs

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/auditdesk/auditdesk/internal/apperror"
	"github.com/auditdesk/auditdesk/internal/plugins/currency"
	"github.com/auditdesk/auditdesk/internal/plugins/i18n"
)

type Handler struct {
	service PrefsService
}

func NewHandler(service PrefsService) *Handler {
	return &Handler{service: service}
}

// Get returns the resolved preference set.
func (h *Handler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Get(c.Request().Context()))
}

type updateRequest struct {
	Theme    *string `json:"theme"`
	Currency *string `json:"currency"`
	Language *string `json:"language"`
}

// Update applies a partial preference change. Omitted fields are left
// untouched; supplied fields are validated individually.
func (h *Handler) Update(c echo.Context) error {
	var req updateRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	ctx := c.Request().Context()
	if req.Theme != nil {
		if err := h.service.SetTheme(ctx, Theme(*req.Theme)); err != nil {
			return err
		}
	}
	if req.Currency != nil {
		if err := h.service.SetCurrency(ctx, currency.Code(*req.Currency)); err != nil {
			return err
		}
	}
	if req.Language != nil {
		if err := h.service.SetLanguage(ctx, i18n.Language(*req.Language)); err != nil {
			return err
		}
	}

	return c.JSON(http.StatusOK, h.service.Get(ctx))
}
