package i18n

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	service I18nService
}

func NewHandler(service I18nService) *Handler {
	return &Handler{service: service}
}

// Languages returns the supported languages.
func (h *Handler) Languages(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Languages())
}

// Translations returns the full dictionary for the requested language.
func (h *Handler) Translations(c echo.Context) error {
	dict, err := h.service.Translations(Language(c.Param("lang")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dict)
}
