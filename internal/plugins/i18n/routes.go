package i18n

import "github.com/labstack/echo/v4"

// RegisterRoutes mounts the i18n endpoints. Dictionaries are public so
// clients can localize before authenticating.
func RegisterRoutes(g *echo.Group, h *Handler) {
	g.GET("/i18n/languages", h.Languages)
	g.GET("/i18n/:lang/translations", h.Translations)
}
