package prefs

import "github.com/labstack/echo/v4"

func RegisterRoutes(g *echo.Group, h *Handler, requireAuth echo.MiddlewareFunc) {
	g.GET("/prefs", h.Get, requireAuth)
	g.PUT("/prefs", h.Update, requireAuth)
}
