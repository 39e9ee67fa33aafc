package reports

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up report routes on the given API group.
// All routes require an authenticated session.
func RegisterRoutes(g *echo.Group, h *Handler, requireAuth echo.MiddlewareFunc) {
	rg := g.Group("/reports", requireAuth)

	rg.GET("", h.List)
	rg.POST("/generate", h.Generate)
	rg.POST("/:id/viewed", h.MarkViewed)
}
