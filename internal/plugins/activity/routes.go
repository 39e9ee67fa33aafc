package activity

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up activity feed routes on the given API group.
// All routes require an authenticated session.
func RegisterRoutes(g *echo.Group, h *Handler, requireAuth echo.MiddlewareFunc) {
	ag := g.Group("/activities", requireAuth)

	ag.GET("", h.List)
	ag.DELETE("", h.Clear)
}
