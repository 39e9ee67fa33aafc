package drafts

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up draft CRUD routes on the given API group.
// All routes require an authenticated session.
func RegisterRoutes(g *echo.Group, h *Handler, requireAuth echo.MiddlewareFunc) {
	dg := g.Group("/drafts", requireAuth)

	dg.GET("", h.List)
	dg.POST("", h.Create)
	dg.PATCH("/:id", h.Update)
	dg.DELETE("/:id", h.Delete)
}
