package currency

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up currency routes on the given API group. Lookups
// are public -- they expose only the static table.
func RegisterRoutes(g *echo.Group, h *Handler) {
	cg := g.Group("/currencies")

	cg.GET("", h.List)
	cg.GET("/convert", h.Convert)
}
