package auth

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/auditdesk/auditdesk/internal/middleware"
)

// RegisterRoutes sets up the auth endpoints on the given group. Login and
// register are public; they are rate-limited to slow brute-force and
// credential stuffing attempts: 10 per IP per minute for login, 5 for
// register.
func RegisterRoutes(g *echo.Group, h *Handler, requireAuth echo.MiddlewareFunc) {
	g.POST("/auth/register", h.Register, middleware.RateLimit(5, time.Minute))
	g.POST("/auth/login", h.Login, middleware.RateLimit(10, time.Minute))
	g.POST("/auth/logout", h.Logout)
	g.GET("/auth/me", h.Me, requireAuth)
}
