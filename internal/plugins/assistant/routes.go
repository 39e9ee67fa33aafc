package assistant

import "github.com/labstack/echo/v4"

// RegisterRoutes mounts the assistant endpoints behind authentication.
// ratelimit guards the chat and key-test endpoints against bursts on top
// of the service's own inter-call spacing.
func RegisterRoutes(g *echo.Group, h *Handler, requireAuth echo.MiddlewareFunc, ratelimit echo.MiddlewareFunc) {
	g.POST("/assistant/chat", h.Chat, requireAuth, ratelimit)
	g.GET("/assistant/status", h.Status, requireAuth)
	g.POST("/assistant/test", h.TestKey, requireAuth, ratelimit)
}
