package assistant

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/auditdesk/auditdesk/internal/apperror"
)

type Handler struct {
	service AssistantService
}

func NewHandler(service AssistantService) *Handler {
	return &Handler{service: service}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// Chat answers a single user question. The reply is always 200; failures
// from the upstream service arrive as conversation text.
func (h *Handler) Chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}
	if strings.TrimSpace(req.Message) == "" {
		return apperror.NewValidation("message is required")
	}

	reply := h.service.Chat(c.Request().Context(), req.Message)
	return c.JSON(http.StatusOK, chatResponse{Reply: reply})
}

// Status reports whether the assistant is configured and how much of the
// session quota remains.
func (h *Handler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Status())
}

type testKeyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// TestKey verifies the configured API key against the upstream service.
func (h *Handler) TestKey(c echo.Context) error {
	ok, msg := h.service.TestKey(c.Request().Context())
	return c.JSON(http.StatusOK, testKeyResponse{Success: ok, Message: msg})
}
