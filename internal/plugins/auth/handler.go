package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/auditdesk/auditdesk/internal/apperror"
)

// Handler handles HTTP requests for authentication. Handlers are thin:
// they bind the request, call the service, and render the response. No
// business logic lives here.
type Handler struct {
	service AuthService
}

// NewHandler creates a new auth handler with the given service.
func NewHandler(service AuthService) *Handler {
	return &Handler{service: service}
}

// authResponse pairs the session token with the user record.
type authResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Register creates an account and logs the new user straight in
// (POST /auth/register).
func (h *Handler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	if msg := validateRegisterRequest(&req); msg != "" {
		return apperror.NewValidation(msg)
	}

	input := RegisterInput{
		Email:        req.Email,
		FullName:     req.FullName,
		BusinessName: req.BusinessName,
		Password:     req.Password,
	}

	user, err := h.service.Register(c.Request().Context(), input)
	if err != nil {
		return err
	}

	// Auto-login after successful registration.
	token, _, err := h.service.Login(c.Request().Context(), LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{Token: token, User: user})
}

// Login authenticates and returns a fresh session token (POST /auth/login).
func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return apperror.NewValidation("email and password are required")
	}

	token, user, err := h.service.Login(c.Request().Context(), LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// Logout destroys the current session (POST /auth/logout).
func (h *Handler) Logout(c echo.Context) error {
	if token := getSessionToken(c); token != "" {
		if err := h.service.DestroySession(c.Request().Context(), token); err != nil {
			return err
		}
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the account record of the current user (GET /auth/me).
// The session only holds a login-time snapshot, so the user is re-fetched
// from the store to pick up later changes.
func (h *Handler) Me(c echo.Context) error {
	session := GetSession(c)
	if session == nil {
		return apperror.NewUnauthorized("authentication required")
	}

	user, err := h.service.CurrentUser(c.Request().Context(), session.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// validateRegisterRequest performs basic server-side validation on the
// registration payload. Returns an error message or empty string.
func validateRegisterRequest(req *RegisterRequest) string {
	if strings.TrimSpace(req.Email) == "" {
		return "email is required"
	}
	if !strings.Contains(req.Email, "@") {
		return "email is invalid"
	}
	if strings.TrimSpace(req.FullName) == "" {
		return "full name is required"
	}
	if len(req.FullName) > 100 {
		return "full name must be at most 100 characters"
	}
	if req.Password == "" {
		return "password is required"
	}
	if len(req.Password) < 8 {
		return "password must be at least 8 characters"
	}
	if len(req.Password) > 128 {
		return "password must be at most 128 characters"
	}
	return ""
}
