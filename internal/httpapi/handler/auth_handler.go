package handler

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/ueberstunden/overtime-ledger/internal/httpapi/service"
	"github.com/ueberstunden/overtime-ledger/internal/httpapi/session"
)

// AuthHandler handles HTTP requests for the password gate
type AuthHandler struct {
	authService   service.AuthService
	sessions      *session.Manager
	secureCookies bool
	logger        *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(logger *slog.Logger, authService service.AuthService, sessions *session.Manager, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		sessions:      sessions,
		secureCookies: secureCookies,
		logger:        logger,
	}
}

// Login verifies the password and issues a session cookie
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.authService.Login(c.Request.Context(), req.Password); err != nil {
		if errors.Is(err, service.ErrInvalidPassword) {
			RespondUnauthorized(c, "Invalid password")
			return
		}
		h.logger.Error("Login failed", "error", err)
		RespondInternalError(c)
		return
	}

	token := h.sessions.Create()
	maxAge := int(h.sessions.TTL().Seconds())
	c.SetCookie(session.CookieName, token, maxAge, "/", "", h.secureCookies, true)

	RespondOK(c, StatusResponse{Authenticated: true})
}

// Logout destroys the current session and clears the cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(session.CookieName); err == nil {
		h.sessions.Destroy(token)
	}
	c.SetCookie(session.CookieName, "", -1, "/", "", h.secureCookies, true)

	RespondOK(c, StatusResponse{Authenticated: false})
}

// Status reports whether the caller holds a live session
func (h *AuthHandler) Status(c *gin.Context) {
	token, err := c.Cookie(session.CookieName)
	authenticated := err == nil && h.sessions.Validate(token)
	RespondOK(c, StatusResponse{Authenticated: authenticated})
}

// ChangePassword verifies the current password and stores a new one
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	err := h.authService.ChangePassword(c.Request.Context(), req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPassword):
			RespondUnauthorized(c, "Invalid password")
		case errors.Is(err, service.ErrWeakPassword):
			RespondBadRequest(c, "New password must have at least 8 characters")
		default:
			h.logger.Error("Password change failed", "error", err)
			RespondInternalError(c)
		}
		return
	}

	RespondNoContent(c)
}
