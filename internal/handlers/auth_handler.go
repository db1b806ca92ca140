package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MehulChauhan-07/placement-pro/internal/models"
	"github.com/MehulChauhan-07/placement-pro/internal/services"
	"github.com/MehulChauhan-07/placement-pro/internal/utils"
)

type AuthHandler struct {
	BaseHandler
	authService services.AuthService
	auth        *SessionAuthMiddleware
	// secure cookies require HTTPS; disabled only in local development
	secureCookies bool
}

func NewAuthHandler(authService services.AuthService, auth *SessionAuthMiddleware, logger utils.Logger, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		BaseHandler:   NewBaseHandler(logger),
		authService:   authService,
		auth:          auth,
		secureCookies: secureCookies,
	}
}

// CreateSession exchanges the X-Session-ID header for a stored session and
// sets the session cookie.
func (h *AuthHandler) CreateSession(c *gin.Context) {
	h.LogRequest(c, "creating session")

	sessionID := c.GetHeader("X-Session-ID")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Session ID required"})
		return
	}

	result, err := h.authService.CreateSession(c.Request.Context(), sessionID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(sessionCookieName, result.SessionToken,
		int(models.SessionTTL.Seconds()), "/", "", h.secureCookies, true)

	c.JSON(http.StatusOK, gin.H{
		"user":          result.User,
		"session_token": result.SessionToken,
	})
}

// Me returns the authenticated caller.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := GetUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Not authenticated"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// Logout deletes the caller's session and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.LogRequest(c, "logging out")

	token := c.GetString("session_token")
	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(sessionCookieName, "", -1, "/", "", h.secureCookies, true)

	c.JSON(http.StatusOK, SuccessResponse{Message: "Logged out successfully"})
}
