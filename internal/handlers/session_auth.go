package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MehulChauhan-07/placement-pro/internal/models"
	"github.com/MehulChauhan-07/placement-pro/internal/services"
)

const sessionCookieName = "session_token"

// AuthSource extracts a session token from one place on the request.
// Sources are tried in fixed priority order: cookie first, then the
// Authorization header.
type AuthSource interface {
	Token(c *gin.Context) string
}

type cookieTokenSource struct{}

func (cookieTokenSource) Token(c *gin.Context) string {
	token, err := c.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return token
}

type bearerTokenSource struct{}

func (bearerTokenSource) Token(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

// SessionAuthMiddleware authenticates requests against stored sessions.
type SessionAuthMiddleware struct {
	authService services.AuthService
	sources     []AuthSource
}

func NewSessionAuthMiddleware(authService services.AuthService) *SessionAuthMiddleware {
	return &SessionAuthMiddleware{
		authService: authService,
		sources:     []AuthSource{cookieTokenSource{}, bearerTokenSource{}},
	}
}

// ResolveToken returns the first token any source yields, or "".
func (m *SessionAuthMiddleware) ResolveToken(c *gin.Context) string {
	for _, source := range m.sources {
		if token := source.Token(c); token != "" {
			return token
		}
	}
	return ""
}

// AuthMiddleware resolves the caller's session and stores user identity in
// the gin context. Aborts 401 on missing, invalid, or expired sessions and
// 404 when the session points at a deleted user.
func (m *SessionAuthMiddleware) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.ResolveToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "Not authenticated"})
			return
		}

		user, err := m.authService.ResolveUser(c.Request.Context(), token)
		if err != nil {
			status := http.StatusUnauthorized
			message := "Invalid session"
			switch {
			case err == services.ErrSessionExpired:
				message = "Session expired"
			case err == services.ErrUserNotFound:
				status = http.StatusNotFound
				message = "User not found"
			}
			c.AbortWithStatusJSON(status, ErrorResponse{Message: message})
			return
		}

		c.Set("user", user)
		c.Set("user_id", user.ID)
		c.Set("user_role", user.Role)
		c.Set("session_token", token)

		c.Next()
	}
}

// RequireRoleMiddleware rejects callers whose role is not in the allowed
// set. Admins always pass.
func (m *SessionAuthMiddleware) RequireRoleMiddleware(requiredRoles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get("user_role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Message: "Access denied"})
			return
		}

		role, ok := roleValue.(models.UserRole)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Message: "Access denied"})
			return
		}

		if role == models.RoleAdmin {
			c.Next()
			return
		}
		for _, required := range requiredRoles {
			if role == required {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Message: "Admin access required"})
	}
}

// GetUserFromContext extracts the authenticated user set by AuthMiddleware.
func GetUserFromContext(c *gin.Context) (*models.User, error) {
	value, exists := c.Get("user")
	if !exists {
		return nil, fmt.Errorf("user not found in context")
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil, fmt.Errorf("invalid user type in context")
	}
	return user, nil
}

// GetUserIDFromContext extracts the authenticated user id.
func GetUserIDFromContext(c *gin.Context) (string, error) {
	value, exists := c.Get("user_id")
	if !exists {
		return "", fmt.Errorf("user id not found in context")
	}
	id, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("invalid user id type in context")
	}
	return id, nil
}
