// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"strings"

	"tour-catalog/pkg/auth"
	"tour-catalog/pkg/response"

	"github.com/gin-gonic/gin"
)

// Context keys for storing session data
const (
	UserIDKey  = "userID"
	SessionKey = "session"
)

// Auth returns a middleware that validates JWT tokens and records the caller's
// session in both the gin context and the request context.
func Auth(tokens auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := tokens.ValidateToken(parts[1])
		if err != nil || claims.UserID == "" {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		session := auth.SessionFromClaims(claims)
		c.Set(UserIDKey, session.UserID)
		c.Set(SessionKey, session)
		c.Request = c.Request.WithContext(auth.WithSession(c.Request.Context(), session))

		c.Next()
	}
}

// GetUserID retrieves the user ID from the context.
// Returns empty string if not found.
func GetUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

// GetSession retrieves the caller's session from the context.
func GetSession(c *gin.Context) (auth.Session, bool) {
	v, exists := c.Get(SessionKey)
	if !exists {
		return auth.Session{}, false
	}
	s, ok := v.(auth.Session)
	return s, ok
}
