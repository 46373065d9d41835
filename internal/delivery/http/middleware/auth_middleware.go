package middleware

import (
	"net/http"
	"slices"
	"strings"

	"go-talent-backend/internal/delivery/http/response"
	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// TokenParser verifies a session token.
type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

// AuthMiddleware accepts a bearer token or the auth_token cookie and stores
// the subject in the gin context.
func AuthMiddleware(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string
		if header := c.GetHeader("Authorization"); header != "" {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		} else if cookie, err := c.Cookie(authCookieName); err == nil {
			tokenString = cookie
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeySubjectID), claims.ID)
		c.Set(string(domain.KeySubjectType), claims.Type)
		c.Next()
	}
}

// RequireSubject lets only the given subject types through.
func RequireSubject(types ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !slices.Contains(types, c.GetString(string(domain.KeySubjectType))) {
			response.Error(c, http.StatusForbidden, "This account type cannot access this resource", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
