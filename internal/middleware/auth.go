package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	jwtsvc "agencydesk/internal/pkg/jwt"
	"agencydesk/internal/pkg/response"
)

// AuthRequired validates the bearer token and stores actor_id and role
// in the request context.
func AuthRequired(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing Authorization header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid Authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Empty token")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
			c.Abort()
			return
		}

		c.Set("actor_id", claims.ActorID)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// ActorID returns the authenticated actor id from the context.
func ActorID(c *gin.Context) string {
	return c.GetString("actor_id")
}

// Role returns the authenticated actor role from the context.
func Role(c *gin.Context) string {
	return c.GetString("role")
}
