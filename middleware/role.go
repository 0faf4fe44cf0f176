package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route group to the given roles. Must run after
// JWTAuthMiddleware, which stores the token's role in the context.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		if r, ok := role.(string); !ok || !allowed[r] {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "result": nil, "error": "Insufficient permissions"})
			c.Abort()
			return
		}
		c.Next()
	}
}
