package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"papermint/pkg/utils"
)

// OptionalJWTMiddleware populates user_id when a valid bearer token is
// present but never rejects the request. Used on public content routes where
// an owner may be browsing their own unpublished work.
func OptionalJWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if claims, err := utils.ValidateToken(tokenString); err == nil {
				c.Set("user_id", claims.UserID)
			}
		}
		c.Next()
	}
}
