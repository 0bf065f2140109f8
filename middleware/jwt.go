package middleware

import (
	"net/http"
	"strings"

	"github.com/dreamwed/wedding_backend/utils"
	"github.com/gin-gonic/gin"
)

// JWTAuth validates the bearer token and stores the user ID in the context.
// Token failures only end the session: the response says so explicitly so
// clients never treat a 401 as data loss.
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must be in the format: Bearer <token>"})
			c.Abort()
			return
		}

		userID, err := utils.ParseToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Your session has expired. Your data is safe - please sign in again.",
			})
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
