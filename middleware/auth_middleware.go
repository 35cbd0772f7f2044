package middleware

import (
	"net/http"
	"strings"

	"storefront-service/services"

	"github.com/gin-gonic/gin"
)

// RequireRole guards a route group with the server-issued access token.
// The token comes from the Authorization header; nothing stored on the
// client side is trusted on its own.
func RequireRole(tokenService *services.TokenService, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing token"})
			c.Abort()
			return
		}
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")

		claims, err := tokenService.ValidateToken(tokenString, "access")
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		userRole, _ := claims["role"].(string)
		if userRole != role {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			c.Abort()
			return
		}

		c.Set("user_id", claims["sub"])
		c.Set("user_email", claims["email"])
		c.Next()
	}
}
