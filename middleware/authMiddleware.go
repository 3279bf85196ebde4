package middleware

import (
	"net/http"

	"bean-scene-ordering/helpers"

	"github.com/gin-gonic/gin"
)

// Authentication validates the "token" request header and exposes the
// claims to the handler. It guards only the auth endpoints that need an
// identity; no CRUD route is gated by it.
func Authentication(tokens *helpers.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientToken := c.GetHeader("token")
		if clientToken == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "No authorization token provided",
				"code":  "unauthorized",
			})
			return
		}
		claims, err := tokens.ValidateToken(clientToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "Invalid authorization token",
				"code":    "unauthorized",
				"details": err.Error(),
			})
			return
		}
		c.Set("email", claims.Email)
		c.Set("name", claims.Name)
		c.Set("uid", claims.Uid)
		c.Set("role", claims.Role)
		c.Next()
	}
}
