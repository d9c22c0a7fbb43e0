package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wealthwise/config"
	"wealthwise/internal/auth"
)

// AuthRequired validates the session JWT and sets ClientID and Email in context.
func AuthRequired(cfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
			return
		}
		claims, err := auth.ParseSessionToken(cfg, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}
		c.Set("client_id", claims.ClientID)
		c.Set("email", claims.Email)
		c.Next()
	}
}

// GetClientID returns the authenticated client id from context (must be used
// after AuthRequired).
func GetClientID(c *gin.Context) string {
	v, _ := c.Get("client_id")
	if v == nil {
		return ""
	}
	return v.(string)
}
