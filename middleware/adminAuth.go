package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stayhub/config"
)

// AdminKeyMiddleware is the single authorization predicate for the admin
// surface. It checks the X-API-Key header against the configured admin key.
// With no key configured the check is disabled, matching deployments that
// front the admin API with the bot's own admin gating.
func AdminKeyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := config.AppConfig.AdminAPIKey
		if key == "" {
			c.Next()
			return
		}
		if c.GetHeader("X-API-Key") != key {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}
		c.Set("isAdmin", true)
		c.Next()
	}
}
