// internal/interfaces/http/middleware/cors.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/your-org/saree-storefront/internal/config"
)

// CORS handles cross-origin requests from the storefront UI. Allowed
// methods and headers come from config; X-Session-ID must be both accepted
// and exposed so the anonymous session survives cross-origin calls.
func CORS(cfg *config.Config) gin.HandlerFunc {
	allowedMethods := strings.Join(cfg.Security.CORSAllowedMethods, ", ")
	allowedHeaders := strings.Join(cfg.Security.CORSAllowedHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if originAllowed(origin, cfg.Security.CORSAllowedOrigins) {
			c.Header("Access-Control-Allow-Origin", origin)
		}

		c.Header("Access-Control-Allow-Methods", allowedMethods)
		c.Header("Access-Control-Allow-Headers", allowedHeaders)
		c.Header("Access-Control-Expose-Headers", "X-Session-ID, X-Request-ID")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// originAllowed matches an origin against the allow list, including
// wildcard subdomain entries like *.example.com
func originAllowed(origin string, allowedOrigins []string) bool {
	for _, allowed := range allowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
		if strings.HasPrefix(allowed, "*.") {
			if strings.HasSuffix(origin, strings.TrimPrefix(allowed, "*.")) {
				return true
			}
		}
	}
	return false
}
