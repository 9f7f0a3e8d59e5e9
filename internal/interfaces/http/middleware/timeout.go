// internal/interfaces/http/middleware/timeout.go
package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/saree-storefront/internal/config"
)

// Timeout bounds request handling by the configured per-request budget
func Timeout(cfg *config.Config) gin.HandlerFunc {
	budget := cfg.Server.RequestTimeout

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), budget)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		done := make(chan struct{})
		go func() {
			defer close(done)
			c.Next()
		}()

		select {
		case <-done:
		case <-ctx.Done():
			c.JSON(http.StatusRequestTimeout, gin.H{
				"error": "Request timeout",
			})
			c.Abort()
		}
	}
}
