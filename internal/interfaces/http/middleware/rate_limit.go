// internal/interfaces/http/middleware/rate_limit.go
package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/your-org/saree-storefront/internal/config"
)

// RateLimit caps per-client request rates with a Redis counter. Counters
// share the keyspace with the session documents, so they carry the
// storefront prefix. A Redis failure never blocks the request.
func RateLimit(cfg *config.Config, redisClient *redis.Client) gin.HandlerFunc {
	limit := cfg.Security.RateLimitPerMinute

	return func(c *gin.Context) {
		key := fmt.Sprintf("storefront:rate_limit:%s", c.ClientIP())

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		current, err := redisClient.Get(ctx, key).Int()
		if err != nil && !errors.Is(err, redis.Nil) {
			c.Next()
			return
		}

		if current >= limit {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"retry_after": 60,
			})
			c.Abort()
			return
		}

		pipe := redisClient.Pipeline()
		pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, time.Minute)
		if _, err := pipe.Exec(ctx); err != nil {
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(limit-current-1))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(time.Minute).Unix(), 10))

		c.Next()
	}
}
