package middleware

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/16SULPHUR/new-vh-ecom/config"
	"github.com/16SULPHUR/new-vh-ecom/models"
	"github.com/gin-gonic/gin"
)

// RateLimiter is a redis-backed fixed-window limiter for the mutating bag
// and checkout routes, keyed per client IP, method and endpoint. The window
// lives entirely in the counter key's TTL; the reset time reported to the
// client is derived from it. If redis is unreachable the request is let
// through: losing the limiter must not take the storefront down with it.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("rl:%s:%s:%s", c.ClientIP(), c.Request.Method, c.FullPath())

		count, err := config.RedisClient.Incr(config.Ctx, key).Result()
		if err != nil {
			log.Printf("⚠️ Rate limiter unavailable, letting request through: %v", err)
			c.Next()
			return
		}
		if count == 1 {
			config.RedisClient.Expire(config.Ctx, key, window)
		}

		ttl, err := config.RedisClient.TTL(config.Ctx, key).Result()
		if err != nil || ttl < 0 {
			ttl = window
		}

		remaining := limit - int(count)
		if remaining < 0 {
			remaining = 0
		}

		rate := &models.RateLimiter{
			Limit:          limit,
			Remaining:      remaining,
			ResetAt:        time.Now().Add(ttl),
			ResetInSeconds: int(ttl.Seconds()),
		}
		c.Set("rateLimiter", rate)

		if int(count) > limit {
			c.JSON(http.StatusTooManyRequests, models.ApiResponse{
				Message: "Too many requests",
				Error:   true,
				Rate:    rate,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
