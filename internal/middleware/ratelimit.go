package middleware

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/JDigital-dev/phcleanpro/internal/httperr"
)

// RateLimit is a fixed-window per-IP limiter on top of redis. With no
// redis client or a non-positive limit it is a pass-through, and a
// redis error fails open: a broken limiter must not take bookings down
// with it.
func RateLimit(rdb *redis.Client, perMinute int) gin.HandlerFunc {
	if rdb == nil || perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	window := time.Minute

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		bucket := time.Now().Unix() / int64(window.Seconds())
		key := fmt.Sprintf("ratelimit:%s:%d", c.ClientIP(), bucket)

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			log.Printf("ratelimit: redis unavailable, failing open: %v", err)
			c.Next()
			return
		}

		if count == 1 {
			rdb.Expire(ctx, key, window)
		}

		if count > int64(perMinute) {
			httperr.TooManyRequests(c, "rate_limited", "Too many requests, slow down.")
			c.Abort()
			return
		}

		c.Next()
	}
}
