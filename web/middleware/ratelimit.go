package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/hakwonlab/acadpanel/logger"
	"github.com/hakwonlab/acadpanel/web/cache"

	"github.com/gin-gonic/gin"
)

// RateLimitConfig configures rate limiting
type RateLimitConfig struct {
	RequestsPerMinute int
	KeyFunc           func(c *gin.Context) string
	SkipPaths         []string // Paths to skip rate limiting
}

// DefaultRateLimitConfig returns default rate limit config
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerMinute: 60,
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
		SkipPaths: []string{"/assets/", "/favicon.ico"},
	}
}

// LoginRateLimitConfig throttles credential guessing on the login route.
func LoginRateLimitConfig() RateLimitConfig {
	config := DefaultRateLimitConfig()
	config.RequestsPerMinute = 10
	return config
}

// shouldSkip checks if path should be skipped
func (config RateLimitConfig) shouldSkip(path string) bool {
	for _, skipPath := range config.SkipPaths {
		if len(path) >= len(skipPath) && path[:len(skipPath)] == skipPath {
			return true
		}
	}
	return false
}

// RateLimitMiddleware creates rate limiting middleware backed by the shared
// redis cache.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.shouldSkip(c.Request.URL.Path) {
			c.Next()
			return
		}

		key := config.KeyFunc(c)
		rateLimitKey := "ratelimit:" + key + ":" + c.Request.URL.Path

		newCount, err := cache.Incr(rateLimitKey)
		if err != nil {
			logger.Warning("Rate limit increment failed:", err)
			c.Next()
			return
		}
		if newCount == 1 {
			cache.Expire(rateLimitKey, time.Minute)
		}

		if int(newCount) > config.RequestsPerMinute {
			logger.Warningf("Rate limit exceeded for %s on %s (count: %d)", key, c.Request.URL.Path, newCount)
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"msg":     "Rate limit exceeded. Please try again later.",
			})
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.RequestsPerMinute))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(config.RequestsPerMinute-int(newCount)))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(time.Minute).Unix(), 10))

		c.Next()
	}
}
