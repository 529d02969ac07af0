package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware applies a process-wide token bucket, matching the
// backend's own API limit of 100 requests per minute so the CMS never trips
// the upstream limiter under normal use.
func RateLimitMiddleware() gin.HandlerFunc {
	return RateLimitWith(rate.Every(time.Minute/100), 100)
}

func RateLimitWith(limit rate.Limit, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(limit, burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"ok":    false,
				"error": "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}
