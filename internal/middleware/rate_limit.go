package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"listenote/pkg/response"
)

// RateLimit rejects requests beyond the configured rate with 429. One
// limiter covers the whole API; this service fronts a single user's library.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s %s", c.Request.Method, c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "too many requests",
			})
			return
		}
		c.Next()
	}
}
