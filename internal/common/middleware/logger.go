package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"portal-backend/internal/common/logger"
	"portal-backend/internal/common/metrics"
)

// Logger logs every request and records it in the HTTP metrics.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		latency := time.Since(start)
		metrics.ObserveHTTP(c.Request.Method, c.FullPath(), c.Writer.Status(), latency)

		logger.Info().
			Str("request_id", getRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", c.Writer.Status()).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Int("body_size", c.Writer.Size()).
			Msg("Request processed")
	}
}
