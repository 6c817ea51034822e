package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/rpckit/logger"
)

// RequestLogger returns a Gin middleware that logs every request with method,
// path, status code, and duration. Introspection paths are silently skipped.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		if isIntrospectionEndpoint(c.Request.URL.Path) {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		path := c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			path = path + "?" + q
		}

		fields := map[string]interface{}{
			"method":  c.Request.Method,
			"path":    path,
			"status":  status,
			"latency": latency.String(),
			"client":  c.ClientIP(),
		}
		if id, ok := c.Get("request_id"); ok {
			fields[logger.FieldRequestID] = id
		}
		if latency > 500*time.Millisecond {
			fields["slow"] = true
		}

		switch {
		case status >= 500:
			logger.Error("Request completed", fields)
		case status >= 400:
			logger.Warn("Request completed", fields)
		default:
			logger.Debug("Request completed", fields)
		}
	}
}

func isIntrospectionEndpoint(path string) bool {
	switch path {
	case "/health", "/alive", "/ready", "/rpc/_descriptors":
		return true
	}
	return false
}
