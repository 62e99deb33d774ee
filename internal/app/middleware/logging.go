package middleware

import (
	"time"

	"loan-intake/internal/common/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs information about incoming requests.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("http request", map[string]interface{}{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		})
	}
}
