package middleware

import (
	"time"

	"lounge-billing/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

func HTTPMetrics(m *metrics.HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.Observe(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
