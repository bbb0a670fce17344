package middleware

import (
	"time"

	"github.com/Darshan-Yash/Periodic-table/internal/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records a counter and latency sample per request.
// Routes are labelled by their registered pattern, not the raw path, so
// /api/elements/{identifier} stays a single series.
func MetricsMiddleware(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		collector.RecordRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
