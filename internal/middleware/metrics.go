package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campustrack/campustrack-backend/internal/metrics"
)

// Metrics records a Prometheus counter and latency histogram per request,
// labeled by the route template rather than the raw path so IDs do not
// explode the cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(
			c.Request.Method, route, strconv.Itoa(c.Writer.Status()),
		).Inc()
		metrics.HTTPDuration.WithLabelValues(c.Request.Method, route).
			Observe(time.Since(start).Seconds())
	}
}
