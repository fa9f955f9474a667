package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// HTTPMetricsRecorder is the subset of the prometheus metrics the HTTP
// layer needs.
type HTTPMetricsRecorder interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

// Metrics records request counts and latency per route.  The route template
// (e.g. "/api/v1/markets/:market/guidelines") is used rather than the raw
// path to keep label cardinality bounded.
func Metrics(recorder HTTPMetricsRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		recorder.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
