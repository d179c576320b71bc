package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"survivordraft/src/infra/metrics"
)

// Metrics records request counts and latencies per route. The route label is
// the registered pattern (e.g. /v1/users/:username/picks), not the raw path,
// to keep the label cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RecordHTTPRequest(route, c.Request.Method, strconv.Itoa(c.Writer.Status()))
		metrics.ObserveHTTPDuration(route, c.Request.Method, time.Since(start).Seconds())
	}
}
