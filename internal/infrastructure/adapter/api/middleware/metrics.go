package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestRecorder starts tracking a request and returns the function that records its completion
type RequestRecorder interface {
	RequestStarted() func(method, path, status string, d time.Duration)
}

// Metrics records request counts and latency per route template
func Metrics(recorder RequestRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		done := recorder.RequestStarted()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		done(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
