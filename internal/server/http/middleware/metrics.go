package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestObserver records per-request measurements.
type RequestObserver interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

// Metrics reports every request to observer, labelled by route template.
func Metrics(observer RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		observer.ObserveRequest(c.Request.Method, routeOf(c), c.Writer.Status(), time.Since(start))
	}
}
