package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/uvishwakchander/NeuroX2/internal/observability"
)

const requestIDHeader = "X-Request-ID"

// RequestIDMiddleware assigns each request a unique id, honoring one supplied
// by the caller, and echoes it on the response.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header(requestIDHeader, requestID)
		c.Next()
	}
}

// AccessLogMiddleware logs one line per completed request.
func AccessLogMiddleware(logger *observability.Logger) gin.HandlerFunc {
	accessLogger := logger.NewComponentLogger("http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		accessLogger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"request_id", c.GetString("request_id"),
		)
	}
}

// MetricsMiddleware records request count and latency per route.
func MetricsMiddleware(metrics *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RecordHTTPRequest(c.Request.Context(), route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
