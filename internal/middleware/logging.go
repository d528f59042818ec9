package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestLogger injects a request-scoped logger into the context and logs
// request completion with latency and status.
func RequestLogger(baseLogger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()

		requestLogger := baseLogger.With(
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
		)

		c.Header("X-Request-ID", requestID)
		c.Set("logger", requestLogger)

		c.Next()

		requestLogger.Info("Request completed",
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
		)
	}
}

// GetLogger retrieves the request-scoped logger, falling back to the default.
func GetLogger(c *gin.Context) *slog.Logger {
	logger, exists := c.Get("logger")
	if !exists {
		return slog.Default()
	}

	requestLogger, ok := logger.(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return requestLogger
}
