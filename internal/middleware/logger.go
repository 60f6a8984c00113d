package middleware

import (
	"time"

	"frame-notify-srv/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the id that tags every log line of a request.
const RequestIDHeader = "X-Request-Id"

// Logger writes one access log line per request.
func (m Middleware) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Header(RequestIDHeader, requestID)

		// Every log call made with the request context carries the request id.
		ctx := log.WithContext(c.Request.Context(), "request_id", requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()

		status := c.Writer.Status()
		l := m.l.With(
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start).String(),
			"client_ip", c.ClientIP(),
		)
		if len(c.Errors) > 0 {
			l = l.With("errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			l.Error(ctx, "request failed")
		case status >= 400:
			l.Warn(ctx, "request rejected")
		default:
			l.Info(ctx, "request handled")
		}
	}
}
