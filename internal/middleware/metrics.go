package middleware

import (
	"frame-notify-srv/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Observe counts every answered request of a webhook channel by status.
func (m Middleware) Observe(channel string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		metrics.ObserveWebhook(channel, c.Writer.Status())
	}
}
