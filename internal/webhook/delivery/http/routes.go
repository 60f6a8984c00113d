package http

import (
	"frame-notify-srv/internal/middleware"
	"frame-notify-srv/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the webhook endpoints.
func (h Handler) RegisterRoutes(r gin.IRouter, mw middleware.Middleware) {
	r.POST("/webhook", mw.Observe(metrics.ChannelFrame), h.HandleFrameEvent)
	r.POST("/new_post", mw.Observe(metrics.ChannelGhost), h.HandleNewPost)
}
