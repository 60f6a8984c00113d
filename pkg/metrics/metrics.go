// Package metrics holds the Prometheus counters of the service.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ChannelFrame = "frame"
	ChannelGhost = "ghost"

	ResultSuccess       = "success"
	ResultInvalidToken  = "invalid_token"
	ResultRateLimited   = "rate_limited"
	ResultError         = "error"
	ResultNotSubscribed = "not_subscribed"
)

var (
	webhookRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "frame_webhook_requests_total",
			Help: "Total number of webhook requests by channel and response status.",
		},
		[]string{"channel", "status"},
	)

	notificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "frame_notifications_total",
			Help: "Total number of notification sends by result.",
		},
		[]string{"result"},
	)
)

// ObserveWebhook counts one answered webhook request.
func ObserveWebhook(channel string, status int) {
	webhookRequestsTotal.WithLabelValues(channel, strconv.Itoa(status)).Inc()
}

// ObserveNotification counts one notification send.
func ObserveNotification(result string) {
	notificationsTotal.WithLabelValues(result).Inc()
}
