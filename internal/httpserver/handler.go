package httpserver

import (
	alertUC "frame-notify-srv/internal/alert/usecase"
	dispatchUC "frame-notify-srv/internal/dispatch/usecase"
	"frame-notify-srv/internal/middleware"
	"frame-notify-srv/internal/signature/directory"
	"frame-notify-srv/internal/signature/sharedsecret"
	subscriberKV "frame-notify-srv/internal/subscriber/repository/kv"
	webhookHTTP "frame-notify-srv/internal/webhook/delivery/http"
	webhookUC "frame-notify-srv/internal/webhook/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.logger, srv.discord)
	srv.gin.Use(mw.Logger(), mw.Recovery())

	// Health check endpoints
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Repositories
	subscriberRepo := subscriberKV.New(srv.logger, srv.store, srv.keyPrefix)

	// Usecases
	dispatcher := dispatchUC.New(srv.logger, subscriberRepo, srv.pusher, srv.targetURL)
	alerts := alertUC.New(srv.logger, srv.discord)
	webhooks := webhookUC.New(srv.logger, subscriberRepo, dispatcher, alerts)

	// Verifiers
	frameVerifier := directory.New(srv.logger, srv.directory)
	ghostVerifier, err := sharedsecret.New(srv.logger, srv.ghostSecret, srv.ghostTolerance)
	if err != nil {
		return err
	}

	// Webhook routes
	webhookHTTP.New(srv.logger, webhooks, frameVerifier, ghostVerifier, srv.discord).
		RegisterRoutes(srv.gin, mw)

	return nil
}
