package httpserver

import (
	"errors"
	"time"

	"frame-notify-srv/internal/dispatch"
	"frame-notify-srv/internal/signature/directory"
	"frame-notify-srv/pkg/discord"
	"frame-notify-srv/pkg/kv"
	"frame-notify-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// HTTPServer represents the HTTP server with all dependencies.
// New() only wires dependencies and validates them.
// Run() (in httpserver.go) maps the routes and serves until a shutdown signal.
type HTTPServer struct {
	// Server configuration
	gin    *gin.Engine
	logger log.Logger
	host   string
	port   int

	// Storage
	store     kv.Store
	keyPrefix string

	// Webhook trust
	directory      directory.AppKeyDirectory
	ghostSecret    string
	ghostTolerance time.Duration

	// Delivery
	pusher    dispatch.Pusher
	targetURL string

	// External services
	discord discord.IDiscord
}

// Config is the constructor input for HTTPServer.
type Config struct {
	// Server configuration
	Host string
	Port int
	Mode string

	// Storage
	Store     kv.Store
	KeyPrefix string

	// Webhook trust
	Directory      directory.AppKeyDirectory
	GhostSecret    string
	GhostTolerance time.Duration

	// Delivery
	Pusher    dispatch.Pusher
	TargetURL string

	// Monitoring & Notification, optional
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
// Note: This does NOT start any goroutines. Use (*HTTPServer).Run() to start the service.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		gin:    gin.New(),
		logger: logger,
		host:   cfg.Host,
		port:   cfg.Port,

		store:     cfg.Store,
		keyPrefix: cfg.KeyPrefix,

		directory:      cfg.Directory,
		ghostSecret:    cfg.GhostSecret,
		ghostTolerance: cfg.GhostTolerance,

		pusher:    cfg.Pusher,
		targetURL: cfg.TargetURL,

		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (s *HTTPServer) validate() error {
	if s.logger == nil {
		return errors.New("logger is required")
	}
	if s.port == 0 {
		return errors.New("port is required")
	}
	if s.store == nil {
		return errors.New("store is required")
	}
	if s.directory == nil {
		return errors.New("app key directory is required")
	}
	if s.ghostSecret == "" {
		return errors.New("ghost webhook secret is required")
	}
	if s.pusher == nil {
		return errors.New("pusher is required")
	}
	if s.targetURL == "" {
		return errors.New("target URL is required")
	}
	return nil
}
