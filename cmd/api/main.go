package main

import (
	"context"
	"fmt"

	"frame-notify-srv/config"
	"frame-notify-srv/config/postgre"
	"frame-notify-srv/config/redis"
	"frame-notify-srv/internal/httpserver"
	"frame-notify-srv/pkg/discord"
	"frame-notify-srv/pkg/framenotify"
	"frame-notify-srv/pkg/hub"
	"frame-notify-srv/pkg/kv"
	"frame-notify-srv/pkg/log"
	pkgPostgre "frame-notify-srv/pkg/postgre"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	defer logger.Sync()

	ctx := context.Background()

	// Initialize subscriber store
	store, err := connectStore(ctx, cfg)
	if err != nil {
		logger.Error(ctx, "Failed to connect to store: ", err)
		return
	}
	defer store.Close()
	logger.Infof(ctx, "Store connected successfully (driver=%s)", cfg.Store.Driver)

	// Initialize app key directory
	hubClient, err := hub.New(hub.Config{
		URL:     cfg.Hub.URL,
		APIKey:  cfg.Hub.APIKey,
		Timeout: cfg.Hub.Timeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize hub client: ", err)
		return
	}
	defer hubClient.Close()

	// Initialize push transport
	pushClient := framenotify.New(cfg.Push.Timeout)
	defer pushClient.Close()

	// Initialize Discord, optional
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookID != "" {
		discordClient, err = discord.New(logger, discord.Config{
			WebhookID:    cfg.Discord.WebhookID,
			WebhookToken: cfg.Discord.WebhookToken,
		})
		if err != nil {
			logger.Error(ctx, "Failed to initialize Discord: ", err)
			return
		}
		defer discordClient.Close()
	} else {
		logger.Warn(ctx, "Discord webhook not configured, error reports are disabled")
	}

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Host: cfg.HTTPServer.Host,
		Port: cfg.HTTPServer.Port,
		Mode: cfg.HTTPServer.Mode,

		// Storage Configuration
		Store:     store,
		KeyPrefix: cfg.Store.KeyPrefix,

		// Webhook Trust Configuration
		Directory:      hubClient,
		GhostSecret:    cfg.Ghost.WebhookSecret,
		GhostTolerance: cfg.Ghost.Tolerance,

		// Push Notification Configuration
		Pusher:    pushClient,
		TargetURL: cfg.Push.TargetURL,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// connectStore opens the key-value backend selected by STORE_DRIVER.
func connectStore(ctx context.Context, cfg *config.Config) (kv.Store, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverRedis:
		return redis.Connect(ctx, cfg.Redis)
	case config.StoreDriverPostgres:
		db, err := postgre.Connect(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		store := pkgPostgre.New(db)
		if err := store.Migrate(ctx); err != nil {
			_ = store.Close()
			return nil, err
		}
		return store, nil
	default:
		return kv.NewMemory(), nil
	}
}
