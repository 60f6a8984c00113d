package redis

import (
	"context"
	"fmt"

	"frame-notify-srv/config"
	pkgRedis "frame-notify-srv/pkg/redis"
)

// Connect initializes and returns a Redis-backed store
func Connect(ctx context.Context, cfg config.RedisConfig) (*pkgRedis.Client, error) {
	client, err := pkgRedis.New(ctx, pkgRedis.Config{
		Addr:            cfg.Host,
		Password:        cfg.Password,
		DB:              cfg.DB,
		UseTLS:          cfg.UseTLS,
		MaxRetries:      cfg.MaxRetries,
		MinIdleConns:    cfg.MinIdleConns,
		PoolSize:        cfg.PoolSize,
		PoolTimeout:     cfg.PoolTimeout,
		ConnMaxIdleTime: cfg.ConnMaxIdleTime,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}
