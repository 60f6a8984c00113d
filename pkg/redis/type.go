package redis

import (
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Config holds the connection settings for a standalone Redis server.
type Config struct {
	Addr     string
	Password string
	DB       int
	UseTLS   bool

	MaxRetries      int
	MinIdleConns    int
	PoolSize        int
	PoolTimeout     time.Duration
	ConnMaxIdleTime time.Duration
	ConnMaxLifetime time.Duration
}

// Client is a kv.Store backed by Redis strings.
type Client struct {
	client *goredis.Client
}
