package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

// Store drivers accepted by STORE_DRIVER.
const (
	StoreDriverRedis    = "redis"
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage Configuration
	Store    StoreConfig
	Redis    RedisConfig
	Postgres PostgresConfig

	// Webhook Trust Configuration
	Hub   HubConfig
	Ghost GhostConfig

	// Push Notification Configuration
	Push PushConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port int    `env:"HTTP_PORT" envDefault:"8787"`
	Mode string `env:"HTTP_MODE" envDefault:"release"`
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode         string `env:"LOGGER_MODE" envDefault:"production"`
	Encoding     string `env:"LOGGER_ENCODING" envDefault:"json"`
	ColorEnabled bool   `env:"LOGGER_COLOR_ENABLED" envDefault:"false"`
}

// StoreConfig selects the key-value backend that holds subscriber records.
type StoreConfig struct {
	Driver    string `env:"STORE_DRIVER" envDefault:"redis"`
	KeyPrefix string `env:"STORE_KEY_PREFIX" envDefault:"pinata-blog-frame:user:"`
}

// RedisConfig is the configuration for Redis
// Note: Only standalone mode is supported
type RedisConfig struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	UseTLS   bool   `env:"REDIS_USE_TLS" envDefault:"false"`

	// Connection pool settings
	MaxRetries      int           `env:"REDIS_MAX_RETRIES" envDefault:"3"`
	MinIdleConns    int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"10"`
	PoolSize        int           `env:"REDIS_POOL_SIZE" envDefault:"100"`
	PoolTimeout     time.Duration `env:"REDIS_POOL_TIMEOUT" envDefault:"4s"`
	ConnMaxIdleTime time.Duration `env:"REDIS_CONN_MAX_IDLE_TIME" envDefault:"5m"`
	ConnMaxLifetime time.Duration `env:"REDIS_CONN_MAX_LIFETIME" envDefault:"30m"`
}

// PostgresConfig is the configuration for the Postgres key-value table
type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	DBName   string `env:"POSTGRES_DB_NAME" envDefault:"frame_notify"`
	SSLMode  string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
}

// HubConfig is the configuration for the app key directory
type HubConfig struct {
	URL     string        `env:"HUB_URL" envDefault:"https://hub-api.neynar.com"`
	APIKey  string        `env:"NEYNAR_API_KEY"`
	Timeout time.Duration `env:"HUB_TIMEOUT" envDefault:"10s"`
}

// GhostConfig is the configuration for the publisher webhook
type GhostConfig struct {
	WebhookSecret string        `env:"GHOST_WEBHOOK_SECRET"`
	Tolerance     time.Duration `env:"GHOST_SIGNATURE_TOLERANCE" envDefault:"5m"`
}

// PushConfig is the configuration for frame notification delivery
type PushConfig struct {
	TargetURL string        `env:"FRAME_TARGET_URL"`
	Timeout   time.Duration `env:"PUSH_TIMEOUT" envDefault:"10s"`
}

// DiscordConfig is the configuration for Discord webhook notifications
type DiscordConfig struct {
	WebhookID    string `env:"DISCORD_WEBHOOK_ID"`
	WebhookToken string `env:"DISCORD_WEBHOOK_TOKEN"`
}

// Load reads an optional .env file and parses the environment into Config.
func Load() (*Config, error) {
	// A missing .env is fine, the environment may already be populated.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.Store.Driver {
	case StoreDriverRedis, StoreDriverPostgres, StoreDriverMemory:
	default:
		return fmt.Errorf("STORE_DRIVER must be one of redis, postgres, memory (got %q)", cfg.Store.Driver)
	}
	if cfg.Store.KeyPrefix == "" {
		return fmt.Errorf("STORE_KEY_PREFIX is required")
	}

	if cfg.Store.Driver == StoreDriverRedis && cfg.Redis.Host == "" {
		return fmt.Errorf("REDIS_HOST is required")
	}
	if cfg.Store.Driver == StoreDriverPostgres && cfg.Postgres.Host == "" {
		return fmt.Errorf("POSTGRES_HOST is required")
	}

	if cfg.Hub.APIKey == "" {
		return fmt.Errorf("NEYNAR_API_KEY is required")
	}
	if cfg.Ghost.WebhookSecret == "" {
		return fmt.Errorf("GHOST_WEBHOOK_SECRET is required")
	}
	if cfg.Ghost.Tolerance <= 0 {
		return fmt.Errorf("GHOST_SIGNATURE_TOLERANCE must be positive")
	}

	if cfg.Push.TargetURL == "" {
		return fmt.Errorf("FRAME_TARGET_URL is required")
	}
	u, err := url.Parse(cfg.Push.TargetURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("FRAME_TARGET_URL must be an absolute URL")
	}

	return nil
}
