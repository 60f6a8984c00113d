package discord

import (
	"context"

	"frame-notify-srv/pkg/log"
)

// IDiscord posts operational messages to a Discord webhook.
type IDiscord interface {
	SendEmbed(ctx context.Context, options MessageOptions) error
	SendError(ctx context.Context, title, description string, err error) error
	ReportBug(ctx context.Context, message string) error
	Close() error
}

// New builds an IDiscord for the webhook in cfg. Zero knobs take the package defaults
// and a negative RetryCount disables retries.
func New(l log.Logger, cfg Config) (IDiscord, error) {
	if cfg.WebhookID == "" || cfg.WebhookToken == "" {
		return nil, errWebhookRequired
	}
	return newImpl(l, cfg), nil
}
