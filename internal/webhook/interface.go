// Package webhook turns verified webhook events into registry changes and notifications.
package webhook

import (
	"context"

	"frame-notify-srv/internal/model"
)

// UseCase routes verified events.
type UseCase interface {
	// HandleCapabilityEvent applies a frame client event to the registry and sends the
	// welcome notification where one is due. Only registry failures are returned.
	HandleCapabilityEvent(ctx context.Context, ev model.CapabilityEvent) error
	// HandlePublication notifies every registered subscriber of a new post and returns the
	// number of subscribers a send was attempted for.
	HandlePublication(ctx context.Context, pub model.Publication) (int, error)
}
