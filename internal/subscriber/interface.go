// Package subscriber is the registry of subscribers that enabled notifications.
package subscriber

import (
	"context"

	"frame-notify-srv/internal/model"
)

// Repository maps subscriber ids to their notification capability. A subscriber without a
// record has no enabled capability.
type Repository interface {
	// Get returns ErrNotFound when id has no record.
	Get(ctx context.Context, id int64) (model.NotificationDetails, error)
	// Put overwrites the record of id.
	Put(ctx context.Context, id int64, details model.NotificationDetails) error
	// Delete removes the record of id. Absent records are not an error.
	Delete(ctx context.Context, id int64) error
	// List returns every record in no particular order.
	List(ctx context.Context) ([]model.Subscriber, error)
}
