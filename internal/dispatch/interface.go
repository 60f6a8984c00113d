// Package dispatch delivers notifications to registered subscribers.
package dispatch

import (
	"context"

	"frame-notify-srv/internal/model"
	"frame-notify-srv/pkg/framenotify"
)

// UseCase sends notifications through the push transport.
type UseCase interface {
	// Send notifies one subscriber, looking up its record first.
	Send(ctx context.Context, n model.Notification) error
	// Broadcast sends tmpl to every subscriber concurrently and waits for all of them.
	// A failure for one subscriber never stops the others.
	Broadcast(ctx context.Context, subs []model.Subscriber, tmpl Template) BroadcastResult
	// Truncate shortens text to the notification body limit.
	Truncate(text string) string
}

// Pusher is the push transport.
type Pusher interface {
	Send(ctx context.Context, target framenotify.Target, req framenotify.Request) (framenotify.Result, error)
}
