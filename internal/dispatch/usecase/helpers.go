package usecase

import (
	"context"
	"fmt"
	"net/url"

	"frame-notify-srv/internal/dispatch"
	"frame-notify-srv/internal/model"
	"frame-notify-srv/pkg/framenotify"
	"frame-notify-srv/pkg/metrics"
)

func (uc *implUseCase) Truncate(text string) string {
	return truncate(text, dispatch.MaxBodyRunes)
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

// deliver pushes tmpl to sub. Any outcome other than an accepted token is an error,
// logged here and counted once.
// deliver pushes one notification. A panicking transport is turned into an error so a
// broadcast goroutine never takes the process down.
func (uc *implUseCase) deliver(ctx context.Context, sub model.Subscriber, tmpl dispatch.Template) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			metrics.ObserveNotification(metrics.ResultError)
			uc.l.Errorf(ctx, "internal.dispatch.usecase.deliver: subscriber %d: push panicked: %v", sub.ID, rec)
			err = fmt.Errorf("subscriber %d: push panicked: %v", sub.ID, rec)
		}
	}()

	res, err := uc.push.Send(ctx,
		framenotify.Target{URL: sub.Details.URL, Token: sub.Details.Token},
		framenotify.Request{
			Title:     tmpl.Title,
			Body:      tmpl.Body,
			TargetURL: uc.target(tmpl.LinkSlug),
		},
	)
	if err != nil {
		metrics.ObserveNotification(metrics.ResultError)
		uc.l.Errorf(ctx, "internal.dispatch.usecase.deliver: subscriber %d: %v", sub.ID, err)
		return fmt.Errorf("subscriber %d: %w", sub.ID, err)
	}

	switch res.State {
	case framenotify.StateSuccess:
		metrics.ObserveNotification(metrics.ResultSuccess)
		return nil
	case framenotify.StateInvalidToken:
		metrics.ObserveNotification(metrics.ResultInvalidToken)
	case framenotify.StateRateLimited:
		metrics.ObserveNotification(metrics.ResultRateLimited)
	default:
		metrics.ObserveNotification(metrics.ResultError)
	}
	uc.l.Warnf(ctx, "internal.dispatch.usecase.deliver: subscriber %d: notification %s %s", sub.ID, res.NotificationID, res.State)
	return fmt.Errorf("subscriber %d: %w: %s", sub.ID, dispatch.ErrPushRejected, res.State)
}

func (uc *implUseCase) target(slug string) string {
	if slug == "" {
		return uc.targetURL
	}
	u, err := url.JoinPath(uc.targetURL, slug)
	if err != nil {
		return uc.targetURL
	}
	return u
}
