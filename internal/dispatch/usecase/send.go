package usecase

import (
	"context"
	"errors"

	"frame-notify-srv/internal/dispatch"
	"frame-notify-srv/internal/model"
	"frame-notify-srv/internal/subscriber"
	"frame-notify-srv/pkg/metrics"
)

func (uc *implUseCase) Send(ctx context.Context, n model.Notification) error {
	details, err := uc.repo.Get(ctx, n.SubscriberID)
	if err != nil {
		if errors.Is(err, subscriber.ErrNotFound) {
			metrics.ObserveNotification(metrics.ResultNotSubscribed)
			return dispatch.ErrNotSubscribed
		}
		uc.l.Errorf(ctx, "internal.dispatch.usecase.Send.Get: %v", err)
		return err
	}

	return uc.deliver(ctx, model.Subscriber{ID: n.SubscriberID, Details: details}, dispatch.Template{
		Title:    n.Title,
		Body:     n.Body,
		LinkSlug: n.LinkSlug,
	})
}
