package usecase

import (
	"context"
	"fmt"

	"frame-notify-srv/internal/model"
	"frame-notify-srv/internal/webhook"
)

func (uc *implUseCase) HandleCapabilityEvent(ctx context.Context, ev model.CapabilityEvent) error {
	switch ev.Kind {
	case model.EventFrameAdded:
		if ev.Details == nil {
			return uc.revoke(ctx, ev.SubscriberID)
		}
		return uc.grant(ctx, ev.SubscriberID, *ev.Details, webhook.WelcomeTitle, webhook.WelcomeBody)

	case model.EventNotificationsEnabled:
		if ev.Details == nil {
			return fmt.Errorf("%w: %s without notification details", webhook.ErrUnknownEvent, ev.Kind)
		}
		return uc.grant(ctx, ev.SubscriberID, *ev.Details, webhook.EnabledTitle, webhook.EnabledBody)

	case model.EventFrameRemoved, model.EventNotificationsDisabled:
		return uc.revoke(ctx, ev.SubscriberID)

	default:
		return fmt.Errorf("%w: %q", webhook.ErrUnknownEvent, ev.Kind)
	}
}

// grant stores the capability and sends the confirmation. A failed confirmation is logged
// only; the stored capability stands.
func (uc *implUseCase) grant(ctx context.Context, id int64, details model.NotificationDetails, title, body string) error {
	if err := uc.repo.Put(ctx, id, details); err != nil {
		uc.l.Errorf(ctx, "internal.webhook.usecase.grant.Put: subscriber %d: %v", id, err)
		return err
	}

	err := uc.dispatcher.Send(ctx, model.Notification{
		SubscriberID: id,
		Title:        title,
		Body:         body,
	})
	if err != nil {
		uc.l.Warnf(ctx, "internal.webhook.usecase.grant.Send: subscriber %d: %v", id, err)
	}
	return nil
}

func (uc *implUseCase) revoke(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.l.Errorf(ctx, "internal.webhook.usecase.revoke.Delete: subscriber %d: %v", id, err)
		return err
	}
	return nil
}
