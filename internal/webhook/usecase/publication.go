package usecase

import (
	"context"

	"frame-notify-srv/internal/alert"
	"frame-notify-srv/internal/dispatch"
	"frame-notify-srv/internal/model"
	"frame-notify-srv/internal/webhook"
)

func (uc *implUseCase) HandlePublication(ctx context.Context, pub model.Publication) (int, error) {
	subs, err := uc.repo.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.webhook.usecase.HandlePublication.List: %v", err)
		return 0, err
	}

	res := uc.dispatcher.Broadcast(ctx, subs, dispatch.Template{
		Title:    webhook.PublicationTitlePrefix + pub.Title,
		Body:     uc.dispatcher.Truncate(pub.Excerpt),
		LinkSlug: pub.Slug,
	})
	uc.l.Infof(ctx, "internal.webhook.usecase.HandlePublication: post %q sent to %d subscribers, %d failed",
		pub.Slug, res.Attempted, res.Failed)

	if res.Failed > 0 && uc.alert != nil {
		uc.reportAsync(ctx, alert.BroadcastReportInput{
			PostTitle: pub.Title,
			PostURL:   pub.URL,
			Attempted: res.Attempted,
			Failed:    res.Failed,
			Err:       res.Err,
		})
	}

	return res.Attempted, nil
}

func (uc *implUseCase) reportAsync(ctx context.Context, input alert.BroadcastReportInput) {
	ctx = context.WithoutCancel(ctx)
	go func() {
		if err := uc.alert.ReportBroadcast(ctx, input); err != nil {
			uc.l.Warnf(ctx, "internal.webhook.usecase.reportAsync.ReportBroadcast: %v", err)
		}
	}()
}
