package usecase

import (
	"context"
	"sync"

	"frame-notify-srv/internal/dispatch"
	"frame-notify-srv/internal/model"

	"go.uber.org/multierr"
)

func (uc *implUseCase) Broadcast(ctx context.Context, subs []model.Subscriber, tmpl dispatch.Template) dispatch.BroadcastResult {
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		errs   error
		failed int
	)

	for _, sub := range subs {
		wg.Add(1)
		go func(sub model.Subscriber) {
			defer wg.Done()
			if err := uc.deliver(ctx, sub, tmpl); err != nil {
				mu.Lock()
				errs = multierr.Append(errs, err)
				failed++
				mu.Unlock()
			}
		}(sub)
	}
	wg.Wait()

	if failed > 0 {
		uc.l.Warnf(ctx, "internal.dispatch.usecase.Broadcast: %d of %d notifications failed", failed, len(subs))
	}

	return dispatch.BroadcastResult{
		Attempted: len(subs),
		Failed:    failed,
		Err:       errs,
	}
}
