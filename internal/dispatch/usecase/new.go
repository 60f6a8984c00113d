package usecase

import (
	"frame-notify-srv/internal/dispatch"
	"frame-notify-srv/internal/subscriber"
	"frame-notify-srv/pkg/log"
)

type implUseCase struct {
	l         log.Logger
	repo      subscriber.Repository
	push      dispatch.Pusher
	targetURL string
}

// New returns a dispatcher. targetURL is the page a notification opens; a link slug is
// appended as a path segment.
func New(l log.Logger, repo subscriber.Repository, push dispatch.Pusher, targetURL string) dispatch.UseCase {
	if l == nil {
		l = log.NewNop()
	}
	return &implUseCase{
		l:         l,
		repo:      repo,
		push:      push,
		targetURL: targetURL,
	}
}
