package usecase

import (
	"frame-notify-srv/internal/alert"
	"frame-notify-srv/internal/dispatch"
	"frame-notify-srv/internal/subscriber"
	"frame-notify-srv/internal/webhook"
	"frame-notify-srv/pkg/log"
)

type implUseCase struct {
	l          log.Logger
	repo       subscriber.Repository
	dispatcher dispatch.UseCase
	alert      alert.UseCase
}

// New wires the event router. alertUC may be nil.
func New(l log.Logger, repo subscriber.Repository, dispatcher dispatch.UseCase, alertUC alert.UseCase) webhook.UseCase {
	if l == nil {
		l = log.NewNop()
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		dispatcher: dispatcher,
		alert:      alertUC,
	}
}
