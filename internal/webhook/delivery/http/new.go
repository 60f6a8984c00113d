package http

import (
	"frame-notify-srv/internal/signature"
	"frame-notify-srv/internal/webhook"
	"frame-notify-srv/pkg/discord"
	"frame-notify-srv/pkg/log"
)

type Handler struct {
	l       log.Logger
	uc      webhook.UseCase
	frame   signature.Verifier
	ghost   signature.Verifier
	discord discord.IDiscord
}

// New builds the webhook handlers. frame verifies frame client events and ghost verifies
// publisher events. discord may be nil.
func New(l log.Logger, uc webhook.UseCase, frame, ghost signature.Verifier, d discord.IDiscord) Handler {
	if l == nil {
		l = log.NewNop()
	}
	return Handler{
		l:       l,
		uc:      uc,
		frame:   frame,
		ghost:   ghost,
		discord: d,
	}
}
