package middleware

import (
	"frame-notify-srv/pkg/discord"
	"frame-notify-srv/pkg/log"
)

type Middleware struct {
	l       log.Logger
	discord discord.IDiscord
}

// New builds the shared middleware set. discord may be nil.
func New(l log.Logger, d discord.IDiscord) Middleware {
	if l == nil {
		l = log.NewNop()
	}
	return Middleware{
		l:       l,
		discord: d,
	}
}
