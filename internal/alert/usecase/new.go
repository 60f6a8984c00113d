package usecase

import (
	"frame-notify-srv/internal/alert"
	"frame-notify-srv/pkg/discord"
	"frame-notify-srv/pkg/log"
)

type implUseCase struct {
	logger  log.Logger
	discord discord.IDiscord
}

// New returns an alert UseCase. A nil discord makes every report a logged no-op.
func New(logger log.Logger, discord discord.IDiscord) alert.UseCase {
	if logger == nil {
		logger = log.NewNop()
	}
	return &implUseCase{
		logger:  logger,
		discord: discord,
	}
}
