package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"frame-notify-srv/internal/alert"
	"frame-notify-srv/pkg/discord"
)

func (uc *implUseCase) ReportBroadcast(ctx context.Context, input alert.BroadcastReportInput) error {
	if input.Attempted < 0 || input.Failed < 0 || input.Failed > input.Attempted {
		return alert.ErrInvalidInput
	}
	if uc.discord == nil {
		uc.logger.Infof(ctx, "internal.alert.usecase.ReportBroadcast: %d of %d failed, no discord configured", input.Failed, input.Attempted)
		return nil
	}

	fields := []discord.EmbedField{
		buildField("Attempted", strconv.Itoa(input.Attempted), true),
		buildField("Failed", strconv.Itoa(input.Failed), true),
		buildField("Post", input.PostURL, false),
	}
	if input.Err != nil {
		fields = append(fields, buildField("Errors", input.Err.Error(), false))
	}

	msgType := discord.MessageTypeWarning
	if input.Failed == input.Attempted {
		msgType = discord.MessageTypeError
	}

	return uc.discord.SendEmbed(ctx, discord.MessageOptions{
		Type:        msgType,
		Title:       fmt.Sprintf("Broadcast partially failed: %s", input.PostTitle),
		Description: fmt.Sprintf("%d of %d notifications for **%s** were not accepted.", input.Failed, input.Attempted, input.PostTitle),
		Fields:      fields,
		Timestamp:   time.Now(),
	})
}
