package alert

import "context"

// UseCase reports operational events to the on-call channel.
type UseCase interface {
	// ReportBroadcast posts a summary of a broadcast that had failures.
	ReportBroadcast(ctx context.Context, input BroadcastReportInput) error
}
