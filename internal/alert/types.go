package alert

// BroadcastReportInput summarizes one new-post broadcast.
type BroadcastReportInput struct {
	PostTitle string
	PostURL   string
	Attempted int
	Failed    int
	Err       error
}
