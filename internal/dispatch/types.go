package dispatch

// MaxBodyRunes is the longest body sent unchanged.
const MaxBodyRunes = 200

// Template is the content shared by every notification of a broadcast.
type Template struct {
	Title    string
	Body     string
	LinkSlug string
}

// BroadcastResult summarizes a settled broadcast.
type BroadcastResult struct {
	// Attempted is the number of subscribers a send was started for.
	Attempted int
	Failed    int
	// Err aggregates every per-subscriber failure, nil when all succeeded.
	Err error
}
