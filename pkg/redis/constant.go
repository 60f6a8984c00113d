package redis

import "time"

const (
	// DefaultConnectTimeout is the timeout for initial connection ping.
	DefaultConnectTimeout = 5 * time.Second
	// DefaultScanCount is the COUNT hint used when the caller does not pass one.
	DefaultScanCount = 100
)
