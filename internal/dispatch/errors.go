package dispatch

import "errors"

var (
	ErrNotSubscribed = errors.New("subscriber has no notification capability")
	ErrPushRejected  = errors.New("notification rejected by push server")
)
