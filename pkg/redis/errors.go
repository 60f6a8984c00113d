package redis

import "errors"

var (
	ErrHostRequired  = errors.New("redis: host is required")
	ErrInvalidCursor = errors.New("redis: invalid scan cursor")
)
