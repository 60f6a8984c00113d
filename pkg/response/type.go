package response

import "frame-notify-srv/pkg/errors"

// Resp is the body of every webhook answer.
type Resp struct {
	Success       bool   `json:"success"`
	Error         string `json:"error,omitempty"`
	NotifiedUsers *int   `json:"notifiedUsers,omitempty"`
}

// ErrorMapping translates domain sentinels into HTTP errors.
type ErrorMapping map[error]*errors.HTTPError
