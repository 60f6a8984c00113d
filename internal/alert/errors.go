package alert

import "errors"

var ErrInvalidInput = errors.New("invalid alert input")
