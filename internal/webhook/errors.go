package webhook

import "errors"

var ErrUnknownEvent = errors.New("unknown capability event")
