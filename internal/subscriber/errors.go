package subscriber

import "errors"

var ErrNotFound = errors.New("subscriber not found")
