package zip

import "errors"

var (
	ErrNegativeLimit = errors.New("limit must not be negative")
)
