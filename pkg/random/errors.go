package random

import "errors"

var (
	ErrInvalidBound = errors.New("random bound must be greater than 0")
	ErrReadFailed   = errors.New("failed to read from secure random source")
)
