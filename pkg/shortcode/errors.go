package shortcode

import "errors"

var (
	ErrInvalidLength    = errors.New("shortcode length must be greater than 0")
	ErrInvalidCharset   = errors.New("shortcode charset must contain only ASCII characters")
	ErrGenerationFailed = errors.New("failed to generate shortcode")
)
