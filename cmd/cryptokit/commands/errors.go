package commands

import "errors"

var (
	ErrKeyNotConfigured    = errors.New("cipher key not configured: set CRYPTOKIT_CIPHER_KEY or pass --key")
	ErrInvalidOutputFormat = errors.New("invalid output format: must be 'text' or 'json'")
	ErrInvalidEncoding     = errors.New("invalid encoding: must be 'base64' or 'hex'")
	ErrMissingInput        = errors.New("missing required input")
	ErrDigestMismatch      = errors.New("digest does not match input")
)
