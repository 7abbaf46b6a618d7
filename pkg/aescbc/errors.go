package aescbc

import "errors"

var (
	// Input validation errors
	ErrInvalidKeyLength  = errors.New("invalid key length: must be 32 bytes")
	ErrInvalidIVLength   = errors.New("invalid iv length: must be 16 bytes")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrInvalidCiphertext = errors.New("invalid ciphertext: length must be a non-zero multiple of the block size")

	// Argument details, always joined with ErrInvalidArgument
	ErrEmptyPlaintext  = errors.New("plaintext is empty")
	ErrInvalidUTF8     = errors.New("plaintext is not valid UTF-8")
	ErrEmptyCiphertext = errors.New("ciphertext is empty")
	ErrEmptySecret     = errors.New("secret is empty")

	// Encryption/decryption errors
	ErrEncryptionFailed = errors.New("encryption failed")
	ErrDecryptionFailed = errors.New("decryption failed")

	// Key material errors
	ErrUnsupportedKeyEncoding = errors.New("unsupported key encoding")
	ErrUnsupportedKeyFormat   = errors.New("unsupported key format")
	ErrKeyDerivationFailed    = errors.New("key derivation failed")
)
