package commands

import (
	"io"

	"github.com/helperkit/cryptokit/pkg/aescbc"
)

// RunKeygen prints a fresh 32-byte key in the requested encoding, ready to be
// stored as CRYPTOKIT_CIPHER_KEY. The key bytes are zeroed after encoding.
func RunKeygen(out io.Writer, encoding, format string) error {
	if err := validateOutput(format); err != nil {
		return err
	}

	key := aescbc.GenerateKey()
	defer clear(key)

	encoded, err := encodeBytes(key, encoding)
	if err != nil {
		return err
	}

	return writeFields(out, format, field{"key", encoded})
}

// RunGenerateIV prints a fresh random IV.
func RunGenerateIV(out io.Writer, encoding, format string) error {
	if err := validateOutput(format); err != nil {
		return err
	}

	encoded, err := encodeBytes(aescbc.GenerateIV(), encoding)
	if err != nil {
		return err
	}

	return writeFields(out, format, field{"iv", encoded})
}
