package commands

import (
	"io"

	"github.com/helperkit/cryptokit/pkg/digest"
)

// RunHash prints the SHA-256 hex digest of text. Empty text is valid.
func RunHash(out io.Writer, text, format string) error {
	if err := validateOutput(format); err != nil {
		return err
	}
	return writeFields(out, format, field{"sha256", digest.Hash(text)})
}

// RunVerifyHash checks text against a hex digest and fails with
// ErrDigestMismatch when they differ.
func RunVerifyHash(out io.Writer, text, hexDigest, format string) error {
	if err := validateOutput(format); err != nil {
		return err
	}
	if !digest.Verify(text, hexDigest) {
		return ErrDigestMismatch
	}
	return writeFields(out, format, field{"match", "true"})
}
