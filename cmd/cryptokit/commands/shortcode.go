package commands

import (
	"io"

	"github.com/helperkit/cryptokit/pkg/shortcode"
)

// RunShortcode prints a prefixed random identifier. readable switches to the
// look-alike free alphabet; a non-positive length uses the alphabet's default.
func RunShortcode(out io.Writer, prefix string, length int, readable bool, format string) error {
	if err := validateOutput(format); err != nil {
		return err
	}

	generate := shortcode.ID
	if readable {
		generate = shortcode.ReadableID
	}

	id, err := generate(prefix, length)
	if err != nil {
		return err
	}
	return writeFields(out, format, field{"id", id})
}

// RunRandomNumber prints a fixed-length numeric code.
func RunRandomNumber(out io.Writer, length int, format string) error {
	if err := validateOutput(format); err != nil {
		return err
	}

	code, err := shortcode.RandomNumber(length)
	if err != nil {
		return err
	}
	return writeFields(out, format, field{"code", code})
}
