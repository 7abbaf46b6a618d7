package commands

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
)

type field struct {
	name  string
	value string
}

// writeFields prints fields as "name: value" lines or as a single JSON object.
// A lone field in text mode is printed bare so the output can be piped.
func writeFields(out io.Writer, format string, fields ...field) error {
	switch format {
	case "", "text":
		if len(fields) == 1 {
			_, err := fmt.Fprintln(out, fields[0].value)
			return err
		}
		for _, f := range fields {
			if _, err := fmt.Fprintf(out, "%s: %s\n", f.name, f.value); err != nil {
				return err
			}
		}
		return nil
	case "json":
		obj := make(map[string]string, len(fields))
		for _, f := range fields {
			obj[f.name] = f.value
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(obj)
	default:
		return ErrInvalidOutputFormat
	}
}

func encodeBytes(b []byte, encoding string) (string, error) {
	switch encoding {
	case "", "base64":
		return base64.StdEncoding.EncodeToString(b), nil
	case "hex":
		return hex.EncodeToString(b), nil
	default:
		return "", ErrInvalidEncoding
	}
}

func decodeBase64(name, s string) ([]byte, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: --%s", ErrMissingInput, name)
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 in --%s: %w", name, err)
	}
	return b, nil
}

func validateOutput(format string) error {
	switch format {
	case "", "text", "json":
		return nil
	default:
		return ErrInvalidOutputFormat
	}
}
