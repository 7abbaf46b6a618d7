package aescbc

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/text/encoding/charmap"

	"github.com/helperkit/cryptokit/pkg/random"
)

// KeyFormat describes how a key is written in configuration.
type KeyFormat string

const (
	KeyFormatBase64 KeyFormat = "base64"
	KeyFormatHex    KeyFormat = "hex"
	// KeyFormatRaw treats the configured string as the key text itself,
	// encoded as UTF-8.
	KeyFormatRaw KeyFormat = "raw"
)

// KeyEncoding selects the text encoding used to turn a textual key into bytes.
type KeyEncoding string

const (
	KeyEncodingUTF8 KeyEncoding = "utf-8"
	// KeyEncodingWindows1252 reproduces keys produced with the Windows default
	// ANSI code page. Only use it to read data encrypted that way.
	KeyEncodingWindows1252 KeyEncoding = "windows-1252"
)

// ValidateKey checks that key is exactly KeySize bytes.
func ValidateKey(key []byte) error {
	if len(key) != KeySize {
		return ErrInvalidKeyLength
	}
	return nil
}

// ValidateIV checks that iv is exactly IVSize bytes.
func ValidateIV(iv []byte) error {
	if len(iv) != IVSize {
		return ErrInvalidIVLength
	}
	return nil
}

// GenerateKey creates a new random 32-byte key.
func GenerateKey() []byte {
	return random.Bytes(KeySize)
}

// GenerateEncodedKey creates a new random key and returns it base64 encoded,
// ready to be stored in an environment variable.
func GenerateEncodedKey() string {
	key := GenerateKey()
	defer zero(key)
	return base64.StdEncoding.EncodeToString(key)
}

// ParseKey decodes a configured key in the given format and validates its length.
// An empty format is treated as KeyFormatBase64.
func ParseKey(s string, format KeyFormat) ([]byte, error) {
	var (
		key []byte
		err error
	)

	switch format {
	case KeyFormatBase64, "":
		key, err = base64.StdEncoding.DecodeString(s)
	case KeyFormatHex:
		key, err = hex.DecodeString(s)
	case KeyFormatRaw:
		key = []byte(s)
	default:
		return nil, ErrUnsupportedKeyFormat
	}
	if err != nil {
		return nil, errors.Join(ErrInvalidArgument, err)
	}

	if err := ValidateKey(key); err != nil {
		zero(key)
		return nil, err
	}
	return key, nil
}

// KeyFromString converts textual key material to bytes using enc.
// An empty encoding is treated as KeyEncodingUTF8.
func KeyFromString(s string, enc KeyEncoding) ([]byte, error) {
	var key []byte

	switch enc {
	case KeyEncodingUTF8, "":
		key = []byte(s)
	case KeyEncodingWindows1252:
		b, err := charmap.Windows1252.NewEncoder().Bytes([]byte(s))
		if err != nil {
			return nil, errors.Join(ErrInvalidArgument, err)
		}
		key = b
	default:
		return nil, ErrUnsupportedKeyEncoding
	}

	if err := ValidateKey(key); err != nil {
		zero(key)
		return nil, err
	}
	return key, nil
}

// DeriveKey stretches secret into a KeySize key with HKDF-SHA256.
// salt may be nil; info binds the key to a purpose.
func DeriveKey(secret, salt []byte, info string) ([]byte, error) {
	if len(secret) == 0 {
		return nil, errors.Join(ErrInvalidArgument, ErrEmptySecret)
	}

	r := hkdf.New(sha256.New, secret, salt, []byte(info))

	key := make([]byte, KeySize)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, errors.Join(ErrKeyDerivationFailed, err)
	}

	return key, nil
}
