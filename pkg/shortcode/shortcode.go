package shortcode

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/helperkit/cryptokit/pkg/random"
)

const (
	AllChars      = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	ReadableChars = "23456789ABDEGJKMNPQRVWXYZ"
	AlphaNumeric  = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	Digits        = "0123456789"

	DefaultIDLength         = 14
	DefaultReadableIDLength = 8
)

// Generate returns a random string of length characters taken from charset.
// An empty charset falls back to AllChars.
func Generate(length int, charset string) (string, error) {
	if length <= 0 {
		return "", ErrInvalidLength
	}
	if charset == "" {
		charset = AllChars
	}
	for i := 0; i < len(charset); i++ {
		if charset[i] >= utf8.RuneSelf {
			return "", ErrInvalidCharset
		}
	}

	var sb strings.Builder
	sb.Grow(length)
	for range length {
		idx, err := random.Intn(len(charset))
		if err != nil {
			return "", errors.Join(ErrGenerationFailed, err)
		}
		sb.WriteByte(charset[idx])
	}

	return sb.String(), nil
}

// ID returns prefix followed by length random letters.
// A non-positive length uses DefaultIDLength.
func ID(prefix string, length int) (string, error) {
	if length <= 0 {
		length = DefaultIDLength
	}
	code, err := Generate(length, AllChars)
	if err != nil {
		return "", err
	}
	return prefix + code, nil
}

// ReadableID returns prefix followed by length characters from ReadableChars.
// A non-positive length uses DefaultReadableIDLength.
func ReadableID(prefix string, length int) (string, error) {
	if length <= 0 {
		length = DefaultReadableIDLength
	}
	code, err := Generate(length, ReadableChars)
	if err != nil {
		return "", err
	}
	return prefix + code, nil
}

// RandomString returns length random alphanumeric ASCII characters.
func RandomString(length int) (string, error) {
	return Generate(length, AlphaNumeric)
}

// RandomNumber returns a fixed-length numeric string. Leading zeros are kept.
func RandomNumber(length int) (string, error) {
	return Generate(length, Digits)
}
