package random

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// Bytes returns n bytes read from crypto/rand. Returns nil when n <= 0.
// crypto/rand.Read never fails on supported platforms, so there is no error to report.
func Bytes(n int) []byte {
	if n <= 0 {
		return nil
	}
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return b
}

// Intn returns a uniformly distributed integer in [0, n).
func Intn(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}

	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, errors.Join(ErrReadFailed, err)
	}

	return int(v.Int64()), nil
}
