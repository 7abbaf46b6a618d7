package aescbc_test

import (
	"encoding/base64"
	"testing"

	"github.com/helperkit/cryptokit/pkg/aescbc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealOpen(t *testing.T) {
	t.Parallel()
	key := aescbc.GenerateKey()

	sealed, err := aescbc.Seal(key, "Hello 世界")
	require.NoError(t, err)
	assert.Len(t, sealed, aescbc.IVSize+aescbc.BlockSize)

	plain, err := aescbc.Open(key, sealed)
	require.NoError(t, err)
	assert.Equal(t, "Hello 世界", plain)

	again, err := aescbc.Seal(key, "Hello 世界")
	require.NoError(t, err)
	assert.NotEqual(t, sealed, again, "each seal uses a fresh IV")
}

func TestOpen_Invalid(t *testing.T) {
	t.Parallel()
	key := aescbc.GenerateKey()

	tests := []struct {
		name    string
		key     []byte
		sealed  []byte
		wantErr error
	}{
		{"short key", key[:16], make([]byte, 32), aescbc.ErrInvalidKeyLength},
		{"nil", key, nil, aescbc.ErrInvalidCiphertext},
		{"iv only", key, make([]byte, aescbc.IVSize), aescbc.ErrInvalidCiphertext},
		{"misaligned body", key, make([]byte, aescbc.IVSize+20), aescbc.ErrInvalidCiphertext},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := aescbc.Open(tt.key, tt.sealed)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEncryptDecryptString(t *testing.T) {
	t.Parallel()
	key := aescbc.GenerateKey()

	tests := []struct {
		name      string
		plaintext string
	}{
		{"simple text", "Hello, World!"},
		{"api key", "sk_test_1234567890abcdef"},
		{"unicode", "Hello 世界 🌍"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			token, err := aescbc.EncryptString(key, tt.plaintext)
			require.NoError(t, err)

			_, err = base64.StdEncoding.DecodeString(token)
			require.NoError(t, err, "token must be standard base64")

			plain, err := aescbc.DecryptString(key, token)
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, plain)
		})
	}
}

func TestDecryptString_Invalid(t *testing.T) {
	t.Parallel()
	key := aescbc.GenerateKey()

	_, err := aescbc.DecryptString(key, "invalid-base64!@#$")
	assert.ErrorIs(t, err, aescbc.ErrInvalidCiphertext)

	_, err = aescbc.DecryptString(key, base64.StdEncoding.EncodeToString([]byte("short")))
	assert.ErrorIs(t, err, aescbc.ErrInvalidCiphertext)

	_, err = aescbc.DecryptString(nil, "")
	assert.ErrorIs(t, err, aescbc.ErrInvalidKeyLength)

	_, err = aescbc.EncryptString(key, "")
	assert.ErrorIs(t, err, aescbc.ErrInvalidArgument)
}
