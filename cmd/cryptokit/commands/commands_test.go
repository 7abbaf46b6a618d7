package commands

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helperkit/cryptokit/pkg/aescbc"
	"github.com/helperkit/cryptokit/pkg/digest"
	"github.com/helperkit/cryptokit/pkg/logger"
	"github.com/helperkit/cryptokit/pkg/shortcode"
)

func parseFields(t *testing.T, out string) map[string]string {
	t.Helper()
	fields := make(map[string]string)
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		name, value, ok := strings.Cut(line, ": ")
		require.Truef(t, ok, "unexpected line %q", line)
		fields[name] = value
	}
	return fields
}

func TestRunKeygen(t *testing.T) {
	t.Parallel()

	t.Run("base64", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer
		require.NoError(t, RunKeygen(&out, "base64", "text"))

		key, err := aescbc.ParseKey(strings.TrimSpace(out.String()), aescbc.KeyFormatBase64)
		require.NoError(t, err)
		assert.Len(t, key, aescbc.KeySize)
	})

	t.Run("hex json", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer
		require.NoError(t, RunKeygen(&out, "hex", "json"))

		var res map[string]string
		require.NoError(t, json.Unmarshal(out.Bytes(), &res))
		key, err := hex.DecodeString(res["key"])
		require.NoError(t, err)
		assert.Len(t, key, aescbc.KeySize)
	})

	t.Run("invalid encoding", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, RunKeygen(&bytes.Buffer{}, "base32", "text"), ErrInvalidEncoding)
	})

	t.Run("invalid output", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, RunKeygen(&bytes.Buffer{}, "base64", "yaml"), ErrInvalidOutputFormat)
	})
}

func TestRunGenerateIV(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	require.NoError(t, RunGenerateIV(&out, "base64", "text"))

	iv, err := base64.StdEncoding.DecodeString(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Len(t, iv, aescbc.IVSize)
}

func TestRunEncryptDecrypt(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	log := logger.Discard()
	key := testKey()

	t.Run("generated iv", func(t *testing.T) {
		t.Parallel()
		var enc bytes.Buffer
		require.NoError(t, RunEncrypt(ctx, log, &enc, key, "Hello 世界", "", "text"))
		fields := parseFields(t, enc.String())
		require.Contains(t, fields, "iv")
		require.Contains(t, fields, "ciphertext")

		var dec bytes.Buffer
		require.NoError(t, RunDecrypt(ctx, log, &dec, key, fields["ciphertext"], fields["iv"], "text"))
		assert.Equal(t, "Hello 世界\n", dec.String())
	})

	t.Run("explicit iv is used", func(t *testing.T) {
		t.Parallel()
		iv := aescbc.GenerateIV()
		want, err := aescbc.Encrypt(key, "fixed", iv)
		require.NoError(t, err)

		var enc bytes.Buffer
		require.NoError(t, RunEncrypt(ctx, log, &enc, key, "fixed", base64.StdEncoding.EncodeToString(iv), "json"))

		var res map[string]string
		require.NoError(t, json.Unmarshal(enc.Bytes(), &res))
		assert.Equal(t, base64.StdEncoding.EncodeToString(iv), res["iv"])
		assert.Equal(t, base64.StdEncoding.EncodeToString(want), res["ciphertext"])
	})

	t.Run("empty text", func(t *testing.T) {
		t.Parallel()
		err := RunEncrypt(ctx, log, &bytes.Buffer{}, key, "", "", "text")
		assert.ErrorIs(t, err, aescbc.ErrInvalidArgument)
	})

	t.Run("short iv", func(t *testing.T) {
		t.Parallel()
		err := RunEncrypt(ctx, log, &bytes.Buffer{}, key, "text", base64.StdEncoding.EncodeToString([]byte("short")), "text")
		assert.ErrorIs(t, err, aescbc.ErrInvalidIVLength)
	})

	t.Run("decrypt missing iv", func(t *testing.T) {
		t.Parallel()
		err := RunDecrypt(ctx, log, &bytes.Buffer{}, key, "AAAA", "", "text")
		assert.ErrorIs(t, err, ErrMissingInput)
	})

	t.Run("decrypt bad base64", func(t *testing.T) {
		t.Parallel()
		err := RunDecrypt(ctx, log, &bytes.Buffer{}, key, "!!!", "AAAA", "text")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--ciphertext")
	})

	t.Run("decrypt with wrong iv in padding region", func(t *testing.T) {
		t.Parallel()
		iv := aescbc.GenerateIV()
		ct, err := aescbc.Encrypt(key, "hello", iv)
		require.NoError(t, err)
		iv[aescbc.IVSize-1] ^= 0x01

		err = RunDecrypt(ctx, log, &bytes.Buffer{}, key,
			base64.StdEncoding.EncodeToString(ct), base64.StdEncoding.EncodeToString(iv), "text")
		assert.ErrorIs(t, err, aescbc.ErrDecryptionFailed)
	})
}

func TestRunSealOpen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	log := logger.Discard()
	key := testKey()

	var sealed bytes.Buffer
	require.NoError(t, RunSeal(ctx, log, &sealed, key, "api-token", "text"))

	var opened bytes.Buffer
	require.NoError(t, RunOpen(ctx, log, &opened, key, strings.TrimSpace(sealed.String()), "json"))

	var res map[string]string
	require.NoError(t, json.Unmarshal(opened.Bytes(), &res))
	assert.Equal(t, "api-token", res["plaintext"])

	assert.ErrorIs(t, RunOpen(ctx, log, &bytes.Buffer{}, key, "", "text"), ErrMissingInput)
	assert.ErrorIs(t, RunOpen(ctx, log, &bytes.Buffer{}, key, "not-base64!", "text"), aescbc.ErrInvalidCiphertext)
}

func TestRunHash(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, RunHash(&out, "abc", "text"))
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad\n", out.String())

	out.Reset()
	require.NoError(t, RunHash(&out, "", "json"))
	var res map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", res["sha256"])
}

func TestRunVerifyHash(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, RunVerifyHash(&out, "abc", digest.Hash("abc"), "text"))
	assert.Equal(t, "true\n", out.String())

	assert.ErrorIs(t, RunVerifyHash(&bytes.Buffer{}, "abd", digest.Hash("abc"), "text"), ErrDigestMismatch)
}

func TestRunShortcode(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, RunShortcode(&out, "usr_", 0, false, "text"))
	id := strings.TrimSpace(out.String())
	assert.True(t, strings.HasPrefix(id, "usr_"))
	assert.Len(t, id, len("usr_")+shortcode.DefaultIDLength)

	out.Reset()
	require.NoError(t, RunShortcode(&out, "", 10, true, "text"))
	id = strings.TrimSpace(out.String())
	assert.Len(t, id, 10)
	for _, r := range id {
		assert.Contains(t, shortcode.ReadableChars, string(r))
	}
}

func TestRunRandomNumber(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, RunRandomNumber(&out, 6, "text"))
	code := strings.TrimSpace(out.String())
	assert.Len(t, code, 6)
	assert.Regexp(t, `^[0-9]{6}$`, code)

	assert.ErrorIs(t, RunRandomNumber(&bytes.Buffer{}, 0, "text"), shortcode.ErrInvalidLength)
}
