package commands

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"

	"github.com/helperkit/cryptokit/pkg/aescbc"
	"github.com/helperkit/cryptokit/pkg/logger"
)

// RunEncrypt encrypts text with AES-256-CBC. When ivB64 is empty a fresh IV
// is generated. Both the IV and the ciphertext are printed base64 encoded.
func RunEncrypt(ctx context.Context, log *slog.Logger, out io.Writer, key []byte, text, ivB64, format string) error {
	if err := validateOutput(format); err != nil {
		return err
	}

	iv := aescbc.GenerateIV()
	if ivB64 != "" {
		var err error
		if iv, err = decodeBase64("iv", ivB64); err != nil {
			return err
		}
	}

	ciphertext, err := aescbc.Encrypt(key, text, iv)
	if err != nil {
		log.ErrorContext(ctx, "encryption failed", logger.Operation("encrypt"), logger.Error(err))
		return fmt.Errorf("encrypt: %w", err)
	}

	log.DebugContext(ctx, "encrypted",
		logger.Operation("encrypt"),
		logger.Size("plaintext_bytes", len(text)),
		logger.Size("ciphertext_bytes", len(ciphertext)),
	)

	return writeFields(out, format,
		field{"iv", base64.StdEncoding.EncodeToString(iv)},
		field{"ciphertext", base64.StdEncoding.EncodeToString(ciphertext)},
	)
}

// RunDecrypt decrypts a base64 ciphertext produced by RunEncrypt.
func RunDecrypt(ctx context.Context, log *slog.Logger, out io.Writer, key []byte, ciphertextB64, ivB64, format string) error {
	if err := validateOutput(format); err != nil {
		return err
	}

	ciphertext, err := decodeBase64("ciphertext", ciphertextB64)
	if err != nil {
		return err
	}
	iv, err := decodeBase64("iv", ivB64)
	if err != nil {
		return err
	}

	plaintext, err := aescbc.Decrypt(key, ciphertext, iv)
	if err != nil {
		log.ErrorContext(ctx, "decryption failed", logger.Operation("decrypt"), logger.Error(err))
		return fmt.Errorf("decrypt: %w", err)
	}

	log.DebugContext(ctx, "decrypted", logger.Operation("decrypt"), logger.Size("ciphertext_bytes", len(ciphertext)))

	return writeFields(out, format, field{"plaintext", plaintext})
}

// RunSeal encrypts text under a fresh IV and prints the self-contained base64 token.
func RunSeal(ctx context.Context, log *slog.Logger, out io.Writer, key []byte, text, format string) error {
	if err := validateOutput(format); err != nil {
		return err
	}

	token, err := aescbc.EncryptString(key, text)
	if err != nil {
		log.ErrorContext(ctx, "seal failed", logger.Operation("seal"), logger.Error(err))
		return fmt.Errorf("seal: %w", err)
	}

	log.DebugContext(ctx, "sealed", logger.Operation("seal"), logger.Size("token_chars", len(token)))

	return writeFields(out, format, field{"sealed", token})
}

// RunOpen decrypts a token produced by RunSeal.
func RunOpen(ctx context.Context, log *slog.Logger, out io.Writer, key []byte, token, format string) error {
	if err := validateOutput(format); err != nil {
		return err
	}
	if token == "" {
		return fmt.Errorf("%w: --sealed", ErrMissingInput)
	}

	plaintext, err := aescbc.DecryptString(key, token)
	if err != nil {
		log.ErrorContext(ctx, "open failed", logger.Operation("open"), logger.Error(err))
		return fmt.Errorf("open: %w", err)
	}

	log.DebugContext(ctx, "opened", logger.Operation("open"))

	return writeFields(out, format, field{"plaintext", plaintext})
}
