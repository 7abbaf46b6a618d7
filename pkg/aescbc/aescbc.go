package aescbc

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"unicode/utf8"

	"github.com/helperkit/cryptokit/pkg/random"
)

const (
	// KeySize is the required key size for AES-256.
	KeySize = 32

	// BlockSize is the AES block size.
	BlockSize = aes.BlockSize

	// IVSize is the CBC initialization vector size, equal to one block.
	IVSize = BlockSize
)

// GenerateIV returns a fresh random IV of IVSize bytes.
func GenerateIV() []byte {
	return random.Bytes(IVSize)
}

// Encrypt encrypts plaintext with AES-256-CBC and PKCS#7 padding.
// The IV must be unique for every call made with the same key.
func Encrypt(key []byte, plaintext string, iv []byte) ([]byte, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	if plaintext == "" {
		return nil, errors.Join(ErrInvalidArgument, ErrEmptyPlaintext)
	}
	if !utf8.ValidString(plaintext) {
		return nil, errors.Join(ErrInvalidArgument, ErrInvalidUTF8)
	}
	if err := ValidateIV(iv); err != nil {
		return nil, err
	}

	return encrypt(key, []byte(plaintext), iv)
}

// Decrypt reverses Encrypt. Wrong keys, wrong IVs and corrupted data are all
// reported as ErrDecryptionFailed.
func Decrypt(key []byte, ciphertext []byte, iv []byte) (string, error) {
	if err := ValidateKey(key); err != nil {
		return "", err
	}
	if len(ciphertext) == 0 {
		return "", errors.Join(ErrInvalidArgument, ErrEmptyCiphertext)
	}
	if len(ciphertext)%BlockSize != 0 {
		return "", ErrInvalidCiphertext
	}
	if err := ValidateIV(iv); err != nil {
		return "", err
	}

	plain, err := decrypt(key, ciphertext, iv)
	if err != nil {
		return "", err
	}
	defer zero(plain)

	// Encrypt never produces an empty plaintext.
	if len(plain) == 0 || !utf8.Valid(plain) {
		return "", ErrDecryptionFailed
	}

	return string(plain), nil
}

// encrypt expects validated arguments.
func encrypt(key, data, iv []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}

	padded := pad(data, BlockSize)
	defer zero(padded)

	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return ciphertext, nil
}

// decrypt expects validated arguments. The returned slice aliases a buffer
// the caller must zero once it is done with it.
func decrypt(key, ciphertext, iv []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	buf := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(buf, ciphertext)

	plain, ok := unpad(buf, BlockSize)
	if !ok {
		zero(buf)
		return nil, ErrDecryptionFailed
	}

	return plain, nil
}
