package aescbc

import (
	"encoding/base64"
	"errors"
)

// Seal encrypts plaintext under a freshly generated IV and returns iv || ciphertext.
func Seal(key []byte, plaintext string) ([]byte, error) {
	iv := GenerateIV()

	ciphertext, err := Encrypt(key, plaintext, iv)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(iv)+len(ciphertext))
	out = append(out, iv...)
	return append(out, ciphertext...), nil
}

// Open decrypts the output of Seal.
func Open(key []byte, sealed []byte) (string, error) {
	if err := ValidateKey(key); err != nil {
		return "", err
	}
	if len(sealed) < IVSize+BlockSize {
		return "", ErrInvalidCiphertext
	}

	iv, ciphertext := sealed[:IVSize], sealed[IVSize:]
	return Decrypt(key, ciphertext, iv)
}

// EncryptString seals plaintext and returns it base64 encoded.
func EncryptString(key []byte, plaintext string) (string, error) {
	sealed, err := Seal(key, plaintext)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// DecryptString decodes a base64 token produced by EncryptString and opens it.
func DecryptString(key []byte, encoded string) (string, error) {
	if err := ValidateKey(key); err != nil {
		return "", err
	}

	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", errors.Join(ErrInvalidCiphertext, err)
	}

	return Open(key, sealed)
}
