// Package aescbc encrypts and decrypts UTF-8 text with AES-256 in CBC mode
// using PKCS#7 padding.
//
// The package is a set of stateless functions. Each call validates its inputs,
// builds its own cipher.Block, and zeroes the temporary plaintext buffers it
// allocated before returning, so every function is safe for concurrent use.
//
// # Architecture
//
//  1. Validation – keys must be exactly 32 bytes and IVs exactly 16 bytes. The
//     key is always checked first, before plaintext or ciphertext is inspected.
//  2. Encryption – plaintext is encoded as UTF-8, padded with PKCS#7 and
//     encrypted with cipher.NewCBCEncrypter. The output length is always
//     ceil((len(plaintext)+1)/16)*16.
//  3. Decryption – ciphertext is decrypted with cipher.NewCBCDecrypter, the
//     padding is verified in constant time over the final block and the result
//     must be valid UTF-8. Any failure at this stage is reported as the bare
//     ErrDecryptionFailed sentinel, whatever the cause.
//
// # IV uniqueness
//
// CBC is only semantically secure when an IV is never reused under the same
// key. The package does not track IVs. Callers either pass a fresh IV from
// GenerateIV to Encrypt, or use Seal / EncryptString which generate one and
// prepend it to the ciphertext.
//
// # Usage
//
//	import "github.com/helperkit/cryptokit/pkg/aescbc"
//
//	key := aescbc.GenerateKey()
//	iv := aescbc.GenerateIV()
//
//	ct, err := aescbc.Encrypt(key, "super-secret", iv)
//	if err != nil {
//	    // handle error
//	}
//
//	plain, err := aescbc.Decrypt(key, ct, iv)
//	if err != nil {
//	    // handle error
//	}
//
// Self-contained base64 tokens:
//
//	token, err := aescbc.EncryptString(key, "super-secret")
//	plain, err := aescbc.DecryptString(key, token)
//
// # Key material
//
// Keys are usually stored base64 encoded and decoded with ParseKey. Textual
// keys are converted with KeyFromString. UTF-8 is the default; data encrypted
// by systems that encoded the key with the Windows-1252 code page can still be
// read by passing KeyEncodingWindows1252 explicitly. DeriveKey stretches secret
// material of any other length to a 32-byte key with HKDF-SHA256.
//
// # Error Handling
//
// All errors wrap one of the sentinels in errors.go and are matched with
// errors.Is: ErrInvalidKeyLength, ErrInvalidIVLength, ErrInvalidArgument,
// ErrInvalidCiphertext and ErrDecryptionFailed.
package aescbc
