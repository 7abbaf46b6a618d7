package digest

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// Size is the length of a rendered digest in characters.
const Size = sha256.Size * 2

// Hash returns the SHA-256 digest of the UTF-8 bytes of input as lowercase hex.
func Hash(input string) string {
	return HashBytes([]byte(input))
}

// HashBytes returns the SHA-256 digest of b as lowercase hex.
func HashBytes(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// Verify reports whether hexDigest is the digest of input.
// The comparison ignores hex letter case and runs in constant time.
func Verify(input, hexDigest string) bool {
	if len(hexDigest) != Size {
		return false
	}
	return subtle.ConstantTimeCompare(
		[]byte(Hash(input)),
		[]byte(strings.ToLower(hexDigest)),
	) == 1
}
