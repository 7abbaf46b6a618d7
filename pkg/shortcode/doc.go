// Package shortcode generates short random identifiers, readable codes and
// numeric one-time codes.
//
// Characters are drawn uniformly from an alphabet with pkg/random, so the
// output is suitable for invite codes, confirmation codes and public IDs.
//
// # Alphabets
//
//   - AllChars: A-Z and a-z.
//   - ReadableChars: digits and capitals without look-alikes (no 0/O, 1/I/L, etc.).
//   - AlphaNumeric: A-Z, a-z and 0-9.
//   - Digits: 0-9.
//
// # Usage
//
//	import "github.com/helperkit/cryptokit/pkg/shortcode"
//
//	id, _ := shortcode.ID("usr_", 0)          // "usr_" + 14 letters
//	code, _ := shortcode.ReadableID("INV-", 0) // "INV-" + 8 readable chars
//	otp, _ := shortcode.RandomNumber(6)        // e.g. "052047"
package shortcode
