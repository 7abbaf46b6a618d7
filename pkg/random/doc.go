// Package random is the single source of secure randomness for the module.
//
// Every helper reads from crypto/rand. There is no seeding, no per-goroutine
// generator and no package state, so all functions are safe for concurrent use.
//
// # Usage
//
//	import "github.com/helperkit/cryptokit/pkg/random"
//
//	iv := random.Bytes(16)
//
//	n, err := random.Intn(10) // uniform in [0, 10)
//	if err != nil {
//	    // handle error
//	}
//
// Intn uses rejection sampling (crypto/rand.Int), so results carry no modulo
// bias even for bounds that are not powers of two.
package random
