// Package digest fingerprints text with SHA-256 and renders the result as a
// 64-character lowercase hexadecimal string.
//
// Hashing is deterministic and stateless:
//
//	digest.Hash("abc") // ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad
//
// Verify recomputes the digest and compares it in constant time, which makes
// it suitable for checking stored fingerprints of codes or tokens.
package digest
