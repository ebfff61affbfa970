// Package digest computes content digests for rendered artifacts.
//
// Digests are BLAKE2b-256 in lowercase hex; fingerprints are the first
// 10 bytes of the same hash, for display.
package digest
