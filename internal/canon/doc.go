// Package canon produces deterministic byte forms and domain-separated
// digests for content-addressed identity.
//
// The canonical form is a restricted JSON rendering: object keys sorted by
// UTF-16 code units, strings NFC-normalized, integers and booleans rendered
// exactly, floats and nulls rejected. It is a hashing encoding, not an
// interchange format; the only requirement is that structurally equal
// values always produce identical bytes.
//
// Digests are SHA-256 over domain || 0x00 || canonical-form, hex encoded.
// The null separator keeps the domain/data boundary unambiguous, and the
// domain string prevents values of different kinds from ever colliding.
package canon
