package canon

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Digest computes the domain-separated digest of v's canonical form.
// Equal values under equal domains always digest identically; distinct
// domains never collide even for identical values.
func Digest(domain string, v any) (string, error) {
	data, err := Marshal(v)
	if err != nil {
		return "", fmt.Errorf("digest %s: %w", domain, err)
	}
	return DigestBytes(domain, data), nil
}

// DigestBytes computes the domain-separated digest of raw bytes:
// hex(SHA256(domain || 0x00 || raw)).
func DigestBytes(domain string, raw []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(raw)
	return hex.EncodeToString(h.Sum(nil))
}

// MustDigest is Digest for values known to be canonicalizable, such as
// forms built entirely from strings and ints. It panics on error.
func MustDigest(domain string, v any) string {
	d, err := Digest(domain, v)
	if err != nil {
		panic(err)
	}
	return d
}
