package token

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
)

// rawSize is the number of random bytes per token, 256 bits of entropy.
const rawSize = 32

// Generate returns a new raw token and the digest to persist for it.
func Generate() (raw string, digest string, err error) {
	buf := make([]byte, rawSize)
	if _, err := rand.Read(buf); err != nil {
		return "", "", errors.Join(ErrFailedToGenerate, err)
	}

	raw = hex.EncodeToString(buf)
	return raw, Digest(raw), nil
}

// Digest computes the hex-encoded SHA-256 digest of a raw token. This is the
// only form a token may take at rest.
func Digest(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// Match reports whether the presented raw token corresponds to the stored
// digest. The comparison is constant-time.
func Match(raw, storedDigest string) bool {
	computed := Digest(raw)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedDigest)) == 1
}
