// Package idempotency computes the RFC 8785 JSON Canonicalization Scheme
// (JCS) digest of an HTTP request body used to back the Idempotency-Key
// layer of C3 (spec §4.5): two requests with the same key but different
// bodies are a client error, not a silent replay.
package idempotency

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/gowebpki/jcs"
)

// ErrBodyMismatch is returned by Verify when a previously-seen
// idempotency key is reused with a body that canonicalizes differently.
var ErrBodyMismatch = errors.New("idempotency: request body does not match the original request for this key")

// Hash canonicalizes rawBody per RFC 8785 and returns its hex-encoded
// SHA-256 digest. rawBody must be valid JSON.
func Hash(rawBody []byte) (string, error) {
	canonical, err := jcs.Transform(rawBody)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// Verify recomputes the digest of rawBody and compares it against
// storedHash, the digest recorded against the idempotency key on first
// use. A mismatch means the same key is being replayed against a
// different logical request.
func Verify(rawBody []byte, storedHash string) error {
	got, err := Hash(rawBody)
	if err != nil {
		return err
	}
	if got != storedHash {
		return ErrBodyMismatch
	}
	return nil
}
