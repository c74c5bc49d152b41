package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword computes the SHA-256 digest of the given password and returns
// it as a hex-encoded string. The result is compared against the configured
// administrator password hash, so the plaintext password never needs to be
// stored or configured.
//
// Example usage:
//
//	digest := utils.HashPassword("correct horse battery staple")
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// SecureCompare reports whether two hex-encoded digests are equal using a
// constant-time comparison, so the check does not leak how many leading
// characters matched.
func SecureCompare(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}
