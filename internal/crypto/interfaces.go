// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the encryption engine that seals guest check-in
// records at rest. It knows nothing about bookings, HTTP, or the database;
// its single job is turning plaintext into authenticated ciphertext and back.
package crypto

// Vault provides symmetric authenticated encryption of check-in payloads.
//
// The blob layout is fixed: iv (16 bytes) ‖ auth tag (16 bytes) ‖ ciphertext,
// base64-encoded as a whole. A fresh random IV is drawn from the OS CSPRNG on
// every Encrypt call; nonce reuse under AES-GCM destroys confidentiality, so
// the IV is never derived from the data.
//
// Key material is loaded from configuration on every call. Its exact length
// discriminates the encoding: 44 characters — base64, 64 characters — hex,
// anything else — a passphrase run through PBKDF2-SHA256 with a fixed salt
// and 100000 iterations.
type Vault interface {
	// Encrypt seals plaintext and returns the base64 blob.
	// Returns ErrNoKeyConfigured when no key material is configured.
	Encrypt(plaintext []byte) (string, error)

	// Decrypt opens a blob produced by Encrypt. Returns ErrDecryptFailed if
	// the blob is malformed, truncated, or fails the authentication check.
	// No partial plaintext is ever returned.
	Decrypt(blob string) ([]byte, error)

	// EncryptObject serializes v to JSON, then encrypts the bytes.
	EncryptObject(v any) (string, error)

	// DecryptObject decrypts a blob and unmarshals the JSON plaintext into
	// target, which must be a non-nil pointer (same contract as
	// [encoding/json.Unmarshal]). DecryptObject(EncryptObject(x)) round-trips
	// exactly for any structurally valid record.
	DecryptObject(blob string, target any) error

	// Hash returns the hex-encoded SHA-256 digest of data. One-way, keyless;
	// intended for indexing and audit logging of sensitive values without
	// storing them.
	Hash(data string) string
}
