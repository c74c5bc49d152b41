// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

var (
	// ErrNoKeyConfigured is returned when no encryption key material is
	// present in the configuration. The operation cannot proceed and must
	// not be retried silently.
	ErrNoKeyConfigured = errors.New("encryption key is not configured")

	// ErrDecryptFailed is returned for any unreadable blob: wrong length,
	// bad base64, or an authentication-tag mismatch. Callers treat the
	// record as unavailable; the error never carries partial plaintext.
	ErrDecryptFailed = errors.New("failed to decrypt data")
)

const (
	keyLength = 32 // 256 bits
	ivLength  = 16 // 128 bits
	tagLength = 16 // 128 bits

	// pbkdf2Iterations is the PBKDF2-SHA256 work factor applied when the
	// configured key is a passphrase rather than raw key material.
	pbkdf2Iterations = 100_000

	// defaultKDFSalt is used when no salt override is configured. The salt
	// is fixed per deployment: the derived key must be stable across
	// restarts or previously sealed records become unreadable.
	defaultKDFSalt = "guestdesk_checkin_salt"
)

// vault is the private implementation of [Vault].
type vault struct {
	// key is the operator-supplied key material: base64, hex, or a
	// passphrase. Resolved to raw bytes on every call so a rotated secret
	// takes effect without a restart.
	key string

	// kdfSalt is the PBKDF2 salt for passphrase keys. Empty means
	// defaultKDFSalt.
	kdfSalt string
}

// NewVault constructs a [Vault] from operator-supplied key material and an
// optional KDF salt override. The key is not validated here: a missing key
// surfaces as ErrNoKeyConfigured on first use, matching the call-time
// validation contract for rotating secrets.
func NewVault(key, kdfSalt string) Vault {
	return &vault{key: key, kdfSalt: kdfSalt}
}

// encryptionKey resolves the configured key material to 32 raw bytes.
// The exact string length discriminates the encoding without ambiguity:
// 44 characters is the base64 form of 32 bytes, 64 characters the hex form,
// anything else is treated as a passphrase and stretched with PBKDF2.
func (v *vault) encryptionKey() ([]byte, error) {
	if v.key == "" {
		return nil, ErrNoKeyConfigured
	}

	switch len(v.key) {
	case 44:
		key, err := base64.StdEncoding.DecodeString(v.key)
		if err != nil {
			return nil, fmt.Errorf("decode base64 key: %w", err)
		}
		return key, nil
	case 64:
		key, err := hex.DecodeString(v.key)
		if err != nil {
			return nil, fmt.Errorf("decode hex key: %w", err)
		}
		return key, nil
	}

	salt := v.kdfSalt
	if salt == "" {
		salt = defaultKDFSalt
	}

	return pbkdf2.Key([]byte(v.key), []byte(salt), pbkdf2Iterations, keyLength, sha256.New), nil
}

// Encrypt implements [Vault]. It seals plaintext with AES-256-GCM under a
// fresh random 16-byte IV and returns base64(iv ‖ tag ‖ ciphertext).
func (v *vault) Encrypt(plaintext []byte) (string, error) {
	key, err := v.encryptionKey()
	if err != nil {
		return "", err
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	iv := make([]byte, ivLength)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	// Seal appends the tag after the ciphertext; the stored layout puts the
	// tag first so Decrypt can split by fixed-width prefix.
	sealed := gcm.Seal(nil, iv, plaintext, nil)
	ciphertext, tag := sealed[:len(sealed)-tagLength], sealed[len(sealed)-tagLength:]

	blob := make([]byte, 0, ivLength+tagLength+len(ciphertext))
	blob = append(blob, iv...)
	blob = append(blob, tag...)
	blob = append(blob, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [Vault]. It splits base64(iv ‖ tag ‖ ciphertext) by
// fixed widths, verifies the authentication tag, and returns the plaintext.
// Every failure mode collapses into ErrDecryptFailed.
func (v *vault) Decrypt(blob string) ([]byte, error) {
	key, err := v.encryptionKey()
	if err != nil {
		return nil, err
	}

	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptFailed, err)
	}
	if len(raw) < ivLength+tagLength {
		return nil, fmt.Errorf("%w: blob too short", ErrDecryptFailed)
	}

	iv := raw[:ivLength]
	tag := raw[ivLength : ivLength+tagLength]
	ciphertext := raw[ivLength+tagLength:]

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	// gcm.Open expects ciphertext ‖ tag.
	sealed := make([]byte, 0, len(ciphertext)+tagLength)
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := gcm.Open(nil, iv, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptFailed, err)
	}

	return plaintext, nil
}

// EncryptObject implements [Vault].
func (v *vault) EncryptObject(value any) (string, error) {
	plaintext, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("marshal data: %w", err)
	}

	return v.Encrypt(plaintext)
}

// DecryptObject implements [Vault].
func (v *vault) DecryptObject(blob string, target any) error {
	plaintext, err := v.Decrypt(blob)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("%w: unmarshal plaintext: %w", ErrDecryptFailed, err)
	}

	return nil
}

// Hash implements [Vault].
func (v *vault) Hash(data string) string {
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])
}

// GenerateKey produces fresh high-entropy key material (32 random bytes,
// base64-encoded) suitable for the CHECKIN_ENCRYPTION_KEY setting. It is a
// provisioning-time helper and is never called on a request path.
func GenerateKey() (string, error) {
	key := make([]byte, keyLength)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return "", fmt.Errorf("generate key: %w", err)
	}

	return base64.StdEncoding.EncodeToString(key), nil
}

// newGCM builds an AES-256-GCM AEAD with the 16-byte nonce size the blob
// layout mandates.
func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCMWithNonceSize(block, ivLength)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
