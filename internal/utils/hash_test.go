package utils

import (
	"encoding/hex"
	"testing"
)

func TestHashPassword_Deterministic(t *testing.T) {
	first := HashPassword("secret")
	second := HashPassword("secret")

	if first != second {
		t.Errorf("expected identical digests, got %s and %s", first, second)
	}
}

func TestHashPassword_HexEncoded(t *testing.T) {
	digest := HashPassword("secret")

	if len(digest) != 64 {
		t.Fatalf("expected 64-char hex digest, got %d chars", len(digest))
	}
	if _, err := hex.DecodeString(digest); err != nil {
		t.Errorf("expected valid hex, got error: %v", err)
	}
}

func TestHashPassword_KnownVector(t *testing.T) {
	// sha256("") is a well-known constant
	digest := HashPassword("")
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

	if digest != want {
		t.Errorf("expected %s, got %s", want, digest)
	}
}

func TestHashPassword_DifferentInputsDiffer(t *testing.T) {
	if HashPassword("secret") == HashPassword("Secret") {
		t.Error("expected different digests for different inputs")
	}
}

func TestSecureCompare(t *testing.T) {
	digest := HashPassword("secret")

	if !SecureCompare(digest, HashPassword("secret")) {
		t.Error("expected equal digests to compare equal")
	}
	if SecureCompare(digest, HashPassword("other")) {
		t.Error("expected different digests to compare unequal")
	}
	if SecureCompare(digest, "") {
		t.Error("expected digest and empty string to compare unequal")
	}
}
