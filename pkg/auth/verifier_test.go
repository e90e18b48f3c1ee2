package auth

import (
	"testing"

	"github.com/thanzeeha/portfolio4/pkg/portal"
)

func TestPlainVerifier(t *testing.T) {
	v := MakePlainVerifier("nafee123")

	if !v.Verify("nafee123") {
		t.Fatalf("expected match")
	}

	if v.Verify("nafee124") || v.Verify("") {
		t.Fatalf("expected mismatch")
	}
}

func TestPlainVerifierEmptySecretRejectsEverything(t *testing.T) {
	v := MakePlainVerifier("   ")

	if v.Verify("") || v.Verify("anything") {
		t.Fatalf("empty secret must never verify")
	}
}

func TestHashedVerifier(t *testing.T) {
	hash := portal.Sha256Hex([]byte("admin"))

	v, err := MakeHashedVerifier(hash)
	if err != nil {
		t.Fatalf("make: %v", err)
	}

	if !v.Verify("admin") {
		t.Fatalf("expected match")
	}

	if v.Verify("Admin") {
		t.Fatalf("expected mismatch")
	}
}

func TestHashedVerifierRejectsBadDigest(t *testing.T) {
	if _, err := MakeHashedVerifier("not-a-digest"); err == nil {
		t.Fatalf("expected error")
	}
}
