// Package auth implements the admin session gate: credential verification
// against the configured shared secret, and session tokens for the
// authenticated state.
package auth

import (
	"crypto/subtle"
	"strings"

	"github.com/thanzeeha/portfolio4/pkg/portal"
)

// CredentialVerifier checks a submitted secret against the configured one.
// The comparison strategy (plain or hashed) is an implementation detail;
// callers only see the boolean outcome.
type CredentialVerifier interface {
	Verify(candidate string) bool
}

// PlainVerifier compares the candidate against the configured secret in
// constant time.
type PlainVerifier struct {
	secret string
}

func MakePlainVerifier(secret string) PlainVerifier {
	return PlainVerifier{secret: strings.TrimSpace(secret)}
}

func (v PlainVerifier) Verify(candidate string) bool {
	if v.secret == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(v.secret), []byte(candidate)) == 1
}

// HashedVerifier compares the SHA-256 digest of the candidate against the
// configured digest, so the plain secret never has to live in configuration.
type HashedVerifier struct {
	password *portal.Password
}

func MakeHashedVerifier(hash string) (HashedVerifier, error) {
	password, err := portal.NewPasswordFromHash(hash)

	if err != nil {
		return HashedVerifier{}, err
	}

	return HashedVerifier{password: password}, nil
}

func (v HashedVerifier) Verify(candidate string) bool {
	return v.password.Is(candidate)
}
