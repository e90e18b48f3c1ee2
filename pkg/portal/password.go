package portal

import (
	"crypto/subtle"
	"errors"
	"strings"
)

// Password holds a one-way SHA-256 digest of a secret. The plain value is
// never retained; comparisons hash the candidate and compare digests in
// constant time.
type Password struct {
	hash string
}

func NewPassword(plain string) (*Password, error) {
	plain = strings.TrimSpace(plain)

	if plain == "" {
		return nil, errors.New("password cannot be empty")
	}

	return &Password{
		hash: Sha256Hex([]byte(plain)),
	}, nil
}

// NewPasswordFromHash wraps an already-hashed secret (hex SHA-256).
func NewPasswordFromHash(hash string) (*Password, error) {
	hash = strings.ToLower(strings.TrimSpace(hash))

	if len(hash) != 64 {
		return nil, errors.New("invalid sha-256 hex digest")
	}

	return &Password{hash: hash}, nil
}

func (p *Password) Is(candidate string) bool {
	if p == nil {
		return false
	}

	digest := Sha256Hex([]byte(candidate))

	return subtle.ConstantTimeCompare([]byte(p.hash), []byte(digest)) == 1
}

func (p *Password) GetHash() string {
	if p == nil {
		return ""
	}

	return p.hash
}
