package auth

import (
	"errors"

	"github.com/thanzeeha/portfolio4/pkg/cache"
	"github.com/thanzeeha/portfolio4/pkg/portal"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const sessionSubject = "admin"

// Gate is the admin session gate. It has two states, public and
// authenticated: Login moves a caller to authenticated by handing out a
// session token, Logout revokes it unconditionally. Sessions are held in
// process memory only; nothing survives a restart.
type Gate struct {
	verifier CredentialVerifier
	tokens   JWTHandler
	revoked  *cache.TTLCache
}

func MakeGate(verifier CredentialVerifier, tokens JWTHandler) *Gate {
	return &Gate{
		verifier: verifier,
		tokens:   tokens,
		revoked:  cache.NewTTLCache(),
	}
}

// Login verifies the submitted secret and, on success, issues a session
// token. On mismatch the gate stays public and ErrInvalidCredentials is
// returned.
func (g *Gate) Login(candidate string) (string, error) {
	if !g.verifier.Verify(candidate) {
		return "", ErrInvalidCredentials
	}

	token, err := g.tokens.Generate(sessionSubject)

	if err != nil {
		return "", err
	}

	return token, nil
}

// Logout revokes the session token unconditionally. The revocation entry
// lives as long as the token could still be valid.
func (g *Gate) Logout(token string) {
	g.revoked.Mark(revocationKey(token), g.tokens.TTL)
}

// Session validates a session token, rejecting revoked ones.
func (g *Gate) Session(token string) (*Claims, error) {
	if g.revoked.Used(revocationKey(token)) {
		return nil, errors.New("session has been logged out")
	}

	return g.tokens.Validate(token)
}

func revocationKey(token string) string {
	return portal.Sha256Hex([]byte(token))
}
