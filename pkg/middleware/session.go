package middleware

import (
	"context"
	baseHttp "net/http"
	"strings"

	"github.com/thanzeeha/portfolio4/pkg/auth"
	"github.com/thanzeeha/portfolio4/pkg/endpoint"
	"github.com/thanzeeha/portfolio4/pkg/portal"
)

// SessionMiddleware guards the admin mutation surface. It validates
// Authorization Bearer session tokens against the gate and injects the claims
// into the request context, along with the raw token so logout can revoke it.
type SessionMiddleware struct {
	Gate *auth.Gate
}

type Session struct {
	Token  string
	Claims *auth.Claims
}

func MakeSessionMiddleware(gate *auth.Gate) SessionMiddleware {
	return SessionMiddleware{Gate: gate}
}

func (m SessionMiddleware) Handle(next endpoint.ApiHandler) endpoint.ApiHandler {
	return func(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
		header := strings.TrimSpace(r.Header.Get("Authorization"))

		if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			return &endpoint.ApiError{Message: "missing or invalid authorization header", Status: baseHttp.StatusUnauthorized}
		}

		tokenStr := strings.TrimSpace(header[len("bearer "):])

		claims, err := m.Gate.Session(tokenStr)
		if err != nil {
			return &endpoint.ApiError{Message: "invalid session", Status: baseHttp.StatusUnauthorized, Err: err}
		}

		session := &Session{Token: tokenStr, Claims: claims}
		ctx := context.WithValue(r.Context(), portal.AuthSessionKey, session)

		return next(w, r.WithContext(ctx))
	}
}

// GetSession extracts the admin session from the context.
func GetSession(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(portal.AuthSessionKey).(*Session)

	return session, ok
}
