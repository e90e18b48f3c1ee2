package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/thanzeeha/portfolio4/handler/payload"
	"github.com/thanzeeha/portfolio4/pkg/auth"
	"github.com/thanzeeha/portfolio4/pkg/middleware"
	"github.com/thanzeeha/portfolio4/pkg/portal"
)

func makeTestAuth(t *testing.T) (*auth.Gate, AuthHandler) {
	t.Helper()

	tokens, err := auth.MakeJWTHandler([]byte("0123456789abcdef0123456789abcdef"), time.Hour)
	if err != nil {
		t.Fatalf("make jwt handler: %v", err)
	}

	gate := auth.MakeGate(auth.MakePlainVerifier("open sesame"), tokens)

	return gate, MakeAuthHandler(gate)
}

func TestLoginIssuesToken(t *testing.T) {
	gate, h := makeTestAuth(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"password":"open sesame"}`))
	rec := httptest.NewRecorder()

	if apiErr := h.Login(rec, req); apiErr != nil {
		t.Fatalf("unexpected error: %+v", apiErr)
	}

	var resp payload.TokenResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if _, err := gate.Session(resp.Token); err != nil {
		t.Fatalf("issued token must open a session: %v", err)
	}
}

func TestLoginRejectsWrongSecret(t *testing.T) {
	_, h := makeTestAuth(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"password":"guess"}`))

	apiErr := h.Login(httptest.NewRecorder(), req)
	if apiErr == nil || apiErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %+v", apiErr)
	}
}

func TestLoginRequiresPassword(t *testing.T) {
	_, h := makeTestAuth(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{}`))

	apiErr := h.Login(httptest.NewRecorder(), req)
	if apiErr == nil || apiErr.Status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %+v", apiErr)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	gate, h := makeTestAuth(t)

	token, err := gate.Login("open sesame")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims, err := gate.Session(token)
	if err != nil {
		t.Fatalf("session: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	ctx := context.WithValue(req.Context(), portal.AuthSessionKey, &middleware.Session{Token: token, Claims: claims})
	req = req.WithContext(ctx)

	if apiErr := h.Logout(httptest.NewRecorder(), req); apiErr != nil {
		t.Fatalf("unexpected error: %+v", apiErr)
	}

	if _, err := gate.Session(token); err == nil {
		t.Fatal("token must be revoked after logout")
	}
}

func TestLogoutWithoutSessionFails(t *testing.T) {
	_, h := makeTestAuth(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)

	apiErr := h.Logout(httptest.NewRecorder(), req)
	if apiErr == nil || apiErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %+v", apiErr)
	}
}
