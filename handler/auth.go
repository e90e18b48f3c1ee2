package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/thanzeeha/portfolio4/handler/payload"
	"github.com/thanzeeha/portfolio4/pkg/auth"
	"github.com/thanzeeha/portfolio4/pkg/endpoint"
	"github.com/thanzeeha/portfolio4/pkg/middleware"
	"github.com/thanzeeha/portfolio4/pkg/portal"
)

// AuthHandler opens and closes admin edit sessions. Login exchanges the
// shared operator secret for a bearer token; logout revokes the token for the
// remainder of its lifetime.
type AuthHandler struct {
	Gate *auth.Gate
}

func MakeAuthHandler(gate *auth.Gate) AuthHandler {
	return AuthHandler{Gate: gate}
}

func (h AuthHandler) Login(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	defer portal.CloseWithLog(r.Body)

	req, err := endpoint.ParseRequestBody[payload.LoginRequest](r)
	if err != nil {
		slog.Error("failed to parse login request body", "err", err)

		return endpoint.BadRequestError("invalid request body")
	}

	if req.Password == "" {
		return endpoint.BadRequestError("password is required")
	}

	token, err := h.Gate.Login(req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return &endpoint.ApiError{Message: "invalid credentials", Status: http.StatusUnauthorized}
		}

		return endpoint.LogInternalError("could not open admin session", err)
	}

	resp := endpoint.NewNoCacheResponse(w, r)

	if err := resp.RespondOk(payload.TokenResponse{Token: token}); err != nil {
		return endpoint.LogInternalError("could not encode login response", err)
	}

	return nil
}

func (h AuthHandler) Logout(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		return endpoint.UnauthorisedError("no active session")
	}

	h.Gate.Logout(session.Token)

	resp := endpoint.NewNoCacheResponse(w, r)

	if err := resp.RespondOk(payload.LogoutResponse{Message: "session closed"}); err != nil {
		return endpoint.LogInternalError("could not encode logout response", err)
	}

	return nil
}
