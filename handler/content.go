package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/thanzeeha/portfolio4/handler/payload"
	"github.com/thanzeeha/portfolio4/metal/env"
	"github.com/thanzeeha/portfolio4/pkg/endpoint"
	"github.com/thanzeeha/portfolio4/pkg/portal"
	"github.com/thanzeeha/portfolio4/remote"
)

// ContentHandler is the gateway ingress: the only component that can write
// to the remote store. It reads the target's current version and issues a
// conditional write, so concurrent writers surface as conflicts instead of
// silent overwrites. The write credential stays on this side of the trust
// boundary; it never appears in responses or error payloads.
type ContentHandler struct {
	Remote *env.RemoteEnvironment
	Store  *remote.GithubStore
}

func MakeContentHandler(remoteEnv *env.RemoteEnvironment, store *remote.GithubStore) ContentHandler {
	return ContentHandler{
		Remote: remoteEnv,
		Store:  store,
	}
}

func (h ContentHandler) Handle(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	if r.Method != http.MethodPost {
		return endpoint.MethodNotAllowed("Method not allowed")
	}

	defer portal.CloseWithLog(r.Body)

	// the credential check comes before any look at the body: an
	// unconfigured gateway answers 500 no matter what was sent
	if !h.Remote.HasToken() {
		slog.Error("content gateway invoked without a configured write credential")

		return endpoint.InternalError("GitHub token not configured")
	}

	req, err := endpoint.ParseRequestBody[payload.UpdateContentRequest](r)
	if err != nil {
		return endpoint.LogBadRequestError("invalid request body", err)
	}

	if req.Owner == "" || req.Repo == "" || req.Path == "" || req.Content == "" {
		return endpoint.BadRequestError("owner, repo, path and content are required")
	}

	branch := req.Branch
	if branch == "" {
		branch = "main"
	}

	message := req.Message
	if message == "" {
		message = remote.DefaultMessage
	}

	coords := remote.Coordinates{
		Owner:  req.Owner,
		Repo:   req.Repo,
		Path:   req.Path,
		Branch: branch,
	}

	result, err := h.Store.Sync(r.Context(), coords, []byte(req.Content), message)
	if err != nil {
		var storeErr *remote.StoreError
		if errors.As(err, &storeErr) {
			return endpoint.StatusError(storeErr.Status, "remote store rejected the write", storeErr.Detail())
		}

		return endpoint.LogInternalError("could not reach the remote store", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)

	// success payloads pass through verbatim so the caller sees the
	// store's change identifier untouched
	if _, err := w.Write(result.Body); err != nil {
		slog.Error("could not write content gateway response", "error", err)
	}

	return nil
}
