package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/thanzeeha/portfolio4/document"
	"github.com/thanzeeha/portfolio4/editor"
	"github.com/thanzeeha/portfolio4/handler/payload"
	"github.com/thanzeeha/portfolio4/pkg/endpoint"
	"github.com/thanzeeha/portfolio4/pkg/portal"
	"github.com/thanzeeha/portfolio4/remote"
	"github.com/thanzeeha/portfolio4/storage"
)

// AdminHandler owns the authenticated mutation surface: committing a new
// document revision, exporting a backup, and resetting to the built-in
// default. All routes behind it require an open admin session.
type AdminHandler struct {
	Store   *storage.Store
	Remote  *remote.GithubStore
	Coords  remote.Coordinates
	Message string
}

func MakeAdminHandler(store *storage.Store, remoteStore *remote.GithubStore, coords remote.Coordinates, message string) AdminHandler {
	if message == "" {
		message = remote.DefaultMessage
	}

	return AdminHandler{
		Store:   store,
		Remote:  remoteStore,
		Coords:  coords,
		Message: message,
	}
}

// Commit validates and persists a full document revision. When the request
// asks for sync, the committed document is also written to the remote store
// through the versioned-write path.
func (h AdminHandler) Commit(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	defer portal.CloseWithLog(r.Body)

	req, err := endpoint.ParseRequestBody[payload.CommitRequest](r)
	if err != nil {
		return endpoint.LogBadRequestError("invalid request body", err)
	}

	if len(req.Content) == 0 {
		return endpoint.BadRequestError("content is required")
	}

	doc, err := editor.ValidateImport(req.Content)
	if err != nil {
		return endpoint.UnprocessableEntity("invalid document", map[string]any{
			"error": err.Error(),
		})
	}

	h.Store.Save(doc)

	response := payload.CommitResponse{Version: doc.Version()}

	if req.Sync {
		changeID, apiErr := h.pushRemote(r.Context(), doc)
		if apiErr != nil {
			return apiErr
		}

		response.ChangeID = changeID
	}

	resp := endpoint.NewNoCacheResponse(w, r)

	if err := resp.RespondOk(response); err != nil {
		return endpoint.LogInternalError("could not encode commit response", err)
	}

	return nil
}

func (h AdminHandler) pushRemote(ctx context.Context, doc document.Document) (string, *endpoint.ApiError) {
	if h.Remote == nil {
		return "", endpoint.InternalError("remote synchronization is not configured")
	}

	content, err := doc.Canonical()
	if err != nil {
		return "", endpoint.LogInternalError("could not serialize document", err)
	}

	result, err := h.Remote.Sync(ctx, h.Coords, content, h.Message)
	if err != nil {
		var storeErr *remote.StoreError
		if errors.As(err, &storeErr) {
			return "", endpoint.StatusError(storeErr.Status, "remote store rejected the write", storeErr.Detail())
		}

		return "", endpoint.LogInternalError("could not reach the remote store", err)
	}

	return result.ChangeID, nil
}

// Export streams the committed document as a backup file in its canonical
// form.
func (h AdminHandler) Export(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	doc := h.Store.Load()

	data, err := doc.Canonical()
	if err != nil {
		return endpoint.LogInternalError("could not serialize document", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="portfolio-backup.json"`)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(data); err != nil {
		return endpoint.LogInternalError(fmt.Sprintf("could not write backup of version %s", doc.Version()), err)
	}

	return nil
}

// Reset clears the stored document; the next load serves the built-in
// default, which is echoed back here.
func (h AdminHandler) Reset(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	h.Store.Reset()

	doc := h.Store.Load()

	resp := endpoint.NewNoCacheResponse(w, r)

	if err := resp.RespondOk(doc); err != nil {
		return endpoint.LogInternalError("could not encode reset response", err)
	}

	return nil
}
