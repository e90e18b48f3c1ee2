package handler

import (
	"log/slog"
	"net/http"

	"github.com/thanzeeha/portfolio4/pkg/endpoint"
	"github.com/thanzeeha/portfolio4/storage"
)

// ProfileHandler serves the committed profile document to the public site.
type ProfileHandler struct {
	store *storage.Store
}

func MakeProfileHandler(store *storage.Store) ProfileHandler {
	return ProfileHandler{store: store}
}

func (h ProfileHandler) Handle(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	doc := h.store.Load()

	resp := endpoint.NewResponseFrom(doc.Version(), w, r)

	if resp.HasCache() {
		resp.RespondWithNotModified()

		return nil
	}

	if err := resp.RespondOk(doc); err != nil {
		slog.Error("Error marshaling JSON for profile response", "error", err)

		return nil
	}

	return nil
}
