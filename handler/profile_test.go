package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/thanzeeha/portfolio4/document"
	"github.com/thanzeeha/portfolio4/storage"
)

func makeTestStorage(t *testing.T) *storage.Store {
	t.Helper()

	store, err := storage.MakeStore(filepath.Join(t.TempDir(), "profile.json"))
	if err != nil {
		t.Fatalf("make store: %v", err)
	}

	return store
}

func TestProfileHandlerServesDocument(t *testing.T) {
	store := makeTestStorage(t)
	h := MakeProfileHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	rec := httptest.NewRecorder()

	if apiErr := h.Handle(rec, req); apiErr != nil {
		t.Fatalf("unexpected error: %+v", apiErr)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var doc document.Document
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if doc.Name != document.Default().Name {
		t.Fatalf("expected default document, got %q", doc.Name)
	}

	if rec.Header().Get("ETag") == "" {
		t.Fatal("expected an ETag header")
	}
}

func TestProfileHandlerHonoursIfNoneMatch(t *testing.T) {
	store := makeTestStorage(t)
	h := MakeProfileHandler(store)

	first := httptest.NewRecorder()
	h.Handle(first, httptest.NewRequest(http.MethodGet, "/profile", nil))

	etag := first.Header().Get("ETag")
	if etag == "" {
		t.Fatal("expected an ETag on the first response")
	}

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("If-None-Match", etag)
	second := httptest.NewRecorder()

	if apiErr := h.Handle(second, req); apiErr != nil {
		t.Fatalf("unexpected error: %+v", apiErr)
	}

	if second.Code != http.StatusNotModified {
		t.Fatalf("expected 304, got %d", second.Code)
	}
}

func TestProfileHandlerReflectsCommittedChanges(t *testing.T) {
	store := makeTestStorage(t)
	h := MakeProfileHandler(store)

	doc := document.Default()
	doc.Tagline = "Now with more Go"
	store.Save(doc)

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/profile", nil))

	var got document.Document
	json.Unmarshal(rec.Body.Bytes(), &got)

	if got.Tagline != "Now with more Go" {
		t.Fatalf("expected updated tagline, got %q", got.Tagline)
	}
}
