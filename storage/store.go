package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/thanzeeha/portfolio4/document"
)

// Store persists the profile document as canonical JSON under a fixed file
// path. Reads are total: any missing, unreadable or corrupt file yields the
// built-in default document instead of an error, so callers always have
// something to render.
type Store struct {
	mu   sync.Mutex
	path string
}

func MakeStore(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("storage: content file path is required")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: create content dir: %w", err)
	}

	return &Store{path: path}, nil
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the stored document, or the built-in default when nothing
// valid is stored. It never fails.
func (s *Store) Load() document.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("storage: read content file", "path", s.path, "error", err)
		}

		return document.Default()
	}

	doc, err := document.Parse(data)
	if err != nil {
		slog.Warn("storage: stored content is corrupt, serving default", "path", s.path, "error", err)

		return document.Default()
	}

	return doc
}

// Save writes the document's canonical form. Failures are logged and
// swallowed: the working copy the caller holds remains authoritative for the
// session either way.
func (s *Store) Save(doc document.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := doc.Canonical()
	if err != nil {
		slog.Error("storage: encode content", "error", err)

		return
	}

	if err := writeAtomic(s.path, data); err != nil {
		slog.Error("storage: write content file", "path", s.path, "error", err)
	}
}

// Reset removes the stored document so the next Load yields the default.
// Resetting an empty store is a no-op.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("storage: remove content file", "path", s.path, "error", err)
	}
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".content-*.tmp")
	if err != nil {
		return err
	}

	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()

		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
