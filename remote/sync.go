package remote

import (
	"context"
	"errors"
	"log/slog"
)

// Sync performs the versioned write: it reads the current version marker of
// the target document, then issues a conditional write against it. A missing
// document (or an unreadable version) downgrades to create semantics; a
// concurrent change between the read and the write surfaces as the remote
// store's conflict rejection, never as a silent overwrite.
func (s *GithubStore) Sync(ctx context.Context, c Coordinates, content []byte, message string) (*WriteResult, error) {
	priorVersion, err := s.CurrentVersion(ctx, c)
	if err != nil {
		var storeErr *StoreError
		if errors.As(err, &storeErr) {
			slog.Warn("remote: version read failed, writing as create",
				"status", storeErr.Status,
				"path", c.Path,
			)

			priorVersion = ""
		} else {
			return nil, err
		}
	}

	return s.Write(ctx, c, content, message, priorVersion)
}
