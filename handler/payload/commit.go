package payload

import "encoding/json"

// CommitRequest carries the full serialized document to persist, plus an
// optional request to push it to the remote store in the same call.
type CommitRequest struct {
	Content json.RawMessage `json:"content"`
	Sync    bool            `json:"sync"`
}

type CommitResponse struct {
	Version  string `json:"version"`
	ChangeID string `json:"changeId,omitempty"`
}
