// Package remote talks to the versioned content store. GithubStore wraps the
// GitHub contents API as a "read current version, then conditional write"
// document store; Pusher is the client-side counterpart that submits a
// document to the gateway's ingress endpoint.
package remote

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/thanzeeha/portfolio4/pkg/portal"
)

const DefaultApiURL = "https://api.github.com"

// Coordinates identify a single document in the remote store.
type Coordinates struct {
	Owner  string
	Repo   string
	Path   string
	Branch string
}

func (c Coordinates) Check() error {
	if c.Owner == "" || c.Repo == "" || c.Path == "" {
		return fmt.Errorf("remote: owner, repo and path are required")
	}

	return nil
}

// StoreError carries the remote store's failure verbatim so callers can
// propagate the upstream status and detail without rewriting it.
type StoreError struct {
	Status int
	Body   []byte
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("remote store responded %d: %s", e.Status, strings.TrimSpace(string(e.Body)))
}

// Detail decodes the upstream error body into a generic map, so it can be
// attached to an error response as diagnostic data.
func (e *StoreError) Detail() map[string]any {
	detail := make(map[string]any)

	if err := json.Unmarshal(e.Body, &detail); err != nil {
		return map[string]any{"raw": string(e.Body)}
	}

	return detail
}

// WriteResult is the successful outcome of a conditional write.
type WriteResult struct {
	ChangeID string
	Body     json.RawMessage
}

type GithubStore struct {
	client *portal.Client
	apiURL string
}

// MakeGithubStore builds a store over the given API base URL. The write
// credential is attached to every outbound request and never appears in any
// response or error produced here.
func MakeGithubStore(client *portal.Client, apiURL, token string) *GithubStore {
	if apiURL == "" {
		apiURL = DefaultApiURL
	}

	client.OnHeaders = func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Accept", "application/vnd.github+json")
	}

	return &GithubStore{
		client: client,
		apiURL: strings.TrimRight(apiURL, "/"),
	}
}

func (s *GithubStore) contentsURL(c Coordinates) string {
	return fmt.Sprintf(
		"%s/repos/%s/%s/contents/%s",
		s.apiURL,
		url.PathEscape(c.Owner),
		url.PathEscape(c.Repo),
		c.Path,
	)
}

// CurrentVersion reads the version marker (blob sha) of the document at the
// given coordinates. A missing document yields an empty marker and no error,
// which callers treat as create semantics.
func (s *GithubStore) CurrentVersion(ctx context.Context, c Coordinates) (string, error) {
	if err := c.Check(); err != nil {
		return "", err
	}

	target := s.contentsURL(c) + "?ref=" + url.QueryEscape(c.Branch)

	exchange, err := s.client.Send(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("remote: read current version: %w", err)
	}

	if exchange.Status == http.StatusNotFound {
		return "", nil
	}

	if !exchange.Ok() {
		return "", &StoreError{Status: exchange.Status, Body: exchange.Body}
	}

	var payload struct {
		Sha string `json:"sha"`
	}

	if err := json.Unmarshal(exchange.Body, &payload); err != nil {
		return "", fmt.Errorf("remote: decode version response: %w", err)
	}

	return payload.Sha, nil
}

// Write stores new content at the given coordinates. When priorVersion is
// non-empty the write is conditional: the store rejects it with a conflict if
// the document's current version no longer matches. An empty priorVersion is
// a create.
func (s *GithubStore) Write(ctx context.Context, c Coordinates, content []byte, message, priorVersion string) (*WriteResult, error) {
	if err := c.Check(); err != nil {
		return nil, err
	}

	body := map[string]any{
		"message": message,
		"content": base64.StdEncoding.EncodeToString(content),
		"branch":  c.Branch,
	}

	if priorVersion != "" {
		body["sha"] = priorVersion
	}

	exchange, err := s.client.Send(ctx, http.MethodPut, s.contentsURL(c), body)
	if err != nil {
		return nil, fmt.Errorf("remote: write content: %w", err)
	}

	if !exchange.Ok() {
		return nil, &StoreError{Status: exchange.Status, Body: exchange.Body}
	}

	var payload struct {
		Commit struct {
			Sha string `json:"sha"`
		} `json:"commit"`
	}

	if err := json.Unmarshal(exchange.Body, &payload); err != nil {
		return nil, fmt.Errorf("remote: decode write response: %w", err)
	}

	return &WriteResult{
		ChangeID: payload.Commit.Sha,
		Body:     json.RawMessage(exchange.Body),
	}, nil
}
