package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/thanzeeha/portfolio4/document"
	"github.com/thanzeeha/portfolio4/pkg/portal"
)

const DefaultMessage = "Auto update"

// PushRequest is the gateway ingress payload.
type PushRequest struct {
	Owner   string `json:"owner"`
	Repo    string `json:"repo"`
	Path    string `json:"path"`
	Content string `json:"content"`
	Branch  string `json:"branch"`
	Message string `json:"message"`
}

// PushError carries the gateway's failure payload back to the operator.
type PushError struct {
	Status int
	Body   []byte
}

func (e *PushError) Error() string {
	return fmt.Sprintf("push rejected with status %d: %s", e.Status, strings.TrimSpace(string(e.Body)))
}

// Pusher submits documents to the gateway's ingress endpoint. Pushes are
// single-flight: a push in progress blocks a new one, so writes reach the
// gateway in the order they were issued.
type Pusher struct {
	mu         sync.Mutex
	client     *portal.Client
	ingressURL string
	target     Coordinates
	message    string
}

func MakePusher(client *portal.Client, ingressURL string, target Coordinates, message string) (*Pusher, error) {
	if ingressURL == "" {
		return nil, fmt.Errorf("remote: ingress url is required")
	}

	if err := target.Check(); err != nil {
		return nil, err
	}

	if target.Branch == "" {
		target.Branch = "main"
	}

	if message == "" {
		message = DefaultMessage
	}

	return &Pusher{
		client:     client,
		ingressURL: ingressURL,
		target:     target,
		message:    message,
	}, nil
}

// Push serializes the document canonically and submits it. On success it
// returns the resulting change identifier; on failure neither local nor
// remote state has been touched from the caller's perspective.
func (p *Pusher) Push(ctx context.Context, doc document.Document) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	content, err := doc.Canonical()
	if err != nil {
		return "", fmt.Errorf("remote: serialize document: %w", err)
	}

	payload := PushRequest{
		Owner:   p.target.Owner,
		Repo:    p.target.Repo,
		Path:    p.target.Path,
		Content: string(content),
		Branch:  p.target.Branch,
		Message: p.message,
	}

	exchange, err := p.client.Send(ctx, http.MethodPost, p.ingressURL, payload)
	if err != nil {
		return "", fmt.Errorf("remote: submit push: %w", err)
	}

	if !exchange.Ok() {
		return "", &PushError{Status: exchange.Status, Body: exchange.Body}
	}

	var result struct {
		Commit struct {
			Sha string `json:"sha"`
		} `json:"commit"`
	}

	if err := json.Unmarshal(exchange.Body, &result); err != nil {
		return "", fmt.Errorf("remote: decode push response: %w", err)
	}

	return result.Commit.Sha, nil
}
