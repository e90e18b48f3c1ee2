package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Client struct {
	UserAgent      string
	client         *http.Client
	transport      *http.Transport
	OnHeaders      func(req *http.Request)
	AbortOnNone2xx bool
}

// Exchange carries the raw outcome of a request, including non-2xx responses,
// so callers can propagate the upstream status and error detail verbatim.
type Exchange struct {
	Status int
	Body   []byte
}

func (e *Exchange) Ok() bool {
	return e != nil && e.Status >= 200 && e.Status < 300
}

func GetDefaultTransport() *http.Transport {
	return &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}
}

func NewDefaultClient(transport *http.Transport) *Client {
	if transport == nil {
		transport = GetDefaultTransport()
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   15 * time.Second,
	}

	return &Client{
		client:         client,
		transport:      transport,
		UserAgent:      "portfolio4",
		OnHeaders:      nil,
		AbortOnNone2xx: false,
	}
}

func (f *Client) Get(ctx context.Context, url string) (string, error) {
	if f == nil || f.client == nil {
		return "", fmt.Errorf("client is nil")
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)

	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	if f.OnHeaders != nil {
		f.OnHeaders(req)
	}

	req.Header.Set("User-Agent", f.UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	if f.AbortOnNone2xx && (resp.StatusCode < 200 || resp.StatusCode >= 300) {
		return "", fmt.Errorf("received non-2xx status code: %d", resp.StatusCode)
	}

	body, err := ReadWithSizeLimit(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return string(body), nil
}

// Send issues a request with an optional JSON payload and returns the raw
// exchange. Unlike Get, it never aborts on non-2xx responses.
func (f *Client) Send(ctx context.Context, method, url string, payload any) (*Exchange, error) {
	if f == nil || f.client == nil {
		return nil, fmt.Errorf("client is nil")
	}

	var body *bytes.Reader

	if payload != nil {
		data, err := json.Marshal(payload)

		if err != nil {
			return nil, fmt.Errorf("failed to encode request payload: %w", err)
		}

		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)

	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if f.OnHeaders != nil {
		f.OnHeaders(req)
	}

	req.Header.Set("User-Agent", f.UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	data, err := ReadWithSizeLimit(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Exchange{Status: resp.StatusCode, Body: data}, nil
}
