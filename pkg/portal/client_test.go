package portal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientTransportAndGet(t *testing.T) {
	tr := GetDefaultTransport()
	c := NewDefaultClient(tr)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello"))
	}))
	defer srv.Close()

	out, err := c.Get(context.Background(), srv.URL)

	if err != nil || out != "hello" {
		t.Fatalf("get failed: %v %s", err, out)
	}
}

func TestClientGetNil(t *testing.T) {
	var c *Client

	_, err := c.Get(context.Background(), "http://example.com")

	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestClientOnHeadersAndAbort(t *testing.T) {
	c := NewDefaultClient(nil)
	called := false
	c.OnHeaders = func(req *http.Request) {
		req.Header.Set("X-Test", "ok")
		called = true
	}

	c.AbortOnNone2xx = true

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Test") != "ok" {
			t.Fatalf("missing header")
		}

		w.WriteHeader(500)
	}))
	defer srv.Close()

	if _, err := c.Get(context.Background(), srv.URL); err == nil {
		t.Fatalf("expected error")
	}

	if !called {
		t.Fatalf("OnHeaders not called")
	}
}

func TestClientSend(t *testing.T) {
	c := NewDefaultClient(nil)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Fatalf("method %s", r.Method)
		}

		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}

		if body["key"] != "value" {
			t.Fatalf("payload: %#v", body)
		}

		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"stale"}`))
	}))
	defer srv.Close()

	exchange, err := c.Send(context.Background(), http.MethodPut, srv.URL, map[string]string{"key": "value"})

	if err != nil {
		t.Fatalf("send: %v", err)
	}

	if exchange.Ok() {
		t.Fatalf("409 reported as ok")
	}

	if exchange.Status != http.StatusConflict || string(exchange.Body) != `{"message":"stale"}` {
		t.Fatalf("unexpected exchange: %d %s", exchange.Status, exchange.Body)
	}
}
