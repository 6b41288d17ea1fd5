package unifi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sonderhq/unifi-network-mcp/internal/catalog"
	"github.com/sonderhq/unifi-network-mcp/internal/config"
)

type recorded struct {
	method      string
	url         string
	accept      string
	apiKey      string
	contentType string
	body        []byte
}

// newTestClient spins up a backend that records the last request and replies
// with the given status and body.
func newTestClient(t *testing.T, status int, respBody string) (*Client, *recorded, func()) {
	t.Helper()

	rec := &recorded{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.url = r.URL.String()
		rec.accept = r.Header.Get("Accept")
		rec.apiKey = r.Header.Get("X-API-KEY")
		rec.contentType = r.Header.Get("Content-Type")
		rec.body, _ = io.ReadAll(r.Body)

		w.WriteHeader(status)
		if respBody != "" {
			w.Write([]byte(respBody))
		}
	}))

	client, err := NewClient(config.UniFiConfig{
		APIURL:    ts.URL,
		APIKey:    "test-key",
		VerifySSL: true,
	})
	if err != nil {
		ts.Close()
		t.Fatalf("failed to create client: %v", err)
	}

	return client, rec, ts.Close
}

func TestNewClientRequiresConfig(t *testing.T) {
	if _, err := NewClient(config.UniFiConfig{APIKey: "k"}); err == nil {
		t.Error("expected error for missing URL")
	}
	if _, err := NewClient(config.UniFiConfig{APIURL: "https://unifi.local"}); err == nil {
		t.Error("expected error for missing API key")
	}
}

func TestDoSendsFixedHeaders(t *testing.T) {
	client, rec, done := newTestClient(t, 200, `{"data":[]}`)
	defer done()

	payload, err := client.Do(context.Background(), &catalog.Request{
		Method: "GET",
		Path:   "/v1/sites/abc/networks",
		Query:  "limit=10",
	})
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}

	if got, want := rec.url, "/proxy/network/integration/v1/sites/abc/networks?limit=10"; got != want {
		t.Errorf("url = %q, want %q", got, want)
	}
	if rec.accept != "application/json" {
		t.Errorf("Accept = %q", rec.accept)
	}
	if rec.apiKey != "test-key" {
		t.Errorf("X-API-KEY = %q", rec.apiKey)
	}
	if rec.contentType != "" {
		t.Errorf("Content-Type set on bodyless request: %q", rec.contentType)
	}
	if string(payload) != `{"data":[]}` {
		t.Errorf("payload = %s", payload)
	}
}

func TestDoSendsBodyWithContentType(t *testing.T) {
	client, rec, done := newTestClient(t, 200, `{"id":"n1"}`)
	defer done()

	_, err := client.Do(context.Background(), &catalog.Request{
		Method: "POST",
		Path:   "/v1/sites/abc/networks",
		Body:   map[string]any{"name": "IoT", "type": "CORPORATE"},
	})
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}

	if rec.contentType != "application/json" {
		t.Errorf("Content-Type = %q", rec.contentType)
	}

	var sent map[string]any
	if err := json.Unmarshal(rec.body, &sent); err != nil {
		t.Fatalf("body not JSON: %v", err)
	}
	if sent["name"] != "IoT" || sent["type"] != "CORPORATE" {
		t.Errorf("body = %v", sent)
	}
}

func TestDoNoContentSynthesizesSuccess(t *testing.T) {
	client, _, done := newTestClient(t, 204, "")
	defer done()

	payload, err := client.Do(context.Background(), &catalog.Request{
		Method: "DELETE",
		Path:   "/v1/sites/abc/networks/n1",
	})
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if string(payload) != `{"success":true}` {
		t.Errorf("payload = %s, want synthesized success", payload)
	}
}

func TestDoEmptySuccessBodySynthesizesSuccess(t *testing.T) {
	client, _, done := newTestClient(t, 200, "")
	defer done()

	payload, err := client.Do(context.Background(), &catalog.Request{
		Method: "POST",
		Path:   "/v1/sites/abc/devices/d1/actions",
		Body:   map[string]any{"action": "RESTART"},
	})
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if string(payload) != `{"success":true}` {
		t.Errorf("payload = %s", payload)
	}
}

func TestDoAPIErrorPreservesStatusAndBody(t *testing.T) {
	client, _, done := newTestClient(t, 404, `{"error":"not found"}`)
	defer done()

	_, err := client.Do(context.Background(), &catalog.Request{
		Method: "GET",
		Path:   "/v1/sites/abc/networks/missing",
	})
	if err == nil {
		t.Fatal("expected error for 404")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != 404 {
		t.Errorf("status = %d", apiErr.StatusCode)
	}
	if got, want := err.Error(), `UniFi API error (404): {"error":"not found"}`; got != want {
		t.Errorf("error = %q, want %q", got, want)
	}
}

func TestDoNetworkFailure(t *testing.T) {
	client, _, done := newTestClient(t, 200, "{}")
	done() // shut the backend down before the call

	_, err := client.Do(context.Background(), &catalog.Request{
		Method: "GET",
		Path:   "/v1/info",
	})
	if err == nil {
		t.Fatal("expected network error")
	}

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected *NetworkError, got %T: %v", err, err)
	}
	if netErr.Unwrap() == nil {
		t.Error("underlying transport error not preserved")
	}
}
