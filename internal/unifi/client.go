// Package unifi executes compiled requests against the UniFi Network
// Integration API and normalizes responses.
package unifi

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sonderhq/unifi-network-mcp/internal/catalog"
	"github.com/sonderhq/unifi-network-mcp/internal/config"
	. "github.com/sonderhq/unifi-network-mcp/internal/logging"
)

// integrationPrefix is where the Network application mounts the Integration
// API on the console.
const integrationPrefix = "/proxy/network/integration"

// successBody stands in for responses that carry no content (204 and empty
// 2xx bodies) so callers always receive a JSON-shaped result.
var successBody = json.RawMessage(`{"success":true}`)

// Client wraps the UniFi Network Integration API. It attaches the fixed
// header set and API key to every request and returns raw JSON responses.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient creates a new Integration API client.
func NewClient(cfg config.UniFiConfig) (*Client, error) {
	if cfg.APIURL == "" {
		return nil, fmt.Errorf("unifi API URL not configured")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("unifi API key not configured")
	}

	timeout := 30 * time.Second
	if cfg.Timeout != "" {
		var err error
		timeout, err = time.ParseDuration(cfg.Timeout)
		if err != nil {
			L_warn("unifi: invalid timeout, using default", "timeout", cfg.Timeout, "error", err)
			timeout = 30 * time.Second
		}
	}

	transport := &http.Transport{}
	if !cfg.VerifySSL {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // G402: consoles ship self-signed certs
		L_debug("unifi: TLS verification disabled")
	}

	baseURL := strings.TrimSuffix(cfg.APIURL, "/")
	L_debug("unifi: client created", "url", baseURL, "timeout", timeout)

	return &Client{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}, nil
}

// Do executes one compiled request and normalizes the response. Success
// bodies come back as raw JSON; 204 and empty 2xx responses are synthesized
// into {"success":true}. Non-2xx responses become an *APIError carrying the
// status and the raw body text; transport failures become a *NetworkError.
// Nothing is retried.
func (c *Client) Do(ctx context.Context, req *catalog.Request) (json.RawMessage, error) {
	url := c.baseURL + integrationPrefix + req.URL()
	L_debug("unifi: request", "method", req.Method, "url", url)

	var reqBody io.Reader
	if req.Body != nil {
		jsonBody, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-API-KEY", c.apiKey)
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	L_debug("unifi: response", "method", req.Method, "status", resp.StatusCode, "bytes", len(body))

	if resp.StatusCode == http.StatusNoContent || len(body) == 0 {
		return successBody, nil
	}
	return json.RawMessage(body), nil
}
