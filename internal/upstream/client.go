// Package upstream implements the HTTP client for the orchestration API.
// The client forwards the caller's bearer token, performs no retries and no
// caching, and preserves upstream status codes in typed errors.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const maxErrorBody = 64 << 10

// Client performs outbound calls against a single upstream base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given base URL. A zero timeout defaults
// to 30 seconds.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Do executes a request against upstream. The bearer token is injected
// verbatim; a non-nil body is JSON-encoded with Content-Type set. 2xx bodies
// are decoded into out (skipped for 204 or a nil out); any other status
// yields an *Error carrying the upstream status and details.
//
// 404 is deliberately not translated here: the resource services decide
// per operation whether a 404 means "absent" or a hard failure.
func (c *Client) Do(ctx context.Context, method, path, token string, body, out any) error {
	var bodyReader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(resp)
	}

	if resp.StatusCode == http.StatusNoContent || out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode upstream response: %w", err)
	}
	return nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path, token string, out any) error {
	return c.Do(ctx, http.MethodGet, path, token, nil, out)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path, token string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, token, body, out)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path, token string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, token, body, out)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path, token string) error {
	return c.Do(ctx, http.MethodDelete, path, token, nil, nil)
}

func newError(resp *http.Response) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return &Error{Status: resp.StatusCode}
	}

	var details any
	if err := json.Unmarshal(raw, &details); err != nil {
		details = string(raw)
	}
	return &Error{Status: resp.StatusCode, Details: details}
}
