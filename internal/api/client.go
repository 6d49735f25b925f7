// Package api is the HTTP client for the Taday backend. It owns
// request building, cookie-based authentication, the single silent
// refresh-and-retry on 401, and the error taxonomy callers branch on.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"time"
)

const (
	// DefaultBaseURL is the production Taday backend.
	DefaultBaseURL = "https://taday-api.fly.dev"

	defaultTimeout = 30 * time.Second
)

// Client is a cookie-authenticated Taday API client.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// New creates a client for the backend at baseURL. The session and
// refresh cookies set by the server are kept in an in-memory jar and
// attached to every request.
func New(baseURL string, logger *slog.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Jar:     jar,
			Timeout: defaultTimeout,
		},
		logger: logger,
	}, nil
}

// request executes one API call. body, if non-nil, is JSON-encoded.
// Returns the raw response body; nil for 204 responses.
//
// On a 401 it attempts exactly one silent refresh and, if the refresh
// succeeds, retries the original request exactly once. Any other
// outcome of that path is a terminal auth error. There is no retry,
// backoff or queueing beyond that.
func (c *Client) request(ctx context.Context, method, endpoint string, body any) ([]byte, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
	}

	c.logger.Debug("api request", "method", method, "endpoint", endpoint)

	resp, err := c.do(ctx, method, endpoint, payload)
	if err != nil {
		return nil, newNetworkError(err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		if !c.refresh(ctx) {
			return nil, &Error{Kind: KindAuth, Status: http.StatusUnauthorized, Message: "authentication failed"}
		}
		c.logger.Debug("session refreshed, retrying", "method", method, "endpoint", endpoint)

		resp, err = c.do(ctx, method, endpoint, payload)
		if err != nil {
			return nil, newNetworkError(err)
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			return nil, &Error{Kind: KindAuth, Status: http.StatusUnauthorized, Message: "authentication failed"}
		}
	}

	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newNetworkError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newStatusError(resp.StatusCode, string(raw))
	}

	return raw, nil
}

// do builds and executes a single HTTP request without any recovery.
func (c *Client) do(ctx context.Context, method, endpoint string, payload []byte) (*http.Response, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.http.Do(req)
}

// refresh renews the session from the refresh cookie. It deliberately
// bypasses request() so a failing refresh can never recurse.
func (c *Client) refresh(ctx context.Context) bool {
	resp, err := c.do(ctx, http.MethodPost, "/api/refresh", nil)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// requestJSON runs a request and decodes the JSON response into T.
func requestJSON[T any](ctx context.Context, c *Client, method, endpoint string, body any) (T, error) {
	var out T
	raw, err := c.request(ctx, method, endpoint, body)
	if err != nil {
		return out, err
	}
	if raw == nil {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}
