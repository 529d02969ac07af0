package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rstracker/fete-cms/internal/api/http/middleware"
	"github.com/rstracker/fete-cms/internal/session"
)

// Client handles all communication with the FETE backend. It attaches the
// persisted bearer token to every request and centralizes error triage; it
// never retries, queues, or caches.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         session.Store
	onUnauthorized func()
}

// New creates a backend client. A zero timeout falls back to DefaultTimeout.
func New(baseURL string, timeout time.Duration, tokens session.Store) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tokens: tokens,
	}
}

// OnUnauthorized registers the hook invoked after a 401 has cleared the
// session, typically to route the operator back to the login screen.
func (c *Client) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, "", nil, out)
}

// GetQuery issues a GET with a pre-encoded query string. Callers encode the
// query themselves because parameter order is part of the backend contract.
func (c *Client) GetQuery(ctx context.Context, path, rawQuery string, out any) error {
	return c.do(ctx, http.MethodGet, path, rawQuery, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, "", body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, "", body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, "", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path, rawQuery string, body, out any) error {
	logger := NewLogger(ctx)
	op := method + " " + path
	start := time.Now()

	reqURL := c.baseURL + path
	if rawQuery != "" {
		reqURL += "?" + rawQuery
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		logger.LogError(op, err)
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if rid := middleware.GetRequestID(ctx); rid != "" {
		req.Header.Set("X-Request-Id", rid)
	}
	// Absence of a token simply omits the header; the backend decides.
	if token, tokenErr := c.tokens.Token(ctx); tokenErr == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		logger.LogError(op, err)
		recordCall(duration, err)
		return fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		recordCall(duration, err)
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := c.triage(ctx, logger, op, resp.StatusCode, data)
		recordCall(duration, apiErr)
		return apiErr
	}
	recordCall(duration, nil)

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// triage converts an error response into an APIError and applies the global
// side effects: 401 tears the session down, 403/404/5xx are only logged.
func (c *Client) triage(ctx context.Context, logger *Logger, op string, status int, data []byte) *APIError {
	apiErr := &APIError{}
	if len(data) > 0 {
		_ = json.Unmarshal(data, apiErr)
	}
	// The body's status field may disagree with the wire; trust the wire.
	apiErr.StatusCode = status

	switch {
	case status == http.StatusUnauthorized:
		if err := c.tokens.Clear(ctx); err != nil {
			logger.LogError(op, err)
		}
		logger.LogWarnf(op, "session invalid, redirecting to login")
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
	case status == http.StatusForbidden:
		logger.LogWarnf(op, "forbidden")
	case status == http.StatusNotFound:
		logger.LogWarnf(op, "resource not found")
	case status >= 500:
		logger.LogWarnf(op, "backend returned status %d", status)
	}
	return apiErr
}
