// Package api implements the HTTP client for the exercise server. Every
// request carries the current access token as a bearer credential when one
// is held; there is no retry, no refresh-on-401, and no request queuing.
// Each call either succeeds or surfaces a single error to the caller.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/kwhalen/repbook/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "repbook/1.0"
)

// Client implements domain.AuthRepository, domain.ExerciseRepository,
// domain.CollectionRepository, and domain.AdminRepository
type Client struct {
	baseURL    string
	tokens     domain.TokenSource
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new exercise server client. The token source is
// consulted on every request, so a login or refresh that lands between two
// calls takes effect immediately.
func NewClient(baseURL string, tokens domain.TokenSource, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// doRequest performs an authenticated JSON request and decodes the response
// into out when out is non-nil
func (c *Client) doRequest(ctx context.Context, method, path string, payload, out interface{}) error {
	reqURL := c.baseURL + path

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("server request", "method", method, "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("server request failed", "error", err)
		return domain.ErrServerUnreachable
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return domain.ErrAuthFailed
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode >= 400:
		c.logger.Error("server request error", "status", resp.StatusCode, "body", string(respBody))
		return fmt.Errorf("%s %s: %s", method, path, errorDetail(respBody, resp.StatusCode))
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			c.logger.Error("JSON parse error", "error", err, "bodyLen", len(respBody))
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}

// Probe checks that something answers HTTP at the given base URL. Any
// response status counts as reachable; only transport failures are errors.
func Probe(ctx context.Context, baseURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(baseURL, "/")+"/", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := (&http.Client{Timeout: defaultTimeout}).Do(req)
	if err != nil {
		return domain.ErrServerUnreachable
	}
	resp.Body.Close()
	return nil
}

// errorDetail extracts the server's detail message from an error body,
// falling back to the status code
func errorDetail(body []byte, status int) string {
	var e errorResponse
	if err := json.Unmarshal(body, &e); err == nil && e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("unexpected status code: %d", status)
}
