// Package client provides the HTTP client used by the terminal frontend to talk to the postage API.
//
// Every request goes to BaseURL+path with JSON bodies. Failures are normalised into *APIError:
// the message comes from the envelope's error.message when present, else from the status text.
// A 204 response resolves to a nil result whatever the declared type.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/guttosm/postage-comparator/internal/logger"
)

const (
	// DefaultBaseURL is the API prefix used when none is configured.
	DefaultBaseURL = "http://localhost:8080/api"
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 10 * time.Second
)

// Client is an HTTP client for the postage API.
type Client struct {
	// BaseURL is prefixed to every request path (e.g. "http://localhost:8080/api").
	BaseURL string
	// HTTPClient is the underlying HTTP client.
	HTTPClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.HTTPClient = hc
	}
}

// WithTimeout sets the request timeout on a copy of the current HTTP client,
// so a client passed to WithHTTPClient is never modified.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		hc := *c.HTTPClient
		hc.Timeout = timeout
		c.HTTPClient = &hc
	}
}

// New creates a client for baseURL. An empty baseURL uses DefaultBaseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// request sends method to BaseURL+path and decodes a successful body into out.
// It returns found=false for 204 responses.
func (c *Client) request(ctx context.Context, method, path string, body, out interface{}) (found bool, err error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return false, &APIError{Message: "Failed to encode request", Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return false, &APIError{Message: fallbackMessage, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		log := logger.Logger()
		log.Debug().Err(err).Str("method", method).Str("path", path).Msg("API request failed")
		return false, &APIError{Message: networkFailureMessage, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := newResponseError(resp)
		log := logger.Logger()
		log.Debug().
			Int("status_code", apiErr.Status).
			Str("method", method).
			Str("path", path).
			Str("message", apiErr.Message).
			Msg("API request rejected")
		return false, apiErr
	}

	if resp.StatusCode == http.StatusNoContent || out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return false, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, &APIError{Status: resp.StatusCode, Message: "Invalid response body", Err: err}
	}
	return true, nil
}

// fetch performs a request and returns the decoded body, or nil for empty responses.
func fetch[T any](ctx context.Context, c *Client, method, path string, body interface{}) (*T, error) {
	var out T
	found, err := c.request(ctx, method, path, body, &out)
	if err != nil || !found {
		return nil, err
	}
	return &out, nil
}

func itemPath(id string) string {
	return "/items/" + url.PathEscape(id)
}

func packagingPath(id string) string {
	return "/packaging/" + url.PathEscape(id)
}
