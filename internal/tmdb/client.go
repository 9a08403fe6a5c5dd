// Package tmdb is the client for the external movie catalog. It owns the
// record shapes crossing the API boundary and converts transport and upstream
// failures into a small error taxonomy; nothing past this package parses
// catalog JSON.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrMissingAPIKey indicates the capability key was never configured. It is
// detected before any request is made and is not retryable.
var ErrMissingAPIKey = errors.New("tmdb: API key not configured (set MARQUEE_API_KEY)")

// APIError is an upstream rejection: the catalog answered with a non-2xx
// status. Message carries the payload's status message when present.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tmdb: %d: %s", e.StatusCode, e.Message)
}

// DefaultBaseURL is the production catalog endpoint.
const DefaultBaseURL = "https://api.themoviedb.org/3"

// Client talks to the movie catalog. The zero value is not usable; construct
// with New.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New creates a catalog client. An empty baseURL falls back to
// DefaultBaseURL. The key is validated lazily: constructing a client without
// a key succeeds, but every request returns ErrMissingAPIKey.
func New(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SetAPIKey replaces the capability key. Used by config hot-reload; safe only
// between requests (callers serialize through the TUI event loop).
func (c *Client) SetAPIKey(key string) {
	c.apiKey = key
}

// HasAPIKey reports whether a capability key is configured.
func (c *Client) HasAPIKey() bool {
	return c.apiKey != ""
}

// Search returns the result page for a free-text query. An empty query means
// "current trending set", not "no results". An empty result list is valid.
func (c *Client) Search(ctx context.Context, query string) ([]MovieSummary, error) {
	var u string
	if query == "" {
		u = fmt.Sprintf("%s/trending/movie/week?api_key=%s", c.baseURL, url.QueryEscape(c.apiKey))
	} else {
		u = fmt.Sprintf("%s/search/movie?api_key=%s&query=%s", c.baseURL, url.QueryEscape(c.apiKey), url.QueryEscape(query))
	}

	var p page
	if err := c.get(ctx, u, &p); err != nil {
		return nil, err
	}
	return p.Results, nil
}

// Detail returns the full record for one title.
func (c *Client) Detail(ctx context.Context, id int) (*MovieDetail, error) {
	u := fmt.Sprintf("%s/movie/%d?api_key=%s", c.baseURL, id, url.QueryEscape(c.apiKey))

	var d MovieDetail
	if err := c.get(ctx, u, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// get performs one request/decode round trip. Non-2xx responses are decoded
// as an upstream error payload; a body that fails to parse still yields an
// APIError with the default message.
func (c *Client) get(ctx context.Context, rawURL string, out any) error {
	if c.apiKey == "" {
		return ErrMissingAPIKey
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("tmdb: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("tmdb: request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("tmdb: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("tmdb: decode response: %w", err)
	}
	return nil
}

// newAPIError builds an APIError from an upstream rejection, falling back to
// "Unknown error" when the payload carries no status message.
func newAPIError(status int, body []byte) *APIError {
	var payload apiError
	msg := "Unknown error"
	if err := json.Unmarshal(body, &payload); err == nil && payload.StatusMessage != "" {
		msg = payload.StatusMessage
	}
	return &APIError{StatusCode: status, Message: msg}
}
