// Package api provides a typed HTTP client for the tracker backend REST API.
//
// Every call targets a configurable base address. Authentication is header
// based: member calls carry X-User-Token, admin calls carry X-Admin-Token.
// The client performs no retries; every failure is terminal for that attempt.
package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// Auth header names expected by the backend.
const (
	headerUserToken  = "X-User-Token"
	headerAdminToken = "X-Admin-Token"
)

// maxErrorBodySize limits how much of an error response body is read back
// for diagnostics.
const maxErrorBodySize = 64 * 1024

// Error represents a failed backend call.
type Error struct {
	Op         string
	URL        string
	StatusCode int
	Message    string
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Cause)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (HTTP %d)", e.Op, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the client.
type Options struct {
	// BaseURL is the backend base address, e.g. http://127.0.0.1:8000.
	BaseURL string
	// Timeout bounds each request. Zero means DefaultTimeout.
	Timeout time.Duration
	// Logger receives per-request debug events.
	Logger zerolog.Logger
	// HTTPClient overrides the underlying transport, mainly for tests.
	HTTPClient *http.Client
}

// Client is a typed wrapper over the backend HTTP API.
// All methods are safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// New creates a Client. The base URL must be absolute.
func New(opts Options) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	parsed, err := url.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &Error{Op: "api.New", URL: opts.BaseURL, Message: "invalid base URL", Cause: err}
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL: base,
		http:    httpClient,
		log:     opts.Logger,
	}, nil
}

// errorBody is the backend's standard error payload.
type errorBody struct {
	Error string `json:"error"`
}

// do issues one request and decodes a JSON success body into out (when out
// is non-nil). A response status outside okStatuses yields an *Error carrying
// the backend's error message when one was provided.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, header http.Header, body, out any, okStatuses ...int) (int, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return 0, &Error{Op: op, URL: reqURL, Message: "failed to encode request body", Cause: err}
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return 0, &Error{Op: op, URL: reqURL, Message: "failed to create request", Cause: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, values := range header {
		for _, v := range values {
			req.Header.Set(key, v)
		}
	}

	requestID := uuid.NewString()
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Str("request_id", requestID).Str("op", op).Str("url", reqURL).Err(err).Msg("backend request failed")
		return 0, &Error{Op: op, URL: reqURL, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug().
		Str("request_id", requestID).
		Str("op", op).
		Str("method", method).
		Str("url", reqURL).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("backend request")

	for _, ok := range okStatuses {
		if resp.StatusCode == ok {
			if out != nil {
				if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
					return resp.StatusCode, &Error{Op: op, URL: reqURL, StatusCode: resp.StatusCode, Message: "failed to decode response body", Cause: err}
				}
			}
			return resp.StatusCode, nil
		}
	}

	message := fmt.Sprintf("unexpected HTTP status %d", resp.StatusCode)
	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if readErr == nil && len(raw) > 0 {
		var eb errorBody
		if json.Unmarshal(raw, &eb) == nil && eb.Error != "" {
			message = eb.Error
		}
	}
	return resp.StatusCode, &Error{Op: op, URL: reqURL, StatusCode: resp.StatusCode, Message: message}
}

func userHeader(token string) http.Header {
	return http.Header{headerUserToken: []string{token}}
}

func adminHeader(token string) http.Header {
	return http.Header{headerAdminToken: []string{token}}
}
