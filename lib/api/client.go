// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// TokenSource supplies the bearer token attached to outgoing requests.
// An empty string means no Authorization header is sent (anonymous
// browsing, login, register).
type TokenSource interface {
	Token() string
}

// ClientConfig holds configuration for creating a Client.
type ClientConfig struct {
	// BaseURL is the API base (e.g. "http://localhost:8080/api").
	BaseURL string
	// Tokens supplies the bearer token per request. If nil, all
	// requests are anonymous.
	Tokens TokenSource
	// HTTPClient is used for all requests. If nil, http.DefaultClient
	// is used.
	HTTPClient *http.Client
	// Logger is used for structured logging. If nil, slog.Default()
	// is used.
	Logger *slog.Logger
}

// Client issues JSON requests against one API base URL and normalizes
// every failure into *Error. It is safe for concurrent use.
type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Client. The base URL is validated up front and
// stored with its trailing slash stripped; request URLs are built by
// concatenation so encoded path segments pass through untouched.
func NewClient(config ClientConfig) (*Client, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("api: BaseURL is required")
	}
	if _, err := url.Parse(config.BaseURL); err != nil {
		return nil, fmt.Errorf("api: invalid BaseURL %q: %w", config.BaseURL, err)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		tokens:     config.Tokens,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// BaseURL returns the configured base URL without trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// doRequest performs an HTTP request and returns the response body.
// On 2xx, returns the body. On any failure — transport or HTTP status —
// returns a normalized *Error. query may be nil.
func (c *Client) doRequest(ctx context.Context, method, path string, requestBody any, query url.Values) ([]byte, error) {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("api: encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("api: creating request: %w", err)
	}

	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			request.Header.Set("Authorization", "Bearer "+token)
		}
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		c.logger.Debug("request failed", "method", method, "path", path, "error", err)
		return nil, transportError(err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return nil, transportError(err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return responseBody, nil
	}

	normalized := normalizeError(path, response.StatusCode, responseBody)
	c.logger.Debug("request rejected",
		"method", method,
		"path", path,
		"status", response.StatusCode,
		"message", normalized.Message,
	)
	return nil, normalized
}

// maxResponseBytes caps response reads. The largest legitimate payload
// is a full event listing; 8 MiB leaves generous headroom while
// bounding memory against a misbehaving server.
const maxResponseBytes = 8 << 20

// getJSON issues a GET and decodes the response into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	body, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return err
	}
	return decode(body, out)
}

// sendJSON issues a request with a JSON body and, when out is non-nil,
// decodes the response into it.
func (c *Client) sendJSON(ctx context.Context, method, path string, requestBody, out any) error {
	body, err := c.doRequest(ctx, method, path, requestBody, nil)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decode(body, out)
}

// delete issues a DELETE with no body and discards any response.
func (c *Client) delete(ctx context.Context, path string) error {
	_, err := c.doRequest(ctx, http.MethodDelete, path, nil, nil)
	return err
}

func decode(body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("api: parsing response: %w", err)
	}
	return nil
}
