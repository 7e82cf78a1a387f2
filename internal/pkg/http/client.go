// Package http provides the outbound HTTP client used to talk to the state store sidecar.
//
//go:generate go run -mod=mod github.com/matryer/moq -out httpmock/client_mock.go -pkg httpmock . Client
package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	gohttp "net/http"
	"time"
)

// maxResponseBytes bounds how much of a response body is read into memory.
const maxResponseBytes = 1 << 20

// Compile-time interface compliance check.
var _ Client = &client{}

// Client defines the interface for issuing HTTP requests.
type Client interface {
	// Do performs the request and returns the status code and the full body.
	// Non-2xx responses are not errors; callers interpret the status themselves.
	Do(ctx context.Context, req Request) (*Response, error)
}

// Request describes a single outbound call.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    []byte
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Body       []byte
}

// client implements the Client interface using standard net/http.
type client struct {
	httpClient *gohttp.Client
	timeout    time.Duration
}

// NewClient creates a new Client wrapping the provided http.Client.
// Each call is bounded by timeout in addition to the caller's context.
func NewClient(httpClient *gohttp.Client, timeout time.Duration) Client {
	return &client{
		httpClient: httpClient,
		timeout:    timeout,
	}
}

// Do performs the request.
func (c *client) Do(ctx context.Context, r Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if r.Body != nil {
		body = bytes.NewReader(r.Body)
	}

	req, err := gohttp.NewRequestWithContext(ctx, r.Method, r.URL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	defaultHeaders := map[string]string{
		"Accept":     "application/json",
		"User-Agent": "zip-tax-rates",
	}
	if r.Body != nil {
		defaultHeaders["Content-Type"] = "application/json"
	}
	for key, value := range defaultHeaders {
		req.Header.Set(key, value)
	}

	for key, value := range r.Headers { // overwrites default headers if same key
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Response{StatusCode: resp.StatusCode, Body: respBody}, nil
}
