// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the text-generation endpoint.
package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents an error from the generation client.
type ClientError struct {
	Type    ErrorType
	Status  int // HTTP status for ErrTypeServer
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// Is matches client errors by type, so sentinel comparisons work with
// errors.Is regardless of wrapped detail.
func (e *ClientError) Is(target error) bool {
	t, ok := target.(*ClientError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeInvalidEndpoint
	ErrTypeConnection
	ErrTypeTimeout
	ErrTypeServer
	ErrTypeMissingField
)

// Sentinel errors for easy checking.
var (
	ErrInvalidEndpoint = &ClientError{Type: ErrTypeInvalidEndpoint, Message: "invalid endpoint URL"}
	ErrTimeout         = &ClientError{Type: ErrTypeTimeout, Message: "request timed out"}
	ErrServer          = &ClientError{Type: ErrTypeServer, Message: "server error"}
	ErrMissingField    = &ClientError{Type: ErrTypeMissingField, Message: "message field not found in response"}
)

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the generation client.
type ClientConfig struct {
	// BaseURL is the generation endpoint; the prompt is passed as a
	// percent-encoded query parameter.
	BaseURL string

	// APIKey is sent as an x-api-key header when non-empty.
	APIKey string

	// Timeout for a single request attempt (default: 30s).
	Timeout time.Duration

	// MaxRetries for transient failures (default: 3).
	MaxRetries int

	// RetryDelay is the base delay between retries; doubled per attempt
	// (default: 1s).
	RetryDelay time.Duration
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		Timeout:    30 * time.Second,
		MaxRetries: 3,
		RetryDelay: 1 * time.Second,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client talks to the text-generation endpoint. It is safe for
// concurrent use, though the session engine issues at most one request
// at a time.
type Client struct {
	mu         sync.RWMutex // guards BaseURL and APIKey for live reconfiguration
	config     *ClientConfig
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a client for the given endpoint with defaults.
func NewClient(baseURL string) *Client {
	cfg := DefaultConfig()
	cfg.BaseURL = baseURL
	return NewClientWithConfig(cfg)
}

// NewClientWithConfig creates a client with custom configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.MaxRetries == 0 {
		config.MaxRetries = 3
	}
	if config.RetryDelay == 0 {
		config.RetryDelay = 1 * time.Second
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		// Polite pacing toward the endpoint; also caps retry storms.
		limiter: rate.NewLimiter(rate.Every(300*time.Millisecond), 2),
	}
}

// SetEndpoint swaps the endpoint and key at runtime, e.g. after a
// config reload. In-flight requests keep their original target.
func (c *Client) SetEndpoint(baseURL, apiKey string) {
	c.mu.Lock()
	c.config.BaseURL = baseURL
	c.config.APIKey = apiKey
	c.mu.Unlock()
}

// endpoint returns the current target under the read lock.
func (c *Client) endpoint() (baseURL, apiKey string) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config.BaseURL, c.config.APIKey
}

// =============================================================================
// GENERATION
// =============================================================================

// Generate sends the prompt and returns the extracted message text.
// Transport failures and 5xx responses are retried with exponential
// backoff up to MaxRetries; other failures surface immediately.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	baseURL, apiKey := c.endpoint()
	endpoint, err := buildURL(baseURL, prompt)
	if err != nil {
		return "", err
	}

	var lastErr error
	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			if err := c.backoff(ctx, attempt); err != nil {
				return "", err
			}
		}
		if err := c.limiter.Wait(ctx); err != nil {
			return "", &ClientError{Type: ErrTypeTimeout, Message: "request cancelled", Cause: err}
		}

		msg, err := c.doRequest(ctx, endpoint, apiKey)
		if err == nil {
			return msg, nil
		}
		lastErr = err
		if !retryable(err) {
			return "", err
		}
	}
	return "", lastErr
}

// doRequest performs one attempt against the endpoint.
func (c *Client) doRequest(ctx context.Context, endpoint, apiKey string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", &ClientError{Type: ErrTypeInvalidEndpoint, Message: "failed to create request", Cause: err}
	}
	if apiKey != "" {
		req.Header.Set("x-api-key", apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", ErrTimeout
		}
		return "", &ClientError{Type: ErrTypeConnection, Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &ClientError{
			Type:    ErrTypeServer,
			Status:  resp.StatusCode,
			Message: "unexpected status: " + resp.Status,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ClientError{Type: ErrTypeConnection, Message: "failed to read response body", Cause: err}
	}

	return ExtractMessage(string(body))
}

// buildURL validates the endpoint and attaches the percent-encoded
// prompt.
func buildURL(baseURL, prompt string) (string, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", &ClientError{Type: ErrTypeInvalidEndpoint, Message: "invalid endpoint URL: " + baseURL, Cause: err}
	}
	return baseURL + "?prompt=" + url.QueryEscape(prompt), nil
}

// backoff sleeps for the exponential retry delay, honoring cancellation.
func (c *Client) backoff(ctx context.Context, attempt int) error {
	delay := c.config.RetryDelay << (attempt - 1)
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return &ClientError{Type: ErrTypeTimeout, Message: "request cancelled", Cause: ctx.Err()}
	case <-timer.C:
		return nil
	}
}

// retryable reports whether an error is worth another attempt:
// connection failures and 5xx responses only.
func retryable(err error) bool {
	var ce *ClientError
	if !errors.As(err, &ce) {
		return false
	}
	switch ce.Type {
	case ErrTypeConnection:
		return true
	case ErrTypeServer:
		return ce.Status >= 500
	default:
		return false
	}
}
