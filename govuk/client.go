// Package govuk provides an HTTP client for the GOV.UK Content API.
package govuk

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/DavidFarrell/govscrape"
)

// DefaultBaseURL is the Content API endpoint prefix.
const DefaultBaseURL = "https://www.gov.uk/api/content"

// DefaultTimeout is the default timeout for a single HTTP request.
const DefaultTimeout = 10 * time.Second

// DefaultRateLimitDelay is how long to back off after an HTTP 429 before
// retrying. The upstream burst window resets within a few seconds.
const DefaultRateLimitDelay = 5 * time.Second

// DefaultRetryDelays returns the backoff delays for transient failures:
// 1s, 2s, 4s (three retries, four attempts total).
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Ensure Client implements govscrape.ContentClient at compile time.
var _ govscrape.ContentClient = (*Client)(nil)

// Client retrieves content items over HTTPS, waiting on the shared rate
// limiter before every attempt, including retries.
type Client struct {
	baseURL        string
	client         *http.Client
	limiter        govscrape.RateLimiter
	retryDelays    []time.Duration
	rateLimitDelay time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the Content API endpoint prefix.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithTimeout sets the per-request timeout. Defaults to DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.client.Timeout = d }
}

// WithRetryDelays sets the backoff delays for transient failures.
// The number of retries equals the number of delays.
func WithRetryDelays(delays []time.Duration) Option {
	return func(c *Client) { c.retryDelays = delays }
}

// WithRateLimitDelay sets the backoff after an HTTP 429.
func WithRateLimitDelay(d time.Duration) Option {
	return func(c *Client) { c.rateLimitDelay = d }
}

// NewClient creates a Client that acquires from limiter before each request.
func NewClient(limiter govscrape.RateLimiter, opts ...Option) *Client {
	c := &Client{
		baseURL:        DefaultBaseURL,
		client:         &http.Client{Timeout: DefaultTimeout},
		limiter:        limiter,
		retryDelays:    DefaultRetryDelays(),
		rateLimitDelay: DefaultRateLimitDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get fetches and decodes the content item for the given path.
func (c *Client) Get(ctx context.Context, path string) (*govscrape.ContentItem, error) {
	maxAttempts := len(c.retryDelays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		item, retryDelay, err := c.get(ctx, path)
		if err == nil {
			return item, nil
		}
		lastErr = err

		// Not-found, malformed and auth errors are final.
		switch govscrape.ErrorCode(err) {
		case govscrape.ENOTFOUND, govscrape.EINVALID, govscrape.EUNAUTHORIZED:
			return nil, err
		}

		if attempt >= maxAttempts-1 {
			break
		}
		if retryDelay == 0 {
			retryDelay = c.retryDelays[attempt]
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryDelay):
		}
	}

	return nil, lastErr
}

// get performs a single attempt. A non-zero delay is returned when the
// failure dictates its own backoff (HTTP 429).
func (c *Client) get(ctx context.Context, path string) (*govscrape.ContentItem, time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, 0, govscrape.Errorf(govscrape.EINVALID, "invalid path %q: %v", path, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, govscrape.Errorf(govscrape.EUNAVAILABLE, "request failed for %s: %v", path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode == http.StatusNotFound:
		return nil, 0, govscrape.Errorf(govscrape.ENOTFOUND, "no content item for %s", path)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, c.rateLimitDelay, govscrape.Errorf(govscrape.ERATELIMIT, "rate limited fetching %s", path)
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return nil, 0, govscrape.Errorf(govscrape.EUNAUTHORIZED, "upstream rejected request for %s: HTTP %d", path, resp.StatusCode)
	default:
		return nil, 0, govscrape.Errorf(govscrape.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, path)
	}

	var item govscrape.ContentItem
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		return nil, 0, govscrape.Errorf(govscrape.EINVALID, "malformed response for %s: %v", path, err)
	}
	if item.DocumentType == "" {
		return nil, 0, govscrape.Errorf(govscrape.EINVALID, "response for %s lacks a document type", path)
	}
	if item.BasePath == "" {
		item.BasePath = path
	}

	return &item, 0, nil
}
