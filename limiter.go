package govscrape

import "context"

// RateLimiter bounds the sustained request rate against the Content API.
// A single instance must be shared by every worker so the ceiling is
// enforced globally, not per worker.
type RateLimiter interface {
	// Wait blocks until issuing another request keeps the rolling
	// per-second request count within the configured ceiling. It never
	// rejects; the only error is context cancellation.
	Wait(ctx context.Context) error
}
