package pipeline

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/DavidFarrell/govscrape"
)

var _ govscrape.RateLimiter = (*Limiter)(nil)

// DefaultRequestsPerSecond is the Content API's published rate ceiling.
const DefaultRequestsPerSecond = 10

// Limiter enforces a global request ceiling using a token bucket.
// One instance is shared by every caller so the per-second ceiling holds
// across workers, not per worker.
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter creates a Limiter permitting rps requests per second with a
// burst of 1, so grants are evenly spaced and no rolling one-second window
// ever contains more than rps grants.
func NewLimiter(rps float64) *Limiter {
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// Wait blocks until the rate limit allows another request.
// Returns an error only if the context is canceled before the wait completes.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
