package mock

import (
	"context"

	"github.com/DavidFarrell/govscrape"
)

var _ govscrape.RateLimiter = (*RateLimiter)(nil)

// RateLimiter is a mock implementation of govscrape.RateLimiter.
// A nil WaitFn grants immediately.
type RateLimiter struct {
	WaitFn func(ctx context.Context) error
}

func (l *RateLimiter) Wait(ctx context.Context) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx)
}
