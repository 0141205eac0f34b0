package mock

import (
	"context"

	"github.com/DavidFarrell/govscrape"
)

var _ govscrape.Degrader = (*Degrader)(nil)

// Degrader is a mock implementation of govscrape.Degrader.
type Degrader struct {
	DegradeFn func(ctx context.Context, text string) (string, error)
}

func (d *Degrader) Degrade(ctx context.Context, text string) (string, error) {
	return d.DegradeFn(ctx, text)
}
