// Package mock provides function-field test doubles for the domain
// interfaces.
package mock

import (
	"context"

	"github.com/DavidFarrell/govscrape"
)

var _ govscrape.ContentClient = (*ContentClient)(nil)

// ContentClient is a mock implementation of govscrape.ContentClient.
type ContentClient struct {
	GetFn func(ctx context.Context, path string) (*govscrape.ContentItem, error)
}

func (c *ContentClient) Get(ctx context.Context, path string) (*govscrape.ContentItem, error) {
	return c.GetFn(ctx, path)
}
