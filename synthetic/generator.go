// Package synthetic derives training pairs from normalized documents: a
// degraded rewrite of the full article plus well-written/badly-written
// snippet pairs cut from the content.
package synthetic

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/DavidFarrell/govscrape"
)

// Enrichment cadence defaults. The degrader is typically a remote text
// service with its own request budget.
const (
	DefaultConcurrency = 3
	DefaultBatchSize   = 10
	DefaultBatchDelay  = 1 * time.Second
)

// Generator produces synthetic data for documents. Generation is stateless
// per document, so documents within a batch run in parallel.
type Generator struct {
	Degrader govscrape.Degrader
	Logger   *slog.Logger

	Concurrency int
	BatchSize   int
	BatchDelay  time.Duration
}

// Generate derives the synthetic payload for one document.
func (g *Generator) Generate(ctx context.Context, doc *govscrape.Document) (*govscrape.SyntheticData, error) {
	if doc == nil || doc.Content == "" {
		return nil, govscrape.Errorf(govscrape.EINVALID, "document with content required")
	}

	article, err := g.Degrader.Degrade(ctx, doc.Content)
	if err != nil {
		return nil, err
	}
	if article == "" {
		return nil, govscrape.Errorf(govscrape.EINTERNAL, "degrader returned empty article for %s", doc.BasePath)
	}

	parts := govscrape.SplitSnippets(doc.Content)
	snippets := make([]govscrape.Snippet, 0, len(parts))
	for _, part := range parts {
		degraded, err := g.Degrader.Degrade(ctx, part)
		if err != nil {
			return nil, err
		}
		snippets = append(snippets, govscrape.Snippet{
			WellWrittenSnippet:  part,
			BadlyWrittenSnippet: degraded,
		})
	}

	return &govscrape.SyntheticData{
		PoorlyWrittenArticle: article,
		ArticleSnippets:      &govscrape.ArticleSnippets{Snippets: snippets},
	}, nil
}

// EnrichAll generates synthetic data for every document in place, in batches
// with bounded parallelism. Per-document failures are logged and skipped;
// the document keeps a nil SyntheticData. Returns the number of documents
// enriched. Only context cancellation aborts the pass.
func (g *Generator) EnrichAll(ctx context.Context, docs []*govscrape.Document) (int, error) {
	logger := g.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	concurrency := g.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	batchSize := g.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	batchDelay := g.BatchDelay
	if batchDelay <= 0 {
		batchDelay = DefaultBatchDelay
	}

	var enriched int
	for start := 0; start < len(docs); start += batchSize {
		end := min(start+batchSize, len(docs))

		eg, gctx := errgroup.WithContext(ctx)
		eg.SetLimit(concurrency)

		for _, doc := range docs[start:end] {
			eg.Go(func() error {
				sd, err := g.Generate(gctx, doc)
				if err != nil {
					if gctx.Err() != nil {
						return gctx.Err()
					}
					logger.Warn("synthetic generation failed",
						"path", doc.BasePath,
						"error", govscrape.ErrorMessage(err),
					)
					return nil
				}
				doc.SyntheticData = sd
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return enriched, err
		}

		for _, doc := range docs[start:end] {
			if doc.SyntheticData != nil {
				enriched++
			}
		}

		if end < len(docs) {
			select {
			case <-ctx.Done():
				return enriched, ctx.Err()
			case <-time.After(batchDelay):
			}
		}
	}

	return enriched, nil
}
