// Package pipeline orchestrates the fetch-and-normalize run: it walks the
// input path list through the Content API client and the normalizer,
// recovers per-path failures, and aggregates outcome statistics.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/DavidFarrell/govscrape"
)

// Batch cadence defaults, layered above the per-request rate limiter to
// absorb upstream burst tolerance. The Content API allows bursts of 10; a
// full second between batches keeps sustained throughput at the ceiling.
const (
	DefaultBatchSize  = 10
	DefaultBatchDelay = 1 * time.Second
)

// Stats aggregates per-path outcomes for one run. It is mutated only by the
// running pipeline and read-only to callers afterward.
type Stats struct {
	Fetched         int            `json:"fetched"`
	Succeeded       int            `json:"succeeded"`
	Failed          int            `json:"failed"`
	NoContent       int            `json:"no_content"`
	SkippedByType   map[string]int `json:"skipped_by_type"`
	ProcessedByType map[string]int `json:"processed_by_type"`
}

// NewStats returns an empty Stats with initialized maps.
func NewStats() *Stats {
	return &Stats{
		SkippedByType:   make(map[string]int),
		ProcessedByType: make(map[string]int),
	}
}

// Pipeline runs the acquisition pass. A single sequential worker is enough:
// the rate ceiling sits far below what one goroutine can issue serially.
type Pipeline struct {
	Client     govscrape.ContentClient
	Normalizer *govscrape.Normalizer
	Logger     *slog.Logger

	// BatchSize and BatchDelay control the coarse inter-batch cadence.
	// Zero values take the defaults above.
	BatchSize  int
	BatchDelay time.Duration
}

// Run processes every path and returns the normalized documents plus stats.
// Input paths are deduplicated preserving insertion order. Per-path fetch
// failures and skips are logged and counted without aborting; only an
// EUNAUTHORIZED error or context cancellation terminates the run early.
func (p *Pipeline) Run(ctx context.Context, paths []string) ([]*govscrape.Document, *Stats, error) {
	logger := p.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	batchSize := p.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	batchDelay := p.BatchDelay
	if batchDelay <= 0 {
		batchDelay = DefaultBatchDelay
	}

	unique := dedupe(paths)
	stats := NewStats()
	var docs []*govscrape.Document

	for start := 0; start < len(unique); start += batchSize {
		end := min(start+batchSize, len(unique))
		batchStart := time.Now()

		logger.Info("processing batch",
			"batch", start/batchSize+1,
			"from", start,
			"to", end,
		)

		for _, path := range unique[start:end] {
			doc, err := p.process(ctx, path, stats, logger)
			if err != nil {
				return docs, stats, err
			}
			if doc != nil {
				docs = append(docs, doc)
			}
		}

		// Keep at least BatchDelay between batch starts.
		if end < len(unique) {
			if remaining := batchDelay - time.Since(batchStart); remaining > 0 {
				select {
				case <-ctx.Done():
					return docs, stats, ctx.Err()
				case <-time.After(remaining):
				}
			}
		}
	}

	return docs, stats, nil
}

// process handles one path. A nil document with nil error means the path was
// skipped or failed and has been counted; a non-nil error aborts the run.
func (p *Pipeline) process(ctx context.Context, path string, stats *Stats, logger *slog.Logger) (*govscrape.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stats.Fetched++

	item, err := p.Client.Get(ctx, path)
	if err != nil {
		if govscrape.ErrorCode(err) == govscrape.EUNAUTHORIZED {
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		stats.Failed++
		logger.Warn("fetch failed",
			"path", path,
			"code", govscrape.ErrorCode(err),
			"error", govscrape.ErrorMessage(err),
		)
		return nil, nil
	}

	doc, err := p.Normalizer.Normalize(item)
	if err != nil {
		switch govscrape.ErrorCode(err) {
		case govscrape.ESKIPPED:
			stats.SkippedByType[item.DocumentType]++
			logger.Info("skipping document", "path", path, "document_type", item.DocumentType)
		case govscrape.ENOCONTENT, govscrape.EMISSINGCONTENT:
			stats.NoContent++
			logger.Info("no content", "path", path, "reason", govscrape.ErrorMessage(err))
		default:
			stats.Failed++
			logger.Warn("normalization failed", "path", path, "error", govscrape.ErrorMessage(err))
		}
		return nil, nil
	}

	doc.ContentHash = contentHash(doc.Content)
	stats.Succeeded++
	stats.ProcessedByType[doc.DocumentType]++
	return doc, nil
}

// dedupe removes duplicate paths, preserving first-seen order.
func dedupe(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// contentHash computes a hash of the content using xxhash.
func contentHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
