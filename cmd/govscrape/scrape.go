package main

import (
	"fmt"
	"sort"

	"github.com/DavidFarrell/govscrape"
	"github.com/DavidFarrell/govscrape/fs"
	"github.com/DavidFarrell/govscrape/govuk"
	"github.com/DavidFarrell/govscrape/htmltomarkdown"
	"github.com/DavidFarrell/govscrape/pipeline"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "Loading paths from: %s\n", c.Input)

	paths, err := fs.LoadPaths(c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", govscrape.ErrorMessage(err))
		return err
	}

	limiter := pipeline.NewLimiter(c.Rate)
	p := &pipeline.Pipeline{
		Client:     govuk.NewClient(limiter),
		Normalizer: &govscrape.Normalizer{Converter: htmltomarkdown.NewConverter()},
		Logger:     deps.Logger,
		BatchSize:  c.BatchSize,
	}

	docs, stats, err := p.Run(deps.Ctx, paths)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", govscrape.ErrorMessage(err))
		return err
	}

	printSummary(deps, stats)

	fmt.Fprintf(deps.Stdout, "\nSaving processed pages to %s\n", c.Output)
	if err := fs.NewJSONStore(c.Output).WriteDocuments(docs); err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Saved %d pages to %s\n", len(docs), c.Output)

	return nil
}

func printSummary(deps *Dependencies, stats *pipeline.Stats) {
	fmt.Fprintf(deps.Stdout, "\n=== Processing Summary ===\n")
	fmt.Fprintf(deps.Stdout, "Total unique paths: %d\n", stats.Fetched)
	fmt.Fprintf(deps.Stdout, "Successfully processed: %d\n", stats.Succeeded)
	fmt.Fprintf(deps.Stdout, "Failed: %d\n", stats.Failed)
	fmt.Fprintf(deps.Stdout, "Without content: %d\n", stats.NoContent)

	fmt.Fprintf(deps.Stdout, "\nProcessed documents by type:\n")
	printCounts(deps, stats.ProcessedByType)

	fmt.Fprintf(deps.Stdout, "\nSkipped documents by type:\n")
	printCounts(deps, stats.SkippedByType)
}

func printCounts(deps *Dependencies, counts map[string]int) {
	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		fmt.Fprintf(deps.Stdout, "- %s: %d\n", t, counts[t])
	}
}
