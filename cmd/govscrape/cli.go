package main

import (
	"context"
	"io"
	"log/slog"
)

// Dependencies holds shared wiring for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Scrape ScrapeCmd `cmd:"" help:"Fetch and normalize content paths listed in a CSV file"`
	Synth  SynthCmd  `cmd:"" help:"Generate synthetic training pairs for scraped documents"`
}

// ScrapeCmd fetches and normalizes every path in the input CSV.
type ScrapeCmd struct {
	Input     string  `short:"i" default:"./data/filtered_gov_uk_paths.csv" help:"CSV file with a Path column"`
	Output    string  `short:"o" default:"./data/gov_pages_with_body_content.json" help:"Output JSON file"`
	Rate      float64 `default:"10" help:"Maximum requests per second against the Content API"`
	BatchSize int     `default:"10" help:"Paths per batch"`
}

// SynthCmd enriches scraped documents with degraded rewrites and snippet pairs.
type SynthCmd struct {
	Input       string `short:"i" default:"./data/gov_pages_with_body_content.json" help:"Scraped documents JSON file"`
	Output      string `short:"o" default:"./data/gov_pages_with_synthetic_content.json" help:"Output JSON file"`
	Concurrency int    `short:"c" default:"3" help:"Concurrent degradation requests"`
}
