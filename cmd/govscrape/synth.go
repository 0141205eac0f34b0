package main

import (
	"fmt"
	"os"

	"google.golang.org/genai"

	"github.com/DavidFarrell/govscrape"
	"github.com/DavidFarrell/govscrape/fs"
	"github.com/DavidFarrell/govscrape/gemini"
	"github.com/DavidFarrell/govscrape/synthetic"
)

// Run executes the synth command.
func (c *SynthCmd) Run(deps *Dependencies) error {
	store := fs.NewJSONStore(c.Input)
	docs, err := store.ReadDocuments()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", govscrape.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Source articles loaded: %d\n", len(docs))

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(deps.Stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(deps.Ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(deps.Stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return fmt.Errorf("failed to create gemini client: %w", err)
	}

	gen := &synthetic.Generator{
		Degrader:    gemini.NewDegrader(client),
		Logger:      deps.Logger,
		Concurrency: c.Concurrency,
	}

	enriched, err := gen.EnrichAll(deps.Ctx, docs)
	if err != nil {
		return err
	}

	var totalSnippets int
	for _, doc := range docs {
		if doc.SyntheticData != nil && doc.SyntheticData.ArticleSnippets != nil {
			totalSnippets += len(doc.SyntheticData.ArticleSnippets.Snippets)
		}
	}

	fmt.Fprintf(deps.Stdout, "\n=== Processing Complete ===\n")
	fmt.Fprintf(deps.Stdout, "Source articles: %d\n", len(docs))
	fmt.Fprintf(deps.Stdout, "Articles rewritten: %d\n", enriched)
	fmt.Fprintf(deps.Stdout, "Total snippets created: %d\n", totalSnippets)

	if err := fs.NewJSONStore(c.Output).WriteDocuments(docs); err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Output saved to: %s\n", c.Output)

	return nil
}
