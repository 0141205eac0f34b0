package govscrape

// Converter converts HTML fragments to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment into Markdown.
	// It is total over the HTML subset the Content API emits: unknown tags
	// degrade to their text content, plain text passes through unchanged,
	// and empty input yields empty output.
	Convert(html string) (string, error)
}
