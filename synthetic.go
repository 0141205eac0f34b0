package govscrape

import "context"

// Snippet pairs one contiguous segment of a document's content with its
// deliberately degraded rewrite.
type Snippet struct {
	WellWrittenSnippet  string `json:"well_written_snippet"`
	BadlyWrittenSnippet string `json:"badly_written_snippet"`
}

// ArticleSnippets holds the ordered snippet pairs for one document.
// The well-written snippets partition the document content: concatenated in
// order they reproduce it exactly.
type ArticleSnippets struct {
	Snippets []Snippet `json:"snippets"`
}

// SyntheticData is the derived training payload attached to a document.
type SyntheticData struct {
	PoorlyWrittenArticle string           `json:"poorly_written_article"`
	ArticleSnippets      *ArticleSnippets `json:"article_snippets,omitempty"`
}

// Degrader rewrites well-written text into a deliberately lower-quality
// version. Implementations are typically backed by a generative text service
// and are non-deterministic; the pipeline only requires that the output is
// non-empty for non-empty input.
type Degrader interface {
	Degrade(ctx context.Context, text string) (string, error)
}
