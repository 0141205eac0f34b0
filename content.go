package govscrape

import (
	"context"
	"time"
)

// Document types the normalizer dispatches on.
const (
	DocTypeGovernment  = "government"
	DocTypeBrowsePage  = "mainstream_browse_page"
	DocTypePlaceholder = "placeholder"
	DocTypeRedirect    = "redirect"
	DocTypeGuide       = "guide"
	DocTypeAnswer      = "answer"
)

// ContentItem is the raw response of the Content API for one path.
// It is owned by the client call that produced it and discarded after
// normalization.
type ContentItem struct {
	Title            string         `json:"title"`
	BasePath         string         `json:"base_path"`
	ContentID        string         `json:"content_id"`
	Description      string         `json:"description"`
	DocumentType     string         `json:"document_type"`
	SchemaName       string         `json:"schema_name"`
	Locale           string         `json:"locale"`
	APIPath          string         `json:"api_path"`
	WebURL           string         `json:"web_url"`
	Details          ContentDetails `json:"details"`
	Links            ContentLinks   `json:"links"`
	PublicUpdatedAt  *time.Time     `json:"public_updated_at"`
	FirstPublishedAt *time.Time     `json:"first_published_at"`
	Withdrawn        bool           `json:"withdrawn"`
}

// ContentDetails is the type-specific payload of a content item.
// Single-page documents carry Body; multi-page guides carry Parts.
type ContentDetails struct {
	Body  string        `json:"body"`
	Parts []ContentPart `json:"parts"`
}

// ContentPart is one sub-page of a multi-page guide.
type ContentPart struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
	Body  string `json:"body"`
}

// ContentLink references another content item by relation.
type ContentLink struct {
	Title    string `json:"title"`
	BasePath string `json:"base_path"`
	APIPath  string `json:"api_path"`
	WebURL   string `json:"web_url"`
	Locale   string `json:"locale"`
}

// ContentLinks groups the link relations the pipeline preserves.
type ContentLinks struct {
	Organisations         []ContentLink `json:"organisations,omitempty"`
	Parent                []ContentLink `json:"parent,omitempty"`
	AvailableTranslations []ContentLink `json:"available_translations,omitempty"`
}

// ContentClient retrieves raw content items from the Content API.
type ContentClient interface {
	// Get fetches the content item for the given path.
	// Returns ENOTFOUND if the path does not exist, ERATELIMIT if the
	// upstream request budget stays exhausted across retries, EUNAVAILABLE
	// for persistent network failure, EINVALID for an unparseable response
	// and EUNAUTHORIZED if upstream rejects the request outright.
	Get(ctx context.Context, path string) (*ContentItem, error)
}
