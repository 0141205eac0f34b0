package govscrape

import "time"

// Document is the canonical record produced from one content item.
// Content is always markdown, never raw HTML. A Document is immutable once
// created and lives for the duration of the run.
type Document struct {
	Title            string         `json:"title"`
	BasePath         string         `json:"base_path"`
	ContentID        string         `json:"content_id"`
	Description      string         `json:"description,omitempty"`
	DocumentType     string         `json:"document_type"`
	SchemaName       string         `json:"schema_name"`
	Locale           string         `json:"locale"`
	APIPath          string         `json:"api_path,omitempty"`
	WebURL           string         `json:"web_url,omitempty"`
	Content          string         `json:"content"`
	ContentHash      string         `json:"content_hash,omitempty"`
	PartTitles       []string       `json:"part_titles,omitempty"`
	Links            ContentLinks   `json:"links"`
	PublicUpdatedAt  *time.Time     `json:"public_updated_at,omitempty"`
	FirstPublishedAt *time.Time     `json:"first_published_at,omitempty"`
	Withdrawn        bool           `json:"withdrawn"`
	SyntheticData    *SyntheticData `json:"synthetic_data,omitempty"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.BasePath == "" {
		return Errorf(EINVALID, "document base path required")
	}
	if d.Title == "" {
		return Errorf(EINVALID, "document title required")
	}
	if d.Content == "" {
		return Errorf(EINVALID, "document content required")
	}
	return nil
}

// DocumentWriter persists a collection of documents.
type DocumentWriter interface {
	WriteDocuments(docs []*Document) error
}
