package fs

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/DavidFarrell/govscrape"
)

// Ensure JSONStore implements govscrape.DocumentWriter at compile time.
var _ govscrape.DocumentWriter = (*JSONStore)(nil)

// JSONStore persists the document collection as a single JSON array.
// Writes go to a temporary file in the same directory and are renamed into
// place, so readers never observe a partial file.
type JSONStore struct {
	path string
}

// NewJSONStore creates a JSONStore writing to the given path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// WriteDocuments writes the documents, replacing any previous file.
func (s *JSONStore) WriteDocuments(docs []*govscrape.Document) error {
	for _, doc := range docs {
		if err := doc.Validate(); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// ReadDocuments loads a previously written document collection.
func (s *JSONStore) ReadDocuments() ([]*govscrape.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, govscrape.Errorf(govscrape.ENOTFOUND, "file not found at %s", s.path)
		}
		return nil, err
	}

	var docs []*govscrape.Document
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, govscrape.Errorf(govscrape.EINVALID, "decoding %s: %v", s.path, err)
	}
	return docs, nil
}
