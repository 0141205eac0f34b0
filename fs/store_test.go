package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavidFarrell/govscrape"
	"github.com/DavidFarrell/govscrape/fs"
)

func TestJSONStore(t *testing.T) {
	t.Parallel()

	t.Run("round-trips documents", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "pages.json")
		docs := []*govscrape.Document{
			{
				Title:        "Taking your pet abroad",
				BasePath:     "/take-pet-abroad",
				ContentID:    "abc-123",
				DocumentType: govscrape.DocTypeAnswer,
				SchemaName:   "answer",
				Locale:       "en",
				Content:      "Hello",
				PartTitles:   nil,
			},
			{
				Title:        "Some guide",
				BasePath:     "/some-guide",
				DocumentType: govscrape.DocTypeGuide,
				SchemaName:   "guide",
				Locale:       "en",
				Content:      "## Overview\n\nA",
				PartTitles:   []string{"Overview"},
				SyntheticData: &govscrape.SyntheticData{
					PoorlyWrittenArticle: "so like, A",
					ArticleSnippets: &govscrape.ArticleSnippets{
						Snippets: []govscrape.Snippet{
							{WellWrittenSnippet: "## Overview\n\nA", BadlyWrittenSnippet: "so like, A"},
						},
					},
				},
			},
		}

		store := fs.NewJSONStore(path)
		require.NoError(t, store.WriteDocuments(docs))

		loaded, err := store.ReadDocuments()
		require.NoError(t, err)
		assert.Equal(t, docs, loaded)
	})

	t.Run("leaves no temporary file behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "pages.json")

		store := fs.NewJSONStore(path)
		require.NoError(t, store.WriteDocuments(nil))

		_, err := os.Stat(path + ".tmp")
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("creates missing parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "dir", "pages.json")

		store := fs.NewJSONStore(path)
		require.NoError(t, store.WriteDocuments([]*govscrape.Document{}))

		_, err := os.Stat(path)
		require.NoError(t, err)
	})

	t.Run("returns ENOTFOUND when reading a missing file", func(t *testing.T) {
		t.Parallel()

		store := fs.NewJSONStore(filepath.Join(t.TempDir(), "nope.json"))

		_, err := store.ReadDocuments()

		require.Error(t, err)
		assert.Equal(t, govscrape.ENOTFOUND, govscrape.ErrorCode(err))
	})

	t.Run("returns EINVALID for malformed JSON", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "broken.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

		_, err := fs.NewJSONStore(path).ReadDocuments()

		require.Error(t, err)
		assert.Equal(t, govscrape.EINVALID, govscrape.ErrorCode(err))
	})
}
