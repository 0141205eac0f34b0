package synthetic_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavidFarrell/govscrape"
	"github.com/DavidFarrell/govscrape/mock"
	"github.com/DavidFarrell/govscrape/synthetic"
)

// prefixDegrader is a deterministic stand-in for the generative service.
func prefixDegrader() *mock.Degrader {
	return &mock.Degrader{
		DegradeFn: func(ctx context.Context, text string) (string, error) {
			return "so like, " + text, nil
		},
	}
}

func testDoc(content string) *govscrape.Document {
	return &govscrape.Document{
		Title:        "Doc",
		BasePath:     "/doc",
		DocumentType: govscrape.DocTypeAnswer,
		Content:      content,
	}
}

func TestGenerator_Generate(t *testing.T) {
	t.Parallel()

	t.Run("produces a degraded article and snippet pairs", func(t *testing.T) {
		t.Parallel()

		content := "Intro text.\n\n## Part A\n\nBody A.\n\n## Part B\n\nBody B."
		gen := &synthetic.Generator{Degrader: prefixDegrader()}

		sd, err := gen.Generate(context.Background(), testDoc(content))

		require.NoError(t, err)
		assert.Equal(t, "so like, "+content, sd.PoorlyWrittenArticle)
		require.NotNil(t, sd.ArticleSnippets)
		require.Len(t, sd.ArticleSnippets.Snippets, 3)
		for _, s := range sd.ArticleSnippets.Snippets {
			assert.Equal(t, "so like, "+s.WellWrittenSnippet, s.BadlyWrittenSnippet)
		}
	})

	t.Run("well-written snippets reproduce the content exactly", func(t *testing.T) {
		t.Parallel()

		content := "# Heading\n\nFirst.\n\n## Sub\n\nSecond.\n\n## Another\n\nThird."
		gen := &synthetic.Generator{Degrader: prefixDegrader()}

		sd, err := gen.Generate(context.Background(), testDoc(content))

		require.NoError(t, err)
		var joined strings.Builder
		for _, s := range sd.ArticleSnippets.Snippets {
			joined.WriteString(s.WellWrittenSnippet)
		}
		assert.Equal(t, content, joined.String())
	})

	t.Run("rejects documents without content", func(t *testing.T) {
		t.Parallel()

		gen := &synthetic.Generator{Degrader: prefixDegrader()}

		_, err := gen.Generate(context.Background(), testDoc(""))

		require.Error(t, err)
		assert.Equal(t, govscrape.EINVALID, govscrape.ErrorCode(err))
	})

	t.Run("surfaces degrader failures", func(t *testing.T) {
		t.Parallel()

		gen := &synthetic.Generator{
			Degrader: &mock.Degrader{
				DegradeFn: func(ctx context.Context, text string) (string, error) {
					return "", govscrape.Errorf(govscrape.EUNAVAILABLE, "service down")
				},
			},
		}

		_, err := gen.Generate(context.Background(), testDoc("Some content."))

		require.Error(t, err)
		assert.Equal(t, govscrape.EUNAVAILABLE, govscrape.ErrorCode(err))
	})
}

func TestGenerator_EnrichAll(t *testing.T) {
	t.Parallel()

	t.Run("enriches every document in place", func(t *testing.T) {
		t.Parallel()

		docs := []*govscrape.Document{
			testDoc("First article."),
			testDoc("Second article."),
			testDoc("Third article."),
		}
		gen := &synthetic.Generator{
			Degrader:   prefixDegrader(),
			BatchSize:  2,
			BatchDelay: time.Millisecond,
		}

		enriched, err := gen.EnrichAll(context.Background(), docs)

		require.NoError(t, err)
		assert.Equal(t, 3, enriched)
		for _, doc := range docs {
			require.NotNil(t, doc.SyntheticData)
			assert.NotEmpty(t, doc.SyntheticData.PoorlyWrittenArticle)
		}
	})

	t.Run("skips failing documents without aborting", func(t *testing.T) {
		t.Parallel()

		bad := testDoc("Bad article.")
		good := testDoc("Good article.")
		gen := &synthetic.Generator{
			Degrader: &mock.Degrader{
				DegradeFn: func(ctx context.Context, text string) (string, error) {
					if strings.Contains(text, "Bad") {
						return "", govscrape.Errorf(govscrape.EUNAVAILABLE, "service down")
					}
					return "meh " + text, nil
				},
			},
			BatchDelay: time.Millisecond,
		}

		enriched, err := gen.EnrichAll(context.Background(), []*govscrape.Document{bad, good})

		require.NoError(t, err)
		assert.Equal(t, 1, enriched)
		assert.Nil(t, bad.SyntheticData)
		require.NotNil(t, good.SyntheticData)
	})

	t.Run("stops on context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		docs := []*govscrape.Document{testDoc("One."), testDoc("Two.")}
		gen := &synthetic.Generator{
			Degrader: &mock.Degrader{
				DegradeFn: func(ctx context.Context, text string) (string, error) {
					cancel()
					return "", ctx.Err()
				},
			},
			BatchSize:  1,
			BatchDelay: time.Millisecond,
		}

		_, err := gen.EnrichAll(ctx, docs)

		require.Error(t, err)
	})
}
