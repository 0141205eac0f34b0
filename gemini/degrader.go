// Package gemini implements text degradation using Google Gemini.
package gemini

import (
	"context"

	"google.golang.org/genai"

	"github.com/DavidFarrell/govscrape"
)

const model = "gemini-2.5-flash"

// systemInstruction steers the model toward rushed, amateurish rewrites
// without losing the substance of the original.
const systemInstruction = `Take the well-written text you are given and rewrite it so that it:

- Feels rushed and unpolished, like it was written quickly by an amateur.
- Uses informal and imprecise language with minor grammatical issues or awkward phrasing.
- Occasionally misses details or over-explains simple points, without being completely incoherent.
- Avoids extreme confusion but includes mild distractions or offhand comments that feel out of place.

Reply with the rewritten text only.`

// Ensure Degrader implements govscrape.Degrader at compile time.
var _ govscrape.Degrader = (*Degrader)(nil)

// Degrader rewrites text into a deliberately lower-quality version.
type Degrader struct {
	client *genai.Client
}

// NewDegrader creates a new Degrader.
func NewDegrader(client *genai.Client) *Degrader {
	return &Degrader{client: client}
}

// Degrade rewrites the given text in a poorly written register.
func (d *Degrader) Degrade(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", govscrape.Errorf(govscrape.EINVALID, "text required")
	}

	config := BuildConfig()

	result, err := d.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: text}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil || result.Text() == "" {
		return "", govscrape.Errorf(govscrape.EINTERNAL, "gemini returned empty rewrite")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for degradation calls.
// A high temperature keeps rewrites varied across snippets.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(1.0)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
		Temperature: &temp,
	}
}
