package gemini_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavidFarrell/govscrape"
	"github.com/DavidFarrell/govscrape/gemini"
)

func TestDegrader_Degrade(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty text without calling the API", func(t *testing.T) {
		t.Parallel()

		d := gemini.NewDegrader(nil)

		_, err := d.Degrade(context.Background(), "")

		require.Error(t, err)
		assert.Equal(t, govscrape.EINVALID, govscrape.ErrorCode(err))
	})
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "rushed and unpolished")
	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 1.0, float64(*config.Temperature), 0.001)
}
