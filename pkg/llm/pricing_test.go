package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brianfields/deeplearn-sub002/pkg/models"
)

func TestEstimateChatCost(t *testing.T) {
	usage := models.TokenUsage{InputTokens: 1_000_000, OutputTokens: 500_000}

	assert.InDelta(t, 2.50+5.00, EstimateChatCost("gpt-4o", usage), 1e-9)
	assert.InDelta(t, 0.15+0.30, EstimateChatCost("gpt-4o-mini", usage), 1e-9)

	// Dated variants resolve by longest prefix: gpt-4o-mini, not gpt-4o.
	assert.InDelta(t, 0.15+0.30, EstimateChatCost("gpt-4o-mini-2024-07-18", usage), 1e-9)
	assert.InDelta(t, 2.50+5.00, EstimateChatCost("gpt-4o-2024-08-06", usage), 1e-9)

	// Unknown models cost zero; tokens are still recorded elsewhere.
	assert.Zero(t, EstimateChatCost("some-new-model", usage))
}

func TestEstimateImageCost(t *testing.T) {
	assert.InDelta(t, 0.040, EstimateImageCost("dall-e-3", "1024x1024", "standard"), 1e-9)
	assert.InDelta(t, 0.080, EstimateImageCost("dall-e-3", "1024x1024", "hd"), 1e-9)
	assert.InDelta(t, 0.040, EstimateImageCost("dall-e-3", "1024x1024", ""), 1e-9, "empty quality defaults to standard")
	assert.Zero(t, EstimateImageCost("dall-e-3", "640x480", "standard"))
	assert.Zero(t, EstimateImageCost("unknown-model", "1024x1024", "standard"))
}

func TestEstimateAudioCost(t *testing.T) {
	assert.InDelta(t, 0.015, EstimateAudioCost("tts-1", 1000), 1e-9)
	assert.InDelta(t, 0.030, EstimateAudioCost("tts-1-hd", 1000), 1e-9)
	assert.Zero(t, EstimateAudioCost("unknown-tts", 1000))
}
