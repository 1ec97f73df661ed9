package llm

import (
	"strings"

	"github.com/brianfields/deeplearn-sub002/pkg/models"
)

// modelPrice is USD per million tokens.
type modelPrice struct {
	inputPerMillion  float64
	outputPerMillion float64
}

// chatPrices is the static price table for known chat models. Dated variants
// (gpt-4o-2024-08-06) resolve by prefix. Unknown models cost 0; tokens are
// still recorded.
var chatPrices = map[string]modelPrice{
	"gpt-4o":       {inputPerMillion: 2.50, outputPerMillion: 10.00},
	"gpt-4o-mini":  {inputPerMillion: 0.15, outputPerMillion: 0.60},
	"gpt-4.1":      {inputPerMillion: 2.00, outputPerMillion: 8.00},
	"gpt-4.1-mini": {inputPerMillion: 0.40, outputPerMillion: 1.60},
	"gpt-4.1-nano": {inputPerMillion: 0.10, outputPerMillion: 0.40},
	"o3-mini":      {inputPerMillion: 1.10, outputPerMillion: 4.40},
}

// imagePrices is USD per image, keyed by model, size, and quality.
var imagePrices = map[string]map[string]map[string]float64{
	"dall-e-3": {
		"1024x1024": {"standard": 0.040, "hd": 0.080},
		"1024x1792": {"standard": 0.080, "hd": 0.120},
		"1792x1024": {"standard": 0.080, "hd": 0.120},
	},
	"dall-e-2": {
		"1024x1024": {"standard": 0.020},
		"512x512":   {"standard": 0.018},
		"256x256":   {"standard": 0.016},
	},
}

// audioPricePerMillionChars is USD per million input characters for TTS.
var audioPricePerMillionChars = map[string]float64{
	"tts-1":    15.00,
	"tts-1-hd": 30.00,
}

// EstimateChatCost estimates the USD cost of a chat/structured call.
func EstimateChatCost(model string, usage models.TokenUsage) float64 {
	price, ok := lookupChatPrice(model)
	if !ok {
		return 0
	}
	return float64(usage.InputTokens)/1e6*price.inputPerMillion +
		float64(usage.OutputTokens)/1e6*price.outputPerMillion
}

// EstimateImageCost estimates the USD cost of one generated image.
func EstimateImageCost(model, size, quality string) float64 {
	sizes, ok := imagePrices[model]
	if !ok {
		return 0
	}
	qualities, ok := sizes[size]
	if !ok {
		return 0
	}
	if quality == "" {
		quality = "standard"
	}
	return qualities[quality]
}

// EstimateAudioCost estimates the USD cost of a TTS call from its input
// character count.
func EstimateAudioCost(model string, inputChars int) float64 {
	price, ok := audioPricePerMillionChars[model]
	if !ok {
		return 0
	}
	return float64(inputChars) / 1e6 * price
}

// lookupChatPrice resolves a model to its price, trying an exact match and
// then the longest matching prefix.
func lookupChatPrice(model string) (modelPrice, bool) {
	if price, ok := chatPrices[model]; ok {
		return price, true
	}
	var (
		best    string
		bestHit modelPrice
		found   bool
	)
	for name, price := range chatPrices {
		if strings.HasPrefix(model, name+"-") && len(name) > len(best) {
			best = name
			bestHit = price
			found = true
		}
	}
	return bestHit, found
}
