// Package llm is the single gateway to LLM providers. Every call (text,
// structured, audio, image) goes through the Gateway, which owns retries,
// the global concurrency cap, the response cache, cost estimation, and the
// durable llm_requests audit trail.
package llm

import (
	"time"

	"github.com/brianfields/deeplearn-sub002/pkg/models"
)

// API variants recorded on audit rows.
const (
	VariantChat       = "chat"
	VariantStructured = "structured"
	VariantAudio      = "audio"
	VariantImage      = "image"
)

// Scope ties a provider call to the flow execution that made it. Zero values
// mean the call originated outside any flow.
type Scope struct {
	UserID    string
	FlowRunID string
	StepRunID string
}

// Request describes a text or structured generation call.
type Request struct {
	Messages []models.ChatMessage

	// Model overrides the gateway default when set.
	Model string

	// Temperature is the sampling temperature; nil uses the provider
	// default. Only calls at or below the cache threshold are cacheable.
	Temperature *float64

	// MaxOutputTokens caps the response length; 0 uses the provider default.
	MaxOutputTokens int

	Scope Scope
}

// Response is the outcome of a text or structured generation call.
// RequestID is the id of the audit row and is set even when the call was
// served from cache.
type Response struct {
	RequestID          string
	Content            string
	Model              string
	Provider           string
	Usage              models.TokenUsage
	CostEstimate       float64
	Cached             bool
	ExecutionTimeMS    int
	ProviderResponseID string
	SystemFingerprint  string
}

// StructuredResult is the outcome of a structured generation call. The typed
// value is unmarshaled into the caller's target; Repaired reports whether the
// single repair pass produced it.
type StructuredResult struct {
	Response
	Repaired bool
}

// AudioRequest describes a text-to-speech call.
type AudioRequest struct {
	Input string
	Model string
	Voice string

	// Speed is the speech rate multiplier; 0 uses the provider default.
	Speed float64

	Scope Scope
}

// AudioResult is the outcome of a text-to-speech call.
type AudioResult struct {
	RequestID       string
	Audio           []byte
	ContentType     string
	Model           string
	Voice           string
	DurationSeconds float64
	CostEstimate    float64
	ExecutionTimeMS int
}

// ImageRequest describes an image generation call.
type ImageRequest struct {
	Prompt  string
	Model   string
	Size    string
	Quality string
	Style   string

	Scope Scope
}

// ImageResult is the outcome of an image generation call.
type ImageResult struct {
	RequestID       string
	Image           []byte
	ContentType     string
	Model           string
	Width           int
	Height          int
	RevisedPrompt   string
	CostEstimate    float64
	ExecutionTimeMS int
}

// CompletionRequest is the provider-level request after gateway defaults
// have been applied.
type CompletionRequest struct {
	Model           string
	Messages        []models.ChatMessage
	Temperature     *float64
	MaxOutputTokens int

	// Schema constrains the response to a JSON document when set.
	Schema *ResponseSchema
}

// CompletionResponse is the provider-level response.
type CompletionResponse struct {
	Content           string
	Model             string
	ResponseID        string
	SystemFingerprint string
	Usage             models.TokenUsage
	CreatedAt         time.Time
	Raw               map[string]any
}

// ImageData is the provider-level image result.
type ImageData struct {
	Bytes         []byte
	ContentType   string
	RevisedPrompt string
	Width         int
	Height        int
}

// AudioData is the provider-level speech result.
type AudioData struct {
	Bytes       []byte
	ContentType string
}
