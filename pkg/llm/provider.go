package llm

import "context"

// Provider is one LLM backend. Implementations translate the gateway types
// to the provider SDK and wrap failures in *Error so the gateway can decide
// retryability without knowing the SDK.
type Provider interface {
	Name() string
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	GenerateImage(ctx context.Context, req ImageRequest) (*ImageData, error)
	GenerateSpeech(ctx context.Context, req AudioRequest) (*AudioData, error)
}
