package llm

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/brianfields/deeplearn-sub002/pkg/models"
)

// openaiAPI captures the subset of the go-openai client the provider uses,
// so tests can substitute a scripted implementation.
type openaiAPI interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
	CreateImage(ctx context.Context, request openai.ImageRequest) (openai.ImageResponse, error)
	CreateSpeech(ctx context.Context, request openai.CreateSpeechRequest) (openai.RawResponse, error)
}

// OpenAIProvider implements Provider via the OpenAI API.
type OpenAIProvider struct {
	api openaiAPI
}

// OpenAIOptions configures the OpenAI provider.
type OpenAIOptions struct {
	APIKey  string
	BaseURL string

	// HTTPTimeout bounds the underlying HTTP client. Per-attempt deadlines
	// come from the gateway context; this is the hard backstop.
	HTTPTimeout time.Duration
}

// NewOpenAIProvider builds an OpenAI-backed provider.
func NewOpenAIProvider(opts OpenAIOptions) (*OpenAIProvider, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	if opts.HTTPTimeout > 0 {
		cfg.HTTPClient = &http.Client{Timeout: opts.HTTPTimeout}
	}
	return &OpenAIProvider{api: openai.NewClientWithConfig(cfg)}, nil
}

// newOpenAIProviderForTest wires a scripted API implementation.
func newOpenAIProviderForTest(api openaiAPI) *OpenAIProvider {
	return &OpenAIProvider{api: api}
}

// Name returns the provider identifier recorded on audit rows.
func (p *OpenAIProvider) Name() string { return "openai" }

// Complete renders a chat completion, optionally constrained to a JSON
// schema via response_format.
func (p *OpenAIProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	request := openai.ChatCompletionRequest{
		Model:    req.Model,
		Messages: translateMessages(req.Messages),
	}
	if req.Temperature != nil {
		request.Temperature = float32(*req.Temperature)
	}
	if req.MaxOutputTokens > 0 {
		request.MaxTokens = req.MaxOutputTokens
	}
	if req.Schema != nil {
		request.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   req.Schema.Name(),
				Schema: req.Schema.Raw(),
			},
		}
	}

	resp, err := p.api.CreateChatCompletion(ctx, request)
	if err != nil {
		return nil, classifyOpenAIError("chat completion", err)
	}
	if len(resp.Choices) == 0 {
		return nil, NewError(ErrorTypeInvalidResponse, "provider returned no choices", nil)
	}

	return &CompletionResponse{
		Content:           resp.Choices[0].Message.Content,
		Model:             resp.Model,
		ResponseID:        resp.ID,
		SystemFingerprint: resp.SystemFingerprint,
		Usage: models.TokenUsage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
		CreatedAt: time.Unix(resp.Created, 0).UTC(),
		Raw:       toRawMap(resp),
	}, nil
}

// GenerateImage renders one image and returns the decoded bytes.
func (p *OpenAIProvider) GenerateImage(ctx context.Context, req ImageRequest) (*ImageData, error) {
	request := openai.ImageRequest{
		Prompt:         req.Prompt,
		Model:          req.Model,
		N:              1,
		Size:           req.Size,
		Quality:        req.Quality,
		Style:          req.Style,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	}

	resp, err := p.api.CreateImage(ctx, request)
	if err != nil {
		return nil, classifyOpenAIError("image generation", err)
	}
	if len(resp.Data) == 0 {
		return nil, NewError(ErrorTypeInvalidResponse, "provider returned no image data", nil)
	}

	raw, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, NewError(ErrorTypeInvalidResponse, "provider returned undecodable image data", err)
	}

	width, height := parseImageSize(req.Size)
	return &ImageData{
		Bytes:         raw,
		ContentType:   "image/png",
		RevisedPrompt: resp.Data[0].RevisedPrompt,
		Width:         width,
		Height:        height,
	}, nil
}

// GenerateSpeech renders TTS audio and returns the raw bytes.
func (p *OpenAIProvider) GenerateSpeech(ctx context.Context, req AudioRequest) (*AudioData, error) {
	request := openai.CreateSpeechRequest{
		Model: openai.SpeechModel(req.Model),
		Input: req.Input,
		Voice: openai.SpeechVoice(req.Voice),
	}
	if req.Speed > 0 {
		request.Speed = req.Speed
	}

	resp, err := p.api.CreateSpeech(ctx, request)
	if err != nil {
		return nil, classifyOpenAIError("speech generation", err)
	}
	defer func() { _ = resp.Close() }()

	raw, err := io.ReadAll(resp)
	if err != nil {
		return nil, NewError(ErrorTypeTransport, "failed to read speech response", err)
	}
	if len(raw) == 0 {
		return nil, NewError(ErrorTypeInvalidResponse, "provider returned empty audio", nil)
	}

	return &AudioData{
		Bytes:       raw,
		ContentType: "audio/mpeg",
	}, nil
}

// translateMessages converts gateway messages to the SDK shape. Multimodal
// parts map to MultiContent; plain text stays on Content.
func translateMessages(messages []models.ChatMessage) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		msg := openai.ChatCompletionMessage{Role: string(m.Role)}
		if len(m.Parts) > 0 {
			parts := make([]openai.ChatMessagePart, 0, len(m.Parts))
			for _, p := range m.Parts {
				switch p.Type {
				case "image_url":
					parts = append(parts, openai.ChatMessagePart{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: p.ImageURL},
					})
				default:
					parts = append(parts, openai.ChatMessagePart{
						Type: openai.ChatMessagePartTypeText,
						Text: p.Text,
					})
				}
			}
			msg.MultiContent = parts
		} else {
			msg.Content = m.Content
		}
		out = append(out, msg)
	}
	return out
}

// classifyOpenAIError maps SDK errors onto the gateway taxonomy. Rate limits,
// timeouts, transport failures, and provider 5xx are retryable; provider-side
// 4xx are terminal for the call.
func classifyOpenAIError(op string, err error) *Error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == http.StatusTooManyRequests:
			return NewError(ErrorTypeRateLimited, op+" rate limited", err)
		case apiErr.HTTPStatusCode == http.StatusRequestTimeout:
			return NewError(ErrorTypeTimeout, op+" timed out at provider", err)
		case apiErr.HTTPStatusCode >= 500:
			lerr := NewError(ErrorTypeProvider,
				fmt.Sprintf("%s failed with status %d", op, apiErr.HTTPStatusCode), err)
			lerr.Retryable = true
			return lerr
		default:
			return NewError(ErrorTypeProvider,
				fmt.Sprintf("%s failed with status %d", op, apiErr.HTTPStatusCode), err)
		}
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return NewError(ErrorTypeTimeout, op+" deadline exceeded", err)
	case errors.Is(err, context.Canceled):
		return NewError(ErrorTypeCancelled, op+" cancelled", err)
	default:
		// Anything below the API layer (DNS, TLS, connection reset).
		return NewError(ErrorTypeTransport, op+" transport failure", err)
	}
}

// toRawMap converts an SDK response struct into a generic map for the audit
// row.
func toRawMap(v any) map[string]any {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	return raw
}

// parseImageSize splits "1024x1024" into its dimensions.
func parseImageSize(size string) (int, int) {
	parts := strings.SplitN(size, "x", 2)
	if len(parts) != 2 {
		return 0, 0
	}
	w, err1 := strconv.Atoi(parts[0])
	h, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, 0
	}
	return w, h
}

var _ Provider = (*OpenAIProvider)(nil)
