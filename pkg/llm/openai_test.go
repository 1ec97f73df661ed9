package llm

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brianfields/deeplearn-sub002/pkg/models"
)

// scriptedAPI returns canned SDK responses and records chat requests.
type scriptedAPI struct {
	chatResp   openai.ChatCompletionResponse
	chatErr    error
	chatReqs   []openai.ChatCompletionRequest
	imageResp  openai.ImageResponse
	imageErr   error
	speechBody []byte
	speechErr  error
}

func (a *scriptedAPI) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	a.chatReqs = append(a.chatReqs, req)
	return a.chatResp, a.chatErr
}

func (a *scriptedAPI) CreateImage(_ context.Context, _ openai.ImageRequest) (openai.ImageResponse, error) {
	return a.imageResp, a.imageErr
}

func (a *scriptedAPI) CreateSpeech(_ context.Context, _ openai.CreateSpeechRequest) (openai.RawResponse, error) {
	if a.speechErr != nil {
		return openai.RawResponse{}, a.speechErr
	}
	return openai.RawResponse{ReadCloser: io.NopCloser(bytes.NewReader(a.speechBody))}, nil
}

func TestOpenAIProvider_Complete(t *testing.T) {
	api := &scriptedAPI{
		chatResp: openai.ChatCompletionResponse{
			ID:                "chatcmpl-42",
			Model:             "gpt-4o-mini",
			SystemFingerprint: "fp_test",
			Created:           1700000000,
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: `{"ok": true}`}},
			},
			Usage: openai.Usage{PromptTokens: 12, CompletionTokens: 7, TotalTokens: 19},
		},
	}
	p := newOpenAIProviderForTest(api)

	temp := 0.1
	resp, err := p.Complete(context.Background(), CompletionRequest{
		Model:           "gpt-4o-mini",
		Messages:        []models.ChatMessage{{Role: models.RoleUser, Content: "hi"}},
		Temperature:     &temp,
		MaxOutputTokens: 256,
		Schema:          titleSchema,
	})
	require.NoError(t, err)

	assert.Equal(t, `{"ok": true}`, resp.Content)
	assert.Equal(t, "chatcmpl-42", resp.ResponseID)
	assert.Equal(t, "fp_test", resp.SystemFingerprint)
	assert.Equal(t, 19, resp.Usage.TotalTokens)
	assert.NotNil(t, resp.Raw)

	require.Len(t, api.chatReqs, 1)
	sent := api.chatReqs[0]
	assert.Equal(t, float32(0.1), sent.Temperature)
	assert.Equal(t, 256, sent.MaxTokens)
	require.NotNil(t, sent.ResponseFormat)
	assert.Equal(t, openai.ChatCompletionResponseFormatTypeJSONSchema, sent.ResponseFormat.Type)
	assert.Equal(t, "title_doc", sent.ResponseFormat.JSONSchema.Name)
}

func TestOpenAIProvider_Complete_NoChoices(t *testing.T) {
	p := newOpenAIProviderForTest(&scriptedAPI{chatResp: openai.ChatCompletionResponse{}})

	_, err := p.Complete(context.Background(), CompletionRequest{
		Model:    "gpt-4o-mini",
		Messages: []models.ChatMessage{{Role: models.RoleUser, Content: "hi"}},
	})
	require.Error(t, err)
	assert.Equal(t, ErrorTypeInvalidResponse, TypeOf(err))
}

func TestOpenAIProvider_GenerateImage(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G'}
	api := &scriptedAPI{
		imageResp: openai.ImageResponse{
			Data: []openai.ImageResponseDataInner{
				{B64JSON: base64.StdEncoding.EncodeToString(png), RevisedPrompt: "refined"},
			},
		},
	}
	p := newOpenAIProviderForTest(api)

	data, err := p.GenerateImage(context.Background(), ImageRequest{
		Prompt: "cover art",
		Model:  "dall-e-3",
		Size:   "1792x1024",
	})
	require.NoError(t, err)

	assert.Equal(t, png, data.Bytes)
	assert.Equal(t, "image/png", data.ContentType)
	assert.Equal(t, "refined", data.RevisedPrompt)
	assert.Equal(t, 1792, data.Width)
	assert.Equal(t, 1024, data.Height)
}

func TestOpenAIProvider_GenerateSpeech(t *testing.T) {
	p := newOpenAIProviderForTest(&scriptedAPI{speechBody: []byte("mp3")})

	data, err := p.GenerateSpeech(context.Background(), AudioRequest{
		Input: "hello world",
		Model: "tts-1",
		Voice: "alloy",
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("mp3"), data.Bytes)
	assert.Equal(t, "audio/mpeg", data.ContentType)
}

func TestOpenAIProvider_GenerateSpeech_Empty(t *testing.T) {
	p := newOpenAIProviderForTest(&scriptedAPI{speechBody: nil})

	_, err := p.GenerateSpeech(context.Background(), AudioRequest{Input: "hi", Model: "tts-1", Voice: "alloy"})
	require.Error(t, err)
	assert.Equal(t, ErrorTypeInvalidResponse, TypeOf(err))
}

func TestClassifyOpenAIError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantType  ErrorType
		retryable bool
	}{
		{"rate limited", &openai.APIError{HTTPStatusCode: 429}, ErrorTypeRateLimited, true},
		{"provider timeout", &openai.APIError{HTTPStatusCode: 408}, ErrorTypeTimeout, true},
		{"server error", &openai.APIError{HTTPStatusCode: 503}, ErrorTypeProvider, true},
		{"bad request", &openai.APIError{HTTPStatusCode: 400}, ErrorTypeProvider, false},
		{"deadline", context.DeadlineExceeded, ErrorTypeTimeout, true},
		{"cancelled", context.Canceled, ErrorTypeCancelled, false},
		{"transport", errors.New("connection reset by peer"), ErrorTypeTransport, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lerr := classifyOpenAIError("test", tt.err)
			assert.Equal(t, tt.wantType, lerr.Type)
			assert.Equal(t, tt.retryable, lerr.Retryable)
		})
	}
}

func TestTranslateMessages_Multimodal(t *testing.T) {
	out := translateMessages([]models.ChatMessage{
		{Role: models.RoleSystem, Content: "You are an art critic."},
		{Role: models.RoleUser, Parts: []models.ContentPart{
			{Type: "text", Text: "Describe this image."},
			{Type: "image_url", ImageURL: "https://example.com/a.png"},
		}},
	})

	require.Len(t, out, 2)
	assert.Equal(t, "You are an art critic.", out[0].Content)
	require.Len(t, out[1].MultiContent, 2)
	assert.Equal(t, openai.ChatMessagePartTypeText, out[1].MultiContent[0].Type)
	assert.Equal(t, openai.ChatMessagePartTypeImageURL, out[1].MultiContent[1].Type)
	assert.Equal(t, "https://example.com/a.png", out[1].MultiContent[1].ImageURL.URL)
}
