package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brianfields/deeplearn-sub002/pkg/models"
)

// fakeProvider scripts provider behavior per call. Each Complete pops the
// next scripted result; the last one repeats when the script runs out.
type fakeProvider struct {
	mu           sync.Mutex
	completes    []func(req CompletionRequest) (*CompletionResponse, error)
	completeReqs []CompletionRequest
	imageFn      func(req ImageRequest) (*ImageData, error)
	speechFn     func(req AudioRequest) (*AudioData, error)
}

func (p *fakeProvider) Name() string { return "fake" }

func (p *fakeProvider) Complete(_ context.Context, req CompletionRequest) (*CompletionResponse, error) {
	p.mu.Lock()
	p.completeReqs = append(p.completeReqs, req)
	var fn func(CompletionRequest) (*CompletionResponse, error)
	if len(p.completes) > 0 {
		fn = p.completes[0]
		if len(p.completes) > 1 {
			p.completes = p.completes[1:]
		}
	}
	p.mu.Unlock()
	if fn == nil {
		return nil, NewError(ErrorTypeInternal, "no scripted response", nil)
	}
	return fn(req)
}

func (p *fakeProvider) GenerateImage(_ context.Context, req ImageRequest) (*ImageData, error) {
	return p.imageFn(req)
}

func (p *fakeProvider) GenerateSpeech(_ context.Context, req AudioRequest) (*AudioData, error) {
	return p.speechFn(req)
}

func (p *fakeProvider) completeCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.completeReqs)
}

// auditRow is one recorded request with its terminal outcome.
type auditRow struct {
	id        string
	request   RequestRecord
	completed *CompletionRecord
	failed    *FailureRecord
}

// fakeRecorder collects audit rows in memory.
type fakeRecorder struct {
	mu   sync.Mutex
	rows []*auditRow
}

func (r *fakeRecorder) BeginRequest(_ context.Context, rec RequestRecord) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row := &auditRow{id: fmt.Sprintf("req-%d", len(r.rows)+1), request: rec}
	r.rows = append(r.rows, row)
	return row.id, nil
}

func (r *fakeRecorder) CompleteRequest(_ context.Context, id string, rec CompletionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.id == id {
			row.completed = &rec
			return nil
		}
	}
	return fmt.Errorf("unknown request id %s", id)
}

func (r *fakeRecorder) FailRequest(_ context.Context, id string, rec FailureRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.id == id {
			row.failed = &rec
			return nil
		}
	}
	return fmt.Errorf("unknown request id %s", id)
}

func (r *fakeRecorder) row(i int) *auditRow {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows[i]
}

func (r *fakeRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

func completionOK(content string) *CompletionResponse {
	return &CompletionResponse{
		Content:           content,
		Model:             "gpt-4o-mini",
		ResponseID:        "chatcmpl-123",
		SystemFingerprint: "fp_abc",
		Usage:             models.TokenUsage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
		CreatedAt:         time.Now(),
	}
}

func newTestGateway(p Provider, r Recorder, cfg GatewayConfig) *Gateway {
	if cfg.DefaultModel == "" {
		cfg.DefaultModel = "gpt-4o-mini"
	}
	if cfg.Concurrency == 0 {
		cfg.Concurrency = 4
	}
	if cfg.AttemptTimeout == 0 {
		cfg.AttemptTimeout = 5 * time.Second
	}
	return NewGateway(p, r, NewMemoryCache(16), cfg)
}

func userMessages(text string) []models.ChatMessage {
	return []models.ChatMessage{{Role: models.RoleUser, Content: text}}
}

func TestGateway_GenerateResponse_Success(t *testing.T) {
	provider := &fakeProvider{completes: []func(CompletionRequest) (*CompletionResponse, error){
		func(CompletionRequest) (*CompletionResponse, error) { return completionOK("hello"), nil },
	}}
	recorder := &fakeRecorder{}
	g := newTestGateway(provider, recorder, GatewayConfig{})

	resp, err := g.GenerateResponse(context.Background(), Request{
		Messages: userMessages("say hello"),
		Scope:    Scope{FlowRunID: "flow-1", StepRunID: "step-1"},
	})
	require.NoError(t, err)

	assert.Equal(t, "hello", resp.Content)
	assert.Equal(t, "gpt-4o-mini", resp.Model)
	assert.Equal(t, "fake", resp.Provider)
	assert.Equal(t, 150, resp.Usage.TotalTokens)
	assert.False(t, resp.Cached)
	assert.NotEmpty(t, resp.RequestID)
	// gpt-4o-mini: 100 in * 0.15/1M + 50 out * 0.60/1M
	assert.InDelta(t, 0.000045, resp.CostEstimate, 1e-9)

	require.Equal(t, 1, recorder.count())
	row := recorder.row(0)
	assert.Equal(t, resp.RequestID, row.id)
	assert.Equal(t, VariantChat, row.request.Variant)
	assert.Equal(t, "flow-1", row.request.Scope.FlowRunID)
	require.NotNil(t, row.completed)
	assert.Equal(t, "hello", row.completed.Content)
	assert.Equal(t, 1, row.completed.RetryAttempt)
	assert.False(t, row.completed.Cached)
}

func TestGateway_GenerateResponse_RetriesThenSucceeds(t *testing.T) {
	provider := &fakeProvider{completes: []func(CompletionRequest) (*CompletionResponse, error){
		func(CompletionRequest) (*CompletionResponse, error) {
			return nil, NewError(ErrorTypeRateLimited, "rate limited", nil)
		},
		func(CompletionRequest) (*CompletionResponse, error) { return completionOK("recovered"), nil },
	}}
	recorder := &fakeRecorder{}
	g := newTestGateway(provider, recorder, GatewayConfig{MaxRetries: 2})

	resp, err := g.GenerateResponse(context.Background(), Request{Messages: userMessages("x")})
	require.NoError(t, err)

	assert.Equal(t, "recovered", resp.Content)
	assert.Equal(t, 2, provider.completeCalls())

	// Both attempts share one audit row; it reflects the final outcome.
	require.Equal(t, 1, recorder.count())
	row := recorder.row(0)
	require.NotNil(t, row.completed)
	assert.Equal(t, 2, row.completed.RetryAttempt)
}

func TestGateway_GenerateResponse_ExhaustsRetryBudget(t *testing.T) {
	provider := &fakeProvider{completes: []func(CompletionRequest) (*CompletionResponse, error){
		func(CompletionRequest) (*CompletionResponse, error) {
			return nil, NewError(ErrorTypeTransport, "connection reset", nil)
		},
	}}
	recorder := &fakeRecorder{}
	g := newTestGateway(provider, recorder, GatewayConfig{MaxRetries: 1})

	_, err := g.GenerateResponse(context.Background(), Request{Messages: userMessages("x")})
	require.Error(t, err)
	assert.Equal(t, ErrorTypeTransport, TypeOf(err))
	assert.Equal(t, 2, provider.completeCalls())

	row := recorder.row(0)
	require.NotNil(t, row.failed)
	assert.Nil(t, row.completed)
	assert.Equal(t, ErrorTypeTransport, row.failed.ErrorType)
	assert.Equal(t, 2, row.failed.RetryAttempt)
}

func TestGateway_GenerateResponse_TerminalErrorNotRetried(t *testing.T) {
	provider := &fakeProvider{completes: []func(CompletionRequest) (*CompletionResponse, error){
		func(CompletionRequest) (*CompletionResponse, error) {
			return nil, NewError(ErrorTypeProvider, "invalid request", nil)
		},
	}}
	recorder := &fakeRecorder{}
	g := newTestGateway(provider, recorder, GatewayConfig{MaxRetries: 3})

	_, err := g.GenerateResponse(context.Background(), Request{Messages: userMessages("x")})
	require.Error(t, err)
	assert.Equal(t, ErrorTypeProvider, TypeOf(err))
	assert.Equal(t, 1, provider.completeCalls())

	row := recorder.row(0)
	require.NotNil(t, row.failed)
	assert.Equal(t, 1, row.failed.RetryAttempt)
}

var titleSchema = MustResponseSchema("title_doc", []byte(`{
	"type": "object",
	"properties": {"title": {"type": "string"}},
	"required": ["title"],
	"additionalProperties": false
}`))

func TestGateway_GenerateStructured_Valid(t *testing.T) {
	provider := &fakeProvider{completes: []func(CompletionRequest) (*CompletionResponse, error){
		func(req CompletionRequest) (*CompletionResponse, error) {
			return completionOK(`{"title": "Intro to Go"}`), nil
		},
	}}
	recorder := &fakeRecorder{}
	g := newTestGateway(provider, recorder, GatewayConfig{})

	var out struct {
		Title string `json:"title"`
	}
	result, err := g.GenerateStructured(context.Background(), Request{Messages: userMessages("x")}, titleSchema, &out)
	require.NoError(t, err)

	assert.Equal(t, "Intro to Go", out.Title)
	assert.False(t, result.Repaired)

	row := recorder.row(0)
	assert.Equal(t, VariantStructured, row.request.Variant)
	require.NotNil(t, row.completed)

	// The schema document travels with the provider request.
	require.Equal(t, 1, provider.completeCalls())
	require.NotNil(t, provider.completeReqs[0].Schema)
	assert.Equal(t, "title_doc", provider.completeReqs[0].Schema.Name())
}

func TestGateway_GenerateStructured_RepairSucceeds(t *testing.T) {
	provider := &fakeProvider{completes: []func(CompletionRequest) (*CompletionResponse, error){
		func(CompletionRequest) (*CompletionResponse, error) {
			return completionOK(`{"wrong_field": true}`), nil
		},
		func(CompletionRequest) (*CompletionResponse, error) {
			return completionOK(`{"title": "Repaired"}`), nil
		},
	}}
	recorder := &fakeRecorder{}
	g := newTestGateway(provider, recorder, GatewayConfig{})

	var out struct {
		Title string `json:"title"`
	}
	result, err := g.GenerateStructured(context.Background(), Request{Messages: userMessages("x")}, titleSchema, &out)
	require.NoError(t, err)

	assert.True(t, result.Repaired)
	assert.Equal(t, "Repaired", out.Title)

	// Two audited calls: the invalid one failed, the repair completed.
	require.Equal(t, 2, recorder.count())
	first := recorder.row(0)
	require.NotNil(t, first.failed)
	assert.Equal(t, ErrorTypeInvalidResponse, first.failed.ErrorType)
	assert.Equal(t, `{"wrong_field": true}`, first.failed.Content)
	second := recorder.row(1)
	require.NotNil(t, second.completed)
	assert.Equal(t, result.RequestID, second.id)

	// The repair conversation carries the invalid output and the error.
	repairReq := provider.completeReqs[1]
	require.Len(t, repairReq.Messages, 3)
	assert.Equal(t, models.RoleAssistant, repairReq.Messages[1].Role)
	assert.Equal(t, `{"wrong_field": true}`, repairReq.Messages[1].Content)
	assert.Equal(t, models.RoleUser, repairReq.Messages[2].Role)
	assert.Contains(t, repairReq.Messages[2].Content, "not valid")
}

func TestGateway_GenerateStructured_RepairFails(t *testing.T) {
	provider := &fakeProvider{completes: []func(CompletionRequest) (*CompletionResponse, error){
		func(CompletionRequest) (*CompletionResponse, error) {
			return completionOK(`not json at all`), nil
		},
	}}
	recorder := &fakeRecorder{}
	g := newTestGateway(provider, recorder, GatewayConfig{})

	var out struct {
		Title string `json:"title"`
	}
	_, err := g.GenerateStructured(context.Background(), Request{Messages: userMessages("x")}, titleSchema, &out)
	require.Error(t, err)
	assert.Equal(t, ErrorTypeInvalidResponse, TypeOf(err))

	assert.Equal(t, 2, provider.completeCalls())
	require.Equal(t, 2, recorder.count())
	require.NotNil(t, recorder.row(0).failed)
	require.NotNil(t, recorder.row(1).failed)
}

func TestGateway_GenerateStructured_RequiresSchema(t *testing.T) {
	g := newTestGateway(&fakeProvider{}, &fakeRecorder{}, GatewayConfig{})
	_, err := g.GenerateStructured(context.Background(), Request{Messages: userMessages("x")}, nil, nil)
	require.Error(t, err)
	assert.Equal(t, ErrorTypeValidation, TypeOf(err))
}

func TestGateway_GenerateStructured_StripsCodeFences(t *testing.T) {
	provider := &fakeProvider{completes: []func(CompletionRequest) (*CompletionResponse, error){
		func(CompletionRequest) (*CompletionResponse, error) {
			return completionOK("```json\n{\"title\": \"Fenced\"}\n```"), nil
		},
	}}
	g := newTestGateway(provider, &fakeRecorder{}, GatewayConfig{})

	var out struct {
		Title string `json:"title"`
	}
	result, err := g.GenerateStructured(context.Background(), Request{Messages: userMessages("x")}, titleSchema, &out)
	require.NoError(t, err)
	assert.False(t, result.Repaired)
	assert.Equal(t, "Fenced", out.Title)
}

func TestGateway_Cache_HitReplaysWithFreshAuditRow(t *testing.T) {
	provider := &fakeProvider{completes: []func(CompletionRequest) (*CompletionResponse, error){
		func(CompletionRequest) (*CompletionResponse, error) { return completionOK("cached answer"), nil },
	}}
	recorder := &fakeRecorder{}
	g := newTestGateway(provider, recorder, GatewayConfig{
		CacheEnabled:              true,
		CacheTemperatureThreshold: 0.2,
	})

	temp := 0.0
	req := Request{Messages: userMessages("deterministic"), Temperature: &temp}

	first, err := g.GenerateResponse(context.Background(), req)
	require.NoError(t, err)
	second, err := g.GenerateResponse(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1, provider.completeCalls())
	assert.False(t, first.Cached)
	assert.True(t, second.Cached)
	assert.Equal(t, "cached answer", second.Content)
	assert.Equal(t, first.Usage, second.Usage)
	assert.Zero(t, second.CostEstimate)
	assert.NotEqual(t, first.RequestID, second.RequestID)

	require.Equal(t, 2, recorder.count())
	replay := recorder.row(1)
	require.NotNil(t, replay.completed)
	assert.True(t, replay.completed.Cached)
	assert.Zero(t, replay.completed.CostEstimate)
}

func TestGateway_Cache_SkipsHighTemperature(t *testing.T) {
	provider := &fakeProvider{completes: []func(CompletionRequest) (*CompletionResponse, error){
		func(CompletionRequest) (*CompletionResponse, error) { return completionOK("creative"), nil },
	}}
	g := newTestGateway(provider, &fakeRecorder{}, GatewayConfig{
		CacheEnabled:              true,
		CacheTemperatureThreshold: 0.2,
	})

	temp := 0.9
	req := Request{Messages: userMessages("creative"), Temperature: &temp}

	_, err := g.GenerateResponse(context.Background(), req)
	require.NoError(t, err)
	_, err = g.GenerateResponse(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 2, provider.completeCalls())
}

func TestGateway_Cache_SkipsUnsetTemperature(t *testing.T) {
	provider := &fakeProvider{completes: []func(CompletionRequest) (*CompletionResponse, error){
		func(CompletionRequest) (*CompletionResponse, error) { return completionOK("default temp"), nil },
	}}
	g := newTestGateway(provider, &fakeRecorder{}, GatewayConfig{
		CacheEnabled:              true,
		CacheTemperatureThreshold: 0.2,
	})

	req := Request{Messages: userMessages("no temperature")}

	_, err := g.GenerateResponse(context.Background(), req)
	require.NoError(t, err)
	_, err = g.GenerateResponse(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 2, provider.completeCalls())
}

func TestGateway_GenerateAudio(t *testing.T) {
	provider := &fakeProvider{
		speechFn: func(req AudioRequest) (*AudioData, error) {
			return &AudioData{Bytes: []byte("mp3-bytes"), ContentType: "audio/mpeg"}, nil
		},
	}
	recorder := &fakeRecorder{}
	g := newTestGateway(provider, recorder, GatewayConfig{})

	// 300 words at 150 wpm is 120 seconds.
	input := strings.TrimSpace(strings.Repeat("word ", 300))
	result, err := g.GenerateAudio(context.Background(), AudioRequest{Input: input})
	require.NoError(t, err)

	assert.Equal(t, []byte("mp3-bytes"), result.Audio)
	assert.Equal(t, "audio/mpeg", result.ContentType)
	assert.Equal(t, "tts-1", result.Model)
	assert.Equal(t, "alloy", result.Voice)
	assert.InDelta(t, 120.0, result.DurationSeconds, 0.01)
	assert.InDelta(t, EstimateAudioCost("tts-1", len(input)), result.CostEstimate, 1e-9)

	row := recorder.row(0)
	assert.Equal(t, VariantAudio, row.request.Variant)
	require.NotNil(t, row.completed)
	assert.Equal(t, "audio/mpeg", row.completed.ResponseRaw["content_type"])
}

func TestGateway_GenerateAudio_RequiresInput(t *testing.T) {
	g := newTestGateway(&fakeProvider{}, &fakeRecorder{}, GatewayConfig{})
	_, err := g.GenerateAudio(context.Background(), AudioRequest{Input: "   "})
	require.Error(t, err)
	assert.Equal(t, ErrorTypeValidation, TypeOf(err))
}

func TestGateway_GenerateImage(t *testing.T) {
	provider := &fakeProvider{
		imageFn: func(req ImageRequest) (*ImageData, error) {
			return &ImageData{
				Bytes:         []byte("png-bytes"),
				ContentType:   "image/png",
				RevisedPrompt: "a refined prompt",
				Width:         1024,
				Height:        1024,
			}, nil
		},
	}
	recorder := &fakeRecorder{}
	g := newTestGateway(provider, recorder, GatewayConfig{})

	result, err := g.GenerateImage(context.Background(), ImageRequest{Prompt: "abstract cover art", Quality: "hd"})
	require.NoError(t, err)

	assert.Equal(t, []byte("png-bytes"), result.Image)
	assert.Equal(t, "dall-e-3", result.Model)
	assert.Equal(t, 1024, result.Width)
	assert.Equal(t, "a refined prompt", result.RevisedPrompt)
	assert.InDelta(t, 0.080, result.CostEstimate, 1e-9)

	row := recorder.row(0)
	assert.Equal(t, VariantImage, row.request.Variant)
	require.NotNil(t, row.completed)
	assert.Equal(t, "a refined prompt", row.completed.Content)
}

func TestGateway_SemaphoreRespectsCancellation(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	provider := &fakeProvider{completes: []func(CompletionRequest) (*CompletionResponse, error){
		func(CompletionRequest) (*CompletionResponse, error) {
			close(entered)
			<-release
			return completionOK("slow"), nil
		},
	}}
	g := newTestGateway(provider, &fakeRecorder{}, GatewayConfig{Concurrency: 1, AttemptTimeout: 10 * time.Second})

	done := make(chan error, 1)
	go func() {
		_, err := g.GenerateResponse(context.Background(), Request{Messages: userMessages("slow")})
		done <- err
	}()
	<-entered

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := g.GenerateResponse(ctx, Request{Messages: userMessages("blocked")})
	require.Error(t, err)
	assert.Equal(t, ErrorTypeTimeout, TypeOf(err))

	close(release)
	require.NoError(t, <-done)
}

func TestSanitizeJSONContent(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"whitespace", "  {\"a\":1}\n", `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"unterminated fence", "```json\n{\"a\":1}", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeJSONContent(tt.input))
		})
	}
}

func TestEstimateSpeechSeconds(t *testing.T) {
	assert.InDelta(t, 60.0, estimateSpeechSeconds(strings.TrimSpace(strings.Repeat("w ", 150)), 0), 0.01)
	assert.InDelta(t, 30.0, estimateSpeechSeconds(strings.TrimSpace(strings.Repeat("w ", 150)), 2.0), 0.01)
}
