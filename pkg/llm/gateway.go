package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/brianfields/deeplearn-sub002/pkg/models"
)

// Retry backoff shape. The attempt budget comes from GatewayConfig.MaxRetries.
const (
	retryInitialInterval = 500 * time.Millisecond
	retryMultiplier      = 2.0
	retryMaxInterval     = 30 * time.Second
)

// auditWriteTimeout bounds audit row writes. Audit writes run on a fresh
// background context so a cancelled caller still gets its outcome recorded.
const auditWriteTimeout = 5 * time.Second

// Defaults applied when a media request leaves fields unset.
const (
	defaultImageModel = "dall-e-3"
	defaultImageSize  = "1024x1024"
	defaultAudioModel = "tts-1"
	defaultAudioVoice = "alloy"
)

// speechWordsPerMinute is the rate used to estimate audio duration from the
// input text. The provider does not report duration.
const speechWordsPerMinute = 150.0

// GatewayConfig controls retries, concurrency, per-attempt timeouts, and the
// response cache.
type GatewayConfig struct {
	// DefaultModel is used for text/structured calls that do not name one.
	DefaultModel string

	// MaxRetries is the number of additional attempts after the first,
	// spent only on retryable failures.
	MaxRetries int

	// Concurrency caps in-flight provider calls across the process.
	Concurrency int

	// AttemptTimeout bounds each provider attempt.
	AttemptTimeout time.Duration

	// CacheEnabled turns the response cache on for text/structured calls
	// with Temperature at or below CacheTemperatureThreshold.
	CacheEnabled              bool
	CacheTemperatureThreshold float64
}

// Gateway is the single entry point for LLM calls. It owns the global
// concurrency cap, the retry loop, the response cache, cost estimation, and
// the llm_requests audit trail. All methods are safe for concurrent use.
type Gateway struct {
	provider Provider
	recorder Recorder
	cache    Cache
	cfg      GatewayConfig
	sem      chan struct{}
}

// NewGateway creates a Gateway. Panics if provider or recorder is nil;
// callers must provide both; the audit trail is not optional.
func NewGateway(provider Provider, recorder Recorder, cache Cache, cfg GatewayConfig) *Gateway {
	if provider == nil {
		panic("llm.NewGateway: provider must not be nil")
	}
	if recorder == nil {
		panic("llm.NewGateway: recorder must not be nil")
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.AttemptTimeout <= 0 {
		cfg.AttemptTimeout = 120 * time.Second
	}
	return &Gateway{
		provider: provider,
		recorder: recorder,
		cache:    cache,
		cfg:      cfg,
		sem:      make(chan struct{}, cfg.Concurrency),
	}
}

// GenerateResponse runs an unstructured text call.
func (g *Gateway) GenerateResponse(ctx context.Context, req Request) (*Response, error) {
	creq := g.completionRequest(req, nil)
	return g.complete(ctx, creq, VariantChat, req.Scope, nil)
}

// GenerateStructured runs a JSON-schema-constrained call. The response is
// validated against schema and unmarshaled into out (skipped when out is
// nil). If the first response fails validation, exactly one repair call is
// issued with the invalid output and the validation error appended; a second
// failure surfaces as invalid_response.
func (g *Gateway) GenerateStructured(ctx context.Context, req Request, schema *ResponseSchema, out any) (*StructuredResult, error) {
	if schema == nil {
		return nil, NewError(ErrorTypeValidation, "structured calls require a response schema", nil)
	}
	creq := g.completionRequest(req, schema)

	var invalid string
	validate := func(content string) *Error {
		if _, err := schema.ValidateJSON([]byte(sanitizeJSONContent(content))); err != nil {
			invalid = content
			return NewError(ErrorTypeInvalidResponse, fmt.Sprintf("response failed %s validation", schema.Name()), err)
		}
		return nil
	}

	repaired := false
	resp, err := g.complete(ctx, creq, VariantStructured, req.Scope, validate)
	if err != nil {
		lerr := Classify(err)
		if lerr.Type != ErrorTypeInvalidResponse {
			return nil, err
		}
		slog.Warn("structured response invalid, issuing repair call",
			"model", creq.Model,
			"schema", schema.Name(),
			"flow_run_id", req.Scope.FlowRunID,
			"step_run_id", req.Scope.StepRunID)
		repairReq := creq
		repairReq.Messages = repairMessages(creq.Messages, invalid, lerr)
		resp, err = g.complete(ctx, repairReq, VariantStructured, req.Scope, validate)
		if err != nil {
			return nil, err
		}
		repaired = true
	}

	if out != nil {
		if err := json.Unmarshal([]byte(sanitizeJSONContent(resp.Content)), out); err != nil {
			return nil, NewError(ErrorTypeInvalidResponse, "response does not fit the target type", err)
		}
	}

	return &StructuredResult{Response: *resp, Repaired: repaired}, nil
}

// GenerateAudio runs a text-to-speech call. Never cached.
func (g *Gateway) GenerateAudio(ctx context.Context, req AudioRequest) (*AudioResult, error) {
	if strings.TrimSpace(req.Input) == "" {
		return nil, NewError(ErrorTypeValidation, "audio input text is required", nil)
	}
	if req.Model == "" {
		req.Model = defaultAudioModel
	}
	if req.Voice == "" {
		req.Voice = defaultAudioVoice
	}

	if err := g.acquire(ctx); err != nil {
		return nil, err
	}
	defer g.release()

	requestID, err := g.beginAudit(RequestRecord{
		Variant:  VariantAudio,
		Provider: g.provider.Name(),
		Model:    req.Model,
		RequestPayload: map[string]any{
			"model":       req.Model,
			"voice":       req.Voice,
			"speed":       req.Speed,
			"input_chars": len(req.Input),
		},
		Scope: req.Scope,
	})
	if err != nil {
		return nil, NewError(ErrorTypeInternal, "failed to record audio request", err)
	}

	start := time.Now()
	var data *AudioData
	attempt, lerr := g.withRetry(ctx, "speech", req.Model, func(attemptCtx context.Context) error {
		var callErr error
		data, callErr = g.provider.GenerateSpeech(attemptCtx, req)
		return callErr
	})
	elapsed := int(time.Since(start).Milliseconds())
	if lerr != nil {
		g.failAudit(requestID, FailureRecord{
			ErrorType:       lerr.Type,
			ErrorMessage:    lerr.Message,
			RetryAttempt:    attempt,
			ExecutionTimeMS: elapsed,
		})
		return nil, lerr
	}

	cost := EstimateAudioCost(req.Model, len(req.Input))
	g.completeAudit(requestID, CompletionRecord{
		ResponseRaw: map[string]any{
			"content_type": data.ContentType,
			"size_bytes":   len(data.Bytes),
		},
		CostEstimate:      cost,
		RetryAttempt:      attempt,
		ExecutionTimeMS:   elapsed,
		ResponseCreatedAt: time.Now(),
	})

	return &AudioResult{
		RequestID:       requestID,
		Audio:           data.Bytes,
		ContentType:     data.ContentType,
		Model:           req.Model,
		Voice:           req.Voice,
		DurationSeconds: estimateSpeechSeconds(req.Input, req.Speed),
		CostEstimate:    cost,
		ExecutionTimeMS: elapsed,
	}, nil
}

// GenerateImage runs an image generation call. Never cached.
func (g *Gateway) GenerateImage(ctx context.Context, req ImageRequest) (*ImageResult, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, NewError(ErrorTypeValidation, "image prompt is required", nil)
	}
	if req.Model == "" {
		req.Model = defaultImageModel
	}
	if req.Size == "" {
		req.Size = defaultImageSize
	}

	if err := g.acquire(ctx); err != nil {
		return nil, err
	}
	defer g.release()

	requestID, err := g.beginAudit(RequestRecord{
		Variant:  VariantImage,
		Provider: g.provider.Name(),
		Model:    req.Model,
		RequestPayload: map[string]any{
			"model":   req.Model,
			"prompt":  req.Prompt,
			"size":    req.Size,
			"quality": req.Quality,
			"style":   req.Style,
		},
		Scope: req.Scope,
	})
	if err != nil {
		return nil, NewError(ErrorTypeInternal, "failed to record image request", err)
	}

	start := time.Now()
	var data *ImageData
	attempt, lerr := g.withRetry(ctx, "image", req.Model, func(attemptCtx context.Context) error {
		var callErr error
		data, callErr = g.provider.GenerateImage(attemptCtx, req)
		return callErr
	})
	elapsed := int(time.Since(start).Milliseconds())
	if lerr != nil {
		g.failAudit(requestID, FailureRecord{
			ErrorType:       lerr.Type,
			ErrorMessage:    lerr.Message,
			RetryAttempt:    attempt,
			ExecutionTimeMS: elapsed,
		})
		return nil, lerr
	}

	cost := EstimateImageCost(req.Model, req.Size, req.Quality)
	g.completeAudit(requestID, CompletionRecord{
		Content: data.RevisedPrompt,
		ResponseRaw: map[string]any{
			"content_type": data.ContentType,
			"size_bytes":   len(data.Bytes),
			"width":        data.Width,
			"height":       data.Height,
		},
		CostEstimate:      cost,
		RetryAttempt:      attempt,
		ExecutionTimeMS:   elapsed,
		ResponseCreatedAt: time.Now(),
	})

	return &ImageResult{
		RequestID:       requestID,
		Image:           data.Bytes,
		ContentType:     data.ContentType,
		Model:           req.Model,
		Width:           data.Width,
		Height:          data.Height,
		RevisedPrompt:   data.RevisedPrompt,
		CostEstimate:    cost,
		ExecutionTimeMS: elapsed,
	}, nil
}

// complete runs one logical text/structured call: cache check, semaphore,
// pending audit row, retry loop, optional validation, terminal audit write.
// The validate hook runs once on the final provider success; validation
// failures never re-enter the retry loop.
func (g *Gateway) complete(ctx context.Context, creq CompletionRequest, variant string, scope Scope, validate func(content string) *Error) (*Response, error) {
	key := ""
	if g.cacheable(creq) {
		key = cacheKey(g.provider.Name(), variant, creq)
		if key != "" {
			if cached, ok := g.cache.Get(key); ok {
				return g.replayCached(creq, variant, scope, cached)
			}
		}
	}

	if err := g.acquire(ctx); err != nil {
		return nil, err
	}
	defer g.release()

	requestID, err := g.beginAudit(g.requestRecord(creq, variant, scope))
	if err != nil {
		return nil, NewError(ErrorTypeInternal, "failed to record llm request", err)
	}

	start := time.Now()
	var raw *CompletionResponse
	attempt, lerr := g.withRetry(ctx, "completion", creq.Model, func(attemptCtx context.Context) error {
		var callErr error
		raw, callErr = g.provider.Complete(attemptCtx, creq)
		return callErr
	})
	if lerr != nil {
		g.failAudit(requestID, FailureRecord{
			ErrorType:       lerr.Type,
			ErrorMessage:    lerr.Message,
			RetryAttempt:    attempt,
			ExecutionTimeMS: int(time.Since(start).Milliseconds()),
		})
		return nil, lerr
	}

	if validate != nil {
		if verr := validate(raw.Content); verr != nil {
			g.failAudit(requestID, FailureRecord{
				ErrorType:       verr.Type,
				ErrorMessage:    verr.Message,
				RetryAttempt:    attempt,
				ExecutionTimeMS: int(time.Since(start).Milliseconds()),
				Content:         raw.Content,
				ResponseRaw:     raw.Raw,
			})
			return nil, verr
		}
	}

	cost := EstimateChatCost(raw.Model, raw.Usage)
	elapsed := int(time.Since(start).Milliseconds())
	g.completeAudit(requestID, CompletionRecord{
		Content:            raw.Content,
		ResponseRaw:        raw.Raw,
		ProviderResponseID: raw.ResponseID,
		SystemFingerprint:  raw.SystemFingerprint,
		Usage:              raw.Usage,
		CostEstimate:       cost,
		RetryAttempt:       attempt,
		ExecutionTimeMS:    elapsed,
		ResponseCreatedAt:  raw.CreatedAt,
	})

	// Only validated content is cached, so replays skip validation.
	if key != "" {
		g.cache.Put(key, &CachedResponse{
			Content:            raw.Content,
			Model:              raw.Model,
			Usage:              raw.Usage,
			ProviderResponseID: raw.ResponseID,
			SystemFingerprint:  raw.SystemFingerprint,
		})
	}

	return &Response{
		RequestID:          requestID,
		Content:            raw.Content,
		Model:              raw.Model,
		Provider:           g.provider.Name(),
		Usage:              raw.Usage,
		CostEstimate:       cost,
		ExecutionTimeMS:    elapsed,
		ProviderResponseID: raw.ResponseID,
		SystemFingerprint:  raw.SystemFingerprint,
	}, nil
}

// replayCached serves a cache hit. A fresh audit row is still persisted,
// flagged cached with zero cost, so the trail shows every logical call.
func (g *Gateway) replayCached(creq CompletionRequest, variant string, scope Scope, cached *CachedResponse) (*Response, error) {
	requestID, err := g.beginAudit(g.requestRecord(creq, variant, scope))
	if err != nil {
		return nil, NewError(ErrorTypeInternal, "failed to record llm request", err)
	}
	g.completeAudit(requestID, CompletionRecord{
		Content:            cached.Content,
		ProviderResponseID: cached.ProviderResponseID,
		SystemFingerprint:  cached.SystemFingerprint,
		Usage:              cached.Usage,
		RetryAttempt:       1,
		Cached:             true,
		ResponseCreatedAt:  time.Now(),
	})
	return &Response{
		RequestID:          requestID,
		Content:            cached.Content,
		Model:              cached.Model,
		Provider:           g.provider.Name(),
		Usage:              cached.Usage,
		Cached:             true,
		ProviderResponseID: cached.ProviderResponseID,
		SystemFingerprint:  cached.SystemFingerprint,
	}, nil
}

// withRetry runs call under the per-attempt timeout, retrying retryable
// failures with exponential backoff until the attempt budget is spent.
// Returns the total attempts consumed and the final classified error, if any.
func (g *Gateway) withRetry(ctx context.Context, op, model string, call func(ctx context.Context) error) (int, *Error) {
	bo := newRetryBackOff()
	attempt := 0
	for {
		attempt++
		attemptCtx, cancel := context.WithTimeout(ctx, g.cfg.AttemptTimeout)
		err := call(attemptCtx)
		cancel()
		if err == nil {
			return attempt, nil
		}
		lerr := Classify(err)
		if !lerr.Retryable || attempt > g.cfg.MaxRetries || ctx.Err() != nil {
			return attempt, lerr
		}
		wait := bo.NextBackOff()
		slog.Warn("llm call failed, retrying",
			"op", op,
			"model", model,
			"attempt", attempt,
			"error_type", lerr.Type,
			"backoff", wait)
		select {
		case <-ctx.Done():
			return attempt, Classify(ctx.Err())
		case <-time.After(wait):
		}
	}
}

// newRetryBackOff builds the gateway backoff policy: 500ms initial, doubling
// with jitter, capped at 30s. Attempt counting bounds the loop, not elapsed
// time.
func newRetryBackOff() backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = retryInitialInterval
	bo.Multiplier = retryMultiplier
	bo.MaxInterval = retryMaxInterval
	bo.MaxElapsedTime = 0
	bo.Reset()
	return bo
}

func (g *Gateway) acquire(ctx context.Context) error {
	select {
	case g.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return Classify(ctx.Err())
	}
}

func (g *Gateway) release() { <-g.sem }

func (g *Gateway) cacheable(creq CompletionRequest) bool {
	if !g.cfg.CacheEnabled || g.cache == nil {
		return false
	}
	if creq.Temperature == nil {
		return false
	}
	return *creq.Temperature <= g.cfg.CacheTemperatureThreshold
}

// completionRequest applies gateway defaults to a caller request.
func (g *Gateway) completionRequest(req Request, schema *ResponseSchema) CompletionRequest {
	model := req.Model
	if model == "" {
		model = g.cfg.DefaultModel
	}
	return CompletionRequest{
		Model:           model,
		Messages:        req.Messages,
		Temperature:     req.Temperature,
		MaxOutputTokens: req.MaxOutputTokens,
		Schema:          schema,
	}
}

func (g *Gateway) requestRecord(creq CompletionRequest, variant string, scope Scope) RequestRecord {
	rec := RequestRecord{
		Variant:     variant,
		Provider:    g.provider.Name(),
		Model:       creq.Model,
		Messages:    creq.Messages,
		Temperature: creq.Temperature,
		Scope:       scope,
	}
	if creq.MaxOutputTokens > 0 {
		tokens := creq.MaxOutputTokens
		rec.MaxOutputTokens = &tokens
	}
	payload := map[string]any{
		"model":   creq.Model,
		"variant": variant,
	}
	if creq.Temperature != nil {
		payload["temperature"] = *creq.Temperature
	}
	if creq.MaxOutputTokens > 0 {
		payload["max_output_tokens"] = creq.MaxOutputTokens
	}
	if creq.Schema != nil {
		payload["schema_name"] = creq.Schema.Name()
		payload["schema"] = json.RawMessage(creq.Schema.Raw())
	}
	rec.RequestPayload = payload
	return rec
}

// beginAudit creates the pending audit row on a background context so the
// row exists even when the caller is already being cancelled.
func (g *Gateway) beginAudit(rec RequestRecord) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
	defer cancel()
	return g.recorder.BeginRequest(ctx, rec)
}

func (g *Gateway) completeAudit(id string, rec CompletionRecord) {
	ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
	defer cancel()
	if err := g.recorder.CompleteRequest(ctx, id, rec); err != nil {
		slog.Error("failed to record llm completion", "llm_request_id", id, "error", err)
	}
}

func (g *Gateway) failAudit(id string, rec FailureRecord) {
	ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
	defer cancel()
	if err := g.recorder.FailRequest(ctx, id, rec); err != nil {
		slog.Error("failed to record llm failure", "llm_request_id", id, "error", err)
	}
}

// repairMessages builds the repair conversation: the original request, the
// invalid output as an assistant turn, and the validation error as a user
// turn asking for a corrected document.
func repairMessages(messages []models.ChatMessage, invalid string, cause *Error) []models.ChatMessage {
	detail := cause.Message
	if cause.Err != nil {
		detail = cause.Err.Error()
	}
	repaired := make([]models.ChatMessage, 0, len(messages)+2)
	repaired = append(repaired, messages...)
	repaired = append(repaired, models.ChatMessage{Role: models.RoleAssistant, Content: invalid})
	repaired = append(repaired, models.ChatMessage{
		Role: models.RoleUser,
		Content: "The previous response was not valid against the required JSON schema.\n" +
			"Validation error: " + detail + "\n" +
			"Respond again with only a corrected JSON document that satisfies the schema. No prose, no code fences.",
	})
	return repaired
}

// sanitizeJSONContent strips markdown code fences some models wrap around
// JSON output.
func sanitizeJSONContent(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}

// estimateSpeechSeconds estimates spoken duration from word count at 150 wpm
// adjusted for the speed multiplier.
func estimateSpeechSeconds(input string, speed float64) float64 {
	if speed <= 0 {
		speed = 1.0
	}
	words := len(strings.Fields(input))
	return float64(words) / (speechWordsPerMinute * speed) * 60.0
}
