package services

import (
	"context"
	"fmt"

	"github.com/brianfields/deeplearn-sub002/ent"
	"github.com/brianfields/deeplearn-sub002/ent/llmrequest"
	"github.com/brianfields/deeplearn-sub002/pkg/llm"
	"github.com/google/uuid"
)

// LLMRequestService manages the durable llm_requests audit trail. The gateway
// records every provider call through it: a pending row before the provider
// is contacted, updated in place with the final outcome.
type LLMRequestService struct {
	client *ent.Client
}

// LLMRequestService satisfies the gateway's recorder contract.
var _ llm.Recorder = (*LLMRequestService)(nil)

// NewLLMRequestService creates a new LLMRequestService
func NewLLMRequestService(client *ent.Client) *LLMRequestService {
	return &LLMRequestService{client: client}
}

// BeginRequest creates a pending audit row and returns its id. The gateway
// already runs audit writes on a background context with its own timeout.
func (s *LLMRequestService) BeginRequest(ctx context.Context, rec llm.RequestRecord) (string, error) {
	create := s.client.LLMRequest.Create().
		SetID(uuid.New().String()).
		SetProvider(rec.Provider).
		SetModel(rec.Model).
		SetAPIVariant(apiVariant(rec.Variant)).
		SetStatus(llmrequest.StatusPending)
	if len(rec.Messages) > 0 {
		create = create.SetMessages(rec.Messages)
	}
	if rec.RequestPayload != nil {
		create = create.SetRequestPayload(rec.RequestPayload)
	}
	if rec.Temperature != nil {
		create = create.SetTemperature(*rec.Temperature)
	}
	if rec.MaxOutputTokens != nil {
		create = create.SetMaxOutputTokens(*rec.MaxOutputTokens)
	}
	if rec.Scope.UserID != "" {
		create = create.SetUserID(rec.Scope.UserID)
	}
	if rec.Scope.FlowRunID != "" {
		create = create.SetFlowRunID(rec.Scope.FlowRunID)
	}
	if rec.Scope.StepRunID != "" {
		create = create.SetStepRunID(rec.Scope.StepRunID)
	}

	row, err := create.Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create llm request: %w", err)
	}
	return row.ID, nil
}

// CompleteRequest marks the row completed with the final response.
func (s *LLMRequestService) CompleteRequest(ctx context.Context, id string, rec llm.CompletionRecord) error {
	update := s.client.LLMRequest.UpdateOneID(id).
		SetStatus(llmrequest.StatusCompleted).
		SetResponseContent(rec.Content).
		SetInputTokens(rec.Usage.InputTokens).
		SetOutputTokens(rec.Usage.OutputTokens).
		SetTokensUsed(rec.Usage.TotalTokens).
		SetCostEstimate(rec.CostEstimate).
		SetCached(rec.Cached).
		SetExecutionTimeMs(rec.ExecutionTimeMS)
	if rec.ResponseRaw != nil {
		update = update.SetResponseRaw(rec.ResponseRaw)
	}
	if rec.ProviderResponseID != "" {
		update = update.SetProviderResponseID(rec.ProviderResponseID)
	}
	if rec.SystemFingerprint != "" {
		update = update.SetSystemFingerprint(rec.SystemFingerprint)
	}
	if rec.RetryAttempt > 0 {
		update = update.SetRetryAttempt(rec.RetryAttempt)
	}
	if !rec.ResponseCreatedAt.IsZero() {
		update = update.SetResponseCreatedAt(rec.ResponseCreatedAt)
	}

	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to complete llm request: %w", err)
	}
	return nil
}

// FailRequest marks the row failed with the final error. Content carries the
// provider output when a response arrived but failed validation, so the
// invalid document stays inspectable.
func (s *LLMRequestService) FailRequest(ctx context.Context, id string, rec llm.FailureRecord) error {
	update := s.client.LLMRequest.UpdateOneID(id).
		SetStatus(llmrequest.StatusFailed).
		SetErrorType(string(rec.ErrorType)).
		SetErrorMessage(rec.ErrorMessage).
		SetExecutionTimeMs(rec.ExecutionTimeMS)
	if rec.RetryAttempt > 0 {
		update = update.SetRetryAttempt(rec.RetryAttempt)
	}
	if rec.Content != "" {
		update = update.SetResponseContent(rec.Content)
	}
	if rec.ResponseRaw != nil {
		update = update.SetResponseRaw(rec.ResponseRaw)
	}

	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to fail llm request: %w", err)
	}
	return nil
}

// GetRequest retrieves an audited request by id.
func (s *LLMRequestService) GetRequest(ctx context.Context, id string) (*ent.LLMRequest, error) {
	row, err := s.client.LLMRequest.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get llm request: %w", err)
	}
	return row, nil
}

// ListRequestsForStep returns a step's audited requests in creation order.
func (s *LLMRequestService) ListRequestsForStep(ctx context.Context, stepRunID string) ([]*ent.LLMRequest, error) {
	rows, err := s.client.LLMRequest.Query().
		Where(llmrequest.StepRunIDEQ(stepRunID)).
		Order(ent.Asc(llmrequest.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list llm requests for step: %w", err)
	}
	return rows, nil
}

// apiVariant maps the gateway's variant string onto the column enum,
// defaulting to chat.
func apiVariant(variant string) llmrequest.APIVariant {
	switch variant {
	case llm.VariantStructured:
		return llmrequest.APIVariantStructured
	case llm.VariantAudio:
		return llmrequest.APIVariantAudio
	case llm.VariantImage:
		return llmrequest.APIVariantImage
	default:
		return llmrequest.APIVariantChat
	}
}
