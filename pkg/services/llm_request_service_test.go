package services

import (
	"context"
	"testing"
	"time"

	"github.com/brianfields/deeplearn-sub002/ent/llmrequest"
	"github.com/brianfields/deeplearn-sub002/pkg/llm"
	"github.com/brianfields/deeplearn-sub002/pkg/models"
	testdb "github.com/brianfields/deeplearn-sub002/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLLMRequestService_Lifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewLLMRequestService(client.Client)
	ctx := context.Background()

	t.Run("begin creates a pending row with scope", func(t *testing.T) {
		temp := 0.2
		maxTokens := 2000
		id, err := svc.BeginRequest(ctx, llm.RequestRecord{
			Variant:  llm.VariantStructured,
			Provider: "openai",
			Model:    "gpt-5",
			Messages: []models.ChatMessage{
				{Role: models.RoleSystem, Content: "You write glossaries."},
				{Role: models.RoleUser, Content: "Define: variable"},
			},
			RequestPayload:  map[string]any{"response_format": "json_schema"},
			Temperature:     &temp,
			MaxOutputTokens: &maxTokens,
			Scope: llm.Scope{
				UserID:    "user-1",
				FlowRunID: "fr-1",
				StepRunID: "sr-1",
			},
		})
		require.NoError(t, err)

		row, err := svc.GetRequest(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, llmrequest.StatusPending, row.Status)
		assert.Equal(t, llmrequest.APIVariantStructured, row.APIVariant)
		assert.Equal(t, "openai", row.Provider)
		assert.Len(t, row.Messages, 2)
		require.NotNil(t, row.Temperature)
		assert.InDelta(t, 0.2, *row.Temperature, 1e-9)
		require.NotNil(t, row.StepRunID)
		assert.Equal(t, "sr-1", *row.StepRunID)
		assert.Equal(t, 1, row.RetryAttempt)
		assert.False(t, row.Cached)
	})

	t.Run("complete writes the final outcome in place", func(t *testing.T) {
		id, err := svc.BeginRequest(ctx, llm.RequestRecord{
			Variant: llm.VariantChat, Provider: "openai", Model: "gpt-5",
		})
		require.NoError(t, err)

		respAt := time.Now().Add(-time.Second).Truncate(time.Millisecond)
		err = svc.CompleteRequest(ctx, id, llm.CompletionRecord{
			Content:            "A variable names a value.",
			ResponseRaw:        map[string]any{"id": "chatcmpl-1"},
			ProviderResponseID: "chatcmpl-1",
			SystemFingerprint:  "fp_abc",
			Usage:              tokenUsage(300),
			CostEstimate:       0.003,
			RetryAttempt:       2,
			ExecutionTimeMS:    850,
			ResponseCreatedAt:  respAt,
		})
		require.NoError(t, err)

		row, err := svc.GetRequest(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, llmrequest.StatusCompleted, row.Status)
		require.NotNil(t, row.ResponseContent)
		assert.Equal(t, "A variable names a value.", *row.ResponseContent)
		assert.Equal(t, 300, row.TokensUsed)
		require.NotNil(t, row.InputTokens)
		assert.Equal(t, 200, *row.InputTokens)
		assert.InDelta(t, 0.003, row.CostEstimate, 1e-9)
		assert.Equal(t, 2, row.RetryAttempt)
		require.NotNil(t, row.ProviderResponseID)
		assert.NotNil(t, row.ResponseCreatedAt)
	})

	t.Run("fail keeps the invalid document inspectable", func(t *testing.T) {
		id, err := svc.BeginRequest(ctx, llm.RequestRecord{
			Variant: llm.VariantStructured, Provider: "openai", Model: "gpt-5",
		})
		require.NoError(t, err)

		err = svc.FailRequest(ctx, id, llm.FailureRecord{
			ErrorType:       llm.ErrorTypeInvalidResponse,
			ErrorMessage:    "document failed schema validation: missing mini_lesson",
			RetryAttempt:    1,
			ExecutionTimeMS: 400,
			Content:         `{"glossary_terms": []}`,
			ResponseRaw:     map[string]any{"id": "chatcmpl-2"},
		})
		require.NoError(t, err)

		row, err := svc.GetRequest(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, llmrequest.StatusFailed, row.Status)
		require.NotNil(t, row.ErrorType)
		assert.Equal(t, string(llm.ErrorTypeInvalidResponse), *row.ErrorType)
		require.NotNil(t, row.ResponseContent)
		assert.Contains(t, *row.ResponseContent, "glossary_terms")
	})

	t.Run("returns ErrNotFound for missing rows", func(t *testing.T) {
		err := svc.CompleteRequest(ctx, "nonexistent", llm.CompletionRecord{})
		assert.ErrorIs(t, err, ErrNotFound)

		err = svc.FailRequest(ctx, "nonexistent", llm.FailureRecord{ErrorType: llm.ErrorTypeTimeout})
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = svc.GetRequest(ctx, "nonexistent")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestLLMRequestService_ListRequestsForStep(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewLLMRequestService(client.Client)
	ctx := context.Background()

	var want []string
	for i := 0; i < 3; i++ {
		id, err := svc.BeginRequest(ctx, llm.RequestRecord{
			Variant: llm.VariantChat, Provider: "openai", Model: "gpt-5",
			Scope: llm.Scope{StepRunID: "sr-list"},
		})
		require.NoError(t, err)
		want = append(want, id)
	}
	_, err := svc.BeginRequest(ctx, llm.RequestRecord{
		Variant: llm.VariantChat, Provider: "openai", Model: "gpt-5",
		Scope: llm.Scope{StepRunID: "sr-other"},
	})
	require.NoError(t, err)

	rows, err := svc.ListRequestsForStep(ctx, "sr-list")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, want[i], row.ID)
	}
}

func TestLLMRequestService_APIVariants(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewLLMRequestService(client.Client)
	ctx := context.Background()

	tests := []struct {
		variant string
		want    llmrequest.APIVariant
	}{
		{llm.VariantChat, llmrequest.APIVariantChat},
		{llm.VariantStructured, llmrequest.APIVariantStructured},
		{llm.VariantAudio, llmrequest.APIVariantAudio},
		{llm.VariantImage, llmrequest.APIVariantImage},
		{"", llmrequest.APIVariantChat},
	}

	for _, tt := range tests {
		id, err := svc.BeginRequest(ctx, llm.RequestRecord{
			Variant: tt.variant, Provider: "openai", Model: "gpt-5",
		})
		require.NoError(t, err)

		row, err := svc.GetRequest(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, tt.want, row.APIVariant)
	}
}
