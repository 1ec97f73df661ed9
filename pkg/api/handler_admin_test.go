package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brianfields/deeplearn-sub002/pkg/flow"
	"github.com/brianfields/deeplearn-sub002/pkg/llm"
	"github.com/brianfields/deeplearn-sub002/pkg/models"
)

func TestAdminHandlers_Validation(t *testing.T) {
	s := &Server{}
	router := s.Routes()

	tests := []struct {
		name  string
		query string
	}{
		{"non-numeric page", "page=abc"},
		{"non-numeric page size", "page_size=abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodGet, "/api/v1/admin/flows?"+tt.query, nil, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeErrorBody(t, rec)
			assert.Equal(t, kindValidation, body.Error.Kind)
		})
	}
}

func TestAdminEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)
	router := srv.Routes()
	ctx := context.Background()

	// One completed unit_creation flow with two steps (the first backed by
	// an audited LLM request), then one running lesson_creation flow.
	unitFlowID, err := srv.flowRuns.CreateFlowRun(ctx, flow.FlowRunRecord{
		FlowName:      "unit_creation",
		ExecutionMode: flow.ModeBackground,
		TotalSteps:    3,
		Inputs:        map[string]any{"topic": "Gradient Descent"},
	})
	require.NoError(t, err)

	stepOne, err := srv.flowRuns.CreateStepRun(ctx, flow.StepRunRecord{
		FlowRunID: unitFlowID,
		StepName:  "extract_unit_metadata",
		StepOrder: 1,
		Inputs:    map[string]any{"topic": "Gradient Descent"},
	})
	require.NoError(t, err)

	reqID, err := srv.requests.BeginRequest(ctx, llm.RequestRecord{
		Variant:  llm.VariantStructured,
		Provider: "openai",
		Model:    "gpt-5",
		Scope:    llm.Scope{FlowRunID: unitFlowID, StepRunID: stepOne},
	})
	require.NoError(t, err)
	require.NoError(t, srv.requests.CompleteRequest(ctx, reqID, llm.CompletionRecord{
		Usage:           models.TokenUsage{InputTokens: 80, OutputTokens: 40, TotalTokens: 120},
		CostEstimate:    0.004,
		RetryAttempt:    1,
		ExecutionTimeMS: 850,
	}))
	require.NoError(t, srv.flowRuns.CompleteStepRun(ctx, stepOne, flow.StepCompletion{
		Outputs:         map[string]any{"unit_title": "Intro to Gradient Descent"},
		TokensUsed:      120,
		CostEstimate:    0.004,
		ExecutionTimeMS: 900,
		LLMRequestID:    reqID,
	}))

	stepTwo, err := srv.flowRuns.CreateStepRun(ctx, flow.StepRunRecord{
		FlowRunID: unitFlowID,
		StepName:  "generate_unit_summary",
		StepOrder: 2,
	})
	require.NoError(t, err)
	require.NoError(t, srv.flowRuns.CompleteStepRun(ctx, stepTwo, flow.StepCompletion{
		TokensUsed: 80, CostEstimate: 0.002, ExecutionTimeMS: 400,
	}))
	require.NoError(t, srv.flowRuns.CompleteFlowRun(ctx, unitFlowID, flow.FlowCompletion{
		TotalTokens: 200, TotalCost: 0.006, ExecutionTimeMS: 1500,
	}))

	lessonFlowID, err := srv.flowRuns.CreateFlowRun(ctx, flow.FlowRunRecord{
		FlowName:   "lesson_creation",
		TotalSteps: 6,
	})
	require.NoError(t, err)
	_, err = srv.flowRuns.CreateStepRun(ctx, flow.StepRunRecord{
		FlowRunID: lessonFlowID,
		StepName:  "extract_lesson_metadata",
		StepOrder: 1,
	})
	require.NoError(t, err)

	t.Run("listing carries roll-ups and step counts", func(t *testing.T) {
		var list FlowListResponse
		rec := doJSON(t, router, http.MethodGet, "/api/v1/admin/flows", nil, &list)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 2, list.TotalCount)
		assert.Equal(t, 1, list.TotalPages)
		require.Len(t, list.Items, 2)

		// Newest first.
		assert.Equal(t, lessonFlowID, list.Items[0].ID)
		assert.Equal(t, 1, list.Items[0].StepCount)
		assert.Equal(t, "running", list.Items[0].Status)

		unitItem := list.Items[1]
		assert.Equal(t, unitFlowID, unitItem.ID)
		assert.Equal(t, "completed", unitItem.Status)
		assert.Equal(t, "background", unitItem.ExecutionMode)
		assert.Equal(t, 2, unitItem.StepCount)
		assert.Equal(t, 200, unitItem.TotalTokens)
		assert.InDelta(t, 0.006, unitItem.TotalCost, 1e-9)
		require.NotNil(t, unitItem.ExecutionTimeMs)
		assert.Equal(t, 1500, *unitItem.ExecutionTimeMs)
		assert.NotNil(t, unitItem.CompletedAt)
	})

	t.Run("listing filters by flow name and status", func(t *testing.T) {
		var list FlowListResponse
		rec := doJSON(t, router, http.MethodGet, "/api/v1/admin/flows?flow_name=unit_creation", nil, &list)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, list.TotalCount)

		rec = doJSON(t, router, http.MethodGet, "/api/v1/admin/flows?status=running", nil, &list)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, list.TotalCount)

		rec = doJSON(t, router, http.MethodGet, "/api/v1/admin/flows?page_size=101", nil, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("flow detail returns steps in execution order", func(t *testing.T) {
		var detail FlowDetail
		rec := doJSON(t, router, http.MethodGet, "/api/v1/admin/flows/"+unitFlowID, nil, &detail)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "unit_creation", detail.FlowName)
		assert.Equal(t, "completed", detail.Status)
		assert.Equal(t, 3, detail.TotalSteps)
		assert.Equal(t, "Gradient Descent", detail.Inputs["topic"])

		require.Len(t, detail.Steps, 2)
		assert.Equal(t, "extract_unit_metadata", detail.Steps[0].StepName)
		assert.Equal(t, "generate_unit_summary", detail.Steps[1].StepName)
		require.NotNil(t, detail.Steps[0].LLMRequestID)
		assert.Equal(t, reqID, *detail.Steps[0].LLMRequestID)
	})

	t.Run("step detail carries payloads and its llm requests", func(t *testing.T) {
		var detail StepDetail
		rec := doJSON(t, router, http.MethodGet, "/api/v1/admin/flows/"+unitFlowID+"/steps/"+stepOne, nil, &detail)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "unit_creation", detail.FlowName)
		assert.Equal(t, unitFlowID, detail.FlowRunID)
		assert.Equal(t, "Gradient Descent", detail.Inputs["topic"])
		assert.Equal(t, "Intro to Gradient Descent", detail.Outputs["unit_title"])
		assert.Equal(t, 120, detail.TokensUsed)

		require.Len(t, detail.LLMRequests, 1)
		assert.Equal(t, reqID, detail.LLMRequests[0].ID)
		assert.Equal(t, "structured", detail.LLMRequests[0].APIVariant)
		assert.Equal(t, "completed", detail.LLMRequests[0].Status)
	})

	t.Run("step detail is scoped to its flow", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/admin/flows/"+lessonFlowID+"/steps/"+stepOne, nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("llm request detail is the full audit row", func(t *testing.T) {
		var detail LLMRequestDetail
		rec := doJSON(t, router, http.MethodGet, "/api/v1/admin/llm-requests/"+reqID, nil, &detail)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "openai", detail.Provider)
		assert.Equal(t, "gpt-5", detail.Model)
		assert.Equal(t, "structured", detail.APIVariant)
		assert.Equal(t, 120, detail.TokensUsed)
		assert.Equal(t, "completed", detail.Status)
		require.NotNil(t, detail.FlowRunID)
		assert.Equal(t, unitFlowID, *detail.FlowRunID)
		require.NotNil(t, detail.StepRunID)
		assert.Equal(t, stepOne, *detail.StepRunID)

		rec = doJSON(t, router, http.MethodGet, "/api/v1/admin/llm-requests/nonexistent", nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("cancel transitions a pending flow", func(t *testing.T) {
		pendingID, err := srv.flowRuns.CreatePendingFlowRun(ctx, flow.FlowRunRecord{
			FlowName: "unit_creation",
		})
		require.NoError(t, err)

		var cancel CancelResponse
		rec := doJSON(t, router, http.MethodPost, "/api/v1/admin/flows/"+pendingID+"/cancel", nil, &cancel)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, pendingID, cancel.FlowRunID)

		fr, err := srv.flowRuns.GetFlowRun(ctx, pendingID)
		require.NoError(t, err)
		assert.Equal(t, "cancelled", string(fr.Status))
	})

	t.Run("cancel of a running flow conflicts without a pool", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/admin/flows/"+lessonFlowID+"/cancel", nil, nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
		body := decodeErrorBody(t, rec)
		assert.Equal(t, kindConflict, body.Error.Kind)
	})
}
