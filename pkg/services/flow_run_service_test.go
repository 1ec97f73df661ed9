package services

import (
	"context"
	"testing"
	"time"

	"github.com/brianfields/deeplearn-sub002/ent/flowrun"
	"github.com/brianfields/deeplearn-sub002/ent/flowsteprun"
	"github.com/brianfields/deeplearn-sub002/pkg/flow"
	"github.com/brianfields/deeplearn-sub002/pkg/llm"
	testdb "github.com/brianfields/deeplearn-sub002/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlowRunService_CreateFlowRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewFlowRunService(client.Client)
	ctx := context.Background()

	t.Run("creates running flow run with inputs and metadata", func(t *testing.T) {
		id, err := svc.CreateFlowRun(ctx, flow.FlowRunRecord{
			FlowName:      "lesson_creation",
			ExecutionMode: flow.ModeBackground,
			UserID:        "user-1",
			Inputs:        map[string]any{"lesson_title": "Variables"},
			Metadata:      map[string]any{"unit_id": "u-1"},
			TotalSteps:    6,
		})
		require.NoError(t, err)

		fr, err := svc.GetFlowRun(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, flowrun.StatusRunning, fr.Status)
		assert.Equal(t, "lesson_creation", fr.FlowName)
		assert.Equal(t, flowrun.ExecutionModeBackground, fr.ExecutionMode)
		assert.Equal(t, 6, fr.TotalSteps)
		assert.Equal(t, "Variables", fr.Inputs["lesson_title"])
		assert.Equal(t, "u-1", fr.FlowMetadata["unit_id"])
		require.NotNil(t, fr.UserID)
		assert.Equal(t, "user-1", *fr.UserID)
		assert.NotNil(t, fr.StartedAt)
		assert.NotNil(t, fr.LastHeartbeat)
	})

	t.Run("defaults execution mode to sync", func(t *testing.T) {
		id, err := svc.CreateFlowRun(ctx, flow.FlowRunRecord{
			FlowName:   "unit_creation",
			TotalSteps: 3,
		})
		require.NoError(t, err)

		fr, err := svc.GetFlowRun(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, flowrun.ExecutionModeSync, fr.ExecutionMode)
	})
}

func TestFlowRunService_StartFlowRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewFlowRunService(client.Client)
	ctx := context.Background()

	t.Run("starts a pending flow run", func(t *testing.T) {
		id, err := svc.CreatePendingFlowRun(ctx, flow.FlowRunRecord{
			FlowName:      "unit_creation",
			ExecutionMode: flow.ModeBackground,
		})
		require.NoError(t, err)

		err = svc.StartFlowRun(ctx, id, 3)
		require.NoError(t, err)

		fr, err := svc.GetFlowRun(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, flowrun.StatusRunning, fr.Status)
		assert.Equal(t, 3, fr.TotalSteps)
		assert.NotNil(t, fr.StartedAt)
		assert.NotNil(t, fr.LastHeartbeat)
	})

	t.Run("refuses to start a cancelled flow run", func(t *testing.T) {
		id, err := svc.CreatePendingFlowRun(ctx, flow.FlowRunRecord{
			FlowName:      "unit_creation",
			ExecutionMode: flow.ModeBackground,
		})
		require.NoError(t, err)
		require.NoError(t, svc.CancelPendingFlowRun(ctx, id))

		err = svc.StartFlowRun(ctx, id, 3)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConcurrentModification)

		fr, err := svc.GetFlowRun(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, flowrun.StatusCancelled, fr.Status)
	})

	t.Run("returns ErrNotFound for missing flow run", func(t *testing.T) {
		err := svc.StartFlowRun(ctx, "nonexistent", 3)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestFlowRunService_CompleteFlowRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewFlowRunService(client.Client)
	ctx := context.Background()

	t.Run("writes terminal state and clamps progress", func(t *testing.T) {
		id, err := svc.CreateFlowRun(ctx, flow.FlowRunRecord{
			FlowName:   "unit_creation",
			TotalSteps: 3,
		})
		require.NoError(t, err)

		err = svc.UpdateFlowProgress(ctx, id, flow.Progress{
			CurrentStep:        "generate_unit_summary",
			StepProgress:       2,
			ProgressPercentage: 66.7,
		})
		require.NoError(t, err)

		err = svc.CompleteFlowRun(ctx, id, flow.FlowCompletion{
			Outputs:         map[string]any{"unit_summary": "done"},
			TotalTokens:     1200,
			TotalCost:       0.05,
			ExecutionTimeMS: 4200,
		})
		require.NoError(t, err)

		fr, err := svc.GetFlowRun(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, flowrun.StatusCompleted, fr.Status)
		assert.Equal(t, 3, fr.StepProgress)
		assert.Equal(t, float64(100), fr.ProgressPercentage)
		assert.Nil(t, fr.CurrentStep)
		assert.Equal(t, 1200, fr.TotalTokens)
		assert.InDelta(t, 0.05, fr.TotalCost, 1e-9)
		require.NotNil(t, fr.ExecutionTimeMs)
		assert.Equal(t, 4200, *fr.ExecutionTimeMs)
		assert.NotNil(t, fr.CompletedAt)
	})

	t.Run("second terminal write conflicts", func(t *testing.T) {
		id, err := svc.CreateFlowRun(ctx, flow.FlowRunRecord{FlowName: "unit_creation", TotalSteps: 1})
		require.NoError(t, err)
		require.NoError(t, svc.CompleteFlowRun(ctx, id, flow.FlowCompletion{}))

		err = svc.FailFlowRun(ctx, id, "boom", flow.FlowTermination{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConcurrentModification)

		fr, err := svc.GetFlowRun(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, flowrun.StatusCompleted, fr.Status)
	})
}

func TestFlowRunService_FailAndCancel(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewFlowRunService(client.Client)
	ctx := context.Background()

	t.Run("fail preserves partial roll-ups", func(t *testing.T) {
		id, err := svc.CreateFlowRun(ctx, flow.FlowRunRecord{FlowName: "lesson_creation", TotalSteps: 6})
		require.NoError(t, err)

		err = svc.FailFlowRun(ctx, id, "step generate_mcqs failed: invalid_response", flow.FlowTermination{
			TotalTokens:     800,
			TotalCost:       0.02,
			ExecutionTimeMS: 3100,
		})
		require.NoError(t, err)

		fr, err := svc.GetFlowRun(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, flowrun.StatusFailed, fr.Status)
		require.NotNil(t, fr.ErrorMessage)
		assert.Contains(t, *fr.ErrorMessage, "generate_mcqs")
		assert.Equal(t, 800, fr.TotalTokens)
		assert.NotNil(t, fr.CompletedAt)
	})

	t.Run("cancel writes cancelled terminal state", func(t *testing.T) {
		id, err := svc.CreateFlowRun(ctx, flow.FlowRunRecord{FlowName: "lesson_creation", TotalSteps: 6})
		require.NoError(t, err)

		err = svc.CancelFlowRun(ctx, id, flow.FlowTermination{TotalTokens: 100})
		require.NoError(t, err)

		fr, err := svc.GetFlowRun(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, flowrun.StatusCancelled, fr.Status)
		assert.Equal(t, 100, fr.TotalTokens)
	})
}

func TestFlowRunService_CancelPendingFlowRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewFlowRunService(client.Client)
	ctx := context.Background()

	t.Run("cancels a pending flow run", func(t *testing.T) {
		id, err := svc.CreatePendingFlowRun(ctx, flow.FlowRunRecord{FlowName: "unit_creation"})
		require.NoError(t, err)

		require.NoError(t, svc.CancelPendingFlowRun(ctx, id))

		fr, err := svc.GetFlowRun(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, flowrun.StatusCancelled, fr.Status)
		assert.NotNil(t, fr.CompletedAt)
	})

	t.Run("running flow run conflicts", func(t *testing.T) {
		id, err := svc.CreateFlowRun(ctx, flow.FlowRunRecord{FlowName: "unit_creation", TotalSteps: 3})
		require.NoError(t, err)

		err = svc.CancelPendingFlowRun(ctx, id)
		assert.ErrorIs(t, err, ErrConcurrentModification)
	})

	t.Run("terminal flow run is not cancellable", func(t *testing.T) {
		id, err := svc.CreateFlowRun(ctx, flow.FlowRunRecord{FlowName: "unit_creation", TotalSteps: 1})
		require.NoError(t, err)
		require.NoError(t, svc.CompleteFlowRun(ctx, id, flow.FlowCompletion{}))

		err = svc.CancelPendingFlowRun(ctx, id)
		assert.ErrorIs(t, err, ErrNotCancellable)
	})

	t.Run("returns ErrNotFound for missing flow run", func(t *testing.T) {
		err := svc.CancelPendingFlowRun(ctx, "nonexistent")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestFlowRunService_StepRuns(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewFlowRunService(client.Client)
	ctx := context.Background()

	flowRunID, err := svc.CreateFlowRun(ctx, flow.FlowRunRecord{FlowName: "lesson_creation", TotalSteps: 6})
	require.NoError(t, err)

	t.Run("completes a step with roll-ups and llm request id", func(t *testing.T) {
		stepID, err := svc.CreateStepRun(ctx, flow.StepRunRecord{
			FlowRunID: flowRunID,
			StepName:  "generate_glossary",
			StepOrder: 3,
			Inputs:    map[string]any{"lesson_title": "Variables"},
		})
		require.NoError(t, err)

		err = svc.CompleteStepRun(ctx, stepID, flow.StepCompletion{
			Outputs:         map[string]any{"glossary": []any{}},
			TokensUsed:      450,
			CostEstimate:    0.01,
			ExecutionTimeMS: 900,
			LLMRequestID:    "req-1",
		})
		require.NoError(t, err)

		row, err := client.Client.FlowStepRun.Get(ctx, stepID)
		require.NoError(t, err)
		assert.Equal(t, flowsteprun.StatusCompleted, row.Status)
		assert.Equal(t, 450, row.TokensUsed)
		require.NotNil(t, row.LlmRequestID)
		assert.Equal(t, "req-1", *row.LlmRequestID)
		assert.NotNil(t, row.CompletedAt)
	})

	t.Run("fails a step with error message", func(t *testing.T) {
		stepID, err := svc.CreateStepRun(ctx, flow.StepRunRecord{
			FlowRunID: flowRunID,
			StepName:  "generate_mcqs",
			StepOrder: 4,
		})
		require.NoError(t, err)

		err = svc.FailStepRun(ctx, stepID, flow.StepFailure{
			ErrorMessage:    "invalid_response: document failed schema validation",
			TokensUsed:      200,
			ExecutionTimeMS: 700,
		})
		require.NoError(t, err)

		row, err := client.Client.FlowStepRun.Get(ctx, stepID)
		require.NoError(t, err)
		assert.Equal(t, flowsteprun.StatusFailed, row.Status)
		require.NotNil(t, row.ErrorMessage)
		assert.Contains(t, *row.ErrorMessage, "invalid_response")
		assert.Equal(t, 200, row.TokensUsed)
	})

	t.Run("double terminal write conflicts", func(t *testing.T) {
		stepID, err := svc.CreateStepRun(ctx, flow.StepRunRecord{
			FlowRunID: flowRunID,
			StepName:  "generate_short_answers",
			StepOrder: 5,
		})
		require.NoError(t, err)
		require.NoError(t, svc.CompleteStepRun(ctx, stepID, flow.StepCompletion{}))

		err = svc.FailStepRun(ctx, stepID, flow.StepFailure{ErrorMessage: "late"})
		assert.ErrorIs(t, err, ErrConcurrentModification)
	})
}

func TestFlowRunService_StepUsage(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewFlowRunService(client.Client)
	recorder := NewLLMRequestService(client.Client)
	ctx := context.Background()

	flowRunID, err := svc.CreateFlowRun(ctx, flow.FlowRunRecord{FlowName: "lesson_creation", TotalSteps: 6})
	require.NoError(t, err)
	stepID, err := svc.CreateStepRun(ctx, flow.StepRunRecord{
		FlowRunID: flowRunID,
		StepName:  "generate_mcqs",
		StepOrder: 4,
	})
	require.NoError(t, err)

	// Two audited requests for this step, one for another step.
	scope := llm.Scope{FlowRunID: flowRunID, StepRunID: stepID}
	var ids []string
	for _, tokens := range []int{300, 150} {
		id, err := recorder.BeginRequest(ctx, llm.RequestRecord{
			Variant: llm.VariantStructured, Provider: "openai", Model: "gpt-5", Scope: scope,
		})
		require.NoError(t, err)
		require.NoError(t, recorder.CompleteRequest(ctx, id, llm.CompletionRecord{
			Content:      "{}",
			Usage:        tokenUsage(tokens),
			CostEstimate: float64(tokens) * 0.0001,
		}))
		ids = append(ids, id)
	}
	otherID, err := recorder.BeginRequest(ctx, llm.RequestRecord{
		Variant: llm.VariantChat, Provider: "openai", Model: "gpt-5",
		Scope: llm.Scope{FlowRunID: flowRunID, StepRunID: "other-step"},
	})
	require.NoError(t, err)
	require.NoError(t, recorder.CompleteRequest(ctx, otherID, llm.CompletionRecord{Usage: tokenUsage(999)}))

	rollup, err := svc.StepUsage(ctx, stepID)
	require.NoError(t, err)
	assert.Equal(t, 450, rollup.Tokens)
	assert.InDelta(t, 0.045, rollup.Cost, 1e-9)
	assert.Equal(t, ids, rollup.RequestIDs)
}

func TestFlowRunService_StallRecovery(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewFlowRunService(client.Client)
	ctx := context.Background()

	t.Run("finds flows with stale heartbeats", func(t *testing.T) {
		staleID, err := svc.CreateFlowRun(ctx, flow.FlowRunRecord{FlowName: "unit_creation", TotalSteps: 3})
		require.NoError(t, err)
		freshID, err := svc.CreateFlowRun(ctx, flow.FlowRunRecord{FlowName: "unit_creation", TotalSteps: 3})
		require.NoError(t, err)

		// Age the first flow's heartbeat past the threshold.
		err = client.Client.FlowRun.UpdateOneID(staleID).
			SetLastHeartbeat(time.Now().Add(-10 * time.Minute)).
			Exec(ctx)
		require.NoError(t, err)

		stalled, err := svc.FindStalledFlows(ctx, 5*time.Minute)
		require.NoError(t, err)
		require.Len(t, stalled, 1)
		assert.Equal(t, staleID, stalled[0].ID)
		assert.NotEqual(t, freshID, stalled[0].ID)
	})

	t.Run("fails abandoned flow with step roll-ups", func(t *testing.T) {
		id, err := svc.CreateFlowRun(ctx, flow.FlowRunRecord{FlowName: "unit_creation", TotalSteps: 3})
		require.NoError(t, err)

		stepID, err := svc.CreateStepRun(ctx, flow.StepRunRecord{FlowRunID: id, StepName: "extract_unit_metadata", StepOrder: 1})
		require.NoError(t, err)
		require.NoError(t, svc.CompleteStepRun(ctx, stepID, flow.StepCompletion{TokensUsed: 500, CostEstimate: 0.02}))

		err = svc.FailAbandonedFlow(ctx, id, "stalled")
		require.NoError(t, err)

		fr, err := svc.GetFlowRun(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, flowrun.StatusFailed, fr.Status)
		require.NotNil(t, fr.ErrorMessage)
		assert.Equal(t, "stalled", *fr.ErrorMessage)
		assert.Equal(t, 500, fr.TotalTokens)
		assert.InDelta(t, 0.02, fr.TotalCost, 1e-9)
	})

	t.Run("already-terminal flow is left untouched", func(t *testing.T) {
		id, err := svc.CreateFlowRun(ctx, flow.FlowRunRecord{FlowName: "unit_creation", TotalSteps: 1})
		require.NoError(t, err)
		require.NoError(t, svc.CompleteFlowRun(ctx, id, flow.FlowCompletion{TotalTokens: 42}))

		err = svc.FailAbandonedFlow(ctx, id, "stalled")
		require.NoError(t, err)

		fr, err := svc.GetFlowRun(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, flowrun.StatusCompleted, fr.Status)
		assert.Equal(t, 42, fr.TotalTokens)
	})
}
