package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/brianfields/deeplearn-sub002/pkg/flow"
	"github.com/brianfields/deeplearn-sub002/pkg/llm"
	testdb "github.com/brianfields/deeplearn-sub002/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminService_ListFlowRuns(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAdminService(client.Client)
	flowSvc := NewFlowRunService(client.Client)
	ctx := context.Background()

	// 3 running unit_creation flows, 2 completed lesson_creation flows.
	for i := 0; i < 3; i++ {
		_, err := flowSvc.CreateFlowRun(ctx, flow.FlowRunRecord{FlowName: "unit_creation", TotalSteps: 3})
		require.NoError(t, err)
	}
	for i := 0; i < 2; i++ {
		id, err := flowSvc.CreateFlowRun(ctx, flow.FlowRunRecord{FlowName: "lesson_creation", TotalSteps: 6})
		require.NoError(t, err)
		require.NoError(t, flowSvc.CompleteFlowRun(ctx, id, flow.FlowCompletion{}))
	}

	t.Run("defaults and totals", func(t *testing.T) {
		page, err := svc.ListFlowRuns(ctx, FlowRunFilters{})
		require.NoError(t, err)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, DefaultPageSize, page.PageSize)
		assert.Equal(t, 5, page.TotalCount)
		assert.Equal(t, 1, page.TotalPages)
		assert.Len(t, page.Items, 5)
	})

	t.Run("paginates newest first", func(t *testing.T) {
		first, err := svc.ListFlowRuns(ctx, FlowRunFilters{Page: 1, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, first.TotalPages)
		require.Len(t, first.Items, 2)

		last, err := svc.ListFlowRuns(ctx, FlowRunFilters{Page: 3, PageSize: 2})
		require.NoError(t, err)
		require.Len(t, last.Items, 1)

		// No overlap between pages.
		assert.NotEqual(t, first.Items[0].ID, last.Items[0].ID)
		// Newest first within a page.
		assert.True(t, !first.Items[0].CreatedAt.Before(first.Items[1].CreatedAt))
	})

	t.Run("filters by status and flow name", func(t *testing.T) {
		page, err := svc.ListFlowRuns(ctx, FlowRunFilters{Status: "completed"})
		require.NoError(t, err)
		assert.Equal(t, 2, page.TotalCount)

		page, err = svc.ListFlowRuns(ctx, FlowRunFilters{FlowName: "unit_creation"})
		require.NoError(t, err)
		assert.Equal(t, 3, page.TotalCount)

		page, err = svc.ListFlowRuns(ctx, FlowRunFilters{Status: "running", FlowName: "lesson_creation"})
		require.NoError(t, err)
		assert.Equal(t, 0, page.TotalCount)
		assert.Empty(t, page.Items)
	})

	t.Run("rejects invalid pagination and filters", func(t *testing.T) {
		tests := []struct {
			name    string
			filters FlowRunFilters
		}{
			{"negative page", FlowRunFilters{Page: -1}},
			{"zero page size explicitly negative", FlowRunFilters{PageSize: -5}},
			{"page size above cap", FlowRunFilters{PageSize: MaxPageSize + 1}},
			{"unknown status", FlowRunFilters{Status: "bogus"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.ListFlowRuns(ctx, tt.filters)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			})
		}
	})

	t.Run("page past the end is empty, not an error", func(t *testing.T) {
		page, err := svc.ListFlowRuns(ctx, FlowRunFilters{Page: 99})
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, 5, page.TotalCount)
	})
}

func TestAdminService_StepCounts(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAdminService(client.Client)
	flowSvc := NewFlowRunService(client.Client)
	ctx := context.Background()

	withSteps, err := flowSvc.CreateFlowRun(ctx, flow.FlowRunRecord{FlowName: "unit_creation", TotalSteps: 3})
	require.NoError(t, err)
	for order := 1; order <= 2; order++ {
		_, err := flowSvc.CreateStepRun(ctx, flow.StepRunRecord{
			FlowRunID: withSteps,
			StepName:  fmt.Sprintf("step_%d", order),
			StepOrder: order,
		})
		require.NoError(t, err)
	}
	withoutSteps, err := flowSvc.CreateFlowRun(ctx, flow.FlowRunRecord{FlowName: "unit_creation", TotalSteps: 3})
	require.NoError(t, err)

	counts, err := svc.StepCounts(ctx, []string{withSteps, withoutSteps})
	require.NoError(t, err)
	assert.Equal(t, 2, counts[withSteps])
	_, present := counts[withoutSteps]
	assert.False(t, present, "flows without steps should be absent")

	counts, err = svc.StepCounts(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestAdminService_FlowRunDetail(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAdminService(client.Client)
	flowSvc := NewFlowRunService(client.Client)
	recorder := NewLLMRequestService(client.Client)
	ctx := context.Background()

	flowRunID, err := flowSvc.CreateFlowRun(ctx, flow.FlowRunRecord{FlowName: "lesson_creation", TotalSteps: 3})
	require.NoError(t, err)

	// Steps created out of order; detail must return execution order.
	var stepIDs [3]string
	for _, order := range []int{2, 1, 3} {
		id, err := flowSvc.CreateStepRun(ctx, flow.StepRunRecord{
			FlowRunID: flowRunID,
			StepName:  fmt.Sprintf("step_%d", order),
			StepOrder: order,
		})
		require.NoError(t, err)
		stepIDs[order-1] = id
	}

	t.Run("returns steps in execution order", func(t *testing.T) {
		fr, err := svc.GetFlowRunDetail(ctx, flowRunID)
		require.NoError(t, err)
		require.Len(t, fr.Edges.Steps, 3)
		for i, step := range fr.Edges.Steps {
			assert.Equal(t, i+1, step.StepOrder)
		}
	})

	t.Run("returns ErrNotFound for missing flow run", func(t *testing.T) {
		_, err := svc.GetFlowRunDetail(ctx, "nonexistent")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("step detail carries payloads and llm requests", func(t *testing.T) {
		reqID, err := recorder.BeginRequest(ctx, llm.RequestRecord{
			Variant: llm.VariantStructured, Provider: "openai", Model: "gpt-5",
			Scope: llm.Scope{FlowRunID: flowRunID, StepRunID: stepIDs[0]},
		})
		require.NoError(t, err)
		require.NoError(t, recorder.CompleteRequest(ctx, reqID, llm.CompletionRecord{Usage: tokenUsage(120)}))

		detail, err := svc.GetStepRunDetail(ctx, flowRunID, stepIDs[0])
		require.NoError(t, err)
		assert.Equal(t, "lesson_creation", detail.FlowName)
		assert.Equal(t, stepIDs[0], detail.Step.ID)
		require.Len(t, detail.Requests, 1)
		assert.Equal(t, reqID, detail.Requests[0].ID)
	})

	t.Run("step detail is scoped to its flow run", func(t *testing.T) {
		otherFlow, err := flowSvc.CreateFlowRun(ctx, flow.FlowRunRecord{FlowName: "unit_creation", TotalSteps: 1})
		require.NoError(t, err)

		_, err = svc.GetStepRunDetail(ctx, otherFlow, stepIDs[0])
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
