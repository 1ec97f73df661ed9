package e2e

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brianfields/deeplearn-sub002/pkg/api"
)

// TestAdminReadModel walks the observability surface after a single-lesson
// creation: flow detail with ordered steps, token roll-ups, step detail, and
// the audit row behind every provider call.
func TestAdminReadModel(t *testing.T) {
	app := NewTestApp(t, WithPlan(gradientPlan(1)))

	var detail api.UnitDetail
	app.postJSON(t, "/api/v1/units", map[string]any{
		"topic":               "Intro to Gradient Descent",
		"target_lesson_count": 1,
		"learner_level":       "beginner",
	}, http.StatusOK, &detail)
	require.Equal(t, "completed", detail.Status)
	require.Len(t, detail.LessonOrder, 1)
	require.Len(t, detail.Lessons, 1)
	require.NotNil(t, detail.FlowRunID)

	var flowDetail api.FlowDetail
	app.getJSON(t, "/api/v1/admin/flows/"+*detail.FlowRunID, http.StatusOK, &flowDetail)
	assert.Equal(t, "unit_creation", flowDetail.FlowName)
	assert.Equal(t, "sync", flowDetail.ExecutionMode)
	assert.Equal(t, "completed", flowDetail.Status)
	assert.Equal(t, 3, flowDetail.TotalSteps)
	assert.Equal(t, 3, flowDetail.StepProgress)
	assert.InDelta(t, 100.0, flowDetail.ProgressPercentage, 0.01)

	// Steps come back in execution order, and the flow total matches their
	// sum: three provider calls of 150 tokens each on the topic path.
	wantSteps := []string{"generate_source_material", "extract_unit_metadata", "generate_unit_summary"}
	wantVariants := []string{"chat", "structured", "chat"}
	require.Len(t, flowDetail.Steps, len(wantSteps))
	tokens := 0
	for i, step := range flowDetail.Steps {
		assert.Equal(t, i+1, step.StepOrder)
		assert.Equal(t, wantSteps[i], step.StepName)
		assert.Equal(t, "completed", step.Status)
		tokens += step.TokensUsed

		require.NotNil(t, step.LLMRequestID, "step %s has no llm request", step.StepName)
		var reqDetail api.LLMRequestDetail
		app.getJSON(t, "/api/v1/admin/llm-requests/"+*step.LLMRequestID, http.StatusOK, &reqDetail)
		assert.Equal(t, "completed", reqDetail.Status)
		assert.Equal(t, wantVariants[i], reqDetail.APIVariant)
		assert.Equal(t, "scripted", reqDetail.Provider)
		assert.Equal(t, "gpt-4o-mini", reqDetail.Model)
		assert.Equal(t, 150, reqDetail.TokensUsed)
		require.NotNil(t, reqDetail.StepRunID)
		assert.Equal(t, step.ID, *reqDetail.StepRunID)
		require.NotNil(t, reqDetail.FlowRunID)
		assert.Equal(t, *detail.FlowRunID, *reqDetail.FlowRunID)
	}
	assert.Equal(t, flowDetail.TotalTokens, tokens)
	assert.Equal(t, 450, tokens)

	// The planning step's audit row is replayable: messages in, content out.
	extract := flowDetail.Steps[1]
	var reqDetail api.LLMRequestDetail
	app.getJSON(t, "/api/v1/admin/llm-requests/"+*extract.LLMRequestID, http.StatusOK, &reqDetail)
	require.Len(t, reqDetail.Messages, 2)
	require.NotNil(t, reqDetail.InputTokens)
	assert.Equal(t, 100, *reqDetail.InputTokens)
	require.NotNil(t, reqDetail.OutputTokens)
	assert.Equal(t, 50, *reqDetail.OutputTokens)
	require.NotNil(t, reqDetail.ResponseContent)
	assert.NotEmpty(t, *reqDetail.ResponseContent)

	var stepDetail api.StepDetail
	app.getJSON(t, fmt.Sprintf("/api/v1/admin/flows/%s/steps/%s", *detail.FlowRunID, extract.ID), http.StatusOK, &stepDetail)
	assert.Equal(t, "unit_creation", stepDetail.FlowName)
	assert.Equal(t, "extract_unit_metadata", stepDetail.StepName)
	require.Len(t, stepDetail.LLMRequests, 1)
	assert.Equal(t, *extract.LLMRequestID, stepDetail.LLMRequests[0].ID)
	assert.Equal(t, "completed", stepDetail.LLMRequests[0].Status)

	// The lesson flow: seven steps, six provider calls, and no request on
	// the assemble step.
	require.NotNil(t, detail.Lessons[0].FlowRunID)
	var lessonFlow api.FlowDetail
	app.getJSON(t, "/api/v1/admin/flows/"+*detail.Lessons[0].FlowRunID, http.StatusOK, &lessonFlow)
	assert.Equal(t, "lesson_creation", lessonFlow.FlowName)
	assert.Equal(t, "completed", lessonFlow.Status)
	assert.Equal(t, 900, lessonFlow.TotalTokens)
	require.Len(t, lessonFlow.Steps, 7)
	for _, step := range lessonFlow.Steps[:6] {
		assert.NotNilf(t, step.LLMRequestID, "step %s has no llm request", step.StepName)
	}
	assemble := lessonFlow.Steps[6]
	assert.Equal(t, "assemble_lesson_package", assemble.StepName)
	assert.Nil(t, assemble.LLMRequestID)
	assert.Zero(t, assemble.TokensUsed)

	// Listing is newest-first and pages over both flows of the run.
	var page api.FlowListResponse
	app.getJSON(t, "/api/v1/admin/flows?page=1&page_size=1", http.StatusOK, &page)
	assert.Equal(t, 2, page.TotalCount)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "lesson_creation", page.Items[0].FlowName)
}

// TestHealthEndpoint checks the liveness surface of a fully wired pod.
func TestHealthEndpoint(t *testing.T) {
	app := NewTestApp(t)

	var health api.HealthResponse
	app.getJSON(t, "/health", http.StatusOK, &health)
	assert.Equal(t, "healthy", health.Status)
	assert.NotEmpty(t, health.Version)
	assert.Equal(t, "healthy", health.Checks["database"].Status)
	assert.Equal(t, "healthy", health.Checks["worker_pool"].Status)
}
