package e2e

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brianfields/deeplearn-sub002/ent/llmrequest"
	"github.com/brianfields/deeplearn-sub002/pkg/api"
)

// TestBackgroundCancellation cancels a background unit while its planning
// call is parked inside the provider, then checks every row the interruption
// touches: the unit, the flow run, its steps, and the audit trail.
func TestBackgroundCancellation(t *testing.T) {
	app := NewTestApp(t)
	parked := app.Provider.parkOn("unit_plan")

	var accepted api.SubmitUnitResponse
	app.postJSON(t, "/api/v1/units", map[string]any{
		"source_material": "Gradient descent minimizes a loss function by stepping against the gradient.",
		"learner_level":   "beginner",
		"background":      true,
	}, http.StatusAccepted, &accepted)
	require.NotEmpty(t, accepted.UnitID)
	require.NotEmpty(t, accepted.FlowRunID)
	assert.Equal(t, "pending", accepted.Status)

	// Cancel only once the provider call is demonstrably in flight, so the
	// audit row exists before the context dies.
	waitParked(t, parked)

	var cancelResp api.CancelResponse
	app.postJSON(t, "/api/v1/units/"+accepted.UnitID+"/cancel", struct{}{}, http.StatusOK, &cancelResp)
	assert.Equal(t, accepted.UnitID, cancelResp.UnitID)

	detail := app.waitUnitStatus(t, accepted.UnitID, "failed")
	require.NotNil(t, detail.ErrorMessage)
	assert.Equal(t, "unit creation cancelled", *detail.ErrorMessage)
	assert.NotNil(t, detail.CompletedAt)

	// The flow run terminal status was written by the engine before the
	// worker finalized the unit, so a single read is race-free here.
	var flowDetail api.FlowDetail
	app.getJSON(t, "/api/v1/admin/flows/"+accepted.FlowRunID, http.StatusOK, &flowDetail)
	assert.Equal(t, "cancelled", flowDetail.Status)
	assert.NotNil(t, flowDetail.CompletedAt)

	// Submitted source material short-circuits the first step; the parked
	// planning step is the one the cancellation lands on. Later steps never
	// get rows.
	require.Len(t, flowDetail.Steps, 2)
	first, second := flowDetail.Steps[0], flowDetail.Steps[1]
	assert.Equal(t, "generate_source_material", first.StepName)
	assert.Equal(t, "completed", first.Status)
	assert.Zero(t, first.TokensUsed)
	assert.Nil(t, first.LLMRequestID)
	assert.Equal(t, "extract_unit_metadata", second.StepName)
	assert.Equal(t, "failed", second.Status)
	require.NotNil(t, second.ErrorMessage)
	assert.Contains(t, *second.ErrorMessage, "cancelled")

	// Exactly one provider call was made, and its audit row records the
	// interruption with a finite duration.
	rows, err := app.Ent.LLMRequest.Query().
		Where(llmrequest.FlowRunIDEQ(accepted.FlowRunID)).
		All(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, llmrequest.StatusFailed, row.Status)
	require.NotNil(t, row.ErrorType)
	assert.Equal(t, "cancelled", *row.ErrorType)
	require.NotNil(t, row.ExecutionTimeMs)
	assert.GreaterOrEqual(t, *row.ExecutionTimeMs, 0)
	assert.Equal(t, "scripted", row.Provider)
}
