package e2e

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brianfields/deeplearn-sub002/pkg/api"
	"github.com/brianfields/deeplearn-sub002/pkg/config"
)

// TestStalledFlowFailedByReconciler freezes a flow's heartbeat by stretching
// the engine's interval far beyond the stall threshold, parks the provider,
// and waits for the reconciler to declare the run abandoned.
func TestStalledFlowFailedByReconciler(t *testing.T) {
	app := NewTestApp(t,
		WithEngineHeartbeat(time.Hour),
		WithConfig(func(cfg *config.Config) {
			cfg.Queue.StallThreshold = time.Second
			cfg.Queue.StallDetectionInterval = 200 * time.Millisecond
		}),
	)
	parked := app.Provider.parkOn("unit_plan")

	var accepted api.SubmitUnitResponse
	app.postJSON(t, "/api/v1/units", map[string]any{
		"source_material": "Gradient descent minimizes a loss function by stepping against the gradient.",
		"learner_level":   "beginner",
		"background":      true,
	}, http.StatusAccepted, &accepted)

	waitParked(t, parked)

	detail := app.waitUnitStatus(t, accepted.UnitID, "failed")
	require.NotNil(t, detail.ErrorMessage)
	assert.Contains(t, *detail.ErrorMessage, "stalled: no heartbeat since")
	assert.NotNil(t, detail.CompletedAt)

	var flowDetail api.FlowDetail
	app.getJSON(t, "/api/v1/admin/flows/"+accepted.FlowRunID, http.StatusOK, &flowDetail)
	assert.Equal(t, "failed", flowDetail.Status)
	require.NotNil(t, flowDetail.ErrorMessage)
	assert.Contains(t, *flowDetail.ErrorMessage, "stalled: no heartbeat since")
	assert.NotNil(t, flowDetail.CompletedAt)
}
