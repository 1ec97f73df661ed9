package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/brianfields/deeplearn-sub002/pkg/api"
)

const (
	waitTimeout  = 30 * time.Second
	waitInterval = 100 * time.Millisecond
)

// postJSON posts body to path, requires the status code, and decodes the
// response into out when out is non-nil.
func (app *TestApp) postJSON(t *testing.T, path string, body any, wantStatus int, out any) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(app.BaseURL+path, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equalf(t, wantStatus, resp.StatusCode, "POST %s: %s", path, raw)

	if out != nil {
		require.NoError(t, json.Unmarshal(raw, out))
	}
}

// getJSON fetches path, requires the status code, and decodes the response
// into out when out is non-nil.
func (app *TestApp) getJSON(t *testing.T, path string, wantStatus int, out any) {
	t.Helper()

	resp, err := http.Get(app.BaseURL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equalf(t, wantStatus, resp.StatusCode, "GET %s: %s", path, raw)

	if out != nil {
		require.NoError(t, json.Unmarshal(raw, out))
	}
}

// tryGetJSON fetches path and decodes a 200 response into out. Reports
// success without failing the test; polling loops use it.
func (app *TestApp) tryGetJSON(path string, out any) bool {
	resp, err := http.Get(app.BaseURL + path)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return false
	}
	return json.NewDecoder(resp.Body).Decode(out) == nil
}

// waitUnitStatus polls the unit read endpoint until the unit reports status,
// then returns the final detail.
func (app *TestApp) waitUnitStatus(t *testing.T, unitID, status string) *api.UnitDetail {
	t.Helper()

	var detail api.UnitDetail
	require.Eventuallyf(t, func() bool {
		var d api.UnitDetail
		if !app.tryGetJSON("/api/v1/units/"+unitID, &d) {
			return false
		}
		if d.Status != status {
			return false
		}
		detail = d
		return true
	}, waitTimeout, waitInterval, "unit %s never reached status %q", unitID, status)
	return &detail
}

// waitFlowStatus polls the admin flow endpoint until the flow run reports
// status, then returns the final detail.
func (app *TestApp) waitFlowStatus(t *testing.T, flowRunID, status string) *api.FlowDetail {
	t.Helper()

	var detail api.FlowDetail
	require.Eventuallyf(t, func() bool {
		var d api.FlowDetail
		if !app.tryGetJSON("/api/v1/admin/flows/"+flowRunID, &d) {
			return false
		}
		if d.Status != status {
			return false
		}
		detail = d
		return true
	}, waitTimeout, waitInterval, "flow run %s never reached status %q", flowRunID, status)
	return &detail
}

// waitParked fails the test unless the provider reaches a parked call in
// time.
func waitParked(t *testing.T, parked <-chan struct{}) {
	t.Helper()
	select {
	case <-parked:
	case <-time.After(waitTimeout):
		t.Fatal("provider never reached the parked call")
	}
}
