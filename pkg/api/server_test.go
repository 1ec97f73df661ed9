package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/brianfields/deeplearn-sub002/pkg/config"
	"github.com/brianfields/deeplearn-sub002/pkg/database"
	"github.com/brianfields/deeplearn-sub002/pkg/services"
	testdb "github.com/brianfields/deeplearn-sub002/test/database"
)

// newTestServer builds a Server over a fresh test database. No worker pool
// and no executor: background submissions stay pending, sync submissions
// report unavailable.
func newTestServer(t *testing.T) (*Server, *database.Client) {
	t.Helper()

	client := testdb.NewTestClient(t)
	cfg := &config.Config{
		Content: config.ContentConfig{SyncUnitTimeout: 30 * time.Second},
	}

	srv := NewServer(
		cfg,
		client,
		services.NewUnitService(client.Client),
		services.NewLessonService(client.Client),
		services.NewAdminService(client.Client),
		services.NewLLMRequestService(client.Client),
		services.NewFlowRunService(client.Client),
		"test-pod",
	)
	return srv, client
}

// doJSON runs one request through the router and decodes the response body
// into out (skipped when out is nil).
func doJSON(t *testing.T, router *gin.Engine, method, path string, body []byte, out any) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if out != nil && rec.Code < http.StatusBadRequest {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

func TestRoutesServe(t *testing.T) {
	srv, _ := newTestServer(t)
	router := srv.Routes()

	rec := doJSON(t, router, http.MethodGet, "/health", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}
