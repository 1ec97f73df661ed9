package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoint(t *testing.T) {
	t.Run("healthy with a reachable database", func(t *testing.T) {
		srv, _ := newTestServer(t)
		router := srv.Routes()

		var health HealthResponse
		rec := doJSON(t, router, http.MethodGet, "/health", nil, &health)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "healthy", health.Status)
		assert.NotEmpty(t, health.Version)
		require.NotNil(t, health.Database)
		assert.Equal(t, "healthy", health.Checks["database"].Status)
		assert.Equal(t, "disabled", health.Checks["worker_pool"].Status)
	})

	t.Run("unhealthy without a database", func(t *testing.T) {
		s := &Server{}
		router := s.Routes()

		rec := doJSON(t, router, http.MethodGet, "/health", nil, nil)
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var health HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
		assert.Equal(t, "unhealthy", health.Status)
		assert.Equal(t, "unhealthy", health.Checks["database"].Status)
	})
}
