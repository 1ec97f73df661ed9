package api

import (
	"github.com/brianfields/deeplearn-sub002/pkg/database"
	"github.com/brianfields/deeplearn-sub002/pkg/queue"
)

// SubmitUnitResponse is returned by POST /api/v1/units for background
// submissions.
type SubmitUnitResponse struct {
	UnitID    string `json:"unit_id"`
	FlowRunID string `json:"flow_run_id,omitempty"`
	Status    string `json:"status"`
	Message   string `json:"message"`
}

// CancelResponse is returned by the unit and flow cancel endpoints.
type CancelResponse struct {
	UnitID    string `json:"unit_id,omitempty"`
	FlowRunID string `json:"flow_run_id,omitempty"`
	Message   string `json:"message"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status     string                 `json:"status"`
	Version    string                 `json:"version"`
	Database   *database.HealthStatus `json:"database,omitempty"`
	WorkerPool *queue.PoolHealth      `json:"worker_pool,omitempty"`
	Checks     map[string]HealthCheck `json:"checks"`
}

// HealthCheck is one component's health verdict.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
