// Package queue turns pending units into running unit-creation flows. There
// is no broker: the units table is the queue, workers claim rows with
// FOR UPDATE SKIP LOCKED, and a stall reconciler fails runs whose heartbeat
// went quiet.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/brianfields/deeplearn-sub002/ent"
	"github.com/brianfields/deeplearn-sub002/ent/unit"
)

// Sentinel errors for queue operations.
var (
	// ErrNoUnitsAvailable indicates no pending units are in the backlog.
	ErrNoUnitsAvailable = errors.New("no units available")

	// ErrAtCapacity indicates this pod is already processing its maximum
	// number of concurrent units.
	ErrAtCapacity = errors.New("at capacity")
)

// UnitExecutor runs one claimed unit's creation end to end.
//
// The executor owns the pipeline internally: it runs the unit flow, fans out
// the lesson flows, persists lessons and progress as it goes, and generates
// media. The worker only handles claiming, cancellation wiring, and the
// terminal unit status.
type UnitExecutor interface {
	Execute(ctx context.Context, u *ent.Unit) *ExecutionResult
}

// ExecutionResult is just the terminal state. Everything else (lessons,
// progress, assets, flow rows) was already written during execution.
type ExecutionResult struct {
	Status       unit.Status // completed or failed
	ErrorMessage string
	LessonsTotal int
	LessonsDone  int
}

// PoolHealth reports the pool's view of this pod and the shared backlog.
type PoolHealth struct {
	IsHealthy     bool           `json:"is_healthy"`
	DBReachable   bool           `json:"db_reachable"`
	DBError       string         `json:"db_error,omitempty"`
	PodID         string         `json:"pod_id"`
	ActiveWorkers int            `json:"active_workers"`
	TotalWorkers  int            `json:"total_workers"`
	ActiveUnits   int            `json:"active_units"`
	MaxConcurrent int            `json:"max_concurrent"`
	QueueDepth    int            `json:"queue_depth"`
	WorkerStats   []WorkerHealth `json:"worker_stats"`
	LastStallScan time.Time      `json:"last_stall_scan"`
	StalledFailed int            `json:"stalled_failed"`
}

// WorkerHealth reports one worker's state.
type WorkerHealth struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"` // "idle" or "working"
	CurrentUnitID  string    `json:"current_unit_id,omitempty"`
	UnitsProcessed int       `json:"units_processed"`
	LastActivity   time.Time `json:"last_activity"`
}
