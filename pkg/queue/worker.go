package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/brianfields/deeplearn-sub002/ent"
	"github.com/brianfields/deeplearn-sub002/ent/unit"
	"github.com/brianfields/deeplearn-sub002/pkg/config"
	"github.com/brianfields/deeplearn-sub002/pkg/services"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes pending units.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	executor UnitExecutor
	units    *services.UnitService
	pool     UnitRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu             sync.RWMutex
	status         WorkerStatus
	currentUnitID  string
	unitsProcessed int
	lastActivity   time.Time
}

// UnitRegistry is the subset of WorkerPool the worker uses for cancellation
// wiring and the per-pod capacity check.
type UnitRegistry interface {
	RegisterUnit(unitID, flowRunID string, cancel context.CancelFunc)
	UnregisterUnit(unitID, flowRunID string)
	ActiveCount() int
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor UnitExecutor, units *services.UnitService, pool UnitRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		units:        units,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.id,
		Status:         string(w.status),
		CurrentUnitID:  w.currentUnitID,
		UnitsProcessed: w.unitsProcessed,
		LastActivity:   w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoUnitsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing unit", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a unit, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check per-pod capacity. Sync submissions bypass the pool, so only
	//    claimed background units count against it.
	if w.pool.ActiveCount() >= w.config.MaxConcurrentUnits {
		return ErrAtCapacity
	}

	// 2. Claim the oldest pending unit
	u, err := w.claimNextUnit(ctx)
	if err != nil {
		return err
	}

	log := slog.With("unit_id", u.ID, "worker_id", w.id)
	log.Info("Unit claimed")

	w.setStatus(WorkerStatusWorking, u.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Create unit context with timeout
	unitCtx, cancelUnit := context.WithTimeout(ctx, w.config.UnitTimeout)
	defer cancelUnit()

	// 4. Register the cancel under both ids so API-triggered cancellation
	//    works whether the caller knows the unit or its flow run. The flow
	//    engine heartbeats the run; the worker does not.
	flowRunID := ""
	if u.FlowRunID != nil {
		flowRunID = *u.FlowRunID
	}
	w.pool.RegisterUnit(u.ID, flowRunID, cancelUnit)
	defer w.pool.UnregisterUnit(u.ID, flowRunID)

	// 5. Execute the unit creation
	result := w.executor.Execute(unitCtx, u)

	// 5a. Nil-guard: synthesize a safe result if the executor returned nil
	if result == nil {
		switch {
		case errors.Is(unitCtx.Err(), context.DeadlineExceeded):
			result = &ExecutionResult{
				Status:       unit.StatusFailed,
				ErrorMessage: fmt.Sprintf("unit creation timed out after %v", w.config.UnitTimeout),
			}
		case errors.Is(unitCtx.Err(), context.Canceled):
			result = &ExecutionResult{
				Status:       unit.StatusFailed,
				ErrorMessage: "unit creation cancelled",
			}
		default:
			result = &ExecutionResult{
				Status:       unit.StatusFailed,
				ErrorMessage: "executor returned nil result",
			}
		}
	}

	// 6. Update terminal status (background context; the unit ctx may
	//    already be cancelled)
	if err := w.updateUnitTerminalStatus(context.Background(), u, result); err != nil {
		log.Error("Failed to update unit terminal status", "error", err)
		return err
	}

	w.mu.Lock()
	w.unitsProcessed++
	w.mu.Unlock()

	log.Info("Unit processing complete",
		"status", result.Status,
		"lessons_done", result.LessonsDone,
		"lessons_total", result.LessonsTotal)
	return nil
}

// claimNextUnit atomically claims the oldest pending unit using
// FOR UPDATE SKIP LOCKED, so concurrent workers and pods never double-claim.
func (w *Worker) claimNextUnit(ctx context.Context) (*ent.Unit, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	u, err := tx.Unit.Query().
		Where(unit.StatusEQ(unit.StatusPending)).
		Order(ent.Asc(unit.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoUnitsAvailable
		}
		return nil, fmt.Errorf("failed to query pending unit: %w", err)
	}

	u, err = u.Update().
		SetStatus(unit.StatusInProgress).
		SetPodID(w.podID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim unit: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return u, nil
}

// updateUnitTerminalStatus writes the final unit status through the unit
// service so its conflict checks apply.
func (w *Worker) updateUnitTerminalStatus(ctx context.Context, u *ent.Unit, result *ExecutionResult) error {
	var err error
	if result.Status == unit.StatusCompleted {
		err = w.units.CompleteUnit(ctx, u.ID)
	} else {
		msg := result.ErrorMessage
		if msg == "" {
			msg = "unit creation failed"
		}
		err = w.units.FailUnit(ctx, u.ID, msg)
	}
	if errors.Is(err, services.ErrConcurrentModification) {
		// The stall reconciler finalized it first; its verdict stands.
		slog.Warn("Unit already finalized", "unit_id", u.ID, "status", result.Status)
		return nil
	}
	return err
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, unitID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentUnitID = unitID
	w.lastActivity = time.Now()
}
