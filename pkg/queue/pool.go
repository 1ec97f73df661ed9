package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/brianfields/deeplearn-sub002/ent"
	"github.com/brianfields/deeplearn-sub002/ent/unit"
	"github.com/brianfields/deeplearn-sub002/pkg/config"
	"github.com/brianfields/deeplearn-sub002/pkg/services"
)

// WorkerPool manages a pool of queue workers and the stall reconciler.
type WorkerPool struct {
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	executor UnitExecutor
	units    *services.UnitService
	flowRuns *services.FlowRunService
	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Cancel registry. Each active unit registers its cancel under both the
	// unit id and its flow run id, so either handle cancels it on this pod.
	activeUnits map[string]context.CancelFunc
	activeFlows map[string]context.CancelFunc
	mu          sync.RWMutex
	started     bool

	// Stall detection state
	stall stallState
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(podID string, client *ent.Client, cfg *config.QueueConfig, executor UnitExecutor, units *services.UnitService, flowRuns *services.FlowRunService) *WorkerPool {
	return &WorkerPool{
		podID:       podID,
		client:      client,
		config:      cfg,
		executor:    executor,
		units:       units,
		flowRuns:    flowRuns,
		workers:     make([]*Worker, 0, cfg.WorkerCount),
		stopCh:      make(chan struct{}),
		activeUnits: make(map[string]context.CancelFunc),
		activeFlows: make(map[string]context.CancelFunc),
	}
}

// Start spawns worker goroutines and the stall reconciler.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.client, p.config, p.executor, p.units, p)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	// Start stall detection
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runStallDetection(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current units before exiting (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	active := p.getActiveUnitIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active units to complete",
			"count", len(active),
			"unit_ids", active)
	}

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// RegisterUnit stores a cancel function under the unit id and its flow run
// id for manual cancellation.
func (p *WorkerPool) RegisterUnit(unitID, flowRunID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeUnits[unitID] = cancel
	if flowRunID != "" {
		p.activeFlows[flowRunID] = cancel
	}
}

// UnregisterUnit removes the cancel functions when processing ends.
func (p *WorkerPool) UnregisterUnit(unitID, flowRunID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeUnits, unitID)
	if flowRunID != "" {
		delete(p.activeFlows, flowRunID)
	}
}

// ActiveCount returns the number of units currently processing on this pod.
func (p *WorkerPool) ActiveCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.activeUnits)
}

// CancelUnit triggers context cancellation for an active unit on this pod.
// Returns true if the unit was found and cancelled here.
func (p *WorkerPool) CancelUnit(unitID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeUnits[unitID]; ok {
		cancel()
		return true
	}
	return false
}

// CancelFlow triggers context cancellation for an active unit by its flow
// run id. Returns true if the flow was found and cancelled here.
func (p *WorkerPool) CancelFlow(flowRunID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeFlows[flowRunID]; ok {
		cancel()
		return true
	}
	return false
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.Unit.Query().
		Where(unit.StatusEQ(unit.StatusPending)).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID,
			"error", errQ)
	}

	activeUnits, errA := p.client.Unit.Query().
		Where(
			unit.StatusEQ(unit.StatusInProgress),
			unit.PodIDEQ(p.podID),
		).
		Count(ctx)
	if errA != nil {
		slog.Error("Failed to query active units for health check",
			"pod_id", p.podID,
			"error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	// DB errors affect health status - if we can't reach the DB, we're not healthy
	dbHealthy := errQ == nil && errA == nil
	isHealthy := len(p.workers) > 0 && dbHealthy

	p.stall.mu.Lock()
	lastStallScan := p.stall.lastStallScan
	stalledFailed := p.stall.stalledFailed
	p.stall.mu.Unlock()

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else if errA != nil {
			dbError = fmt.Sprintf("active units query failed: %v", errA)
		}
	}

	return &PoolHealth{
		IsHealthy:     isHealthy,
		DBReachable:   dbHealthy,
		DBError:       dbError,
		PodID:         p.podID,
		ActiveWorkers: activeWorkers,
		TotalWorkers:  len(p.workers),
		ActiveUnits:   activeUnits,
		MaxConcurrent: p.config.MaxConcurrentUnits,
		QueueDepth:    queueDepth,
		WorkerStats:   workerStats,
		LastStallScan: lastStallScan,
		StalledFailed: stalledFailed,
	}
}

// getActiveUnitIDs returns ids of currently processing units (for logging).
func (p *WorkerPool) getActiveUnitIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	units := make([]string, 0, len(p.activeUnits))
	for id := range p.activeUnits {
		units = append(units, id)
	}
	return units
}
