package queue

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/brianfields/deeplearn-sub002/ent"
	"github.com/brianfields/deeplearn-sub002/ent/flowrun"
	"github.com/brianfields/deeplearn-sub002/ent/unit"
	"github.com/brianfields/deeplearn-sub002/pkg/config"
	"github.com/brianfields/deeplearn-sub002/pkg/services"
	testdb "github.com/brianfields/deeplearn-sub002/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createPendingUnit creates a unit waiting in the backlog.
func createPendingUnit(ctx context.Context, t *testing.T, client *ent.Client, title string) *ent.Unit {
	t.Helper()
	u, err := client.Unit.Create().
		SetID(uuid.New().String()).
		SetTitle(title).
		SetStatus(unit.StatusPending).
		Save(ctx)
	require.NoError(t, err)
	return u
}

// createRunningFlow creates a running flow run with the given heartbeat age.
func createRunningFlow(ctx context.Context, t *testing.T, client *ent.Client, flowName string, heartbeat time.Time) *ent.FlowRun {
	t.Helper()
	fr, err := client.FlowRun.Create().
		SetID(uuid.New().String()).
		SetFlowName(flowName).
		SetStatus(flowrun.StatusRunning).
		SetStartedAt(heartbeat).
		SetLastHeartbeat(heartbeat).
		Save(ctx)
	require.NoError(t, err)
	return fr
}

// intTestQueueConfig returns a queue config suitable for integration tests.
func intTestQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		MaxConcurrentUnits:      10,
		PollInterval:            100 * time.Millisecond,
		PollIntervalJitter:      0,
		UnitTimeout:             30 * time.Second,
		GracefulShutdownTimeout: 10 * time.Second,
		HeartbeatInterval:       30 * time.Second,
		StallDetectionInterval:  1 * time.Minute,
		StallThreshold:          1 * time.Minute,
	}
}

// awaitCondition polls until condition returns true or the timeout elapses.
func awaitCondition(t *testing.T, timeout, interval time.Duration, msg string, condition func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			t.Fatalf("timed out: %s", msg)
		default:
			if condition() {
				return
			}
			time.Sleep(interval)
		}
	}
}

// TestForUpdateSkipLockedClaiming tests that a worker can atomically claim a pending unit.
func TestForUpdateSkipLockedClaiming(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	u := createPendingUnit(ctx, t, client.Client, "Pointers in Go")

	cfg := intTestQueueConfig()
	w := NewWorker("test-worker-0", "test-pod", client.Client, cfg, nil, nil, nil)

	claimed, err := w.claimNextUnit(ctx)
	require.NoError(t, err)
	require.NotNil(t, claimed, "worker should claim the pending unit")
	assert.Equal(t, u.ID, claimed.ID)
	assert.Equal(t, unit.StatusInProgress, claimed.Status)
	require.NotNil(t, claimed.PodID)
	assert.Equal(t, "test-pod", *claimed.PodID)

	// Second claim should return ErrNoUnitsAvailable
	claimed2, err := w.claimNextUnit(ctx)
	assert.ErrorIs(t, err, ErrNoUnitsAvailable)
	assert.Nil(t, claimed2, "no more pending units should be available")
}

// TestClaimOldestFirst tests that the backlog drains in submission order.
func TestClaimOldestFirst(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	newer, err := client.Unit.Create().
		SetID(uuid.New().String()).
		SetTitle("Newer").
		SetStatus(unit.StatusPending).
		SetCreatedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)
	older, err := client.Unit.Create().
		SetID(uuid.New().String()).
		SetTitle("Older").
		SetStatus(unit.StatusPending).
		SetCreatedAt(time.Now().Add(-time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	w := NewWorker("test-worker-0", "test-pod", client.Client, intTestQueueConfig(), nil, nil, nil)

	first, err := w.claimNextUnit(ctx)
	require.NoError(t, err)
	assert.Equal(t, older.ID, first.ID, "oldest pending unit should be claimed first")

	second, err := w.claimNextUnit(ctx)
	require.NoError(t, err)
	assert.Equal(t, newer.ID, second.ID)
}

// TestConcurrentClaimsDifferentUnits tests that concurrent workers claim different units.
func TestConcurrentClaimsDifferentUnits(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	unitIDs := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		u := createPendingUnit(ctx, t, client.Client, fmt.Sprintf("Unit %d", i))
		unitIDs[u.ID] = struct{}{}
	}

	cfg := intTestQueueConfig()
	var mu sync.Mutex
	claimed := make([]string, 0, 5)
	errCh := make(chan error, 5)
	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			w := NewWorker(fmt.Sprintf("worker-%d", workerID), "test-pod", client.Client, cfg, nil, nil, nil)
			u, err := w.claimNextUnit(ctx)
			if err != nil {
				errCh <- fmt.Errorf("worker-%d claim failed: %w", workerID, err)
				return
			}
			mu.Lock()
			claimed = append(claimed, u.ID)
			mu.Unlock()
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	// All 5 units should be claimed, each by exactly one worker (no duplicates)
	assert.Len(t, claimed, 5, "all 5 units should be claimed")

	seen := make(map[string]struct{})
	for _, id := range claimed {
		_, dup := seen[id]
		assert.False(t, dup, "unit %s claimed by multiple workers", id)
		seen[id] = struct{}{}
		_, ok := unitIDs[id]
		assert.True(t, ok, "claimed unit %s was not in original set", id)
	}
}

// TestClaimSkipsRowsLockedByOtherPod tests SKIP LOCKED across independent
// connection pools, the way separate replicas contend in production.
func TestClaimSkipsRowsLockedByOtherPod(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	clientA := shared.NewClient(t)
	clientB := shared.NewClient(t)
	ctx := context.Background()

	older, err := clientA.Unit.Create().
		SetID(uuid.New().String()).
		SetTitle("Older").
		SetStatus(unit.StatusPending).
		SetCreatedAt(time.Now().Add(-time.Minute)).
		Save(ctx)
	require.NoError(t, err)
	newer := createPendingUnit(ctx, t, clientA.Client, "Newer")

	// Pod A holds a row lock on the older unit, simulating a mid-claim
	// transaction on another replica.
	tx, err := clientA.Tx(ctx)
	require.NoError(t, err)
	_, err = tx.Unit.Query().
		Where(unit.IDEQ(older.ID)).
		ForUpdate().
		Only(ctx)
	require.NoError(t, err)

	// Pod B must skip the locked row and claim the newer unit instead of
	// blocking on pod A's transaction.
	w := NewWorker("b-worker-0", "pod-b", clientB.Client, intTestQueueConfig(), nil, nil, nil)
	claimed, err := w.claimNextUnit(ctx)
	require.NoError(t, err)
	assert.Equal(t, newer.ID, claimed.ID, "locked row should be skipped")

	require.NoError(t, tx.Rollback())

	// With the lock released the older unit is claimable again.
	claimed2, err := w.claimNextUnit(ctx)
	require.NoError(t, err)
	assert.Equal(t, older.ID, claimed2.ID)
}

// TestStallRecovery tests that flows with stale heartbeats are failed together
// with the units they were building.
func TestStallRecovery(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	units := services.NewUnitService(client.Client)
	flowRuns := services.NewFlowRunService(client.Client)
	cfg := intTestQueueConfig()

	t.Run("fails the stalled flow and its unit", func(t *testing.T) {
		staleBeat := time.Now().Add(-10 * time.Minute)
		fr := createRunningFlow(ctx, t, client.Client, "unit_creation", staleBeat)
		u, err := client.Unit.Create().
			SetID(uuid.New().String()).
			SetTitle("Stalled unit").
			SetStatus(unit.StatusInProgress).
			SetPodID("crashed-pod").
			SetFlowRunID(fr.ID).
			Save(ctx)
		require.NoError(t, err)

		pool := NewWorkerPool("test-pod", client.Client, cfg, nil, units, flowRuns)
		require.NoError(t, pool.detectAndFailStalled(ctx))

		gotFlow, err := client.FlowRun.Get(ctx, fr.ID)
		require.NoError(t, err)
		assert.Equal(t, flowrun.StatusFailed, gotFlow.Status)
		require.NotNil(t, gotFlow.ErrorMessage)
		assert.Contains(t, *gotFlow.ErrorMessage, "stalled: no heartbeat since")
		assert.NotNil(t, gotFlow.CompletedAt)

		gotUnit, err := client.Unit.Get(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, unit.StatusFailed, gotUnit.Status)
		require.NotNil(t, gotUnit.ErrorMessage)
		assert.Contains(t, *gotUnit.ErrorMessage, "stalled: no heartbeat since")
		assert.NotNil(t, gotUnit.CompletedAt)

		pool.stall.mu.Lock()
		assert.Equal(t, 1, pool.stall.stalledFailed)
		assert.False(t, pool.stall.lastStallScan.IsZero())
		pool.stall.mu.Unlock()
	})

	t.Run("child flow without a unit row is failed alone", func(t *testing.T) {
		staleBeat := time.Now().Add(-10 * time.Minute)
		fr := createRunningFlow(ctx, t, client.Client, "lesson_creation", staleBeat)

		pool := NewWorkerPool("test-pod", client.Client, cfg, nil, units, flowRuns)
		require.NoError(t, pool.detectAndFailStalled(ctx))

		gotFlow, err := client.FlowRun.Get(ctx, fr.ID)
		require.NoError(t, err)
		assert.Equal(t, flowrun.StatusFailed, gotFlow.Status)
	})

	t.Run("fresh heartbeats are left alone", func(t *testing.T) {
		fr := createRunningFlow(ctx, t, client.Client, "unit_creation", time.Now())

		pool := NewWorkerPool("test-pod", client.Client, cfg, nil, units, flowRuns)
		require.NoError(t, pool.detectAndFailStalled(ctx))

		gotFlow, err := client.FlowRun.Get(ctx, fr.ID)
		require.NoError(t, err)
		assert.Equal(t, flowrun.StatusRunning, gotFlow.Status)
	})

	t.Run("unit already finalized does not block recovery", func(t *testing.T) {
		staleBeat := time.Now().Add(-10 * time.Minute)
		fr := createRunningFlow(ctx, t, client.Client, "unit_creation", staleBeat)
		_, err := client.Unit.Create().
			SetID(uuid.New().String()).
			SetTitle("Already failed").
			SetStatus(unit.StatusFailed).
			SetErrorMessage("unit creation cancelled").
			SetFlowRunID(fr.ID).
			Save(ctx)
		require.NoError(t, err)

		pool := NewWorkerPool("test-pod", client.Client, cfg, nil, units, flowRuns)
		require.NoError(t, pool.detectAndFailStalled(ctx))

		gotFlow, err := client.FlowRun.Get(ctx, fr.ID)
		require.NoError(t, err)
		assert.Equal(t, flowrun.StatusFailed, gotFlow.Status)
	})
}

// TestStartupOrphanCleanup tests the one-time startup orphan cleanup.
func TestStartupOrphanCleanup(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	units := services.NewUnitService(client.Client)
	flowRuns := services.NewFlowRunService(client.Client)

	podID := "startup-test-pod"

	// Units this pod was processing when it went down, with their flows.
	orphanFlows := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		fr := createRunningFlow(ctx, t, client.Client, "unit_creation", time.Now())
		orphanFlows = append(orphanFlows, fr.ID)
		_, err := client.Unit.Create().
			SetID(uuid.New().String()).
			SetTitle(fmt.Sprintf("Orphan %d", i)).
			SetStatus(unit.StatusInProgress).
			SetPodID(podID).
			SetFlowRunID(fr.ID).
			Save(ctx)
		require.NoError(t, err)
	}

	// Another pod's unit must not be touched.
	otherUnit, err := client.Unit.Create().
		SetID(uuid.New().String()).
		SetTitle("Other pod's unit").
		SetStatus(unit.StatusInProgress).
		SetPodID("other-pod").
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, CleanupStartupOrphans(ctx, units, flowRuns, podID))

	orphans, err := client.Unit.Query().
		Where(unit.PodIDEQ(podID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, orphans, 3)
	for _, u := range orphans {
		assert.Equal(t, unit.StatusFailed, u.Status, "unit %s should be failed", u.ID)
		require.NotNil(t, u.ErrorMessage)
		assert.Equal(t, fmt.Sprintf("orphaned: pod %s restarted while unit was in progress", podID), *u.ErrorMessage)
	}

	for _, id := range orphanFlows {
		fr, err := client.FlowRun.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, flowrun.StatusFailed, fr.Status, "flow %s should be failed", id)
	}

	other, err := client.Unit.Get(ctx, otherUnit.ID)
	require.NoError(t, err)
	assert.Equal(t, unit.StatusInProgress, other.Status, "other pod's unit should be untouched")
}

// mockExecutor counts executions and tracks which units were processed.
type mockExecutor struct {
	processed  atomic.Int64
	units      sync.Map // string → struct{}
	inProgress atomic.Int64
	releaseCh  chan struct{} // optional: blocks execution until closed
}

func (m *mockExecutor) Execute(ctx context.Context, u *ent.Unit) *ExecutionResult {
	m.processed.Add(1)
	if u != nil {
		m.units.Store(u.ID, struct{}{})
	}

	m.inProgress.Add(1)
	defer m.inProgress.Add(-1)

	// If releaseCh is set, block until it's closed (for deterministic tests)
	if m.releaseCh != nil {
		select {
		case <-m.releaseCh:
		case <-ctx.Done():
			return &ExecutionResult{
				Status:       unit.StatusFailed,
				ErrorMessage: "unit creation cancelled",
			}
		}
	} else {
		select {
		case <-time.After(50 * time.Millisecond):
		case <-ctx.Done():
			return &ExecutionResult{
				Status:       unit.StatusFailed,
				ErrorMessage: "unit creation cancelled",
			}
		}
	}

	return &ExecutionResult{
		Status:       unit.StatusCompleted,
		LessonsTotal: 2,
		LessonsDone:  2,
	}
}

// TestPoolEndToEndWithMockExecutor tests the full worker pool lifecycle.
func TestPoolEndToEndWithMockExecutor(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	units := services.NewUnitService(client.Client)
	flowRuns := services.NewFlowRunService(client.Client)

	for i := 0; i < 3; i++ {
		createPendingUnit(ctx, t, client.Client, fmt.Sprintf("Unit %d", i))
	}

	cfg := intTestQueueConfig()
	cfg.WorkerCount = 2
	cfg.PollInterval = 50 * time.Millisecond

	executor := &mockExecutor{}
	pool := NewWorkerPool("test-pod", client.Client, cfg, executor, units, flowRuns)

	require.NoError(t, pool.Start(ctx))

	awaitCondition(t, 10*time.Second, 100*time.Millisecond,
		"waiting for units to be processed",
		func() bool { return executor.processed.Load() >= 3 })

	pool.Stop()

	completed, err := client.Unit.Query().
		Where(unit.StatusEQ(unit.StatusCompleted)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, completed, 3, "all 3 units should be completed")

	health := pool.Health()
	assert.Equal(t, 2, health.TotalWorkers)
	assert.Equal(t, 0, health.QueueDepth)
	assert.True(t, health.IsHealthy)
	assert.True(t, health.DBReachable)
}

// TestCapacityLimits tests that the per-pod concurrency limit is enforced.
func TestCapacityLimits(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	units := services.NewUnitService(client.Client)
	flowRuns := services.NewFlowRunService(client.Client)

	for i := 0; i < 5; i++ {
		createPendingUnit(ctx, t, client.Client, fmt.Sprintf("Unit %d", i))
	}

	// Worker count matches the concurrency cap so the capacity check stays
	// race-free during startup.
	cfg := intTestQueueConfig()
	cfg.WorkerCount = 2
	cfg.MaxConcurrentUnits = 2
	cfg.PollInterval = 50 * time.Millisecond
	cfg.StallDetectionInterval = 1 * time.Hour

	releaseCh := make(chan struct{})
	executor := &mockExecutor{releaseCh: releaseCh}
	pool := NewWorkerPool("test-pod", client.Client, cfg, executor, units, flowRuns)

	require.NoError(t, pool.Start(ctx))

	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for units in progress",
		func() bool { return executor.inProgress.Load() == int64(cfg.MaxConcurrentUnits) })

	// Give the workers a moment to overshoot if they were going to.
	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, int64(cfg.MaxConcurrentUnits), executor.inProgress.Load(),
		"should have exactly MaxConcurrentUnits in progress")
	assert.Equal(t, cfg.MaxConcurrentUnits, pool.ActiveCount())

	dbInProgress, err := client.Unit.Query().
		Where(unit.StatusEQ(unit.StatusInProgress)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg.MaxConcurrentUnits, dbInProgress, "DB should show MaxConcurrentUnits in_progress")

	close(releaseCh)

	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for first batch to complete",
		func() bool { return executor.inProgress.Load() == 0 })

	awaitCondition(t, 5*time.Second, 50*time.Millisecond,
		"waiting for all units to be processed",
		func() bool { return executor.processed.Load() >= 5 })

	pool.Stop()

	completedCount, err := client.Unit.Query().
		Where(unit.StatusEQ(unit.StatusCompleted)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, completedCount, "all 5 units should complete")
}

// nilExecutor returns a nil *ExecutionResult for testing the nil-guard.
type nilExecutor struct {
	blockUntilCtxDone bool
	processed         atomic.Int64
}

func (e *nilExecutor) Execute(ctx context.Context, _ *ent.Unit) *ExecutionResult {
	e.processed.Add(1)
	if e.blockUntilCtxDone {
		<-ctx.Done()
	}
	return nil
}

// TestNilExecutionResultGuard tests that a nil *ExecutionResult from
// UnitExecutor.Execute does not panic and is translated into the correct
// terminal status.
func TestNilExecutionResultGuard(t *testing.T) {
	t.Run("nil result without context error marks unit failed", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		ctx := context.Background()
		units := services.NewUnitService(client.Client)
		flowRuns := services.NewFlowRunService(client.Client)

		u := createPendingUnit(ctx, t, client.Client, "Nil result unit")

		cfg := intTestQueueConfig()
		cfg.WorkerCount = 1
		cfg.PollInterval = 50 * time.Millisecond

		executor := &nilExecutor{blockUntilCtxDone: false}
		pool := NewWorkerPool("test-pod", client.Client, cfg, executor, units, flowRuns)

		require.NoError(t, pool.Start(ctx))

		awaitCondition(t, 5*time.Second, 50*time.Millisecond,
			"waiting for unit to be processed",
			func() bool { return executor.processed.Load() >= 1 })

		pool.Stop()

		updated, err := client.Unit.Get(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, unit.StatusFailed, updated.Status)
		require.NotNil(t, updated.ErrorMessage)
		assert.Contains(t, *updated.ErrorMessage, "executor returned nil result")
	})

	t.Run("nil result with deadline exceeded reports the timeout", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		ctx := context.Background()
		units := services.NewUnitService(client.Client)
		flowRuns := services.NewFlowRunService(client.Client)

		u := createPendingUnit(ctx, t, client.Client, "Timeout unit")

		cfg := intTestQueueConfig()
		cfg.WorkerCount = 1
		cfg.PollInterval = 50 * time.Millisecond
		cfg.UnitTimeout = 200 * time.Millisecond

		executor := &nilExecutor{blockUntilCtxDone: true}
		pool := NewWorkerPool("test-pod", client.Client, cfg, executor, units, flowRuns)

		require.NoError(t, pool.Start(ctx))

		awaitCondition(t, 5*time.Second, 50*time.Millisecond,
			"waiting for unit to reach terminal status",
			func() bool {
				got, err := client.Unit.Get(ctx, u.ID)
				require.NoError(t, err)
				return got.Status == unit.StatusFailed
			})

		pool.Stop()

		updated, err := client.Unit.Get(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, unit.StatusFailed, updated.Status)
		require.NotNil(t, updated.ErrorMessage)
		assert.Contains(t, *updated.ErrorMessage, "timed out")
		assert.Contains(t, *updated.ErrorMessage, "200ms")
	})

	t.Run("cancellation through the pool marks unit cancelled", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		ctx := context.Background()
		units := services.NewUnitService(client.Client)
		flowRuns := services.NewFlowRunService(client.Client)

		u := createPendingUnit(ctx, t, client.Client, "Cancelled unit")

		cfg := intTestQueueConfig()
		cfg.WorkerCount = 1
		cfg.PollInterval = 50 * time.Millisecond

		executor := &nilExecutor{blockUntilCtxDone: true}
		pool := NewWorkerPool("test-pod", client.Client, cfg, executor, units, flowRuns)

		require.NoError(t, pool.Start(ctx))

		awaitCondition(t, 5*time.Second, 10*time.Millisecond,
			"waiting for unit to be claimed",
			func() bool {
				got, err := client.Unit.Get(ctx, u.ID)
				require.NoError(t, err)
				return got.Status == unit.StatusInProgress
			})

		require.True(t, pool.CancelUnit(u.ID), "CancelUnit should find the active unit")

		awaitCondition(t, 5*time.Second, 50*time.Millisecond,
			"waiting for unit to reach terminal status",
			func() bool {
				got, err := client.Unit.Get(ctx, u.ID)
				require.NoError(t, err)
				return got.Status == unit.StatusFailed
			})

		pool.Stop()

		updated, err := client.Unit.Get(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, unit.StatusFailed, updated.Status)
		require.NotNil(t, updated.ErrorMessage)
		assert.Contains(t, *updated.ErrorMessage, "unit creation cancelled")
	})

	t.Run("cancellation by flow run id", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		ctx := context.Background()
		units := services.NewUnitService(client.Client)
		flowRuns := services.NewFlowRunService(client.Client)

		flowRunID := uuid.New().String()
		u, err := client.Unit.Create().
			SetID(uuid.New().String()).
			SetTitle("Cancelled by flow id").
			SetStatus(unit.StatusPending).
			SetFlowRunID(flowRunID).
			Save(ctx)
		require.NoError(t, err)

		cfg := intTestQueueConfig()
		cfg.WorkerCount = 1
		cfg.PollInterval = 50 * time.Millisecond

		executor := &nilExecutor{blockUntilCtxDone: true}
		pool := NewWorkerPool("test-pod", client.Client, cfg, executor, units, flowRuns)

		require.NoError(t, pool.Start(ctx))

		awaitCondition(t, 5*time.Second, 10*time.Millisecond,
			"waiting for unit to be claimed",
			func() bool {
				got, err := client.Unit.Get(ctx, u.ID)
				require.NoError(t, err)
				return got.Status == unit.StatusInProgress
			})

		require.True(t, pool.CancelFlow(flowRunID), "CancelFlow should find the active unit")

		awaitCondition(t, 5*time.Second, 50*time.Millisecond,
			"waiting for unit to reach terminal status",
			func() bool {
				got, err := client.Unit.Get(ctx, u.ID)
				require.NoError(t, err)
				return got.Status == unit.StatusFailed
			})

		pool.Stop()

		updated, err := client.Unit.Get(ctx, u.ID)
		require.NoError(t, err)
		require.NotNil(t, updated.ErrorMessage)
		assert.Contains(t, *updated.ErrorMessage, "unit creation cancelled")
	})
}
