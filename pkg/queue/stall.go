package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/brianfields/deeplearn-sub002/ent"
	"github.com/brianfields/deeplearn-sub002/pkg/services"
)

// stallState tracks stall reconciler metrics (thread-safe).
type stallState struct {
	mu            sync.Mutex
	lastStallScan time.Time
	stalledFailed int
}

// runStallDetection periodically scans for running flows whose heartbeat
// went quiet. All pods run this independently; the conditional terminal
// writes make the recovery idempotent.
func (p *WorkerPool) runStallDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.StallDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndFailStalled(ctx); err != nil {
				slog.Error("Stall detection failed", "error", err)
			}
		}
	}
}

// detectAndFailStalled finds running flows with stale heartbeats, fails them
// with their partial roll-ups, and fails the units they were building.
func (p *WorkerPool) detectAndFailStalled(ctx context.Context) error {
	stalled, err := p.flowRuns.FindStalledFlows(ctx, p.config.StallThreshold)
	if err != nil {
		return fmt.Errorf("failed to query stalled flows: %w", err)
	}

	if len(stalled) == 0 {
		p.stall.mu.Lock()
		p.stall.lastStallScan = time.Now()
		p.stall.mu.Unlock()
		return nil
	}

	slog.Warn("Detected stalled flows", "count", len(stalled))

	failed := 0
	for _, fr := range stalled {
		if err := p.failStalledFlow(ctx, fr); err != nil {
			slog.Error("Failed to recover stalled flow",
				"flow_run_id", fr.ID,
				"error", err)
			continue
		}
		failed++
	}

	p.stall.mu.Lock()
	p.stall.lastStallScan = time.Now()
	p.stall.stalledFailed += failed
	p.stall.mu.Unlock()

	return nil
}

// failStalledFlow fails one stalled flow and, when the flow was building a
// unit, the unit too. Lesson and media flows spawned by a unit flow have no
// unit row of their own; they are failed individually as their heartbeats
// expire.
func (p *WorkerPool) failStalledFlow(ctx context.Context, fr *ent.FlowRun) error {
	lastHeartbeat := "unknown"
	if fr.LastHeartbeat != nil {
		lastHeartbeat = fr.LastHeartbeat.Format(time.RFC3339)
	}
	msg := fmt.Sprintf("stalled: no heartbeat since %s", lastHeartbeat)

	if err := p.flowRuns.FailAbandonedFlow(ctx, fr.ID, msg); err != nil {
		return fmt.Errorf("failed to mark flow as stalled: %w", err)
	}

	u, err := p.units.UnitByFlowRunID(ctx, fr.ID)
	switch {
	case errors.Is(err, services.ErrNotFound):
		// Child flow; no unit to fail.
	case err != nil:
		return fmt.Errorf("failed to look up unit for flow: %w", err)
	default:
		if err := p.units.FailUnit(ctx, u.ID, msg); err != nil && !errors.Is(err, services.ErrConcurrentModification) {
			return fmt.Errorf("failed to mark unit as stalled: %w", err)
		}
	}

	// If the stalled run is somehow still alive on this pod, stop it.
	p.CancelFlow(fr.ID)

	slog.Warn("Stalled flow failed",
		"flow_run_id", fr.ID,
		"flow_name", fr.FlowName,
		"last_heartbeat", lastHeartbeat)
	return nil
}

// CleanupStartupOrphans fails units this pod was processing when it last
// went down, plus their flows. Called once during startup, before the pool
// begins claiming; a crashed pod's units would otherwise sit in_progress
// until the stall reconciler caught their flows.
func CleanupStartupOrphans(ctx context.Context, units *services.UnitService, flowRuns *services.FlowRunService, podID string) error {
	orphans, err := units.FindInProgressUnitsByPod(ctx, podID)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	msg := fmt.Sprintf("orphaned: pod %s restarted while unit was in progress", podID)
	for _, u := range orphans {
		if err := units.FailUnit(ctx, u.ID, msg); err != nil {
			slog.Error("Failed to mark startup orphan",
				"unit_id", u.ID,
				"error", err)
			continue
		}

		if u.FlowRunID != nil {
			if err := flowRuns.FailAbandonedFlow(ctx, *u.FlowRunID, msg); err != nil {
				slog.Error("Failed to mark orphaned flow",
					"unit_id", u.ID,
					"flow_run_id", *u.FlowRunID,
					"error", err)
			}
		}

		slog.Info("Startup orphan recovered", "unit_id", u.ID)
	}

	return nil
}
