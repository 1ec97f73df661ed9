package queue

import (
	"testing"
	"time"

	"github.com/brianfields/deeplearn-sub002/ent/unit"
	"github.com/brianfields/deeplearn-sub002/pkg/config"
	"github.com/stretchr/testify/assert"
)

func testQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             5,
		MaxConcurrentUnits:      5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		UnitTimeout:             15 * time.Minute,
		GracefulShutdownTimeout: 15 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		StallDetectionInterval:  5 * time.Minute,
		StallThreshold:          5 * time.Minute,
	}
}

func TestWorkerPollInterval(t *testing.T) {
	cfg := testQueueConfig()
	w := NewWorker("test-worker", "test-pod", nil, cfg, nil, nil, nil)

	// Poll interval should be within [base - jitter, base + jitter]
	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 500*time.Millisecond, "poll interval below minimum")
		assert.LessOrEqual(t, d, 1500*time.Millisecond, "poll interval above maximum")
	}
}

func TestWorkerPollIntervalNoJitter(t *testing.T) {
	cfg := testQueueConfig()
	cfg.PollIntervalJitter = 0
	w := NewWorker("test-worker", "test-pod", nil, cfg, nil, nil, nil)

	for i := 0; i < 10; i++ {
		d := w.pollInterval()
		assert.Equal(t, 1*time.Second, d, "poll interval should equal base when jitter is 0")
	}
}

func TestWorkerHealth(t *testing.T) {
	cfg := testQueueConfig()
	w := NewWorker("worker-1", "pod-1", nil, cfg, nil, nil, nil)

	h := w.Health()
	assert.Equal(t, "worker-1", h.ID)
	assert.Equal(t, "idle", h.Status)
	assert.Equal(t, "", h.CurrentUnitID)
	assert.Equal(t, 0, h.UnitsProcessed)

	// Simulate working state
	w.setStatus(WorkerStatusWorking, "unit-abc")
	h = w.Health()
	assert.Equal(t, "working", h.Status)
	assert.Equal(t, "unit-abc", h.CurrentUnitID)

	// Back to idle
	w.setStatus(WorkerStatusIdle, "")
	h = w.Health()
	assert.Equal(t, "idle", h.Status)
	assert.Equal(t, "", h.CurrentUnitID)
}

func TestExecutionResultZeroValue(t *testing.T) {
	result := &ExecutionResult{
		Status:       unit.StatusCompleted,
		LessonsTotal: 3,
		LessonsDone:  2,
	}
	assert.Equal(t, unit.StatusCompleted, result.Status)
	assert.Empty(t, result.ErrorMessage)
	assert.Equal(t, 3, result.LessonsTotal)
	assert.Equal(t, 2, result.LessonsDone)
}
