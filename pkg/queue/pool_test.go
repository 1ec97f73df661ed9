package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBarePool() *WorkerPool {
	return &WorkerPool{
		stopCh:      make(chan struct{}),
		activeUnits: make(map[string]context.CancelFunc),
		activeFlows: make(map[string]context.CancelFunc),
	}
}

func TestPoolRegisterAndCancelUnit(t *testing.T) {
	pool := newBarePool()

	ctx, cancel := context.WithCancel(context.Background())
	pool.RegisterUnit("unit-1", "flow-1", cancel)

	// Cancel should succeed for a registered unit
	assert.True(t, pool.CancelUnit("unit-1"))
	assert.Error(t, ctx.Err()) // Context should be cancelled

	// Cancel should return false for unknown unit
	assert.False(t, pool.CancelUnit("unknown"))
}

func TestPoolCancelByFlowRunID(t *testing.T) {
	pool := newBarePool()

	ctx, cancel := context.WithCancel(context.Background())
	pool.RegisterUnit("unit-1", "flow-1", cancel)

	assert.True(t, pool.CancelFlow("flow-1"))
	assert.Error(t, ctx.Err())

	assert.False(t, pool.CancelFlow("unknown-flow"))
}

func TestPoolRegisterUnitWithoutFlowRun(t *testing.T) {
	pool := newBarePool()

	// Units claimed before their flow row exists register with an empty
	// flow handle; only the unit handle works.
	_, cancel := context.WithCancel(context.Background())
	defer cancel()
	pool.RegisterUnit("unit-1", "", cancel)

	assert.True(t, pool.CancelUnit("unit-1"))
	assert.False(t, pool.CancelFlow(""))
}

func TestPoolUnregisterUnit(t *testing.T) {
	pool := newBarePool()

	_, cancel := context.WithCancel(context.Background())
	pool.RegisterUnit("unit-1", "flow-1", cancel)

	assert.Equal(t, 1, pool.ActiveCount())

	pool.UnregisterUnit("unit-1", "flow-1")

	// Both handles should be gone
	assert.Equal(t, 0, pool.ActiveCount())
	assert.False(t, pool.CancelUnit("unit-1"))
	assert.False(t, pool.CancelFlow("flow-1"))
}

func TestPoolGetActiveUnitIDs(t *testing.T) {
	pool := newBarePool()

	// Empty initially
	ids := pool.getActiveUnitIDs()
	assert.Empty(t, ids)

	_, cancel1 := context.WithCancel(context.Background())
	defer cancel1()
	_, cancel2 := context.WithCancel(context.Background())
	defer cancel2()
	pool.RegisterUnit("unit-a", "flow-a", cancel1)
	pool.RegisterUnit("unit-b", "flow-b", cancel2)

	ids = pool.getActiveUnitIDs()
	require.Len(t, ids, 2)
	assert.Contains(t, ids, "unit-a")
	assert.Contains(t, ids, "unit-b")
	assert.Equal(t, 2, pool.ActiveCount())
}

func TestPoolStopTwiceDoesNotPanic(t *testing.T) {
	pool := newBarePool()

	// First call should close the channel without panic.
	pool.Stop()

	// Second call must not panic (sync.Once guards the close).
	assert.NotPanics(t, func() { pool.Stop() })
}
