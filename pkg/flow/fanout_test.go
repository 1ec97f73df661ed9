package flow

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFanOut_ResultsOrderedByInputIndex(t *testing.T) {
	// Later children finish first; results must still be input-ordered.
	results := FanOut(context.Background(), 4, 4, func(_ context.Context, index int) error {
		time.Sleep(time.Duration(4-index) * 10 * time.Millisecond)
		if index == 2 {
			return fmt.Errorf("child %d failed", index)
		}
		return nil
	})

	require.Len(t, results, 4)
	for i, r := range results {
		assert.Equal(t, i, r.Index)
	}
	assert.NoError(t, results[0].Err)
	assert.NoError(t, results[1].Err)
	require.Error(t, results[2].Err)
	assert.Contains(t, results[2].Err.Error(), "child 2")
	assert.NoError(t, results[3].Err)
}

func TestFanOut_BoundedParallelism(t *testing.T) {
	var active, peak int32
	var mu sync.Mutex

	results := FanOut(context.Background(), 10, 3, func(_ context.Context, _ int) error {
		now := atomic.AddInt32(&active, 1)
		mu.Lock()
		if now > peak {
			peak = now
		}
		mu.Unlock()
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&active, -1)
		return nil
	})

	require.Len(t, results, 10)
	for _, r := range results {
		assert.NoError(t, r.Err)
	}
	mu.Lock()
	defer mu.Unlock()
	assert.LessOrEqual(t, peak, int32(3))
	assert.Greater(t, peak, int32(0))
}

func TestFanOut_CancelledContextFailsRemaining(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	started := make(chan struct{}, 1)
	var launched int32
	go func() {
		<-started
		cancel()
	}()

	results := FanOut(ctx, 5, 1, func(ctx context.Context, index int) error {
		atomic.AddInt32(&launched, 1)
		if index == 0 {
			started <- struct{}{}
			<-ctx.Done()
			return ctx.Err()
		}
		return ctx.Err()
	})

	require.Len(t, results, 5)
	require.Error(t, results[0].Err)
	// Children after the cancellation either never launched or saw the
	// cancelled context; all report an error.
	for _, r := range results[1:] {
		assert.ErrorIs(t, r.Err, context.Canceled)
	}
	assert.LessOrEqual(t, launched, int32(5))
}

func TestFanOut_EdgeCases(t *testing.T) {
	assert.Nil(t, FanOut(context.Background(), 0, 3, func(context.Context, int) error { return nil }))

	// maxParallel below 1 is clamped, not fatal.
	results := FanOut(context.Background(), 2, 0, func(_ context.Context, index int) error {
		if index == 1 {
			return errors.New("boom")
		}
		return nil
	})
	require.Len(t, results, 2)
	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err)
}

func TestContext_Basics(t *testing.T) {
	fc := NewContext(map[string]any{"topic": "pointers", "count": 3})

	v, ok := fc.Get("topic")
	require.True(t, ok)
	assert.Equal(t, "pointers", v)

	s, ok := fc.GetString("topic")
	require.True(t, ok)
	assert.Equal(t, "pointers", s)

	_, ok = fc.GetString("count")
	assert.False(t, ok, "non-string value")

	_, ok = fc.Get("missing")
	assert.False(t, ok)

	fc.Set("topic", "slices")
	s, _ = fc.GetString("topic")
	assert.Equal(t, "slices", s)

	fc.SetAll(map[string]any{"a": 1, "b": 2})
	snapshot := fc.Snapshot()
	assert.Equal(t, 1, snapshot["a"])
	assert.Equal(t, 2, snapshot["b"])

	// Snapshot is a copy.
	snapshot["a"] = 99
	v, _ = fc.Get("a")
	assert.Equal(t, 1, v)
}

func TestContext_RequireString(t *testing.T) {
	fc := NewContext(map[string]any{"present": "yes", "empty": "", "number": 7})

	s, err := fc.RequireString("present")
	require.NoError(t, err)
	assert.Equal(t, "yes", s)

	for _, key := range []string{"empty", "number", "absent"} {
		_, err := fc.RequireString(key)
		require.Error(t, err)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, key, verr.Key)
	}
}
