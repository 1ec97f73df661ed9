package queue

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/brianfields/deeplearn-sub002/ent"
	"github.com/brianfields/deeplearn-sub002/ent/unit"
	"github.com/brianfields/deeplearn-sub002/pkg/config"
	"github.com/brianfields/deeplearn-sub002/pkg/content"
	"github.com/brianfields/deeplearn-sub002/pkg/flow"
	"github.com/brianfields/deeplearn-sub002/pkg/llm"
	"github.com/brianfields/deeplearn-sub002/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDominantErrorKind(t *testing.T) {
	wrap := func(kind llm.ErrorType) error {
		// Children surface engine-wrapped step errors; TypeOf unwraps.
		return fmt.Errorf("step generate_mcqs failed: %w", llm.NewError(kind, "boom", nil))
	}

	tests := []struct {
		name    string
		results []flow.FanOutResult
		want    llm.ErrorType
	}{
		{
			name:    "no failures defaults to internal",
			results: []flow.FanOutResult{{Index: 0}, {Index: 1}},
			want:    llm.ErrorTypeInternal,
		},
		{
			name: "most common kind wins",
			results: []flow.FanOutResult{
				{Index: 0, Err: wrap(llm.ErrorTypeRateLimited)},
				{Index: 1, Err: wrap(llm.ErrorTypeRateLimited)},
				{Index: 2, Err: wrap(llm.ErrorTypeProvider)},
			},
			want: llm.ErrorTypeRateLimited,
		},
		{
			name: "tie breaks alphabetically",
			results: []flow.FanOutResult{
				{Index: 0, Err: wrap(llm.ErrorTypeTimeout)},
				{Index: 1, Err: wrap(llm.ErrorTypeProvider)},
			},
			want: llm.ErrorTypeProvider,
		},
		{
			name: "successes do not dilute the count",
			results: []flow.FanOutResult{
				{Index: 0},
				{Index: 1, Err: wrap(llm.ErrorTypeValidation)},
			},
			want: llm.ErrorTypeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dominantErrorKind(tt.results))
		})
	}
}

func TestMapCancellation(t *testing.T) {
	e := &RealUnitExecutor{}

	t.Run("live context returns nil", func(t *testing.T) {
		assert.Nil(t, e.mapCancellation(context.Background()))
	})

	t.Run("cancelled context fails the unit", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		r := e.mapCancellation(ctx)
		require.NotNil(t, r)
		assert.Equal(t, unit.StatusFailed, r.Status)
		assert.Equal(t, "unit creation cancelled", r.ErrorMessage)
	})

	t.Run("deadline exceeded reports a timeout", func(t *testing.T) {
		ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
		defer cancel()

		r := e.mapCancellation(ctx)
		require.NotNil(t, r)
		assert.Equal(t, unit.StatusFailed, r.Status)
		assert.Equal(t, "unit creation timed out", r.ErrorMessage)
	})
}

func TestExecuteRequiresFlowRun(t *testing.T) {
	e := NewRealUnitExecutor(nil, nil, nil, nil, nil, config.ContentConfig{})

	t.Run("nil flow run id", func(t *testing.T) {
		result := e.Execute(context.Background(), &ent.Unit{ID: "unit-1"})
		require.NotNil(t, result)
		assert.Equal(t, unit.StatusFailed, result.Status)
		assert.Equal(t, "unit has no flow run", result.ErrorMessage)
	})

	t.Run("empty flow run id", func(t *testing.T) {
		empty := ""
		result := e.Execute(context.Background(), &ent.Unit{ID: "unit-1", FlowRunID: &empty})
		require.NotNil(t, result)
		assert.Equal(t, unit.StatusFailed, result.Status)
		assert.Equal(t, "unit has no flow run", result.ErrorMessage)
	})
}

func TestUnitPlanFromContext(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		_, ok := unitPlanFromContext(flow.NewContext(nil))
		assert.False(t, ok)
	})

	t.Run("wrong type", func(t *testing.T) {
		fc := flow.NewContext(map[string]any{content.KeyUnitPlan: "not a plan"})
		_, ok := unitPlanFromContext(fc)
		assert.False(t, ok)
	})

	t.Run("typed plan survives", func(t *testing.T) {
		want := &models.UnitPlan{UnitTitle: "Pointers"}
		fc := flow.NewContext(map[string]any{content.KeyUnitPlan: want})
		got, ok := unitPlanFromContext(fc)
		require.True(t, ok)
		assert.Same(t, want, got)
	})
}

func TestLessonPackageFromContext(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		_, ok := lessonPackageFromContext(flow.NewContext(nil))
		assert.False(t, ok)
	})

	t.Run("typed package survives", func(t *testing.T) {
		want := &models.LessonPackage{MiniLesson: "short"}
		fc := flow.NewContext(map[string]any{content.KeyLessonPackage: want})
		got, ok := lessonPackageFromContext(fc)
		require.True(t, ok)
		assert.Same(t, want, got)
	})
}
