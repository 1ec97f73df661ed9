package flow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memFlow is one flow run held by memStore.
type memFlow struct {
	id          string
	rec         FlowRunRecord
	status      Status
	totalSteps  int
	progress    []Progress
	heartbeats  int
	completion  *FlowCompletion
	failMessage string
	termination *FlowTermination
}

// memStep is one step run held by memStore.
type memStep struct {
	id         string
	rec        StepRunRecord
	status     Status
	completion *StepCompletion
	failure    *StepFailure
}

// memStore is an in-memory Store that enforces terminal-once semantics so
// tests catch double terminal writes.
type memStore struct {
	mu          sync.Mutex
	flows       map[string]*memFlow
	steps       map[string]*memStep
	stepOrder   []string
	usageByStep map[string]UsageRollup
}

func newMemStore() *memStore {
	return &memStore{
		flows:       make(map[string]*memFlow),
		steps:       make(map[string]*memStep),
		usageByStep: make(map[string]UsageRollup),
	}
}

func (s *memStore) CreateFlowRun(_ context.Context, rec FlowRunRecord) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := fmt.Sprintf("flow-%d", len(s.flows)+1)
	s.flows[id] = &memFlow{id: id, rec: rec, status: StatusRunning, totalSteps: rec.TotalSteps}
	return id, nil
}

func (s *memStore) StartFlowRun(_ context.Context, flowRunID string, totalSteps int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.flows[flowRunID]
	if !ok {
		return fmt.Errorf("flow %s not found", flowRunID)
	}
	f.status = StatusRunning
	f.totalSteps = totalSteps
	return nil
}

func (s *memStore) UpdateFlowProgress(_ context.Context, flowRunID string, p Progress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.flows[flowRunID]
	if !ok {
		return fmt.Errorf("flow %s not found", flowRunID)
	}
	f.progress = append(f.progress, p)
	return nil
}

func (s *memStore) Heartbeat(_ context.Context, flowRunID string, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.flows[flowRunID]
	if !ok {
		return fmt.Errorf("flow %s not found", flowRunID)
	}
	f.heartbeats++
	return nil
}

func (s *memStore) CompleteFlowRun(_ context.Context, flowRunID string, rec FlowCompletion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.flows[flowRunID]
	if f.status != StatusRunning {
		return fmt.Errorf("flow %s already terminal: %s", flowRunID, f.status)
	}
	f.status = StatusCompleted
	f.completion = &rec
	return nil
}

func (s *memStore) FailFlowRun(_ context.Context, flowRunID string, errorMessage string, rec FlowTermination) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.flows[flowRunID]
	if f.status != StatusRunning {
		return fmt.Errorf("flow %s already terminal: %s", flowRunID, f.status)
	}
	f.status = StatusFailed
	f.failMessage = errorMessage
	f.termination = &rec
	return nil
}

func (s *memStore) CancelFlowRun(_ context.Context, flowRunID string, rec FlowTermination) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.flows[flowRunID]
	if f.status != StatusRunning {
		return fmt.Errorf("flow %s already terminal: %s", flowRunID, f.status)
	}
	f.status = StatusCancelled
	f.termination = &rec
	return nil
}

func (s *memStore) CreateStepRun(_ context.Context, rec StepRunRecord) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := fmt.Sprintf("step-%d", len(s.steps)+1)
	s.steps[id] = &memStep{id: id, rec: rec, status: StatusRunning}
	s.stepOrder = append(s.stepOrder, id)
	return id, nil
}

func (s *memStore) CompleteStepRun(_ context.Context, stepRunID string, rec StepCompletion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.steps[stepRunID]
	if st.status != StatusRunning {
		return fmt.Errorf("step %s already terminal: %s", stepRunID, st.status)
	}
	st.status = StatusCompleted
	st.completion = &rec
	return nil
}

func (s *memStore) FailStepRun(_ context.Context, stepRunID string, rec StepFailure) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.steps[stepRunID]
	if st.status != StatusRunning {
		return fmt.Errorf("step %s already terminal: %s", stepRunID, st.status)
	}
	st.status = StatusFailed
	st.failure = &rec
	return nil
}

func (s *memStore) StepUsage(_ context.Context, stepRunID string) (*UsageRollup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.steps[stepRunID]
	if !ok {
		return nil, fmt.Errorf("step %s not found", stepRunID)
	}
	usage := s.usageByStep[st.rec.StepName]
	return &usage, nil
}

func (s *memStore) flow(t *testing.T, id string) *memFlow {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.flows[id]
	require.True(t, ok, "flow %s not found", id)
	return f
}

func (s *memStore) stepsInOrder() []*memStep {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*memStep, 0, len(s.stepOrder))
	for _, id := range s.stepOrder {
		out = append(out, s.steps[id])
	}
	return out
}

// fakeInputs/fakeOutputs are minimal typed payloads for engine tests.
type fakeInputs struct {
	Topic      string `json:"topic"`
	invalidMsg string
}

func (in fakeInputs) Validate() error {
	if in.invalidMsg != "" {
		return errors.New(in.invalidMsg)
	}
	return nil
}

type fakeOutputs struct {
	Result     string `json:"result"`
	invalidMsg string
}

func (o fakeOutputs) Validate() error {
	if o.invalidMsg != "" {
		return errors.New(o.invalidMsg)
	}
	return nil
}

// fakeStep scripts one step of a test flow.
type fakeStep struct {
	name     string
	bindErr  error
	execute  func(ctx context.Context, sc *StepContext, in Inputs) (*StepResult, error)
	executed bool
}

func (s *fakeStep) Name() string { return s.name }

func (s *fakeStep) BindInputs(fc *Context) (Inputs, error) {
	if s.bindErr != nil {
		return nil, s.bindErr
	}
	topic, _ := fc.GetString("topic")
	return fakeInputs{Topic: topic}, nil
}

func (s *fakeStep) Execute(ctx context.Context, sc *StepContext, in Inputs) (*StepResult, error) {
	s.executed = true
	if s.execute != nil {
		return s.execute(ctx, sc, in)
	}
	return &StepResult{Outputs: fakeOutputs{Result: s.name + " done"}}, nil
}

func newTestEngine(store Store) *Engine {
	return NewEngine(store, nil, nil, EngineConfig{HeartbeatInterval: time.Hour})
}

func TestEngine_Run_HappyPath(t *testing.T) {
	store := newMemStore()
	store.usageByStep["step_one"] = UsageRollup{Tokens: 100, Cost: 0.01, RequestIDs: []string{"req-1"}}
	store.usageByStep["step_two"] = UsageRollup{Tokens: 50, Cost: 0.005, RequestIDs: []string{"req-2", "req-3"}}

	def := Definition{
		Name: "test_flow",
		Steps: []Step{
			&fakeStep{name: "step_one"},
			&fakeStep{name: "step_two"},
		},
	}

	result, err := NewEngine(store, nil, nil, EngineConfig{HeartbeatInterval: time.Hour}).
		Run(context.Background(), def, RunOptions{
			UserID: "user-1",
			Inputs: map[string]any{"topic": "goroutines"},
			Metadata: map[string]any{
				"unit_id": "unit-1",
			},
		})
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, result.Status)
	assert.Equal(t, 150, result.TotalTokens)
	assert.InDelta(t, 0.015, result.TotalCost, 1e-9)

	f := store.flow(t, result.FlowRunID)
	assert.Equal(t, StatusCompleted, f.status)
	assert.Equal(t, "test_flow", f.rec.FlowName)
	assert.Equal(t, "unit-1", f.rec.Metadata["unit_id"])
	assert.Equal(t, 2, f.totalSteps)
	require.NotNil(t, f.completion)
	assert.Equal(t, 150, f.completion.TotalTokens)

	// Progress was written before each step: 0% then 50%.
	require.Len(t, f.progress, 2)
	assert.Equal(t, "step_one", f.progress[0].CurrentStep)
	assert.Equal(t, 0, f.progress[0].StepProgress)
	assert.InDelta(t, 0.0, f.progress[0].ProgressPercentage, 1e-9)
	assert.Equal(t, "step_two", f.progress[1].CurrentStep)
	assert.Equal(t, 1, f.progress[1].StepProgress)
	assert.InDelta(t, 50.0, f.progress[1].ProgressPercentage, 1e-9)

	steps := store.stepsInOrder()
	require.Len(t, steps, 2)
	first, second := steps[0], steps[1]

	assert.Equal(t, StatusCompleted, first.status)
	assert.Equal(t, 1, first.rec.StepOrder)
	assert.Equal(t, "goroutines", first.rec.Inputs["topic"])
	require.NotNil(t, first.completion)
	assert.Equal(t, 100, first.completion.TokensUsed)
	assert.Equal(t, "req-1", first.completion.LLMRequestID, "single request id is recorded")
	assert.Equal(t, "step_one done", first.completion.Outputs["result"])

	assert.Equal(t, 2, second.rec.StepOrder)
	require.NotNil(t, second.completion)
	assert.Empty(t, second.completion.LLMRequestID, "multi-request steps record no single id")

	// Default context writes: {step_name: outputs}.
	v, ok := result.Context.Get("step_one")
	require.True(t, ok)
	assert.Equal(t, fakeOutputs{Result: "step_one done"}, v)

	// Flow outputs default to the last step's writes.
	require.Contains(t, result.Outputs, "step_two")
}

func TestEngine_Run_FailFast(t *testing.T) {
	store := newMemStore()
	store.usageByStep["boom"] = UsageRollup{Tokens: 42, Cost: 0.004, RequestIDs: []string{"req-9"}}
	third := &fakeStep{name: "never_runs"}

	def := Definition{
		Name: "failing_flow",
		Steps: []Step{
			&fakeStep{name: "fine"},
			&fakeStep{name: "boom", execute: func(context.Context, *StepContext, Inputs) (*StepResult, error) {
				return nil, errors.New("provider exploded")
			}},
			third,
		},
	}

	result, err := newTestEngine(store).Run(context.Background(), def, RunOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step boom failed")

	assert.Equal(t, StatusFailed, result.Status)
	assert.Equal(t, 42, result.TotalTokens, "failed step usage still rolls up")

	f := store.flow(t, result.FlowRunID)
	assert.Equal(t, StatusFailed, f.status)
	assert.Contains(t, f.failMessage, "provider exploded")
	require.NotNil(t, f.termination)
	assert.Equal(t, 42, f.termination.TotalTokens)

	steps := store.stepsInOrder()
	require.Len(t, steps, 2, "fail-fast: the third step gets no row")
	assert.Equal(t, StatusCompleted, steps[0].status)
	assert.Equal(t, StatusFailed, steps[1].status)
	require.NotNil(t, steps[1].failure)
	assert.Equal(t, 42, steps[1].failure.TokensUsed)
	assert.False(t, third.executed)
}

func TestEngine_Run_InputValidationFailure(t *testing.T) {
	store := newMemStore()
	bad := &fakeStep{name: "needs_input", bindErr: NewValidationError("unit_plan", "required string missing from flow context")}

	def := Definition{Name: "validation_flow", Steps: []Step{bad}}

	result, err := newTestEngine(store).Run(context.Background(), def, RunOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input validation failed")
	assert.Equal(t, StatusFailed, result.Status)
	assert.False(t, bad.executed, "the step body never runs")

	steps := store.stepsInOrder()
	require.Len(t, steps, 1)
	assert.Equal(t, StatusFailed, steps[0].status)
	assert.Nil(t, steps[0].rec.Inputs, "no inputs persisted when binding fails")
	require.NotNil(t, steps[0].failure)
	assert.Contains(t, steps[0].failure.ErrorMessage, "unit_plan")
	assert.Zero(t, steps[0].failure.TokensUsed, "no LLM call was made")
}

func TestEngine_Run_OutputValidationFailure(t *testing.T) {
	store := newMemStore()
	def := Definition{
		Name: "output_flow",
		Steps: []Step{
			&fakeStep{name: "bad_output", execute: func(context.Context, *StepContext, Inputs) (*StepResult, error) {
				return &StepResult{Outputs: fakeOutputs{invalidMsg: "objectives empty"}}, nil
			}},
		},
	}

	result, err := newTestEngine(store).Run(context.Background(), def, RunOptions{})
	require.Error(t, err)
	assert.Equal(t, StatusFailed, result.Status)

	steps := store.stepsInOrder()
	require.NotNil(t, steps[0].failure)
	assert.Contains(t, steps[0].failure.ErrorMessage, "invalid_response")
	assert.Contains(t, steps[0].failure.ErrorMessage, "objectives empty")
}

func TestEngine_Run_PreCreatedFlowRun(t *testing.T) {
	store := newMemStore()
	id, err := store.CreateFlowRun(context.Background(), FlowRunRecord{FlowName: "precreated"})
	require.NoError(t, err)

	def := Definition{Name: "precreated", Steps: []Step{&fakeStep{name: "only"}}}
	result, err := newTestEngine(store).Run(context.Background(), def, RunOptions{FlowRunID: id})
	require.NoError(t, err)

	assert.Equal(t, id, result.FlowRunID)
	f := store.flow(t, id)
	assert.Equal(t, 1, f.totalSteps, "StartFlowRun stamped total_steps")
	assert.Equal(t, StatusCompleted, f.status)
}

func TestEngine_Run_Cancellation(t *testing.T) {
	store := newMemStore()
	ctx, cancel := context.WithCancel(context.Background())

	def := Definition{
		Name: "cancellable",
		Steps: []Step{
			&fakeStep{name: "waits", execute: func(ctx context.Context, _ *StepContext, _ Inputs) (*StepResult, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			}},
			&fakeStep{name: "after"},
		},
	}

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	result, err := newTestEngine(store).Run(ctx, def, RunOptions{})
	require.Error(t, err)
	assert.Equal(t, StatusCancelled, result.Status)

	f := store.flow(t, result.FlowRunID)
	assert.Equal(t, StatusCancelled, f.status)

	steps := store.stepsInOrder()
	require.Len(t, steps, 1, "the second step never starts")
	assert.Equal(t, StatusFailed, steps[0].status)
}

func TestEngine_Run_ChildUsageRollsUpToFanOutStep(t *testing.T) {
	store := newMemStore()
	store.usageByStep["fan_out"] = UsageRollup{Tokens: 10, Cost: 0.001, RequestIDs: []string{"req-own"}}

	def := Definition{
		Name: "parent",
		Steps: []Step{
			&fakeStep{name: "fan_out", execute: func(context.Context, *StepContext, Inputs) (*StepResult, error) {
				return &StepResult{
					Outputs:     fakeOutputs{Result: "children done"},
					Metadata:    map[string]any{"child_flow_runs": []string{"flow-a", "flow-b"}},
					ChildTokens: 500,
					ChildCost:   0.05,
				}, nil
			}},
		},
	}

	result, err := newTestEngine(store).Run(context.Background(), def, RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, 510, result.TotalTokens, "parent totals include children")
	steps := store.stepsInOrder()
	require.NotNil(t, steps[0].completion)
	assert.Equal(t, 510, steps[0].completion.TokensUsed)
	assert.InDelta(t, 0.051, steps[0].completion.CostEstimate, 1e-9)
	assert.Equal(t, []string{"flow-a", "flow-b"}, steps[0].completion.Metadata["child_flow_runs"])
}

func TestEngine_Run_HeartbeatsWhileRunning(t *testing.T) {
	store := newMemStore()
	def := Definition{
		Name: "slow",
		Steps: []Step{
			&fakeStep{name: "sleepy", execute: func(context.Context, *StepContext, Inputs) (*StepResult, error) {
				time.Sleep(80 * time.Millisecond)
				return &StepResult{Outputs: fakeOutputs{Result: "ok"}}, nil
			}},
		},
	}

	engine := NewEngine(store, nil, nil, EngineConfig{HeartbeatInterval: 10 * time.Millisecond})
	result, err := engine.Run(context.Background(), def, RunOptions{})
	require.NoError(t, err)

	f := store.flow(t, result.FlowRunID)
	assert.Greater(t, f.heartbeats, 0, "heartbeat goroutine stamped the row")
}

func TestEngine_Run_EmptyDefinition(t *testing.T) {
	_, err := newTestEngine(newMemStore()).Run(context.Background(), Definition{Name: "empty"}, RunOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no steps")
}

func TestEngine_Run_CustomWritesAndOutputs(t *testing.T) {
	store := newMemStore()
	def := Definition{
		Name: "custom",
		Steps: []Step{
			&fakeStep{name: "writer", execute: func(context.Context, *StepContext, Inputs) (*StepResult, error) {
				return &StepResult{
					Outputs: fakeOutputs{Result: "v"},
					Writes:  map[string]any{"source_material": "text body", "word_count": 2},
				}, nil
			}},
		},
		Outputs: func(fc *Context) map[string]any {
			n, _ := fc.Get("word_count")
			return map[string]any{"words": n}
		},
	}

	result, err := newTestEngine(store).Run(context.Background(), def, RunOptions{})
	require.NoError(t, err)

	v, ok := result.Context.GetString("source_material")
	require.True(t, ok)
	assert.Equal(t, "text body", v)
	assert.Equal(t, map[string]any{"words": 2}, result.Outputs)

	f := store.flow(t, result.FlowRunID)
	require.NotNil(t, f.completion)
	// Outputs are JSON-shaped in the store.
	assert.EqualValues(t, 2, f.completion.Outputs["words"])
}

func TestValidationError_Message(t *testing.T) {
	err := NewValidationError("topic", "required string missing from flow context")
	assert.True(t, strings.Contains(err.Error(), "topic"))
	assert.True(t, strings.Contains(err.Error(), "missing"))
}
