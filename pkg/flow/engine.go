// Package flow is the step and flow runtime: a flow is an ordered list of
// steps sharing a mutex-guarded context, executed sequentially with
// fail-fast semantics. The engine owns the durable flow_runs/flow_step_runs
// lifecycle; step code never touches persistence.
package flow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/brianfields/deeplearn-sub002/pkg/llm"
	"github.com/brianfields/deeplearn-sub002/pkg/objectstore"
)

// Status is the lifecycle state of a flow run.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

// ExecutionMode distinguishes blocking submissions from queued ones.
const (
	ModeSync       = "sync"
	ModeBackground = "background"
)

// persistTimeout bounds terminal and roll-up writes made on background
// contexts.
const persistTimeout = 10 * time.Second

// defaultHeartbeatInterval is used when the engine config leaves it unset.
const defaultHeartbeatInterval = 30 * time.Second

// Definition is a named, ordered list of steps.
type Definition struct {
	Name  string
	Steps []Step

	// Outputs derives the flow's outputs record from the final context.
	// Nil records the last step's context writes.
	Outputs func(fc *Context) map[string]any
}

// RunOptions parameterizes one execution of a Definition.
type RunOptions struct {
	// FlowRunID reuses a pre-created flow_runs row instead of creating one.
	FlowRunID string

	// ExecutionMode is recorded on rows the engine creates. Defaults to sync.
	ExecutionMode string

	UserID string

	// Inputs seed the flow context and are persisted on the flow row.
	Inputs map[string]any

	// Metadata is persisted as flow_metadata (domain tags, e.g. unit_id).
	Metadata map[string]any
}

// RunResult is the outcome of a flow execution. It is returned alongside a
// non-nil error for failed and cancelled flows so callers can still read the
// roll-ups and the partial context.
type RunResult struct {
	FlowRunID       string
	Status          Status
	Outputs         map[string]any
	TotalTokens     int
	TotalCost       float64
	ExecutionTimeMS int

	// Context is the final flow context, typed values intact.
	Context *Context
}

// EngineConfig tunes the engine.
type EngineConfig struct {
	// HeartbeatInterval is how often running flows stamp last_heartbeat.
	HeartbeatInterval time.Duration
}

// Engine executes flow definitions against a Store. Safe for concurrent use;
// one engine serves every flow in the process.
type Engine struct {
	store             Store
	gateway           LLMGateway
	objects           objectstore.Store
	heartbeatInterval time.Duration
}

// NewEngine creates an Engine. Panics if store is nil. gateway and objects
// may be nil for flows whose steps do not use them.
func NewEngine(store Store, gateway LLMGateway, objects objectstore.Store, cfg EngineConfig) *Engine {
	if store == nil {
		panic("flow.NewEngine: store must not be nil")
	}
	interval := cfg.HeartbeatInterval
	if interval <= 0 {
		interval = defaultHeartbeatInterval
	}
	return &Engine{
		store:             store,
		gateway:           gateway,
		objects:           objects,
		heartbeatInterval: interval,
	}
}

// Run executes def. Steps run sequentially and fail fast: the first failed
// step fails the flow and the remaining steps never start. The flow reaches
// exactly one terminal status; terminal writes happen on a background
// context so cancellation cannot lose them.
func (e *Engine) Run(ctx context.Context, def Definition, opts RunOptions) (*RunResult, error) {
	if len(def.Steps) == 0 {
		return nil, fmt.Errorf("flow %s has no steps", def.Name)
	}

	total := len(def.Steps)
	mode := opts.ExecutionMode
	if mode == "" {
		mode = ModeSync
	}

	flowRunID := opts.FlowRunID
	if flowRunID == "" {
		id, err := e.store.CreateFlowRun(ctx, FlowRunRecord{
			FlowName:      def.Name,
			ExecutionMode: mode,
			UserID:        opts.UserID,
			Inputs:        opts.Inputs,
			Metadata:      opts.Metadata,
			TotalSteps:    total,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create flow run: %w", err)
		}
		flowRunID = id
	} else {
		if err := e.store.StartFlowRun(ctx, flowRunID, total); err != nil {
			return nil, fmt.Errorf("failed to start flow run %s: %w", flowRunID, err)
		}
	}

	logger := slog.With("flow_name", def.Name, "flow_run_id", flowRunID)
	logger.Info("flow started", "total_steps", total, "execution_mode", mode)

	stopHeartbeat := make(chan struct{})
	var heartbeatWG sync.WaitGroup
	heartbeatWG.Add(1)
	go e.heartbeatLoop(flowRunID, stopHeartbeat, &heartbeatWG, logger)

	fctx := NewContext(opts.Inputs)
	result := &RunResult{FlowRunID: flowRunID, Status: StatusRunning, Context: fctx}
	start := time.Now()

	var (
		totalTokens int
		totalCost   float64
		lastWrites  map[string]any
		runErr      error
	)

	for i, step := range def.Steps {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}
		outcome, err := e.runStep(ctx, fctx, flowRunID, opts.UserID, step, i+1, total, logger)
		if outcome != nil {
			totalTokens += outcome.tokens
			totalCost += outcome.cost
			lastWrites = outcome.writes
		}
		if err != nil {
			runErr = err
			break
		}
	}

	close(stopHeartbeat)
	heartbeatWG.Wait()

	elapsed := int(time.Since(start).Milliseconds())
	result.TotalTokens = totalTokens
	result.TotalCost = totalCost
	result.ExecutionTimeMS = elapsed

	if runErr != nil {
		term := FlowTermination{TotalTokens: totalTokens, TotalCost: totalCost, ExecutionTimeMS: elapsed}
		if errors.Is(ctx.Err(), context.Canceled) {
			e.cancelFlow(flowRunID, term, logger)
			result.Status = StatusCancelled
			logger.Info("flow cancelled", "execution_time_ms", elapsed)
		} else {
			e.failFlow(flowRunID, runErr.Error(), term, logger)
			result.Status = StatusFailed
			logger.Error("flow failed", "error", runErr, "execution_time_ms", elapsed)
		}
		return result, runErr
	}

	outputs := lastWrites
	if def.Outputs != nil {
		outputs = def.Outputs(fctx)
	}
	e.completeFlow(flowRunID, FlowCompletion{
		Outputs:         toJSONMap(outputs),
		TotalTokens:     totalTokens,
		TotalCost:       totalCost,
		ExecutionTimeMS: elapsed,
	}, logger)

	result.Status = StatusCompleted
	result.Outputs = outputs
	logger.Info("flow completed",
		"execution_time_ms", elapsed,
		"total_tokens", totalTokens,
		"total_cost", totalCost)
	return result, nil
}

// stepOutcome carries what one step contributed to the flow, whether or not
// it succeeded.
type stepOutcome struct {
	writes map[string]any
	tokens int
	cost   float64
}

func (e *Engine) runStep(ctx context.Context, fctx *Context, flowRunID, userID string, step Step, order, total int, logger *slog.Logger) (*stepOutcome, error) {
	name := step.Name()

	// Bind before anything is persisted; validation failures still get a
	// failed row, but with no inputs and no LLM calls.
	in, bindErr := step.BindInputs(fctx)
	if bindErr == nil && in != nil {
		bindErr = in.Validate()
	}

	rec := StepRunRecord{FlowRunID: flowRunID, StepName: name, StepOrder: order}
	if bindErr == nil {
		rec.Inputs = toJSONMap(in)
	}
	stepRunID, err := e.store.CreateStepRun(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("failed to create step run for %s: %w", name, err)
	}

	if err := e.store.UpdateFlowProgress(ctx, flowRunID, Progress{
		CurrentStep:        name,
		StepProgress:       order - 1,
		ProgressPercentage: float64(order-1) / float64(total) * 100,
	}); err != nil {
		logger.Warn("failed to update flow progress", "step_name", name, "error", err)
	}

	if bindErr != nil {
		e.failStep(stepRunID, StepFailure{ErrorMessage: bindErr.Error()}, logger)
		return nil, fmt.Errorf("step %s input validation failed: %w", name, bindErr)
	}

	sc := &StepContext{
		FlowRunID: flowRunID,
		StepRunID: stepRunID,
		UserID:    userID,
		LLM:       e.gateway,
		Objects:   e.objects,
		Logger:    logger.With("step_name", name, "step_run_id", stepRunID),
	}

	logger.Info("step started", "step_name", name, "step_order", order)
	stepStart := time.Now()
	result, execErr := step.Execute(ctx, sc, in)
	elapsed := int(time.Since(stepStart).Milliseconds())

	usage := e.stepUsage(stepRunID, logger)

	if execErr != nil {
		lerr := llm.Classify(execErr)
		e.failStep(stepRunID, StepFailure{
			ErrorMessage:    lerr.Error(),
			TokensUsed:      usage.Tokens,
			CostEstimate:    usage.Cost,
			ExecutionTimeMS: elapsed,
		}, logger)
		return &stepOutcome{tokens: usage.Tokens, cost: usage.Cost},
			fmt.Errorf("step %s failed: %w", name, execErr)
	}

	if result == nil {
		result = &StepResult{}
	}

	if result.Outputs != nil {
		if verr := result.Outputs.Validate(); verr != nil {
			ierr := llm.NewError(llm.ErrorTypeInvalidResponse,
				fmt.Sprintf("step %s outputs failed validation", name), verr)
			e.failStep(stepRunID, StepFailure{
				ErrorMessage:    ierr.Error(),
				TokensUsed:      usage.Tokens,
				CostEstimate:    usage.Cost,
				ExecutionTimeMS: elapsed,
			}, logger)
			return &stepOutcome{tokens: usage.Tokens, cost: usage.Cost},
				fmt.Errorf("step %s output validation failed: %w", name, verr)
		}
	}

	tokens := usage.Tokens + result.ChildTokens
	cost := usage.Cost + result.ChildCost
	llmRequestID := ""
	if len(usage.RequestIDs) == 1 {
		llmRequestID = usage.RequestIDs[0]
	}

	completion := StepCompletion{
		Outputs:         toJSONMap(result.Outputs),
		Metadata:        result.Metadata,
		TokensUsed:      tokens,
		CostEstimate:    cost,
		ExecutionTimeMS: elapsed,
		LLMRequestID:    llmRequestID,
	}
	if err := e.completeStep(stepRunID, completion); err != nil {
		return &stepOutcome{tokens: tokens, cost: cost},
			fmt.Errorf("failed to persist completion of step %s: %w", name, err)
	}

	writes := result.Writes
	if writes == nil {
		writes = map[string]any{name: result.Outputs}
	}
	fctx.SetAll(writes)

	logger.Info("step completed",
		"step_name", name,
		"step_order", order,
		"execution_time_ms", elapsed,
		"tokens_used", tokens)
	return &stepOutcome{writes: writes, tokens: tokens, cost: cost}, nil
}

// heartbeatLoop stamps last_heartbeat until stopped. Runs on a background
// context so a cancelled flow still heartbeats until its terminal write.
func (e *Engine) heartbeatLoop(flowRunID string, stop <-chan struct{}, wg *sync.WaitGroup, logger *slog.Logger) {
	defer wg.Done()
	ticker := time.NewTicker(e.heartbeatInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			pctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
			if err := e.store.Heartbeat(pctx, flowRunID, time.Now()); err != nil {
				logger.Warn("flow heartbeat failed", "error", err)
			}
			cancel()
		}
	}
}

func (e *Engine) stepUsage(stepRunID string, logger *slog.Logger) UsageRollup {
	pctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	usage, err := e.store.StepUsage(pctx, stepRunID)
	if err != nil {
		logger.Warn("failed to roll up step usage", "step_run_id", stepRunID, "error", err)
		return UsageRollup{}
	}
	return *usage
}

func (e *Engine) completeStep(stepRunID string, rec StepCompletion) error {
	pctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	return e.store.CompleteStepRun(pctx, stepRunID, rec)
}

func (e *Engine) failStep(stepRunID string, rec StepFailure, logger *slog.Logger) {
	pctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := e.store.FailStepRun(pctx, stepRunID, rec); err != nil {
		logger.Error("failed to persist step failure", "step_run_id", stepRunID, "error", err)
	}
}

func (e *Engine) completeFlow(flowRunID string, rec FlowCompletion, logger *slog.Logger) {
	pctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := e.store.CompleteFlowRun(pctx, flowRunID, rec); err != nil {
		logger.Error("failed to persist flow completion", "error", err)
	}
}

func (e *Engine) failFlow(flowRunID, message string, rec FlowTermination, logger *slog.Logger) {
	pctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := e.store.FailFlowRun(pctx, flowRunID, message, rec); err != nil {
		logger.Error("failed to persist flow failure", "error", err)
	}
}

func (e *Engine) cancelFlow(flowRunID string, rec FlowTermination, logger *slog.Logger) {
	pctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := e.store.CancelFlowRun(pctx, flowRunID, rec); err != nil {
		logger.Error("failed to persist flow cancellation", "error", err)
	}
}

// toJSONMap converts a typed value into the generic map shape the JSON
// columns store. Nil in, nil out.
func toJSONMap(v any) map[string]any {
	if v == nil {
		return nil
	}
	if m, ok := v.(map[string]any); ok {
		return m
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}
