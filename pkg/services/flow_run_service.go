// Package services implements the ent-backed persistence services: flow and
// step run lifecycle, the LLM request audit trail, units, lessons, media
// assets, and the admin read model. Core packages (flow, llm, content, queue)
// depend on narrow interfaces that these services satisfy.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/brianfields/deeplearn-sub002/ent"
	"github.com/brianfields/deeplearn-sub002/ent/flowrun"
	"github.com/brianfields/deeplearn-sub002/ent/flowsteprun"
	"github.com/brianfields/deeplearn-sub002/ent/llmrequest"
	"github.com/brianfields/deeplearn-sub002/pkg/flow"
	"github.com/google/uuid"
)

// FlowRunService manages flow run and step run lifecycle. It is the durable
// store behind the flow engine.
type FlowRunService struct {
	client *ent.Client
}

// FlowRunService satisfies the engine's store contract.
var _ flow.Store = (*FlowRunService)(nil)

// NewFlowRunService creates a new FlowRunService
func NewFlowRunService(client *ent.Client) *FlowRunService {
	return &FlowRunService{client: client}
}

// CreateFlowRun inserts a running flow run row and returns its id. Called by
// the engine when no row was pre-created.
func (s *FlowRunService) CreateFlowRun(ctx context.Context, rec flow.FlowRunRecord) (string, error) {
	now := time.Now()
	create := s.client.FlowRun.Create().
		SetID(uuid.New().String()).
		SetFlowName(rec.FlowName).
		SetExecutionMode(executionMode(rec.ExecutionMode)).
		SetStatus(flowrun.StatusRunning).
		SetTotalSteps(rec.TotalSteps).
		SetStartedAt(now).
		SetLastHeartbeat(now)
	if rec.UserID != "" {
		create = create.SetUserID(rec.UserID)
	}
	if rec.Inputs != nil {
		create = create.SetInputs(rec.Inputs)
	}
	if rec.Metadata != nil {
		create = create.SetFlowMetadata(rec.Metadata)
	}

	fr, err := create.Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create flow run: %w", err)
	}
	return fr.ID, nil
}

// StartFlowRun transitions a pre-created pending flow run to running and
// stamps its total step count. A row cancelled before it started stays
// cancelled: the conditional update misses and the engine never runs it.
func (s *FlowRunService) StartFlowRun(ctx context.Context, flowRunID string, totalSteps int) error {
	now := time.Now()
	n, err := s.client.FlowRun.Update().
		Where(
			flowrun.IDEQ(flowRunID),
			flowrun.StatusEQ(flowrun.StatusPending),
		).
		SetStatus(flowrun.StatusRunning).
		SetTotalSteps(totalSteps).
		SetStartedAt(now).
		SetLastHeartbeat(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to start flow run: %w", err)
	}
	if n == 0 {
		return s.notStartable(ctx, flowRunID)
	}
	return nil
}

// UpdateFlowProgress records which step is executing and how far along the
// flow is. Best-effort from the engine's point of view.
func (s *FlowRunService) UpdateFlowProgress(ctx context.Context, flowRunID string, p flow.Progress) error {
	err := s.client.FlowRun.UpdateOneID(flowRunID).
		SetCurrentStep(p.CurrentStep).
		SetStepProgress(p.StepProgress).
		SetProgressPercentage(p.ProgressPercentage).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update flow progress: %w", err)
	}
	return nil
}

// Heartbeat stamps last_heartbeat; the stall reconciler reads it.
func (s *FlowRunService) Heartbeat(ctx context.Context, flowRunID string, at time.Time) error {
	err := s.client.FlowRun.UpdateOneID(flowRunID).
		SetLastHeartbeat(at).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to record heartbeat: %w", err)
	}
	return nil
}

// CompleteFlowRun writes the completed terminal state. Only a running flow
// can complete; a row already terminal is left untouched.
func (s *FlowRunService) CompleteFlowRun(ctx context.Context, flowRunID string, rec flow.FlowCompletion) error {
	fr, err := s.client.FlowRun.Get(ctx, flowRunID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load flow run: %w", err)
	}

	update := s.client.FlowRun.Update().
		Where(
			flowrun.IDEQ(flowRunID),
			flowrun.StatusEQ(flowrun.StatusRunning),
		).
		SetStatus(flowrun.StatusCompleted).
		SetStepProgress(fr.TotalSteps).
		SetProgressPercentage(100).
		SetTotalTokens(rec.TotalTokens).
		SetTotalCost(rec.TotalCost).
		SetExecutionTimeMs(rec.ExecutionTimeMS).
		SetCompletedAt(time.Now()).
		ClearCurrentStep()
	if rec.Outputs != nil {
		update = update.SetOutputs(rec.Outputs)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete flow run: %w", err)
	}
	if n == 0 {
		return s.terminalConflict(ctx, flowRunID)
	}
	return nil
}

// FailFlowRun writes the failed terminal state, preserving partial progress
// and roll-ups. Applies to pending and running rows.
func (s *FlowRunService) FailFlowRun(ctx context.Context, flowRunID string, errorMessage string, rec flow.FlowTermination) error {
	n, err := s.client.FlowRun.Update().
		Where(
			flowrun.IDEQ(flowRunID),
			flowrun.StatusIn(flowrun.StatusPending, flowrun.StatusRunning),
		).
		SetStatus(flowrun.StatusFailed).
		SetErrorMessage(errorMessage).
		SetTotalTokens(rec.TotalTokens).
		SetTotalCost(rec.TotalCost).
		SetExecutionTimeMs(rec.ExecutionTimeMS).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to fail flow run: %w", err)
	}
	if n == 0 {
		return s.terminalConflict(ctx, flowRunID)
	}
	return nil
}

// CancelFlowRun writes the cancelled terminal state.
func (s *FlowRunService) CancelFlowRun(ctx context.Context, flowRunID string, rec flow.FlowTermination) error {
	n, err := s.client.FlowRun.Update().
		Where(
			flowrun.IDEQ(flowRunID),
			flowrun.StatusIn(flowrun.StatusPending, flowrun.StatusRunning),
		).
		SetStatus(flowrun.StatusCancelled).
		SetTotalTokens(rec.TotalTokens).
		SetTotalCost(rec.TotalCost).
		SetExecutionTimeMs(rec.ExecutionTimeMS).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel flow run: %w", err)
	}
	if n == 0 {
		return s.terminalConflict(ctx, flowRunID)
	}
	return nil
}

// CreateStepRun inserts a running step run row and returns its id. Inputs is
// nil when binding failed; the row still exists to carry the error.
func (s *FlowRunService) CreateStepRun(ctx context.Context, rec flow.StepRunRecord) (string, error) {
	create := s.client.FlowStepRun.Create().
		SetID(uuid.New().String()).
		SetFlowRunID(rec.FlowRunID).
		SetStepName(rec.StepName).
		SetStepOrder(rec.StepOrder).
		SetStatus(flowsteprun.StatusRunning)
	if rec.Inputs != nil {
		create = create.SetInputs(rec.Inputs)
	}

	sr, err := create.Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create step run: %w", err)
	}
	return sr.ID, nil
}

// CompleteStepRun writes a step's completed terminal state and roll-ups.
func (s *FlowRunService) CompleteStepRun(ctx context.Context, stepRunID string, rec flow.StepCompletion) error {
	update := s.client.FlowStepRun.Update().
		Where(
			flowsteprun.IDEQ(stepRunID),
			flowsteprun.StatusEQ(flowsteprun.StatusRunning),
		).
		SetStatus(flowsteprun.StatusCompleted).
		SetTokensUsed(rec.TokensUsed).
		SetCostEstimate(rec.CostEstimate).
		SetExecutionTimeMs(rec.ExecutionTimeMS).
		SetCompletedAt(time.Now())
	if rec.Outputs != nil {
		update = update.SetOutputs(rec.Outputs)
	}
	if rec.Metadata != nil {
		update = update.SetStepMetadata(rec.Metadata)
	}
	if rec.LLMRequestID != "" {
		update = update.SetLlmRequestID(rec.LLMRequestID)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete step run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("step run %s is not running: %w", stepRunID, ErrConcurrentModification)
	}
	return nil
}

// FailStepRun writes a step's failed terminal state.
func (s *FlowRunService) FailStepRun(ctx context.Context, stepRunID string, rec flow.StepFailure) error {
	update := s.client.FlowStepRun.Update().
		Where(
			flowsteprun.IDEQ(stepRunID),
			flowsteprun.StatusEQ(flowsteprun.StatusRunning),
		).
		SetStatus(flowsteprun.StatusFailed).
		SetErrorMessage(rec.ErrorMessage).
		SetTokensUsed(rec.TokensUsed).
		SetCostEstimate(rec.CostEstimate).
		SetExecutionTimeMs(rec.ExecutionTimeMS).
		SetCompletedAt(time.Now())
	if rec.Metadata != nil {
		update = update.SetStepMetadata(rec.Metadata)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to fail step run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("step run %s is not running: %w", stepRunID, ErrConcurrentModification)
	}
	return nil
}

// StepUsage sums the llm_requests rows a step produced: total tokens, total
// estimated cost, and the request ids in creation order.
func (s *FlowRunService) StepUsage(ctx context.Context, stepRunID string) (*flow.UsageRollup, error) {
	rows, err := s.client.LLMRequest.Query().
		Where(llmrequest.StepRunIDEQ(stepRunID)).
		Order(ent.Asc(llmrequest.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query step llm requests: %w", err)
	}

	rollup := &flow.UsageRollup{}
	for _, r := range rows {
		rollup.Tokens += r.TokensUsed
		rollup.Cost += r.CostEstimate
		rollup.RequestIDs = append(rollup.RequestIDs, r.ID)
	}
	return rollup, nil
}

// CreatePendingFlowRun inserts a pending flow run row for a background
// submission. The worker that later claims the owning unit starts it via
// the engine's RunOptions.FlowRunID.
func (s *FlowRunService) CreatePendingFlowRun(ctx context.Context, rec flow.FlowRunRecord) (string, error) {
	create := s.client.FlowRun.Create().
		SetID(uuid.New().String()).
		SetFlowName(rec.FlowName).
		SetExecutionMode(executionMode(rec.ExecutionMode)).
		SetStatus(flowrun.StatusPending)
	if rec.UserID != "" {
		create = create.SetUserID(rec.UserID)
	}
	if rec.Inputs != nil {
		create = create.SetInputs(rec.Inputs)
	}
	if rec.Metadata != nil {
		create = create.SetFlowMetadata(rec.Metadata)
	}

	fr, err := create.Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create pending flow run: %w", err)
	}
	return fr.ID, nil
}

// GetFlowRun retrieves a flow run by id.
func (s *FlowRunService) GetFlowRun(ctx context.Context, flowRunID string) (*ent.FlowRun, error) {
	fr, err := s.client.FlowRun.Get(ctx, flowRunID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get flow run: %w", err)
	}
	return fr, nil
}

// CancelPendingFlowRun cancels a flow run that has not started yet. Running
// flows are cancelled through the worker pool instead; terminal flows return
// ErrNotCancellable.
func (s *FlowRunService) CancelPendingFlowRun(ctx context.Context, flowRunID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := s.client.FlowRun.Update().
		Where(
			flowrun.IDEQ(flowRunID),
			flowrun.StatusEQ(flowrun.StatusPending),
		).
		SetStatus(flowrun.StatusCancelled).
		SetCompletedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to cancel pending flow run: %w", err)
	}
	if n == 0 {
		fr, err := s.client.FlowRun.Get(writeCtx, flowRunID)
		if err != nil {
			if ent.IsNotFound(err) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to get flow run: %w", err)
		}
		if fr.Status == flowrun.StatusRunning {
			return ErrConcurrentModification
		}
		return ErrNotCancellable
	}
	return nil
}

// FindStalledFlows returns running flows whose heartbeat is older than the
// threshold. The stall reconciler fails them and their owning units.
func (s *FlowRunService) FindStalledFlows(ctx context.Context, staleAfter time.Duration) ([]*ent.FlowRun, error) {
	cutoff := time.Now().Add(-staleAfter)

	flows, err := s.client.FlowRun.Query().
		Where(
			flowrun.StatusEQ(flowrun.StatusRunning),
			flowrun.LastHeartbeatNotNil(),
			flowrun.LastHeartbeatLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find stalled flows: %w", err)
	}
	return flows, nil
}

// FailAbandonedFlow fails a non-terminal flow from outside the engine (stall
// reconciler, startup recovery), rolling up the tokens and cost its step rows
// already accumulated so the totals invariant holds.
func (s *FlowRunService) FailAbandonedFlow(ctx context.Context, flowRunID, errorMessage string) error {
	fr, err := s.client.FlowRun.Get(ctx, flowRunID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load flow run: %w", err)
	}
	if fr.Status != flowrun.StatusPending && fr.Status != flowrun.StatusRunning {
		return nil // already terminal, nothing to recover
	}

	steps, err := s.client.FlowStepRun.Query().
		Where(flowsteprun.FlowRunIDEQ(flowRunID)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to roll up step usage: %w", err)
	}
	var tokens int
	var cost float64
	for _, st := range steps {
		tokens += st.TokensUsed
		cost += st.CostEstimate
	}

	elapsed := 0
	if fr.StartedAt != nil {
		elapsed = int(time.Since(*fr.StartedAt).Milliseconds())
	}

	return s.FailFlowRun(ctx, flowRunID, errorMessage, flow.FlowTermination{
		TotalTokens:     tokens,
		TotalCost:       cost,
		ExecutionTimeMS: elapsed,
	})
}

// notStartable explains why a conditional start missed.
func (s *FlowRunService) notStartable(ctx context.Context, flowRunID string) error {
	fr, err := s.client.FlowRun.Get(ctx, flowRunID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get flow run: %w", err)
	}
	return fmt.Errorf("flow run %s is %s, not pending: %w", flowRunID, fr.Status, ErrConcurrentModification)
}

// terminalConflict explains why a conditional terminal write missed.
func (s *FlowRunService) terminalConflict(ctx context.Context, flowRunID string) error {
	fr, err := s.client.FlowRun.Get(ctx, flowRunID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get flow run: %w", err)
	}
	return fmt.Errorf("flow run %s is already %s: %w", flowRunID, fr.Status, ErrConcurrentModification)
}

// executionMode maps the engine's mode string onto the column enum,
// defaulting to sync.
func executionMode(mode string) flowrun.ExecutionMode {
	if mode == flow.ModeBackground {
		return flowrun.ExecutionModeBackground
	}
	return flowrun.ExecutionModeSync
}
