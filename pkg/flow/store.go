package flow

import (
	"context"
	"time"
)

// Store is the persistence seam of the engine. The services package provides
// the database-backed implementation; tests use an in-memory fake.
//
// Terminal methods are called with short-deadline background contexts so
// caller cancellation cannot lose a terminal row.
type Store interface {
	// CreateFlowRun creates a running flow_runs row and returns its id.
	CreateFlowRun(ctx context.Context, rec FlowRunRecord) (string, error)

	// StartFlowRun marks a pre-created row running and stamps started_at
	// and total_steps.
	StartFlowRun(ctx context.Context, flowRunID string, totalSteps int) error

	// UpdateFlowProgress records the step about to execute. Implementations
	// stamp last_heartbeat in the same write.
	UpdateFlowProgress(ctx context.Context, flowRunID string, p Progress) error

	// Heartbeat stamps last_heartbeat on a running flow.
	Heartbeat(ctx context.Context, flowRunID string, at time.Time) error

	// CompleteFlowRun marks the flow completed. Completed rows never
	// transition again.
	CompleteFlowRun(ctx context.Context, flowRunID string, rec FlowCompletion) error

	// FailFlowRun marks the flow failed, preserving partial progress.
	FailFlowRun(ctx context.Context, flowRunID string, errorMessage string, rec FlowTermination) error

	// CancelFlowRun marks the flow cancelled.
	CancelFlowRun(ctx context.Context, flowRunID string, rec FlowTermination) error

	// CreateStepRun creates a running flow_step_runs row and returns its id.
	CreateStepRun(ctx context.Context, rec StepRunRecord) (string, error)

	// CompleteStepRun marks the step completed.
	CompleteStepRun(ctx context.Context, stepRunID string, rec StepCompletion) error

	// FailStepRun marks the step failed.
	FailStepRun(ctx context.Context, stepRunID string, rec StepFailure) error

	// StepUsage reports the llm_requests roll-up for one step: token and
	// cost sums plus the request ids in creation order.
	StepUsage(ctx context.Context, stepRunID string) (*UsageRollup, error)
}

// FlowRunRecord describes a flow run to create.
type FlowRunRecord struct {
	FlowName      string
	ExecutionMode string
	UserID        string
	Inputs        map[string]any
	Metadata      map[string]any
	TotalSteps    int
}

// Progress is the per-step progress update written before a step executes.
type Progress struct {
	CurrentStep        string
	StepProgress       int
	ProgressPercentage float64
}

// FlowCompletion is the terminal record of a completed flow.
type FlowCompletion struct {
	Outputs         map[string]any
	TotalTokens     int
	TotalCost       float64
	ExecutionTimeMS int
}

// FlowTermination carries the roll-ups preserved on failed/cancelled flows.
type FlowTermination struct {
	TotalTokens     int
	TotalCost       float64
	ExecutionTimeMS int
}

// StepRunRecord describes a step run to create. Inputs is nil when input
// binding failed; the row still exists to carry the validation error.
type StepRunRecord struct {
	FlowRunID string
	StepName  string
	StepOrder int
	Inputs    map[string]any
}

// StepCompletion is the terminal record of a completed step.
type StepCompletion struct {
	Outputs         map[string]any
	Metadata        map[string]any
	TokensUsed      int
	CostEstimate    float64
	ExecutionTimeMS int

	// LLMRequestID is set when the step made exactly one LLM call.
	LLMRequestID string
}

// StepFailure is the terminal record of a failed step.
type StepFailure struct {
	ErrorMessage    string
	Metadata        map[string]any
	TokensUsed      int
	CostEstimate    float64
	ExecutionTimeMS int
}

// UsageRollup aggregates a step's llm_requests rows.
type UsageRollup struct {
	Tokens     int
	Cost       float64
	RequestIDs []string
}
