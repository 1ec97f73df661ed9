package flow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/brianfields/deeplearn-sub002/pkg/llm"
	"github.com/brianfields/deeplearn-sub002/pkg/objectstore"
)

// Inputs is a step's typed, validated input struct.
type Inputs interface {
	Validate() error
}

// Outputs is a step's typed, validated output struct.
type Outputs interface {
	Validate() error
}

// Step is one unit of work in a flow. Implementations are stateless; all
// per-execution state arrives through the flow context and StepContext.
type Step interface {
	// Name is the stable step name recorded on the step row.
	Name() string

	// BindInputs extracts this step's typed inputs from the flow context.
	// Missing or ill-typed keys return a *ValidationError naming the key;
	// the step is never executed and no LLM call is made.
	BindInputs(fc *Context) (Inputs, error)

	// Execute runs the step body.
	Execute(ctx context.Context, sc *StepContext, in Inputs) (*StepResult, error)
}

// StepResult is what a successful Execute returns.
type StepResult struct {
	// Outputs is persisted on the step row after validation.
	Outputs Outputs

	// Writes are context updates for later steps. Nil defaults to
	// {step_name: outputs}.
	Writes map[string]any

	// Metadata is persisted as step_metadata (e.g. child_flow_runs for
	// fan-out steps).
	Metadata map[string]any

	// ChildTokens/ChildCost attribute child flow usage to this step on top
	// of its own llm_requests roll-up. Set by fan-out steps so parent
	// totals include children.
	ChildTokens int
	ChildCost   float64
}

// LLMGateway is the slice of the LLM gateway available to steps.
// Satisfied by *llm.Gateway.
type LLMGateway interface {
	GenerateResponse(ctx context.Context, req llm.Request) (*llm.Response, error)
	GenerateStructured(ctx context.Context, req llm.Request, schema *llm.ResponseSchema, out any) (*llm.StructuredResult, error)
	GenerateAudio(ctx context.Context, req llm.AudioRequest) (*llm.AudioResult, error)
	GenerateImage(ctx context.Context, req llm.ImageRequest) (*llm.ImageResult, error)
}

// StepContext carries the per-execution handles a step body may use: the
// LLM gateway, the object store, and a logger pre-tagged with flow and step
// ids.
type StepContext struct {
	FlowRunID string
	StepRunID string
	UserID    string

	LLM     LLMGateway
	Objects objectstore.Store
	Logger  *slog.Logger
}

// Scope stamps this step's ids onto an LLM call so the audit trail ties the
// request back to the flow.
func (sc *StepContext) Scope() llm.Scope {
	return llm.Scope{
		UserID:    sc.UserID,
		FlowRunID: sc.FlowRunID,
		StepRunID: sc.StepRunID,
	}
}

// ValidationError reports a missing or ill-typed flow context key.
type ValidationError struct {
	Key     string
	Message string
}

// NewValidationError creates a ValidationError for key.
func NewValidationError(key, message string) *ValidationError {
	return &ValidationError{Key: key, Message: message}
}

// Error returns the formatted message.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Key, e.Message)
}
