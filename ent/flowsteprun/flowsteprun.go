// Code generated by ent, DO NOT EDIT.

package flowsteprun

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the flowsteprun type in the database.
	Label = "flow_step_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "step_run_id"
	// FieldFlowRunID holds the string denoting the flow_run_id field in the database.
	FieldFlowRunID = "flow_run_id"
	// FieldStepName holds the string denoting the step_name field in the database.
	FieldStepName = "step_name"
	// FieldStepOrder holds the string denoting the step_order field in the database.
	FieldStepOrder = "step_order"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldInputs holds the string denoting the inputs field in the database.
	FieldInputs = "inputs"
	// FieldOutputs holds the string denoting the outputs field in the database.
	FieldOutputs = "outputs"
	// FieldStepMetadata holds the string denoting the step_metadata field in the database.
	FieldStepMetadata = "step_metadata"
	// FieldTokensUsed holds the string denoting the tokens_used field in the database.
	FieldTokensUsed = "tokens_used"
	// FieldCostEstimate holds the string denoting the cost_estimate field in the database.
	FieldCostEstimate = "cost_estimate"
	// FieldExecutionTimeMs holds the string denoting the execution_time_ms field in the database.
	FieldExecutionTimeMs = "execution_time_ms"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldLlmRequestID holds the string denoting the llm_request_id field in the database.
	FieldLlmRequestID = "llm_request_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeFlowRun holds the string denoting the flow_run edge name in mutations.
	EdgeFlowRun = "flow_run"
	// FlowRunFieldID holds the string denoting the ID field of the FlowRun.
	FlowRunFieldID = "flow_run_id"
	// Table holds the table name of the flowsteprun in the database.
	Table = "flow_step_runs"
	// FlowRunTable is the table that holds the flow_run relation/edge.
	FlowRunTable = "flow_step_runs"
	// FlowRunInverseTable is the table name for the FlowRun entity.
	// It exists in this package in order to avoid circular dependency with the "flowrun" package.
	FlowRunInverseTable = "flow_runs"
	// FlowRunColumn is the table column denoting the flow_run relation/edge.
	FlowRunColumn = "flow_run_id"
)

// Columns holds all SQL columns for flowsteprun fields.
var Columns = []string{
	FieldID,
	FieldFlowRunID,
	FieldStepName,
	FieldStepOrder,
	FieldStatus,
	FieldInputs,
	FieldOutputs,
	FieldStepMetadata,
	FieldTokensUsed,
	FieldCostEstimate,
	FieldExecutionTimeMs,
	FieldErrorMessage,
	FieldLlmRequestID,
	FieldCreatedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTokensUsed holds the default value on creation for the "tokens_used" field.
	DefaultTokensUsed int
	// DefaultCostEstimate holds the default value on creation for the "cost_estimate" field.
	DefaultCostEstimate float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusSkipped   Status = "skipped"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusCompleted, StatusFailed, StatusSkipped:
		return nil
	default:
		return fmt.Errorf("flowsteprun: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the FlowStepRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFlowRunID orders the results by the flow_run_id field.
func ByFlowRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlowRunID, opts...).ToFunc()
}

// ByStepName orders the results by the step_name field.
func ByStepName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepName, opts...).ToFunc()
}

// ByStepOrder orders the results by the step_order field.
func ByStepOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepOrder, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTokensUsed orders the results by the tokens_used field.
func ByTokensUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensUsed, opts...).ToFunc()
}

// ByCostEstimate orders the results by the cost_estimate field.
func ByCostEstimate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCostEstimate, opts...).ToFunc()
}

// ByExecutionTimeMs orders the results by the execution_time_ms field.
func ByExecutionTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionTimeMs, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByLlmRequestID orders the results by the llm_request_id field.
func ByLlmRequestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmRequestID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByFlowRunField orders the results by flow_run field.
func ByFlowRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFlowRunStep(), sql.OrderByField(field, opts...))
	}
}
func newFlowRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FlowRunInverseTable, FlowRunFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FlowRunTable, FlowRunColumn),
	)
}
