// Code generated by ent, DO NOT EDIT.

package flowrun

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the flowrun type in the database.
	Label = "flow_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "flow_run_id"
	// FieldFlowName holds the string denoting the flow_name field in the database.
	FieldFlowName = "flow_name"
	// FieldExecutionMode holds the string denoting the execution_mode field in the database.
	FieldExecutionMode = "execution_mode"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldInputs holds the string denoting the inputs field in the database.
	FieldInputs = "inputs"
	// FieldOutputs holds the string denoting the outputs field in the database.
	FieldOutputs = "outputs"
	// FieldFlowMetadata holds the string denoting the flow_metadata field in the database.
	FieldFlowMetadata = "flow_metadata"
	// FieldCurrentStep holds the string denoting the current_step field in the database.
	FieldCurrentStep = "current_step"
	// FieldStepProgress holds the string denoting the step_progress field in the database.
	FieldStepProgress = "step_progress"
	// FieldTotalSteps holds the string denoting the total_steps field in the database.
	FieldTotalSteps = "total_steps"
	// FieldProgressPercentage holds the string denoting the progress_percentage field in the database.
	FieldProgressPercentage = "progress_percentage"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldLastHeartbeat holds the string denoting the last_heartbeat field in the database.
	FieldLastHeartbeat = "last_heartbeat"
	// FieldExecutionTimeMs holds the string denoting the execution_time_ms field in the database.
	FieldExecutionTimeMs = "execution_time_ms"
	// FieldTotalTokens holds the string denoting the total_tokens field in the database.
	FieldTotalTokens = "total_tokens"
	// FieldTotalCost holds the string denoting the total_cost field in the database.
	FieldTotalCost = "total_cost"
	// EdgeSteps holds the string denoting the steps edge name in mutations.
	EdgeSteps = "steps"
	// FlowStepRunFieldID holds the string denoting the ID field of the FlowStepRun.
	FlowStepRunFieldID = "step_run_id"
	// Table holds the table name of the flowrun in the database.
	Table = "flow_runs"
	// StepsTable is the table that holds the steps relation/edge.
	StepsTable = "flow_step_runs"
	// StepsInverseTable is the table name for the FlowStepRun entity.
	// It exists in this package in order to avoid circular dependency with the "flowsteprun" package.
	StepsInverseTable = "flow_step_runs"
	// StepsColumn is the table column denoting the steps relation/edge.
	StepsColumn = "flow_run_id"
)

// Columns holds all SQL columns for flowrun fields.
var Columns = []string{
	FieldID,
	FieldFlowName,
	FieldExecutionMode,
	FieldUserID,
	FieldStatus,
	FieldInputs,
	FieldOutputs,
	FieldFlowMetadata,
	FieldCurrentStep,
	FieldStepProgress,
	FieldTotalSteps,
	FieldProgressPercentage,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldLastHeartbeat,
	FieldExecutionTimeMs,
	FieldTotalTokens,
	FieldTotalCost,
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
	// DefaultStepProgress holds the default value on creation for the "step_progress" field.
	DefaultStepProgress int
	// DefaultTotalSteps holds the default value on creation for the "total_steps" field.
	DefaultTotalSteps int
	// DefaultProgressPercentage holds the default value on creation for the "progress_percentage" field.
	DefaultProgressPercentage float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultTotalTokens holds the default value on creation for the "total_tokens" field.
	DefaultTotalTokens int
	// DefaultTotalCost holds the default value on creation for the "total_cost" field.
	DefaultTotalCost float64
)

// ExecutionMode defines the type for the "execution_mode" enum field.
type ExecutionMode string

// ExecutionModeSync is the default value of the ExecutionMode enum.
const DefaultExecutionMode = ExecutionModeSync

// ExecutionMode values.
const (
	ExecutionModeSync       ExecutionMode = "sync"
	ExecutionModeBackground ExecutionMode = "background"
)

func (em ExecutionMode) String() string {
	return string(em)
}

// ExecutionModeValidator is a validator for the "execution_mode" field enum values. It is called by the builders before save.
func ExecutionModeValidator(em ExecutionMode) error {
	switch em {
	case ExecutionModeSync, ExecutionModeBackground:
		return nil
	default:
		return fmt.Errorf("flowrun: invalid enum value for execution_mode field: %q", em)
	}
}

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
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusCompleted, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("flowrun: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the FlowRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFlowName orders the results by the flow_name field.
func ByFlowName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlowName, opts...).ToFunc()
}

// ByExecutionMode orders the results by the execution_mode field.
func ByExecutionMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionMode, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCurrentStep orders the results by the current_step field.
func ByCurrentStep(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStep, opts...).ToFunc()
}

// ByStepProgress orders the results by the step_progress field.
func ByStepProgress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepProgress, opts...).ToFunc()
}

// ByTotalSteps orders the results by the total_steps field.
func ByTotalSteps(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalSteps, opts...).ToFunc()
}

// ByProgressPercentage orders the results by the progress_percentage field.
func ByProgressPercentage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgressPercentage, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByLastHeartbeat orders the results by the last_heartbeat field.
func ByLastHeartbeat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeat, opts...).ToFunc()
}

// ByExecutionTimeMs orders the results by the execution_time_ms field.
func ByExecutionTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionTimeMs, opts...).ToFunc()
}

// ByTotalTokens orders the results by the total_tokens field.
func ByTotalTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTokens, opts...).ToFunc()
}

// ByTotalCost orders the results by the total_cost field.
func ByTotalCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalCost, opts...).ToFunc()
}

// ByStepsCount orders the results by steps count.
func ByStepsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStepsStep(), opts...)
	}
}

// BySteps orders the results by steps terms.
func BySteps(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStepsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newStepsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StepsInverseTable, FlowStepRunFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
	)
}
