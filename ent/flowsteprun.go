// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/brianfields/deeplearn-sub002/ent/flowrun"
	"github.com/brianfields/deeplearn-sub002/ent/flowsteprun"
)

// FlowStepRun is the model entity for the FlowStepRun schema.
type FlowStepRun struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// FlowRunID holds the value of the "flow_run_id" field.
	FlowRunID string `json:"flow_run_id,omitempty"`
	// StepName holds the value of the "step_name" field.
	StepName string `json:"step_name,omitempty"`
	// 1-based position within the flow
	StepOrder int `json:"step_order,omitempty"`
	// Status holds the value of the "status" field.
	Status flowsteprun.Status `json:"status,omitempty"`
	// Validated inputs the step executed with
	Inputs map[string]interface{} `json:"inputs,omitempty"`
	// Validated outputs, set on completion
	Outputs map[string]interface{} `json:"outputs,omitempty"`
	// e.g. child_flow_runs for fan-out steps
	StepMetadata map[string]interface{} `json:"step_metadata,omitempty"`
	// Sum over this step's LLM requests (children included for fan-out)
	TokensUsed int `json:"tokens_used,omitempty"`
	// CostEstimate holds the value of the "cost_estimate" field.
	CostEstimate float64 `json:"cost_estimate,omitempty"`
	// ExecutionTimeMs holds the value of the "execution_time_ms" field.
	ExecutionTimeMs *int `json:"execution_time_ms,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Set when the step made exactly one LLM call
	LlmRequestID *string `json:"llm_request_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FlowStepRunQuery when eager-loading is set.
	Edges        FlowStepRunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FlowStepRunEdges holds the relations/edges for other nodes in the graph.
type FlowStepRunEdges struct {
	// FlowRun holds the value of the flow_run edge.
	FlowRun *FlowRun `json:"flow_run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// FlowRunOrErr returns the FlowRun value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FlowStepRunEdges) FlowRunOrErr() (*FlowRun, error) {
	if e.FlowRun != nil {
		return e.FlowRun, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: flowrun.Label}
	}
	return nil, &NotLoadedError{edge: "flow_run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FlowStepRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case flowsteprun.FieldInputs, flowsteprun.FieldOutputs, flowsteprun.FieldStepMetadata:
			values[i] = new([]byte)
		case flowsteprun.FieldCostEstimate:
			values[i] = new(sql.NullFloat64)
		case flowsteprun.FieldStepOrder, flowsteprun.FieldTokensUsed, flowsteprun.FieldExecutionTimeMs:
			values[i] = new(sql.NullInt64)
		case flowsteprun.FieldID, flowsteprun.FieldFlowRunID, flowsteprun.FieldStepName, flowsteprun.FieldStatus, flowsteprun.FieldErrorMessage, flowsteprun.FieldLlmRequestID:
			values[i] = new(sql.NullString)
		case flowsteprun.FieldCreatedAt, flowsteprun.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FlowStepRun fields.
func (_m *FlowStepRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case flowsteprun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case flowsteprun.FieldFlowRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field flow_run_id", values[i])
			} else if value.Valid {
				_m.FlowRunID = value.String
			}
		case flowsteprun.FieldStepName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_name", values[i])
			} else if value.Valid {
				_m.StepName = value.String
			}
		case flowsteprun.FieldStepOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_order", values[i])
			} else if value.Valid {
				_m.StepOrder = int(value.Int64)
			}
		case flowsteprun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = flowsteprun.Status(value.String)
			}
		case flowsteprun.FieldInputs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field inputs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Inputs); err != nil {
					return fmt.Errorf("unmarshal field inputs: %w", err)
				}
			}
		case flowsteprun.FieldOutputs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field outputs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Outputs); err != nil {
					return fmt.Errorf("unmarshal field outputs: %w", err)
				}
			}
		case flowsteprun.FieldStepMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field step_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StepMetadata); err != nil {
					return fmt.Errorf("unmarshal field step_metadata: %w", err)
				}
			}
		case flowsteprun.FieldTokensUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_used", values[i])
			} else if value.Valid {
				_m.TokensUsed = int(value.Int64)
			}
		case flowsteprun.FieldCostEstimate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost_estimate", values[i])
			} else if value.Valid {
				_m.CostEstimate = value.Float64
			}
		case flowsteprun.FieldExecutionTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field execution_time_ms", values[i])
			} else if value.Valid {
				_m.ExecutionTimeMs = new(int)
				*_m.ExecutionTimeMs = int(value.Int64)
			}
		case flowsteprun.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case flowsteprun.FieldLlmRequestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field llm_request_id", values[i])
			} else if value.Valid {
				_m.LlmRequestID = new(string)
				*_m.LlmRequestID = value.String
			}
		case flowsteprun.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case flowsteprun.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FlowStepRun.
// This includes values selected through modifiers, order, etc.
func (_m *FlowStepRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFlowRun queries the "flow_run" edge of the FlowStepRun entity.
func (_m *FlowStepRun) QueryFlowRun() *FlowRunQuery {
	return NewFlowStepRunClient(_m.config).QueryFlowRun(_m)
}

// Update returns a builder for updating this FlowStepRun.
// Note that you need to call FlowStepRun.Unwrap() before calling this method if this FlowStepRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FlowStepRun) Update() *FlowStepRunUpdateOne {
	return NewFlowStepRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FlowStepRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FlowStepRun) Unwrap() *FlowStepRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FlowStepRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FlowStepRun) String() string {
	var builder strings.Builder
	builder.WriteString("FlowStepRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("flow_run_id=")
	builder.WriteString(_m.FlowRunID)
	builder.WriteString(", ")
	builder.WriteString("step_name=")
	builder.WriteString(_m.StepName)
	builder.WriteString(", ")
	builder.WriteString("step_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepOrder))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("inputs=")
	builder.WriteString(fmt.Sprintf("%v", _m.Inputs))
	builder.WriteString(", ")
	builder.WriteString("outputs=")
	builder.WriteString(fmt.Sprintf("%v", _m.Outputs))
	builder.WriteString(", ")
	builder.WriteString("step_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepMetadata))
	builder.WriteString(", ")
	builder.WriteString("tokens_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensUsed))
	builder.WriteString(", ")
	builder.WriteString("cost_estimate=")
	builder.WriteString(fmt.Sprintf("%v", _m.CostEstimate))
	builder.WriteString(", ")
	if v := _m.ExecutionTimeMs; v != nil {
		builder.WriteString("execution_time_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LlmRequestID; v != nil {
		builder.WriteString("llm_request_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// FlowStepRuns is a parsable slice of FlowStepRun.
type FlowStepRuns []*FlowStepRun
