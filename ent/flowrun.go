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
)

// FlowRun is the model entity for the FlowRun schema.
type FlowRun struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// e.g. 'unit_creation', 'lesson_creation'
	FlowName string `json:"flow_name,omitempty"`
	// ExecutionMode holds the value of the "execution_mode" field.
	ExecutionMode flowrun.ExecutionMode `json:"execution_mode,omitempty"`
	// Recorded for attribution, never enforced
	UserID *string `json:"user_id,omitempty"`
	// Status holds the value of the "status" field.
	Status flowrun.Status `json:"status,omitempty"`
	// Seed values for the flow context
	Inputs map[string]interface{} `json:"inputs,omitempty"`
	// Final outputs, set on completion
	Outputs map[string]interface{} `json:"outputs,omitempty"`
	// Domain tags, e.g. unit_id, lesson_title, parent_flow_run_id
	FlowMetadata map[string]interface{} `json:"flow_metadata,omitempty"`
	// Name of the step currently executing
	CurrentStep *string `json:"current_step,omitempty"`
	// Completed step count
	StepProgress int `json:"step_progress,omitempty"`
	// TotalSteps holds the value of the "total_steps" field.
	TotalSteps int `json:"total_steps,omitempty"`
	// ProgressPercentage holds the value of the "progress_percentage" field.
	ProgressPercentage float64 `json:"progress_percentage,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Stamped periodically while running; stall detection input
	LastHeartbeat *time.Time `json:"last_heartbeat,omitempty"`
	// ExecutionTimeMs holds the value of the "execution_time_ms" field.
	ExecutionTimeMs *int `json:"execution_time_ms,omitempty"`
	// Roll-up over step rows, children included
	TotalTokens int `json:"total_tokens,omitempty"`
	// Estimated USD roll-up over step rows, children included
	TotalCost float64 `json:"total_cost,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FlowRunQuery when eager-loading is set.
	Edges        FlowRunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FlowRunEdges holds the relations/edges for other nodes in the graph.
type FlowRunEdges struct {
	// Steps holds the value of the steps edge.
	Steps []*FlowStepRun `json:"steps,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// StepsOrErr returns the Steps value or an error if the edge
// was not loaded in eager-loading.
func (e FlowRunEdges) StepsOrErr() ([]*FlowStepRun, error) {
	if e.loadedTypes[0] {
		return e.Steps, nil
	}
	return nil, &NotLoadedError{edge: "steps"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FlowRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case flowrun.FieldInputs, flowrun.FieldOutputs, flowrun.FieldFlowMetadata:
			values[i] = new([]byte)
		case flowrun.FieldProgressPercentage, flowrun.FieldTotalCost:
			values[i] = new(sql.NullFloat64)
		case flowrun.FieldStepProgress, flowrun.FieldTotalSteps, flowrun.FieldExecutionTimeMs, flowrun.FieldTotalTokens:
			values[i] = new(sql.NullInt64)
		case flowrun.FieldID, flowrun.FieldFlowName, flowrun.FieldExecutionMode, flowrun.FieldUserID, flowrun.FieldStatus, flowrun.FieldCurrentStep, flowrun.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case flowrun.FieldCreatedAt, flowrun.FieldStartedAt, flowrun.FieldCompletedAt, flowrun.FieldLastHeartbeat:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FlowRun fields.
func (_m *FlowRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case flowrun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case flowrun.FieldFlowName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field flow_name", values[i])
			} else if value.Valid {
				_m.FlowName = value.String
			}
		case flowrun.FieldExecutionMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field execution_mode", values[i])
			} else if value.Valid {
				_m.ExecutionMode = flowrun.ExecutionMode(value.String)
			}
		case flowrun.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = new(string)
				*_m.UserID = value.String
			}
		case flowrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = flowrun.Status(value.String)
			}
		case flowrun.FieldInputs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field inputs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Inputs); err != nil {
					return fmt.Errorf("unmarshal field inputs: %w", err)
				}
			}
		case flowrun.FieldOutputs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field outputs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Outputs); err != nil {
					return fmt.Errorf("unmarshal field outputs: %w", err)
				}
			}
		case flowrun.FieldFlowMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field flow_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FlowMetadata); err != nil {
					return fmt.Errorf("unmarshal field flow_metadata: %w", err)
				}
			}
		case flowrun.FieldCurrentStep:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_step", values[i])
			} else if value.Valid {
				_m.CurrentStep = new(string)
				*_m.CurrentStep = value.String
			}
		case flowrun.FieldStepProgress:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_progress", values[i])
			} else if value.Valid {
				_m.StepProgress = int(value.Int64)
			}
		case flowrun.FieldTotalSteps:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_steps", values[i])
			} else if value.Valid {
				_m.TotalSteps = int(value.Int64)
			}
		case flowrun.FieldProgressPercentage:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field progress_percentage", values[i])
			} else if value.Valid {
				_m.ProgressPercentage = value.Float64
			}
		case flowrun.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case flowrun.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case flowrun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case flowrun.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case flowrun.FieldLastHeartbeat:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat", values[i])
			} else if value.Valid {
				_m.LastHeartbeat = new(time.Time)
				*_m.LastHeartbeat = value.Time
			}
		case flowrun.FieldExecutionTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field execution_time_ms", values[i])
			} else if value.Valid {
				_m.ExecutionTimeMs = new(int)
				*_m.ExecutionTimeMs = int(value.Int64)
			}
		case flowrun.FieldTotalTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_tokens", values[i])
			} else if value.Valid {
				_m.TotalTokens = int(value.Int64)
			}
		case flowrun.FieldTotalCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_cost", values[i])
			} else if value.Valid {
				_m.TotalCost = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FlowRun.
// This includes values selected through modifiers, order, etc.
func (_m *FlowRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySteps queries the "steps" edge of the FlowRun entity.
func (_m *FlowRun) QuerySteps() *FlowStepRunQuery {
	return NewFlowRunClient(_m.config).QuerySteps(_m)
}

// Update returns a builder for updating this FlowRun.
// Note that you need to call FlowRun.Unwrap() before calling this method if this FlowRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FlowRun) Update() *FlowRunUpdateOne {
	return NewFlowRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FlowRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FlowRun) Unwrap() *FlowRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FlowRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FlowRun) String() string {
	var builder strings.Builder
	builder.WriteString("FlowRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("flow_name=")
	builder.WriteString(_m.FlowName)
	builder.WriteString(", ")
	builder.WriteString("execution_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExecutionMode))
	builder.WriteString(", ")
	if v := _m.UserID; v != nil {
		builder.WriteString("user_id=")
		builder.WriteString(*v)
	}
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
	builder.WriteString("flow_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.FlowMetadata))
	builder.WriteString(", ")
	if v := _m.CurrentStep; v != nil {
		builder.WriteString("current_step=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("step_progress=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepProgress))
	builder.WriteString(", ")
	builder.WriteString("total_steps=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalSteps))
	builder.WriteString(", ")
	builder.WriteString("progress_percentage=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProgressPercentage))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeat; v != nil {
		builder.WriteString("last_heartbeat=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ExecutionTimeMs; v != nil {
		builder.WriteString("execution_time_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("total_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalTokens))
	builder.WriteString(", ")
	builder.WriteString("total_cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalCost))
	builder.WriteByte(')')
	return builder.String()
}

// FlowRuns is a parsable slice of FlowRun.
type FlowRuns []*FlowRun
