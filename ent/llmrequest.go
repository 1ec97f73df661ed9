// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/brianfields/deeplearn-sub002/ent/llmrequest"
	"github.com/brianfields/deeplearn-sub002/pkg/models"
)

// LLMRequest is the model entity for the LLMRequest schema.
type LLMRequest struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID *string `json:"user_id,omitempty"`
	// e.g. 'openai'
	Provider string `json:"provider,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// APIVariant holds the value of the "api_variant" field.
	APIVariant llmrequest.APIVariant `json:"api_variant,omitempty"`
	// Conversation sent to the provider (chat/structured variants)
	Messages []models.ChatMessage `json:"messages,omitempty"`
	// Full request as sent, replayable
	RequestPayload map[string]interface{} `json:"request_payload,omitempty"`
	// Temperature holds the value of the "temperature" field.
	Temperature *float64 `json:"temperature,omitempty"`
	// MaxOutputTokens holds the value of the "max_output_tokens" field.
	MaxOutputTokens *int `json:"max_output_tokens,omitempty"`
	// Text content of the response, when textual
	ResponseContent *string `json:"response_content,omitempty"`
	// Raw provider response envelope
	ResponseRaw map[string]interface{} `json:"response_raw,omitempty"`
	// ProviderResponseID holds the value of the "provider_response_id" field.
	ProviderResponseID *string `json:"provider_response_id,omitempty"`
	// SystemFingerprint holds the value of the "system_fingerprint" field.
	SystemFingerprint *string `json:"system_fingerprint,omitempty"`
	// InputTokens holds the value of the "input_tokens" field.
	InputTokens *int `json:"input_tokens,omitempty"`
	// OutputTokens holds the value of the "output_tokens" field.
	OutputTokens *int `json:"output_tokens,omitempty"`
	// TokensUsed holds the value of the "tokens_used" field.
	TokensUsed int `json:"tokens_used,omitempty"`
	// Estimated USD from the static price table
	CostEstimate float64 `json:"cost_estimate,omitempty"`
	// Status holds the value of the "status" field.
	Status llmrequest.Status `json:"status,omitempty"`
	// timeout | rate_limited | transport_error | provider_error | invalid_response | validation_error | cancelled | internal_error
	ErrorType *string `json:"error_type,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Total attempts consumed, 1-based
	RetryAttempt int `json:"retry_attempt,omitempty"`
	// Response replayed from the in-process cache
	Cached bool `json:"cached,omitempty"`
	// ExecutionTimeMs holds the value of the "execution_time_ms" field.
	ExecutionTimeMs *int `json:"execution_time_ms,omitempty"`
	// FlowRunID holds the value of the "flow_run_id" field.
	FlowRunID *string `json:"flow_run_id,omitempty"`
	// StepRunID holds the value of the "step_run_id" field.
	StepRunID *string `json:"step_run_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ResponseCreatedAt holds the value of the "response_created_at" field.
	ResponseCreatedAt *time.Time `json:"response_created_at,omitempty"`
	selectValues      sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LLMRequest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case llmrequest.FieldMessages, llmrequest.FieldRequestPayload, llmrequest.FieldResponseRaw:
			values[i] = new([]byte)
		case llmrequest.FieldCached:
			values[i] = new(sql.NullBool)
		case llmrequest.FieldTemperature, llmrequest.FieldCostEstimate:
			values[i] = new(sql.NullFloat64)
		case llmrequest.FieldMaxOutputTokens, llmrequest.FieldInputTokens, llmrequest.FieldOutputTokens, llmrequest.FieldTokensUsed, llmrequest.FieldRetryAttempt, llmrequest.FieldExecutionTimeMs:
			values[i] = new(sql.NullInt64)
		case llmrequest.FieldID, llmrequest.FieldUserID, llmrequest.FieldProvider, llmrequest.FieldModel, llmrequest.FieldAPIVariant, llmrequest.FieldResponseContent, llmrequest.FieldProviderResponseID, llmrequest.FieldSystemFingerprint, llmrequest.FieldStatus, llmrequest.FieldErrorType, llmrequest.FieldErrorMessage, llmrequest.FieldFlowRunID, llmrequest.FieldStepRunID:
			values[i] = new(sql.NullString)
		case llmrequest.FieldCreatedAt, llmrequest.FieldResponseCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LLMRequest fields.
func (_m *LLMRequest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case llmrequest.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case llmrequest.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = new(string)
				*_m.UserID = value.String
			}
		case llmrequest.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case llmrequest.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case llmrequest.FieldAPIVariant:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field api_variant", values[i])
			} else if value.Valid {
				_m.APIVariant = llmrequest.APIVariant(value.String)
			}
		case llmrequest.FieldMessages:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field messages", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Messages); err != nil {
					return fmt.Errorf("unmarshal field messages: %w", err)
				}
			}
		case llmrequest.FieldRequestPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field request_payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RequestPayload); err != nil {
					return fmt.Errorf("unmarshal field request_payload: %w", err)
				}
			}
		case llmrequest.FieldTemperature:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field temperature", values[i])
			} else if value.Valid {
				_m.Temperature = new(float64)
				*_m.Temperature = value.Float64
			}
		case llmrequest.FieldMaxOutputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_output_tokens", values[i])
			} else if value.Valid {
				_m.MaxOutputTokens = new(int)
				*_m.MaxOutputTokens = int(value.Int64)
			}
		case llmrequest.FieldResponseContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field response_content", values[i])
			} else if value.Valid {
				_m.ResponseContent = new(string)
				*_m.ResponseContent = value.String
			}
		case llmrequest.FieldResponseRaw:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field response_raw", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResponseRaw); err != nil {
					return fmt.Errorf("unmarshal field response_raw: %w", err)
				}
			}
		case llmrequest.FieldProviderResponseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider_response_id", values[i])
			} else if value.Valid {
				_m.ProviderResponseID = new(string)
				*_m.ProviderResponseID = value.String
			}
		case llmrequest.FieldSystemFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field system_fingerprint", values[i])
			} else if value.Valid {
				_m.SystemFingerprint = new(string)
				*_m.SystemFingerprint = value.String
			}
		case llmrequest.FieldInputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field input_tokens", values[i])
			} else if value.Valid {
				_m.InputTokens = new(int)
				*_m.InputTokens = int(value.Int64)
			}
		case llmrequest.FieldOutputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field output_tokens", values[i])
			} else if value.Valid {
				_m.OutputTokens = new(int)
				*_m.OutputTokens = int(value.Int64)
			}
		case llmrequest.FieldTokensUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_used", values[i])
			} else if value.Valid {
				_m.TokensUsed = int(value.Int64)
			}
		case llmrequest.FieldCostEstimate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost_estimate", values[i])
			} else if value.Valid {
				_m.CostEstimate = value.Float64
			}
		case llmrequest.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = llmrequest.Status(value.String)
			}
		case llmrequest.FieldErrorType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_type", values[i])
			} else if value.Valid {
				_m.ErrorType = new(string)
				*_m.ErrorType = value.String
			}
		case llmrequest.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case llmrequest.FieldRetryAttempt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_attempt", values[i])
			} else if value.Valid {
				_m.RetryAttempt = int(value.Int64)
			}
		case llmrequest.FieldCached:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field cached", values[i])
			} else if value.Valid {
				_m.Cached = value.Bool
			}
		case llmrequest.FieldExecutionTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field execution_time_ms", values[i])
			} else if value.Valid {
				_m.ExecutionTimeMs = new(int)
				*_m.ExecutionTimeMs = int(value.Int64)
			}
		case llmrequest.FieldFlowRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field flow_run_id", values[i])
			} else if value.Valid {
				_m.FlowRunID = new(string)
				*_m.FlowRunID = value.String
			}
		case llmrequest.FieldStepRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_run_id", values[i])
			} else if value.Valid {
				_m.StepRunID = new(string)
				*_m.StepRunID = value.String
			}
		case llmrequest.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case llmrequest.FieldResponseCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field response_created_at", values[i])
			} else if value.Valid {
				_m.ResponseCreatedAt = new(time.Time)
				*_m.ResponseCreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LLMRequest.
// This includes values selected through modifiers, order, etc.
func (_m *LLMRequest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LLMRequest.
// Note that you need to call LLMRequest.Unwrap() before calling this method if this LLMRequest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LLMRequest) Update() *LLMRequestUpdateOne {
	return NewLLMRequestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LLMRequest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LLMRequest) Unwrap() *LLMRequest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LLMRequest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LLMRequest) String() string {
	var builder strings.Builder
	builder.WriteString("LLMRequest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.UserID; v != nil {
		builder.WriteString("user_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(_m.Provider)
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("api_variant=")
	builder.WriteString(fmt.Sprintf("%v", _m.APIVariant))
	builder.WriteString(", ")
	builder.WriteString("messages=")
	builder.WriteString(fmt.Sprintf("%v", _m.Messages))
	builder.WriteString(", ")
	builder.WriteString("request_payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestPayload))
	builder.WriteString(", ")
	if v := _m.Temperature; v != nil {
		builder.WriteString("temperature=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.MaxOutputTokens; v != nil {
		builder.WriteString("max_output_tokens=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ResponseContent; v != nil {
		builder.WriteString("response_content=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("response_raw=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseRaw))
	builder.WriteString(", ")
	if v := _m.ProviderResponseID; v != nil {
		builder.WriteString("provider_response_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SystemFingerprint; v != nil {
		builder.WriteString("system_fingerprint=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.InputTokens; v != nil {
		builder.WriteString("input_tokens=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.OutputTokens; v != nil {
		builder.WriteString("output_tokens=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("tokens_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensUsed))
	builder.WriteString(", ")
	builder.WriteString("cost_estimate=")
	builder.WriteString(fmt.Sprintf("%v", _m.CostEstimate))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ErrorType; v != nil {
		builder.WriteString("error_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("retry_attempt=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryAttempt))
	builder.WriteString(", ")
	builder.WriteString("cached=")
	builder.WriteString(fmt.Sprintf("%v", _m.Cached))
	builder.WriteString(", ")
	if v := _m.ExecutionTimeMs; v != nil {
		builder.WriteString("execution_time_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.FlowRunID; v != nil {
		builder.WriteString("flow_run_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.StepRunID; v != nil {
		builder.WriteString("step_run_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ResponseCreatedAt; v != nil {
		builder.WriteString("response_created_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// LLMRequests is a parsable slice of LLMRequest.
type LLMRequests []*LLMRequest
