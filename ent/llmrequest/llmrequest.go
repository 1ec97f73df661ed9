// Code generated by ent, DO NOT EDIT.

package llmrequest

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the llmrequest type in the database.
	Label = "llm_request"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "llm_request_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldAPIVariant holds the string denoting the api_variant field in the database.
	FieldAPIVariant = "api_variant"
	// FieldMessages holds the string denoting the messages field in the database.
	FieldMessages = "messages"
	// FieldRequestPayload holds the string denoting the request_payload field in the database.
	FieldRequestPayload = "request_payload"
	// FieldTemperature holds the string denoting the temperature field in the database.
	FieldTemperature = "temperature"
	// FieldMaxOutputTokens holds the string denoting the max_output_tokens field in the database.
	FieldMaxOutputTokens = "max_output_tokens"
	// FieldResponseContent holds the string denoting the response_content field in the database.
	FieldResponseContent = "response_content"
	// FieldResponseRaw holds the string denoting the response_raw field in the database.
	FieldResponseRaw = "response_raw"
	// FieldProviderResponseID holds the string denoting the provider_response_id field in the database.
	FieldProviderResponseID = "provider_response_id"
	// FieldSystemFingerprint holds the string denoting the system_fingerprint field in the database.
	FieldSystemFingerprint = "system_fingerprint"
	// FieldInputTokens holds the string denoting the input_tokens field in the database.
	FieldInputTokens = "input_tokens"
	// FieldOutputTokens holds the string denoting the output_tokens field in the database.
	FieldOutputTokens = "output_tokens"
	// FieldTokensUsed holds the string denoting the tokens_used field in the database.
	FieldTokensUsed = "tokens_used"
	// FieldCostEstimate holds the string denoting the cost_estimate field in the database.
	FieldCostEstimate = "cost_estimate"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldErrorType holds the string denoting the error_type field in the database.
	FieldErrorType = "error_type"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldRetryAttempt holds the string denoting the retry_attempt field in the database.
	FieldRetryAttempt = "retry_attempt"
	// FieldCached holds the string denoting the cached field in the database.
	FieldCached = "cached"
	// FieldExecutionTimeMs holds the string denoting the execution_time_ms field in the database.
	FieldExecutionTimeMs = "execution_time_ms"
	// FieldFlowRunID holds the string denoting the flow_run_id field in the database.
	FieldFlowRunID = "flow_run_id"
	// FieldStepRunID holds the string denoting the step_run_id field in the database.
	FieldStepRunID = "step_run_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldResponseCreatedAt holds the string denoting the response_created_at field in the database.
	FieldResponseCreatedAt = "response_created_at"
	// Table holds the table name of the llmrequest in the database.
	Table = "llm_requests"
)

// Columns holds all SQL columns for llmrequest fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldProvider,
	FieldModel,
	FieldAPIVariant,
	FieldMessages,
	FieldRequestPayload,
	FieldTemperature,
	FieldMaxOutputTokens,
	FieldResponseContent,
	FieldResponseRaw,
	FieldProviderResponseID,
	FieldSystemFingerprint,
	FieldInputTokens,
	FieldOutputTokens,
	FieldTokensUsed,
	FieldCostEstimate,
	FieldStatus,
	FieldErrorType,
	FieldErrorMessage,
	FieldRetryAttempt,
	FieldCached,
	FieldExecutionTimeMs,
	FieldFlowRunID,
	FieldStepRunID,
	FieldCreatedAt,
	FieldResponseCreatedAt,
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
	// DefaultRetryAttempt holds the default value on creation for the "retry_attempt" field.
	DefaultRetryAttempt int
	// DefaultCached holds the default value on creation for the "cached" field.
	DefaultCached bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// APIVariant defines the type for the "api_variant" enum field.
type APIVariant string

// APIVariantChat is the default value of the APIVariant enum.
const DefaultAPIVariant = APIVariantChat

// APIVariant values.
const (
	APIVariantChat       APIVariant = "chat"
	APIVariantStructured APIVariant = "structured"
	APIVariantAudio      APIVariant = "audio"
	APIVariantImage      APIVariant = "image"
)

func (av APIVariant) String() string {
	return string(av)
}

// APIVariantValidator is a validator for the "api_variant" field enum values. It is called by the builders before save.
func APIVariantValidator(av APIVariant) error {
	switch av {
	case APIVariantChat, APIVariantStructured, APIVariantAudio, APIVariantImage:
		return nil
	default:
		return fmt.Errorf("llmrequest: invalid enum value for api_variant field: %q", av)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("llmrequest: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the LLMRequest queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByAPIVariant orders the results by the api_variant field.
func ByAPIVariant(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAPIVariant, opts...).ToFunc()
}

// ByTemperature orders the results by the temperature field.
func ByTemperature(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemperature, opts...).ToFunc()
}

// ByMaxOutputTokens orders the results by the max_output_tokens field.
func ByMaxOutputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxOutputTokens, opts...).ToFunc()
}

// ByResponseContent orders the results by the response_content field.
func ByResponseContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseContent, opts...).ToFunc()
}

// ByProviderResponseID orders the results by the provider_response_id field.
func ByProviderResponseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProviderResponseID, opts...).ToFunc()
}

// BySystemFingerprint orders the results by the system_fingerprint field.
func BySystemFingerprint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSystemFingerprint, opts...).ToFunc()
}

// ByInputTokens orders the results by the input_tokens field.
func ByInputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputTokens, opts...).ToFunc()
}

// ByOutputTokens orders the results by the output_tokens field.
func ByOutputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputTokens, opts...).ToFunc()
}

// ByTokensUsed orders the results by the tokens_used field.
func ByTokensUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensUsed, opts...).ToFunc()
}

// ByCostEstimate orders the results by the cost_estimate field.
func ByCostEstimate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCostEstimate, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorType orders the results by the error_type field.
func ByErrorType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorType, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByRetryAttempt orders the results by the retry_attempt field.
func ByRetryAttempt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryAttempt, opts...).ToFunc()
}

// ByCached orders the results by the cached field.
func ByCached(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCached, opts...).ToFunc()
}

// ByExecutionTimeMs orders the results by the execution_time_ms field.
func ByExecutionTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionTimeMs, opts...).ToFunc()
}

// ByFlowRunID orders the results by the flow_run_id field.
func ByFlowRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlowRunID, opts...).ToFunc()
}

// ByStepRunID orders the results by the step_run_id field.
func ByStepRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepRunID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByResponseCreatedAt orders the results by the response_created_at field.
func ByResponseCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseCreatedAt, opts...).ToFunc()
}
