// Code generated by ent, DO NOT EDIT.

package llmrequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/brianfields/deeplearn-sub002/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldUserID, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldProvider, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldModel, v))
}

// Temperature applies equality check predicate on the "temperature" field. It's identical to TemperatureEQ.
func Temperature(v float64) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldTemperature, v))
}

// MaxOutputTokens applies equality check predicate on the "max_output_tokens" field. It's identical to MaxOutputTokensEQ.
func MaxOutputTokens(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldMaxOutputTokens, v))
}

// ResponseContent applies equality check predicate on the "response_content" field. It's identical to ResponseContentEQ.
func ResponseContent(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldResponseContent, v))
}

// ProviderResponseID applies equality check predicate on the "provider_response_id" field. It's identical to ProviderResponseIDEQ.
func ProviderResponseID(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldProviderResponseID, v))
}

// SystemFingerprint applies equality check predicate on the "system_fingerprint" field. It's identical to SystemFingerprintEQ.
func SystemFingerprint(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldSystemFingerprint, v))
}

// InputTokens applies equality check predicate on the "input_tokens" field. It's identical to InputTokensEQ.
func InputTokens(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldInputTokens, v))
}

// OutputTokens applies equality check predicate on the "output_tokens" field. It's identical to OutputTokensEQ.
func OutputTokens(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldOutputTokens, v))
}

// TokensUsed applies equality check predicate on the "tokens_used" field. It's identical to TokensUsedEQ.
func TokensUsed(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldTokensUsed, v))
}

// CostEstimate applies equality check predicate on the "cost_estimate" field. It's identical to CostEstimateEQ.
func CostEstimate(v float64) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldCostEstimate, v))
}

// ErrorType applies equality check predicate on the "error_type" field. It's identical to ErrorTypeEQ.
func ErrorType(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldErrorType, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldErrorMessage, v))
}

// RetryAttempt applies equality check predicate on the "retry_attempt" field. It's identical to RetryAttemptEQ.
func RetryAttempt(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldRetryAttempt, v))
}

// Cached applies equality check predicate on the "cached" field. It's identical to CachedEQ.
func Cached(v bool) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldCached, v))
}

// ExecutionTimeMs applies equality check predicate on the "execution_time_ms" field. It's identical to ExecutionTimeMsEQ.
func ExecutionTimeMs(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldExecutionTimeMs, v))
}

// FlowRunID applies equality check predicate on the "flow_run_id" field. It's identical to FlowRunIDEQ.
func FlowRunID(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldFlowRunID, v))
}

// StepRunID applies equality check predicate on the "step_run_id" field. It's identical to StepRunIDEQ.
func StepRunID(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldStepRunID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// ResponseCreatedAt applies equality check predicate on the "response_created_at" field. It's identical to ResponseCreatedAtEQ.
func ResponseCreatedAt(v time.Time) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldResponseCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldContainsFold(FieldUserID, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldContainsFold(FieldProvider, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldContainsFold(FieldModel, v))
}

// APIVariantEQ applies the EQ predicate on the "api_variant" field.
func APIVariantEQ(v APIVariant) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldAPIVariant, v))
}

// APIVariantNEQ applies the NEQ predicate on the "api_variant" field.
func APIVariantNEQ(v APIVariant) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNEQ(FieldAPIVariant, v))
}

// APIVariantIn applies the In predicate on the "api_variant" field.
func APIVariantIn(vs ...APIVariant) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldIn(FieldAPIVariant, vs...))
}

// APIVariantNotIn applies the NotIn predicate on the "api_variant" field.
func APIVariantNotIn(vs ...APIVariant) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNotIn(FieldAPIVariant, vs...))
}

// MessagesIsNil applies the IsNil predicate on the "messages" field.
func MessagesIsNil() predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldIsNull(FieldMessages))
}

// MessagesNotNil applies the NotNil predicate on the "messages" field.
func MessagesNotNil() predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNotNull(FieldMessages))
}

// RequestPayloadIsNil applies the IsNil predicate on the "request_payload" field.
func RequestPayloadIsNil() predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldIsNull(FieldRequestPayload))
}

// RequestPayloadNotNil applies the NotNil predicate on the "request_payload" field.
func RequestPayloadNotNil() predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNotNull(FieldRequestPayload))
}

// TemperatureEQ applies the EQ predicate on the "temperature" field.
func TemperatureEQ(v float64) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldTemperature, v))
}

// TemperatureNEQ applies the NEQ predicate on the "temperature" field.
func TemperatureNEQ(v float64) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNEQ(FieldTemperature, v))
}

// TemperatureIn applies the In predicate on the "temperature" field.
func TemperatureIn(vs ...float64) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldIn(FieldTemperature, vs...))
}

// TemperatureNotIn applies the NotIn predicate on the "temperature" field.
func TemperatureNotIn(vs ...float64) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNotIn(FieldTemperature, vs...))
}

// TemperatureGT applies the GT predicate on the "temperature" field.
func TemperatureGT(v float64) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGT(FieldTemperature, v))
}

// TemperatureGTE applies the GTE predicate on the "temperature" field.
func TemperatureGTE(v float64) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGTE(FieldTemperature, v))
}

// TemperatureLT applies the LT predicate on the "temperature" field.
func TemperatureLT(v float64) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLT(FieldTemperature, v))
}

// TemperatureLTE applies the LTE predicate on the "temperature" field.
func TemperatureLTE(v float64) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLTE(FieldTemperature, v))
}

// TemperatureIsNil applies the IsNil predicate on the "temperature" field.
func TemperatureIsNil() predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldIsNull(FieldTemperature))
}

// TemperatureNotNil applies the NotNil predicate on the "temperature" field.
func TemperatureNotNil() predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNotNull(FieldTemperature))
}

// MaxOutputTokensEQ applies the EQ predicate on the "max_output_tokens" field.
func MaxOutputTokensEQ(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldMaxOutputTokens, v))
}

// MaxOutputTokensNEQ applies the NEQ predicate on the "max_output_tokens" field.
func MaxOutputTokensNEQ(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNEQ(FieldMaxOutputTokens, v))
}

// MaxOutputTokensIn applies the In predicate on the "max_output_tokens" field.
func MaxOutputTokensIn(vs ...int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldIn(FieldMaxOutputTokens, vs...))
}

// MaxOutputTokensNotIn applies the NotIn predicate on the "max_output_tokens" field.
func MaxOutputTokensNotIn(vs ...int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNotIn(FieldMaxOutputTokens, vs...))
}

// MaxOutputTokensGT applies the GT predicate on the "max_output_tokens" field.
func MaxOutputTokensGT(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGT(FieldMaxOutputTokens, v))
}

// MaxOutputTokensGTE applies the GTE predicate on the "max_output_tokens" field.
func MaxOutputTokensGTE(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGTE(FieldMaxOutputTokens, v))
}

// MaxOutputTokensLT applies the LT predicate on the "max_output_tokens" field.
func MaxOutputTokensLT(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLT(FieldMaxOutputTokens, v))
}

// MaxOutputTokensLTE applies the LTE predicate on the "max_output_tokens" field.
func MaxOutputTokensLTE(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLTE(FieldMaxOutputTokens, v))
}

// MaxOutputTokensIsNil applies the IsNil predicate on the "max_output_tokens" field.
func MaxOutputTokensIsNil() predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldIsNull(FieldMaxOutputTokens))
}

// MaxOutputTokensNotNil applies the NotNil predicate on the "max_output_tokens" field.
func MaxOutputTokensNotNil() predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNotNull(FieldMaxOutputTokens))
}

// ResponseContentEQ applies the EQ predicate on the "response_content" field.
func ResponseContentEQ(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldResponseContent, v))
}

// ResponseContentNEQ applies the NEQ predicate on the "response_content" field.
func ResponseContentNEQ(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNEQ(FieldResponseContent, v))
}

// ResponseContentIn applies the In predicate on the "response_content" field.
func ResponseContentIn(vs ...string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldIn(FieldResponseContent, vs...))
}

// ResponseContentNotIn applies the NotIn predicate on the "response_content" field.
func ResponseContentNotIn(vs ...string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNotIn(FieldResponseContent, vs...))
}

// ResponseContentGT applies the GT predicate on the "response_content" field.
func ResponseContentGT(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGT(FieldResponseContent, v))
}

// ResponseContentGTE applies the GTE predicate on the "response_content" field.
func ResponseContentGTE(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGTE(FieldResponseContent, v))
}

// ResponseContentLT applies the LT predicate on the "response_content" field.
func ResponseContentLT(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLT(FieldResponseContent, v))
}

// ResponseContentLTE applies the LTE predicate on the "response_content" field.
func ResponseContentLTE(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLTE(FieldResponseContent, v))
}

// ResponseContentContains applies the Contains predicate on the "response_content" field.
func ResponseContentContains(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldContains(FieldResponseContent, v))
}

// ResponseContentHasPrefix applies the HasPrefix predicate on the "response_content" field.
func ResponseContentHasPrefix(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldHasPrefix(FieldResponseContent, v))
}

// ResponseContentHasSuffix applies the HasSuffix predicate on the "response_content" field.
func ResponseContentHasSuffix(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldHasSuffix(FieldResponseContent, v))
}

// ResponseContentIsNil applies the IsNil predicate on the "response_content" field.
func ResponseContentIsNil() predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldIsNull(FieldResponseContent))
}

// ResponseContentNotNil applies the NotNil predicate on the "response_content" field.
func ResponseContentNotNil() predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNotNull(FieldResponseContent))
}

// ResponseContentEqualFold applies the EqualFold predicate on the "response_content" field.
func ResponseContentEqualFold(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEqualFold(FieldResponseContent, v))
}

// ResponseContentContainsFold applies the ContainsFold predicate on the "response_content" field.
func ResponseContentContainsFold(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldContainsFold(FieldResponseContent, v))
}

// ResponseRawIsNil applies the IsNil predicate on the "response_raw" field.
func ResponseRawIsNil() predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldIsNull(FieldResponseRaw))
}

// ResponseRawNotNil applies the NotNil predicate on the "response_raw" field.
func ResponseRawNotNil() predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNotNull(FieldResponseRaw))
}

// ProviderResponseIDEQ applies the EQ predicate on the "provider_response_id" field.
func ProviderResponseIDEQ(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldProviderResponseID, v))
}

// ProviderResponseIDNEQ applies the NEQ predicate on the "provider_response_id" field.
func ProviderResponseIDNEQ(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNEQ(FieldProviderResponseID, v))
}

// ProviderResponseIDIn applies the In predicate on the "provider_response_id" field.
func ProviderResponseIDIn(vs ...string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldIn(FieldProviderResponseID, vs...))
}

// ProviderResponseIDNotIn applies the NotIn predicate on the "provider_response_id" field.
func ProviderResponseIDNotIn(vs ...string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNotIn(FieldProviderResponseID, vs...))
}

// ProviderResponseIDGT applies the GT predicate on the "provider_response_id" field.
func ProviderResponseIDGT(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGT(FieldProviderResponseID, v))
}

// ProviderResponseIDGTE applies the GTE predicate on the "provider_response_id" field.
func ProviderResponseIDGTE(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGTE(FieldProviderResponseID, v))
}

// ProviderResponseIDLT applies the LT predicate on the "provider_response_id" field.
func ProviderResponseIDLT(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLT(FieldProviderResponseID, v))
}

// ProviderResponseIDLTE applies the LTE predicate on the "provider_response_id" field.
func ProviderResponseIDLTE(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLTE(FieldProviderResponseID, v))
}

// ProviderResponseIDContains applies the Contains predicate on the "provider_response_id" field.
func ProviderResponseIDContains(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldContains(FieldProviderResponseID, v))
}

// ProviderResponseIDHasPrefix applies the HasPrefix predicate on the "provider_response_id" field.
func ProviderResponseIDHasPrefix(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldHasPrefix(FieldProviderResponseID, v))
}

// ProviderResponseIDHasSuffix applies the HasSuffix predicate on the "provider_response_id" field.
func ProviderResponseIDHasSuffix(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldHasSuffix(FieldProviderResponseID, v))
}

// ProviderResponseIDIsNil applies the IsNil predicate on the "provider_response_id" field.
func ProviderResponseIDIsNil() predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldIsNull(FieldProviderResponseID))
}

// ProviderResponseIDNotNil applies the NotNil predicate on the "provider_response_id" field.
func ProviderResponseIDNotNil() predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNotNull(FieldProviderResponseID))
}

// ProviderResponseIDEqualFold applies the EqualFold predicate on the "provider_response_id" field.
func ProviderResponseIDEqualFold(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEqualFold(FieldProviderResponseID, v))
}

// ProviderResponseIDContainsFold applies the ContainsFold predicate on the "provider_response_id" field.
func ProviderResponseIDContainsFold(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldContainsFold(FieldProviderResponseID, v))
}

// SystemFingerprintEQ applies the EQ predicate on the "system_fingerprint" field.
func SystemFingerprintEQ(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldSystemFingerprint, v))
}

// SystemFingerprintNEQ applies the NEQ predicate on the "system_fingerprint" field.
func SystemFingerprintNEQ(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNEQ(FieldSystemFingerprint, v))
}

// SystemFingerprintIn applies the In predicate on the "system_fingerprint" field.
func SystemFingerprintIn(vs ...string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldIn(FieldSystemFingerprint, vs...))
}

// SystemFingerprintNotIn applies the NotIn predicate on the "system_fingerprint" field.
func SystemFingerprintNotIn(vs ...string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNotIn(FieldSystemFingerprint, vs...))
}

// SystemFingerprintGT applies the GT predicate on the "system_fingerprint" field.
func SystemFingerprintGT(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGT(FieldSystemFingerprint, v))
}

// SystemFingerprintGTE applies the GTE predicate on the "system_fingerprint" field.
func SystemFingerprintGTE(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGTE(FieldSystemFingerprint, v))
}

// SystemFingerprintLT applies the LT predicate on the "system_fingerprint" field.
func SystemFingerprintLT(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLT(FieldSystemFingerprint, v))
}

// SystemFingerprintLTE applies the LTE predicate on the "system_fingerprint" field.
func SystemFingerprintLTE(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLTE(FieldSystemFingerprint, v))
}

// SystemFingerprintContains applies the Contains predicate on the "system_fingerprint" field.
func SystemFingerprintContains(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldContains(FieldSystemFingerprint, v))
}

// SystemFingerprintHasPrefix applies the HasPrefix predicate on the "system_fingerprint" field.
func SystemFingerprintHasPrefix(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldHasPrefix(FieldSystemFingerprint, v))
}

// SystemFingerprintHasSuffix applies the HasSuffix predicate on the "system_fingerprint" field.
func SystemFingerprintHasSuffix(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldHasSuffix(FieldSystemFingerprint, v))
}

// SystemFingerprintIsNil applies the IsNil predicate on the "system_fingerprint" field.
func SystemFingerprintIsNil() predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldIsNull(FieldSystemFingerprint))
}

// SystemFingerprintNotNil applies the NotNil predicate on the "system_fingerprint" field.
func SystemFingerprintNotNil() predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNotNull(FieldSystemFingerprint))
}

// SystemFingerprintEqualFold applies the EqualFold predicate on the "system_fingerprint" field.
func SystemFingerprintEqualFold(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEqualFold(FieldSystemFingerprint, v))
}

// SystemFingerprintContainsFold applies the ContainsFold predicate on the "system_fingerprint" field.
func SystemFingerprintContainsFold(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldContainsFold(FieldSystemFingerprint, v))
}

// InputTokensEQ applies the EQ predicate on the "input_tokens" field.
func InputTokensEQ(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldInputTokens, v))
}

// InputTokensNEQ applies the NEQ predicate on the "input_tokens" field.
func InputTokensNEQ(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNEQ(FieldInputTokens, v))
}

// InputTokensIn applies the In predicate on the "input_tokens" field.
func InputTokensIn(vs ...int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldIn(FieldInputTokens, vs...))
}

// InputTokensNotIn applies the NotIn predicate on the "input_tokens" field.
func InputTokensNotIn(vs ...int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNotIn(FieldInputTokens, vs...))
}

// InputTokensGT applies the GT predicate on the "input_tokens" field.
func InputTokensGT(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGT(FieldInputTokens, v))
}

// InputTokensGTE applies the GTE predicate on the "input_tokens" field.
func InputTokensGTE(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGTE(FieldInputTokens, v))
}

// InputTokensLT applies the LT predicate on the "input_tokens" field.
func InputTokensLT(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLT(FieldInputTokens, v))
}

// InputTokensLTE applies the LTE predicate on the "input_tokens" field.
func InputTokensLTE(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLTE(FieldInputTokens, v))
}

// InputTokensIsNil applies the IsNil predicate on the "input_tokens" field.
func InputTokensIsNil() predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldIsNull(FieldInputTokens))
}

// InputTokensNotNil applies the NotNil predicate on the "input_tokens" field.
func InputTokensNotNil() predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNotNull(FieldInputTokens))
}

// OutputTokensEQ applies the EQ predicate on the "output_tokens" field.
func OutputTokensEQ(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldOutputTokens, v))
}

// OutputTokensNEQ applies the NEQ predicate on the "output_tokens" field.
func OutputTokensNEQ(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNEQ(FieldOutputTokens, v))
}

// OutputTokensIn applies the In predicate on the "output_tokens" field.
func OutputTokensIn(vs ...int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldIn(FieldOutputTokens, vs...))
}

// OutputTokensNotIn applies the NotIn predicate on the "output_tokens" field.
func OutputTokensNotIn(vs ...int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNotIn(FieldOutputTokens, vs...))
}

// OutputTokensGT applies the GT predicate on the "output_tokens" field.
func OutputTokensGT(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGT(FieldOutputTokens, v))
}

// OutputTokensGTE applies the GTE predicate on the "output_tokens" field.
func OutputTokensGTE(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGTE(FieldOutputTokens, v))
}

// OutputTokensLT applies the LT predicate on the "output_tokens" field.
func OutputTokensLT(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLT(FieldOutputTokens, v))
}

// OutputTokensLTE applies the LTE predicate on the "output_tokens" field.
func OutputTokensLTE(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLTE(FieldOutputTokens, v))
}

// OutputTokensIsNil applies the IsNil predicate on the "output_tokens" field.
func OutputTokensIsNil() predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldIsNull(FieldOutputTokens))
}

// OutputTokensNotNil applies the NotNil predicate on the "output_tokens" field.
func OutputTokensNotNil() predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNotNull(FieldOutputTokens))
}

// TokensUsedEQ applies the EQ predicate on the "tokens_used" field.
func TokensUsedEQ(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldTokensUsed, v))
}

// TokensUsedNEQ applies the NEQ predicate on the "tokens_used" field.
func TokensUsedNEQ(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNEQ(FieldTokensUsed, v))
}

// TokensUsedIn applies the In predicate on the "tokens_used" field.
func TokensUsedIn(vs ...int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldIn(FieldTokensUsed, vs...))
}

// TokensUsedNotIn applies the NotIn predicate on the "tokens_used" field.
func TokensUsedNotIn(vs ...int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNotIn(FieldTokensUsed, vs...))
}

// TokensUsedGT applies the GT predicate on the "tokens_used" field.
func TokensUsedGT(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGT(FieldTokensUsed, v))
}

// TokensUsedGTE applies the GTE predicate on the "tokens_used" field.
func TokensUsedGTE(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGTE(FieldTokensUsed, v))
}

// TokensUsedLT applies the LT predicate on the "tokens_used" field.
func TokensUsedLT(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLT(FieldTokensUsed, v))
}

// TokensUsedLTE applies the LTE predicate on the "tokens_used" field.
func TokensUsedLTE(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLTE(FieldTokensUsed, v))
}

// CostEstimateEQ applies the EQ predicate on the "cost_estimate" field.
func CostEstimateEQ(v float64) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldCostEstimate, v))
}

// CostEstimateNEQ applies the NEQ predicate on the "cost_estimate" field.
func CostEstimateNEQ(v float64) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNEQ(FieldCostEstimate, v))
}

// CostEstimateIn applies the In predicate on the "cost_estimate" field.
func CostEstimateIn(vs ...float64) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldIn(FieldCostEstimate, vs...))
}

// CostEstimateNotIn applies the NotIn predicate on the "cost_estimate" field.
func CostEstimateNotIn(vs ...float64) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNotIn(FieldCostEstimate, vs...))
}

// CostEstimateGT applies the GT predicate on the "cost_estimate" field.
func CostEstimateGT(v float64) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGT(FieldCostEstimate, v))
}

// CostEstimateGTE applies the GTE predicate on the "cost_estimate" field.
func CostEstimateGTE(v float64) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGTE(FieldCostEstimate, v))
}

// CostEstimateLT applies the LT predicate on the "cost_estimate" field.
func CostEstimateLT(v float64) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLT(FieldCostEstimate, v))
}

// CostEstimateLTE applies the LTE predicate on the "cost_estimate" field.
func CostEstimateLTE(v float64) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLTE(FieldCostEstimate, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNotIn(FieldStatus, vs...))
}

// ErrorTypeEQ applies the EQ predicate on the "error_type" field.
func ErrorTypeEQ(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldErrorType, v))
}

// ErrorTypeNEQ applies the NEQ predicate on the "error_type" field.
func ErrorTypeNEQ(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNEQ(FieldErrorType, v))
}

// ErrorTypeIn applies the In predicate on the "error_type" field.
func ErrorTypeIn(vs ...string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldIn(FieldErrorType, vs...))
}

// ErrorTypeNotIn applies the NotIn predicate on the "error_type" field.
func ErrorTypeNotIn(vs ...string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNotIn(FieldErrorType, vs...))
}

// ErrorTypeGT applies the GT predicate on the "error_type" field.
func ErrorTypeGT(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGT(FieldErrorType, v))
}

// ErrorTypeGTE applies the GTE predicate on the "error_type" field.
func ErrorTypeGTE(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGTE(FieldErrorType, v))
}

// ErrorTypeLT applies the LT predicate on the "error_type" field.
func ErrorTypeLT(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLT(FieldErrorType, v))
}

// ErrorTypeLTE applies the LTE predicate on the "error_type" field.
func ErrorTypeLTE(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLTE(FieldErrorType, v))
}

// ErrorTypeContains applies the Contains predicate on the "error_type" field.
func ErrorTypeContains(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldContains(FieldErrorType, v))
}

// ErrorTypeHasPrefix applies the HasPrefix predicate on the "error_type" field.
func ErrorTypeHasPrefix(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldHasPrefix(FieldErrorType, v))
}

// ErrorTypeHasSuffix applies the HasSuffix predicate on the "error_type" field.
func ErrorTypeHasSuffix(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldHasSuffix(FieldErrorType, v))
}

// ErrorTypeIsNil applies the IsNil predicate on the "error_type" field.
func ErrorTypeIsNil() predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldIsNull(FieldErrorType))
}

// ErrorTypeNotNil applies the NotNil predicate on the "error_type" field.
func ErrorTypeNotNil() predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNotNull(FieldErrorType))
}

// ErrorTypeEqualFold applies the EqualFold predicate on the "error_type" field.
func ErrorTypeEqualFold(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEqualFold(FieldErrorType, v))
}

// ErrorTypeContainsFold applies the ContainsFold predicate on the "error_type" field.
func ErrorTypeContainsFold(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldContainsFold(FieldErrorType, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldContainsFold(FieldErrorMessage, v))
}

// RetryAttemptEQ applies the EQ predicate on the "retry_attempt" field.
func RetryAttemptEQ(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldRetryAttempt, v))
}

// RetryAttemptNEQ applies the NEQ predicate on the "retry_attempt" field.
func RetryAttemptNEQ(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNEQ(FieldRetryAttempt, v))
}

// RetryAttemptIn applies the In predicate on the "retry_attempt" field.
func RetryAttemptIn(vs ...int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldIn(FieldRetryAttempt, vs...))
}

// RetryAttemptNotIn applies the NotIn predicate on the "retry_attempt" field.
func RetryAttemptNotIn(vs ...int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNotIn(FieldRetryAttempt, vs...))
}

// RetryAttemptGT applies the GT predicate on the "retry_attempt" field.
func RetryAttemptGT(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGT(FieldRetryAttempt, v))
}

// RetryAttemptGTE applies the GTE predicate on the "retry_attempt" field.
func RetryAttemptGTE(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGTE(FieldRetryAttempt, v))
}

// RetryAttemptLT applies the LT predicate on the "retry_attempt" field.
func RetryAttemptLT(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLT(FieldRetryAttempt, v))
}

// RetryAttemptLTE applies the LTE predicate on the "retry_attempt" field.
func RetryAttemptLTE(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLTE(FieldRetryAttempt, v))
}

// CachedEQ applies the EQ predicate on the "cached" field.
func CachedEQ(v bool) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldCached, v))
}

// CachedNEQ applies the NEQ predicate on the "cached" field.
func CachedNEQ(v bool) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNEQ(FieldCached, v))
}

// ExecutionTimeMsEQ applies the EQ predicate on the "execution_time_ms" field.
func ExecutionTimeMsEQ(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsNEQ applies the NEQ predicate on the "execution_time_ms" field.
func ExecutionTimeMsNEQ(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNEQ(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsIn applies the In predicate on the "execution_time_ms" field.
func ExecutionTimeMsIn(vs ...int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldIn(FieldExecutionTimeMs, vs...))
}

// ExecutionTimeMsNotIn applies the NotIn predicate on the "execution_time_ms" field.
func ExecutionTimeMsNotIn(vs ...int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNotIn(FieldExecutionTimeMs, vs...))
}

// ExecutionTimeMsGT applies the GT predicate on the "execution_time_ms" field.
func ExecutionTimeMsGT(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGT(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsGTE applies the GTE predicate on the "execution_time_ms" field.
func ExecutionTimeMsGTE(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGTE(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsLT applies the LT predicate on the "execution_time_ms" field.
func ExecutionTimeMsLT(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLT(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsLTE applies the LTE predicate on the "execution_time_ms" field.
func ExecutionTimeMsLTE(v int) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLTE(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsIsNil applies the IsNil predicate on the "execution_time_ms" field.
func ExecutionTimeMsIsNil() predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldIsNull(FieldExecutionTimeMs))
}

// ExecutionTimeMsNotNil applies the NotNil predicate on the "execution_time_ms" field.
func ExecutionTimeMsNotNil() predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNotNull(FieldExecutionTimeMs))
}

// FlowRunIDEQ applies the EQ predicate on the "flow_run_id" field.
func FlowRunIDEQ(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldFlowRunID, v))
}

// FlowRunIDNEQ applies the NEQ predicate on the "flow_run_id" field.
func FlowRunIDNEQ(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNEQ(FieldFlowRunID, v))
}

// FlowRunIDIn applies the In predicate on the "flow_run_id" field.
func FlowRunIDIn(vs ...string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldIn(FieldFlowRunID, vs...))
}

// FlowRunIDNotIn applies the NotIn predicate on the "flow_run_id" field.
func FlowRunIDNotIn(vs ...string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNotIn(FieldFlowRunID, vs...))
}

// FlowRunIDGT applies the GT predicate on the "flow_run_id" field.
func FlowRunIDGT(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGT(FieldFlowRunID, v))
}

// FlowRunIDGTE applies the GTE predicate on the "flow_run_id" field.
func FlowRunIDGTE(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGTE(FieldFlowRunID, v))
}

// FlowRunIDLT applies the LT predicate on the "flow_run_id" field.
func FlowRunIDLT(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLT(FieldFlowRunID, v))
}

// FlowRunIDLTE applies the LTE predicate on the "flow_run_id" field.
func FlowRunIDLTE(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLTE(FieldFlowRunID, v))
}

// FlowRunIDContains applies the Contains predicate on the "flow_run_id" field.
func FlowRunIDContains(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldContains(FieldFlowRunID, v))
}

// FlowRunIDHasPrefix applies the HasPrefix predicate on the "flow_run_id" field.
func FlowRunIDHasPrefix(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldHasPrefix(FieldFlowRunID, v))
}

// FlowRunIDHasSuffix applies the HasSuffix predicate on the "flow_run_id" field.
func FlowRunIDHasSuffix(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldHasSuffix(FieldFlowRunID, v))
}

// FlowRunIDIsNil applies the IsNil predicate on the "flow_run_id" field.
func FlowRunIDIsNil() predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldIsNull(FieldFlowRunID))
}

// FlowRunIDNotNil applies the NotNil predicate on the "flow_run_id" field.
func FlowRunIDNotNil() predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNotNull(FieldFlowRunID))
}

// FlowRunIDEqualFold applies the EqualFold predicate on the "flow_run_id" field.
func FlowRunIDEqualFold(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEqualFold(FieldFlowRunID, v))
}

// FlowRunIDContainsFold applies the ContainsFold predicate on the "flow_run_id" field.
func FlowRunIDContainsFold(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldContainsFold(FieldFlowRunID, v))
}

// StepRunIDEQ applies the EQ predicate on the "step_run_id" field.
func StepRunIDEQ(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldStepRunID, v))
}

// StepRunIDNEQ applies the NEQ predicate on the "step_run_id" field.
func StepRunIDNEQ(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNEQ(FieldStepRunID, v))
}

// StepRunIDIn applies the In predicate on the "step_run_id" field.
func StepRunIDIn(vs ...string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldIn(FieldStepRunID, vs...))
}

// StepRunIDNotIn applies the NotIn predicate on the "step_run_id" field.
func StepRunIDNotIn(vs ...string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNotIn(FieldStepRunID, vs...))
}

// StepRunIDGT applies the GT predicate on the "step_run_id" field.
func StepRunIDGT(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGT(FieldStepRunID, v))
}

// StepRunIDGTE applies the GTE predicate on the "step_run_id" field.
func StepRunIDGTE(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGTE(FieldStepRunID, v))
}

// StepRunIDLT applies the LT predicate on the "step_run_id" field.
func StepRunIDLT(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLT(FieldStepRunID, v))
}

// StepRunIDLTE applies the LTE predicate on the "step_run_id" field.
func StepRunIDLTE(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLTE(FieldStepRunID, v))
}

// StepRunIDContains applies the Contains predicate on the "step_run_id" field.
func StepRunIDContains(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldContains(FieldStepRunID, v))
}

// StepRunIDHasPrefix applies the HasPrefix predicate on the "step_run_id" field.
func StepRunIDHasPrefix(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldHasPrefix(FieldStepRunID, v))
}

// StepRunIDHasSuffix applies the HasSuffix predicate on the "step_run_id" field.
func StepRunIDHasSuffix(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldHasSuffix(FieldStepRunID, v))
}

// StepRunIDIsNil applies the IsNil predicate on the "step_run_id" field.
func StepRunIDIsNil() predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldIsNull(FieldStepRunID))
}

// StepRunIDNotNil applies the NotNil predicate on the "step_run_id" field.
func StepRunIDNotNil() predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNotNull(FieldStepRunID))
}

// StepRunIDEqualFold applies the EqualFold predicate on the "step_run_id" field.
func StepRunIDEqualFold(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEqualFold(FieldStepRunID, v))
}

// StepRunIDContainsFold applies the ContainsFold predicate on the "step_run_id" field.
func StepRunIDContainsFold(v string) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldContainsFold(FieldStepRunID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLTE(FieldCreatedAt, v))
}

// ResponseCreatedAtEQ applies the EQ predicate on the "response_created_at" field.
func ResponseCreatedAtEQ(v time.Time) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldEQ(FieldResponseCreatedAt, v))
}

// ResponseCreatedAtNEQ applies the NEQ predicate on the "response_created_at" field.
func ResponseCreatedAtNEQ(v time.Time) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNEQ(FieldResponseCreatedAt, v))
}

// ResponseCreatedAtIn applies the In predicate on the "response_created_at" field.
func ResponseCreatedAtIn(vs ...time.Time) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldIn(FieldResponseCreatedAt, vs...))
}

// ResponseCreatedAtNotIn applies the NotIn predicate on the "response_created_at" field.
func ResponseCreatedAtNotIn(vs ...time.Time) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNotIn(FieldResponseCreatedAt, vs...))
}

// ResponseCreatedAtGT applies the GT predicate on the "response_created_at" field.
func ResponseCreatedAtGT(v time.Time) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGT(FieldResponseCreatedAt, v))
}

// ResponseCreatedAtGTE applies the GTE predicate on the "response_created_at" field.
func ResponseCreatedAtGTE(v time.Time) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldGTE(FieldResponseCreatedAt, v))
}

// ResponseCreatedAtLT applies the LT predicate on the "response_created_at" field.
func ResponseCreatedAtLT(v time.Time) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLT(FieldResponseCreatedAt, v))
}

// ResponseCreatedAtLTE applies the LTE predicate on the "response_created_at" field.
func ResponseCreatedAtLTE(v time.Time) predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldLTE(FieldResponseCreatedAt, v))
}

// ResponseCreatedAtIsNil applies the IsNil predicate on the "response_created_at" field.
func ResponseCreatedAtIsNil() predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldIsNull(FieldResponseCreatedAt))
}

// ResponseCreatedAtNotNil applies the NotNil predicate on the "response_created_at" field.
func ResponseCreatedAtNotNil() predicate.LLMRequest {
	return predicate.LLMRequest(sql.FieldNotNull(FieldResponseCreatedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LLMRequest) predicate.LLMRequest {
	return predicate.LLMRequest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LLMRequest) predicate.LLMRequest {
	return predicate.LLMRequest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LLMRequest) predicate.LLMRequest {
	return predicate.LLMRequest(sql.NotPredicates(p))
}
