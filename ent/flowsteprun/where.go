// Code generated by ent, DO NOT EDIT.

package flowsteprun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/brianfields/deeplearn-sub002/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldContainsFold(FieldID, id))
}

// FlowRunID applies equality check predicate on the "flow_run_id" field. It's identical to FlowRunIDEQ.
func FlowRunID(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldEQ(FieldFlowRunID, v))
}

// StepName applies equality check predicate on the "step_name" field. It's identical to StepNameEQ.
func StepName(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldEQ(FieldStepName, v))
}

// StepOrder applies equality check predicate on the "step_order" field. It's identical to StepOrderEQ.
func StepOrder(v int) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldEQ(FieldStepOrder, v))
}

// TokensUsed applies equality check predicate on the "tokens_used" field. It's identical to TokensUsedEQ.
func TokensUsed(v int) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldEQ(FieldTokensUsed, v))
}

// CostEstimate applies equality check predicate on the "cost_estimate" field. It's identical to CostEstimateEQ.
func CostEstimate(v float64) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldEQ(FieldCostEstimate, v))
}

// ExecutionTimeMs applies equality check predicate on the "execution_time_ms" field. It's identical to ExecutionTimeMsEQ.
func ExecutionTimeMs(v int) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldEQ(FieldExecutionTimeMs, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldEQ(FieldErrorMessage, v))
}

// LlmRequestID applies equality check predicate on the "llm_request_id" field. It's identical to LlmRequestIDEQ.
func LlmRequestID(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldEQ(FieldLlmRequestID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldEQ(FieldCompletedAt, v))
}

// FlowRunIDEQ applies the EQ predicate on the "flow_run_id" field.
func FlowRunIDEQ(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldEQ(FieldFlowRunID, v))
}

// FlowRunIDNEQ applies the NEQ predicate on the "flow_run_id" field.
func FlowRunIDNEQ(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldNEQ(FieldFlowRunID, v))
}

// FlowRunIDIn applies the In predicate on the "flow_run_id" field.
func FlowRunIDIn(vs ...string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldIn(FieldFlowRunID, vs...))
}

// FlowRunIDNotIn applies the NotIn predicate on the "flow_run_id" field.
func FlowRunIDNotIn(vs ...string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldNotIn(FieldFlowRunID, vs...))
}

// FlowRunIDGT applies the GT predicate on the "flow_run_id" field.
func FlowRunIDGT(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldGT(FieldFlowRunID, v))
}

// FlowRunIDGTE applies the GTE predicate on the "flow_run_id" field.
func FlowRunIDGTE(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldGTE(FieldFlowRunID, v))
}

// FlowRunIDLT applies the LT predicate on the "flow_run_id" field.
func FlowRunIDLT(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldLT(FieldFlowRunID, v))
}

// FlowRunIDLTE applies the LTE predicate on the "flow_run_id" field.
func FlowRunIDLTE(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldLTE(FieldFlowRunID, v))
}

// FlowRunIDContains applies the Contains predicate on the "flow_run_id" field.
func FlowRunIDContains(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldContains(FieldFlowRunID, v))
}

// FlowRunIDHasPrefix applies the HasPrefix predicate on the "flow_run_id" field.
func FlowRunIDHasPrefix(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldHasPrefix(FieldFlowRunID, v))
}

// FlowRunIDHasSuffix applies the HasSuffix predicate on the "flow_run_id" field.
func FlowRunIDHasSuffix(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldHasSuffix(FieldFlowRunID, v))
}

// FlowRunIDEqualFold applies the EqualFold predicate on the "flow_run_id" field.
func FlowRunIDEqualFold(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldEqualFold(FieldFlowRunID, v))
}

// FlowRunIDContainsFold applies the ContainsFold predicate on the "flow_run_id" field.
func FlowRunIDContainsFold(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldContainsFold(FieldFlowRunID, v))
}

// StepNameEQ applies the EQ predicate on the "step_name" field.
func StepNameEQ(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldEQ(FieldStepName, v))
}

// StepNameNEQ applies the NEQ predicate on the "step_name" field.
func StepNameNEQ(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldNEQ(FieldStepName, v))
}

// StepNameIn applies the In predicate on the "step_name" field.
func StepNameIn(vs ...string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldIn(FieldStepName, vs...))
}

// StepNameNotIn applies the NotIn predicate on the "step_name" field.
func StepNameNotIn(vs ...string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldNotIn(FieldStepName, vs...))
}

// StepNameGT applies the GT predicate on the "step_name" field.
func StepNameGT(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldGT(FieldStepName, v))
}

// StepNameGTE applies the GTE predicate on the "step_name" field.
func StepNameGTE(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldGTE(FieldStepName, v))
}

// StepNameLT applies the LT predicate on the "step_name" field.
func StepNameLT(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldLT(FieldStepName, v))
}

// StepNameLTE applies the LTE predicate on the "step_name" field.
func StepNameLTE(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldLTE(FieldStepName, v))
}

// StepNameContains applies the Contains predicate on the "step_name" field.
func StepNameContains(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldContains(FieldStepName, v))
}

// StepNameHasPrefix applies the HasPrefix predicate on the "step_name" field.
func StepNameHasPrefix(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldHasPrefix(FieldStepName, v))
}

// StepNameHasSuffix applies the HasSuffix predicate on the "step_name" field.
func StepNameHasSuffix(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldHasSuffix(FieldStepName, v))
}

// StepNameEqualFold applies the EqualFold predicate on the "step_name" field.
func StepNameEqualFold(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldEqualFold(FieldStepName, v))
}

// StepNameContainsFold applies the ContainsFold predicate on the "step_name" field.
func StepNameContainsFold(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldContainsFold(FieldStepName, v))
}

// StepOrderEQ applies the EQ predicate on the "step_order" field.
func StepOrderEQ(v int) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldEQ(FieldStepOrder, v))
}

// StepOrderNEQ applies the NEQ predicate on the "step_order" field.
func StepOrderNEQ(v int) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldNEQ(FieldStepOrder, v))
}

// StepOrderIn applies the In predicate on the "step_order" field.
func StepOrderIn(vs ...int) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldIn(FieldStepOrder, vs...))
}

// StepOrderNotIn applies the NotIn predicate on the "step_order" field.
func StepOrderNotIn(vs ...int) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldNotIn(FieldStepOrder, vs...))
}

// StepOrderGT applies the GT predicate on the "step_order" field.
func StepOrderGT(v int) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldGT(FieldStepOrder, v))
}

// StepOrderGTE applies the GTE predicate on the "step_order" field.
func StepOrderGTE(v int) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldGTE(FieldStepOrder, v))
}

// StepOrderLT applies the LT predicate on the "step_order" field.
func StepOrderLT(v int) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldLT(FieldStepOrder, v))
}

// StepOrderLTE applies the LTE predicate on the "step_order" field.
func StepOrderLTE(v int) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldLTE(FieldStepOrder, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldNotIn(FieldStatus, vs...))
}

// InputsIsNil applies the IsNil predicate on the "inputs" field.
func InputsIsNil() predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldIsNull(FieldInputs))
}

// InputsNotNil applies the NotNil predicate on the "inputs" field.
func InputsNotNil() predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldNotNull(FieldInputs))
}

// OutputsIsNil applies the IsNil predicate on the "outputs" field.
func OutputsIsNil() predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldIsNull(FieldOutputs))
}

// OutputsNotNil applies the NotNil predicate on the "outputs" field.
func OutputsNotNil() predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldNotNull(FieldOutputs))
}

// StepMetadataIsNil applies the IsNil predicate on the "step_metadata" field.
func StepMetadataIsNil() predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldIsNull(FieldStepMetadata))
}

// StepMetadataNotNil applies the NotNil predicate on the "step_metadata" field.
func StepMetadataNotNil() predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldNotNull(FieldStepMetadata))
}

// TokensUsedEQ applies the EQ predicate on the "tokens_used" field.
func TokensUsedEQ(v int) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldEQ(FieldTokensUsed, v))
}

// TokensUsedNEQ applies the NEQ predicate on the "tokens_used" field.
func TokensUsedNEQ(v int) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldNEQ(FieldTokensUsed, v))
}

// TokensUsedIn applies the In predicate on the "tokens_used" field.
func TokensUsedIn(vs ...int) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldIn(FieldTokensUsed, vs...))
}

// TokensUsedNotIn applies the NotIn predicate on the "tokens_used" field.
func TokensUsedNotIn(vs ...int) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldNotIn(FieldTokensUsed, vs...))
}

// TokensUsedGT applies the GT predicate on the "tokens_used" field.
func TokensUsedGT(v int) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldGT(FieldTokensUsed, v))
}

// TokensUsedGTE applies the GTE predicate on the "tokens_used" field.
func TokensUsedGTE(v int) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldGTE(FieldTokensUsed, v))
}

// TokensUsedLT applies the LT predicate on the "tokens_used" field.
func TokensUsedLT(v int) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldLT(FieldTokensUsed, v))
}

// TokensUsedLTE applies the LTE predicate on the "tokens_used" field.
func TokensUsedLTE(v int) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldLTE(FieldTokensUsed, v))
}

// CostEstimateEQ applies the EQ predicate on the "cost_estimate" field.
func CostEstimateEQ(v float64) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldEQ(FieldCostEstimate, v))
}

// CostEstimateNEQ applies the NEQ predicate on the "cost_estimate" field.
func CostEstimateNEQ(v float64) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldNEQ(FieldCostEstimate, v))
}

// CostEstimateIn applies the In predicate on the "cost_estimate" field.
func CostEstimateIn(vs ...float64) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldIn(FieldCostEstimate, vs...))
}

// CostEstimateNotIn applies the NotIn predicate on the "cost_estimate" field.
func CostEstimateNotIn(vs ...float64) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldNotIn(FieldCostEstimate, vs...))
}

// CostEstimateGT applies the GT predicate on the "cost_estimate" field.
func CostEstimateGT(v float64) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldGT(FieldCostEstimate, v))
}

// CostEstimateGTE applies the GTE predicate on the "cost_estimate" field.
func CostEstimateGTE(v float64) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldGTE(FieldCostEstimate, v))
}

// CostEstimateLT applies the LT predicate on the "cost_estimate" field.
func CostEstimateLT(v float64) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldLT(FieldCostEstimate, v))
}

// CostEstimateLTE applies the LTE predicate on the "cost_estimate" field.
func CostEstimateLTE(v float64) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldLTE(FieldCostEstimate, v))
}

// ExecutionTimeMsEQ applies the EQ predicate on the "execution_time_ms" field.
func ExecutionTimeMsEQ(v int) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldEQ(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsNEQ applies the NEQ predicate on the "execution_time_ms" field.
func ExecutionTimeMsNEQ(v int) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldNEQ(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsIn applies the In predicate on the "execution_time_ms" field.
func ExecutionTimeMsIn(vs ...int) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldIn(FieldExecutionTimeMs, vs...))
}

// ExecutionTimeMsNotIn applies the NotIn predicate on the "execution_time_ms" field.
func ExecutionTimeMsNotIn(vs ...int) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldNotIn(FieldExecutionTimeMs, vs...))
}

// ExecutionTimeMsGT applies the GT predicate on the "execution_time_ms" field.
func ExecutionTimeMsGT(v int) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldGT(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsGTE applies the GTE predicate on the "execution_time_ms" field.
func ExecutionTimeMsGTE(v int) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldGTE(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsLT applies the LT predicate on the "execution_time_ms" field.
func ExecutionTimeMsLT(v int) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldLT(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsLTE applies the LTE predicate on the "execution_time_ms" field.
func ExecutionTimeMsLTE(v int) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldLTE(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsIsNil applies the IsNil predicate on the "execution_time_ms" field.
func ExecutionTimeMsIsNil() predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldIsNull(FieldExecutionTimeMs))
}

// ExecutionTimeMsNotNil applies the NotNil predicate on the "execution_time_ms" field.
func ExecutionTimeMsNotNil() predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldNotNull(FieldExecutionTimeMs))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldContainsFold(FieldErrorMessage, v))
}

// LlmRequestIDEQ applies the EQ predicate on the "llm_request_id" field.
func LlmRequestIDEQ(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldEQ(FieldLlmRequestID, v))
}

// LlmRequestIDNEQ applies the NEQ predicate on the "llm_request_id" field.
func LlmRequestIDNEQ(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldNEQ(FieldLlmRequestID, v))
}

// LlmRequestIDIn applies the In predicate on the "llm_request_id" field.
func LlmRequestIDIn(vs ...string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldIn(FieldLlmRequestID, vs...))
}

// LlmRequestIDNotIn applies the NotIn predicate on the "llm_request_id" field.
func LlmRequestIDNotIn(vs ...string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldNotIn(FieldLlmRequestID, vs...))
}

// LlmRequestIDGT applies the GT predicate on the "llm_request_id" field.
func LlmRequestIDGT(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldGT(FieldLlmRequestID, v))
}

// LlmRequestIDGTE applies the GTE predicate on the "llm_request_id" field.
func LlmRequestIDGTE(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldGTE(FieldLlmRequestID, v))
}

// LlmRequestIDLT applies the LT predicate on the "llm_request_id" field.
func LlmRequestIDLT(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldLT(FieldLlmRequestID, v))
}

// LlmRequestIDLTE applies the LTE predicate on the "llm_request_id" field.
func LlmRequestIDLTE(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldLTE(FieldLlmRequestID, v))
}

// LlmRequestIDContains applies the Contains predicate on the "llm_request_id" field.
func LlmRequestIDContains(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldContains(FieldLlmRequestID, v))
}

// LlmRequestIDHasPrefix applies the HasPrefix predicate on the "llm_request_id" field.
func LlmRequestIDHasPrefix(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldHasPrefix(FieldLlmRequestID, v))
}

// LlmRequestIDHasSuffix applies the HasSuffix predicate on the "llm_request_id" field.
func LlmRequestIDHasSuffix(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldHasSuffix(FieldLlmRequestID, v))
}

// LlmRequestIDIsNil applies the IsNil predicate on the "llm_request_id" field.
func LlmRequestIDIsNil() predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldIsNull(FieldLlmRequestID))
}

// LlmRequestIDNotNil applies the NotNil predicate on the "llm_request_id" field.
func LlmRequestIDNotNil() predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldNotNull(FieldLlmRequestID))
}

// LlmRequestIDEqualFold applies the EqualFold predicate on the "llm_request_id" field.
func LlmRequestIDEqualFold(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldEqualFold(FieldLlmRequestID, v))
}

// LlmRequestIDContainsFold applies the ContainsFold predicate on the "llm_request_id" field.
func LlmRequestIDContainsFold(v string) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldContainsFold(FieldLlmRequestID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.FieldNotNull(FieldCompletedAt))
}

// HasFlowRun applies the HasEdge predicate on the "flow_run" edge.
func HasFlowRun() predicate.FlowStepRun {
	return predicate.FlowStepRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FlowRunTable, FlowRunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFlowRunWith applies the HasEdge predicate on the "flow_run" edge with a given conditions (other predicates).
func HasFlowRunWith(preds ...predicate.FlowRun) predicate.FlowStepRun {
	return predicate.FlowStepRun(func(s *sql.Selector) {
		step := newFlowRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FlowStepRun) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FlowStepRun) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FlowStepRun) predicate.FlowStepRun {
	return predicate.FlowStepRun(sql.NotPredicates(p))
}
