// Code generated by ent, DO NOT EDIT.

package flowrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/brianfields/deeplearn-sub002/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldContainsFold(FieldID, id))
}

// FlowName applies equality check predicate on the "flow_name" field. It's identical to FlowNameEQ.
func FlowName(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldFlowName, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldUserID, v))
}

// CurrentStep applies equality check predicate on the "current_step" field. It's identical to CurrentStepEQ.
func CurrentStep(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldCurrentStep, v))
}

// StepProgress applies equality check predicate on the "step_progress" field. It's identical to StepProgressEQ.
func StepProgress(v int) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldStepProgress, v))
}

// TotalSteps applies equality check predicate on the "total_steps" field. It's identical to TotalStepsEQ.
func TotalSteps(v int) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldTotalSteps, v))
}

// ProgressPercentage applies equality check predicate on the "progress_percentage" field. It's identical to ProgressPercentageEQ.
func ProgressPercentage(v float64) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldProgressPercentage, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldCompletedAt, v))
}

// LastHeartbeat applies equality check predicate on the "last_heartbeat" field. It's identical to LastHeartbeatEQ.
func LastHeartbeat(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldLastHeartbeat, v))
}

// ExecutionTimeMs applies equality check predicate on the "execution_time_ms" field. It's identical to ExecutionTimeMsEQ.
func ExecutionTimeMs(v int) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldExecutionTimeMs, v))
}

// TotalTokens applies equality check predicate on the "total_tokens" field. It's identical to TotalTokensEQ.
func TotalTokens(v int) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldTotalTokens, v))
}

// TotalCost applies equality check predicate on the "total_cost" field. It's identical to TotalCostEQ.
func TotalCost(v float64) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldTotalCost, v))
}

// FlowNameEQ applies the EQ predicate on the "flow_name" field.
func FlowNameEQ(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldFlowName, v))
}

// FlowNameNEQ applies the NEQ predicate on the "flow_name" field.
func FlowNameNEQ(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNEQ(FieldFlowName, v))
}

// FlowNameIn applies the In predicate on the "flow_name" field.
func FlowNameIn(vs ...string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldIn(FieldFlowName, vs...))
}

// FlowNameNotIn applies the NotIn predicate on the "flow_name" field.
func FlowNameNotIn(vs ...string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNotIn(FieldFlowName, vs...))
}

// FlowNameGT applies the GT predicate on the "flow_name" field.
func FlowNameGT(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldGT(FieldFlowName, v))
}

// FlowNameGTE applies the GTE predicate on the "flow_name" field.
func FlowNameGTE(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldGTE(FieldFlowName, v))
}

// FlowNameLT applies the LT predicate on the "flow_name" field.
func FlowNameLT(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldLT(FieldFlowName, v))
}

// FlowNameLTE applies the LTE predicate on the "flow_name" field.
func FlowNameLTE(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldLTE(FieldFlowName, v))
}

// FlowNameContains applies the Contains predicate on the "flow_name" field.
func FlowNameContains(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldContains(FieldFlowName, v))
}

// FlowNameHasPrefix applies the HasPrefix predicate on the "flow_name" field.
func FlowNameHasPrefix(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldHasPrefix(FieldFlowName, v))
}

// FlowNameHasSuffix applies the HasSuffix predicate on the "flow_name" field.
func FlowNameHasSuffix(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldHasSuffix(FieldFlowName, v))
}

// FlowNameEqualFold applies the EqualFold predicate on the "flow_name" field.
func FlowNameEqualFold(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEqualFold(FieldFlowName, v))
}

// FlowNameContainsFold applies the ContainsFold predicate on the "flow_name" field.
func FlowNameContainsFold(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldContainsFold(FieldFlowName, v))
}

// ExecutionModeEQ applies the EQ predicate on the "execution_mode" field.
func ExecutionModeEQ(v ExecutionMode) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldExecutionMode, v))
}

// ExecutionModeNEQ applies the NEQ predicate on the "execution_mode" field.
func ExecutionModeNEQ(v ExecutionMode) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNEQ(FieldExecutionMode, v))
}

// ExecutionModeIn applies the In predicate on the "execution_mode" field.
func ExecutionModeIn(vs ...ExecutionMode) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldIn(FieldExecutionMode, vs...))
}

// ExecutionModeNotIn applies the NotIn predicate on the "execution_mode" field.
func ExecutionModeNotIn(vs ...ExecutionMode) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNotIn(FieldExecutionMode, vs...))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.FlowRun {
	return predicate.FlowRun(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldContainsFold(FieldUserID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNotIn(FieldStatus, vs...))
}

// InputsIsNil applies the IsNil predicate on the "inputs" field.
func InputsIsNil() predicate.FlowRun {
	return predicate.FlowRun(sql.FieldIsNull(FieldInputs))
}

// InputsNotNil applies the NotNil predicate on the "inputs" field.
func InputsNotNil() predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNotNull(FieldInputs))
}

// OutputsIsNil applies the IsNil predicate on the "outputs" field.
func OutputsIsNil() predicate.FlowRun {
	return predicate.FlowRun(sql.FieldIsNull(FieldOutputs))
}

// OutputsNotNil applies the NotNil predicate on the "outputs" field.
func OutputsNotNil() predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNotNull(FieldOutputs))
}

// FlowMetadataIsNil applies the IsNil predicate on the "flow_metadata" field.
func FlowMetadataIsNil() predicate.FlowRun {
	return predicate.FlowRun(sql.FieldIsNull(FieldFlowMetadata))
}

// FlowMetadataNotNil applies the NotNil predicate on the "flow_metadata" field.
func FlowMetadataNotNil() predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNotNull(FieldFlowMetadata))
}

// CurrentStepEQ applies the EQ predicate on the "current_step" field.
func CurrentStepEQ(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldCurrentStep, v))
}

// CurrentStepNEQ applies the NEQ predicate on the "current_step" field.
func CurrentStepNEQ(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNEQ(FieldCurrentStep, v))
}

// CurrentStepIn applies the In predicate on the "current_step" field.
func CurrentStepIn(vs ...string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldIn(FieldCurrentStep, vs...))
}

// CurrentStepNotIn applies the NotIn predicate on the "current_step" field.
func CurrentStepNotIn(vs ...string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNotIn(FieldCurrentStep, vs...))
}

// CurrentStepGT applies the GT predicate on the "current_step" field.
func CurrentStepGT(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldGT(FieldCurrentStep, v))
}

// CurrentStepGTE applies the GTE predicate on the "current_step" field.
func CurrentStepGTE(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldGTE(FieldCurrentStep, v))
}

// CurrentStepLT applies the LT predicate on the "current_step" field.
func CurrentStepLT(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldLT(FieldCurrentStep, v))
}

// CurrentStepLTE applies the LTE predicate on the "current_step" field.
func CurrentStepLTE(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldLTE(FieldCurrentStep, v))
}

// CurrentStepContains applies the Contains predicate on the "current_step" field.
func CurrentStepContains(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldContains(FieldCurrentStep, v))
}

// CurrentStepHasPrefix applies the HasPrefix predicate on the "current_step" field.
func CurrentStepHasPrefix(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldHasPrefix(FieldCurrentStep, v))
}

// CurrentStepHasSuffix applies the HasSuffix predicate on the "current_step" field.
func CurrentStepHasSuffix(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldHasSuffix(FieldCurrentStep, v))
}

// CurrentStepIsNil applies the IsNil predicate on the "current_step" field.
func CurrentStepIsNil() predicate.FlowRun {
	return predicate.FlowRun(sql.FieldIsNull(FieldCurrentStep))
}

// CurrentStepNotNil applies the NotNil predicate on the "current_step" field.
func CurrentStepNotNil() predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNotNull(FieldCurrentStep))
}

// CurrentStepEqualFold applies the EqualFold predicate on the "current_step" field.
func CurrentStepEqualFold(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEqualFold(FieldCurrentStep, v))
}

// CurrentStepContainsFold applies the ContainsFold predicate on the "current_step" field.
func CurrentStepContainsFold(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldContainsFold(FieldCurrentStep, v))
}

// StepProgressEQ applies the EQ predicate on the "step_progress" field.
func StepProgressEQ(v int) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldStepProgress, v))
}

// StepProgressNEQ applies the NEQ predicate on the "step_progress" field.
func StepProgressNEQ(v int) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNEQ(FieldStepProgress, v))
}

// StepProgressIn applies the In predicate on the "step_progress" field.
func StepProgressIn(vs ...int) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldIn(FieldStepProgress, vs...))
}

// StepProgressNotIn applies the NotIn predicate on the "step_progress" field.
func StepProgressNotIn(vs ...int) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNotIn(FieldStepProgress, vs...))
}

// StepProgressGT applies the GT predicate on the "step_progress" field.
func StepProgressGT(v int) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldGT(FieldStepProgress, v))
}

// StepProgressGTE applies the GTE predicate on the "step_progress" field.
func StepProgressGTE(v int) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldGTE(FieldStepProgress, v))
}

// StepProgressLT applies the LT predicate on the "step_progress" field.
func StepProgressLT(v int) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldLT(FieldStepProgress, v))
}

// StepProgressLTE applies the LTE predicate on the "step_progress" field.
func StepProgressLTE(v int) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldLTE(FieldStepProgress, v))
}

// TotalStepsEQ applies the EQ predicate on the "total_steps" field.
func TotalStepsEQ(v int) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldTotalSteps, v))
}

// TotalStepsNEQ applies the NEQ predicate on the "total_steps" field.
func TotalStepsNEQ(v int) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNEQ(FieldTotalSteps, v))
}

// TotalStepsIn applies the In predicate on the "total_steps" field.
func TotalStepsIn(vs ...int) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldIn(FieldTotalSteps, vs...))
}

// TotalStepsNotIn applies the NotIn predicate on the "total_steps" field.
func TotalStepsNotIn(vs ...int) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNotIn(FieldTotalSteps, vs...))
}

// TotalStepsGT applies the GT predicate on the "total_steps" field.
func TotalStepsGT(v int) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldGT(FieldTotalSteps, v))
}

// TotalStepsGTE applies the GTE predicate on the "total_steps" field.
func TotalStepsGTE(v int) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldGTE(FieldTotalSteps, v))
}

// TotalStepsLT applies the LT predicate on the "total_steps" field.
func TotalStepsLT(v int) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldLT(FieldTotalSteps, v))
}

// TotalStepsLTE applies the LTE predicate on the "total_steps" field.
func TotalStepsLTE(v int) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldLTE(FieldTotalSteps, v))
}

// ProgressPercentageEQ applies the EQ predicate on the "progress_percentage" field.
func ProgressPercentageEQ(v float64) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldProgressPercentage, v))
}

// ProgressPercentageNEQ applies the NEQ predicate on the "progress_percentage" field.
func ProgressPercentageNEQ(v float64) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNEQ(FieldProgressPercentage, v))
}

// ProgressPercentageIn applies the In predicate on the "progress_percentage" field.
func ProgressPercentageIn(vs ...float64) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldIn(FieldProgressPercentage, vs...))
}

// ProgressPercentageNotIn applies the NotIn predicate on the "progress_percentage" field.
func ProgressPercentageNotIn(vs ...float64) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNotIn(FieldProgressPercentage, vs...))
}

// ProgressPercentageGT applies the GT predicate on the "progress_percentage" field.
func ProgressPercentageGT(v float64) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldGT(FieldProgressPercentage, v))
}

// ProgressPercentageGTE applies the GTE predicate on the "progress_percentage" field.
func ProgressPercentageGTE(v float64) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldGTE(FieldProgressPercentage, v))
}

// ProgressPercentageLT applies the LT predicate on the "progress_percentage" field.
func ProgressPercentageLT(v float64) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldLT(FieldProgressPercentage, v))
}

// ProgressPercentageLTE applies the LTE predicate on the "progress_percentage" field.
func ProgressPercentageLTE(v float64) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldLTE(FieldProgressPercentage, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.FlowRun {
	return predicate.FlowRun(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.FlowRun {
	return predicate.FlowRun(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.FlowRun {
	return predicate.FlowRun(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNotNull(FieldCompletedAt))
}

// LastHeartbeatEQ applies the EQ predicate on the "last_heartbeat" field.
func LastHeartbeatEQ(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldLastHeartbeat, v))
}

// LastHeartbeatNEQ applies the NEQ predicate on the "last_heartbeat" field.
func LastHeartbeatNEQ(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNEQ(FieldLastHeartbeat, v))
}

// LastHeartbeatIn applies the In predicate on the "last_heartbeat" field.
func LastHeartbeatIn(vs ...time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldIn(FieldLastHeartbeat, vs...))
}

// LastHeartbeatNotIn applies the NotIn predicate on the "last_heartbeat" field.
func LastHeartbeatNotIn(vs ...time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNotIn(FieldLastHeartbeat, vs...))
}

// LastHeartbeatGT applies the GT predicate on the "last_heartbeat" field.
func LastHeartbeatGT(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldGT(FieldLastHeartbeat, v))
}

// LastHeartbeatGTE applies the GTE predicate on the "last_heartbeat" field.
func LastHeartbeatGTE(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldGTE(FieldLastHeartbeat, v))
}

// LastHeartbeatLT applies the LT predicate on the "last_heartbeat" field.
func LastHeartbeatLT(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldLT(FieldLastHeartbeat, v))
}

// LastHeartbeatLTE applies the LTE predicate on the "last_heartbeat" field.
func LastHeartbeatLTE(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldLTE(FieldLastHeartbeat, v))
}

// LastHeartbeatIsNil applies the IsNil predicate on the "last_heartbeat" field.
func LastHeartbeatIsNil() predicate.FlowRun {
	return predicate.FlowRun(sql.FieldIsNull(FieldLastHeartbeat))
}

// LastHeartbeatNotNil applies the NotNil predicate on the "last_heartbeat" field.
func LastHeartbeatNotNil() predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNotNull(FieldLastHeartbeat))
}

// ExecutionTimeMsEQ applies the EQ predicate on the "execution_time_ms" field.
func ExecutionTimeMsEQ(v int) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsNEQ applies the NEQ predicate on the "execution_time_ms" field.
func ExecutionTimeMsNEQ(v int) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNEQ(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsIn applies the In predicate on the "execution_time_ms" field.
func ExecutionTimeMsIn(vs ...int) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldIn(FieldExecutionTimeMs, vs...))
}

// ExecutionTimeMsNotIn applies the NotIn predicate on the "execution_time_ms" field.
func ExecutionTimeMsNotIn(vs ...int) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNotIn(FieldExecutionTimeMs, vs...))
}

// ExecutionTimeMsGT applies the GT predicate on the "execution_time_ms" field.
func ExecutionTimeMsGT(v int) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldGT(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsGTE applies the GTE predicate on the "execution_time_ms" field.
func ExecutionTimeMsGTE(v int) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldGTE(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsLT applies the LT predicate on the "execution_time_ms" field.
func ExecutionTimeMsLT(v int) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldLT(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsLTE applies the LTE predicate on the "execution_time_ms" field.
func ExecutionTimeMsLTE(v int) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldLTE(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsIsNil applies the IsNil predicate on the "execution_time_ms" field.
func ExecutionTimeMsIsNil() predicate.FlowRun {
	return predicate.FlowRun(sql.FieldIsNull(FieldExecutionTimeMs))
}

// ExecutionTimeMsNotNil applies the NotNil predicate on the "execution_time_ms" field.
func ExecutionTimeMsNotNil() predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNotNull(FieldExecutionTimeMs))
}

// TotalTokensEQ applies the EQ predicate on the "total_tokens" field.
func TotalTokensEQ(v int) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldTotalTokens, v))
}

// TotalTokensNEQ applies the NEQ predicate on the "total_tokens" field.
func TotalTokensNEQ(v int) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNEQ(FieldTotalTokens, v))
}

// TotalTokensIn applies the In predicate on the "total_tokens" field.
func TotalTokensIn(vs ...int) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldIn(FieldTotalTokens, vs...))
}

// TotalTokensNotIn applies the NotIn predicate on the "total_tokens" field.
func TotalTokensNotIn(vs ...int) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNotIn(FieldTotalTokens, vs...))
}

// TotalTokensGT applies the GT predicate on the "total_tokens" field.
func TotalTokensGT(v int) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldGT(FieldTotalTokens, v))
}

// TotalTokensGTE applies the GTE predicate on the "total_tokens" field.
func TotalTokensGTE(v int) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldGTE(FieldTotalTokens, v))
}

// TotalTokensLT applies the LT predicate on the "total_tokens" field.
func TotalTokensLT(v int) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldLT(FieldTotalTokens, v))
}

// TotalTokensLTE applies the LTE predicate on the "total_tokens" field.
func TotalTokensLTE(v int) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldLTE(FieldTotalTokens, v))
}

// TotalCostEQ applies the EQ predicate on the "total_cost" field.
func TotalCostEQ(v float64) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldTotalCost, v))
}

// TotalCostNEQ applies the NEQ predicate on the "total_cost" field.
func TotalCostNEQ(v float64) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNEQ(FieldTotalCost, v))
}

// TotalCostIn applies the In predicate on the "total_cost" field.
func TotalCostIn(vs ...float64) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldIn(FieldTotalCost, vs...))
}

// TotalCostNotIn applies the NotIn predicate on the "total_cost" field.
func TotalCostNotIn(vs ...float64) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNotIn(FieldTotalCost, vs...))
}

// TotalCostGT applies the GT predicate on the "total_cost" field.
func TotalCostGT(v float64) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldGT(FieldTotalCost, v))
}

// TotalCostGTE applies the GTE predicate on the "total_cost" field.
func TotalCostGTE(v float64) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldGTE(FieldTotalCost, v))
}

// TotalCostLT applies the LT predicate on the "total_cost" field.
func TotalCostLT(v float64) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldLT(FieldTotalCost, v))
}

// TotalCostLTE applies the LTE predicate on the "total_cost" field.
func TotalCostLTE(v float64) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldLTE(FieldTotalCost, v))
}

// HasSteps applies the HasEdge predicate on the "steps" edge.
func HasSteps() predicate.FlowRun {
	return predicate.FlowRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepsWith applies the HasEdge predicate on the "steps" edge with a given conditions (other predicates).
func HasStepsWith(preds ...predicate.FlowStepRun) predicate.FlowRun {
	return predicate.FlowRun(func(s *sql.Selector) {
		step := newStepsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FlowRun) predicate.FlowRun {
	return predicate.FlowRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FlowRun) predicate.FlowRun {
	return predicate.FlowRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FlowRun) predicate.FlowRun {
	return predicate.FlowRun(sql.NotPredicates(p))
}
