// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/brianfields/deeplearn-sub002/ent/llmrequest"
	"github.com/brianfields/deeplearn-sub002/ent/predicate"
	"github.com/brianfields/deeplearn-sub002/pkg/models"
)

// LLMRequestUpdate is the builder for updating LLMRequest entities.
type LLMRequestUpdate struct {
	config
	hooks    []Hook
	mutation *LLMRequestMutation
}

// Where appends a list predicates to the LLMRequestUpdate builder.
func (_u *LLMRequestUpdate) Where(ps ...predicate.LLMRequest) *LLMRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *LLMRequestUpdate) SetUserID(v string) *LLMRequestUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LLMRequestUpdate) SetNillableUserID(v *string) *LLMRequestUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *LLMRequestUpdate) ClearUserID() *LLMRequestUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetProvider sets the "provider" field.
func (_u *LLMRequestUpdate) SetProvider(v string) *LLMRequestUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *LLMRequestUpdate) SetNillableProvider(v *string) *LLMRequestUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *LLMRequestUpdate) SetModel(v string) *LLMRequestUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *LLMRequestUpdate) SetNillableModel(v *string) *LLMRequestUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetAPIVariant sets the "api_variant" field.
func (_u *LLMRequestUpdate) SetAPIVariant(v llmrequest.APIVariant) *LLMRequestUpdate {
	_u.mutation.SetAPIVariant(v)
	return _u
}

// SetNillableAPIVariant sets the "api_variant" field if the given value is not nil.
func (_u *LLMRequestUpdate) SetNillableAPIVariant(v *llmrequest.APIVariant) *LLMRequestUpdate {
	if v != nil {
		_u.SetAPIVariant(*v)
	}
	return _u
}

// SetMessages sets the "messages" field.
func (_u *LLMRequestUpdate) SetMessages(v []models.ChatMessage) *LLMRequestUpdate {
	_u.mutation.SetMessages(v)
	return _u
}

// AppendMessages appends value to the "messages" field.
func (_u *LLMRequestUpdate) AppendMessages(v []models.ChatMessage) *LLMRequestUpdate {
	_u.mutation.AppendMessages(v)
	return _u
}

// ClearMessages clears the value of the "messages" field.
func (_u *LLMRequestUpdate) ClearMessages() *LLMRequestUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// SetRequestPayload sets the "request_payload" field.
func (_u *LLMRequestUpdate) SetRequestPayload(v map[string]interface{}) *LLMRequestUpdate {
	_u.mutation.SetRequestPayload(v)
	return _u
}

// ClearRequestPayload clears the value of the "request_payload" field.
func (_u *LLMRequestUpdate) ClearRequestPayload() *LLMRequestUpdate {
	_u.mutation.ClearRequestPayload()
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *LLMRequestUpdate) SetTemperature(v float64) *LLMRequestUpdate {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *LLMRequestUpdate) SetNillableTemperature(v *float64) *LLMRequestUpdate {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *LLMRequestUpdate) AddTemperature(v float64) *LLMRequestUpdate {
	_u.mutation.AddTemperature(v)
	return _u
}

// ClearTemperature clears the value of the "temperature" field.
func (_u *LLMRequestUpdate) ClearTemperature() *LLMRequestUpdate {
	_u.mutation.ClearTemperature()
	return _u
}

// SetMaxOutputTokens sets the "max_output_tokens" field.
func (_u *LLMRequestUpdate) SetMaxOutputTokens(v int) *LLMRequestUpdate {
	_u.mutation.ResetMaxOutputTokens()
	_u.mutation.SetMaxOutputTokens(v)
	return _u
}

// SetNillableMaxOutputTokens sets the "max_output_tokens" field if the given value is not nil.
func (_u *LLMRequestUpdate) SetNillableMaxOutputTokens(v *int) *LLMRequestUpdate {
	if v != nil {
		_u.SetMaxOutputTokens(*v)
	}
	return _u
}

// AddMaxOutputTokens adds value to the "max_output_tokens" field.
func (_u *LLMRequestUpdate) AddMaxOutputTokens(v int) *LLMRequestUpdate {
	_u.mutation.AddMaxOutputTokens(v)
	return _u
}

// ClearMaxOutputTokens clears the value of the "max_output_tokens" field.
func (_u *LLMRequestUpdate) ClearMaxOutputTokens() *LLMRequestUpdate {
	_u.mutation.ClearMaxOutputTokens()
	return _u
}

// SetResponseContent sets the "response_content" field.
func (_u *LLMRequestUpdate) SetResponseContent(v string) *LLMRequestUpdate {
	_u.mutation.SetResponseContent(v)
	return _u
}

// SetNillableResponseContent sets the "response_content" field if the given value is not nil.
func (_u *LLMRequestUpdate) SetNillableResponseContent(v *string) *LLMRequestUpdate {
	if v != nil {
		_u.SetResponseContent(*v)
	}
	return _u
}

// ClearResponseContent clears the value of the "response_content" field.
func (_u *LLMRequestUpdate) ClearResponseContent() *LLMRequestUpdate {
	_u.mutation.ClearResponseContent()
	return _u
}

// SetResponseRaw sets the "response_raw" field.
func (_u *LLMRequestUpdate) SetResponseRaw(v map[string]interface{}) *LLMRequestUpdate {
	_u.mutation.SetResponseRaw(v)
	return _u
}

// ClearResponseRaw clears the value of the "response_raw" field.
func (_u *LLMRequestUpdate) ClearResponseRaw() *LLMRequestUpdate {
	_u.mutation.ClearResponseRaw()
	return _u
}

// SetProviderResponseID sets the "provider_response_id" field.
func (_u *LLMRequestUpdate) SetProviderResponseID(v string) *LLMRequestUpdate {
	_u.mutation.SetProviderResponseID(v)
	return _u
}

// SetNillableProviderResponseID sets the "provider_response_id" field if the given value is not nil.
func (_u *LLMRequestUpdate) SetNillableProviderResponseID(v *string) *LLMRequestUpdate {
	if v != nil {
		_u.SetProviderResponseID(*v)
	}
	return _u
}

// ClearProviderResponseID clears the value of the "provider_response_id" field.
func (_u *LLMRequestUpdate) ClearProviderResponseID() *LLMRequestUpdate {
	_u.mutation.ClearProviderResponseID()
	return _u
}

// SetSystemFingerprint sets the "system_fingerprint" field.
func (_u *LLMRequestUpdate) SetSystemFingerprint(v string) *LLMRequestUpdate {
	_u.mutation.SetSystemFingerprint(v)
	return _u
}

// SetNillableSystemFingerprint sets the "system_fingerprint" field if the given value is not nil.
func (_u *LLMRequestUpdate) SetNillableSystemFingerprint(v *string) *LLMRequestUpdate {
	if v != nil {
		_u.SetSystemFingerprint(*v)
	}
	return _u
}

// ClearSystemFingerprint clears the value of the "system_fingerprint" field.
func (_u *LLMRequestUpdate) ClearSystemFingerprint() *LLMRequestUpdate {
	_u.mutation.ClearSystemFingerprint()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *LLMRequestUpdate) SetInputTokens(v int) *LLMRequestUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *LLMRequestUpdate) SetNillableInputTokens(v *int) *LLMRequestUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *LLMRequestUpdate) AddInputTokens(v int) *LLMRequestUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (_u *LLMRequestUpdate) ClearInputTokens() *LLMRequestUpdate {
	_u.mutation.ClearInputTokens()
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *LLMRequestUpdate) SetOutputTokens(v int) *LLMRequestUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *LLMRequestUpdate) SetNillableOutputTokens(v *int) *LLMRequestUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *LLMRequestUpdate) AddOutputTokens(v int) *LLMRequestUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (_u *LLMRequestUpdate) ClearOutputTokens() *LLMRequestUpdate {
	_u.mutation.ClearOutputTokens()
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *LLMRequestUpdate) SetTokensUsed(v int) *LLMRequestUpdate {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *LLMRequestUpdate) SetNillableTokensUsed(v *int) *LLMRequestUpdate {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *LLMRequestUpdate) AddTokensUsed(v int) *LLMRequestUpdate {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetCostEstimate sets the "cost_estimate" field.
func (_u *LLMRequestUpdate) SetCostEstimate(v float64) *LLMRequestUpdate {
	_u.mutation.ResetCostEstimate()
	_u.mutation.SetCostEstimate(v)
	return _u
}

// SetNillableCostEstimate sets the "cost_estimate" field if the given value is not nil.
func (_u *LLMRequestUpdate) SetNillableCostEstimate(v *float64) *LLMRequestUpdate {
	if v != nil {
		_u.SetCostEstimate(*v)
	}
	return _u
}

// AddCostEstimate adds value to the "cost_estimate" field.
func (_u *LLMRequestUpdate) AddCostEstimate(v float64) *LLMRequestUpdate {
	_u.mutation.AddCostEstimate(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *LLMRequestUpdate) SetStatus(v llmrequest.Status) *LLMRequestUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LLMRequestUpdate) SetNillableStatus(v *llmrequest.Status) *LLMRequestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorType sets the "error_type" field.
func (_u *LLMRequestUpdate) SetErrorType(v string) *LLMRequestUpdate {
	_u.mutation.SetErrorType(v)
	return _u
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_u *LLMRequestUpdate) SetNillableErrorType(v *string) *LLMRequestUpdate {
	if v != nil {
		_u.SetErrorType(*v)
	}
	return _u
}

// ClearErrorType clears the value of the "error_type" field.
func (_u *LLMRequestUpdate) ClearErrorType() *LLMRequestUpdate {
	_u.mutation.ClearErrorType()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *LLMRequestUpdate) SetErrorMessage(v string) *LLMRequestUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *LLMRequestUpdate) SetNillableErrorMessage(v *string) *LLMRequestUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *LLMRequestUpdate) ClearErrorMessage() *LLMRequestUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRetryAttempt sets the "retry_attempt" field.
func (_u *LLMRequestUpdate) SetRetryAttempt(v int) *LLMRequestUpdate {
	_u.mutation.ResetRetryAttempt()
	_u.mutation.SetRetryAttempt(v)
	return _u
}

// SetNillableRetryAttempt sets the "retry_attempt" field if the given value is not nil.
func (_u *LLMRequestUpdate) SetNillableRetryAttempt(v *int) *LLMRequestUpdate {
	if v != nil {
		_u.SetRetryAttempt(*v)
	}
	return _u
}

// AddRetryAttempt adds value to the "retry_attempt" field.
func (_u *LLMRequestUpdate) AddRetryAttempt(v int) *LLMRequestUpdate {
	_u.mutation.AddRetryAttempt(v)
	return _u
}

// SetCached sets the "cached" field.
func (_u *LLMRequestUpdate) SetCached(v bool) *LLMRequestUpdate {
	_u.mutation.SetCached(v)
	return _u
}

// SetNillableCached sets the "cached" field if the given value is not nil.
func (_u *LLMRequestUpdate) SetNillableCached(v *bool) *LLMRequestUpdate {
	if v != nil {
		_u.SetCached(*v)
	}
	return _u
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (_u *LLMRequestUpdate) SetExecutionTimeMs(v int) *LLMRequestUpdate {
	_u.mutation.ResetExecutionTimeMs()
	_u.mutation.SetExecutionTimeMs(v)
	return _u
}

// SetNillableExecutionTimeMs sets the "execution_time_ms" field if the given value is not nil.
func (_u *LLMRequestUpdate) SetNillableExecutionTimeMs(v *int) *LLMRequestUpdate {
	if v != nil {
		_u.SetExecutionTimeMs(*v)
	}
	return _u
}

// AddExecutionTimeMs adds value to the "execution_time_ms" field.
func (_u *LLMRequestUpdate) AddExecutionTimeMs(v int) *LLMRequestUpdate {
	_u.mutation.AddExecutionTimeMs(v)
	return _u
}

// ClearExecutionTimeMs clears the value of the "execution_time_ms" field.
func (_u *LLMRequestUpdate) ClearExecutionTimeMs() *LLMRequestUpdate {
	_u.mutation.ClearExecutionTimeMs()
	return _u
}

// SetFlowRunID sets the "flow_run_id" field.
func (_u *LLMRequestUpdate) SetFlowRunID(v string) *LLMRequestUpdate {
	_u.mutation.SetFlowRunID(v)
	return _u
}

// SetNillableFlowRunID sets the "flow_run_id" field if the given value is not nil.
func (_u *LLMRequestUpdate) SetNillableFlowRunID(v *string) *LLMRequestUpdate {
	if v != nil {
		_u.SetFlowRunID(*v)
	}
	return _u
}

// ClearFlowRunID clears the value of the "flow_run_id" field.
func (_u *LLMRequestUpdate) ClearFlowRunID() *LLMRequestUpdate {
	_u.mutation.ClearFlowRunID()
	return _u
}

// SetStepRunID sets the "step_run_id" field.
func (_u *LLMRequestUpdate) SetStepRunID(v string) *LLMRequestUpdate {
	_u.mutation.SetStepRunID(v)
	return _u
}

// SetNillableStepRunID sets the "step_run_id" field if the given value is not nil.
func (_u *LLMRequestUpdate) SetNillableStepRunID(v *string) *LLMRequestUpdate {
	if v != nil {
		_u.SetStepRunID(*v)
	}
	return _u
}

// ClearStepRunID clears the value of the "step_run_id" field.
func (_u *LLMRequestUpdate) ClearStepRunID() *LLMRequestUpdate {
	_u.mutation.ClearStepRunID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *LLMRequestUpdate) SetCreatedAt(v time.Time) *LLMRequestUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *LLMRequestUpdate) SetNillableCreatedAt(v *time.Time) *LLMRequestUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetResponseCreatedAt sets the "response_created_at" field.
func (_u *LLMRequestUpdate) SetResponseCreatedAt(v time.Time) *LLMRequestUpdate {
	_u.mutation.SetResponseCreatedAt(v)
	return _u
}

// SetNillableResponseCreatedAt sets the "response_created_at" field if the given value is not nil.
func (_u *LLMRequestUpdate) SetNillableResponseCreatedAt(v *time.Time) *LLMRequestUpdate {
	if v != nil {
		_u.SetResponseCreatedAt(*v)
	}
	return _u
}

// ClearResponseCreatedAt clears the value of the "response_created_at" field.
func (_u *LLMRequestUpdate) ClearResponseCreatedAt() *LLMRequestUpdate {
	_u.mutation.ClearResponseCreatedAt()
	return _u
}

// Mutation returns the LLMRequestMutation object of the builder.
func (_u *LLMRequestUpdate) Mutation() *LLMRequestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LLMRequestUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LLMRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LLMRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LLMRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LLMRequestUpdate) check() error {
	if v, ok := _u.mutation.APIVariant(); ok {
		if err := llmrequest.APIVariantValidator(v); err != nil {
			return &ValidationError{Name: "api_variant", err: fmt.Errorf(`ent: validator failed for field "LLMRequest.api_variant": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := llmrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LLMRequest.status": %w`, err)}
		}
	}
	return nil
}

func (_u *LLMRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(llmrequest.Table, llmrequest.Columns, sqlgraph.NewFieldSpec(llmrequest.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(llmrequest.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(llmrequest.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(llmrequest.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(llmrequest.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.APIVariant(); ok {
		_spec.SetField(llmrequest.FieldAPIVariant, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Messages(); ok {
		_spec.SetField(llmrequest.FieldMessages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMessages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, llmrequest.FieldMessages, value)
		})
	}
	if _u.mutation.MessagesCleared() {
		_spec.ClearField(llmrequest.FieldMessages, field.TypeJSON)
	}
	if value, ok := _u.mutation.RequestPayload(); ok {
		_spec.SetField(llmrequest.FieldRequestPayload, field.TypeJSON, value)
	}
	if _u.mutation.RequestPayloadCleared() {
		_spec.ClearField(llmrequest.FieldRequestPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(llmrequest.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(llmrequest.FieldTemperature, field.TypeFloat64, value)
	}
	if _u.mutation.TemperatureCleared() {
		_spec.ClearField(llmrequest.FieldTemperature, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MaxOutputTokens(); ok {
		_spec.SetField(llmrequest.FieldMaxOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxOutputTokens(); ok {
		_spec.AddField(llmrequest.FieldMaxOutputTokens, field.TypeInt, value)
	}
	if _u.mutation.MaxOutputTokensCleared() {
		_spec.ClearField(llmrequest.FieldMaxOutputTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.ResponseContent(); ok {
		_spec.SetField(llmrequest.FieldResponseContent, field.TypeString, value)
	}
	if _u.mutation.ResponseContentCleared() {
		_spec.ClearField(llmrequest.FieldResponseContent, field.TypeString)
	}
	if value, ok := _u.mutation.ResponseRaw(); ok {
		_spec.SetField(llmrequest.FieldResponseRaw, field.TypeJSON, value)
	}
	if _u.mutation.ResponseRawCleared() {
		_spec.ClearField(llmrequest.FieldResponseRaw, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProviderResponseID(); ok {
		_spec.SetField(llmrequest.FieldProviderResponseID, field.TypeString, value)
	}
	if _u.mutation.ProviderResponseIDCleared() {
		_spec.ClearField(llmrequest.FieldProviderResponseID, field.TypeString)
	}
	if value, ok := _u.mutation.SystemFingerprint(); ok {
		_spec.SetField(llmrequest.FieldSystemFingerprint, field.TypeString, value)
	}
	if _u.mutation.SystemFingerprintCleared() {
		_spec.ClearField(llmrequest.FieldSystemFingerprint, field.TypeString)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(llmrequest.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(llmrequest.FieldInputTokens, field.TypeInt, value)
	}
	if _u.mutation.InputTokensCleared() {
		_spec.ClearField(llmrequest.FieldInputTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(llmrequest.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(llmrequest.FieldOutputTokens, field.TypeInt, value)
	}
	if _u.mutation.OutputTokensCleared() {
		_spec.ClearField(llmrequest.FieldOutputTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(llmrequest.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(llmrequest.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CostEstimate(); ok {
		_spec.SetField(llmrequest.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostEstimate(); ok {
		_spec.AddField(llmrequest.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(llmrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorType(); ok {
		_spec.SetField(llmrequest.FieldErrorType, field.TypeString, value)
	}
	if _u.mutation.ErrorTypeCleared() {
		_spec.ClearField(llmrequest.FieldErrorType, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(llmrequest.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(llmrequest.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RetryAttempt(); ok {
		_spec.SetField(llmrequest.FieldRetryAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryAttempt(); ok {
		_spec.AddField(llmrequest.FieldRetryAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Cached(); ok {
		_spec.SetField(llmrequest.FieldCached, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExecutionTimeMs(); ok {
		_spec.SetField(llmrequest.FieldExecutionTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExecutionTimeMs(); ok {
		_spec.AddField(llmrequest.FieldExecutionTimeMs, field.TypeInt, value)
	}
	if _u.mutation.ExecutionTimeMsCleared() {
		_spec.ClearField(llmrequest.FieldExecutionTimeMs, field.TypeInt)
	}
	if value, ok := _u.mutation.FlowRunID(); ok {
		_spec.SetField(llmrequest.FieldFlowRunID, field.TypeString, value)
	}
	if _u.mutation.FlowRunIDCleared() {
		_spec.ClearField(llmrequest.FieldFlowRunID, field.TypeString)
	}
	if value, ok := _u.mutation.StepRunID(); ok {
		_spec.SetField(llmrequest.FieldStepRunID, field.TypeString, value)
	}
	if _u.mutation.StepRunIDCleared() {
		_spec.ClearField(llmrequest.FieldStepRunID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(llmrequest.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ResponseCreatedAt(); ok {
		_spec.SetField(llmrequest.FieldResponseCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ResponseCreatedAtCleared() {
		_spec.ClearField(llmrequest.FieldResponseCreatedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{llmrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LLMRequestUpdateOne is the builder for updating a single LLMRequest entity.
type LLMRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LLMRequestMutation
}

// SetUserID sets the "user_id" field.
func (_u *LLMRequestUpdateOne) SetUserID(v string) *LLMRequestUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LLMRequestUpdateOne) SetNillableUserID(v *string) *LLMRequestUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *LLMRequestUpdateOne) ClearUserID() *LLMRequestUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetProvider sets the "provider" field.
func (_u *LLMRequestUpdateOne) SetProvider(v string) *LLMRequestUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *LLMRequestUpdateOne) SetNillableProvider(v *string) *LLMRequestUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *LLMRequestUpdateOne) SetModel(v string) *LLMRequestUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *LLMRequestUpdateOne) SetNillableModel(v *string) *LLMRequestUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetAPIVariant sets the "api_variant" field.
func (_u *LLMRequestUpdateOne) SetAPIVariant(v llmrequest.APIVariant) *LLMRequestUpdateOne {
	_u.mutation.SetAPIVariant(v)
	return _u
}

// SetNillableAPIVariant sets the "api_variant" field if the given value is not nil.
func (_u *LLMRequestUpdateOne) SetNillableAPIVariant(v *llmrequest.APIVariant) *LLMRequestUpdateOne {
	if v != nil {
		_u.SetAPIVariant(*v)
	}
	return _u
}

// SetMessages sets the "messages" field.
func (_u *LLMRequestUpdateOne) SetMessages(v []models.ChatMessage) *LLMRequestUpdateOne {
	_u.mutation.SetMessages(v)
	return _u
}

// AppendMessages appends value to the "messages" field.
func (_u *LLMRequestUpdateOne) AppendMessages(v []models.ChatMessage) *LLMRequestUpdateOne {
	_u.mutation.AppendMessages(v)
	return _u
}

// ClearMessages clears the value of the "messages" field.
func (_u *LLMRequestUpdateOne) ClearMessages() *LLMRequestUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// SetRequestPayload sets the "request_payload" field.
func (_u *LLMRequestUpdateOne) SetRequestPayload(v map[string]interface{}) *LLMRequestUpdateOne {
	_u.mutation.SetRequestPayload(v)
	return _u
}

// ClearRequestPayload clears the value of the "request_payload" field.
func (_u *LLMRequestUpdateOne) ClearRequestPayload() *LLMRequestUpdateOne {
	_u.mutation.ClearRequestPayload()
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *LLMRequestUpdateOne) SetTemperature(v float64) *LLMRequestUpdateOne {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *LLMRequestUpdateOne) SetNillableTemperature(v *float64) *LLMRequestUpdateOne {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *LLMRequestUpdateOne) AddTemperature(v float64) *LLMRequestUpdateOne {
	_u.mutation.AddTemperature(v)
	return _u
}

// ClearTemperature clears the value of the "temperature" field.
func (_u *LLMRequestUpdateOne) ClearTemperature() *LLMRequestUpdateOne {
	_u.mutation.ClearTemperature()
	return _u
}

// SetMaxOutputTokens sets the "max_output_tokens" field.
func (_u *LLMRequestUpdateOne) SetMaxOutputTokens(v int) *LLMRequestUpdateOne {
	_u.mutation.ResetMaxOutputTokens()
	_u.mutation.SetMaxOutputTokens(v)
	return _u
}

// SetNillableMaxOutputTokens sets the "max_output_tokens" field if the given value is not nil.
func (_u *LLMRequestUpdateOne) SetNillableMaxOutputTokens(v *int) *LLMRequestUpdateOne {
	if v != nil {
		_u.SetMaxOutputTokens(*v)
	}
	return _u
}

// AddMaxOutputTokens adds value to the "max_output_tokens" field.
func (_u *LLMRequestUpdateOne) AddMaxOutputTokens(v int) *LLMRequestUpdateOne {
	_u.mutation.AddMaxOutputTokens(v)
	return _u
}

// ClearMaxOutputTokens clears the value of the "max_output_tokens" field.
func (_u *LLMRequestUpdateOne) ClearMaxOutputTokens() *LLMRequestUpdateOne {
	_u.mutation.ClearMaxOutputTokens()
	return _u
}

// SetResponseContent sets the "response_content" field.
func (_u *LLMRequestUpdateOne) SetResponseContent(v string) *LLMRequestUpdateOne {
	_u.mutation.SetResponseContent(v)
	return _u
}

// SetNillableResponseContent sets the "response_content" field if the given value is not nil.
func (_u *LLMRequestUpdateOne) SetNillableResponseContent(v *string) *LLMRequestUpdateOne {
	if v != nil {
		_u.SetResponseContent(*v)
	}
	return _u
}

// ClearResponseContent clears the value of the "response_content" field.
func (_u *LLMRequestUpdateOne) ClearResponseContent() *LLMRequestUpdateOne {
	_u.mutation.ClearResponseContent()
	return _u
}

// SetResponseRaw sets the "response_raw" field.
func (_u *LLMRequestUpdateOne) SetResponseRaw(v map[string]interface{}) *LLMRequestUpdateOne {
	_u.mutation.SetResponseRaw(v)
	return _u
}

// ClearResponseRaw clears the value of the "response_raw" field.
func (_u *LLMRequestUpdateOne) ClearResponseRaw() *LLMRequestUpdateOne {
	_u.mutation.ClearResponseRaw()
	return _u
}

// SetProviderResponseID sets the "provider_response_id" field.
func (_u *LLMRequestUpdateOne) SetProviderResponseID(v string) *LLMRequestUpdateOne {
	_u.mutation.SetProviderResponseID(v)
	return _u
}

// SetNillableProviderResponseID sets the "provider_response_id" field if the given value is not nil.
func (_u *LLMRequestUpdateOne) SetNillableProviderResponseID(v *string) *LLMRequestUpdateOne {
	if v != nil {
		_u.SetProviderResponseID(*v)
	}
	return _u
}

// ClearProviderResponseID clears the value of the "provider_response_id" field.
func (_u *LLMRequestUpdateOne) ClearProviderResponseID() *LLMRequestUpdateOne {
	_u.mutation.ClearProviderResponseID()
	return _u
}

// SetSystemFingerprint sets the "system_fingerprint" field.
func (_u *LLMRequestUpdateOne) SetSystemFingerprint(v string) *LLMRequestUpdateOne {
	_u.mutation.SetSystemFingerprint(v)
	return _u
}

// SetNillableSystemFingerprint sets the "system_fingerprint" field if the given value is not nil.
func (_u *LLMRequestUpdateOne) SetNillableSystemFingerprint(v *string) *LLMRequestUpdateOne {
	if v != nil {
		_u.SetSystemFingerprint(*v)
	}
	return _u
}

// ClearSystemFingerprint clears the value of the "system_fingerprint" field.
func (_u *LLMRequestUpdateOne) ClearSystemFingerprint() *LLMRequestUpdateOne {
	_u.mutation.ClearSystemFingerprint()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *LLMRequestUpdateOne) SetInputTokens(v int) *LLMRequestUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *LLMRequestUpdateOne) SetNillableInputTokens(v *int) *LLMRequestUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *LLMRequestUpdateOne) AddInputTokens(v int) *LLMRequestUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (_u *LLMRequestUpdateOne) ClearInputTokens() *LLMRequestUpdateOne {
	_u.mutation.ClearInputTokens()
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *LLMRequestUpdateOne) SetOutputTokens(v int) *LLMRequestUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *LLMRequestUpdateOne) SetNillableOutputTokens(v *int) *LLMRequestUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *LLMRequestUpdateOne) AddOutputTokens(v int) *LLMRequestUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (_u *LLMRequestUpdateOne) ClearOutputTokens() *LLMRequestUpdateOne {
	_u.mutation.ClearOutputTokens()
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *LLMRequestUpdateOne) SetTokensUsed(v int) *LLMRequestUpdateOne {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *LLMRequestUpdateOne) SetNillableTokensUsed(v *int) *LLMRequestUpdateOne {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *LLMRequestUpdateOne) AddTokensUsed(v int) *LLMRequestUpdateOne {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetCostEstimate sets the "cost_estimate" field.
func (_u *LLMRequestUpdateOne) SetCostEstimate(v float64) *LLMRequestUpdateOne {
	_u.mutation.ResetCostEstimate()
	_u.mutation.SetCostEstimate(v)
	return _u
}

// SetNillableCostEstimate sets the "cost_estimate" field if the given value is not nil.
func (_u *LLMRequestUpdateOne) SetNillableCostEstimate(v *float64) *LLMRequestUpdateOne {
	if v != nil {
		_u.SetCostEstimate(*v)
	}
	return _u
}

// AddCostEstimate adds value to the "cost_estimate" field.
func (_u *LLMRequestUpdateOne) AddCostEstimate(v float64) *LLMRequestUpdateOne {
	_u.mutation.AddCostEstimate(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *LLMRequestUpdateOne) SetStatus(v llmrequest.Status) *LLMRequestUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LLMRequestUpdateOne) SetNillableStatus(v *llmrequest.Status) *LLMRequestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorType sets the "error_type" field.
func (_u *LLMRequestUpdateOne) SetErrorType(v string) *LLMRequestUpdateOne {
	_u.mutation.SetErrorType(v)
	return _u
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_u *LLMRequestUpdateOne) SetNillableErrorType(v *string) *LLMRequestUpdateOne {
	if v != nil {
		_u.SetErrorType(*v)
	}
	return _u
}

// ClearErrorType clears the value of the "error_type" field.
func (_u *LLMRequestUpdateOne) ClearErrorType() *LLMRequestUpdateOne {
	_u.mutation.ClearErrorType()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *LLMRequestUpdateOne) SetErrorMessage(v string) *LLMRequestUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *LLMRequestUpdateOne) SetNillableErrorMessage(v *string) *LLMRequestUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *LLMRequestUpdateOne) ClearErrorMessage() *LLMRequestUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRetryAttempt sets the "retry_attempt" field.
func (_u *LLMRequestUpdateOne) SetRetryAttempt(v int) *LLMRequestUpdateOne {
	_u.mutation.ResetRetryAttempt()
	_u.mutation.SetRetryAttempt(v)
	return _u
}

// SetNillableRetryAttempt sets the "retry_attempt" field if the given value is not nil.
func (_u *LLMRequestUpdateOne) SetNillableRetryAttempt(v *int) *LLMRequestUpdateOne {
	if v != nil {
		_u.SetRetryAttempt(*v)
	}
	return _u
}

// AddRetryAttempt adds value to the "retry_attempt" field.
func (_u *LLMRequestUpdateOne) AddRetryAttempt(v int) *LLMRequestUpdateOne {
	_u.mutation.AddRetryAttempt(v)
	return _u
}

// SetCached sets the "cached" field.
func (_u *LLMRequestUpdateOne) SetCached(v bool) *LLMRequestUpdateOne {
	_u.mutation.SetCached(v)
	return _u
}

// SetNillableCached sets the "cached" field if the given value is not nil.
func (_u *LLMRequestUpdateOne) SetNillableCached(v *bool) *LLMRequestUpdateOne {
	if v != nil {
		_u.SetCached(*v)
	}
	return _u
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (_u *LLMRequestUpdateOne) SetExecutionTimeMs(v int) *LLMRequestUpdateOne {
	_u.mutation.ResetExecutionTimeMs()
	_u.mutation.SetExecutionTimeMs(v)
	return _u
}

// SetNillableExecutionTimeMs sets the "execution_time_ms" field if the given value is not nil.
func (_u *LLMRequestUpdateOne) SetNillableExecutionTimeMs(v *int) *LLMRequestUpdateOne {
	if v != nil {
		_u.SetExecutionTimeMs(*v)
	}
	return _u
}

// AddExecutionTimeMs adds value to the "execution_time_ms" field.
func (_u *LLMRequestUpdateOne) AddExecutionTimeMs(v int) *LLMRequestUpdateOne {
	_u.mutation.AddExecutionTimeMs(v)
	return _u
}

// ClearExecutionTimeMs clears the value of the "execution_time_ms" field.
func (_u *LLMRequestUpdateOne) ClearExecutionTimeMs() *LLMRequestUpdateOne {
	_u.mutation.ClearExecutionTimeMs()
	return _u
}

// SetFlowRunID sets the "flow_run_id" field.
func (_u *LLMRequestUpdateOne) SetFlowRunID(v string) *LLMRequestUpdateOne {
	_u.mutation.SetFlowRunID(v)
	return _u
}

// SetNillableFlowRunID sets the "flow_run_id" field if the given value is not nil.
func (_u *LLMRequestUpdateOne) SetNillableFlowRunID(v *string) *LLMRequestUpdateOne {
	if v != nil {
		_u.SetFlowRunID(*v)
	}
	return _u
}

// ClearFlowRunID clears the value of the "flow_run_id" field.
func (_u *LLMRequestUpdateOne) ClearFlowRunID() *LLMRequestUpdateOne {
	_u.mutation.ClearFlowRunID()
	return _u
}

// SetStepRunID sets the "step_run_id" field.
func (_u *LLMRequestUpdateOne) SetStepRunID(v string) *LLMRequestUpdateOne {
	_u.mutation.SetStepRunID(v)
	return _u
}

// SetNillableStepRunID sets the "step_run_id" field if the given value is not nil.
func (_u *LLMRequestUpdateOne) SetNillableStepRunID(v *string) *LLMRequestUpdateOne {
	if v != nil {
		_u.SetStepRunID(*v)
	}
	return _u
}

// ClearStepRunID clears the value of the "step_run_id" field.
func (_u *LLMRequestUpdateOne) ClearStepRunID() *LLMRequestUpdateOne {
	_u.mutation.ClearStepRunID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *LLMRequestUpdateOne) SetCreatedAt(v time.Time) *LLMRequestUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *LLMRequestUpdateOne) SetNillableCreatedAt(v *time.Time) *LLMRequestUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetResponseCreatedAt sets the "response_created_at" field.
func (_u *LLMRequestUpdateOne) SetResponseCreatedAt(v time.Time) *LLMRequestUpdateOne {
	_u.mutation.SetResponseCreatedAt(v)
	return _u
}

// SetNillableResponseCreatedAt sets the "response_created_at" field if the given value is not nil.
func (_u *LLMRequestUpdateOne) SetNillableResponseCreatedAt(v *time.Time) *LLMRequestUpdateOne {
	if v != nil {
		_u.SetResponseCreatedAt(*v)
	}
	return _u
}

// ClearResponseCreatedAt clears the value of the "response_created_at" field.
func (_u *LLMRequestUpdateOne) ClearResponseCreatedAt() *LLMRequestUpdateOne {
	_u.mutation.ClearResponseCreatedAt()
	return _u
}

// Mutation returns the LLMRequestMutation object of the builder.
func (_u *LLMRequestUpdateOne) Mutation() *LLMRequestMutation {
	return _u.mutation
}

// Where appends a list predicates to the LLMRequestUpdate builder.
func (_u *LLMRequestUpdateOne) Where(ps ...predicate.LLMRequest) *LLMRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LLMRequestUpdateOne) Select(field string, fields ...string) *LLMRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LLMRequest entity.
func (_u *LLMRequestUpdateOne) Save(ctx context.Context) (*LLMRequest, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LLMRequestUpdateOne) SaveX(ctx context.Context) *LLMRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LLMRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LLMRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LLMRequestUpdateOne) check() error {
	if v, ok := _u.mutation.APIVariant(); ok {
		if err := llmrequest.APIVariantValidator(v); err != nil {
			return &ValidationError{Name: "api_variant", err: fmt.Errorf(`ent: validator failed for field "LLMRequest.api_variant": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := llmrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LLMRequest.status": %w`, err)}
		}
	}
	return nil
}

func (_u *LLMRequestUpdateOne) sqlSave(ctx context.Context) (_node *LLMRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(llmrequest.Table, llmrequest.Columns, sqlgraph.NewFieldSpec(llmrequest.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LLMRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, llmrequest.FieldID)
		for _, f := range fields {
			if !llmrequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != llmrequest.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(llmrequest.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(llmrequest.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(llmrequest.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(llmrequest.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.APIVariant(); ok {
		_spec.SetField(llmrequest.FieldAPIVariant, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Messages(); ok {
		_spec.SetField(llmrequest.FieldMessages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMessages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, llmrequest.FieldMessages, value)
		})
	}
	if _u.mutation.MessagesCleared() {
		_spec.ClearField(llmrequest.FieldMessages, field.TypeJSON)
	}
	if value, ok := _u.mutation.RequestPayload(); ok {
		_spec.SetField(llmrequest.FieldRequestPayload, field.TypeJSON, value)
	}
	if _u.mutation.RequestPayloadCleared() {
		_spec.ClearField(llmrequest.FieldRequestPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(llmrequest.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(llmrequest.FieldTemperature, field.TypeFloat64, value)
	}
	if _u.mutation.TemperatureCleared() {
		_spec.ClearField(llmrequest.FieldTemperature, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MaxOutputTokens(); ok {
		_spec.SetField(llmrequest.FieldMaxOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxOutputTokens(); ok {
		_spec.AddField(llmrequest.FieldMaxOutputTokens, field.TypeInt, value)
	}
	if _u.mutation.MaxOutputTokensCleared() {
		_spec.ClearField(llmrequest.FieldMaxOutputTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.ResponseContent(); ok {
		_spec.SetField(llmrequest.FieldResponseContent, field.TypeString, value)
	}
	if _u.mutation.ResponseContentCleared() {
		_spec.ClearField(llmrequest.FieldResponseContent, field.TypeString)
	}
	if value, ok := _u.mutation.ResponseRaw(); ok {
		_spec.SetField(llmrequest.FieldResponseRaw, field.TypeJSON, value)
	}
	if _u.mutation.ResponseRawCleared() {
		_spec.ClearField(llmrequest.FieldResponseRaw, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProviderResponseID(); ok {
		_spec.SetField(llmrequest.FieldProviderResponseID, field.TypeString, value)
	}
	if _u.mutation.ProviderResponseIDCleared() {
		_spec.ClearField(llmrequest.FieldProviderResponseID, field.TypeString)
	}
	if value, ok := _u.mutation.SystemFingerprint(); ok {
		_spec.SetField(llmrequest.FieldSystemFingerprint, field.TypeString, value)
	}
	if _u.mutation.SystemFingerprintCleared() {
		_spec.ClearField(llmrequest.FieldSystemFingerprint, field.TypeString)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(llmrequest.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(llmrequest.FieldInputTokens, field.TypeInt, value)
	}
	if _u.mutation.InputTokensCleared() {
		_spec.ClearField(llmrequest.FieldInputTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(llmrequest.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(llmrequest.FieldOutputTokens, field.TypeInt, value)
	}
	if _u.mutation.OutputTokensCleared() {
		_spec.ClearField(llmrequest.FieldOutputTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(llmrequest.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(llmrequest.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CostEstimate(); ok {
		_spec.SetField(llmrequest.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostEstimate(); ok {
		_spec.AddField(llmrequest.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(llmrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorType(); ok {
		_spec.SetField(llmrequest.FieldErrorType, field.TypeString, value)
	}
	if _u.mutation.ErrorTypeCleared() {
		_spec.ClearField(llmrequest.FieldErrorType, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(llmrequest.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(llmrequest.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RetryAttempt(); ok {
		_spec.SetField(llmrequest.FieldRetryAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryAttempt(); ok {
		_spec.AddField(llmrequest.FieldRetryAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Cached(); ok {
		_spec.SetField(llmrequest.FieldCached, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExecutionTimeMs(); ok {
		_spec.SetField(llmrequest.FieldExecutionTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExecutionTimeMs(); ok {
		_spec.AddField(llmrequest.FieldExecutionTimeMs, field.TypeInt, value)
	}
	if _u.mutation.ExecutionTimeMsCleared() {
		_spec.ClearField(llmrequest.FieldExecutionTimeMs, field.TypeInt)
	}
	if value, ok := _u.mutation.FlowRunID(); ok {
		_spec.SetField(llmrequest.FieldFlowRunID, field.TypeString, value)
	}
	if _u.mutation.FlowRunIDCleared() {
		_spec.ClearField(llmrequest.FieldFlowRunID, field.TypeString)
	}
	if value, ok := _u.mutation.StepRunID(); ok {
		_spec.SetField(llmrequest.FieldStepRunID, field.TypeString, value)
	}
	if _u.mutation.StepRunIDCleared() {
		_spec.ClearField(llmrequest.FieldStepRunID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(llmrequest.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ResponseCreatedAt(); ok {
		_spec.SetField(llmrequest.FieldResponseCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ResponseCreatedAtCleared() {
		_spec.ClearField(llmrequest.FieldResponseCreatedAt, field.TypeTime)
	}
	_node = &LLMRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{llmrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
