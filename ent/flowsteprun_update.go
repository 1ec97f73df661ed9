// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/brianfields/deeplearn-sub002/ent/flowsteprun"
	"github.com/brianfields/deeplearn-sub002/ent/predicate"
)

// FlowStepRunUpdate is the builder for updating FlowStepRun entities.
type FlowStepRunUpdate struct {
	config
	hooks    []Hook
	mutation *FlowStepRunMutation
}

// Where appends a list predicates to the FlowStepRunUpdate builder.
func (_u *FlowStepRunUpdate) Where(ps ...predicate.FlowStepRun) *FlowStepRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStepName sets the "step_name" field.
func (_u *FlowStepRunUpdate) SetStepName(v string) *FlowStepRunUpdate {
	_u.mutation.SetStepName(v)
	return _u
}

// SetNillableStepName sets the "step_name" field if the given value is not nil.
func (_u *FlowStepRunUpdate) SetNillableStepName(v *string) *FlowStepRunUpdate {
	if v != nil {
		_u.SetStepName(*v)
	}
	return _u
}

// SetStepOrder sets the "step_order" field.
func (_u *FlowStepRunUpdate) SetStepOrder(v int) *FlowStepRunUpdate {
	_u.mutation.ResetStepOrder()
	_u.mutation.SetStepOrder(v)
	return _u
}

// SetNillableStepOrder sets the "step_order" field if the given value is not nil.
func (_u *FlowStepRunUpdate) SetNillableStepOrder(v *int) *FlowStepRunUpdate {
	if v != nil {
		_u.SetStepOrder(*v)
	}
	return _u
}

// AddStepOrder adds value to the "step_order" field.
func (_u *FlowStepRunUpdate) AddStepOrder(v int) *FlowStepRunUpdate {
	_u.mutation.AddStepOrder(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *FlowStepRunUpdate) SetStatus(v flowsteprun.Status) *FlowStepRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FlowStepRunUpdate) SetNillableStatus(v *flowsteprun.Status) *FlowStepRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInputs sets the "inputs" field.
func (_u *FlowStepRunUpdate) SetInputs(v map[string]interface{}) *FlowStepRunUpdate {
	_u.mutation.SetInputs(v)
	return _u
}

// ClearInputs clears the value of the "inputs" field.
func (_u *FlowStepRunUpdate) ClearInputs() *FlowStepRunUpdate {
	_u.mutation.ClearInputs()
	return _u
}

// SetOutputs sets the "outputs" field.
func (_u *FlowStepRunUpdate) SetOutputs(v map[string]interface{}) *FlowStepRunUpdate {
	_u.mutation.SetOutputs(v)
	return _u
}

// ClearOutputs clears the value of the "outputs" field.
func (_u *FlowStepRunUpdate) ClearOutputs() *FlowStepRunUpdate {
	_u.mutation.ClearOutputs()
	return _u
}

// SetStepMetadata sets the "step_metadata" field.
func (_u *FlowStepRunUpdate) SetStepMetadata(v map[string]interface{}) *FlowStepRunUpdate {
	_u.mutation.SetStepMetadata(v)
	return _u
}

// ClearStepMetadata clears the value of the "step_metadata" field.
func (_u *FlowStepRunUpdate) ClearStepMetadata() *FlowStepRunUpdate {
	_u.mutation.ClearStepMetadata()
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *FlowStepRunUpdate) SetTokensUsed(v int) *FlowStepRunUpdate {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *FlowStepRunUpdate) SetNillableTokensUsed(v *int) *FlowStepRunUpdate {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *FlowStepRunUpdate) AddTokensUsed(v int) *FlowStepRunUpdate {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetCostEstimate sets the "cost_estimate" field.
func (_u *FlowStepRunUpdate) SetCostEstimate(v float64) *FlowStepRunUpdate {
	_u.mutation.ResetCostEstimate()
	_u.mutation.SetCostEstimate(v)
	return _u
}

// SetNillableCostEstimate sets the "cost_estimate" field if the given value is not nil.
func (_u *FlowStepRunUpdate) SetNillableCostEstimate(v *float64) *FlowStepRunUpdate {
	if v != nil {
		_u.SetCostEstimate(*v)
	}
	return _u
}

// AddCostEstimate adds value to the "cost_estimate" field.
func (_u *FlowStepRunUpdate) AddCostEstimate(v float64) *FlowStepRunUpdate {
	_u.mutation.AddCostEstimate(v)
	return _u
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (_u *FlowStepRunUpdate) SetExecutionTimeMs(v int) *FlowStepRunUpdate {
	_u.mutation.ResetExecutionTimeMs()
	_u.mutation.SetExecutionTimeMs(v)
	return _u
}

// SetNillableExecutionTimeMs sets the "execution_time_ms" field if the given value is not nil.
func (_u *FlowStepRunUpdate) SetNillableExecutionTimeMs(v *int) *FlowStepRunUpdate {
	if v != nil {
		_u.SetExecutionTimeMs(*v)
	}
	return _u
}

// AddExecutionTimeMs adds value to the "execution_time_ms" field.
func (_u *FlowStepRunUpdate) AddExecutionTimeMs(v int) *FlowStepRunUpdate {
	_u.mutation.AddExecutionTimeMs(v)
	return _u
}

// ClearExecutionTimeMs clears the value of the "execution_time_ms" field.
func (_u *FlowStepRunUpdate) ClearExecutionTimeMs() *FlowStepRunUpdate {
	_u.mutation.ClearExecutionTimeMs()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *FlowStepRunUpdate) SetErrorMessage(v string) *FlowStepRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *FlowStepRunUpdate) SetNillableErrorMessage(v *string) *FlowStepRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *FlowStepRunUpdate) ClearErrorMessage() *FlowStepRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetLlmRequestID sets the "llm_request_id" field.
func (_u *FlowStepRunUpdate) SetLlmRequestID(v string) *FlowStepRunUpdate {
	_u.mutation.SetLlmRequestID(v)
	return _u
}

// SetNillableLlmRequestID sets the "llm_request_id" field if the given value is not nil.
func (_u *FlowStepRunUpdate) SetNillableLlmRequestID(v *string) *FlowStepRunUpdate {
	if v != nil {
		_u.SetLlmRequestID(*v)
	}
	return _u
}

// ClearLlmRequestID clears the value of the "llm_request_id" field.
func (_u *FlowStepRunUpdate) ClearLlmRequestID() *FlowStepRunUpdate {
	_u.mutation.ClearLlmRequestID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FlowStepRunUpdate) SetCreatedAt(v time.Time) *FlowStepRunUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FlowStepRunUpdate) SetNillableCreatedAt(v *time.Time) *FlowStepRunUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *FlowStepRunUpdate) SetCompletedAt(v time.Time) *FlowStepRunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *FlowStepRunUpdate) SetNillableCompletedAt(v *time.Time) *FlowStepRunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *FlowStepRunUpdate) ClearCompletedAt() *FlowStepRunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the FlowStepRunMutation object of the builder.
func (_u *FlowStepRunUpdate) Mutation() *FlowStepRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FlowStepRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FlowStepRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FlowStepRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FlowStepRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FlowStepRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := flowsteprun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FlowStepRun.status": %w`, err)}
		}
	}
	if _u.mutation.FlowRunCleared() && len(_u.mutation.FlowRunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FlowStepRun.flow_run"`)
	}
	return nil
}

func (_u *FlowStepRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(flowsteprun.Table, flowsteprun.Columns, sqlgraph.NewFieldSpec(flowsteprun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StepName(); ok {
		_spec.SetField(flowsteprun.FieldStepName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepOrder(); ok {
		_spec.SetField(flowsteprun.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepOrder(); ok {
		_spec.AddField(flowsteprun.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(flowsteprun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Inputs(); ok {
		_spec.SetField(flowsteprun.FieldInputs, field.TypeJSON, value)
	}
	if _u.mutation.InputsCleared() {
		_spec.ClearField(flowsteprun.FieldInputs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Outputs(); ok {
		_spec.SetField(flowsteprun.FieldOutputs, field.TypeJSON, value)
	}
	if _u.mutation.OutputsCleared() {
		_spec.ClearField(flowsteprun.FieldOutputs, field.TypeJSON)
	}
	if value, ok := _u.mutation.StepMetadata(); ok {
		_spec.SetField(flowsteprun.FieldStepMetadata, field.TypeJSON, value)
	}
	if _u.mutation.StepMetadataCleared() {
		_spec.ClearField(flowsteprun.FieldStepMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(flowsteprun.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(flowsteprun.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CostEstimate(); ok {
		_spec.SetField(flowsteprun.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostEstimate(); ok {
		_spec.AddField(flowsteprun.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExecutionTimeMs(); ok {
		_spec.SetField(flowsteprun.FieldExecutionTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExecutionTimeMs(); ok {
		_spec.AddField(flowsteprun.FieldExecutionTimeMs, field.TypeInt, value)
	}
	if _u.mutation.ExecutionTimeMsCleared() {
		_spec.ClearField(flowsteprun.FieldExecutionTimeMs, field.TypeInt)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(flowsteprun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(flowsteprun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.LlmRequestID(); ok {
		_spec.SetField(flowsteprun.FieldLlmRequestID, field.TypeString, value)
	}
	if _u.mutation.LlmRequestIDCleared() {
		_spec.ClearField(flowsteprun.FieldLlmRequestID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(flowsteprun.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(flowsteprun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(flowsteprun.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{flowsteprun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FlowStepRunUpdateOne is the builder for updating a single FlowStepRun entity.
type FlowStepRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FlowStepRunMutation
}

// SetStepName sets the "step_name" field.
func (_u *FlowStepRunUpdateOne) SetStepName(v string) *FlowStepRunUpdateOne {
	_u.mutation.SetStepName(v)
	return _u
}

// SetNillableStepName sets the "step_name" field if the given value is not nil.
func (_u *FlowStepRunUpdateOne) SetNillableStepName(v *string) *FlowStepRunUpdateOne {
	if v != nil {
		_u.SetStepName(*v)
	}
	return _u
}

// SetStepOrder sets the "step_order" field.
func (_u *FlowStepRunUpdateOne) SetStepOrder(v int) *FlowStepRunUpdateOne {
	_u.mutation.ResetStepOrder()
	_u.mutation.SetStepOrder(v)
	return _u
}

// SetNillableStepOrder sets the "step_order" field if the given value is not nil.
func (_u *FlowStepRunUpdateOne) SetNillableStepOrder(v *int) *FlowStepRunUpdateOne {
	if v != nil {
		_u.SetStepOrder(*v)
	}
	return _u
}

// AddStepOrder adds value to the "step_order" field.
func (_u *FlowStepRunUpdateOne) AddStepOrder(v int) *FlowStepRunUpdateOne {
	_u.mutation.AddStepOrder(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *FlowStepRunUpdateOne) SetStatus(v flowsteprun.Status) *FlowStepRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FlowStepRunUpdateOne) SetNillableStatus(v *flowsteprun.Status) *FlowStepRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInputs sets the "inputs" field.
func (_u *FlowStepRunUpdateOne) SetInputs(v map[string]interface{}) *FlowStepRunUpdateOne {
	_u.mutation.SetInputs(v)
	return _u
}

// ClearInputs clears the value of the "inputs" field.
func (_u *FlowStepRunUpdateOne) ClearInputs() *FlowStepRunUpdateOne {
	_u.mutation.ClearInputs()
	return _u
}

// SetOutputs sets the "outputs" field.
func (_u *FlowStepRunUpdateOne) SetOutputs(v map[string]interface{}) *FlowStepRunUpdateOne {
	_u.mutation.SetOutputs(v)
	return _u
}

// ClearOutputs clears the value of the "outputs" field.
func (_u *FlowStepRunUpdateOne) ClearOutputs() *FlowStepRunUpdateOne {
	_u.mutation.ClearOutputs()
	return _u
}

// SetStepMetadata sets the "step_metadata" field.
func (_u *FlowStepRunUpdateOne) SetStepMetadata(v map[string]interface{}) *FlowStepRunUpdateOne {
	_u.mutation.SetStepMetadata(v)
	return _u
}

// ClearStepMetadata clears the value of the "step_metadata" field.
func (_u *FlowStepRunUpdateOne) ClearStepMetadata() *FlowStepRunUpdateOne {
	_u.mutation.ClearStepMetadata()
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *FlowStepRunUpdateOne) SetTokensUsed(v int) *FlowStepRunUpdateOne {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *FlowStepRunUpdateOne) SetNillableTokensUsed(v *int) *FlowStepRunUpdateOne {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *FlowStepRunUpdateOne) AddTokensUsed(v int) *FlowStepRunUpdateOne {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetCostEstimate sets the "cost_estimate" field.
func (_u *FlowStepRunUpdateOne) SetCostEstimate(v float64) *FlowStepRunUpdateOne {
	_u.mutation.ResetCostEstimate()
	_u.mutation.SetCostEstimate(v)
	return _u
}

// SetNillableCostEstimate sets the "cost_estimate" field if the given value is not nil.
func (_u *FlowStepRunUpdateOne) SetNillableCostEstimate(v *float64) *FlowStepRunUpdateOne {
	if v != nil {
		_u.SetCostEstimate(*v)
	}
	return _u
}

// AddCostEstimate adds value to the "cost_estimate" field.
func (_u *FlowStepRunUpdateOne) AddCostEstimate(v float64) *FlowStepRunUpdateOne {
	_u.mutation.AddCostEstimate(v)
	return _u
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (_u *FlowStepRunUpdateOne) SetExecutionTimeMs(v int) *FlowStepRunUpdateOne {
	_u.mutation.ResetExecutionTimeMs()
	_u.mutation.SetExecutionTimeMs(v)
	return _u
}

// SetNillableExecutionTimeMs sets the "execution_time_ms" field if the given value is not nil.
func (_u *FlowStepRunUpdateOne) SetNillableExecutionTimeMs(v *int) *FlowStepRunUpdateOne {
	if v != nil {
		_u.SetExecutionTimeMs(*v)
	}
	return _u
}

// AddExecutionTimeMs adds value to the "execution_time_ms" field.
func (_u *FlowStepRunUpdateOne) AddExecutionTimeMs(v int) *FlowStepRunUpdateOne {
	_u.mutation.AddExecutionTimeMs(v)
	return _u
}

// ClearExecutionTimeMs clears the value of the "execution_time_ms" field.
func (_u *FlowStepRunUpdateOne) ClearExecutionTimeMs() *FlowStepRunUpdateOne {
	_u.mutation.ClearExecutionTimeMs()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *FlowStepRunUpdateOne) SetErrorMessage(v string) *FlowStepRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *FlowStepRunUpdateOne) SetNillableErrorMessage(v *string) *FlowStepRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *FlowStepRunUpdateOne) ClearErrorMessage() *FlowStepRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetLlmRequestID sets the "llm_request_id" field.
func (_u *FlowStepRunUpdateOne) SetLlmRequestID(v string) *FlowStepRunUpdateOne {
	_u.mutation.SetLlmRequestID(v)
	return _u
}

// SetNillableLlmRequestID sets the "llm_request_id" field if the given value is not nil.
func (_u *FlowStepRunUpdateOne) SetNillableLlmRequestID(v *string) *FlowStepRunUpdateOne {
	if v != nil {
		_u.SetLlmRequestID(*v)
	}
	return _u
}

// ClearLlmRequestID clears the value of the "llm_request_id" field.
func (_u *FlowStepRunUpdateOne) ClearLlmRequestID() *FlowStepRunUpdateOne {
	_u.mutation.ClearLlmRequestID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FlowStepRunUpdateOne) SetCreatedAt(v time.Time) *FlowStepRunUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FlowStepRunUpdateOne) SetNillableCreatedAt(v *time.Time) *FlowStepRunUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *FlowStepRunUpdateOne) SetCompletedAt(v time.Time) *FlowStepRunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *FlowStepRunUpdateOne) SetNillableCompletedAt(v *time.Time) *FlowStepRunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *FlowStepRunUpdateOne) ClearCompletedAt() *FlowStepRunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the FlowStepRunMutation object of the builder.
func (_u *FlowStepRunUpdateOne) Mutation() *FlowStepRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the FlowStepRunUpdate builder.
func (_u *FlowStepRunUpdateOne) Where(ps ...predicate.FlowStepRun) *FlowStepRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FlowStepRunUpdateOne) Select(field string, fields ...string) *FlowStepRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FlowStepRun entity.
func (_u *FlowStepRunUpdateOne) Save(ctx context.Context) (*FlowStepRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FlowStepRunUpdateOne) SaveX(ctx context.Context) *FlowStepRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FlowStepRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FlowStepRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FlowStepRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := flowsteprun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FlowStepRun.status": %w`, err)}
		}
	}
	if _u.mutation.FlowRunCleared() && len(_u.mutation.FlowRunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FlowStepRun.flow_run"`)
	}
	return nil
}

func (_u *FlowStepRunUpdateOne) sqlSave(ctx context.Context) (_node *FlowStepRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(flowsteprun.Table, flowsteprun.Columns, sqlgraph.NewFieldSpec(flowsteprun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FlowStepRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, flowsteprun.FieldID)
		for _, f := range fields {
			if !flowsteprun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != flowsteprun.FieldID {
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
	if value, ok := _u.mutation.StepName(); ok {
		_spec.SetField(flowsteprun.FieldStepName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepOrder(); ok {
		_spec.SetField(flowsteprun.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepOrder(); ok {
		_spec.AddField(flowsteprun.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(flowsteprun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Inputs(); ok {
		_spec.SetField(flowsteprun.FieldInputs, field.TypeJSON, value)
	}
	if _u.mutation.InputsCleared() {
		_spec.ClearField(flowsteprun.FieldInputs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Outputs(); ok {
		_spec.SetField(flowsteprun.FieldOutputs, field.TypeJSON, value)
	}
	if _u.mutation.OutputsCleared() {
		_spec.ClearField(flowsteprun.FieldOutputs, field.TypeJSON)
	}
	if value, ok := _u.mutation.StepMetadata(); ok {
		_spec.SetField(flowsteprun.FieldStepMetadata, field.TypeJSON, value)
	}
	if _u.mutation.StepMetadataCleared() {
		_spec.ClearField(flowsteprun.FieldStepMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(flowsteprun.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(flowsteprun.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CostEstimate(); ok {
		_spec.SetField(flowsteprun.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostEstimate(); ok {
		_spec.AddField(flowsteprun.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExecutionTimeMs(); ok {
		_spec.SetField(flowsteprun.FieldExecutionTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExecutionTimeMs(); ok {
		_spec.AddField(flowsteprun.FieldExecutionTimeMs, field.TypeInt, value)
	}
	if _u.mutation.ExecutionTimeMsCleared() {
		_spec.ClearField(flowsteprun.FieldExecutionTimeMs, field.TypeInt)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(flowsteprun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(flowsteprun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.LlmRequestID(); ok {
		_spec.SetField(flowsteprun.FieldLlmRequestID, field.TypeString, value)
	}
	if _u.mutation.LlmRequestIDCleared() {
		_spec.ClearField(flowsteprun.FieldLlmRequestID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(flowsteprun.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(flowsteprun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(flowsteprun.FieldCompletedAt, field.TypeTime)
	}
	_node = &FlowStepRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{flowsteprun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
