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
	"github.com/brianfields/deeplearn-sub002/ent/flowrun"
	"github.com/brianfields/deeplearn-sub002/ent/flowsteprun"
	"github.com/brianfields/deeplearn-sub002/ent/predicate"
)

// FlowRunUpdate is the builder for updating FlowRun entities.
type FlowRunUpdate struct {
	config
	hooks    []Hook
	mutation *FlowRunMutation
}

// Where appends a list predicates to the FlowRunUpdate builder.
func (_u *FlowRunUpdate) Where(ps ...predicate.FlowRun) *FlowRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFlowName sets the "flow_name" field.
func (_u *FlowRunUpdate) SetFlowName(v string) *FlowRunUpdate {
	_u.mutation.SetFlowName(v)
	return _u
}

// SetNillableFlowName sets the "flow_name" field if the given value is not nil.
func (_u *FlowRunUpdate) SetNillableFlowName(v *string) *FlowRunUpdate {
	if v != nil {
		_u.SetFlowName(*v)
	}
	return _u
}

// SetExecutionMode sets the "execution_mode" field.
func (_u *FlowRunUpdate) SetExecutionMode(v flowrun.ExecutionMode) *FlowRunUpdate {
	_u.mutation.SetExecutionMode(v)
	return _u
}

// SetNillableExecutionMode sets the "execution_mode" field if the given value is not nil.
func (_u *FlowRunUpdate) SetNillableExecutionMode(v *flowrun.ExecutionMode) *FlowRunUpdate {
	if v != nil {
		_u.SetExecutionMode(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *FlowRunUpdate) SetUserID(v string) *FlowRunUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *FlowRunUpdate) SetNillableUserID(v *string) *FlowRunUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *FlowRunUpdate) ClearUserID() *FlowRunUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *FlowRunUpdate) SetStatus(v flowrun.Status) *FlowRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FlowRunUpdate) SetNillableStatus(v *flowrun.Status) *FlowRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInputs sets the "inputs" field.
func (_u *FlowRunUpdate) SetInputs(v map[string]interface{}) *FlowRunUpdate {
	_u.mutation.SetInputs(v)
	return _u
}

// ClearInputs clears the value of the "inputs" field.
func (_u *FlowRunUpdate) ClearInputs() *FlowRunUpdate {
	_u.mutation.ClearInputs()
	return _u
}

// SetOutputs sets the "outputs" field.
func (_u *FlowRunUpdate) SetOutputs(v map[string]interface{}) *FlowRunUpdate {
	_u.mutation.SetOutputs(v)
	return _u
}

// ClearOutputs clears the value of the "outputs" field.
func (_u *FlowRunUpdate) ClearOutputs() *FlowRunUpdate {
	_u.mutation.ClearOutputs()
	return _u
}

// SetFlowMetadata sets the "flow_metadata" field.
func (_u *FlowRunUpdate) SetFlowMetadata(v map[string]interface{}) *FlowRunUpdate {
	_u.mutation.SetFlowMetadata(v)
	return _u
}

// ClearFlowMetadata clears the value of the "flow_metadata" field.
func (_u *FlowRunUpdate) ClearFlowMetadata() *FlowRunUpdate {
	_u.mutation.ClearFlowMetadata()
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *FlowRunUpdate) SetCurrentStep(v string) *FlowRunUpdate {
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *FlowRunUpdate) SetNillableCurrentStep(v *string) *FlowRunUpdate {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// ClearCurrentStep clears the value of the "current_step" field.
func (_u *FlowRunUpdate) ClearCurrentStep() *FlowRunUpdate {
	_u.mutation.ClearCurrentStep()
	return _u
}

// SetStepProgress sets the "step_progress" field.
func (_u *FlowRunUpdate) SetStepProgress(v int) *FlowRunUpdate {
	_u.mutation.ResetStepProgress()
	_u.mutation.SetStepProgress(v)
	return _u
}

// SetNillableStepProgress sets the "step_progress" field if the given value is not nil.
func (_u *FlowRunUpdate) SetNillableStepProgress(v *int) *FlowRunUpdate {
	if v != nil {
		_u.SetStepProgress(*v)
	}
	return _u
}

// AddStepProgress adds value to the "step_progress" field.
func (_u *FlowRunUpdate) AddStepProgress(v int) *FlowRunUpdate {
	_u.mutation.AddStepProgress(v)
	return _u
}

// SetTotalSteps sets the "total_steps" field.
func (_u *FlowRunUpdate) SetTotalSteps(v int) *FlowRunUpdate {
	_u.mutation.ResetTotalSteps()
	_u.mutation.SetTotalSteps(v)
	return _u
}

// SetNillableTotalSteps sets the "total_steps" field if the given value is not nil.
func (_u *FlowRunUpdate) SetNillableTotalSteps(v *int) *FlowRunUpdate {
	if v != nil {
		_u.SetTotalSteps(*v)
	}
	return _u
}

// AddTotalSteps adds value to the "total_steps" field.
func (_u *FlowRunUpdate) AddTotalSteps(v int) *FlowRunUpdate {
	_u.mutation.AddTotalSteps(v)
	return _u
}

// SetProgressPercentage sets the "progress_percentage" field.
func (_u *FlowRunUpdate) SetProgressPercentage(v float64) *FlowRunUpdate {
	_u.mutation.ResetProgressPercentage()
	_u.mutation.SetProgressPercentage(v)
	return _u
}

// SetNillableProgressPercentage sets the "progress_percentage" field if the given value is not nil.
func (_u *FlowRunUpdate) SetNillableProgressPercentage(v *float64) *FlowRunUpdate {
	if v != nil {
		_u.SetProgressPercentage(*v)
	}
	return _u
}

// AddProgressPercentage adds value to the "progress_percentage" field.
func (_u *FlowRunUpdate) AddProgressPercentage(v float64) *FlowRunUpdate {
	_u.mutation.AddProgressPercentage(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *FlowRunUpdate) SetErrorMessage(v string) *FlowRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *FlowRunUpdate) SetNillableErrorMessage(v *string) *FlowRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *FlowRunUpdate) ClearErrorMessage() *FlowRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FlowRunUpdate) SetCreatedAt(v time.Time) *FlowRunUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FlowRunUpdate) SetNillableCreatedAt(v *time.Time) *FlowRunUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *FlowRunUpdate) SetStartedAt(v time.Time) *FlowRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *FlowRunUpdate) SetNillableStartedAt(v *time.Time) *FlowRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *FlowRunUpdate) ClearStartedAt() *FlowRunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *FlowRunUpdate) SetCompletedAt(v time.Time) *FlowRunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *FlowRunUpdate) SetNillableCompletedAt(v *time.Time) *FlowRunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *FlowRunUpdate) ClearCompletedAt() *FlowRunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_u *FlowRunUpdate) SetLastHeartbeat(v time.Time) *FlowRunUpdate {
	_u.mutation.SetLastHeartbeat(v)
	return _u
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_u *FlowRunUpdate) SetNillableLastHeartbeat(v *time.Time) *FlowRunUpdate {
	if v != nil {
		_u.SetLastHeartbeat(*v)
	}
	return _u
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (_u *FlowRunUpdate) ClearLastHeartbeat() *FlowRunUpdate {
	_u.mutation.ClearLastHeartbeat()
	return _u
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (_u *FlowRunUpdate) SetExecutionTimeMs(v int) *FlowRunUpdate {
	_u.mutation.ResetExecutionTimeMs()
	_u.mutation.SetExecutionTimeMs(v)
	return _u
}

// SetNillableExecutionTimeMs sets the "execution_time_ms" field if the given value is not nil.
func (_u *FlowRunUpdate) SetNillableExecutionTimeMs(v *int) *FlowRunUpdate {
	if v != nil {
		_u.SetExecutionTimeMs(*v)
	}
	return _u
}

// AddExecutionTimeMs adds value to the "execution_time_ms" field.
func (_u *FlowRunUpdate) AddExecutionTimeMs(v int) *FlowRunUpdate {
	_u.mutation.AddExecutionTimeMs(v)
	return _u
}

// ClearExecutionTimeMs clears the value of the "execution_time_ms" field.
func (_u *FlowRunUpdate) ClearExecutionTimeMs() *FlowRunUpdate {
	_u.mutation.ClearExecutionTimeMs()
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *FlowRunUpdate) SetTotalTokens(v int) *FlowRunUpdate {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *FlowRunUpdate) SetNillableTotalTokens(v *int) *FlowRunUpdate {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *FlowRunUpdate) AddTotalTokens(v int) *FlowRunUpdate {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetTotalCost sets the "total_cost" field.
func (_u *FlowRunUpdate) SetTotalCost(v float64) *FlowRunUpdate {
	_u.mutation.ResetTotalCost()
	_u.mutation.SetTotalCost(v)
	return _u
}

// SetNillableTotalCost sets the "total_cost" field if the given value is not nil.
func (_u *FlowRunUpdate) SetNillableTotalCost(v *float64) *FlowRunUpdate {
	if v != nil {
		_u.SetTotalCost(*v)
	}
	return _u
}

// AddTotalCost adds value to the "total_cost" field.
func (_u *FlowRunUpdate) AddTotalCost(v float64) *FlowRunUpdate {
	_u.mutation.AddTotalCost(v)
	return _u
}

// AddStepIDs adds the "steps" edge to the FlowStepRun entity by IDs.
func (_u *FlowRunUpdate) AddStepIDs(ids ...string) *FlowRunUpdate {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the FlowStepRun entity.
func (_u *FlowRunUpdate) AddSteps(v ...*FlowStepRun) *FlowRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// Mutation returns the FlowRunMutation object of the builder.
func (_u *FlowRunUpdate) Mutation() *FlowRunMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the FlowStepRun entity.
func (_u *FlowRunUpdate) ClearSteps() *FlowRunUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to FlowStepRun entities by IDs.
func (_u *FlowRunUpdate) RemoveStepIDs(ids ...string) *FlowRunUpdate {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to FlowStepRun entities.
func (_u *FlowRunUpdate) RemoveSteps(v ...*FlowStepRun) *FlowRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FlowRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FlowRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FlowRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FlowRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FlowRunUpdate) check() error {
	if v, ok := _u.mutation.ExecutionMode(); ok {
		if err := flowrun.ExecutionModeValidator(v); err != nil {
			return &ValidationError{Name: "execution_mode", err: fmt.Errorf(`ent: validator failed for field "FlowRun.execution_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := flowrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FlowRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *FlowRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(flowrun.Table, flowrun.Columns, sqlgraph.NewFieldSpec(flowrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FlowName(); ok {
		_spec.SetField(flowrun.FieldFlowName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExecutionMode(); ok {
		_spec.SetField(flowrun.FieldExecutionMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(flowrun.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(flowrun.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(flowrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Inputs(); ok {
		_spec.SetField(flowrun.FieldInputs, field.TypeJSON, value)
	}
	if _u.mutation.InputsCleared() {
		_spec.ClearField(flowrun.FieldInputs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Outputs(); ok {
		_spec.SetField(flowrun.FieldOutputs, field.TypeJSON, value)
	}
	if _u.mutation.OutputsCleared() {
		_spec.ClearField(flowrun.FieldOutputs, field.TypeJSON)
	}
	if value, ok := _u.mutation.FlowMetadata(); ok {
		_spec.SetField(flowrun.FieldFlowMetadata, field.TypeJSON, value)
	}
	if _u.mutation.FlowMetadataCleared() {
		_spec.ClearField(flowrun.FieldFlowMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(flowrun.FieldCurrentStep, field.TypeString, value)
	}
	if _u.mutation.CurrentStepCleared() {
		_spec.ClearField(flowrun.FieldCurrentStep, field.TypeString)
	}
	if value, ok := _u.mutation.StepProgress(); ok {
		_spec.SetField(flowrun.FieldStepProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepProgress(); ok {
		_spec.AddField(flowrun.FieldStepProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalSteps(); ok {
		_spec.SetField(flowrun.FieldTotalSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalSteps(); ok {
		_spec.AddField(flowrun.FieldTotalSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProgressPercentage(); ok {
		_spec.SetField(flowrun.FieldProgressPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProgressPercentage(); ok {
		_spec.AddField(flowrun.FieldProgressPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(flowrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(flowrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(flowrun.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(flowrun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(flowrun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(flowrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(flowrun.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeat(); ok {
		_spec.SetField(flowrun.FieldLastHeartbeat, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatCleared() {
		_spec.ClearField(flowrun.FieldLastHeartbeat, field.TypeTime)
	}
	if value, ok := _u.mutation.ExecutionTimeMs(); ok {
		_spec.SetField(flowrun.FieldExecutionTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExecutionTimeMs(); ok {
		_spec.AddField(flowrun.FieldExecutionTimeMs, field.TypeInt, value)
	}
	if _u.mutation.ExecutionTimeMsCleared() {
		_spec.ClearField(flowrun.FieldExecutionTimeMs, field.TypeInt)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(flowrun.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(flowrun.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalCost(); ok {
		_spec.SetField(flowrun.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCost(); ok {
		_spec.AddField(flowrun.FieldTotalCost, field.TypeFloat64, value)
	}
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   flowrun.StepsTable,
			Columns: []string{flowrun.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(flowsteprun.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   flowrun.StepsTable,
			Columns: []string{flowrun.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(flowsteprun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   flowrun.StepsTable,
			Columns: []string{flowrun.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(flowsteprun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{flowrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FlowRunUpdateOne is the builder for updating a single FlowRun entity.
type FlowRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FlowRunMutation
}

// SetFlowName sets the "flow_name" field.
func (_u *FlowRunUpdateOne) SetFlowName(v string) *FlowRunUpdateOne {
	_u.mutation.SetFlowName(v)
	return _u
}

// SetNillableFlowName sets the "flow_name" field if the given value is not nil.
func (_u *FlowRunUpdateOne) SetNillableFlowName(v *string) *FlowRunUpdateOne {
	if v != nil {
		_u.SetFlowName(*v)
	}
	return _u
}

// SetExecutionMode sets the "execution_mode" field.
func (_u *FlowRunUpdateOne) SetExecutionMode(v flowrun.ExecutionMode) *FlowRunUpdateOne {
	_u.mutation.SetExecutionMode(v)
	return _u
}

// SetNillableExecutionMode sets the "execution_mode" field if the given value is not nil.
func (_u *FlowRunUpdateOne) SetNillableExecutionMode(v *flowrun.ExecutionMode) *FlowRunUpdateOne {
	if v != nil {
		_u.SetExecutionMode(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *FlowRunUpdateOne) SetUserID(v string) *FlowRunUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *FlowRunUpdateOne) SetNillableUserID(v *string) *FlowRunUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *FlowRunUpdateOne) ClearUserID() *FlowRunUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *FlowRunUpdateOne) SetStatus(v flowrun.Status) *FlowRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FlowRunUpdateOne) SetNillableStatus(v *flowrun.Status) *FlowRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInputs sets the "inputs" field.
func (_u *FlowRunUpdateOne) SetInputs(v map[string]interface{}) *FlowRunUpdateOne {
	_u.mutation.SetInputs(v)
	return _u
}

// ClearInputs clears the value of the "inputs" field.
func (_u *FlowRunUpdateOne) ClearInputs() *FlowRunUpdateOne {
	_u.mutation.ClearInputs()
	return _u
}

// SetOutputs sets the "outputs" field.
func (_u *FlowRunUpdateOne) SetOutputs(v map[string]interface{}) *FlowRunUpdateOne {
	_u.mutation.SetOutputs(v)
	return _u
}

// ClearOutputs clears the value of the "outputs" field.
func (_u *FlowRunUpdateOne) ClearOutputs() *FlowRunUpdateOne {
	_u.mutation.ClearOutputs()
	return _u
}

// SetFlowMetadata sets the "flow_metadata" field.
func (_u *FlowRunUpdateOne) SetFlowMetadata(v map[string]interface{}) *FlowRunUpdateOne {
	_u.mutation.SetFlowMetadata(v)
	return _u
}

// ClearFlowMetadata clears the value of the "flow_metadata" field.
func (_u *FlowRunUpdateOne) ClearFlowMetadata() *FlowRunUpdateOne {
	_u.mutation.ClearFlowMetadata()
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *FlowRunUpdateOne) SetCurrentStep(v string) *FlowRunUpdateOne {
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *FlowRunUpdateOne) SetNillableCurrentStep(v *string) *FlowRunUpdateOne {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// ClearCurrentStep clears the value of the "current_step" field.
func (_u *FlowRunUpdateOne) ClearCurrentStep() *FlowRunUpdateOne {
	_u.mutation.ClearCurrentStep()
	return _u
}

// SetStepProgress sets the "step_progress" field.
func (_u *FlowRunUpdateOne) SetStepProgress(v int) *FlowRunUpdateOne {
	_u.mutation.ResetStepProgress()
	_u.mutation.SetStepProgress(v)
	return _u
}

// SetNillableStepProgress sets the "step_progress" field if the given value is not nil.
func (_u *FlowRunUpdateOne) SetNillableStepProgress(v *int) *FlowRunUpdateOne {
	if v != nil {
		_u.SetStepProgress(*v)
	}
	return _u
}

// AddStepProgress adds value to the "step_progress" field.
func (_u *FlowRunUpdateOne) AddStepProgress(v int) *FlowRunUpdateOne {
	_u.mutation.AddStepProgress(v)
	return _u
}

// SetTotalSteps sets the "total_steps" field.
func (_u *FlowRunUpdateOne) SetTotalSteps(v int) *FlowRunUpdateOne {
	_u.mutation.ResetTotalSteps()
	_u.mutation.SetTotalSteps(v)
	return _u
}

// SetNillableTotalSteps sets the "total_steps" field if the given value is not nil.
func (_u *FlowRunUpdateOne) SetNillableTotalSteps(v *int) *FlowRunUpdateOne {
	if v != nil {
		_u.SetTotalSteps(*v)
	}
	return _u
}

// AddTotalSteps adds value to the "total_steps" field.
func (_u *FlowRunUpdateOne) AddTotalSteps(v int) *FlowRunUpdateOne {
	_u.mutation.AddTotalSteps(v)
	return _u
}

// SetProgressPercentage sets the "progress_percentage" field.
func (_u *FlowRunUpdateOne) SetProgressPercentage(v float64) *FlowRunUpdateOne {
	_u.mutation.ResetProgressPercentage()
	_u.mutation.SetProgressPercentage(v)
	return _u
}

// SetNillableProgressPercentage sets the "progress_percentage" field if the given value is not nil.
func (_u *FlowRunUpdateOne) SetNillableProgressPercentage(v *float64) *FlowRunUpdateOne {
	if v != nil {
		_u.SetProgressPercentage(*v)
	}
	return _u
}

// AddProgressPercentage adds value to the "progress_percentage" field.
func (_u *FlowRunUpdateOne) AddProgressPercentage(v float64) *FlowRunUpdateOne {
	_u.mutation.AddProgressPercentage(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *FlowRunUpdateOne) SetErrorMessage(v string) *FlowRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *FlowRunUpdateOne) SetNillableErrorMessage(v *string) *FlowRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *FlowRunUpdateOne) ClearErrorMessage() *FlowRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FlowRunUpdateOne) SetCreatedAt(v time.Time) *FlowRunUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FlowRunUpdateOne) SetNillableCreatedAt(v *time.Time) *FlowRunUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *FlowRunUpdateOne) SetStartedAt(v time.Time) *FlowRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *FlowRunUpdateOne) SetNillableStartedAt(v *time.Time) *FlowRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *FlowRunUpdateOne) ClearStartedAt() *FlowRunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *FlowRunUpdateOne) SetCompletedAt(v time.Time) *FlowRunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *FlowRunUpdateOne) SetNillableCompletedAt(v *time.Time) *FlowRunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *FlowRunUpdateOne) ClearCompletedAt() *FlowRunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_u *FlowRunUpdateOne) SetLastHeartbeat(v time.Time) *FlowRunUpdateOne {
	_u.mutation.SetLastHeartbeat(v)
	return _u
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_u *FlowRunUpdateOne) SetNillableLastHeartbeat(v *time.Time) *FlowRunUpdateOne {
	if v != nil {
		_u.SetLastHeartbeat(*v)
	}
	return _u
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (_u *FlowRunUpdateOne) ClearLastHeartbeat() *FlowRunUpdateOne {
	_u.mutation.ClearLastHeartbeat()
	return _u
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (_u *FlowRunUpdateOne) SetExecutionTimeMs(v int) *FlowRunUpdateOne {
	_u.mutation.ResetExecutionTimeMs()
	_u.mutation.SetExecutionTimeMs(v)
	return _u
}

// SetNillableExecutionTimeMs sets the "execution_time_ms" field if the given value is not nil.
func (_u *FlowRunUpdateOne) SetNillableExecutionTimeMs(v *int) *FlowRunUpdateOne {
	if v != nil {
		_u.SetExecutionTimeMs(*v)
	}
	return _u
}

// AddExecutionTimeMs adds value to the "execution_time_ms" field.
func (_u *FlowRunUpdateOne) AddExecutionTimeMs(v int) *FlowRunUpdateOne {
	_u.mutation.AddExecutionTimeMs(v)
	return _u
}

// ClearExecutionTimeMs clears the value of the "execution_time_ms" field.
func (_u *FlowRunUpdateOne) ClearExecutionTimeMs() *FlowRunUpdateOne {
	_u.mutation.ClearExecutionTimeMs()
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *FlowRunUpdateOne) SetTotalTokens(v int) *FlowRunUpdateOne {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *FlowRunUpdateOne) SetNillableTotalTokens(v *int) *FlowRunUpdateOne {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *FlowRunUpdateOne) AddTotalTokens(v int) *FlowRunUpdateOne {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetTotalCost sets the "total_cost" field.
func (_u *FlowRunUpdateOne) SetTotalCost(v float64) *FlowRunUpdateOne {
	_u.mutation.ResetTotalCost()
	_u.mutation.SetTotalCost(v)
	return _u
}

// SetNillableTotalCost sets the "total_cost" field if the given value is not nil.
func (_u *FlowRunUpdateOne) SetNillableTotalCost(v *float64) *FlowRunUpdateOne {
	if v != nil {
		_u.SetTotalCost(*v)
	}
	return _u
}

// AddTotalCost adds value to the "total_cost" field.
func (_u *FlowRunUpdateOne) AddTotalCost(v float64) *FlowRunUpdateOne {
	_u.mutation.AddTotalCost(v)
	return _u
}

// AddStepIDs adds the "steps" edge to the FlowStepRun entity by IDs.
func (_u *FlowRunUpdateOne) AddStepIDs(ids ...string) *FlowRunUpdateOne {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the FlowStepRun entity.
func (_u *FlowRunUpdateOne) AddSteps(v ...*FlowStepRun) *FlowRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// Mutation returns the FlowRunMutation object of the builder.
func (_u *FlowRunUpdateOne) Mutation() *FlowRunMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the FlowStepRun entity.
func (_u *FlowRunUpdateOne) ClearSteps() *FlowRunUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to FlowStepRun entities by IDs.
func (_u *FlowRunUpdateOne) RemoveStepIDs(ids ...string) *FlowRunUpdateOne {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to FlowStepRun entities.
func (_u *FlowRunUpdateOne) RemoveSteps(v ...*FlowStepRun) *FlowRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// Where appends a list predicates to the FlowRunUpdate builder.
func (_u *FlowRunUpdateOne) Where(ps ...predicate.FlowRun) *FlowRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FlowRunUpdateOne) Select(field string, fields ...string) *FlowRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FlowRun entity.
func (_u *FlowRunUpdateOne) Save(ctx context.Context) (*FlowRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FlowRunUpdateOne) SaveX(ctx context.Context) *FlowRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FlowRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FlowRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FlowRunUpdateOne) check() error {
	if v, ok := _u.mutation.ExecutionMode(); ok {
		if err := flowrun.ExecutionModeValidator(v); err != nil {
			return &ValidationError{Name: "execution_mode", err: fmt.Errorf(`ent: validator failed for field "FlowRun.execution_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := flowrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FlowRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *FlowRunUpdateOne) sqlSave(ctx context.Context) (_node *FlowRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(flowrun.Table, flowrun.Columns, sqlgraph.NewFieldSpec(flowrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FlowRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, flowrun.FieldID)
		for _, f := range fields {
			if !flowrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != flowrun.FieldID {
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
	if value, ok := _u.mutation.FlowName(); ok {
		_spec.SetField(flowrun.FieldFlowName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExecutionMode(); ok {
		_spec.SetField(flowrun.FieldExecutionMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(flowrun.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(flowrun.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(flowrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Inputs(); ok {
		_spec.SetField(flowrun.FieldInputs, field.TypeJSON, value)
	}
	if _u.mutation.InputsCleared() {
		_spec.ClearField(flowrun.FieldInputs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Outputs(); ok {
		_spec.SetField(flowrun.FieldOutputs, field.TypeJSON, value)
	}
	if _u.mutation.OutputsCleared() {
		_spec.ClearField(flowrun.FieldOutputs, field.TypeJSON)
	}
	if value, ok := _u.mutation.FlowMetadata(); ok {
		_spec.SetField(flowrun.FieldFlowMetadata, field.TypeJSON, value)
	}
	if _u.mutation.FlowMetadataCleared() {
		_spec.ClearField(flowrun.FieldFlowMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(flowrun.FieldCurrentStep, field.TypeString, value)
	}
	if _u.mutation.CurrentStepCleared() {
		_spec.ClearField(flowrun.FieldCurrentStep, field.TypeString)
	}
	if value, ok := _u.mutation.StepProgress(); ok {
		_spec.SetField(flowrun.FieldStepProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepProgress(); ok {
		_spec.AddField(flowrun.FieldStepProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalSteps(); ok {
		_spec.SetField(flowrun.FieldTotalSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalSteps(); ok {
		_spec.AddField(flowrun.FieldTotalSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProgressPercentage(); ok {
		_spec.SetField(flowrun.FieldProgressPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProgressPercentage(); ok {
		_spec.AddField(flowrun.FieldProgressPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(flowrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(flowrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(flowrun.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(flowrun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(flowrun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(flowrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(flowrun.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeat(); ok {
		_spec.SetField(flowrun.FieldLastHeartbeat, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatCleared() {
		_spec.ClearField(flowrun.FieldLastHeartbeat, field.TypeTime)
	}
	if value, ok := _u.mutation.ExecutionTimeMs(); ok {
		_spec.SetField(flowrun.FieldExecutionTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExecutionTimeMs(); ok {
		_spec.AddField(flowrun.FieldExecutionTimeMs, field.TypeInt, value)
	}
	if _u.mutation.ExecutionTimeMsCleared() {
		_spec.ClearField(flowrun.FieldExecutionTimeMs, field.TypeInt)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(flowrun.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(flowrun.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalCost(); ok {
		_spec.SetField(flowrun.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCost(); ok {
		_spec.AddField(flowrun.FieldTotalCost, field.TypeFloat64, value)
	}
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   flowrun.StepsTable,
			Columns: []string{flowrun.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(flowsteprun.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   flowrun.StepsTable,
			Columns: []string{flowrun.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(flowsteprun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   flowrun.StepsTable,
			Columns: []string{flowrun.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(flowsteprun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FlowRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{flowrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
