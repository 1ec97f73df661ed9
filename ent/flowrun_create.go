// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/brianfields/deeplearn-sub002/ent/flowrun"
	"github.com/brianfields/deeplearn-sub002/ent/flowsteprun"
)

// FlowRunCreate is the builder for creating a FlowRun entity.
type FlowRunCreate struct {
	config
	mutation *FlowRunMutation
	hooks    []Hook
}

// SetFlowName sets the "flow_name" field.
func (_c *FlowRunCreate) SetFlowName(v string) *FlowRunCreate {
	_c.mutation.SetFlowName(v)
	return _c
}

// SetExecutionMode sets the "execution_mode" field.
func (_c *FlowRunCreate) SetExecutionMode(v flowrun.ExecutionMode) *FlowRunCreate {
	_c.mutation.SetExecutionMode(v)
	return _c
}

// SetNillableExecutionMode sets the "execution_mode" field if the given value is not nil.
func (_c *FlowRunCreate) SetNillableExecutionMode(v *flowrun.ExecutionMode) *FlowRunCreate {
	if v != nil {
		_c.SetExecutionMode(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *FlowRunCreate) SetUserID(v string) *FlowRunCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *FlowRunCreate) SetNillableUserID(v *string) *FlowRunCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *FlowRunCreate) SetStatus(v flowrun.Status) *FlowRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *FlowRunCreate) SetNillableStatus(v *flowrun.Status) *FlowRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetInputs sets the "inputs" field.
func (_c *FlowRunCreate) SetInputs(v map[string]interface{}) *FlowRunCreate {
	_c.mutation.SetInputs(v)
	return _c
}

// SetOutputs sets the "outputs" field.
func (_c *FlowRunCreate) SetOutputs(v map[string]interface{}) *FlowRunCreate {
	_c.mutation.SetOutputs(v)
	return _c
}

// SetFlowMetadata sets the "flow_metadata" field.
func (_c *FlowRunCreate) SetFlowMetadata(v map[string]interface{}) *FlowRunCreate {
	_c.mutation.SetFlowMetadata(v)
	return _c
}

// SetCurrentStep sets the "current_step" field.
func (_c *FlowRunCreate) SetCurrentStep(v string) *FlowRunCreate {
	_c.mutation.SetCurrentStep(v)
	return _c
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_c *FlowRunCreate) SetNillableCurrentStep(v *string) *FlowRunCreate {
	if v != nil {
		_c.SetCurrentStep(*v)
	}
	return _c
}

// SetStepProgress sets the "step_progress" field.
func (_c *FlowRunCreate) SetStepProgress(v int) *FlowRunCreate {
	_c.mutation.SetStepProgress(v)
	return _c
}

// SetNillableStepProgress sets the "step_progress" field if the given value is not nil.
func (_c *FlowRunCreate) SetNillableStepProgress(v *int) *FlowRunCreate {
	if v != nil {
		_c.SetStepProgress(*v)
	}
	return _c
}

// SetTotalSteps sets the "total_steps" field.
func (_c *FlowRunCreate) SetTotalSteps(v int) *FlowRunCreate {
	_c.mutation.SetTotalSteps(v)
	return _c
}

// SetNillableTotalSteps sets the "total_steps" field if the given value is not nil.
func (_c *FlowRunCreate) SetNillableTotalSteps(v *int) *FlowRunCreate {
	if v != nil {
		_c.SetTotalSteps(*v)
	}
	return _c
}

// SetProgressPercentage sets the "progress_percentage" field.
func (_c *FlowRunCreate) SetProgressPercentage(v float64) *FlowRunCreate {
	_c.mutation.SetProgressPercentage(v)
	return _c
}

// SetNillableProgressPercentage sets the "progress_percentage" field if the given value is not nil.
func (_c *FlowRunCreate) SetNillableProgressPercentage(v *float64) *FlowRunCreate {
	if v != nil {
		_c.SetProgressPercentage(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *FlowRunCreate) SetErrorMessage(v string) *FlowRunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *FlowRunCreate) SetNillableErrorMessage(v *string) *FlowRunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FlowRunCreate) SetCreatedAt(v time.Time) *FlowRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FlowRunCreate) SetNillableCreatedAt(v *time.Time) *FlowRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *FlowRunCreate) SetStartedAt(v time.Time) *FlowRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *FlowRunCreate) SetNillableStartedAt(v *time.Time) *FlowRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *FlowRunCreate) SetCompletedAt(v time.Time) *FlowRunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *FlowRunCreate) SetNillableCompletedAt(v *time.Time) *FlowRunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_c *FlowRunCreate) SetLastHeartbeat(v time.Time) *FlowRunCreate {
	_c.mutation.SetLastHeartbeat(v)
	return _c
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_c *FlowRunCreate) SetNillableLastHeartbeat(v *time.Time) *FlowRunCreate {
	if v != nil {
		_c.SetLastHeartbeat(*v)
	}
	return _c
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (_c *FlowRunCreate) SetExecutionTimeMs(v int) *FlowRunCreate {
	_c.mutation.SetExecutionTimeMs(v)
	return _c
}

// SetNillableExecutionTimeMs sets the "execution_time_ms" field if the given value is not nil.
func (_c *FlowRunCreate) SetNillableExecutionTimeMs(v *int) *FlowRunCreate {
	if v != nil {
		_c.SetExecutionTimeMs(*v)
	}
	return _c
}

// SetTotalTokens sets the "total_tokens" field.
func (_c *FlowRunCreate) SetTotalTokens(v int) *FlowRunCreate {
	_c.mutation.SetTotalTokens(v)
	return _c
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_c *FlowRunCreate) SetNillableTotalTokens(v *int) *FlowRunCreate {
	if v != nil {
		_c.SetTotalTokens(*v)
	}
	return _c
}

// SetTotalCost sets the "total_cost" field.
func (_c *FlowRunCreate) SetTotalCost(v float64) *FlowRunCreate {
	_c.mutation.SetTotalCost(v)
	return _c
}

// SetNillableTotalCost sets the "total_cost" field if the given value is not nil.
func (_c *FlowRunCreate) SetNillableTotalCost(v *float64) *FlowRunCreate {
	if v != nil {
		_c.SetTotalCost(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FlowRunCreate) SetID(v string) *FlowRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddStepIDs adds the "steps" edge to the FlowStepRun entity by IDs.
func (_c *FlowRunCreate) AddStepIDs(ids ...string) *FlowRunCreate {
	_c.mutation.AddStepIDs(ids...)
	return _c
}

// AddSteps adds the "steps" edges to the FlowStepRun entity.
func (_c *FlowRunCreate) AddSteps(v ...*FlowStepRun) *FlowRunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStepIDs(ids...)
}

// Mutation returns the FlowRunMutation object of the builder.
func (_c *FlowRunCreate) Mutation() *FlowRunMutation {
	return _c.mutation
}

// Save creates the FlowRun in the database.
func (_c *FlowRunCreate) Save(ctx context.Context) (*FlowRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FlowRunCreate) SaveX(ctx context.Context) *FlowRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FlowRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FlowRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FlowRunCreate) defaults() {
	if _, ok := _c.mutation.ExecutionMode(); !ok {
		v := flowrun.DefaultExecutionMode
		_c.mutation.SetExecutionMode(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := flowrun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StepProgress(); !ok {
		v := flowrun.DefaultStepProgress
		_c.mutation.SetStepProgress(v)
	}
	if _, ok := _c.mutation.TotalSteps(); !ok {
		v := flowrun.DefaultTotalSteps
		_c.mutation.SetTotalSteps(v)
	}
	if _, ok := _c.mutation.ProgressPercentage(); !ok {
		v := flowrun.DefaultProgressPercentage
		_c.mutation.SetProgressPercentage(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := flowrun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		v := flowrun.DefaultTotalTokens
		_c.mutation.SetTotalTokens(v)
	}
	if _, ok := _c.mutation.TotalCost(); !ok {
		v := flowrun.DefaultTotalCost
		_c.mutation.SetTotalCost(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FlowRunCreate) check() error {
	if _, ok := _c.mutation.FlowName(); !ok {
		return &ValidationError{Name: "flow_name", err: errors.New(`ent: missing required field "FlowRun.flow_name"`)}
	}
	if _, ok := _c.mutation.ExecutionMode(); !ok {
		return &ValidationError{Name: "execution_mode", err: errors.New(`ent: missing required field "FlowRun.execution_mode"`)}
	}
	if v, ok := _c.mutation.ExecutionMode(); ok {
		if err := flowrun.ExecutionModeValidator(v); err != nil {
			return &ValidationError{Name: "execution_mode", err: fmt.Errorf(`ent: validator failed for field "FlowRun.execution_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "FlowRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := flowrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FlowRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StepProgress(); !ok {
		return &ValidationError{Name: "step_progress", err: errors.New(`ent: missing required field "FlowRun.step_progress"`)}
	}
	if _, ok := _c.mutation.TotalSteps(); !ok {
		return &ValidationError{Name: "total_steps", err: errors.New(`ent: missing required field "FlowRun.total_steps"`)}
	}
	if _, ok := _c.mutation.ProgressPercentage(); !ok {
		return &ValidationError{Name: "progress_percentage", err: errors.New(`ent: missing required field "FlowRun.progress_percentage"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FlowRun.created_at"`)}
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		return &ValidationError{Name: "total_tokens", err: errors.New(`ent: missing required field "FlowRun.total_tokens"`)}
	}
	if _, ok := _c.mutation.TotalCost(); !ok {
		return &ValidationError{Name: "total_cost", err: errors.New(`ent: missing required field "FlowRun.total_cost"`)}
	}
	return nil
}

func (_c *FlowRunCreate) sqlSave(ctx context.Context) (*FlowRun, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected FlowRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FlowRunCreate) createSpec() (*FlowRun, *sqlgraph.CreateSpec) {
	var (
		_node = &FlowRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(flowrun.Table, sqlgraph.NewFieldSpec(flowrun.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.FlowName(); ok {
		_spec.SetField(flowrun.FieldFlowName, field.TypeString, value)
		_node.FlowName = value
	}
	if value, ok := _c.mutation.ExecutionMode(); ok {
		_spec.SetField(flowrun.FieldExecutionMode, field.TypeEnum, value)
		_node.ExecutionMode = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(flowrun.FieldUserID, field.TypeString, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(flowrun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Inputs(); ok {
		_spec.SetField(flowrun.FieldInputs, field.TypeJSON, value)
		_node.Inputs = value
	}
	if value, ok := _c.mutation.Outputs(); ok {
		_spec.SetField(flowrun.FieldOutputs, field.TypeJSON, value)
		_node.Outputs = value
	}
	if value, ok := _c.mutation.FlowMetadata(); ok {
		_spec.SetField(flowrun.FieldFlowMetadata, field.TypeJSON, value)
		_node.FlowMetadata = value
	}
	if value, ok := _c.mutation.CurrentStep(); ok {
		_spec.SetField(flowrun.FieldCurrentStep, field.TypeString, value)
		_node.CurrentStep = &value
	}
	if value, ok := _c.mutation.StepProgress(); ok {
		_spec.SetField(flowrun.FieldStepProgress, field.TypeInt, value)
		_node.StepProgress = value
	}
	if value, ok := _c.mutation.TotalSteps(); ok {
		_spec.SetField(flowrun.FieldTotalSteps, field.TypeInt, value)
		_node.TotalSteps = value
	}
	if value, ok := _c.mutation.ProgressPercentage(); ok {
		_spec.SetField(flowrun.FieldProgressPercentage, field.TypeFloat64, value)
		_node.ProgressPercentage = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(flowrun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(flowrun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(flowrun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(flowrun.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.LastHeartbeat(); ok {
		_spec.SetField(flowrun.FieldLastHeartbeat, field.TypeTime, value)
		_node.LastHeartbeat = &value
	}
	if value, ok := _c.mutation.ExecutionTimeMs(); ok {
		_spec.SetField(flowrun.FieldExecutionTimeMs, field.TypeInt, value)
		_node.ExecutionTimeMs = &value
	}
	if value, ok := _c.mutation.TotalTokens(); ok {
		_spec.SetField(flowrun.FieldTotalTokens, field.TypeInt, value)
		_node.TotalTokens = value
	}
	if value, ok := _c.mutation.TotalCost(); ok {
		_spec.SetField(flowrun.FieldTotalCost, field.TypeFloat64, value)
		_node.TotalCost = value
	}
	if nodes := _c.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FlowRunCreateBulk is the builder for creating many FlowRun entities in bulk.
type FlowRunCreateBulk struct {
	config
	err      error
	builders []*FlowRunCreate
}

// Save creates the FlowRun entities in the database.
func (_c *FlowRunCreateBulk) Save(ctx context.Context) ([]*FlowRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FlowRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FlowRunMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *FlowRunCreateBulk) SaveX(ctx context.Context) []*FlowRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FlowRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FlowRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
