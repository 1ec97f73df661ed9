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

// FlowStepRunCreate is the builder for creating a FlowStepRun entity.
type FlowStepRunCreate struct {
	config
	mutation *FlowStepRunMutation
	hooks    []Hook
}

// SetFlowRunID sets the "flow_run_id" field.
func (_c *FlowStepRunCreate) SetFlowRunID(v string) *FlowStepRunCreate {
	_c.mutation.SetFlowRunID(v)
	return _c
}

// SetStepName sets the "step_name" field.
func (_c *FlowStepRunCreate) SetStepName(v string) *FlowStepRunCreate {
	_c.mutation.SetStepName(v)
	return _c
}

// SetStepOrder sets the "step_order" field.
func (_c *FlowStepRunCreate) SetStepOrder(v int) *FlowStepRunCreate {
	_c.mutation.SetStepOrder(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *FlowStepRunCreate) SetStatus(v flowsteprun.Status) *FlowStepRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *FlowStepRunCreate) SetNillableStatus(v *flowsteprun.Status) *FlowStepRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetInputs sets the "inputs" field.
func (_c *FlowStepRunCreate) SetInputs(v map[string]interface{}) *FlowStepRunCreate {
	_c.mutation.SetInputs(v)
	return _c
}

// SetOutputs sets the "outputs" field.
func (_c *FlowStepRunCreate) SetOutputs(v map[string]interface{}) *FlowStepRunCreate {
	_c.mutation.SetOutputs(v)
	return _c
}

// SetStepMetadata sets the "step_metadata" field.
func (_c *FlowStepRunCreate) SetStepMetadata(v map[string]interface{}) *FlowStepRunCreate {
	_c.mutation.SetStepMetadata(v)
	return _c
}

// SetTokensUsed sets the "tokens_used" field.
func (_c *FlowStepRunCreate) SetTokensUsed(v int) *FlowStepRunCreate {
	_c.mutation.SetTokensUsed(v)
	return _c
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_c *FlowStepRunCreate) SetNillableTokensUsed(v *int) *FlowStepRunCreate {
	if v != nil {
		_c.SetTokensUsed(*v)
	}
	return _c
}

// SetCostEstimate sets the "cost_estimate" field.
func (_c *FlowStepRunCreate) SetCostEstimate(v float64) *FlowStepRunCreate {
	_c.mutation.SetCostEstimate(v)
	return _c
}

// SetNillableCostEstimate sets the "cost_estimate" field if the given value is not nil.
func (_c *FlowStepRunCreate) SetNillableCostEstimate(v *float64) *FlowStepRunCreate {
	if v != nil {
		_c.SetCostEstimate(*v)
	}
	return _c
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (_c *FlowStepRunCreate) SetExecutionTimeMs(v int) *FlowStepRunCreate {
	_c.mutation.SetExecutionTimeMs(v)
	return _c
}

// SetNillableExecutionTimeMs sets the "execution_time_ms" field if the given value is not nil.
func (_c *FlowStepRunCreate) SetNillableExecutionTimeMs(v *int) *FlowStepRunCreate {
	if v != nil {
		_c.SetExecutionTimeMs(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *FlowStepRunCreate) SetErrorMessage(v string) *FlowStepRunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *FlowStepRunCreate) SetNillableErrorMessage(v *string) *FlowStepRunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetLlmRequestID sets the "llm_request_id" field.
func (_c *FlowStepRunCreate) SetLlmRequestID(v string) *FlowStepRunCreate {
	_c.mutation.SetLlmRequestID(v)
	return _c
}

// SetNillableLlmRequestID sets the "llm_request_id" field if the given value is not nil.
func (_c *FlowStepRunCreate) SetNillableLlmRequestID(v *string) *FlowStepRunCreate {
	if v != nil {
		_c.SetLlmRequestID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FlowStepRunCreate) SetCreatedAt(v time.Time) *FlowStepRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FlowStepRunCreate) SetNillableCreatedAt(v *time.Time) *FlowStepRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *FlowStepRunCreate) SetCompletedAt(v time.Time) *FlowStepRunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *FlowStepRunCreate) SetNillableCompletedAt(v *time.Time) *FlowStepRunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FlowStepRunCreate) SetID(v string) *FlowStepRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetFlowRun sets the "flow_run" edge to the FlowRun entity.
func (_c *FlowStepRunCreate) SetFlowRun(v *FlowRun) *FlowStepRunCreate {
	return _c.SetFlowRunID(v.ID)
}

// Mutation returns the FlowStepRunMutation object of the builder.
func (_c *FlowStepRunCreate) Mutation() *FlowStepRunMutation {
	return _c.mutation
}

// Save creates the FlowStepRun in the database.
func (_c *FlowStepRunCreate) Save(ctx context.Context) (*FlowStepRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FlowStepRunCreate) SaveX(ctx context.Context) *FlowStepRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FlowStepRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FlowStepRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FlowStepRunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := flowsteprun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		v := flowsteprun.DefaultTokensUsed
		_c.mutation.SetTokensUsed(v)
	}
	if _, ok := _c.mutation.CostEstimate(); !ok {
		v := flowsteprun.DefaultCostEstimate
		_c.mutation.SetCostEstimate(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := flowsteprun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FlowStepRunCreate) check() error {
	if _, ok := _c.mutation.FlowRunID(); !ok {
		return &ValidationError{Name: "flow_run_id", err: errors.New(`ent: missing required field "FlowStepRun.flow_run_id"`)}
	}
	if _, ok := _c.mutation.StepName(); !ok {
		return &ValidationError{Name: "step_name", err: errors.New(`ent: missing required field "FlowStepRun.step_name"`)}
	}
	if _, ok := _c.mutation.StepOrder(); !ok {
		return &ValidationError{Name: "step_order", err: errors.New(`ent: missing required field "FlowStepRun.step_order"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "FlowStepRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := flowsteprun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FlowStepRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		return &ValidationError{Name: "tokens_used", err: errors.New(`ent: missing required field "FlowStepRun.tokens_used"`)}
	}
	if _, ok := _c.mutation.CostEstimate(); !ok {
		return &ValidationError{Name: "cost_estimate", err: errors.New(`ent: missing required field "FlowStepRun.cost_estimate"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FlowStepRun.created_at"`)}
	}
	if len(_c.mutation.FlowRunIDs()) == 0 {
		return &ValidationError{Name: "flow_run", err: errors.New(`ent: missing required edge "FlowStepRun.flow_run"`)}
	}
	return nil
}

func (_c *FlowStepRunCreate) sqlSave(ctx context.Context) (*FlowStepRun, error) {
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
			return nil, fmt.Errorf("unexpected FlowStepRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FlowStepRunCreate) createSpec() (*FlowStepRun, *sqlgraph.CreateSpec) {
	var (
		_node = &FlowStepRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(flowsteprun.Table, sqlgraph.NewFieldSpec(flowsteprun.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StepName(); ok {
		_spec.SetField(flowsteprun.FieldStepName, field.TypeString, value)
		_node.StepName = value
	}
	if value, ok := _c.mutation.StepOrder(); ok {
		_spec.SetField(flowsteprun.FieldStepOrder, field.TypeInt, value)
		_node.StepOrder = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(flowsteprun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Inputs(); ok {
		_spec.SetField(flowsteprun.FieldInputs, field.TypeJSON, value)
		_node.Inputs = value
	}
	if value, ok := _c.mutation.Outputs(); ok {
		_spec.SetField(flowsteprun.FieldOutputs, field.TypeJSON, value)
		_node.Outputs = value
	}
	if value, ok := _c.mutation.StepMetadata(); ok {
		_spec.SetField(flowsteprun.FieldStepMetadata, field.TypeJSON, value)
		_node.StepMetadata = value
	}
	if value, ok := _c.mutation.TokensUsed(); ok {
		_spec.SetField(flowsteprun.FieldTokensUsed, field.TypeInt, value)
		_node.TokensUsed = value
	}
	if value, ok := _c.mutation.CostEstimate(); ok {
		_spec.SetField(flowsteprun.FieldCostEstimate, field.TypeFloat64, value)
		_node.CostEstimate = value
	}
	if value, ok := _c.mutation.ExecutionTimeMs(); ok {
		_spec.SetField(flowsteprun.FieldExecutionTimeMs, field.TypeInt, value)
		_node.ExecutionTimeMs = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(flowsteprun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.LlmRequestID(); ok {
		_spec.SetField(flowsteprun.FieldLlmRequestID, field.TypeString, value)
		_node.LlmRequestID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(flowsteprun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(flowsteprun.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.FlowRunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   flowsteprun.FlowRunTable,
			Columns: []string{flowsteprun.FlowRunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(flowrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.FlowRunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FlowStepRunCreateBulk is the builder for creating many FlowStepRun entities in bulk.
type FlowStepRunCreateBulk struct {
	config
	err      error
	builders []*FlowStepRunCreate
}

// Save creates the FlowStepRun entities in the database.
func (_c *FlowStepRunCreateBulk) Save(ctx context.Context) ([]*FlowStepRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FlowStepRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FlowStepRunMutation)
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
func (_c *FlowStepRunCreateBulk) SaveX(ctx context.Context) []*FlowStepRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FlowStepRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FlowStepRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
