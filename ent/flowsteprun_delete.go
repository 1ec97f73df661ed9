// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/brianfields/deeplearn-sub002/ent/flowsteprun"
	"github.com/brianfields/deeplearn-sub002/ent/predicate"
)

// FlowStepRunDelete is the builder for deleting a FlowStepRun entity.
type FlowStepRunDelete struct {
	config
	hooks    []Hook
	mutation *FlowStepRunMutation
}

// Where appends a list predicates to the FlowStepRunDelete builder.
func (_d *FlowStepRunDelete) Where(ps ...predicate.FlowStepRun) *FlowStepRunDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *FlowStepRunDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FlowStepRunDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *FlowStepRunDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(flowsteprun.Table, sqlgraph.NewFieldSpec(flowsteprun.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// FlowStepRunDeleteOne is the builder for deleting a single FlowStepRun entity.
type FlowStepRunDeleteOne struct {
	_d *FlowStepRunDelete
}

// Where appends a list predicates to the FlowStepRunDelete builder.
func (_d *FlowStepRunDeleteOne) Where(ps ...predicate.FlowStepRun) *FlowStepRunDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *FlowStepRunDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{flowsteprun.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FlowStepRunDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
