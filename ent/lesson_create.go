// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/brianfields/deeplearn-sub002/ent/lesson"
	"github.com/brianfields/deeplearn-sub002/ent/unit"
	"github.com/brianfields/deeplearn-sub002/pkg/models"
)

// LessonCreate is the builder for creating a Lesson entity.
type LessonCreate struct {
	config
	mutation *LessonMutation
	hooks    []Hook
}

// SetUnitID sets the "unit_id" field.
func (_c *LessonCreate) SetUnitID(v string) *LessonCreate {
	_c.mutation.SetUnitID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *LessonCreate) SetTitle(v string) *LessonCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetLearnerLevel sets the "learner_level" field.
func (_c *LessonCreate) SetLearnerLevel(v lesson.LearnerLevel) *LessonCreate {
	_c.mutation.SetLearnerLevel(v)
	return _c
}

// SetNillableLearnerLevel sets the "learner_level" field if the given value is not nil.
func (_c *LessonCreate) SetNillableLearnerLevel(v *lesson.LearnerLevel) *LessonCreate {
	if v != nil {
		_c.SetLearnerLevel(*v)
	}
	return _c
}

// SetSourceMaterial sets the "source_material" field.
func (_c *LessonCreate) SetSourceMaterial(v string) *LessonCreate {
	_c.mutation.SetSourceMaterial(v)
	return _c
}

// SetNillableSourceMaterial sets the "source_material" field if the given value is not nil.
func (_c *LessonCreate) SetNillableSourceMaterial(v *string) *LessonCreate {
	if v != nil {
		_c.SetSourceMaterial(*v)
	}
	return _c
}

// SetPackage sets the "package" field.
func (_c *LessonCreate) SetPackage(v *models.LessonPackage) *LessonCreate {
	_c.mutation.SetPackage(v)
	return _c
}

// SetPackageVersion sets the "package_version" field.
func (_c *LessonCreate) SetPackageVersion(v int) *LessonCreate {
	_c.mutation.SetPackageVersion(v)
	return _c
}

// SetNillablePackageVersion sets the "package_version" field if the given value is not nil.
func (_c *LessonCreate) SetNillablePackageVersion(v *int) *LessonCreate {
	if v != nil {
		_c.SetPackageVersion(*v)
	}
	return _c
}

// SetFlowRunID sets the "flow_run_id" field.
func (_c *LessonCreate) SetFlowRunID(v string) *LessonCreate {
	_c.mutation.SetFlowRunID(v)
	return _c
}

// SetNillableFlowRunID sets the "flow_run_id" field if the given value is not nil.
func (_c *LessonCreate) SetNillableFlowRunID(v *string) *LessonCreate {
	if v != nil {
		_c.SetFlowRunID(*v)
	}
	return _c
}

// SetPodcastTranscript sets the "podcast_transcript" field.
func (_c *LessonCreate) SetPodcastTranscript(v string) *LessonCreate {
	_c.mutation.SetPodcastTranscript(v)
	return _c
}

// SetNillablePodcastTranscript sets the "podcast_transcript" field if the given value is not nil.
func (_c *LessonCreate) SetNillablePodcastTranscript(v *string) *LessonCreate {
	if v != nil {
		_c.SetPodcastTranscript(*v)
	}
	return _c
}

// SetPodcastAudioID sets the "podcast_audio_id" field.
func (_c *LessonCreate) SetPodcastAudioID(v string) *LessonCreate {
	_c.mutation.SetPodcastAudioID(v)
	return _c
}

// SetNillablePodcastAudioID sets the "podcast_audio_id" field if the given value is not nil.
func (_c *LessonCreate) SetNillablePodcastAudioID(v *string) *LessonCreate {
	if v != nil {
		_c.SetPodcastAudioID(*v)
	}
	return _c
}

// SetPodcastDurationSeconds sets the "podcast_duration_seconds" field.
func (_c *LessonCreate) SetPodcastDurationSeconds(v float64) *LessonCreate {
	_c.mutation.SetPodcastDurationSeconds(v)
	return _c
}

// SetNillablePodcastDurationSeconds sets the "podcast_duration_seconds" field if the given value is not nil.
func (_c *LessonCreate) SetNillablePodcastDurationSeconds(v *float64) *LessonCreate {
	if v != nil {
		_c.SetPodcastDurationSeconds(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LessonCreate) SetCreatedAt(v time.Time) *LessonCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LessonCreate) SetNillableCreatedAt(v *time.Time) *LessonCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LessonCreate) SetUpdatedAt(v time.Time) *LessonCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LessonCreate) SetNillableUpdatedAt(v *time.Time) *LessonCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LessonCreate) SetID(v string) *LessonCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetUnit sets the "unit" edge to the Unit entity.
func (_c *LessonCreate) SetUnit(v *Unit) *LessonCreate {
	return _c.SetUnitID(v.ID)
}

// Mutation returns the LessonMutation object of the builder.
func (_c *LessonCreate) Mutation() *LessonMutation {
	return _c.mutation
}

// Save creates the Lesson in the database.
func (_c *LessonCreate) Save(ctx context.Context) (*Lesson, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonCreate) SaveX(ctx context.Context) *Lesson {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LessonCreate) defaults() {
	if _, ok := _c.mutation.LearnerLevel(); !ok {
		v := lesson.DefaultLearnerLevel
		_c.mutation.SetLearnerLevel(v)
	}
	if _, ok := _c.mutation.PackageVersion(); !ok {
		v := lesson.DefaultPackageVersion
		_c.mutation.SetPackageVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := lesson.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := lesson.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonCreate) check() error {
	if _, ok := _c.mutation.UnitID(); !ok {
		return &ValidationError{Name: "unit_id", err: errors.New(`ent: missing required field "Lesson.unit_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Lesson.title"`)}
	}
	if _, ok := _c.mutation.LearnerLevel(); !ok {
		return &ValidationError{Name: "learner_level", err: errors.New(`ent: missing required field "Lesson.learner_level"`)}
	}
	if v, ok := _c.mutation.LearnerLevel(); ok {
		if err := lesson.LearnerLevelValidator(v); err != nil {
			return &ValidationError{Name: "learner_level", err: fmt.Errorf(`ent: validator failed for field "Lesson.learner_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Package(); !ok {
		return &ValidationError{Name: "package", err: errors.New(`ent: missing required field "Lesson.package"`)}
	}
	if v, ok := _c.mutation.Package(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "package", err: fmt.Errorf(`ent: validator failed for field "Lesson.package": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PackageVersion(); !ok {
		return &ValidationError{Name: "package_version", err: errors.New(`ent: missing required field "Lesson.package_version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Lesson.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Lesson.updated_at"`)}
	}
	if len(_c.mutation.UnitIDs()) == 0 {
		return &ValidationError{Name: "unit", err: errors.New(`ent: missing required edge "Lesson.unit"`)}
	}
	return nil
}

func (_c *LessonCreate) sqlSave(ctx context.Context) (*Lesson, error) {
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
			return nil, fmt.Errorf("unexpected Lesson.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LessonCreate) createSpec() (*Lesson, *sqlgraph.CreateSpec) {
	var (
		_node = &Lesson{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lesson.Table, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(lesson.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.LearnerLevel(); ok {
		_spec.SetField(lesson.FieldLearnerLevel, field.TypeEnum, value)
		_node.LearnerLevel = value
	}
	if value, ok := _c.mutation.SourceMaterial(); ok {
		_spec.SetField(lesson.FieldSourceMaterial, field.TypeString, value)
		_node.SourceMaterial = &value
	}
	if value, ok := _c.mutation.Package(); ok {
		_spec.SetField(lesson.FieldPackage, field.TypeJSON, value)
		_node.Package = value
	}
	if value, ok := _c.mutation.PackageVersion(); ok {
		_spec.SetField(lesson.FieldPackageVersion, field.TypeInt, value)
		_node.PackageVersion = value
	}
	if value, ok := _c.mutation.FlowRunID(); ok {
		_spec.SetField(lesson.FieldFlowRunID, field.TypeString, value)
		_node.FlowRunID = &value
	}
	if value, ok := _c.mutation.PodcastTranscript(); ok {
		_spec.SetField(lesson.FieldPodcastTranscript, field.TypeString, value)
		_node.PodcastTranscript = &value
	}
	if value, ok := _c.mutation.PodcastAudioID(); ok {
		_spec.SetField(lesson.FieldPodcastAudioID, field.TypeString, value)
		_node.PodcastAudioID = &value
	}
	if value, ok := _c.mutation.PodcastDurationSeconds(); ok {
		_spec.SetField(lesson.FieldPodcastDurationSeconds, field.TypeFloat64, value)
		_node.PodcastDurationSeconds = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(lesson.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(lesson.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UnitIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lesson.UnitTable,
			Columns: []string{lesson.UnitColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(unit.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UnitID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LessonCreateBulk is the builder for creating many Lesson entities in bulk.
type LessonCreateBulk struct {
	config
	err      error
	builders []*LessonCreate
}

// Save creates the Lesson entities in the database.
func (_c *LessonCreateBulk) Save(ctx context.Context) ([]*Lesson, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Lesson, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonMutation)
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
func (_c *LessonCreateBulk) SaveX(ctx context.Context) []*Lesson {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
