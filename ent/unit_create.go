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

// UnitCreate is the builder for creating a Unit entity.
type UnitCreate struct {
	config
	mutation *UnitMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *UnitCreate) SetTitle(v string) *UnitCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *UnitCreate) SetDescription(v string) *UnitCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *UnitCreate) SetNillableDescription(v *string) *UnitCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetLearnerLevel sets the "learner_level" field.
func (_c *UnitCreate) SetLearnerLevel(v unit.LearnerLevel) *UnitCreate {
	_c.mutation.SetLearnerLevel(v)
	return _c
}

// SetNillableLearnerLevel sets the "learner_level" field if the given value is not nil.
func (_c *UnitCreate) SetNillableLearnerLevel(v *unit.LearnerLevel) *UnitCreate {
	if v != nil {
		_c.SetLearnerLevel(*v)
	}
	return _c
}

// SetLearningObjectives sets the "learning_objectives" field.
func (_c *UnitCreate) SetLearningObjectives(v []models.LearningObjective) *UnitCreate {
	_c.mutation.SetLearningObjectives(v)
	return _c
}

// SetLessonOrder sets the "lesson_order" field.
func (_c *UnitCreate) SetLessonOrder(v []string) *UnitCreate {
	_c.mutation.SetLessonOrder(v)
	return _c
}

// SetTargetLessonCount sets the "target_lesson_count" field.
func (_c *UnitCreate) SetTargetLessonCount(v int) *UnitCreate {
	_c.mutation.SetTargetLessonCount(v)
	return _c
}

// SetNillableTargetLessonCount sets the "target_lesson_count" field if the given value is not nil.
func (_c *UnitCreate) SetNillableTargetLessonCount(v *int) *UnitCreate {
	if v != nil {
		_c.SetTargetLessonCount(*v)
	}
	return _c
}

// SetGeneratedFromTopic sets the "generated_from_topic" field.
func (_c *UnitCreate) SetGeneratedFromTopic(v bool) *UnitCreate {
	_c.mutation.SetGeneratedFromTopic(v)
	return _c
}

// SetNillableGeneratedFromTopic sets the "generated_from_topic" field if the given value is not nil.
func (_c *UnitCreate) SetNillableGeneratedFromTopic(v *bool) *UnitCreate {
	if v != nil {
		_c.SetGeneratedFromTopic(*v)
	}
	return _c
}

// SetSourceMaterial sets the "source_material" field.
func (_c *UnitCreate) SetSourceMaterial(v string) *UnitCreate {
	_c.mutation.SetSourceMaterial(v)
	return _c
}

// SetNillableSourceMaterial sets the "source_material" field if the given value is not nil.
func (_c *UnitCreate) SetNillableSourceMaterial(v *string) *UnitCreate {
	if v != nil {
		_c.SetSourceMaterial(*v)
	}
	return _c
}

// SetFlowType sets the "flow_type" field.
func (_c *UnitCreate) SetFlowType(v unit.FlowType) *UnitCreate {
	_c.mutation.SetFlowType(v)
	return _c
}

// SetNillableFlowType sets the "flow_type" field if the given value is not nil.
func (_c *UnitCreate) SetNillableFlowType(v *unit.FlowType) *UnitCreate {
	if v != nil {
		_c.SetFlowType(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *UnitCreate) SetStatus(v unit.Status) *UnitCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *UnitCreate) SetNillableStatus(v *unit.Status) *UnitCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *UnitCreate) SetErrorMessage(v string) *UnitCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *UnitCreate) SetNillableErrorMessage(v *string) *UnitCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreationProgress sets the "creation_progress" field.
func (_c *UnitCreate) SetCreationProgress(v *models.CreationProgress) *UnitCreate {
	_c.mutation.SetCreationProgress(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *UnitCreate) SetUserID(v string) *UnitCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *UnitCreate) SetNillableUserID(v *string) *UnitCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetIsGlobal sets the "is_global" field.
func (_c *UnitCreate) SetIsGlobal(v bool) *UnitCreate {
	_c.mutation.SetIsGlobal(v)
	return _c
}

// SetNillableIsGlobal sets the "is_global" field if the given value is not nil.
func (_c *UnitCreate) SetNillableIsGlobal(v *bool) *UnitCreate {
	if v != nil {
		_c.SetIsGlobal(*v)
	}
	return _c
}

// SetFlowRunID sets the "flow_run_id" field.
func (_c *UnitCreate) SetFlowRunID(v string) *UnitCreate {
	_c.mutation.SetFlowRunID(v)
	return _c
}

// SetNillableFlowRunID sets the "flow_run_id" field if the given value is not nil.
func (_c *UnitCreate) SetNillableFlowRunID(v *string) *UnitCreate {
	if v != nil {
		_c.SetFlowRunID(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *UnitCreate) SetPodID(v string) *UnitCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *UnitCreate) SetNillablePodID(v *string) *UnitCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetArtImageID sets the "art_image_id" field.
func (_c *UnitCreate) SetArtImageID(v string) *UnitCreate {
	_c.mutation.SetArtImageID(v)
	return _c
}

// SetNillableArtImageID sets the "art_image_id" field if the given value is not nil.
func (_c *UnitCreate) SetNillableArtImageID(v *string) *UnitCreate {
	if v != nil {
		_c.SetArtImageID(*v)
	}
	return _c
}

// SetArtImageDescription sets the "art_image_description" field.
func (_c *UnitCreate) SetArtImageDescription(v string) *UnitCreate {
	_c.mutation.SetArtImageDescription(v)
	return _c
}

// SetNillableArtImageDescription sets the "art_image_description" field if the given value is not nil.
func (_c *UnitCreate) SetNillableArtImageDescription(v *string) *UnitCreate {
	if v != nil {
		_c.SetArtImageDescription(*v)
	}
	return _c
}

// SetPodcastTranscript sets the "podcast_transcript" field.
func (_c *UnitCreate) SetPodcastTranscript(v string) *UnitCreate {
	_c.mutation.SetPodcastTranscript(v)
	return _c
}

// SetNillablePodcastTranscript sets the "podcast_transcript" field if the given value is not nil.
func (_c *UnitCreate) SetNillablePodcastTranscript(v *string) *UnitCreate {
	if v != nil {
		_c.SetPodcastTranscript(*v)
	}
	return _c
}

// SetPodcastAudioID sets the "podcast_audio_id" field.
func (_c *UnitCreate) SetPodcastAudioID(v string) *UnitCreate {
	_c.mutation.SetPodcastAudioID(v)
	return _c
}

// SetNillablePodcastAudioID sets the "podcast_audio_id" field if the given value is not nil.
func (_c *UnitCreate) SetNillablePodcastAudioID(v *string) *UnitCreate {
	if v != nil {
		_c.SetPodcastAudioID(*v)
	}
	return _c
}

// SetPodcastVoice sets the "podcast_voice" field.
func (_c *UnitCreate) SetPodcastVoice(v string) *UnitCreate {
	_c.mutation.SetPodcastVoice(v)
	return _c
}

// SetNillablePodcastVoice sets the "podcast_voice" field if the given value is not nil.
func (_c *UnitCreate) SetNillablePodcastVoice(v *string) *UnitCreate {
	if v != nil {
		_c.SetPodcastVoice(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UnitCreate) SetCreatedAt(v time.Time) *UnitCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UnitCreate) SetNillableCreatedAt(v *time.Time) *UnitCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UnitCreate) SetUpdatedAt(v time.Time) *UnitCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UnitCreate) SetNillableUpdatedAt(v *time.Time) *UnitCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *UnitCreate) SetCompletedAt(v time.Time) *UnitCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *UnitCreate) SetNillableCompletedAt(v *time.Time) *UnitCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UnitCreate) SetID(v string) *UnitCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddLessonIDs adds the "lessons" edge to the Lesson entity by IDs.
func (_c *UnitCreate) AddLessonIDs(ids ...string) *UnitCreate {
	_c.mutation.AddLessonIDs(ids...)
	return _c
}

// AddLessons adds the "lessons" edges to the Lesson entity.
func (_c *UnitCreate) AddLessons(v ...*Lesson) *UnitCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLessonIDs(ids...)
}

// Mutation returns the UnitMutation object of the builder.
func (_c *UnitCreate) Mutation() *UnitMutation {
	return _c.mutation
}

// Save creates the Unit in the database.
func (_c *UnitCreate) Save(ctx context.Context) (*Unit, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UnitCreate) SaveX(ctx context.Context) *Unit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UnitCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UnitCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UnitCreate) defaults() {
	if _, ok := _c.mutation.LearnerLevel(); !ok {
		v := unit.DefaultLearnerLevel
		_c.mutation.SetLearnerLevel(v)
	}
	if _, ok := _c.mutation.GeneratedFromTopic(); !ok {
		v := unit.DefaultGeneratedFromTopic
		_c.mutation.SetGeneratedFromTopic(v)
	}
	if _, ok := _c.mutation.FlowType(); !ok {
		v := unit.DefaultFlowType
		_c.mutation.SetFlowType(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := unit.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.IsGlobal(); !ok {
		v := unit.DefaultIsGlobal
		_c.mutation.SetIsGlobal(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := unit.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := unit.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UnitCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Unit.title"`)}
	}
	if _, ok := _c.mutation.LearnerLevel(); !ok {
		return &ValidationError{Name: "learner_level", err: errors.New(`ent: missing required field "Unit.learner_level"`)}
	}
	if v, ok := _c.mutation.LearnerLevel(); ok {
		if err := unit.LearnerLevelValidator(v); err != nil {
			return &ValidationError{Name: "learner_level", err: fmt.Errorf(`ent: validator failed for field "Unit.learner_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GeneratedFromTopic(); !ok {
		return &ValidationError{Name: "generated_from_topic", err: errors.New(`ent: missing required field "Unit.generated_from_topic"`)}
	}
	if _, ok := _c.mutation.FlowType(); !ok {
		return &ValidationError{Name: "flow_type", err: errors.New(`ent: missing required field "Unit.flow_type"`)}
	}
	if v, ok := _c.mutation.FlowType(); ok {
		if err := unit.FlowTypeValidator(v); err != nil {
			return &ValidationError{Name: "flow_type", err: fmt.Errorf(`ent: validator failed for field "Unit.flow_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Unit.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := unit.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Unit.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsGlobal(); !ok {
		return &ValidationError{Name: "is_global", err: errors.New(`ent: missing required field "Unit.is_global"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Unit.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Unit.updated_at"`)}
	}
	return nil
}

func (_c *UnitCreate) sqlSave(ctx context.Context) (*Unit, error) {
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
			return nil, fmt.Errorf("unexpected Unit.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UnitCreate) createSpec() (*Unit, *sqlgraph.CreateSpec) {
	var (
		_node = &Unit{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(unit.Table, sqlgraph.NewFieldSpec(unit.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(unit.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(unit.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.LearnerLevel(); ok {
		_spec.SetField(unit.FieldLearnerLevel, field.TypeEnum, value)
		_node.LearnerLevel = value
	}
	if value, ok := _c.mutation.LearningObjectives(); ok {
		_spec.SetField(unit.FieldLearningObjectives, field.TypeJSON, value)
		_node.LearningObjectives = value
	}
	if value, ok := _c.mutation.LessonOrder(); ok {
		_spec.SetField(unit.FieldLessonOrder, field.TypeJSON, value)
		_node.LessonOrder = value
	}
	if value, ok := _c.mutation.TargetLessonCount(); ok {
		_spec.SetField(unit.FieldTargetLessonCount, field.TypeInt, value)
		_node.TargetLessonCount = &value
	}
	if value, ok := _c.mutation.GeneratedFromTopic(); ok {
		_spec.SetField(unit.FieldGeneratedFromTopic, field.TypeBool, value)
		_node.GeneratedFromTopic = value
	}
	if value, ok := _c.mutation.SourceMaterial(); ok {
		_spec.SetField(unit.FieldSourceMaterial, field.TypeString, value)
		_node.SourceMaterial = &value
	}
	if value, ok := _c.mutation.FlowType(); ok {
		_spec.SetField(unit.FieldFlowType, field.TypeEnum, value)
		_node.FlowType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(unit.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(unit.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreationProgress(); ok {
		_spec.SetField(unit.FieldCreationProgress, field.TypeJSON, value)
		_node.CreationProgress = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(unit.FieldUserID, field.TypeString, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.IsGlobal(); ok {
		_spec.SetField(unit.FieldIsGlobal, field.TypeBool, value)
		_node.IsGlobal = value
	}
	if value, ok := _c.mutation.FlowRunID(); ok {
		_spec.SetField(unit.FieldFlowRunID, field.TypeString, value)
		_node.FlowRunID = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(unit.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.ArtImageID(); ok {
		_spec.SetField(unit.FieldArtImageID, field.TypeString, value)
		_node.ArtImageID = &value
	}
	if value, ok := _c.mutation.ArtImageDescription(); ok {
		_spec.SetField(unit.FieldArtImageDescription, field.TypeString, value)
		_node.ArtImageDescription = &value
	}
	if value, ok := _c.mutation.PodcastTranscript(); ok {
		_spec.SetField(unit.FieldPodcastTranscript, field.TypeString, value)
		_node.PodcastTranscript = &value
	}
	if value, ok := _c.mutation.PodcastAudioID(); ok {
		_spec.SetField(unit.FieldPodcastAudioID, field.TypeString, value)
		_node.PodcastAudioID = &value
	}
	if value, ok := _c.mutation.PodcastVoice(); ok {
		_spec.SetField(unit.FieldPodcastVoice, field.TypeString, value)
		_node.PodcastVoice = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(unit.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(unit.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(unit.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.LessonsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   unit.LessonsTable,
			Columns: []string{unit.LessonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// UnitCreateBulk is the builder for creating many Unit entities in bulk.
type UnitCreateBulk struct {
	config
	err      error
	builders []*UnitCreate
}

// Save creates the Unit entities in the database.
func (_c *UnitCreateBulk) Save(ctx context.Context) ([]*Unit, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Unit, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UnitMutation)
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
func (_c *UnitCreateBulk) SaveX(ctx context.Context) []*Unit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UnitCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UnitCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
