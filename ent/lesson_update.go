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
	"github.com/brianfields/deeplearn-sub002/ent/lesson"
	"github.com/brianfields/deeplearn-sub002/ent/predicate"
	"github.com/brianfields/deeplearn-sub002/pkg/models"
)

// LessonUpdate is the builder for updating Lesson entities.
type LessonUpdate struct {
	config
	hooks    []Hook
	mutation *LessonMutation
}

// Where appends a list predicates to the LessonUpdate builder.
func (_u *LessonUpdate) Where(ps ...predicate.Lesson) *LessonUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *LessonUpdate) SetTitle(v string) *LessonUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableTitle(v *string) *LessonUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetLearnerLevel sets the "learner_level" field.
func (_u *LessonUpdate) SetLearnerLevel(v lesson.LearnerLevel) *LessonUpdate {
	_u.mutation.SetLearnerLevel(v)
	return _u
}

// SetNillableLearnerLevel sets the "learner_level" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableLearnerLevel(v *lesson.LearnerLevel) *LessonUpdate {
	if v != nil {
		_u.SetLearnerLevel(*v)
	}
	return _u
}

// SetSourceMaterial sets the "source_material" field.
func (_u *LessonUpdate) SetSourceMaterial(v string) *LessonUpdate {
	_u.mutation.SetSourceMaterial(v)
	return _u
}

// SetNillableSourceMaterial sets the "source_material" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableSourceMaterial(v *string) *LessonUpdate {
	if v != nil {
		_u.SetSourceMaterial(*v)
	}
	return _u
}

// ClearSourceMaterial clears the value of the "source_material" field.
func (_u *LessonUpdate) ClearSourceMaterial() *LessonUpdate {
	_u.mutation.ClearSourceMaterial()
	return _u
}

// SetPackage sets the "package" field.
func (_u *LessonUpdate) SetPackage(v *models.LessonPackage) *LessonUpdate {
	_u.mutation.SetPackage(v)
	return _u
}

// SetPackageVersion sets the "package_version" field.
func (_u *LessonUpdate) SetPackageVersion(v int) *LessonUpdate {
	_u.mutation.ResetPackageVersion()
	_u.mutation.SetPackageVersion(v)
	return _u
}

// SetNillablePackageVersion sets the "package_version" field if the given value is not nil.
func (_u *LessonUpdate) SetNillablePackageVersion(v *int) *LessonUpdate {
	if v != nil {
		_u.SetPackageVersion(*v)
	}
	return _u
}

// AddPackageVersion adds value to the "package_version" field.
func (_u *LessonUpdate) AddPackageVersion(v int) *LessonUpdate {
	_u.mutation.AddPackageVersion(v)
	return _u
}

// SetFlowRunID sets the "flow_run_id" field.
func (_u *LessonUpdate) SetFlowRunID(v string) *LessonUpdate {
	_u.mutation.SetFlowRunID(v)
	return _u
}

// SetNillableFlowRunID sets the "flow_run_id" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableFlowRunID(v *string) *LessonUpdate {
	if v != nil {
		_u.SetFlowRunID(*v)
	}
	return _u
}

// ClearFlowRunID clears the value of the "flow_run_id" field.
func (_u *LessonUpdate) ClearFlowRunID() *LessonUpdate {
	_u.mutation.ClearFlowRunID()
	return _u
}

// SetPodcastTranscript sets the "podcast_transcript" field.
func (_u *LessonUpdate) SetPodcastTranscript(v string) *LessonUpdate {
	_u.mutation.SetPodcastTranscript(v)
	return _u
}

// SetNillablePodcastTranscript sets the "podcast_transcript" field if the given value is not nil.
func (_u *LessonUpdate) SetNillablePodcastTranscript(v *string) *LessonUpdate {
	if v != nil {
		_u.SetPodcastTranscript(*v)
	}
	return _u
}

// ClearPodcastTranscript clears the value of the "podcast_transcript" field.
func (_u *LessonUpdate) ClearPodcastTranscript() *LessonUpdate {
	_u.mutation.ClearPodcastTranscript()
	return _u
}

// SetPodcastAudioID sets the "podcast_audio_id" field.
func (_u *LessonUpdate) SetPodcastAudioID(v string) *LessonUpdate {
	_u.mutation.SetPodcastAudioID(v)
	return _u
}

// SetNillablePodcastAudioID sets the "podcast_audio_id" field if the given value is not nil.
func (_u *LessonUpdate) SetNillablePodcastAudioID(v *string) *LessonUpdate {
	if v != nil {
		_u.SetPodcastAudioID(*v)
	}
	return _u
}

// ClearPodcastAudioID clears the value of the "podcast_audio_id" field.
func (_u *LessonUpdate) ClearPodcastAudioID() *LessonUpdate {
	_u.mutation.ClearPodcastAudioID()
	return _u
}

// SetPodcastDurationSeconds sets the "podcast_duration_seconds" field.
func (_u *LessonUpdate) SetPodcastDurationSeconds(v float64) *LessonUpdate {
	_u.mutation.ResetPodcastDurationSeconds()
	_u.mutation.SetPodcastDurationSeconds(v)
	return _u
}

// SetNillablePodcastDurationSeconds sets the "podcast_duration_seconds" field if the given value is not nil.
func (_u *LessonUpdate) SetNillablePodcastDurationSeconds(v *float64) *LessonUpdate {
	if v != nil {
		_u.SetPodcastDurationSeconds(*v)
	}
	return _u
}

// AddPodcastDurationSeconds adds value to the "podcast_duration_seconds" field.
func (_u *LessonUpdate) AddPodcastDurationSeconds(v float64) *LessonUpdate {
	_u.mutation.AddPodcastDurationSeconds(v)
	return _u
}

// ClearPodcastDurationSeconds clears the value of the "podcast_duration_seconds" field.
func (_u *LessonUpdate) ClearPodcastDurationSeconds() *LessonUpdate {
	_u.mutation.ClearPodcastDurationSeconds()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *LessonUpdate) SetCreatedAt(v time.Time) *LessonUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableCreatedAt(v *time.Time) *LessonUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LessonUpdate) SetUpdatedAt(v time.Time) *LessonUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LessonMutation object of the builder.
func (_u *LessonUpdate) Mutation() *LessonMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LessonUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lesson.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonUpdate) check() error {
	if v, ok := _u.mutation.LearnerLevel(); ok {
		if err := lesson.LearnerLevelValidator(v); err != nil {
			return &ValidationError{Name: "learner_level", err: fmt.Errorf(`ent: validator failed for field "Lesson.learner_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Package(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "package", err: fmt.Errorf(`ent: validator failed for field "Lesson.package": %w`, err)}
		}
	}
	if _u.mutation.UnitCleared() && len(_u.mutation.UnitIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Lesson.unit"`)
	}
	return nil
}

func (_u *LessonUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lesson.Table, lesson.Columns, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lesson.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerLevel(); ok {
		_spec.SetField(lesson.FieldLearnerLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SourceMaterial(); ok {
		_spec.SetField(lesson.FieldSourceMaterial, field.TypeString, value)
	}
	if _u.mutation.SourceMaterialCleared() {
		_spec.ClearField(lesson.FieldSourceMaterial, field.TypeString)
	}
	if value, ok := _u.mutation.Package(); ok {
		_spec.SetField(lesson.FieldPackage, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.PackageVersion(); ok {
		_spec.SetField(lesson.FieldPackageVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPackageVersion(); ok {
		_spec.AddField(lesson.FieldPackageVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FlowRunID(); ok {
		_spec.SetField(lesson.FieldFlowRunID, field.TypeString, value)
	}
	if _u.mutation.FlowRunIDCleared() {
		_spec.ClearField(lesson.FieldFlowRunID, field.TypeString)
	}
	if value, ok := _u.mutation.PodcastTranscript(); ok {
		_spec.SetField(lesson.FieldPodcastTranscript, field.TypeString, value)
	}
	if _u.mutation.PodcastTranscriptCleared() {
		_spec.ClearField(lesson.FieldPodcastTranscript, field.TypeString)
	}
	if value, ok := _u.mutation.PodcastAudioID(); ok {
		_spec.SetField(lesson.FieldPodcastAudioID, field.TypeString, value)
	}
	if _u.mutation.PodcastAudioIDCleared() {
		_spec.ClearField(lesson.FieldPodcastAudioID, field.TypeString)
	}
	if value, ok := _u.mutation.PodcastDurationSeconds(); ok {
		_spec.SetField(lesson.FieldPodcastDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPodcastDurationSeconds(); ok {
		_spec.AddField(lesson.FieldPodcastDurationSeconds, field.TypeFloat64, value)
	}
	if _u.mutation.PodcastDurationSecondsCleared() {
		_spec.ClearField(lesson.FieldPodcastDurationSeconds, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(lesson.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lesson.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lesson.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonUpdateOne is the builder for updating a single Lesson entity.
type LessonUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonMutation
}

// SetTitle sets the "title" field.
func (_u *LessonUpdateOne) SetTitle(v string) *LessonUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableTitle(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetLearnerLevel sets the "learner_level" field.
func (_u *LessonUpdateOne) SetLearnerLevel(v lesson.LearnerLevel) *LessonUpdateOne {
	_u.mutation.SetLearnerLevel(v)
	return _u
}

// SetNillableLearnerLevel sets the "learner_level" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableLearnerLevel(v *lesson.LearnerLevel) *LessonUpdateOne {
	if v != nil {
		_u.SetLearnerLevel(*v)
	}
	return _u
}

// SetSourceMaterial sets the "source_material" field.
func (_u *LessonUpdateOne) SetSourceMaterial(v string) *LessonUpdateOne {
	_u.mutation.SetSourceMaterial(v)
	return _u
}

// SetNillableSourceMaterial sets the "source_material" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableSourceMaterial(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetSourceMaterial(*v)
	}
	return _u
}

// ClearSourceMaterial clears the value of the "source_material" field.
func (_u *LessonUpdateOne) ClearSourceMaterial() *LessonUpdateOne {
	_u.mutation.ClearSourceMaterial()
	return _u
}

// SetPackage sets the "package" field.
func (_u *LessonUpdateOne) SetPackage(v *models.LessonPackage) *LessonUpdateOne {
	_u.mutation.SetPackage(v)
	return _u
}

// SetPackageVersion sets the "package_version" field.
func (_u *LessonUpdateOne) SetPackageVersion(v int) *LessonUpdateOne {
	_u.mutation.ResetPackageVersion()
	_u.mutation.SetPackageVersion(v)
	return _u
}

// SetNillablePackageVersion sets the "package_version" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillablePackageVersion(v *int) *LessonUpdateOne {
	if v != nil {
		_u.SetPackageVersion(*v)
	}
	return _u
}

// AddPackageVersion adds value to the "package_version" field.
func (_u *LessonUpdateOne) AddPackageVersion(v int) *LessonUpdateOne {
	_u.mutation.AddPackageVersion(v)
	return _u
}

// SetFlowRunID sets the "flow_run_id" field.
func (_u *LessonUpdateOne) SetFlowRunID(v string) *LessonUpdateOne {
	_u.mutation.SetFlowRunID(v)
	return _u
}

// SetNillableFlowRunID sets the "flow_run_id" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableFlowRunID(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetFlowRunID(*v)
	}
	return _u
}

// ClearFlowRunID clears the value of the "flow_run_id" field.
func (_u *LessonUpdateOne) ClearFlowRunID() *LessonUpdateOne {
	_u.mutation.ClearFlowRunID()
	return _u
}

// SetPodcastTranscript sets the "podcast_transcript" field.
func (_u *LessonUpdateOne) SetPodcastTranscript(v string) *LessonUpdateOne {
	_u.mutation.SetPodcastTranscript(v)
	return _u
}

// SetNillablePodcastTranscript sets the "podcast_transcript" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillablePodcastTranscript(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetPodcastTranscript(*v)
	}
	return _u
}

// ClearPodcastTranscript clears the value of the "podcast_transcript" field.
func (_u *LessonUpdateOne) ClearPodcastTranscript() *LessonUpdateOne {
	_u.mutation.ClearPodcastTranscript()
	return _u
}

// SetPodcastAudioID sets the "podcast_audio_id" field.
func (_u *LessonUpdateOne) SetPodcastAudioID(v string) *LessonUpdateOne {
	_u.mutation.SetPodcastAudioID(v)
	return _u
}

// SetNillablePodcastAudioID sets the "podcast_audio_id" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillablePodcastAudioID(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetPodcastAudioID(*v)
	}
	return _u
}

// ClearPodcastAudioID clears the value of the "podcast_audio_id" field.
func (_u *LessonUpdateOne) ClearPodcastAudioID() *LessonUpdateOne {
	_u.mutation.ClearPodcastAudioID()
	return _u
}

// SetPodcastDurationSeconds sets the "podcast_duration_seconds" field.
func (_u *LessonUpdateOne) SetPodcastDurationSeconds(v float64) *LessonUpdateOne {
	_u.mutation.ResetPodcastDurationSeconds()
	_u.mutation.SetPodcastDurationSeconds(v)
	return _u
}

// SetNillablePodcastDurationSeconds sets the "podcast_duration_seconds" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillablePodcastDurationSeconds(v *float64) *LessonUpdateOne {
	if v != nil {
		_u.SetPodcastDurationSeconds(*v)
	}
	return _u
}

// AddPodcastDurationSeconds adds value to the "podcast_duration_seconds" field.
func (_u *LessonUpdateOne) AddPodcastDurationSeconds(v float64) *LessonUpdateOne {
	_u.mutation.AddPodcastDurationSeconds(v)
	return _u
}

// ClearPodcastDurationSeconds clears the value of the "podcast_duration_seconds" field.
func (_u *LessonUpdateOne) ClearPodcastDurationSeconds() *LessonUpdateOne {
	_u.mutation.ClearPodcastDurationSeconds()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *LessonUpdateOne) SetCreatedAt(v time.Time) *LessonUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableCreatedAt(v *time.Time) *LessonUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LessonUpdateOne) SetUpdatedAt(v time.Time) *LessonUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LessonMutation object of the builder.
func (_u *LessonUpdateOne) Mutation() *LessonMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonUpdate builder.
func (_u *LessonUpdateOne) Where(ps ...predicate.Lesson) *LessonUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonUpdateOne) Select(field string, fields ...string) *LessonUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Lesson entity.
func (_u *LessonUpdateOne) Save(ctx context.Context) (*Lesson, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonUpdateOne) SaveX(ctx context.Context) *Lesson {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LessonUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lesson.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerLevel(); ok {
		if err := lesson.LearnerLevelValidator(v); err != nil {
			return &ValidationError{Name: "learner_level", err: fmt.Errorf(`ent: validator failed for field "Lesson.learner_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Package(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "package", err: fmt.Errorf(`ent: validator failed for field "Lesson.package": %w`, err)}
		}
	}
	if _u.mutation.UnitCleared() && len(_u.mutation.UnitIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Lesson.unit"`)
	}
	return nil
}

func (_u *LessonUpdateOne) sqlSave(ctx context.Context) (_node *Lesson, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lesson.Table, lesson.Columns, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Lesson.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lesson.FieldID)
		for _, f := range fields {
			if !lesson.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lesson.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lesson.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerLevel(); ok {
		_spec.SetField(lesson.FieldLearnerLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SourceMaterial(); ok {
		_spec.SetField(lesson.FieldSourceMaterial, field.TypeString, value)
	}
	if _u.mutation.SourceMaterialCleared() {
		_spec.ClearField(lesson.FieldSourceMaterial, field.TypeString)
	}
	if value, ok := _u.mutation.Package(); ok {
		_spec.SetField(lesson.FieldPackage, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.PackageVersion(); ok {
		_spec.SetField(lesson.FieldPackageVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPackageVersion(); ok {
		_spec.AddField(lesson.FieldPackageVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FlowRunID(); ok {
		_spec.SetField(lesson.FieldFlowRunID, field.TypeString, value)
	}
	if _u.mutation.FlowRunIDCleared() {
		_spec.ClearField(lesson.FieldFlowRunID, field.TypeString)
	}
	if value, ok := _u.mutation.PodcastTranscript(); ok {
		_spec.SetField(lesson.FieldPodcastTranscript, field.TypeString, value)
	}
	if _u.mutation.PodcastTranscriptCleared() {
		_spec.ClearField(lesson.FieldPodcastTranscript, field.TypeString)
	}
	if value, ok := _u.mutation.PodcastAudioID(); ok {
		_spec.SetField(lesson.FieldPodcastAudioID, field.TypeString, value)
	}
	if _u.mutation.PodcastAudioIDCleared() {
		_spec.ClearField(lesson.FieldPodcastAudioID, field.TypeString)
	}
	if value, ok := _u.mutation.PodcastDurationSeconds(); ok {
		_spec.SetField(lesson.FieldPodcastDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPodcastDurationSeconds(); ok {
		_spec.AddField(lesson.FieldPodcastDurationSeconds, field.TypeFloat64, value)
	}
	if _u.mutation.PodcastDurationSecondsCleared() {
		_spec.ClearField(lesson.FieldPodcastDurationSeconds, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(lesson.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lesson.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Lesson{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lesson.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
