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
	"github.com/brianfields/deeplearn-sub002/ent/lesson"
	"github.com/brianfields/deeplearn-sub002/ent/predicate"
	"github.com/brianfields/deeplearn-sub002/ent/unit"
	"github.com/brianfields/deeplearn-sub002/pkg/models"
)

// UnitUpdate is the builder for updating Unit entities.
type UnitUpdate struct {
	config
	hooks    []Hook
	mutation *UnitMutation
}

// Where appends a list predicates to the UnitUpdate builder.
func (_u *UnitUpdate) Where(ps ...predicate.Unit) *UnitUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *UnitUpdate) SetTitle(v string) *UnitUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *UnitUpdate) SetNillableTitle(v *string) *UnitUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *UnitUpdate) SetDescription(v string) *UnitUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *UnitUpdate) SetNillableDescription(v *string) *UnitUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *UnitUpdate) ClearDescription() *UnitUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetLearnerLevel sets the "learner_level" field.
func (_u *UnitUpdate) SetLearnerLevel(v unit.LearnerLevel) *UnitUpdate {
	_u.mutation.SetLearnerLevel(v)
	return _u
}

// SetNillableLearnerLevel sets the "learner_level" field if the given value is not nil.
func (_u *UnitUpdate) SetNillableLearnerLevel(v *unit.LearnerLevel) *UnitUpdate {
	if v != nil {
		_u.SetLearnerLevel(*v)
	}
	return _u
}

// SetLearningObjectives sets the "learning_objectives" field.
func (_u *UnitUpdate) SetLearningObjectives(v []models.LearningObjective) *UnitUpdate {
	_u.mutation.SetLearningObjectives(v)
	return _u
}

// AppendLearningObjectives appends value to the "learning_objectives" field.
func (_u *UnitUpdate) AppendLearningObjectives(v []models.LearningObjective) *UnitUpdate {
	_u.mutation.AppendLearningObjectives(v)
	return _u
}

// ClearLearningObjectives clears the value of the "learning_objectives" field.
func (_u *UnitUpdate) ClearLearningObjectives() *UnitUpdate {
	_u.mutation.ClearLearningObjectives()
	return _u
}

// SetLessonOrder sets the "lesson_order" field.
func (_u *UnitUpdate) SetLessonOrder(v []string) *UnitUpdate {
	_u.mutation.SetLessonOrder(v)
	return _u
}

// AppendLessonOrder appends value to the "lesson_order" field.
func (_u *UnitUpdate) AppendLessonOrder(v []string) *UnitUpdate {
	_u.mutation.AppendLessonOrder(v)
	return _u
}

// ClearLessonOrder clears the value of the "lesson_order" field.
func (_u *UnitUpdate) ClearLessonOrder() *UnitUpdate {
	_u.mutation.ClearLessonOrder()
	return _u
}

// SetTargetLessonCount sets the "target_lesson_count" field.
func (_u *UnitUpdate) SetTargetLessonCount(v int) *UnitUpdate {
	_u.mutation.ResetTargetLessonCount()
	_u.mutation.SetTargetLessonCount(v)
	return _u
}

// SetNillableTargetLessonCount sets the "target_lesson_count" field if the given value is not nil.
func (_u *UnitUpdate) SetNillableTargetLessonCount(v *int) *UnitUpdate {
	if v != nil {
		_u.SetTargetLessonCount(*v)
	}
	return _u
}

// AddTargetLessonCount adds value to the "target_lesson_count" field.
func (_u *UnitUpdate) AddTargetLessonCount(v int) *UnitUpdate {
	_u.mutation.AddTargetLessonCount(v)
	return _u
}

// ClearTargetLessonCount clears the value of the "target_lesson_count" field.
func (_u *UnitUpdate) ClearTargetLessonCount() *UnitUpdate {
	_u.mutation.ClearTargetLessonCount()
	return _u
}

// SetGeneratedFromTopic sets the "generated_from_topic" field.
func (_u *UnitUpdate) SetGeneratedFromTopic(v bool) *UnitUpdate {
	_u.mutation.SetGeneratedFromTopic(v)
	return _u
}

// SetNillableGeneratedFromTopic sets the "generated_from_topic" field if the given value is not nil.
func (_u *UnitUpdate) SetNillableGeneratedFromTopic(v *bool) *UnitUpdate {
	if v != nil {
		_u.SetGeneratedFromTopic(*v)
	}
	return _u
}

// SetSourceMaterial sets the "source_material" field.
func (_u *UnitUpdate) SetSourceMaterial(v string) *UnitUpdate {
	_u.mutation.SetSourceMaterial(v)
	return _u
}

// SetNillableSourceMaterial sets the "source_material" field if the given value is not nil.
func (_u *UnitUpdate) SetNillableSourceMaterial(v *string) *UnitUpdate {
	if v != nil {
		_u.SetSourceMaterial(*v)
	}
	return _u
}

// ClearSourceMaterial clears the value of the "source_material" field.
func (_u *UnitUpdate) ClearSourceMaterial() *UnitUpdate {
	_u.mutation.ClearSourceMaterial()
	return _u
}

// SetFlowType sets the "flow_type" field.
func (_u *UnitUpdate) SetFlowType(v unit.FlowType) *UnitUpdate {
	_u.mutation.SetFlowType(v)
	return _u
}

// SetNillableFlowType sets the "flow_type" field if the given value is not nil.
func (_u *UnitUpdate) SetNillableFlowType(v *unit.FlowType) *UnitUpdate {
	if v != nil {
		_u.SetFlowType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *UnitUpdate) SetStatus(v unit.Status) *UnitUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UnitUpdate) SetNillableStatus(v *unit.Status) *UnitUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *UnitUpdate) SetErrorMessage(v string) *UnitUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *UnitUpdate) SetNillableErrorMessage(v *string) *UnitUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *UnitUpdate) ClearErrorMessage() *UnitUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreationProgress sets the "creation_progress" field.
func (_u *UnitUpdate) SetCreationProgress(v *models.CreationProgress) *UnitUpdate {
	_u.mutation.SetCreationProgress(v)
	return _u
}

// ClearCreationProgress clears the value of the "creation_progress" field.
func (_u *UnitUpdate) ClearCreationProgress() *UnitUpdate {
	_u.mutation.ClearCreationProgress()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UnitUpdate) SetUserID(v string) *UnitUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UnitUpdate) SetNillableUserID(v *string) *UnitUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *UnitUpdate) ClearUserID() *UnitUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetIsGlobal sets the "is_global" field.
func (_u *UnitUpdate) SetIsGlobal(v bool) *UnitUpdate {
	_u.mutation.SetIsGlobal(v)
	return _u
}

// SetNillableIsGlobal sets the "is_global" field if the given value is not nil.
func (_u *UnitUpdate) SetNillableIsGlobal(v *bool) *UnitUpdate {
	if v != nil {
		_u.SetIsGlobal(*v)
	}
	return _u
}

// SetFlowRunID sets the "flow_run_id" field.
func (_u *UnitUpdate) SetFlowRunID(v string) *UnitUpdate {
	_u.mutation.SetFlowRunID(v)
	return _u
}

// SetNillableFlowRunID sets the "flow_run_id" field if the given value is not nil.
func (_u *UnitUpdate) SetNillableFlowRunID(v *string) *UnitUpdate {
	if v != nil {
		_u.SetFlowRunID(*v)
	}
	return _u
}

// ClearFlowRunID clears the value of the "flow_run_id" field.
func (_u *UnitUpdate) ClearFlowRunID() *UnitUpdate {
	_u.mutation.ClearFlowRunID()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *UnitUpdate) SetPodID(v string) *UnitUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *UnitUpdate) SetNillablePodID(v *string) *UnitUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *UnitUpdate) ClearPodID() *UnitUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetArtImageID sets the "art_image_id" field.
func (_u *UnitUpdate) SetArtImageID(v string) *UnitUpdate {
	_u.mutation.SetArtImageID(v)
	return _u
}

// SetNillableArtImageID sets the "art_image_id" field if the given value is not nil.
func (_u *UnitUpdate) SetNillableArtImageID(v *string) *UnitUpdate {
	if v != nil {
		_u.SetArtImageID(*v)
	}
	return _u
}

// ClearArtImageID clears the value of the "art_image_id" field.
func (_u *UnitUpdate) ClearArtImageID() *UnitUpdate {
	_u.mutation.ClearArtImageID()
	return _u
}

// SetArtImageDescription sets the "art_image_description" field.
func (_u *UnitUpdate) SetArtImageDescription(v string) *UnitUpdate {
	_u.mutation.SetArtImageDescription(v)
	return _u
}

// SetNillableArtImageDescription sets the "art_image_description" field if the given value is not nil.
func (_u *UnitUpdate) SetNillableArtImageDescription(v *string) *UnitUpdate {
	if v != nil {
		_u.SetArtImageDescription(*v)
	}
	return _u
}

// ClearArtImageDescription clears the value of the "art_image_description" field.
func (_u *UnitUpdate) ClearArtImageDescription() *UnitUpdate {
	_u.mutation.ClearArtImageDescription()
	return _u
}

// SetPodcastTranscript sets the "podcast_transcript" field.
func (_u *UnitUpdate) SetPodcastTranscript(v string) *UnitUpdate {
	_u.mutation.SetPodcastTranscript(v)
	return _u
}

// SetNillablePodcastTranscript sets the "podcast_transcript" field if the given value is not nil.
func (_u *UnitUpdate) SetNillablePodcastTranscript(v *string) *UnitUpdate {
	if v != nil {
		_u.SetPodcastTranscript(*v)
	}
	return _u
}

// ClearPodcastTranscript clears the value of the "podcast_transcript" field.
func (_u *UnitUpdate) ClearPodcastTranscript() *UnitUpdate {
	_u.mutation.ClearPodcastTranscript()
	return _u
}

// SetPodcastAudioID sets the "podcast_audio_id" field.
func (_u *UnitUpdate) SetPodcastAudioID(v string) *UnitUpdate {
	_u.mutation.SetPodcastAudioID(v)
	return _u
}

// SetNillablePodcastAudioID sets the "podcast_audio_id" field if the given value is not nil.
func (_u *UnitUpdate) SetNillablePodcastAudioID(v *string) *UnitUpdate {
	if v != nil {
		_u.SetPodcastAudioID(*v)
	}
	return _u
}

// ClearPodcastAudioID clears the value of the "podcast_audio_id" field.
func (_u *UnitUpdate) ClearPodcastAudioID() *UnitUpdate {
	_u.mutation.ClearPodcastAudioID()
	return _u
}

// SetPodcastVoice sets the "podcast_voice" field.
func (_u *UnitUpdate) SetPodcastVoice(v string) *UnitUpdate {
	_u.mutation.SetPodcastVoice(v)
	return _u
}

// SetNillablePodcastVoice sets the "podcast_voice" field if the given value is not nil.
func (_u *UnitUpdate) SetNillablePodcastVoice(v *string) *UnitUpdate {
	if v != nil {
		_u.SetPodcastVoice(*v)
	}
	return _u
}

// ClearPodcastVoice clears the value of the "podcast_voice" field.
func (_u *UnitUpdate) ClearPodcastVoice() *UnitUpdate {
	_u.mutation.ClearPodcastVoice()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *UnitUpdate) SetCreatedAt(v time.Time) *UnitUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *UnitUpdate) SetNillableCreatedAt(v *time.Time) *UnitUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UnitUpdate) SetUpdatedAt(v time.Time) *UnitUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *UnitUpdate) SetCompletedAt(v time.Time) *UnitUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *UnitUpdate) SetNillableCompletedAt(v *time.Time) *UnitUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *UnitUpdate) ClearCompletedAt() *UnitUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddLessonIDs adds the "lessons" edge to the Lesson entity by IDs.
func (_u *UnitUpdate) AddLessonIDs(ids ...string) *UnitUpdate {
	_u.mutation.AddLessonIDs(ids...)
	return _u
}

// AddLessons adds the "lessons" edges to the Lesson entity.
func (_u *UnitUpdate) AddLessons(v ...*Lesson) *UnitUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLessonIDs(ids...)
}

// Mutation returns the UnitMutation object of the builder.
func (_u *UnitUpdate) Mutation() *UnitMutation {
	return _u.mutation
}

// ClearLessons clears all "lessons" edges to the Lesson entity.
func (_u *UnitUpdate) ClearLessons() *UnitUpdate {
	_u.mutation.ClearLessons()
	return _u
}

// RemoveLessonIDs removes the "lessons" edge to Lesson entities by IDs.
func (_u *UnitUpdate) RemoveLessonIDs(ids ...string) *UnitUpdate {
	_u.mutation.RemoveLessonIDs(ids...)
	return _u
}

// RemoveLessons removes "lessons" edges to Lesson entities.
func (_u *UnitUpdate) RemoveLessons(v ...*Lesson) *UnitUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLessonIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UnitUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UnitUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UnitUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UnitUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UnitUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := unit.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UnitUpdate) check() error {
	if v, ok := _u.mutation.LearnerLevel(); ok {
		if err := unit.LearnerLevelValidator(v); err != nil {
			return &ValidationError{Name: "learner_level", err: fmt.Errorf(`ent: validator failed for field "Unit.learner_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FlowType(); ok {
		if err := unit.FlowTypeValidator(v); err != nil {
			return &ValidationError{Name: "flow_type", err: fmt.Errorf(`ent: validator failed for field "Unit.flow_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := unit.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Unit.status": %w`, err)}
		}
	}
	return nil
}

func (_u *UnitUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(unit.Table, unit.Columns, sqlgraph.NewFieldSpec(unit.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(unit.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(unit.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(unit.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.LearnerLevel(); ok {
		_spec.SetField(unit.FieldLearnerLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LearningObjectives(); ok {
		_spec.SetField(unit.FieldLearningObjectives, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLearningObjectives(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, unit.FieldLearningObjectives, value)
		})
	}
	if _u.mutation.LearningObjectivesCleared() {
		_spec.ClearField(unit.FieldLearningObjectives, field.TypeJSON)
	}
	if value, ok := _u.mutation.LessonOrder(); ok {
		_spec.SetField(unit.FieldLessonOrder, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLessonOrder(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, unit.FieldLessonOrder, value)
		})
	}
	if _u.mutation.LessonOrderCleared() {
		_spec.ClearField(unit.FieldLessonOrder, field.TypeJSON)
	}
	if value, ok := _u.mutation.TargetLessonCount(); ok {
		_spec.SetField(unit.FieldTargetLessonCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTargetLessonCount(); ok {
		_spec.AddField(unit.FieldTargetLessonCount, field.TypeInt, value)
	}
	if _u.mutation.TargetLessonCountCleared() {
		_spec.ClearField(unit.FieldTargetLessonCount, field.TypeInt)
	}
	if value, ok := _u.mutation.GeneratedFromTopic(); ok {
		_spec.SetField(unit.FieldGeneratedFromTopic, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SourceMaterial(); ok {
		_spec.SetField(unit.FieldSourceMaterial, field.TypeString, value)
	}
	if _u.mutation.SourceMaterialCleared() {
		_spec.ClearField(unit.FieldSourceMaterial, field.TypeString)
	}
	if value, ok := _u.mutation.FlowType(); ok {
		_spec.SetField(unit.FieldFlowType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(unit.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(unit.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(unit.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreationProgress(); ok {
		_spec.SetField(unit.FieldCreationProgress, field.TypeJSON, value)
	}
	if _u.mutation.CreationProgressCleared() {
		_spec.ClearField(unit.FieldCreationProgress, field.TypeJSON)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(unit.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(unit.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.IsGlobal(); ok {
		_spec.SetField(unit.FieldIsGlobal, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FlowRunID(); ok {
		_spec.SetField(unit.FieldFlowRunID, field.TypeString, value)
	}
	if _u.mutation.FlowRunIDCleared() {
		_spec.ClearField(unit.FieldFlowRunID, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(unit.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(unit.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.ArtImageID(); ok {
		_spec.SetField(unit.FieldArtImageID, field.TypeString, value)
	}
	if _u.mutation.ArtImageIDCleared() {
		_spec.ClearField(unit.FieldArtImageID, field.TypeString)
	}
	if value, ok := _u.mutation.ArtImageDescription(); ok {
		_spec.SetField(unit.FieldArtImageDescription, field.TypeString, value)
	}
	if _u.mutation.ArtImageDescriptionCleared() {
		_spec.ClearField(unit.FieldArtImageDescription, field.TypeString)
	}
	if value, ok := _u.mutation.PodcastTranscript(); ok {
		_spec.SetField(unit.FieldPodcastTranscript, field.TypeString, value)
	}
	if _u.mutation.PodcastTranscriptCleared() {
		_spec.ClearField(unit.FieldPodcastTranscript, field.TypeString)
	}
	if value, ok := _u.mutation.PodcastAudioID(); ok {
		_spec.SetField(unit.FieldPodcastAudioID, field.TypeString, value)
	}
	if _u.mutation.PodcastAudioIDCleared() {
		_spec.ClearField(unit.FieldPodcastAudioID, field.TypeString)
	}
	if value, ok := _u.mutation.PodcastVoice(); ok {
		_spec.SetField(unit.FieldPodcastVoice, field.TypeString, value)
	}
	if _u.mutation.PodcastVoiceCleared() {
		_spec.ClearField(unit.FieldPodcastVoice, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(unit.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(unit.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(unit.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(unit.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.LessonsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLessonsIDs(); len(nodes) > 0 && !_u.mutation.LessonsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LessonsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UnitUpdateOne is the builder for updating a single Unit entity.
type UnitUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UnitMutation
}

// SetTitle sets the "title" field.
func (_u *UnitUpdateOne) SetTitle(v string) *UnitUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillableTitle(v *string) *UnitUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *UnitUpdateOne) SetDescription(v string) *UnitUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillableDescription(v *string) *UnitUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *UnitUpdateOne) ClearDescription() *UnitUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetLearnerLevel sets the "learner_level" field.
func (_u *UnitUpdateOne) SetLearnerLevel(v unit.LearnerLevel) *UnitUpdateOne {
	_u.mutation.SetLearnerLevel(v)
	return _u
}

// SetNillableLearnerLevel sets the "learner_level" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillableLearnerLevel(v *unit.LearnerLevel) *UnitUpdateOne {
	if v != nil {
		_u.SetLearnerLevel(*v)
	}
	return _u
}

// SetLearningObjectives sets the "learning_objectives" field.
func (_u *UnitUpdateOne) SetLearningObjectives(v []models.LearningObjective) *UnitUpdateOne {
	_u.mutation.SetLearningObjectives(v)
	return _u
}

// AppendLearningObjectives appends value to the "learning_objectives" field.
func (_u *UnitUpdateOne) AppendLearningObjectives(v []models.LearningObjective) *UnitUpdateOne {
	_u.mutation.AppendLearningObjectives(v)
	return _u
}

// ClearLearningObjectives clears the value of the "learning_objectives" field.
func (_u *UnitUpdateOne) ClearLearningObjectives() *UnitUpdateOne {
	_u.mutation.ClearLearningObjectives()
	return _u
}

// SetLessonOrder sets the "lesson_order" field.
func (_u *UnitUpdateOne) SetLessonOrder(v []string) *UnitUpdateOne {
	_u.mutation.SetLessonOrder(v)
	return _u
}

// AppendLessonOrder appends value to the "lesson_order" field.
func (_u *UnitUpdateOne) AppendLessonOrder(v []string) *UnitUpdateOne {
	_u.mutation.AppendLessonOrder(v)
	return _u
}

// ClearLessonOrder clears the value of the "lesson_order" field.
func (_u *UnitUpdateOne) ClearLessonOrder() *UnitUpdateOne {
	_u.mutation.ClearLessonOrder()
	return _u
}

// SetTargetLessonCount sets the "target_lesson_count" field.
func (_u *UnitUpdateOne) SetTargetLessonCount(v int) *UnitUpdateOne {
	_u.mutation.ResetTargetLessonCount()
	_u.mutation.SetTargetLessonCount(v)
	return _u
}

// SetNillableTargetLessonCount sets the "target_lesson_count" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillableTargetLessonCount(v *int) *UnitUpdateOne {
	if v != nil {
		_u.SetTargetLessonCount(*v)
	}
	return _u
}

// AddTargetLessonCount adds value to the "target_lesson_count" field.
func (_u *UnitUpdateOne) AddTargetLessonCount(v int) *UnitUpdateOne {
	_u.mutation.AddTargetLessonCount(v)
	return _u
}

// ClearTargetLessonCount clears the value of the "target_lesson_count" field.
func (_u *UnitUpdateOne) ClearTargetLessonCount() *UnitUpdateOne {
	_u.mutation.ClearTargetLessonCount()
	return _u
}

// SetGeneratedFromTopic sets the "generated_from_topic" field.
func (_u *UnitUpdateOne) SetGeneratedFromTopic(v bool) *UnitUpdateOne {
	_u.mutation.SetGeneratedFromTopic(v)
	return _u
}

// SetNillableGeneratedFromTopic sets the "generated_from_topic" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillableGeneratedFromTopic(v *bool) *UnitUpdateOne {
	if v != nil {
		_u.SetGeneratedFromTopic(*v)
	}
	return _u
}

// SetSourceMaterial sets the "source_material" field.
func (_u *UnitUpdateOne) SetSourceMaterial(v string) *UnitUpdateOne {
	_u.mutation.SetSourceMaterial(v)
	return _u
}

// SetNillableSourceMaterial sets the "source_material" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillableSourceMaterial(v *string) *UnitUpdateOne {
	if v != nil {
		_u.SetSourceMaterial(*v)
	}
	return _u
}

// ClearSourceMaterial clears the value of the "source_material" field.
func (_u *UnitUpdateOne) ClearSourceMaterial() *UnitUpdateOne {
	_u.mutation.ClearSourceMaterial()
	return _u
}

// SetFlowType sets the "flow_type" field.
func (_u *UnitUpdateOne) SetFlowType(v unit.FlowType) *UnitUpdateOne {
	_u.mutation.SetFlowType(v)
	return _u
}

// SetNillableFlowType sets the "flow_type" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillableFlowType(v *unit.FlowType) *UnitUpdateOne {
	if v != nil {
		_u.SetFlowType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *UnitUpdateOne) SetStatus(v unit.Status) *UnitUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillableStatus(v *unit.Status) *UnitUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *UnitUpdateOne) SetErrorMessage(v string) *UnitUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillableErrorMessage(v *string) *UnitUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *UnitUpdateOne) ClearErrorMessage() *UnitUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreationProgress sets the "creation_progress" field.
func (_u *UnitUpdateOne) SetCreationProgress(v *models.CreationProgress) *UnitUpdateOne {
	_u.mutation.SetCreationProgress(v)
	return _u
}

// ClearCreationProgress clears the value of the "creation_progress" field.
func (_u *UnitUpdateOne) ClearCreationProgress() *UnitUpdateOne {
	_u.mutation.ClearCreationProgress()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UnitUpdateOne) SetUserID(v string) *UnitUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillableUserID(v *string) *UnitUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *UnitUpdateOne) ClearUserID() *UnitUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetIsGlobal sets the "is_global" field.
func (_u *UnitUpdateOne) SetIsGlobal(v bool) *UnitUpdateOne {
	_u.mutation.SetIsGlobal(v)
	return _u
}

// SetNillableIsGlobal sets the "is_global" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillableIsGlobal(v *bool) *UnitUpdateOne {
	if v != nil {
		_u.SetIsGlobal(*v)
	}
	return _u
}

// SetFlowRunID sets the "flow_run_id" field.
func (_u *UnitUpdateOne) SetFlowRunID(v string) *UnitUpdateOne {
	_u.mutation.SetFlowRunID(v)
	return _u
}

// SetNillableFlowRunID sets the "flow_run_id" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillableFlowRunID(v *string) *UnitUpdateOne {
	if v != nil {
		_u.SetFlowRunID(*v)
	}
	return _u
}

// ClearFlowRunID clears the value of the "flow_run_id" field.
func (_u *UnitUpdateOne) ClearFlowRunID() *UnitUpdateOne {
	_u.mutation.ClearFlowRunID()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *UnitUpdateOne) SetPodID(v string) *UnitUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillablePodID(v *string) *UnitUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *UnitUpdateOne) ClearPodID() *UnitUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetArtImageID sets the "art_image_id" field.
func (_u *UnitUpdateOne) SetArtImageID(v string) *UnitUpdateOne {
	_u.mutation.SetArtImageID(v)
	return _u
}

// SetNillableArtImageID sets the "art_image_id" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillableArtImageID(v *string) *UnitUpdateOne {
	if v != nil {
		_u.SetArtImageID(*v)
	}
	return _u
}

// ClearArtImageID clears the value of the "art_image_id" field.
func (_u *UnitUpdateOne) ClearArtImageID() *UnitUpdateOne {
	_u.mutation.ClearArtImageID()
	return _u
}

// SetArtImageDescription sets the "art_image_description" field.
func (_u *UnitUpdateOne) SetArtImageDescription(v string) *UnitUpdateOne {
	_u.mutation.SetArtImageDescription(v)
	return _u
}

// SetNillableArtImageDescription sets the "art_image_description" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillableArtImageDescription(v *string) *UnitUpdateOne {
	if v != nil {
		_u.SetArtImageDescription(*v)
	}
	return _u
}

// ClearArtImageDescription clears the value of the "art_image_description" field.
func (_u *UnitUpdateOne) ClearArtImageDescription() *UnitUpdateOne {
	_u.mutation.ClearArtImageDescription()
	return _u
}

// SetPodcastTranscript sets the "podcast_transcript" field.
func (_u *UnitUpdateOne) SetPodcastTranscript(v string) *UnitUpdateOne {
	_u.mutation.SetPodcastTranscript(v)
	return _u
}

// SetNillablePodcastTranscript sets the "podcast_transcript" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillablePodcastTranscript(v *string) *UnitUpdateOne {
	if v != nil {
		_u.SetPodcastTranscript(*v)
	}
	return _u
}

// ClearPodcastTranscript clears the value of the "podcast_transcript" field.
func (_u *UnitUpdateOne) ClearPodcastTranscript() *UnitUpdateOne {
	_u.mutation.ClearPodcastTranscript()
	return _u
}

// SetPodcastAudioID sets the "podcast_audio_id" field.
func (_u *UnitUpdateOne) SetPodcastAudioID(v string) *UnitUpdateOne {
	_u.mutation.SetPodcastAudioID(v)
	return _u
}

// SetNillablePodcastAudioID sets the "podcast_audio_id" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillablePodcastAudioID(v *string) *UnitUpdateOne {
	if v != nil {
		_u.SetPodcastAudioID(*v)
	}
	return _u
}

// ClearPodcastAudioID clears the value of the "podcast_audio_id" field.
func (_u *UnitUpdateOne) ClearPodcastAudioID() *UnitUpdateOne {
	_u.mutation.ClearPodcastAudioID()
	return _u
}

// SetPodcastVoice sets the "podcast_voice" field.
func (_u *UnitUpdateOne) SetPodcastVoice(v string) *UnitUpdateOne {
	_u.mutation.SetPodcastVoice(v)
	return _u
}

// SetNillablePodcastVoice sets the "podcast_voice" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillablePodcastVoice(v *string) *UnitUpdateOne {
	if v != nil {
		_u.SetPodcastVoice(*v)
	}
	return _u
}

// ClearPodcastVoice clears the value of the "podcast_voice" field.
func (_u *UnitUpdateOne) ClearPodcastVoice() *UnitUpdateOne {
	_u.mutation.ClearPodcastVoice()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *UnitUpdateOne) SetCreatedAt(v time.Time) *UnitUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillableCreatedAt(v *time.Time) *UnitUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UnitUpdateOne) SetUpdatedAt(v time.Time) *UnitUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *UnitUpdateOne) SetCompletedAt(v time.Time) *UnitUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillableCompletedAt(v *time.Time) *UnitUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *UnitUpdateOne) ClearCompletedAt() *UnitUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddLessonIDs adds the "lessons" edge to the Lesson entity by IDs.
func (_u *UnitUpdateOne) AddLessonIDs(ids ...string) *UnitUpdateOne {
	_u.mutation.AddLessonIDs(ids...)
	return _u
}

// AddLessons adds the "lessons" edges to the Lesson entity.
func (_u *UnitUpdateOne) AddLessons(v ...*Lesson) *UnitUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLessonIDs(ids...)
}

// Mutation returns the UnitMutation object of the builder.
func (_u *UnitUpdateOne) Mutation() *UnitMutation {
	return _u.mutation
}

// ClearLessons clears all "lessons" edges to the Lesson entity.
func (_u *UnitUpdateOne) ClearLessons() *UnitUpdateOne {
	_u.mutation.ClearLessons()
	return _u
}

// RemoveLessonIDs removes the "lessons" edge to Lesson entities by IDs.
func (_u *UnitUpdateOne) RemoveLessonIDs(ids ...string) *UnitUpdateOne {
	_u.mutation.RemoveLessonIDs(ids...)
	return _u
}

// RemoveLessons removes "lessons" edges to Lesson entities.
func (_u *UnitUpdateOne) RemoveLessons(v ...*Lesson) *UnitUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLessonIDs(ids...)
}

// Where appends a list predicates to the UnitUpdate builder.
func (_u *UnitUpdateOne) Where(ps ...predicate.Unit) *UnitUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UnitUpdateOne) Select(field string, fields ...string) *UnitUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Unit entity.
func (_u *UnitUpdateOne) Save(ctx context.Context) (*Unit, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UnitUpdateOne) SaveX(ctx context.Context) *Unit {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UnitUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UnitUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UnitUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := unit.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UnitUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerLevel(); ok {
		if err := unit.LearnerLevelValidator(v); err != nil {
			return &ValidationError{Name: "learner_level", err: fmt.Errorf(`ent: validator failed for field "Unit.learner_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FlowType(); ok {
		if err := unit.FlowTypeValidator(v); err != nil {
			return &ValidationError{Name: "flow_type", err: fmt.Errorf(`ent: validator failed for field "Unit.flow_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := unit.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Unit.status": %w`, err)}
		}
	}
	return nil
}

func (_u *UnitUpdateOne) sqlSave(ctx context.Context) (_node *Unit, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(unit.Table, unit.Columns, sqlgraph.NewFieldSpec(unit.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Unit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, unit.FieldID)
		for _, f := range fields {
			if !unit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != unit.FieldID {
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
		_spec.SetField(unit.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(unit.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(unit.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.LearnerLevel(); ok {
		_spec.SetField(unit.FieldLearnerLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LearningObjectives(); ok {
		_spec.SetField(unit.FieldLearningObjectives, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLearningObjectives(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, unit.FieldLearningObjectives, value)
		})
	}
	if _u.mutation.LearningObjectivesCleared() {
		_spec.ClearField(unit.FieldLearningObjectives, field.TypeJSON)
	}
	if value, ok := _u.mutation.LessonOrder(); ok {
		_spec.SetField(unit.FieldLessonOrder, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLessonOrder(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, unit.FieldLessonOrder, value)
		})
	}
	if _u.mutation.LessonOrderCleared() {
		_spec.ClearField(unit.FieldLessonOrder, field.TypeJSON)
	}
	if value, ok := _u.mutation.TargetLessonCount(); ok {
		_spec.SetField(unit.FieldTargetLessonCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTargetLessonCount(); ok {
		_spec.AddField(unit.FieldTargetLessonCount, field.TypeInt, value)
	}
	if _u.mutation.TargetLessonCountCleared() {
		_spec.ClearField(unit.FieldTargetLessonCount, field.TypeInt)
	}
	if value, ok := _u.mutation.GeneratedFromTopic(); ok {
		_spec.SetField(unit.FieldGeneratedFromTopic, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SourceMaterial(); ok {
		_spec.SetField(unit.FieldSourceMaterial, field.TypeString, value)
	}
	if _u.mutation.SourceMaterialCleared() {
		_spec.ClearField(unit.FieldSourceMaterial, field.TypeString)
	}
	if value, ok := _u.mutation.FlowType(); ok {
		_spec.SetField(unit.FieldFlowType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(unit.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(unit.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(unit.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreationProgress(); ok {
		_spec.SetField(unit.FieldCreationProgress, field.TypeJSON, value)
	}
	if _u.mutation.CreationProgressCleared() {
		_spec.ClearField(unit.FieldCreationProgress, field.TypeJSON)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(unit.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(unit.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.IsGlobal(); ok {
		_spec.SetField(unit.FieldIsGlobal, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FlowRunID(); ok {
		_spec.SetField(unit.FieldFlowRunID, field.TypeString, value)
	}
	if _u.mutation.FlowRunIDCleared() {
		_spec.ClearField(unit.FieldFlowRunID, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(unit.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(unit.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.ArtImageID(); ok {
		_spec.SetField(unit.FieldArtImageID, field.TypeString, value)
	}
	if _u.mutation.ArtImageIDCleared() {
		_spec.ClearField(unit.FieldArtImageID, field.TypeString)
	}
	if value, ok := _u.mutation.ArtImageDescription(); ok {
		_spec.SetField(unit.FieldArtImageDescription, field.TypeString, value)
	}
	if _u.mutation.ArtImageDescriptionCleared() {
		_spec.ClearField(unit.FieldArtImageDescription, field.TypeString)
	}
	if value, ok := _u.mutation.PodcastTranscript(); ok {
		_spec.SetField(unit.FieldPodcastTranscript, field.TypeString, value)
	}
	if _u.mutation.PodcastTranscriptCleared() {
		_spec.ClearField(unit.FieldPodcastTranscript, field.TypeString)
	}
	if value, ok := _u.mutation.PodcastAudioID(); ok {
		_spec.SetField(unit.FieldPodcastAudioID, field.TypeString, value)
	}
	if _u.mutation.PodcastAudioIDCleared() {
		_spec.ClearField(unit.FieldPodcastAudioID, field.TypeString)
	}
	if value, ok := _u.mutation.PodcastVoice(); ok {
		_spec.SetField(unit.FieldPodcastVoice, field.TypeString, value)
	}
	if _u.mutation.PodcastVoiceCleared() {
		_spec.ClearField(unit.FieldPodcastVoice, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(unit.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(unit.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(unit.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(unit.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.LessonsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLessonsIDs(); len(nodes) > 0 && !_u.mutation.LessonsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LessonsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Unit{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
