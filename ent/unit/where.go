// Code generated by ent, DO NOT EDIT.

package unit

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/brianfields/deeplearn-sub002/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Unit {
	return predicate.Unit(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Unit {
	return predicate.Unit(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Unit {
	return predicate.Unit(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Unit {
	return predicate.Unit(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Unit {
	return predicate.Unit(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Unit {
	return predicate.Unit(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Unit {
	return predicate.Unit(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Unit {
	return predicate.Unit(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Unit {
	return predicate.Unit(sql.FieldContainsFold(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldDescription, v))
}

// TargetLessonCount applies equality check predicate on the "target_lesson_count" field. It's identical to TargetLessonCountEQ.
func TargetLessonCount(v int) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldTargetLessonCount, v))
}

// GeneratedFromTopic applies equality check predicate on the "generated_from_topic" field. It's identical to GeneratedFromTopicEQ.
func GeneratedFromTopic(v bool) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldGeneratedFromTopic, v))
}

// SourceMaterial applies equality check predicate on the "source_material" field. It's identical to SourceMaterialEQ.
func SourceMaterial(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldSourceMaterial, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldErrorMessage, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldUserID, v))
}

// IsGlobal applies equality check predicate on the "is_global" field. It's identical to IsGlobalEQ.
func IsGlobal(v bool) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldIsGlobal, v))
}

// FlowRunID applies equality check predicate on the "flow_run_id" field. It's identical to FlowRunIDEQ.
func FlowRunID(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldFlowRunID, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldPodID, v))
}

// ArtImageID applies equality check predicate on the "art_image_id" field. It's identical to ArtImageIDEQ.
func ArtImageID(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldArtImageID, v))
}

// ArtImageDescription applies equality check predicate on the "art_image_description" field. It's identical to ArtImageDescriptionEQ.
func ArtImageDescription(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldArtImageDescription, v))
}

// PodcastTranscript applies equality check predicate on the "podcast_transcript" field. It's identical to PodcastTranscriptEQ.
func PodcastTranscript(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldPodcastTranscript, v))
}

// PodcastAudioID applies equality check predicate on the "podcast_audio_id" field. It's identical to PodcastAudioIDEQ.
func PodcastAudioID(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldPodcastAudioID, v))
}

// PodcastVoice applies equality check predicate on the "podcast_voice" field. It's identical to PodcastVoiceEQ.
func PodcastVoice(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldPodcastVoice, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldCompletedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Unit {
	return predicate.Unit(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Unit {
	return predicate.Unit(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContainsFold(FieldDescription, v))
}

// LearnerLevelEQ applies the EQ predicate on the "learner_level" field.
func LearnerLevelEQ(v LearnerLevel) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldLearnerLevel, v))
}

// LearnerLevelNEQ applies the NEQ predicate on the "learner_level" field.
func LearnerLevelNEQ(v LearnerLevel) predicate.Unit {
	return predicate.Unit(sql.FieldNEQ(FieldLearnerLevel, v))
}

// LearnerLevelIn applies the In predicate on the "learner_level" field.
func LearnerLevelIn(vs ...LearnerLevel) predicate.Unit {
	return predicate.Unit(sql.FieldIn(FieldLearnerLevel, vs...))
}

// LearnerLevelNotIn applies the NotIn predicate on the "learner_level" field.
func LearnerLevelNotIn(vs ...LearnerLevel) predicate.Unit {
	return predicate.Unit(sql.FieldNotIn(FieldLearnerLevel, vs...))
}

// LearningObjectivesIsNil applies the IsNil predicate on the "learning_objectives" field.
func LearningObjectivesIsNil() predicate.Unit {
	return predicate.Unit(sql.FieldIsNull(FieldLearningObjectives))
}

// LearningObjectivesNotNil applies the NotNil predicate on the "learning_objectives" field.
func LearningObjectivesNotNil() predicate.Unit {
	return predicate.Unit(sql.FieldNotNull(FieldLearningObjectives))
}

// LessonOrderIsNil applies the IsNil predicate on the "lesson_order" field.
func LessonOrderIsNil() predicate.Unit {
	return predicate.Unit(sql.FieldIsNull(FieldLessonOrder))
}

// LessonOrderNotNil applies the NotNil predicate on the "lesson_order" field.
func LessonOrderNotNil() predicate.Unit {
	return predicate.Unit(sql.FieldNotNull(FieldLessonOrder))
}

// TargetLessonCountEQ applies the EQ predicate on the "target_lesson_count" field.
func TargetLessonCountEQ(v int) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldTargetLessonCount, v))
}

// TargetLessonCountNEQ applies the NEQ predicate on the "target_lesson_count" field.
func TargetLessonCountNEQ(v int) predicate.Unit {
	return predicate.Unit(sql.FieldNEQ(FieldTargetLessonCount, v))
}

// TargetLessonCountIn applies the In predicate on the "target_lesson_count" field.
func TargetLessonCountIn(vs ...int) predicate.Unit {
	return predicate.Unit(sql.FieldIn(FieldTargetLessonCount, vs...))
}

// TargetLessonCountNotIn applies the NotIn predicate on the "target_lesson_count" field.
func TargetLessonCountNotIn(vs ...int) predicate.Unit {
	return predicate.Unit(sql.FieldNotIn(FieldTargetLessonCount, vs...))
}

// TargetLessonCountGT applies the GT predicate on the "target_lesson_count" field.
func TargetLessonCountGT(v int) predicate.Unit {
	return predicate.Unit(sql.FieldGT(FieldTargetLessonCount, v))
}

// TargetLessonCountGTE applies the GTE predicate on the "target_lesson_count" field.
func TargetLessonCountGTE(v int) predicate.Unit {
	return predicate.Unit(sql.FieldGTE(FieldTargetLessonCount, v))
}

// TargetLessonCountLT applies the LT predicate on the "target_lesson_count" field.
func TargetLessonCountLT(v int) predicate.Unit {
	return predicate.Unit(sql.FieldLT(FieldTargetLessonCount, v))
}

// TargetLessonCountLTE applies the LTE predicate on the "target_lesson_count" field.
func TargetLessonCountLTE(v int) predicate.Unit {
	return predicate.Unit(sql.FieldLTE(FieldTargetLessonCount, v))
}

// TargetLessonCountIsNil applies the IsNil predicate on the "target_lesson_count" field.
func TargetLessonCountIsNil() predicate.Unit {
	return predicate.Unit(sql.FieldIsNull(FieldTargetLessonCount))
}

// TargetLessonCountNotNil applies the NotNil predicate on the "target_lesson_count" field.
func TargetLessonCountNotNil() predicate.Unit {
	return predicate.Unit(sql.FieldNotNull(FieldTargetLessonCount))
}

// GeneratedFromTopicEQ applies the EQ predicate on the "generated_from_topic" field.
func GeneratedFromTopicEQ(v bool) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldGeneratedFromTopic, v))
}

// GeneratedFromTopicNEQ applies the NEQ predicate on the "generated_from_topic" field.
func GeneratedFromTopicNEQ(v bool) predicate.Unit {
	return predicate.Unit(sql.FieldNEQ(FieldGeneratedFromTopic, v))
}

// SourceMaterialEQ applies the EQ predicate on the "source_material" field.
func SourceMaterialEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldSourceMaterial, v))
}

// SourceMaterialNEQ applies the NEQ predicate on the "source_material" field.
func SourceMaterialNEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldNEQ(FieldSourceMaterial, v))
}

// SourceMaterialIn applies the In predicate on the "source_material" field.
func SourceMaterialIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldIn(FieldSourceMaterial, vs...))
}

// SourceMaterialNotIn applies the NotIn predicate on the "source_material" field.
func SourceMaterialNotIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldNotIn(FieldSourceMaterial, vs...))
}

// SourceMaterialGT applies the GT predicate on the "source_material" field.
func SourceMaterialGT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGT(FieldSourceMaterial, v))
}

// SourceMaterialGTE applies the GTE predicate on the "source_material" field.
func SourceMaterialGTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGTE(FieldSourceMaterial, v))
}

// SourceMaterialLT applies the LT predicate on the "source_material" field.
func SourceMaterialLT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLT(FieldSourceMaterial, v))
}

// SourceMaterialLTE applies the LTE predicate on the "source_material" field.
func SourceMaterialLTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLTE(FieldSourceMaterial, v))
}

// SourceMaterialContains applies the Contains predicate on the "source_material" field.
func SourceMaterialContains(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContains(FieldSourceMaterial, v))
}

// SourceMaterialHasPrefix applies the HasPrefix predicate on the "source_material" field.
func SourceMaterialHasPrefix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasPrefix(FieldSourceMaterial, v))
}

// SourceMaterialHasSuffix applies the HasSuffix predicate on the "source_material" field.
func SourceMaterialHasSuffix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasSuffix(FieldSourceMaterial, v))
}

// SourceMaterialIsNil applies the IsNil predicate on the "source_material" field.
func SourceMaterialIsNil() predicate.Unit {
	return predicate.Unit(sql.FieldIsNull(FieldSourceMaterial))
}

// SourceMaterialNotNil applies the NotNil predicate on the "source_material" field.
func SourceMaterialNotNil() predicate.Unit {
	return predicate.Unit(sql.FieldNotNull(FieldSourceMaterial))
}

// SourceMaterialEqualFold applies the EqualFold predicate on the "source_material" field.
func SourceMaterialEqualFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEqualFold(FieldSourceMaterial, v))
}

// SourceMaterialContainsFold applies the ContainsFold predicate on the "source_material" field.
func SourceMaterialContainsFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContainsFold(FieldSourceMaterial, v))
}

// FlowTypeEQ applies the EQ predicate on the "flow_type" field.
func FlowTypeEQ(v FlowType) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldFlowType, v))
}

// FlowTypeNEQ applies the NEQ predicate on the "flow_type" field.
func FlowTypeNEQ(v FlowType) predicate.Unit {
	return predicate.Unit(sql.FieldNEQ(FieldFlowType, v))
}

// FlowTypeIn applies the In predicate on the "flow_type" field.
func FlowTypeIn(vs ...FlowType) predicate.Unit {
	return predicate.Unit(sql.FieldIn(FieldFlowType, vs...))
}

// FlowTypeNotIn applies the NotIn predicate on the "flow_type" field.
func FlowTypeNotIn(vs ...FlowType) predicate.Unit {
	return predicate.Unit(sql.FieldNotIn(FieldFlowType, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Unit {
	return predicate.Unit(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Unit {
	return predicate.Unit(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Unit {
	return predicate.Unit(sql.FieldNotIn(FieldStatus, vs...))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Unit {
	return predicate.Unit(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Unit {
	return predicate.Unit(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreationProgressIsNil applies the IsNil predicate on the "creation_progress" field.
func CreationProgressIsNil() predicate.Unit {
	return predicate.Unit(sql.FieldIsNull(FieldCreationProgress))
}

// CreationProgressNotNil applies the NotNil predicate on the "creation_progress" field.
func CreationProgressNotNil() predicate.Unit {
	return predicate.Unit(sql.FieldNotNull(FieldCreationProgress))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.Unit {
	return predicate.Unit(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.Unit {
	return predicate.Unit(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContainsFold(FieldUserID, v))
}

// IsGlobalEQ applies the EQ predicate on the "is_global" field.
func IsGlobalEQ(v bool) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldIsGlobal, v))
}

// IsGlobalNEQ applies the NEQ predicate on the "is_global" field.
func IsGlobalNEQ(v bool) predicate.Unit {
	return predicate.Unit(sql.FieldNEQ(FieldIsGlobal, v))
}

// FlowRunIDEQ applies the EQ predicate on the "flow_run_id" field.
func FlowRunIDEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldFlowRunID, v))
}

// FlowRunIDNEQ applies the NEQ predicate on the "flow_run_id" field.
func FlowRunIDNEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldNEQ(FieldFlowRunID, v))
}

// FlowRunIDIn applies the In predicate on the "flow_run_id" field.
func FlowRunIDIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldIn(FieldFlowRunID, vs...))
}

// FlowRunIDNotIn applies the NotIn predicate on the "flow_run_id" field.
func FlowRunIDNotIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldNotIn(FieldFlowRunID, vs...))
}

// FlowRunIDGT applies the GT predicate on the "flow_run_id" field.
func FlowRunIDGT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGT(FieldFlowRunID, v))
}

// FlowRunIDGTE applies the GTE predicate on the "flow_run_id" field.
func FlowRunIDGTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGTE(FieldFlowRunID, v))
}

// FlowRunIDLT applies the LT predicate on the "flow_run_id" field.
func FlowRunIDLT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLT(FieldFlowRunID, v))
}

// FlowRunIDLTE applies the LTE predicate on the "flow_run_id" field.
func FlowRunIDLTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLTE(FieldFlowRunID, v))
}

// FlowRunIDContains applies the Contains predicate on the "flow_run_id" field.
func FlowRunIDContains(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContains(FieldFlowRunID, v))
}

// FlowRunIDHasPrefix applies the HasPrefix predicate on the "flow_run_id" field.
func FlowRunIDHasPrefix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasPrefix(FieldFlowRunID, v))
}

// FlowRunIDHasSuffix applies the HasSuffix predicate on the "flow_run_id" field.
func FlowRunIDHasSuffix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasSuffix(FieldFlowRunID, v))
}

// FlowRunIDIsNil applies the IsNil predicate on the "flow_run_id" field.
func FlowRunIDIsNil() predicate.Unit {
	return predicate.Unit(sql.FieldIsNull(FieldFlowRunID))
}

// FlowRunIDNotNil applies the NotNil predicate on the "flow_run_id" field.
func FlowRunIDNotNil() predicate.Unit {
	return predicate.Unit(sql.FieldNotNull(FieldFlowRunID))
}

// FlowRunIDEqualFold applies the EqualFold predicate on the "flow_run_id" field.
func FlowRunIDEqualFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEqualFold(FieldFlowRunID, v))
}

// FlowRunIDContainsFold applies the ContainsFold predicate on the "flow_run_id" field.
func FlowRunIDContainsFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContainsFold(FieldFlowRunID, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.Unit {
	return predicate.Unit(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.Unit {
	return predicate.Unit(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContainsFold(FieldPodID, v))
}

// ArtImageIDEQ applies the EQ predicate on the "art_image_id" field.
func ArtImageIDEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldArtImageID, v))
}

// ArtImageIDNEQ applies the NEQ predicate on the "art_image_id" field.
func ArtImageIDNEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldNEQ(FieldArtImageID, v))
}

// ArtImageIDIn applies the In predicate on the "art_image_id" field.
func ArtImageIDIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldIn(FieldArtImageID, vs...))
}

// ArtImageIDNotIn applies the NotIn predicate on the "art_image_id" field.
func ArtImageIDNotIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldNotIn(FieldArtImageID, vs...))
}

// ArtImageIDGT applies the GT predicate on the "art_image_id" field.
func ArtImageIDGT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGT(FieldArtImageID, v))
}

// ArtImageIDGTE applies the GTE predicate on the "art_image_id" field.
func ArtImageIDGTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGTE(FieldArtImageID, v))
}

// ArtImageIDLT applies the LT predicate on the "art_image_id" field.
func ArtImageIDLT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLT(FieldArtImageID, v))
}

// ArtImageIDLTE applies the LTE predicate on the "art_image_id" field.
func ArtImageIDLTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLTE(FieldArtImageID, v))
}

// ArtImageIDContains applies the Contains predicate on the "art_image_id" field.
func ArtImageIDContains(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContains(FieldArtImageID, v))
}

// ArtImageIDHasPrefix applies the HasPrefix predicate on the "art_image_id" field.
func ArtImageIDHasPrefix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasPrefix(FieldArtImageID, v))
}

// ArtImageIDHasSuffix applies the HasSuffix predicate on the "art_image_id" field.
func ArtImageIDHasSuffix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasSuffix(FieldArtImageID, v))
}

// ArtImageIDIsNil applies the IsNil predicate on the "art_image_id" field.
func ArtImageIDIsNil() predicate.Unit {
	return predicate.Unit(sql.FieldIsNull(FieldArtImageID))
}

// ArtImageIDNotNil applies the NotNil predicate on the "art_image_id" field.
func ArtImageIDNotNil() predicate.Unit {
	return predicate.Unit(sql.FieldNotNull(FieldArtImageID))
}

// ArtImageIDEqualFold applies the EqualFold predicate on the "art_image_id" field.
func ArtImageIDEqualFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEqualFold(FieldArtImageID, v))
}

// ArtImageIDContainsFold applies the ContainsFold predicate on the "art_image_id" field.
func ArtImageIDContainsFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContainsFold(FieldArtImageID, v))
}

// ArtImageDescriptionEQ applies the EQ predicate on the "art_image_description" field.
func ArtImageDescriptionEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldArtImageDescription, v))
}

// ArtImageDescriptionNEQ applies the NEQ predicate on the "art_image_description" field.
func ArtImageDescriptionNEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldNEQ(FieldArtImageDescription, v))
}

// ArtImageDescriptionIn applies the In predicate on the "art_image_description" field.
func ArtImageDescriptionIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldIn(FieldArtImageDescription, vs...))
}

// ArtImageDescriptionNotIn applies the NotIn predicate on the "art_image_description" field.
func ArtImageDescriptionNotIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldNotIn(FieldArtImageDescription, vs...))
}

// ArtImageDescriptionGT applies the GT predicate on the "art_image_description" field.
func ArtImageDescriptionGT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGT(FieldArtImageDescription, v))
}

// ArtImageDescriptionGTE applies the GTE predicate on the "art_image_description" field.
func ArtImageDescriptionGTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGTE(FieldArtImageDescription, v))
}

// ArtImageDescriptionLT applies the LT predicate on the "art_image_description" field.
func ArtImageDescriptionLT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLT(FieldArtImageDescription, v))
}

// ArtImageDescriptionLTE applies the LTE predicate on the "art_image_description" field.
func ArtImageDescriptionLTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLTE(FieldArtImageDescription, v))
}

// ArtImageDescriptionContains applies the Contains predicate on the "art_image_description" field.
func ArtImageDescriptionContains(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContains(FieldArtImageDescription, v))
}

// ArtImageDescriptionHasPrefix applies the HasPrefix predicate on the "art_image_description" field.
func ArtImageDescriptionHasPrefix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasPrefix(FieldArtImageDescription, v))
}

// ArtImageDescriptionHasSuffix applies the HasSuffix predicate on the "art_image_description" field.
func ArtImageDescriptionHasSuffix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasSuffix(FieldArtImageDescription, v))
}

// ArtImageDescriptionIsNil applies the IsNil predicate on the "art_image_description" field.
func ArtImageDescriptionIsNil() predicate.Unit {
	return predicate.Unit(sql.FieldIsNull(FieldArtImageDescription))
}

// ArtImageDescriptionNotNil applies the NotNil predicate on the "art_image_description" field.
func ArtImageDescriptionNotNil() predicate.Unit {
	return predicate.Unit(sql.FieldNotNull(FieldArtImageDescription))
}

// ArtImageDescriptionEqualFold applies the EqualFold predicate on the "art_image_description" field.
func ArtImageDescriptionEqualFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEqualFold(FieldArtImageDescription, v))
}

// ArtImageDescriptionContainsFold applies the ContainsFold predicate on the "art_image_description" field.
func ArtImageDescriptionContainsFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContainsFold(FieldArtImageDescription, v))
}

// PodcastTranscriptEQ applies the EQ predicate on the "podcast_transcript" field.
func PodcastTranscriptEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldPodcastTranscript, v))
}

// PodcastTranscriptNEQ applies the NEQ predicate on the "podcast_transcript" field.
func PodcastTranscriptNEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldNEQ(FieldPodcastTranscript, v))
}

// PodcastTranscriptIn applies the In predicate on the "podcast_transcript" field.
func PodcastTranscriptIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldIn(FieldPodcastTranscript, vs...))
}

// PodcastTranscriptNotIn applies the NotIn predicate on the "podcast_transcript" field.
func PodcastTranscriptNotIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldNotIn(FieldPodcastTranscript, vs...))
}

// PodcastTranscriptGT applies the GT predicate on the "podcast_transcript" field.
func PodcastTranscriptGT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGT(FieldPodcastTranscript, v))
}

// PodcastTranscriptGTE applies the GTE predicate on the "podcast_transcript" field.
func PodcastTranscriptGTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGTE(FieldPodcastTranscript, v))
}

// PodcastTranscriptLT applies the LT predicate on the "podcast_transcript" field.
func PodcastTranscriptLT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLT(FieldPodcastTranscript, v))
}

// PodcastTranscriptLTE applies the LTE predicate on the "podcast_transcript" field.
func PodcastTranscriptLTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLTE(FieldPodcastTranscript, v))
}

// PodcastTranscriptContains applies the Contains predicate on the "podcast_transcript" field.
func PodcastTranscriptContains(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContains(FieldPodcastTranscript, v))
}

// PodcastTranscriptHasPrefix applies the HasPrefix predicate on the "podcast_transcript" field.
func PodcastTranscriptHasPrefix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasPrefix(FieldPodcastTranscript, v))
}

// PodcastTranscriptHasSuffix applies the HasSuffix predicate on the "podcast_transcript" field.
func PodcastTranscriptHasSuffix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasSuffix(FieldPodcastTranscript, v))
}

// PodcastTranscriptIsNil applies the IsNil predicate on the "podcast_transcript" field.
func PodcastTranscriptIsNil() predicate.Unit {
	return predicate.Unit(sql.FieldIsNull(FieldPodcastTranscript))
}

// PodcastTranscriptNotNil applies the NotNil predicate on the "podcast_transcript" field.
func PodcastTranscriptNotNil() predicate.Unit {
	return predicate.Unit(sql.FieldNotNull(FieldPodcastTranscript))
}

// PodcastTranscriptEqualFold applies the EqualFold predicate on the "podcast_transcript" field.
func PodcastTranscriptEqualFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEqualFold(FieldPodcastTranscript, v))
}

// PodcastTranscriptContainsFold applies the ContainsFold predicate on the "podcast_transcript" field.
func PodcastTranscriptContainsFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContainsFold(FieldPodcastTranscript, v))
}

// PodcastAudioIDEQ applies the EQ predicate on the "podcast_audio_id" field.
func PodcastAudioIDEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldPodcastAudioID, v))
}

// PodcastAudioIDNEQ applies the NEQ predicate on the "podcast_audio_id" field.
func PodcastAudioIDNEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldNEQ(FieldPodcastAudioID, v))
}

// PodcastAudioIDIn applies the In predicate on the "podcast_audio_id" field.
func PodcastAudioIDIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldIn(FieldPodcastAudioID, vs...))
}

// PodcastAudioIDNotIn applies the NotIn predicate on the "podcast_audio_id" field.
func PodcastAudioIDNotIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldNotIn(FieldPodcastAudioID, vs...))
}

// PodcastAudioIDGT applies the GT predicate on the "podcast_audio_id" field.
func PodcastAudioIDGT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGT(FieldPodcastAudioID, v))
}

// PodcastAudioIDGTE applies the GTE predicate on the "podcast_audio_id" field.
func PodcastAudioIDGTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGTE(FieldPodcastAudioID, v))
}

// PodcastAudioIDLT applies the LT predicate on the "podcast_audio_id" field.
func PodcastAudioIDLT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLT(FieldPodcastAudioID, v))
}

// PodcastAudioIDLTE applies the LTE predicate on the "podcast_audio_id" field.
func PodcastAudioIDLTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLTE(FieldPodcastAudioID, v))
}

// PodcastAudioIDContains applies the Contains predicate on the "podcast_audio_id" field.
func PodcastAudioIDContains(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContains(FieldPodcastAudioID, v))
}

// PodcastAudioIDHasPrefix applies the HasPrefix predicate on the "podcast_audio_id" field.
func PodcastAudioIDHasPrefix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasPrefix(FieldPodcastAudioID, v))
}

// PodcastAudioIDHasSuffix applies the HasSuffix predicate on the "podcast_audio_id" field.
func PodcastAudioIDHasSuffix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasSuffix(FieldPodcastAudioID, v))
}

// PodcastAudioIDIsNil applies the IsNil predicate on the "podcast_audio_id" field.
func PodcastAudioIDIsNil() predicate.Unit {
	return predicate.Unit(sql.FieldIsNull(FieldPodcastAudioID))
}

// PodcastAudioIDNotNil applies the NotNil predicate on the "podcast_audio_id" field.
func PodcastAudioIDNotNil() predicate.Unit {
	return predicate.Unit(sql.FieldNotNull(FieldPodcastAudioID))
}

// PodcastAudioIDEqualFold applies the EqualFold predicate on the "podcast_audio_id" field.
func PodcastAudioIDEqualFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEqualFold(FieldPodcastAudioID, v))
}

// PodcastAudioIDContainsFold applies the ContainsFold predicate on the "podcast_audio_id" field.
func PodcastAudioIDContainsFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContainsFold(FieldPodcastAudioID, v))
}

// PodcastVoiceEQ applies the EQ predicate on the "podcast_voice" field.
func PodcastVoiceEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldPodcastVoice, v))
}

// PodcastVoiceNEQ applies the NEQ predicate on the "podcast_voice" field.
func PodcastVoiceNEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldNEQ(FieldPodcastVoice, v))
}

// PodcastVoiceIn applies the In predicate on the "podcast_voice" field.
func PodcastVoiceIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldIn(FieldPodcastVoice, vs...))
}

// PodcastVoiceNotIn applies the NotIn predicate on the "podcast_voice" field.
func PodcastVoiceNotIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldNotIn(FieldPodcastVoice, vs...))
}

// PodcastVoiceGT applies the GT predicate on the "podcast_voice" field.
func PodcastVoiceGT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGT(FieldPodcastVoice, v))
}

// PodcastVoiceGTE applies the GTE predicate on the "podcast_voice" field.
func PodcastVoiceGTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGTE(FieldPodcastVoice, v))
}

// PodcastVoiceLT applies the LT predicate on the "podcast_voice" field.
func PodcastVoiceLT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLT(FieldPodcastVoice, v))
}

// PodcastVoiceLTE applies the LTE predicate on the "podcast_voice" field.
func PodcastVoiceLTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLTE(FieldPodcastVoice, v))
}

// PodcastVoiceContains applies the Contains predicate on the "podcast_voice" field.
func PodcastVoiceContains(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContains(FieldPodcastVoice, v))
}

// PodcastVoiceHasPrefix applies the HasPrefix predicate on the "podcast_voice" field.
func PodcastVoiceHasPrefix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasPrefix(FieldPodcastVoice, v))
}

// PodcastVoiceHasSuffix applies the HasSuffix predicate on the "podcast_voice" field.
func PodcastVoiceHasSuffix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasSuffix(FieldPodcastVoice, v))
}

// PodcastVoiceIsNil applies the IsNil predicate on the "podcast_voice" field.
func PodcastVoiceIsNil() predicate.Unit {
	return predicate.Unit(sql.FieldIsNull(FieldPodcastVoice))
}

// PodcastVoiceNotNil applies the NotNil predicate on the "podcast_voice" field.
func PodcastVoiceNotNil() predicate.Unit {
	return predicate.Unit(sql.FieldNotNull(FieldPodcastVoice))
}

// PodcastVoiceEqualFold applies the EqualFold predicate on the "podcast_voice" field.
func PodcastVoiceEqualFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEqualFold(FieldPodcastVoice, v))
}

// PodcastVoiceContainsFold applies the ContainsFold predicate on the "podcast_voice" field.
func PodcastVoiceContainsFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContainsFold(FieldPodcastVoice, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldLTE(FieldUpdatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Unit {
	return predicate.Unit(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Unit {
	return predicate.Unit(sql.FieldNotNull(FieldCompletedAt))
}

// HasLessons applies the HasEdge predicate on the "lessons" edge.
func HasLessons() predicate.Unit {
	return predicate.Unit(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LessonsTable, LessonsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLessonsWith applies the HasEdge predicate on the "lessons" edge with a given conditions (other predicates).
func HasLessonsWith(preds ...predicate.Lesson) predicate.Unit {
	return predicate.Unit(func(s *sql.Selector) {
		step := newLessonsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Unit) predicate.Unit {
	return predicate.Unit(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Unit) predicate.Unit {
	return predicate.Unit(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Unit) predicate.Unit {
	return predicate.Unit(sql.NotPredicates(p))
}
