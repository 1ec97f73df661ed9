// Code generated by ent, DO NOT EDIT.

package lesson

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/brianfields/deeplearn-sub002/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContainsFold(FieldID, id))
}

// UnitID applies equality check predicate on the "unit_id" field. It's identical to UnitIDEQ.
func UnitID(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldUnitID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldTitle, v))
}

// SourceMaterial applies equality check predicate on the "source_material" field. It's identical to SourceMaterialEQ.
func SourceMaterial(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldSourceMaterial, v))
}

// PackageVersion applies equality check predicate on the "package_version" field. It's identical to PackageVersionEQ.
func PackageVersion(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldPackageVersion, v))
}

// FlowRunID applies equality check predicate on the "flow_run_id" field. It's identical to FlowRunIDEQ.
func FlowRunID(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldFlowRunID, v))
}

// PodcastTranscript applies equality check predicate on the "podcast_transcript" field. It's identical to PodcastTranscriptEQ.
func PodcastTranscript(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldPodcastTranscript, v))
}

// PodcastAudioID applies equality check predicate on the "podcast_audio_id" field. It's identical to PodcastAudioIDEQ.
func PodcastAudioID(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldPodcastAudioID, v))
}

// PodcastDurationSeconds applies equality check predicate on the "podcast_duration_seconds" field. It's identical to PodcastDurationSecondsEQ.
func PodcastDurationSeconds(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldPodcastDurationSeconds, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldUpdatedAt, v))
}

// UnitIDEQ applies the EQ predicate on the "unit_id" field.
func UnitIDEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldUnitID, v))
}

// UnitIDNEQ applies the NEQ predicate on the "unit_id" field.
func UnitIDNEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldUnitID, v))
}

// UnitIDIn applies the In predicate on the "unit_id" field.
func UnitIDIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldUnitID, vs...))
}

// UnitIDNotIn applies the NotIn predicate on the "unit_id" field.
func UnitIDNotIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldUnitID, vs...))
}

// UnitIDGT applies the GT predicate on the "unit_id" field.
func UnitIDGT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldUnitID, v))
}

// UnitIDGTE applies the GTE predicate on the "unit_id" field.
func UnitIDGTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldUnitID, v))
}

// UnitIDLT applies the LT predicate on the "unit_id" field.
func UnitIDLT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldUnitID, v))
}

// UnitIDLTE applies the LTE predicate on the "unit_id" field.
func UnitIDLTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldUnitID, v))
}

// UnitIDContains applies the Contains predicate on the "unit_id" field.
func UnitIDContains(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContains(FieldUnitID, v))
}

// UnitIDHasPrefix applies the HasPrefix predicate on the "unit_id" field.
func UnitIDHasPrefix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasPrefix(FieldUnitID, v))
}

// UnitIDHasSuffix applies the HasSuffix predicate on the "unit_id" field.
func UnitIDHasSuffix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasSuffix(FieldUnitID, v))
}

// UnitIDEqualFold applies the EqualFold predicate on the "unit_id" field.
func UnitIDEqualFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEqualFold(FieldUnitID, v))
}

// UnitIDContainsFold applies the ContainsFold predicate on the "unit_id" field.
func UnitIDContainsFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContainsFold(FieldUnitID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContainsFold(FieldTitle, v))
}

// LearnerLevelEQ applies the EQ predicate on the "learner_level" field.
func LearnerLevelEQ(v LearnerLevel) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldLearnerLevel, v))
}

// LearnerLevelNEQ applies the NEQ predicate on the "learner_level" field.
func LearnerLevelNEQ(v LearnerLevel) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldLearnerLevel, v))
}

// LearnerLevelIn applies the In predicate on the "learner_level" field.
func LearnerLevelIn(vs ...LearnerLevel) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldLearnerLevel, vs...))
}

// LearnerLevelNotIn applies the NotIn predicate on the "learner_level" field.
func LearnerLevelNotIn(vs ...LearnerLevel) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldLearnerLevel, vs...))
}

// SourceMaterialEQ applies the EQ predicate on the "source_material" field.
func SourceMaterialEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldSourceMaterial, v))
}

// SourceMaterialNEQ applies the NEQ predicate on the "source_material" field.
func SourceMaterialNEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldSourceMaterial, v))
}

// SourceMaterialIn applies the In predicate on the "source_material" field.
func SourceMaterialIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldSourceMaterial, vs...))
}

// SourceMaterialNotIn applies the NotIn predicate on the "source_material" field.
func SourceMaterialNotIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldSourceMaterial, vs...))
}

// SourceMaterialGT applies the GT predicate on the "source_material" field.
func SourceMaterialGT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldSourceMaterial, v))
}

// SourceMaterialGTE applies the GTE predicate on the "source_material" field.
func SourceMaterialGTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldSourceMaterial, v))
}

// SourceMaterialLT applies the LT predicate on the "source_material" field.
func SourceMaterialLT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldSourceMaterial, v))
}

// SourceMaterialLTE applies the LTE predicate on the "source_material" field.
func SourceMaterialLTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldSourceMaterial, v))
}

// SourceMaterialContains applies the Contains predicate on the "source_material" field.
func SourceMaterialContains(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContains(FieldSourceMaterial, v))
}

// SourceMaterialHasPrefix applies the HasPrefix predicate on the "source_material" field.
func SourceMaterialHasPrefix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasPrefix(FieldSourceMaterial, v))
}

// SourceMaterialHasSuffix applies the HasSuffix predicate on the "source_material" field.
func SourceMaterialHasSuffix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasSuffix(FieldSourceMaterial, v))
}

// SourceMaterialIsNil applies the IsNil predicate on the "source_material" field.
func SourceMaterialIsNil() predicate.Lesson {
	return predicate.Lesson(sql.FieldIsNull(FieldSourceMaterial))
}

// SourceMaterialNotNil applies the NotNil predicate on the "source_material" field.
func SourceMaterialNotNil() predicate.Lesson {
	return predicate.Lesson(sql.FieldNotNull(FieldSourceMaterial))
}

// SourceMaterialEqualFold applies the EqualFold predicate on the "source_material" field.
func SourceMaterialEqualFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEqualFold(FieldSourceMaterial, v))
}

// SourceMaterialContainsFold applies the ContainsFold predicate on the "source_material" field.
func SourceMaterialContainsFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContainsFold(FieldSourceMaterial, v))
}

// PackageVersionEQ applies the EQ predicate on the "package_version" field.
func PackageVersionEQ(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldPackageVersion, v))
}

// PackageVersionNEQ applies the NEQ predicate on the "package_version" field.
func PackageVersionNEQ(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldPackageVersion, v))
}

// PackageVersionIn applies the In predicate on the "package_version" field.
func PackageVersionIn(vs ...int) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldPackageVersion, vs...))
}

// PackageVersionNotIn applies the NotIn predicate on the "package_version" field.
func PackageVersionNotIn(vs ...int) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldPackageVersion, vs...))
}

// PackageVersionGT applies the GT predicate on the "package_version" field.
func PackageVersionGT(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldPackageVersion, v))
}

// PackageVersionGTE applies the GTE predicate on the "package_version" field.
func PackageVersionGTE(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldPackageVersion, v))
}

// PackageVersionLT applies the LT predicate on the "package_version" field.
func PackageVersionLT(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldPackageVersion, v))
}

// PackageVersionLTE applies the LTE predicate on the "package_version" field.
func PackageVersionLTE(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldPackageVersion, v))
}

// FlowRunIDEQ applies the EQ predicate on the "flow_run_id" field.
func FlowRunIDEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldFlowRunID, v))
}

// FlowRunIDNEQ applies the NEQ predicate on the "flow_run_id" field.
func FlowRunIDNEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldFlowRunID, v))
}

// FlowRunIDIn applies the In predicate on the "flow_run_id" field.
func FlowRunIDIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldFlowRunID, vs...))
}

// FlowRunIDNotIn applies the NotIn predicate on the "flow_run_id" field.
func FlowRunIDNotIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldFlowRunID, vs...))
}

// FlowRunIDGT applies the GT predicate on the "flow_run_id" field.
func FlowRunIDGT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldFlowRunID, v))
}

// FlowRunIDGTE applies the GTE predicate on the "flow_run_id" field.
func FlowRunIDGTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldFlowRunID, v))
}

// FlowRunIDLT applies the LT predicate on the "flow_run_id" field.
func FlowRunIDLT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldFlowRunID, v))
}

// FlowRunIDLTE applies the LTE predicate on the "flow_run_id" field.
func FlowRunIDLTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldFlowRunID, v))
}

// FlowRunIDContains applies the Contains predicate on the "flow_run_id" field.
func FlowRunIDContains(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContains(FieldFlowRunID, v))
}

// FlowRunIDHasPrefix applies the HasPrefix predicate on the "flow_run_id" field.
func FlowRunIDHasPrefix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasPrefix(FieldFlowRunID, v))
}

// FlowRunIDHasSuffix applies the HasSuffix predicate on the "flow_run_id" field.
func FlowRunIDHasSuffix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasSuffix(FieldFlowRunID, v))
}

// FlowRunIDIsNil applies the IsNil predicate on the "flow_run_id" field.
func FlowRunIDIsNil() predicate.Lesson {
	return predicate.Lesson(sql.FieldIsNull(FieldFlowRunID))
}

// FlowRunIDNotNil applies the NotNil predicate on the "flow_run_id" field.
func FlowRunIDNotNil() predicate.Lesson {
	return predicate.Lesson(sql.FieldNotNull(FieldFlowRunID))
}

// FlowRunIDEqualFold applies the EqualFold predicate on the "flow_run_id" field.
func FlowRunIDEqualFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEqualFold(FieldFlowRunID, v))
}

// FlowRunIDContainsFold applies the ContainsFold predicate on the "flow_run_id" field.
func FlowRunIDContainsFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContainsFold(FieldFlowRunID, v))
}

// PodcastTranscriptEQ applies the EQ predicate on the "podcast_transcript" field.
func PodcastTranscriptEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldPodcastTranscript, v))
}

// PodcastTranscriptNEQ applies the NEQ predicate on the "podcast_transcript" field.
func PodcastTranscriptNEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldPodcastTranscript, v))
}

// PodcastTranscriptIn applies the In predicate on the "podcast_transcript" field.
func PodcastTranscriptIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldPodcastTranscript, vs...))
}

// PodcastTranscriptNotIn applies the NotIn predicate on the "podcast_transcript" field.
func PodcastTranscriptNotIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldPodcastTranscript, vs...))
}

// PodcastTranscriptGT applies the GT predicate on the "podcast_transcript" field.
func PodcastTranscriptGT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldPodcastTranscript, v))
}

// PodcastTranscriptGTE applies the GTE predicate on the "podcast_transcript" field.
func PodcastTranscriptGTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldPodcastTranscript, v))
}

// PodcastTranscriptLT applies the LT predicate on the "podcast_transcript" field.
func PodcastTranscriptLT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldPodcastTranscript, v))
}

// PodcastTranscriptLTE applies the LTE predicate on the "podcast_transcript" field.
func PodcastTranscriptLTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldPodcastTranscript, v))
}

// PodcastTranscriptContains applies the Contains predicate on the "podcast_transcript" field.
func PodcastTranscriptContains(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContains(FieldPodcastTranscript, v))
}

// PodcastTranscriptHasPrefix applies the HasPrefix predicate on the "podcast_transcript" field.
func PodcastTranscriptHasPrefix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasPrefix(FieldPodcastTranscript, v))
}

// PodcastTranscriptHasSuffix applies the HasSuffix predicate on the "podcast_transcript" field.
func PodcastTranscriptHasSuffix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasSuffix(FieldPodcastTranscript, v))
}

// PodcastTranscriptIsNil applies the IsNil predicate on the "podcast_transcript" field.
func PodcastTranscriptIsNil() predicate.Lesson {
	return predicate.Lesson(sql.FieldIsNull(FieldPodcastTranscript))
}

// PodcastTranscriptNotNil applies the NotNil predicate on the "podcast_transcript" field.
func PodcastTranscriptNotNil() predicate.Lesson {
	return predicate.Lesson(sql.FieldNotNull(FieldPodcastTranscript))
}

// PodcastTranscriptEqualFold applies the EqualFold predicate on the "podcast_transcript" field.
func PodcastTranscriptEqualFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEqualFold(FieldPodcastTranscript, v))
}

// PodcastTranscriptContainsFold applies the ContainsFold predicate on the "podcast_transcript" field.
func PodcastTranscriptContainsFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContainsFold(FieldPodcastTranscript, v))
}

// PodcastAudioIDEQ applies the EQ predicate on the "podcast_audio_id" field.
func PodcastAudioIDEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldPodcastAudioID, v))
}

// PodcastAudioIDNEQ applies the NEQ predicate on the "podcast_audio_id" field.
func PodcastAudioIDNEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldPodcastAudioID, v))
}

// PodcastAudioIDIn applies the In predicate on the "podcast_audio_id" field.
func PodcastAudioIDIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldPodcastAudioID, vs...))
}

// PodcastAudioIDNotIn applies the NotIn predicate on the "podcast_audio_id" field.
func PodcastAudioIDNotIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldPodcastAudioID, vs...))
}

// PodcastAudioIDGT applies the GT predicate on the "podcast_audio_id" field.
func PodcastAudioIDGT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldPodcastAudioID, v))
}

// PodcastAudioIDGTE applies the GTE predicate on the "podcast_audio_id" field.
func PodcastAudioIDGTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldPodcastAudioID, v))
}

// PodcastAudioIDLT applies the LT predicate on the "podcast_audio_id" field.
func PodcastAudioIDLT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldPodcastAudioID, v))
}

// PodcastAudioIDLTE applies the LTE predicate on the "podcast_audio_id" field.
func PodcastAudioIDLTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldPodcastAudioID, v))
}

// PodcastAudioIDContains applies the Contains predicate on the "podcast_audio_id" field.
func PodcastAudioIDContains(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContains(FieldPodcastAudioID, v))
}

// PodcastAudioIDHasPrefix applies the HasPrefix predicate on the "podcast_audio_id" field.
func PodcastAudioIDHasPrefix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasPrefix(FieldPodcastAudioID, v))
}

// PodcastAudioIDHasSuffix applies the HasSuffix predicate on the "podcast_audio_id" field.
func PodcastAudioIDHasSuffix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasSuffix(FieldPodcastAudioID, v))
}

// PodcastAudioIDIsNil applies the IsNil predicate on the "podcast_audio_id" field.
func PodcastAudioIDIsNil() predicate.Lesson {
	return predicate.Lesson(sql.FieldIsNull(FieldPodcastAudioID))
}

// PodcastAudioIDNotNil applies the NotNil predicate on the "podcast_audio_id" field.
func PodcastAudioIDNotNil() predicate.Lesson {
	return predicate.Lesson(sql.FieldNotNull(FieldPodcastAudioID))
}

// PodcastAudioIDEqualFold applies the EqualFold predicate on the "podcast_audio_id" field.
func PodcastAudioIDEqualFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEqualFold(FieldPodcastAudioID, v))
}

// PodcastAudioIDContainsFold applies the ContainsFold predicate on the "podcast_audio_id" field.
func PodcastAudioIDContainsFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContainsFold(FieldPodcastAudioID, v))
}

// PodcastDurationSecondsEQ applies the EQ predicate on the "podcast_duration_seconds" field.
func PodcastDurationSecondsEQ(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldPodcastDurationSeconds, v))
}

// PodcastDurationSecondsNEQ applies the NEQ predicate on the "podcast_duration_seconds" field.
func PodcastDurationSecondsNEQ(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldPodcastDurationSeconds, v))
}

// PodcastDurationSecondsIn applies the In predicate on the "podcast_duration_seconds" field.
func PodcastDurationSecondsIn(vs ...float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldPodcastDurationSeconds, vs...))
}

// PodcastDurationSecondsNotIn applies the NotIn predicate on the "podcast_duration_seconds" field.
func PodcastDurationSecondsNotIn(vs ...float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldPodcastDurationSeconds, vs...))
}

// PodcastDurationSecondsGT applies the GT predicate on the "podcast_duration_seconds" field.
func PodcastDurationSecondsGT(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldPodcastDurationSeconds, v))
}

// PodcastDurationSecondsGTE applies the GTE predicate on the "podcast_duration_seconds" field.
func PodcastDurationSecondsGTE(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldPodcastDurationSeconds, v))
}

// PodcastDurationSecondsLT applies the LT predicate on the "podcast_duration_seconds" field.
func PodcastDurationSecondsLT(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldPodcastDurationSeconds, v))
}

// PodcastDurationSecondsLTE applies the LTE predicate on the "podcast_duration_seconds" field.
func PodcastDurationSecondsLTE(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldPodcastDurationSeconds, v))
}

// PodcastDurationSecondsIsNil applies the IsNil predicate on the "podcast_duration_seconds" field.
func PodcastDurationSecondsIsNil() predicate.Lesson {
	return predicate.Lesson(sql.FieldIsNull(FieldPodcastDurationSeconds))
}

// PodcastDurationSecondsNotNil applies the NotNil predicate on the "podcast_duration_seconds" field.
func PodcastDurationSecondsNotNil() predicate.Lesson {
	return predicate.Lesson(sql.FieldNotNull(FieldPodcastDurationSeconds))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasUnit applies the HasEdge predicate on the "unit" edge.
func HasUnit() predicate.Lesson {
	return predicate.Lesson(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UnitTable, UnitColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUnitWith applies the HasEdge predicate on the "unit" edge with a given conditions (other predicates).
func HasUnitWith(preds ...predicate.Unit) predicate.Lesson {
	return predicate.Lesson(func(s *sql.Selector) {
		step := newUnitStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Lesson) predicate.Lesson {
	return predicate.Lesson(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Lesson) predicate.Lesson {
	return predicate.Lesson(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Lesson) predicate.Lesson {
	return predicate.Lesson(sql.NotPredicates(p))
}
