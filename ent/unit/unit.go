// Code generated by ent, DO NOT EDIT.

package unit

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the unit type in the database.
	Label = "unit"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "unit_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldLearnerLevel holds the string denoting the learner_level field in the database.
	FieldLearnerLevel = "learner_level"
	// FieldLearningObjectives holds the string denoting the learning_objectives field in the database.
	FieldLearningObjectives = "learning_objectives"
	// FieldLessonOrder holds the string denoting the lesson_order field in the database.
	FieldLessonOrder = "lesson_order"
	// FieldTargetLessonCount holds the string denoting the target_lesson_count field in the database.
	FieldTargetLessonCount = "target_lesson_count"
	// FieldGeneratedFromTopic holds the string denoting the generated_from_topic field in the database.
	FieldGeneratedFromTopic = "generated_from_topic"
	// FieldSourceMaterial holds the string denoting the source_material field in the database.
	FieldSourceMaterial = "source_material"
	// FieldFlowType holds the string denoting the flow_type field in the database.
	FieldFlowType = "flow_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreationProgress holds the string denoting the creation_progress field in the database.
	FieldCreationProgress = "creation_progress"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldIsGlobal holds the string denoting the is_global field in the database.
	FieldIsGlobal = "is_global"
	// FieldFlowRunID holds the string denoting the flow_run_id field in the database.
	FieldFlowRunID = "flow_run_id"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldArtImageID holds the string denoting the art_image_id field in the database.
	FieldArtImageID = "art_image_id"
	// FieldArtImageDescription holds the string denoting the art_image_description field in the database.
	FieldArtImageDescription = "art_image_description"
	// FieldPodcastTranscript holds the string denoting the podcast_transcript field in the database.
	FieldPodcastTranscript = "podcast_transcript"
	// FieldPodcastAudioID holds the string denoting the podcast_audio_id field in the database.
	FieldPodcastAudioID = "podcast_audio_id"
	// FieldPodcastVoice holds the string denoting the podcast_voice field in the database.
	FieldPodcastVoice = "podcast_voice"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeLessons holds the string denoting the lessons edge name in mutations.
	EdgeLessons = "lessons"
	// LessonFieldID holds the string denoting the ID field of the Lesson.
	LessonFieldID = "lesson_id"
	// Table holds the table name of the unit in the database.
	Table = "units"
	// LessonsTable is the table that holds the lessons relation/edge.
	LessonsTable = "lessons"
	// LessonsInverseTable is the table name for the Lesson entity.
	// It exists in this package in order to avoid circular dependency with the "lesson" package.
	LessonsInverseTable = "lessons"
	// LessonsColumn is the table column denoting the lessons relation/edge.
	LessonsColumn = "unit_id"
)

// Columns holds all SQL columns for unit fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldDescription,
	FieldLearnerLevel,
	FieldLearningObjectives,
	FieldLessonOrder,
	FieldTargetLessonCount,
	FieldGeneratedFromTopic,
	FieldSourceMaterial,
	FieldFlowType,
	FieldStatus,
	FieldErrorMessage,
	FieldCreationProgress,
	FieldUserID,
	FieldIsGlobal,
	FieldFlowRunID,
	FieldPodID,
	FieldArtImageID,
	FieldArtImageDescription,
	FieldPodcastTranscript,
	FieldPodcastAudioID,
	FieldPodcastVoice,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultGeneratedFromTopic holds the default value on creation for the "generated_from_topic" field.
	DefaultGeneratedFromTopic bool
	// DefaultIsGlobal holds the default value on creation for the "is_global" field.
	DefaultIsGlobal bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// LearnerLevel defines the type for the "learner_level" enum field.
type LearnerLevel string

// LearnerLevelBeginner is the default value of the LearnerLevel enum.
const DefaultLearnerLevel = LearnerLevelBeginner

// LearnerLevel values.
const (
	LearnerLevelBeginner     LearnerLevel = "beginner"
	LearnerLevelIntermediate LearnerLevel = "intermediate"
	LearnerLevelAdvanced     LearnerLevel = "advanced"
)

func (ll LearnerLevel) String() string {
	return string(ll)
}

// LearnerLevelValidator is a validator for the "learner_level" field enum values. It is called by the builders before save.
func LearnerLevelValidator(ll LearnerLevel) error {
	switch ll {
	case LearnerLevelBeginner, LearnerLevelIntermediate, LearnerLevelAdvanced:
		return nil
	default:
		return fmt.Errorf("unit: invalid enum value for learner_level field: %q", ll)
	}
}

// FlowType defines the type for the "flow_type" enum field.
type FlowType string

// FlowTypeStandard is the default value of the FlowType enum.
const DefaultFlowType = FlowTypeStandard

// FlowType values.
const (
	FlowTypeStandard FlowType = "standard"
	FlowTypeFast     FlowType = "fast"
)

func (ft FlowType) String() string {
	return string(ft)
}

// FlowTypeValidator is a validator for the "flow_type" field enum values. It is called by the builders before save.
func FlowTypeValidator(ft FlowType) error {
	switch ft {
	case FlowTypeStandard, FlowTypeFast:
		return nil
	default:
		return fmt.Errorf("unit: invalid enum value for flow_type field: %q", ft)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("unit: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Unit queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByLearnerLevel orders the results by the learner_level field.
func ByLearnerLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerLevel, opts...).ToFunc()
}

// ByTargetLessonCount orders the results by the target_lesson_count field.
func ByTargetLessonCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetLessonCount, opts...).ToFunc()
}

// ByGeneratedFromTopic orders the results by the generated_from_topic field.
func ByGeneratedFromTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeneratedFromTopic, opts...).ToFunc()
}

// BySourceMaterial orders the results by the source_material field.
func BySourceMaterial(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceMaterial, opts...).ToFunc()
}

// ByFlowType orders the results by the flow_type field.
func ByFlowType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlowType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByIsGlobal orders the results by the is_global field.
func ByIsGlobal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsGlobal, opts...).ToFunc()
}

// ByFlowRunID orders the results by the flow_run_id field.
func ByFlowRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlowRunID, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByArtImageID orders the results by the art_image_id field.
func ByArtImageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArtImageID, opts...).ToFunc()
}

// ByArtImageDescription orders the results by the art_image_description field.
func ByArtImageDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArtImageDescription, opts...).ToFunc()
}

// ByPodcastTranscript orders the results by the podcast_transcript field.
func ByPodcastTranscript(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodcastTranscript, opts...).ToFunc()
}

// ByPodcastAudioID orders the results by the podcast_audio_id field.
func ByPodcastAudioID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodcastAudioID, opts...).ToFunc()
}

// ByPodcastVoice orders the results by the podcast_voice field.
func ByPodcastVoice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodcastVoice, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByLessonsCount orders the results by lessons count.
func ByLessonsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLessonsStep(), opts...)
	}
}

// ByLessons orders the results by lessons terms.
func ByLessons(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLessonsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newLessonsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LessonsInverseTable, LessonFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LessonsTable, LessonsColumn),
	)
}
