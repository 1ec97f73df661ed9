// Code generated by ent, DO NOT EDIT.

package lesson

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the lesson type in the database.
	Label = "lesson"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "lesson_id"
	// FieldUnitID holds the string denoting the unit_id field in the database.
	FieldUnitID = "unit_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldLearnerLevel holds the string denoting the learner_level field in the database.
	FieldLearnerLevel = "learner_level"
	// FieldSourceMaterial holds the string denoting the source_material field in the database.
	FieldSourceMaterial = "source_material"
	// FieldPackage holds the string denoting the package field in the database.
	FieldPackage = "package"
	// FieldPackageVersion holds the string denoting the package_version field in the database.
	FieldPackageVersion = "package_version"
	// FieldFlowRunID holds the string denoting the flow_run_id field in the database.
	FieldFlowRunID = "flow_run_id"
	// FieldPodcastTranscript holds the string denoting the podcast_transcript field in the database.
	FieldPodcastTranscript = "podcast_transcript"
	// FieldPodcastAudioID holds the string denoting the podcast_audio_id field in the database.
	FieldPodcastAudioID = "podcast_audio_id"
	// FieldPodcastDurationSeconds holds the string denoting the podcast_duration_seconds field in the database.
	FieldPodcastDurationSeconds = "podcast_duration_seconds"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeUnit holds the string denoting the unit edge name in mutations.
	EdgeUnit = "unit"
	// UnitFieldID holds the string denoting the ID field of the Unit.
	UnitFieldID = "unit_id"
	// Table holds the table name of the lesson in the database.
	Table = "lessons"
	// UnitTable is the table that holds the unit relation/edge.
	UnitTable = "lessons"
	// UnitInverseTable is the table name for the Unit entity.
	// It exists in this package in order to avoid circular dependency with the "unit" package.
	UnitInverseTable = "units"
	// UnitColumn is the table column denoting the unit relation/edge.
	UnitColumn = "unit_id"
)

// Columns holds all SQL columns for lesson fields.
var Columns = []string{
	FieldID,
	FieldUnitID,
	FieldTitle,
	FieldLearnerLevel,
	FieldSourceMaterial,
	FieldPackage,
	FieldPackageVersion,
	FieldFlowRunID,
	FieldPodcastTranscript,
	FieldPodcastAudioID,
	FieldPodcastDurationSeconds,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultPackageVersion holds the default value on creation for the "package_version" field.
	DefaultPackageVersion int
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
		return fmt.Errorf("lesson: invalid enum value for learner_level field: %q", ll)
	}
}

// OrderOption defines the ordering options for the Lesson queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUnitID orders the results by the unit_id field.
func ByUnitID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByLearnerLevel orders the results by the learner_level field.
func ByLearnerLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerLevel, opts...).ToFunc()
}

// BySourceMaterial orders the results by the source_material field.
func BySourceMaterial(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceMaterial, opts...).ToFunc()
}

// ByPackageVersion orders the results by the package_version field.
func ByPackageVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPackageVersion, opts...).ToFunc()
}

// ByFlowRunID orders the results by the flow_run_id field.
func ByFlowRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlowRunID, opts...).ToFunc()
}

// ByPodcastTranscript orders the results by the podcast_transcript field.
func ByPodcastTranscript(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodcastTranscript, opts...).ToFunc()
}

// ByPodcastAudioID orders the results by the podcast_audio_id field.
func ByPodcastAudioID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodcastAudioID, opts...).ToFunc()
}

// ByPodcastDurationSeconds orders the results by the podcast_duration_seconds field.
func ByPodcastDurationSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodcastDurationSeconds, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUnitField orders the results by unit field.
func ByUnitField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUnitStep(), sql.OrderByField(field, opts...))
	}
}
func newUnitStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UnitInverseTable, UnitFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UnitTable, UnitColumn),
	)
}
