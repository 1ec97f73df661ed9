// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/brianfields/deeplearn-sub002/ent/lesson"
	"github.com/brianfields/deeplearn-sub002/ent/unit"
	"github.com/brianfields/deeplearn-sub002/pkg/models"
)

// Lesson is the model entity for the Lesson schema.
type Lesson struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UnitID holds the value of the "unit_id" field.
	UnitID string `json:"unit_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// LearnerLevel holds the value of the "learner_level" field.
	LearnerLevel lesson.LearnerLevel `json:"learner_level,omitempty"`
	// The slice of unit source material this lesson was built from
	SourceMaterial *string `json:"source_material,omitempty"`
	// Validated lesson package; never persisted invalid
	Package *models.LessonPackage `json:"package,omitempty"`
	// PackageVersion holds the value of the "package_version" field.
	PackageVersion int `json:"package_version,omitempty"`
	// The lesson_creation flow that built this lesson
	FlowRunID *string `json:"flow_run_id,omitempty"`
	// PodcastTranscript holds the value of the "podcast_transcript" field.
	PodcastTranscript *string `json:"podcast_transcript,omitempty"`
	// PodcastAudioID holds the value of the "podcast_audio_id" field.
	PodcastAudioID *string `json:"podcast_audio_id,omitempty"`
	// PodcastDurationSeconds holds the value of the "podcast_duration_seconds" field.
	PodcastDurationSeconds *float64 `json:"podcast_duration_seconds,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LessonQuery when eager-loading is set.
	Edges        LessonEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LessonEdges holds the relations/edges for other nodes in the graph.
type LessonEdges struct {
	// Unit holds the value of the unit edge.
	Unit *Unit `json:"unit,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UnitOrErr returns the Unit value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LessonEdges) UnitOrErr() (*Unit, error) {
	if e.Unit != nil {
		return e.Unit, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: unit.Label}
	}
	return nil, &NotLoadedError{edge: "unit"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Lesson) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lesson.FieldPackage:
			values[i] = new([]byte)
		case lesson.FieldPodcastDurationSeconds:
			values[i] = new(sql.NullFloat64)
		case lesson.FieldPackageVersion:
			values[i] = new(sql.NullInt64)
		case lesson.FieldID, lesson.FieldUnitID, lesson.FieldTitle, lesson.FieldLearnerLevel, lesson.FieldSourceMaterial, lesson.FieldFlowRunID, lesson.FieldPodcastTranscript, lesson.FieldPodcastAudioID:
			values[i] = new(sql.NullString)
		case lesson.FieldCreatedAt, lesson.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Lesson fields.
func (_m *Lesson) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lesson.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case lesson.FieldUnitID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit_id", values[i])
			} else if value.Valid {
				_m.UnitID = value.String
			}
		case lesson.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case lesson.FieldLearnerLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_level", values[i])
			} else if value.Valid {
				_m.LearnerLevel = lesson.LearnerLevel(value.String)
			}
		case lesson.FieldSourceMaterial:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_material", values[i])
			} else if value.Valid {
				_m.SourceMaterial = new(string)
				*_m.SourceMaterial = value.String
			}
		case lesson.FieldPackage:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field package", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Package); err != nil {
					return fmt.Errorf("unmarshal field package: %w", err)
				}
			}
		case lesson.FieldPackageVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field package_version", values[i])
			} else if value.Valid {
				_m.PackageVersion = int(value.Int64)
			}
		case lesson.FieldFlowRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field flow_run_id", values[i])
			} else if value.Valid {
				_m.FlowRunID = new(string)
				*_m.FlowRunID = value.String
			}
		case lesson.FieldPodcastTranscript:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field podcast_transcript", values[i])
			} else if value.Valid {
				_m.PodcastTranscript = new(string)
				*_m.PodcastTranscript = value.String
			}
		case lesson.FieldPodcastAudioID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field podcast_audio_id", values[i])
			} else if value.Valid {
				_m.PodcastAudioID = new(string)
				*_m.PodcastAudioID = value.String
			}
		case lesson.FieldPodcastDurationSeconds:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field podcast_duration_seconds", values[i])
			} else if value.Valid {
				_m.PodcastDurationSeconds = new(float64)
				*_m.PodcastDurationSeconds = value.Float64
			}
		case lesson.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case lesson.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Lesson.
// This includes values selected through modifiers, order, etc.
func (_m *Lesson) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUnit queries the "unit" edge of the Lesson entity.
func (_m *Lesson) QueryUnit() *UnitQuery {
	return NewLessonClient(_m.config).QueryUnit(_m)
}

// Update returns a builder for updating this Lesson.
// Note that you need to call Lesson.Unwrap() before calling this method if this Lesson
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Lesson) Update() *LessonUpdateOne {
	return NewLessonClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Lesson entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Lesson) Unwrap() *Lesson {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Lesson is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Lesson) String() string {
	var builder strings.Builder
	builder.WriteString("Lesson(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("unit_id=")
	builder.WriteString(_m.UnitID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("learner_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.LearnerLevel))
	builder.WriteString(", ")
	if v := _m.SourceMaterial; v != nil {
		builder.WriteString("source_material=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("package=")
	builder.WriteString(fmt.Sprintf("%v", _m.Package))
	builder.WriteString(", ")
	builder.WriteString("package_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.PackageVersion))
	builder.WriteString(", ")
	if v := _m.FlowRunID; v != nil {
		builder.WriteString("flow_run_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PodcastTranscript; v != nil {
		builder.WriteString("podcast_transcript=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PodcastAudioID; v != nil {
		builder.WriteString("podcast_audio_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PodcastDurationSeconds; v != nil {
		builder.WriteString("podcast_duration_seconds=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Lessons is a parsable slice of Lesson.
type Lessons []*Lesson
