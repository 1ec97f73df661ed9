// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/brianfields/deeplearn-sub002/ent/unit"
	"github.com/brianfields/deeplearn-sub002/pkg/models"
)

// Unit is the model entity for the Unit schema.
type Unit struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Placeholder (topic) until metadata extraction replaces it
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// LearnerLevel holds the value of the "learner_level" field.
	LearnerLevel unit.LearnerLevel `json:"learner_level,omitempty"`
	// LearningObjectives holds the value of the "learning_objectives" field.
	LearningObjectives []models.LearningObjective `json:"learning_objectives,omitempty"`
	// Lesson ids in plan order; only successful lessons appear
	LessonOrder []string `json:"lesson_order,omitempty"`
	// TargetLessonCount holds the value of the "target_lesson_count" field.
	TargetLessonCount *int `json:"target_lesson_count,omitempty"`
	// True when source material was generated, not submitted
	GeneratedFromTopic bool `json:"generated_from_topic,omitempty"`
	// SourceMaterial holds the value of the "source_material" field.
	SourceMaterial *string `json:"source_material,omitempty"`
	// FlowType holds the value of the "flow_type" field.
	FlowType unit.FlowType `json:"flow_type,omitempty"`
	// Status holds the value of the "status" field.
	Status unit.Status `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreationProgress holds the value of the "creation_progress" field.
	CreationProgress *models.CreationProgress `json:"creation_progress,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID *string `json:"user_id,omitempty"`
	// Visible to all learners; per-user sharing is out of scope
	IsGlobal bool `json:"is_global,omitempty"`
	// The unit_creation flow that built this unit
	FlowRunID *string `json:"flow_run_id,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// ArtImageID holds the value of the "art_image_id" field.
	ArtImageID *string `json:"art_image_id,omitempty"`
	// Alt text for the generated cover art
	ArtImageDescription *string `json:"art_image_description,omitempty"`
	// PodcastTranscript holds the value of the "podcast_transcript" field.
	PodcastTranscript *string `json:"podcast_transcript,omitempty"`
	// PodcastAudioID holds the value of the "podcast_audio_id" field.
	PodcastAudioID *string `json:"podcast_audio_id,omitempty"`
	// PodcastVoice holds the value of the "podcast_voice" field.
	PodcastVoice *string `json:"podcast_voice,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UnitQuery when eager-loading is set.
	Edges        UnitEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UnitEdges holds the relations/edges for other nodes in the graph.
type UnitEdges struct {
	// Lessons holds the value of the lessons edge.
	Lessons []*Lesson `json:"lessons,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// LessonsOrErr returns the Lessons value or an error if the edge
// was not loaded in eager-loading.
func (e UnitEdges) LessonsOrErr() ([]*Lesson, error) {
	if e.loadedTypes[0] {
		return e.Lessons, nil
	}
	return nil, &NotLoadedError{edge: "lessons"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Unit) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case unit.FieldLearningObjectives, unit.FieldLessonOrder, unit.FieldCreationProgress:
			values[i] = new([]byte)
		case unit.FieldGeneratedFromTopic, unit.FieldIsGlobal:
			values[i] = new(sql.NullBool)
		case unit.FieldTargetLessonCount:
			values[i] = new(sql.NullInt64)
		case unit.FieldID, unit.FieldTitle, unit.FieldDescription, unit.FieldLearnerLevel, unit.FieldSourceMaterial, unit.FieldFlowType, unit.FieldStatus, unit.FieldErrorMessage, unit.FieldUserID, unit.FieldFlowRunID, unit.FieldPodID, unit.FieldArtImageID, unit.FieldArtImageDescription, unit.FieldPodcastTranscript, unit.FieldPodcastAudioID, unit.FieldPodcastVoice:
			values[i] = new(sql.NullString)
		case unit.FieldCreatedAt, unit.FieldUpdatedAt, unit.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Unit fields.
func (_m *Unit) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case unit.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case unit.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case unit.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case unit.FieldLearnerLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_level", values[i])
			} else if value.Valid {
				_m.LearnerLevel = unit.LearnerLevel(value.String)
			}
		case unit.FieldLearningObjectives:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field learning_objectives", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LearningObjectives); err != nil {
					return fmt.Errorf("unmarshal field learning_objectives: %w", err)
				}
			}
		case unit.FieldLessonOrder:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_order", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LessonOrder); err != nil {
					return fmt.Errorf("unmarshal field lesson_order: %w", err)
				}
			}
		case unit.FieldTargetLessonCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field target_lesson_count", values[i])
			} else if value.Valid {
				_m.TargetLessonCount = new(int)
				*_m.TargetLessonCount = int(value.Int64)
			}
		case unit.FieldGeneratedFromTopic:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field generated_from_topic", values[i])
			} else if value.Valid {
				_m.GeneratedFromTopic = value.Bool
			}
		case unit.FieldSourceMaterial:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_material", values[i])
			} else if value.Valid {
				_m.SourceMaterial = new(string)
				*_m.SourceMaterial = value.String
			}
		case unit.FieldFlowType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field flow_type", values[i])
			} else if value.Valid {
				_m.FlowType = unit.FlowType(value.String)
			}
		case unit.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = unit.Status(value.String)
			}
		case unit.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case unit.FieldCreationProgress:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field creation_progress", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CreationProgress); err != nil {
					return fmt.Errorf("unmarshal field creation_progress: %w", err)
				}
			}
		case unit.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = new(string)
				*_m.UserID = value.String
			}
		case unit.FieldIsGlobal:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_global", values[i])
			} else if value.Valid {
				_m.IsGlobal = value.Bool
			}
		case unit.FieldFlowRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field flow_run_id", values[i])
			} else if value.Valid {
				_m.FlowRunID = new(string)
				*_m.FlowRunID = value.String
			}
		case unit.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case unit.FieldArtImageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field art_image_id", values[i])
			} else if value.Valid {
				_m.ArtImageID = new(string)
				*_m.ArtImageID = value.String
			}
		case unit.FieldArtImageDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field art_image_description", values[i])
			} else if value.Valid {
				_m.ArtImageDescription = new(string)
				*_m.ArtImageDescription = value.String
			}
		case unit.FieldPodcastTranscript:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field podcast_transcript", values[i])
			} else if value.Valid {
				_m.PodcastTranscript = new(string)
				*_m.PodcastTranscript = value.String
			}
		case unit.FieldPodcastAudioID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field podcast_audio_id", values[i])
			} else if value.Valid {
				_m.PodcastAudioID = new(string)
				*_m.PodcastAudioID = value.String
			}
		case unit.FieldPodcastVoice:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field podcast_voice", values[i])
			} else if value.Valid {
				_m.PodcastVoice = new(string)
				*_m.PodcastVoice = value.String
			}
		case unit.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case unit.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case unit.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Unit.
// This includes values selected through modifiers, order, etc.
func (_m *Unit) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLessons queries the "lessons" edge of the Unit entity.
func (_m *Unit) QueryLessons() *LessonQuery {
	return NewUnitClient(_m.config).QueryLessons(_m)
}

// Update returns a builder for updating this Unit.
// Note that you need to call Unit.Unwrap() before calling this method if this Unit
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Unit) Update() *UnitUpdateOne {
	return NewUnitClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Unit entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Unit) Unwrap() *Unit {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Unit is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Unit) String() string {
	var builder strings.Builder
	builder.WriteString("Unit(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("learner_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.LearnerLevel))
	builder.WriteString(", ")
	builder.WriteString("learning_objectives=")
	builder.WriteString(fmt.Sprintf("%v", _m.LearningObjectives))
	builder.WriteString(", ")
	builder.WriteString("lesson_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.LessonOrder))
	builder.WriteString(", ")
	if v := _m.TargetLessonCount; v != nil {
		builder.WriteString("target_lesson_count=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("generated_from_topic=")
	builder.WriteString(fmt.Sprintf("%v", _m.GeneratedFromTopic))
	builder.WriteString(", ")
	if v := _m.SourceMaterial; v != nil {
		builder.WriteString("source_material=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("flow_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.FlowType))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("creation_progress=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreationProgress))
	builder.WriteString(", ")
	if v := _m.UserID; v != nil {
		builder.WriteString("user_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_global=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsGlobal))
	builder.WriteString(", ")
	if v := _m.FlowRunID; v != nil {
		builder.WriteString("flow_run_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ArtImageID; v != nil {
		builder.WriteString("art_image_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ArtImageDescription; v != nil {
		builder.WriteString("art_image_description=")
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
	if v := _m.PodcastVoice; v != nil {
		builder.WriteString("podcast_voice=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Units is a parsable slice of Unit.
type Units []*Unit
