package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/brianfields/deeplearn-sub002/pkg/models"
)

// Lesson holds the schema definition for the Lesson entity.
// The package column carries the complete versioned lesson payload; the
// scalar columns exist for listing and filtering without deserializing it.
type Lesson struct {
	ent.Schema
}

// Fields of the Lesson.
func (Lesson) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("lesson_id").
			Unique().
			Immutable(),
		field.String("unit_id").
			Immutable(),
		field.String("title"),
		field.Enum("learner_level").
			Values("beginner", "intermediate", "advanced").
			Default("beginner"),
		field.Text("source_material").
			Optional().
			Nillable().
			Comment("The slice of unit source material this lesson was built from"),
		field.JSON("package", &models.LessonPackage{}).
			Comment("Validated lesson package; never persisted invalid"),
		field.Int("package_version").
			Default(1),
		field.String("flow_run_id").
			Optional().
			Nillable().
			Comment("The lesson_creation flow that built this lesson"),
		field.Text("podcast_transcript").
			Optional().
			Nillable(),
		field.String("podcast_audio_id").
			Optional().
			Nillable(),
		field.Float("podcast_duration_seconds").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Lesson.
func (Lesson) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("unit", Unit.Type).
			Ref("lessons").
			Field("unit_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Lesson.
func (Lesson) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("unit_id"),
		index.Fields("flow_run_id"),
	}
}
