package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/brianfields/deeplearn-sub002/pkg/models"
)

// Unit holds the schema definition for the Unit entity.
// A unit is both the learner-facing container of lessons and the queue row
// workers claim: pending units are the backlog.
type Unit struct {
	ent.Schema
}

// Fields of the Unit.
func (Unit) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("unit_id").
			Unique().
			Immutable(),
		field.String("title").
			Comment("Placeholder (topic) until metadata extraction replaces it"),
		field.Text("description").
			Optional().
			Nillable(),
		field.Enum("learner_level").
			Values("beginner", "intermediate", "advanced").
			Default("beginner"),
		field.JSON("learning_objectives", []models.LearningObjective{}).
			Optional(),
		field.JSON("lesson_order", []string{}).
			Optional().
			Comment("Lesson ids in plan order; only successful lessons appear"),
		field.Int("target_lesson_count").
			Optional().
			Nillable(),
		field.Bool("generated_from_topic").
			Default(false).
			Comment("True when source material was generated, not submitted"),
		field.Text("source_material").
			Optional().
			Nillable(),
		field.Enum("flow_type").
			Values("standard", "fast").
			Default("standard"),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "failed").
			Default("pending"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.JSON("creation_progress", &models.CreationProgress{}).
			Optional(),
		field.String("user_id").
			Optional().
			Nillable(),
		field.Bool("is_global").
			Default(true).
			Comment("Visible to all learners; per-user sharing is out of scope"),
		field.String("flow_run_id").
			Optional().
			Nillable().
			Comment("The unit_creation flow that built this unit"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.String("art_image_id").
			Optional().
			Nillable(),
		field.Text("art_image_description").
			Optional().
			Nillable().
			Comment("Alt text for the generated cover art"),
		field.Text("podcast_transcript").
			Optional().
			Nillable(),
		field.String("podcast_audio_id").
			Optional().
			Nillable(),
		field.String("podcast_voice").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Unit.
func (Unit) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("lessons", Lesson.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Unit.
func (Unit) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "created_at"),
		index.Fields("flow_run_id"),
		index.Fields("user_id"),
	}
}
