package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FlowRun holds the schema definition for the FlowRun entity.
// One row per flow execution: the durable record every step run and
// LLM request hangs off.
type FlowRun struct {
	ent.Schema
}

// Fields of the FlowRun.
func (FlowRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("flow_run_id").
			Unique().
			Immutable(),
		field.String("flow_name").
			Comment("e.g. 'unit_creation', 'lesson_creation'"),
		field.Enum("execution_mode").
			Values("sync", "background").
			Default("sync"),
		field.String("user_id").
			Optional().
			Nillable().
			Comment("Recorded for attribution, never enforced"),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "cancelled").
			Default("pending"),
		field.JSON("inputs", map[string]interface{}{}).
			Optional().
			Comment("Seed values for the flow context"),
		field.JSON("outputs", map[string]interface{}{}).
			Optional().
			Comment("Final outputs, set on completion"),
		field.JSON("flow_metadata", map[string]interface{}{}).
			Optional().
			Comment("Domain tags, e.g. unit_id, lesson_title, parent_flow_run_id"),
		field.String("current_step").
			Optional().
			Nillable().
			Comment("Name of the step currently executing"),
		field.Int("step_progress").
			Default(0).
			Comment("Completed step count"),
		field.Int("total_steps").
			Default(0),
		field.Float("progress_percentage").
			Default(0),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("last_heartbeat").
			Optional().
			Nillable().
			Comment("Stamped periodically while running; stall detection input"),
		field.Int("execution_time_ms").
			Optional().
			Nillable(),
		field.Int("total_tokens").
			Default(0).
			Comment("Roll-up over step rows, children included"),
		field.Float("total_cost").
			Default(0).
			Comment("Estimated USD roll-up over step rows, children included"),
	}
}

// Edges of the FlowRun.
func (FlowRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("steps", FlowStepRun.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the FlowRun.
func (FlowRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("flow_name"),
		index.Fields("status", "created_at"),
		index.Fields("status", "last_heartbeat"),
	}
}
