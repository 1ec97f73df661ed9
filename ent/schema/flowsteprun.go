package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FlowStepRun holds the schema definition for the FlowStepRun entity.
// One row per executed step of a flow run. Steps skipped by fail-fast
// termination get no row.
type FlowStepRun struct {
	ent.Schema
}

// Fields of the FlowStepRun.
func (FlowStepRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("step_run_id").
			Unique().
			Immutable(),
		field.String("flow_run_id").
			Immutable(),
		field.String("step_name"),
		field.Int("step_order").
			Comment("1-based position within the flow"),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "skipped").
			Default("pending"),
		field.JSON("inputs", map[string]interface{}{}).
			Optional().
			Comment("Validated inputs the step executed with"),
		field.JSON("outputs", map[string]interface{}{}).
			Optional().
			Comment("Validated outputs, set on completion"),
		field.JSON("step_metadata", map[string]interface{}{}).
			Optional().
			Comment("e.g. child_flow_runs for fan-out steps"),
		field.Int("tokens_used").
			Default(0).
			Comment("Sum over this step's LLM requests (children included for fan-out)"),
		field.Float("cost_estimate").
			Default(0),
		field.Int("execution_time_ms").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("llm_request_id").
			Optional().
			Nillable().
			Comment("Set when the step made exactly one LLM call"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the FlowStepRun.
func (FlowStepRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("flow_run", FlowRun.Type).
			Ref("steps").
			Field("flow_run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the FlowStepRun.
func (FlowStepRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("flow_run_id", "step_order").
			Unique(),
		index.Fields("status"),
	}
}
