package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/brianfields/deeplearn-sub002/pkg/models"
)

// LLMRequest holds the schema definition for the LLMRequest entity.
// One row per logical provider call: created pending before the provider is
// contacted, updated in place with the final outcome. Retries reuse the row.
// flow_run_id/step_run_id are plain indexed columns, not foreign keys, so the
// audit trail survives whatever happens to the owning rows.
type LLMRequest struct {
	ent.Schema
}

// Fields of the LLMRequest.
func (LLMRequest) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("llm_request_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Optional().
			Nillable(),
		field.String("provider").
			Comment("e.g. 'openai'"),
		field.String("model"),
		field.Enum("api_variant").
			Values("chat", "structured", "audio", "image").
			Default("chat"),
		field.JSON("messages", []models.ChatMessage{}).
			Optional().
			Comment("Conversation sent to the provider (chat/structured variants)"),
		field.JSON("request_payload", map[string]interface{}{}).
			Optional().
			Comment("Full request as sent, replayable"),
		field.Float("temperature").
			Optional().
			Nillable(),
		field.Int("max_output_tokens").
			Optional().
			Nillable(),
		field.Text("response_content").
			Optional().
			Nillable().
			Comment("Text content of the response, when textual"),
		field.JSON("response_raw", map[string]interface{}{}).
			Optional().
			Comment("Raw provider response envelope"),
		field.String("provider_response_id").
			Optional().
			Nillable(),
		field.String("system_fingerprint").
			Optional().
			Nillable(),
		field.Int("input_tokens").
			Optional().
			Nillable(),
		field.Int("output_tokens").
			Optional().
			Nillable(),
		field.Int("tokens_used").
			Default(0),
		field.Float("cost_estimate").
			Default(0).
			Comment("Estimated USD from the static price table"),
		field.Enum("status").
			Values("pending", "completed", "failed").
			Default("pending"),
		field.String("error_type").
			Optional().
			Nillable().
			Comment("timeout | rate_limited | transport_error | provider_error | invalid_response | validation_error | cancelled | internal_error"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Int("retry_attempt").
			Default(1).
			Comment("Total attempts consumed, 1-based"),
		field.Bool("cached").
			Default(false).
			Comment("Response replayed from the in-process cache"),
		field.Int("execution_time_ms").
			Optional().
			Nillable(),
		field.String("flow_run_id").
			Optional().
			Nillable(),
		field.String("step_run_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("response_created_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the LLMRequest.
func (LLMRequest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("flow_run_id"),
		index.Fields("step_run_id"),
		index.Fields("status", "created_at"),
		index.Fields("model"),
	}
}
