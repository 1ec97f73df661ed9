package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AudioAsset holds the schema definition for the AudioAsset entity.
// The blob itself lives in the object store; this row keeps the key and
// enough metadata to serve it.
type AudioAsset struct {
	ent.Schema
}

// Fields of the AudioAsset.
func (AudioAsset) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("audio_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Optional().
			Nillable(),
		field.String("s3_key"),
		field.String("bucket"),
		field.String("content_type").
			Default("audio/mpeg"),
		field.Int64("file_size").
			Default(0),
		field.Float("duration_seconds").
			Optional().
			Nillable().
			Comment("Estimated from transcript length; the provider reports none"),
		field.Text("transcript").
			Optional().
			Nillable(),
		field.String("voice").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Indexes of the AudioAsset.
func (AudioAsset) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("s3_key"),
	}
}
