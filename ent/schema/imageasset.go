package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ImageAsset holds the schema definition for the ImageAsset entity.
// The blob itself lives in the object store; this row keeps the key and
// enough metadata to serve it.
type ImageAsset struct {
	ent.Schema
}

// Fields of the ImageAsset.
func (ImageAsset) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("image_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Optional().
			Nillable(),
		field.String("s3_key"),
		field.String("bucket"),
		field.String("content_type").
			Default("image/png"),
		field.Int64("file_size").
			Default(0),
		field.Int("width").
			Optional().
			Nillable(),
		field.Int("height").
			Optional().
			Nillable(),
		field.Text("alt_text").
			Optional().
			Nillable(),
		field.Text("prompt").
			Optional().
			Nillable().
			Comment("The image prompt actually used (revised by the provider)"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Indexes of the ImageAsset.
func (ImageAsset) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("s3_key"),
	}
}
