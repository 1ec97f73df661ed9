// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/brianfields/deeplearn-sub002/ent/audioasset"
)

// AudioAssetCreate is the builder for creating a AudioAsset entity.
type AudioAssetCreate struct {
	config
	mutation *AudioAssetMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *AudioAssetCreate) SetUserID(v string) *AudioAssetCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *AudioAssetCreate) SetNillableUserID(v *string) *AudioAssetCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetS3Key sets the "s3_key" field.
func (_c *AudioAssetCreate) SetS3Key(v string) *AudioAssetCreate {
	_c.mutation.SetS3Key(v)
	return _c
}

// SetBucket sets the "bucket" field.
func (_c *AudioAssetCreate) SetBucket(v string) *AudioAssetCreate {
	_c.mutation.SetBucket(v)
	return _c
}

// SetContentType sets the "content_type" field.
func (_c *AudioAssetCreate) SetContentType(v string) *AudioAssetCreate {
	_c.mutation.SetContentType(v)
	return _c
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_c *AudioAssetCreate) SetNillableContentType(v *string) *AudioAssetCreate {
	if v != nil {
		_c.SetContentType(*v)
	}
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *AudioAssetCreate) SetFileSize(v int64) *AudioAssetCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_c *AudioAssetCreate) SetNillableFileSize(v *int64) *AudioAssetCreate {
	if v != nil {
		_c.SetFileSize(*v)
	}
	return _c
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_c *AudioAssetCreate) SetDurationSeconds(v float64) *AudioAssetCreate {
	_c.mutation.SetDurationSeconds(v)
	return _c
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_c *AudioAssetCreate) SetNillableDurationSeconds(v *float64) *AudioAssetCreate {
	if v != nil {
		_c.SetDurationSeconds(*v)
	}
	return _c
}

// SetTranscript sets the "transcript" field.
func (_c *AudioAssetCreate) SetTranscript(v string) *AudioAssetCreate {
	_c.mutation.SetTranscript(v)
	return _c
}

// SetNillableTranscript sets the "transcript" field if the given value is not nil.
func (_c *AudioAssetCreate) SetNillableTranscript(v *string) *AudioAssetCreate {
	if v != nil {
		_c.SetTranscript(*v)
	}
	return _c
}

// SetVoice sets the "voice" field.
func (_c *AudioAssetCreate) SetVoice(v string) *AudioAssetCreate {
	_c.mutation.SetVoice(v)
	return _c
}

// SetNillableVoice sets the "voice" field if the given value is not nil.
func (_c *AudioAssetCreate) SetNillableVoice(v *string) *AudioAssetCreate {
	if v != nil {
		_c.SetVoice(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AudioAssetCreate) SetCreatedAt(v time.Time) *AudioAssetCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AudioAssetCreate) SetNillableCreatedAt(v *time.Time) *AudioAssetCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AudioAssetCreate) SetID(v string) *AudioAssetCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AudioAssetMutation object of the builder.
func (_c *AudioAssetCreate) Mutation() *AudioAssetMutation {
	return _c.mutation
}

// Save creates the AudioAsset in the database.
func (_c *AudioAssetCreate) Save(ctx context.Context) (*AudioAsset, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AudioAssetCreate) SaveX(ctx context.Context) *AudioAsset {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AudioAssetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AudioAssetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AudioAssetCreate) defaults() {
	if _, ok := _c.mutation.ContentType(); !ok {
		v := audioasset.DefaultContentType
		_c.mutation.SetContentType(v)
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		v := audioasset.DefaultFileSize
		_c.mutation.SetFileSize(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := audioasset.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AudioAssetCreate) check() error {
	if _, ok := _c.mutation.S3Key(); !ok {
		return &ValidationError{Name: "s3_key", err: errors.New(`ent: missing required field "AudioAsset.s3_key"`)}
	}
	if _, ok := _c.mutation.Bucket(); !ok {
		return &ValidationError{Name: "bucket", err: errors.New(`ent: missing required field "AudioAsset.bucket"`)}
	}
	if _, ok := _c.mutation.ContentType(); !ok {
		return &ValidationError{Name: "content_type", err: errors.New(`ent: missing required field "AudioAsset.content_type"`)}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "AudioAsset.file_size"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AudioAsset.created_at"`)}
	}
	return nil
}

func (_c *AudioAssetCreate) sqlSave(ctx context.Context) (*AudioAsset, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AudioAsset.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AudioAssetCreate) createSpec() (*AudioAsset, *sqlgraph.CreateSpec) {
	var (
		_node = &AudioAsset{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(audioasset.Table, sqlgraph.NewFieldSpec(audioasset.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(audioasset.FieldUserID, field.TypeString, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.S3Key(); ok {
		_spec.SetField(audioasset.FieldS3Key, field.TypeString, value)
		_node.S3Key = value
	}
	if value, ok := _c.mutation.Bucket(); ok {
		_spec.SetField(audioasset.FieldBucket, field.TypeString, value)
		_node.Bucket = value
	}
	if value, ok := _c.mutation.ContentType(); ok {
		_spec.SetField(audioasset.FieldContentType, field.TypeString, value)
		_node.ContentType = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(audioasset.FieldFileSize, field.TypeInt64, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.DurationSeconds(); ok {
		_spec.SetField(audioasset.FieldDurationSeconds, field.TypeFloat64, value)
		_node.DurationSeconds = &value
	}
	if value, ok := _c.mutation.Transcript(); ok {
		_spec.SetField(audioasset.FieldTranscript, field.TypeString, value)
		_node.Transcript = &value
	}
	if value, ok := _c.mutation.Voice(); ok {
		_spec.SetField(audioasset.FieldVoice, field.TypeString, value)
		_node.Voice = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(audioasset.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// AudioAssetCreateBulk is the builder for creating many AudioAsset entities in bulk.
type AudioAssetCreateBulk struct {
	config
	err      error
	builders []*AudioAssetCreate
}

// Save creates the AudioAsset entities in the database.
func (_c *AudioAssetCreateBulk) Save(ctx context.Context) ([]*AudioAsset, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AudioAsset, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AudioAssetMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AudioAssetCreateBulk) SaveX(ctx context.Context) []*AudioAsset {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AudioAssetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AudioAssetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
