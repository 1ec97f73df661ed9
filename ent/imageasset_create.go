// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/brianfields/deeplearn-sub002/ent/imageasset"
)

// ImageAssetCreate is the builder for creating a ImageAsset entity.
type ImageAssetCreate struct {
	config
	mutation *ImageAssetMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ImageAssetCreate) SetUserID(v string) *ImageAssetCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *ImageAssetCreate) SetNillableUserID(v *string) *ImageAssetCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetS3Key sets the "s3_key" field.
func (_c *ImageAssetCreate) SetS3Key(v string) *ImageAssetCreate {
	_c.mutation.SetS3Key(v)
	return _c
}

// SetBucket sets the "bucket" field.
func (_c *ImageAssetCreate) SetBucket(v string) *ImageAssetCreate {
	_c.mutation.SetBucket(v)
	return _c
}

// SetContentType sets the "content_type" field.
func (_c *ImageAssetCreate) SetContentType(v string) *ImageAssetCreate {
	_c.mutation.SetContentType(v)
	return _c
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_c *ImageAssetCreate) SetNillableContentType(v *string) *ImageAssetCreate {
	if v != nil {
		_c.SetContentType(*v)
	}
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *ImageAssetCreate) SetFileSize(v int64) *ImageAssetCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_c *ImageAssetCreate) SetNillableFileSize(v *int64) *ImageAssetCreate {
	if v != nil {
		_c.SetFileSize(*v)
	}
	return _c
}

// SetWidth sets the "width" field.
func (_c *ImageAssetCreate) SetWidth(v int) *ImageAssetCreate {
	_c.mutation.SetWidth(v)
	return _c
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_c *ImageAssetCreate) SetNillableWidth(v *int) *ImageAssetCreate {
	if v != nil {
		_c.SetWidth(*v)
	}
	return _c
}

// SetHeight sets the "height" field.
func (_c *ImageAssetCreate) SetHeight(v int) *ImageAssetCreate {
	_c.mutation.SetHeight(v)
	return _c
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_c *ImageAssetCreate) SetNillableHeight(v *int) *ImageAssetCreate {
	if v != nil {
		_c.SetHeight(*v)
	}
	return _c
}

// SetAltText sets the "alt_text" field.
func (_c *ImageAssetCreate) SetAltText(v string) *ImageAssetCreate {
	_c.mutation.SetAltText(v)
	return _c
}

// SetNillableAltText sets the "alt_text" field if the given value is not nil.
func (_c *ImageAssetCreate) SetNillableAltText(v *string) *ImageAssetCreate {
	if v != nil {
		_c.SetAltText(*v)
	}
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *ImageAssetCreate) SetPrompt(v string) *ImageAssetCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_c *ImageAssetCreate) SetNillablePrompt(v *string) *ImageAssetCreate {
	if v != nil {
		_c.SetPrompt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ImageAssetCreate) SetCreatedAt(v time.Time) *ImageAssetCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ImageAssetCreate) SetNillableCreatedAt(v *time.Time) *ImageAssetCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ImageAssetCreate) SetID(v string) *ImageAssetCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ImageAssetMutation object of the builder.
func (_c *ImageAssetCreate) Mutation() *ImageAssetMutation {
	return _c.mutation
}

// Save creates the ImageAsset in the database.
func (_c *ImageAssetCreate) Save(ctx context.Context) (*ImageAsset, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ImageAssetCreate) SaveX(ctx context.Context) *ImageAsset {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImageAssetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImageAssetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ImageAssetCreate) defaults() {
	if _, ok := _c.mutation.ContentType(); !ok {
		v := imageasset.DefaultContentType
		_c.mutation.SetContentType(v)
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		v := imageasset.DefaultFileSize
		_c.mutation.SetFileSize(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := imageasset.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ImageAssetCreate) check() error {
	if _, ok := _c.mutation.S3Key(); !ok {
		return &ValidationError{Name: "s3_key", err: errors.New(`ent: missing required field "ImageAsset.s3_key"`)}
	}
	if _, ok := _c.mutation.Bucket(); !ok {
		return &ValidationError{Name: "bucket", err: errors.New(`ent: missing required field "ImageAsset.bucket"`)}
	}
	if _, ok := _c.mutation.ContentType(); !ok {
		return &ValidationError{Name: "content_type", err: errors.New(`ent: missing required field "ImageAsset.content_type"`)}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "ImageAsset.file_size"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ImageAsset.created_at"`)}
	}
	return nil
}

func (_c *ImageAssetCreate) sqlSave(ctx context.Context) (*ImageAsset, error) {
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
			return nil, fmt.Errorf("unexpected ImageAsset.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ImageAssetCreate) createSpec() (*ImageAsset, *sqlgraph.CreateSpec) {
	var (
		_node = &ImageAsset{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(imageasset.Table, sqlgraph.NewFieldSpec(imageasset.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(imageasset.FieldUserID, field.TypeString, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.S3Key(); ok {
		_spec.SetField(imageasset.FieldS3Key, field.TypeString, value)
		_node.S3Key = value
	}
	if value, ok := _c.mutation.Bucket(); ok {
		_spec.SetField(imageasset.FieldBucket, field.TypeString, value)
		_node.Bucket = value
	}
	if value, ok := _c.mutation.ContentType(); ok {
		_spec.SetField(imageasset.FieldContentType, field.TypeString, value)
		_node.ContentType = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(imageasset.FieldFileSize, field.TypeInt64, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.Width(); ok {
		_spec.SetField(imageasset.FieldWidth, field.TypeInt, value)
		_node.Width = &value
	}
	if value, ok := _c.mutation.Height(); ok {
		_spec.SetField(imageasset.FieldHeight, field.TypeInt, value)
		_node.Height = &value
	}
	if value, ok := _c.mutation.AltText(); ok {
		_spec.SetField(imageasset.FieldAltText, field.TypeString, value)
		_node.AltText = &value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(imageasset.FieldPrompt, field.TypeString, value)
		_node.Prompt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(imageasset.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ImageAssetCreateBulk is the builder for creating many ImageAsset entities in bulk.
type ImageAssetCreateBulk struct {
	config
	err      error
	builders []*ImageAssetCreate
}

// Save creates the ImageAsset entities in the database.
func (_c *ImageAssetCreateBulk) Save(ctx context.Context) ([]*ImageAsset, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ImageAsset, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ImageAssetMutation)
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
func (_c *ImageAssetCreateBulk) SaveX(ctx context.Context) []*ImageAsset {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImageAssetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImageAssetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
