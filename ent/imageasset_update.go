// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/brianfields/deeplearn-sub002/ent/imageasset"
	"github.com/brianfields/deeplearn-sub002/ent/predicate"
)

// ImageAssetUpdate is the builder for updating ImageAsset entities.
type ImageAssetUpdate struct {
	config
	hooks    []Hook
	mutation *ImageAssetMutation
}

// Where appends a list predicates to the ImageAssetUpdate builder.
func (_u *ImageAssetUpdate) Where(ps ...predicate.ImageAsset) *ImageAssetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ImageAssetUpdate) SetUserID(v string) *ImageAssetUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ImageAssetUpdate) SetNillableUserID(v *string) *ImageAssetUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *ImageAssetUpdate) ClearUserID() *ImageAssetUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetS3Key sets the "s3_key" field.
func (_u *ImageAssetUpdate) SetS3Key(v string) *ImageAssetUpdate {
	_u.mutation.SetS3Key(v)
	return _u
}

// SetNillableS3Key sets the "s3_key" field if the given value is not nil.
func (_u *ImageAssetUpdate) SetNillableS3Key(v *string) *ImageAssetUpdate {
	if v != nil {
		_u.SetS3Key(*v)
	}
	return _u
}

// SetBucket sets the "bucket" field.
func (_u *ImageAssetUpdate) SetBucket(v string) *ImageAssetUpdate {
	_u.mutation.SetBucket(v)
	return _u
}

// SetNillableBucket sets the "bucket" field if the given value is not nil.
func (_u *ImageAssetUpdate) SetNillableBucket(v *string) *ImageAssetUpdate {
	if v != nil {
		_u.SetBucket(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *ImageAssetUpdate) SetContentType(v string) *ImageAssetUpdate {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *ImageAssetUpdate) SetNillableContentType(v *string) *ImageAssetUpdate {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *ImageAssetUpdate) SetFileSize(v int64) *ImageAssetUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *ImageAssetUpdate) SetNillableFileSize(v *int64) *ImageAssetUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *ImageAssetUpdate) AddFileSize(v int64) *ImageAssetUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetWidth sets the "width" field.
func (_u *ImageAssetUpdate) SetWidth(v int) *ImageAssetUpdate {
	_u.mutation.ResetWidth()
	_u.mutation.SetWidth(v)
	return _u
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_u *ImageAssetUpdate) SetNillableWidth(v *int) *ImageAssetUpdate {
	if v != nil {
		_u.SetWidth(*v)
	}
	return _u
}

// AddWidth adds value to the "width" field.
func (_u *ImageAssetUpdate) AddWidth(v int) *ImageAssetUpdate {
	_u.mutation.AddWidth(v)
	return _u
}

// ClearWidth clears the value of the "width" field.
func (_u *ImageAssetUpdate) ClearWidth() *ImageAssetUpdate {
	_u.mutation.ClearWidth()
	return _u
}

// SetHeight sets the "height" field.
func (_u *ImageAssetUpdate) SetHeight(v int) *ImageAssetUpdate {
	_u.mutation.ResetHeight()
	_u.mutation.SetHeight(v)
	return _u
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_u *ImageAssetUpdate) SetNillableHeight(v *int) *ImageAssetUpdate {
	if v != nil {
		_u.SetHeight(*v)
	}
	return _u
}

// AddHeight adds value to the "height" field.
func (_u *ImageAssetUpdate) AddHeight(v int) *ImageAssetUpdate {
	_u.mutation.AddHeight(v)
	return _u
}

// ClearHeight clears the value of the "height" field.
func (_u *ImageAssetUpdate) ClearHeight() *ImageAssetUpdate {
	_u.mutation.ClearHeight()
	return _u
}

// SetAltText sets the "alt_text" field.
func (_u *ImageAssetUpdate) SetAltText(v string) *ImageAssetUpdate {
	_u.mutation.SetAltText(v)
	return _u
}

// SetNillableAltText sets the "alt_text" field if the given value is not nil.
func (_u *ImageAssetUpdate) SetNillableAltText(v *string) *ImageAssetUpdate {
	if v != nil {
		_u.SetAltText(*v)
	}
	return _u
}

// ClearAltText clears the value of the "alt_text" field.
func (_u *ImageAssetUpdate) ClearAltText() *ImageAssetUpdate {
	_u.mutation.ClearAltText()
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *ImageAssetUpdate) SetPrompt(v string) *ImageAssetUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *ImageAssetUpdate) SetNillablePrompt(v *string) *ImageAssetUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// ClearPrompt clears the value of the "prompt" field.
func (_u *ImageAssetUpdate) ClearPrompt() *ImageAssetUpdate {
	_u.mutation.ClearPrompt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ImageAssetUpdate) SetCreatedAt(v time.Time) *ImageAssetUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ImageAssetUpdate) SetNillableCreatedAt(v *time.Time) *ImageAssetUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the ImageAssetMutation object of the builder.
func (_u *ImageAssetUpdate) Mutation() *ImageAssetMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ImageAssetUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImageAssetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ImageAssetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImageAssetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ImageAssetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(imageasset.Table, imageasset.Columns, sqlgraph.NewFieldSpec(imageasset.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(imageasset.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(imageasset.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.S3Key(); ok {
		_spec.SetField(imageasset.FieldS3Key, field.TypeString, value)
	}
	if value, ok := _u.mutation.Bucket(); ok {
		_spec.SetField(imageasset.FieldBucket, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(imageasset.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(imageasset.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(imageasset.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Width(); ok {
		_spec.SetField(imageasset.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWidth(); ok {
		_spec.AddField(imageasset.FieldWidth, field.TypeInt, value)
	}
	if _u.mutation.WidthCleared() {
		_spec.ClearField(imageasset.FieldWidth, field.TypeInt)
	}
	if value, ok := _u.mutation.Height(); ok {
		_spec.SetField(imageasset.FieldHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeight(); ok {
		_spec.AddField(imageasset.FieldHeight, field.TypeInt, value)
	}
	if _u.mutation.HeightCleared() {
		_spec.ClearField(imageasset.FieldHeight, field.TypeInt)
	}
	if value, ok := _u.mutation.AltText(); ok {
		_spec.SetField(imageasset.FieldAltText, field.TypeString, value)
	}
	if _u.mutation.AltTextCleared() {
		_spec.ClearField(imageasset.FieldAltText, field.TypeString)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(imageasset.FieldPrompt, field.TypeString, value)
	}
	if _u.mutation.PromptCleared() {
		_spec.ClearField(imageasset.FieldPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(imageasset.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{imageasset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ImageAssetUpdateOne is the builder for updating a single ImageAsset entity.
type ImageAssetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ImageAssetMutation
}

// SetUserID sets the "user_id" field.
func (_u *ImageAssetUpdateOne) SetUserID(v string) *ImageAssetUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ImageAssetUpdateOne) SetNillableUserID(v *string) *ImageAssetUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *ImageAssetUpdateOne) ClearUserID() *ImageAssetUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetS3Key sets the "s3_key" field.
func (_u *ImageAssetUpdateOne) SetS3Key(v string) *ImageAssetUpdateOne {
	_u.mutation.SetS3Key(v)
	return _u
}

// SetNillableS3Key sets the "s3_key" field if the given value is not nil.
func (_u *ImageAssetUpdateOne) SetNillableS3Key(v *string) *ImageAssetUpdateOne {
	if v != nil {
		_u.SetS3Key(*v)
	}
	return _u
}

// SetBucket sets the "bucket" field.
func (_u *ImageAssetUpdateOne) SetBucket(v string) *ImageAssetUpdateOne {
	_u.mutation.SetBucket(v)
	return _u
}

// SetNillableBucket sets the "bucket" field if the given value is not nil.
func (_u *ImageAssetUpdateOne) SetNillableBucket(v *string) *ImageAssetUpdateOne {
	if v != nil {
		_u.SetBucket(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *ImageAssetUpdateOne) SetContentType(v string) *ImageAssetUpdateOne {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *ImageAssetUpdateOne) SetNillableContentType(v *string) *ImageAssetUpdateOne {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *ImageAssetUpdateOne) SetFileSize(v int64) *ImageAssetUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *ImageAssetUpdateOne) SetNillableFileSize(v *int64) *ImageAssetUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *ImageAssetUpdateOne) AddFileSize(v int64) *ImageAssetUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetWidth sets the "width" field.
func (_u *ImageAssetUpdateOne) SetWidth(v int) *ImageAssetUpdateOne {
	_u.mutation.ResetWidth()
	_u.mutation.SetWidth(v)
	return _u
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_u *ImageAssetUpdateOne) SetNillableWidth(v *int) *ImageAssetUpdateOne {
	if v != nil {
		_u.SetWidth(*v)
	}
	return _u
}

// AddWidth adds value to the "width" field.
func (_u *ImageAssetUpdateOne) AddWidth(v int) *ImageAssetUpdateOne {
	_u.mutation.AddWidth(v)
	return _u
}

// ClearWidth clears the value of the "width" field.
func (_u *ImageAssetUpdateOne) ClearWidth() *ImageAssetUpdateOne {
	_u.mutation.ClearWidth()
	return _u
}

// SetHeight sets the "height" field.
func (_u *ImageAssetUpdateOne) SetHeight(v int) *ImageAssetUpdateOne {
	_u.mutation.ResetHeight()
	_u.mutation.SetHeight(v)
	return _u
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_u *ImageAssetUpdateOne) SetNillableHeight(v *int) *ImageAssetUpdateOne {
	if v != nil {
		_u.SetHeight(*v)
	}
	return _u
}

// AddHeight adds value to the "height" field.
func (_u *ImageAssetUpdateOne) AddHeight(v int) *ImageAssetUpdateOne {
	_u.mutation.AddHeight(v)
	return _u
}

// ClearHeight clears the value of the "height" field.
func (_u *ImageAssetUpdateOne) ClearHeight() *ImageAssetUpdateOne {
	_u.mutation.ClearHeight()
	return _u
}

// SetAltText sets the "alt_text" field.
func (_u *ImageAssetUpdateOne) SetAltText(v string) *ImageAssetUpdateOne {
	_u.mutation.SetAltText(v)
	return _u
}

// SetNillableAltText sets the "alt_text" field if the given value is not nil.
func (_u *ImageAssetUpdateOne) SetNillableAltText(v *string) *ImageAssetUpdateOne {
	if v != nil {
		_u.SetAltText(*v)
	}
	return _u
}

// ClearAltText clears the value of the "alt_text" field.
func (_u *ImageAssetUpdateOne) ClearAltText() *ImageAssetUpdateOne {
	_u.mutation.ClearAltText()
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *ImageAssetUpdateOne) SetPrompt(v string) *ImageAssetUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *ImageAssetUpdateOne) SetNillablePrompt(v *string) *ImageAssetUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// ClearPrompt clears the value of the "prompt" field.
func (_u *ImageAssetUpdateOne) ClearPrompt() *ImageAssetUpdateOne {
	_u.mutation.ClearPrompt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ImageAssetUpdateOne) SetCreatedAt(v time.Time) *ImageAssetUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ImageAssetUpdateOne) SetNillableCreatedAt(v *time.Time) *ImageAssetUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the ImageAssetMutation object of the builder.
func (_u *ImageAssetUpdateOne) Mutation() *ImageAssetMutation {
	return _u.mutation
}

// Where appends a list predicates to the ImageAssetUpdate builder.
func (_u *ImageAssetUpdateOne) Where(ps ...predicate.ImageAsset) *ImageAssetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ImageAssetUpdateOne) Select(field string, fields ...string) *ImageAssetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ImageAsset entity.
func (_u *ImageAssetUpdateOne) Save(ctx context.Context) (*ImageAsset, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImageAssetUpdateOne) SaveX(ctx context.Context) *ImageAsset {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ImageAssetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImageAssetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ImageAssetUpdateOne) sqlSave(ctx context.Context) (_node *ImageAsset, err error) {
	_spec := sqlgraph.NewUpdateSpec(imageasset.Table, imageasset.Columns, sqlgraph.NewFieldSpec(imageasset.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ImageAsset.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, imageasset.FieldID)
		for _, f := range fields {
			if !imageasset.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != imageasset.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(imageasset.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(imageasset.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.S3Key(); ok {
		_spec.SetField(imageasset.FieldS3Key, field.TypeString, value)
	}
	if value, ok := _u.mutation.Bucket(); ok {
		_spec.SetField(imageasset.FieldBucket, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(imageasset.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(imageasset.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(imageasset.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Width(); ok {
		_spec.SetField(imageasset.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWidth(); ok {
		_spec.AddField(imageasset.FieldWidth, field.TypeInt, value)
	}
	if _u.mutation.WidthCleared() {
		_spec.ClearField(imageasset.FieldWidth, field.TypeInt)
	}
	if value, ok := _u.mutation.Height(); ok {
		_spec.SetField(imageasset.FieldHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeight(); ok {
		_spec.AddField(imageasset.FieldHeight, field.TypeInt, value)
	}
	if _u.mutation.HeightCleared() {
		_spec.ClearField(imageasset.FieldHeight, field.TypeInt)
	}
	if value, ok := _u.mutation.AltText(); ok {
		_spec.SetField(imageasset.FieldAltText, field.TypeString, value)
	}
	if _u.mutation.AltTextCleared() {
		_spec.ClearField(imageasset.FieldAltText, field.TypeString)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(imageasset.FieldPrompt, field.TypeString, value)
	}
	if _u.mutation.PromptCleared() {
		_spec.ClearField(imageasset.FieldPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(imageasset.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &ImageAsset{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{imageasset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
