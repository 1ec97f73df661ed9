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
	"github.com/brianfields/deeplearn-sub002/ent/audioasset"
	"github.com/brianfields/deeplearn-sub002/ent/predicate"
)

// AudioAssetUpdate is the builder for updating AudioAsset entities.
type AudioAssetUpdate struct {
	config
	hooks    []Hook
	mutation *AudioAssetMutation
}

// Where appends a list predicates to the AudioAssetUpdate builder.
func (_u *AudioAssetUpdate) Where(ps ...predicate.AudioAsset) *AudioAssetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AudioAssetUpdate) SetUserID(v string) *AudioAssetUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AudioAssetUpdate) SetNillableUserID(v *string) *AudioAssetUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *AudioAssetUpdate) ClearUserID() *AudioAssetUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetS3Key sets the "s3_key" field.
func (_u *AudioAssetUpdate) SetS3Key(v string) *AudioAssetUpdate {
	_u.mutation.SetS3Key(v)
	return _u
}

// SetNillableS3Key sets the "s3_key" field if the given value is not nil.
func (_u *AudioAssetUpdate) SetNillableS3Key(v *string) *AudioAssetUpdate {
	if v != nil {
		_u.SetS3Key(*v)
	}
	return _u
}

// SetBucket sets the "bucket" field.
func (_u *AudioAssetUpdate) SetBucket(v string) *AudioAssetUpdate {
	_u.mutation.SetBucket(v)
	return _u
}

// SetNillableBucket sets the "bucket" field if the given value is not nil.
func (_u *AudioAssetUpdate) SetNillableBucket(v *string) *AudioAssetUpdate {
	if v != nil {
		_u.SetBucket(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *AudioAssetUpdate) SetContentType(v string) *AudioAssetUpdate {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *AudioAssetUpdate) SetNillableContentType(v *string) *AudioAssetUpdate {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *AudioAssetUpdate) SetFileSize(v int64) *AudioAssetUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *AudioAssetUpdate) SetNillableFileSize(v *int64) *AudioAssetUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *AudioAssetUpdate) AddFileSize(v int64) *AudioAssetUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *AudioAssetUpdate) SetDurationSeconds(v float64) *AudioAssetUpdate {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *AudioAssetUpdate) SetNillableDurationSeconds(v *float64) *AudioAssetUpdate {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *AudioAssetUpdate) AddDurationSeconds(v float64) *AudioAssetUpdate {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (_u *AudioAssetUpdate) ClearDurationSeconds() *AudioAssetUpdate {
	_u.mutation.ClearDurationSeconds()
	return _u
}

// SetTranscript sets the "transcript" field.
func (_u *AudioAssetUpdate) SetTranscript(v string) *AudioAssetUpdate {
	_u.mutation.SetTranscript(v)
	return _u
}

// SetNillableTranscript sets the "transcript" field if the given value is not nil.
func (_u *AudioAssetUpdate) SetNillableTranscript(v *string) *AudioAssetUpdate {
	if v != nil {
		_u.SetTranscript(*v)
	}
	return _u
}

// ClearTranscript clears the value of the "transcript" field.
func (_u *AudioAssetUpdate) ClearTranscript() *AudioAssetUpdate {
	_u.mutation.ClearTranscript()
	return _u
}

// SetVoice sets the "voice" field.
func (_u *AudioAssetUpdate) SetVoice(v string) *AudioAssetUpdate {
	_u.mutation.SetVoice(v)
	return _u
}

// SetNillableVoice sets the "voice" field if the given value is not nil.
func (_u *AudioAssetUpdate) SetNillableVoice(v *string) *AudioAssetUpdate {
	if v != nil {
		_u.SetVoice(*v)
	}
	return _u
}

// ClearVoice clears the value of the "voice" field.
func (_u *AudioAssetUpdate) ClearVoice() *AudioAssetUpdate {
	_u.mutation.ClearVoice()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AudioAssetUpdate) SetCreatedAt(v time.Time) *AudioAssetUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AudioAssetUpdate) SetNillableCreatedAt(v *time.Time) *AudioAssetUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the AudioAssetMutation object of the builder.
func (_u *AudioAssetUpdate) Mutation() *AudioAssetMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AudioAssetUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AudioAssetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AudioAssetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AudioAssetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AudioAssetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(audioasset.Table, audioasset.Columns, sqlgraph.NewFieldSpec(audioasset.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(audioasset.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(audioasset.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.S3Key(); ok {
		_spec.SetField(audioasset.FieldS3Key, field.TypeString, value)
	}
	if value, ok := _u.mutation.Bucket(); ok {
		_spec.SetField(audioasset.FieldBucket, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(audioasset.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(audioasset.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(audioasset.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(audioasset.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(audioasset.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if _u.mutation.DurationSecondsCleared() {
		_spec.ClearField(audioasset.FieldDurationSeconds, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Transcript(); ok {
		_spec.SetField(audioasset.FieldTranscript, field.TypeString, value)
	}
	if _u.mutation.TranscriptCleared() {
		_spec.ClearField(audioasset.FieldTranscript, field.TypeString)
	}
	if value, ok := _u.mutation.Voice(); ok {
		_spec.SetField(audioasset.FieldVoice, field.TypeString, value)
	}
	if _u.mutation.VoiceCleared() {
		_spec.ClearField(audioasset.FieldVoice, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(audioasset.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{audioasset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AudioAssetUpdateOne is the builder for updating a single AudioAsset entity.
type AudioAssetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AudioAssetMutation
}

// SetUserID sets the "user_id" field.
func (_u *AudioAssetUpdateOne) SetUserID(v string) *AudioAssetUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AudioAssetUpdateOne) SetNillableUserID(v *string) *AudioAssetUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *AudioAssetUpdateOne) ClearUserID() *AudioAssetUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetS3Key sets the "s3_key" field.
func (_u *AudioAssetUpdateOne) SetS3Key(v string) *AudioAssetUpdateOne {
	_u.mutation.SetS3Key(v)
	return _u
}

// SetNillableS3Key sets the "s3_key" field if the given value is not nil.
func (_u *AudioAssetUpdateOne) SetNillableS3Key(v *string) *AudioAssetUpdateOne {
	if v != nil {
		_u.SetS3Key(*v)
	}
	return _u
}

// SetBucket sets the "bucket" field.
func (_u *AudioAssetUpdateOne) SetBucket(v string) *AudioAssetUpdateOne {
	_u.mutation.SetBucket(v)
	return _u
}

// SetNillableBucket sets the "bucket" field if the given value is not nil.
func (_u *AudioAssetUpdateOne) SetNillableBucket(v *string) *AudioAssetUpdateOne {
	if v != nil {
		_u.SetBucket(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *AudioAssetUpdateOne) SetContentType(v string) *AudioAssetUpdateOne {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *AudioAssetUpdateOne) SetNillableContentType(v *string) *AudioAssetUpdateOne {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *AudioAssetUpdateOne) SetFileSize(v int64) *AudioAssetUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *AudioAssetUpdateOne) SetNillableFileSize(v *int64) *AudioAssetUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *AudioAssetUpdateOne) AddFileSize(v int64) *AudioAssetUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *AudioAssetUpdateOne) SetDurationSeconds(v float64) *AudioAssetUpdateOne {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *AudioAssetUpdateOne) SetNillableDurationSeconds(v *float64) *AudioAssetUpdateOne {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *AudioAssetUpdateOne) AddDurationSeconds(v float64) *AudioAssetUpdateOne {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (_u *AudioAssetUpdateOne) ClearDurationSeconds() *AudioAssetUpdateOne {
	_u.mutation.ClearDurationSeconds()
	return _u
}

// SetTranscript sets the "transcript" field.
func (_u *AudioAssetUpdateOne) SetTranscript(v string) *AudioAssetUpdateOne {
	_u.mutation.SetTranscript(v)
	return _u
}

// SetNillableTranscript sets the "transcript" field if the given value is not nil.
func (_u *AudioAssetUpdateOne) SetNillableTranscript(v *string) *AudioAssetUpdateOne {
	if v != nil {
		_u.SetTranscript(*v)
	}
	return _u
}

// ClearTranscript clears the value of the "transcript" field.
func (_u *AudioAssetUpdateOne) ClearTranscript() *AudioAssetUpdateOne {
	_u.mutation.ClearTranscript()
	return _u
}

// SetVoice sets the "voice" field.
func (_u *AudioAssetUpdateOne) SetVoice(v string) *AudioAssetUpdateOne {
	_u.mutation.SetVoice(v)
	return _u
}

// SetNillableVoice sets the "voice" field if the given value is not nil.
func (_u *AudioAssetUpdateOne) SetNillableVoice(v *string) *AudioAssetUpdateOne {
	if v != nil {
		_u.SetVoice(*v)
	}
	return _u
}

// ClearVoice clears the value of the "voice" field.
func (_u *AudioAssetUpdateOne) ClearVoice() *AudioAssetUpdateOne {
	_u.mutation.ClearVoice()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AudioAssetUpdateOne) SetCreatedAt(v time.Time) *AudioAssetUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AudioAssetUpdateOne) SetNillableCreatedAt(v *time.Time) *AudioAssetUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the AudioAssetMutation object of the builder.
func (_u *AudioAssetUpdateOne) Mutation() *AudioAssetMutation {
	return _u.mutation
}

// Where appends a list predicates to the AudioAssetUpdate builder.
func (_u *AudioAssetUpdateOne) Where(ps ...predicate.AudioAsset) *AudioAssetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AudioAssetUpdateOne) Select(field string, fields ...string) *AudioAssetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AudioAsset entity.
func (_u *AudioAssetUpdateOne) Save(ctx context.Context) (*AudioAsset, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AudioAssetUpdateOne) SaveX(ctx context.Context) *AudioAsset {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AudioAssetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AudioAssetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AudioAssetUpdateOne) sqlSave(ctx context.Context) (_node *AudioAsset, err error) {
	_spec := sqlgraph.NewUpdateSpec(audioasset.Table, audioasset.Columns, sqlgraph.NewFieldSpec(audioasset.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AudioAsset.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, audioasset.FieldID)
		for _, f := range fields {
			if !audioasset.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != audioasset.FieldID {
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
		_spec.SetField(audioasset.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(audioasset.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.S3Key(); ok {
		_spec.SetField(audioasset.FieldS3Key, field.TypeString, value)
	}
	if value, ok := _u.mutation.Bucket(); ok {
		_spec.SetField(audioasset.FieldBucket, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(audioasset.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(audioasset.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(audioasset.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(audioasset.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(audioasset.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if _u.mutation.DurationSecondsCleared() {
		_spec.ClearField(audioasset.FieldDurationSeconds, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Transcript(); ok {
		_spec.SetField(audioasset.FieldTranscript, field.TypeString, value)
	}
	if _u.mutation.TranscriptCleared() {
		_spec.ClearField(audioasset.FieldTranscript, field.TypeString)
	}
	if value, ok := _u.mutation.Voice(); ok {
		_spec.SetField(audioasset.FieldVoice, field.TypeString, value)
	}
	if _u.mutation.VoiceCleared() {
		_spec.ClearField(audioasset.FieldVoice, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(audioasset.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &AudioAsset{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{audioasset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
