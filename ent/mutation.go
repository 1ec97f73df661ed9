// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/brianfields/deeplearn-sub002/ent/audioasset"
	"github.com/brianfields/deeplearn-sub002/ent/flowrun"
	"github.com/brianfields/deeplearn-sub002/ent/flowsteprun"
	"github.com/brianfields/deeplearn-sub002/ent/imageasset"
	"github.com/brianfields/deeplearn-sub002/ent/lesson"
	"github.com/brianfields/deeplearn-sub002/ent/llmrequest"
	"github.com/brianfields/deeplearn-sub002/ent/predicate"
	"github.com/brianfields/deeplearn-sub002/ent/unit"
	"github.com/brianfields/deeplearn-sub002/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAudioAsset  = "AudioAsset"
	TypeFlowRun     = "FlowRun"
	TypeFlowStepRun = "FlowStepRun"
	TypeImageAsset  = "ImageAsset"
	TypeLLMRequest  = "LLMRequest"
	TypeLesson      = "Lesson"
	TypeUnit        = "Unit"
)

// AudioAssetMutation represents an operation that mutates the AudioAsset nodes in the graph.
type AudioAssetMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	user_id             *string
	s3_key              *string
	bucket              *string
	content_type        *string
	file_size           *int64
	addfile_size        *int64
	duration_seconds    *float64
	addduration_seconds *float64
	transcript          *string
	voice               *string
	created_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*AudioAsset, error)
	predicates          []predicate.AudioAsset
}

var _ ent.Mutation = (*AudioAssetMutation)(nil)

// audioassetOption allows management of the mutation configuration using functional options.
type audioassetOption func(*AudioAssetMutation)

// newAudioAssetMutation creates new mutation for the AudioAsset entity.
func newAudioAssetMutation(c config, op Op, opts ...audioassetOption) *AudioAssetMutation {
	m := &AudioAssetMutation{
		config:        c,
		op:            op,
		typ:           TypeAudioAsset,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAudioAssetID sets the ID field of the mutation.
func withAudioAssetID(id string) audioassetOption {
	return func(m *AudioAssetMutation) {
		var (
			err   error
			once  sync.Once
			value *AudioAsset
		)
		m.oldValue = func(ctx context.Context) (*AudioAsset, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AudioAsset.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAudioAsset sets the old AudioAsset of the mutation.
func withAudioAsset(node *AudioAsset) audioassetOption {
	return func(m *AudioAssetMutation) {
		m.oldValue = func(context.Context) (*AudioAsset, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AudioAssetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AudioAssetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AudioAsset entities.
func (m *AudioAssetMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AudioAssetMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AudioAssetMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AudioAsset.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *AudioAssetMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AudioAssetMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AudioAsset entity.
// If the AudioAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AudioAssetMutation) OldUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *AudioAssetMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[audioasset.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *AudioAssetMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[audioasset.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AudioAssetMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, audioasset.FieldUserID)
}

// SetS3Key sets the "s3_key" field.
func (m *AudioAssetMutation) SetS3Key(s string) {
	m.s3_key = &s
}

// S3Key returns the value of the "s3_key" field in the mutation.
func (m *AudioAssetMutation) S3Key() (r string, exists bool) {
	v := m.s3_key
	if v == nil {
		return
	}
	return *v, true
}

// OldS3Key returns the old "s3_key" field's value of the AudioAsset entity.
// If the AudioAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AudioAssetMutation) OldS3Key(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldS3Key is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldS3Key requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldS3Key: %w", err)
	}
	return oldValue.S3Key, nil
}

// ResetS3Key resets all changes to the "s3_key" field.
func (m *AudioAssetMutation) ResetS3Key() {
	m.s3_key = nil
}

// SetBucket sets the "bucket" field.
func (m *AudioAssetMutation) SetBucket(s string) {
	m.bucket = &s
}

// Bucket returns the value of the "bucket" field in the mutation.
func (m *AudioAssetMutation) Bucket() (r string, exists bool) {
	v := m.bucket
	if v == nil {
		return
	}
	return *v, true
}

// OldBucket returns the old "bucket" field's value of the AudioAsset entity.
// If the AudioAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AudioAssetMutation) OldBucket(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBucket is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBucket requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBucket: %w", err)
	}
	return oldValue.Bucket, nil
}

// ResetBucket resets all changes to the "bucket" field.
func (m *AudioAssetMutation) ResetBucket() {
	m.bucket = nil
}

// SetContentType sets the "content_type" field.
func (m *AudioAssetMutation) SetContentType(s string) {
	m.content_type = &s
}

// ContentType returns the value of the "content_type" field in the mutation.
func (m *AudioAssetMutation) ContentType() (r string, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentType returns the old "content_type" field's value of the AudioAsset entity.
// If the AudioAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AudioAssetMutation) OldContentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentType: %w", err)
	}
	return oldValue.ContentType, nil
}

// ResetContentType resets all changes to the "content_type" field.
func (m *AudioAssetMutation) ResetContentType() {
	m.content_type = nil
}

// SetFileSize sets the "file_size" field.
func (m *AudioAssetMutation) SetFileSize(i int64) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *AudioAssetMutation) FileSize() (r int64, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the AudioAsset entity.
// If the AudioAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AudioAssetMutation) OldFileSize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *AudioAssetMutation) AddFileSize(i int64) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *AudioAssetMutation) AddedFileSize() (r int64, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *AudioAssetMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetDurationSeconds sets the "duration_seconds" field.
func (m *AudioAssetMutation) SetDurationSeconds(f float64) {
	m.duration_seconds = &f
	m.addduration_seconds = nil
}

// DurationSeconds returns the value of the "duration_seconds" field in the mutation.
func (m *AudioAssetMutation) DurationSeconds() (r float64, exists bool) {
	v := m.duration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSeconds returns the old "duration_seconds" field's value of the AudioAsset entity.
// If the AudioAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AudioAssetMutation) OldDurationSeconds(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSeconds: %w", err)
	}
	return oldValue.DurationSeconds, nil
}

// AddDurationSeconds adds f to the "duration_seconds" field.
func (m *AudioAssetMutation) AddDurationSeconds(f float64) {
	if m.addduration_seconds != nil {
		*m.addduration_seconds += f
	} else {
		m.addduration_seconds = &f
	}
}

// AddedDurationSeconds returns the value that was added to the "duration_seconds" field in this mutation.
func (m *AudioAssetMutation) AddedDurationSeconds() (r float64, exists bool) {
	v := m.addduration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (m *AudioAssetMutation) ClearDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
	m.clearedFields[audioasset.FieldDurationSeconds] = struct{}{}
}

// DurationSecondsCleared returns if the "duration_seconds" field was cleared in this mutation.
func (m *AudioAssetMutation) DurationSecondsCleared() bool {
	_, ok := m.clearedFields[audioasset.FieldDurationSeconds]
	return ok
}

// ResetDurationSeconds resets all changes to the "duration_seconds" field.
func (m *AudioAssetMutation) ResetDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
	delete(m.clearedFields, audioasset.FieldDurationSeconds)
}

// SetTranscript sets the "transcript" field.
func (m *AudioAssetMutation) SetTranscript(s string) {
	m.transcript = &s
}

// Transcript returns the value of the "transcript" field in the mutation.
func (m *AudioAssetMutation) Transcript() (r string, exists bool) {
	v := m.transcript
	if v == nil {
		return
	}
	return *v, true
}

// OldTranscript returns the old "transcript" field's value of the AudioAsset entity.
// If the AudioAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AudioAssetMutation) OldTranscript(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranscript is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranscript requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranscript: %w", err)
	}
	return oldValue.Transcript, nil
}

// ClearTranscript clears the value of the "transcript" field.
func (m *AudioAssetMutation) ClearTranscript() {
	m.transcript = nil
	m.clearedFields[audioasset.FieldTranscript] = struct{}{}
}

// TranscriptCleared returns if the "transcript" field was cleared in this mutation.
func (m *AudioAssetMutation) TranscriptCleared() bool {
	_, ok := m.clearedFields[audioasset.FieldTranscript]
	return ok
}

// ResetTranscript resets all changes to the "transcript" field.
func (m *AudioAssetMutation) ResetTranscript() {
	m.transcript = nil
	delete(m.clearedFields, audioasset.FieldTranscript)
}

// SetVoice sets the "voice" field.
func (m *AudioAssetMutation) SetVoice(s string) {
	m.voice = &s
}

// Voice returns the value of the "voice" field in the mutation.
func (m *AudioAssetMutation) Voice() (r string, exists bool) {
	v := m.voice
	if v == nil {
		return
	}
	return *v, true
}

// OldVoice returns the old "voice" field's value of the AudioAsset entity.
// If the AudioAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AudioAssetMutation) OldVoice(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVoice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVoice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVoice: %w", err)
	}
	return oldValue.Voice, nil
}

// ClearVoice clears the value of the "voice" field.
func (m *AudioAssetMutation) ClearVoice() {
	m.voice = nil
	m.clearedFields[audioasset.FieldVoice] = struct{}{}
}

// VoiceCleared returns if the "voice" field was cleared in this mutation.
func (m *AudioAssetMutation) VoiceCleared() bool {
	_, ok := m.clearedFields[audioasset.FieldVoice]
	return ok
}

// ResetVoice resets all changes to the "voice" field.
func (m *AudioAssetMutation) ResetVoice() {
	m.voice = nil
	delete(m.clearedFields, audioasset.FieldVoice)
}

// SetCreatedAt sets the "created_at" field.
func (m *AudioAssetMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AudioAssetMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AudioAsset entity.
// If the AudioAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AudioAssetMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AudioAssetMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AudioAssetMutation builder.
func (m *AudioAssetMutation) Where(ps ...predicate.AudioAsset) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AudioAssetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AudioAssetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AudioAsset, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AudioAssetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AudioAssetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AudioAsset).
func (m *AudioAssetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AudioAssetMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user_id != nil {
		fields = append(fields, audioasset.FieldUserID)
	}
	if m.s3_key != nil {
		fields = append(fields, audioasset.FieldS3Key)
	}
	if m.bucket != nil {
		fields = append(fields, audioasset.FieldBucket)
	}
	if m.content_type != nil {
		fields = append(fields, audioasset.FieldContentType)
	}
	if m.file_size != nil {
		fields = append(fields, audioasset.FieldFileSize)
	}
	if m.duration_seconds != nil {
		fields = append(fields, audioasset.FieldDurationSeconds)
	}
	if m.transcript != nil {
		fields = append(fields, audioasset.FieldTranscript)
	}
	if m.voice != nil {
		fields = append(fields, audioasset.FieldVoice)
	}
	if m.created_at != nil {
		fields = append(fields, audioasset.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AudioAssetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case audioasset.FieldUserID:
		return m.UserID()
	case audioasset.FieldS3Key:
		return m.S3Key()
	case audioasset.FieldBucket:
		return m.Bucket()
	case audioasset.FieldContentType:
		return m.ContentType()
	case audioasset.FieldFileSize:
		return m.FileSize()
	case audioasset.FieldDurationSeconds:
		return m.DurationSeconds()
	case audioasset.FieldTranscript:
		return m.Transcript()
	case audioasset.FieldVoice:
		return m.Voice()
	case audioasset.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AudioAssetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case audioasset.FieldUserID:
		return m.OldUserID(ctx)
	case audioasset.FieldS3Key:
		return m.OldS3Key(ctx)
	case audioasset.FieldBucket:
		return m.OldBucket(ctx)
	case audioasset.FieldContentType:
		return m.OldContentType(ctx)
	case audioasset.FieldFileSize:
		return m.OldFileSize(ctx)
	case audioasset.FieldDurationSeconds:
		return m.OldDurationSeconds(ctx)
	case audioasset.FieldTranscript:
		return m.OldTranscript(ctx)
	case audioasset.FieldVoice:
		return m.OldVoice(ctx)
	case audioasset.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AudioAsset field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AudioAssetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case audioasset.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case audioasset.FieldS3Key:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetS3Key(v)
		return nil
	case audioasset.FieldBucket:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBucket(v)
		return nil
	case audioasset.FieldContentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentType(v)
		return nil
	case audioasset.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case audioasset.FieldDurationSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSeconds(v)
		return nil
	case audioasset.FieldTranscript:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranscript(v)
		return nil
	case audioasset.FieldVoice:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVoice(v)
		return nil
	case audioasset.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AudioAsset field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AudioAssetMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, audioasset.FieldFileSize)
	}
	if m.addduration_seconds != nil {
		fields = append(fields, audioasset.FieldDurationSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AudioAssetMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case audioasset.FieldFileSize:
		return m.AddedFileSize()
	case audioasset.FieldDurationSeconds:
		return m.AddedDurationSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AudioAssetMutation) AddField(name string, value ent.Value) error {
	switch name {
	case audioasset.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	case audioasset.FieldDurationSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown AudioAsset numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AudioAssetMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(audioasset.FieldUserID) {
		fields = append(fields, audioasset.FieldUserID)
	}
	if m.FieldCleared(audioasset.FieldDurationSeconds) {
		fields = append(fields, audioasset.FieldDurationSeconds)
	}
	if m.FieldCleared(audioasset.FieldTranscript) {
		fields = append(fields, audioasset.FieldTranscript)
	}
	if m.FieldCleared(audioasset.FieldVoice) {
		fields = append(fields, audioasset.FieldVoice)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AudioAssetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AudioAssetMutation) ClearField(name string) error {
	switch name {
	case audioasset.FieldUserID:
		m.ClearUserID()
		return nil
	case audioasset.FieldDurationSeconds:
		m.ClearDurationSeconds()
		return nil
	case audioasset.FieldTranscript:
		m.ClearTranscript()
		return nil
	case audioasset.FieldVoice:
		m.ClearVoice()
		return nil
	}
	return fmt.Errorf("unknown AudioAsset nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AudioAssetMutation) ResetField(name string) error {
	switch name {
	case audioasset.FieldUserID:
		m.ResetUserID()
		return nil
	case audioasset.FieldS3Key:
		m.ResetS3Key()
		return nil
	case audioasset.FieldBucket:
		m.ResetBucket()
		return nil
	case audioasset.FieldContentType:
		m.ResetContentType()
		return nil
	case audioasset.FieldFileSize:
		m.ResetFileSize()
		return nil
	case audioasset.FieldDurationSeconds:
		m.ResetDurationSeconds()
		return nil
	case audioasset.FieldTranscript:
		m.ResetTranscript()
		return nil
	case audioasset.FieldVoice:
		m.ResetVoice()
		return nil
	case audioasset.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AudioAsset field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AudioAssetMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AudioAssetMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AudioAssetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AudioAssetMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AudioAssetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AudioAssetMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AudioAssetMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AudioAsset unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AudioAssetMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AudioAsset edge %s", name)
}

// FlowRunMutation represents an operation that mutates the FlowRun nodes in the graph.
type FlowRunMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	flow_name              *string
	execution_mode         *flowrun.ExecutionMode
	user_id                *string
	status                 *flowrun.Status
	inputs                 *map[string]interface{}
	outputs                *map[string]interface{}
	flow_metadata          *map[string]interface{}
	current_step           *string
	step_progress          *int
	addstep_progress       *int
	total_steps            *int
	addtotal_steps         *int
	progress_percentage    *float64
	addprogress_percentage *float64
	error_message          *string
	created_at             *time.Time
	started_at             *time.Time
	completed_at           *time.Time
	last_heartbeat         *time.Time
	execution_time_ms      *int
	addexecution_time_ms   *int
	total_tokens           *int
	addtotal_tokens        *int
	total_cost             *float64
	addtotal_cost          *float64
	clearedFields          map[string]struct{}
	steps                  map[string]struct{}
	removedsteps           map[string]struct{}
	clearedsteps           bool
	done                   bool
	oldValue               func(context.Context) (*FlowRun, error)
	predicates             []predicate.FlowRun
}

var _ ent.Mutation = (*FlowRunMutation)(nil)

// flowrunOption allows management of the mutation configuration using functional options.
type flowrunOption func(*FlowRunMutation)

// newFlowRunMutation creates new mutation for the FlowRun entity.
func newFlowRunMutation(c config, op Op, opts ...flowrunOption) *FlowRunMutation {
	m := &FlowRunMutation{
		config:        c,
		op:            op,
		typ:           TypeFlowRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFlowRunID sets the ID field of the mutation.
func withFlowRunID(id string) flowrunOption {
	return func(m *FlowRunMutation) {
		var (
			err   error
			once  sync.Once
			value *FlowRun
		)
		m.oldValue = func(ctx context.Context) (*FlowRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FlowRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFlowRun sets the old FlowRun of the mutation.
func withFlowRun(node *FlowRun) flowrunOption {
	return func(m *FlowRunMutation) {
		m.oldValue = func(context.Context) (*FlowRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FlowRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FlowRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FlowRun entities.
func (m *FlowRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FlowRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FlowRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FlowRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFlowName sets the "flow_name" field.
func (m *FlowRunMutation) SetFlowName(s string) {
	m.flow_name = &s
}

// FlowName returns the value of the "flow_name" field in the mutation.
func (m *FlowRunMutation) FlowName() (r string, exists bool) {
	v := m.flow_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFlowName returns the old "flow_name" field's value of the FlowRun entity.
// If the FlowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowRunMutation) OldFlowName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlowName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlowName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlowName: %w", err)
	}
	return oldValue.FlowName, nil
}

// ResetFlowName resets all changes to the "flow_name" field.
func (m *FlowRunMutation) ResetFlowName() {
	m.flow_name = nil
}

// SetExecutionMode sets the "execution_mode" field.
func (m *FlowRunMutation) SetExecutionMode(fm flowrun.ExecutionMode) {
	m.execution_mode = &fm
}

// ExecutionMode returns the value of the "execution_mode" field in the mutation.
func (m *FlowRunMutation) ExecutionMode() (r flowrun.ExecutionMode, exists bool) {
	v := m.execution_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionMode returns the old "execution_mode" field's value of the FlowRun entity.
// If the FlowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowRunMutation) OldExecutionMode(ctx context.Context) (v flowrun.ExecutionMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionMode: %w", err)
	}
	return oldValue.ExecutionMode, nil
}

// ResetExecutionMode resets all changes to the "execution_mode" field.
func (m *FlowRunMutation) ResetExecutionMode() {
	m.execution_mode = nil
}

// SetUserID sets the "user_id" field.
func (m *FlowRunMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *FlowRunMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the FlowRun entity.
// If the FlowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowRunMutation) OldUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *FlowRunMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[flowrun.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *FlowRunMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[flowrun.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *FlowRunMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, flowrun.FieldUserID)
}

// SetStatus sets the "status" field.
func (m *FlowRunMutation) SetStatus(f flowrun.Status) {
	m.status = &f
}

// Status returns the value of the "status" field in the mutation.
func (m *FlowRunMutation) Status() (r flowrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the FlowRun entity.
// If the FlowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowRunMutation) OldStatus(ctx context.Context) (v flowrun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *FlowRunMutation) ResetStatus() {
	m.status = nil
}

// SetInputs sets the "inputs" field.
func (m *FlowRunMutation) SetInputs(value map[string]interface{}) {
	m.inputs = &value
}

// Inputs returns the value of the "inputs" field in the mutation.
func (m *FlowRunMutation) Inputs() (r map[string]interface{}, exists bool) {
	v := m.inputs
	if v == nil {
		return
	}
	return *v, true
}

// OldInputs returns the old "inputs" field's value of the FlowRun entity.
// If the FlowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowRunMutation) OldInputs(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputs: %w", err)
	}
	return oldValue.Inputs, nil
}

// ClearInputs clears the value of the "inputs" field.
func (m *FlowRunMutation) ClearInputs() {
	m.inputs = nil
	m.clearedFields[flowrun.FieldInputs] = struct{}{}
}

// InputsCleared returns if the "inputs" field was cleared in this mutation.
func (m *FlowRunMutation) InputsCleared() bool {
	_, ok := m.clearedFields[flowrun.FieldInputs]
	return ok
}

// ResetInputs resets all changes to the "inputs" field.
func (m *FlowRunMutation) ResetInputs() {
	m.inputs = nil
	delete(m.clearedFields, flowrun.FieldInputs)
}

// SetOutputs sets the "outputs" field.
func (m *FlowRunMutation) SetOutputs(value map[string]interface{}) {
	m.outputs = &value
}

// Outputs returns the value of the "outputs" field in the mutation.
func (m *FlowRunMutation) Outputs() (r map[string]interface{}, exists bool) {
	v := m.outputs
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputs returns the old "outputs" field's value of the FlowRun entity.
// If the FlowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowRunMutation) OldOutputs(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputs: %w", err)
	}
	return oldValue.Outputs, nil
}

// ClearOutputs clears the value of the "outputs" field.
func (m *FlowRunMutation) ClearOutputs() {
	m.outputs = nil
	m.clearedFields[flowrun.FieldOutputs] = struct{}{}
}

// OutputsCleared returns if the "outputs" field was cleared in this mutation.
func (m *FlowRunMutation) OutputsCleared() bool {
	_, ok := m.clearedFields[flowrun.FieldOutputs]
	return ok
}

// ResetOutputs resets all changes to the "outputs" field.
func (m *FlowRunMutation) ResetOutputs() {
	m.outputs = nil
	delete(m.clearedFields, flowrun.FieldOutputs)
}

// SetFlowMetadata sets the "flow_metadata" field.
func (m *FlowRunMutation) SetFlowMetadata(value map[string]interface{}) {
	m.flow_metadata = &value
}

// FlowMetadata returns the value of the "flow_metadata" field in the mutation.
func (m *FlowRunMutation) FlowMetadata() (r map[string]interface{}, exists bool) {
	v := m.flow_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldFlowMetadata returns the old "flow_metadata" field's value of the FlowRun entity.
// If the FlowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowRunMutation) OldFlowMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlowMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlowMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlowMetadata: %w", err)
	}
	return oldValue.FlowMetadata, nil
}

// ClearFlowMetadata clears the value of the "flow_metadata" field.
func (m *FlowRunMutation) ClearFlowMetadata() {
	m.flow_metadata = nil
	m.clearedFields[flowrun.FieldFlowMetadata] = struct{}{}
}

// FlowMetadataCleared returns if the "flow_metadata" field was cleared in this mutation.
func (m *FlowRunMutation) FlowMetadataCleared() bool {
	_, ok := m.clearedFields[flowrun.FieldFlowMetadata]
	return ok
}

// ResetFlowMetadata resets all changes to the "flow_metadata" field.
func (m *FlowRunMutation) ResetFlowMetadata() {
	m.flow_metadata = nil
	delete(m.clearedFields, flowrun.FieldFlowMetadata)
}

// SetCurrentStep sets the "current_step" field.
func (m *FlowRunMutation) SetCurrentStep(s string) {
	m.current_step = &s
}

// CurrentStep returns the value of the "current_step" field in the mutation.
func (m *FlowRunMutation) CurrentStep() (r string, exists bool) {
	v := m.current_step
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStep returns the old "current_step" field's value of the FlowRun entity.
// If the FlowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowRunMutation) OldCurrentStep(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStep: %w", err)
	}
	return oldValue.CurrentStep, nil
}

// ClearCurrentStep clears the value of the "current_step" field.
func (m *FlowRunMutation) ClearCurrentStep() {
	m.current_step = nil
	m.clearedFields[flowrun.FieldCurrentStep] = struct{}{}
}

// CurrentStepCleared returns if the "current_step" field was cleared in this mutation.
func (m *FlowRunMutation) CurrentStepCleared() bool {
	_, ok := m.clearedFields[flowrun.FieldCurrentStep]
	return ok
}

// ResetCurrentStep resets all changes to the "current_step" field.
func (m *FlowRunMutation) ResetCurrentStep() {
	m.current_step = nil
	delete(m.clearedFields, flowrun.FieldCurrentStep)
}

// SetStepProgress sets the "step_progress" field.
func (m *FlowRunMutation) SetStepProgress(i int) {
	m.step_progress = &i
	m.addstep_progress = nil
}

// StepProgress returns the value of the "step_progress" field in the mutation.
func (m *FlowRunMutation) StepProgress() (r int, exists bool) {
	v := m.step_progress
	if v == nil {
		return
	}
	return *v, true
}

// OldStepProgress returns the old "step_progress" field's value of the FlowRun entity.
// If the FlowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowRunMutation) OldStepProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepProgress: %w", err)
	}
	return oldValue.StepProgress, nil
}

// AddStepProgress adds i to the "step_progress" field.
func (m *FlowRunMutation) AddStepProgress(i int) {
	if m.addstep_progress != nil {
		*m.addstep_progress += i
	} else {
		m.addstep_progress = &i
	}
}

// AddedStepProgress returns the value that was added to the "step_progress" field in this mutation.
func (m *FlowRunMutation) AddedStepProgress() (r int, exists bool) {
	v := m.addstep_progress
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepProgress resets all changes to the "step_progress" field.
func (m *FlowRunMutation) ResetStepProgress() {
	m.step_progress = nil
	m.addstep_progress = nil
}

// SetTotalSteps sets the "total_steps" field.
func (m *FlowRunMutation) SetTotalSteps(i int) {
	m.total_steps = &i
	m.addtotal_steps = nil
}

// TotalSteps returns the value of the "total_steps" field in the mutation.
func (m *FlowRunMutation) TotalSteps() (r int, exists bool) {
	v := m.total_steps
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalSteps returns the old "total_steps" field's value of the FlowRun entity.
// If the FlowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowRunMutation) OldTotalSteps(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalSteps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalSteps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalSteps: %w", err)
	}
	return oldValue.TotalSteps, nil
}

// AddTotalSteps adds i to the "total_steps" field.
func (m *FlowRunMutation) AddTotalSteps(i int) {
	if m.addtotal_steps != nil {
		*m.addtotal_steps += i
	} else {
		m.addtotal_steps = &i
	}
}

// AddedTotalSteps returns the value that was added to the "total_steps" field in this mutation.
func (m *FlowRunMutation) AddedTotalSteps() (r int, exists bool) {
	v := m.addtotal_steps
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalSteps resets all changes to the "total_steps" field.
func (m *FlowRunMutation) ResetTotalSteps() {
	m.total_steps = nil
	m.addtotal_steps = nil
}

// SetProgressPercentage sets the "progress_percentage" field.
func (m *FlowRunMutation) SetProgressPercentage(f float64) {
	m.progress_percentage = &f
	m.addprogress_percentage = nil
}

// ProgressPercentage returns the value of the "progress_percentage" field in the mutation.
func (m *FlowRunMutation) ProgressPercentage() (r float64, exists bool) {
	v := m.progress_percentage
	if v == nil {
		return
	}
	return *v, true
}

// OldProgressPercentage returns the old "progress_percentage" field's value of the FlowRun entity.
// If the FlowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowRunMutation) OldProgressPercentage(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgressPercentage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgressPercentage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgressPercentage: %w", err)
	}
	return oldValue.ProgressPercentage, nil
}

// AddProgressPercentage adds f to the "progress_percentage" field.
func (m *FlowRunMutation) AddProgressPercentage(f float64) {
	if m.addprogress_percentage != nil {
		*m.addprogress_percentage += f
	} else {
		m.addprogress_percentage = &f
	}
}

// AddedProgressPercentage returns the value that was added to the "progress_percentage" field in this mutation.
func (m *FlowRunMutation) AddedProgressPercentage() (r float64, exists bool) {
	v := m.addprogress_percentage
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgressPercentage resets all changes to the "progress_percentage" field.
func (m *FlowRunMutation) ResetProgressPercentage() {
	m.progress_percentage = nil
	m.addprogress_percentage = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *FlowRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *FlowRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the FlowRun entity.
// If the FlowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowRunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *FlowRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[flowrun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *FlowRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[flowrun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *FlowRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, flowrun.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *FlowRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FlowRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FlowRun entity.
// If the FlowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FlowRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *FlowRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *FlowRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the FlowRun entity.
// If the FlowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowRunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *FlowRunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[flowrun.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *FlowRunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[flowrun.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *FlowRunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, flowrun.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *FlowRunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *FlowRunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the FlowRun entity.
// If the FlowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowRunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *FlowRunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[flowrun.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *FlowRunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[flowrun.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *FlowRunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, flowrun.FieldCompletedAt)
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (m *FlowRunMutation) SetLastHeartbeat(t time.Time) {
	m.last_heartbeat = &t
}

// LastHeartbeat returns the value of the "last_heartbeat" field in the mutation.
func (m *FlowRunMutation) LastHeartbeat() (r time.Time, exists bool) {
	v := m.last_heartbeat
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeat returns the old "last_heartbeat" field's value of the FlowRun entity.
// If the FlowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowRunMutation) OldLastHeartbeat(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeat: %w", err)
	}
	return oldValue.LastHeartbeat, nil
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (m *FlowRunMutation) ClearLastHeartbeat() {
	m.last_heartbeat = nil
	m.clearedFields[flowrun.FieldLastHeartbeat] = struct{}{}
}

// LastHeartbeatCleared returns if the "last_heartbeat" field was cleared in this mutation.
func (m *FlowRunMutation) LastHeartbeatCleared() bool {
	_, ok := m.clearedFields[flowrun.FieldLastHeartbeat]
	return ok
}

// ResetLastHeartbeat resets all changes to the "last_heartbeat" field.
func (m *FlowRunMutation) ResetLastHeartbeat() {
	m.last_heartbeat = nil
	delete(m.clearedFields, flowrun.FieldLastHeartbeat)
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (m *FlowRunMutation) SetExecutionTimeMs(i int) {
	m.execution_time_ms = &i
	m.addexecution_time_ms = nil
}

// ExecutionTimeMs returns the value of the "execution_time_ms" field in the mutation.
func (m *FlowRunMutation) ExecutionTimeMs() (r int, exists bool) {
	v := m.execution_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionTimeMs returns the old "execution_time_ms" field's value of the FlowRun entity.
// If the FlowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowRunMutation) OldExecutionTimeMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionTimeMs: %w", err)
	}
	return oldValue.ExecutionTimeMs, nil
}

// AddExecutionTimeMs adds i to the "execution_time_ms" field.
func (m *FlowRunMutation) AddExecutionTimeMs(i int) {
	if m.addexecution_time_ms != nil {
		*m.addexecution_time_ms += i
	} else {
		m.addexecution_time_ms = &i
	}
}

// AddedExecutionTimeMs returns the value that was added to the "execution_time_ms" field in this mutation.
func (m *FlowRunMutation) AddedExecutionTimeMs() (r int, exists bool) {
	v := m.addexecution_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearExecutionTimeMs clears the value of the "execution_time_ms" field.
func (m *FlowRunMutation) ClearExecutionTimeMs() {
	m.execution_time_ms = nil
	m.addexecution_time_ms = nil
	m.clearedFields[flowrun.FieldExecutionTimeMs] = struct{}{}
}

// ExecutionTimeMsCleared returns if the "execution_time_ms" field was cleared in this mutation.
func (m *FlowRunMutation) ExecutionTimeMsCleared() bool {
	_, ok := m.clearedFields[flowrun.FieldExecutionTimeMs]
	return ok
}

// ResetExecutionTimeMs resets all changes to the "execution_time_ms" field.
func (m *FlowRunMutation) ResetExecutionTimeMs() {
	m.execution_time_ms = nil
	m.addexecution_time_ms = nil
	delete(m.clearedFields, flowrun.FieldExecutionTimeMs)
}

// SetTotalTokens sets the "total_tokens" field.
func (m *FlowRunMutation) SetTotalTokens(i int) {
	m.total_tokens = &i
	m.addtotal_tokens = nil
}

// TotalTokens returns the value of the "total_tokens" field in the mutation.
func (m *FlowRunMutation) TotalTokens() (r int, exists bool) {
	v := m.total_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokens returns the old "total_tokens" field's value of the FlowRun entity.
// If the FlowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowRunMutation) OldTotalTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokens: %w", err)
	}
	return oldValue.TotalTokens, nil
}

// AddTotalTokens adds i to the "total_tokens" field.
func (m *FlowRunMutation) AddTotalTokens(i int) {
	if m.addtotal_tokens != nil {
		*m.addtotal_tokens += i
	} else {
		m.addtotal_tokens = &i
	}
}

// AddedTotalTokens returns the value that was added to the "total_tokens" field in this mutation.
func (m *FlowRunMutation) AddedTotalTokens() (r int, exists bool) {
	v := m.addtotal_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTokens resets all changes to the "total_tokens" field.
func (m *FlowRunMutation) ResetTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
}

// SetTotalCost sets the "total_cost" field.
func (m *FlowRunMutation) SetTotalCost(f float64) {
	m.total_cost = &f
	m.addtotal_cost = nil
}

// TotalCost returns the value of the "total_cost" field in the mutation.
func (m *FlowRunMutation) TotalCost() (r float64, exists bool) {
	v := m.total_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalCost returns the old "total_cost" field's value of the FlowRun entity.
// If the FlowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowRunMutation) OldTotalCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalCost: %w", err)
	}
	return oldValue.TotalCost, nil
}

// AddTotalCost adds f to the "total_cost" field.
func (m *FlowRunMutation) AddTotalCost(f float64) {
	if m.addtotal_cost != nil {
		*m.addtotal_cost += f
	} else {
		m.addtotal_cost = &f
	}
}

// AddedTotalCost returns the value that was added to the "total_cost" field in this mutation.
func (m *FlowRunMutation) AddedTotalCost() (r float64, exists bool) {
	v := m.addtotal_cost
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalCost resets all changes to the "total_cost" field.
func (m *FlowRunMutation) ResetTotalCost() {
	m.total_cost = nil
	m.addtotal_cost = nil
}

// AddStepIDs adds the "steps" edge to the FlowStepRun entity by ids.
func (m *FlowRunMutation) AddStepIDs(ids ...string) {
	if m.steps == nil {
		m.steps = make(map[string]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the FlowStepRun entity.
func (m *FlowRunMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the FlowStepRun entity was cleared.
func (m *FlowRunMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the FlowStepRun entity by IDs.
func (m *FlowRunMutation) RemoveStepIDs(ids ...string) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the FlowStepRun entity.
func (m *FlowRunMutation) RemovedStepsIDs() (ids []string) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *FlowRunMutation) StepsIDs() (ids []string) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *FlowRunMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// Where appends a list predicates to the FlowRunMutation builder.
func (m *FlowRunMutation) Where(ps ...predicate.FlowRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FlowRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FlowRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FlowRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FlowRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FlowRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FlowRun).
func (m *FlowRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FlowRunMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.flow_name != nil {
		fields = append(fields, flowrun.FieldFlowName)
	}
	if m.execution_mode != nil {
		fields = append(fields, flowrun.FieldExecutionMode)
	}
	if m.user_id != nil {
		fields = append(fields, flowrun.FieldUserID)
	}
	if m.status != nil {
		fields = append(fields, flowrun.FieldStatus)
	}
	if m.inputs != nil {
		fields = append(fields, flowrun.FieldInputs)
	}
	if m.outputs != nil {
		fields = append(fields, flowrun.FieldOutputs)
	}
	if m.flow_metadata != nil {
		fields = append(fields, flowrun.FieldFlowMetadata)
	}
	if m.current_step != nil {
		fields = append(fields, flowrun.FieldCurrentStep)
	}
	if m.step_progress != nil {
		fields = append(fields, flowrun.FieldStepProgress)
	}
	if m.total_steps != nil {
		fields = append(fields, flowrun.FieldTotalSteps)
	}
	if m.progress_percentage != nil {
		fields = append(fields, flowrun.FieldProgressPercentage)
	}
	if m.error_message != nil {
		fields = append(fields, flowrun.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, flowrun.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, flowrun.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, flowrun.FieldCompletedAt)
	}
	if m.last_heartbeat != nil {
		fields = append(fields, flowrun.FieldLastHeartbeat)
	}
	if m.execution_time_ms != nil {
		fields = append(fields, flowrun.FieldExecutionTimeMs)
	}
	if m.total_tokens != nil {
		fields = append(fields, flowrun.FieldTotalTokens)
	}
	if m.total_cost != nil {
		fields = append(fields, flowrun.FieldTotalCost)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FlowRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case flowrun.FieldFlowName:
		return m.FlowName()
	case flowrun.FieldExecutionMode:
		return m.ExecutionMode()
	case flowrun.FieldUserID:
		return m.UserID()
	case flowrun.FieldStatus:
		return m.Status()
	case flowrun.FieldInputs:
		return m.Inputs()
	case flowrun.FieldOutputs:
		return m.Outputs()
	case flowrun.FieldFlowMetadata:
		return m.FlowMetadata()
	case flowrun.FieldCurrentStep:
		return m.CurrentStep()
	case flowrun.FieldStepProgress:
		return m.StepProgress()
	case flowrun.FieldTotalSteps:
		return m.TotalSteps()
	case flowrun.FieldProgressPercentage:
		return m.ProgressPercentage()
	case flowrun.FieldErrorMessage:
		return m.ErrorMessage()
	case flowrun.FieldCreatedAt:
		return m.CreatedAt()
	case flowrun.FieldStartedAt:
		return m.StartedAt()
	case flowrun.FieldCompletedAt:
		return m.CompletedAt()
	case flowrun.FieldLastHeartbeat:
		return m.LastHeartbeat()
	case flowrun.FieldExecutionTimeMs:
		return m.ExecutionTimeMs()
	case flowrun.FieldTotalTokens:
		return m.TotalTokens()
	case flowrun.FieldTotalCost:
		return m.TotalCost()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FlowRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case flowrun.FieldFlowName:
		return m.OldFlowName(ctx)
	case flowrun.FieldExecutionMode:
		return m.OldExecutionMode(ctx)
	case flowrun.FieldUserID:
		return m.OldUserID(ctx)
	case flowrun.FieldStatus:
		return m.OldStatus(ctx)
	case flowrun.FieldInputs:
		return m.OldInputs(ctx)
	case flowrun.FieldOutputs:
		return m.OldOutputs(ctx)
	case flowrun.FieldFlowMetadata:
		return m.OldFlowMetadata(ctx)
	case flowrun.FieldCurrentStep:
		return m.OldCurrentStep(ctx)
	case flowrun.FieldStepProgress:
		return m.OldStepProgress(ctx)
	case flowrun.FieldTotalSteps:
		return m.OldTotalSteps(ctx)
	case flowrun.FieldProgressPercentage:
		return m.OldProgressPercentage(ctx)
	case flowrun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case flowrun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case flowrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case flowrun.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case flowrun.FieldLastHeartbeat:
		return m.OldLastHeartbeat(ctx)
	case flowrun.FieldExecutionTimeMs:
		return m.OldExecutionTimeMs(ctx)
	case flowrun.FieldTotalTokens:
		return m.OldTotalTokens(ctx)
	case flowrun.FieldTotalCost:
		return m.OldTotalCost(ctx)
	}
	return nil, fmt.Errorf("unknown FlowRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FlowRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case flowrun.FieldFlowName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlowName(v)
		return nil
	case flowrun.FieldExecutionMode:
		v, ok := value.(flowrun.ExecutionMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionMode(v)
		return nil
	case flowrun.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case flowrun.FieldStatus:
		v, ok := value.(flowrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case flowrun.FieldInputs:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputs(v)
		return nil
	case flowrun.FieldOutputs:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputs(v)
		return nil
	case flowrun.FieldFlowMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlowMetadata(v)
		return nil
	case flowrun.FieldCurrentStep:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStep(v)
		return nil
	case flowrun.FieldStepProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepProgress(v)
		return nil
	case flowrun.FieldTotalSteps:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalSteps(v)
		return nil
	case flowrun.FieldProgressPercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgressPercentage(v)
		return nil
	case flowrun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case flowrun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case flowrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case flowrun.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case flowrun.FieldLastHeartbeat:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeat(v)
		return nil
	case flowrun.FieldExecutionTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionTimeMs(v)
		return nil
	case flowrun.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokens(v)
		return nil
	case flowrun.FieldTotalCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalCost(v)
		return nil
	}
	return fmt.Errorf("unknown FlowRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FlowRunMutation) AddedFields() []string {
	var fields []string
	if m.addstep_progress != nil {
		fields = append(fields, flowrun.FieldStepProgress)
	}
	if m.addtotal_steps != nil {
		fields = append(fields, flowrun.FieldTotalSteps)
	}
	if m.addprogress_percentage != nil {
		fields = append(fields, flowrun.FieldProgressPercentage)
	}
	if m.addexecution_time_ms != nil {
		fields = append(fields, flowrun.FieldExecutionTimeMs)
	}
	if m.addtotal_tokens != nil {
		fields = append(fields, flowrun.FieldTotalTokens)
	}
	if m.addtotal_cost != nil {
		fields = append(fields, flowrun.FieldTotalCost)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FlowRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case flowrun.FieldStepProgress:
		return m.AddedStepProgress()
	case flowrun.FieldTotalSteps:
		return m.AddedTotalSteps()
	case flowrun.FieldProgressPercentage:
		return m.AddedProgressPercentage()
	case flowrun.FieldExecutionTimeMs:
		return m.AddedExecutionTimeMs()
	case flowrun.FieldTotalTokens:
		return m.AddedTotalTokens()
	case flowrun.FieldTotalCost:
		return m.AddedTotalCost()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FlowRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case flowrun.FieldStepProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepProgress(v)
		return nil
	case flowrun.FieldTotalSteps:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalSteps(v)
		return nil
	case flowrun.FieldProgressPercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgressPercentage(v)
		return nil
	case flowrun.FieldExecutionTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExecutionTimeMs(v)
		return nil
	case flowrun.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokens(v)
		return nil
	case flowrun.FieldTotalCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalCost(v)
		return nil
	}
	return fmt.Errorf("unknown FlowRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FlowRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(flowrun.FieldUserID) {
		fields = append(fields, flowrun.FieldUserID)
	}
	if m.FieldCleared(flowrun.FieldInputs) {
		fields = append(fields, flowrun.FieldInputs)
	}
	if m.FieldCleared(flowrun.FieldOutputs) {
		fields = append(fields, flowrun.FieldOutputs)
	}
	if m.FieldCleared(flowrun.FieldFlowMetadata) {
		fields = append(fields, flowrun.FieldFlowMetadata)
	}
	if m.FieldCleared(flowrun.FieldCurrentStep) {
		fields = append(fields, flowrun.FieldCurrentStep)
	}
	if m.FieldCleared(flowrun.FieldErrorMessage) {
		fields = append(fields, flowrun.FieldErrorMessage)
	}
	if m.FieldCleared(flowrun.FieldStartedAt) {
		fields = append(fields, flowrun.FieldStartedAt)
	}
	if m.FieldCleared(flowrun.FieldCompletedAt) {
		fields = append(fields, flowrun.FieldCompletedAt)
	}
	if m.FieldCleared(flowrun.FieldLastHeartbeat) {
		fields = append(fields, flowrun.FieldLastHeartbeat)
	}
	if m.FieldCleared(flowrun.FieldExecutionTimeMs) {
		fields = append(fields, flowrun.FieldExecutionTimeMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FlowRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FlowRunMutation) ClearField(name string) error {
	switch name {
	case flowrun.FieldUserID:
		m.ClearUserID()
		return nil
	case flowrun.FieldInputs:
		m.ClearInputs()
		return nil
	case flowrun.FieldOutputs:
		m.ClearOutputs()
		return nil
	case flowrun.FieldFlowMetadata:
		m.ClearFlowMetadata()
		return nil
	case flowrun.FieldCurrentStep:
		m.ClearCurrentStep()
		return nil
	case flowrun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case flowrun.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case flowrun.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case flowrun.FieldLastHeartbeat:
		m.ClearLastHeartbeat()
		return nil
	case flowrun.FieldExecutionTimeMs:
		m.ClearExecutionTimeMs()
		return nil
	}
	return fmt.Errorf("unknown FlowRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FlowRunMutation) ResetField(name string) error {
	switch name {
	case flowrun.FieldFlowName:
		m.ResetFlowName()
		return nil
	case flowrun.FieldExecutionMode:
		m.ResetExecutionMode()
		return nil
	case flowrun.FieldUserID:
		m.ResetUserID()
		return nil
	case flowrun.FieldStatus:
		m.ResetStatus()
		return nil
	case flowrun.FieldInputs:
		m.ResetInputs()
		return nil
	case flowrun.FieldOutputs:
		m.ResetOutputs()
		return nil
	case flowrun.FieldFlowMetadata:
		m.ResetFlowMetadata()
		return nil
	case flowrun.FieldCurrentStep:
		m.ResetCurrentStep()
		return nil
	case flowrun.FieldStepProgress:
		m.ResetStepProgress()
		return nil
	case flowrun.FieldTotalSteps:
		m.ResetTotalSteps()
		return nil
	case flowrun.FieldProgressPercentage:
		m.ResetProgressPercentage()
		return nil
	case flowrun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case flowrun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case flowrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case flowrun.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case flowrun.FieldLastHeartbeat:
		m.ResetLastHeartbeat()
		return nil
	case flowrun.FieldExecutionTimeMs:
		m.ResetExecutionTimeMs()
		return nil
	case flowrun.FieldTotalTokens:
		m.ResetTotalTokens()
		return nil
	case flowrun.FieldTotalCost:
		m.ResetTotalCost()
		return nil
	}
	return fmt.Errorf("unknown FlowRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FlowRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.steps != nil {
		edges = append(edges, flowrun.EdgeSteps)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FlowRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case flowrun.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FlowRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedsteps != nil {
		edges = append(edges, flowrun.EdgeSteps)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FlowRunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case flowrun.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FlowRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsteps {
		edges = append(edges, flowrun.EdgeSteps)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FlowRunMutation) EdgeCleared(name string) bool {
	switch name {
	case flowrun.EdgeSteps:
		return m.clearedsteps
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FlowRunMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown FlowRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FlowRunMutation) ResetEdge(name string) error {
	switch name {
	case flowrun.EdgeSteps:
		m.ResetSteps()
		return nil
	}
	return fmt.Errorf("unknown FlowRun edge %s", name)
}

// FlowStepRunMutation represents an operation that mutates the FlowStepRun nodes in the graph.
type FlowStepRunMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	step_name            *string
	step_order           *int
	addstep_order        *int
	status               *flowsteprun.Status
	inputs               *map[string]interface{}
	outputs              *map[string]interface{}
	step_metadata        *map[string]interface{}
	tokens_used          *int
	addtokens_used       *int
	cost_estimate        *float64
	addcost_estimate     *float64
	execution_time_ms    *int
	addexecution_time_ms *int
	error_message        *string
	llm_request_id       *string
	created_at           *time.Time
	completed_at         *time.Time
	clearedFields        map[string]struct{}
	flow_run             *string
	clearedflow_run      bool
	done                 bool
	oldValue             func(context.Context) (*FlowStepRun, error)
	predicates           []predicate.FlowStepRun
}

var _ ent.Mutation = (*FlowStepRunMutation)(nil)

// flowsteprunOption allows management of the mutation configuration using functional options.
type flowsteprunOption func(*FlowStepRunMutation)

// newFlowStepRunMutation creates new mutation for the FlowStepRun entity.
func newFlowStepRunMutation(c config, op Op, opts ...flowsteprunOption) *FlowStepRunMutation {
	m := &FlowStepRunMutation{
		config:        c,
		op:            op,
		typ:           TypeFlowStepRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFlowStepRunID sets the ID field of the mutation.
func withFlowStepRunID(id string) flowsteprunOption {
	return func(m *FlowStepRunMutation) {
		var (
			err   error
			once  sync.Once
			value *FlowStepRun
		)
		m.oldValue = func(ctx context.Context) (*FlowStepRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FlowStepRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFlowStepRun sets the old FlowStepRun of the mutation.
func withFlowStepRun(node *FlowStepRun) flowsteprunOption {
	return func(m *FlowStepRunMutation) {
		m.oldValue = func(context.Context) (*FlowStepRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FlowStepRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FlowStepRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FlowStepRun entities.
func (m *FlowStepRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FlowStepRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FlowStepRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FlowStepRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFlowRunID sets the "flow_run_id" field.
func (m *FlowStepRunMutation) SetFlowRunID(s string) {
	m.flow_run = &s
}

// FlowRunID returns the value of the "flow_run_id" field in the mutation.
func (m *FlowStepRunMutation) FlowRunID() (r string, exists bool) {
	v := m.flow_run
	if v == nil {
		return
	}
	return *v, true
}

// OldFlowRunID returns the old "flow_run_id" field's value of the FlowStepRun entity.
// If the FlowStepRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowStepRunMutation) OldFlowRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlowRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlowRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlowRunID: %w", err)
	}
	return oldValue.FlowRunID, nil
}

// ResetFlowRunID resets all changes to the "flow_run_id" field.
func (m *FlowStepRunMutation) ResetFlowRunID() {
	m.flow_run = nil
}

// SetStepName sets the "step_name" field.
func (m *FlowStepRunMutation) SetStepName(s string) {
	m.step_name = &s
}

// StepName returns the value of the "step_name" field in the mutation.
func (m *FlowStepRunMutation) StepName() (r string, exists bool) {
	v := m.step_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStepName returns the old "step_name" field's value of the FlowStepRun entity.
// If the FlowStepRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowStepRunMutation) OldStepName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepName: %w", err)
	}
	return oldValue.StepName, nil
}

// ResetStepName resets all changes to the "step_name" field.
func (m *FlowStepRunMutation) ResetStepName() {
	m.step_name = nil
}

// SetStepOrder sets the "step_order" field.
func (m *FlowStepRunMutation) SetStepOrder(i int) {
	m.step_order = &i
	m.addstep_order = nil
}

// StepOrder returns the value of the "step_order" field in the mutation.
func (m *FlowStepRunMutation) StepOrder() (r int, exists bool) {
	v := m.step_order
	if v == nil {
		return
	}
	return *v, true
}

// OldStepOrder returns the old "step_order" field's value of the FlowStepRun entity.
// If the FlowStepRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowStepRunMutation) OldStepOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepOrder: %w", err)
	}
	return oldValue.StepOrder, nil
}

// AddStepOrder adds i to the "step_order" field.
func (m *FlowStepRunMutation) AddStepOrder(i int) {
	if m.addstep_order != nil {
		*m.addstep_order += i
	} else {
		m.addstep_order = &i
	}
}

// AddedStepOrder returns the value that was added to the "step_order" field in this mutation.
func (m *FlowStepRunMutation) AddedStepOrder() (r int, exists bool) {
	v := m.addstep_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepOrder resets all changes to the "step_order" field.
func (m *FlowStepRunMutation) ResetStepOrder() {
	m.step_order = nil
	m.addstep_order = nil
}

// SetStatus sets the "status" field.
func (m *FlowStepRunMutation) SetStatus(f flowsteprun.Status) {
	m.status = &f
}

// Status returns the value of the "status" field in the mutation.
func (m *FlowStepRunMutation) Status() (r flowsteprun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the FlowStepRun entity.
// If the FlowStepRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowStepRunMutation) OldStatus(ctx context.Context) (v flowsteprun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *FlowStepRunMutation) ResetStatus() {
	m.status = nil
}

// SetInputs sets the "inputs" field.
func (m *FlowStepRunMutation) SetInputs(value map[string]interface{}) {
	m.inputs = &value
}

// Inputs returns the value of the "inputs" field in the mutation.
func (m *FlowStepRunMutation) Inputs() (r map[string]interface{}, exists bool) {
	v := m.inputs
	if v == nil {
		return
	}
	return *v, true
}

// OldInputs returns the old "inputs" field's value of the FlowStepRun entity.
// If the FlowStepRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowStepRunMutation) OldInputs(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputs: %w", err)
	}
	return oldValue.Inputs, nil
}

// ClearInputs clears the value of the "inputs" field.
func (m *FlowStepRunMutation) ClearInputs() {
	m.inputs = nil
	m.clearedFields[flowsteprun.FieldInputs] = struct{}{}
}

// InputsCleared returns if the "inputs" field was cleared in this mutation.
func (m *FlowStepRunMutation) InputsCleared() bool {
	_, ok := m.clearedFields[flowsteprun.FieldInputs]
	return ok
}

// ResetInputs resets all changes to the "inputs" field.
func (m *FlowStepRunMutation) ResetInputs() {
	m.inputs = nil
	delete(m.clearedFields, flowsteprun.FieldInputs)
}

// SetOutputs sets the "outputs" field.
func (m *FlowStepRunMutation) SetOutputs(value map[string]interface{}) {
	m.outputs = &value
}

// Outputs returns the value of the "outputs" field in the mutation.
func (m *FlowStepRunMutation) Outputs() (r map[string]interface{}, exists bool) {
	v := m.outputs
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputs returns the old "outputs" field's value of the FlowStepRun entity.
// If the FlowStepRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowStepRunMutation) OldOutputs(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputs: %w", err)
	}
	return oldValue.Outputs, nil
}

// ClearOutputs clears the value of the "outputs" field.
func (m *FlowStepRunMutation) ClearOutputs() {
	m.outputs = nil
	m.clearedFields[flowsteprun.FieldOutputs] = struct{}{}
}

// OutputsCleared returns if the "outputs" field was cleared in this mutation.
func (m *FlowStepRunMutation) OutputsCleared() bool {
	_, ok := m.clearedFields[flowsteprun.FieldOutputs]
	return ok
}

// ResetOutputs resets all changes to the "outputs" field.
func (m *FlowStepRunMutation) ResetOutputs() {
	m.outputs = nil
	delete(m.clearedFields, flowsteprun.FieldOutputs)
}

// SetStepMetadata sets the "step_metadata" field.
func (m *FlowStepRunMutation) SetStepMetadata(value map[string]interface{}) {
	m.step_metadata = &value
}

// StepMetadata returns the value of the "step_metadata" field in the mutation.
func (m *FlowStepRunMutation) StepMetadata() (r map[string]interface{}, exists bool) {
	v := m.step_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldStepMetadata returns the old "step_metadata" field's value of the FlowStepRun entity.
// If the FlowStepRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowStepRunMutation) OldStepMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepMetadata: %w", err)
	}
	return oldValue.StepMetadata, nil
}

// ClearStepMetadata clears the value of the "step_metadata" field.
func (m *FlowStepRunMutation) ClearStepMetadata() {
	m.step_metadata = nil
	m.clearedFields[flowsteprun.FieldStepMetadata] = struct{}{}
}

// StepMetadataCleared returns if the "step_metadata" field was cleared in this mutation.
func (m *FlowStepRunMutation) StepMetadataCleared() bool {
	_, ok := m.clearedFields[flowsteprun.FieldStepMetadata]
	return ok
}

// ResetStepMetadata resets all changes to the "step_metadata" field.
func (m *FlowStepRunMutation) ResetStepMetadata() {
	m.step_metadata = nil
	delete(m.clearedFields, flowsteprun.FieldStepMetadata)
}

// SetTokensUsed sets the "tokens_used" field.
func (m *FlowStepRunMutation) SetTokensUsed(i int) {
	m.tokens_used = &i
	m.addtokens_used = nil
}

// TokensUsed returns the value of the "tokens_used" field in the mutation.
func (m *FlowStepRunMutation) TokensUsed() (r int, exists bool) {
	v := m.tokens_used
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensUsed returns the old "tokens_used" field's value of the FlowStepRun entity.
// If the FlowStepRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowStepRunMutation) OldTokensUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensUsed: %w", err)
	}
	return oldValue.TokensUsed, nil
}

// AddTokensUsed adds i to the "tokens_used" field.
func (m *FlowStepRunMutation) AddTokensUsed(i int) {
	if m.addtokens_used != nil {
		*m.addtokens_used += i
	} else {
		m.addtokens_used = &i
	}
}

// AddedTokensUsed returns the value that was added to the "tokens_used" field in this mutation.
func (m *FlowStepRunMutation) AddedTokensUsed() (r int, exists bool) {
	v := m.addtokens_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensUsed resets all changes to the "tokens_used" field.
func (m *FlowStepRunMutation) ResetTokensUsed() {
	m.tokens_used = nil
	m.addtokens_used = nil
}

// SetCostEstimate sets the "cost_estimate" field.
func (m *FlowStepRunMutation) SetCostEstimate(f float64) {
	m.cost_estimate = &f
	m.addcost_estimate = nil
}

// CostEstimate returns the value of the "cost_estimate" field in the mutation.
func (m *FlowStepRunMutation) CostEstimate() (r float64, exists bool) {
	v := m.cost_estimate
	if v == nil {
		return
	}
	return *v, true
}

// OldCostEstimate returns the old "cost_estimate" field's value of the FlowStepRun entity.
// If the FlowStepRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowStepRunMutation) OldCostEstimate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostEstimate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostEstimate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostEstimate: %w", err)
	}
	return oldValue.CostEstimate, nil
}

// AddCostEstimate adds f to the "cost_estimate" field.
func (m *FlowStepRunMutation) AddCostEstimate(f float64) {
	if m.addcost_estimate != nil {
		*m.addcost_estimate += f
	} else {
		m.addcost_estimate = &f
	}
}

// AddedCostEstimate returns the value that was added to the "cost_estimate" field in this mutation.
func (m *FlowStepRunMutation) AddedCostEstimate() (r float64, exists bool) {
	v := m.addcost_estimate
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostEstimate resets all changes to the "cost_estimate" field.
func (m *FlowStepRunMutation) ResetCostEstimate() {
	m.cost_estimate = nil
	m.addcost_estimate = nil
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (m *FlowStepRunMutation) SetExecutionTimeMs(i int) {
	m.execution_time_ms = &i
	m.addexecution_time_ms = nil
}

// ExecutionTimeMs returns the value of the "execution_time_ms" field in the mutation.
func (m *FlowStepRunMutation) ExecutionTimeMs() (r int, exists bool) {
	v := m.execution_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionTimeMs returns the old "execution_time_ms" field's value of the FlowStepRun entity.
// If the FlowStepRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowStepRunMutation) OldExecutionTimeMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionTimeMs: %w", err)
	}
	return oldValue.ExecutionTimeMs, nil
}

// AddExecutionTimeMs adds i to the "execution_time_ms" field.
func (m *FlowStepRunMutation) AddExecutionTimeMs(i int) {
	if m.addexecution_time_ms != nil {
		*m.addexecution_time_ms += i
	} else {
		m.addexecution_time_ms = &i
	}
}

// AddedExecutionTimeMs returns the value that was added to the "execution_time_ms" field in this mutation.
func (m *FlowStepRunMutation) AddedExecutionTimeMs() (r int, exists bool) {
	v := m.addexecution_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearExecutionTimeMs clears the value of the "execution_time_ms" field.
func (m *FlowStepRunMutation) ClearExecutionTimeMs() {
	m.execution_time_ms = nil
	m.addexecution_time_ms = nil
	m.clearedFields[flowsteprun.FieldExecutionTimeMs] = struct{}{}
}

// ExecutionTimeMsCleared returns if the "execution_time_ms" field was cleared in this mutation.
func (m *FlowStepRunMutation) ExecutionTimeMsCleared() bool {
	_, ok := m.clearedFields[flowsteprun.FieldExecutionTimeMs]
	return ok
}

// ResetExecutionTimeMs resets all changes to the "execution_time_ms" field.
func (m *FlowStepRunMutation) ResetExecutionTimeMs() {
	m.execution_time_ms = nil
	m.addexecution_time_ms = nil
	delete(m.clearedFields, flowsteprun.FieldExecutionTimeMs)
}

// SetErrorMessage sets the "error_message" field.
func (m *FlowStepRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *FlowStepRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the FlowStepRun entity.
// If the FlowStepRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowStepRunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *FlowStepRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[flowsteprun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *FlowStepRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[flowsteprun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *FlowStepRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, flowsteprun.FieldErrorMessage)
}

// SetLlmRequestID sets the "llm_request_id" field.
func (m *FlowStepRunMutation) SetLlmRequestID(s string) {
	m.llm_request_id = &s
}

// LlmRequestID returns the value of the "llm_request_id" field in the mutation.
func (m *FlowStepRunMutation) LlmRequestID() (r string, exists bool) {
	v := m.llm_request_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmRequestID returns the old "llm_request_id" field's value of the FlowStepRun entity.
// If the FlowStepRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowStepRunMutation) OldLlmRequestID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmRequestID: %w", err)
	}
	return oldValue.LlmRequestID, nil
}

// ClearLlmRequestID clears the value of the "llm_request_id" field.
func (m *FlowStepRunMutation) ClearLlmRequestID() {
	m.llm_request_id = nil
	m.clearedFields[flowsteprun.FieldLlmRequestID] = struct{}{}
}

// LlmRequestIDCleared returns if the "llm_request_id" field was cleared in this mutation.
func (m *FlowStepRunMutation) LlmRequestIDCleared() bool {
	_, ok := m.clearedFields[flowsteprun.FieldLlmRequestID]
	return ok
}

// ResetLlmRequestID resets all changes to the "llm_request_id" field.
func (m *FlowStepRunMutation) ResetLlmRequestID() {
	m.llm_request_id = nil
	delete(m.clearedFields, flowsteprun.FieldLlmRequestID)
}

// SetCreatedAt sets the "created_at" field.
func (m *FlowStepRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FlowStepRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FlowStepRun entity.
// If the FlowStepRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowStepRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FlowStepRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *FlowStepRunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *FlowStepRunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the FlowStepRun entity.
// If the FlowStepRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowStepRunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *FlowStepRunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[flowsteprun.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *FlowStepRunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[flowsteprun.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *FlowStepRunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, flowsteprun.FieldCompletedAt)
}

// ClearFlowRun clears the "flow_run" edge to the FlowRun entity.
func (m *FlowStepRunMutation) ClearFlowRun() {
	m.clearedflow_run = true
	m.clearedFields[flowsteprun.FieldFlowRunID] = struct{}{}
}

// FlowRunCleared reports if the "flow_run" edge to the FlowRun entity was cleared.
func (m *FlowStepRunMutation) FlowRunCleared() bool {
	return m.clearedflow_run
}

// FlowRunIDs returns the "flow_run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FlowRunID instead. It exists only for internal usage by the builders.
func (m *FlowStepRunMutation) FlowRunIDs() (ids []string) {
	if id := m.flow_run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFlowRun resets all changes to the "flow_run" edge.
func (m *FlowStepRunMutation) ResetFlowRun() {
	m.flow_run = nil
	m.clearedflow_run = false
}

// Where appends a list predicates to the FlowStepRunMutation builder.
func (m *FlowStepRunMutation) Where(ps ...predicate.FlowStepRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FlowStepRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FlowStepRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FlowStepRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FlowStepRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FlowStepRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FlowStepRun).
func (m *FlowStepRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FlowStepRunMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.flow_run != nil {
		fields = append(fields, flowsteprun.FieldFlowRunID)
	}
	if m.step_name != nil {
		fields = append(fields, flowsteprun.FieldStepName)
	}
	if m.step_order != nil {
		fields = append(fields, flowsteprun.FieldStepOrder)
	}
	if m.status != nil {
		fields = append(fields, flowsteprun.FieldStatus)
	}
	if m.inputs != nil {
		fields = append(fields, flowsteprun.FieldInputs)
	}
	if m.outputs != nil {
		fields = append(fields, flowsteprun.FieldOutputs)
	}
	if m.step_metadata != nil {
		fields = append(fields, flowsteprun.FieldStepMetadata)
	}
	if m.tokens_used != nil {
		fields = append(fields, flowsteprun.FieldTokensUsed)
	}
	if m.cost_estimate != nil {
		fields = append(fields, flowsteprun.FieldCostEstimate)
	}
	if m.execution_time_ms != nil {
		fields = append(fields, flowsteprun.FieldExecutionTimeMs)
	}
	if m.error_message != nil {
		fields = append(fields, flowsteprun.FieldErrorMessage)
	}
	if m.llm_request_id != nil {
		fields = append(fields, flowsteprun.FieldLlmRequestID)
	}
	if m.created_at != nil {
		fields = append(fields, flowsteprun.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, flowsteprun.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FlowStepRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case flowsteprun.FieldFlowRunID:
		return m.FlowRunID()
	case flowsteprun.FieldStepName:
		return m.StepName()
	case flowsteprun.FieldStepOrder:
		return m.StepOrder()
	case flowsteprun.FieldStatus:
		return m.Status()
	case flowsteprun.FieldInputs:
		return m.Inputs()
	case flowsteprun.FieldOutputs:
		return m.Outputs()
	case flowsteprun.FieldStepMetadata:
		return m.StepMetadata()
	case flowsteprun.FieldTokensUsed:
		return m.TokensUsed()
	case flowsteprun.FieldCostEstimate:
		return m.CostEstimate()
	case flowsteprun.FieldExecutionTimeMs:
		return m.ExecutionTimeMs()
	case flowsteprun.FieldErrorMessage:
		return m.ErrorMessage()
	case flowsteprun.FieldLlmRequestID:
		return m.LlmRequestID()
	case flowsteprun.FieldCreatedAt:
		return m.CreatedAt()
	case flowsteprun.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FlowStepRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case flowsteprun.FieldFlowRunID:
		return m.OldFlowRunID(ctx)
	case flowsteprun.FieldStepName:
		return m.OldStepName(ctx)
	case flowsteprun.FieldStepOrder:
		return m.OldStepOrder(ctx)
	case flowsteprun.FieldStatus:
		return m.OldStatus(ctx)
	case flowsteprun.FieldInputs:
		return m.OldInputs(ctx)
	case flowsteprun.FieldOutputs:
		return m.OldOutputs(ctx)
	case flowsteprun.FieldStepMetadata:
		return m.OldStepMetadata(ctx)
	case flowsteprun.FieldTokensUsed:
		return m.OldTokensUsed(ctx)
	case flowsteprun.FieldCostEstimate:
		return m.OldCostEstimate(ctx)
	case flowsteprun.FieldExecutionTimeMs:
		return m.OldExecutionTimeMs(ctx)
	case flowsteprun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case flowsteprun.FieldLlmRequestID:
		return m.OldLlmRequestID(ctx)
	case flowsteprun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case flowsteprun.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FlowStepRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FlowStepRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case flowsteprun.FieldFlowRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlowRunID(v)
		return nil
	case flowsteprun.FieldStepName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepName(v)
		return nil
	case flowsteprun.FieldStepOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepOrder(v)
		return nil
	case flowsteprun.FieldStatus:
		v, ok := value.(flowsteprun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case flowsteprun.FieldInputs:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputs(v)
		return nil
	case flowsteprun.FieldOutputs:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputs(v)
		return nil
	case flowsteprun.FieldStepMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepMetadata(v)
		return nil
	case flowsteprun.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensUsed(v)
		return nil
	case flowsteprun.FieldCostEstimate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostEstimate(v)
		return nil
	case flowsteprun.FieldExecutionTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionTimeMs(v)
		return nil
	case flowsteprun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case flowsteprun.FieldLlmRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmRequestID(v)
		return nil
	case flowsteprun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case flowsteprun.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FlowStepRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FlowStepRunMutation) AddedFields() []string {
	var fields []string
	if m.addstep_order != nil {
		fields = append(fields, flowsteprun.FieldStepOrder)
	}
	if m.addtokens_used != nil {
		fields = append(fields, flowsteprun.FieldTokensUsed)
	}
	if m.addcost_estimate != nil {
		fields = append(fields, flowsteprun.FieldCostEstimate)
	}
	if m.addexecution_time_ms != nil {
		fields = append(fields, flowsteprun.FieldExecutionTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FlowStepRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case flowsteprun.FieldStepOrder:
		return m.AddedStepOrder()
	case flowsteprun.FieldTokensUsed:
		return m.AddedTokensUsed()
	case flowsteprun.FieldCostEstimate:
		return m.AddedCostEstimate()
	case flowsteprun.FieldExecutionTimeMs:
		return m.AddedExecutionTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FlowStepRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case flowsteprun.FieldStepOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepOrder(v)
		return nil
	case flowsteprun.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensUsed(v)
		return nil
	case flowsteprun.FieldCostEstimate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostEstimate(v)
		return nil
	case flowsteprun.FieldExecutionTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExecutionTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown FlowStepRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FlowStepRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(flowsteprun.FieldInputs) {
		fields = append(fields, flowsteprun.FieldInputs)
	}
	if m.FieldCleared(flowsteprun.FieldOutputs) {
		fields = append(fields, flowsteprun.FieldOutputs)
	}
	if m.FieldCleared(flowsteprun.FieldStepMetadata) {
		fields = append(fields, flowsteprun.FieldStepMetadata)
	}
	if m.FieldCleared(flowsteprun.FieldExecutionTimeMs) {
		fields = append(fields, flowsteprun.FieldExecutionTimeMs)
	}
	if m.FieldCleared(flowsteprun.FieldErrorMessage) {
		fields = append(fields, flowsteprun.FieldErrorMessage)
	}
	if m.FieldCleared(flowsteprun.FieldLlmRequestID) {
		fields = append(fields, flowsteprun.FieldLlmRequestID)
	}
	if m.FieldCleared(flowsteprun.FieldCompletedAt) {
		fields = append(fields, flowsteprun.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FlowStepRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FlowStepRunMutation) ClearField(name string) error {
	switch name {
	case flowsteprun.FieldInputs:
		m.ClearInputs()
		return nil
	case flowsteprun.FieldOutputs:
		m.ClearOutputs()
		return nil
	case flowsteprun.FieldStepMetadata:
		m.ClearStepMetadata()
		return nil
	case flowsteprun.FieldExecutionTimeMs:
		m.ClearExecutionTimeMs()
		return nil
	case flowsteprun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case flowsteprun.FieldLlmRequestID:
		m.ClearLlmRequestID()
		return nil
	case flowsteprun.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown FlowStepRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FlowStepRunMutation) ResetField(name string) error {
	switch name {
	case flowsteprun.FieldFlowRunID:
		m.ResetFlowRunID()
		return nil
	case flowsteprun.FieldStepName:
		m.ResetStepName()
		return nil
	case flowsteprun.FieldStepOrder:
		m.ResetStepOrder()
		return nil
	case flowsteprun.FieldStatus:
		m.ResetStatus()
		return nil
	case flowsteprun.FieldInputs:
		m.ResetInputs()
		return nil
	case flowsteprun.FieldOutputs:
		m.ResetOutputs()
		return nil
	case flowsteprun.FieldStepMetadata:
		m.ResetStepMetadata()
		return nil
	case flowsteprun.FieldTokensUsed:
		m.ResetTokensUsed()
		return nil
	case flowsteprun.FieldCostEstimate:
		m.ResetCostEstimate()
		return nil
	case flowsteprun.FieldExecutionTimeMs:
		m.ResetExecutionTimeMs()
		return nil
	case flowsteprun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case flowsteprun.FieldLlmRequestID:
		m.ResetLlmRequestID()
		return nil
	case flowsteprun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case flowsteprun.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown FlowStepRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FlowStepRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.flow_run != nil {
		edges = append(edges, flowsteprun.EdgeFlowRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FlowStepRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case flowsteprun.EdgeFlowRun:
		if id := m.flow_run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FlowStepRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FlowStepRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FlowStepRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedflow_run {
		edges = append(edges, flowsteprun.EdgeFlowRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FlowStepRunMutation) EdgeCleared(name string) bool {
	switch name {
	case flowsteprun.EdgeFlowRun:
		return m.clearedflow_run
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FlowStepRunMutation) ClearEdge(name string) error {
	switch name {
	case flowsteprun.EdgeFlowRun:
		m.ClearFlowRun()
		return nil
	}
	return fmt.Errorf("unknown FlowStepRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FlowStepRunMutation) ResetEdge(name string) error {
	switch name {
	case flowsteprun.EdgeFlowRun:
		m.ResetFlowRun()
		return nil
	}
	return fmt.Errorf("unknown FlowStepRun edge %s", name)
}

// ImageAssetMutation represents an operation that mutates the ImageAsset nodes in the graph.
type ImageAssetMutation struct {
	config
	op            Op
	typ           string
	id            *string
	user_id       *string
	s3_key        *string
	bucket        *string
	content_type  *string
	file_size     *int64
	addfile_size  *int64
	width         *int
	addwidth      *int
	height        *int
	addheight     *int
	alt_text      *string
	prompt        *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ImageAsset, error)
	predicates    []predicate.ImageAsset
}

var _ ent.Mutation = (*ImageAssetMutation)(nil)

// imageassetOption allows management of the mutation configuration using functional options.
type imageassetOption func(*ImageAssetMutation)

// newImageAssetMutation creates new mutation for the ImageAsset entity.
func newImageAssetMutation(c config, op Op, opts ...imageassetOption) *ImageAssetMutation {
	m := &ImageAssetMutation{
		config:        c,
		op:            op,
		typ:           TypeImageAsset,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withImageAssetID sets the ID field of the mutation.
func withImageAssetID(id string) imageassetOption {
	return func(m *ImageAssetMutation) {
		var (
			err   error
			once  sync.Once
			value *ImageAsset
		)
		m.oldValue = func(ctx context.Context) (*ImageAsset, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ImageAsset.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withImageAsset sets the old ImageAsset of the mutation.
func withImageAsset(node *ImageAsset) imageassetOption {
	return func(m *ImageAssetMutation) {
		m.oldValue = func(context.Context) (*ImageAsset, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ImageAssetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ImageAssetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ImageAsset entities.
func (m *ImageAssetMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ImageAssetMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ImageAssetMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ImageAsset.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ImageAssetMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ImageAssetMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ImageAsset entity.
// If the ImageAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageAssetMutation) OldUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *ImageAssetMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[imageasset.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *ImageAssetMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[imageasset.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ImageAssetMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, imageasset.FieldUserID)
}

// SetS3Key sets the "s3_key" field.
func (m *ImageAssetMutation) SetS3Key(s string) {
	m.s3_key = &s
}

// S3Key returns the value of the "s3_key" field in the mutation.
func (m *ImageAssetMutation) S3Key() (r string, exists bool) {
	v := m.s3_key
	if v == nil {
		return
	}
	return *v, true
}

// OldS3Key returns the old "s3_key" field's value of the ImageAsset entity.
// If the ImageAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageAssetMutation) OldS3Key(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldS3Key is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldS3Key requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldS3Key: %w", err)
	}
	return oldValue.S3Key, nil
}

// ResetS3Key resets all changes to the "s3_key" field.
func (m *ImageAssetMutation) ResetS3Key() {
	m.s3_key = nil
}

// SetBucket sets the "bucket" field.
func (m *ImageAssetMutation) SetBucket(s string) {
	m.bucket = &s
}

// Bucket returns the value of the "bucket" field in the mutation.
func (m *ImageAssetMutation) Bucket() (r string, exists bool) {
	v := m.bucket
	if v == nil {
		return
	}
	return *v, true
}

// OldBucket returns the old "bucket" field's value of the ImageAsset entity.
// If the ImageAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageAssetMutation) OldBucket(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBucket is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBucket requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBucket: %w", err)
	}
	return oldValue.Bucket, nil
}

// ResetBucket resets all changes to the "bucket" field.
func (m *ImageAssetMutation) ResetBucket() {
	m.bucket = nil
}

// SetContentType sets the "content_type" field.
func (m *ImageAssetMutation) SetContentType(s string) {
	m.content_type = &s
}

// ContentType returns the value of the "content_type" field in the mutation.
func (m *ImageAssetMutation) ContentType() (r string, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentType returns the old "content_type" field's value of the ImageAsset entity.
// If the ImageAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageAssetMutation) OldContentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentType: %w", err)
	}
	return oldValue.ContentType, nil
}

// ResetContentType resets all changes to the "content_type" field.
func (m *ImageAssetMutation) ResetContentType() {
	m.content_type = nil
}

// SetFileSize sets the "file_size" field.
func (m *ImageAssetMutation) SetFileSize(i int64) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *ImageAssetMutation) FileSize() (r int64, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the ImageAsset entity.
// If the ImageAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageAssetMutation) OldFileSize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *ImageAssetMutation) AddFileSize(i int64) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *ImageAssetMutation) AddedFileSize() (r int64, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *ImageAssetMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetWidth sets the "width" field.
func (m *ImageAssetMutation) SetWidth(i int) {
	m.width = &i
	m.addwidth = nil
}

// Width returns the value of the "width" field in the mutation.
func (m *ImageAssetMutation) Width() (r int, exists bool) {
	v := m.width
	if v == nil {
		return
	}
	return *v, true
}

// OldWidth returns the old "width" field's value of the ImageAsset entity.
// If the ImageAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageAssetMutation) OldWidth(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWidth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWidth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWidth: %w", err)
	}
	return oldValue.Width, nil
}

// AddWidth adds i to the "width" field.
func (m *ImageAssetMutation) AddWidth(i int) {
	if m.addwidth != nil {
		*m.addwidth += i
	} else {
		m.addwidth = &i
	}
}

// AddedWidth returns the value that was added to the "width" field in this mutation.
func (m *ImageAssetMutation) AddedWidth() (r int, exists bool) {
	v := m.addwidth
	if v == nil {
		return
	}
	return *v, true
}

// ClearWidth clears the value of the "width" field.
func (m *ImageAssetMutation) ClearWidth() {
	m.width = nil
	m.addwidth = nil
	m.clearedFields[imageasset.FieldWidth] = struct{}{}
}

// WidthCleared returns if the "width" field was cleared in this mutation.
func (m *ImageAssetMutation) WidthCleared() bool {
	_, ok := m.clearedFields[imageasset.FieldWidth]
	return ok
}

// ResetWidth resets all changes to the "width" field.
func (m *ImageAssetMutation) ResetWidth() {
	m.width = nil
	m.addwidth = nil
	delete(m.clearedFields, imageasset.FieldWidth)
}

// SetHeight sets the "height" field.
func (m *ImageAssetMutation) SetHeight(i int) {
	m.height = &i
	m.addheight = nil
}

// Height returns the value of the "height" field in the mutation.
func (m *ImageAssetMutation) Height() (r int, exists bool) {
	v := m.height
	if v == nil {
		return
	}
	return *v, true
}

// OldHeight returns the old "height" field's value of the ImageAsset entity.
// If the ImageAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageAssetMutation) OldHeight(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeight: %w", err)
	}
	return oldValue.Height, nil
}

// AddHeight adds i to the "height" field.
func (m *ImageAssetMutation) AddHeight(i int) {
	if m.addheight != nil {
		*m.addheight += i
	} else {
		m.addheight = &i
	}
}

// AddedHeight returns the value that was added to the "height" field in this mutation.
func (m *ImageAssetMutation) AddedHeight() (r int, exists bool) {
	v := m.addheight
	if v == nil {
		return
	}
	return *v, true
}

// ClearHeight clears the value of the "height" field.
func (m *ImageAssetMutation) ClearHeight() {
	m.height = nil
	m.addheight = nil
	m.clearedFields[imageasset.FieldHeight] = struct{}{}
}

// HeightCleared returns if the "height" field was cleared in this mutation.
func (m *ImageAssetMutation) HeightCleared() bool {
	_, ok := m.clearedFields[imageasset.FieldHeight]
	return ok
}

// ResetHeight resets all changes to the "height" field.
func (m *ImageAssetMutation) ResetHeight() {
	m.height = nil
	m.addheight = nil
	delete(m.clearedFields, imageasset.FieldHeight)
}

// SetAltText sets the "alt_text" field.
func (m *ImageAssetMutation) SetAltText(s string) {
	m.alt_text = &s
}

// AltText returns the value of the "alt_text" field in the mutation.
func (m *ImageAssetMutation) AltText() (r string, exists bool) {
	v := m.alt_text
	if v == nil {
		return
	}
	return *v, true
}

// OldAltText returns the old "alt_text" field's value of the ImageAsset entity.
// If the ImageAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageAssetMutation) OldAltText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAltText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAltText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAltText: %w", err)
	}
	return oldValue.AltText, nil
}

// ClearAltText clears the value of the "alt_text" field.
func (m *ImageAssetMutation) ClearAltText() {
	m.alt_text = nil
	m.clearedFields[imageasset.FieldAltText] = struct{}{}
}

// AltTextCleared returns if the "alt_text" field was cleared in this mutation.
func (m *ImageAssetMutation) AltTextCleared() bool {
	_, ok := m.clearedFields[imageasset.FieldAltText]
	return ok
}

// ResetAltText resets all changes to the "alt_text" field.
func (m *ImageAssetMutation) ResetAltText() {
	m.alt_text = nil
	delete(m.clearedFields, imageasset.FieldAltText)
}

// SetPrompt sets the "prompt" field.
func (m *ImageAssetMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *ImageAssetMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the ImageAsset entity.
// If the ImageAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageAssetMutation) OldPrompt(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ClearPrompt clears the value of the "prompt" field.
func (m *ImageAssetMutation) ClearPrompt() {
	m.prompt = nil
	m.clearedFields[imageasset.FieldPrompt] = struct{}{}
}

// PromptCleared returns if the "prompt" field was cleared in this mutation.
func (m *ImageAssetMutation) PromptCleared() bool {
	_, ok := m.clearedFields[imageasset.FieldPrompt]
	return ok
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *ImageAssetMutation) ResetPrompt() {
	m.prompt = nil
	delete(m.clearedFields, imageasset.FieldPrompt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ImageAssetMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ImageAssetMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ImageAsset entity.
// If the ImageAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageAssetMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ImageAssetMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ImageAssetMutation builder.
func (m *ImageAssetMutation) Where(ps ...predicate.ImageAsset) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ImageAssetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ImageAssetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ImageAsset, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ImageAssetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ImageAssetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ImageAsset).
func (m *ImageAssetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ImageAssetMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.user_id != nil {
		fields = append(fields, imageasset.FieldUserID)
	}
	if m.s3_key != nil {
		fields = append(fields, imageasset.FieldS3Key)
	}
	if m.bucket != nil {
		fields = append(fields, imageasset.FieldBucket)
	}
	if m.content_type != nil {
		fields = append(fields, imageasset.FieldContentType)
	}
	if m.file_size != nil {
		fields = append(fields, imageasset.FieldFileSize)
	}
	if m.width != nil {
		fields = append(fields, imageasset.FieldWidth)
	}
	if m.height != nil {
		fields = append(fields, imageasset.FieldHeight)
	}
	if m.alt_text != nil {
		fields = append(fields, imageasset.FieldAltText)
	}
	if m.prompt != nil {
		fields = append(fields, imageasset.FieldPrompt)
	}
	if m.created_at != nil {
		fields = append(fields, imageasset.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ImageAssetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case imageasset.FieldUserID:
		return m.UserID()
	case imageasset.FieldS3Key:
		return m.S3Key()
	case imageasset.FieldBucket:
		return m.Bucket()
	case imageasset.FieldContentType:
		return m.ContentType()
	case imageasset.FieldFileSize:
		return m.FileSize()
	case imageasset.FieldWidth:
		return m.Width()
	case imageasset.FieldHeight:
		return m.Height()
	case imageasset.FieldAltText:
		return m.AltText()
	case imageasset.FieldPrompt:
		return m.Prompt()
	case imageasset.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ImageAssetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case imageasset.FieldUserID:
		return m.OldUserID(ctx)
	case imageasset.FieldS3Key:
		return m.OldS3Key(ctx)
	case imageasset.FieldBucket:
		return m.OldBucket(ctx)
	case imageasset.FieldContentType:
		return m.OldContentType(ctx)
	case imageasset.FieldFileSize:
		return m.OldFileSize(ctx)
	case imageasset.FieldWidth:
		return m.OldWidth(ctx)
	case imageasset.FieldHeight:
		return m.OldHeight(ctx)
	case imageasset.FieldAltText:
		return m.OldAltText(ctx)
	case imageasset.FieldPrompt:
		return m.OldPrompt(ctx)
	case imageasset.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ImageAsset field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImageAssetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case imageasset.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case imageasset.FieldS3Key:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetS3Key(v)
		return nil
	case imageasset.FieldBucket:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBucket(v)
		return nil
	case imageasset.FieldContentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentType(v)
		return nil
	case imageasset.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case imageasset.FieldWidth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWidth(v)
		return nil
	case imageasset.FieldHeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeight(v)
		return nil
	case imageasset.FieldAltText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAltText(v)
		return nil
	case imageasset.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case imageasset.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ImageAsset field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ImageAssetMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, imageasset.FieldFileSize)
	}
	if m.addwidth != nil {
		fields = append(fields, imageasset.FieldWidth)
	}
	if m.addheight != nil {
		fields = append(fields, imageasset.FieldHeight)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ImageAssetMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case imageasset.FieldFileSize:
		return m.AddedFileSize()
	case imageasset.FieldWidth:
		return m.AddedWidth()
	case imageasset.FieldHeight:
		return m.AddedHeight()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImageAssetMutation) AddField(name string, value ent.Value) error {
	switch name {
	case imageasset.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	case imageasset.FieldWidth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWidth(v)
		return nil
	case imageasset.FieldHeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHeight(v)
		return nil
	}
	return fmt.Errorf("unknown ImageAsset numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ImageAssetMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(imageasset.FieldUserID) {
		fields = append(fields, imageasset.FieldUserID)
	}
	if m.FieldCleared(imageasset.FieldWidth) {
		fields = append(fields, imageasset.FieldWidth)
	}
	if m.FieldCleared(imageasset.FieldHeight) {
		fields = append(fields, imageasset.FieldHeight)
	}
	if m.FieldCleared(imageasset.FieldAltText) {
		fields = append(fields, imageasset.FieldAltText)
	}
	if m.FieldCleared(imageasset.FieldPrompt) {
		fields = append(fields, imageasset.FieldPrompt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ImageAssetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ImageAssetMutation) ClearField(name string) error {
	switch name {
	case imageasset.FieldUserID:
		m.ClearUserID()
		return nil
	case imageasset.FieldWidth:
		m.ClearWidth()
		return nil
	case imageasset.FieldHeight:
		m.ClearHeight()
		return nil
	case imageasset.FieldAltText:
		m.ClearAltText()
		return nil
	case imageasset.FieldPrompt:
		m.ClearPrompt()
		return nil
	}
	return fmt.Errorf("unknown ImageAsset nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ImageAssetMutation) ResetField(name string) error {
	switch name {
	case imageasset.FieldUserID:
		m.ResetUserID()
		return nil
	case imageasset.FieldS3Key:
		m.ResetS3Key()
		return nil
	case imageasset.FieldBucket:
		m.ResetBucket()
		return nil
	case imageasset.FieldContentType:
		m.ResetContentType()
		return nil
	case imageasset.FieldFileSize:
		m.ResetFileSize()
		return nil
	case imageasset.FieldWidth:
		m.ResetWidth()
		return nil
	case imageasset.FieldHeight:
		m.ResetHeight()
		return nil
	case imageasset.FieldAltText:
		m.ResetAltText()
		return nil
	case imageasset.FieldPrompt:
		m.ResetPrompt()
		return nil
	case imageasset.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ImageAsset field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ImageAssetMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ImageAssetMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ImageAssetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ImageAssetMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ImageAssetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ImageAssetMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ImageAssetMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ImageAsset unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ImageAssetMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ImageAsset edge %s", name)
}

// LLMRequestMutation represents an operation that mutates the LLMRequest nodes in the graph.
type LLMRequestMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	user_id              *string
	provider             *string
	model                *string
	api_variant          *llmrequest.APIVariant
	messages             *[]models.ChatMessage
	appendmessages       []models.ChatMessage
	request_payload      *map[string]interface{}
	temperature          *float64
	addtemperature       *float64
	max_output_tokens    *int
	addmax_output_tokens *int
	response_content     *string
	response_raw         *map[string]interface{}
	provider_response_id *string
	system_fingerprint   *string
	input_tokens         *int
	addinput_tokens      *int
	output_tokens        *int
	addoutput_tokens     *int
	tokens_used          *int
	addtokens_used       *int
	cost_estimate        *float64
	addcost_estimate     *float64
	status               *llmrequest.Status
	error_type           *string
	error_message        *string
	retry_attempt        *int
	addretry_attempt     *int
	cached               *bool
	execution_time_ms    *int
	addexecution_time_ms *int
	flow_run_id          *string
	step_run_id          *string
	created_at           *time.Time
	response_created_at  *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*LLMRequest, error)
	predicates           []predicate.LLMRequest
}

var _ ent.Mutation = (*LLMRequestMutation)(nil)

// llmrequestOption allows management of the mutation configuration using functional options.
type llmrequestOption func(*LLMRequestMutation)

// newLLMRequestMutation creates new mutation for the LLMRequest entity.
func newLLMRequestMutation(c config, op Op, opts ...llmrequestOption) *LLMRequestMutation {
	m := &LLMRequestMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestID sets the ID field of the mutation.
func withLLMRequestID(id string) llmrequestOption {
	return func(m *LLMRequestMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequest
		)
		m.oldValue = func(ctx context.Context) (*LLMRequest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequest sets the old LLMRequest of the mutation.
func withLLMRequest(node *LLMRequest) llmrequestOption {
	return func(m *LLMRequestMutation) {
		m.oldValue = func(context.Context) (*LLMRequest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LLMRequest entities.
func (m *LLMRequestMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *LLMRequestMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *LLMRequestMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *LLMRequestMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[llmrequest.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *LLMRequestMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[llmrequest.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *LLMRequestMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, llmrequest.FieldUserID)
}

// SetProvider sets the "provider" field.
func (m *LLMRequestMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestMutation) ResetModel() {
	m.model = nil
}

// SetAPIVariant sets the "api_variant" field.
func (m *LLMRequestMutation) SetAPIVariant(lv llmrequest.APIVariant) {
	m.api_variant = &lv
}

// APIVariant returns the value of the "api_variant" field in the mutation.
func (m *LLMRequestMutation) APIVariant() (r llmrequest.APIVariant, exists bool) {
	v := m.api_variant
	if v == nil {
		return
	}
	return *v, true
}

// OldAPIVariant returns the old "api_variant" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldAPIVariant(ctx context.Context) (v llmrequest.APIVariant, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAPIVariant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAPIVariant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAPIVariant: %w", err)
	}
	return oldValue.APIVariant, nil
}

// ResetAPIVariant resets all changes to the "api_variant" field.
func (m *LLMRequestMutation) ResetAPIVariant() {
	m.api_variant = nil
}

// SetMessages sets the "messages" field.
func (m *LLMRequestMutation) SetMessages(mm []models.ChatMessage) {
	m.messages = &mm
	m.appendmessages = nil
}

// Messages returns the value of the "messages" field in the mutation.
func (m *LLMRequestMutation) Messages() (r []models.ChatMessage, exists bool) {
	v := m.messages
	if v == nil {
		return
	}
	return *v, true
}

// OldMessages returns the old "messages" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldMessages(ctx context.Context) (v []models.ChatMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessages: %w", err)
	}
	return oldValue.Messages, nil
}

// AppendMessages adds mm to the "messages" field.
func (m *LLMRequestMutation) AppendMessages(mm []models.ChatMessage) {
	m.appendmessages = append(m.appendmessages, mm...)
}

// AppendedMessages returns the list of values that were appended to the "messages" field in this mutation.
func (m *LLMRequestMutation) AppendedMessages() ([]models.ChatMessage, bool) {
	if len(m.appendmessages) == 0 {
		return nil, false
	}
	return m.appendmessages, true
}

// ClearMessages clears the value of the "messages" field.
func (m *LLMRequestMutation) ClearMessages() {
	m.messages = nil
	m.appendmessages = nil
	m.clearedFields[llmrequest.FieldMessages] = struct{}{}
}

// MessagesCleared returns if the "messages" field was cleared in this mutation.
func (m *LLMRequestMutation) MessagesCleared() bool {
	_, ok := m.clearedFields[llmrequest.FieldMessages]
	return ok
}

// ResetMessages resets all changes to the "messages" field.
func (m *LLMRequestMutation) ResetMessages() {
	m.messages = nil
	m.appendmessages = nil
	delete(m.clearedFields, llmrequest.FieldMessages)
}

// SetRequestPayload sets the "request_payload" field.
func (m *LLMRequestMutation) SetRequestPayload(value map[string]interface{}) {
	m.request_payload = &value
}

// RequestPayload returns the value of the "request_payload" field in the mutation.
func (m *LLMRequestMutation) RequestPayload() (r map[string]interface{}, exists bool) {
	v := m.request_payload
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestPayload returns the old "request_payload" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldRequestPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestPayload: %w", err)
	}
	return oldValue.RequestPayload, nil
}

// ClearRequestPayload clears the value of the "request_payload" field.
func (m *LLMRequestMutation) ClearRequestPayload() {
	m.request_payload = nil
	m.clearedFields[llmrequest.FieldRequestPayload] = struct{}{}
}

// RequestPayloadCleared returns if the "request_payload" field was cleared in this mutation.
func (m *LLMRequestMutation) RequestPayloadCleared() bool {
	_, ok := m.clearedFields[llmrequest.FieldRequestPayload]
	return ok
}

// ResetRequestPayload resets all changes to the "request_payload" field.
func (m *LLMRequestMutation) ResetRequestPayload() {
	m.request_payload = nil
	delete(m.clearedFields, llmrequest.FieldRequestPayload)
}

// SetTemperature sets the "temperature" field.
func (m *LLMRequestMutation) SetTemperature(f float64) {
	m.temperature = &f
	m.addtemperature = nil
}

// Temperature returns the value of the "temperature" field in the mutation.
func (m *LLMRequestMutation) Temperature() (r float64, exists bool) {
	v := m.temperature
	if v == nil {
		return
	}
	return *v, true
}

// OldTemperature returns the old "temperature" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldTemperature(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemperature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemperature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemperature: %w", err)
	}
	return oldValue.Temperature, nil
}

// AddTemperature adds f to the "temperature" field.
func (m *LLMRequestMutation) AddTemperature(f float64) {
	if m.addtemperature != nil {
		*m.addtemperature += f
	} else {
		m.addtemperature = &f
	}
}

// AddedTemperature returns the value that was added to the "temperature" field in this mutation.
func (m *LLMRequestMutation) AddedTemperature() (r float64, exists bool) {
	v := m.addtemperature
	if v == nil {
		return
	}
	return *v, true
}

// ClearTemperature clears the value of the "temperature" field.
func (m *LLMRequestMutation) ClearTemperature() {
	m.temperature = nil
	m.addtemperature = nil
	m.clearedFields[llmrequest.FieldTemperature] = struct{}{}
}

// TemperatureCleared returns if the "temperature" field was cleared in this mutation.
func (m *LLMRequestMutation) TemperatureCleared() bool {
	_, ok := m.clearedFields[llmrequest.FieldTemperature]
	return ok
}

// ResetTemperature resets all changes to the "temperature" field.
func (m *LLMRequestMutation) ResetTemperature() {
	m.temperature = nil
	m.addtemperature = nil
	delete(m.clearedFields, llmrequest.FieldTemperature)
}

// SetMaxOutputTokens sets the "max_output_tokens" field.
func (m *LLMRequestMutation) SetMaxOutputTokens(i int) {
	m.max_output_tokens = &i
	m.addmax_output_tokens = nil
}

// MaxOutputTokens returns the value of the "max_output_tokens" field in the mutation.
func (m *LLMRequestMutation) MaxOutputTokens() (r int, exists bool) {
	v := m.max_output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxOutputTokens returns the old "max_output_tokens" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldMaxOutputTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxOutputTokens: %w", err)
	}
	return oldValue.MaxOutputTokens, nil
}

// AddMaxOutputTokens adds i to the "max_output_tokens" field.
func (m *LLMRequestMutation) AddMaxOutputTokens(i int) {
	if m.addmax_output_tokens != nil {
		*m.addmax_output_tokens += i
	} else {
		m.addmax_output_tokens = &i
	}
}

// AddedMaxOutputTokens returns the value that was added to the "max_output_tokens" field in this mutation.
func (m *LLMRequestMutation) AddedMaxOutputTokens() (r int, exists bool) {
	v := m.addmax_output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearMaxOutputTokens clears the value of the "max_output_tokens" field.
func (m *LLMRequestMutation) ClearMaxOutputTokens() {
	m.max_output_tokens = nil
	m.addmax_output_tokens = nil
	m.clearedFields[llmrequest.FieldMaxOutputTokens] = struct{}{}
}

// MaxOutputTokensCleared returns if the "max_output_tokens" field was cleared in this mutation.
func (m *LLMRequestMutation) MaxOutputTokensCleared() bool {
	_, ok := m.clearedFields[llmrequest.FieldMaxOutputTokens]
	return ok
}

// ResetMaxOutputTokens resets all changes to the "max_output_tokens" field.
func (m *LLMRequestMutation) ResetMaxOutputTokens() {
	m.max_output_tokens = nil
	m.addmax_output_tokens = nil
	delete(m.clearedFields, llmrequest.FieldMaxOutputTokens)
}

// SetResponseContent sets the "response_content" field.
func (m *LLMRequestMutation) SetResponseContent(s string) {
	m.response_content = &s
}

// ResponseContent returns the value of the "response_content" field in the mutation.
func (m *LLMRequestMutation) ResponseContent() (r string, exists bool) {
	v := m.response_content
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseContent returns the old "response_content" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldResponseContent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseContent: %w", err)
	}
	return oldValue.ResponseContent, nil
}

// ClearResponseContent clears the value of the "response_content" field.
func (m *LLMRequestMutation) ClearResponseContent() {
	m.response_content = nil
	m.clearedFields[llmrequest.FieldResponseContent] = struct{}{}
}

// ResponseContentCleared returns if the "response_content" field was cleared in this mutation.
func (m *LLMRequestMutation) ResponseContentCleared() bool {
	_, ok := m.clearedFields[llmrequest.FieldResponseContent]
	return ok
}

// ResetResponseContent resets all changes to the "response_content" field.
func (m *LLMRequestMutation) ResetResponseContent() {
	m.response_content = nil
	delete(m.clearedFields, llmrequest.FieldResponseContent)
}

// SetResponseRaw sets the "response_raw" field.
func (m *LLMRequestMutation) SetResponseRaw(value map[string]interface{}) {
	m.response_raw = &value
}

// ResponseRaw returns the value of the "response_raw" field in the mutation.
func (m *LLMRequestMutation) ResponseRaw() (r map[string]interface{}, exists bool) {
	v := m.response_raw
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseRaw returns the old "response_raw" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldResponseRaw(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseRaw is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseRaw requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseRaw: %w", err)
	}
	return oldValue.ResponseRaw, nil
}

// ClearResponseRaw clears the value of the "response_raw" field.
func (m *LLMRequestMutation) ClearResponseRaw() {
	m.response_raw = nil
	m.clearedFields[llmrequest.FieldResponseRaw] = struct{}{}
}

// ResponseRawCleared returns if the "response_raw" field was cleared in this mutation.
func (m *LLMRequestMutation) ResponseRawCleared() bool {
	_, ok := m.clearedFields[llmrequest.FieldResponseRaw]
	return ok
}

// ResetResponseRaw resets all changes to the "response_raw" field.
func (m *LLMRequestMutation) ResetResponseRaw() {
	m.response_raw = nil
	delete(m.clearedFields, llmrequest.FieldResponseRaw)
}

// SetProviderResponseID sets the "provider_response_id" field.
func (m *LLMRequestMutation) SetProviderResponseID(s string) {
	m.provider_response_id = &s
}

// ProviderResponseID returns the value of the "provider_response_id" field in the mutation.
func (m *LLMRequestMutation) ProviderResponseID() (r string, exists bool) {
	v := m.provider_response_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderResponseID returns the old "provider_response_id" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldProviderResponseID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderResponseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderResponseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderResponseID: %w", err)
	}
	return oldValue.ProviderResponseID, nil
}

// ClearProviderResponseID clears the value of the "provider_response_id" field.
func (m *LLMRequestMutation) ClearProviderResponseID() {
	m.provider_response_id = nil
	m.clearedFields[llmrequest.FieldProviderResponseID] = struct{}{}
}

// ProviderResponseIDCleared returns if the "provider_response_id" field was cleared in this mutation.
func (m *LLMRequestMutation) ProviderResponseIDCleared() bool {
	_, ok := m.clearedFields[llmrequest.FieldProviderResponseID]
	return ok
}

// ResetProviderResponseID resets all changes to the "provider_response_id" field.
func (m *LLMRequestMutation) ResetProviderResponseID() {
	m.provider_response_id = nil
	delete(m.clearedFields, llmrequest.FieldProviderResponseID)
}

// SetSystemFingerprint sets the "system_fingerprint" field.
func (m *LLMRequestMutation) SetSystemFingerprint(s string) {
	m.system_fingerprint = &s
}

// SystemFingerprint returns the value of the "system_fingerprint" field in the mutation.
func (m *LLMRequestMutation) SystemFingerprint() (r string, exists bool) {
	v := m.system_fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldSystemFingerprint returns the old "system_fingerprint" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldSystemFingerprint(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSystemFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSystemFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSystemFingerprint: %w", err)
	}
	return oldValue.SystemFingerprint, nil
}

// ClearSystemFingerprint clears the value of the "system_fingerprint" field.
func (m *LLMRequestMutation) ClearSystemFingerprint() {
	m.system_fingerprint = nil
	m.clearedFields[llmrequest.FieldSystemFingerprint] = struct{}{}
}

// SystemFingerprintCleared returns if the "system_fingerprint" field was cleared in this mutation.
func (m *LLMRequestMutation) SystemFingerprintCleared() bool {
	_, ok := m.clearedFields[llmrequest.FieldSystemFingerprint]
	return ok
}

// ResetSystemFingerprint resets all changes to the "system_fingerprint" field.
func (m *LLMRequestMutation) ResetSystemFingerprint() {
	m.system_fingerprint = nil
	delete(m.clearedFields, llmrequest.FieldSystemFingerprint)
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldInputTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (m *LLMRequestMutation) ClearInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
	m.clearedFields[llmrequest.FieldInputTokens] = struct{}{}
}

// InputTokensCleared returns if the "input_tokens" field was cleared in this mutation.
func (m *LLMRequestMutation) InputTokensCleared() bool {
	_, ok := m.clearedFields[llmrequest.FieldInputTokens]
	return ok
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
	delete(m.clearedFields, llmrequest.FieldInputTokens)
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldOutputTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (m *LLMRequestMutation) ClearOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
	m.clearedFields[llmrequest.FieldOutputTokens] = struct{}{}
}

// OutputTokensCleared returns if the "output_tokens" field was cleared in this mutation.
func (m *LLMRequestMutation) OutputTokensCleared() bool {
	_, ok := m.clearedFields[llmrequest.FieldOutputTokens]
	return ok
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
	delete(m.clearedFields, llmrequest.FieldOutputTokens)
}

// SetTokensUsed sets the "tokens_used" field.
func (m *LLMRequestMutation) SetTokensUsed(i int) {
	m.tokens_used = &i
	m.addtokens_used = nil
}

// TokensUsed returns the value of the "tokens_used" field in the mutation.
func (m *LLMRequestMutation) TokensUsed() (r int, exists bool) {
	v := m.tokens_used
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensUsed returns the old "tokens_used" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldTokensUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensUsed: %w", err)
	}
	return oldValue.TokensUsed, nil
}

// AddTokensUsed adds i to the "tokens_used" field.
func (m *LLMRequestMutation) AddTokensUsed(i int) {
	if m.addtokens_used != nil {
		*m.addtokens_used += i
	} else {
		m.addtokens_used = &i
	}
}

// AddedTokensUsed returns the value that was added to the "tokens_used" field in this mutation.
func (m *LLMRequestMutation) AddedTokensUsed() (r int, exists bool) {
	v := m.addtokens_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensUsed resets all changes to the "tokens_used" field.
func (m *LLMRequestMutation) ResetTokensUsed() {
	m.tokens_used = nil
	m.addtokens_used = nil
}

// SetCostEstimate sets the "cost_estimate" field.
func (m *LLMRequestMutation) SetCostEstimate(f float64) {
	m.cost_estimate = &f
	m.addcost_estimate = nil
}

// CostEstimate returns the value of the "cost_estimate" field in the mutation.
func (m *LLMRequestMutation) CostEstimate() (r float64, exists bool) {
	v := m.cost_estimate
	if v == nil {
		return
	}
	return *v, true
}

// OldCostEstimate returns the old "cost_estimate" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldCostEstimate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostEstimate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostEstimate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostEstimate: %w", err)
	}
	return oldValue.CostEstimate, nil
}

// AddCostEstimate adds f to the "cost_estimate" field.
func (m *LLMRequestMutation) AddCostEstimate(f float64) {
	if m.addcost_estimate != nil {
		*m.addcost_estimate += f
	} else {
		m.addcost_estimate = &f
	}
}

// AddedCostEstimate returns the value that was added to the "cost_estimate" field in this mutation.
func (m *LLMRequestMutation) AddedCostEstimate() (r float64, exists bool) {
	v := m.addcost_estimate
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostEstimate resets all changes to the "cost_estimate" field.
func (m *LLMRequestMutation) ResetCostEstimate() {
	m.cost_estimate = nil
	m.addcost_estimate = nil
}

// SetStatus sets the "status" field.
func (m *LLMRequestMutation) SetStatus(l llmrequest.Status) {
	m.status = &l
}

// Status returns the value of the "status" field in the mutation.
func (m *LLMRequestMutation) Status() (r llmrequest.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldStatus(ctx context.Context) (v llmrequest.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *LLMRequestMutation) ResetStatus() {
	m.status = nil
}

// SetErrorType sets the "error_type" field.
func (m *LLMRequestMutation) SetErrorType(s string) {
	m.error_type = &s
}

// ErrorType returns the value of the "error_type" field in the mutation.
func (m *LLMRequestMutation) ErrorType() (r string, exists bool) {
	v := m.error_type
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorType returns the old "error_type" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldErrorType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorType: %w", err)
	}
	return oldValue.ErrorType, nil
}

// ClearErrorType clears the value of the "error_type" field.
func (m *LLMRequestMutation) ClearErrorType() {
	m.error_type = nil
	m.clearedFields[llmrequest.FieldErrorType] = struct{}{}
}

// ErrorTypeCleared returns if the "error_type" field was cleared in this mutation.
func (m *LLMRequestMutation) ErrorTypeCleared() bool {
	_, ok := m.clearedFields[llmrequest.FieldErrorType]
	return ok
}

// ResetErrorType resets all changes to the "error_type" field.
func (m *LLMRequestMutation) ResetErrorType() {
	m.error_type = nil
	delete(m.clearedFields, llmrequest.FieldErrorType)
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *LLMRequestMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[llmrequest.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *LLMRequestMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[llmrequest.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, llmrequest.FieldErrorMessage)
}

// SetRetryAttempt sets the "retry_attempt" field.
func (m *LLMRequestMutation) SetRetryAttempt(i int) {
	m.retry_attempt = &i
	m.addretry_attempt = nil
}

// RetryAttempt returns the value of the "retry_attempt" field in the mutation.
func (m *LLMRequestMutation) RetryAttempt() (r int, exists bool) {
	v := m.retry_attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryAttempt returns the old "retry_attempt" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldRetryAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryAttempt: %w", err)
	}
	return oldValue.RetryAttempt, nil
}

// AddRetryAttempt adds i to the "retry_attempt" field.
func (m *LLMRequestMutation) AddRetryAttempt(i int) {
	if m.addretry_attempt != nil {
		*m.addretry_attempt += i
	} else {
		m.addretry_attempt = &i
	}
}

// AddedRetryAttempt returns the value that was added to the "retry_attempt" field in this mutation.
func (m *LLMRequestMutation) AddedRetryAttempt() (r int, exists bool) {
	v := m.addretry_attempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryAttempt resets all changes to the "retry_attempt" field.
func (m *LLMRequestMutation) ResetRetryAttempt() {
	m.retry_attempt = nil
	m.addretry_attempt = nil
}

// SetCached sets the "cached" field.
func (m *LLMRequestMutation) SetCached(b bool) {
	m.cached = &b
}

// Cached returns the value of the "cached" field in the mutation.
func (m *LLMRequestMutation) Cached() (r bool, exists bool) {
	v := m.cached
	if v == nil {
		return
	}
	return *v, true
}

// OldCached returns the old "cached" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldCached(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCached is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCached requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCached: %w", err)
	}
	return oldValue.Cached, nil
}

// ResetCached resets all changes to the "cached" field.
func (m *LLMRequestMutation) ResetCached() {
	m.cached = nil
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (m *LLMRequestMutation) SetExecutionTimeMs(i int) {
	m.execution_time_ms = &i
	m.addexecution_time_ms = nil
}

// ExecutionTimeMs returns the value of the "execution_time_ms" field in the mutation.
func (m *LLMRequestMutation) ExecutionTimeMs() (r int, exists bool) {
	v := m.execution_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionTimeMs returns the old "execution_time_ms" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldExecutionTimeMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionTimeMs: %w", err)
	}
	return oldValue.ExecutionTimeMs, nil
}

// AddExecutionTimeMs adds i to the "execution_time_ms" field.
func (m *LLMRequestMutation) AddExecutionTimeMs(i int) {
	if m.addexecution_time_ms != nil {
		*m.addexecution_time_ms += i
	} else {
		m.addexecution_time_ms = &i
	}
}

// AddedExecutionTimeMs returns the value that was added to the "execution_time_ms" field in this mutation.
func (m *LLMRequestMutation) AddedExecutionTimeMs() (r int, exists bool) {
	v := m.addexecution_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearExecutionTimeMs clears the value of the "execution_time_ms" field.
func (m *LLMRequestMutation) ClearExecutionTimeMs() {
	m.execution_time_ms = nil
	m.addexecution_time_ms = nil
	m.clearedFields[llmrequest.FieldExecutionTimeMs] = struct{}{}
}

// ExecutionTimeMsCleared returns if the "execution_time_ms" field was cleared in this mutation.
func (m *LLMRequestMutation) ExecutionTimeMsCleared() bool {
	_, ok := m.clearedFields[llmrequest.FieldExecutionTimeMs]
	return ok
}

// ResetExecutionTimeMs resets all changes to the "execution_time_ms" field.
func (m *LLMRequestMutation) ResetExecutionTimeMs() {
	m.execution_time_ms = nil
	m.addexecution_time_ms = nil
	delete(m.clearedFields, llmrequest.FieldExecutionTimeMs)
}

// SetFlowRunID sets the "flow_run_id" field.
func (m *LLMRequestMutation) SetFlowRunID(s string) {
	m.flow_run_id = &s
}

// FlowRunID returns the value of the "flow_run_id" field in the mutation.
func (m *LLMRequestMutation) FlowRunID() (r string, exists bool) {
	v := m.flow_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFlowRunID returns the old "flow_run_id" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldFlowRunID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlowRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlowRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlowRunID: %w", err)
	}
	return oldValue.FlowRunID, nil
}

// ClearFlowRunID clears the value of the "flow_run_id" field.
func (m *LLMRequestMutation) ClearFlowRunID() {
	m.flow_run_id = nil
	m.clearedFields[llmrequest.FieldFlowRunID] = struct{}{}
}

// FlowRunIDCleared returns if the "flow_run_id" field was cleared in this mutation.
func (m *LLMRequestMutation) FlowRunIDCleared() bool {
	_, ok := m.clearedFields[llmrequest.FieldFlowRunID]
	return ok
}

// ResetFlowRunID resets all changes to the "flow_run_id" field.
func (m *LLMRequestMutation) ResetFlowRunID() {
	m.flow_run_id = nil
	delete(m.clearedFields, llmrequest.FieldFlowRunID)
}

// SetStepRunID sets the "step_run_id" field.
func (m *LLMRequestMutation) SetStepRunID(s string) {
	m.step_run_id = &s
}

// StepRunID returns the value of the "step_run_id" field in the mutation.
func (m *LLMRequestMutation) StepRunID() (r string, exists bool) {
	v := m.step_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStepRunID returns the old "step_run_id" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldStepRunID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepRunID: %w", err)
	}
	return oldValue.StepRunID, nil
}

// ClearStepRunID clears the value of the "step_run_id" field.
func (m *LLMRequestMutation) ClearStepRunID() {
	m.step_run_id = nil
	m.clearedFields[llmrequest.FieldStepRunID] = struct{}{}
}

// StepRunIDCleared returns if the "step_run_id" field was cleared in this mutation.
func (m *LLMRequestMutation) StepRunIDCleared() bool {
	_, ok := m.clearedFields[llmrequest.FieldStepRunID]
	return ok
}

// ResetStepRunID resets all changes to the "step_run_id" field.
func (m *LLMRequestMutation) ResetStepRunID() {
	m.step_run_id = nil
	delete(m.clearedFields, llmrequest.FieldStepRunID)
}

// SetCreatedAt sets the "created_at" field.
func (m *LLMRequestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LLMRequestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LLMRequestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetResponseCreatedAt sets the "response_created_at" field.
func (m *LLMRequestMutation) SetResponseCreatedAt(t time.Time) {
	m.response_created_at = &t
}

// ResponseCreatedAt returns the value of the "response_created_at" field in the mutation.
func (m *LLMRequestMutation) ResponseCreatedAt() (r time.Time, exists bool) {
	v := m.response_created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseCreatedAt returns the old "response_created_at" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldResponseCreatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseCreatedAt: %w", err)
	}
	return oldValue.ResponseCreatedAt, nil
}

// ClearResponseCreatedAt clears the value of the "response_created_at" field.
func (m *LLMRequestMutation) ClearResponseCreatedAt() {
	m.response_created_at = nil
	m.clearedFields[llmrequest.FieldResponseCreatedAt] = struct{}{}
}

// ResponseCreatedAtCleared returns if the "response_created_at" field was cleared in this mutation.
func (m *LLMRequestMutation) ResponseCreatedAtCleared() bool {
	_, ok := m.clearedFields[llmrequest.FieldResponseCreatedAt]
	return ok
}

// ResetResponseCreatedAt resets all changes to the "response_created_at" field.
func (m *LLMRequestMutation) ResetResponseCreatedAt() {
	m.response_created_at = nil
	delete(m.clearedFields, llmrequest.FieldResponseCreatedAt)
}

// Where appends a list predicates to the LLMRequestMutation builder.
func (m *LLMRequestMutation) Where(ps ...predicate.LLMRequest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequest).
func (m *LLMRequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestMutation) Fields() []string {
	fields := make([]string, 0, 26)
	if m.user_id != nil {
		fields = append(fields, llmrequest.FieldUserID)
	}
	if m.provider != nil {
		fields = append(fields, llmrequest.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequest.FieldModel)
	}
	if m.api_variant != nil {
		fields = append(fields, llmrequest.FieldAPIVariant)
	}
	if m.messages != nil {
		fields = append(fields, llmrequest.FieldMessages)
	}
	if m.request_payload != nil {
		fields = append(fields, llmrequest.FieldRequestPayload)
	}
	if m.temperature != nil {
		fields = append(fields, llmrequest.FieldTemperature)
	}
	if m.max_output_tokens != nil {
		fields = append(fields, llmrequest.FieldMaxOutputTokens)
	}
	if m.response_content != nil {
		fields = append(fields, llmrequest.FieldResponseContent)
	}
	if m.response_raw != nil {
		fields = append(fields, llmrequest.FieldResponseRaw)
	}
	if m.provider_response_id != nil {
		fields = append(fields, llmrequest.FieldProviderResponseID)
	}
	if m.system_fingerprint != nil {
		fields = append(fields, llmrequest.FieldSystemFingerprint)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequest.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequest.FieldOutputTokens)
	}
	if m.tokens_used != nil {
		fields = append(fields, llmrequest.FieldTokensUsed)
	}
	if m.cost_estimate != nil {
		fields = append(fields, llmrequest.FieldCostEstimate)
	}
	if m.status != nil {
		fields = append(fields, llmrequest.FieldStatus)
	}
	if m.error_type != nil {
		fields = append(fields, llmrequest.FieldErrorType)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequest.FieldErrorMessage)
	}
	if m.retry_attempt != nil {
		fields = append(fields, llmrequest.FieldRetryAttempt)
	}
	if m.cached != nil {
		fields = append(fields, llmrequest.FieldCached)
	}
	if m.execution_time_ms != nil {
		fields = append(fields, llmrequest.FieldExecutionTimeMs)
	}
	if m.flow_run_id != nil {
		fields = append(fields, llmrequest.FieldFlowRunID)
	}
	if m.step_run_id != nil {
		fields = append(fields, llmrequest.FieldStepRunID)
	}
	if m.created_at != nil {
		fields = append(fields, llmrequest.FieldCreatedAt)
	}
	if m.response_created_at != nil {
		fields = append(fields, llmrequest.FieldResponseCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequest.FieldUserID:
		return m.UserID()
	case llmrequest.FieldProvider:
		return m.Provider()
	case llmrequest.FieldModel:
		return m.Model()
	case llmrequest.FieldAPIVariant:
		return m.APIVariant()
	case llmrequest.FieldMessages:
		return m.Messages()
	case llmrequest.FieldRequestPayload:
		return m.RequestPayload()
	case llmrequest.FieldTemperature:
		return m.Temperature()
	case llmrequest.FieldMaxOutputTokens:
		return m.MaxOutputTokens()
	case llmrequest.FieldResponseContent:
		return m.ResponseContent()
	case llmrequest.FieldResponseRaw:
		return m.ResponseRaw()
	case llmrequest.FieldProviderResponseID:
		return m.ProviderResponseID()
	case llmrequest.FieldSystemFingerprint:
		return m.SystemFingerprint()
	case llmrequest.FieldInputTokens:
		return m.InputTokens()
	case llmrequest.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequest.FieldTokensUsed:
		return m.TokensUsed()
	case llmrequest.FieldCostEstimate:
		return m.CostEstimate()
	case llmrequest.FieldStatus:
		return m.Status()
	case llmrequest.FieldErrorType:
		return m.ErrorType()
	case llmrequest.FieldErrorMessage:
		return m.ErrorMessage()
	case llmrequest.FieldRetryAttempt:
		return m.RetryAttempt()
	case llmrequest.FieldCached:
		return m.Cached()
	case llmrequest.FieldExecutionTimeMs:
		return m.ExecutionTimeMs()
	case llmrequest.FieldFlowRunID:
		return m.FlowRunID()
	case llmrequest.FieldStepRunID:
		return m.StepRunID()
	case llmrequest.FieldCreatedAt:
		return m.CreatedAt()
	case llmrequest.FieldResponseCreatedAt:
		return m.ResponseCreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequest.FieldUserID:
		return m.OldUserID(ctx)
	case llmrequest.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequest.FieldModel:
		return m.OldModel(ctx)
	case llmrequest.FieldAPIVariant:
		return m.OldAPIVariant(ctx)
	case llmrequest.FieldMessages:
		return m.OldMessages(ctx)
	case llmrequest.FieldRequestPayload:
		return m.OldRequestPayload(ctx)
	case llmrequest.FieldTemperature:
		return m.OldTemperature(ctx)
	case llmrequest.FieldMaxOutputTokens:
		return m.OldMaxOutputTokens(ctx)
	case llmrequest.FieldResponseContent:
		return m.OldResponseContent(ctx)
	case llmrequest.FieldResponseRaw:
		return m.OldResponseRaw(ctx)
	case llmrequest.FieldProviderResponseID:
		return m.OldProviderResponseID(ctx)
	case llmrequest.FieldSystemFingerprint:
		return m.OldSystemFingerprint(ctx)
	case llmrequest.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequest.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequest.FieldTokensUsed:
		return m.OldTokensUsed(ctx)
	case llmrequest.FieldCostEstimate:
		return m.OldCostEstimate(ctx)
	case llmrequest.FieldStatus:
		return m.OldStatus(ctx)
	case llmrequest.FieldErrorType:
		return m.OldErrorType(ctx)
	case llmrequest.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llmrequest.FieldRetryAttempt:
		return m.OldRetryAttempt(ctx)
	case llmrequest.FieldCached:
		return m.OldCached(ctx)
	case llmrequest.FieldExecutionTimeMs:
		return m.OldExecutionTimeMs(ctx)
	case llmrequest.FieldFlowRunID:
		return m.OldFlowRunID(ctx)
	case llmrequest.FieldStepRunID:
		return m.OldStepRunID(ctx)
	case llmrequest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case llmrequest.FieldResponseCreatedAt:
		return m.OldResponseCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequest.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case llmrequest.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequest.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequest.FieldAPIVariant:
		v, ok := value.(llmrequest.APIVariant)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAPIVariant(v)
		return nil
	case llmrequest.FieldMessages:
		v, ok := value.([]models.ChatMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessages(v)
		return nil
	case llmrequest.FieldRequestPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestPayload(v)
		return nil
	case llmrequest.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemperature(v)
		return nil
	case llmrequest.FieldMaxOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxOutputTokens(v)
		return nil
	case llmrequest.FieldResponseContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseContent(v)
		return nil
	case llmrequest.FieldResponseRaw:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseRaw(v)
		return nil
	case llmrequest.FieldProviderResponseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderResponseID(v)
		return nil
	case llmrequest.FieldSystemFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSystemFingerprint(v)
		return nil
	case llmrequest.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequest.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequest.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensUsed(v)
		return nil
	case llmrequest.FieldCostEstimate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostEstimate(v)
		return nil
	case llmrequest.FieldStatus:
		v, ok := value.(llmrequest.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case llmrequest.FieldErrorType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorType(v)
		return nil
	case llmrequest.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case llmrequest.FieldRetryAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryAttempt(v)
		return nil
	case llmrequest.FieldCached:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCached(v)
		return nil
	case llmrequest.FieldExecutionTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionTimeMs(v)
		return nil
	case llmrequest.FieldFlowRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlowRunID(v)
		return nil
	case llmrequest.FieldStepRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepRunID(v)
		return nil
	case llmrequest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case llmrequest.FieldResponseCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestMutation) AddedFields() []string {
	var fields []string
	if m.addtemperature != nil {
		fields = append(fields, llmrequest.FieldTemperature)
	}
	if m.addmax_output_tokens != nil {
		fields = append(fields, llmrequest.FieldMaxOutputTokens)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequest.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequest.FieldOutputTokens)
	}
	if m.addtokens_used != nil {
		fields = append(fields, llmrequest.FieldTokensUsed)
	}
	if m.addcost_estimate != nil {
		fields = append(fields, llmrequest.FieldCostEstimate)
	}
	if m.addretry_attempt != nil {
		fields = append(fields, llmrequest.FieldRetryAttempt)
	}
	if m.addexecution_time_ms != nil {
		fields = append(fields, llmrequest.FieldExecutionTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequest.FieldTemperature:
		return m.AddedTemperature()
	case llmrequest.FieldMaxOutputTokens:
		return m.AddedMaxOutputTokens()
	case llmrequest.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequest.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequest.FieldTokensUsed:
		return m.AddedTokensUsed()
	case llmrequest.FieldCostEstimate:
		return m.AddedCostEstimate()
	case llmrequest.FieldRetryAttempt:
		return m.AddedRetryAttempt()
	case llmrequest.FieldExecutionTimeMs:
		return m.AddedExecutionTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequest.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTemperature(v)
		return nil
	case llmrequest.FieldMaxOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxOutputTokens(v)
		return nil
	case llmrequest.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequest.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequest.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensUsed(v)
		return nil
	case llmrequest.FieldCostEstimate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostEstimate(v)
		return nil
	case llmrequest.FieldRetryAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryAttempt(v)
		return nil
	case llmrequest.FieldExecutionTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExecutionTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(llmrequest.FieldUserID) {
		fields = append(fields, llmrequest.FieldUserID)
	}
	if m.FieldCleared(llmrequest.FieldMessages) {
		fields = append(fields, llmrequest.FieldMessages)
	}
	if m.FieldCleared(llmrequest.FieldRequestPayload) {
		fields = append(fields, llmrequest.FieldRequestPayload)
	}
	if m.FieldCleared(llmrequest.FieldTemperature) {
		fields = append(fields, llmrequest.FieldTemperature)
	}
	if m.FieldCleared(llmrequest.FieldMaxOutputTokens) {
		fields = append(fields, llmrequest.FieldMaxOutputTokens)
	}
	if m.FieldCleared(llmrequest.FieldResponseContent) {
		fields = append(fields, llmrequest.FieldResponseContent)
	}
	if m.FieldCleared(llmrequest.FieldResponseRaw) {
		fields = append(fields, llmrequest.FieldResponseRaw)
	}
	if m.FieldCleared(llmrequest.FieldProviderResponseID) {
		fields = append(fields, llmrequest.FieldProviderResponseID)
	}
	if m.FieldCleared(llmrequest.FieldSystemFingerprint) {
		fields = append(fields, llmrequest.FieldSystemFingerprint)
	}
	if m.FieldCleared(llmrequest.FieldInputTokens) {
		fields = append(fields, llmrequest.FieldInputTokens)
	}
	if m.FieldCleared(llmrequest.FieldOutputTokens) {
		fields = append(fields, llmrequest.FieldOutputTokens)
	}
	if m.FieldCleared(llmrequest.FieldErrorType) {
		fields = append(fields, llmrequest.FieldErrorType)
	}
	if m.FieldCleared(llmrequest.FieldErrorMessage) {
		fields = append(fields, llmrequest.FieldErrorMessage)
	}
	if m.FieldCleared(llmrequest.FieldExecutionTimeMs) {
		fields = append(fields, llmrequest.FieldExecutionTimeMs)
	}
	if m.FieldCleared(llmrequest.FieldFlowRunID) {
		fields = append(fields, llmrequest.FieldFlowRunID)
	}
	if m.FieldCleared(llmrequest.FieldStepRunID) {
		fields = append(fields, llmrequest.FieldStepRunID)
	}
	if m.FieldCleared(llmrequest.FieldResponseCreatedAt) {
		fields = append(fields, llmrequest.FieldResponseCreatedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestMutation) ClearField(name string) error {
	switch name {
	case llmrequest.FieldUserID:
		m.ClearUserID()
		return nil
	case llmrequest.FieldMessages:
		m.ClearMessages()
		return nil
	case llmrequest.FieldRequestPayload:
		m.ClearRequestPayload()
		return nil
	case llmrequest.FieldTemperature:
		m.ClearTemperature()
		return nil
	case llmrequest.FieldMaxOutputTokens:
		m.ClearMaxOutputTokens()
		return nil
	case llmrequest.FieldResponseContent:
		m.ClearResponseContent()
		return nil
	case llmrequest.FieldResponseRaw:
		m.ClearResponseRaw()
		return nil
	case llmrequest.FieldProviderResponseID:
		m.ClearProviderResponseID()
		return nil
	case llmrequest.FieldSystemFingerprint:
		m.ClearSystemFingerprint()
		return nil
	case llmrequest.FieldInputTokens:
		m.ClearInputTokens()
		return nil
	case llmrequest.FieldOutputTokens:
		m.ClearOutputTokens()
		return nil
	case llmrequest.FieldErrorType:
		m.ClearErrorType()
		return nil
	case llmrequest.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case llmrequest.FieldExecutionTimeMs:
		m.ClearExecutionTimeMs()
		return nil
	case llmrequest.FieldFlowRunID:
		m.ClearFlowRunID()
		return nil
	case llmrequest.FieldStepRunID:
		m.ClearStepRunID()
		return nil
	case llmrequest.FieldResponseCreatedAt:
		m.ClearResponseCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LLMRequest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestMutation) ResetField(name string) error {
	switch name {
	case llmrequest.FieldUserID:
		m.ResetUserID()
		return nil
	case llmrequest.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequest.FieldModel:
		m.ResetModel()
		return nil
	case llmrequest.FieldAPIVariant:
		m.ResetAPIVariant()
		return nil
	case llmrequest.FieldMessages:
		m.ResetMessages()
		return nil
	case llmrequest.FieldRequestPayload:
		m.ResetRequestPayload()
		return nil
	case llmrequest.FieldTemperature:
		m.ResetTemperature()
		return nil
	case llmrequest.FieldMaxOutputTokens:
		m.ResetMaxOutputTokens()
		return nil
	case llmrequest.FieldResponseContent:
		m.ResetResponseContent()
		return nil
	case llmrequest.FieldResponseRaw:
		m.ResetResponseRaw()
		return nil
	case llmrequest.FieldProviderResponseID:
		m.ResetProviderResponseID()
		return nil
	case llmrequest.FieldSystemFingerprint:
		m.ResetSystemFingerprint()
		return nil
	case llmrequest.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequest.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequest.FieldTokensUsed:
		m.ResetTokensUsed()
		return nil
	case llmrequest.FieldCostEstimate:
		m.ResetCostEstimate()
		return nil
	case llmrequest.FieldStatus:
		m.ResetStatus()
		return nil
	case llmrequest.FieldErrorType:
		m.ResetErrorType()
		return nil
	case llmrequest.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llmrequest.FieldRetryAttempt:
		m.ResetRetryAttempt()
		return nil
	case llmrequest.FieldCached:
		m.ResetCached()
		return nil
	case llmrequest.FieldExecutionTimeMs:
		m.ResetExecutionTimeMs()
		return nil
	case llmrequest.FieldFlowRunID:
		m.ResetFlowRunID()
		return nil
	case llmrequest.FieldStepRunID:
		m.ResetStepRunID()
		return nil
	case llmrequest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case llmrequest.FieldResponseCreatedAt:
		m.ResetResponseCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LLMRequest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequest edge %s", name)
}

// LessonMutation represents an operation that mutates the Lesson nodes in the graph.
type LessonMutation struct {
	config
	op                          Op
	typ                         string
	id                          *string
	title                       *string
	learner_level               *lesson.LearnerLevel
	source_material             *string
	_package                    **models.LessonPackage
	package_version             *int
	addpackage_version          *int
	flow_run_id                 *string
	podcast_transcript          *string
	podcast_audio_id            *string
	podcast_duration_seconds    *float64
	addpodcast_duration_seconds *float64
	created_at                  *time.Time
	updated_at                  *time.Time
	clearedFields               map[string]struct{}
	unit                        *string
	clearedunit                 bool
	done                        bool
	oldValue                    func(context.Context) (*Lesson, error)
	predicates                  []predicate.Lesson
}

var _ ent.Mutation = (*LessonMutation)(nil)

// lessonOption allows management of the mutation configuration using functional options.
type lessonOption func(*LessonMutation)

// newLessonMutation creates new mutation for the Lesson entity.
func newLessonMutation(c config, op Op, opts ...lessonOption) *LessonMutation {
	m := &LessonMutation{
		config:        c,
		op:            op,
		typ:           TypeLesson,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLessonID sets the ID field of the mutation.
func withLessonID(id string) lessonOption {
	return func(m *LessonMutation) {
		var (
			err   error
			once  sync.Once
			value *Lesson
		)
		m.oldValue = func(ctx context.Context) (*Lesson, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Lesson.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLesson sets the old Lesson of the mutation.
func withLesson(node *Lesson) lessonOption {
	return func(m *LessonMutation) {
		m.oldValue = func(context.Context) (*Lesson, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LessonMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LessonMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Lesson entities.
func (m *LessonMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LessonMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LessonMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Lesson.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUnitID sets the "unit_id" field.
func (m *LessonMutation) SetUnitID(s string) {
	m.unit = &s
}

// UnitID returns the value of the "unit_id" field in the mutation.
func (m *LessonMutation) UnitID() (r string, exists bool) {
	v := m.unit
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitID returns the old "unit_id" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldUnitID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitID: %w", err)
	}
	return oldValue.UnitID, nil
}

// ResetUnitID resets all changes to the "unit_id" field.
func (m *LessonMutation) ResetUnitID() {
	m.unit = nil
}

// SetTitle sets the "title" field.
func (m *LessonMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *LessonMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *LessonMutation) ResetTitle() {
	m.title = nil
}

// SetLearnerLevel sets the "learner_level" field.
func (m *LessonMutation) SetLearnerLevel(ll lesson.LearnerLevel) {
	m.learner_level = &ll
}

// LearnerLevel returns the value of the "learner_level" field in the mutation.
func (m *LessonMutation) LearnerLevel() (r lesson.LearnerLevel, exists bool) {
	v := m.learner_level
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerLevel returns the old "learner_level" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldLearnerLevel(ctx context.Context) (v lesson.LearnerLevel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerLevel: %w", err)
	}
	return oldValue.LearnerLevel, nil
}

// ResetLearnerLevel resets all changes to the "learner_level" field.
func (m *LessonMutation) ResetLearnerLevel() {
	m.learner_level = nil
}

// SetSourceMaterial sets the "source_material" field.
func (m *LessonMutation) SetSourceMaterial(s string) {
	m.source_material = &s
}

// SourceMaterial returns the value of the "source_material" field in the mutation.
func (m *LessonMutation) SourceMaterial() (r string, exists bool) {
	v := m.source_material
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceMaterial returns the old "source_material" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldSourceMaterial(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceMaterial is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceMaterial requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceMaterial: %w", err)
	}
	return oldValue.SourceMaterial, nil
}

// ClearSourceMaterial clears the value of the "source_material" field.
func (m *LessonMutation) ClearSourceMaterial() {
	m.source_material = nil
	m.clearedFields[lesson.FieldSourceMaterial] = struct{}{}
}

// SourceMaterialCleared returns if the "source_material" field was cleared in this mutation.
func (m *LessonMutation) SourceMaterialCleared() bool {
	_, ok := m.clearedFields[lesson.FieldSourceMaterial]
	return ok
}

// ResetSourceMaterial resets all changes to the "source_material" field.
func (m *LessonMutation) ResetSourceMaterial() {
	m.source_material = nil
	delete(m.clearedFields, lesson.FieldSourceMaterial)
}

// SetPackage sets the "package" field.
func (m *LessonMutation) SetPackage(mp *models.LessonPackage) {
	m._package = &mp
}

// Package returns the value of the "package" field in the mutation.
func (m *LessonMutation) Package() (r *models.LessonPackage, exists bool) {
	v := m._package
	if v == nil {
		return
	}
	return *v, true
}

// OldPackage returns the old "package" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldPackage(ctx context.Context) (v *models.LessonPackage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPackage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPackage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPackage: %w", err)
	}
	return oldValue.Package, nil
}

// ResetPackage resets all changes to the "package" field.
func (m *LessonMutation) ResetPackage() {
	m._package = nil
}

// SetPackageVersion sets the "package_version" field.
func (m *LessonMutation) SetPackageVersion(i int) {
	m.package_version = &i
	m.addpackage_version = nil
}

// PackageVersion returns the value of the "package_version" field in the mutation.
func (m *LessonMutation) PackageVersion() (r int, exists bool) {
	v := m.package_version
	if v == nil {
		return
	}
	return *v, true
}

// OldPackageVersion returns the old "package_version" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldPackageVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPackageVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPackageVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPackageVersion: %w", err)
	}
	return oldValue.PackageVersion, nil
}

// AddPackageVersion adds i to the "package_version" field.
func (m *LessonMutation) AddPackageVersion(i int) {
	if m.addpackage_version != nil {
		*m.addpackage_version += i
	} else {
		m.addpackage_version = &i
	}
}

// AddedPackageVersion returns the value that was added to the "package_version" field in this mutation.
func (m *LessonMutation) AddedPackageVersion() (r int, exists bool) {
	v := m.addpackage_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetPackageVersion resets all changes to the "package_version" field.
func (m *LessonMutation) ResetPackageVersion() {
	m.package_version = nil
	m.addpackage_version = nil
}

// SetFlowRunID sets the "flow_run_id" field.
func (m *LessonMutation) SetFlowRunID(s string) {
	m.flow_run_id = &s
}

// FlowRunID returns the value of the "flow_run_id" field in the mutation.
func (m *LessonMutation) FlowRunID() (r string, exists bool) {
	v := m.flow_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFlowRunID returns the old "flow_run_id" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldFlowRunID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlowRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlowRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlowRunID: %w", err)
	}
	return oldValue.FlowRunID, nil
}

// ClearFlowRunID clears the value of the "flow_run_id" field.
func (m *LessonMutation) ClearFlowRunID() {
	m.flow_run_id = nil
	m.clearedFields[lesson.FieldFlowRunID] = struct{}{}
}

// FlowRunIDCleared returns if the "flow_run_id" field was cleared in this mutation.
func (m *LessonMutation) FlowRunIDCleared() bool {
	_, ok := m.clearedFields[lesson.FieldFlowRunID]
	return ok
}

// ResetFlowRunID resets all changes to the "flow_run_id" field.
func (m *LessonMutation) ResetFlowRunID() {
	m.flow_run_id = nil
	delete(m.clearedFields, lesson.FieldFlowRunID)
}

// SetPodcastTranscript sets the "podcast_transcript" field.
func (m *LessonMutation) SetPodcastTranscript(s string) {
	m.podcast_transcript = &s
}

// PodcastTranscript returns the value of the "podcast_transcript" field in the mutation.
func (m *LessonMutation) PodcastTranscript() (r string, exists bool) {
	v := m.podcast_transcript
	if v == nil {
		return
	}
	return *v, true
}

// OldPodcastTranscript returns the old "podcast_transcript" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldPodcastTranscript(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodcastTranscript is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodcastTranscript requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodcastTranscript: %w", err)
	}
	return oldValue.PodcastTranscript, nil
}

// ClearPodcastTranscript clears the value of the "podcast_transcript" field.
func (m *LessonMutation) ClearPodcastTranscript() {
	m.podcast_transcript = nil
	m.clearedFields[lesson.FieldPodcastTranscript] = struct{}{}
}

// PodcastTranscriptCleared returns if the "podcast_transcript" field was cleared in this mutation.
func (m *LessonMutation) PodcastTranscriptCleared() bool {
	_, ok := m.clearedFields[lesson.FieldPodcastTranscript]
	return ok
}

// ResetPodcastTranscript resets all changes to the "podcast_transcript" field.
func (m *LessonMutation) ResetPodcastTranscript() {
	m.podcast_transcript = nil
	delete(m.clearedFields, lesson.FieldPodcastTranscript)
}

// SetPodcastAudioID sets the "podcast_audio_id" field.
func (m *LessonMutation) SetPodcastAudioID(s string) {
	m.podcast_audio_id = &s
}

// PodcastAudioID returns the value of the "podcast_audio_id" field in the mutation.
func (m *LessonMutation) PodcastAudioID() (r string, exists bool) {
	v := m.podcast_audio_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodcastAudioID returns the old "podcast_audio_id" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldPodcastAudioID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodcastAudioID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodcastAudioID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodcastAudioID: %w", err)
	}
	return oldValue.PodcastAudioID, nil
}

// ClearPodcastAudioID clears the value of the "podcast_audio_id" field.
func (m *LessonMutation) ClearPodcastAudioID() {
	m.podcast_audio_id = nil
	m.clearedFields[lesson.FieldPodcastAudioID] = struct{}{}
}

// PodcastAudioIDCleared returns if the "podcast_audio_id" field was cleared in this mutation.
func (m *LessonMutation) PodcastAudioIDCleared() bool {
	_, ok := m.clearedFields[lesson.FieldPodcastAudioID]
	return ok
}

// ResetPodcastAudioID resets all changes to the "podcast_audio_id" field.
func (m *LessonMutation) ResetPodcastAudioID() {
	m.podcast_audio_id = nil
	delete(m.clearedFields, lesson.FieldPodcastAudioID)
}

// SetPodcastDurationSeconds sets the "podcast_duration_seconds" field.
func (m *LessonMutation) SetPodcastDurationSeconds(f float64) {
	m.podcast_duration_seconds = &f
	m.addpodcast_duration_seconds = nil
}

// PodcastDurationSeconds returns the value of the "podcast_duration_seconds" field in the mutation.
func (m *LessonMutation) PodcastDurationSeconds() (r float64, exists bool) {
	v := m.podcast_duration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldPodcastDurationSeconds returns the old "podcast_duration_seconds" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldPodcastDurationSeconds(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodcastDurationSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodcastDurationSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodcastDurationSeconds: %w", err)
	}
	return oldValue.PodcastDurationSeconds, nil
}

// AddPodcastDurationSeconds adds f to the "podcast_duration_seconds" field.
func (m *LessonMutation) AddPodcastDurationSeconds(f float64) {
	if m.addpodcast_duration_seconds != nil {
		*m.addpodcast_duration_seconds += f
	} else {
		m.addpodcast_duration_seconds = &f
	}
}

// AddedPodcastDurationSeconds returns the value that was added to the "podcast_duration_seconds" field in this mutation.
func (m *LessonMutation) AddedPodcastDurationSeconds() (r float64, exists bool) {
	v := m.addpodcast_duration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ClearPodcastDurationSeconds clears the value of the "podcast_duration_seconds" field.
func (m *LessonMutation) ClearPodcastDurationSeconds() {
	m.podcast_duration_seconds = nil
	m.addpodcast_duration_seconds = nil
	m.clearedFields[lesson.FieldPodcastDurationSeconds] = struct{}{}
}

// PodcastDurationSecondsCleared returns if the "podcast_duration_seconds" field was cleared in this mutation.
func (m *LessonMutation) PodcastDurationSecondsCleared() bool {
	_, ok := m.clearedFields[lesson.FieldPodcastDurationSeconds]
	return ok
}

// ResetPodcastDurationSeconds resets all changes to the "podcast_duration_seconds" field.
func (m *LessonMutation) ResetPodcastDurationSeconds() {
	m.podcast_duration_seconds = nil
	m.addpodcast_duration_seconds = nil
	delete(m.clearedFields, lesson.FieldPodcastDurationSeconds)
}

// SetCreatedAt sets the "created_at" field.
func (m *LessonMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LessonMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LessonMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LessonMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LessonMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LessonMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearUnit clears the "unit" edge to the Unit entity.
func (m *LessonMutation) ClearUnit() {
	m.clearedunit = true
	m.clearedFields[lesson.FieldUnitID] = struct{}{}
}

// UnitCleared reports if the "unit" edge to the Unit entity was cleared.
func (m *LessonMutation) UnitCleared() bool {
	return m.clearedunit
}

// UnitIDs returns the "unit" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UnitID instead. It exists only for internal usage by the builders.
func (m *LessonMutation) UnitIDs() (ids []string) {
	if id := m.unit; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUnit resets all changes to the "unit" edge.
func (m *LessonMutation) ResetUnit() {
	m.unit = nil
	m.clearedunit = false
}

// Where appends a list predicates to the LessonMutation builder.
func (m *LessonMutation) Where(ps ...predicate.Lesson) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LessonMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LessonMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Lesson, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LessonMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LessonMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Lesson).
func (m *LessonMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LessonMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.unit != nil {
		fields = append(fields, lesson.FieldUnitID)
	}
	if m.title != nil {
		fields = append(fields, lesson.FieldTitle)
	}
	if m.learner_level != nil {
		fields = append(fields, lesson.FieldLearnerLevel)
	}
	if m.source_material != nil {
		fields = append(fields, lesson.FieldSourceMaterial)
	}
	if m._package != nil {
		fields = append(fields, lesson.FieldPackage)
	}
	if m.package_version != nil {
		fields = append(fields, lesson.FieldPackageVersion)
	}
	if m.flow_run_id != nil {
		fields = append(fields, lesson.FieldFlowRunID)
	}
	if m.podcast_transcript != nil {
		fields = append(fields, lesson.FieldPodcastTranscript)
	}
	if m.podcast_audio_id != nil {
		fields = append(fields, lesson.FieldPodcastAudioID)
	}
	if m.podcast_duration_seconds != nil {
		fields = append(fields, lesson.FieldPodcastDurationSeconds)
	}
	if m.created_at != nil {
		fields = append(fields, lesson.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, lesson.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LessonMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lesson.FieldUnitID:
		return m.UnitID()
	case lesson.FieldTitle:
		return m.Title()
	case lesson.FieldLearnerLevel:
		return m.LearnerLevel()
	case lesson.FieldSourceMaterial:
		return m.SourceMaterial()
	case lesson.FieldPackage:
		return m.Package()
	case lesson.FieldPackageVersion:
		return m.PackageVersion()
	case lesson.FieldFlowRunID:
		return m.FlowRunID()
	case lesson.FieldPodcastTranscript:
		return m.PodcastTranscript()
	case lesson.FieldPodcastAudioID:
		return m.PodcastAudioID()
	case lesson.FieldPodcastDurationSeconds:
		return m.PodcastDurationSeconds()
	case lesson.FieldCreatedAt:
		return m.CreatedAt()
	case lesson.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LessonMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lesson.FieldUnitID:
		return m.OldUnitID(ctx)
	case lesson.FieldTitle:
		return m.OldTitle(ctx)
	case lesson.FieldLearnerLevel:
		return m.OldLearnerLevel(ctx)
	case lesson.FieldSourceMaterial:
		return m.OldSourceMaterial(ctx)
	case lesson.FieldPackage:
		return m.OldPackage(ctx)
	case lesson.FieldPackageVersion:
		return m.OldPackageVersion(ctx)
	case lesson.FieldFlowRunID:
		return m.OldFlowRunID(ctx)
	case lesson.FieldPodcastTranscript:
		return m.OldPodcastTranscript(ctx)
	case lesson.FieldPodcastAudioID:
		return m.OldPodcastAudioID(ctx)
	case lesson.FieldPodcastDurationSeconds:
		return m.OldPodcastDurationSeconds(ctx)
	case lesson.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case lesson.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Lesson field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LessonMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lesson.FieldUnitID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitID(v)
		return nil
	case lesson.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case lesson.FieldLearnerLevel:
		v, ok := value.(lesson.LearnerLevel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerLevel(v)
		return nil
	case lesson.FieldSourceMaterial:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceMaterial(v)
		return nil
	case lesson.FieldPackage:
		v, ok := value.(*models.LessonPackage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPackage(v)
		return nil
	case lesson.FieldPackageVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPackageVersion(v)
		return nil
	case lesson.FieldFlowRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlowRunID(v)
		return nil
	case lesson.FieldPodcastTranscript:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodcastTranscript(v)
		return nil
	case lesson.FieldPodcastAudioID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodcastAudioID(v)
		return nil
	case lesson.FieldPodcastDurationSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodcastDurationSeconds(v)
		return nil
	case lesson.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case lesson.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Lesson field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LessonMutation) AddedFields() []string {
	var fields []string
	if m.addpackage_version != nil {
		fields = append(fields, lesson.FieldPackageVersion)
	}
	if m.addpodcast_duration_seconds != nil {
		fields = append(fields, lesson.FieldPodcastDurationSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LessonMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lesson.FieldPackageVersion:
		return m.AddedPackageVersion()
	case lesson.FieldPodcastDurationSeconds:
		return m.AddedPodcastDurationSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LessonMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lesson.FieldPackageVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPackageVersion(v)
		return nil
	case lesson.FieldPodcastDurationSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPodcastDurationSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown Lesson numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LessonMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lesson.FieldSourceMaterial) {
		fields = append(fields, lesson.FieldSourceMaterial)
	}
	if m.FieldCleared(lesson.FieldFlowRunID) {
		fields = append(fields, lesson.FieldFlowRunID)
	}
	if m.FieldCleared(lesson.FieldPodcastTranscript) {
		fields = append(fields, lesson.FieldPodcastTranscript)
	}
	if m.FieldCleared(lesson.FieldPodcastAudioID) {
		fields = append(fields, lesson.FieldPodcastAudioID)
	}
	if m.FieldCleared(lesson.FieldPodcastDurationSeconds) {
		fields = append(fields, lesson.FieldPodcastDurationSeconds)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LessonMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LessonMutation) ClearField(name string) error {
	switch name {
	case lesson.FieldSourceMaterial:
		m.ClearSourceMaterial()
		return nil
	case lesson.FieldFlowRunID:
		m.ClearFlowRunID()
		return nil
	case lesson.FieldPodcastTranscript:
		m.ClearPodcastTranscript()
		return nil
	case lesson.FieldPodcastAudioID:
		m.ClearPodcastAudioID()
		return nil
	case lesson.FieldPodcastDurationSeconds:
		m.ClearPodcastDurationSeconds()
		return nil
	}
	return fmt.Errorf("unknown Lesson nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LessonMutation) ResetField(name string) error {
	switch name {
	case lesson.FieldUnitID:
		m.ResetUnitID()
		return nil
	case lesson.FieldTitle:
		m.ResetTitle()
		return nil
	case lesson.FieldLearnerLevel:
		m.ResetLearnerLevel()
		return nil
	case lesson.FieldSourceMaterial:
		m.ResetSourceMaterial()
		return nil
	case lesson.FieldPackage:
		m.ResetPackage()
		return nil
	case lesson.FieldPackageVersion:
		m.ResetPackageVersion()
		return nil
	case lesson.FieldFlowRunID:
		m.ResetFlowRunID()
		return nil
	case lesson.FieldPodcastTranscript:
		m.ResetPodcastTranscript()
		return nil
	case lesson.FieldPodcastAudioID:
		m.ResetPodcastAudioID()
		return nil
	case lesson.FieldPodcastDurationSeconds:
		m.ResetPodcastDurationSeconds()
		return nil
	case lesson.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case lesson.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Lesson field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LessonMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.unit != nil {
		edges = append(edges, lesson.EdgeUnit)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LessonMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case lesson.EdgeUnit:
		if id := m.unit; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LessonMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LessonMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LessonMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedunit {
		edges = append(edges, lesson.EdgeUnit)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LessonMutation) EdgeCleared(name string) bool {
	switch name {
	case lesson.EdgeUnit:
		return m.clearedunit
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LessonMutation) ClearEdge(name string) error {
	switch name {
	case lesson.EdgeUnit:
		m.ClearUnit()
		return nil
	}
	return fmt.Errorf("unknown Lesson unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LessonMutation) ResetEdge(name string) error {
	switch name {
	case lesson.EdgeUnit:
		m.ResetUnit()
		return nil
	}
	return fmt.Errorf("unknown Lesson edge %s", name)
}

// UnitMutation represents an operation that mutates the Unit nodes in the graph.
type UnitMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	title                     *string
	description               *string
	learner_level             *unit.LearnerLevel
	learning_objectives       *[]models.LearningObjective
	appendlearning_objectives []models.LearningObjective
	lesson_order              *[]string
	appendlesson_order        []string
	target_lesson_count       *int
	addtarget_lesson_count    *int
	generated_from_topic      *bool
	source_material           *string
	flow_type                 *unit.FlowType
	status                    *unit.Status
	error_message             *string
	creation_progress         **models.CreationProgress
	user_id                   *string
	is_global                 *bool
	flow_run_id               *string
	pod_id                    *string
	art_image_id              *string
	art_image_description     *string
	podcast_transcript        *string
	podcast_audio_id          *string
	podcast_voice             *string
	created_at                *time.Time
	updated_at                *time.Time
	completed_at              *time.Time
	clearedFields             map[string]struct{}
	lessons                   map[string]struct{}
	removedlessons            map[string]struct{}
	clearedlessons            bool
	done                      bool
	oldValue                  func(context.Context) (*Unit, error)
	predicates                []predicate.Unit
}

var _ ent.Mutation = (*UnitMutation)(nil)

// unitOption allows management of the mutation configuration using functional options.
type unitOption func(*UnitMutation)

// newUnitMutation creates new mutation for the Unit entity.
func newUnitMutation(c config, op Op, opts ...unitOption) *UnitMutation {
	m := &UnitMutation{
		config:        c,
		op:            op,
		typ:           TypeUnit,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUnitID sets the ID field of the mutation.
func withUnitID(id string) unitOption {
	return func(m *UnitMutation) {
		var (
			err   error
			once  sync.Once
			value *Unit
		)
		m.oldValue = func(ctx context.Context) (*Unit, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Unit.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUnit sets the old Unit of the mutation.
func withUnit(node *Unit) unitOption {
	return func(m *UnitMutation) {
		m.oldValue = func(context.Context) (*Unit, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UnitMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UnitMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Unit entities.
func (m *UnitMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UnitMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UnitMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Unit.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *UnitMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *UnitMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *UnitMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *UnitMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *UnitMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *UnitMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[unit.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *UnitMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[unit.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *UnitMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, unit.FieldDescription)
}

// SetLearnerLevel sets the "learner_level" field.
func (m *UnitMutation) SetLearnerLevel(ul unit.LearnerLevel) {
	m.learner_level = &ul
}

// LearnerLevel returns the value of the "learner_level" field in the mutation.
func (m *UnitMutation) LearnerLevel() (r unit.LearnerLevel, exists bool) {
	v := m.learner_level
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerLevel returns the old "learner_level" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldLearnerLevel(ctx context.Context) (v unit.LearnerLevel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerLevel: %w", err)
	}
	return oldValue.LearnerLevel, nil
}

// ResetLearnerLevel resets all changes to the "learner_level" field.
func (m *UnitMutation) ResetLearnerLevel() {
	m.learner_level = nil
}

// SetLearningObjectives sets the "learning_objectives" field.
func (m *UnitMutation) SetLearningObjectives(mo []models.LearningObjective) {
	m.learning_objectives = &mo
	m.appendlearning_objectives = nil
}

// LearningObjectives returns the value of the "learning_objectives" field in the mutation.
func (m *UnitMutation) LearningObjectives() (r []models.LearningObjective, exists bool) {
	v := m.learning_objectives
	if v == nil {
		return
	}
	return *v, true
}

// OldLearningObjectives returns the old "learning_objectives" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldLearningObjectives(ctx context.Context) (v []models.LearningObjective, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearningObjectives is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearningObjectives requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearningObjectives: %w", err)
	}
	return oldValue.LearningObjectives, nil
}

// AppendLearningObjectives adds mo to the "learning_objectives" field.
func (m *UnitMutation) AppendLearningObjectives(mo []models.LearningObjective) {
	m.appendlearning_objectives = append(m.appendlearning_objectives, mo...)
}

// AppendedLearningObjectives returns the list of values that were appended to the "learning_objectives" field in this mutation.
func (m *UnitMutation) AppendedLearningObjectives() ([]models.LearningObjective, bool) {
	if len(m.appendlearning_objectives) == 0 {
		return nil, false
	}
	return m.appendlearning_objectives, true
}

// ClearLearningObjectives clears the value of the "learning_objectives" field.
func (m *UnitMutation) ClearLearningObjectives() {
	m.learning_objectives = nil
	m.appendlearning_objectives = nil
	m.clearedFields[unit.FieldLearningObjectives] = struct{}{}
}

// LearningObjectivesCleared returns if the "learning_objectives" field was cleared in this mutation.
func (m *UnitMutation) LearningObjectivesCleared() bool {
	_, ok := m.clearedFields[unit.FieldLearningObjectives]
	return ok
}

// ResetLearningObjectives resets all changes to the "learning_objectives" field.
func (m *UnitMutation) ResetLearningObjectives() {
	m.learning_objectives = nil
	m.appendlearning_objectives = nil
	delete(m.clearedFields, unit.FieldLearningObjectives)
}

// SetLessonOrder sets the "lesson_order" field.
func (m *UnitMutation) SetLessonOrder(s []string) {
	m.lesson_order = &s
	m.appendlesson_order = nil
}

// LessonOrder returns the value of the "lesson_order" field in the mutation.
func (m *UnitMutation) LessonOrder() (r []string, exists bool) {
	v := m.lesson_order
	if v == nil {
		return
	}
	return *v, true
}

// OldLessonOrder returns the old "lesson_order" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldLessonOrder(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLessonOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLessonOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLessonOrder: %w", err)
	}
	return oldValue.LessonOrder, nil
}

// AppendLessonOrder adds s to the "lesson_order" field.
func (m *UnitMutation) AppendLessonOrder(s []string) {
	m.appendlesson_order = append(m.appendlesson_order, s...)
}

// AppendedLessonOrder returns the list of values that were appended to the "lesson_order" field in this mutation.
func (m *UnitMutation) AppendedLessonOrder() ([]string, bool) {
	if len(m.appendlesson_order) == 0 {
		return nil, false
	}
	return m.appendlesson_order, true
}

// ClearLessonOrder clears the value of the "lesson_order" field.
func (m *UnitMutation) ClearLessonOrder() {
	m.lesson_order = nil
	m.appendlesson_order = nil
	m.clearedFields[unit.FieldLessonOrder] = struct{}{}
}

// LessonOrderCleared returns if the "lesson_order" field was cleared in this mutation.
func (m *UnitMutation) LessonOrderCleared() bool {
	_, ok := m.clearedFields[unit.FieldLessonOrder]
	return ok
}

// ResetLessonOrder resets all changes to the "lesson_order" field.
func (m *UnitMutation) ResetLessonOrder() {
	m.lesson_order = nil
	m.appendlesson_order = nil
	delete(m.clearedFields, unit.FieldLessonOrder)
}

// SetTargetLessonCount sets the "target_lesson_count" field.
func (m *UnitMutation) SetTargetLessonCount(i int) {
	m.target_lesson_count = &i
	m.addtarget_lesson_count = nil
}

// TargetLessonCount returns the value of the "target_lesson_count" field in the mutation.
func (m *UnitMutation) TargetLessonCount() (r int, exists bool) {
	v := m.target_lesson_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetLessonCount returns the old "target_lesson_count" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldTargetLessonCount(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetLessonCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetLessonCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetLessonCount: %w", err)
	}
	return oldValue.TargetLessonCount, nil
}

// AddTargetLessonCount adds i to the "target_lesson_count" field.
func (m *UnitMutation) AddTargetLessonCount(i int) {
	if m.addtarget_lesson_count != nil {
		*m.addtarget_lesson_count += i
	} else {
		m.addtarget_lesson_count = &i
	}
}

// AddedTargetLessonCount returns the value that was added to the "target_lesson_count" field in this mutation.
func (m *UnitMutation) AddedTargetLessonCount() (r int, exists bool) {
	v := m.addtarget_lesson_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearTargetLessonCount clears the value of the "target_lesson_count" field.
func (m *UnitMutation) ClearTargetLessonCount() {
	m.target_lesson_count = nil
	m.addtarget_lesson_count = nil
	m.clearedFields[unit.FieldTargetLessonCount] = struct{}{}
}

// TargetLessonCountCleared returns if the "target_lesson_count" field was cleared in this mutation.
func (m *UnitMutation) TargetLessonCountCleared() bool {
	_, ok := m.clearedFields[unit.FieldTargetLessonCount]
	return ok
}

// ResetTargetLessonCount resets all changes to the "target_lesson_count" field.
func (m *UnitMutation) ResetTargetLessonCount() {
	m.target_lesson_count = nil
	m.addtarget_lesson_count = nil
	delete(m.clearedFields, unit.FieldTargetLessonCount)
}

// SetGeneratedFromTopic sets the "generated_from_topic" field.
func (m *UnitMutation) SetGeneratedFromTopic(b bool) {
	m.generated_from_topic = &b
}

// GeneratedFromTopic returns the value of the "generated_from_topic" field in the mutation.
func (m *UnitMutation) GeneratedFromTopic() (r bool, exists bool) {
	v := m.generated_from_topic
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratedFromTopic returns the old "generated_from_topic" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldGeneratedFromTopic(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratedFromTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratedFromTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratedFromTopic: %w", err)
	}
	return oldValue.GeneratedFromTopic, nil
}

// ResetGeneratedFromTopic resets all changes to the "generated_from_topic" field.
func (m *UnitMutation) ResetGeneratedFromTopic() {
	m.generated_from_topic = nil
}

// SetSourceMaterial sets the "source_material" field.
func (m *UnitMutation) SetSourceMaterial(s string) {
	m.source_material = &s
}

// SourceMaterial returns the value of the "source_material" field in the mutation.
func (m *UnitMutation) SourceMaterial() (r string, exists bool) {
	v := m.source_material
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceMaterial returns the old "source_material" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldSourceMaterial(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceMaterial is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceMaterial requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceMaterial: %w", err)
	}
	return oldValue.SourceMaterial, nil
}

// ClearSourceMaterial clears the value of the "source_material" field.
func (m *UnitMutation) ClearSourceMaterial() {
	m.source_material = nil
	m.clearedFields[unit.FieldSourceMaterial] = struct{}{}
}

// SourceMaterialCleared returns if the "source_material" field was cleared in this mutation.
func (m *UnitMutation) SourceMaterialCleared() bool {
	_, ok := m.clearedFields[unit.FieldSourceMaterial]
	return ok
}

// ResetSourceMaterial resets all changes to the "source_material" field.
func (m *UnitMutation) ResetSourceMaterial() {
	m.source_material = nil
	delete(m.clearedFields, unit.FieldSourceMaterial)
}

// SetFlowType sets the "flow_type" field.
func (m *UnitMutation) SetFlowType(ut unit.FlowType) {
	m.flow_type = &ut
}

// FlowType returns the value of the "flow_type" field in the mutation.
func (m *UnitMutation) FlowType() (r unit.FlowType, exists bool) {
	v := m.flow_type
	if v == nil {
		return
	}
	return *v, true
}

// OldFlowType returns the old "flow_type" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldFlowType(ctx context.Context) (v unit.FlowType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlowType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlowType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlowType: %w", err)
	}
	return oldValue.FlowType, nil
}

// ResetFlowType resets all changes to the "flow_type" field.
func (m *UnitMutation) ResetFlowType() {
	m.flow_type = nil
}

// SetStatus sets the "status" field.
func (m *UnitMutation) SetStatus(u unit.Status) {
	m.status = &u
}

// Status returns the value of the "status" field in the mutation.
func (m *UnitMutation) Status() (r unit.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldStatus(ctx context.Context) (v unit.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *UnitMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *UnitMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *UnitMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *UnitMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[unit.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *UnitMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[unit.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *UnitMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, unit.FieldErrorMessage)
}

// SetCreationProgress sets the "creation_progress" field.
func (m *UnitMutation) SetCreationProgress(mp *models.CreationProgress) {
	m.creation_progress = &mp
}

// CreationProgress returns the value of the "creation_progress" field in the mutation.
func (m *UnitMutation) CreationProgress() (r *models.CreationProgress, exists bool) {
	v := m.creation_progress
	if v == nil {
		return
	}
	return *v, true
}

// OldCreationProgress returns the old "creation_progress" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldCreationProgress(ctx context.Context) (v *models.CreationProgress, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreationProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreationProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreationProgress: %w", err)
	}
	return oldValue.CreationProgress, nil
}

// ClearCreationProgress clears the value of the "creation_progress" field.
func (m *UnitMutation) ClearCreationProgress() {
	m.creation_progress = nil
	m.clearedFields[unit.FieldCreationProgress] = struct{}{}
}

// CreationProgressCleared returns if the "creation_progress" field was cleared in this mutation.
func (m *UnitMutation) CreationProgressCleared() bool {
	_, ok := m.clearedFields[unit.FieldCreationProgress]
	return ok
}

// ResetCreationProgress resets all changes to the "creation_progress" field.
func (m *UnitMutation) ResetCreationProgress() {
	m.creation_progress = nil
	delete(m.clearedFields, unit.FieldCreationProgress)
}

// SetUserID sets the "user_id" field.
func (m *UnitMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UnitMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *UnitMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[unit.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *UnitMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[unit.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UnitMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, unit.FieldUserID)
}

// SetIsGlobal sets the "is_global" field.
func (m *UnitMutation) SetIsGlobal(b bool) {
	m.is_global = &b
}

// IsGlobal returns the value of the "is_global" field in the mutation.
func (m *UnitMutation) IsGlobal() (r bool, exists bool) {
	v := m.is_global
	if v == nil {
		return
	}
	return *v, true
}

// OldIsGlobal returns the old "is_global" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldIsGlobal(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsGlobal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsGlobal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsGlobal: %w", err)
	}
	return oldValue.IsGlobal, nil
}

// ResetIsGlobal resets all changes to the "is_global" field.
func (m *UnitMutation) ResetIsGlobal() {
	m.is_global = nil
}

// SetFlowRunID sets the "flow_run_id" field.
func (m *UnitMutation) SetFlowRunID(s string) {
	m.flow_run_id = &s
}

// FlowRunID returns the value of the "flow_run_id" field in the mutation.
func (m *UnitMutation) FlowRunID() (r string, exists bool) {
	v := m.flow_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFlowRunID returns the old "flow_run_id" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldFlowRunID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlowRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlowRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlowRunID: %w", err)
	}
	return oldValue.FlowRunID, nil
}

// ClearFlowRunID clears the value of the "flow_run_id" field.
func (m *UnitMutation) ClearFlowRunID() {
	m.flow_run_id = nil
	m.clearedFields[unit.FieldFlowRunID] = struct{}{}
}

// FlowRunIDCleared returns if the "flow_run_id" field was cleared in this mutation.
func (m *UnitMutation) FlowRunIDCleared() bool {
	_, ok := m.clearedFields[unit.FieldFlowRunID]
	return ok
}

// ResetFlowRunID resets all changes to the "flow_run_id" field.
func (m *UnitMutation) ResetFlowRunID() {
	m.flow_run_id = nil
	delete(m.clearedFields, unit.FieldFlowRunID)
}

// SetPodID sets the "pod_id" field.
func (m *UnitMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *UnitMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *UnitMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[unit.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *UnitMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[unit.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *UnitMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, unit.FieldPodID)
}

// SetArtImageID sets the "art_image_id" field.
func (m *UnitMutation) SetArtImageID(s string) {
	m.art_image_id = &s
}

// ArtImageID returns the value of the "art_image_id" field in the mutation.
func (m *UnitMutation) ArtImageID() (r string, exists bool) {
	v := m.art_image_id
	if v == nil {
		return
	}
	return *v, true
}

// OldArtImageID returns the old "art_image_id" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldArtImageID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArtImageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArtImageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArtImageID: %w", err)
	}
	return oldValue.ArtImageID, nil
}

// ClearArtImageID clears the value of the "art_image_id" field.
func (m *UnitMutation) ClearArtImageID() {
	m.art_image_id = nil
	m.clearedFields[unit.FieldArtImageID] = struct{}{}
}

// ArtImageIDCleared returns if the "art_image_id" field was cleared in this mutation.
func (m *UnitMutation) ArtImageIDCleared() bool {
	_, ok := m.clearedFields[unit.FieldArtImageID]
	return ok
}

// ResetArtImageID resets all changes to the "art_image_id" field.
func (m *UnitMutation) ResetArtImageID() {
	m.art_image_id = nil
	delete(m.clearedFields, unit.FieldArtImageID)
}

// SetArtImageDescription sets the "art_image_description" field.
func (m *UnitMutation) SetArtImageDescription(s string) {
	m.art_image_description = &s
}

// ArtImageDescription returns the value of the "art_image_description" field in the mutation.
func (m *UnitMutation) ArtImageDescription() (r string, exists bool) {
	v := m.art_image_description
	if v == nil {
		return
	}
	return *v, true
}

// OldArtImageDescription returns the old "art_image_description" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldArtImageDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArtImageDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArtImageDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArtImageDescription: %w", err)
	}
	return oldValue.ArtImageDescription, nil
}

// ClearArtImageDescription clears the value of the "art_image_description" field.
func (m *UnitMutation) ClearArtImageDescription() {
	m.art_image_description = nil
	m.clearedFields[unit.FieldArtImageDescription] = struct{}{}
}

// ArtImageDescriptionCleared returns if the "art_image_description" field was cleared in this mutation.
func (m *UnitMutation) ArtImageDescriptionCleared() bool {
	_, ok := m.clearedFields[unit.FieldArtImageDescription]
	return ok
}

// ResetArtImageDescription resets all changes to the "art_image_description" field.
func (m *UnitMutation) ResetArtImageDescription() {
	m.art_image_description = nil
	delete(m.clearedFields, unit.FieldArtImageDescription)
}

// SetPodcastTranscript sets the "podcast_transcript" field.
func (m *UnitMutation) SetPodcastTranscript(s string) {
	m.podcast_transcript = &s
}

// PodcastTranscript returns the value of the "podcast_transcript" field in the mutation.
func (m *UnitMutation) PodcastTranscript() (r string, exists bool) {
	v := m.podcast_transcript
	if v == nil {
		return
	}
	return *v, true
}

// OldPodcastTranscript returns the old "podcast_transcript" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldPodcastTranscript(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodcastTranscript is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodcastTranscript requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodcastTranscript: %w", err)
	}
	return oldValue.PodcastTranscript, nil
}

// ClearPodcastTranscript clears the value of the "podcast_transcript" field.
func (m *UnitMutation) ClearPodcastTranscript() {
	m.podcast_transcript = nil
	m.clearedFields[unit.FieldPodcastTranscript] = struct{}{}
}

// PodcastTranscriptCleared returns if the "podcast_transcript" field was cleared in this mutation.
func (m *UnitMutation) PodcastTranscriptCleared() bool {
	_, ok := m.clearedFields[unit.FieldPodcastTranscript]
	return ok
}

// ResetPodcastTranscript resets all changes to the "podcast_transcript" field.
func (m *UnitMutation) ResetPodcastTranscript() {
	m.podcast_transcript = nil
	delete(m.clearedFields, unit.FieldPodcastTranscript)
}

// SetPodcastAudioID sets the "podcast_audio_id" field.
func (m *UnitMutation) SetPodcastAudioID(s string) {
	m.podcast_audio_id = &s
}

// PodcastAudioID returns the value of the "podcast_audio_id" field in the mutation.
func (m *UnitMutation) PodcastAudioID() (r string, exists bool) {
	v := m.podcast_audio_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodcastAudioID returns the old "podcast_audio_id" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldPodcastAudioID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodcastAudioID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodcastAudioID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodcastAudioID: %w", err)
	}
	return oldValue.PodcastAudioID, nil
}

// ClearPodcastAudioID clears the value of the "podcast_audio_id" field.
func (m *UnitMutation) ClearPodcastAudioID() {
	m.podcast_audio_id = nil
	m.clearedFields[unit.FieldPodcastAudioID] = struct{}{}
}

// PodcastAudioIDCleared returns if the "podcast_audio_id" field was cleared in this mutation.
func (m *UnitMutation) PodcastAudioIDCleared() bool {
	_, ok := m.clearedFields[unit.FieldPodcastAudioID]
	return ok
}

// ResetPodcastAudioID resets all changes to the "podcast_audio_id" field.
func (m *UnitMutation) ResetPodcastAudioID() {
	m.podcast_audio_id = nil
	delete(m.clearedFields, unit.FieldPodcastAudioID)
}

// SetPodcastVoice sets the "podcast_voice" field.
func (m *UnitMutation) SetPodcastVoice(s string) {
	m.podcast_voice = &s
}

// PodcastVoice returns the value of the "podcast_voice" field in the mutation.
func (m *UnitMutation) PodcastVoice() (r string, exists bool) {
	v := m.podcast_voice
	if v == nil {
		return
	}
	return *v, true
}

// OldPodcastVoice returns the old "podcast_voice" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldPodcastVoice(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodcastVoice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodcastVoice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodcastVoice: %w", err)
	}
	return oldValue.PodcastVoice, nil
}

// ClearPodcastVoice clears the value of the "podcast_voice" field.
func (m *UnitMutation) ClearPodcastVoice() {
	m.podcast_voice = nil
	m.clearedFields[unit.FieldPodcastVoice] = struct{}{}
}

// PodcastVoiceCleared returns if the "podcast_voice" field was cleared in this mutation.
func (m *UnitMutation) PodcastVoiceCleared() bool {
	_, ok := m.clearedFields[unit.FieldPodcastVoice]
	return ok
}

// ResetPodcastVoice resets all changes to the "podcast_voice" field.
func (m *UnitMutation) ResetPodcastVoice() {
	m.podcast_voice = nil
	delete(m.clearedFields, unit.FieldPodcastVoice)
}

// SetCreatedAt sets the "created_at" field.
func (m *UnitMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UnitMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UnitMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UnitMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UnitMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UnitMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *UnitMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *UnitMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *UnitMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[unit.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *UnitMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[unit.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *UnitMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, unit.FieldCompletedAt)
}

// AddLessonIDs adds the "lessons" edge to the Lesson entity by ids.
func (m *UnitMutation) AddLessonIDs(ids ...string) {
	if m.lessons == nil {
		m.lessons = make(map[string]struct{})
	}
	for i := range ids {
		m.lessons[ids[i]] = struct{}{}
	}
}

// ClearLessons clears the "lessons" edge to the Lesson entity.
func (m *UnitMutation) ClearLessons() {
	m.clearedlessons = true
}

// LessonsCleared reports if the "lessons" edge to the Lesson entity was cleared.
func (m *UnitMutation) LessonsCleared() bool {
	return m.clearedlessons
}

// RemoveLessonIDs removes the "lessons" edge to the Lesson entity by IDs.
func (m *UnitMutation) RemoveLessonIDs(ids ...string) {
	if m.removedlessons == nil {
		m.removedlessons = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.lessons, ids[i])
		m.removedlessons[ids[i]] = struct{}{}
	}
}

// RemovedLessons returns the removed IDs of the "lessons" edge to the Lesson entity.
func (m *UnitMutation) RemovedLessonsIDs() (ids []string) {
	for id := range m.removedlessons {
		ids = append(ids, id)
	}
	return
}

// LessonsIDs returns the "lessons" edge IDs in the mutation.
func (m *UnitMutation) LessonsIDs() (ids []string) {
	for id := range m.lessons {
		ids = append(ids, id)
	}
	return
}

// ResetLessons resets all changes to the "lessons" edge.
func (m *UnitMutation) ResetLessons() {
	m.lessons = nil
	m.clearedlessons = false
	m.removedlessons = nil
}

// Where appends a list predicates to the UnitMutation builder.
func (m *UnitMutation) Where(ps ...predicate.Unit) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UnitMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UnitMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Unit, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UnitMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UnitMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Unit).
func (m *UnitMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UnitMutation) Fields() []string {
	fields := make([]string, 0, 24)
	if m.title != nil {
		fields = append(fields, unit.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, unit.FieldDescription)
	}
	if m.learner_level != nil {
		fields = append(fields, unit.FieldLearnerLevel)
	}
	if m.learning_objectives != nil {
		fields = append(fields, unit.FieldLearningObjectives)
	}
	if m.lesson_order != nil {
		fields = append(fields, unit.FieldLessonOrder)
	}
	if m.target_lesson_count != nil {
		fields = append(fields, unit.FieldTargetLessonCount)
	}
	if m.generated_from_topic != nil {
		fields = append(fields, unit.FieldGeneratedFromTopic)
	}
	if m.source_material != nil {
		fields = append(fields, unit.FieldSourceMaterial)
	}
	if m.flow_type != nil {
		fields = append(fields, unit.FieldFlowType)
	}
	if m.status != nil {
		fields = append(fields, unit.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, unit.FieldErrorMessage)
	}
	if m.creation_progress != nil {
		fields = append(fields, unit.FieldCreationProgress)
	}
	if m.user_id != nil {
		fields = append(fields, unit.FieldUserID)
	}
	if m.is_global != nil {
		fields = append(fields, unit.FieldIsGlobal)
	}
	if m.flow_run_id != nil {
		fields = append(fields, unit.FieldFlowRunID)
	}
	if m.pod_id != nil {
		fields = append(fields, unit.FieldPodID)
	}
	if m.art_image_id != nil {
		fields = append(fields, unit.FieldArtImageID)
	}
	if m.art_image_description != nil {
		fields = append(fields, unit.FieldArtImageDescription)
	}
	if m.podcast_transcript != nil {
		fields = append(fields, unit.FieldPodcastTranscript)
	}
	if m.podcast_audio_id != nil {
		fields = append(fields, unit.FieldPodcastAudioID)
	}
	if m.podcast_voice != nil {
		fields = append(fields, unit.FieldPodcastVoice)
	}
	if m.created_at != nil {
		fields = append(fields, unit.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, unit.FieldUpdatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, unit.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UnitMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case unit.FieldTitle:
		return m.Title()
	case unit.FieldDescription:
		return m.Description()
	case unit.FieldLearnerLevel:
		return m.LearnerLevel()
	case unit.FieldLearningObjectives:
		return m.LearningObjectives()
	case unit.FieldLessonOrder:
		return m.LessonOrder()
	case unit.FieldTargetLessonCount:
		return m.TargetLessonCount()
	case unit.FieldGeneratedFromTopic:
		return m.GeneratedFromTopic()
	case unit.FieldSourceMaterial:
		return m.SourceMaterial()
	case unit.FieldFlowType:
		return m.FlowType()
	case unit.FieldStatus:
		return m.Status()
	case unit.FieldErrorMessage:
		return m.ErrorMessage()
	case unit.FieldCreationProgress:
		return m.CreationProgress()
	case unit.FieldUserID:
		return m.UserID()
	case unit.FieldIsGlobal:
		return m.IsGlobal()
	case unit.FieldFlowRunID:
		return m.FlowRunID()
	case unit.FieldPodID:
		return m.PodID()
	case unit.FieldArtImageID:
		return m.ArtImageID()
	case unit.FieldArtImageDescription:
		return m.ArtImageDescription()
	case unit.FieldPodcastTranscript:
		return m.PodcastTranscript()
	case unit.FieldPodcastAudioID:
		return m.PodcastAudioID()
	case unit.FieldPodcastVoice:
		return m.PodcastVoice()
	case unit.FieldCreatedAt:
		return m.CreatedAt()
	case unit.FieldUpdatedAt:
		return m.UpdatedAt()
	case unit.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UnitMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case unit.FieldTitle:
		return m.OldTitle(ctx)
	case unit.FieldDescription:
		return m.OldDescription(ctx)
	case unit.FieldLearnerLevel:
		return m.OldLearnerLevel(ctx)
	case unit.FieldLearningObjectives:
		return m.OldLearningObjectives(ctx)
	case unit.FieldLessonOrder:
		return m.OldLessonOrder(ctx)
	case unit.FieldTargetLessonCount:
		return m.OldTargetLessonCount(ctx)
	case unit.FieldGeneratedFromTopic:
		return m.OldGeneratedFromTopic(ctx)
	case unit.FieldSourceMaterial:
		return m.OldSourceMaterial(ctx)
	case unit.FieldFlowType:
		return m.OldFlowType(ctx)
	case unit.FieldStatus:
		return m.OldStatus(ctx)
	case unit.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case unit.FieldCreationProgress:
		return m.OldCreationProgress(ctx)
	case unit.FieldUserID:
		return m.OldUserID(ctx)
	case unit.FieldIsGlobal:
		return m.OldIsGlobal(ctx)
	case unit.FieldFlowRunID:
		return m.OldFlowRunID(ctx)
	case unit.FieldPodID:
		return m.OldPodID(ctx)
	case unit.FieldArtImageID:
		return m.OldArtImageID(ctx)
	case unit.FieldArtImageDescription:
		return m.OldArtImageDescription(ctx)
	case unit.FieldPodcastTranscript:
		return m.OldPodcastTranscript(ctx)
	case unit.FieldPodcastAudioID:
		return m.OldPodcastAudioID(ctx)
	case unit.FieldPodcastVoice:
		return m.OldPodcastVoice(ctx)
	case unit.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case unit.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case unit.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Unit field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UnitMutation) SetField(name string, value ent.Value) error {
	switch name {
	case unit.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case unit.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case unit.FieldLearnerLevel:
		v, ok := value.(unit.LearnerLevel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerLevel(v)
		return nil
	case unit.FieldLearningObjectives:
		v, ok := value.([]models.LearningObjective)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearningObjectives(v)
		return nil
	case unit.FieldLessonOrder:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLessonOrder(v)
		return nil
	case unit.FieldTargetLessonCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetLessonCount(v)
		return nil
	case unit.FieldGeneratedFromTopic:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratedFromTopic(v)
		return nil
	case unit.FieldSourceMaterial:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceMaterial(v)
		return nil
	case unit.FieldFlowType:
		v, ok := value.(unit.FlowType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlowType(v)
		return nil
	case unit.FieldStatus:
		v, ok := value.(unit.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case unit.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case unit.FieldCreationProgress:
		v, ok := value.(*models.CreationProgress)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreationProgress(v)
		return nil
	case unit.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case unit.FieldIsGlobal:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsGlobal(v)
		return nil
	case unit.FieldFlowRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlowRunID(v)
		return nil
	case unit.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case unit.FieldArtImageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArtImageID(v)
		return nil
	case unit.FieldArtImageDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArtImageDescription(v)
		return nil
	case unit.FieldPodcastTranscript:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodcastTranscript(v)
		return nil
	case unit.FieldPodcastAudioID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodcastAudioID(v)
		return nil
	case unit.FieldPodcastVoice:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodcastVoice(v)
		return nil
	case unit.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case unit.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case unit.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Unit field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UnitMutation) AddedFields() []string {
	var fields []string
	if m.addtarget_lesson_count != nil {
		fields = append(fields, unit.FieldTargetLessonCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UnitMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case unit.FieldTargetLessonCount:
		return m.AddedTargetLessonCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UnitMutation) AddField(name string, value ent.Value) error {
	switch name {
	case unit.FieldTargetLessonCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTargetLessonCount(v)
		return nil
	}
	return fmt.Errorf("unknown Unit numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UnitMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(unit.FieldDescription) {
		fields = append(fields, unit.FieldDescription)
	}
	if m.FieldCleared(unit.FieldLearningObjectives) {
		fields = append(fields, unit.FieldLearningObjectives)
	}
	if m.FieldCleared(unit.FieldLessonOrder) {
		fields = append(fields, unit.FieldLessonOrder)
	}
	if m.FieldCleared(unit.FieldTargetLessonCount) {
		fields = append(fields, unit.FieldTargetLessonCount)
	}
	if m.FieldCleared(unit.FieldSourceMaterial) {
		fields = append(fields, unit.FieldSourceMaterial)
	}
	if m.FieldCleared(unit.FieldErrorMessage) {
		fields = append(fields, unit.FieldErrorMessage)
	}
	if m.FieldCleared(unit.FieldCreationProgress) {
		fields = append(fields, unit.FieldCreationProgress)
	}
	if m.FieldCleared(unit.FieldUserID) {
		fields = append(fields, unit.FieldUserID)
	}
	if m.FieldCleared(unit.FieldFlowRunID) {
		fields = append(fields, unit.FieldFlowRunID)
	}
	if m.FieldCleared(unit.FieldPodID) {
		fields = append(fields, unit.FieldPodID)
	}
	if m.FieldCleared(unit.FieldArtImageID) {
		fields = append(fields, unit.FieldArtImageID)
	}
	if m.FieldCleared(unit.FieldArtImageDescription) {
		fields = append(fields, unit.FieldArtImageDescription)
	}
	if m.FieldCleared(unit.FieldPodcastTranscript) {
		fields = append(fields, unit.FieldPodcastTranscript)
	}
	if m.FieldCleared(unit.FieldPodcastAudioID) {
		fields = append(fields, unit.FieldPodcastAudioID)
	}
	if m.FieldCleared(unit.FieldPodcastVoice) {
		fields = append(fields, unit.FieldPodcastVoice)
	}
	if m.FieldCleared(unit.FieldCompletedAt) {
		fields = append(fields, unit.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UnitMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UnitMutation) ClearField(name string) error {
	switch name {
	case unit.FieldDescription:
		m.ClearDescription()
		return nil
	case unit.FieldLearningObjectives:
		m.ClearLearningObjectives()
		return nil
	case unit.FieldLessonOrder:
		m.ClearLessonOrder()
		return nil
	case unit.FieldTargetLessonCount:
		m.ClearTargetLessonCount()
		return nil
	case unit.FieldSourceMaterial:
		m.ClearSourceMaterial()
		return nil
	case unit.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case unit.FieldCreationProgress:
		m.ClearCreationProgress()
		return nil
	case unit.FieldUserID:
		m.ClearUserID()
		return nil
	case unit.FieldFlowRunID:
		m.ClearFlowRunID()
		return nil
	case unit.FieldPodID:
		m.ClearPodID()
		return nil
	case unit.FieldArtImageID:
		m.ClearArtImageID()
		return nil
	case unit.FieldArtImageDescription:
		m.ClearArtImageDescription()
		return nil
	case unit.FieldPodcastTranscript:
		m.ClearPodcastTranscript()
		return nil
	case unit.FieldPodcastAudioID:
		m.ClearPodcastAudioID()
		return nil
	case unit.FieldPodcastVoice:
		m.ClearPodcastVoice()
		return nil
	case unit.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Unit nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UnitMutation) ResetField(name string) error {
	switch name {
	case unit.FieldTitle:
		m.ResetTitle()
		return nil
	case unit.FieldDescription:
		m.ResetDescription()
		return nil
	case unit.FieldLearnerLevel:
		m.ResetLearnerLevel()
		return nil
	case unit.FieldLearningObjectives:
		m.ResetLearningObjectives()
		return nil
	case unit.FieldLessonOrder:
		m.ResetLessonOrder()
		return nil
	case unit.FieldTargetLessonCount:
		m.ResetTargetLessonCount()
		return nil
	case unit.FieldGeneratedFromTopic:
		m.ResetGeneratedFromTopic()
		return nil
	case unit.FieldSourceMaterial:
		m.ResetSourceMaterial()
		return nil
	case unit.FieldFlowType:
		m.ResetFlowType()
		return nil
	case unit.FieldStatus:
		m.ResetStatus()
		return nil
	case unit.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case unit.FieldCreationProgress:
		m.ResetCreationProgress()
		return nil
	case unit.FieldUserID:
		m.ResetUserID()
		return nil
	case unit.FieldIsGlobal:
		m.ResetIsGlobal()
		return nil
	case unit.FieldFlowRunID:
		m.ResetFlowRunID()
		return nil
	case unit.FieldPodID:
		m.ResetPodID()
		return nil
	case unit.FieldArtImageID:
		m.ResetArtImageID()
		return nil
	case unit.FieldArtImageDescription:
		m.ResetArtImageDescription()
		return nil
	case unit.FieldPodcastTranscript:
		m.ResetPodcastTranscript()
		return nil
	case unit.FieldPodcastAudioID:
		m.ResetPodcastAudioID()
		return nil
	case unit.FieldPodcastVoice:
		m.ResetPodcastVoice()
		return nil
	case unit.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case unit.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case unit.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Unit field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UnitMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.lessons != nil {
		edges = append(edges, unit.EdgeLessons)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UnitMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case unit.EdgeLessons:
		ids := make([]ent.Value, 0, len(m.lessons))
		for id := range m.lessons {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UnitMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedlessons != nil {
		edges = append(edges, unit.EdgeLessons)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UnitMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case unit.EdgeLessons:
		ids := make([]ent.Value, 0, len(m.removedlessons))
		for id := range m.removedlessons {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UnitMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedlessons {
		edges = append(edges, unit.EdgeLessons)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UnitMutation) EdgeCleared(name string) bool {
	switch name {
	case unit.EdgeLessons:
		return m.clearedlessons
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UnitMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Unit unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UnitMutation) ResetEdge(name string) error {
	switch name {
	case unit.EdgeLessons:
		m.ResetLessons()
		return nil
	}
	return fmt.Errorf("unknown Unit edge %s", name)
}
