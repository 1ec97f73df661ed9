// Code generated by ent, DO NOT EDIT.

package audioasset

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/brianfields/deeplearn-sub002/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEQ(FieldUserID, v))
}

// S3Key applies equality check predicate on the "s3_key" field. It's identical to S3KeyEQ.
func S3Key(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEQ(FieldS3Key, v))
}

// Bucket applies equality check predicate on the "bucket" field. It's identical to BucketEQ.
func Bucket(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEQ(FieldBucket, v))
}

// ContentType applies equality check predicate on the "content_type" field. It's identical to ContentTypeEQ.
func ContentType(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEQ(FieldContentType, v))
}

// FileSize applies equality check predicate on the "file_size" field. It's identical to FileSizeEQ.
func FileSize(v int64) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEQ(FieldFileSize, v))
}

// DurationSeconds applies equality check predicate on the "duration_seconds" field. It's identical to DurationSecondsEQ.
func DurationSeconds(v float64) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEQ(FieldDurationSeconds, v))
}

// Transcript applies equality check predicate on the "transcript" field. It's identical to TranscriptEQ.
func Transcript(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEQ(FieldTranscript, v))
}

// Voice applies equality check predicate on the "voice" field. It's identical to VoiceEQ.
func Voice(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEQ(FieldVoice, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldContainsFold(FieldUserID, v))
}

// S3KeyEQ applies the EQ predicate on the "s3_key" field.
func S3KeyEQ(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEQ(FieldS3Key, v))
}

// S3KeyNEQ applies the NEQ predicate on the "s3_key" field.
func S3KeyNEQ(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldNEQ(FieldS3Key, v))
}

// S3KeyIn applies the In predicate on the "s3_key" field.
func S3KeyIn(vs ...string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldIn(FieldS3Key, vs...))
}

// S3KeyNotIn applies the NotIn predicate on the "s3_key" field.
func S3KeyNotIn(vs ...string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldNotIn(FieldS3Key, vs...))
}

// S3KeyGT applies the GT predicate on the "s3_key" field.
func S3KeyGT(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldGT(FieldS3Key, v))
}

// S3KeyGTE applies the GTE predicate on the "s3_key" field.
func S3KeyGTE(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldGTE(FieldS3Key, v))
}

// S3KeyLT applies the LT predicate on the "s3_key" field.
func S3KeyLT(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldLT(FieldS3Key, v))
}

// S3KeyLTE applies the LTE predicate on the "s3_key" field.
func S3KeyLTE(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldLTE(FieldS3Key, v))
}

// S3KeyContains applies the Contains predicate on the "s3_key" field.
func S3KeyContains(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldContains(FieldS3Key, v))
}

// S3KeyHasPrefix applies the HasPrefix predicate on the "s3_key" field.
func S3KeyHasPrefix(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldHasPrefix(FieldS3Key, v))
}

// S3KeyHasSuffix applies the HasSuffix predicate on the "s3_key" field.
func S3KeyHasSuffix(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldHasSuffix(FieldS3Key, v))
}

// S3KeyEqualFold applies the EqualFold predicate on the "s3_key" field.
func S3KeyEqualFold(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEqualFold(FieldS3Key, v))
}

// S3KeyContainsFold applies the ContainsFold predicate on the "s3_key" field.
func S3KeyContainsFold(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldContainsFold(FieldS3Key, v))
}

// BucketEQ applies the EQ predicate on the "bucket" field.
func BucketEQ(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEQ(FieldBucket, v))
}

// BucketNEQ applies the NEQ predicate on the "bucket" field.
func BucketNEQ(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldNEQ(FieldBucket, v))
}

// BucketIn applies the In predicate on the "bucket" field.
func BucketIn(vs ...string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldIn(FieldBucket, vs...))
}

// BucketNotIn applies the NotIn predicate on the "bucket" field.
func BucketNotIn(vs ...string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldNotIn(FieldBucket, vs...))
}

// BucketGT applies the GT predicate on the "bucket" field.
func BucketGT(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldGT(FieldBucket, v))
}

// BucketGTE applies the GTE predicate on the "bucket" field.
func BucketGTE(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldGTE(FieldBucket, v))
}

// BucketLT applies the LT predicate on the "bucket" field.
func BucketLT(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldLT(FieldBucket, v))
}

// BucketLTE applies the LTE predicate on the "bucket" field.
func BucketLTE(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldLTE(FieldBucket, v))
}

// BucketContains applies the Contains predicate on the "bucket" field.
func BucketContains(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldContains(FieldBucket, v))
}

// BucketHasPrefix applies the HasPrefix predicate on the "bucket" field.
func BucketHasPrefix(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldHasPrefix(FieldBucket, v))
}

// BucketHasSuffix applies the HasSuffix predicate on the "bucket" field.
func BucketHasSuffix(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldHasSuffix(FieldBucket, v))
}

// BucketEqualFold applies the EqualFold predicate on the "bucket" field.
func BucketEqualFold(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEqualFold(FieldBucket, v))
}

// BucketContainsFold applies the ContainsFold predicate on the "bucket" field.
func BucketContainsFold(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldContainsFold(FieldBucket, v))
}

// ContentTypeEQ applies the EQ predicate on the "content_type" field.
func ContentTypeEQ(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEQ(FieldContentType, v))
}

// ContentTypeNEQ applies the NEQ predicate on the "content_type" field.
func ContentTypeNEQ(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldNEQ(FieldContentType, v))
}

// ContentTypeIn applies the In predicate on the "content_type" field.
func ContentTypeIn(vs ...string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldIn(FieldContentType, vs...))
}

// ContentTypeNotIn applies the NotIn predicate on the "content_type" field.
func ContentTypeNotIn(vs ...string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldNotIn(FieldContentType, vs...))
}

// ContentTypeGT applies the GT predicate on the "content_type" field.
func ContentTypeGT(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldGT(FieldContentType, v))
}

// ContentTypeGTE applies the GTE predicate on the "content_type" field.
func ContentTypeGTE(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldGTE(FieldContentType, v))
}

// ContentTypeLT applies the LT predicate on the "content_type" field.
func ContentTypeLT(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldLT(FieldContentType, v))
}

// ContentTypeLTE applies the LTE predicate on the "content_type" field.
func ContentTypeLTE(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldLTE(FieldContentType, v))
}

// ContentTypeContains applies the Contains predicate on the "content_type" field.
func ContentTypeContains(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldContains(FieldContentType, v))
}

// ContentTypeHasPrefix applies the HasPrefix predicate on the "content_type" field.
func ContentTypeHasPrefix(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldHasPrefix(FieldContentType, v))
}

// ContentTypeHasSuffix applies the HasSuffix predicate on the "content_type" field.
func ContentTypeHasSuffix(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldHasSuffix(FieldContentType, v))
}

// ContentTypeEqualFold applies the EqualFold predicate on the "content_type" field.
func ContentTypeEqualFold(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEqualFold(FieldContentType, v))
}

// ContentTypeContainsFold applies the ContainsFold predicate on the "content_type" field.
func ContentTypeContainsFold(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldContainsFold(FieldContentType, v))
}

// FileSizeEQ applies the EQ predicate on the "file_size" field.
func FileSizeEQ(v int64) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEQ(FieldFileSize, v))
}

// FileSizeNEQ applies the NEQ predicate on the "file_size" field.
func FileSizeNEQ(v int64) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldNEQ(FieldFileSize, v))
}

// FileSizeIn applies the In predicate on the "file_size" field.
func FileSizeIn(vs ...int64) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldIn(FieldFileSize, vs...))
}

// FileSizeNotIn applies the NotIn predicate on the "file_size" field.
func FileSizeNotIn(vs ...int64) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldNotIn(FieldFileSize, vs...))
}

// FileSizeGT applies the GT predicate on the "file_size" field.
func FileSizeGT(v int64) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldGT(FieldFileSize, v))
}

// FileSizeGTE applies the GTE predicate on the "file_size" field.
func FileSizeGTE(v int64) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldGTE(FieldFileSize, v))
}

// FileSizeLT applies the LT predicate on the "file_size" field.
func FileSizeLT(v int64) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldLT(FieldFileSize, v))
}

// FileSizeLTE applies the LTE predicate on the "file_size" field.
func FileSizeLTE(v int64) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldLTE(FieldFileSize, v))
}

// DurationSecondsEQ applies the EQ predicate on the "duration_seconds" field.
func DurationSecondsEQ(v float64) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEQ(FieldDurationSeconds, v))
}

// DurationSecondsNEQ applies the NEQ predicate on the "duration_seconds" field.
func DurationSecondsNEQ(v float64) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldNEQ(FieldDurationSeconds, v))
}

// DurationSecondsIn applies the In predicate on the "duration_seconds" field.
func DurationSecondsIn(vs ...float64) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldIn(FieldDurationSeconds, vs...))
}

// DurationSecondsNotIn applies the NotIn predicate on the "duration_seconds" field.
func DurationSecondsNotIn(vs ...float64) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldNotIn(FieldDurationSeconds, vs...))
}

// DurationSecondsGT applies the GT predicate on the "duration_seconds" field.
func DurationSecondsGT(v float64) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldGT(FieldDurationSeconds, v))
}

// DurationSecondsGTE applies the GTE predicate on the "duration_seconds" field.
func DurationSecondsGTE(v float64) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldGTE(FieldDurationSeconds, v))
}

// DurationSecondsLT applies the LT predicate on the "duration_seconds" field.
func DurationSecondsLT(v float64) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldLT(FieldDurationSeconds, v))
}

// DurationSecondsLTE applies the LTE predicate on the "duration_seconds" field.
func DurationSecondsLTE(v float64) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldLTE(FieldDurationSeconds, v))
}

// DurationSecondsIsNil applies the IsNil predicate on the "duration_seconds" field.
func DurationSecondsIsNil() predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldIsNull(FieldDurationSeconds))
}

// DurationSecondsNotNil applies the NotNil predicate on the "duration_seconds" field.
func DurationSecondsNotNil() predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldNotNull(FieldDurationSeconds))
}

// TranscriptEQ applies the EQ predicate on the "transcript" field.
func TranscriptEQ(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEQ(FieldTranscript, v))
}

// TranscriptNEQ applies the NEQ predicate on the "transcript" field.
func TranscriptNEQ(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldNEQ(FieldTranscript, v))
}

// TranscriptIn applies the In predicate on the "transcript" field.
func TranscriptIn(vs ...string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldIn(FieldTranscript, vs...))
}

// TranscriptNotIn applies the NotIn predicate on the "transcript" field.
func TranscriptNotIn(vs ...string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldNotIn(FieldTranscript, vs...))
}

// TranscriptGT applies the GT predicate on the "transcript" field.
func TranscriptGT(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldGT(FieldTranscript, v))
}

// TranscriptGTE applies the GTE predicate on the "transcript" field.
func TranscriptGTE(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldGTE(FieldTranscript, v))
}

// TranscriptLT applies the LT predicate on the "transcript" field.
func TranscriptLT(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldLT(FieldTranscript, v))
}

// TranscriptLTE applies the LTE predicate on the "transcript" field.
func TranscriptLTE(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldLTE(FieldTranscript, v))
}

// TranscriptContains applies the Contains predicate on the "transcript" field.
func TranscriptContains(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldContains(FieldTranscript, v))
}

// TranscriptHasPrefix applies the HasPrefix predicate on the "transcript" field.
func TranscriptHasPrefix(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldHasPrefix(FieldTranscript, v))
}

// TranscriptHasSuffix applies the HasSuffix predicate on the "transcript" field.
func TranscriptHasSuffix(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldHasSuffix(FieldTranscript, v))
}

// TranscriptIsNil applies the IsNil predicate on the "transcript" field.
func TranscriptIsNil() predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldIsNull(FieldTranscript))
}

// TranscriptNotNil applies the NotNil predicate on the "transcript" field.
func TranscriptNotNil() predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldNotNull(FieldTranscript))
}

// TranscriptEqualFold applies the EqualFold predicate on the "transcript" field.
func TranscriptEqualFold(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEqualFold(FieldTranscript, v))
}

// TranscriptContainsFold applies the ContainsFold predicate on the "transcript" field.
func TranscriptContainsFold(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldContainsFold(FieldTranscript, v))
}

// VoiceEQ applies the EQ predicate on the "voice" field.
func VoiceEQ(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEQ(FieldVoice, v))
}

// VoiceNEQ applies the NEQ predicate on the "voice" field.
func VoiceNEQ(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldNEQ(FieldVoice, v))
}

// VoiceIn applies the In predicate on the "voice" field.
func VoiceIn(vs ...string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldIn(FieldVoice, vs...))
}

// VoiceNotIn applies the NotIn predicate on the "voice" field.
func VoiceNotIn(vs ...string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldNotIn(FieldVoice, vs...))
}

// VoiceGT applies the GT predicate on the "voice" field.
func VoiceGT(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldGT(FieldVoice, v))
}

// VoiceGTE applies the GTE predicate on the "voice" field.
func VoiceGTE(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldGTE(FieldVoice, v))
}

// VoiceLT applies the LT predicate on the "voice" field.
func VoiceLT(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldLT(FieldVoice, v))
}

// VoiceLTE applies the LTE predicate on the "voice" field.
func VoiceLTE(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldLTE(FieldVoice, v))
}

// VoiceContains applies the Contains predicate on the "voice" field.
func VoiceContains(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldContains(FieldVoice, v))
}

// VoiceHasPrefix applies the HasPrefix predicate on the "voice" field.
func VoiceHasPrefix(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldHasPrefix(FieldVoice, v))
}

// VoiceHasSuffix applies the HasSuffix predicate on the "voice" field.
func VoiceHasSuffix(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldHasSuffix(FieldVoice, v))
}

// VoiceIsNil applies the IsNil predicate on the "voice" field.
func VoiceIsNil() predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldIsNull(FieldVoice))
}

// VoiceNotNil applies the NotNil predicate on the "voice" field.
func VoiceNotNil() predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldNotNull(FieldVoice))
}

// VoiceEqualFold applies the EqualFold predicate on the "voice" field.
func VoiceEqualFold(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEqualFold(FieldVoice, v))
}

// VoiceContainsFold applies the ContainsFold predicate on the "voice" field.
func VoiceContainsFold(v string) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldContainsFold(FieldVoice, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AudioAsset {
	return predicate.AudioAsset(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AudioAsset) predicate.AudioAsset {
	return predicate.AudioAsset(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AudioAsset) predicate.AudioAsset {
	return predicate.AudioAsset(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AudioAsset) predicate.AudioAsset {
	return predicate.AudioAsset(sql.NotPredicates(p))
}
