package services

import (
	"context"
	"fmt"
	"time"

	"github.com/brianfields/deeplearn-sub002/ent"
	"github.com/brianfields/deeplearn-sub002/pkg/content"
	"github.com/google/uuid"
)

// AssetService records media asset rows. The blobs themselves live in the
// object store; these rows keep the key and enough metadata to serve them.
type AssetService struct {
	client *ent.Client
}

// AssetService persists media asset rows for the content orchestrator.
var _ content.AssetStore = (*AssetService)(nil)

// NewAssetService creates a new AssetService
func NewAssetService(client *ent.Client) *AssetService {
	return &AssetService{client: client}
}

// CreateImageAsset records a stored image blob and returns its id.
func (s *AssetService) CreateImageAsset(ctx context.Context, rec content.ImageAssetRecord) (string, error) {
	if rec.S3Key == "" {
		return "", NewValidationError("s3_key", "required")
	}
	if rec.Bucket == "" {
		return "", NewValidationError("bucket", "required")
	}

	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	create := s.client.ImageAsset.Create().
		SetID(uuid.New().String()).
		SetS3Key(rec.S3Key).
		SetBucket(rec.Bucket).
		SetFileSize(rec.FileSize)
	if rec.UserID != "" {
		create = create.SetUserID(rec.UserID)
	}
	if rec.ContentType != "" {
		create = create.SetContentType(rec.ContentType)
	}
	if rec.Width > 0 {
		create = create.SetWidth(rec.Width)
	}
	if rec.Height > 0 {
		create = create.SetHeight(rec.Height)
	}
	if rec.AltText != "" {
		create = create.SetAltText(rec.AltText)
	}
	if rec.Prompt != "" {
		create = create.SetPrompt(rec.Prompt)
	}

	row, err := create.Save(writeCtx)
	if err != nil {
		return "", fmt.Errorf("failed to create image asset: %w", err)
	}
	return row.ID, nil
}

// CreateAudioAsset records a stored audio blob and returns its id.
func (s *AssetService) CreateAudioAsset(ctx context.Context, rec content.AudioAssetRecord) (string, error) {
	if rec.S3Key == "" {
		return "", NewValidationError("s3_key", "required")
	}
	if rec.Bucket == "" {
		return "", NewValidationError("bucket", "required")
	}

	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	create := s.client.AudioAsset.Create().
		SetID(uuid.New().String()).
		SetS3Key(rec.S3Key).
		SetBucket(rec.Bucket).
		SetFileSize(rec.FileSize)
	if rec.UserID != "" {
		create = create.SetUserID(rec.UserID)
	}
	if rec.ContentType != "" {
		create = create.SetContentType(rec.ContentType)
	}
	if rec.DurationSeconds > 0 {
		create = create.SetDurationSeconds(rec.DurationSeconds)
	}
	if rec.Transcript != "" {
		create = create.SetTranscript(rec.Transcript)
	}
	if rec.Voice != "" {
		create = create.SetVoice(rec.Voice)
	}

	row, err := create.Save(writeCtx)
	if err != nil {
		return "", fmt.Errorf("failed to create audio asset: %w", err)
	}
	return row.ID, nil
}
