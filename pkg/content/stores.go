package content

import (
	"context"

	"github.com/brianfields/deeplearn-sub002/pkg/models"
)

// The orchestrator persists through these narrow interfaces. The ent-backed
// services implement them; tests use in-memory fakes.

// UnitMetadata is the extracted unit metadata persisted once the
// unit_creation flow completes.
type UnitMetadata struct {
	Title              string
	Description        string
	LearningObjectives []models.LearningObjective

	// SourceMaterial is the teaching text the lessons were planned from,
	// including generated text for topic-only submissions.
	SourceMaterial string
}

// LessonRecord is a validated lesson package ready to persist.
type LessonRecord struct {
	UnitID         string
	Title          string
	LearnerLevel   string
	SourceMaterial string
	Package        *models.LessonPackage
	FlowRunID      string
}

// ImageAssetRecord describes a stored image blob.
type ImageAssetRecord struct {
	UserID      string
	S3Key       string
	Bucket      string
	ContentType string
	FileSize    int64
	Width       int
	Height      int
	AltText     string
	Prompt      string
}

// AudioAssetRecord describes a stored audio blob.
type AudioAssetRecord struct {
	UserID          string
	S3Key           string
	Bucket          string
	ContentType     string
	FileSize        int64
	DurationSeconds float64
	Transcript      string
	Voice           string
}

// UnitStore persists unit mutations made while a unit is being created.
type UnitStore interface {
	SaveUnitMetadata(ctx context.Context, unitID string, meta UnitMetadata) error
	UpdateCreationProgress(ctx context.Context, unitID string, progress *models.CreationProgress) error
	SetLessonOrder(ctx context.Context, unitID string, lessonIDs []string) error
	AttachUnitArt(ctx context.Context, unitID, imageID, description string) error
	AttachUnitPodcast(ctx context.Context, unitID, audioID, transcript, voice string) error
}

// LessonStore persists completed lessons. CreateLesson must reject packages
// that fail validation; an invalid package is never written.
type LessonStore interface {
	CreateLesson(ctx context.Context, rec LessonRecord) (string, error)
}

// AssetStore persists media asset rows whose blobs live in the object store.
type AssetStore interface {
	CreateImageAsset(ctx context.Context, rec ImageAssetRecord) (string, error)
	CreateAudioAsset(ctx context.Context, rec AudioAssetRecord) (string, error)
}
