// Package objectstore stores generated media blobs. The database keeps only
// keys and metadata; the bytes live behind this interface.
package objectstore

import (
	"context"
	"fmt"
)

// Object describes a stored blob.
type Object struct {
	Bucket      string
	Key         string
	ContentType string
	Size        int64
}

// Store is the blob storage the content orchestrator writes media to.
type Store interface {
	// Put stores data under key, overwriting any previous object.
	Put(ctx context.Context, key, contentType string, data []byte) (*Object, error)
}

// UnitArtKey returns the object key for a unit's cover art.
func UnitArtKey(unitID string) string {
	return fmt.Sprintf("units/%s/art.png", unitID)
}

// UnitPodcastKey returns the object key for a unit's podcast audio.
func UnitPodcastKey(unitID string) string {
	return fmt.Sprintf("units/%s/podcast.mp3", unitID)
}

// LessonPodcastKey returns the object key for a lesson's podcast audio.
func LessonPodcastKey(lessonID string) string {
	return fmt.Sprintf("lessons/%s/podcast.mp3", lessonID)
}
