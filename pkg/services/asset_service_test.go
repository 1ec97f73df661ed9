package services

import (
	"context"
	"testing"

	"github.com/brianfields/deeplearn-sub002/pkg/content"
	testdb "github.com/brianfields/deeplearn-sub002/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetService_CreateImageAsset(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAssetService(client.Client)
	ctx := context.Background()

	t.Run("records a stored image", func(t *testing.T) {
		id, err := svc.CreateImageAsset(ctx, content.ImageAssetRecord{
			UserID:      "user-1",
			S3Key:       "units/u-1/art.png",
			Bucket:      "deeplearn-media",
			ContentType: "image/png",
			FileSize:    20480,
			Width:       1024,
			Height:      1024,
			AltText:     "Stylized gopher reading a book",
			Prompt:      "A stylized gopher reading a book, flat colors",
		})
		require.NoError(t, err)

		row, err := client.Client.ImageAsset.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "units/u-1/art.png", row.S3Key)
		assert.Equal(t, "deeplearn-media", row.Bucket)
		require.NotNil(t, row.Width)
		assert.Equal(t, 1024, *row.Width)
		require.NotNil(t, row.AltText)
	})

	t.Run("requires key and bucket", func(t *testing.T) {
		_, err := svc.CreateImageAsset(ctx, content.ImageAssetRecord{Bucket: "b"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		_, err = svc.CreateImageAsset(ctx, content.ImageAssetRecord{S3Key: "k"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestAssetService_CreateAudioAsset(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAssetService(client.Client)
	ctx := context.Background()

	t.Run("records stored audio", func(t *testing.T) {
		id, err := svc.CreateAudioAsset(ctx, content.AudioAssetRecord{
			S3Key:           "units/u-1/podcast.mp3",
			Bucket:          "deeplearn-media",
			ContentType:     "audio/mpeg",
			FileSize:        1 << 20,
			DurationSeconds: 182.4,
			Transcript:      "Welcome to this unit on Go...",
			Voice:           "alloy",
		})
		require.NoError(t, err)

		row, err := client.Client.AudioAsset.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "units/u-1/podcast.mp3", row.S3Key)
		require.NotNil(t, row.DurationSeconds)
		assert.InDelta(t, 182.4, *row.DurationSeconds, 1e-9)
		require.NotNil(t, row.Voice)
		assert.Equal(t, "alloy", *row.Voice)
	})

	t.Run("requires key and bucket", func(t *testing.T) {
		_, err := svc.CreateAudioAsset(ctx, content.AudioAssetRecord{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}
