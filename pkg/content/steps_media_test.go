package content

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brianfields/deeplearn-sub002/pkg/flow"
	"github.com/brianfields/deeplearn-sub002/pkg/objectstore"
)

func mediaFlowContext() *flow.Context {
	return flow.NewContext(map[string]any{
		KeyUnitID:       "unit-1",
		KeyUnitTitle:    "Intro to Gradient Descent",
		KeyUnitSummary:  "A friendly tour of how models learn.",
		KeyLessonTitles: []string{"The Loss Landscape", "Stepping Downhill"},
	})
}

func TestGenerateUnitArtDescriptionStep(t *testing.T) {
	desc := &ArtDescription{
		Prompt:  "Abstract rolling hills with a glowing descent path",
		AltText: "Stylized hills with a path winding to the lowest valley",
		Palette: []string{"deep blue", "amber"},
	}
	gw := &stubGateway{structured: []string{mustJSON(t, desc)}}
	step := &generateUnitArtDescriptionStep{prompts: NewPromptBuilder()}

	fc := mediaFlowContext()
	in := bindAndValidate(t, step, fc)

	result, err := step.Execute(context.Background(), newStepContext(gw, nil), in)
	require.NoError(t, err)
	require.NoError(t, result.Outputs.Validate())

	got := result.Writes[KeyArtDescription].(*ArtDescription)
	assert.Equal(t, desc.Prompt, got.Prompt)
	assert.Equal(t, desc.AltText, got.AltText)
}

func TestGenerateUnitArtImageStep(t *testing.T) {
	gw := &stubGateway{}
	assets := &fakeAssets{}
	objects := objectstore.NewMemory("test-bucket")
	step := &generateUnitArtImageStep{assets: assets, imageModel: "gpt-image-test"}

	fc := mediaFlowContext()
	fc.Set(KeyArtDescription, &ArtDescription{
		Prompt:  "Abstract rolling hills",
		AltText: "Stylized hills",
	})
	in := bindAndValidate(t, step, fc)

	result, err := step.Execute(context.Background(), newStepContext(gw, objects), in)
	require.NoError(t, err)

	outputs := result.Outputs.(*ArtImageOutputs)
	assert.Equal(t, "img-1", outputs.ImageID)
	assert.Equal(t, "units/unit-1/art.png", outputs.ObjectKey)
	assert.Equal(t, "img-1", result.Writes[KeyArtImageID])
	assert.Equal(t, "Stylized hills", result.Writes[KeyArtAltText])

	require.Len(t, gw.imageRequests, 1)
	assert.Equal(t, "gpt-image-test", gw.imageRequests[0].Model)
	assert.Equal(t, "Abstract rolling hills", gw.imageRequests[0].Prompt)

	require.Len(t, assets.images, 1)
	rec := assets.images[0]
	assert.Equal(t, "test-bucket", rec.Bucket)
	assert.Equal(t, "units/unit-1/art.png", rec.S3Key)
	assert.Equal(t, "image/png", rec.ContentType)
	assert.Equal(t, int64(len("png bytes")), rec.FileSize)
	assert.Equal(t, 1024, rec.Width)
	assert.Equal(t, "Stylized hills", rec.AltText)
	assert.Equal(t, "user-1", rec.UserID)
}

func TestGenerateUnitArtImageStep_NoObjectStore(t *testing.T) {
	step := &generateUnitArtImageStep{assets: &fakeAssets{}, imageModel: "gpt-image-test"}

	fc := mediaFlowContext()
	fc.Set(KeyArtDescription, &ArtDescription{Prompt: "Hills", AltText: "Hills"})
	in := bindAndValidate(t, step, fc)

	_, err := step.Execute(context.Background(), newStepContext(&stubGateway{}, nil), in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "object store")
}

func TestGeneratePodcastTranscriptStep(t *testing.T) {
	gw := &stubGateway{text: []string{"HOST A: Welcome back.\nHOST B: Today, gradient descent."}}
	step := &generatePodcastTranscriptStep{prompts: NewPromptBuilder()}

	fc := mediaFlowContext()
	in := bindAndValidate(t, step, fc)

	result, err := step.Execute(context.Background(), newStepContext(gw, nil), in)
	require.NoError(t, err)
	require.NoError(t, result.Outputs.Validate())
	assert.Equal(t, "HOST A: Welcome back.\nHOST B: Today, gradient descent.", result.Writes[KeyTranscript])

	// Lesson titles ride along in the prompt when present.
	require.Len(t, gw.requests, 1)
	assert.Contains(t, gw.requests[0].Messages[1].Content, "The Loss Landscape")
}

func TestGeneratePodcastAudioStep(t *testing.T) {
	gw := &stubGateway{}
	assets := &fakeAssets{}
	objects := objectstore.NewMemory("test-bucket")
	step := &generatePodcastAudioStep{assets: assets, audioModel: "tts-test", voice: "alloy"}

	fc := mediaFlowContext()
	fc.Set(KeyTranscript, "HOST A: Welcome back.")
	in := bindAndValidate(t, step, fc)

	result, err := step.Execute(context.Background(), newStepContext(gw, objects), in)
	require.NoError(t, err)

	outputs := result.Outputs.(*PodcastAudioOutputs)
	assert.Equal(t, "aud-1", outputs.AudioID)
	assert.Equal(t, "units/unit-1/podcast.mp3", outputs.ObjectKey)
	assert.InDelta(t, 93.5, outputs.DurationSeconds, 1e-9)
	assert.Equal(t, "aud-1", result.Writes[KeyAudioID])

	require.Len(t, gw.audioRequests, 1)
	assert.Equal(t, "tts-test", gw.audioRequests[0].Model)
	assert.Equal(t, "alloy", gw.audioRequests[0].Voice)

	require.Len(t, assets.audio, 1)
	rec := assets.audio[0]
	assert.Equal(t, "units/unit-1/podcast.mp3", rec.S3Key)
	assert.Equal(t, "audio/mpeg", rec.ContentType)
	assert.Equal(t, "HOST A: Welcome back.", rec.Transcript)
	assert.Equal(t, "alloy", rec.Voice)
}
