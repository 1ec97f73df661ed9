package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/brianfields/deeplearn-sub002/pkg/flow"
	"github.com/brianfields/deeplearn-sub002/pkg/llm"
	"github.com/brianfields/deeplearn-sub002/pkg/objectstore"
)

// generateUnitArtDescriptionStep designs the unit's cover art: the image
// prompt plus the alt text stored with the asset.
type generateUnitArtDescriptionStep struct {
	prompts *PromptBuilder
}

type artDescriptionInputs struct {
	UnitTitle   string `json:"unit_title"`
	UnitSummary string `json:"unit_summary"`
}

func (in *artDescriptionInputs) Validate() error {
	if in.UnitTitle == "" {
		return fmt.Errorf("unit_title is required")
	}
	if in.UnitSummary == "" {
		return fmt.Errorf("unit_summary is required")
	}
	return nil
}

func (s *generateUnitArtDescriptionStep) Name() string { return "generate_unit_art_description" }

func (s *generateUnitArtDescriptionStep) BindInputs(fc *flow.Context) (flow.Inputs, error) {
	in := &artDescriptionInputs{}
	var err error
	if in.UnitTitle, err = contextValue[string](fc, KeyUnitTitle); err != nil {
		return nil, err
	}
	if in.UnitSummary, err = contextValue[string](fc, KeyUnitSummary); err != nil {
		return nil, err
	}
	return in, nil
}

func (s *generateUnitArtDescriptionStep) Execute(ctx context.Context, sc *flow.StepContext, in flow.Inputs) (*flow.StepResult, error) {
	inputs := in.(*artDescriptionInputs)

	desc := &ArtDescription{}
	_, err := sc.LLM.GenerateStructured(ctx, llm.Request{
		Messages:    s.prompts.BuildArtDescriptionMessages(inputs.UnitTitle, inputs.UnitSummary),
		Temperature: temperature(tempCreative),
		Scope:       sc.Scope(),
	}, artDescriptionSchema, desc)
	if err != nil {
		return nil, err
	}

	return &flow.StepResult{
		Outputs: desc,
		Writes:  map[string]any{KeyArtDescription: desc},
	}, nil
}

// generateUnitArtImageStep renders the cover art, stores the blob, and
// records the image asset row.
type generateUnitArtImageStep struct {
	assets     AssetStore
	imageModel string
}

type artImageInputs struct {
	UnitID      string          `json:"unit_id"`
	Description *ArtDescription `json:"description"`
}

func (in *artImageInputs) Validate() error {
	if in.UnitID == "" {
		return fmt.Errorf("unit_id is required")
	}
	if in.Description == nil {
		return fmt.Errorf("art description is required")
	}
	return in.Description.Validate()
}

// ArtImageOutputs records the stored cover art asset.
type ArtImageOutputs struct {
	ImageID     string `json:"image_id"`
	ObjectKey   string `json:"object_key"`
	ContentType string `json:"content_type,omitempty"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	AltText     string `json:"alt_text"`
}

func (o *ArtImageOutputs) Validate() error {
	if o.ImageID == "" {
		return fmt.Errorf("image_id is empty")
	}
	return nil
}

func (s *generateUnitArtImageStep) Name() string { return "generate_unit_art_image" }

func (s *generateUnitArtImageStep) BindInputs(fc *flow.Context) (flow.Inputs, error) {
	in := &artImageInputs{}
	var err error
	if in.UnitID, err = contextValue[string](fc, KeyUnitID); err != nil {
		return nil, err
	}
	if in.Description, err = contextValue[*ArtDescription](fc, KeyArtDescription); err != nil {
		return nil, err
	}
	return in, nil
}

func (s *generateUnitArtImageStep) Execute(ctx context.Context, sc *flow.StepContext, in flow.Inputs) (*flow.StepResult, error) {
	inputs := in.(*artImageInputs)
	if sc.Objects == nil {
		return nil, fmt.Errorf("object store is not configured")
	}

	img, err := sc.LLM.GenerateImage(ctx, llm.ImageRequest{
		Prompt: inputs.Description.Prompt,
		Model:  s.imageModel,
		Scope:  sc.Scope(),
	})
	if err != nil {
		return nil, err
	}

	obj, err := sc.Objects.Put(ctx, objectstore.UnitArtKey(inputs.UnitID), img.ContentType, img.Image)
	if err != nil {
		return nil, fmt.Errorf("failed to store unit art: %w", err)
	}

	imageID, err := s.assets.CreateImageAsset(ctx, ImageAssetRecord{
		UserID:      sc.UserID,
		S3Key:       obj.Key,
		Bucket:      obj.Bucket,
		ContentType: img.ContentType,
		FileSize:    int64(len(img.Image)),
		Width:       img.Width,
		Height:      img.Height,
		AltText:     inputs.Description.AltText,
		Prompt:      inputs.Description.Prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record image asset: %w", err)
	}

	sc.Logger.Info("unit art stored", "image_id", imageID, "object_key", obj.Key, "bytes", len(img.Image))

	outputs := &ArtImageOutputs{
		ImageID:     imageID,
		ObjectKey:   obj.Key,
		ContentType: img.ContentType,
		Width:       img.Width,
		Height:      img.Height,
		AltText:     inputs.Description.AltText,
	}
	return &flow.StepResult{
		Outputs: outputs,
		Writes: map[string]any{
			KeyArtImageID: imageID,
			KeyArtAltText: inputs.Description.AltText,
		},
	}, nil
}

// generatePodcastTranscriptStep writes the two-host transcript that the TTS
// step voices.
type generatePodcastTranscriptStep struct {
	prompts *PromptBuilder
}

type podcastTranscriptInputs struct {
	UnitTitle    string   `json:"unit_title"`
	UnitSummary  string   `json:"unit_summary"`
	LessonTitles []string `json:"lesson_titles"`
}

func (in *podcastTranscriptInputs) Validate() error {
	if in.UnitTitle == "" {
		return fmt.Errorf("unit_title is required")
	}
	if in.UnitSummary == "" {
		return fmt.Errorf("unit_summary is required")
	}
	return nil
}

// TranscriptOutputs records the podcast transcript.
type TranscriptOutputs struct {
	Transcript string `json:"transcript"`
	WordCount  int    `json:"word_count"`
}

func (o *TranscriptOutputs) Validate() error {
	if strings.TrimSpace(o.Transcript) == "" {
		return fmt.Errorf("transcript is empty")
	}
	return nil
}

func (s *generatePodcastTranscriptStep) Name() string { return "generate_podcast_transcript" }

func (s *generatePodcastTranscriptStep) BindInputs(fc *flow.Context) (flow.Inputs, error) {
	in := &podcastTranscriptInputs{}
	var err error
	if in.UnitTitle, err = contextValue[string](fc, KeyUnitTitle); err != nil {
		return nil, err
	}
	if in.UnitSummary, err = contextValue[string](fc, KeyUnitSummary); err != nil {
		return nil, err
	}
	if in.LessonTitles, _, err = optionalValue[[]string](fc, KeyLessonTitles); err != nil {
		return nil, err
	}
	return in, nil
}

func (s *generatePodcastTranscriptStep) Execute(ctx context.Context, sc *flow.StepContext, in flow.Inputs) (*flow.StepResult, error) {
	inputs := in.(*podcastTranscriptInputs)

	resp, err := sc.LLM.GenerateResponse(ctx, llm.Request{
		Messages:    s.prompts.BuildPodcastTranscriptMessages(inputs.UnitTitle, inputs.UnitSummary, inputs.LessonTitles),
		Temperature: temperature(tempCreative),
		Scope:       sc.Scope(),
	})
	if err != nil {
		return nil, err
	}

	outputs := &TranscriptOutputs{
		Transcript: resp.Content,
		WordCount:  len(strings.Fields(resp.Content)),
	}
	return &flow.StepResult{
		Outputs: outputs,
		Writes:  map[string]any{KeyTranscript: resp.Content},
	}, nil
}

// generatePodcastAudioStep voices the transcript, stores the blob, and
// records the audio asset row.
type generatePodcastAudioStep struct {
	assets     AssetStore
	audioModel string
	voice      string
}

type podcastAudioInputs struct {
	UnitID     string `json:"unit_id"`
	Transcript string `json:"transcript"`
}

func (in *podcastAudioInputs) Validate() error {
	if in.UnitID == "" {
		return fmt.Errorf("unit_id is required")
	}
	if in.Transcript == "" {
		return fmt.Errorf("transcript is required")
	}
	return nil
}

// PodcastAudioOutputs records the stored podcast asset.
type PodcastAudioOutputs struct {
	AudioID         string  `json:"audio_id"`
	ObjectKey       string  `json:"object_key"`
	DurationSeconds float64 `json:"duration_seconds,omitempty"`
	Voice           string  `json:"voice,omitempty"`
}

func (o *PodcastAudioOutputs) Validate() error {
	if o.AudioID == "" {
		return fmt.Errorf("audio_id is empty")
	}
	return nil
}

func (s *generatePodcastAudioStep) Name() string { return "generate_podcast_audio" }

func (s *generatePodcastAudioStep) BindInputs(fc *flow.Context) (flow.Inputs, error) {
	in := &podcastAudioInputs{}
	var err error
	if in.UnitID, err = contextValue[string](fc, KeyUnitID); err != nil {
		return nil, err
	}
	if in.Transcript, err = contextValue[string](fc, KeyTranscript); err != nil {
		return nil, err
	}
	return in, nil
}

func (s *generatePodcastAudioStep) Execute(ctx context.Context, sc *flow.StepContext, in flow.Inputs) (*flow.StepResult, error) {
	inputs := in.(*podcastAudioInputs)
	if sc.Objects == nil {
		return nil, fmt.Errorf("object store is not configured")
	}

	audio, err := sc.LLM.GenerateAudio(ctx, llm.AudioRequest{
		Input: inputs.Transcript,
		Model: s.audioModel,
		Voice: s.voice,
		Scope: sc.Scope(),
	})
	if err != nil {
		return nil, err
	}

	obj, err := sc.Objects.Put(ctx, objectstore.UnitPodcastKey(inputs.UnitID), audio.ContentType, audio.Audio)
	if err != nil {
		return nil, fmt.Errorf("failed to store unit podcast: %w", err)
	}

	audioID, err := s.assets.CreateAudioAsset(ctx, AudioAssetRecord{
		UserID:          sc.UserID,
		S3Key:           obj.Key,
		Bucket:          obj.Bucket,
		ContentType:     audio.ContentType,
		FileSize:        int64(len(audio.Audio)),
		DurationSeconds: audio.DurationSeconds,
		Transcript:      inputs.Transcript,
		Voice:           audio.Voice,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record audio asset: %w", err)
	}

	sc.Logger.Info("unit podcast stored",
		"audio_id", audioID,
		"object_key", obj.Key,
		"duration_seconds", audio.DurationSeconds)

	outputs := &PodcastAudioOutputs{
		AudioID:         audioID,
		ObjectKey:       obj.Key,
		DurationSeconds: audio.DurationSeconds,
		Voice:           audio.Voice,
	}
	return &flow.StepResult{
		Outputs: outputs,
		Writes:  map[string]any{KeyAudioID: audioID},
	}, nil
}
