package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brianfields/deeplearn-sub002/pkg/config"
	"github.com/brianfields/deeplearn-sub002/pkg/flow"
	"github.com/brianfields/deeplearn-sub002/pkg/models"
)

func stepNames(def flow.Definition) []string {
	names := make([]string, len(def.Steps))
	for i, s := range def.Steps {
		names[i] = s.Name()
	}
	return names
}

func TestNewFlows_Definitions(t *testing.T) {
	flows := NewFlows(config.ContentConfig{
		ImageModel:   "gpt-image-test",
		AudioModel:   "tts-test",
		PodcastVoice: "alloy",
	}, &fakeAssets{})

	assert.Equal(t, FlowUnitCreation, flows.UnitCreation.Name)
	assert.Equal(t, []string{
		"generate_source_material",
		"extract_unit_metadata",
		"generate_unit_summary",
	}, stepNames(flows.UnitCreation))

	assert.Equal(t, FlowLessonCreation, flows.LessonCreation.Name)
	assert.Equal(t, []string{
		"extract_lesson_metadata",
		"generate_misconception_bank",
		"generate_didactic_snippet",
		"generate_glossary",
		"generate_mcqs",
		"generate_short_answers",
		"assemble_lesson_package",
	}, stepNames(flows.LessonCreation))

	assert.Equal(t, FlowFastLessonCreation, flows.FastLessonCreation.Name)
	assert.Equal(t, []string{
		"generate_lesson_package_draft",
		"generate_mcqs",
		"assemble_lesson_package",
	}, stepNames(flows.FastLessonCreation))

	assert.Equal(t, FlowUnitArtCreation, flows.UnitArtCreation.Name)
	assert.Equal(t, []string{
		"generate_unit_art_description",
		"generate_unit_art_image",
	}, stepNames(flows.UnitArtCreation))

	assert.Equal(t, FlowUnitPodcast, flows.UnitPodcast.Name)
	assert.Equal(t, []string{
		"generate_podcast_transcript",
		"generate_podcast_audio",
	}, stepNames(flows.UnitPodcast))
}

func TestFlows_LessonDefinition(t *testing.T) {
	flows := NewFlows(config.ContentConfig{}, &fakeAssets{})

	assert.Equal(t, FlowLessonCreation, flows.LessonDefinition(models.FlowTypeStandard).Name)
	assert.Equal(t, FlowFastLessonCreation, flows.LessonDefinition(models.FlowTypeFast).Name)
	assert.Equal(t, FlowLessonCreation, flows.LessonDefinition("").Name, "unknown flow types fall back to standard")
}

func TestUnitCreationOutputs(t *testing.T) {
	flows := NewFlows(config.ContentConfig{}, &fakeAssets{})
	require.NotNil(t, flows.UnitCreation.Outputs)

	fc := flow.NewContext(map[string]any{
		KeyUnitTitle: "Intro to Gradient Descent",
		KeyUnitPlan:  testUnitPlan(),
	})
	out := flows.UnitCreation.Outputs(fc)
	assert.Equal(t, "Intro to Gradient Descent", out["unit_title"])
	assert.Equal(t, 2, out["lesson_count"])
	assert.Equal(t, 2, out["learning_objective_count"])
}

func TestLessonCreationOutputs(t *testing.T) {
	flows := NewFlows(config.ContentConfig{}, &fakeAssets{})
	require.NotNil(t, flows.LessonCreation.Outputs)

	pkg := &models.LessonPackage{
		Meta:       models.PackageMeta{Title: "The Loss Landscape"},
		Objectives: []models.Objective{{ID: "lo_1", Text: "x"}},
		GlossaryTerms: []models.GlossaryTerm{
			{ID: "gt_1", Term: "gradient", Definition: "d"},
		},
		MiniLesson: "text",
	}
	for _, q := range testMCQs() {
		pkg.Exercises = append(pkg.Exercises, q.Exercise())
	}

	fc := flow.NewContext(map[string]any{KeyLessonPackage: pkg})
	out := flows.LessonCreation.Outputs(fc)
	assert.Equal(t, "The Loss Landscape", out["lesson_title"])
	assert.Equal(t, 1, out["exercise_count"])
	assert.Equal(t, 1, out["glossary_term_count"])
}
