package content

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brianfields/deeplearn-sub002/pkg/config"
	"github.com/brianfields/deeplearn-sub002/pkg/models"
)

func TestGenerateLessonPackageDraftStep(t *testing.T) {
	draft := &PackageDraft{
		Objectives:  []models.Objective{{ID: "lo_1", Text: "Explain what the loss surface represents"}},
		KeyConcepts: []string{"loss function", "gradient"},
		MiniLesson:  "The loss surface maps parameters to error.",
		GlossaryTerms: []models.GlossaryTerm{
			{ID: "gt_1", Term: "gradient", Definition: "Steepest increase direction."},
		},
		Misconceptions: testBank().Misconceptions,
		Confusables:    testBank().Confusables,
	}
	gw := &stubGateway{structured: []string{mustJSON(t, draft)}}
	step := &generateLessonPackageDraftStep{prompts: NewPromptBuilder()}

	fc := lessonFlowContext()
	in := bindAndValidate(t, step, fc)

	result, err := step.Execute(context.Background(), newStepContext(gw, nil), in)
	require.NoError(t, err)
	require.NoError(t, result.Outputs.Validate())

	// The draft fans out under the standard keys so the MCQ and assemble
	// steps run unchanged on either flow.
	meta := result.Writes[KeyLessonMeta].(*LessonMetadata)
	assert.Equal(t, "The Loss Landscape", meta.LessonTitle)
	assert.Equal(t, draft.Objectives, meta.Objectives)
	require.NoError(t, meta.Validate())

	assert.Equal(t, draft.MiniLesson, result.Writes[KeyMiniLesson])
	assert.Equal(t, draft.GlossaryTerms, result.Writes[KeyGlossary])

	bank := result.Writes[KeyMisconBank].(*MisconceptionBank)
	assert.Equal(t, draft.Misconceptions, bank.Misconceptions)
	assert.Equal(t, draft.Confusables, bank.Confusables)

	assert.NotNil(t, result.Writes[KeyDraftPackage])
}

func TestFastFlowSharesAssembly(t *testing.T) {
	// Drive the fast flow's three steps the way the engine would: draft,
	// MCQs, assembly. The draft's writes must be enough for the shared
	// steps to produce a valid package.
	flows := NewFlows(config.ContentConfig{}, &fakeAssets{})
	sc := newStepContext(&stubGateway{
		structured: []string{
			mustJSON(t, &PackageDraft{
				Objectives:  []models.Objective{{ID: "lo_1", Text: "Explain what the loss surface represents"}},
				KeyConcepts: []string{"loss function"},
				MiniLesson:  "The loss surface maps parameters to error.",
			}),
			mustJSON(t, map[string]any{"mcqs": testMCQs()}),
		},
	}, nil)

	fc := lessonFlowContext()
	for _, step := range flows.FastLessonCreation.Steps {
		in, err := step.BindInputs(fc)
		require.NoError(t, err, step.Name())
		require.NoError(t, in.Validate(), step.Name())

		result, err := step.Execute(context.Background(), sc, in)
		require.NoError(t, err, step.Name())
		require.NoError(t, result.Outputs.Validate(), step.Name())
		fc.SetAll(result.Writes)
	}

	v, ok := fc.Get(KeyLessonPackage)
	require.True(t, ok)
	pkg := v.(*models.LessonPackage)
	require.NoError(t, pkg.Validate())
	assert.Equal(t, "The Loss Landscape", pkg.Meta.Title)
	assert.Len(t, pkg.Exercises, 1)
}
