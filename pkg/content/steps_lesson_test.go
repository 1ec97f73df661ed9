package content

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brianfields/deeplearn-sub002/pkg/flow"
	"github.com/brianfields/deeplearn-sub002/pkg/llm"
	"github.com/brianfields/deeplearn-sub002/pkg/models"
)

// lessonFlowContext seeds the context the way the unit executor seeds a
// child lesson flow.
func lessonFlowContext() *flow.Context {
	plan := testUnitPlan()
	return flow.NewContext(map[string]any{
		KeySourceMaterial: "teaching text about gradient descent",
		KeyLearnerLevel:   models.LearnerLevelBeginner,
		KeyLessonPlan:     &plan.Lessons[0],
		KeyObjectives:     plan.LearningObjectives,
		KeyLessonTitle:    plan.Lessons[0].Title,
	})
}

func TestExtractLessonMetadataStep_PlanTitleWins(t *testing.T) {
	scripted := testLessonMeta()
	scripted.LessonTitle = "A Rewritten Title The Model Invented"
	gw := &stubGateway{structured: []string{mustJSON(t, scripted)}}
	step := &extractLessonMetadataStep{prompts: NewPromptBuilder()}

	fc := lessonFlowContext()
	in := bindAndValidate(t, step, fc)

	result, err := step.Execute(context.Background(), newStepContext(gw, nil), in)
	require.NoError(t, err)

	meta := result.Outputs.(*LessonMetadata)
	assert.Equal(t, "The Loss Landscape", meta.LessonTitle)
	assert.Same(t, meta, result.Writes[KeyLessonMeta])
	require.NoError(t, meta.Validate())
}

func TestExtractLessonMetadataStep_JSONLessonPlan(t *testing.T) {
	// A lesson plan that went through flow row persistence arrives as a
	// generic JSON map, not a typed struct.
	gw := &stubGateway{structured: []string{mustJSON(t, testLessonMeta())}}
	step := &extractLessonMetadataStep{prompts: NewPromptBuilder()}

	fc := lessonFlowContext()
	fc.Set(KeyLessonPlan, map[string]any{
		"title":                  "The Loss Landscape",
		"lesson_objective":       "Explain what the loss surface represents",
		"learning_objective_ids": []any{"lo_1"},
		"key_concepts":           []any{"loss function"},
	})
	in := bindAndValidate(t, step, fc)

	_, err := step.Execute(context.Background(), newStepContext(gw, nil), in)
	require.NoError(t, err)
}

func TestGenerateMisconceptionBankStep(t *testing.T) {
	gw := &stubGateway{structured: []string{mustJSON(t, testBank())}}
	step := &generateMisconceptionBankStep{prompts: NewPromptBuilder()}

	fc := lessonFlowContext()
	fc.Set(KeyLessonMeta, testLessonMeta())
	in := bindAndValidate(t, step, fc)

	result, err := step.Execute(context.Background(), newStepContext(gw, nil), in)
	require.NoError(t, err)

	bank := result.Outputs.(*MisconceptionBank)
	require.NoError(t, bank.Validate())
	require.Len(t, bank.Misconceptions, 1)
	assert.Equal(t, "mc_1", bank.Misconceptions[0].ID)
	assert.Same(t, bank, result.Writes[KeyMisconBank])
}

func TestGenerateDidacticSnippetStep(t *testing.T) {
	gw := &stubGateway{structured: []string{`{"mini_lesson": "The loss surface maps parameters to error. Gradient descent walks it downhill."}`}}
	step := &generateDidacticSnippetStep{prompts: NewPromptBuilder()}

	fc := lessonFlowContext()
	fc.Set(KeyLessonMeta, testLessonMeta())
	fc.Set(KeyMisconBank, testBank())
	in := bindAndValidate(t, step, fc)

	result, err := step.Execute(context.Background(), newStepContext(gw, nil), in)
	require.NoError(t, err)

	outputs := result.Outputs.(*MiniLessonOutputs)
	assert.Equal(t, 12, outputs.WordCount)
	assert.Equal(t, outputs.MiniLesson, result.Writes[KeyMiniLesson])

	// Mini-lesson is prose, not data extraction: it runs hot.
	require.Len(t, gw.requests, 1)
	require.NotNil(t, gw.requests[0].Temperature)
	assert.InDelta(t, tempCreative, *gw.requests[0].Temperature, 1e-9)
}

func TestGenerateGlossaryStep(t *testing.T) {
	gw := &stubGateway{structured: []string{`{"glossary_terms": [{"id": "gt_1", "term": "gradient", "definition": "The direction of steepest increase of the loss."}]}`}}
	step := &generateGlossaryStep{prompts: NewPromptBuilder()}

	fc := lessonFlowContext()
	fc.Set(KeyLessonMeta, testLessonMeta())
	in := bindAndValidate(t, step, fc)

	result, err := step.Execute(context.Background(), newStepContext(gw, nil), in)
	require.NoError(t, err)

	terms := result.Writes[KeyGlossary].([]models.GlossaryTerm)
	require.Len(t, terms, 1)
	assert.Equal(t, "gradient", terms[0].Term)
	require.NoError(t, result.Outputs.Validate())
}

func TestGlossaryOutputs_Validate(t *testing.T) {
	tests := []struct {
		name    string
		outputs GlossaryOutputs
		wantErr string
	}{
		{
			name:    "empty glossary",
			outputs: GlossaryOutputs{},
			wantErr: "glossary is empty",
		},
		{
			name: "missing definition",
			outputs: GlossaryOutputs{GlossaryTerms: []models.GlossaryTerm{
				{ID: "gt_1", Term: "gradient"},
			}},
			wantErr: "term and definition are required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.outputs.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGenerateMCQsStep(t *testing.T) {
	gw := &stubGateway{structured: []string{mustJSON(t, map[string]any{"mcqs": testMCQs()})}}
	step := &generateMCQsStep{prompts: NewPromptBuilder()}

	fc := lessonFlowContext()
	fc.Set(KeyLessonMeta, testLessonMeta())
	fc.Set(KeyMisconBank, testBank())
	fc.Set(KeyMiniLesson, "The loss surface maps parameters to error.")
	in := bindAndValidate(t, step, fc)

	result, err := step.Execute(context.Background(), newStepContext(gw, nil), in)
	require.NoError(t, err)
	require.NoError(t, result.Outputs.Validate())

	mcqs := result.Writes[KeyMCQs].([]MCQDraft)
	require.Len(t, mcqs, 1)
	assert.Equal(t, "lo_1", mcqs[0].LOID)
}

func TestMCQSetOutputs_Validate(t *testing.T) {
	valid := testMCQs()[0]

	twoOptions := valid
	twoOptions.Options = valid.Options[:1]

	badKey := valid
	badKey.AnswerKey = models.AnswerKey{OptionID: "z"}

	tests := []struct {
		name    string
		mcqs    []MCQDraft
		wantErr string
	}{
		{name: "valid", mcqs: []MCQDraft{valid}},
		{name: "no mcqs", mcqs: nil, wantErr: "no mcqs generated"},
		{name: "single option", mcqs: []MCQDraft{twoOptions}, wantErr: "need at least 2"},
		{name: "answer key not an option", mcqs: []MCQDraft{badKey}, wantErr: "is not an option"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&MCQSetOutputs{MCQs: tt.mcqs}).Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGenerateShortAnswersStep(t *testing.T) {
	gw := &stubGateway{structured: []string{mustJSON(t, map[string]any{"short_answers": testShortAnswers()})}}
	step := &generateShortAnswersStep{prompts: NewPromptBuilder()}

	fc := lessonFlowContext()
	fc.Set(KeyLessonMeta, testLessonMeta())
	fc.Set(KeyMiniLesson, "The loss surface maps parameters to error.")
	in := bindAndValidate(t, step, fc)

	result, err := step.Execute(context.Background(), newStepContext(gw, nil), in)
	require.NoError(t, err)
	require.NoError(t, result.Outputs.Validate())

	sas := result.Writes[KeyShortAnswers].([]ShortAnswerDraft)
	require.Len(t, sas, 1)
	assert.NotEmpty(t, sas[0].CanonicalAnswer)
}

func TestAssembleLessonPackageStep(t *testing.T) {
	step := &assembleLessonPackageStep{}

	fc := lessonFlowContext()
	fc.Set(KeyLessonMeta, testLessonMeta())
	fc.Set(KeyMiniLesson, "The loss surface maps parameters to error. Gradient descent walks it downhill.")
	fc.Set(KeyGlossary, []models.GlossaryTerm{{ID: "gt_1", Term: "gradient", Definition: "Steepest increase direction."}})
	fc.Set(KeyMCQs, testMCQs())
	fc.Set(KeyShortAnswers, testShortAnswers())
	fc.Set(KeyMisconBank, testBank())
	in := bindAndValidate(t, step, fc)

	result, err := step.Execute(context.Background(), newStepContext(&stubGateway{}, nil), in)
	require.NoError(t, err)

	pkg := result.Outputs.(*models.LessonPackage)
	require.NoError(t, pkg.Validate())
	assert.Equal(t, "The Loss Landscape", pkg.Meta.Title)
	assert.Equal(t, models.LearnerLevelBeginner, pkg.Meta.LearnerLevel)
	assert.Equal(t, models.PackageSchemaVersion, pkg.Meta.PackageSchemaVersion)

	// MCQs come before short answers.
	require.Len(t, pkg.Exercises, 2)
	assert.Equal(t, models.ExerciseTypeMCQ, pkg.Exercises[0].ExerciseType)
	assert.Equal(t, models.ExerciseTypeShortAnswer, pkg.Exercises[1].ExerciseType)
	require.NotNil(t, pkg.Exercises[0].AnswerKey)
	assert.Equal(t, "a", pkg.Exercises[0].AnswerKey.OptionID)

	assert.Len(t, pkg.Misconceptions, 1)
	assert.Len(t, pkg.Confusables, 1)
	assert.Same(t, pkg, result.Writes[KeyLessonPackage])
}

func TestAssembleLessonPackageStep_RejectsForeignObjectives(t *testing.T) {
	step := &assembleLessonPackageStep{}

	meta := testLessonMeta()
	meta.Objectives = []models.Objective{{ID: "lo_9", Text: "An objective the unit never declared"}}

	fc := lessonFlowContext()
	fc.Set(KeyLessonMeta, meta)
	fc.Set(KeyMiniLesson, "Text.")
	in := bindAndValidate(t, step, fc)

	_, err := step.Execute(context.Background(), newStepContext(&stubGateway{}, nil), in)
	require.Error(t, err)
	assert.Equal(t, llm.ErrorTypeInvalidResponse, llm.TypeOf(err))
	assert.Contains(t, err.Error(), "objective check")
}

func TestAssembleLessonPackageStep_NoExercisesFailsValidation(t *testing.T) {
	// Assembly itself tolerates a missing exercise set; the engine's output
	// validation is what rejects the package.
	step := &assembleLessonPackageStep{}

	fc := lessonFlowContext()
	fc.Set(KeyLessonMeta, testLessonMeta())
	fc.Set(KeyMiniLesson, "Text.")
	in := bindAndValidate(t, step, fc)

	result, err := step.Execute(context.Background(), newStepContext(&stubGateway{}, nil), in)
	require.NoError(t, err)
	assert.Error(t, result.Outputs.Validate())
}

func TestGenerateMCQsStep_MissingBank(t *testing.T) {
	step := &generateMCQsStep{prompts: NewPromptBuilder()}

	fc := lessonFlowContext()
	fc.Set(KeyLessonMeta, testLessonMeta())
	fc.Set(KeyMiniLesson, "Text.")
	_, err := step.BindInputs(fc)
	require.Error(t, err)

	var verr *flow.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, KeyMisconBank, verr.Key)
}
