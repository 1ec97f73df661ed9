package content

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brianfields/deeplearn-sub002/pkg/flow"
	"github.com/brianfields/deeplearn-sub002/pkg/models"
)

func TestGenerateSourceMaterialStep_PassthroughSkipsLLM(t *testing.T) {
	gw := &stubGateway{}
	step := &generateSourceMaterialStep{prompts: NewPromptBuilder()}

	fc := flow.NewContext(map[string]any{
		KeySourceMaterial: "Gradient descent walks the loss surface downhill, one step per batch.",
		KeyLearnerLevel:   models.LearnerLevelBeginner,
	})
	in := bindAndValidate(t, step, fc)

	result, err := step.Execute(context.Background(), newStepContext(gw, nil), in)
	require.NoError(t, err)

	outputs := result.Outputs.(*SourceMaterialOutputs)
	assert.False(t, outputs.Generated)
	assert.Equal(t, 11, outputs.WordCount)
	assert.Equal(t, outputs.SourceMaterial, result.Writes[KeySourceMaterial])
	assert.Empty(t, gw.requests, "submitted material must not trigger an LLM call")
}

func TestGenerateSourceMaterialStep_GeneratesFromTopic(t *testing.T) {
	gw := &stubGateway{text: []string{"Generated teaching text about gradient descent."}}
	step := &generateSourceMaterialStep{prompts: NewPromptBuilder()}

	fc := flow.NewContext(map[string]any{
		KeyTopic:             "Intro to Gradient Descent",
		KeyLearnerLevel:      models.LearnerLevelBeginner,
		KeyTargetLessonCount: 2,
	})
	in := bindAndValidate(t, step, fc)

	result, err := step.Execute(context.Background(), newStepContext(gw, nil), in)
	require.NoError(t, err)

	outputs := result.Outputs.(*SourceMaterialOutputs)
	assert.True(t, outputs.Generated)
	assert.Equal(t, "Generated teaching text about gradient descent.", outputs.SourceMaterial)
	assert.Equal(t, outputs.SourceMaterial, result.Writes[KeySourceMaterial])

	require.Len(t, gw.requests, 1)
	req := gw.requests[0]
	require.NotNil(t, req.Temperature)
	assert.InDelta(t, tempCreative, *req.Temperature, 1e-9)
	assert.Contains(t, req.Messages[1].Content, "Intro to Gradient Descent")
	assert.Equal(t, "user-1", req.Scope.UserID)
	assert.Equal(t, "step-1", req.Scope.StepRunID)
}

func TestGenerateSourceMaterialStep_RequiresTopicOrMaterial(t *testing.T) {
	step := &generateSourceMaterialStep{prompts: NewPromptBuilder()}

	fc := flow.NewContext(map[string]any{KeyLearnerLevel: models.LearnerLevelBeginner})
	in, err := step.BindInputs(fc)
	require.NoError(t, err)
	assert.Error(t, in.Validate())
}

func TestGenerateSourceMaterialStep_FloatLessonCountFromJSON(t *testing.T) {
	// Inputs replayed from a persisted flow row arrive JSON-decoded, so
	// numbers are float64.
	step := &generateSourceMaterialStep{prompts: NewPromptBuilder()}

	fc := flow.NewContext(map[string]any{
		KeyTopic:             "Intro to Gradient Descent",
		KeyLearnerLevel:      models.LearnerLevelBeginner,
		KeyTargetLessonCount: float64(3),
	})
	in := bindAndValidate(t, step, fc)
	assert.Equal(t, 3, in.(*sourceMaterialInputs).TargetLessonCount)
}

func TestExtractUnitMetadataStep(t *testing.T) {
	plan := testUnitPlan()
	gw := &stubGateway{structured: []string{mustJSON(t, plan)}}
	step := &extractUnitMetadataStep{prompts: NewPromptBuilder()}

	fc := flow.NewContext(map[string]any{
		KeySourceMaterial: "teaching text",
		KeyLearnerLevel:   models.LearnerLevelBeginner,
	})
	in := bindAndValidate(t, step, fc)

	result, err := step.Execute(context.Background(), newStepContext(gw, nil), in)
	require.NoError(t, err)

	got := result.Outputs.(*models.UnitPlan)
	require.NoError(t, got.Validate())
	assert.Equal(t, plan.UnitTitle, got.UnitTitle)
	assert.Len(t, got.Lessons, 2)

	assert.Same(t, got, result.Writes[KeyUnitPlan])
	assert.Equal(t, plan.UnitTitle, result.Writes[KeyUnitTitle])

	require.Len(t, gw.requests, 1)
	require.NotNil(t, gw.requests[0].Temperature)
	assert.InDelta(t, tempStructured, *gw.requests[0].Temperature, 1e-9)
}

func TestGenerateUnitSummaryStep(t *testing.T) {
	gw := &stubGateway{text: []string{"A friendly tour of how models learn."}}
	step := &generateUnitSummaryStep{prompts: NewPromptBuilder()}

	fc := flow.NewContext(map[string]any{
		KeyUnitPlan:       testUnitPlan(),
		KeySourceMaterial: "teaching text",
		KeyLearnerLevel:   models.LearnerLevelBeginner,
	})
	in := bindAndValidate(t, step, fc)

	result, err := step.Execute(context.Background(), newStepContext(gw, nil), in)
	require.NoError(t, err)

	assert.Equal(t, "A friendly tour of how models learn.", result.Writes[KeyUnitSummary])
	require.NoError(t, result.Outputs.Validate())
}

func TestGenerateUnitSummaryStep_MissingPlan(t *testing.T) {
	step := &generateUnitSummaryStep{prompts: NewPromptBuilder()}

	fc := flow.NewContext(map[string]any{
		KeySourceMaterial: "teaching text",
		KeyLearnerLevel:   models.LearnerLevelBeginner,
	})
	_, err := step.BindInputs(fc)
	require.Error(t, err)

	var verr *flow.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, KeyUnitPlan, verr.Key)
}
