package content

import (
	"context"

	"github.com/brianfields/deeplearn-sub002/pkg/flow"
	"github.com/brianfields/deeplearn-sub002/pkg/llm"
	"github.com/brianfields/deeplearn-sub002/pkg/models"
)

// generateLessonPackageDraftStep is the fast flow's single combined call: it
// drafts metadata, mini-lesson, glossary, and banks in one structured
// response, then writes them under the same context keys the standard steps
// use so the exercise and assembly steps are shared between the two flows.
type generateLessonPackageDraftStep struct {
	prompts *PromptBuilder
}

func (s *generateLessonPackageDraftStep) Name() string { return "generate_lesson_package_draft" }

func (s *generateLessonPackageDraftStep) BindInputs(fc *flow.Context) (flow.Inputs, error) {
	in := &lessonMetadataInputs{}
	var err error
	if in.Lesson, err = contextValue[*models.LessonPlan](fc, KeyLessonPlan); err != nil {
		return nil, err
	}
	if in.UnitObjectives, err = contextValue[[]models.LearningObjective](fc, KeyObjectives); err != nil {
		return nil, err
	}
	if in.SourceMaterial, err = contextValue[string](fc, KeySourceMaterial); err != nil {
		return nil, err
	}
	if in.LearnerLevel, err = contextValue[string](fc, KeyLearnerLevel); err != nil {
		return nil, err
	}
	return in, nil
}

func (s *generateLessonPackageDraftStep) Execute(ctx context.Context, sc *flow.StepContext, in flow.Inputs) (*flow.StepResult, error) {
	inputs := in.(*lessonMetadataInputs)

	draft := &PackageDraft{}
	_, err := sc.LLM.GenerateStructured(ctx, llm.Request{
		Messages:    s.prompts.BuildPackageDraftMessages(inputs.Lesson, inputs.UnitObjectives, inputs.SourceMaterial, inputs.LearnerLevel),
		Temperature: temperature(tempStructured),
		Scope:       sc.Scope(),
	}, packageDraftSchema, draft)
	if err != nil {
		return nil, err
	}

	meta := &LessonMetadata{
		LessonTitle: inputs.Lesson.Title,
		Objectives:  draft.Objectives,
		KeyConcepts: draft.KeyConcepts,
	}
	bank := &MisconceptionBank{
		Misconceptions: draft.Misconceptions,
		Confusables:    draft.Confusables,
	}

	return &flow.StepResult{
		Outputs: draft,
		Writes: map[string]any{
			KeyDraftPackage: draft,
			KeyLessonMeta:   meta,
			KeyMiniLesson:   draft.MiniLesson,
			KeyGlossary:     draft.GlossaryTerms,
			KeyMisconBank:   bank,
		},
	}, nil
}
