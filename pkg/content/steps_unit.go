package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/brianfields/deeplearn-sub002/pkg/flow"
	"github.com/brianfields/deeplearn-sub002/pkg/llm"
	"github.com/brianfields/deeplearn-sub002/pkg/models"
)

// generateSourceMaterialStep produces the teaching text the rest of the unit
// flow draws from. Submissions that carry source material pass through
// unchanged with no LLM call; topic submissions generate it.
type generateSourceMaterialStep struct {
	prompts *PromptBuilder
}

type sourceMaterialInputs struct {
	Topic             string `json:"topic,omitempty"`
	SourceMaterial    string `json:"source_material,omitempty"`
	LearnerLevel      string `json:"learner_level"`
	TargetLessonCount int    `json:"target_lesson_count,omitempty"`
}

func (in *sourceMaterialInputs) Validate() error {
	if in.Topic == "" && in.SourceMaterial == "" {
		return fmt.Errorf("either topic or source_material is required")
	}
	return nil
}

// SourceMaterialOutputs records the teaching text and whether it was
// generated or submitted.
type SourceMaterialOutputs struct {
	SourceMaterial string `json:"source_material"`
	Generated      bool   `json:"generated"`
	WordCount      int    `json:"word_count"`
}

func (o *SourceMaterialOutputs) Validate() error {
	if strings.TrimSpace(o.SourceMaterial) == "" {
		return fmt.Errorf("source material is empty")
	}
	return nil
}

func (s *generateSourceMaterialStep) Name() string { return "generate_source_material" }

func (s *generateSourceMaterialStep) BindInputs(fc *flow.Context) (flow.Inputs, error) {
	in := &sourceMaterialInputs{}
	var err error
	if in.Topic, _, err = optionalValue[string](fc, KeyTopic); err != nil {
		return nil, err
	}
	if in.SourceMaterial, _, err = optionalValue[string](fc, KeySourceMaterial); err != nil {
		return nil, err
	}
	if in.LearnerLevel, err = contextValue[string](fc, KeyLearnerLevel); err != nil {
		return nil, err
	}
	if in.TargetLessonCount, _, err = optionalValue[int](fc, KeyTargetLessonCount); err != nil {
		return nil, err
	}
	return in, nil
}

func (s *generateSourceMaterialStep) Execute(ctx context.Context, sc *flow.StepContext, in flow.Inputs) (*flow.StepResult, error) {
	inputs := in.(*sourceMaterialInputs)

	if inputs.SourceMaterial != "" {
		sc.Logger.Info("using submitted source material",
			"word_count", len(strings.Fields(inputs.SourceMaterial)))
		outputs := &SourceMaterialOutputs{
			SourceMaterial: inputs.SourceMaterial,
			Generated:      false,
			WordCount:      len(strings.Fields(inputs.SourceMaterial)),
		}
		return &flow.StepResult{
			Outputs: outputs,
			Writes:  map[string]any{KeySourceMaterial: inputs.SourceMaterial},
		}, nil
	}

	resp, err := sc.LLM.GenerateResponse(ctx, llm.Request{
		Messages:    s.prompts.BuildSourceMaterialMessages(inputs.Topic, inputs.LearnerLevel, inputs.TargetLessonCount),
		Temperature: temperature(tempCreative),
		Scope:       sc.Scope(),
	})
	if err != nil {
		return nil, err
	}

	outputs := &SourceMaterialOutputs{
		SourceMaterial: resp.Content,
		Generated:      true,
		WordCount:      len(strings.Fields(resp.Content)),
	}
	return &flow.StepResult{
		Outputs: outputs,
		Writes:  map[string]any{KeySourceMaterial: resp.Content},
	}, nil
}

// extractUnitMetadataStep plans the unit: title, learning objectives, and
// one lesson plan per lesson to generate.
type extractUnitMetadataStep struct {
	prompts *PromptBuilder
}

type unitMetadataInputs struct {
	SourceMaterial    string `json:"source_material"`
	LearnerLevel      string `json:"learner_level"`
	TargetLessonCount int    `json:"target_lesson_count,omitempty"`
}

func (in *unitMetadataInputs) Validate() error {
	if in.SourceMaterial == "" {
		return fmt.Errorf("source_material is required")
	}
	return nil
}

func (s *extractUnitMetadataStep) Name() string { return "extract_unit_metadata" }

func (s *extractUnitMetadataStep) BindInputs(fc *flow.Context) (flow.Inputs, error) {
	in := &unitMetadataInputs{}
	var err error
	if in.SourceMaterial, err = contextValue[string](fc, KeySourceMaterial); err != nil {
		return nil, err
	}
	if in.LearnerLevel, err = contextValue[string](fc, KeyLearnerLevel); err != nil {
		return nil, err
	}
	if in.TargetLessonCount, _, err = optionalValue[int](fc, KeyTargetLessonCount); err != nil {
		return nil, err
	}
	return in, nil
}

func (s *extractUnitMetadataStep) Execute(ctx context.Context, sc *flow.StepContext, in flow.Inputs) (*flow.StepResult, error) {
	inputs := in.(*unitMetadataInputs)

	plan := &models.UnitPlan{}
	_, err := sc.LLM.GenerateStructured(ctx, llm.Request{
		Messages:    s.prompts.BuildUnitMetadataMessages(inputs.SourceMaterial, inputs.LearnerLevel, inputs.TargetLessonCount),
		Temperature: temperature(tempStructured),
		Scope:       sc.Scope(),
	}, unitPlanSchema, plan)
	if err != nil {
		return nil, err
	}

	return &flow.StepResult{
		Outputs: plan,
		Writes: map[string]any{
			KeyUnitPlan:  plan,
			KeyUnitTitle: plan.UnitTitle,
		},
	}, nil
}

// generateUnitSummaryStep writes the learner-facing unit summary, which also
// opens the unit podcast.
type generateUnitSummaryStep struct {
	prompts *PromptBuilder
}

type unitSummaryInputs struct {
	Plan           *models.UnitPlan `json:"plan"`
	SourceMaterial string           `json:"source_material"`
	LearnerLevel   string           `json:"learner_level"`
}

func (in *unitSummaryInputs) Validate() error {
	if in.Plan == nil {
		return fmt.Errorf("unit plan is required")
	}
	return nil
}

// UnitSummaryOutputs records the learner-facing unit summary.
type UnitSummaryOutputs struct {
	Summary string `json:"summary"`
}

func (o *UnitSummaryOutputs) Validate() error {
	if strings.TrimSpace(o.Summary) == "" {
		return fmt.Errorf("summary is empty")
	}
	return nil
}

func (s *generateUnitSummaryStep) Name() string { return "generate_unit_summary" }

func (s *generateUnitSummaryStep) BindInputs(fc *flow.Context) (flow.Inputs, error) {
	in := &unitSummaryInputs{}
	var err error
	if in.Plan, err = contextValue[*models.UnitPlan](fc, KeyUnitPlan); err != nil {
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

func (s *generateUnitSummaryStep) Execute(ctx context.Context, sc *flow.StepContext, in flow.Inputs) (*flow.StepResult, error) {
	inputs := in.(*unitSummaryInputs)

	resp, err := sc.LLM.GenerateResponse(ctx, llm.Request{
		Messages:    s.prompts.BuildUnitSummaryMessages(inputs.Plan, inputs.SourceMaterial, inputs.LearnerLevel),
		Temperature: temperature(tempCreative),
		Scope:       sc.Scope(),
	})
	if err != nil {
		return nil, err
	}

	return &flow.StepResult{
		Outputs: &UnitSummaryOutputs{Summary: resp.Content},
		Writes:  map[string]any{KeyUnitSummary: resp.Content},
	}, nil
}
