package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/brianfields/deeplearn-sub002/pkg/flow"
	"github.com/brianfields/deeplearn-sub002/pkg/llm"
	"github.com/brianfields/deeplearn-sub002/pkg/models"
)

// extractLessonMetadataStep turns one lesson plan entry into lesson-scoped
// objectives and the seeds the bank and exercise steps develop.
type extractLessonMetadataStep struct {
	prompts *PromptBuilder
}

type lessonMetadataInputs struct {
	Lesson         *models.LessonPlan         `json:"lesson"`
	UnitObjectives []models.LearningObjective `json:"unit_objectives"`
	SourceMaterial string                     `json:"source_material"`
	LearnerLevel   string                     `json:"learner_level"`
}

func (in *lessonMetadataInputs) Validate() error {
	if in.Lesson == nil || in.Lesson.Title == "" {
		return fmt.Errorf("lesson plan is required")
	}
	if len(in.UnitObjectives) == 0 {
		return fmt.Errorf("unit objectives are required")
	}
	if in.SourceMaterial == "" {
		return fmt.Errorf("source_material is required")
	}
	return nil
}

func (s *extractLessonMetadataStep) Name() string { return "extract_lesson_metadata" }

func (s *extractLessonMetadataStep) BindInputs(fc *flow.Context) (flow.Inputs, error) {
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

func (s *extractLessonMetadataStep) Execute(ctx context.Context, sc *flow.StepContext, in flow.Inputs) (*flow.StepResult, error) {
	inputs := in.(*lessonMetadataInputs)

	meta := &LessonMetadata{}
	_, err := sc.LLM.GenerateStructured(ctx, llm.Request{
		Messages:    s.prompts.BuildLessonMetadataMessages(inputs.Lesson, inputs.UnitObjectives, inputs.SourceMaterial, inputs.LearnerLevel),
		Temperature: temperature(tempStructured),
		Scope:       sc.Scope(),
	}, lessonMetadataSchema, meta)
	if err != nil {
		return nil, err
	}

	// The plan's title is authoritative; the model occasionally rewrites it.
	meta.LessonTitle = inputs.Lesson.Title

	return &flow.StepResult{
		Outputs: meta,
		Writes:  map[string]any{KeyLessonMeta: meta},
	}, nil
}

// generateMisconceptionBankStep develops the metadata seeds into the
// misconception and confusable banks exercises draw distractors from.
type generateMisconceptionBankStep struct {
	prompts *PromptBuilder
}

type misconceptionBankInputs struct {
	Meta           *LessonMetadata `json:"meta"`
	SourceMaterial string          `json:"source_material"`
}

func (in *misconceptionBankInputs) Validate() error {
	if in.Meta == nil {
		return fmt.Errorf("lesson metadata is required")
	}
	if in.SourceMaterial == "" {
		return fmt.Errorf("source_material is required")
	}
	return nil
}

func (s *generateMisconceptionBankStep) Name() string { return "generate_misconception_bank" }

func (s *generateMisconceptionBankStep) BindInputs(fc *flow.Context) (flow.Inputs, error) {
	in := &misconceptionBankInputs{}
	var err error
	if in.Meta, err = contextValue[*LessonMetadata](fc, KeyLessonMeta); err != nil {
		return nil, err
	}
	if in.SourceMaterial, err = contextValue[string](fc, KeySourceMaterial); err != nil {
		return nil, err
	}
	return in, nil
}

func (s *generateMisconceptionBankStep) Execute(ctx context.Context, sc *flow.StepContext, in flow.Inputs) (*flow.StepResult, error) {
	inputs := in.(*misconceptionBankInputs)

	bank := &MisconceptionBank{}
	_, err := sc.LLM.GenerateStructured(ctx, llm.Request{
		Messages:    s.prompts.BuildMisconceptionBankMessages(inputs.Meta, inputs.SourceMaterial),
		Temperature: temperature(tempStructured),
		Scope:       sc.Scope(),
	}, misconceptionBankSchema, bank)
	if err != nil {
		return nil, err
	}

	return &flow.StepResult{
		Outputs: bank,
		Writes:  map[string]any{KeyMisconBank: bank},
	}, nil
}

// generateDidacticSnippetStep writes the mini-lesson: the didactic text that
// teaches the lesson's objectives and preempts its misconceptions.
type generateDidacticSnippetStep struct {
	prompts *PromptBuilder
}

type didacticSnippetInputs struct {
	Meta           *LessonMetadata    `json:"meta"`
	Bank           *MisconceptionBank `json:"bank"`
	SourceMaterial string             `json:"source_material"`
	LearnerLevel   string             `json:"learner_level"`
}

func (in *didacticSnippetInputs) Validate() error {
	if in.Meta == nil {
		return fmt.Errorf("lesson metadata is required")
	}
	if in.Bank == nil {
		return fmt.Errorf("misconception bank is required")
	}
	if in.SourceMaterial == "" {
		return fmt.Errorf("source_material is required")
	}
	return nil
}

// MiniLessonOutputs records the generated mini-lesson markdown.
type MiniLessonOutputs struct {
	MiniLesson string `json:"mini_lesson"`
	WordCount  int    `json:"word_count"`
}

func (o *MiniLessonOutputs) Validate() error {
	if strings.TrimSpace(o.MiniLesson) == "" {
		return fmt.Errorf("mini_lesson is empty")
	}
	return nil
}

func (s *generateDidacticSnippetStep) Name() string { return "generate_didactic_snippet" }

func (s *generateDidacticSnippetStep) BindInputs(fc *flow.Context) (flow.Inputs, error) {
	in := &didacticSnippetInputs{}
	var err error
	if in.Meta, err = contextValue[*LessonMetadata](fc, KeyLessonMeta); err != nil {
		return nil, err
	}
	if in.Bank, err = contextValue[*MisconceptionBank](fc, KeyMisconBank); err != nil {
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

func (s *generateDidacticSnippetStep) Execute(ctx context.Context, sc *flow.StepContext, in flow.Inputs) (*flow.StepResult, error) {
	inputs := in.(*didacticSnippetInputs)

	doc := struct {
		MiniLesson string `json:"mini_lesson"`
	}{}
	_, err := sc.LLM.GenerateStructured(ctx, llm.Request{
		Messages:    s.prompts.BuildDidacticSnippetMessages(inputs.Meta, inputs.Bank, inputs.SourceMaterial, inputs.LearnerLevel),
		Temperature: temperature(tempCreative),
		Scope:       sc.Scope(),
	}, miniLessonSchema, &doc)
	if err != nil {
		return nil, err
	}

	outputs := &MiniLessonOutputs{
		MiniLesson: doc.MiniLesson,
		WordCount:  len(strings.Fields(doc.MiniLesson)),
	}
	return &flow.StepResult{
		Outputs: outputs,
		Writes:  map[string]any{KeyMiniLesson: doc.MiniLesson},
	}, nil
}

// generateGlossaryStep defines the lesson's key concepts.
type generateGlossaryStep struct {
	prompts *PromptBuilder
}

type glossaryInputs struct {
	Meta           *LessonMetadata `json:"meta"`
	SourceMaterial string          `json:"source_material"`
	LearnerLevel   string          `json:"learner_level"`
}

func (in *glossaryInputs) Validate() error {
	if in.Meta == nil {
		return fmt.Errorf("lesson metadata is required")
	}
	if in.SourceMaterial == "" {
		return fmt.Errorf("source_material is required")
	}
	return nil
}

// GlossaryOutputs records the generated glossary.
type GlossaryOutputs struct {
	GlossaryTerms []models.GlossaryTerm `json:"glossary_terms"`
}

func (o *GlossaryOutputs) Validate() error {
	if len(o.GlossaryTerms) == 0 {
		return fmt.Errorf("glossary is empty")
	}
	for i, gt := range o.GlossaryTerms {
		if gt.Term == "" || gt.Definition == "" {
			return fmt.Errorf("glossary_terms[%d]: term and definition are required", i)
		}
	}
	return nil
}

func (s *generateGlossaryStep) Name() string { return "generate_glossary" }

func (s *generateGlossaryStep) BindInputs(fc *flow.Context) (flow.Inputs, error) {
	in := &glossaryInputs{}
	var err error
	if in.Meta, err = contextValue[*LessonMetadata](fc, KeyLessonMeta); err != nil {
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

func (s *generateGlossaryStep) Execute(ctx context.Context, sc *flow.StepContext, in flow.Inputs) (*flow.StepResult, error) {
	inputs := in.(*glossaryInputs)

	doc := struct {
		GlossaryTerms []models.GlossaryTerm `json:"glossary_terms"`
	}{}
	_, err := sc.LLM.GenerateStructured(ctx, llm.Request{
		Messages:    s.prompts.BuildGlossaryMessages(inputs.Meta, inputs.SourceMaterial, inputs.LearnerLevel),
		Temperature: temperature(tempStructured),
		Scope:       sc.Scope(),
	}, glossarySchema, &doc)
	if err != nil {
		return nil, err
	}

	return &flow.StepResult{
		Outputs: &GlossaryOutputs{GlossaryTerms: doc.GlossaryTerms},
		Writes:  map[string]any{KeyGlossary: doc.GlossaryTerms},
	}, nil
}

// generateMCQsStep writes the lesson's multiple-choice exercises, turning
// bank misconceptions into distractors.
type generateMCQsStep struct {
	prompts *PromptBuilder
}

type mcqInputs struct {
	Meta         *LessonMetadata    `json:"meta"`
	Bank         *MisconceptionBank `json:"bank"`
	MiniLesson   string             `json:"mini_lesson"`
	LearnerLevel string             `json:"learner_level"`
}

func (in *mcqInputs) Validate() error {
	if in.Meta == nil {
		return fmt.Errorf("lesson metadata is required")
	}
	if in.Bank == nil {
		return fmt.Errorf("misconception bank is required")
	}
	if in.MiniLesson == "" {
		return fmt.Errorf("mini_lesson is required")
	}
	return nil
}

// MCQSetOutputs records the generated multiple-choice questions.
type MCQSetOutputs struct {
	MCQs []MCQDraft `json:"mcqs"`
}

func (o *MCQSetOutputs) Validate() error {
	if len(o.MCQs) == 0 {
		return fmt.Errorf("no mcqs generated")
	}
	for i, q := range o.MCQs {
		if q.Stem == "" || q.LOID == "" {
			return fmt.Errorf("mcqs[%d]: stem and lo_id are required", i)
		}
		if len(q.Options) < 2 {
			return fmt.Errorf("mcqs[%d]: has %d options, need at least 2", i, len(q.Options))
		}
		found := false
		for _, opt := range q.Options {
			if opt.ID == q.AnswerKey.OptionID {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("mcqs[%d]: answer_key.option_id %q is not an option", i, q.AnswerKey.OptionID)
		}
	}
	return nil
}

func (s *generateMCQsStep) Name() string { return "generate_mcqs" }

func (s *generateMCQsStep) BindInputs(fc *flow.Context) (flow.Inputs, error) {
	in := &mcqInputs{}
	var err error
	if in.Meta, err = contextValue[*LessonMetadata](fc, KeyLessonMeta); err != nil {
		return nil, err
	}
	if in.Bank, err = contextValue[*MisconceptionBank](fc, KeyMisconBank); err != nil {
		return nil, err
	}
	if in.MiniLesson, err = contextValue[string](fc, KeyMiniLesson); err != nil {
		return nil, err
	}
	if in.LearnerLevel, err = contextValue[string](fc, KeyLearnerLevel); err != nil {
		return nil, err
	}
	return in, nil
}

func (s *generateMCQsStep) Execute(ctx context.Context, sc *flow.StepContext, in flow.Inputs) (*flow.StepResult, error) {
	inputs := in.(*mcqInputs)

	doc := struct {
		MCQs []MCQDraft `json:"mcqs"`
	}{}
	_, err := sc.LLM.GenerateStructured(ctx, llm.Request{
		Messages:    s.prompts.BuildMCQMessages(inputs.Meta, inputs.Bank, inputs.MiniLesson, inputs.LearnerLevel),
		Temperature: temperature(tempStructured),
		Scope:       sc.Scope(),
	}, mcqSetSchema, &doc)
	if err != nil {
		return nil, err
	}

	return &flow.StepResult{
		Outputs: &MCQSetOutputs{MCQs: doc.MCQs},
		Writes:  map[string]any{KeyMCQs: doc.MCQs},
	}, nil
}

// generateShortAnswersStep writes the lesson's short-answer exercises.
type generateShortAnswersStep struct {
	prompts *PromptBuilder
}

type shortAnswerInputs struct {
	Meta       *LessonMetadata `json:"meta"`
	MiniLesson string          `json:"mini_lesson"`
}

func (in *shortAnswerInputs) Validate() error {
	if in.Meta == nil {
		return fmt.Errorf("lesson metadata is required")
	}
	if in.MiniLesson == "" {
		return fmt.Errorf("mini_lesson is required")
	}
	return nil
}

// ShortAnswerSetOutputs records the generated short-answer exercises.
type ShortAnswerSetOutputs struct {
	ShortAnswers []ShortAnswerDraft `json:"short_answers"`
}

func (o *ShortAnswerSetOutputs) Validate() error {
	if len(o.ShortAnswers) == 0 {
		return fmt.Errorf("no short answers generated")
	}
	for i, sa := range o.ShortAnswers {
		if sa.Stem == "" || sa.LOID == "" || sa.CanonicalAnswer == "" {
			return fmt.Errorf("short_answers[%d]: stem, lo_id and canonical_answer are required", i)
		}
	}
	return nil
}

func (s *generateShortAnswersStep) Name() string { return "generate_short_answers" }

func (s *generateShortAnswersStep) BindInputs(fc *flow.Context) (flow.Inputs, error) {
	in := &shortAnswerInputs{}
	var err error
	if in.Meta, err = contextValue[*LessonMetadata](fc, KeyLessonMeta); err != nil {
		return nil, err
	}
	if in.MiniLesson, err = contextValue[string](fc, KeyMiniLesson); err != nil {
		return nil, err
	}
	return in, nil
}

func (s *generateShortAnswersStep) Execute(ctx context.Context, sc *flow.StepContext, in flow.Inputs) (*flow.StepResult, error) {
	inputs := in.(*shortAnswerInputs)

	doc := struct {
		ShortAnswers []ShortAnswerDraft `json:"short_answers"`
	}{}
	_, err := sc.LLM.GenerateStructured(ctx, llm.Request{
		Messages:    s.prompts.BuildShortAnswerMessages(inputs.Meta, inputs.MiniLesson),
		Temperature: temperature(tempStructured),
		Scope:       sc.Scope(),
	}, shortAnswerSetSchema, &doc)
	if err != nil {
		return nil, err
	}

	return &flow.StepResult{
		Outputs: &ShortAnswerSetOutputs{ShortAnswers: doc.ShortAnswers},
		Writes:  map[string]any{KeyShortAnswers: doc.ShortAnswers},
	}, nil
}

// assembleLessonPackageStep collects everything the flow produced into the
// versioned lesson package. No LLM call; the engine validates the package,
// so a malformed one fails the flow here and is never persisted.
type assembleLessonPackageStep struct{}

type assembleInputs struct {
	Meta           *LessonMetadata            `json:"meta"`
	MiniLesson     string                     `json:"mini_lesson"`
	LearnerLevel   string                     `json:"learner_level"`
	GlossaryTerms  []models.GlossaryTerm      `json:"glossary_terms,omitempty"`
	MCQs           []MCQDraft                 `json:"mcqs,omitempty"`
	ShortAnswers   []ShortAnswerDraft         `json:"short_answers,omitempty"`
	Bank           *MisconceptionBank         `json:"bank,omitempty"`
	UnitObjectives []models.LearningObjective `json:"unit_objectives,omitempty"`
}

func (in *assembleInputs) Validate() error {
	if in.Meta == nil {
		return fmt.Errorf("lesson metadata is required")
	}
	if in.MiniLesson == "" {
		return fmt.Errorf("mini_lesson is required")
	}
	if in.LearnerLevel == "" {
		return fmt.Errorf("learner_level is required")
	}
	return nil
}

func (s *assembleLessonPackageStep) Name() string { return "assemble_lesson_package" }

func (s *assembleLessonPackageStep) BindInputs(fc *flow.Context) (flow.Inputs, error) {
	in := &assembleInputs{}
	var err error
	if in.Meta, err = contextValue[*LessonMetadata](fc, KeyLessonMeta); err != nil {
		return nil, err
	}
	if in.MiniLesson, err = contextValue[string](fc, KeyMiniLesson); err != nil {
		return nil, err
	}
	if in.LearnerLevel, err = contextValue[string](fc, KeyLearnerLevel); err != nil {
		return nil, err
	}
	if in.GlossaryTerms, _, err = optionalValue[[]models.GlossaryTerm](fc, KeyGlossary); err != nil {
		return nil, err
	}
	if in.MCQs, _, err = optionalValue[[]MCQDraft](fc, KeyMCQs); err != nil {
		return nil, err
	}
	if in.ShortAnswers, _, err = optionalValue[[]ShortAnswerDraft](fc, KeyShortAnswers); err != nil {
		return nil, err
	}
	if in.Bank, _, err = optionalValue[*MisconceptionBank](fc, KeyMisconBank); err != nil {
		return nil, err
	}
	if in.UnitObjectives, _, err = optionalValue[[]models.LearningObjective](fc, KeyObjectives); err != nil {
		return nil, err
	}
	return in, nil
}

func (s *assembleLessonPackageStep) Execute(ctx context.Context, sc *flow.StepContext, in flow.Inputs) (*flow.StepResult, error) {
	inputs := in.(*assembleInputs)

	pkg := &models.LessonPackage{
		Meta: models.PackageMeta{
			Title:                inputs.Meta.LessonTitle,
			LearnerLevel:         inputs.LearnerLevel,
			PackageSchemaVersion: models.PackageSchemaVersion,
			ContentVersion:       1,
		},
		Objectives:    inputs.Meta.Objectives,
		GlossaryTerms: inputs.GlossaryTerms,
		MiniLesson:    inputs.MiniLesson,
	}
	for _, q := range inputs.MCQs {
		pkg.Exercises = append(pkg.Exercises, q.Exercise())
	}
	for _, sa := range inputs.ShortAnswers {
		pkg.Exercises = append(pkg.Exercises, sa.Exercise())
	}
	if inputs.Bank != nil {
		pkg.Misconceptions = inputs.Bank.Misconceptions
		pkg.Confusables = inputs.Bank.Confusables
	}

	// Lesson objectives must be objectives the unit actually declares;
	// a package that drifted off-plan never leaves the flow.
	if len(inputs.UnitObjectives) > 0 {
		ids := make([]string, 0, len(inputs.UnitObjectives))
		for _, lo := range inputs.UnitObjectives {
			ids = append(ids, lo.ID)
		}
		if err := pkg.ValidateAgainstObjectives(ids); err != nil {
			return nil, llm.NewError(llm.ErrorTypeInvalidResponse, "lesson package failed objective check", err)
		}
	}

	return &flow.StepResult{
		Outputs: pkg,
		Writes:  map[string]any{KeyLessonPackage: pkg},
	}, nil
}
