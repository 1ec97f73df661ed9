package content

import (
	"fmt"
	"strings"

	"github.com/brianfields/deeplearn-sub002/pkg/models"
)

// Intermediate documents produced by generation steps and consumed by later
// steps in the same flow. They travel through the flow context under the
// Key* names and are persisted as step outputs.

// LessonMetadata is lesson planning output: the lesson-scoped objectives and
// the seeds later steps develop into the misconception bank and exercises.
type LessonMetadata struct {
	LessonTitle        string             `json:"lesson_title"`
	Objectives         []models.Objective `json:"objectives"`
	KeyConcepts        []string           `json:"key_concepts"`
	MisconceptionSeeds []string           `json:"misconception_seeds,omitempty"`
	ConfusableSeeds    []string           `json:"confusable_seeds,omitempty"`
}

// Validate checks that the metadata can drive the rest of the lesson flow.
func (m *LessonMetadata) Validate() error {
	if m.LessonTitle == "" {
		return fmt.Errorf("lesson_title is empty")
	}
	if len(m.Objectives) == 0 {
		return fmt.Errorf("lesson metadata has no objectives")
	}
	for i, o := range m.Objectives {
		if o.ID == "" || o.Text == "" {
			return fmt.Errorf("objectives[%d]: id and text are required", i)
		}
	}
	if len(m.KeyConcepts) == 0 {
		return fmt.Errorf("lesson metadata has no key concepts")
	}
	return nil
}

// MisconceptionBank holds the misconceptions and confusables a lesson's
// exercises draw their distractors from.
type MisconceptionBank struct {
	Misconceptions []models.Misconception `json:"misconceptions"`
	Confusables    []models.Confusable    `json:"confusables,omitempty"`
}

// Validate checks that every bank entry is complete. An empty bank is valid;
// distractor quality degrades but the flow can continue.
func (b *MisconceptionBank) Validate() error {
	for i, m := range b.Misconceptions {
		if m.Misbelief == "" || m.Correction == "" {
			return fmt.Errorf("misconceptions[%d]: misbelief and correction are required", i)
		}
	}
	for i, c := range b.Confusables {
		if c.A == "" || c.B == "" {
			return fmt.Errorf("confusables[%d]: a and b are required", i)
		}
	}
	return nil
}

// MCQDraft is one generated multiple-choice question before assembly turns
// it into a package exercise.
type MCQDraft struct {
	ID             string             `json:"id"`
	LOID           string             `json:"lo_id"`
	CognitiveLevel string             `json:"cognitive_level,omitempty"`
	Stem           string             `json:"stem"`
	Options        []models.MCQOption `json:"options"`
	AnswerKey      models.AnswerKey   `json:"answer_key"`
}

// Exercise converts the draft into its package form.
func (d MCQDraft) Exercise() models.Exercise {
	key := d.AnswerKey
	return models.Exercise{
		ID:             d.ID,
		ExerciseType:   models.ExerciseTypeMCQ,
		LOID:           d.LOID,
		CognitiveLevel: d.CognitiveLevel,
		Stem:           d.Stem,
		Options:        d.Options,
		AnswerKey:      &key,
	}
}

// ShortAnswerDraft is one generated short-answer exercise before assembly.
type ShortAnswerDraft struct {
	ID                 string   `json:"id"`
	LOID               string   `json:"lo_id"`
	CognitiveLevel     string   `json:"cognitive_level,omitempty"`
	Stem               string   `json:"stem"`
	CanonicalAnswer    string   `json:"canonical_answer"`
	AcceptablePatterns []string `json:"acceptable_patterns,omitempty"`
	WrongAnswers       []string `json:"wrong_answers,omitempty"`
}

// Exercise converts the draft into its package form.
func (d ShortAnswerDraft) Exercise() models.Exercise {
	return models.Exercise{
		ID:                 d.ID,
		ExerciseType:       models.ExerciseTypeShortAnswer,
		LOID:               d.LOID,
		CognitiveLevel:     d.CognitiveLevel,
		Stem:               d.Stem,
		CanonicalAnswer:    d.CanonicalAnswer,
		AcceptablePatterns: d.AcceptablePatterns,
		WrongAnswers:       d.WrongAnswers,
	}
}

// PackageDraft is the fast flow's single-call draft: everything the standard
// flow produces in separate steps except the exercises.
type PackageDraft struct {
	Objectives     []models.Objective     `json:"objectives"`
	KeyConcepts    []string               `json:"key_concepts"`
	MiniLesson     string                 `json:"mini_lesson"`
	GlossaryTerms  []models.GlossaryTerm  `json:"glossary_terms,omitempty"`
	Misconceptions []models.Misconception `json:"misconceptions,omitempty"`
	Confusables    []models.Confusable    `json:"confusables,omitempty"`
}

// Validate checks the draft carries enough to assemble a package from.
func (d *PackageDraft) Validate() error {
	if len(d.Objectives) == 0 {
		return fmt.Errorf("draft has no objectives")
	}
	if strings.TrimSpace(d.MiniLesson) == "" {
		return fmt.Errorf("mini_lesson is empty")
	}
	return nil
}

// ArtDescription is the designed cover art: the image prompt plus the
// accessibility text stored alongside the generated asset.
type ArtDescription struct {
	Prompt  string   `json:"prompt"`
	AltText string   `json:"alt_text"`
	Palette []string `json:"palette,omitempty"`
}

// Validate checks the description can drive image generation.
func (a *ArtDescription) Validate() error {
	if strings.TrimSpace(a.Prompt) == "" {
		return fmt.Errorf("prompt is empty")
	}
	if strings.TrimSpace(a.AltText) == "" {
		return fmt.Errorf("alt_text is empty")
	}
	return nil
}
