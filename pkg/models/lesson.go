package models

import "fmt"

// PackageSchemaVersion is the current lesson package schema version.
const PackageSchemaVersion = 1

// Exercise types carried in a lesson package.
const (
	ExerciseTypeMCQ         = "mcq"
	ExerciseTypeShortAnswer = "short_answer"
)

// LessonPackage is the versioned, self-contained payload of one lesson:
// objectives, didactic mini-lesson, glossary, exercises, and the
// misconception/confusable banks. Stored as a JSON column on the lesson row.
type LessonPackage struct {
	Meta           PackageMeta     `json:"meta"`
	Objectives     []Objective     `json:"objectives"`
	GlossaryTerms  []GlossaryTerm  `json:"glossary_terms,omitempty"`
	MiniLesson     string          `json:"mini_lesson"`
	Exercises      []Exercise      `json:"exercises,omitempty"`
	Misconceptions []Misconception `json:"misconceptions,omitempty"`
	Confusables    []Confusable    `json:"confusables,omitempty"`
}

// PackageMeta identifies a package and its schema/content versions.
type PackageMeta struct {
	LessonID             string `json:"lesson_id"`
	Title                string `json:"title"`
	LearnerLevel         string `json:"learner_level"`
	PackageSchemaVersion int    `json:"package_schema_version"`
	ContentVersion       int    `json:"content_version"`
}

// Objective is a lesson-scoped view of a unit learning objective. The ID
// matches the unit's learning objective id the lesson covers.
type Objective struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// GlossaryTerm defines one key term, optionally with a one-line self-check.
type GlossaryTerm struct {
	ID         string `json:"id"`
	Term       string `json:"term"`
	Definition string `json:"definition"`
	MicroCheck string `json:"micro_check,omitempty"`
}

// Exercise is one assessment item. ExerciseType discriminates the shape:
// mcq items carry Options and AnswerKey, short_answer items carry
// CanonicalAnswer and AcceptablePatterns.
type Exercise struct {
	ID             string `json:"id"`
	ExerciseType   string `json:"exercise_type"`
	LOID           string `json:"lo_id"`
	CognitiveLevel string `json:"cognitive_level,omitempty"`
	Stem           string `json:"stem"`

	// MCQ fields
	Options   []MCQOption `json:"options,omitempty"`
	AnswerKey *AnswerKey  `json:"answer_key,omitempty"`

	// Short-answer fields
	CanonicalAnswer    string   `json:"canonical_answer,omitempty"`
	AcceptablePatterns []string `json:"acceptable_patterns,omitempty"`
	WrongAnswers       []string `json:"wrong_answers,omitempty"`
}

// MCQOption is one choice of a multiple-choice exercise. IDs are single
// letters ("A".."D").
type MCQOption struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// AnswerKey marks the correct option of an MCQ.
type AnswerKey struct {
	OptionID       string `json:"option_id"`
	RationaleRight string `json:"rationale_right,omitempty"`
}

// Misconception pairs a common wrong belief with its correction.
type Misconception struct {
	ID         string `json:"id"`
	Misbelief  string `json:"misbelief"`
	Correction string `json:"correction"`
}

// Confusable contrasts two commonly conflated concepts.
type Confusable struct {
	ID       string `json:"id"`
	A        string `json:"a"`
	B        string `json:"b"`
	Contrast string `json:"contrast"`
}

// Validate checks the package's internal invariants: non-empty title and
// mini-lesson, at least one objective and one exercise, every exercise
// referencing a package objective, and every MCQ answer key naming one of
// its own options. An invalid package must never be persisted.
func (p *LessonPackage) Validate() error {
	if p.Meta.Title == "" {
		return fmt.Errorf("meta.title is empty")
	}
	if p.MiniLesson == "" {
		return fmt.Errorf("mini_lesson is empty")
	}
	if len(p.Objectives) == 0 {
		return fmt.Errorf("package has no objectives")
	}
	if len(p.Exercises) == 0 {
		return fmt.Errorf("package has no exercises")
	}
	loIDs := make(map[string]bool, len(p.Objectives))
	for i, o := range p.Objectives {
		if o.ID == "" {
			return fmt.Errorf("objectives[%d]: id is empty", i)
		}
		loIDs[o.ID] = true
	}
	for i, ex := range p.Exercises {
		if err := validateExercise(ex, loIDs); err != nil {
			return fmt.Errorf("exercises[%d]: %w", i, err)
		}
	}
	return nil
}

// ValidateAgainstObjectives checks that every objective the package claims to
// cover exists in the owning unit's learning objectives.
func (p *LessonPackage) ValidateAgainstObjectives(unitLOIDs []string) error {
	known := make(map[string]bool, len(unitLOIDs))
	for _, id := range unitLOIDs {
		known[id] = true
	}
	for _, o := range p.Objectives {
		if !known[o.ID] {
			return fmt.Errorf("objective %s is not a unit learning objective", o.ID)
		}
	}
	return nil
}

func validateExercise(ex Exercise, loIDs map[string]bool) error {
	if ex.Stem == "" {
		return fmt.Errorf("stem is empty")
	}
	if ex.LOID == "" || !loIDs[ex.LOID] {
		return fmt.Errorf("lo_id %q does not reference a package objective", ex.LOID)
	}
	switch ex.ExerciseType {
	case ExerciseTypeMCQ:
		if len(ex.Options) < 2 {
			return fmt.Errorf("mcq has %d options, need at least 2", len(ex.Options))
		}
		if ex.AnswerKey == nil {
			return fmt.Errorf("mcq has no answer_key")
		}
		found := false
		for _, opt := range ex.Options {
			if opt.ID == ex.AnswerKey.OptionID {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("answer_key.option_id %q is not an option", ex.AnswerKey.OptionID)
		}
	case ExerciseTypeShortAnswer:
		if ex.CanonicalAnswer == "" {
			return fmt.Errorf("short_answer has no canonical_answer")
		}
	default:
		return fmt.Errorf("unknown exercise_type %q", ex.ExerciseType)
	}
	return nil
}
