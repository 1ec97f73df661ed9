package models

import "fmt"

// Learner levels accepted on unit submissions.
const (
	LearnerLevelBeginner     = "beginner"
	LearnerLevelIntermediate = "intermediate"
	LearnerLevelAdvanced     = "advanced"
)

// Flow types selecting the lesson-generation pipeline.
const (
	FlowTypeStandard = "standard"
	FlowTypeFast     = "fast"
)

// ValidLearnerLevel reports whether level is one of the accepted values.
func ValidLearnerLevel(level string) bool {
	switch level {
	case LearnerLevelBeginner, LearnerLevelIntermediate, LearnerLevelAdvanced:
		return true
	}
	return false
}

// ValidFlowType reports whether flowType is one of the accepted values.
func ValidFlowType(flowType string) bool {
	return flowType == FlowTypeStandard || flowType == FlowTypeFast
}

// LearningObjective is one unit-scoped objective. IDs are stable within the
// unit ("lo_1", "lo_2", ...) and referenced by lesson plans and exercises.
type LearningObjective struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	BloomLevel  string `json:"bloom_level,omitempty"`
}

// CreationProgress tracks where a unit is in its creation pipeline. Stored as
// JSON on the unit row and surfaced to clients polling a background creation.
type CreationProgress struct {
	Stage        string        `json:"stage"`
	Message      string        `json:"message,omitempty"`
	LessonsTotal int           `json:"lessons_total,omitempty"`
	LessonsDone  int           `json:"lessons_done,omitempty"`
	LessonErrors []LessonError `json:"lesson_errors,omitempty"`
	MediaErrors  []string      `json:"media_errors,omitempty"`
}

// Creation progress stages, in pipeline order.
const (
	StageGeneratingMetadata = "generating_metadata"
	StageGeneratingLessons  = "generating_lessons"
	StageGeneratingMedia    = "generating_media"
	StageFinalizing         = "finalizing"
)

// LessonError records one failed lesson inside an otherwise-surviving unit
// creation. Index is the lesson's position in the unit plan.
type LessonError struct {
	Index int    `json:"index"`
	Title string `json:"title"`
	Error string `json:"error"`
}

// CreateUnitRequest contains fields for submitting a unit creation. Exactly
// one of Topic or SourceMaterial must be set.
type CreateUnitRequest struct {
	Topic             string `json:"topic,omitempty"`
	SourceMaterial    string `json:"source_material,omitempty"`
	TargetLessonCount int    `json:"target_lesson_count,omitempty"`
	LearnerLevel      string `json:"learner_level,omitempty"`
	FlowType          string `json:"flow_type,omitempty"`
	Background        bool   `json:"background,omitempty"`
	UserID            string `json:"user_id,omitempty"`
}

// UnitFilters contains filtering options for listing units.
type UnitFilters struct {
	Status string
	UserID string
	Limit  int
	Offset int
}

// TargetLessonCountBounds are the accepted bounds for an explicit
// target_lesson_count on a submission.
const (
	MinTargetLessonCount = 1
	MaxTargetLessonCount = 20
)

// ValidateTargetLessonCount checks an explicit lesson count request.
// Zero means "let the planner decide" and is always valid.
func ValidateTargetLessonCount(n int) error {
	if n == 0 {
		return nil
	}
	if n < MinTargetLessonCount || n > MaxTargetLessonCount {
		return fmt.Errorf("target_lesson_count must be between %d and %d, got %d",
			MinTargetLessonCount, MaxTargetLessonCount, n)
	}
	return nil
}
