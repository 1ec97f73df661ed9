// Package content defines the learning-content generation flows: the typed
// steps, prompts, and JSON response schemas, plus the store contracts unit
// creation persists through.
package content

// Flow names recorded on flow_runs rows.
const (
	FlowUnitCreation       = "unit_creation"
	FlowLessonCreation     = "lesson_creation"
	FlowFastLessonCreation = "fast_lesson_creation"
	FlowUnitArtCreation    = "unit_art_creation"
	FlowUnitPodcast        = "unit_podcast"
)

// Flow context keys. Submission inputs seed the first group; steps write the
// rest as they complete.
const (
	KeyTopic             = "topic"
	KeySourceMaterial    = "source_material"
	KeyLearnerLevel      = "learner_level"
	KeyTargetLessonCount = "target_lesson_count"

	KeyUnitPlan      = "unit_plan"
	KeyUnitSummary   = "unit_summary"
	KeyLessonPlan    = "lesson_plan"
	KeyLessonTitle   = "lesson_title"
	KeyUnitTitle     = "unit_title"
	KeyObjectives    = "objectives"
	KeyLessonMeta    = "lesson_metadata"
	KeyMisconBank    = "misconception_bank"
	KeyMiniLesson    = "mini_lesson"
	KeyGlossary      = "glossary"
	KeyMCQs          = "mcqs"
	KeyShortAnswers  = "short_answers"
	KeyDraftPackage  = "draft_package"
	KeyLessonPackage = "lesson_package"

	KeyUnitID         = "unit_id"
	KeyLessonTitles   = "lesson_titles"
	KeyArtDescription = "art_description"
	KeyArtImageID     = "art_image_id"
	KeyArtAltText     = "art_alt_text"
	KeyTranscript     = "podcast_transcript"
	KeyAudioID        = "podcast_audio_id"
)

// Flow metadata tags persisted on flow_runs.flow_metadata.
const (
	MetaUnitID          = "unit_id"
	MetaParentFlowRunID = "parent_flow_run_id"
	MetaLessonIndex     = "lesson_index"
	MetaLessonTitle     = "lesson_title"
)
