package content

import (
	"fmt"
	"strings"

	"github.com/brianfields/deeplearn-sub002/pkg/models"
)

// PromptBuilder builds all prompt text for the generation steps.
// It composes system messages, user messages, and formatting instructions
// for structured calls. Stateless: all state comes from parameters, so a
// single instance is safe for concurrent use.
type PromptBuilder struct{}

// NewPromptBuilder creates a PromptBuilder.
func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// learnerLevelGuidance phrases the target audience for each learner level.
// Every prompt that shapes reading level goes through this table.
var learnerLevelGuidance = map[string]string{
	models.LearnerLevelBeginner:     "Write for a motivated beginner with no prior exposure to the subject. Define every term on first use, prefer concrete examples over abstractions, and keep sentences short.",
	models.LearnerLevelIntermediate: "Write for a learner who knows the fundamentals. Skip basic definitions, build on standard concepts, and introduce nuance and common edge cases.",
	models.LearnerLevelAdvanced:     "Write for an advanced learner. Be precise and dense, engage with subtleties and trade-offs, and do not restate basics.",
}

// LevelGuidance returns the audience phrasing for a learner level, falling
// back to beginner for unknown values.
func LevelGuidance(learnerLevel string) string {
	if g, ok := learnerLevelGuidance[learnerLevel]; ok {
		return g
	}
	return learnerLevelGuidance[models.LearnerLevelBeginner]
}

const instructionalDesignerRole = `You are an expert instructional designer. You turn source material into tightly scoped, pedagogically sound learning content. You follow length and format instructions exactly.`

const structuredOutputReminder = `Return ONLY a JSON document matching the required schema. No markdown fences, no commentary before or after the JSON.`

// sourceMaterialTemplate is the user prompt for generating teaching text from
// a bare topic. %s = topic, %d = word budget, %s = level guidance.
const sourceMaterialTemplate = `Write original teaching material on the topic below. This text is the single source that unit and lesson generation will draw from, so it must be self-contained, factually careful, and organized from fundamentals to applications.

Topic: %s

Length: roughly %d words.
%s

Structure the material with markdown headings, one concept per section. Include worked examples where they aid understanding. Do not include exercises or quizzes, only the teaching text itself.`

// unitMetadataTemplate is the user prompt for extracting a unit plan.
// %s = level guidance, %s = lesson count instruction, %s = source material.
const unitMetadataTemplate = `Read the source material below and produce a unit plan as JSON.

Requirements:
- unit_title: a short, learner-facing title for the whole unit.
- description: two or three sentences a learner reads before starting.
- learning_objectives: the distinct objectives this material supports. Give each a stable id of the form "lo_1", "lo_2", ... in order, a short imperative title, and a bloom_level (remember, understand, apply, analyze, evaluate, create).
- lessons: an ordered list of lesson plans. Each lesson needs a title, a one-sentence lesson_objective, learning_objective_ids drawn ONLY from the ids you defined above, and 3-6 key_concepts (the terms the lesson will define and test).

%s
%s

Source material:
<<<SOURCE
%s
SOURCE>>>`

// unitSummaryTemplate is the user prompt for the learner-facing unit summary.
// %s = unit title, %s = lesson titles list, %s = level guidance, %s = source.
const unitSummaryTemplate = `Write a learner-facing summary of the unit "%s".

The unit contains these lessons:
%s

The summary should be one tight paragraph (3-5 sentences): what the unit covers, why it matters, and what the learner will be able to do afterwards. It will also open the unit's podcast, so it must read well aloud.
%s

Source material:
<<<SOURCE
%s
SOURCE>>>`

// lessonMetadataTemplate is the user prompt for extracting lesson metadata.
// %s = lesson title, %s = lesson objective, %s = unit objectives listing,
// %s = assigned LO ids, %s = level guidance, %s = source material.
const lessonMetadataTemplate = `Plan the lesson "%s" as JSON.

Lesson objective: %s

The unit's learning objectives are:
%s

This lesson covers: %s

Produce:
- objectives: one entry per covered unit objective, keeping the SAME id and rewriting the text as a lesson-scoped "you will be able to" statement.
- key_concepts: 3-8 terms this lesson must define and assess.
- misconception_seeds: 2-5 wrong beliefs learners commonly hold about these concepts.
- confusable_seeds: 0-4 pairs of terms learners mix up, each written as "A vs B".

%s

Source material:
<<<SOURCE
%s
SOURCE>>>`

// misconceptionBankTemplate is the user prompt for the misconception bank.
// %s = lesson title, %s = key concepts, %s = seeds, %s = source material.
const misconceptionBankTemplate = `Build the misconception bank for the lesson "%s" as JSON.

Key concepts: %s

Seed wrong beliefs to develop (extend or correct this list as the material demands):
%s

Produce:
- misconceptions: 2-6 entries with ids "mc_1", "mc_2", ... Each pairs a misbelief (stated the way a learner would say it) with a precise correction grounded in the source material.
- confusables: 0-4 entries with ids "cf_1", "cf_2", ... Each contrasts two commonly conflated terms (fields a and b) with a one-sentence contrast that makes the difference memorable.

Source material:
<<<SOURCE
%s
SOURCE>>>`

// didacticSnippetTemplate is the user prompt for the mini-lesson.
// %s = lesson title, %s = objectives listing, %s = misconception listing,
// %s = level guidance, %s = source material.
const didacticSnippetTemplate = `Write the mini-lesson for "%s" as JSON with a single "mini_lesson" field containing markdown.

The mini-lesson must teach these objectives:
%s

Address these misconceptions head-on in the text (without labeling them as misconceptions):
%s

Length: 250-500 words of markdown. Use short paragraphs and at most two headings. Include one concrete worked example.
%s

Source material:
<<<SOURCE
%s
SOURCE>>>`

// glossaryTemplate is the user prompt for glossary generation.
// %s = lesson title, %s = key concepts, %s = level guidance, %s = source.
const glossaryTemplate = `Write the glossary for the lesson "%s" as JSON.

Define each of these key concepts: %s

Produce glossary_terms with ids "gt_1", "gt_2", ... Each entry needs:
- term: the concept name.
- definition: one or two sentences in plain language, grounded in the source material.
- micro_check: one short self-check question a learner can answer from the definition alone.

%s

Source material:
<<<SOURCE
%s
SOURCE>>>`

// mcqTemplate is the user prompt for MCQ generation.
// %s = lesson title, %s = objectives listing, %s = misconception listing,
// %s = mini lesson, %s = level guidance.
const mcqTemplate = `Write 3-5 multiple-choice questions for the lesson "%s" as JSON.

Objectives to assess (use these exact ids in lo_id):
%s

Misconceptions to turn into distractors:
%s

Rules:
- ids "mcq_1", "mcq_2", ...; exactly one correct option per question.
- options: 3 or 4 choices with ids "A", "B", "C", "D" in order.
- answer_key: option_id of the correct choice plus rationale_right, one sentence on why it is correct.
- Distractors must be plausible: prefer the misconceptions above over absurd choices.
- cognitive_level: remember, understand, or apply.
- Never use "all of the above" or "none of the above".

%s

The mini-lesson the questions must be answerable from:
<<<LESSON
%s
LESSON>>>`

// shortAnswerTemplate is the user prompt for short-answer generation.
// %s = lesson title, %s = objectives listing, %s = mini lesson.
const shortAnswerTemplate = `Write 1-3 short-answer exercises for the lesson "%s" as JSON.

Objectives to assess (use these exact ids in lo_id):
%s

Rules:
- ids "sa_1", "sa_2", ...
- stem: a question answerable in one phrase or sentence.
- canonical_answer: the model answer.
- acceptable_patterns: 2-5 lowercase substrings or phrasings that indicate a correct answer.
- wrong_answers: 1-3 answers that look close but are wrong.

The mini-lesson the exercises must be answerable from:
<<<LESSON
%s
LESSON>>>`

// packageDraftTemplate is the user prompt for the fast flow's combined call.
// %s = lesson title, %s = lesson objective, %s = unit objectives listing,
// %s = assigned LO ids, %s = level guidance, %s = source material.
const packageDraftTemplate = `Draft the complete teaching content for the lesson "%s" as a single JSON document.

Lesson objective: %s

The unit's learning objectives are:
%s

This lesson covers: %s

Produce in ONE document:
- objectives: one entry per covered unit objective, keeping the SAME id and rewriting the text as a lesson-scoped "you will be able to" statement.
- key_concepts: 3-8 terms the lesson defines.
- mini_lesson: 250-500 words of markdown teaching the objectives, with one worked example.
- glossary_terms: one entry per key concept (ids "gt_1", ...) with term, definition, micro_check.
- misconceptions: 2-5 entries (ids "mc_1", ...) pairing a misbelief with its correction.
- confusables: 0-3 entries (ids "cf_1", ...) contrasting conflated terms.

%s

Source material:
<<<SOURCE
%s
SOURCE>>>`

// artDescriptionTemplate is the user prompt for cover art description.
// %s = unit title, %s = unit summary.
const artDescriptionTemplate = `Design cover art for a learning unit as JSON.

Unit: %s
Summary: %s

Produce:
- prompt: an image-generation prompt for a flat, modern, text-free illustration that evokes the subject. Describe composition and mood, not abstract praise. Explicitly state that the image contains no words or letters.
- alt_text: one sentence describing the image for screen readers.
- palette: 2-4 color names that set the tone.`

// podcastTranscriptTemplate is the user prompt for the podcast transcript.
// %s = unit title, %s = unit summary, %s = lesson titles list.
const podcastTranscriptTemplate = `Write a two-host podcast transcript introducing the learning unit "%s".

Unit summary: %s

Lessons in the unit:
%s

Format: alternating lines starting with "HOST A:" and "HOST B:". The hosts preview what the unit covers, why it matters, and what each lesson adds. Conversational and concrete, no filler banter. Length: 400-700 words. Plain text only, no markdown, no sound-effect directions.`

// BuildSourceMaterialMessages builds the conversation for teaching-text
// generation from a topic.
func (b *PromptBuilder) BuildSourceMaterialMessages(topic, learnerLevel string, targetLessonCount int) []models.ChatMessage {
	words := wordBudget(targetLessonCount)
	return []models.ChatMessage{
		{Role: models.RoleSystem, Content: instructionalDesignerRole},
		{Role: models.RoleUser, Content: fmt.Sprintf(sourceMaterialTemplate, topic, words, LevelGuidance(learnerLevel))},
	}
}

// BuildUnitMetadataMessages builds the conversation for unit plan extraction.
func (b *PromptBuilder) BuildUnitMetadataMessages(sourceMaterial, learnerLevel string, targetLessonCount int) []models.ChatMessage {
	lessonCountInstr := "Choose the lesson count the material naturally supports (between 1 and 10)."
	if targetLessonCount > 0 {
		lessonCountInstr = fmt.Sprintf("Produce exactly %d lessons.", targetLessonCount)
	}
	user := fmt.Sprintf(unitMetadataTemplate, LevelGuidance(learnerLevel), lessonCountInstr, sourceMaterial)
	return []models.ChatMessage{
		{Role: models.RoleSystem, Content: instructionalDesignerRole + "\n\n" + structuredOutputReminder},
		{Role: models.RoleUser, Content: user},
	}
}

// BuildUnitSummaryMessages builds the conversation for the unit summary.
func (b *PromptBuilder) BuildUnitSummaryMessages(plan *models.UnitPlan, sourceMaterial, learnerLevel string) []models.ChatMessage {
	titles := make([]string, 0, len(plan.Lessons))
	for _, l := range plan.Lessons {
		titles = append(titles, l.Title)
	}
	user := fmt.Sprintf(unitSummaryTemplate, plan.UnitTitle, FormatNumberedList(titles), LevelGuidance(learnerLevel), sourceMaterial)
	return []models.ChatMessage{
		{Role: models.RoleSystem, Content: instructionalDesignerRole},
		{Role: models.RoleUser, Content: user},
	}
}

// BuildLessonMetadataMessages builds the conversation for lesson metadata
// extraction.
func (b *PromptBuilder) BuildLessonMetadataMessages(lesson *models.LessonPlan, unitObjectives []models.LearningObjective, sourceMaterial, learnerLevel string) []models.ChatMessage {
	user := fmt.Sprintf(lessonMetadataTemplate,
		lesson.Title,
		lesson.LessonObjective,
		FormatObjectives(unitObjectives),
		strings.Join(lesson.LearningObjectiveIDs, ", "),
		LevelGuidance(learnerLevel),
		sourceMaterial)
	return []models.ChatMessage{
		{Role: models.RoleSystem, Content: instructionalDesignerRole + "\n\n" + structuredOutputReminder},
		{Role: models.RoleUser, Content: user},
	}
}

// BuildMisconceptionBankMessages builds the conversation for the
// misconception bank.
func (b *PromptBuilder) BuildMisconceptionBankMessages(meta *LessonMetadata, sourceMaterial string) []models.ChatMessage {
	user := fmt.Sprintf(misconceptionBankTemplate,
		meta.LessonTitle,
		strings.Join(meta.KeyConcepts, ", "),
		FormatBulletList(meta.MisconceptionSeeds),
		sourceMaterial)
	return []models.ChatMessage{
		{Role: models.RoleSystem, Content: instructionalDesignerRole + "\n\n" + structuredOutputReminder},
		{Role: models.RoleUser, Content: user},
	}
}

// BuildDidacticSnippetMessages builds the conversation for the mini-lesson.
func (b *PromptBuilder) BuildDidacticSnippetMessages(meta *LessonMetadata, bank *MisconceptionBank, sourceMaterial, learnerLevel string) []models.ChatMessage {
	var misbeliefs []string
	for _, m := range bank.Misconceptions {
		misbeliefs = append(misbeliefs, m.Misbelief)
	}
	user := fmt.Sprintf(didacticSnippetTemplate,
		meta.LessonTitle,
		FormatLessonObjectives(meta.Objectives),
		FormatBulletList(misbeliefs),
		LevelGuidance(learnerLevel),
		sourceMaterial)
	return []models.ChatMessage{
		{Role: models.RoleSystem, Content: instructionalDesignerRole + "\n\n" + structuredOutputReminder},
		{Role: models.RoleUser, Content: user},
	}
}

// BuildGlossaryMessages builds the conversation for the glossary.
func (b *PromptBuilder) BuildGlossaryMessages(meta *LessonMetadata, sourceMaterial, learnerLevel string) []models.ChatMessage {
	user := fmt.Sprintf(glossaryTemplate,
		meta.LessonTitle,
		strings.Join(meta.KeyConcepts, ", "),
		LevelGuidance(learnerLevel),
		sourceMaterial)
	return []models.ChatMessage{
		{Role: models.RoleSystem, Content: instructionalDesignerRole + "\n\n" + structuredOutputReminder},
		{Role: models.RoleUser, Content: user},
	}
}

// BuildMCQMessages builds the conversation for MCQ generation.
func (b *PromptBuilder) BuildMCQMessages(meta *LessonMetadata, bank *MisconceptionBank, miniLesson, learnerLevel string) []models.ChatMessage {
	var misbeliefs []string
	for _, m := range bank.Misconceptions {
		misbeliefs = append(misbeliefs, m.Misbelief)
	}
	user := fmt.Sprintf(mcqTemplate,
		meta.LessonTitle,
		FormatLessonObjectives(meta.Objectives),
		FormatBulletList(misbeliefs),
		LevelGuidance(learnerLevel),
		miniLesson)
	return []models.ChatMessage{
		{Role: models.RoleSystem, Content: instructionalDesignerRole + "\n\n" + structuredOutputReminder},
		{Role: models.RoleUser, Content: user},
	}
}

// BuildShortAnswerMessages builds the conversation for short-answer
// generation.
func (b *PromptBuilder) BuildShortAnswerMessages(meta *LessonMetadata, miniLesson string) []models.ChatMessage {
	user := fmt.Sprintf(shortAnswerTemplate,
		meta.LessonTitle,
		FormatLessonObjectives(meta.Objectives),
		miniLesson)
	return []models.ChatMessage{
		{Role: models.RoleSystem, Content: instructionalDesignerRole + "\n\n" + structuredOutputReminder},
		{Role: models.RoleUser, Content: user},
	}
}

// BuildPackageDraftMessages builds the fast flow's single combined call.
func (b *PromptBuilder) BuildPackageDraftMessages(lesson *models.LessonPlan, unitObjectives []models.LearningObjective, sourceMaterial, learnerLevel string) []models.ChatMessage {
	user := fmt.Sprintf(packageDraftTemplate,
		lesson.Title,
		lesson.LessonObjective,
		FormatObjectives(unitObjectives),
		strings.Join(lesson.LearningObjectiveIDs, ", "),
		LevelGuidance(learnerLevel),
		sourceMaterial)
	return []models.ChatMessage{
		{Role: models.RoleSystem, Content: instructionalDesignerRole + "\n\n" + structuredOutputReminder},
		{Role: models.RoleUser, Content: user},
	}
}

// BuildArtDescriptionMessages builds the conversation for cover art design.
func (b *PromptBuilder) BuildArtDescriptionMessages(unitTitle, unitSummary string) []models.ChatMessage {
	return []models.ChatMessage{
		{Role: models.RoleSystem, Content: instructionalDesignerRole + "\n\n" + structuredOutputReminder},
		{Role: models.RoleUser, Content: fmt.Sprintf(artDescriptionTemplate, unitTitle, unitSummary)},
	}
}

// BuildPodcastTranscriptMessages builds the conversation for the podcast
// transcript.
func (b *PromptBuilder) BuildPodcastTranscriptMessages(unitTitle, unitSummary string, lessonTitles []string) []models.ChatMessage {
	user := fmt.Sprintf(podcastTranscriptTemplate, unitTitle, unitSummary, FormatNumberedList(lessonTitles))
	return []models.ChatMessage{
		{Role: models.RoleSystem, Content: instructionalDesignerRole},
		{Role: models.RoleUser, Content: user},
	}
}

// wordBudget sizes generated source material from the requested lesson count.
// Unknown count gets a mid-size unit's budget.
func wordBudget(targetLessonCount int) int {
	if targetLessonCount <= 0 {
		targetLessonCount = 4
	}
	return targetLessonCount * 400
}

// FormatObjectives renders unit learning objectives one per line with ids.
func FormatObjectives(objectives []models.LearningObjective) string {
	var sb strings.Builder
	for _, lo := range objectives {
		sb.WriteString("- ")
		sb.WriteString(lo.ID)
		sb.WriteString(": ")
		sb.WriteString(lo.Title)
		if lo.Description != "" {
			sb.WriteString(" (")
			sb.WriteString(lo.Description)
			sb.WriteString(")")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatLessonObjectives renders lesson-scoped objectives one per line.
func FormatLessonObjectives(objectives []models.Objective) string {
	var sb strings.Builder
	for _, o := range objectives {
		sb.WriteString("- ")
		sb.WriteString(o.ID)
		sb.WriteString(": ")
		sb.WriteString(o.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatBulletList renders items one per line as markdown bullets.
// Empty input renders "(none)" so templates never show a dangling header.
func FormatBulletList(items []string) string {
	if len(items) == 0 {
		return "(none)\n"
	}
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString("- ")
		sb.WriteString(item)
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatNumberedList renders items as a 1-based numbered list.
func FormatNumberedList(items []string) string {
	var sb strings.Builder
	for i, item := range items {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, item)
	}
	return sb.String()
}
