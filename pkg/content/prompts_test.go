package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brianfields/deeplearn-sub002/pkg/models"
)

func TestLevelGuidance_FallsBackToBeginner(t *testing.T) {
	assert.Equal(t, learnerLevelGuidance[models.LearnerLevelAdvanced], LevelGuidance(models.LearnerLevelAdvanced))
	assert.Equal(t, learnerLevelGuidance[models.LearnerLevelBeginner], LevelGuidance("expert"))
	assert.Equal(t, learnerLevelGuidance[models.LearnerLevelBeginner], LevelGuidance(""))
}

func TestStructuredPromptsCarryReminder(t *testing.T) {
	b := NewPromptBuilder()
	meta := testLessonMeta()

	structured := map[string][]models.ChatMessage{
		"unit_metadata":   b.BuildUnitMetadataMessages("text", models.LearnerLevelBeginner, 2),
		"lesson_metadata": b.BuildLessonMetadataMessages(&testUnitPlan().Lessons[0], testObjectives(), "text", models.LearnerLevelBeginner),
		"bank":            b.BuildMisconceptionBankMessages(meta, "text"),
		"glossary":        b.BuildGlossaryMessages(meta, "text", models.LearnerLevelBeginner),
		"mcqs":            b.BuildMCQMessages(meta, testBank(), "mini lesson", models.LearnerLevelBeginner),
		"short_answers":   b.BuildShortAnswerMessages(meta, "mini lesson"),
		"package_draft":   b.BuildPackageDraftMessages(&testUnitPlan().Lessons[0], testObjectives(), "text", models.LearnerLevelBeginner),
		"art_description": b.BuildArtDescriptionMessages("title", "summary"),
	}
	for name, msgs := range structured {
		require.Len(t, msgs, 2, name)
		assert.Equal(t, models.RoleSystem, msgs[0].Role, name)
		assert.Equal(t, models.RoleUser, msgs[1].Role, name)
		assert.Contains(t, msgs[0].Content, structuredOutputReminder, name)
	}

	// Freeform prose prompts carry no JSON reminder.
	prose := map[string][]models.ChatMessage{
		"source_material": b.BuildSourceMaterialMessages("topic", models.LearnerLevelBeginner, 2),
		"unit_summary":    b.BuildUnitSummaryMessages(testUnitPlan(), "text", models.LearnerLevelBeginner),
		"transcript":      b.BuildPodcastTranscriptMessages("title", "summary", nil),
	}
	for name, msgs := range prose {
		require.Len(t, msgs, 2, name)
		assert.NotContains(t, msgs[0].Content, structuredOutputReminder, name)
	}
}

func TestBuildSourceMaterialMessages_WordBudget(t *testing.T) {
	b := NewPromptBuilder()

	msgs := b.BuildSourceMaterialMessages("topic", models.LearnerLevelBeginner, 3)
	assert.Contains(t, msgs[1].Content, "1200")

	// Unset lesson count budgets for the default unit size.
	msgs = b.BuildSourceMaterialMessages("topic", models.LearnerLevelBeginner, 0)
	assert.Contains(t, msgs[1].Content, "1600")
}

func TestFormatObjectives(t *testing.T) {
	objectives := []models.LearningObjective{
		{ID: "lo_1", Title: "Explain X"},
		{ID: "lo_2", Title: "Apply Y", Description: "with a worked example"},
	}
	got := FormatObjectives(objectives)
	assert.Equal(t, "- lo_1: Explain X\n- lo_2: Apply Y (with a worked example)\n", got)
}

func TestFormatBulletList_Empty(t *testing.T) {
	assert.Equal(t, "(none)\n", FormatBulletList(nil))
	assert.Equal(t, "- a\n- b\n", FormatBulletList([]string{"a", "b"}))
}

func TestFormatNumberedList(t *testing.T) {
	assert.Equal(t, "1. first\n2. second\n", FormatNumberedList([]string{"first", "second"}))
}
