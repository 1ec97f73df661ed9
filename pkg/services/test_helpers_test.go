package services

import (
	"context"
	"testing"

	"github.com/brianfields/deeplearn-sub002/ent"
	"github.com/brianfields/deeplearn-sub002/pkg/models"
	"github.com/stretchr/testify/require"
)

// tokenUsage builds a TokenUsage where input is 2/3 of the total, matching
// the rough shape providers report.
func tokenUsage(total int) models.TokenUsage {
	input := total * 2 / 3
	return models.TokenUsage{
		InputTokens:  input,
		OutputTokens: total - input,
		TotalTokens:  total,
	}
}

// validLessonPackage builds the smallest package that passes validation:
// one objective, a mini-lesson, and one MCQ referencing the objective.
func validLessonPackage(title string) *models.LessonPackage {
	return &models.LessonPackage{
		Meta: models.PackageMeta{
			Title:                title,
			LearnerLevel:         models.LearnerLevelBeginner,
			PackageSchemaVersion: models.PackageSchemaVersion,
			ContentVersion:       1,
		},
		Objectives: []models.Objective{
			{ID: "lo_1", Text: "Declare and assign variables"},
		},
		MiniLesson: "Variables name values so later code can refer to them.",
		Exercises: []models.Exercise{
			{
				ID:           "ex_1",
				ExerciseType: models.ExerciseTypeMCQ,
				LOID:         "lo_1",
				Stem:         "What does a variable hold?",
				Options: []models.MCQOption{
					{ID: "A", Text: "A value"},
					{ID: "B", Text: "A file"},
				},
				AnswerKey: &models.AnswerKey{OptionID: "A"},
			},
		},
	}
}

// createTestUnit submits a background unit and returns the row.
func createTestUnit(t *testing.T, client *ent.Client) *ent.Unit {
	t.Helper()
	svc := NewUnitService(client)
	u, err := svc.CreateUnit(context.Background(), models.CreateUnitRequest{
		Topic:      "Introduction to Go",
		Background: true,
	}, "test-pod")
	require.NoError(t, err)
	return u
}
