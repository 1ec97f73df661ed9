package e2e

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brianfields/deeplearn-sub002/pkg/api"
	"github.com/brianfields/deeplearn-sub002/pkg/models"
)

// TestUnitCreationSyncHappyPath drives a synchronous topic submission through
// the whole pipeline and checks every surface it touches: the unit detail,
// each persisted lesson package, and the flows behind them.
func TestUnitCreationSyncHappyPath(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()

	var detail api.UnitDetail
	app.postJSON(t, "/api/v1/units", map[string]any{
		"topic":               "Intro to Gradient Descent",
		"target_lesson_count": 2,
		"learner_level":       "beginner",
		"background":          false,
		"flow_type":           "standard",
	}, http.StatusOK, &detail)

	require.Equal(t, "completed", detail.Status)
	assert.Equal(t, "Intro to Gradient Descent", detail.Title)
	assert.True(t, detail.GeneratedFromTopic)
	require.NotNil(t, detail.TargetLessonCount)
	assert.Equal(t, 2, *detail.TargetLessonCount)
	require.NotNil(t, detail.Description)
	assert.Equal(t, "A guided tour of gradient descent, from loss surfaces to learning rates.", *detail.Description)
	assert.Nil(t, detail.ErrorMessage)
	assert.NotNil(t, detail.CompletedAt)
	require.NotNil(t, detail.FlowRunID)

	require.Len(t, detail.LearningObjectives, 2)
	loIDs := make(map[string]bool, len(detail.LearningObjectives))
	for _, lo := range detail.LearningObjectives {
		loIDs[lo.ID] = true
	}
	assert.True(t, loIDs["lo_1"])
	assert.True(t, loIDs["lo_2"])

	require.Len(t, detail.LessonOrder, 2)
	require.Len(t, detail.Lessons, 2)
	assert.Equal(t, "The Loss Landscape", detail.Lessons[0].Title)
	assert.Equal(t, "Stepping Downhill", detail.Lessons[1].Title)
	for i, ls := range detail.Lessons {
		assert.Equal(t, detail.LessonOrder[i], ls.ID)
		assert.Equal(t, 2, ls.ExerciseCount)
		assert.NotNil(t, ls.FlowRunID)
	}

	require.NotNil(t, detail.CreationProgress)
	assert.Equal(t, models.StageFinalizing, detail.CreationProgress.Stage)
	assert.Equal(t, 2, detail.CreationProgress.LessonsTotal)
	assert.Equal(t, 2, detail.CreationProgress.LessonsDone)
	assert.Empty(t, detail.CreationProgress.LessonErrors)

	// Every persisted package is internally valid and only references the
	// unit's learning objectives.
	for _, ls := range detail.Lessons {
		var lesson api.LessonDetail
		app.getJSON(t, fmt.Sprintf("/api/v1/units/%s/lessons/%s", detail.ID, ls.ID), http.StatusOK, &lesson)

		require.NotNil(t, lesson.Package)
		pkg := lesson.Package
		assert.Equal(t, ls.Title, pkg.Meta.Title)
		assert.NotEmpty(t, pkg.MiniLesson)
		assert.NotEmpty(t, pkg.GlossaryTerms)
		assert.NotEmpty(t, pkg.Misconceptions)
		require.Len(t, pkg.Exercises, 2)
		for _, ex := range pkg.Exercises {
			assert.Truef(t, loIDs[ex.LOID], "exercise %s references unknown objective %q", ex.ID, ex.LOID)
		}
		require.NoError(t, pkg.Validate())
	}

	var flowDetail api.FlowDetail
	app.getJSON(t, "/api/v1/admin/flows/"+*detail.FlowRunID, http.StatusOK, &flowDetail)
	assert.Equal(t, "unit_creation", flowDetail.FlowName)
	assert.Equal(t, "sync", flowDetail.ExecutionMode)
	assert.Equal(t, "completed", flowDetail.Status)
	require.Len(t, flowDetail.Steps, 3)
	for _, step := range flowDetail.Steps {
		assert.Equal(t, "completed", step.Status)
	}

	var lessonFlows api.FlowListResponse
	app.getJSON(t, "/api/v1/admin/flows?flow_name=lesson_creation", http.StatusOK, &lessonFlows)
	require.Equal(t, 2, lessonFlows.TotalCount)
	for _, item := range lessonFlows.Items {
		assert.Equal(t, "completed", item.Status)
		assert.Equal(t, 7, item.StepCount)
	}

	// Three planning steps plus seven per lesson.
	stepCount, err := app.Ent.FlowStepRun.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 17, stepCount)

	// Three unit calls plus six per lesson; the assemble step calls nothing.
	assert.Equal(t, 15, app.Provider.completed())

	var listing api.UnitListResponse
	app.getJSON(t, "/api/v1/units?status=completed", http.StatusOK, &listing)
	require.Equal(t, 1, listing.TotalCount)
	assert.Equal(t, detail.ID, listing.Units[0].ID)
	assert.Equal(t, 2, listing.Units[0].LessonCount)
}

// TestResubmissionCreatesDistinctUnits checks that identical submissions are
// never deduplicated: each gets its own unit and flow run.
func TestResubmissionCreatesDistinctUnits(t *testing.T) {
	app := NewTestApp(t, WithPlan(gradientPlan(1)))

	body := map[string]any{
		"topic":               "Intro to Gradient Descent",
		"target_lesson_count": 1,
		"learner_level":       "beginner",
	}

	var first, second api.UnitDetail
	app.postJSON(t, "/api/v1/units", body, http.StatusOK, &first)
	app.postJSON(t, "/api/v1/units", body, http.StatusOK, &second)

	require.Equal(t, "completed", first.Status)
	require.Equal(t, "completed", second.Status)
	assert.NotEqual(t, first.ID, second.ID)
	require.NotNil(t, first.FlowRunID)
	require.NotNil(t, second.FlowRunID)
	assert.NotEqual(t, *first.FlowRunID, *second.FlowRunID)

	var listing api.UnitListResponse
	app.getJSON(t, "/api/v1/units", http.StatusOK, &listing)
	assert.Equal(t, 2, listing.TotalCount)
}
