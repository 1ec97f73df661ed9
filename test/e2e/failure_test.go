package e2e

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brianfields/deeplearn-sub002/pkg/api"
)

// TestLessonFanOutPartialFailure fails one lesson's MCQ generation and checks
// that the unit still completes with the surviving lessons, recording the
// failure against its plan index.
func TestLessonFanOutPartialFailure(t *testing.T) {
	plan := gradientPlan(3)
	app := NewTestApp(t, WithPlan(plan))
	app.Provider.failOn("mcq_set", plan.Lessons[1].Title)

	var detail api.UnitDetail
	app.postJSON(t, "/api/v1/units", map[string]any{
		"topic":               "Intro to Gradient Descent",
		"target_lesson_count": 3,
		"learner_level":       "beginner",
	}, http.StatusOK, &detail)

	require.Equal(t, "completed", detail.Status)
	require.Len(t, detail.LessonOrder, 2)
	require.Len(t, detail.Lessons, 2)
	assert.Equal(t, plan.Lessons[0].Title, detail.Lessons[0].Title)
	assert.Equal(t, plan.Lessons[2].Title, detail.Lessons[1].Title)

	require.NotNil(t, detail.CreationProgress)
	assert.Equal(t, 3, detail.CreationProgress.LessonsTotal)
	assert.Equal(t, 2, detail.CreationProgress.LessonsDone)
	require.Len(t, detail.CreationProgress.LessonErrors, 1)
	lessonErr := detail.CreationProgress.LessonErrors[0]
	assert.Equal(t, 1, lessonErr.Index)
	assert.Equal(t, plan.Lessons[1].Title, lessonErr.Title)
	assert.Contains(t, lessonErr.Error, "generate_mcqs")

	// The parent planning flow is untouched by child failures.
	require.NotNil(t, detail.FlowRunID)
	var flowDetail api.FlowDetail
	app.getJSON(t, "/api/v1/admin/flows/"+*detail.FlowRunID, http.StatusOK, &flowDetail)
	assert.Equal(t, "completed", flowDetail.Status)

	var lessonFlows api.FlowListResponse
	app.getJSON(t, "/api/v1/admin/flows?flow_name=lesson_creation", http.StatusOK, &lessonFlows)
	assert.Equal(t, 3, lessonFlows.TotalCount)

	var failed api.FlowListResponse
	app.getJSON(t, "/api/v1/admin/flows?flow_name=lesson_creation&status=failed", http.StatusOK, &failed)
	require.Equal(t, 1, failed.TotalCount)
	require.Len(t, failed.Items, 1)
	require.NotNil(t, failed.Items[0].ErrorMessage)
	assert.Contains(t, *failed.Items[0].ErrorMessage, "generate_mcqs")
}

// TestUnitPlanningFailure fails the planning call itself. The unit must land
// failed with no lessons at all.
func TestUnitPlanningFailure(t *testing.T) {
	app := NewTestApp(t)
	app.Provider.failOn("unit_plan", "")

	var detail api.UnitDetail
	app.postJSON(t, "/api/v1/units", map[string]any{
		"topic":         "Intro to Gradient Descent",
		"learner_level": "beginner",
	}, http.StatusOK, &detail)

	require.Equal(t, "failed", detail.Status)
	require.NotNil(t, detail.ErrorMessage)
	assert.Contains(t, *detail.ErrorMessage, "unit planning failed")
	assert.Contains(t, *detail.ErrorMessage, "extract_unit_metadata")
	assert.Empty(t, detail.LessonOrder)
	assert.Empty(t, detail.Lessons)
	assert.NotNil(t, detail.CompletedAt)

	require.NotNil(t, detail.FlowRunID)
	var flowDetail api.FlowDetail
	app.getJSON(t, "/api/v1/admin/flows/"+*detail.FlowRunID, http.StatusOK, &flowDetail)
	assert.Equal(t, "failed", flowDetail.Status)
	require.NotNil(t, flowDetail.ErrorMessage)
	assert.Contains(t, *flowDetail.ErrorMessage, "extract_unit_metadata")

	lessons, err := app.Ent.Lesson.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, lessons)
}

// TestAllLessonsFailed drives every lesson flow into the same provider error
// and checks the roll-up names the dominant error kind.
func TestAllLessonsFailed(t *testing.T) {
	plan := gradientPlan(2)
	app := NewTestApp(t, WithPlan(plan))
	app.Provider.failOn("lesson_metadata", "")

	var detail api.UnitDetail
	app.postJSON(t, "/api/v1/units", map[string]any{
		"topic":               "Intro to Gradient Descent",
		"target_lesson_count": 2,
		"learner_level":       "beginner",
	}, http.StatusOK, &detail)

	require.Equal(t, "failed", detail.Status)
	require.NotNil(t, detail.ErrorMessage)
	assert.Equal(t, "all 2 lessons failed (provider_error)", *detail.ErrorMessage)
	assert.Empty(t, detail.LessonOrder)
	require.NotNil(t, detail.CreationProgress)
	assert.Len(t, detail.CreationProgress.LessonErrors, 2)
}
