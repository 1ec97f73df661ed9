package services

import (
	"context"
	"testing"

	"github.com/brianfields/deeplearn-sub002/ent/flowrun"
	"github.com/brianfields/deeplearn-sub002/ent/unit"
	"github.com/brianfields/deeplearn-sub002/pkg/content"
	"github.com/brianfields/deeplearn-sub002/pkg/models"
	testdb "github.com/brianfields/deeplearn-sub002/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitService_CreateUnit(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewUnitService(client.Client)
	flowSvc := NewFlowRunService(client.Client)
	ctx := context.Background()

	t.Run("background submission enters the backlog pending", func(t *testing.T) {
		u, err := svc.CreateUnit(ctx, models.CreateUnitRequest{
			Topic:             "Photosynthesis",
			TargetLessonCount: 3,
			LearnerLevel:      models.LearnerLevelIntermediate,
			Background:        true,
			UserID:            "user-1",
		}, "pod-a")
		require.NoError(t, err)

		assert.Equal(t, unit.StatusPending, u.Status)
		assert.Equal(t, "Photosynthesis", u.Title)
		assert.Equal(t, unit.LearnerLevelIntermediate, u.LearnerLevel)
		assert.Equal(t, unit.FlowTypeStandard, u.FlowType)
		assert.True(t, u.GeneratedFromTopic)
		assert.Nil(t, u.PodID)
		require.NotNil(t, u.TargetLessonCount)
		assert.Equal(t, 3, *u.TargetLessonCount)

		// A pending flow run was created in the same transaction.
		require.NotNil(t, u.FlowRunID)
		fr, err := flowSvc.GetFlowRun(ctx, *u.FlowRunID)
		require.NoError(t, err)
		assert.Equal(t, flowrun.StatusPending, fr.Status)
		assert.Equal(t, content.FlowUnitCreation, fr.FlowName)
		assert.Equal(t, flowrun.ExecutionModeBackground, fr.ExecutionMode)
		assert.Equal(t, "Photosynthesis", fr.Inputs[content.KeyTopic])
		assert.Equal(t, u.ID, fr.FlowMetadata[content.MetaUnitID])
	})

	t.Run("sync submission is claimed at birth", func(t *testing.T) {
		u, err := svc.CreateUnit(ctx, models.CreateUnitRequest{
			SourceMaterial: "Cells convert light energy into chemical energy...",
		}, "pod-a")
		require.NoError(t, err)

		assert.Equal(t, unit.StatusInProgress, u.Status)
		require.NotNil(t, u.PodID)
		assert.Equal(t, "pod-a", *u.PodID)
		assert.Equal(t, "Untitled unit", u.Title)
		assert.False(t, u.GeneratedFromTopic)
		require.NotNil(t, u.SourceMaterial)

		require.NotNil(t, u.FlowRunID)
		fr, err := flowSvc.GetFlowRun(ctx, *u.FlowRunID)
		require.NoError(t, err)
		assert.Equal(t, flowrun.ExecutionModeSync, fr.ExecutionMode)
		assert.NotEmpty(t, fr.Inputs[content.KeySourceMaterial])
	})

	t.Run("validates submissions", func(t *testing.T) {
		tests := []struct {
			name string
			req  models.CreateUnitRequest
		}{
			{
				name: "neither topic nor source_material",
				req:  models.CreateUnitRequest{},
			},
			{
				name: "both topic and source_material",
				req:  models.CreateUnitRequest{Topic: "X", SourceMaterial: "Y"},
			},
			{
				name: "unknown learner_level",
				req:  models.CreateUnitRequest{Topic: "X", LearnerLevel: "expert"},
			},
			{
				name: "unknown flow_type",
				req:  models.CreateUnitRequest{Topic: "X", FlowType: "turbo"},
			},
			{
				name: "target_lesson_count out of range",
				req:  models.CreateUnitRequest{Topic: "X", TargetLessonCount: 50},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.CreateUnit(ctx, tt.req, "pod-a")
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			})
		}
	})
}

func TestUnitService_GetAndList(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewUnitService(client.Client)
	lessonSvc := NewLessonService(client.Client)
	ctx := context.Background()

	u1, err := svc.CreateUnit(ctx, models.CreateUnitRequest{Topic: "Topic A", Background: true, UserID: "user-1"}, "pod-a")
	require.NoError(t, err)
	u2, err := svc.CreateUnit(ctx, models.CreateUnitRequest{Topic: "Topic B", Background: true, UserID: "user-2"}, "pod-a")
	require.NoError(t, err)

	_, err = lessonSvc.CreateLesson(ctx, content.LessonRecord{
		UnitID:  u1.ID,
		Title:   "Lesson 1",
		Package: validLessonPackage("Lesson 1"),
	})
	require.NoError(t, err)

	t.Run("get without lessons", func(t *testing.T) {
		got, err := svc.GetUnit(ctx, u1.ID, false)
		require.NoError(t, err)
		assert.Equal(t, u1.ID, got.ID)
		assert.Nil(t, got.Edges.Lessons)
	})

	t.Run("get with lessons", func(t *testing.T) {
		got, err := svc.GetUnit(ctx, u1.ID, true)
		require.NoError(t, err)
		require.Len(t, got.Edges.Lessons, 1)
		assert.Equal(t, "Lesson 1", got.Edges.Lessons[0].Title)
	})

	t.Run("returns ErrNotFound for missing unit", func(t *testing.T) {
		_, err := svc.GetUnit(ctx, "nonexistent", false)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("lists newest first with totals", func(t *testing.T) {
		list, err := svc.ListUnits(ctx, models.UnitFilters{})
		require.NoError(t, err)
		assert.Equal(t, 2, list.TotalCount)
		require.Len(t, list.Units, 2)
		assert.Equal(t, u2.ID, list.Units[0].ID)
		assert.Equal(t, u1.ID, list.Units[1].ID)
	})

	t.Run("filters by status and user", func(t *testing.T) {
		list, err := svc.ListUnits(ctx, models.UnitFilters{Status: "pending", UserID: "user-1"})
		require.NoError(t, err)
		require.Len(t, list.Units, 1)
		assert.Equal(t, u1.ID, list.Units[0].ID)
	})

	t.Run("rejects unknown status filter", func(t *testing.T) {
		_, err := svc.ListUnits(ctx, models.UnitFilters{Status: "bogus"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("paginates", func(t *testing.T) {
		list, err := svc.ListUnits(ctx, models.UnitFilters{Limit: 1, Offset: 1})
		require.NoError(t, err)
		assert.Equal(t, 2, list.TotalCount)
		require.Len(t, list.Units, 1)
		assert.Equal(t, u1.ID, list.Units[0].ID)
	})
}

func TestUnitService_CreationWrites(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewUnitService(client.Client)
	ctx := context.Background()

	u := createTestUnit(t, client.Client)

	t.Run("saves extracted metadata", func(t *testing.T) {
		err := svc.SaveUnitMetadata(ctx, u.ID, content.UnitMetadata{
			Title:       "Introduction to Go",
			Description: "A first tour of the language.",
			LearningObjectives: []models.LearningObjective{
				{ID: "lo_1", Title: "Declare variables"},
				{ID: "lo_2", Title: "Write functions"},
			},
			SourceMaterial: "Go is a statically typed language...",
		})
		require.NoError(t, err)

		got, err := svc.GetUnit(ctx, u.ID, false)
		require.NoError(t, err)
		assert.Equal(t, "Introduction to Go", got.Title)
		require.NotNil(t, got.Description)
		require.Len(t, got.LearningObjectives, 2)
		assert.Equal(t, "lo_1", got.LearningObjectives[0].ID)
		require.NotNil(t, got.SourceMaterial)
	})

	t.Run("updates creation progress", func(t *testing.T) {
		err := svc.UpdateCreationProgress(ctx, u.ID, &models.CreationProgress{
			Stage:        models.StageGeneratingLessons,
			LessonsTotal: 3,
			LessonsDone:  1,
		})
		require.NoError(t, err)

		got, err := svc.GetUnit(ctx, u.ID, false)
		require.NoError(t, err)
		require.NotNil(t, got.CreationProgress)
		assert.Equal(t, models.StageGeneratingLessons, got.CreationProgress.Stage)
		assert.Equal(t, 1, got.CreationProgress.LessonsDone)
	})

	t.Run("sets lesson order", func(t *testing.T) {
		err := svc.SetLessonOrder(ctx, u.ID, []string{"l-2", "l-1"})
		require.NoError(t, err)

		got, err := svc.GetUnit(ctx, u.ID, false)
		require.NoError(t, err)
		assert.Equal(t, []string{"l-2", "l-1"}, got.LessonOrder)
	})

	t.Run("attaches media", func(t *testing.T) {
		require.NoError(t, svc.AttachUnitArt(ctx, u.ID, "img-1", "Stylized gopher"))
		require.NoError(t, svc.AttachUnitPodcast(ctx, u.ID, "aud-1", "Welcome to the unit...", "alloy"))

		got, err := svc.GetUnit(ctx, u.ID, false)
		require.NoError(t, err)
		require.NotNil(t, got.ArtImageID)
		assert.Equal(t, "img-1", *got.ArtImageID)
		require.NotNil(t, got.PodcastAudioID)
		require.NotNil(t, got.PodcastTranscript)
		require.NotNil(t, got.PodcastVoice)
	})

	t.Run("returns ErrNotFound for missing unit", func(t *testing.T) {
		err := svc.SetLessonOrder(ctx, "nonexistent", []string{"l-1"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUnitService_TerminalTransitions(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewUnitService(client.Client)
	ctx := context.Background()

	t.Run("completes an in-progress unit", func(t *testing.T) {
		u, err := svc.CreateUnit(ctx, models.CreateUnitRequest{Topic: "T"}, "pod-a")
		require.NoError(t, err)

		require.NoError(t, svc.CompleteUnit(ctx, u.ID))

		got, err := svc.GetUnit(ctx, u.ID, false)
		require.NoError(t, err)
		assert.Equal(t, unit.StatusCompleted, got.Status)
		assert.NotNil(t, got.CompletedAt)
	})

	t.Run("cannot complete a pending unit", func(t *testing.T) {
		u := createTestUnit(t, client.Client)
		err := svc.CompleteUnit(ctx, u.ID)
		assert.ErrorIs(t, err, ErrConcurrentModification)
	})

	t.Run("fails a unit with an error message", func(t *testing.T) {
		u, err := svc.CreateUnit(ctx, models.CreateUnitRequest{Topic: "T"}, "pod-a")
		require.NoError(t, err)

		require.NoError(t, svc.FailUnit(ctx, u.ID, "all lessons failed"))

		got, err := svc.GetUnit(ctx, u.ID, false)
		require.NoError(t, err)
		assert.Equal(t, unit.StatusFailed, got.Status)
		require.NotNil(t, got.ErrorMessage)
		assert.Equal(t, "all lessons failed", *got.ErrorMessage)
	})

	t.Run("terminal unit rejects further transitions", func(t *testing.T) {
		u, err := svc.CreateUnit(ctx, models.CreateUnitRequest{Topic: "T"}, "pod-a")
		require.NoError(t, err)
		require.NoError(t, svc.CompleteUnit(ctx, u.ID))

		err = svc.FailUnit(ctx, u.ID, "late failure")
		assert.ErrorIs(t, err, ErrConcurrentModification)
	})
}

func TestUnitService_CancelPendingUnit(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewUnitService(client.Client)
	flowSvc := NewFlowRunService(client.Client)
	ctx := context.Background()

	t.Run("cancels a pending unit and its flow run", func(t *testing.T) {
		u := createTestUnit(t, client.Client)

		require.NoError(t, svc.CancelPendingUnit(ctx, u.ID))

		got, err := svc.GetUnit(ctx, u.ID, false)
		require.NoError(t, err)
		assert.Equal(t, unit.StatusFailed, got.Status)
		require.NotNil(t, got.ErrorMessage)
		assert.Equal(t, "cancelled by user", *got.ErrorMessage)

		fr, err := flowSvc.GetFlowRun(ctx, *u.FlowRunID)
		require.NoError(t, err)
		assert.Equal(t, flowrun.StatusCancelled, fr.Status)
	})

	t.Run("in-progress unit conflicts", func(t *testing.T) {
		u, err := svc.CreateUnit(ctx, models.CreateUnitRequest{Topic: "T"}, "pod-a")
		require.NoError(t, err)

		err = svc.CancelPendingUnit(ctx, u.ID)
		assert.ErrorIs(t, err, ErrConcurrentModification)
	})

	t.Run("terminal unit is not cancellable", func(t *testing.T) {
		u, err := svc.CreateUnit(ctx, models.CreateUnitRequest{Topic: "T"}, "pod-a")
		require.NoError(t, err)
		require.NoError(t, svc.CompleteUnit(ctx, u.ID))

		err = svc.CancelPendingUnit(ctx, u.ID)
		assert.ErrorIs(t, err, ErrNotCancellable)
	})

	t.Run("returns ErrNotFound for missing unit", func(t *testing.T) {
		err := svc.CancelPendingUnit(ctx, "nonexistent")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUnitService_RecoveryQueries(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewUnitService(client.Client)
	ctx := context.Background()

	t.Run("finds unit by flow run id", func(t *testing.T) {
		u := createTestUnit(t, client.Client)

		got, err := svc.UnitByFlowRunID(ctx, *u.FlowRunID)
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)

		_, err = svc.UnitByFlowRunID(ctx, "nonexistent")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("finds in-progress units by pod", func(t *testing.T) {
		mine, err := svc.CreateUnit(ctx, models.CreateUnitRequest{Topic: "Mine"}, "pod-restarted")
		require.NoError(t, err)
		_, err = svc.CreateUnit(ctx, models.CreateUnitRequest{Topic: "Other pod"}, "pod-other")
		require.NoError(t, err)
		_ = createTestUnit(t, client.Client) // pending, no pod

		units, err := svc.FindInProgressUnitsByPod(ctx, "pod-restarted")
		require.NoError(t, err)
		require.Len(t, units, 1)
		assert.Equal(t, mine.ID, units[0].ID)
	})
}
