package services

import (
	"context"
	"testing"

	"github.com/brianfields/deeplearn-sub002/pkg/content"
	"github.com/brianfields/deeplearn-sub002/pkg/models"
	testdb "github.com/brianfields/deeplearn-sub002/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLessonService_CreateLesson(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewLessonService(client.Client)
	ctx := context.Background()

	u := createTestUnit(t, client.Client)

	t.Run("persists a validated package stamped with the lesson id", func(t *testing.T) {
		id, err := svc.CreateLesson(ctx, content.LessonRecord{
			UnitID:         u.ID,
			Title:          "Variables",
			LearnerLevel:   models.LearnerLevelBeginner,
			Package:        validLessonPackage("Variables"),
			SourceMaterial: "Variables name values...",
			FlowRunID:      "fr-lesson-1",
		})
		require.NoError(t, err)

		row, err := svc.GetLesson(ctx, u.ID, id)
		require.NoError(t, err)
		assert.Equal(t, "Variables", row.Title)
		assert.Equal(t, models.PackageSchemaVersion, row.PackageVersion)
		require.NotNil(t, row.Package)
		assert.Equal(t, id, row.Package.Meta.LessonID)
		require.NotNil(t, row.FlowRunID)
		assert.Equal(t, "fr-lesson-1", *row.FlowRunID)
	})

	t.Run("rejects invalid submissions", func(t *testing.T) {
		broken := validLessonPackage("Broken")
		broken.MiniLesson = ""

		tests := []struct {
			name string
			rec  content.LessonRecord
		}{
			{
				name: "missing unit_id",
				rec:  content.LessonRecord{Title: "T", Package: validLessonPackage("T")},
			},
			{
				name: "missing title",
				rec:  content.LessonRecord{UnitID: u.ID, Package: validLessonPackage("T")},
			},
			{
				name: "missing package",
				rec:  content.LessonRecord{UnitID: u.ID, Title: "T"},
			},
			{
				name: "invalid package",
				rec:  content.LessonRecord{UnitID: u.ID, Title: "T", Package: broken},
			},
			{
				name: "unknown learner level",
				rec:  content.LessonRecord{UnitID: u.ID, Title: "T", LearnerLevel: "expert", Package: validLessonPackage("T")},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.CreateLesson(ctx, tt.rec)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			})
		}
	})

	t.Run("rejects a lesson for a missing unit", func(t *testing.T) {
		_, err := svc.CreateLesson(ctx, content.LessonRecord{
			UnitID:  "nonexistent",
			Title:   "Orphan",
			Package: validLessonPackage("Orphan"),
		})
		require.Error(t, err)
	})
}

func TestLessonService_GetAndList(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewLessonService(client.Client)
	ctx := context.Background()

	u := createTestUnit(t, client.Client)
	other := createTestUnit(t, client.Client)

	var ids []string
	for _, title := range []string{"First", "Second"} {
		id, err := svc.CreateLesson(ctx, content.LessonRecord{
			UnitID:  u.ID,
			Title:   title,
			Package: validLessonPackage(title),
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	t.Run("get is scoped to the owning unit", func(t *testing.T) {
		row, err := svc.GetLesson(ctx, u.ID, ids[0])
		require.NoError(t, err)
		assert.Equal(t, "First", row.Title)

		_, err = svc.GetLesson(ctx, other.ID, ids[0])
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("lists lessons in creation order", func(t *testing.T) {
		rows, err := svc.ListLessonsByUnit(ctx, u.ID)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, ids[0], rows[0].ID)
		assert.Equal(t, ids[1], rows[1].ID)
	})

	t.Run("empty unit lists no lessons", func(t *testing.T) {
		rows, err := svc.ListLessonsByUnit(ctx, other.ID)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}
