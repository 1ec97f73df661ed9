package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brianfields/deeplearn-sub002/pkg/content"
	"github.com/brianfields/deeplearn-sub002/pkg/models"
)

func TestSubmitUnitHandler_Validation(t *testing.T) {
	// Only paths that fail before any service call; the rest runs against a
	// real database below.
	s := &Server{}
	router := s.Routes()

	tests := []struct {
		name     string
		body     string
		wantCode int
		wantKind string
	}{
		{
			name:     "malformed json",
			body:     `{"topic":`,
			wantCode: http.StatusBadRequest,
			wantKind: kindValidation,
		},
		{
			name:     "neither topic nor source material",
			body:     `{"background":true}`,
			wantCode: http.StatusBadRequest,
			wantKind: kindValidation,
		},
		{
			name:     "sync submission without executor",
			body:     `{"topic":"Compilers"}`,
			wantCode: http.StatusServiceUnavailable,
			wantKind: kindUnavail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/api/v1/units", []byte(tt.body), nil)
			assert.Equal(t, tt.wantCode, rec.Code)
			body := decodeErrorBody(t, rec)
			assert.Equal(t, tt.wantKind, body.Error.Kind)
		})
	}
}

func TestListUnitsHandler_Validation(t *testing.T) {
	s := &Server{}
	router := s.Routes()

	tests := []struct {
		name  string
		query string
	}{
		{"non-numeric limit", "limit=abc"},
		{"zero limit", "limit=0"},
		{"negative offset", "offset=-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodGet, "/api/v1/units?"+tt.query, nil, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeErrorBody(t, rec)
			assert.Equal(t, kindValidation, body.Error.Kind)
		})
	}
}

// minimalPackage builds the smallest package that passes validation, for
// seeding lessons without running a flow.
func minimalPackage(title string) *models.LessonPackage {
	return &models.LessonPackage{
		Meta: models.PackageMeta{
			Title:                title,
			LearnerLevel:         models.LearnerLevelBeginner,
			PackageSchemaVersion: models.PackageSchemaVersion,
			ContentVersion:       1,
		},
		Objectives: []models.Objective{{ID: "lo_1", Text: "Explain the chain rule"}},
		MiniLesson: "The chain rule composes derivatives of nested functions.",
		Exercises: []models.Exercise{{
			ID:              "ex_1",
			ExerciseType:    models.ExerciseTypeShortAnswer,
			LOID:            "lo_1",
			Stem:            "Which rule differentiates f(g(x))?",
			CanonicalAnswer: "The chain rule",
		}},
	}
}

func TestUnitEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)
	router := srv.Routes()
	ctx := context.Background()

	// Two background submissions, newest last.
	var first SubmitUnitResponse
	rec := doJSON(t, router, http.MethodPost, "/api/v1/units",
		[]byte(`{"topic":"Gradient Descent","background":true}`), &first)
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.NotEmpty(t, first.UnitID)
	require.NotEmpty(t, first.FlowRunID)
	assert.Equal(t, "pending", first.Status)

	var second SubmitUnitResponse
	rec = doJSON(t, router, http.MethodPost, "/api/v1/units",
		[]byte(`{"source_material":"Bayes theorem relates conditional probabilities.","background":true,"user_id":"alice"}`), &second)
	require.Equal(t, http.StatusAccepted, rec.Code)

	t.Run("detail carries submission fields", func(t *testing.T) {
		var detail UnitDetail
		rec := doJSON(t, router, http.MethodGet, "/api/v1/units/"+first.UnitID, nil, &detail)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Gradient Descent", detail.Title)
		assert.Equal(t, "pending", detail.Status)
		assert.True(t, detail.GeneratedFromTopic)
		require.NotNil(t, detail.FlowRunID)
		assert.Equal(t, first.FlowRunID, *detail.FlowRunID)
		assert.Empty(t, detail.Lessons)
	})

	t.Run("listing is newest first with filters and pagination", func(t *testing.T) {
		var list UnitListResponse
		rec := doJSON(t, router, http.MethodGet, "/api/v1/units", nil, &list)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 2, list.TotalCount)
		require.Len(t, list.Units, 2)
		assert.Equal(t, second.UnitID, list.Units[0].ID)

		rec = doJSON(t, router, http.MethodGet, "/api/v1/units?user_id=alice", nil, &list)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, list.Units, 1)
		assert.Equal(t, second.UnitID, list.Units[0].ID)

		rec = doJSON(t, router, http.MethodGet, "/api/v1/units?limit=1&offset=1", nil, &list)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 2, list.TotalCount)
		require.Len(t, list.Units, 1)
		assert.Equal(t, first.UnitID, list.Units[0].ID)

		rec = doJSON(t, router, http.MethodGet, "/api/v1/units?status=bogus", nil, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("lesson detail round-trips the package", func(t *testing.T) {
		lessonID, err := srv.lessons.CreateLesson(ctx, content.LessonRecord{
			UnitID:  first.UnitID,
			Title:   "Chain Rule",
			Package: minimalPackage("Chain Rule"),
		})
		require.NoError(t, err)
		require.NoError(t, srv.units.SetLessonOrder(ctx, first.UnitID, []string{lessonID}))

		var detail UnitDetail
		rec := doJSON(t, router, http.MethodGet, "/api/v1/units/"+first.UnitID, nil, &detail)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, detail.Lessons, 1)
		assert.Equal(t, lessonID, detail.Lessons[0].ID)
		assert.Equal(t, "Chain Rule", detail.Lessons[0].Title)
		assert.Equal(t, 1, detail.Lessons[0].ExerciseCount)

		var lessonDetail LessonDetail
		rec = doJSON(t, router, http.MethodGet, "/api/v1/units/"+first.UnitID+"/lessons/"+lessonID, nil, &lessonDetail)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, first.UnitID, lessonDetail.UnitID)
		require.NotNil(t, lessonDetail.Package)
		assert.Equal(t, "Chain Rule", lessonDetail.Package.Meta.Title)
		assert.Equal(t, lessonID, lessonDetail.Package.Meta.LessonID)
		require.Len(t, lessonDetail.Package.Exercises, 1)
	})

	t.Run("cancel fails a pending unit", func(t *testing.T) {
		var cancel CancelResponse
		rec := doJSON(t, router, http.MethodPost, "/api/v1/units/"+second.UnitID+"/cancel", nil, &cancel)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, second.UnitID, cancel.UnitID)

		var detail UnitDetail
		rec = doJSON(t, router, http.MethodGet, "/api/v1/units/"+second.UnitID, nil, &detail)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "failed", detail.Status)
		require.NotNil(t, detail.ErrorMessage)
		assert.Equal(t, "cancelled by user", *detail.ErrorMessage)

		// A terminal unit cannot be cancelled again; no pool is wired to
		// absorb the miss.
		rec = doJSON(t, router, http.MethodPost, "/api/v1/units/"+second.UnitID+"/cancel", nil, nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
		body := decodeErrorBody(t, rec)
		assert.Equal(t, kindConflict, body.Error.Kind)
	})

	t.Run("unknown ids are 404", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/units/nonexistent", nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeErrorBody(t, rec)
		assert.Equal(t, kindNotFound, body.Error.Kind)

		rec = doJSON(t, router, http.MethodPost, "/api/v1/units/nonexistent/cancel", nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = doJSON(t, router, http.MethodGet, "/api/v1/units/"+first.UnitID+"/lessons/nonexistent", nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("topic and source material are mutually exclusive", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/units",
			[]byte(`{"topic":"A","source_material":"B","background":true}`), nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeErrorBody(t, rec)
		assert.Equal(t, kindValidation, body.Error.Kind)
		assert.Equal(t, "topic", body.Error.Details["field"])
	})
}
