package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/brianfields/deeplearn-sub002/ent"
	"github.com/brianfields/deeplearn-sub002/ent/unit"
	"github.com/brianfields/deeplearn-sub002/pkg/models"
	"github.com/brianfields/deeplearn-sub002/pkg/queue"
	"github.com/brianfields/deeplearn-sub002/pkg/services"
)

// ────────────────────────────────────────────────────────────
// POST /api/v1/units
// ────────────────────────────────────────────────────────────

// submitUnitHandler creates a unit. Background submissions return 202 with
// the queue row's ids; sync submissions run the whole creation on the
// request goroutine and return the finished unit.
func (s *Server) submitUnitHandler(c *gin.Context) {
	// 1. Bind HTTP request
	var req SubmitUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, "", "invalid request body: "+err.Error())
		return
	}

	// 2. Validate required fields; the exactly-one rule is the service's.
	if req.Topic == "" && req.SourceMaterial == "" {
		respondValidationError(c, "topic", "one of topic or source_material is required")
		return
	}

	// 3. Transform to service input
	input := models.CreateUnitRequest{
		Topic:             req.Topic,
		SourceMaterial:    req.SourceMaterial,
		TargetLessonCount: req.TargetLessonCount,
		LearnerLevel:      req.LearnerLevel,
		FlowType:          req.FlowType,
		Background:        req.Background,
		UserID:            req.UserID,
	}
	if input.UserID == "" {
		input.UserID = extractUserID(c)
	}

	if req.Background {
		s.submitBackground(c, input)
		return
	}
	s.submitSync(c, input)
}

// submitBackground enqueues the unit for the worker pools and returns
// immediately.
func (s *Server) submitBackground(c *gin.Context, input models.CreateUnitRequest) {
	u, err := s.units.CreateUnit(c.Request.Context(), input, s.podID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	flowRunID := ""
	if u.FlowRunID != nil {
		flowRunID = *u.FlowRunID
	}
	c.JSON(http.StatusAccepted, &SubmitUnitResponse{
		UnitID:    u.ID,
		FlowRunID: flowRunID,
		Status:    string(u.Status),
		Message:   "Unit submitted for creation",
	})
}

// submitSync claims the unit at birth and runs the creation inline, bounded
// by the sync timeout. The client cancels by dropping the connection.
func (s *Server) submitSync(c *gin.Context, input models.CreateUnitRequest) {
	if s.executor == nil {
		respondError(c, http.StatusServiceUnavailable, kindUnavail, "sync submissions not configured")
		return
	}

	u, err := s.units.CreateUnit(c.Request.Context(), input, s.podID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	runCtx, cancel := context.WithTimeout(c.Request.Context(), s.cfg.Content.SyncUnitTimeout)
	defer cancel()

	result := s.executor.Execute(runCtx, u)
	s.finishUnit(u.ID, result)

	// Reload for the terminal state the executor and finish wrote.
	done, err := s.units.GetUnit(c.Request.Context(), u.ID, true)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUnitDetail(done))
}

// finishUnit writes the terminal unit status for a sync run, mirroring what
// the queue worker does for claimed units. Lost status races mean someone
// else (stall reconciler) already finished the unit; the reload tells the
// client the truth either way.
func (s *Server) finishUnit(unitID string, result *queue.ExecutionResult) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if result == nil {
		result = &queue.ExecutionResult{
			Status:       unit.StatusFailed,
			ErrorMessage: "executor returned nil result",
		}
	}

	var err error
	if result.Status == unit.StatusCompleted {
		err = s.units.CompleteUnit(writeCtx, unitID)
	} else {
		err = s.units.FailUnit(writeCtx, unitID, result.ErrorMessage)
	}
	if err != nil && !errors.Is(err, services.ErrConcurrentModification) {
		slog.Error("Failed to finish sync unit", "unit_id", unitID, "error", err)
	}
}

// ────────────────────────────────────────────────────────────
// GET /api/v1/units
// ────────────────────────────────────────────────────────────

func (s *Server) listUnitsHandler(c *gin.Context) {
	filters := models.UnitFilters{
		Status: c.Query("status"),
		UserID: c.Query("user_id"),
	}

	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			respondValidationError(c, "limit", "limit must be a positive integer")
			return
		}
		filters.Limit = n
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			respondValidationError(c, "offset", "offset must be a non-negative integer")
			return
		}
		filters.Offset = n
	}

	result, err := s.units.ListUnits(c.Request.Context(), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	items := make([]UnitSummary, len(result.Units))
	for i, u := range result.Units {
		items[i] = toUnitSummary(u)
	}
	c.JSON(http.StatusOK, &UnitListResponse{
		Units:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// ────────────────────────────────────────────────────────────
// GET /api/v1/units/:unit_id
// ────────────────────────────────────────────────────────────

func (s *Server) getUnitHandler(c *gin.Context) {
	unitID := c.Param("unit_id")
	if unitID == "" {
		respondValidationError(c, "unit_id", "unit id is required")
		return
	}

	u, err := s.units.GetUnit(c.Request.Context(), unitID, true)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUnitDetail(u))
}

// ────────────────────────────────────────────────────────────
// GET /api/v1/units/:unit_id/lessons/:lesson_id
// ────────────────────────────────────────────────────────────

func (s *Server) getLessonHandler(c *gin.Context) {
	unitID := c.Param("unit_id")
	lessonID := c.Param("lesson_id")
	if unitID == "" || lessonID == "" {
		respondValidationError(c, "lesson_id", "unit id and lesson id are required")
		return
	}

	l, err := s.lessons.GetLesson(c.Request.Context(), unitID, lessonID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toLessonDetail(l))
}

// ────────────────────────────────────────────────────────────
// POST /api/v1/units/:unit_id/cancel
// ────────────────────────────────────────────────────────────

// cancelUnitHandler cancels a unit: pending units are cancelled in the
// database, in-progress units through this pod's worker pool. A unit running
// on another pod cannot be reached from here and reports a conflict.
func (s *Server) cancelUnitHandler(c *gin.Context) {
	unitID := c.Param("unit_id")
	if unitID == "" {
		respondValidationError(c, "unit_id", "unit id is required")
		return
	}

	svcErr := s.units.CancelPendingUnit(c.Request.Context(), unitID)

	// Always try to cancel on this pod, regardless of the DB result: the
	// pending update misses exactly when a worker already claimed the unit.
	poolCancelled := false
	if s.workerPool != nil {
		poolCancelled = s.workerPool.CancelUnit(unitID)
	}

	if svcErr != nil && !poolCancelled {
		respondServiceError(c, svcErr)
		return
	}

	slog.Info("Unit cancellation requested", "unit_id", unitID, "pool_cancelled", poolCancelled)
	c.JSON(http.StatusOK, &CancelResponse{
		UnitID:  unitID,
		Message: "Unit cancellation requested",
	})
}

// ────────────────────────────────────────────────────────────
// Response shapes
// ────────────────────────────────────────────────────────────

// UnitSummary is one unit in the listing.
type UnitSummary struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  *string    `json:"description,omitempty"`
	LearnerLevel string     `json:"learner_level"`
	FlowType     string     `json:"flow_type"`
	Status       string     `json:"status"`
	LessonCount  int        `json:"lesson_count"`
	ErrorMessage *string    `json:"error_message,omitempty"`
	HasArt       bool       `json:"has_art"`
	HasPodcast   bool       `json:"has_podcast"`
	CreatedAt    time.Time  `json:"created_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

// UnitListResponse is the paginated unit listing.
type UnitListResponse struct {
	Units      []UnitSummary `json:"units"`
	TotalCount int           `json:"total_count"`
	Limit      int           `json:"limit"`
	Offset     int           `json:"offset"`
}

// UnitDetail is the full unit view: metadata, per-lesson summaries in
// lesson order, creation progress, and media references.
type UnitDetail struct {
	ID                  string                     `json:"id"`
	Title               string                     `json:"title"`
	Description         *string                    `json:"description,omitempty"`
	LearnerLevel        string                     `json:"learner_level"`
	FlowType            string                     `json:"flow_type"`
	Status              string                     `json:"status"`
	GeneratedFromTopic  bool                       `json:"generated_from_topic"`
	TargetLessonCount   *int                       `json:"target_lesson_count,omitempty"`
	LearningObjectives  []models.LearningObjective `json:"learning_objectives,omitempty"`
	LessonOrder         []string                   `json:"lesson_order,omitempty"`
	Lessons             []LessonSummary            `json:"lessons"`
	CreationProgress    *models.CreationProgress   `json:"creation_progress,omitempty"`
	ErrorMessage        *string                    `json:"error_message,omitempty"`
	UserID              *string                    `json:"user_id,omitempty"`
	FlowRunID           *string                    `json:"flow_run_id,omitempty"`
	ArtImageID          *string                    `json:"art_image_id,omitempty"`
	ArtImageDescription *string                    `json:"art_image_description,omitempty"`
	PodcastAudioID      *string                    `json:"podcast_audio_id,omitempty"`
	PodcastTranscript   *string                    `json:"podcast_transcript,omitempty"`
	PodcastVoice        *string                    `json:"podcast_voice,omitempty"`
	CreatedAt           time.Time                  `json:"created_at"`
	UpdatedAt           time.Time                  `json:"updated_at"`
	CompletedAt         *time.Time                 `json:"completed_at,omitempty"`
}

// LessonSummary is one lesson inside a unit detail, without its package.
type LessonSummary struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	LearnerLevel  string    `json:"learner_level"`
	ExerciseCount int       `json:"exercise_count"`
	FlowRunID     *string   `json:"flow_run_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// LessonDetail is the full lesson view with its package payload.
type LessonDetail struct {
	ID                     string                `json:"id"`
	UnitID                 string                `json:"unit_id"`
	Title                  string                `json:"title"`
	LearnerLevel           string                `json:"learner_level"`
	Package                *models.LessonPackage `json:"package"`
	PackageVersion         int                   `json:"package_version"`
	FlowRunID              *string               `json:"flow_run_id,omitempty"`
	PodcastTranscript      *string               `json:"podcast_transcript,omitempty"`
	PodcastAudioID         *string               `json:"podcast_audio_id,omitempty"`
	PodcastDurationSeconds *float64              `json:"podcast_duration_seconds,omitempty"`
	CreatedAt              time.Time             `json:"created_at"`
	UpdatedAt              time.Time             `json:"updated_at"`
}

func toUnitSummary(u *ent.Unit) UnitSummary {
	return UnitSummary{
		ID:           u.ID,
		Title:        u.Title,
		Description:  u.Description,
		LearnerLevel: string(u.LearnerLevel),
		FlowType:     string(u.FlowType),
		Status:       string(u.Status),
		LessonCount:  len(u.LessonOrder),
		ErrorMessage: u.ErrorMessage,
		HasArt:       u.ArtImageID != nil,
		HasPodcast:   u.PodcastAudioID != nil,
		CreatedAt:    u.CreatedAt,
		CompletedAt:  u.CompletedAt,
	}
}

func toUnitDetail(u *ent.Unit) *UnitDetail {
	return &UnitDetail{
		ID:                  u.ID,
		Title:               u.Title,
		Description:         u.Description,
		LearnerLevel:        string(u.LearnerLevel),
		FlowType:            string(u.FlowType),
		Status:              string(u.Status),
		GeneratedFromTopic:  u.GeneratedFromTopic,
		TargetLessonCount:   u.TargetLessonCount,
		LearningObjectives:  u.LearningObjectives,
		LessonOrder:         u.LessonOrder,
		Lessons:             orderedLessonSummaries(u),
		CreationProgress:    u.CreationProgress,
		ErrorMessage:        u.ErrorMessage,
		UserID:              u.UserID,
		FlowRunID:           u.FlowRunID,
		ArtImageID:          u.ArtImageID,
		ArtImageDescription: u.ArtImageDescription,
		PodcastAudioID:      u.PodcastAudioID,
		PodcastTranscript:   u.PodcastTranscript,
		PodcastVoice:        u.PodcastVoice,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
		CompletedAt:         u.CompletedAt,
	}
}

// orderedLessonSummaries projects the loaded lessons edge into lesson_order
// position. Lessons not yet in the order (the unit is still generating) are
// omitted.
func orderedLessonSummaries(u *ent.Unit) []LessonSummary {
	byID := make(map[string]*ent.Lesson, len(u.Edges.Lessons))
	for _, l := range u.Edges.Lessons {
		byID[l.ID] = l
	}

	summaries := make([]LessonSummary, 0, len(u.LessonOrder))
	for _, id := range u.LessonOrder {
		l, ok := byID[id]
		if !ok {
			continue
		}
		summaries = append(summaries, LessonSummary{
			ID:            l.ID,
			Title:         l.Title,
			LearnerLevel:  string(l.LearnerLevel),
			ExerciseCount: exerciseCount(l),
			FlowRunID:     l.FlowRunID,
			CreatedAt:     l.CreatedAt,
		})
	}
	return summaries
}

func exerciseCount(l *ent.Lesson) int {
	if l.Package == nil {
		return 0
	}
	return len(l.Package.Exercises)
}

func toLessonDetail(l *ent.Lesson) *LessonDetail {
	return &LessonDetail{
		ID:                     l.ID,
		UnitID:                 l.UnitID,
		Title:                  l.Title,
		LearnerLevel:           string(l.LearnerLevel),
		Package:                l.Package,
		PackageVersion:         l.PackageVersion,
		FlowRunID:              l.FlowRunID,
		PodcastTranscript:      l.PodcastTranscript,
		PodcastAudioID:         l.PodcastAudioID,
		PodcastDurationSeconds: l.PodcastDurationSeconds,
		CreatedAt:              l.CreatedAt,
		UpdatedAt:              l.UpdatedAt,
	}
}
