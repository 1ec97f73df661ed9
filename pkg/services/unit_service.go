package services

import (
	"context"
	"fmt"
	"time"

	"github.com/brianfields/deeplearn-sub002/ent"
	"github.com/brianfields/deeplearn-sub002/ent/flowrun"
	"github.com/brianfields/deeplearn-sub002/ent/lesson"
	"github.com/brianfields/deeplearn-sub002/ent/unit"
	"github.com/brianfields/deeplearn-sub002/pkg/content"
	"github.com/brianfields/deeplearn-sub002/pkg/flow"
	"github.com/brianfields/deeplearn-sub002/pkg/models"
	"github.com/google/uuid"
)

// UnitService manages unit lifecycle: submission, backlog claims, creation
// progress, and terminal transitions.
type UnitService struct {
	client *ent.Client
}

// UnitService persists unit mutations for the content orchestrator.
var _ content.UnitStore = (*UnitService)(nil)

// NewUnitService creates a new UnitService
func NewUnitService(client *ent.Client) *UnitService {
	return &UnitService{client: client}
}

// UnitList is one page of units plus the total match count.
type UnitList struct {
	Units      []*ent.Unit
	TotalCount int
	Limit      int
	Offset     int
}

// CreateUnit validates the submission and creates the unit row together with
// its pending unit_creation flow run in one transaction. Background units
// enter the backlog as pending; sync units are claimed in the same
// transaction (stamped with podID) so the worker pool never sees them.
func (s *UnitService) CreateUnit(httpCtx context.Context, req models.CreateUnitRequest, podID string) (*ent.Unit, error) {
	if req.Topic == "" && req.SourceMaterial == "" {
		return nil, NewValidationError("topic", "one of topic or source_material is required")
	}
	if req.Topic != "" && req.SourceMaterial != "" {
		return nil, NewValidationError("topic", "topic and source_material are mutually exclusive")
	}
	learnerLevel := req.LearnerLevel
	if learnerLevel == "" {
		learnerLevel = models.LearnerLevelBeginner
	}
	if !models.ValidLearnerLevel(learnerLevel) {
		return nil, NewValidationError("learner_level", fmt.Sprintf("unknown learner level %q", learnerLevel))
	}
	flowType := req.FlowType
	if flowType == "" {
		flowType = models.FlowTypeStandard
	}
	if !models.ValidFlowType(flowType) {
		return nil, NewValidationError("flow_type", fmt.Sprintf("unknown flow type %q", flowType))
	}
	if err := models.ValidateTargetLessonCount(req.TargetLessonCount); err != nil {
		return nil, NewValidationError("target_lesson_count", err.Error())
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	unitID := uuid.New().String()
	flowRunID := uuid.New().String()

	mode := flow.ModeSync
	if req.Background {
		mode = flow.ModeBackground
	}

	inputs := map[string]any{
		content.KeyLearnerLevel: learnerLevel,
	}
	if req.Topic != "" {
		inputs[content.KeyTopic] = req.Topic
	}
	if req.SourceMaterial != "" {
		inputs[content.KeySourceMaterial] = req.SourceMaterial
	}
	if req.TargetLessonCount > 0 {
		inputs[content.KeyTargetLessonCount] = req.TargetLessonCount
	}

	flowCreate := tx.FlowRun.Create().
		SetID(flowRunID).
		SetFlowName(content.FlowUnitCreation).
		SetExecutionMode(executionMode(mode)).
		SetStatus(flowrun.StatusPending).
		SetInputs(inputs).
		SetFlowMetadata(map[string]any{content.MetaUnitID: unitID})
	if req.UserID != "" {
		flowCreate = flowCreate.SetUserID(req.UserID)
	}
	if _, err := flowCreate.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to create flow run: %w", err)
	}

	title := req.Topic
	if title == "" {
		title = "Untitled unit"
	}

	unitCreate := tx.Unit.Create().
		SetID(unitID).
		SetTitle(title).
		SetLearnerLevel(unit.LearnerLevel(learnerLevel)).
		SetFlowType(unit.FlowType(flowType)).
		SetGeneratedFromTopic(req.Topic != "").
		SetFlowRunID(flowRunID).
		SetStatus(unit.StatusPending)
	if req.SourceMaterial != "" {
		unitCreate = unitCreate.SetSourceMaterial(req.SourceMaterial)
	}
	if req.TargetLessonCount > 0 {
		unitCreate = unitCreate.SetTargetLessonCount(req.TargetLessonCount)
	}
	if req.UserID != "" {
		unitCreate = unitCreate.SetUserID(req.UserID)
	}
	if !req.Background {
		// Claimed at birth: the submitting request executes it inline.
		unitCreate = unitCreate.
			SetStatus(unit.StatusInProgress).
			SetPodID(podID)
	}

	u, err := unitCreate.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create unit: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return u, nil
}

// GetUnit retrieves a unit by ID with optional lesson loading.
func (s *UnitService) GetUnit(ctx context.Context, unitID string, withLessons bool) (*ent.Unit, error) {
	query := s.client.Unit.Query().Where(unit.IDEQ(unitID))

	if withLessons {
		query = query.WithLessons(func(q *ent.LessonQuery) {
			q.Order(ent.Asc(lesson.FieldCreatedAt))
		})
	}

	u, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get unit: %w", err)
	}

	return u, nil
}

// ListUnits lists units with filtering and pagination, newest first.
func (s *UnitService) ListUnits(ctx context.Context, filters models.UnitFilters) (*UnitList, error) {
	query := s.client.Unit.Query()

	if filters.Status != "" {
		status := unit.Status(filters.Status)
		if err := unit.StatusValidator(status); err != nil {
			return nil, NewValidationError("status", fmt.Sprintf("unknown status %q", filters.Status))
		}
		query = query.Where(unit.StatusEQ(status))
	}
	if filters.UserID != "" {
		query = query.Where(unit.UserIDEQ(filters.UserID))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count units: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20 // Default
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	units, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(unit.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}

	return &UnitList{
		Units:      units,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// SaveUnitMetadata persists the extracted unit plan: real title, description,
// learning objectives, and the source material lessons were planned from.
func (s *UnitService) SaveUnitMetadata(ctx context.Context, unitID string, meta content.UnitMetadata) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Unit.UpdateOneID(unitID).
		SetTitle(meta.Title).
		SetLearningObjectives(meta.LearningObjectives)
	if meta.Description != "" {
		update = update.SetDescription(meta.Description)
	}
	if meta.SourceMaterial != "" {
		update = update.SetSourceMaterial(meta.SourceMaterial)
	}

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to save unit metadata: %w", err)
	}
	return nil
}

// UpdateCreationProgress writes the creation_progress JSON clients poll.
func (s *UnitService) UpdateCreationProgress(ctx context.Context, unitID string, progress *models.CreationProgress) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Unit.UpdateOneID(unitID).
		SetCreationProgress(progress).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update creation progress: %w", err)
	}
	return nil
}

// SetLessonOrder records the ids of successfully created lessons in plan order.
func (s *UnitService) SetLessonOrder(ctx context.Context, unitID string, lessonIDs []string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Unit.UpdateOneID(unitID).
		SetLessonOrder(lessonIDs).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set lesson order: %w", err)
	}
	return nil
}

// AttachUnitArt links generated cover art to the unit.
func (s *UnitService) AttachUnitArt(ctx context.Context, unitID, imageID, description string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Unit.UpdateOneID(unitID).
		SetArtImageID(imageID)
	if description != "" {
		update = update.SetArtImageDescription(description)
	}

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to attach unit art: %w", err)
	}
	return nil
}

// AttachUnitPodcast links generated podcast audio to the unit.
func (s *UnitService) AttachUnitPodcast(ctx context.Context, unitID, audioID, transcript, voice string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Unit.UpdateOneID(unitID).
		SetPodcastAudioID(audioID)
	if transcript != "" {
		update = update.SetPodcastTranscript(transcript)
	}
	if voice != "" {
		update = update.SetPodcastVoice(voice)
	}

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to attach unit podcast: %w", err)
	}
	return nil
}

// CompleteUnit marks an in-progress unit completed.
func (s *UnitService) CompleteUnit(ctx context.Context, unitID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	n, err := s.client.Unit.Update().
		Where(
			unit.IDEQ(unitID),
			unit.StatusEQ(unit.StatusInProgress),
		).
		SetStatus(unit.StatusCompleted).
		SetCompletedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to complete unit: %w", err)
	}
	if n == 0 {
		return s.unitTerminalConflict(writeCtx, unitID)
	}
	return nil
}

// FailUnit marks a non-terminal unit failed with an error message.
func (s *UnitService) FailUnit(ctx context.Context, unitID, errorMessage string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	n, err := s.client.Unit.Update().
		Where(
			unit.IDEQ(unitID),
			unit.StatusIn(unit.StatusPending, unit.StatusInProgress),
		).
		SetStatus(unit.StatusFailed).
		SetErrorMessage(errorMessage).
		SetCompletedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to fail unit: %w", err)
	}
	if n == 0 {
		return s.unitTerminalConflict(writeCtx, unitID)
	}
	return nil
}

// CancelPendingUnit cancels a unit that is still waiting in the backlog,
// together with its pending flow run. In-progress units are cancelled through
// the worker pool instead; terminal units return ErrNotCancellable.
func (s *UnitService) CancelPendingUnit(ctx context.Context, unitID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	u, err := tx.Unit.Query().Where(unit.IDEQ(unitID)).Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get unit: %w", err)
	}

	n, err := tx.Unit.Update().
		Where(
			unit.IDEQ(unitID),
			unit.StatusEQ(unit.StatusPending),
		).
		SetStatus(unit.StatusFailed).
		SetErrorMessage("cancelled by user").
		SetCompletedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to cancel unit: %w", err)
	}
	if n == 0 {
		if u.Status == unit.StatusInProgress {
			return ErrConcurrentModification
		}
		return ErrNotCancellable
	}

	if u.FlowRunID != nil {
		_, err = tx.FlowRun.Update().
			Where(
				flowrun.IDEQ(*u.FlowRunID),
				flowrun.StatusEQ(flowrun.StatusPending),
			).
			SetStatus(flowrun.StatusCancelled).
			SetCompletedAt(time.Now()).
			Save(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to cancel pending flow run: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cancellation: %w", err)
	}
	return nil
}

// UnitByFlowRunID finds the unit a unit_creation flow belongs to. The stall
// reconciler uses it to fail the owner of a stalled flow.
func (s *UnitService) UnitByFlowRunID(ctx context.Context, flowRunID string) (*ent.Unit, error) {
	u, err := s.client.Unit.Query().
		Where(unit.FlowRunIDEQ(flowRunID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find unit by flow run: %w", err)
	}
	return u, nil
}

// FindInProgressUnitsByPod returns units this pod claimed but never finished,
// used by startup recovery after a crash or restart.
func (s *UnitService) FindInProgressUnitsByPod(ctx context.Context, podID string) ([]*ent.Unit, error) {
	units, err := s.client.Unit.Query().
		Where(
			unit.StatusEQ(unit.StatusInProgress),
			unit.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find in-progress units: %w", err)
	}
	return units, nil
}

// unitTerminalConflict explains why a conditional terminal write missed.
func (s *UnitService) unitTerminalConflict(ctx context.Context, unitID string) error {
	u, err := s.client.Unit.Get(ctx, unitID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get unit: %w", err)
	}
	return fmt.Errorf("unit %s is already %s: %w", unitID, u.Status, ErrConcurrentModification)
}
