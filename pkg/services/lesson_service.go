package services

import (
	"context"
	"fmt"
	"time"

	"github.com/brianfields/deeplearn-sub002/ent"
	"github.com/brianfields/deeplearn-sub002/ent/lesson"
	"github.com/brianfields/deeplearn-sub002/pkg/content"
	"github.com/brianfields/deeplearn-sub002/pkg/models"
	"github.com/google/uuid"
)

// LessonService manages lesson persistence. A lesson row always carries a
// package that passed validation; invalid packages are rejected here as the
// last line of defense.
type LessonService struct {
	client *ent.Client
}

// LessonService persists lessons for the content orchestrator.
var _ content.LessonStore = (*LessonService)(nil)

// NewLessonService creates a new LessonService
func NewLessonService(client *ent.Client) *LessonService {
	return &LessonService{client: client}
}

// CreateLesson persists a completed lesson and returns its id. The package is
// validated first and stamped with the new lesson id.
func (s *LessonService) CreateLesson(ctx context.Context, rec content.LessonRecord) (string, error) {
	if rec.UnitID == "" {
		return "", NewValidationError("unit_id", "required")
	}
	if rec.Title == "" {
		return "", NewValidationError("title", "required")
	}
	if rec.Package == nil {
		return "", NewValidationError("package", "required")
	}
	if err := rec.Package.Validate(); err != nil {
		return "", NewValidationError("package", err.Error())
	}
	learnerLevel := rec.LearnerLevel
	if learnerLevel == "" {
		learnerLevel = models.LearnerLevelBeginner
	}
	if !models.ValidLearnerLevel(learnerLevel) {
		return "", NewValidationError("learner_level", fmt.Sprintf("unknown learner level %q", learnerLevel))
	}

	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	lessonID := uuid.New().String()
	pkg := *rec.Package
	pkg.Meta.LessonID = lessonID

	create := s.client.Lesson.Create().
		SetID(lessonID).
		SetUnitID(rec.UnitID).
		SetTitle(rec.Title).
		SetLearnerLevel(lesson.LearnerLevel(learnerLevel)).
		SetPackage(&pkg).
		SetPackageVersion(models.PackageSchemaVersion)
	if rec.SourceMaterial != "" {
		create = create.SetSourceMaterial(rec.SourceMaterial)
	}
	if rec.FlowRunID != "" {
		create = create.SetFlowRunID(rec.FlowRunID)
	}

	row, err := create.Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return "", ErrAlreadyExists
		}
		return "", fmt.Errorf("failed to create lesson: %w", err)
	}
	return row.ID, nil
}

// GetLesson retrieves a lesson by id, scoped to its unit.
func (s *LessonService) GetLesson(ctx context.Context, unitID, lessonID string) (*ent.Lesson, error) {
	row, err := s.client.Lesson.Query().
		Where(
			lesson.IDEQ(lessonID),
			lesson.UnitIDEQ(unitID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get lesson: %w", err)
	}
	return row, nil
}

// ListLessonsByUnit returns a unit's lessons in creation order. Callers that
// need plan order reorder by the unit's lesson_order.
func (s *LessonService) ListLessonsByUnit(ctx context.Context, unitID string) ([]*ent.Lesson, error) {
	rows, err := s.client.Lesson.Query().
		Where(lesson.UnitIDEQ(unitID)).
		Order(ent.Asc(lesson.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list lessons: %w", err)
	}
	return rows, nil
}
