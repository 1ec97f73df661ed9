package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/brianfields/deeplearn-sub002/ent"
	"github.com/brianfields/deeplearn-sub002/ent/unit"
	"github.com/brianfields/deeplearn-sub002/pkg/config"
	"github.com/brianfields/deeplearn-sub002/pkg/content"
	"github.com/brianfields/deeplearn-sub002/pkg/flow"
	"github.com/brianfields/deeplearn-sub002/pkg/llm"
	"github.com/brianfields/deeplearn-sub002/pkg/models"
	"github.com/brianfields/deeplearn-sub002/pkg/services"
)

// RealUnitExecutor implements UnitExecutor on the flow engine. It replays the
// unit's pre-created unit_creation flow, fans out one lesson flow per planned
// lesson under the configured parallelism cap, and finishes with best-effort
// media flows, persisting lessons and progress as each piece lands.
type RealUnitExecutor struct {
	engine   *flow.Engine
	flows    *content.Flows
	units    content.UnitStore
	lessons  content.LessonStore
	flowRuns *services.FlowRunService
	cfg      config.ContentConfig
}

// NewRealUnitExecutor creates the executor the worker pool drives.
func NewRealUnitExecutor(
	engine *flow.Engine,
	flows *content.Flows,
	units content.UnitStore,
	lessons content.LessonStore,
	flowRuns *services.FlowRunService,
	cfg config.ContentConfig,
) *RealUnitExecutor {
	return &RealUnitExecutor{
		engine:   engine,
		flows:    flows,
		units:    units,
		lessons:  lessons,
		flowRuns: flowRuns,
		cfg:      cfg,
	}
}

// ────────────────────────────────────────────────────────────
// Execute
// ────────────────────────────────────────────────────────────

// Execute runs the claimed unit from plan to persisted lessons and media.
// A lesson failure is tolerated as long as at least one lesson survives;
// media failures are always tolerated. The unit's terminal status is the
// worker's to write, not ours.
func (e *RealUnitExecutor) Execute(ctx context.Context, u *ent.Unit) *ExecutionResult {
	logger := slog.With(
		"unit_id", u.ID,
		"flow_type", u.FlowType,
		"learner_level", u.LearnerLevel,
	)
	logger.Info("Unit executor: starting creation")

	// 1. Load the unit_creation flow row created at submission. Its persisted
	// inputs are the authoritative submission; the unit columns are not.
	if u.FlowRunID == nil || *u.FlowRunID == "" {
		return &ExecutionResult{
			Status:       unit.StatusFailed,
			ErrorMessage: "unit has no flow run",
		}
	}
	fr, err := e.flowRuns.GetFlowRun(ctx, *u.FlowRunID)
	if err != nil {
		logger.Error("Failed to load unit flow run", "flow_run_id", *u.FlowRunID, "error", err)
		return &ExecutionResult{
			Status:       unit.StatusFailed,
			ErrorMessage: fmt.Sprintf("load flow run %s: %v", *u.FlowRunID, err),
		}
	}

	userID := ""
	if u.UserID != nil {
		userID = *u.UserID
	}

	// 2. Unit planning flow: source material, unit plan, learner-facing summary.
	e.setProgress(ctx, u.ID, &models.CreationProgress{
		Stage:   models.StageGeneratingMetadata,
		Message: "planning unit",
	})

	planRes, err := e.engine.Run(ctx, e.flows.UnitCreation, flow.RunOptions{
		FlowRunID:     fr.ID,
		ExecutionMode: string(fr.ExecutionMode),
		UserID:        userID,
		Inputs:        fr.Inputs,
	})
	if err != nil {
		if r := e.mapCancellation(ctx); r != nil {
			return r
		}
		logger.Error("Unit planning flow failed", "flow_run_id", fr.ID, "error", err)
		return &ExecutionResult{
			Status:       unit.StatusFailed,
			ErrorMessage: fmt.Sprintf("unit planning failed: %v", err),
		}
	}

	plan, ok := unitPlanFromContext(planRes.Context)
	if !ok {
		return &ExecutionResult{
			Status:       unit.StatusFailed,
			ErrorMessage: fmt.Sprintf("flow %s completed without a unit plan", fr.ID),
		}
	}
	source, _ := planRes.Context.GetString(content.KeySourceMaterial)
	summary, _ := planRes.Context.GetString(content.KeyUnitSummary)
	if summary == "" {
		summary = plan.Description
	}

	// 3. Persist the plan onto the unit row before lessons start, so reads
	// during generation already show real metadata.
	meta := content.UnitMetadata{
		Title:              plan.UnitTitle,
		Description:        summary,
		LearningObjectives: plan.LearningObjectives,
		SourceMaterial:     source,
	}
	if err := e.units.SaveUnitMetadata(ctx, u.ID, meta); err != nil {
		logger.Error("Failed to save unit metadata", "error", err)
		return &ExecutionResult{
			Status:       unit.StatusFailed,
			ErrorMessage: fmt.Sprintf("save unit metadata: %v", err),
		}
	}

	// 4. Fan out one lesson flow per planned lesson. Each surviving lesson is
	// persisted the moment its flow completes; failures are recorded per
	// index and the rest of the unit carries on.
	total := len(plan.Lessons)
	progress := &models.CreationProgress{
		Stage:        models.StageGeneratingLessons,
		LessonsTotal: total,
	}
	e.setProgress(ctx, u.ID, progress)

	lessonDef := e.flows.LessonDefinition(string(u.FlowType))
	lessonIDs := make([]string, total)
	var mu sync.Mutex

	results := flow.FanOut(ctx, total, e.cfg.LessonParallelism, func(ctx context.Context, i int) error {
		lessonID, lerr := e.runLessonFlow(ctx, u, fr.ID, plan, i, lessonDef, source, userID)

		mu.Lock()
		defer mu.Unlock()
		if lerr != nil {
			progress.LessonErrors = append(progress.LessonErrors, models.LessonError{
				Index: i,
				Title: plan.Lessons[i].Title,
				Error: lerr.Error(),
			})
		} else {
			lessonIDs[i] = lessonID
			progress.LessonsDone++
		}
		e.setProgress(ctx, u.ID, progress)
		return lerr
	})

	if r := e.mapCancellation(ctx); r != nil {
		return r
	}

	// Appends above land in completion order.
	sort.Slice(progress.LessonErrors, func(a, b int) bool {
		return progress.LessonErrors[a].Index < progress.LessonErrors[b].Index
	})

	order := make([]string, 0, total)
	for _, id := range lessonIDs {
		if id != "" {
			order = append(order, id)
		}
	}

	if len(order) == 0 {
		kind := dominantErrorKind(results)
		logger.Error("All lessons failed", "lessons_total", total, "error_kind", kind)
		return &ExecutionResult{
			Status:       unit.StatusFailed,
			ErrorMessage: fmt.Sprintf("all %d lessons failed (%s)", total, kind),
			LessonsTotal: total,
		}
	}

	if err := e.units.SetLessonOrder(ctx, u.ID, order); err != nil {
		logger.Error("Failed to set lesson order", "error", err)
		return &ExecutionResult{
			Status:       unit.StatusFailed,
			ErrorMessage: fmt.Sprintf("set lesson order: %v", err),
			LessonsTotal: total,
			LessonsDone:  len(order),
		}
	}

	// 5. Media flows. Strictly fail-open: a unit with lessons and no cover
	// art is still a completed unit.
	if e.cfg.MediaEnabled {
		progress.Stage = models.StageGeneratingMedia
		e.setProgress(ctx, u.ID, progress)

		progress.MediaErrors = e.generateMedia(ctx, u, fr.ID, plan, summary, userID)

		if r := e.mapCancellation(ctx); r != nil {
			return r
		}
	}

	progress.Stage = models.StageFinalizing
	e.setProgress(ctx, u.ID, progress)

	logger.Info("Unit executor: creation completed",
		"lessons_done", len(order),
		"lessons_total", total,
		"lesson_errors", len(progress.LessonErrors),
		"media_errors", len(progress.MediaErrors),
	)
	return &ExecutionResult{
		Status:       unit.StatusCompleted,
		LessonsTotal: total,
		LessonsDone:  len(order),
	}
}

// ────────────────────────────────────────────────────────────
// Lesson flows
// ────────────────────────────────────────────────────────────

// runLessonFlow executes one child lesson flow and persists the resulting
// package. Returns the new lesson id.
func (e *RealUnitExecutor) runLessonFlow(
	ctx context.Context,
	u *ent.Unit,
	parentFlowRunID string,
	plan *models.UnitPlan,
	index int,
	def flow.Definition,
	source, userID string,
) (string, error) {
	lesson := plan.Lessons[index]

	res, err := e.engine.Run(ctx, def, flow.RunOptions{
		ExecutionMode: flow.ModeBackground,
		UserID:        userID,
		Inputs: map[string]any{
			content.KeySourceMaterial: source,
			content.KeyLearnerLevel:   string(u.LearnerLevel),
			content.KeyLessonPlan:     &plan.Lessons[index],
			content.KeyObjectives:     plan.LearningObjectives,
			content.KeyLessonTitle:    lesson.Title,
		},
		Metadata: map[string]any{
			content.MetaUnitID:          u.ID,
			content.MetaParentFlowRunID: parentFlowRunID,
			content.MetaLessonIndex:     index,
			content.MetaLessonTitle:     lesson.Title,
		},
	})
	if err != nil {
		return "", err
	}

	pkg, ok := lessonPackageFromContext(res.Context)
	if !ok {
		return "", fmt.Errorf("lesson flow %s completed without a package", res.FlowRunID)
	}

	return e.lessons.CreateLesson(ctx, content.LessonRecord{
		UnitID:         u.ID,
		Title:          pkg.Meta.Title,
		LearnerLevel:   string(u.LearnerLevel),
		SourceMaterial: source,
		Package:        pkg,
		FlowRunID:      res.FlowRunID,
	})
}

// ────────────────────────────────────────────────────────────
// Media flows
// ────────────────────────────────────────────────────────────

// generateMedia runs the art and podcast flows in parallel and attaches
// whatever succeeded. Returns one message per failed medium.
func (e *RealUnitExecutor) generateMedia(
	ctx context.Context,
	u *ent.Unit,
	parentFlowRunID string,
	plan *models.UnitPlan,
	summary, userID string,
) []string {
	lessonTitles := make([]string, len(plan.Lessons))
	for i, l := range plan.Lessons {
		lessonTitles[i] = l.Title
	}

	type mediaJob struct {
		name string
		run  func(ctx context.Context) error
	}
	jobs := []mediaJob{
		{name: "unit art", run: func(ctx context.Context) error {
			return e.generateUnitArt(ctx, u, parentFlowRunID, plan.UnitTitle, summary, userID)
		}},
		{name: "podcast", run: func(ctx context.Context) error {
			return e.generateUnitPodcast(ctx, u, parentFlowRunID, plan.UnitTitle, summary, lessonTitles, userID)
		}},
	}

	var mu sync.Mutex
	var failures []string
	flow.FanOut(ctx, len(jobs), len(jobs), func(ctx context.Context, i int) error {
		if err := jobs[i].run(ctx); err != nil {
			slog.Warn("Media generation failed",
				"unit_id", u.ID,
				"media", jobs[i].name,
				"error", err,
			)
			mu.Lock()
			failures = append(failures, fmt.Sprintf("%s: %v", jobs[i].name, err))
			mu.Unlock()
			return err
		}
		return nil
	})

	sort.Strings(failures)
	return failures
}

func (e *RealUnitExecutor) generateUnitArt(
	ctx context.Context,
	u *ent.Unit,
	parentFlowRunID, title, summary, userID string,
) error {
	res, err := e.engine.Run(ctx, e.flows.UnitArtCreation, flow.RunOptions{
		ExecutionMode: flow.ModeBackground,
		UserID:        userID,
		Inputs: map[string]any{
			content.KeyUnitID:      u.ID,
			content.KeyUnitTitle:   title,
			content.KeyUnitSummary: summary,
		},
		Metadata: map[string]any{
			content.MetaUnitID:          u.ID,
			content.MetaParentFlowRunID: parentFlowRunID,
		},
	})
	if err != nil {
		return err
	}

	imageID, _ := res.Context.GetString(content.KeyArtImageID)
	if imageID == "" {
		return fmt.Errorf("art flow %s completed without an image id", res.FlowRunID)
	}
	altText, _ := res.Context.GetString(content.KeyArtAltText)
	return e.units.AttachUnitArt(ctx, u.ID, imageID, altText)
}

func (e *RealUnitExecutor) generateUnitPodcast(
	ctx context.Context,
	u *ent.Unit,
	parentFlowRunID, title, summary string,
	lessonTitles []string,
	userID string,
) error {
	res, err := e.engine.Run(ctx, e.flows.UnitPodcast, flow.RunOptions{
		ExecutionMode: flow.ModeBackground,
		UserID:        userID,
		Inputs: map[string]any{
			content.KeyUnitID:       u.ID,
			content.KeyUnitTitle:    title,
			content.KeyUnitSummary:  summary,
			content.KeyLessonTitles: lessonTitles,
		},
		Metadata: map[string]any{
			content.MetaUnitID:          u.ID,
			content.MetaParentFlowRunID: parentFlowRunID,
		},
	})
	if err != nil {
		return err
	}

	audioID, _ := res.Context.GetString(content.KeyAudioID)
	if audioID == "" {
		return fmt.Errorf("podcast flow %s completed without an audio id", res.FlowRunID)
	}
	transcript, _ := res.Context.GetString(content.KeyTranscript)
	return e.units.AttachUnitPodcast(ctx, u.ID, audioID, transcript, e.cfg.PodcastVoice)
}

// ────────────────────────────────────────────────────────────
// Helpers
// ────────────────────────────────────────────────────────────

// mapCancellation returns the ExecutionResult for a dead context, or nil if
// the context is still live. Cancelled units land as failed: the unit status
// enum has no cancelled value.
func (e *RealUnitExecutor) mapCancellation(ctx context.Context) *ExecutionResult {
	if ctx.Err() == nil {
		return nil
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &ExecutionResult{
			Status:       unit.StatusFailed,
			ErrorMessage: "unit creation timed out",
		}
	}
	return &ExecutionResult{
		Status:       unit.StatusFailed,
		ErrorMessage: "unit creation cancelled",
	}
}

// setProgress writes creation_progress. Best-effort: logs a warning on
// failure.
func (e *RealUnitExecutor) setProgress(ctx context.Context, unitID string, p *models.CreationProgress) {
	if err := e.units.UpdateCreationProgress(ctx, unitID, p); err != nil {
		slog.Warn("Failed to update creation progress",
			"unit_id", unitID,
			"stage", p.Stage,
			"error", err,
		)
	}
}

func unitPlanFromContext(fc *flow.Context) (*models.UnitPlan, bool) {
	v, ok := fc.Get(content.KeyUnitPlan)
	if !ok {
		return nil, false
	}
	plan, ok := v.(*models.UnitPlan)
	return plan, ok && plan != nil
}

func lessonPackageFromContext(fc *flow.Context) (*models.LessonPackage, bool) {
	v, ok := fc.Get(content.KeyLessonPackage)
	if !ok {
		return nil, false
	}
	pkg, ok := v.(*models.LessonPackage)
	return pkg, ok && pkg != nil
}

// dominantErrorKind reports the most common gateway error type among failed
// children. Ties break alphabetically so the message is deterministic.
func dominantErrorKind(results []flow.FanOutResult) llm.ErrorType {
	counts := make(map[llm.ErrorType]int)
	for _, r := range results {
		if r.Err != nil {
			counts[llm.TypeOf(r.Err)]++
		}
	}
	if len(counts) == 0 {
		return llm.ErrorTypeInternal
	}

	kinds := make([]llm.ErrorType, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(a, b int) bool {
		if counts[kinds[a]] != counts[kinds[b]] {
			return counts[kinds[a]] > counts[kinds[b]]
		}
		return kinds[a] < kinds[b]
	})
	return kinds[0]
}
