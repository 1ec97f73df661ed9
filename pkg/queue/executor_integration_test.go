package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/brianfields/deeplearn-sub002/ent"
	"github.com/brianfields/deeplearn-sub002/ent/flowrun"
	"github.com/brianfields/deeplearn-sub002/ent/lesson"
	"github.com/brianfields/deeplearn-sub002/ent/unit"
	"github.com/brianfields/deeplearn-sub002/pkg/config"
	"github.com/brianfields/deeplearn-sub002/pkg/content"
	"github.com/brianfields/deeplearn-sub002/pkg/flow"
	"github.com/brianfields/deeplearn-sub002/pkg/llm"
	"github.com/brianfields/deeplearn-sub002/pkg/models"
	"github.com/brianfields/deeplearn-sub002/pkg/objectstore"
	"github.com/brianfields/deeplearn-sub002/pkg/services"
	testdb "github.com/brianfields/deeplearn-sub002/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedCall is one pre-scripted gateway response. Payload is the response
// content (JSON for structured calls). err fails the call instead. waitCtx
// blocks until the caller's context dies, for cancellation tests.
type scriptedCall struct {
	payload string
	err     error
	waitCtx bool
}

func okCall(payload string) scriptedCall { return scriptedCall{payload: payload} }
func errCall(err error) scriptedCall     { return scriptedCall{err: err} }
func waitCall() scriptedCall             { return scriptedCall{waitCtx: true} }

// scriptedGateway serves pre-scripted responses in call order, one queue per
// response shape. Lesson parallelism must be 1 when a test scripts more than
// one lesson, otherwise interleaving scrambles the queues.
type scriptedGateway struct {
	mu         sync.Mutex
	structured []scriptedCall
	text       []scriptedCall
	imageErr   error
	audioErr   error
	calls      int
}

func (g *scriptedGateway) pop(queue *[]scriptedCall, kind string) (scriptedCall, string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(*queue) == 0 {
		return scriptedCall{}, "", llm.NewError(llm.ErrorTypeInternal, "no scripted "+kind+" response", nil)
	}
	call := (*queue)[0]
	*queue = (*queue)[1:]
	g.calls++
	return call, fmt.Sprintf("req-%d", g.calls), nil
}

func (g *scriptedGateway) GenerateResponse(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	call, reqID, err := g.pop(&g.text, "text")
	if err != nil {
		return nil, err
	}
	if call.waitCtx {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if call.err != nil {
		return nil, call.err
	}
	return &llm.Response{
		RequestID: reqID,
		Content:   call.payload,
		Model:     "gpt-test",
		Provider:  "scripted",
		Usage:     models.TokenUsage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
	}, nil
}

func (g *scriptedGateway) GenerateStructured(ctx context.Context, _ llm.Request, _ *llm.ResponseSchema, out any) (*llm.StructuredResult, error) {
	call, reqID, err := g.pop(&g.structured, "structured")
	if err != nil {
		return nil, err
	}
	if call.waitCtx {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if call.err != nil {
		return nil, call.err
	}
	if err := json.Unmarshal([]byte(call.payload), out); err != nil {
		return nil, llm.NewError(llm.ErrorTypeInvalidResponse, "scripted payload does not parse", err)
	}
	return &llm.StructuredResult{Response: llm.Response{
		RequestID: reqID,
		Content:   call.payload,
		Model:     "gpt-test",
		Provider:  "scripted",
		Usage:     models.TokenUsage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
	}}, nil
}

func (g *scriptedGateway) GenerateAudio(_ context.Context, req llm.AudioRequest) (*llm.AudioResult, error) {
	if g.audioErr != nil {
		return nil, g.audioErr
	}
	return &llm.AudioResult{
		RequestID:       "req-audio",
		Audio:           []byte("mp3 bytes"),
		ContentType:     "audio/mpeg",
		Model:           req.Model,
		Voice:           req.Voice,
		DurationSeconds: 93.5,
	}, nil
}

func (g *scriptedGateway) GenerateImage(_ context.Context, req llm.ImageRequest) (*llm.ImageResult, error) {
	if g.imageErr != nil {
		return nil, g.imageErr
	}
	return &llm.ImageResult{
		RequestID:   "req-image",
		Image:       []byte("png bytes"),
		ContentType: "image/png",
		Model:       req.Model,
		Width:       1024,
		Height:      1024,
	}, nil
}

func (g *scriptedGateway) drained() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.structured) == 0 && len(g.text) == 0
}

// ────────────────────────────────────────────────────────────
// Fixtures
// ────────────────────────────────────────────────────────────

func jsonOf(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func intTestPlan(lessonTitles ...string) *models.UnitPlan {
	plan := &models.UnitPlan{
		UnitTitle:   "Intro to Gradient Descent",
		Description: "How models learn from error.",
		LearningObjectives: []models.LearningObjective{
			{ID: "lo_1", Title: "Explain what gradient descent minimizes", BloomLevel: "understand"},
		},
	}
	for _, title := range lessonTitles {
		plan.Lessons = append(plan.Lessons, models.LessonPlan{
			Title:                title,
			LessonObjective:      "Explain the loss surface",
			LearningObjectiveIDs: []string{"lo_1"},
			KeyConcepts:          []string{"loss function"},
		})
	}
	return plan
}

func lessonMetaJSON(t *testing.T) string {
	return jsonOf(t, &content.LessonMetadata{
		LessonTitle: "Scripted Title",
		Objectives: []models.Objective{
			{ID: "lo_1", Text: "Explain the loss surface"},
		},
		KeyConcepts: []string{"loss function", "gradient"},
	})
}

func bankJSON(t *testing.T) string {
	return jsonOf(t, &content.MisconceptionBank{
		Misconceptions: []models.Misconception{
			{ID: "mc_1", Misbelief: "Lower loss always means better", Correction: "Training loss can hide overfitting."},
		},
	})
}

const snippetJSON = `{"mini_lesson":"Gradient descent walks downhill on the loss surface one step at a time."}`

func glossaryJSON(t *testing.T) string {
	return jsonOf(t, map[string]any{
		"glossary_terms": []models.GlossaryTerm{
			{ID: "gt_1", Term: "gradient", Definition: "The direction of steepest increase."},
		},
	})
}

func mcqsJSON(t *testing.T) string {
	return jsonOf(t, map[string]any{
		"mcqs": []content.MCQDraft{
			{
				ID:   "ex_1",
				LOID: "lo_1",
				Stem: "What does the loss surface represent?",
				Options: []models.MCQOption{
					{ID: "a", Text: "Model error as a function of parameters"},
					{ID: "b", Text: "The dataset sorted by difficulty"},
					{ID: "c", Text: "The network architecture"},
				},
				AnswerKey: models.AnswerKey{OptionID: "a"},
			},
		},
	})
}

func shortAnswersJSON(t *testing.T) string {
	return jsonOf(t, map[string]any{
		"short_answers": []content.ShortAnswerDraft{
			{
				ID:              "ex_2",
				LOID:            "lo_1",
				Stem:            "In one sentence, what does a gradient tell you?",
				CanonicalAnswer: "The direction of steepest increase of the loss.",
			},
		},
	})
}

func artDescriptionJSON(t *testing.T) string {
	return jsonOf(t, &content.ArtDescription{
		Prompt:  "A minimalist landscape of nested contour lines",
		AltText: "Contour lines descending to a minimum",
	})
}

// scriptUnitPlanning queues the unit flow's responses: the extracted plan and
// the unit summary. Source material is submitted, so no generation call.
func scriptUnitPlanning(t *testing.T, gw *scriptedGateway, plan *models.UnitPlan) {
	gw.structured = append(gw.structured, okCall(jsonOf(t, plan)))
	gw.text = append(gw.text, okCall("A guided tour of gradient descent."))
}

// scriptLesson queues one successful standard lesson flow: metadata, bank,
// mini-lesson, glossary, MCQs, short answers.
func scriptLesson(t *testing.T, gw *scriptedGateway) {
	gw.structured = append(gw.structured,
		okCall(lessonMetaJSON(t)),
		okCall(bankJSON(t)),
		okCall(snippetJSON),
		okCall(glossaryJSON(t)),
		okCall(mcqsJSON(t)),
		okCall(shortAnswersJSON(t)),
	)
}

func intTestContentConfig() config.ContentConfig {
	return config.ContentConfig{
		LessonParallelism: 1,
		ImageModel:        "img-test",
		AudioModel:        "tts-test",
		PodcastVoice:      "alloy",
	}
}

type executorHarness struct {
	exec   *RealUnitExecutor
	client *ent.Client
	units  *services.UnitService
}

func newExecutorHarness(t *testing.T, gw *scriptedGateway, cfg config.ContentConfig) *executorHarness {
	t.Helper()
	client := testdb.NewTestClient(t)
	flowRuns := services.NewFlowRunService(client.Client)
	units := services.NewUnitService(client.Client)
	lessons := services.NewLessonService(client.Client)
	assets := services.NewAssetService(client.Client)
	engine := flow.NewEngine(flowRuns, gw, objectstore.NewMemory("test-bucket"), flow.EngineConfig{
		HeartbeatInterval: 1 * time.Second,
	})
	flows := content.NewFlows(cfg, assets)
	return &executorHarness{
		exec:   NewRealUnitExecutor(engine, flows, units, lessons, flowRuns, cfg),
		client: client.Client,
		units:  units,
	}
}

func (h *executorHarness) submitUnit(ctx context.Context, t *testing.T, req models.CreateUnitRequest) *ent.Unit {
	t.Helper()
	u, err := h.units.CreateUnit(ctx, req, "test-pod")
	require.NoError(t, err)
	return u
}

// ────────────────────────────────────────────────────────────
// Tests
// ────────────────────────────────────────────────────────────

func TestRealExecutorHappyPath(t *testing.T) {
	gw := &scriptedGateway{}
	plan := intTestPlan("The Loss Landscape", "Stepping Downhill")
	scriptUnitPlanning(t, gw, plan)
	scriptLesson(t, gw)
	scriptLesson(t, gw)

	h := newExecutorHarness(t, gw, intTestContentConfig())
	ctx := context.Background()

	u := h.submitUnit(ctx, t, models.CreateUnitRequest{
		SourceMaterial: "Gradient descent minimizes loss by following the negative gradient.",
		LearnerLevel:   models.LearnerLevelBeginner,
		UserID:         "user-1",
	})

	result := h.exec.Execute(ctx, u)
	require.NotNil(t, result)
	assert.Equal(t, unit.StatusCompleted, result.Status)
	assert.Empty(t, result.ErrorMessage)
	assert.Equal(t, 2, result.LessonsTotal)
	assert.Equal(t, 2, result.LessonsDone)
	assert.True(t, gw.drained(), "every scripted response should be consumed")

	// The plan's metadata replaced the placeholder row.
	got, err := h.client.Unit.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Intro to Gradient Descent", got.Title)
	require.NotNil(t, got.Description)
	assert.Equal(t, "A guided tour of gradient descent.", *got.Description)
	require.Len(t, got.LearningObjectives, 1)
	assert.Equal(t, "lo_1", got.LearningObjectives[0].ID)

	// One lesson per planned lesson, ordered by the plan.
	require.Len(t, got.LessonOrder, 2)
	rows, err := h.client.Lesson.Query().
		Where(lesson.UnitIDEQ(u.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	byID := make(map[string]*ent.Lesson, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}
	assert.Equal(t, "The Loss Landscape", byID[got.LessonOrder[0]].Title)
	assert.Equal(t, "Stepping Downhill", byID[got.LessonOrder[1]].Title)
	for _, row := range rows {
		require.NotNil(t, row.Package)
		assert.NoError(t, row.Package.Validate())
		require.NotNil(t, row.FlowRunID)
	}

	// Progress ended in finalizing with nothing recorded as failed.
	require.NotNil(t, got.CreationProgress)
	assert.Equal(t, models.StageFinalizing, got.CreationProgress.Stage)
	assert.Equal(t, 2, got.CreationProgress.LessonsTotal)
	assert.Equal(t, 2, got.CreationProgress.LessonsDone)
	assert.Empty(t, got.CreationProgress.LessonErrors)

	// The pre-created unit flow completed in place; each lesson ran its own
	// flow tagged with the unit and parent.
	unitFlow, err := h.client.FlowRun.Get(ctx, *got.FlowRunID)
	require.NoError(t, err)
	assert.Equal(t, flowrun.StatusCompleted, unitFlow.Status)
	assert.Equal(t, 3, unitFlow.TotalSteps)
	assert.Equal(t, 3, unitFlow.StepProgress)

	lessonFlows, err := h.client.FlowRun.Query().
		Where(flowrun.FlowNameEQ(content.FlowLessonCreation)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, lessonFlows, 2)
	for _, fr := range lessonFlows {
		assert.Equal(t, flowrun.StatusCompleted, fr.Status)
		assert.Equal(t, flowrun.ExecutionModeBackground, fr.ExecutionMode)
		assert.Equal(t, u.ID, fr.FlowMetadata[content.MetaUnitID])
		assert.Equal(t, unitFlow.ID, fr.FlowMetadata[content.MetaParentFlowRunID])
	}

	// 3 unit steps plus 7 per lesson.
	stepCount, err := h.client.FlowStepRun.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 17, stepCount)
}

func TestRealExecutorPartialLessonFailure(t *testing.T) {
	gw := &scriptedGateway{}
	plan := intTestPlan("Lesson One", "Lesson Two", "Lesson Three")
	scriptUnitPlanning(t, gw, plan)
	scriptLesson(t, gw)
	// Second lesson dies generating MCQs; later steps never run.
	gw.structured = append(gw.structured,
		okCall(lessonMetaJSON(t)),
		okCall(bankJSON(t)),
		okCall(snippetJSON),
		okCall(glossaryJSON(t)),
		errCall(llm.NewError(llm.ErrorTypeProvider, "mcq generation failed", nil)),
	)
	scriptLesson(t, gw)

	h := newExecutorHarness(t, gw, intTestContentConfig())
	ctx := context.Background()

	u := h.submitUnit(ctx, t, models.CreateUnitRequest{
		SourceMaterial: "Gradient descent minimizes loss by following the negative gradient.",
	})

	result := h.exec.Execute(ctx, u)
	require.NotNil(t, result)
	assert.Equal(t, unit.StatusCompleted, result.Status, "one failed lesson should not fail the unit")
	assert.Equal(t, 3, result.LessonsTotal)
	assert.Equal(t, 2, result.LessonsDone)
	assert.True(t, gw.drained())

	got, err := h.client.Unit.Get(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, got.LessonOrder, 2, "only surviving lessons appear in the order")

	rows, err := h.client.Lesson.Query().
		Where(lesson.UnitIDEQ(u.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	titles := []string{rows[0].Title, rows[1].Title}
	assert.ElementsMatch(t, []string{"Lesson One", "Lesson Three"}, titles)

	require.NotNil(t, got.CreationProgress)
	require.Len(t, got.CreationProgress.LessonErrors, 1)
	lessonErr := got.CreationProgress.LessonErrors[0]
	assert.Equal(t, 1, lessonErr.Index)
	assert.Equal(t, "Lesson Two", lessonErr.Title)
	assert.Contains(t, lessonErr.Error, "generate_mcqs")

	statuses := map[flowrun.Status]int{}
	lessonFlows, err := h.client.FlowRun.Query().
		Where(flowrun.FlowNameEQ(content.FlowLessonCreation)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, lessonFlows, 3)
	for _, fr := range lessonFlows {
		statuses[fr.Status]++
	}
	assert.Equal(t, 2, statuses[flowrun.StatusCompleted])
	assert.Equal(t, 1, statuses[flowrun.StatusFailed])
}

func TestRealExecutorAllLessonsFailed(t *testing.T) {
	gw := &scriptedGateway{}
	plan := intTestPlan("Lesson One", "Lesson Two")
	scriptUnitPlanning(t, gw, plan)
	gw.structured = append(gw.structured,
		errCall(llm.NewError(llm.ErrorTypeProvider, "provider down", nil)),
		errCall(llm.NewError(llm.ErrorTypeProvider, "provider down", nil)),
	)

	h := newExecutorHarness(t, gw, intTestContentConfig())
	ctx := context.Background()

	u := h.submitUnit(ctx, t, models.CreateUnitRequest{
		SourceMaterial: "Gradient descent minimizes loss by following the negative gradient.",
	})

	result := h.exec.Execute(ctx, u)
	require.NotNil(t, result)
	assert.Equal(t, unit.StatusFailed, result.Status)
	assert.Equal(t, "all 2 lessons failed (provider_error)", result.ErrorMessage)
	assert.Equal(t, 2, result.LessonsTotal)
	assert.Equal(t, 0, result.LessonsDone)

	got, err := h.client.Unit.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, got.LessonOrder)
	require.NotNil(t, got.CreationProgress)
	require.Len(t, got.CreationProgress.LessonErrors, 2)
	assert.Equal(t, 0, got.CreationProgress.LessonErrors[0].Index)
	assert.Equal(t, 1, got.CreationProgress.LessonErrors[1].Index)

	count, err := h.client.Lesson.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "no lesson rows should be written")
}

func TestRealExecutorPlanningFailure(t *testing.T) {
	gw := &scriptedGateway{}
	gw.structured = append(gw.structured,
		errCall(llm.NewError(llm.ErrorTypeProvider, "metadata extraction failed", nil)),
	)

	h := newExecutorHarness(t, gw, intTestContentConfig())
	ctx := context.Background()

	u := h.submitUnit(ctx, t, models.CreateUnitRequest{
		SourceMaterial: "Gradient descent minimizes loss by following the negative gradient.",
	})

	result := h.exec.Execute(ctx, u)
	require.NotNil(t, result)
	assert.Equal(t, unit.StatusFailed, result.Status)
	assert.Contains(t, result.ErrorMessage, "unit planning failed")
	assert.Contains(t, result.ErrorMessage, "extract_unit_metadata")

	unitFlow, err := h.client.FlowRun.Get(ctx, *u.FlowRunID)
	require.NoError(t, err)
	assert.Equal(t, flowrun.StatusFailed, unitFlow.Status)

	count, err := h.client.Lesson.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRealExecutorCancellation(t *testing.T) {
	gw := &scriptedGateway{}
	plan := intTestPlan("The Loss Landscape")
	scriptUnitPlanning(t, gw, plan)
	// The lesson's first call parks until the context dies.
	gw.structured = append(gw.structured, waitCall())

	h := newExecutorHarness(t, gw, intTestContentConfig())

	u := h.submitUnit(context.Background(), t, models.CreateUnitRequest{
		SourceMaterial: "Gradient descent minimizes loss by following the negative gradient.",
		Background:     true,
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(150 * time.Millisecond)
		cancel()
	}()

	result := h.exec.Execute(ctx, u)
	require.NotNil(t, result)
	assert.Equal(t, unit.StatusFailed, result.Status)
	assert.Equal(t, "unit creation cancelled", result.ErrorMessage)

	// Terminal flow writes survive the dead context.
	queryCtx := context.Background()
	unitFlow, err := h.client.FlowRun.Get(queryCtx, *u.FlowRunID)
	require.NoError(t, err)
	assert.Equal(t, flowrun.StatusCompleted, unitFlow.Status, "planning finished before the cancel")

	lessonFlows, err := h.client.FlowRun.Query().
		Where(flowrun.FlowNameEQ(content.FlowLessonCreation)).
		All(queryCtx)
	require.NoError(t, err)
	require.Len(t, lessonFlows, 1)
	assert.Equal(t, flowrun.StatusCancelled, lessonFlows[0].Status)
}

func TestRealExecutorMedia(t *testing.T) {
	t.Run("art and podcast attach on success", func(t *testing.T) {
		gw := &scriptedGateway{}
		plan := intTestPlan("The Loss Landscape")
		scriptUnitPlanning(t, gw, plan)
		scriptLesson(t, gw)
		gw.structured = append(gw.structured, okCall(artDescriptionJSON(t)))
		gw.text = append(gw.text, okCall("Welcome to the unit podcast."))

		cfg := intTestContentConfig()
		cfg.MediaEnabled = true
		h := newExecutorHarness(t, gw, cfg)
		ctx := context.Background()

		u := h.submitUnit(ctx, t, models.CreateUnitRequest{
			SourceMaterial: "Gradient descent minimizes loss by following the negative gradient.",
		})

		result := h.exec.Execute(ctx, u)
		require.NotNil(t, result)
		assert.Equal(t, unit.StatusCompleted, result.Status)
		assert.True(t, gw.drained())

		got, err := h.client.Unit.Get(ctx, u.ID)
		require.NoError(t, err)
		require.NotNil(t, got.ArtImageID)
		require.NotNil(t, got.ArtImageDescription)
		assert.Equal(t, "Contour lines descending to a minimum", *got.ArtImageDescription)
		require.NotNil(t, got.PodcastAudioID)
		require.NotNil(t, got.PodcastTranscript)
		assert.Equal(t, "Welcome to the unit podcast.", *got.PodcastTranscript)
		require.NotNil(t, got.PodcastVoice)
		assert.Equal(t, "alloy", *got.PodcastVoice)
		require.NotNil(t, got.CreationProgress)
		assert.Empty(t, got.CreationProgress.MediaErrors)

		// The attached ids resolve to asset rows.
		img, err := h.client.ImageAsset.Get(ctx, *got.ArtImageID)
		require.NoError(t, err)
		assert.Equal(t, "test-bucket", img.Bucket)
		aud, err := h.client.AudioAsset.Get(ctx, *got.PodcastAudioID)
		require.NoError(t, err)
		require.NotNil(t, aud.Transcript)
		assert.Equal(t, "Welcome to the unit podcast.", *aud.Transcript)

		mediaFlows, err := h.client.FlowRun.Query().
			Where(flowrun.FlowNameIn(content.FlowUnitArtCreation, content.FlowUnitPodcast)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, mediaFlows, 2)
		for _, fr := range mediaFlows {
			assert.Equal(t, flowrun.StatusCompleted, fr.Status)
		}
	})

	t.Run("media failures do not fail the unit", func(t *testing.T) {
		gw := &scriptedGateway{}
		plan := intTestPlan("The Loss Landscape")
		scriptUnitPlanning(t, gw, plan)
		scriptLesson(t, gw)
		gw.structured = append(gw.structured, okCall(artDescriptionJSON(t)))
		gw.text = append(gw.text, okCall("Welcome to the unit podcast."))
		gw.imageErr = llm.NewError(llm.ErrorTypeProvider, "image provider down", nil)

		cfg := intTestContentConfig()
		cfg.MediaEnabled = true
		h := newExecutorHarness(t, gw, cfg)
		ctx := context.Background()

		u := h.submitUnit(ctx, t, models.CreateUnitRequest{
			SourceMaterial: "Gradient descent minimizes loss by following the negative gradient.",
		})

		result := h.exec.Execute(ctx, u)
		require.NotNil(t, result)
		assert.Equal(t, unit.StatusCompleted, result.Status, "media is fail-open")

		got, err := h.client.Unit.Get(ctx, u.ID)
		require.NoError(t, err)
		assert.Nil(t, got.ArtImageID)
		require.NotNil(t, got.PodcastAudioID, "podcast should attach even when art fails")
		require.NotNil(t, got.CreationProgress)
		require.Len(t, got.CreationProgress.MediaErrors, 1)
		assert.Contains(t, got.CreationProgress.MediaErrors[0], "unit art:")
	})
}
