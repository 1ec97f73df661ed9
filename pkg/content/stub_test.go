package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brianfields/deeplearn-sub002/pkg/flow"
	"github.com/brianfields/deeplearn-sub002/pkg/llm"
	"github.com/brianfields/deeplearn-sub002/pkg/models"
	"github.com/brianfields/deeplearn-sub002/pkg/objectstore"
)

// stubGateway scripts gateway calls for step tests. Text and structured
// responses are consumed in call order; every call is recorded.
type stubGateway struct {
	mu sync.Mutex

	text       []string
	structured []string
	err        error

	audioErr error
	imageErr error

	requests      []llm.Request
	audioRequests []llm.AudioRequest
	imageRequests []llm.ImageRequest
}

func (g *stubGateway) GenerateResponse(_ context.Context, req llm.Request) (*llm.Response, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.requests = append(g.requests, req)
	if g.err != nil {
		return nil, g.err
	}
	if len(g.text) == 0 {
		return nil, llm.NewError(llm.ErrorTypeInternal, "no scripted text response", nil)
	}
	content := g.text[0]
	g.text = g.text[1:]
	return &llm.Response{
		RequestID: fmt.Sprintf("req-%d", len(g.requests)),
		Content:   content,
		Model:     "gpt-test",
		Provider:  "stub",
		Usage:     models.TokenUsage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
	}, nil
}

func (g *stubGateway) GenerateStructured(_ context.Context, req llm.Request, _ *llm.ResponseSchema, out any) (*llm.StructuredResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.requests = append(g.requests, req)
	if g.err != nil {
		return nil, g.err
	}
	if len(g.structured) == 0 {
		return nil, llm.NewError(llm.ErrorTypeInternal, "no scripted structured response", nil)
	}
	payload := g.structured[0]
	g.structured = g.structured[1:]
	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return nil, llm.NewError(llm.ErrorTypeInvalidResponse, "scripted payload does not parse", err)
	}
	return &llm.StructuredResult{Response: llm.Response{
		RequestID: fmt.Sprintf("req-%d", len(g.requests)),
		Content:   payload,
		Model:     "gpt-test",
		Provider:  "stub",
		Usage:     models.TokenUsage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
	}}, nil
}

func (g *stubGateway) GenerateAudio(_ context.Context, req llm.AudioRequest) (*llm.AudioResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.audioRequests = append(g.audioRequests, req)
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

func (g *stubGateway) GenerateImage(_ context.Context, req llm.ImageRequest) (*llm.ImageResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.imageRequests = append(g.imageRequests, req)
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

// fakeAssets records asset rows in memory.
type fakeAssets struct {
	mu     sync.Mutex
	images []ImageAssetRecord
	audio  []AudioAssetRecord
	err    error
}

func (f *fakeAssets) CreateImageAsset(_ context.Context, rec ImageAssetRecord) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	f.images = append(f.images, rec)
	return fmt.Sprintf("img-%d", len(f.images)), nil
}

func (f *fakeAssets) CreateAudioAsset(_ context.Context, rec AudioAssetRecord) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	f.audio = append(f.audio, rec)
	return fmt.Sprintf("aud-%d", len(f.audio)), nil
}

func newStepContext(gw flow.LLMGateway, objects objectstore.Store) *flow.StepContext {
	return &flow.StepContext{
		FlowRunID: "flow-1",
		StepRunID: "step-1",
		UserID:    "user-1",
		LLM:       gw,
		Objects:   objects,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// bindAndValidate runs the BindInputs + Validate sequence the engine runs
// before Execute.
func bindAndValidate(t *testing.T, step flow.Step, fc *flow.Context) flow.Inputs {
	t.Helper()
	in, err := step.BindInputs(fc)
	require.NoError(t, err)
	require.NoError(t, in.Validate())
	return in
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func testObjectives() []models.LearningObjective {
	return []models.LearningObjective{
		{ID: "lo_1", Title: "Explain what gradient descent minimizes", BloomLevel: "understand"},
		{ID: "lo_2", Title: "Apply the parameter update rule", BloomLevel: "apply"},
	}
}

func testUnitPlan() *models.UnitPlan {
	return &models.UnitPlan{
		UnitTitle:          "Intro to Gradient Descent",
		Description:        "How models learn by walking downhill on a loss surface.",
		LearningObjectives: testObjectives(),
		Lessons: []models.LessonPlan{
			{
				Title:                "The Loss Landscape",
				LessonObjective:      "Explain what the loss surface represents",
				LearningObjectiveIDs: []string{"lo_1"},
				KeyConcepts:          []string{"loss function", "gradient"},
			},
			{
				Title:                "Stepping Downhill",
				LessonObjective:      "Apply the update rule by hand",
				LearningObjectiveIDs: []string{"lo_2"},
				KeyConcepts:          []string{"learning rate", "update rule"},
			},
		},
	}
}

func testLessonMeta() *LessonMetadata {
	return &LessonMetadata{
		LessonTitle: "The Loss Landscape",
		Objectives: []models.Objective{
			{ID: "lo_1", Text: "Explain what the loss surface represents"},
		},
		KeyConcepts:        []string{"loss function", "gradient"},
		MisconceptionSeeds: []string{"lower training loss always means a better model"},
	}
}

func testBank() *MisconceptionBank {
	return &MisconceptionBank{
		Misconceptions: []models.Misconception{
			{
				ID:         "mc_1",
				Misbelief:  "Gradient descent always finds the global minimum",
				Correction: "It follows the local slope; non-convex surfaces can trap it in local minima.",
			},
		},
		Confusables: []models.Confusable{
			{
				ID:       "cf_1",
				A:        "learning rate",
				B:        "momentum",
				Contrast: "the rate scales the current step, momentum carries previous steps forward",
			},
		},
	}
}

func testMCQs() []MCQDraft {
	return []MCQDraft{
		{
			ID:             "ex_1",
			LOID:           "lo_1",
			CognitiveLevel: "understand",
			Stem:           "What does the loss surface represent?",
			Options: []models.MCQOption{
				{ID: "a", Text: "Model error as a function of parameters"},
				{ID: "b", Text: "The dataset sorted by difficulty"},
				{ID: "c", Text: "The network architecture"},
			},
			AnswerKey: models.AnswerKey{OptionID: "a", RationaleRight: "Loss maps parameter values to error."},
		},
	}
}

func testShortAnswers() []ShortAnswerDraft {
	return []ShortAnswerDraft{
		{
			ID:              "ex_2",
			LOID:            "lo_1",
			CognitiveLevel:  "understand",
			Stem:            "In one sentence, what does a gradient tell you?",
			CanonicalAnswer: "The direction of steepest increase of the loss.",
			AcceptablePatterns: []string{
				"steepest (ascent|increase)",
			},
			WrongAnswers: []string{"The size of the dataset."},
		},
	}
}
