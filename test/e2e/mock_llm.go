package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/brianfields/deeplearn-sub002/pkg/content"
	"github.com/brianfields/deeplearn-sub002/pkg/llm"
	"github.com/brianfields/deeplearn-sub002/pkg/models"
)

// scriptedProvider is an llm.Provider that answers every call from canned,
// schema-valid documents, so whole units run through the real gateway, audit
// trail, flow engine, executor, and worker pool without a network. Structured
// calls route on the schema name; plain text calls route on the prompt's
// opening marker. Lesson-scoped calls find their lesson by the quoted title
// every lesson prompt carries.
type scriptedProvider struct {
	mu   sync.Mutex
	plan models.UnitPlan

	failures []failRule
	parks    []parkPoint

	completions int
}

// failRule fails matching calls with a provider error. An empty lessonTitle
// matches the schema on any call; a non-empty one narrows the rule to calls
// whose prompt quotes that lesson's title.
type failRule struct {
	schema      string
	lessonTitle string
}

// parkPoint blocks matching calls until the caller's context is done.
// entered closes when the first matching call arrives.
type parkPoint struct {
	schema  string
	entered chan struct{}
	once    *sync.Once
}

func newScriptedProvider(plan models.UnitPlan) *scriptedProvider {
	return &scriptedProvider{plan: plan}
}

func (p *scriptedProvider) Name() string { return "scripted" }

// setPlan replaces the unit plan the provider scripts against. Call before
// submitting the unit that should see it.
func (p *scriptedProvider) setPlan(plan models.UnitPlan) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.plan = plan
}

// failOn makes every call for schema fail with a provider error. lessonTitle
// narrows the rule to one planned lesson; empty matches all calls.
func (p *scriptedProvider) failOn(schema, lessonTitle string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failures = append(p.failures, failRule{schema: schema, lessonTitle: lessonTitle})
}

// parkOn blocks every call for schema until its context is cancelled. The
// returned channel closes when the first matching call arrives, so tests can
// line up a cancellation or a stall against an in-flight provider call.
func (p *scriptedProvider) parkOn(schema string) <-chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	entered := make(chan struct{})
	p.parks = append(p.parks, parkPoint{schema: schema, entered: entered, once: &sync.Once{}})
	return entered
}

// completed reports how many Complete calls returned a response.
func (p *scriptedProvider) completed() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.completions
}

func (p *scriptedProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	schema := ""
	if req.Schema != nil {
		schema = req.Schema.Name()
	}
	prompt := userPrompt(req.Messages)

	if park := p.matchPark(schema); park != nil {
		park.once.Do(func() { close(park.entered) })
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if p.matchFailure(schema, prompt) {
		return nil, llm.NewError(llm.ErrorTypeProvider, "scripted provider failure", nil)
	}

	doc, err := p.respond(schema, prompt)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.completions++
	p.mu.Unlock()

	return &llm.CompletionResponse{
		Content:           doc,
		Model:             req.Model,
		ResponseID:        "chatcmpl-e2e",
		SystemFingerprint: "fp_e2e",
		Usage: models.TokenUsage{
			InputTokens:  100,
			OutputTokens: 50,
			TotalTokens:  150,
		},
		CreatedAt: time.Now(),
	}, nil
}

func (p *scriptedProvider) GenerateImage(_ context.Context, _ llm.ImageRequest) (*llm.ImageData, error) {
	return &llm.ImageData{
		Bytes:       []byte("\x89PNG\r\n\x1a\ne2e-image"),
		ContentType: "image/png",
		Width:       1024,
		Height:      1024,
	}, nil
}

func (p *scriptedProvider) GenerateSpeech(_ context.Context, _ llm.AudioRequest) (*llm.AudioData, error) {
	return &llm.AudioData{
		Bytes:       []byte("ID3e2e-audio"),
		ContentType: "audio/mpeg",
	}, nil
}

func (p *scriptedProvider) matchPark(schema string) *parkPoint {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.parks {
		if p.parks[i].schema == schema {
			return &p.parks[i]
		}
	}
	return nil
}

func (p *scriptedProvider) matchFailure(schema, prompt string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, rule := range p.failures {
		if rule.schema != schema {
			continue
		}
		if rule.lessonTitle == "" || strings.Contains(prompt, `"`+rule.lessonTitle+`"`) {
			return true
		}
	}
	return false
}

// respond builds the canned document for one call.
func (p *scriptedProvider) respond(schema, prompt string) (string, error) {
	p.mu.Lock()
	plan := p.plan
	p.mu.Unlock()

	if schema == "" {
		switch {
		case strings.HasPrefix(prompt, "Write original teaching material"):
			return "Gradient descent minimizes a loss function by stepping against the gradient. " +
				"The learning rate scales each step; too large overshoots, too small crawls.", nil
		case strings.HasPrefix(prompt, "Write a learner-facing summary of the unit"):
			return "A guided tour of gradient descent, from loss surfaces to learning rates.", nil
		case strings.HasPrefix(prompt, "Write a two-host podcast transcript"):
			return "HOST A: Welcome back. HOST B: Today we walk downhill on a loss surface.", nil
		default:
			return "", llm.NewError(llm.ErrorTypeProvider,
				fmt.Sprintf("no scripted response for prompt %q", firstLine(prompt)), nil)
		}
	}

	switch schema {
	case "unit_plan":
		return marshalDoc(plan)

	case "lesson_metadata":
		lp, err := planLessonFor(plan, prompt)
		if err != nil {
			return "", err
		}
		return marshalDoc(content.LessonMetadata{
			LessonTitle: lp.Title,
			Objectives:  lessonObjectives(plan, lp),
			KeyConcepts: lessonConcepts(lp),
		})

	case "misconception_bank":
		return marshalDoc(content.MisconceptionBank{
			Misconceptions: []models.Misconception{{
				ID:         "mc_1",
				Misbelief:  "Gradient descent always finds the global minimum.",
				Correction: "It follows the local slope and can settle in a local minimum.",
			}},
		})

	case "mini_lesson":
		return marshalDoc(struct {
			MiniLesson string `json:"mini_lesson"`
		}{
			MiniLesson: "Gradient descent walks downhill on the loss surface one step at a time.",
		})

	case "glossary":
		return marshalDoc(struct {
			GlossaryTerms []models.GlossaryTerm `json:"glossary_terms"`
		}{
			GlossaryTerms: []models.GlossaryTerm{{
				ID:         "term_1",
				Term:       "gradient",
				Definition: "The vector of partial derivatives pointing uphill.",
			}},
		})

	case "mcq_set":
		lp, err := planLessonFor(plan, prompt)
		if err != nil {
			return "", err
		}
		return marshalDoc(struct {
			MCQs []content.MCQDraft `json:"mcqs"`
		}{
			MCQs: []content.MCQDraft{{
				ID:   "mcq_1",
				LOID: lp.LearningObjectiveIDs[0],
				Stem: "What does gradient descent minimize?",
				Options: []models.MCQOption{
					{ID: "a", Text: "The loss function"},
					{ID: "b", Text: "The learning rate"},
				},
				AnswerKey: models.AnswerKey{OptionID: "a", RationaleRight: "The loss is the objective."},
			}},
		})

	case "short_answer_set":
		lp, err := planLessonFor(plan, prompt)
		if err != nil {
			return "", err
		}
		return marshalDoc(struct {
			ShortAnswers []content.ShortAnswerDraft `json:"short_answers"`
		}{
			ShortAnswers: []content.ShortAnswerDraft{{
				ID:              "sa_1",
				LOID:            lp.LearningObjectiveIDs[0],
				Stem:            "Name the quantity gradient descent minimizes.",
				CanonicalAnswer: "the loss function",
			}},
		})

	case "unit_art_description":
		return marshalDoc(content.ArtDescription{
			Prompt:  "A minimalist landscape of nested contour lines",
			AltText: "Contour lines descending to a minimum",
		})

	default:
		return "", llm.NewError(llm.ErrorTypeProvider,
			fmt.Sprintf("no scripted response for schema %q", schema), nil)
	}
}

// planLessonFor finds the planned lesson a prompt addresses by its quoted
// title.
func planLessonFor(plan models.UnitPlan, prompt string) (*models.LessonPlan, error) {
	for i := range plan.Lessons {
		if strings.Contains(prompt, `"`+plan.Lessons[i].Title+`"`) {
			return &plan.Lessons[i], nil
		}
	}
	return nil, llm.NewError(llm.ErrorTypeProvider,
		fmt.Sprintf("prompt names no planned lesson: %q", firstLine(prompt)), nil)
}

// lessonObjectives projects the lesson's objective ids onto the unit plan's
// objective titles.
func lessonObjectives(plan models.UnitPlan, lp *models.LessonPlan) []models.Objective {
	titles := make(map[string]string, len(plan.LearningObjectives))
	for _, lo := range plan.LearningObjectives {
		titles[lo.ID] = lo.Title
	}
	objectives := make([]models.Objective, 0, len(lp.LearningObjectiveIDs))
	for _, id := range lp.LearningObjectiveIDs {
		text := titles[id]
		if text == "" {
			text = "Objective " + id
		}
		objectives = append(objectives, models.Objective{ID: id, Text: text})
	}
	return objectives
}

func lessonConcepts(lp *models.LessonPlan) []string {
	if len(lp.KeyConcepts) > 0 {
		return lp.KeyConcepts
	}
	return []string{"gradient"}
}

// userPrompt returns the last user message's content; routing markers always
// live there.
func userPrompt(messages []models.ChatMessage) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == models.RoleUser {
			return messages[i].Content
		}
	}
	return ""
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func marshalDoc(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", llm.NewError(llm.ErrorTypeInternal, "failed to marshal scripted document", err)
	}
	return string(b), nil
}

// gradientPlan builds the scripted unit plan: lessons over two unit
// objectives, with enough structure to satisfy every downstream step.
func gradientPlan(lessonCount int) models.UnitPlan {
	titles := []string{"The Loss Landscape", "Stepping Downhill", "Choosing the Learning Rate"}
	objectiveIDs := []string{"lo_1", "lo_2"}

	lessons := make([]models.LessonPlan, 0, lessonCount)
	for i := 0; i < lessonCount; i++ {
		title := fmt.Sprintf("Lesson %d", i+1)
		if i < len(titles) {
			title = titles[i]
		}
		lessons = append(lessons, models.LessonPlan{
			Title:                title,
			LessonObjective:      fmt.Sprintf("Understand part %d of gradient descent", i+1),
			LearningObjectiveIDs: []string{objectiveIDs[i%len(objectiveIDs)]},
			KeyConcepts:          []string{"gradient", "learning rate"},
		})
	}

	return models.UnitPlan{
		UnitTitle:   "Intro to Gradient Descent",
		Description: "How models learn by following slopes.",
		LearningObjectives: []models.LearningObjective{
			{ID: "lo_1", Title: "Explain what gradient descent minimizes", BloomLevel: "understand"},
			{ID: "lo_2", Title: "Describe how the learning rate shapes each step", BloomLevel: "understand"},
		},
		Lessons: lessons,
	}
}
