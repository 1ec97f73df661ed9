package content

import (
	"github.com/brianfields/deeplearn-sub002/pkg/config"
	"github.com/brianfields/deeplearn-sub002/pkg/flow"
	"github.com/brianfields/deeplearn-sub002/pkg/models"
)

// Flows bundles the flow definitions the platform runs: the unit planning
// flow, the two lesson flows, and the two media flows.
type Flows struct {
	UnitCreation       flow.Definition
	LessonCreation     flow.Definition
	FastLessonCreation flow.Definition
	UnitArtCreation    flow.Definition
	UnitPodcast        flow.Definition
}

// NewFlows builds the flow definitions. cfg selects the media models and
// podcast voice; assets records the media asset rows.
func NewFlows(cfg config.ContentConfig, assets AssetStore) *Flows {
	prompts := NewPromptBuilder()
	return &Flows{
		UnitCreation: flow.Definition{
			Name: FlowUnitCreation,
			Steps: []flow.Step{
				&generateSourceMaterialStep{prompts: prompts},
				&extractUnitMetadataStep{prompts: prompts},
				&generateUnitSummaryStep{prompts: prompts},
			},
			Outputs: unitCreationOutputs,
		},
		LessonCreation: flow.Definition{
			Name: FlowLessonCreation,
			Steps: []flow.Step{
				&extractLessonMetadataStep{prompts: prompts},
				&generateMisconceptionBankStep{prompts: prompts},
				&generateDidacticSnippetStep{prompts: prompts},
				&generateGlossaryStep{prompts: prompts},
				&generateMCQsStep{prompts: prompts},
				&generateShortAnswersStep{prompts: prompts},
				&assembleLessonPackageStep{},
			},
			Outputs: lessonCreationOutputs,
		},
		FastLessonCreation: flow.Definition{
			Name: FlowFastLessonCreation,
			Steps: []flow.Step{
				&generateLessonPackageDraftStep{prompts: prompts},
				&generateMCQsStep{prompts: prompts},
				&assembleLessonPackageStep{},
			},
			Outputs: lessonCreationOutputs,
		},
		UnitArtCreation: flow.Definition{
			Name: FlowUnitArtCreation,
			Steps: []flow.Step{
				&generateUnitArtDescriptionStep{prompts: prompts},
				&generateUnitArtImageStep{assets: assets, imageModel: cfg.ImageModel},
			},
			Outputs: unitArtOutputs,
		},
		UnitPodcast: flow.Definition{
			Name: FlowUnitPodcast,
			Steps: []flow.Step{
				&generatePodcastTranscriptStep{prompts: prompts},
				&generatePodcastAudioStep{assets: assets, audioModel: cfg.AudioModel, voice: cfg.PodcastVoice},
			},
			Outputs: unitPodcastOutputs,
		},
	}
}

// LessonDefinition returns the lesson flow variant for a unit's flow type.
func (f *Flows) LessonDefinition(flowType string) flow.Definition {
	if flowType == models.FlowTypeFast {
		return f.FastLessonCreation
	}
	return f.LessonCreation
}

func unitCreationOutputs(fc *flow.Context) map[string]any {
	out := map[string]any{}
	if title, ok := fc.GetString(KeyUnitTitle); ok {
		out[KeyUnitTitle] = title
	}
	if plan, err := contextValue[*models.UnitPlan](fc, KeyUnitPlan); err == nil {
		out["lesson_count"] = len(plan.Lessons)
		out["learning_objective_count"] = len(plan.LearningObjectives)
	}
	return out
}

func lessonCreationOutputs(fc *flow.Context) map[string]any {
	out := map[string]any{}
	if pkg, err := contextValue[*models.LessonPackage](fc, KeyLessonPackage); err == nil {
		out[KeyLessonTitle] = pkg.Meta.Title
		out["exercise_count"] = len(pkg.Exercises)
		out["glossary_term_count"] = len(pkg.GlossaryTerms)
	}
	return out
}

func unitArtOutputs(fc *flow.Context) map[string]any {
	out := map[string]any{}
	if id, ok := fc.GetString(KeyArtImageID); ok {
		out[KeyArtImageID] = id
	}
	if alt, ok := fc.GetString(KeyArtAltText); ok {
		out[KeyArtAltText] = alt
	}
	return out
}

func unitPodcastOutputs(fc *flow.Context) map[string]any {
	out := map[string]any{}
	if id, ok := fc.GetString(KeyAudioID); ok {
		out[KeyAudioID] = id
	}
	return out
}
