// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/brianfields/deeplearn-sub002/ent/audioasset"
	"github.com/brianfields/deeplearn-sub002/ent/flowrun"
	"github.com/brianfields/deeplearn-sub002/ent/flowsteprun"
	"github.com/brianfields/deeplearn-sub002/ent/imageasset"
	"github.com/brianfields/deeplearn-sub002/ent/lesson"
	"github.com/brianfields/deeplearn-sub002/ent/llmrequest"
	"github.com/brianfields/deeplearn-sub002/ent/schema"
	"github.com/brianfields/deeplearn-sub002/ent/unit"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	audioassetFields := schema.AudioAsset{}.Fields()
	_ = audioassetFields
	// audioassetDescContentType is the schema descriptor for content_type field.
	audioassetDescContentType := audioassetFields[4].Descriptor()
	// audioasset.DefaultContentType holds the default value on creation for the content_type field.
	audioasset.DefaultContentType = audioassetDescContentType.Default.(string)
	// audioassetDescFileSize is the schema descriptor for file_size field.
	audioassetDescFileSize := audioassetFields[5].Descriptor()
	// audioasset.DefaultFileSize holds the default value on creation for the file_size field.
	audioasset.DefaultFileSize = audioassetDescFileSize.Default.(int64)
	// audioassetDescCreatedAt is the schema descriptor for created_at field.
	audioassetDescCreatedAt := audioassetFields[9].Descriptor()
	// audioasset.DefaultCreatedAt holds the default value on creation for the created_at field.
	audioasset.DefaultCreatedAt = audioassetDescCreatedAt.Default.(func() time.Time)
	flowrunFields := schema.FlowRun{}.Fields()
	_ = flowrunFields
	// flowrunDescStepProgress is the schema descriptor for step_progress field.
	flowrunDescStepProgress := flowrunFields[9].Descriptor()
	// flowrun.DefaultStepProgress holds the default value on creation for the step_progress field.
	flowrun.DefaultStepProgress = flowrunDescStepProgress.Default.(int)
	// flowrunDescTotalSteps is the schema descriptor for total_steps field.
	flowrunDescTotalSteps := flowrunFields[10].Descriptor()
	// flowrun.DefaultTotalSteps holds the default value on creation for the total_steps field.
	flowrun.DefaultTotalSteps = flowrunDescTotalSteps.Default.(int)
	// flowrunDescProgressPercentage is the schema descriptor for progress_percentage field.
	flowrunDescProgressPercentage := flowrunFields[11].Descriptor()
	// flowrun.DefaultProgressPercentage holds the default value on creation for the progress_percentage field.
	flowrun.DefaultProgressPercentage = flowrunDescProgressPercentage.Default.(float64)
	// flowrunDescCreatedAt is the schema descriptor for created_at field.
	flowrunDescCreatedAt := flowrunFields[13].Descriptor()
	// flowrun.DefaultCreatedAt holds the default value on creation for the created_at field.
	flowrun.DefaultCreatedAt = flowrunDescCreatedAt.Default.(func() time.Time)
	// flowrunDescTotalTokens is the schema descriptor for total_tokens field.
	flowrunDescTotalTokens := flowrunFields[18].Descriptor()
	// flowrun.DefaultTotalTokens holds the default value on creation for the total_tokens field.
	flowrun.DefaultTotalTokens = flowrunDescTotalTokens.Default.(int)
	// flowrunDescTotalCost is the schema descriptor for total_cost field.
	flowrunDescTotalCost := flowrunFields[19].Descriptor()
	// flowrun.DefaultTotalCost holds the default value on creation for the total_cost field.
	flowrun.DefaultTotalCost = flowrunDescTotalCost.Default.(float64)
	flowsteprunFields := schema.FlowStepRun{}.Fields()
	_ = flowsteprunFields
	// flowsteprunDescTokensUsed is the schema descriptor for tokens_used field.
	flowsteprunDescTokensUsed := flowsteprunFields[8].Descriptor()
	// flowsteprun.DefaultTokensUsed holds the default value on creation for the tokens_used field.
	flowsteprun.DefaultTokensUsed = flowsteprunDescTokensUsed.Default.(int)
	// flowsteprunDescCostEstimate is the schema descriptor for cost_estimate field.
	flowsteprunDescCostEstimate := flowsteprunFields[9].Descriptor()
	// flowsteprun.DefaultCostEstimate holds the default value on creation for the cost_estimate field.
	flowsteprun.DefaultCostEstimate = flowsteprunDescCostEstimate.Default.(float64)
	// flowsteprunDescCreatedAt is the schema descriptor for created_at field.
	flowsteprunDescCreatedAt := flowsteprunFields[13].Descriptor()
	// flowsteprun.DefaultCreatedAt holds the default value on creation for the created_at field.
	flowsteprun.DefaultCreatedAt = flowsteprunDescCreatedAt.Default.(func() time.Time)
	imageassetFields := schema.ImageAsset{}.Fields()
	_ = imageassetFields
	// imageassetDescContentType is the schema descriptor for content_type field.
	imageassetDescContentType := imageassetFields[4].Descriptor()
	// imageasset.DefaultContentType holds the default value on creation for the content_type field.
	imageasset.DefaultContentType = imageassetDescContentType.Default.(string)
	// imageassetDescFileSize is the schema descriptor for file_size field.
	imageassetDescFileSize := imageassetFields[5].Descriptor()
	// imageasset.DefaultFileSize holds the default value on creation for the file_size field.
	imageasset.DefaultFileSize = imageassetDescFileSize.Default.(int64)
	// imageassetDescCreatedAt is the schema descriptor for created_at field.
	imageassetDescCreatedAt := imageassetFields[10].Descriptor()
	// imageasset.DefaultCreatedAt holds the default value on creation for the created_at field.
	imageasset.DefaultCreatedAt = imageassetDescCreatedAt.Default.(func() time.Time)
	llmrequestFields := schema.LLMRequest{}.Fields()
	_ = llmrequestFields
	// llmrequestDescTokensUsed is the schema descriptor for tokens_used field.
	llmrequestDescTokensUsed := llmrequestFields[15].Descriptor()
	// llmrequest.DefaultTokensUsed holds the default value on creation for the tokens_used field.
	llmrequest.DefaultTokensUsed = llmrequestDescTokensUsed.Default.(int)
	// llmrequestDescCostEstimate is the schema descriptor for cost_estimate field.
	llmrequestDescCostEstimate := llmrequestFields[16].Descriptor()
	// llmrequest.DefaultCostEstimate holds the default value on creation for the cost_estimate field.
	llmrequest.DefaultCostEstimate = llmrequestDescCostEstimate.Default.(float64)
	// llmrequestDescRetryAttempt is the schema descriptor for retry_attempt field.
	llmrequestDescRetryAttempt := llmrequestFields[20].Descriptor()
	// llmrequest.DefaultRetryAttempt holds the default value on creation for the retry_attempt field.
	llmrequest.DefaultRetryAttempt = llmrequestDescRetryAttempt.Default.(int)
	// llmrequestDescCached is the schema descriptor for cached field.
	llmrequestDescCached := llmrequestFields[21].Descriptor()
	// llmrequest.DefaultCached holds the default value on creation for the cached field.
	llmrequest.DefaultCached = llmrequestDescCached.Default.(bool)
	// llmrequestDescCreatedAt is the schema descriptor for created_at field.
	llmrequestDescCreatedAt := llmrequestFields[25].Descriptor()
	// llmrequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	llmrequest.DefaultCreatedAt = llmrequestDescCreatedAt.Default.(func() time.Time)
	lessonFields := schema.Lesson{}.Fields()
	_ = lessonFields
	// lessonDescPackageVersion is the schema descriptor for package_version field.
	lessonDescPackageVersion := lessonFields[6].Descriptor()
	// lesson.DefaultPackageVersion holds the default value on creation for the package_version field.
	lesson.DefaultPackageVersion = lessonDescPackageVersion.Default.(int)
	// lessonDescCreatedAt is the schema descriptor for created_at field.
	lessonDescCreatedAt := lessonFields[11].Descriptor()
	// lesson.DefaultCreatedAt holds the default value on creation for the created_at field.
	lesson.DefaultCreatedAt = lessonDescCreatedAt.Default.(func() time.Time)
	// lessonDescUpdatedAt is the schema descriptor for updated_at field.
	lessonDescUpdatedAt := lessonFields[12].Descriptor()
	// lesson.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lesson.DefaultUpdatedAt = lessonDescUpdatedAt.Default.(func() time.Time)
	// lesson.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lesson.UpdateDefaultUpdatedAt = lessonDescUpdatedAt.UpdateDefault.(func() time.Time)
	unitFields := schema.Unit{}.Fields()
	_ = unitFields
	// unitDescGeneratedFromTopic is the schema descriptor for generated_from_topic field.
	unitDescGeneratedFromTopic := unitFields[7].Descriptor()
	// unit.DefaultGeneratedFromTopic holds the default value on creation for the generated_from_topic field.
	unit.DefaultGeneratedFromTopic = unitDescGeneratedFromTopic.Default.(bool)
	// unitDescIsGlobal is the schema descriptor for is_global field.
	unitDescIsGlobal := unitFields[14].Descriptor()
	// unit.DefaultIsGlobal holds the default value on creation for the is_global field.
	unit.DefaultIsGlobal = unitDescIsGlobal.Default.(bool)
	// unitDescCreatedAt is the schema descriptor for created_at field.
	unitDescCreatedAt := unitFields[22].Descriptor()
	// unit.DefaultCreatedAt holds the default value on creation for the created_at field.
	unit.DefaultCreatedAt = unitDescCreatedAt.Default.(func() time.Time)
	// unitDescUpdatedAt is the schema descriptor for updated_at field.
	unitDescUpdatedAt := unitFields[23].Descriptor()
	// unit.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	unit.DefaultUpdatedAt = unitDescUpdatedAt.Default.(func() time.Time)
	// unit.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	unit.UpdateDefaultUpdatedAt = unitDescUpdatedAt.UpdateDefault.(func() time.Time)
}
