package api

// SubmitUnitRequest is the HTTP request body for POST /api/v1/units.
// Exactly one of Topic or SourceMaterial must be set.
type SubmitUnitRequest struct {
	Topic             string `json:"topic,omitempty"`
	SourceMaterial    string `json:"source_material,omitempty"`
	TargetLessonCount int    `json:"target_lesson_count,omitempty"`
	LearnerLevel      string `json:"learner_level,omitempty"`
	FlowType          string `json:"flow_type,omitempty"`
	Background        bool   `json:"background,omitempty"`
	UserID            string `json:"user_id,omitempty"`
}
