package models

import "fmt"

// UnitPlan is the structured output of unit metadata extraction: the unit's
// title, its learning objectives, and one plan entry per lesson to generate.
type UnitPlan struct {
	UnitTitle          string              `json:"unit_title"`
	Description        string              `json:"description,omitempty"`
	LearningObjectives []LearningObjective `json:"learning_objectives"`
	Lessons            []LessonPlan        `json:"lessons"`
}

// LessonPlan describes one planned lesson and the unit objectives it covers.
type LessonPlan struct {
	Title                string   `json:"title"`
	LessonObjective      string   `json:"lesson_objective"`
	LearningObjectiveIDs []string `json:"learning_objective_ids"`
	KeyConcepts          []string `json:"key_concepts,omitempty"`
}

// ObjectiveIDs returns the unit's learning objective ids in order.
func (p *UnitPlan) ObjectiveIDs() []string {
	ids := make([]string, 0, len(p.LearningObjectives))
	for _, lo := range p.LearningObjectives {
		ids = append(ids, lo.ID)
	}
	return ids
}

// Validate checks the structural invariants of an extracted unit plan:
// non-empty title, at least one objective and one lesson, unique objective
// ids, and every lesson referencing at least one known objective id.
func (p *UnitPlan) Validate() error {
	if p.UnitTitle == "" {
		return fmt.Errorf("unit_title is empty")
	}
	if len(p.LearningObjectives) == 0 {
		return fmt.Errorf("unit plan has no learning objectives")
	}
	if len(p.Lessons) == 0 {
		return fmt.Errorf("unit plan has no lessons")
	}
	known := make(map[string]bool, len(p.LearningObjectives))
	for i, lo := range p.LearningObjectives {
		if lo.ID == "" {
			return fmt.Errorf("learning_objectives[%d]: id is empty", i)
		}
		if lo.Title == "" {
			return fmt.Errorf("learning objective %s: title is empty", lo.ID)
		}
		if known[lo.ID] {
			return fmt.Errorf("duplicate learning objective id %s", lo.ID)
		}
		known[lo.ID] = true
	}
	for i, lesson := range p.Lessons {
		if lesson.Title == "" {
			return fmt.Errorf("lessons[%d]: title is empty", i)
		}
		if len(lesson.LearningObjectiveIDs) == 0 {
			return fmt.Errorf("lesson %q references no learning objectives", lesson.Title)
		}
		for _, id := range lesson.LearningObjectiveIDs {
			if !known[id] {
				return fmt.Errorf("lesson %q references unknown learning objective %s", lesson.Title, id)
			}
		}
	}
	return nil
}
