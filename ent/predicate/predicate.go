// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AudioAsset is the predicate function for audioasset builders.
type AudioAsset func(*sql.Selector)

// FlowRun is the predicate function for flowrun builders.
type FlowRun func(*sql.Selector)

// FlowStepRun is the predicate function for flowsteprun builders.
type FlowStepRun func(*sql.Selector)

// ImageAsset is the predicate function for imageasset builders.
type ImageAsset func(*sql.Selector)

// LLMRequest is the predicate function for llmrequest builders.
type LLMRequest func(*sql.Selector)

// Lesson is the predicate function for lesson builders.
type Lesson func(*sql.Selector)

// Unit is the predicate function for unit builders.
type Unit func(*sql.Selector)
