package content

import "github.com/brianfields/deeplearn-sub002/pkg/llm"

// Response schemas for the structured generation steps. Each is sent to the
// provider as the response contract and compiled once for local validation.
// Shapes mirror the Go types the results unmarshal into.

var unitPlanSchema = llm.MustResponseSchema("unit_plan", []byte(`{
	"type": "object",
	"properties": {
		"unit_title": {"type": "string", "minLength": 1},
		"description": {"type": "string"},
		"learning_objectives": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"title": {"type": "string", "minLength": 1},
					"description": {"type": "string"},
					"bloom_level": {"type": "string"}
				},
				"required": ["id", "title"],
				"additionalProperties": false
			}
		},
		"lessons": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"properties": {
					"title": {"type": "string", "minLength": 1},
					"lesson_objective": {"type": "string", "minLength": 1},
					"learning_objective_ids": {
						"type": "array",
						"minItems": 1,
						"items": {"type": "string"}
					},
					"key_concepts": {"type": "array", "items": {"type": "string"}}
				},
				"required": ["title", "lesson_objective", "learning_objective_ids"],
				"additionalProperties": false
			}
		}
	},
	"required": ["unit_title", "learning_objectives", "lessons"],
	"additionalProperties": false
}`))

var lessonMetadataSchema = llm.MustResponseSchema("lesson_metadata", []byte(`{
	"type": "object",
	"properties": {
		"lesson_title": {"type": "string", "minLength": 1},
		"objectives": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"text": {"type": "string", "minLength": 1}
				},
				"required": ["id", "text"],
				"additionalProperties": false
			}
		},
		"key_concepts": {
			"type": "array",
			"minItems": 1,
			"items": {"type": "string"}
		},
		"misconception_seeds": {"type": "array", "items": {"type": "string"}},
		"confusable_seeds": {"type": "array", "items": {"type": "string"}}
	},
	"required": ["lesson_title", "objectives", "key_concepts"],
	"additionalProperties": false
}`))

var misconceptionBankSchema = llm.MustResponseSchema("misconception_bank", []byte(`{
	"type": "object",
	"properties": {
		"misconceptions": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"misbelief": {"type": "string", "minLength": 1},
					"correction": {"type": "string", "minLength": 1}
				},
				"required": ["id", "misbelief", "correction"],
				"additionalProperties": false
			}
		},
		"confusables": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"a": {"type": "string", "minLength": 1},
					"b": {"type": "string", "minLength": 1},
					"contrast": {"type": "string", "minLength": 1}
				},
				"required": ["id", "a", "b", "contrast"],
				"additionalProperties": false
			}
		}
	},
	"required": ["misconceptions"],
	"additionalProperties": false
}`))

var miniLessonSchema = llm.MustResponseSchema("mini_lesson", []byte(`{
	"type": "object",
	"properties": {
		"mini_lesson": {"type": "string", "minLength": 1}
	},
	"required": ["mini_lesson"],
	"additionalProperties": false
}`))

var glossarySchema = llm.MustResponseSchema("glossary", []byte(`{
	"type": "object",
	"properties": {
		"glossary_terms": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"term": {"type": "string", "minLength": 1},
					"definition": {"type": "string", "minLength": 1},
					"micro_check": {"type": "string"}
				},
				"required": ["id", "term", "definition"],
				"additionalProperties": false
			}
		}
	},
	"required": ["glossary_terms"],
	"additionalProperties": false
}`))

var mcqSetSchema = llm.MustResponseSchema("mcq_set", []byte(`{
	"type": "object",
	"properties": {
		"mcqs": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"lo_id": {"type": "string", "minLength": 1},
					"cognitive_level": {"type": "string"},
					"stem": {"type": "string", "minLength": 1},
					"options": {
						"type": "array",
						"minItems": 2,
						"items": {
							"type": "object",
							"properties": {
								"id": {"type": "string", "minLength": 1},
								"text": {"type": "string", "minLength": 1}
							},
							"required": ["id", "text"],
							"additionalProperties": false
						}
					},
					"answer_key": {
						"type": "object",
						"properties": {
							"option_id": {"type": "string", "minLength": 1},
							"rationale_right": {"type": "string"}
						},
						"required": ["option_id"],
						"additionalProperties": false
					}
				},
				"required": ["id", "lo_id", "stem", "options", "answer_key"],
				"additionalProperties": false
			}
		}
	},
	"required": ["mcqs"],
	"additionalProperties": false
}`))

var shortAnswerSetSchema = llm.MustResponseSchema("short_answer_set", []byte(`{
	"type": "object",
	"properties": {
		"short_answers": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"lo_id": {"type": "string", "minLength": 1},
					"cognitive_level": {"type": "string"},
					"stem": {"type": "string", "minLength": 1},
					"canonical_answer": {"type": "string", "minLength": 1},
					"acceptable_patterns": {"type": "array", "items": {"type": "string"}},
					"wrong_answers": {"type": "array", "items": {"type": "string"}}
				},
				"required": ["id", "lo_id", "stem", "canonical_answer"],
				"additionalProperties": false
			}
		}
	},
	"required": ["short_answers"],
	"additionalProperties": false
}`))

var packageDraftSchema = llm.MustResponseSchema("lesson_package_draft", []byte(`{
	"type": "object",
	"properties": {
		"objectives": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"text": {"type": "string", "minLength": 1}
				},
				"required": ["id", "text"],
				"additionalProperties": false
			}
		},
		"key_concepts": {
			"type": "array",
			"minItems": 1,
			"items": {"type": "string"}
		},
		"mini_lesson": {"type": "string", "minLength": 1},
		"glossary_terms": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"term": {"type": "string", "minLength": 1},
					"definition": {"type": "string", "minLength": 1},
					"micro_check": {"type": "string"}
				},
				"required": ["id", "term", "definition"],
				"additionalProperties": false
			}
		},
		"misconceptions": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"misbelief": {"type": "string", "minLength": 1},
					"correction": {"type": "string", "minLength": 1}
				},
				"required": ["id", "misbelief", "correction"],
				"additionalProperties": false
			}
		},
		"confusables": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"a": {"type": "string", "minLength": 1},
					"b": {"type": "string", "minLength": 1},
					"contrast": {"type": "string", "minLength": 1}
				},
				"required": ["id", "a", "b", "contrast"],
				"additionalProperties": false
			}
		}
	},
	"required": ["objectives", "key_concepts", "mini_lesson"],
	"additionalProperties": false
}`))

var artDescriptionSchema = llm.MustResponseSchema("unit_art_description", []byte(`{
	"type": "object",
	"properties": {
		"prompt": {"type": "string", "minLength": 1},
		"alt_text": {"type": "string", "minLength": 1},
		"palette": {"type": "array", "items": {"type": "string"}}
	},
	"required": ["prompt", "alt_text"],
	"additionalProperties": false
}`))
