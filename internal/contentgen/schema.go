package contentgen

import "github.com/rahulm/learnpath/internal/llm"

// CurriculumSchema defines the JSON schema for curriculum generation
// responses. Providers with native structured output enforce it; for the
// rest it drives the strict-parse recovery stage.
var CurriculumSchema = &llm.Schema{
	Name:        "curriculum-outline",
	Description: "A learning roadmap: ordered milestones, each with ordered topics",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"milestones": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name": map[string]any{
							"type":        "string",
							"description": "Milestone name, e.g. 'Core Language Features'",
						},
						"description": map[string]any{
							"type":        "string",
							"description": "One or two sentences on what this milestone covers",
						},
						"estimated_duration": map[string]any{
							"type":        "string",
							"description": "Suggested time to complete, e.g. '2 weeks'",
						},
						"topics": map[string]any{
							"type":     "array",
							"minItems": 1,
							"items":    map[string]any{"type": "string"},
							"description": "Ordered topic names within this milestone",
						},
					},
					"required": []any{"name", "topics"},
				},
				"description": "3-5 milestones in learning order",
			},
		},
		"required": []any{"milestones"},
	},
}

// QuizSchema defines the JSON schema for quiz generation responses.
var QuizSchema = &llm.Schema{
	Name:        "quiz-question-set",
	Description: "A set of quiz questions with answer keys",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"kind": map[string]any{
							"type":        "string",
							"enum":        []any{"mcq", "coding", "short_answer"},
							"description": "How the learner answers this question",
						},
						"prompt": map[string]any{
							"type":        "string",
							"description": "The question text shown to the learner",
						},
						"choices": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 options for mcq. Empty for other kinds.",
						},
						"correct_choice": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"description": "Zero-based index of the correct choice. MCQ only.",
						},
						"answer_key": map[string]any{
							"type":        "string",
							"description": "Expected answer for coding and short_answer questions",
						},
					},
					"required": []any{"kind", "prompt"},
				},
			},
		},
		"required": []any{"questions"},
	},
}
