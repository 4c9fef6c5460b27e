package questiongen

import "github.com/vamsipaul1/futurefit/internal/llm"

// BatchSchema defines the JSON schema for LLM question generation responses.
var BatchSchema = &llm.Schema{
	Name:        "skill-questions",
	Description: "A batch of quiz questions for one skill, with answer keys",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"prompt": map[string]any{
							"type":        "string",
							"description": "The question text shown to the quiz-taker",
						},
						"type": map[string]any{
							"type": "string",
							"enum": []any{"multiple-choice", "self-rating", "short-answer", "fill-in-blank", "scenario", "code"},
						},
						"level": map[string]any{
							"type": "string",
							"enum": []any{"beginner", "intermediate", "advanced"},
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 4 options for multiple-choice. Empty array otherwise.",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The correct answer. For multiple-choice: the text of the correct option. Empty for self-rating.",
						},
						"response_hint": map[string]any{
							"type":        "string",
							"description": "Response shape for self-rating questions, e.g. \"scale-1-5\". Empty otherwise.",
						},
					},
					"required":             []any{"prompt", "type", "level", "options", "answer", "response_hint"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
