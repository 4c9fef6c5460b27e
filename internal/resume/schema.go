package resume

import "github.com/vamsipaul1/futurefit/internal/llm"

// AnalysisSchema defines the JSON schema for resume analysis output.
var AnalysisSchema = &llm.Schema{
	Name:        "resume-analysis",
	Description: "Structured analysis of a candidate's resume",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "2-4 sentence professional summary of the candidate",
			},
			"skills": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name": map[string]any{
							"type":        "string",
							"description": "Skill name, e.g. 'python', 'project management'",
						},
						"level": map[string]any{
							"type": "string",
							"enum": []any{"beginner", "intermediate", "advanced"},
						},
					},
					"required":             []any{"name", "level"},
					"additionalProperties": false,
				},
			},
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Up to five strengths, one short sentence each",
			},
			"gaps": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Up to five gaps the candidate should address",
			},
			"suggested_roles": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Up to five role titles, best fit first",
			},
		},
		"required":             []any{"summary", "skills", "strengths", "gaps", "suggested_roles"},
		"additionalProperties": false,
	},
}
