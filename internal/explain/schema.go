package explain

import "github.com/abhisek/quizgen/internal/llm"

// SolutionSchema defines the JSON schema for a worked solution.
var SolutionSchema = &llm.Schema{
	Name:        "worked-solution",
	Description: "Step-by-step solution to a school math multiple-choice question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"steps": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
				"description": "Numbered solution steps, one calculation each",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The final answer exactly as one option shows it",
			},
			"tip": map[string]any{
				"type":        "string",
				"description": "One sentence on the shortcut or trap in this question",
			},
		},
		"required":             []any{"steps", "answer", "tip"},
		"additionalProperties": false,
	},
}
