package questiongen

import "github.com/karthikv/numbersense/internal/llm"

// QuestionSchema defines the JSON schema for generated estimation questions.
var QuestionSchema = &llm.Schema{
	Name:        "estimation-question",
	Description: "A single numerical estimation question with its answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The estimation question shown to the learner, in plain text",
			},
			"answer": map[string]any{
				"type":        "number",
				"description": "The correct numerical answer",
			},
			"hasErrorRange": map[string]any{
				"type":        "boolean",
				"description": "True when the question suits estimation with a tolerance band rather than an exact answer",
			},
		},
		"required":             []any{"question", "answer", "hasErrorRange"},
		"additionalProperties": false,
	},
}
