package feedback

import (
	"fmt"
	"strings"

	"github.com/karthikv/numbersense/internal/llm"
	"github.com/karthikv/numbersense/internal/practice"
)

const feedbackSystemPrompt = `You are a tutor helping a learner build number sense through estimation practice.

Rules:
- The learner answered an estimation question incorrectly. Explain the correct answer in 2-3 sentences.
- Always state the correct value. If an accepted range is given, mention it too.
- Offer one concrete anchor or mental shortcut that would have led to a better estimate.
- Be encouraging, never condescending. Plain ASCII text only.`

// buildFeedbackUserMessage constructs the user message from the input.
func buildFeedbackUserMessage(input Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Question: %s\n", input.Question)
	fmt.Fprintf(&b, "Learner's estimate: %s\n", input.UserEstimate)
	fmt.Fprintf(&b, "Correct answer: %s\n", practice.FormatNumber(input.CorrectAnswer))

	if input.HasErrorRange {
		lower := input.CorrectAnswer * (1 - input.Margin)
		upper := input.CorrectAnswer * (1 + input.Margin)
		fmt.Fprintf(&b, "Accepted range: %s to %s\n",
			practice.FormatNumber(lower), practice.FormatNumber(upper))
	}

	return b.String()
}

// FeedbackSchema defines the JSON schema for feedback responses.
var FeedbackSchema = &llm.Schema{
	Name:        "estimation-feedback",
	Description: "A short explanation of the correct answer to an estimation question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"feedback": map[string]any{
				"type":        "string",
				"description": "2-3 sentences stating the correct answer and one estimation anchor",
			},
		},
		"required":             []any{"feedback"},
		"additionalProperties": false,
	},
}
