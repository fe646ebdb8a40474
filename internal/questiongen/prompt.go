package questiongen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an expert in generating numerical estimation questions. Your most important task is to ensure the answer you provide is 100% correct. Double-check your calculations before providing the answer.

Rules:
- Based on the topic and example questions provided, generate a new and unique question with a single numerical answer.
- The question must be self-contained and answerable with one number. State the expected unit in the question itself.
- Use plain ASCII text. No LaTeX, no Unicode symbols.
- If the answer is a hard-to-pin-down real-world quantity suitable for estimation within an error range, set hasErrorRange to true. For values with one exact answer, set it to false.
- Do not repeat any question from the "already asked" list.`

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Topic.Name)
	fmt.Fprintf(&b, "Description: %s\n", input.Topic.Description)

	b.WriteString("\nExample questions:\n")
	for i, q := range input.Topic.ExampleQuestions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}

	b.WriteString("\nAlready asked in this session:\n")
	b.WriteString(buildPrior(input.PriorQuestions, cfg.MaxPriorQuestions))

	return b.String()
}

// buildPrior formats prior questions for the prompt, keeping only the
// most recent N.
func buildPrior(prior []string, max int) string {
	if len(prior) == 0 {
		return "None"
	}
	if max > 0 && len(prior) > max {
		prior = prior[len(prior)-max:]
	}

	var b strings.Builder
	for i, q := range prior {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
