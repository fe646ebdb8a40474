package llm

import "strings"

// Pricing holds USD rates per one million tokens.
type Pricing struct {
	Input  float64
	Output float64
}

// Cost returns the USD cost of a call with the given token counts.
func (p Pricing) Cost(inputTokens, outputTokens int) float64 {
	return float64(inputTokens)*p.Input/1e6 + float64(outputTokens)*p.Output/1e6
}

// PriceFor returns the rate for a model ID, or nil when the model is
// not in the rate card. Dated IDs fall back to their family entry, so
// "claude-haiku-4-5-20251001" resolves through "claude-haiku-4-5".
// The longest matching family wins.
func PriceFor(modelID string) *Pricing {
	if p, ok := rateCard[modelID]; ok {
		return &p
	}
	var best string
	for family := range rateCard {
		if strings.HasPrefix(modelID, family+"-") && len(family) > len(best) {
			best = family
		}
	}
	if best == "" {
		return nil
	}
	p := rateCard[best]
	return &p
}

// rateCard covers the model families the tutor ships defaults for plus
// their close siblings. Rates are per million tokens, checked against
// models.dev in February 2026.
var rateCard = map[string]Pricing{
	// Anthropic
	"claude-haiku-4-5":  {1, 5},
	"claude-sonnet-4":   {3, 15},
	"claude-sonnet-4-5": {3, 15},
	"claude-opus-4-5":   {5, 25},

	// OpenAI
	"gpt-4o":       {2.5, 10},
	"gpt-4o-mini":  {0.15, 0.6},
	"gpt-4.1":      {2, 8},
	"gpt-4.1-mini": {0.4, 1.6},
	"gpt-5":        {1.25, 10},
	"gpt-5-mini":   {0.25, 2},

	// Google
	"gemini-2.0-flash":    {0.1, 0.4},
	"gemini-2.5-flash":    {0.3, 2.5},
	"gemini-2.5-pro":      {1.25, 10},
	"gemini-flash-latest": {0.3, 2.5},
}
