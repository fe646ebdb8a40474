// Package questiongen produces estimation questions on demand using an
// LLM provider, seeded by a topic's example questions.
package questiongen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/karthikv/numbersense/internal/llm"
	"github.com/karthikv/numbersense/internal/topics"
)

// Generator supplies fresh questions for a generative topic.
type Generator interface {
	// Generate produces a single new question for the topic. Any
	// transport or parse failure surfaces as an error; there is no
	// partial result.
	Generate(ctx context.Context, input GenerateInput) (*topics.Question, error)
}

// GenerateInput describes what to generate.
type GenerateInput struct {
	Topic topics.Topic

	// PriorQuestions are questions already asked this session, so the
	// LLM does not repeat them.
	PriorQuestions []string
}

// Config bounds the generation request.
type Config struct {
	MaxTokens         int
	Temperature       float64
	MaxPriorQuestions int
}

// DefaultConfig returns generation limits suitable for short
// single-question responses.
func DefaultConfig() Config {
	return Config{
		MaxTokens:         500,
		Temperature:       0.9,
		MaxPriorQuestions: 20,
	}
}

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionOutput is the raw LLM response.
type questionOutput struct {
	Question      string  `json:"question"`
	Answer        float64 `json:"answer"`
	HasErrorRange bool    `json:"hasErrorRange"`
}

// Generate produces a single new question for the topic.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*topics.Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	if raw.Question == "" {
		return nil, fmt.Errorf("LLM returned empty question text")
	}

	return &topics.Question{
		Text:          raw.Question,
		Answer:        raw.Answer,
		HasErrorRange: raw.HasErrorRange,
	}, nil
}
