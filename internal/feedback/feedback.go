// Package feedback generates short explanations for incorrect answers
// asynchronously. Generation failure never blocks revealing the correct
// answer: callers substitute FallbackText.
package feedback

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/karthikv/numbersense/internal/llm"
	"github.com/karthikv/numbersense/internal/practice"
)

// Input describes one incorrect submission to explain.
type Input struct {
	Question      string
	UserEstimate  string
	CorrectAnswer float64
	HasErrorRange bool
	Margin        float64
}

// Config bounds the generation request.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns limits suitable for a few sentences of feedback.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   300,
		Temperature: 0.5,
	}
}

// Service generates feedback asynchronously. Only one explanation is
// in-flight at a time; new requests replace pending ones.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	seq     int
	pending string
	err     error
	ready   bool
}

// NewService creates a feedback service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Request starts async feedback generation. Any earlier request is
// superseded: an unconsumed result is dropped, and a still-running
// generation is discarded when it lands.
func (s *Service) Request(ctx context.Context, input Input) {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.pending = ""
	s.err = nil
	s.ready = false
	s.mu.Unlock()

	go func() {
		text, err := s.explain(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		if seq != s.seq {
			return
		}
		s.pending = text
		s.err = err
		s.ready = true
	}()
}

// Consume returns the pending feedback if one is ready.
// Returns ("", false) while generation is still in flight. A finished
// but failed generation returns ("", true); the caller falls back to
// FallbackText. After consumption, the pending slot is cleared.
func (s *Service) Consume() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return "", false
	}
	text := s.pending
	s.pending = ""
	s.ready = false
	s.err = nil
	return text, true
}

// FallbackText is the templated reveal used when LLM feedback is
// unavailable. It always contains the correct answer.
func FallbackText(input Input) string {
	return practice.FeedbackText(input.CorrectAnswer, input.HasErrorRange, input.Margin)
}

type feedbackOutput struct {
	Feedback string `json:"feedback"`
}

func (s *Service) explain(ctx context.Context, input Input) (string, error) {
	ctx = llm.WithPurpose(ctx, "feedback")

	req := llm.Request{
		System: feedbackSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildFeedbackUserMessage(input)},
		},
		Schema:      FeedbackSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("feedback generation: %w", err)
	}

	var out feedbackOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("parse feedback response: %w", err)
	}
	if out.Feedback == "" {
		return "", fmt.Errorf("empty feedback")
	}
	return out.Feedback, nil
}
