package feedback

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/karthikv/numbersense/internal/llm"
)

func waitConsume(t *testing.T, s *Service) string {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if text, ok := s.Consume(); ok {
			return text
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("timed out waiting for feedback")
	return ""
}

func TestService_RequestThenConsume(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"feedback":"The Nile is about 6,650 km long. Think of it as crossing Africa top to bottom."}`),
	})
	s := NewService(mock, DefaultConfig())

	s.Request(context.Background(), Input{
		Question:      "How long is the Nile in kilometers?",
		UserEstimate:  "2000",
		CorrectAnswer: 6650,
		HasErrorRange: true,
		Margin:        0.25,
	})

	text := waitConsume(t, s)
	if !strings.Contains(text, "6,650") {
		t.Fatalf("feedback = %q", text)
	}

	// Slot is cleared after consumption.
	if _, ok := s.Consume(); ok {
		t.Fatal("expected empty slot after consume")
	}
}

func TestService_FailureYieldsEmptyFeedback(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	s := NewService(mock, DefaultConfig())

	s.Request(context.Background(), Input{Question: "q", UserEstimate: "1", CorrectAnswer: 2})

	if text := waitConsume(t, s); text != "" {
		t.Fatalf("expected empty feedback on failure, got %q", text)
	}
}

// gatedProvider returns canned feedback keyed by the question in the
// prompt, blocking each answer until its gate channel is closed.
type gatedProvider struct {
	gates map[string]chan struct{}
	texts map[string]string
}

func newGatedProvider(texts map[string]string) *gatedProvider {
	p := &gatedProvider{gates: make(map[string]chan struct{}), texts: texts}
	for q := range texts {
		p.gates[q] = make(chan struct{})
	}
	return p
}

func (p *gatedProvider) Generate(_ context.Context, req llm.Request) (*llm.Response, error) {
	msg := req.Messages[0].Content
	for q, text := range p.texts {
		if strings.Contains(msg, q) {
			<-p.gates[q]
			out, _ := json.Marshal(map[string]string{"feedback": text})
			return &llm.Response{Content: out}, nil
		}
	}
	return nil, errors.New("no canned feedback for prompt")
}

func (p *gatedProvider) ModelID() string { return "gated" }

func TestService_NewRequestDropsUnconsumedResult(t *testing.T) {
	p := newGatedProvider(map[string]string{
		"q1": "first explanation",
		"q2": "second explanation",
	})
	s := NewService(p, DefaultConfig())

	s.Request(context.Background(), Input{Question: "q1", UserEstimate: "1", CorrectAnswer: 10})
	close(p.gates["q1"])
	time.Sleep(20 * time.Millisecond)

	// The first result was never consumed; a new request supersedes it.
	s.Request(context.Background(), Input{Question: "q2", UserEstimate: "2", CorrectAnswer: 20})

	deadline := time.Now().Add(100 * time.Millisecond)
	for time.Now().Before(deadline) {
		if text, ok := s.Consume(); ok {
			t.Fatalf("consumed %q while the second generation was still in flight", text)
		}
		time.Sleep(5 * time.Millisecond)
	}

	close(p.gates["q2"])
	if text := waitConsume(t, s); text != "second explanation" {
		t.Fatalf("feedback = %q, want the second explanation", text)
	}
}

func TestService_SupersededInFlightResultDiscarded(t *testing.T) {
	p := newGatedProvider(map[string]string{
		"q1": "first explanation",
		"q2": "second explanation",
	})
	s := NewService(p, DefaultConfig())

	s.Request(context.Background(), Input{Question: "q1", UserEstimate: "1", CorrectAnswer: 10})
	s.Request(context.Background(), Input{Question: "q2", UserEstimate: "2", CorrectAnswer: 20})

	close(p.gates["q2"])
	if text := waitConsume(t, s); text != "second explanation" {
		t.Fatalf("feedback = %q, want the second explanation", text)
	}

	// The first generation lands late and must be dropped.
	close(p.gates["q1"])
	time.Sleep(20 * time.Millisecond)
	if text, ok := s.Consume(); ok {
		t.Fatalf("consumed stale feedback %q", text)
	}
}

func TestService_ConsumeBeforeRequest(t *testing.T) {
	s := NewService(llm.NewMockProvider(), DefaultConfig())
	if _, ok := s.Consume(); ok {
		t.Fatal("expected nothing pending")
	}
}

func TestFallbackText_ContainsCorrectAnswer(t *testing.T) {
	got := FallbackText(Input{CorrectAnswer: 6650, HasErrorRange: true, Margin: 0.25})
	if !strings.Contains(got, "6,650") {
		t.Fatalf("fallback missing answer: %q", got)
	}
	if !strings.Contains(got, "range") {
		t.Fatalf("fallback missing range: %q", got)
	}

	got = FallbackText(Input{CorrectAnswer: 366})
	if got != "The correct answer is 366." {
		t.Fatalf("got %q", got)
	}
}

func TestPrompt_CarriesEstimateAndRange(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"feedback":"ok"}`),
	})
	s := NewService(mock, DefaultConfig())

	s.Request(context.Background(), Input{
		Question:      "How many countries are in Africa?",
		UserEstimate:  "40",
		CorrectAnswer: 54,
		HasErrorRange: true,
		Margin:        0.05,
	})
	waitConsume(t, s)

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	prompt := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Learner's estimate: 40", "Correct answer: 54", "Accepted range:"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}
