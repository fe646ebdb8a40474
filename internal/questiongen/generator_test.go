package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/karthikv/numbersense/internal/llm"
	"github.com/karthikv/numbersense/internal/topics"
)

func testTopic() topics.Topic {
	return topics.Topic{
		ID:          "geography",
		Name:        "Geography",
		Description: "Estimate distances, populations, and geographical feature sizes.",
		ExampleQuestions: []string{
			"How many countries are in Africa?",
			"What is the population of Tokyo?",
		},
	}
}

func TestGenerate_ParsesResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"question":"How long is the Nile in kilometers?","answer":6650,"hasErrorRange":true}`),
	})
	g := New(mock, DefaultConfig())

	q, err := g.Generate(context.Background(), GenerateInput{Topic: testTopic()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Text != "How long is the Nile in kilometers?" {
		t.Fatalf("text = %q", q.Text)
	}
	if q.Answer != 6650 {
		t.Fatalf("answer = %v", q.Answer)
	}
	if !q.HasErrorRange {
		t.Fatal("expected hasErrorRange")
	}
}

func TestGenerate_PromptCarriesTopicAndPriors(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"question":"q","answer":1,"hasErrorRange":false}`),
	})
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), GenerateInput{
		Topic:          testTopic(),
		PriorQuestions: []string{"How many countries are in Africa?"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema != QuestionSchema {
		t.Fatal("request missing question schema")
	}
	prompt := req.Messages[0].Content
	if !strings.Contains(prompt, "Topic: Geography") {
		t.Fatalf("prompt missing topic:\n%s", prompt)
	}
	if !strings.Contains(prompt, "What is the population of Tokyo?") {
		t.Fatalf("prompt missing example questions:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Already asked in this session:\n1. How many countries are in Africa?") {
		t.Fatalf("prompt missing prior questions:\n%s", prompt)
	}
}

func TestGenerate_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), GenerateInput{Topic: testTopic()})
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", err)
	}
}

func TestGenerate_EmptyQuestionRejected(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"question":"","answer":5,"hasErrorRange":false}`),
	})
	g := New(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), GenerateInput{Topic: testTopic()}); err == nil {
		t.Fatal("expected error for empty question text")
	}
}

func TestBuildPrior_TruncatesToMax(t *testing.T) {
	prior := []string{"a", "b", "c", "d"}
	got := buildPrior(prior, 2)
	want := "1. c\n2. d"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	if got := buildPrior(nil, 2); got != "None" {
		t.Fatalf("empty prior: got %q", got)
	}
}
