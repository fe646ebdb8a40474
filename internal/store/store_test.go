package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestKVGetMissing(t *testing.T) {
	s := openTestStore(t)
	kv := s.KV()

	_, ok, err := kv.Get(context.Background(), "numbersense-progress")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected missing key")
	}
}

func TestKVSetGetOverwrite(t *testing.T) {
	s := openTestStore(t)
	kv := s.KV()
	ctx := context.Background()

	if err := kv.Set(ctx, "numbersense-settings", `{"questionsPerSet":10}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := kv.Get(ctx, "numbersense-settings")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if v != `{"questionsPerSet":10}` {
		t.Fatalf("unexpected value: %s", v)
	}

	if err := kv.Set(ctx, "numbersense-settings", `{"questionsPerSet":20}`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, _, _ = kv.Get(ctx, "numbersense-settings")
	if v != `{"questionsPerSet":20}` {
		t.Fatalf("overwrite not applied: %s", v)
	}
}

func TestAppendAndQueryAnswers(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendAnswer(ctx, AnswerEventData{
			SessionID:     "sess-1",
			TopicID:       "geography",
			QuestionText:  "How many countries are in Africa?",
			CorrectAnswer: 54,
			UserAnswer:    "50",
			Correct:       i%2 == 0,
			TimeSecs:      7,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	recs, err := repo.RecentAnswers(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	// Newest first.
	if recs[0].Sequence <= recs[1].Sequence {
		t.Fatalf("expected descending sequence, got %d then %d", recs[0].Sequence, recs[1].Sequence)
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendAnswer(ctx, AnswerEventData{
		SessionID: "sess-1", TopicID: "history",
		QuestionText: "In what year did the Titanic sink?", CorrectAnswer: 1912,
		UserAnswer: "1912", Correct: true, TimeSecs: 3,
	}); err != nil {
		t.Fatalf("append answer: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "question-gen", Success: true,
	}); err != nil {
		t.Fatalf("append llm: %v", err)
	}

	answers, err := repo.RecentAnswers(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query answers: %v", err)
	}
	llms, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query llm events: %v", err)
	}
	if len(answers) != 1 || len(llms) != 1 {
		t.Fatalf("expected one of each, got %d answers %d llm", len(answers), len(llms))
	}
	if answers[0].Sequence == llms[0].Sequence {
		t.Fatal("expected distinct sequence numbers across event types")
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "mock", Model: "mock", Purpose: "question-gen",
			InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true,
		}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "feedback",
		InputTokens: 10, OutputTokens: 20, LatencyMs: 100, Success: true,
	}); err != nil {
		t.Fatalf("append: %v", err)
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(usage))
	}
	for _, u := range usage {
		switch u.Purpose {
		case "question-gen":
			if u.Calls != 2 || u.InputTokens != 200 || u.OutputTokens != 100 {
				t.Fatalf("question-gen aggregate wrong: %+v", u)
			}
		case "feedback":
			if u.Calls != 1 || u.InputTokens != 10 {
				t.Fatalf("feedback aggregate wrong: %+v", u)
			}
		default:
			t.Fatalf("unexpected purpose %q", u.Purpose)
		}
	}
}
