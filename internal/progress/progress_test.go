package progress

import (
	"context"
	"errors"
	"testing"
)

// memKV is an in-memory KV for tests.
type memKV struct {
	data map[string]string
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string]string)}
}

func (m *memKV) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Set(_ context.Context, key, value string) error {
	m.data[key] = value
	return nil
}

// failKV fails every operation.
type failKV struct{}

func (failKV) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("disk on fire")
}

func (failKV) Set(context.Context, string, string) error {
	return errors.New("disk on fire")
}

func TestGet_UnseenTopicIsZeroed(t *testing.T) {
	l := NewLedger(newMemKV())
	rec := l.Get(context.Background(), "geography")
	if rec != (TopicProgress{}) {
		t.Fatalf("expected zeroed record, got %+v", rec)
	}
}

func TestUpdate_Counters(t *testing.T) {
	ctx := context.Background()
	l := NewLedger(newMemKV())

	rec := l.Update(ctx, "geography", Attempt{Correct: true, TimeTaken: 4, SetSize: 10})
	if rec.Overall.Attempted != 1 || rec.Overall.Correct != 1 {
		t.Fatalf("overall = %+v", rec.Overall)
	}
	if rec.CurrentSet.QuestionsAttempted != 1 || rec.CurrentSet.QuestionsCorrect != 1 {
		t.Fatalf("currentSet = %+v", rec.CurrentSet)
	}
	if rec.CurrentSet.TotalTime != 4 {
		t.Fatalf("totalTime = %v", rec.CurrentSet.TotalTime)
	}

	rec = l.Update(ctx, "geography", Attempt{Correct: false, TimeTaken: 6, SetSize: 10})
	if rec.Overall.Attempted != 2 || rec.Overall.Correct != 1 {
		t.Fatalf("overall = %+v", rec.Overall)
	}
	if rec.CurrentSet.TotalTime != 10 {
		t.Fatalf("totalTime = %v", rec.CurrentSet.TotalTime)
	}
	if rec.CurrentSet.QuestionsCorrect > rec.CurrentSet.QuestionsAttempted {
		t.Fatal("correct exceeds attempted")
	}
}

func TestUpdate_CompletedSetsIncrementsExactlyOnce(t *testing.T) {
	ctx := context.Background()
	l := NewLedger(newMemKV())

	const setSize = 3
	var rec TopicProgress
	for i := 0; i < setSize; i++ {
		rec = l.Update(ctx, "history", Attempt{Correct: true, TimeTaken: 1, SetSize: setSize})
	}
	if rec.CompletedSets != 1 {
		t.Fatalf("completedSets = %d, want 1", rec.CompletedSets)
	}

	// Attempts past the boundary must not bump it again.
	rec = l.Update(ctx, "history", Attempt{Correct: true, TimeTaken: 1, SetSize: setSize})
	if rec.CompletedSets != 1 {
		t.Fatalf("completedSets = %d after overflow attempt, want 1", rec.CompletedSets)
	}
}

func TestStartNewSet_ResetsOnlyCurrentSet(t *testing.T) {
	ctx := context.Background()
	l := NewLedger(newMemKV())

	for i := 0; i < 3; i++ {
		l.Update(ctx, "science", Attempt{Correct: true, TimeTaken: 2, SetSize: 3})
	}

	l.StartNewSet(ctx, "science")
	rec := l.Get(ctx, "science")
	if rec.CurrentSet != (SetCounters{}) {
		t.Fatalf("currentSet = %+v, want zeroed", rec.CurrentSet)
	}
	if rec.Overall.Attempted != 3 || rec.Overall.Correct != 3 {
		t.Fatalf("overall changed: %+v", rec.Overall)
	}
	if rec.CompletedSets != 1 {
		t.Fatalf("completedSets changed: %d", rec.CompletedSets)
	}
}

func TestClear_ResetsEveryTopic(t *testing.T) {
	ctx := context.Background()
	l := NewLedger(newMemKV())

	l.Update(ctx, "geography", Attempt{Correct: true, TimeTaken: 1, SetSize: 10})
	l.Update(ctx, "history", Attempt{Correct: false, TimeTaken: 1, SetSize: 10})

	l.Clear(ctx)
	for _, id := range []string{"geography", "history"} {
		if rec := l.Get(ctx, id); rec != (TopicProgress{}) {
			t.Fatalf("topic %q not cleared: %+v", id, rec)
		}
	}
}

func TestLedger_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()

	first := NewLedger(kv)
	first.Update(ctx, "geography", Attempt{Correct: true, TimeTaken: 5, SetSize: 10})

	second := NewLedger(kv)
	rec := second.Get(ctx, "geography")
	if rec.Overall.Attempted != 1 || rec.CurrentSet.TotalTime != 5 {
		t.Fatalf("reloaded record = %+v", rec)
	}
}

func TestLedger_StorageFailureDegradesToMemory(t *testing.T) {
	ctx := context.Background()
	l := NewLedger(failKV{})

	// Reads and writes both fail; the ledger still tracks in memory.
	rec := l.Update(ctx, "geography", Attempt{Correct: true, TimeTaken: 1, SetSize: 10})
	if rec.Overall.Attempted != 1 {
		t.Fatalf("record = %+v", rec)
	}
	if got := l.Get(ctx, "geography"); got.Overall.Attempted != 1 {
		t.Fatalf("in-memory record lost: %+v", got)
	}
}

func TestDecodeLedger_MigratesLegacyShape(t *testing.T) {
	data := []byte(`{"topics":{"geography":{"attempted":12,"correct":9,"completedSets":2}}}`)

	topics, err := decodeLedger(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec := topics["geography"]
	if rec.Overall.Attempted != 12 || rec.Overall.Correct != 9 {
		t.Fatalf("overall = %+v", rec.Overall)
	}
	if rec.CompletedSets != 2 {
		t.Fatalf("completedSets = %d", rec.CompletedSets)
	}
	if rec.CurrentSet != (SetCounters{}) {
		t.Fatalf("currentSet should start fresh, got %+v", rec.CurrentSet)
	}
}

func TestDecodeLedger_CurrentShapeRoundTrips(t *testing.T) {
	topics := map[string]TopicProgress{
		"science": {
			Overall:       Overall{Attempted: 5, Correct: 4},
			CurrentSet:    SetCounters{QuestionsAttempted: 2, QuestionsCorrect: 1, TotalTime: 13.5},
			CompletedSets: 1,
		},
	}

	data, err := encodeLedger(topics)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := decodeLedger(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["science"] != topics["science"] {
		t.Fatalf("round trip mismatch: %+v", got["science"])
	}
}

func TestLedger_MalformedStoredStateFallsBack(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	kv.data[StorageKey] = `{"topics": nonsense`

	l := NewLedger(kv)
	if rec := l.Get(ctx, "geography"); rec != (TopicProgress{}) {
		t.Fatalf("expected zeroed fallback, got %+v", rec)
	}
}
