package settings

import (
	"context"
	"errors"
	"testing"
)

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

type failKV struct{}

func (failKV) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("read failed")
}

func (failKV) Set(context.Context, string, string) error {
	return errors.New("write failed")
}

func TestGet_DefaultsWhenEmpty(t *testing.T) {
	s := NewStore(newMemKV())
	got := s.Get(context.Background())
	if got != Defaults() {
		t.Fatalf("got %+v, want defaults", got)
	}
}

func TestGet_MergesStoredOverDefaults(t *testing.T) {
	kv := newMemKV()
	// Older release: no colorTheme field.
	kv.data[StorageKey] = `{"questionsPerSet":20,"theme":"dark"}`

	s := NewStore(kv)
	got := s.Get(context.Background())
	if got.QuestionsPerSet != 20 {
		t.Fatalf("questionsPerSet = %d", got.QuestionsPerSet)
	}
	if got.Theme != "dark" {
		t.Fatalf("theme = %q", got.Theme)
	}
	if got.ColorTheme != "theme-default" {
		t.Fatalf("colorTheme = %q, want default", got.ColorTheme)
	}
}

func TestSave_PersistsAndReturnsStored(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	s := NewStore(kv)

	got := s.Save(ctx, Settings{QuestionsPerSet: 25, Theme: "light", ColorTheme: "theme-ocean"})
	if got.QuestionsPerSet != 25 || got.Theme != "light" || got.ColorTheme != "theme-ocean" {
		t.Fatalf("saved = %+v", got)
	}

	// A new store over the same KV sees the saved value.
	reloaded := NewStore(kv).Get(ctx)
	if reloaded != got {
		t.Fatalf("reloaded = %+v, want %+v", reloaded, got)
	}
}

func TestSave_ClampsQuestionsPerSet(t *testing.T) {
	ctx := context.Background()
	s := NewStore(newMemKV())

	if got := s.Save(ctx, Settings{QuestionsPerSet: 3}); got.QuestionsPerSet != MinQuestionsPerSet {
		t.Fatalf("below min: got %d", got.QuestionsPerSet)
	}
	if got := s.Save(ctx, Settings{QuestionsPerSet: 1000}); got.QuestionsPerSet != MaxQuestionsPerSet {
		t.Fatalf("above max: got %d", got.QuestionsPerSet)
	}
	if got := s.Save(ctx, Settings{QuestionsPerSet: 23}); got.QuestionsPerSet != 20 {
		t.Fatalf("off-step: got %d, want 20", got.QuestionsPerSet)
	}
}

func TestClampQuestionsPerSet(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 5}, {5, 5}, {7, 5}, {10, 10}, {99, 95}, {100, 100}, {500, 100},
	}
	for _, tt := range tests {
		if got := ClampQuestionsPerSet(tt.in); got != tt.want {
			t.Errorf("ClampQuestionsPerSet(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestStore_StorageFailureFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()
	s := NewStore(failKV{})

	if got := s.Get(ctx); got != Defaults() {
		t.Fatalf("got %+v, want defaults", got)
	}

	// Save keeps the in-memory value even when the write fails.
	saved := s.Save(ctx, Settings{QuestionsPerSet: 15, Theme: "dark", ColorTheme: "theme-forest"})
	if got := s.Get(ctx); got != saved {
		t.Fatalf("in-memory value lost: %+v", got)
	}
}

func TestGet_MalformedStoredStateFallsBack(t *testing.T) {
	kv := newMemKV()
	kv.data[StorageKey] = `{not json`

	s := NewStore(kv)
	if got := s.Get(context.Background()); got != Defaults() {
		t.Fatalf("got %+v, want defaults", got)
	}
}
