// Package settings holds the user-configurable preferences: session
// size and display options. Loaded lazily, persisted synchronously on
// every change.
package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/karthikv/numbersense/internal/store"
)

// StorageKey is the KV key the serialized settings live under.
const StorageKey = "numbersense-settings"

// Bounds for QuestionsPerSet. Values are adjusted in steps of 5.
const (
	MinQuestionsPerSet  = 5
	MaxQuestionsPerSet  = 100
	QuestionsPerSetStep = 5
)

// Settings are the user preferences.
type Settings struct {
	QuestionsPerSet int    `json:"questionsPerSet"`
	Theme           string `json:"theme"`
	ColorTheme      string `json:"colorTheme"`
}

// Defaults returns the out-of-the-box settings.
func Defaults() Settings {
	return Settings{
		QuestionsPerSet: 10,
		Theme:           "system",
		ColorTheme:      "theme-default",
	}
}

// ClampQuestionsPerSet snaps a value into the allowed range and step.
func ClampQuestionsPerSet(n int) int {
	if n < MinQuestionsPerSet {
		return MinQuestionsPerSet
	}
	if n > MaxQuestionsPerSet {
		return MaxQuestionsPerSet
	}
	return n - n%QuestionsPerSetStep
}

// Store loads and persists Settings through the KV store.
type Store struct {
	kv store.KV

	mu      sync.Mutex
	loaded  bool
	current Settings
}

// NewStore creates a settings store backed by the given KV.
func NewStore(kv store.KV) *Store {
	return &Store{kv: kv}
}

// Get returns the current settings, loading them on first access.
// Missing or malformed stored state falls back to defaults; stored
// fields are merged over defaults so records written by older releases
// pick up defaults for fields they lack.
func (s *Store) Get(ctx context.Context) Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)
	return s.current
}

// Save normalizes and persists new settings, returning the settings as
// stored. Write failures keep the in-memory value and log a warning.
func (s *Store) Save(ctx context.Context, next Settings) Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)

	next.QuestionsPerSet = ClampQuestionsPerSet(next.QuestionsPerSet)
	if next.Theme == "" {
		next.Theme = s.current.Theme
	}
	if next.ColorTheme == "" {
		next.ColorTheme = s.current.ColorTheme
	}
	s.current = next

	data, err := json.Marshal(s.current)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to encode settings: %v\n", err)
		return s.current
	}
	if err := s.kv.Set(ctx, StorageKey, string(data)); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to persist settings: %v\n", err)
	}
	return s.current
}

// load reads stored settings on first access. Caller holds s.mu.
func (s *Store) load(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true
	s.current = Defaults()

	value, ok, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to read settings: %v\n", err)
		return
	}
	if !ok {
		return
	}

	// Unmarshal over defaults: absent fields keep their default value.
	stored := Defaults()
	if err := json.Unmarshal([]byte(value), &stored); err != nil {
		fmt.Fprintf(os.Stderr, "warning: discarding malformed settings: %v\n", err)
		return
	}
	stored.QuestionsPerSet = ClampQuestionsPerSet(stored.QuestionsPerSet)
	s.current = stored
}
