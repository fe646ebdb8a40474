// Package progress implements the durable per-topic progress ledger.
//
// The ledger is the single source of truth for where the learner is in
// each topic. It is loaded once, held in memory, and written through to
// the key-value store after every mutation. Storage failures degrade to
// session-only tracking instead of surfacing to the user.
package progress

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/karthikv/numbersense/internal/store"
)

// StorageKey is the KV key the serialized ledger lives under.
const StorageKey = "numbersense-progress"

// SetCounters are the counters for the in-flight question set. Reset to
// zero at the start of every set.
type SetCounters struct {
	QuestionsAttempted int     `json:"questionsAttempted"`
	QuestionsCorrect   int     `json:"questionsCorrect"`
	TotalTime          float64 `json:"totalTime"`
}

// Overall are the lifetime counters for a topic. Monotonically
// non-decreasing; only a full ledger clear resets them.
type Overall struct {
	Attempted int `json:"attempted"`
	Correct   int `json:"correct"`
}

// TopicProgress is the full per-topic record.
type TopicProgress struct {
	Overall       Overall     `json:"overall"`
	CurrentSet    SetCounters `json:"currentSet"`
	CompletedSets int         `json:"completedSets"`
}

// Attempt describes one evaluated submission.
type Attempt struct {
	Correct   bool
	TimeTaken float64

	// SetSize is the configured questions-per-set at the time of the
	// attempt. When the post-increment set counter reaches it,
	// CompletedSets goes up by one.
	SetSize int
}

// Ledger owns the TopicProgress records. All mutations go through it;
// callers read the returned record back rather than keeping their own
// copy.
type Ledger struct {
	kv store.KV

	mu     sync.Mutex
	loaded bool
	topics map[string]TopicProgress
}

// NewLedger creates a ledger backed by the given KV store. The stored
// state is loaded lazily on first access.
func NewLedger(kv store.KV) *Ledger {
	return &Ledger{kv: kv}
}

// Get returns the stored record for a topic, or a zeroed default for a
// topic never seen before. It never fails.
func (l *Ledger) Get(ctx context.Context, topicID string) TopicProgress {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.load(ctx)
	return l.topics[topicID]
}

// Update applies one evaluated attempt and persists the whole ledger.
// It returns the updated record; that return value is the authoritative
// signal for whether the set just finished.
func (l *Ledger) Update(ctx context.Context, topicID string, a Attempt) TopicProgress {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.load(ctx)

	rec := l.topics[topicID]

	rec.Overall.Attempted++
	rec.CurrentSet.QuestionsAttempted++
	if a.Correct {
		rec.Overall.Correct++
		rec.CurrentSet.QuestionsCorrect++
	}
	rec.CurrentSet.TotalTime += a.TimeTaken

	if a.SetSize > 0 && rec.CurrentSet.QuestionsAttempted == a.SetSize {
		rec.CompletedSets++
	}

	l.topics[topicID] = rec
	l.save(ctx)
	return rec
}

// StartNewSet zeroes the current-set counters for a topic, leaving the
// lifetime counters and completed-set count alone.
func (l *Ledger) StartNewSet(ctx context.Context, topicID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.load(ctx)

	rec := l.topics[topicID]
	rec.CurrentSet = SetCounters{}
	l.topics[topicID] = rec
	l.save(ctx)
}

// Clear wipes the entire ledger.
func (l *Ledger) Clear(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.loaded = true
	l.topics = make(map[string]TopicProgress)
	l.save(ctx)
}

// Topics returns a copy of all stored records, for reporting.
func (l *Ledger) Topics(ctx context.Context) map[string]TopicProgress {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.load(ctx)

	out := make(map[string]TopicProgress, len(l.topics))
	for id, rec := range l.topics {
		out[id] = rec
	}
	return out
}

// load reads the stored ledger on first access. Read failures and
// malformed payloads fall back to an empty ledger with a warning.
// Caller holds l.mu.
func (l *Ledger) load(ctx context.Context) {
	if l.loaded {
		return
	}
	l.loaded = true
	l.topics = make(map[string]TopicProgress)

	value, ok, err := l.kv.Get(ctx, StorageKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to read progress: %v\n", err)
		return
	}
	if !ok {
		return
	}

	topics, err := decodeLedger([]byte(value))
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: discarding malformed progress: %v\n", err)
		return
	}
	l.topics = topics
}

// save writes the whole ledger through to storage. Write failures are
// logged and swallowed. Caller holds l.mu.
func (l *Ledger) save(ctx context.Context) {
	data, err := encodeLedger(l.topics)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to encode progress: %v\n", err)
		return
	}
	if err := l.kv.Set(ctx, StorageKey, string(data)); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to persist progress: %v\n", err)
	}
}
