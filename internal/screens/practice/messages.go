package practice

import (
	"time"

	"github.com/karthikv/numbersense/internal/topics"
)

// questionReadyMsg is sent when an async question generation finishes.
// Seq ties the result to the request that started it; stale results are
// discarded on arrival.
type questionReadyMsg struct {
	Seq      int
	Question *topics.Question
	Err      error
}

// timerTickMsg is sent once per second while a question is being timed.
// Gen identifies the tick chain; ticks from a cancelled chain are dropped.
type timerTickMsg struct {
	Gen  int
	Time time.Time
}

// advanceMsg is sent when the post-correct display delay ends.
type advanceMsg struct{}

// feedbackPollMsg is sent at short intervals while LLM feedback is in flight.
type feedbackPollMsg time.Time
