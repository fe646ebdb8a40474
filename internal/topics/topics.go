// Package topics holds the static catalog of practice topics.
//
// A topic is either curated (ships with a fixed, ordered question list)
// or generative (ships with example questions that seed on-demand LLM
// question generation). The two modes are distinguished by whether
// Questions is non-empty.
package topics

import "fmt"

// Question is a single estimation question with its canonical answer.
type Question struct {
	Text   string
	Answer float64

	// HasErrorRange marks a tolerance-band question: any answer within
	// the margin of the canonical value is accepted. Exact-match
	// questions leave this false.
	HasErrorRange bool
}

// Topic is one entry in the practice catalog.
type Topic struct {
	ID          string
	Name        string
	Description string

	// Questions is the fixed catalog for curated topics. Empty for
	// generative topics.
	Questions []Question

	// ExampleQuestions seed LLM generation for generative topics.
	ExampleQuestions []string
}

// Generative reports whether questions for this topic come from the LLM
// rather than the fixed catalog.
func (t Topic) Generative() bool {
	return len(t.Questions) == 0
}

// ErrNotFound is returned by Get for an unknown topic ID.
type ErrNotFound struct {
	ID string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("topic not found: %q", e.ID)
}

// List returns all topics in catalog order.
func List() []Topic {
	return catalog
}

// Get returns the topic with the given ID.
func Get(id string) (Topic, error) {
	for _, t := range catalog {
		if t.ID == id {
			return t, nil
		}
	}
	return Topic{}, &ErrNotFound{ID: id}
}
