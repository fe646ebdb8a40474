package topics

import (
	"errors"
	"testing"
)

func TestGet_KnownTopic(t *testing.T) {
	topic, err := Get("geography")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if topic.Name != "Geography" {
		t.Fatalf("unexpected name: %q", topic.Name)
	}
	if !topic.Generative() {
		t.Fatal("expected geography to be generative")
	}
}

func TestGet_UnknownTopic(t *testing.T) {
	_, err := Get("astrology")
	if err == nil {
		t.Fatal("expected error")
	}
	var nf *ErrNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("expected ErrNotFound, got %T", err)
	}
	if nf.ID != "astrology" {
		t.Fatalf("unexpected ID in error: %q", nf.ID)
	}
}

func TestList_AllTopicsWellFormed(t *testing.T) {
	all := List()
	if len(all) == 0 {
		t.Fatal("empty catalog")
	}

	seen := make(map[string]bool)
	for _, topic := range all {
		if topic.ID == "" || topic.Name == "" || topic.Description == "" {
			t.Errorf("topic %q missing required fields", topic.ID)
		}
		if seen[topic.ID] {
			t.Errorf("duplicate topic ID %q", topic.ID)
		}
		seen[topic.ID] = true

		if topic.Generative() {
			if len(topic.ExampleQuestions) == 0 {
				t.Errorf("generative topic %q has no example questions", topic.ID)
			}
		} else {
			for _, q := range topic.Questions {
				if q.Text == "" {
					t.Errorf("topic %q has a question with empty text", topic.ID)
				}
			}
		}
	}
}

func TestCuratedTopicsExist(t *testing.T) {
	var curated int
	for _, topic := range List() {
		if !topic.Generative() {
			curated++
		}
	}
	if curated == 0 {
		t.Fatal("expected at least one curated topic")
	}
}
