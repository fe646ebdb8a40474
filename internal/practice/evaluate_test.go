package practice

import "testing"

func TestEvaluate_ExactMode(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		answer float64
		want   bool
	}{
		{"exact match", "100", 100, true},
		{"off by one", "99", 100, false},
		{"thousands separator stripped", "10,080", 10080, true},
		{"decimal match", "3.5", 3.5, true},
		{"negative match", "-12", -12, true},
		{"whitespace tolerated", " 42 ", 42, true},
		{"empty input", "", 100, false},
		{"garbage input", "abc", 100, false},
		{"fraction input", "1/2", 0.5, true},
		{"fraction with zero denominator", "1/0", 100, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.input, tt.answer, false, CuratedMargin)
			if got != tt.want {
				t.Fatalf("Evaluate(%q, %v, false) = %v, want %v", tt.input, tt.answer, got, tt.want)
			}
		})
	}
}

func TestEvaluate_ToleranceMode(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		answer float64
		margin float64
		want   bool
	}{
		{"upper bound inclusive", "105", 100, 0.05, true},
		{"just over upper bound", "106", 100, 0.05, false},
		{"lower bound inclusive", "95", 100, 0.05, true},
		{"just under lower bound", "94", 100, 0.05, false},
		{"zero answer exact zero", "0", 0, 0.05, true},
		{"zero answer near miss", "0.01", 0, 0.05, false},
		{"wide margin accepts quarter off", "150", 200, 0.25, true},
		{"wide margin rejects past band", "149", 200, 0.25, false},
		{"negative answer in band", "-95", -100, 0.05, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.input, tt.answer, true, tt.margin)
			if got != tt.want {
				t.Fatalf("Evaluate(%q, %v, true, %v) = %v, want %v", tt.input, tt.answer, tt.margin, got, tt.want)
			}
		})
	}
}

func TestFeedbackText(t *testing.T) {
	got := FeedbackText(200, true, 0.25)
	want := "The correct answer is in the range of 150 to 250. The exact answer is 200."
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	got = FeedbackText(10080, false, CuratedMargin)
	want = "The correct answer is 10,080."
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1000000, "1,000,000"},
		{-12345, "-12,345"},
		{1234.5, "1,234.5"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestComputeSetStats(t *testing.T) {
	s := ComputeSetStats(0, 0, 0)
	if s.Accuracy != 0 || s.AverageTime != 0 {
		t.Fatalf("empty set: got accuracy %d, avg time %v", s.Accuracy, s.AverageTime)
	}

	s = ComputeSetStats(4, 3, 0)
	if s.Accuracy != 75 {
		t.Fatalf("accuracy = %d, want 75", s.Accuracy)
	}

	s = ComputeSetStats(3, 2, 10)
	if s.Accuracy != 67 {
		t.Fatalf("accuracy = %d, want 67", s.Accuracy)
	}
	if s.AverageTime != 3.3 {
		t.Fatalf("average time = %v, want 3.3", s.AverageTime)
	}
}
