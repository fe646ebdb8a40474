// Package practice implements the answer evaluation and set statistics
// rules of the estimation tutor.
package practice

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Margin constants for tolerance-band questions. Curated questions have
// verified canonical answers so the band is tight; generated questions
// carry a looser band because the LLM's canonical answer is itself an
// estimate.
const (
	CuratedMargin   = 0.05
	GeneratedMargin = 0.25
)

// Evaluate judges a submitted answer against the canonical one.
//
// Exact mode (hasErrorRange false) requires numeric equality after
// parsing. Tolerance mode accepts any value within margin of the
// canonical answer; when the canonical answer is zero the relative test
// is undefined, so only an exact zero is accepted.
//
// Unparseable input is incorrect, never an error.
func Evaluate(input string, answer float64, hasErrorRange bool, margin float64) bool {
	parsed, ok := ParseAnswer(input)
	if !ok {
		return false
	}

	if !hasErrorRange {
		return parsed == answer
	}

	if answer == 0 {
		return parsed == 0
	}
	return math.Abs(parsed-answer)/math.Abs(answer) <= margin
}

// ParseAnswer sanitizes and parses user input into a number. Thousands
// separators and stray characters are stripped; "a/b" is parsed as a
// fraction. Returns false when no number can be extracted.
func ParseAnswer(input string) (float64, bool) {
	s := sanitize(input)
	if s == "" {
		return 0, false
	}

	if num, den, ok := strings.Cut(s, "/"); ok {
		n, errN := strconv.ParseFloat(num, 64)
		d, errD := strconv.ParseFloat(den, 64)
		if errN != nil || errD != nil || d == 0 {
			return 0, false
		}
		return n / d, true
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// sanitize keeps digits, decimal point, minus, and slash. Everything
// else, including commas used as thousands separators, is dropped.
func sanitize(input string) string {
	var b strings.Builder
	for _, r := range input {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '/':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FeedbackText builds the correct-answer reveal shown after an
// incorrect submission. Tolerance-band questions state the accepted
// range as well as the exact value.
func FeedbackText(answer float64, hasErrorRange bool, margin float64) string {
	if !hasErrorRange {
		return fmt.Sprintf("The correct answer is %s.", FormatNumber(answer))
	}
	lower := answer * (1 - margin)
	upper := answer * (1 + margin)
	return fmt.Sprintf("The correct answer is in the range of %s to %s. The exact answer is %s.",
		FormatNumber(lower), FormatNumber(upper), FormatNumber(answer))
}

// FormatNumber renders a number with thousands separators, dropping a
// trailing ".0" fraction for whole values.
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if fracPart != "" {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}
