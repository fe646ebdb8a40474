package practice

import (
	"context"
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	prac "github.com/karthikv/numbersense/internal/practice"
	"github.com/karthikv/numbersense/internal/ui/components"
	"github.com/karthikv/numbersense/internal/ui/theme"
)

func (s *PracticeScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.showQuitConfirm {
		return renderQuitConfirm(width)
	}
	if s.view == viewStats {
		return s.renderStats(width)
	}
	if s.loading || s.current == nil {
		return renderLoading(width)
	}
	if s.status == statusIncorrect {
		return s.renderIncorrect(width)
	}
	return s.renderQuestion(width)
}

// renderQuestion renders the active question with timer and set progress.
func (s *PracticeScreen) renderQuestion(width int) string {
	rec := s.ledger.Get(context.Background(), s.topic.ID)
	attempted := rec.CurrentSet.QuestionsAttempted

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s Practice", s.topic.Name))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d of %d   %ds", attempted+1, s.setSize, s.elapsed))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")

	bar := components.NewProgressBar("", float64(attempted)/float64(s.setSize), false, width-8)
	b.WriteString("  " + bar.View())
	b.WriteString("\n\n")

	q := s.current
	questionText := q.Text
	if q.HasErrorRange {
		questionText = lipgloss.NewStyle().Foreground(theme.Accent).Render("* ") + questionText
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(questionText))
	b.WriteString("\n")
	if q.HasErrorRange {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render("estimates within the margin count"))
	}
	b.WriteString("\n\n")

	answerLine := "Your answer: " + s.input.View()
	if s.status == statusCorrect {
		answerLine = lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
			Render("Correct!  Loading next question...")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, answerLine))

	return b.String()
}

// renderIncorrect renders the feedback overlay after a wrong answer.
func (s *PracticeScreen) renderIncorrect(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Bold(true).
		Render("Not quite"))
	b.WriteString("\n\n")

	reveal := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Foreground(theme.Text).
		Render(s.feedbackFallback)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, reveal))
	b.WriteString("\n\n")

	if s.feedbackWaiting {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render("Thinking about your estimate..."))
		b.WriteString("\n\n")
	} else if s.feedbackLLM != "" {
		explanation := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.TextDim).
			Render(s.feedbackLLM)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, explanation))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))
	return b.String()
}

// renderStats renders the end-of-set summary.
func (s *PracticeScreen) renderStats(width int) string {
	rec := s.ledger.Get(context.Background(), s.topic.ID)
	set := rec.CurrentSet
	stats := prac.ComputeSetStats(set.QuestionsAttempted, set.QuestionsCorrect, set.TotalTime)

	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Bold(true).
		Render("Set Complete!"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("You've finished the %s practice set.", s.topic.Name)))
	b.WriteString("\n\n")

	rows := []struct {
		label, value string
	}{
		{"Score", fmt.Sprintf("%d / %d", stats.Correct, stats.Attempted)},
		{"Accuracy", fmt.Sprintf("%d%%", stats.Accuracy)},
		{"Average Time", fmt.Sprintf("%.1fs", stats.AverageTime)},
	}

	const rowWidth = 40
	for _, row := range rows {
		label := lipgloss.NewStyle().Foreground(theme.Text).Render(row.label)
		value := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(row.value)
		gap := rowWidth - lipgloss.Width(label) - lipgloss.Width(value)
		if gap < 1 {
			gap = 1
		}
		line := label + strings.Repeat(" ", gap) + value
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[P] Practice Again"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[B] Back to Topics"))

	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Leave this practice session?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your progress is saved after every answer."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, back to topics"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Generating question...")
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  %s\n\n  Press any key to go back.", errMsg))
}
