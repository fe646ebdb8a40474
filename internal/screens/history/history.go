package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/karthikv/numbersense/internal/practice"
	"github.com/karthikv/numbersense/internal/router"
	"github.com/karthikv/numbersense/internal/screen"
	"github.com/karthikv/numbersense/internal/store"
	"github.com/karthikv/numbersense/internal/topics"
	"github.com/karthikv/numbersense/internal/ui/layout"
	"github.com/karthikv/numbersense/internal/ui/theme"
)

type historyLoadedMsg struct {
	Answers []store.AnswerRecord
	Err     error
}

// HistoryScreen displays recently answered questions.
type HistoryScreen struct {
	eventRepo store.EventRepo
	answers   []store.AnswerRecord
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		answers, err := s.eventRepo.RecentAnswers(context.Background(), store.QueryOpts{Limit: 50})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Answers: answers}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "â†‘â†“", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.answers = msg.Answers
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.answers)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.answers) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No answers yet. Start practicing!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.answers {
		mark := lipgloss.NewStyle().Foreground(theme.Error).Render("âœ—")
		if rec.Correct {
			mark = lipgloss.NewStyle().Foreground(theme.Success).Render("âœ“")
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %-18s %s",
			prefix,
			rec.Timestamp.Format("Jan 02 15:04"),
			mark,
			topicName(rec.TopicID),
			truncate(rec.QuestionText, 48))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(s.renderDetails(rec))
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderDetails(rec store.AnswerRecord) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	b.WriteString(dim.Render("      " + rec.QuestionText))
	b.WriteString("\n")

	answer := practice.FormatNumber(rec.CorrectAnswer)
	detail := fmt.Sprintf("      your answer: %s   correct: %s   took %ds",
		rec.UserAnswer, answer, rec.TimeSecs)
	if rec.ToleranceBand {
		detail += "   (margin allowed)"
	}
	b.WriteString(dim.Render(detail))
	b.WriteString("\n")
	return b.String()
}

func topicName(id string) string {
	t, err := topics.Get(id)
	if err != nil {
		return id
	}
	return t.Name
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
