package settings

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/karthikv/numbersense/internal/progress"
	"github.com/karthikv/numbersense/internal/router"
	"github.com/karthikv/numbersense/internal/screen"
	prefs "github.com/karthikv/numbersense/internal/settings"
	"github.com/karthikv/numbersense/internal/ui/layout"
	"github.com/karthikv/numbersense/internal/ui/theme"
)

// Editable fields, in display order.
const (
	fieldQuestions = iota
	fieldTheme
	fieldColorTheme
	fieldClear
	fieldCount
)

var themes = []string{"light", "dark", "system"}

// SettingsScreen edits the stored preferences. Value changes are saved
// immediately; there is no separate confirm step. Clearing progress is
// the exception and asks first.
type SettingsScreen struct {
	store    *prefs.Store
	ledger   *progress.Ledger
	current  prefs.Settings
	selected int

	showClearConfirm bool
	cleared          bool
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates the settings screen backed by the given store and ledger.
func New(store *prefs.Store, ledger *progress.Ledger) *SettingsScreen {
	return &SettingsScreen{
		store:   store,
		ledger:  ledger,
		current: store.Get(context.Background()),
	}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	key := kmsg.String()

	if s.showClearConfirm {
		switch key {
		case "y", "Y":
			s.ledger.Clear(context.Background())
			s.cleared = true
			s.showClearConfirm = false
		case "n", "N", "esc":
			s.showClearConfirm = false
		}
		return s, nil
	}

	switch key {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < fieldCount-1 {
			s.selected++
		}
	case "left", "h":
		s.adjust(-1)
	case "right", "l":
		s.adjust(1)
	case "enter":
		if s.selected == fieldClear {
			s.showClearConfirm = true
		} else {
			s.adjust(1)
		}
	case "esc", "q", "b":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	return s, nil
}

// adjust moves the selected field one step in the given direction and
// persists the result.
func (s *SettingsScreen) adjust(dir int) {
	switch s.selected {
	case fieldQuestions:
		s.current.QuestionsPerSet = prefs.ClampQuestionsPerSet(
			s.current.QuestionsPerSet + dir*prefs.QuestionsPerSetStep)
	case fieldTheme:
		s.current.Theme = cycle(themes, s.current.Theme, dir)
	case fieldColorTheme:
		s.current.ColorTheme = cycle(theme.ColorThemes(), s.current.ColorTheme, dir)
		theme.SetColorTheme(s.current.ColorTheme)
	default:
		return
	}
	s.current = s.store.Save(context.Background(), s.current)
}

// cycle returns the entry before or after current, wrapping around.
func cycle(options []string, current string, dir int) string {
	idx := 0
	for i, opt := range options {
		if opt == current {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(options)) % len(options)
	return options[idx]
}

func (s *SettingsScreen) View(width, height int) string {
	if s.showClearConfirm {
		return lipgloss.NewStyle().
			Width(width).Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.Text).
			Render("Clear all progress for every topic?\n\n[Y] Yes   [N] No")
	}

	var b strings.Builder

	b.WriteString(theme.Title.Render("Settings"))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value string
	}{
		{"Questions per set", fmt.Sprintf("â—€ %d â–¶", s.current.QuestionsPerSet)},
		{"Theme", "â—€ " + s.current.Theme + " â–¶"},
		{"Color theme", "â—€ " + s.current.ColorTheme + " â–¶"},
		{"Clear all progress", "enter to confirm"},
	}

	for i, row := range rows {
		b.WriteString(s.renderRow(row.label, row.value, i == s.selected))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if s.cleared {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render("Progress cleared."))
	} else {
		b.WriteString(theme.Hint.Render("Changes are saved as you go."))
	}

	return b.String()
}

func (s *SettingsScreen) renderRow(label, value string, selected bool) string {
	marker := "  "
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
	valueStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if selected {
		marker = lipgloss.NewStyle().Foreground(theme.Primary).Render("â–¸ ")
		labelStyle = labelStyle.Foreground(theme.Primary).Bold(true)
		valueStyle = valueStyle.Foreground(theme.Text)
	}
	return fmt.Sprintf("%s%s  %s",
		marker,
		labelStyle.Render(fmt.Sprintf("%-18s", label)),
		valueStyle.Render(value))
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

// KeyHints implements screen.KeyHintProvider.
func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	if s.showClearConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Clear"},
			{Key: "N", Description: "Keep"},
		}
	}
	return []layout.KeyHint{
		{Key: "â†‘â†“", Description: "Field"},
		{Key: "â†â†’", Description: "Change"},
		{Key: "Esc", Description: "Back"},
	}
}
