package home

import (
	"context"
	"fmt"
	"math"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/karthikv/numbersense/internal/feedback"
	"github.com/karthikv/numbersense/internal/progress"
	"github.com/karthikv/numbersense/internal/questiongen"
	"github.com/karthikv/numbersense/internal/router"
	"github.com/karthikv/numbersense/internal/screen"
	"github.com/karthikv/numbersense/internal/screens/history"
	practicescreen "github.com/karthikv/numbersense/internal/screens/practice"
	settingsscreen "github.com/karthikv/numbersense/internal/screens/settings"
	"github.com/karthikv/numbersense/internal/settings"
	"github.com/karthikv/numbersense/internal/store"
	"github.com/karthikv/numbersense/internal/topics"
	"github.com/karthikv/numbersense/internal/ui/components"
	"github.com/karthikv/numbersense/internal/ui/layout"
	"github.com/karthikv/numbersense/internal/ui/theme"
)

// HomeScreen lists the practice topics with their progress and hosts
// the entry points into settings and history.
type HomeScreen struct {
	menu   components.Menu
	topics []topics.Topic
	notice string

	ledger *progress.Ledger
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen. generator may be nil, in which case
// AI-generated topics are listed but cannot be started.
func New(settingsStore *settings.Store, ledger *progress.Ledger, generator questiongen.Generator, feedbackSvc *feedback.Service, eventRepo store.EventRepo) *HomeScreen {
	h := &HomeScreen{
		topics: topics.List(),
		ledger: ledger,
	}

	var items []components.MenuItem
	for _, topic := range h.topics {
		topic := topic
		items = append(items, components.MenuItem{
			Label: topic.Name,
			Action: func() tea.Cmd {
				if topic.Generative() && generator == nil {
					h.notice = "This topic needs an AI provider. Set GEMINI_API_KEY, OPENAI_API_KEY, or ANTHROPIC_API_KEY."
					return nil
				}
				cfg := settingsStore.Get(context.Background())
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: practicescreen.New(topic, cfg, ledger, generator, feedbackSvc, eventRepo),
					}
				}
			},
		})
	}

	items = append(items,
		components.MenuItem{Label: "Settings", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: settingsscreen.New(settingsStore, ledger)}
			}
		}},
		components.MenuItem{Label: "History", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eventRepo)}
			}
		}},
		components.MenuItem{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		h.notice = ""
		if kmsg.String() == "q" {
			return h, tea.Quit
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Pick a topic"))
	b.WriteString("\n\n")

	ctx := context.Background()
	for i, topic := range h.topics {
		rec := h.ledger.Get(ctx, topic.ID)
		b.WriteString(h.renderTopic(topic, rec, i == h.menu.Selected))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for i := len(h.topics); i < len(h.menu.Items); i++ {
		b.WriteString(h.renderRow(h.menu.Items[i].Label, i == h.menu.Selected))
		b.WriteString("\n")
	}

	if h.notice != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(h.notice))
		b.WriteString("\n")
	}

	return b.String()
}

func (h *HomeScreen) renderTopic(topic topics.Topic, rec progress.TopicProgress, selected bool) string {
	marker := "  "
	nameStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if selected {
		marker = lipgloss.NewStyle().Foreground(theme.Primary).Render("â–¸ ")
		nameStyle = nameStyle.Foreground(theme.Primary).Bold(true)
	}

	line := marker + nameStyle.Render(topic.Name) + "  " + statusBadge(rec)
	if rec.Overall.Attempted > 0 {
		pct := int(math.Round(float64(rec.Overall.Correct) / float64(rec.Overall.Attempted) * 100))
		line += lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%% accuracy", pct))
	}

	desc := lipgloss.NewStyle().Foreground(theme.TextDim).Render("    " + topic.Description)
	return line + "\n" + desc
}

func (h *HomeScreen) renderRow(label string, selected bool) string {
	if selected {
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("â–¸ " + label)
	}
	return lipgloss.NewStyle().Foreground(theme.Text).Render("  " + label)
}

// statusBadge summarizes a topic's progress in one word.
func statusBadge(rec progress.TopicProgress) string {
	switch {
	case rec.CompletedSets > 0:
		return lipgloss.NewStyle().Foreground(theme.Success).Render("Completed")
	case rec.Overall.Attempted > 0:
		return lipgloss.NewStyle().Foreground(theme.Secondary).Render("In Progress")
	default:
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("Not Started")
	}
}

func (h *HomeScreen) Title() string {
	return "Topics"
}

// KeyHints implements screen.KeyHintProvider.
func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "â†‘â†“", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Q", Description: "Quit"},
	}
}
