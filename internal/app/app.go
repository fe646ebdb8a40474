package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/karthikv/numbersense/internal/feedback"
	"github.com/karthikv/numbersense/internal/progress"
	"github.com/karthikv/numbersense/internal/questiongen"
	"github.com/karthikv/numbersense/internal/router"
	"github.com/karthikv/numbersense/internal/screen"
	"github.com/karthikv/numbersense/internal/screens/home"
	"github.com/karthikv/numbersense/internal/settings"
	"github.com/karthikv/numbersense/internal/store"
	"github.com/karthikv/numbersense/internal/ui/layout"
	"github.com/karthikv/numbersense/internal/ui/theme"
)

// Options carry the wired services into the TUI. Generator and
// FeedbackSvc may be nil when no LLM provider is configured; the app
// then runs with curated topics only.
type Options struct {
	Settings    *settings.Store
	Ledger      *progress.Ledger
	Generator   questiongen.Generator
	FeedbackSvc *feedback.Service
	EventRepo   store.EventRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Settings, opts.Ledger, opts.Generator, opts.FeedbackSvc, opts.EventRepo)
	return AppModel{
		router: router.New(homeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Esc is left to the screens: the practice screen turns it
		// into a quit confirmation instead of popping outright.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else {
		footerHints = []layout.KeyHint{
			{Key: "â†‘â†“", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	theme.SetColorTheme(opts.Settings.Get(context.Background()).ColorTheme)

	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
