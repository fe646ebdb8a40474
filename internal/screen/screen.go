package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/karthikv/numbersense/internal/ui/layout"
)

// Screen is one full-screen view managed by the router. The app model
// owns the header and footer; View renders only the space between.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string

	// Title names the screen in the header bar.
	Title() string
}

// KeyHintProvider lets a screen put its own key hints in the footer.
// Screens without it get the default hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
