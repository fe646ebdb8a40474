package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/karthikv/numbersense/internal/ui/theme"
)

// TextInput wraps bubbles/textinput. With NumericOnly set, keystrokes
// outside the answer alphabet are swallowed before the model sees them.
type TextInput struct {
	Model       textinput.Model
	NumericOnly bool
	MaxWidth    int
	submitted   bool
	valid       bool
}

func NewTextInput(placeholder string, numericOnly bool, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return TextInput{
		Model:       ti,
		NumericOnly: numericOnly,
		MaxWidth:    maxWidth,
	}
}

func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.NumericOnly {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			key := kmsg.String()
			if len(key) == 1 && !isAnswerChar(key[0]) {
				return t, nil
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// isAnswerChar reports whether c can appear in a numeric answer:
// digits, thousands comma, decimal point, minus, or fraction slash.
func isAnswerChar(c byte) bool {
	if c >= '0' && c <= '9' {
		return true
	}
	switch c {
	case ',', '.', '-', '/':
		return true
	}
	return false
}

// View renders the input, with a ✓ or ✗ suffix once submitted.
func (t TextInput) View() string {
	view := t.Model.View()
	if !t.submitted {
		return view
	}
	mark, tone := "✗", theme.Error
	if t.valid {
		mark, tone = "✓", theme.Success
	}
	return view + " " + lipgloss.NewStyle().Foreground(tone).Render(mark)
}

func (t TextInput) Value() string {
	return t.Model.Value()
}

// NumericValue parses the value as an integer.
func (t TextInput) NumericValue() (int, error) {
	return strconv.Atoi(t.Model.Value())
}

// Submit records the validation outcome shown by View.
func (t *TextInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}
