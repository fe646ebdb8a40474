// Package theme holds the color palette and shared lipgloss styles.
// The accent palette is switchable at startup via SetColorTheme.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// palette is one selectable accent scheme.
type palette struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
}

// palettes maps settings colorTheme values to accent schemes.
var palettes = map[string]palette{
	"theme-default": {
		Primary:   lipgloss.Color("#8B5CF6"), // Violet
		Secondary: lipgloss.Color("#14B8A6"), // Teal
		Accent:    lipgloss.Color("#F97316"), // Orange
	},
	"theme-ocean": {
		Primary:   lipgloss.Color("#0EA5E9"), // Sky
		Secondary: lipgloss.Color("#06B6D4"), // Cyan
		Accent:    lipgloss.Color("#6366F1"), // Indigo
	},
	"theme-forest": {
		Primary:   lipgloss.Color("#16A34A"), // Green
		Secondary: lipgloss.Color("#84CC16"), // Lime
		Accent:    lipgloss.Color("#EAB308"), // Yellow
	},
}

// ColorThemes returns the selectable theme names, default first.
func ColorThemes() []string {
	return []string{"theme-default", "theme-ocean", "theme-forest"}
}

// Color palette
var (
	Primary   = palettes["theme-default"].Primary
	Secondary = palettes["theme-default"].Secondary
	Accent    = palettes["theme-default"].Accent
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// SetColorTheme switches the accent palette. Unknown names keep the
// default. Call before any rendering; styles are rebuilt in place.
func SetColorTheme(name string) {
	p, ok := palettes[name]
	if !ok {
		p = palettes["theme-default"]
	}
	Primary = p.Primary
	Secondary = p.Secondary
	Accent = p.Accent
	rebuildStyles()
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)

func rebuildStyles() {
	Title = Title.Foreground(Primary)
	Selected = Selected.Foreground(Primary)
	ProgressFilled = ProgressFilled.Background(Secondary)
	ButtonActive = ButtonActive.Background(Primary)
}
