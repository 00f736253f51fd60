// Package themes holds the color schemes of the interactive shell.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Selected      lipgloss.Style
	Placeholder   lipgloss.Style
	RoundedBox    lipgloss.Style
	ErrorBox      lipgloss.Style
	StatusBar     lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	TableHeader   lipgloss.Style
	TableSelected lipgloss.Style
	Primary       lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Error         lipgloss.Color
	Success       lipgloss.Color
}

// Default is the default theme.
var Default = newTheme(
	lipgloss.Color("#5B8DEF"),
	lipgloss.Color("#737373"),
	lipgloss.Color("#404040"),
	lipgloss.Color("#ef4444"),
	lipgloss.Color("#10b981"),
)

// Mono renders without colors, for plain terminals and tests.
var Mono = newTheme(
	lipgloss.Color(""),
	lipgloss.Color(""),
	lipgloss.Color(""),
	lipgloss.Color(""),
	lipgloss.Color(""),
)

func newTheme(primary, muted, border, errColor, success lipgloss.Color) Theme {
	return Theme{
		Primary: primary,
		Muted:   muted,
		Border:  border,
		Error:   errColor,
		Success: success,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),
		Subtitle: lipgloss.NewStyle().
			Foreground(muted),
		Normal: lipgloss.NewStyle(),
		Bold: lipgloss.NewStyle().
			Bold(true),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),
		Placeholder: lipgloss.NewStyle().
			Italic(true).
			Foreground(muted),
		RoundedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		ErrorBox: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(errColor).
			Padding(1, 3),
		StatusBar: lipgloss.NewStyle().
			Foreground(muted),
		StatusInfo: lipgloss.NewStyle().
			Foreground(primary),
		StatusError: lipgloss.NewStyle().
			Bold(true).
			Foreground(errColor),
		StatusSuccess: lipgloss.NewStyle().
			Bold(true).
			Foreground(success),
		TableHeader: lipgloss.NewStyle().
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(border).
			BorderBottom(true),
		TableSelected: lipgloss.NewStyle().
			Foreground(primary),
	}
}
