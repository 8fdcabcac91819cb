package tui

import "github.com/charmbracelet/lipgloss"

// ContentHeight is the content area height used before the first
// WindowSizeMsg arrives.
const ContentHeight = 16

// ChromeLines is the number of fixed lines used by the layout frame
// (title bar + separator + status bar).
const ChromeLines = 3

// Theme holds Lip Gloss styles for the TUI.
type Theme struct {
	Title     lipgloss.Style
	Heading   lipgloss.Style
	Active    lipgloss.Style
	Completed lipgloss.Style
	Dim       lipgloss.Style
	Warning   lipgloss.Style
	Alert     lipgloss.Style
	StatusBar lipgloss.Style
	StatusKey lipgloss.Style
	Cursor    lipgloss.Style
	BreadSep  lipgloss.Style
	Separator lipgloss.Style
}

// Adaptive colours keep the screens readable on light and dark terminals.
var (
	accentColor  = lipgloss.AdaptiveColor{Light: "25", Dark: "6"}
	successColor = lipgloss.AdaptiveColor{Light: "28", Dark: "2"}
	warningColor = lipgloss.AdaptiveColor{Light: "130", Dark: "3"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "245", Dark: "8"}
	ruleColor    = lipgloss.AdaptiveColor{Light: "33", Dark: "4"}
)

// NewTheme creates the default theme.
func NewTheme() Theme {
	muted := lipgloss.NewStyle().Foreground(mutedColor)
	accent := lipgloss.NewStyle().Bold(true).Foreground(accentColor)

	return Theme{
		Title:     lipgloss.NewStyle().Bold(true),
		Heading:   lipgloss.NewStyle().Bold(true).Underline(true),
		Active:    accent,
		Completed: lipgloss.NewStyle().Foreground(successColor),
		Dim:       muted,
		Warning:   lipgloss.NewStyle().Foreground(warningColor),
		Alert: lipgloss.NewStyle().
			Bold(true).
			Foreground(warningColor).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(warningColor).
			Padding(0, 2),
		StatusBar: muted,
		StatusKey: muted.Bold(true),
		Cursor:    accent,
		BreadSep:  muted,
		Separator: lipgloss.NewStyle().Foreground(ruleColor),
	}
}
