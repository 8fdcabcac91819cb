package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders keybinding hints for the bottom status bar,
// clipped to width when the terminal size is known.
func RenderStatusBar(theme Theme, hints []KeyHint, width int) string {
	if len(hints) == 0 {
		return ""
	}

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, theme.StatusKey.Render(h.Key)+" "+h.Desc)
	}

	style := theme.StatusBar
	if width > 0 {
		style = style.MaxWidth(width)
	}

	return style.Render(strings.Join(parts, "  "))
}

// alertHints are shown while an alert blocks the current screen.
func alertHints() []KeyHint {
	return []KeyHint{{Key: "any key", Desc: "dismiss"}}
}

// renderAlert draws message in a bordered box, indented like screen content.
func renderAlert(theme Theme, message string) string {
	box := theme.Alert.Render(message)
	return lipgloss.NewStyle().MarginLeft(2).Render(box)
}
