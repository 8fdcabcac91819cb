package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LevelsScreen asks for the number of inheritance levels.
type LevelsScreen struct {
	theme       Theme
	textInput   textinput.Model
	showPresets bool
}

// NewLevelsScreen creates the first wizard screen with value pre-filled.
// When showPresets is set, Ctrl+P opens the preset picker.
func NewLevelsScreen(theme Theme, value string, showPresets bool) *LevelsScreen {
	ti := textinput.New()
	ti.Prompt = "  Number of levels: "
	ti.Placeholder = "3"
	ti.CharLimit = 9
	ti.SetValue(value)
	ti.Focus()

	return &LevelsScreen{
		theme:       theme,
		textInput:   ti,
		showPresets: showPresets,
	}
}

func (l *LevelsScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (l *LevelsScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			raw := l.textInput.Value()
			return l, func() tea.Msg { return levelsSubmitMsg{raw: raw} }
		case "ctrl+p":
			if l.showPresets {
				return l, func() tea.Msg { return openPresetsMsg{} }
			}
			return l, nil
		case "esc":
			return l, tea.Quit
		}
	}

	var cmd tea.Cmd
	l.textInput, cmd = l.textInput.Update(msg)
	return l, cmd
}

func (l *LevelsScreen) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + l.theme.Heading.Render("Step 1: Number of Levels") + "\n\n")
	b.WriteString(l.theme.Dim.Render("  Each level is a class extending the one before it (minimum 2).") + "\n\n")
	b.WriteString(l.textInput.View())
	b.WriteString("\n")

	return b.String()
}

func (l *LevelsScreen) StatusHints() []KeyHint {
	hints := []KeyHint{
		{Key: "Enter", Desc: "next"},
	}

	if l.showPresets {
		hints = append(hints, KeyHint{Key: "Ctrl+P", Desc: "presets"})
	}

	return append(hints, KeyHint{Key: "Esc", Desc: "quit"})
}

// Value returns the current text of the level input (for testing).
func (l *LevelsScreen) Value() string {
	return l.textInput.Value()
}
