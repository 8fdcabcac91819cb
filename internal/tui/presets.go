package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andreagrandi/inheritance-sim/internal/preset"
)

// PresetScreen lets the user seed the class editor from a named chain.
type PresetScreen struct {
	theme   Theme
	presets []preset.Preset
	cursor  int
}

// NewPresetScreen creates a picker over presets, shown in the given order.
func NewPresetScreen(theme Theme, presets []preset.Preset) *PresetScreen {
	return &PresetScreen{theme: theme, presets: presets}
}

func (p *PresetScreen) Init() tea.Cmd { return nil }

func (p *PresetScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			if p.cursor > 0 {
				p.cursor--
			}
		case "down", "j":
			if p.cursor < len(p.presets)-1 {
				p.cursor++
			}
		case "enter":
			if len(p.presets) == 0 {
				return p, nil
			}
			selected := p.presets[p.cursor]
			return p, func() tea.Msg {
				return presetSelectMsg{preset: selected}
			}
		case "esc":
			return p, func() tea.Msg { return BackMsg{} }
		}
	}

	return p, nil
}

func (p *PresetScreen) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  Start from a preset chain:\n\n")

	for i, item := range p.presets {
		chainNames := make([]string, 0, len(item.Classes))
		for _, def := range item.Classes {
			chainNames = append(chainNames, def.Name)
		}

		label := fmt.Sprintf("%s (%d levels)", item.Name, len(item.Classes))
		detail := strings.Join(chainNames, " → ")

		if i == p.cursor {
			b.WriteString("  " + p.theme.Cursor.Render("▸ "+label))
		} else {
			b.WriteString("    " + label)
		}
		b.WriteString("\n")
		b.WriteString("      " + p.theme.Dim.Render(detail) + "\n")
	}

	if len(p.presets) > 0 {
		if desc := p.presets[p.cursor].Description; desc != "" {
			b.WriteString("\n  " + p.theme.Dim.Render(desc) + "\n")
		}
	}

	return b.String()
}

func (p *PresetScreen) StatusHints() []KeyHint {
	return []KeyHint{
		{Key: "↑↓", Desc: "navigate"},
		{Key: "Enter", Desc: "load"},
		{Key: "Esc", Desc: "back"},
	}
}

// Cursor returns the current cursor position (for testing).
func (p *PresetScreen) Cursor() int {
	return p.cursor
}
