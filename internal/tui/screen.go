package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andreagrandi/inheritance-sim/internal/preset"
)

// ScreenID identifies a TUI screen.
type ScreenID int

const (
	ScreenLevels ScreenID = iota
	ScreenPresets
	ScreenEditor
	ScreenResult
)

// KeyHint describes a keybinding shown in the status bar.
type KeyHint struct {
	Key  string
	Desc string
}

// Screen defines the interface each TUI screen must implement.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View() string
	StatusHints() []KeyHint
}

// BackMsg requests navigation to the previous screen.
type BackMsg struct{}

// levelsSubmitMsg carries the raw level count typed on the levels screen.
type levelsSubmitMsg struct {
	raw string
}

// openPresetsMsg asks the root model to show the preset picker.
type openPresetsMsg struct{}

// presetSelectMsg is sent when a preset is chosen in the picker.
type presetSelectMsg struct {
	preset preset.Preset
}

// executeMsg asks the root model to generate the program.
type executeMsg struct{}
