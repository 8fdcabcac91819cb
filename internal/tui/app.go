package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/andreagrandi/inheritance-sim/internal/app"
	"github.com/andreagrandi/inheritance-sim/internal/preset"
	"github.com/andreagrandi/inheritance-sim/internal/wizard"
)

// Callbacks provides the data sources and renderers the TUI needs from the
// command layer. Nil callbacks disable the matching feature.
type Callbacks struct {
	// LoadPresets returns the presets offered by the picker.
	LoadPresets func() ([]preset.Preset, error)
	// Highlight decorates the generated source for display.
	Highlight func(source string) string
}

// WizardModel is the root Bubble Tea model for the full-screen TUI. It is the
// only code that drives the wizard while the program runs.
type WizardModel struct {
	theme     Theme
	screen    Screen
	screenID  ScreenID
	wizard    *wizard.Wizard
	callbacks Callbacks
	logger    *zap.Logger
	version   string
	alert     string
	width     int
	height    int
}

// NewWizardModel creates a root model showing the wizard's current screen.
func NewWizardModel(w *wizard.Wizard, cb Callbacks, version string, logger *zap.Logger) WizardModel {
	if logger == nil {
		logger = zap.NewNop()
	}

	m := WizardModel{
		theme:     NewTheme(),
		wizard:    w,
		callbacks: cb,
		logger:    logger,
		version:   version,
	}
	m.syncScreen()

	return m
}

func (m WizardModel) Init() tea.Cmd {
	return m.screen.Init()
}

func (m WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Forward to screen so it can adjust (e.g. scroll bounds).

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.alert != "" {
			m.alert = ""
			return m, nil
		}

	case levelsSubmitMsg:
		return m.handleLevelsSubmit(msg)

	case openPresetsMsg:
		return m.handleOpenPresets()

	case presetSelectMsg:
		if err := m.wizard.LoadClasses(msg.preset.Classes); err != nil {
			return m.showAlert(err)
		}
		return m.syncScreen()

	case executeMsg:
		if err := m.wizard.Execute(); err != nil {
			return m.showAlert(err)
		}
		return m.syncScreen()

	case BackMsg:
		if m.screenID == ScreenPresets {
			return m.syncScreen()
		}

		if err := m.wizard.Back(); err != nil {
			return m.showAlert(err)
		}
		return m.syncScreen()
	}

	var cmd tea.Cmd
	m.screen, cmd = m.screen.Update(msg)
	return m, cmd
}

func (m WizardModel) handleLevelsSubmit(msg levelsSubmitMsg) (tea.Model, tea.Cmd) {
	m.wizard.SetLevelInput(msg.raw)

	if err := m.wizard.Next(); err != nil {
		switch {
		case errors.Is(err, wizard.ErrInvalidLevelCount):
			m.alert = "Enter at least 2 levels"
			return m, nil
		case errors.Is(err, wizard.ErrTooManyLevels):
			m.alert = fmt.Sprintf("Enter at most %d levels", wizard.MaxLevels)
			return m, nil
		}

		return m.showAlert(err)
	}

	return m.syncScreen()
}

func (m WizardModel) handleOpenPresets() (tea.Model, tea.Cmd) {
	if m.callbacks.LoadPresets == nil {
		return m, nil
	}

	presets, err := m.callbacks.LoadPresets()
	if err != nil {
		m.logger.Warn("load presets failed", zap.Error(err))
		m.alert = "Error: " + err.Error()
		return m, nil
	}

	if len(presets) == 0 {
		m.alert = "No presets available."
		return m, nil
	}

	m.screen = NewPresetScreen(m.theme, presets)
	m.screenID = ScreenPresets
	return m, m.screen.Init()
}

func (m WizardModel) showAlert(err error) (tea.Model, tea.Cmd) {
	m.logger.Debug("wizard error", zap.Error(err))
	m.alert = err.Error()
	return m, nil
}

// syncScreen replaces the active screen with the one matching the wizard.
func (m *WizardModel) syncScreen() (tea.Model, tea.Cmd) {
	switch m.wizard.Screen() {
	case wizard.ScreenClassEditor:
		m.screen = NewEditorScreen(m.theme, m.wizard, m.contentHeight())
		m.screenID = ScreenEditor
	case wizard.ScreenResult:
		source := m.wizard.Source()
		if m.callbacks.Highlight != nil {
			source = m.callbacks.Highlight(source)
		}
		m.screen = NewResultScreen(m.theme, source, m.wizard.Output(), m.contentHeight())
		m.screenID = ScreenResult
	default:
		m.screen = NewLevelsScreen(m.theme, m.wizard.LevelInput(), m.callbacks.LoadPresets != nil)
		m.screenID = ScreenLevels
	}

	return *m, m.screen.Init()
}

func (m WizardModel) View() string {
	titleLabel := app.Title
	if m.version != "" {
		titleLabel += " v" + m.version
	}

	titleBar := m.theme.Title.Render(titleLabel)
	if breadcrumb := RenderBreadcrumb(m.theme, wizardSteps(m.wizard)); breadcrumb != "" {
		titleBar += "  " + breadcrumb
	}

	sepWidth := m.width
	if sepWidth <= 0 {
		sepWidth = 40
	}

	separator := m.theme.Separator.Render(strings.Repeat("─", sepWidth))

	content := m.screen.View()
	hints := m.screen.StatusHints()
	if m.alert != "" {
		content = "\n" + renderAlert(m.theme, m.alert) + "\n" + content
		hints = alertHints()
	}

	content = padToHeight(content, m.contentHeight())
	statusBar := RenderStatusBar(m.theme, hints, m.width)

	return titleBar + "\n" + separator + "\n" + content + "\n" + statusBar
}

func (m WizardModel) contentHeight() int {
	return contentHeightFromTerminal(m.height)
}

// contentHeightFromTerminal calculates the content area height from the
// terminal height, subtracting the chrome lines (title + separator + status bar).
func contentHeightFromTerminal(termHeight int) int {
	if termHeight <= 0 {
		return ContentHeight
	}

	return max(termHeight-ChromeLines, 1)
}

// padToHeight pads or truncates content to exactly targetHeight lines.
func padToHeight(content string, targetHeight int) string {
	content = strings.TrimRight(content, "\n")

	lines := strings.Split(content, "\n")
	for len(lines) < targetHeight {
		lines = append(lines, "")
	}

	if len(lines) > targetHeight {
		lines = lines[:targetHeight]
	}

	return strings.Join(lines, "\n")
}

// Run starts the full-screen TUI and blocks until the user quits.
func Run(w *wizard.Wizard, cb Callbacks, version string, logger *zap.Logger) error {
	p := tea.NewProgram(NewWizardModel(w, cb, version, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
