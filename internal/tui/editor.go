package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andreagrandi/inheritance-sim/internal/wizard"
)

// linesPerLevel is the height of one level block: heading, three inputs and
// a blank separator.
const linesPerLevel = 5

// editorHeaderLines covers the screen heading and the blank line after it.
const editorHeaderLines = 3

var fieldPrompts = map[wizard.Field]string{
	wizard.FieldName:   "    Class name:  ",
	wizard.FieldMethod: "    Method name: ",
	wizard.FieldBody:   "    Method body: ",
}

// EditorScreen shows name, method and body inputs for every level and writes
// each change straight through to the wizard.
type EditorScreen struct {
	theme      Theme
	wizard     *wizard.Wizard
	inputs     []textinput.Model
	values     []string // wizard values the inputs were built from
	shown      []string // the same values after input sanitizing
	focus      int
	offset     int // first visible level
	viewHeight int
	lastErr    error
}

// NewEditorScreen creates an editor over the wizard's current class list.
func NewEditorScreen(theme Theme, w *wizard.Wizard, viewHeight int) *EditorScreen {
	classes := w.Classes()
	inputs := make([]textinput.Model, 0, len(classes)*len(wizard.Fields))
	original := make([]string, 0, cap(inputs))
	shown := make([]string, 0, cap(inputs))

	for _, def := range classes {
		values := map[wizard.Field]string{
			wizard.FieldName:   def.Name,
			wizard.FieldMethod: def.Method,
			wizard.FieldBody:   def.Body,
		}

		for _, field := range wizard.Fields {
			ti := textinput.New()
			ti.Prompt = fieldPrompts[field]
			ti.CharLimit = 0
			ti.SetValue(values[field])
			inputs = append(inputs, ti)
			original = append(original, values[field])
			shown = append(shown, ti.Value())
		}
	}

	e := &EditorScreen{
		theme:      theme,
		wizard:     w,
		inputs:     inputs,
		values:     original,
		shown:      shown,
		viewHeight: viewHeight,
	}

	if len(e.inputs) > 0 {
		e.inputs[0].Focus()
	}

	return e
}

func (e *EditorScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (e *EditorScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.viewHeight = contentHeightFromTerminal(msg.Height)
		e.ensureVisible()
		return e, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down", "enter":
			return e, e.moveFocus(1)
		case "shift+tab", "up":
			return e, e.moveFocus(-1)
		case "ctrl+r":
			return e, func() tea.Msg { return executeMsg{} }
		case "esc":
			return e, func() tea.Msg { return BackMsg{} }
		}
	}

	if len(e.inputs) == 0 {
		return e, nil
	}

	before := e.inputs[e.focus].Value()

	var cmd tea.Cmd
	e.inputs[e.focus], cmd = e.inputs[e.focus].Update(msg)

	if value := e.inputs[e.focus].Value(); value != before {
		// Typing back to the starting text restores the untouched value,
		// including characters the input cannot display.
		if value == e.shown[e.focus] {
			value = e.values[e.focus]
		}

		level, field := e.position(e.focus)
		e.lastErr = e.wizard.Edit(level, field, value)
	}

	return e, cmd
}

func (e *EditorScreen) moveFocus(delta int) tea.Cmd {
	next := e.focus + delta
	if next < 0 || next >= len(e.inputs) {
		return nil
	}

	e.inputs[e.focus].Blur()
	e.focus = next
	e.ensureVisible()

	return e.inputs[e.focus].Focus()
}

// position maps an input index to its level and field.
func (e *EditorScreen) position(index int) (int, wizard.Field) {
	perLevel := len(wizard.Fields)
	return index / perLevel, wizard.Fields[index%perLevel]
}

func (e *EditorScreen) levels() int {
	return len(e.inputs) / len(wizard.Fields)
}

func (e *EditorScreen) visibleLevels() int {
	n := (e.viewHeight - editorHeaderLines) / linesPerLevel
	if n < 1 {
		return 1
	}

	return n
}

func (e *EditorScreen) ensureVisible() {
	level, _ := e.position(e.focus)
	visible := e.visibleLevels()

	if level < e.offset {
		e.offset = level
	}

	if level >= e.offset+visible {
		e.offset = level - visible + 1
	}

	if maxOffset := e.levels() - visible; e.offset > maxOffset {
		e.offset = max(maxOffset, 0)
	}
}

func (e *EditorScreen) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + e.theme.Heading.Render("Step 2: Define Classes") + "\n\n")

	total := e.levels()
	end := min(e.offset+e.visibleLevels(), total)
	perLevel := len(wizard.Fields)

	for level := e.offset; level < end; level++ {
		heading := fmt.Sprintf("  Level %d/%d", level+1, total)
		if level == 0 {
			heading += e.theme.Dim.Render("  base class")
		} else {
			heading += e.theme.Dim.Render("  extends level " + fmt.Sprint(level))
		}

		if focusLevel, _ := e.position(e.focus); focusLevel == level {
			b.WriteString(e.theme.Active.Render(heading))
		} else {
			b.WriteString(heading)
		}
		b.WriteString("\n")

		for i := 0; i < perLevel; i++ {
			b.WriteString(e.inputs[level*perLevel+i].View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if end < total {
		b.WriteString(e.theme.Dim.Render(fmt.Sprintf("  ▼ %d more", total-end)))
		b.WriteString("\n")
	}

	if e.lastErr != nil {
		b.WriteString(e.theme.Warning.Render("  " + e.lastErr.Error()))
		b.WriteString("\n")
	}

	return b.String()
}

func (e *EditorScreen) StatusHints() []KeyHint {
	return []KeyHint{
		{Key: "Tab/↑↓", Desc: "move"},
		{Key: "Ctrl+R", Desc: "execute"},
		{Key: "Esc", Desc: "previous"},
	}
}

// Focus returns the index of the focused input (for testing).
func (e *EditorScreen) Focus() int {
	return e.focus
}

// Offset returns the first visible level (for testing).
func (e *EditorScreen) Offset() int {
	return e.offset
}

// Value returns the text of the input for level and field (for testing).
func (e *EditorScreen) Value(level int, field wizard.Field) string {
	for i, f := range wizard.Fields {
		if f == field {
			return e.inputs[level*len(wizard.Fields)+i].Value()
		}
	}

	return ""
}
