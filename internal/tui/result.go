package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ResultScreen displays the generated program and its simulated output,
// scrolling when they do not fit.
type ResultScreen struct {
	theme      Theme
	lines      []string
	offset     int
	viewHeight int
}

// NewResultScreen builds the result view. source may already carry ANSI
// highlighting; it is shown as-is.
func NewResultScreen(theme Theme, source string, output string, viewHeight int) *ResultScreen {
	lines := []string{"", "  " + theme.Heading.Render("Generated Java Program"), ""}
	lines = append(lines, indentLines(source, "    ")...)
	lines = append(lines, "", "  "+theme.Heading.Render("Output"), "")
	lines = append(lines, indentLines(output, "    ")...)

	return &ResultScreen{
		theme:      theme,
		lines:      lines,
		viewHeight: viewHeight,
	}
}

func indentLines(text string, prefix string) []string {
	split := strings.Split(text, "\n")
	for i, line := range split {
		split[i] = prefix + line
	}

	return split
}

func (r *ResultScreen) Init() tea.Cmd { return nil }

func (r *ResultScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.viewHeight = contentHeightFromTerminal(msg.Height)
		r.clampOffset()
		return r, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if r.offset > 0 {
				r.offset--
			}
		case "down", "j":
			if r.offset < r.maxOffset() {
				r.offset++
			}
		case "pgup":
			r.offset = max(r.offset-r.viewHeight, 0)
		case "pgdown", " ":
			r.offset = min(r.offset+r.viewHeight, r.maxOffset())
		case "esc", "left", "backspace":
			return r, func() tea.Msg { return BackMsg{} }
		case "q":
			return r, tea.Quit
		}
	}

	return r, nil
}

func (r *ResultScreen) View() string {
	viewLines := r.viewHeight

	// Reserve a line for the scroll indicator when there is more content below.
	hasMore := r.offset+viewLines < len(r.lines)
	if hasMore {
		viewLines--
	}

	end := min(r.offset+viewLines, len(r.lines))

	var b strings.Builder
	for _, line := range r.lines[r.offset:end] {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if hasMore {
		b.WriteString(r.theme.Dim.Render(fmt.Sprintf("  ▼ ... %d more", len(r.lines)-end)))
	}

	return b.String()
}

func (r *ResultScreen) StatusHints() []KeyHint {
	hints := []KeyHint{}
	if r.scrollable() {
		hints = append(hints, KeyHint{Key: "↑↓", Desc: "scroll"})
	}

	return append(hints,
		KeyHint{Key: "Esc", Desc: "previous"},
		KeyHint{Key: "q", Desc: "quit"},
	)
}

func (r *ResultScreen) scrollable() bool {
	return len(r.lines) > r.viewHeight
}

func (r *ResultScreen) maxOffset() int {
	return max(len(r.lines)-r.viewHeight, 0)
}

func (r *ResultScreen) clampOffset() {
	if m := r.maxOffset(); r.offset > m {
		r.offset = m
	}
}

// Offset returns the current scroll offset (for testing).
func (r *ResultScreen) Offset() int {
	return r.offset
}
