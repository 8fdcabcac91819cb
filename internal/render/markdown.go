package render

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// DefaultWidth is used when the terminal width is unknown.
const DefaultWidth = 80

// Markdown renders content for the terminal. The raw content is returned if
// the renderer cannot be built or fails.
func Markdown(content string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}

	if width > 120 {
		width = 120
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}

	rendered, err := r.Render(content)
	if err != nil {
		return content
	}

	return strings.TrimSuffix(rendered, "\n")
}
