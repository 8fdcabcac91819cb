package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderStatusBar_Empty(t *testing.T) {
	theme := NewTheme()
	assert.Empty(t, RenderStatusBar(theme, nil, 80))
}

func TestRenderStatusBar_MultipleHints(t *testing.T) {
	theme := NewTheme()

	result := RenderStatusBar(theme, []KeyHint{
		{Key: "Tab", Desc: "next field"},
		{Key: "Ctrl+R", Desc: "execute"},
		{Key: "Esc", Desc: "previous"},
	}, 0)

	assert.Contains(t, result, "next field")
	assert.Contains(t, result, "execute")
	assert.Contains(t, result, "previous")
}

func TestRenderStatusBar_ClipsToWidth(t *testing.T) {
	theme := NewTheme()

	result := RenderStatusBar(theme, []KeyHint{
		{Key: "Enter", Desc: "a very long description that cannot fit"},
	}, 10)

	assert.NotContains(t, result, "cannot fit")
}

func TestRenderAlert(t *testing.T) {
	theme := NewTheme()

	result := renderAlert(theme, "Enter at least 2 levels")
	assert.Contains(t, result, "Enter at least 2 levels")
	assert.Equal(t, []KeyHint{{Key: "any key", Desc: "dismiss"}}, alertHints())
}
