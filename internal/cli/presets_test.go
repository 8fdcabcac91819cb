package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreagrandi/inheritance-sim/internal/preset"
)

func TestPresetsCommand(t *testing.T) {
	withTestPresets(t, birdsPreset)

	output, err := executeRoot(t, "presets")
	require.NoError(t, err)

	assert.Contains(t, output, "Available presets:")
	assert.Contains(t, output, "birds  2 levels  Bird -> Parrot")
	assert.Contains(t, output, "Flying things")
}

func TestPrintPresetsListEmpty(t *testing.T) {
	buf := new(bytes.Buffer)
	printPresetsList(buf, nil)

	assert.Contains(t, buf.String(), "(none)")
}

func TestPrintPresetsListAlignsNames(t *testing.T) {
	long := birdsPreset
	long.Name = "long-name"
	long.Description = ""

	buf := new(bytes.Buffer)
	printPresetsList(buf, []preset.Preset{birdsPreset, long})

	output := buf.String()
	assert.Contains(t, output, "  birds      2 levels")
	assert.Contains(t, output, "  long-name  2 levels")
	assert.Contains(t, output, "             Flying things")
}
