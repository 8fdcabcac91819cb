package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreagrandi/inheritance-sim/internal/wizard"
)

func plainCommand(input string) (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	out := new(bytes.Buffer)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(out)

	return cmd, out
}

func lines(values ...string) string {
	return strings.Join(values, "\n") + "\n"
}

func TestRunWizardPlain_DefaultsEndToEnd(t *testing.T) {
	cmd, out := plainCommand(lines(
		"",
		"", "", "",
		"", "", "",
		"", "", "",
		"1",
		"2",
	))

	w := wizard.New()
	require.NoError(t, runWizardPlain(cmd, w))

	output := out.String()
	assert.Contains(t, output, "Step 1/3: Number of Levels")
	assert.Contains(t, output, "Number of levels [3]: ")
	assert.Contains(t, output, "Level 3/3")
	assert.Contains(t, output, "Class name [Class1]: ")
	assert.Contains(t, output, "1) Execute  2) Previous")
	assert.Contains(t, output, "Step 3/3: Result")
	assert.Contains(t, output, "class Class3 extends Class2 {")
	assert.Contains(t, output, "Output:\n\n1\n2\n3\n")
	assert.Contains(t, output, "1) Previous  2) Exit")
	assert.True(t, strings.HasSuffix(output, "Goodbye.\n"))
}

func TestRunWizardPlain_InvalidCountReprompts(t *testing.T) {
	cmd, out := plainCommand(lines(
		"1",
		"abc",
		"2",
		"Animal", "eat()", `System.out.println("eating");`,
		"Dog", "", "bark",
		"execute",
		"exit",
	))

	w := wizard.New()
	require.NoError(t, runWizardPlain(cmd, w))

	output := out.String()
	assert.Equal(t, 2, strings.Count(output, "Enter at least 2 levels."))
	assert.Contains(t, output, "Number of levels [abc]: ")
	assert.Contains(t, output, "class Dog extends Animal {")
	assert.Contains(t, output, "obj.eat();")
	assert.Contains(t, output, "Output:\n\neating\nbark\n")
}

func TestRunWizardPlain_TooManyLevelsReprompts(t *testing.T) {
	cmd, out := plainCommand(lines(
		"5000",
		"2",
		"", "", "",
		"", "", "",
		"1",
		"2",
	))

	w := wizard.New()
	require.NoError(t, runWizardPlain(cmd, w))

	output := out.String()
	assert.Contains(t, output, "Enter at most 1000 levels.")
	assert.Contains(t, output, "Number of levels [5000]: ")
	assert.Contains(t, output, "Output:\n\n1\n2\n")
}

func TestRunWizardPlain_FieldValuesKeepWhitespace(t *testing.T) {
	cmd, out := plainCommand(lines(
		"2\r",
		"", "", `  System.out.println("  padded  ");  `,
		"", "", "\t\r",
		"1",
		"2",
	))

	w := wizard.New()
	require.NoError(t, runWizardPlain(cmd, w))

	classes := w.Classes()
	assert.Equal(t, `  System.out.println("  padded  ");  `, classes[0].Body)
	assert.Equal(t, "\t", classes[1].Body)
	assert.Equal(t, "Class1", classes[0].Name)
	assert.Contains(t, out.String(), "Output:\n\n  padded  \n\t\n")
}

func TestRunWizardPlain_PreviousKeepsEditsUntilLevelScreen(t *testing.T) {
	cmd, out := plainCommand(lines(
		"2",
		"Base", "", "",
		"", "", "",
		"1",
		"previous",
		"", "", "",
		"", "", "",
		"2",
		"",
		"", "", "",
		"", "", "",
		"",
		"q",
	))

	w := wizard.New()
	require.NoError(t, runWizardPlain(cmd, w))

	output := out.String()
	// The second editor pass shows the edit made before Execute.
	assert.Contains(t, output, "Class name [Base]: ")
	// After going back to the level count the editor starts from defaults.
	assert.Equal(t, 2, strings.Count(output, "Step 1/3: Number of Levels"))
	assert.Equal(t, wizard.ScreenResult, w.Screen())
	assert.Equal(t, "Class1", w.Classes()[0].Name)
}

func TestRunWizardPlain_InvalidMenuOption(t *testing.T) {
	cmd, out := plainCommand(lines(
		"2",
		"", "", "",
		"", "", "",
		"9",
		"1",
		"7",
		"2",
	))

	require.NoError(t, runWizardPlain(cmd, wizard.New()))

	output := out.String()
	assert.Contains(t, output, `Invalid option "9". Enter 1-2.`)
	assert.Contains(t, output, `Invalid option "7". Enter 1-2.`)
}

func TestRunWizardPlain_EOF(t *testing.T) {
	cmd, _ := plainCommand("")

	err := runWizardPlain(cmd, wizard.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read level count")
}

func TestRunWizardPlain_SeededWizardStartsInEditor(t *testing.T) {
	withTestPresets(t, birdsPreset)

	w := wizard.New()
	require.NoError(t, seedFromPreset(w, "birds"))

	cmd, out := plainCommand(lines("", "", "", "", "", "", "1", "2"))
	require.NoError(t, runWizardPlain(cmd, w))

	output := out.String()
	assert.NotContains(t, output, "Step 1/3")
	assert.Contains(t, output, "Output:\n\nflap\nhello\n")
}
