package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreagrandi/inheritance-sim/internal/wizard"
)

const twoLevelProgram = `class Class1 {
  void print1() {
    System.out.println("1");
  }
}

class Class2 extends Class1 {
  void print2() {
    System.out.println("2");
  }
}

public class Test {
  public static void main(String[] args) {
    Class2 obj = new Class2();
        obj.print1();
        obj.print2();
  }
}`

func runGenerateCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newGenerateCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestGenerate_TwoLevels(t *testing.T) {
	output, err := runGenerateCmd(t, "--levels", "2")
	require.NoError(t, err)

	assert.Equal(t, "Generated Java Program:\n\n"+twoLevelProgram+"\n\nOutput:\n\n1\n2\n", output)
}

func TestGenerate_DefaultIsThreeLevels(t *testing.T) {
	output, err := runGenerateCmd(t, "--output-only")
	require.NoError(t, err)

	assert.Equal(t, "1\n2\n3\n", output)
}

func TestGenerate_SourceOnly(t *testing.T) {
	output, err := runGenerateCmd(t, "-n", "2", "--source-only")
	require.NoError(t, err)

	assert.Equal(t, twoLevelProgram+"\n", output)
}

func TestGenerate_InvalidLevelCount(t *testing.T) {
	for _, levels := range []string{"1", "0", "-4"} {
		t.Run(levels, func(t *testing.T) {
			_, err := runGenerateCmd(t, "--levels", levels)
			assert.ErrorIs(t, err, wizard.ErrInvalidLevelCount)
		})
	}
}

func TestGenerate_TooManyLevels(t *testing.T) {
	_, err := runGenerateCmd(t, "--levels", "999999999")
	assert.ErrorIs(t, err, wizard.ErrTooManyLevels)
}

func TestGenerate_SetOverridesFields(t *testing.T) {
	output, err := runGenerateCmd(t,
		"--levels", "2",
		"--set", "1.name=Animal",
		"--set", "2.method=bark()",
		"--set", `2.body=System.out.println("a=b");`,
	)
	require.NoError(t, err)

	assert.Contains(t, output, "class Animal {")
	assert.Contains(t, output, "class Class2 extends Animal {")
	assert.Contains(t, output, "obj.bark();")
	assert.Contains(t, output, "Output:\n\n1\na=b\n")
}

func TestGenerate_SetOutOfRange(t *testing.T) {
	_, err := runGenerateCmd(t, "--levels", "2", "--set", "3.name=X")
	assert.ErrorIs(t, err, wizard.ErrIndexOutOfRange)
}

func TestGenerate_Preset(t *testing.T) {
	withTestPresets(t, birdsPreset)

	output, err := runGenerateCmd(t, "--preset", "birds", "--output-only")
	require.NoError(t, err)
	assert.Equal(t, "flap\nhello\n", output)

	_, err = runGenerateCmd(t, "--preset", "nope")
	assert.Error(t, err)
}

func TestGenerate_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chain.yaml")
	content := `name: mine
classes:
  - name: A
    method: a()
    body: plain text
  - name: B
    method: b()
    body: System.out.println("bee");
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	output, err := runGenerateCmd(t, "--file", path, "--output-only")
	require.NoError(t, err)
	assert.Equal(t, "plain text\nbee\n", output)

	_, err = runGenerateCmd(t, "--file", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestGenerate_Color(t *testing.T) {
	output, err := runGenerateCmd(t, "--levels", "2", "--source-only", "--color")
	require.NoError(t, err)

	assert.Contains(t, output, "\x1b[")
	assert.Contains(t, stripANSI(output), "class Class2 extends Class1")
}

func TestGenerate_MutuallyExclusiveFlags(t *testing.T) {
	_, err := runGenerateCmd(t, "--source-only", "--output-only")
	assert.Error(t, err)

	_, err = runGenerateCmd(t, "--levels", "2", "--preset", "animals")
	assert.Error(t, err)
}

func TestParseFieldEdit(t *testing.T) {
	edit, err := parseFieldEdit("2.Body=x = y")
	require.NoError(t, err)
	assert.Equal(t, fieldEdit{index: 1, field: wizard.FieldBody, value: "x = y"}, edit)

	edit, err = parseFieldEdit("1.name=")
	require.NoError(t, err)
	assert.Equal(t, "", edit.value)

	for _, raw := range []string{"name=X", "1.name", "0.name=X", "a.name=X", "1.colour=red"} {
		_, err := parseFieldEdit(raw)
		assert.Error(t, err, raw)
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false

	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			inEscape = false
		case !inEscape:
			b.WriteRune(r)
		}
	}

	return b.String()
}
