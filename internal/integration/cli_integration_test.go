//go:build integration
// +build integration

package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

const twoLevelSource = `class Class1 {
  void print1() {
    System.out.println("1");
  }
}`

func TestPlainWizardRunsAllThreeSteps(t *testing.T) {
	sandbox := newCLISandbox(t)

	// Invalid count, then 2 levels; rename level 1 and keep the rest;
	// execute, go back, keep every field, execute again and exit.
	input := strings.Join([]string{
		"1",
		"2",
		"Animal", "", "",
		"", "", "",
		"1",
		"1",
		"", "", "",
		"", "", "",
		"1",
		"2",
	}, "\n") + "\n"

	output, err := sandbox.runCLIWithInput(input)
	if err != nil {
		t.Fatalf("wizard failed: %v\n%s", err, output)
	}

	for _, want := range []string{
		"Step 1/3: Number of Levels",
		"Enter at least 2 levels.",
		"Step 2/3: Define Classes",
		"class Class2 extends Animal {",
		"Step 3/3: Result",
		"Goodbye.",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestGenerateCommand(t *testing.T) {
	sandbox := newCLISandbox(t)

	output, err := sandbox.runCLI("generate", "--levels", "2", "--source-only")
	if err != nil {
		t.Fatalf("generate failed: %v\n%s", err, output)
	}

	if !strings.HasPrefix(output, twoLevelSource) {
		t.Fatalf("unexpected generated source:\n%s", output)
	}

	output, err = sandbox.runCLI("generate", "--levels", "1")
	if err == nil {
		t.Fatalf("expected generate with one level to fail, got:\n%s", output)
	}

	if !strings.Contains(output, "enter at least 2 levels") {
		t.Fatalf("expected level count error, got:\n%s", output)
	}
}

func TestUserPresetOverridesBundled(t *testing.T) {
	sandbox := newCLISandbox(t)

	writeFile(t, filepath.Join(sandbox.presetsDir, "animals.toml"), `name = "animals"
description = "Local animals"

[[classes]]
name = "Cat"
method = "purr()"
body = 'System.out.println("purr");'

[[classes]]
name = "Kitten"
method = "play()"
body = 'System.out.println("play");'
`)

	listOutput, err := sandbox.runCLI("presets")
	if err != nil {
		t.Fatalf("presets failed: %v\n%s", err, listOutput)
	}

	if !strings.Contains(listOutput, "Cat -> Kitten") || !strings.Contains(listOutput, "vehicles") {
		t.Fatalf("expected local and bundled presets, got:\n%s", listOutput)
	}

	output, err := sandbox.runCLI("generate", "--preset", "animals", "--output-only")
	if err != nil {
		t.Fatalf("generate failed: %v\n%s", err, output)
	}

	if strings.TrimSpace(output) != "purr\nplay" {
		t.Fatalf("unexpected output %q", output)
	}
}

func TestFeatureFlagsPersist(t *testing.T) {
	sandbox := newCLISandbox(t)

	if output, err := sandbox.runCLI("feature", "disable", "tui"); err != nil {
		t.Fatalf("feature disable failed: %v\n%s", err, output)
	}

	output, err := sandbox.runCLI("feature", "list")
	if err != nil {
		t.Fatalf("feature list failed: %v\n%s", err, output)
	}

	if !strings.Contains(output, "disabled") {
		t.Fatalf("expected tui to be disabled, got:\n%s", output)
	}

	if _, err := os.Stat(filepath.Join(sandbox.homeDir, ".config", "inheritance-sim", "config.json")); err != nil {
		t.Fatalf("expected config file to be written: %v", err)
	}
}

func TestLogFileReceivesWizardTransitions(t *testing.T) {
	sandbox := newCLISandbox(t)
	logPath := filepath.Join(sandbox.homeDir, "sim.log")

	output, err := sandbox.runCLI("generate", "--levels", "3", "--log-file", logPath, "--verbose")
	if err != nil {
		t.Fatalf("generate failed: %v\n%s", err, output)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("expected log file: %v", err)
	}

	if !strings.Contains(string(data), "wizard transition") {
		t.Fatalf("expected transition entries in log, got:\n%s", data)
	}
}

type cliSandbox struct {
	binaryPath string
	homeDir    string
	presetsDir string
	workDir    string
}

func newCLISandbox(t *testing.T) cliSandbox {
	t.Helper()

	homeDir := t.TempDir()
	presetsDir := filepath.Join(homeDir, ".config", "inheritance-sim", "presets")
	if err := os.MkdirAll(presetsDir, 0o755); err != nil {
		t.Fatalf("failed to create user presets directory: %v", err)
	}

	binaryPath := filepath.Join(t.TempDir(), "inheritance-sim")
	buildCmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/inheritance-sim")
	buildCmd.Dir = repoRootPath(t)
	buildOutput, err := buildCmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to build inheritance-sim binary: %v\n%s", err, string(buildOutput))
	}

	return cliSandbox{
		binaryPath: binaryPath,
		homeDir:    homeDir,
		presetsDir: presetsDir,
		workDir:    t.TempDir(),
	}
}

func (s cliSandbox) runCLI(args ...string) (string, error) {
	return s.runCLIWithInput("", args...)
}

func (s cliSandbox) runCLIWithInput(input string, args ...string) (string, error) {
	cmd := exec.Command(s.binaryPath, args...)
	cmd.Dir = s.workDir
	cmd.Env = []string{"HOME=" + s.homeDir}
	cmd.Stdin = strings.NewReader(input)

	output, err := cmd.CombinedOutput()
	return string(output), err
}

func repoRootPath(t *testing.T) string {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("failed to resolve current file path")
	}

	return filepath.Clean(filepath.Join(filepath.Dir(currentFile), "..", ".."))
}

func writeFile(t *testing.T, path string, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %q: %v", path, err)
	}
}
