package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreagrandi/inheritance-sim/internal/config"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootPreset = ""

		// Cobra keeps parsed flag values between executions.
		for _, name := range []string{"help", "version"} {
			if flag := rootCmd.Flags().Lookup(name); flag != nil {
				_ = flag.Value.Set("false")
			}
		}
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestFeatureEnableCommand(t *testing.T) {
	configPath := withTestConfig(t)

	output, err := executeRoot(t, "feature", "enable", "highlight")
	require.NoError(t, err)
	assert.Equal(t, "Feature \"highlight\" enabled.\n", output)

	cfg, err := config.LoadFrom(configPath)
	require.NoError(t, err)
	assert.True(t, cfg.IsFeatureEnabled(config.FeatureHighlight))
}

func TestFeatureDisableCommand(t *testing.T) {
	configPath := withTestConfig(t)

	output, err := executeRoot(t, "feature", "disable", "tui")
	require.NoError(t, err)
	assert.Contains(t, output, "disabled")

	cfg, err := config.LoadFrom(configPath)
	require.NoError(t, err)
	assert.False(t, cfg.IsFeatureEnabled(config.FeatureTUI))
}

func TestFeatureEnableUnknown(t *testing.T) {
	withTestConfig(t)

	_, err := executeRoot(t, "feature", "enable", "registry")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown feature")
}

func TestFeatureListCommand(t *testing.T) {
	withTestConfig(t)

	output, err := executeRoot(t, "feature", "list")
	require.NoError(t, err)

	assert.Contains(t, output, "Feature flags:")
	assert.Contains(t, output, "highlight  enabled")
	assert.Contains(t, output, "tui        enabled")
}

func TestFeatureNames(t *testing.T) {
	assert.Equal(t, []string{"highlight", "tui"}, featureNames())
}
