package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/andreagrandi/inheritance-sim/internal/config"
)

var loadConfig = config.Load

func init() {
	featureCmd := &cobra.Command{
		Use:   "feature",
		Short: "Manage feature flags",
	}

	featureCmd.AddCommand(newFeatureToggleCmd("enable", "Enable a feature flag", true))
	featureCmd.AddCommand(newFeatureToggleCmd("disable", "Disable a feature flag", false))
	featureCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all feature flags and their status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listFeatures(cmd.OutOrStdout())
		},
	})

	rootCmd.AddCommand(featureCmd)
}

func newFeatureToggleCmd(verb string, short string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:       verb + " <feature>",
		Short:     short,
		Args:      cobra.ExactArgs(1),
		ValidArgs: featureNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setFeatureFlag(cmd.OutOrStdout(), args[0], enabled)
		},
	}
}

func setFeatureFlag(output io.Writer, name string, enabled bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := cfg.SetFeature(name, enabled); err != nil {
		return err
	}

	action := "disabled"
	if enabled {
		action = "enabled"
	}

	logger.Debug("feature flag changed",
		zap.String("feature", name),
		zap.Bool("enabled", enabled),
		zap.String("config", cfg.Path()),
	)
	fmt.Fprintf(output, "Feature %q %s.\n", name, action)

	return nil
}

func listFeatures(output io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	features := cfg.Features()
	if len(features) == 0 {
		fmt.Fprintln(output, "No feature flags available.")
		return nil
	}

	fmt.Fprintln(output, "Feature flags:")
	fmt.Fprintln(output)

	maxNameWidth := 0
	for _, f := range features {
		maxNameWidth = max(maxNameWidth, len(f.Name))
	}

	for _, f := range features {
		status := "disabled"
		if f.Enabled {
			status = "enabled"
		}

		fmt.Fprintf(output, "  %-*s  %-8s  %s\n", maxNameWidth, f.Name, status, f.Description)
	}

	return nil
}

func featureNames() []string {
	names := make([]string, 0, len(config.FeatureRegistry))
	for name := range config.FeatureRegistry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
