package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/andreagrandi/inheritance-sim/internal/app"
	"github.com/andreagrandi/inheritance-sim/internal/config"
	"github.com/andreagrandi/inheritance-sim/internal/preset"
	"github.com/andreagrandi/inheritance-sim/internal/render"
	"github.com/andreagrandi/inheritance-sim/internal/tui"
	"github.com/andreagrandi/inheritance-sim/internal/wizard"
)

var (
	logFile    string
	verbose    bool
	rootPreset string
)

var runTUI = tui.Run

var rootCmd = &cobra.Command{
	Use:   app.Name,
	Short: "Build a multilevel inheritance chain and see what it prints",
	Long: `inheritance-sim walks you through building a chain of classes where each
level extends the one before it.

Pick how many levels you want, name each class and its method, then execute
to see the generated Java program and the output it would print.

Run "inheritance-sim about" for a short explanation of multilevel inheritance.`,
	Version:       app.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		built, err := newLogger(logFile, verbose)
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}

		logger = built
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runGuidedWizard(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write debug logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	rootCmd.Flags().StringVar(&rootPreset, "preset", "", "start the editor from a named preset")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runGuidedWizard(cmd *cobra.Command) error {
	w := wizard.New(wizard.WithLogger(logger))
	if err := seedFromPreset(w, rootPreset); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		logger.Warn("load config failed, using defaults", zap.Error(err))
		cfg = nil
	}

	if canUseInteractiveUI(cmd.InOrStdin(), cmd.OutOrStdout()) {
		if cfg.IsFeatureEnabled(config.FeatureTUI) {
			return runTUI(w, tuiCallbacks(cfg), app.Version, logger)
		}

		return runWizardSurvey(cmd, w, highlighter(cfg))
	}

	return runWizardPlain(cmd, w)
}

func tuiCallbacks(cfg *config.Config) tui.Callbacks {
	return tui.Callbacks{
		LoadPresets: func() ([]preset.Preset, error) {
			presets, err := loadPresets()
			if err != nil {
				return nil, fmt.Errorf("load presets: %w", err)
			}

			return preset.Sorted(presets), nil
		},
		Highlight: highlighter(cfg),
	}
}

// highlighter returns the source decorator for interactive result views, or
// nil when highlighting is switched off.
func highlighter(cfg *config.Config) func(string) string {
	if !cfg.IsFeatureEnabled(config.FeatureHighlight) {
		return nil
	}

	return render.HighlightJava
}

func readTrimmedLine(reader *bufio.Reader, output io.Writer, prompt string) (string, error) {
	line, err := readLine(reader, output, prompt)
	return strings.TrimSpace(line), err
}

// readLine returns the answer without its line ending. Other whitespace is
// part of the value.
func readLine(reader *bufio.Reader, output io.Writer, prompt string) (string, error) {
	fmt.Fprint(output, prompt)
	line, err := reader.ReadString('\n')
	if err != nil && strings.TrimSpace(line) == "" {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}
