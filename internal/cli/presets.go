package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andreagrandi/inheritance-sim/internal/preset"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "presets",
		Short: "List preset inheritance chains",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			presets, err := loadPresets()
			if err != nil {
				return fmt.Errorf("load presets: %w", err)
			}

			printPresetsList(cmd.OutOrStdout(), preset.Sorted(presets))
			return nil
		},
	})
}

func printPresetsList(output io.Writer, presets []preset.Preset) {
	fmt.Fprintln(output, "Available presets:")
	fmt.Fprintln(output)

	if len(presets) == 0 {
		fmt.Fprintln(output, "  (none)")
		return
	}

	maxNameWidth := 0
	for _, p := range presets {
		maxNameWidth = max(maxNameWidth, len(p.Name))
	}

	for _, p := range presets {
		names := make([]string, 0, len(p.Classes))
		for _, def := range p.Classes {
			names = append(names, def.Name)
		}

		fmt.Fprintf(output, "  %-*s  %d levels  %s\n", maxNameWidth, p.Name, len(p.Classes), strings.Join(names, " -> "))

		if description := strings.TrimSpace(p.Description); description != "" {
			fmt.Fprintf(output, "  %-*s  %s\n", maxNameWidth, "", description)
		}
	}
}
