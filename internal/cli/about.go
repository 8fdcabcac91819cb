package cli

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/andreagrandi/inheritance-sim/internal/app"
	"github.com/andreagrandi/inheritance-sim/internal/render"
)

//go:embed about.md
var aboutText string

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "about",
		Short: "Explain multilevel inheritance and how the simulator works",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printAbout(cmd.OutOrStdout())
			return nil
		},
	})
}

func printAbout(output io.Writer) {
	fmt.Fprint(output, render.Markdown(aboutText, terminalWidth(output)))
	fmt.Fprintf(output, "  %s\n", app.New().Credits())
}

// terminalWidth returns the width of output when it is a terminal, or 0.
func terminalWidth(output io.Writer) int {
	file, ok := output.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return 0
	}

	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil {
		return 0
	}

	return width
}
