package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andreagrandi/inheritance-sim/internal/chain"
	"github.com/andreagrandi/inheritance-sim/internal/wizard"
)

// runWizardPlain drives the wizard with numbered line prompts. It is used
// when stdin or stdout is not a terminal.
func runWizardPlain(cmd *cobra.Command, w *wizard.Wizard) error {
	reader := bufio.NewReader(cmd.InOrStdin())
	output := cmd.OutOrStdout()

	for {
		switch w.Screen() {
		case wizard.ScreenLevelCount:
			if err := plainLevelCount(output, reader, w); err != nil {
				return err
			}
		case wizard.ScreenClassEditor:
			if err := plainClassEditor(output, reader, w); err != nil {
				return err
			}
		case wizard.ScreenResult:
			exit, err := plainResult(output, reader, w)
			if err != nil {
				return err
			}

			if exit {
				fmt.Fprintln(output, "Goodbye.")
				return nil
			}
		}

		fmt.Fprintln(output)
	}
}

func plainLevelCount(output io.Writer, reader *bufio.Reader, w *wizard.Wizard) error {
	fmt.Fprintln(output, "Step 1/3: Number of Levels")

	prompt := "Number of levels"
	if current := w.LevelInput(); current != "" {
		prompt += " [" + current + "]"
	}

	raw, err := readTrimmedLine(reader, output, prompt+": ")
	if err != nil {
		return fmt.Errorf("read level count: %w", err)
	}

	if raw != "" {
		w.SetLevelInput(raw)
	}

	if err := w.Next(); err != nil {
		switch {
		case errors.Is(err, wizard.ErrInvalidLevelCount):
			fmt.Fprintln(output, "Enter at least 2 levels.")
			return nil
		case errors.Is(err, wizard.ErrTooManyLevels):
			fmt.Fprintf(output, "Enter at most %d levels.\n", wizard.MaxLevels)
			return nil
		}

		return err
	}

	return nil
}

func plainClassEditor(output io.Writer, reader *bufio.Reader, w *wizard.Wizard) error {
	fmt.Fprintln(output, "Step 2/3: Define Classes")
	fmt.Fprintln(output, "Press Enter to keep the value in brackets.")

	classes := w.Classes()
	for i, def := range classes {
		fmt.Fprintln(output)
		fmt.Fprintf(output, "Level %d/%d\n", i+1, len(classes))

		for _, field := range wizard.Fields {
			current := fieldValue(def, field)
			raw, err := readLine(reader, output, fmt.Sprintf("  %s [%s]: ", fieldLabels[field], current))
			if err != nil {
				return fmt.Errorf("read %s for level %d: %w", field, i+1, err)
			}

			if raw == "" {
				continue
			}

			if err := w.Edit(i, field, raw); err != nil {
				return err
			}
		}
	}

	fmt.Fprintln(output)

	for {
		fmt.Fprintln(output, "  1) Execute  2) Previous")

		choice, err := readTrimmedLine(reader, output, "Option [1-2]: ")
		if err != nil {
			return fmt.Errorf("read editor option: %w", err)
		}

		switch strings.ToLower(choice) {
		case "", "1", "execute":
			return w.Execute()
		case "2", "previous", "back":
			return w.Back()
		default:
			fmt.Fprintf(output, "Invalid option %q. Enter 1-2.\n", choice)
		}
	}
}

func plainResult(output io.Writer, reader *bufio.Reader, w *wizard.Wizard) (bool, error) {
	fmt.Fprintln(output, "Step 3/3: Result")
	fmt.Fprintln(output)
	printProgram(output, w.Source(), w.Output())
	fmt.Fprintln(output)

	for {
		fmt.Fprintln(output, "  1) Previous  2) Exit")

		choice, err := readTrimmedLine(reader, output, "Option [1-2]: ")
		if err != nil {
			return false, fmt.Errorf("read result option: %w", err)
		}

		switch strings.ToLower(choice) {
		case "1", "previous", "back":
			return false, w.Back()
		case "", "2", "exit", "q", "quit":
			return true, nil
		default:
			fmt.Fprintf(output, "Invalid option %q. Enter 1-2.\n", choice)
		}
	}
}

// printProgram writes the generated source followed by its simulated output.
func printProgram(output io.Writer, source string, simulated string) {
	fmt.Fprintln(output, "Generated Java Program:")
	fmt.Fprintln(output)
	fmt.Fprintln(output, source)
	fmt.Fprintln(output)
	fmt.Fprintln(output, "Output:")
	fmt.Fprintln(output)
	fmt.Fprintln(output, simulated)
}

func fieldValue(def chain.ClassDefinition, field wizard.Field) string {
	switch field {
	case wizard.FieldName:
		return def.Name
	case wizard.FieldMethod:
		return def.Method
	case wizard.FieldBody:
		return def.Body
	}

	return ""
}
