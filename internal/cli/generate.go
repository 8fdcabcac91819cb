package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andreagrandi/inheritance-sim/internal/preset"
	"github.com/andreagrandi/inheritance-sim/internal/render"
	"github.com/andreagrandi/inheritance-sim/internal/wizard"
)

type generateOptions struct {
	levels     int
	preset     string
	file       string
	sets       []string
	color      bool
	sourceOnly bool
	outputOnly bool
}

// fieldEdit is one parsed --set flag.
type fieldEdit struct {
	index int
	field wizard.Field
	value string
}

func init() {
	rootCmd.AddCommand(newGenerateCmd())
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a program without prompts",
		Long: `Generate runs the wizard from flags and prints the generated program and
its simulated output.

Classes start from the defaults for --levels, a named --preset, or a chain
file (--file, YAML, TOML or JSON). Individual fields are then overridden with
--set, where LEVEL starts at 1:

  inheritance-sim generate --levels 3 --set 1.name=Animal --set 3.body='System.out.println("woof");'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd.OutOrStdout(), opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.levels, "levels", "n", 3, "number of inheritance levels")
	flags.StringVar(&opts.preset, "preset", "", "start from a named preset")
	flags.StringVarP(&opts.file, "file", "f", "", "start from a chain file")
	flags.StringArrayVar(&opts.sets, "set", nil, "override a field as LEVEL.FIELD=VALUE (repeatable)")
	flags.BoolVar(&opts.color, "color", false, "syntax highlight the generated source")
	flags.BoolVar(&opts.sourceOnly, "source-only", false, "print only the generated source")
	flags.BoolVar(&opts.outputOnly, "output-only", false, "print only the simulated output")

	cmd.MarkFlagsMutuallyExclusive("levels", "preset", "file")
	cmd.MarkFlagsMutuallyExclusive("source-only", "output-only")

	return cmd
}

func runGenerate(output io.Writer, opts *generateOptions) error {
	edits, err := parseFieldEdits(opts.sets)
	if err != nil {
		return err
	}

	w := wizard.New(wizard.WithLogger(logger))

	switch {
	case strings.TrimSpace(opts.file) != "":
		p, err := preset.LoadFile(opts.file)
		if err != nil {
			return err
		}

		if err := w.LoadClasses(p.Classes); err != nil {
			return fmt.Errorf("load chain file %q: %w", opts.file, err)
		}
	case strings.TrimSpace(opts.preset) != "":
		if err := seedFromPreset(w, opts.preset); err != nil {
			return err
		}
	default:
		w.SetLevelInput(strconv.Itoa(opts.levels))
		if err := w.Next(); err != nil {
			return err
		}
	}

	for _, edit := range edits {
		if err := w.Edit(edit.index, edit.field, edit.value); err != nil {
			return fmt.Errorf("apply --set for level %d: %w", edit.index+1, err)
		}
	}

	if err := w.Execute(); err != nil {
		return err
	}

	source := w.Source()
	if opts.color {
		source = render.HighlightJava(source)
	}

	switch {
	case opts.sourceOnly:
		fmt.Fprintln(output, source)
	case opts.outputOnly:
		fmt.Fprintln(output, w.Output())
	default:
		printProgram(output, source, w.Output())
	}

	return nil
}

func parseFieldEdits(raw []string) ([]fieldEdit, error) {
	edits := make([]fieldEdit, 0, len(raw))

	for _, entry := range raw {
		edit, err := parseFieldEdit(entry)
		if err != nil {
			return nil, err
		}

		edits = append(edits, edit)
	}

	return edits, nil
}

// parseFieldEdit parses LEVEL.FIELD=VALUE. The value is kept verbatim and may
// be empty or contain further '=' characters.
func parseFieldEdit(raw string) (fieldEdit, error) {
	key, value, ok := strings.Cut(raw, "=")
	if !ok {
		return fieldEdit{}, fmt.Errorf("invalid --set %q: expected LEVEL.FIELD=VALUE", raw)
	}

	levelText, fieldText, ok := strings.Cut(strings.TrimSpace(key), ".")
	if !ok {
		return fieldEdit{}, fmt.Errorf("invalid --set %q: expected LEVEL.FIELD=VALUE", raw)
	}

	level, err := strconv.Atoi(levelText)
	if err != nil || level < 1 {
		return fieldEdit{}, fmt.Errorf("invalid --set %q: level must be a number from 1", raw)
	}

	field, err := wizard.ParseField(fieldText)
	if err != nil {
		return fieldEdit{}, fmt.Errorf("invalid --set %q: %w", raw, err)
	}

	return fieldEdit{index: level - 1, field: field, value: value}, nil
}
