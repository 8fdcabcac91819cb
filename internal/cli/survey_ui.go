package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	surveycore "github.com/AlecAivazis/survey/v2/core"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/andreagrandi/inheritance-sim/internal/wizard"
)

var askSurveyOne = func(prompt survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
	return survey.AskOne(prompt, response, opts...)
}

// errSurveyBack is returned by a prompt that was left with Esc.
var errSurveyBack = errors.New("back")

func canUseInteractiveUI(input io.Reader, output io.Writer) bool {
	inputFile, inputOK := input.(*os.File)
	outputFile, outputOK := output.(*os.File)
	if !inputOK || !outputOK {
		return false
	}

	return term.IsTerminal(int(inputFile.Fd())) && term.IsTerminal(int(outputFile.Fd()))
}

// surveySession asks prompts for one wizard run and tells Esc apart from
// Ctrl+C.
type surveySession struct {
	cmd         *cobra.Command
	input       *surveyEscBackInput
	highlight   func(string) string
	backPressed func() bool
}

func newSurveySession(cmd *cobra.Command, highlight func(string) string) *surveySession {
	s := &surveySession{
		cmd:         cmd,
		highlight:   highlight,
		backPressed: func() bool { return false },
	}

	if inputFile, ok := cmd.InOrStdin().(*os.File); ok {
		s.input = newSurveyEscBackInput(inputFile)
		s.backPressed = s.input.ConsumeBackPressed
	}

	return s
}

func (s *surveySession) ask(prompt survey.Prompt, response interface{}) error {
	err := askSurveyPrompt(s.cmd, s.input, prompt, response)
	if err != nil && s.backPressed() {
		return errSurveyBack
	}

	return err
}

func runWizardSurvey(cmd *cobra.Command, w *wizard.Wizard, highlight func(string) string) error {
	return newSurveySession(cmd, highlight).run(w)
}

func (s *surveySession) run(w *wizard.Wizard) error {
	output := s.cmd.OutOrStdout()

	for {
		var (
			exit bool
			err  error
		)

		switch w.Screen() {
		case wizard.ScreenLevelCount:
			exit, err = s.levelCount(w)
		case wizard.ScreenClassEditor:
			err = s.classEditor(w)
		case wizard.ScreenResult:
			exit, err = s.result(w)
		}

		if err != nil {
			return err
		}

		if exit {
			fmt.Fprintln(output, "Goodbye.")
			return nil
		}

		fmt.Fprintln(output)
	}
}

func (s *surveySession) levelCount(w *wizard.Wizard) (bool, error) {
	output := s.cmd.OutOrStdout()

	fmt.Fprintln(output, "Step 1/3: Number of Levels")
	printSurveyHint(output, "Each level extends the one before it. Esc quits.")

	raw := ""
	prompt := &survey.Input{
		Message: "Number of levels",
		Default: w.LevelInput(),
	}

	if err := s.ask(prompt, &raw); err != nil {
		if errors.Is(err, errSurveyBack) {
			return true, nil
		}

		return false, fmt.Errorf("read level count: %w", err)
	}

	w.SetLevelInput(strings.TrimSpace(raw))

	if err := w.Next(); err != nil {
		switch {
		case errors.Is(err, wizard.ErrInvalidLevelCount):
			fmt.Fprintln(output, "Enter at least 2 levels.")
			return false, nil
		case errors.Is(err, wizard.ErrTooManyLevels):
			fmt.Fprintf(output, "Enter at most %d levels.\n", wizard.MaxLevels)
			return false, nil
		}

		return false, err
	}

	return false, nil
}

func (s *surveySession) classEditor(w *wizard.Wizard) error {
	output := s.cmd.OutOrStdout()

	fmt.Fprintln(output, "Step 2/3: Define Classes")
	printSurveyHint(output, "Enter keeps the default. Esc goes back to the level count.")

	classes := w.Classes()
	for i, def := range classes {
		fmt.Fprintln(output)
		fmt.Fprintf(output, "Level %d/%d\n", i+1, len(classes))

		for _, field := range wizard.Fields {
			value := ""
			prompt := &survey.Input{
				Message: fieldLabels[field],
				Default: fieldValue(def, field),
			}

			if err := s.ask(prompt, &value); err != nil {
				if errors.Is(err, errSurveyBack) {
					return w.Back()
				}

				return fmt.Errorf("read %s for level %d: %w", field, i+1, err)
			}

			if err := w.Edit(i, field, value); err != nil {
				return err
			}
		}
	}

	fmt.Fprintln(output)
	printSurveyHint(output, "Use Up/Down arrows, Enter to select.")

	choice := ""
	prompt := &survey.Select{
		Message:  "Ready?",
		Options:  []string{"Execute", "Previous"},
		Default:  "Execute",
		PageSize: 2,
	}

	if err := s.ask(prompt, &choice); err != nil {
		if errors.Is(err, errSurveyBack) {
			return w.Back()
		}

		return fmt.Errorf("read editor option: %w", err)
	}

	if choice == "Previous" {
		return w.Back()
	}

	return w.Execute()
}

func (s *surveySession) result(w *wizard.Wizard) (bool, error) {
	output := s.cmd.OutOrStdout()

	source := w.Source()
	if s.highlight != nil {
		source = s.highlight(source)
	}

	fmt.Fprintln(output, "Step 3/3: Result")
	fmt.Fprintln(output)
	printProgram(output, source, w.Output())
	fmt.Fprintln(output)
	printSurveyHint(output, "Use Up/Down arrows, Enter to select. Esc goes back.")

	choice := ""
	prompt := &survey.Select{
		Message:  "What next?",
		Options:  []string{"Previous", "Exit"},
		Default:  "Exit",
		PageSize: 2,
	}

	if err := s.ask(prompt, &choice); err != nil {
		if errors.Is(err, errSurveyBack) {
			return false, w.Back()
		}

		return false, fmt.Errorf("read result option: %w", err)
	}

	if choice == "Previous" {
		return false, w.Back()
	}

	return true, nil
}

func askSurveyPrompt(cmd *cobra.Command, input *surveyEscBackInput, prompt survey.Prompt, response interface{}) error {
	colorEnabled := surveyColorsEnabled()
	previousDisableColor := surveycore.DisableColor
	surveycore.DisableColor = !colorEnabled
	defer func() {
		surveycore.DisableColor = previousDisableColor
	}()

	questionFormat := "default"
	selectFocusFormat := "default"
	if colorEnabled {
		questionFormat = "cyan"
		selectFocusFormat = "cyan"
	}

	options := []survey.AskOpt{survey.WithIcons(func(icons *survey.IconSet) {
		icons.Question.Text = ">"
		icons.Question.Format = questionFormat
		icons.SelectFocus.Text = ">"
		icons.SelectFocus.Format = selectFocusFormat
	})}

	outputFile, outputOK := cmd.OutOrStdout().(*os.File)
	if input != nil && outputOK {
		options = append(options, survey.WithStdio(input, outputFile, outputFile))
	}

	return askSurveyOne(prompt, response, options...)
}

func surveyColorsEnabled() bool {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		return false
	}

	termValue := strings.TrimSpace(strings.ToLower(os.Getenv("TERM")))
	return termValue != "dumb"
}

func printSurveyHint(output io.Writer, message string) {
	fmt.Fprintln(output, message)
}
