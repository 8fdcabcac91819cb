package tui

import (
	"strconv"
	"strings"

	"github.com/andreagrandi/inheritance-sim/internal/wizard"
)

// BreadcrumbStep represents one step in the wizard breadcrumb.
type BreadcrumbStep struct {
	Label     string // step name shown when active or future (e.g., "Classes")
	Value     string // shown instead of Label when completed (e.g., "3 levels")
	Active    bool
	Completed bool
	Visible   bool
}

// RenderBreadcrumb renders the breadcrumb bar from a list of steps.
//
// Completed steps show their Value (or Label if Value is empty) in green
// with a check mark. The active step is bold cyan. Future steps are dim.
// Invisible steps are omitted entirely.
func RenderBreadcrumb(theme Theme, steps []BreadcrumbStep) string {
	var parts []string

	for _, step := range steps {
		if !step.Visible {
			continue
		}

		switch {
		case step.Completed:
			display := step.Label
			if step.Value != "" {
				display = step.Value
			}

			parts = append(parts, theme.Completed.Render(display+" ✓"))
		case step.Active:
			parts = append(parts, theme.Active.Render(step.Label))
		default:
			parts = append(parts, theme.Dim.Render(step.Label))
		}
	}

	if len(parts) == 0 {
		return ""
	}

	return strings.Join(parts, theme.BreadSep.Render(" › "))
}

// wizardSteps derives the Levels › Classes › Result breadcrumb from the
// wizard's current screen.
func wizardSteps(w *wizard.Wizard) []BreadcrumbStep {
	current := w.Screen()
	classes := w.Classes()

	levelsValue := ""
	classesValue := ""
	if len(classes) > 0 {
		levelsValue = strconv.Itoa(len(classes)) + " levels"
		classesValue = classes[len(classes)-1].Name
	}

	return []BreadcrumbStep{
		{
			Label:     "Levels",
			Value:     levelsValue,
			Active:    current == wizard.ScreenLevelCount,
			Completed: current > wizard.ScreenLevelCount,
			Visible:   true,
		},
		{
			Label:     "Classes",
			Value:     classesValue,
			Active:    current == wizard.ScreenClassEditor,
			Completed: current > wizard.ScreenClassEditor,
			Visible:   true,
		},
		{
			Label:   "Result",
			Active:  current == wizard.ScreenResult,
			Visible: true,
		},
	}
}
