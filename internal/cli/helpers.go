package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/andreagrandi/inheritance-sim/internal/preset"
	"github.com/andreagrandi/inheritance-sim/internal/wizard"
)

var loadPresets = func() (map[string]preset.Preset, error) {
	return preset.Load(logger)
}

func findPreset(name string) (preset.Preset, error) {
	presets, err := loadPresets()
	if err != nil {
		return preset.Preset{}, fmt.Errorf("load presets: %w", err)
	}

	trimmed := strings.TrimSpace(name)
	if p, ok := presets[trimmed]; ok {
		return p, nil
	}

	names := make([]string, 0, len(presets))
	for presetName := range presets {
		names = append(names, presetName)
	}
	sort.Strings(names)

	return preset.Preset{}, fmt.Errorf("unknown preset %q (available: %s)", trimmed, strings.Join(names, ", "))
}

// seedFromPreset opens the class editor on the named preset. An empty name
// leaves the wizard on the level count screen.
func seedFromPreset(w *wizard.Wizard, name string) error {
	if strings.TrimSpace(name) == "" {
		return nil
	}

	p, err := findPreset(name)
	if err != nil {
		return err
	}

	if err := w.LoadClasses(p.Classes); err != nil {
		return fmt.Errorf("load preset %q: %w", p.Name, err)
	}

	return nil
}

var fieldLabels = map[wizard.Field]string{
	wizard.FieldName:   "Class name",
	wizard.FieldMethod: "Method name",
	wizard.FieldBody:   "Method body",
}
