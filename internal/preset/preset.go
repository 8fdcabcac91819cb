package preset

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/andreagrandi/inheritance-sim/internal/chain"
)

// MinClasses is the shortest chain a preset may describe.
const MinClasses = 2

// Preset is a named inheritance chain used to seed the class editor.
type Preset struct {
	Name        string                  `yaml:"name" toml:"name" json:"name"`
	Description string                  `yaml:"description,omitempty" toml:"description,omitempty" json:"description,omitempty"`
	Classes     []chain.ClassDefinition `yaml:"classes" toml:"classes" json:"classes"`
}

// Validate checks the fields a preset needs to seed the wizard.
// Class fields are free text and are not inspected.
func Validate(p Preset) error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return errors.New("preset name is required")
	}

	if len(p.Classes) < MinClasses {
		return fmt.Errorf("preset %q needs at least %d classes, got %d", name, MinClasses, len(p.Classes))
	}

	return nil
}

// Sorted returns the presets ordered by name.
func Sorted(presets map[string]Preset) []Preset {
	rows := make([]Preset, 0, len(presets))
	for _, p := range presets {
		rows = append(rows, p)
	}

	sort.Slice(rows, func(i int, j int) bool {
		return rows[i].Name < rows[j].Name
	})

	return rows
}

func normalizePreset(p Preset) Preset {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)

	return p
}
