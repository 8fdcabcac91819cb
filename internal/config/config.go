package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/andreagrandi/inheritance-sim/internal/app"
)

const configFileName = "config.json"

const (
	FeatureTUI       = "tui"
	FeatureHighlight = "highlight"
)

// FeatureRegistry defines all known feature flags and their defaults.
var FeatureRegistry = map[string]FeatureDefinition{
	FeatureTUI: {
		Name:        FeatureTUI,
		Description: "Full-screen Bubble Tea terminal UI",
		Default:     true,
	},
	FeatureHighlight: {
		Name:        FeatureHighlight,
		Description: "Syntax highlighting of the generated program",
		Default:     true,
	},
}

// FeatureDefinition describes a feature flag.
type FeatureDefinition struct {
	Name        string
	Description string
	Default     bool
}

// FeatureStatus describes the current state of a feature flag.
type FeatureStatus struct {
	Name        string
	Description string
	Enabled     bool
}

// Config holds the simulator's local settings.
// Keys it does not know about are kept and written back untouched.
type Config struct {
	path     string
	raw      map[string]json.RawMessage
	features map[string]bool
}

// Load reads the config from the default path.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom reads the config from path, or from
// ~/.config/inheritance-sim/config.json when path is empty.
// A missing file yields the defaults. Comments and trailing commas are allowed.
func LoadFrom(path string) (*Config, error) {
	resolved := strings.TrimSpace(path)
	if resolved == "" {
		resolved = DefaultPath()
	}

	cfg := &Config{
		path:     resolved,
		raw:      make(map[string]json.RawMessage),
		features: make(map[string]bool),
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}

		return nil, fmt.Errorf("read config file %q: %w", resolved, err)
	}

	if err := json.Unmarshal(jsonc.ToJSON(data), &cfg.raw); err != nil {
		return nil, fmt.Errorf("parse config file %q: %w", resolved, err)
	}

	if featuresRaw, ok := cfg.raw["features"]; ok {
		if err := json.Unmarshal(featuresRaw, &cfg.features); err != nil {
			return nil, fmt.Errorf("parse features in config file %q: %w", resolved, err)
		}
	}

	return cfg, nil
}

// Path returns the file the config is read from and saved to.
func (c *Config) Path() string {
	if c == nil {
		return ""
	}

	return c.path
}

// IsFeatureEnabled returns whether a feature flag is enabled.
//
// Unset flags fall back to the registry default; unknown names are false.
func (c *Config) IsFeatureEnabled(name string) bool {
	trimmed := strings.TrimSpace(name)

	def, known := FeatureRegistry[trimmed]
	if !known {
		return false
	}

	if c != nil {
		if val, ok := c.features[trimmed]; ok {
			return val
		}
	}

	return def.Default
}

// SetFeature sets a feature flag value and persists the config.
func (c *Config) SetFeature(name string, enabled bool) error {
	if c == nil {
		return errors.New("config is nil")
	}

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errors.New("feature name is required")
	}

	if _, ok := FeatureRegistry[trimmed]; !ok {
		return fmt.Errorf("unknown feature %q", trimmed)
	}

	c.features[trimmed] = enabled

	return c.save()
}

// Features returns every known feature with its status, sorted by name.
func (c *Config) Features() []FeatureStatus {
	result := make([]FeatureStatus, 0, len(FeatureRegistry))

	for _, def := range FeatureRegistry {
		result = append(result, FeatureStatus{
			Name:        def.Name,
			Description: def.Description,
			Enabled:     c.IsFeatureEnabled(def.Name),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

func (c *Config) save() error {
	configDir := filepath.Dir(c.path)
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return fmt.Errorf("create config directory %q: %w", configDir, err)
	}

	featuresJSON, err := json.Marshal(c.features)
	if err != nil {
		return fmt.Errorf("marshal features: %w", err)
	}

	c.raw["features"] = featuresJSON

	data, err := json.MarshalIndent(c.raw, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	data = append(data, '\n')

	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("write config file %q: %w", c.path, err)
	}

	return nil
}

// DefaultPath returns ~/.config/inheritance-sim/config.json, or a relative
// path when the home directory cannot be resolved.
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", app.ConfigDir, configFileName)
	}

	return filepath.Join(homeDir, ".config", app.ConfigDir, configFileName)
}
