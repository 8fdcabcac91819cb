package preset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/andreagrandi/inheritance-sim/internal/app"
	bundledpresets "github.com/andreagrandi/inheritance-sim/presets"
)

// Load loads presets from one or more directories.
//
// If no paths are provided, the bundled presets are loaded first and then
// these locations, in order:
//  1. presets/ relative to the executable
//  2. presets/ relative to the current working directory
//  3. ~/.config/inheritance-sim/presets
//
// When multiple files define the same preset name, the last loaded definition
// wins, so user-local presets override bundled ones. Files that fail to parse
// or validate are logged and skipped.
func Load(logger *zap.Logger, paths ...string) (map[string]Preset, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	loadBundledDefaults := len(paths) == 0

	loadPaths, err := resolvePresetPaths(paths...)
	if err != nil {
		return nil, err
	}

	presets := make(map[string]Preset)
	if loadBundledDefaults {
		if err := loadEmbeddedPresets(presets); err != nil {
			return nil, err
		}
	}

	for _, rawPath := range loadPaths {
		path, err := expandHome(rawPath)
		if err != nil {
			return nil, fmt.Errorf("expand presets path %q: %w", rawPath, err)
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}

			return nil, fmt.Errorf("read presets directory %q: %w", path, err)
		}

		for _, entry := range entries {
			if entry.IsDir() || !IsSupportedFile(entry.Name()) {
				continue
			}

			filePath := filepath.Join(path, entry.Name())
			p, err := LoadFile(filePath)
			if err != nil {
				logger.Warn("skipping preset file", zap.String("path", filePath), zap.Error(err))
				continue
			}

			logger.Debug("loaded preset", zap.String("name", p.Name), zap.String("path", filePath))
			presets[p.Name] = p
		}
	}

	return presets, nil
}

// LoadFile reads a single preset, choosing the decoder from the file extension.
func LoadFile(path string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, fmt.Errorf("read preset file %q: %w", path, err)
	}

	return Parse(path, data)
}

// Parse decodes preset data. The format is taken from the extension of name.
func Parse(name string, data []byte) (Preset, error) {
	var p Preset

	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &p); err != nil {
			return Preset{}, fmt.Errorf("parse preset file %q: %w", name, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &p); err != nil {
			return Preset{}, fmt.Errorf("parse preset file %q: %w", name, err)
		}
	case ".json", ".jsonc":
		// Comments and trailing commas are accepted in both extensions.
		if err := json.Unmarshal(jsonc.ToJSON(data), &p); err != nil {
			return Preset{}, fmt.Errorf("parse preset file %q: %w", name, err)
		}
	default:
		return Preset{}, fmt.Errorf("preset file %q has unsupported extension %q", name, filepath.Ext(name))
	}

	p = normalizePreset(p)

	if err := Validate(p); err != nil {
		return Preset{}, fmt.Errorf("validate preset file %q: %w", name, err)
	}

	return p, nil
}

// IsSupportedFile reports whether name has an extension Parse understands.
func IsSupportedFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".toml", ".json", ".jsonc":
		return true
	}

	return false
}

func loadEmbeddedPresets(presets map[string]Preset) error {
	entries, err := bundledpresets.FS.ReadDir(".")
	if err != nil {
		return fmt.Errorf("read embedded presets: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !IsSupportedFile(entry.Name()) {
			continue
		}

		filePath := entry.Name()
		data, err := bundledpresets.FS.ReadFile(filePath)
		if err != nil {
			return fmt.Errorf("read embedded preset file %q: %w", filePath, err)
		}

		p, err := Parse("embedded/"+filePath, data)
		if err != nil {
			return err
		}

		presets[p.Name] = p
	}

	return nil
}

func resolvePresetPaths(paths ...string) ([]string, error) {
	if len(paths) > 0 {
		return paths, nil
	}

	binaryPath := app.PresetsDir
	executablePath, err := os.Executable()
	if err == nil {
		binaryPath = filepath.Join(filepath.Dir(executablePath), app.PresetsDir)
	}

	loadPaths := []string{binaryPath}

	workingDirectory, err := os.Getwd()
	if err == nil {
		loadPaths = append(loadPaths, filepath.Join(workingDirectory, app.PresetsDir))
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return dedupePaths(loadPaths), nil
	}

	loadPaths = append(loadPaths, filepath.Join(homeDir, ".config", app.ConfigDir, app.PresetsDir))

	return dedupePaths(loadPaths), nil
}

func dedupePaths(paths []string) []string {
	seenPaths := make(map[string]struct{}, len(paths))
	uniquePaths := make([]string, 0, len(paths))

	for _, path := range paths {
		normalizedPath := filepath.Clean(path)
		if _, seen := seenPaths[normalizedPath]; seen {
			continue
		}

		seenPaths[normalizedPath] = struct{}{}
		uniquePaths = append(uniquePaths, path)
	}

	return uniquePaths
}

func expandHome(path string) (string, error) {
	if path == "~" {
		return os.UserHomeDir()
	}

	if !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~\\") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, path[2:]), nil
}
