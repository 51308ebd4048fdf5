package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCatch loads Star Catch configuration.
// Search order: customPath -> ~/.arcade/configs/catch.yaml -> ./configs/catch.yaml -> embedded default.
// Files are overlaid on the defaults, so a partial file only changes the keys it sets.
func LoadCatch(customPath string) (CatchConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CatchConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseCatch(data)
		if err != nil {
			return CatchConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("catch.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseCatch(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/catch.yaml"); err == nil {
		if cfg, err := parseCatch(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parseCatch(defaultCatchYAML)
	if err != nil {
		return DefaultCatchConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseCatch overlays YAML data on the built-in defaults and validates the result.
func parseCatch(data []byte) (CatchConfig, error) {
	cfg := DefaultCatchConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CatchConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return CatchConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyCatchPreset modifies the config based on a difficulty preset.
// Presets only change how forgiving the catcher is; spawn cadence and fall
// speed keep scaling with level the same way.
func ApplyCatchPreset(cfg *CatchConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Catcher.Width = 18
		cfg.Catcher.Tolerance = 2
	case DifficultyHard:
		cfg.Catcher.Width = 10
		cfg.Catcher.Tolerance = 1
	}
}
