package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads Snake configuration.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default.
// Fields missing from a file keep their default values.
func Load(customPath string) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(ExpandHome(customPath))
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg.normalized(), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg.normalized(), nil
			}
			cfg = DefaultSnakeConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "snake.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg.normalized(), nil
		}
		cfg = DefaultSnakeConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg.normalized(), nil
}

// ApplySpeedPreset overrides the tick rate with a preset.
func ApplySpeedPreset(cfg *SnakeConfig, preset SpeedPreset) {
	if preset == "" {
		return
	}
	cfg.Speed.FPS = FPSForPreset(preset)
}

// normalized replaces unusable values with defaults.
func (c SnakeConfig) normalized() SnakeConfig {
	def := DefaultSnakeConfig()
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		c.Grid.Width, c.Grid.Height = def.Grid.Width, def.Grid.Height
	}
	if c.Grid.CellPx <= 0 {
		c.Grid.CellPx = def.Grid.CellPx
	}
	if c.Speed.FPS <= 0 {
		c.Speed.FPS = def.Speed.FPS
	}
	if c.Variant == "" {
		c.Variant = def.Variant
	}
	return c
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}
