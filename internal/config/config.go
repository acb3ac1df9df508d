// Package config provides YAML-based game configuration loading and
// speed presets for the snake platform.
package config

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Speed   SpeedConfig   `yaml:"speed"`
	Variant string        `yaml:"variant"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// GridConfig defines the playfield dimensions.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	CellPx int `yaml:"cell_px"` // Cell size of the original 640×480 window; informational in a terminal
}

// SpeedConfig defines the tick rate.
type SpeedConfig struct {
	FPS int `yaml:"fps"`
}

// StorageConfig defines where scores are persisted.
type StorageConfig struct {
	HighScoreFile string `yaml:"highscore_file"`
	ScoresDB      string `yaml:"scores_db"`
}

// LogConfig defines where local play writes its log.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// SpeedPreset represents a named speed level.
type SpeedPreset string

const (
	SpeedEasy   SpeedPreset = "easy"
	SpeedNormal SpeedPreset = "normal"
	SpeedHard   SpeedPreset = "hard"
)

// FPSForPreset returns the tick rate for a speed preset.
// Unknown presets map to the normal speed.
func FPSForPreset(preset SpeedPreset) int {
	switch preset {
	case SpeedEasy:
		return 7
	case SpeedHard:
		return 15
	default:
		return 10
	}
}

// ParseSpeedPreset validates a preset name. Empty means no preset.
func ParseSpeedPreset(name string) (SpeedPreset, bool) {
	switch p := SpeedPreset(name); p {
	case SpeedEasy, SpeedNormal, SpeedHard:
		return p, true
	case "":
		return "", true
	default:
		return "", false
	}
}
