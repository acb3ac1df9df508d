package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  32,
			Height: 24,
			CellPx: 20,
		},
		Speed: SpeedConfig{
			FPS: 10,
		},
		Variant: "snake",
		Storage: StorageConfig{
			HighScoreFile: "~/.snake/highscore.txt",
			ScoresDB:      "~/.snake/scores.db",
		},
		Log: LogConfig{
			File:  "~/.snake/snake.log",
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
