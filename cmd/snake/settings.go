package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/events"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// loadConfig reads the config file and applies command line overrides.
// It also sizes the playfield for games created afterwards.
func loadConfig(speed string) (config.SnakeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, ok := config.ParseSpeedPreset(speed)
	if !ok {
		return cfg, fmt.Errorf("unknown speed %q (use easy, normal or hard)", speed)
	}
	config.ApplySpeedPreset(&cfg, preset)

	if flagFPS > 0 {
		cfg.Speed.FPS = flagFPS
	}
	if flagDBPath != "" {
		cfg.Storage.ScoresDB = flagDBPath
	}
	if flagHighScore != "" {
		cfg.Storage.HighScoreFile = flagHighScore
	}
	if flagLogPath != "" {
		cfg.Log.File = flagLogPath
	}

	snake.SetGridSize(cfg.Grid.Width, cfg.Grid.Height)
	return cfg, nil
}

// runtimeConfig builds the per-game config from the terminal size.
func runtimeConfig(cfg config.SnakeConfig) core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Speed.FPS,
		Seed:     seed,
	}
}

// newFileLogger logs to the configured file, since the terminal belongs to
// the game. If the file cannot be opened logging is discarded.
func newFileLogger(cfg config.LogConfig) (*log.Logger, io.Closer) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}

	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	}

	if cfg.File == "" {
		return log.NewWithOptions(io.Discard, opts), io.NopCloser(nil)
	}

	path := config.ExpandHome(cfg.File)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600); err == nil {
			return log.NewWithOptions(f, opts), f
		}
	}

	fmt.Fprintf(os.Stderr, "Warning: could not open log file %s, logging disabled\n", path)
	return log.NewWithOptions(io.Discard, opts), io.NopCloser(nil)
}

// openStore opens the run history. The game works without it.
func openStore(cfg config.SnakeConfig, logger *log.Logger) *storage.Store {
	store, err := storage.Open(cfg.Storage.ScoresDB)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return nil
	}
	return store
}

// newHandler wires persistence for a local game. store may be nil.
func newHandler(cfg config.SnakeConfig, store *storage.Store, logger *log.Logger) *events.Handler {
	h := &events.Handler{
		HighScores: storage.NewHighScoreFile(cfg.Storage.HighScoreFile),
		Logger:     logger,
	}
	if store != nil {
		h.Recorder = store
	}
	return h
}
