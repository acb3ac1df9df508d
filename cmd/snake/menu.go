package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant and speed interactively",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant and then a
speed. Quitting a game returns to the menu; Tab opens the scoreboard.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Scoreboard
  Esc          - Back
  Q            - Quit

Examples:
  snake menu
  snake menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logFile := newFileLogger(cfg.Log)
	defer logFile.Close()

	store := openStore(cfg, logger)
	handler := newHandler(cfg, store, logger)
	rt := runtimeConfig(cfg)

	for {
		menuResult, err := tui.RunMenu(rt)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		rt = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			// Unreadable file shows as 0
			high, _ := handler.HighScores.Load()
			goBack, sbErr := tui.RunScoreboard(store, high, rt.ScreenW, rt.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		sel := menuResult.Selection
		game, err := registry.Create(sel.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		gameCfg := rt
		gameCfg.TickRate = config.FPSForPreset(sel.Speed)
		if flagSeed == 0 {
			gameCfg.Seed = time.Now().UnixNano()
		}

		logger.Info("starting", "variant", sel.GameID, "speed", sel.Speed)
		if err := tui.Run(game, handler, gameCfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
