package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/platform/tcellui"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var (
	flagSpeed    string
	flagFrontend string
	flagSound    bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play snake",
	Long: `Start playing the given rule variant, or the one from the config file.

Controls:
  Arrows/WASD/hjkl  - Turn
  P/Space           - Pause
  R                 - Restart the run
  Ctrl+S            - Save a text screenshot (tea frontend)
  Q/Ctrl+C          - Quit

Speed options:
  easy    -  7 moves per second
  normal  - 10 moves per second
  hard    - 15 moves per second

Frontends:
  tea     - Bubble Tea (default), sets the window title
  tcell   - Direct tcell screen with a fixed-rate ticker loop

Examples:
  snake play
  snake play snake_walls
  snake play snake_wrap --speed hard
  snake play --frontend tcell --sound
  snake play --config ./my-snake.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSpeed, "speed", "", "Speed preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagFrontend, "frontend", "tea", "Frontend: tea or tcell")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
}

func runPlay(_ *cobra.Command, args []string) {
	cfg, err := loadConfig(flagSpeed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gameID := cfg.Variant
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'snake variants' to see available variants.")
		os.Exit(1)
	}
	if flagFrontend != "tea" && flagFrontend != "tcell" {
		fmt.Fprintf(os.Stderr, "Error: unknown frontend %q (use tea or tcell)\n", flagFrontend)
		os.Exit(1)
	}

	logger, logFile := newFileLogger(cfg.Log)
	defer logFile.Close()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore(cfg, logger)
	handler := newHandler(cfg, store, logger)

	if flagSound {
		player := audio.NewPlayer(0.5)
		if err := player.Init(); err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			handler.Sounds = player
			defer player.Close()
		}
	}

	rt := runtimeConfig(cfg)
	logger.Info("starting", "variant", gameID, "fps", rt.TickRate, "frontend", flagFrontend,
		"grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height))

	var runErr error
	switch flagFrontend {
	case "tcell":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		runErr = tcellui.Run(ctx, game, handler, rt)
		stop()
	default:
		runErr = tui.Run(game, handler, rt)
	}

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game failed", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
