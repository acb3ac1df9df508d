// snake is the classic Snake arcade game for the terminal.
//
// Usage:
//
//	snake play [variant]     - Play a rule variant (default from config)
//	snake menu               - Pick variant and speed interactively
//	snake variants           - List rule variants
//	snake scores [variant]   - Show recorded runs
//	snake serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Moves per second (default: 10, or from config)
//	--seed <value>      - Set RNG seed for reproducible runs
//	--config <path>     - Custom config YAML
//	--db <path>         - Run history database (default: ~/.snake/scores.db)
//	--highscore <path>  - High score file (default: ~/.snake/highscore.txt)
//	--log <path>        - Log file for local play (default: ~/.snake/snake.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagConfig    string
	flagDBPath    string
	flagHighScore string
	flagLogPath   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic arcade game in your terminal",
	Long: `Guide the snake to the apples. Each apple makes it one segment longer
and scores a point. Running into yourself starts a new run; the best
score is kept in a high score file.

Available commands:
  play      - Play a rule variant directly
  menu      - Interactive variant and speed picker
  variants  - Show all rule variants
  scores    - View recorded runs
  serve     - Start SSH server for remote play

Examples:
  snake play
  snake play snake_walls --speed hard
  snake menu
  snake serve --ssh :2222
  snake scores snake`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Moves per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagHighScore, "highscore", "", "Path to high score file (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Path to log file (default from config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(variantsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
