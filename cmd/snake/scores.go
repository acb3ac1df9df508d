package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show recorded runs",
	Long: `Without arguments, shows the stored high score and a summary per variant.
With a variant, displays its top 10 runs.

Examples:
  snake scores
  snake scores snake_walls
  snake scores snake_wrap --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded runs of the given variant")
}

func runScores(_ *cobra.Command, args []string) {
	cfg, err := loadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(args) > 0 && !registry.Exists(args[0]) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'snake variants' to see available variants.")
		os.Exit(1)
	}
	if flagClear && len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: --clear needs a variant")
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.ScoresDB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		high, err := storage.NewHighScoreFile(cfg.Storage.HighScoreFile).Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		if err := printSummary(store, high); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}
		return
	}

	gameID := args[0]
	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared recorded runs for %s.\n", gameID)
		return
	}

	if err := printTopScores(store, gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func printSummary(store *storage.Store, high int) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	fmt.Printf("High score: %d\n", high)
	fmt.Println()

	fmt.Printf("  %-12s  %-6s  %-6s  %s\n", "Variant", "Runs", "Best", "Last played")
	fmt.Printf("  %-12s  %-6s  %-6s  %s\n", "-------", "----", "----", "-----------")

	for _, info := range registry.List() {
		s, ok := stats[info.ID]
		if !ok {
			fmt.Printf("  %-12s  %-6d  %-6s  %s\n", info.ID, 0, "-", "-")
			continue
		}
		fmt.Printf("  %-12s  %-6d  %-6d  %s\n", info.ID, s.GamesCount, s.HighScore,
			s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func printTopScores(store *storage.Store, gameID string) error {
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("Top runs - %s\n", gameID)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'snake play %s' to set the first score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Apples", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "------", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	highScore, err := store.HighScore(gameID)
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
	return nil
}
