package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pursuit/internal/registry"
	"github.com/vovakirdan/tui-pursuit/internal/storage"
)

var (
	flagScoresLevel string
	flagScoresAll   bool
	flagScoresClear bool
	flagScoresStats bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for a game mode, optionally for a
single level of the current pack.

Examples:
  pursuit scores
  pursuit scores pursuit_endless
  pursuit scores --level corridors
  pursuit scores --all            # every recorded run, not just the top 10
  pursuit scores --stats          # summary for every mode
  pursuit scores pursuit --clear  # delete the mode's scores`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresLevel, "level", "", "Only show runs on this level (ID from 'pursuit list')")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every recorded run")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the mode")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show a summary of every mode")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := "pursuit"
	if len(args) == 1 {
		gameID = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresStats {
		printAllStats(store)
		return
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'pursuit list' to see available modes.")
		os.Exit(1)
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all scores for %s.\n", game.Title())
		return
	}

	title := game.Title()
	var scores []storage.ScoreEntry
	if flagScoresLevel != "" {
		key := ""
		for _, lvl := range currentPack() {
			if lvl.ID == flagScoresLevel {
				key = lvl.Fingerprint()
			}
		}
		if key == "" {
			fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", flagScoresLevel)
			os.Exit(1)
		}
		title += " / " + flagScoresLevel
		scores, err = store.TopScoresForLevel(gameID, key, 10)
	} else if flagScoresAll {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'pursuit play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-16s  %-5s  %s\n", "Rank", "Score", "Level", "Lives", "Date")
	fmt.Printf("  %-4s  %-8s  %-16s  %-5s  %s\n", "----", "-----", "-----", "-----", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-8d  %-16s  %-5d  %s\n", i+1, e.Score, e.Level, e.Lives, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  Runs: %d  Average: %.0f  Levels played: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.Levels)
	}
}

// printAllStats prints one summary line per mode that has recorded runs.
func printAllStats(store *storage.Store) {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}
	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-6s  %-8s  %-8s  %-6s  %s\n", "Mode", "Runs", "Best", "Average", "Levels", "Last played")
	fmt.Printf("  %-16s  %-6s  %-8s  %-8s  %-6s  %s\n", "----", "----", "----", "-------", "------", "-----------")
	for _, info := range registry.List() {
		gs, ok := stats[info.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-16s  %-6d  %-8d  %-8.0f  %-6d  %s\n",
			info.ID, gs.GamesCount, gs.HighScore, gs.AvgScore, gs.Levels, gs.LastPlayed.Format("2006-01-02 15:04"))
	}
}
