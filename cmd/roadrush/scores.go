package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/games/road"
	"github.com/vovakirdan/roadrush/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top scores with player, difficulty and date.

Examples:
  roadrush scores
  roadrush scores --limit 25
  roadrush scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", storage.DefaultLimit, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(road.GameID); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Leaderboard cleared.")
		return
	}

	scores, err := store.TopScores(road.GameID, flagScoresLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Road Rush")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'roadrush play' to set the first high score!")
		return
	}

	nameWidth := len("Player")
	for _, entry := range scores {
		nameWidth = max(nameWidth, len([]rune(entry.Player)))
	}

	fmt.Printf("  %-4s  %-*s  %-8s  %-10s  %s\n", "Rank", nameWidth, "Player", "Score", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-*s  %-8s  %-10s  %s\n", "----", nameWidth, "------", "-----", "----------", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-*s  %-8d  %-10s  %s\n",
			i+1,
			nameWidth, entry.Player,
			entry.Score,
			config.ParseDifficulty(entry.Difficulty).Title(),
			entry.CreatedAt.Local().Format("2006-01-02 15:04"),
		)
	}

	stats, err := store.GetGameStats(road.GameID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d (%s)  Average: %.0f\n",
			stats.GamesCount, stats.HighScore, stats.BestPlayer, stats.AvgScore)
	}
}
