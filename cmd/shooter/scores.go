package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-shooter/internal/games/shooter"
	"github.com/vovakirdan/space-shooter/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresPlayer string
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores and overall statistics.

Examples:
  shooter scores
  shooter scores --limit 20
  shooter scores --player alice
  shooter scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Only show scores of this player")
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
		if err := store.ClearScores(shooter.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All scores deleted.")
		return
	}

	var scores []storage.ScoreEntry
	if flagScoresPlayer != "" {
		scores, err = store.PlayerScores(shooter.ID, flagScoresPlayer, flagScoresLimit)
	} else {
		scores, err = store.TopScores(shooter.ID, flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Space Shooter")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'shooter' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-5s  %-8s  %s\n", "Rank", "Player", "Score", "Level", "Kills", "Time", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-5s  %-8s  %s\n", "----", "------", "-----", "-----", "-----", "----", "----")

	for i, e := range scores {
		player := e.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-12s  %-8d  %-5d  %-5d  %-8s  %s\n",
			i+1, player, e.Score, e.Level, e.Kills,
			e.Duration.Round(time.Second), e.CreatedAt.Format("2006-01-02 15:04"))
	}

	// Show totals
	stats, err := store.GetGameStats(shooter.ID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Average: %.0f  Top level: %d  Meteors: %d  Play time: %s\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.BestLevel,
			stats.TotalKills, stats.PlayTime.Round(time.Second))
	}
}
