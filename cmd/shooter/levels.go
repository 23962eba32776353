package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-shooter/internal/config"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the difficulty table",
	Long: `Shows the score needed for each level, the meteor spawn interval,
the laser cooldown and the meteor speed multiplier, after applying
--config and --difficulty.

Examples:
  shooter levels
  shooter levels --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	// Only problems are worth printing next to the table
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "shooter", Level: log.WarnLevel})

	cfg, err := loadGameConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printLevels(cfg.Levels)
}

func printLevels(l config.LevelsConfig) {
	fmt.Println("Levels:")
	fmt.Println()

	fmt.Printf("  %-5s  %-9s  %-10s  %-9s  %s\n", "Level", "Score", "Spawn", "Cooldown", "Speed")
	fmt.Printf("  %-5s  %-9s  %-10s  %-9s  %s\n", "-----", "-----", "-----", "--------", "-----")

	for level := 1; level <= l.MaxLevel(); level++ {
		fmt.Printf("  %-5d  %-9s  %-10s  %-9s  x%.2f\n",
			level,
			fmt.Sprintf("%d+", l.Thresholds[level-1]),
			l.SpawnInterval(level),
			l.Cooldown(level),
			l.SpeedMultiplier(level),
		)
	}

	fmt.Println()
	fmt.Println("Levels past the last table entry keep its interval and cooldown.")
}
