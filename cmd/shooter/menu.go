package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-shooter/internal/games/shooter"
	"github.com/vovakirdan/space-shooter/internal/platform/tui"
	"github.com/vovakirdan/space-shooter/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends, press B to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  shooter menu
  shooter menu --fps 30
  shooter menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	a, err := setupApp(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer a.close()

	cfg := a.runtime

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(a.store, shooter.ID, flagDifficulty, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config

		switch menuResult.Choice {
		case tui.MenuScores:
			goBack, sbErr := tui.RunScoreboard(a.store, shooter.ID, a.player, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				return // User quit from scoreboard
			}

		case tui.MenuPlay:
			game, createErr := registry.Create(shooter.ID)
			if createErr != nil {
				fmt.Fprintf(os.Stderr, "Error creating game: %v\n", createErr)
				return
			}

			// New seed for each game unless pinned
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}

			backToMenu, runErr := tui.Run(game, cfg, a.options())
			if runErr != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
				return
			}
			if !backToMenu {
				return
			}

		default:
			return
		}
	}
}
