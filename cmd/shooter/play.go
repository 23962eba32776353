package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-shooter/internal/games/shooter"
	"github.com/vovakirdan/space-shooter/internal/platform/tui"
	"github.com/vovakirdan/space-shooter/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing Space Shooter.

Controls:
  Arrows/WASD  - Move
  Space        - Fire (hold for auto-fire)
  P/Esc        - Pause
  Space/R      - Play again (after game over)
  B            - Back to menu (paused or game over)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower meteors, fewer of them, faster laser
  normal - Default tables
  hard   - Faster meteors, more of them, slower laser
  fixed  - No progression, stays at level 1

Examples:
  shooter play
  shooter play --difficulty hard
  shooter play --seed 42 --mute
  shooter play --config ./my-shooter.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	a, err := setupApp(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(shooter.ID)
	if err != nil {
		a.close()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	_, runErr := tui.Run(game, a.runtime, a.options())

	// Close store before potential exit
	a.close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
