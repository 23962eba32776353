// shooter is a terminal space shooter: fly a ship, shoot falling meteors and
// survive while the game speeds up.
//
// Usage:
//
//	shooter                  - Play (same as "shooter play")
//	shooter play             - Play a game
//	shooter menu             - Start menu with play and high scores
//	shooter scores           - Show high scores
//	shooter levels           - Show the difficulty table
//	shooter config           - Print the effective configuration
//	shooter serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.shooter/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--assets <dir>        - Directory overriding bundled sprites and sounds
//	--mute                - Disable sound
//	--log-file <path>     - Log destination (default: ~/.shooter/shooter.log)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagAssets     string
	flagMute       bool
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Space Shooter - shoot meteors in your terminal",
	Long: `Space Shooter is a terminal arcade game. Fly your ship, shoot the
falling meteors and survive as long as you can. Every few hundred points the
meteors come faster and your laser recharges quicker.

Available commands:
  play     - Play a game (default)
  menu     - Menu with play and high scores
  scores   - View high scores
  levels   - Show the difficulty table
  config   - Print the effective configuration
  serve    - Start SSH server for remote play

Examples:
  shooter
  shooter --difficulty hard
  shooter menu
  shooter serve --ssh :2222
  shooter scores`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.shooter/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Directory with sprites/ and sounds/ overriding the bundled assets")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.shooter/shooter.log", "Log file path")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}
