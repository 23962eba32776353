package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-shooter/internal/config"
)

var flagConfigDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the game configuration as YAML after applying --config and
--difficulty. The source is reported on stderr, so the output can be
redirected into a file and edited.

Examples:
  shooter config
  shooter config --difficulty easy
  shooter config --default > ~/.shooter/configs/shooter.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the bundled default configuration")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigDefault {
		//nolint:errcheck // Nothing left to report to
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "shooter"})

	cfg, err := loadGameConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	//nolint:errcheck // Nothing left to report to
	os.Stdout.Write(data)
}
