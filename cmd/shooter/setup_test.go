package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-shooter/internal/config"
)

func withFlags(t *testing.T, cfgPath, difficulty string) {
	t.Helper()
	oldCfg, oldDiff := flagConfig, flagDifficulty
	flagConfig, flagDifficulty = cfgPath, difficulty
	t.Cleanup(func() { flagConfig, flagDifficulty = oldCfg, oldDiff })
}

func TestLoadGameConfigPresets(t *testing.T) {
	logger := log.New(io.Discard)
	base := config.DefaultShooterConfig()

	withFlags(t, "", "hard")
	hard, err := loadGameConfig(logger)
	if err != nil {
		t.Fatalf("loadGameConfig() failed: %v", err)
	}
	if hard.Levels.SpawnIntervalMS[0] >= base.Levels.SpawnIntervalMS[0] {
		t.Errorf("hard spawn interval = %d, expected below %d", hard.Levels.SpawnIntervalMS[0], base.Levels.SpawnIntervalMS[0])
	}

	withFlags(t, "", "impossible")
	if _, err := loadGameConfig(logger); err == nil {
		t.Error("unknown difficulty should be rejected")
	}
}

func TestLoadGameConfigBadPath(t *testing.T) {
	withFlags(t, filepath.Join(t.TempDir(), "missing.yaml"), "")
	if _, err := loadGameConfig(log.New(io.Discard)); err == nil {
		t.Error("missing --config file should be an error")
	}
}

func TestNewLoggerToFile(t *testing.T) {
	oldFile, oldLevel := flagLogFile, flagLogLevel
	t.Cleanup(func() { flagLogFile, flagLogLevel = oldFile, oldLevel })

	flagLogFile = filepath.Join(t.TempDir(), "logs", "shooter.log")
	flagLogLevel = "debug"

	logger, closer, err := newLogger(nil)
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Info("hello", "k", 1)
	closer.Close()

	data, err := os.ReadFile(flagLogFile)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if len(data) == 0 {
		t.Error("log file is empty")
	}

	flagLogLevel = "loud"
	if _, _, err := newLogger(io.Discard); err == nil {
		t.Error("invalid log level should be rejected")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := expandHome("~/x/y"); got != filepath.Join(home, "x", "y") {
		t.Errorf("expandHome(~/x/y) = %q", got)
	}
	if got := expandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("expandHome(/abs/path) = %q, expected unchanged", got)
	}
}
