package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/space-shooter/internal/assets"
	"github.com/vovakirdan/space-shooter/internal/audio"
	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/games/shooter"
	"github.com/vovakirdan/space-shooter/internal/platform/tui"
	"github.com/vovakirdan/space-shooter/internal/storage"
)

// app bundles the services shared by the interactive commands.
type app struct {
	logger  *log.Logger
	logFile io.Closer
	cfg     config.ShooterConfig
	lib     *assets.Library
	audio   audio.Player
	store   *storage.Store
	runtime core.RuntimeConfig
	player  string
}

// setupApp loads configuration and assets, opens the store and the audio
// device and registers the tuned game. Failures that leave the game playable
// are logged; only a bad --config, --difficulty or log setup is fatal.
func setupApp(logTo io.Writer) (*app, error) {
	a := &app{}

	logger, closer, err := newLogger(logTo)
	if err != nil {
		return nil, err
	}
	a.logger, a.logFile = logger, closer

	a.cfg, err = loadGameConfig(logger)
	if err != nil {
		a.close()
		return nil, err
	}

	a.lib = loadAssets(logger)
	shooter.Configure(a.cfg, a.lib)

	a.store, err = storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		a.store = nil
	}

	a.audio = openAudio(logger)
	a.runtime = runtimeConfig()
	a.player = currentPlayer()
	return a, nil
}

// options returns the session options for tui.Run.
func (a *app) options() tui.Options {
	return tui.Options{
		Store:  a.store,
		Audio:  a.audio,
		Assets: a.lib,
		Logger: a.logger,
		Player: a.player,
	}
}

func (a *app) close() {
	if a.audio != nil {
		a.audio.Close()
	}
	if a.store != nil {
		a.store.Close()
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// newLogger creates the logger. With a nil writer it logs to --log-file,
// since the game owns the terminal.
func newLogger(w io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var closer io.Closer
	if w == nil {
		path := expandHome(flagLogFile)
		if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", mkErr)
		}
		f, openErr := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "shooter",
		Level:           level,
	})
	return logger, closer, nil
}

// loadGameConfig resolves the game configuration and applies --difficulty.
func loadGameConfig(logger *log.Logger) (config.ShooterConfig, error) {
	cfg, source, err := config.LoadShooter(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("cannot load config: %w", err)
	}
	logger.Info("config loaded", "source", source)

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyShooterPreset(&cfg, preset)
		logger.Info("difficulty preset applied", "preset", preset)
	}
	return cfg, nil
}

// loadAssets loads the bundled assets, overridden by --assets when given.
func loadAssets(logger *log.Logger) *assets.Library {
	providers := assets.Layered{}
	if flagAssets != "" {
		dir, err := assets.Dir(expandHome(flagAssets))
		if err != nil {
			logger.Warn("ignoring asset directory", "dir", flagAssets, "error", err)
		} else {
			providers = append(providers, dir)
		}
	}
	providers = append(providers, assets.Embedded())
	return assets.Load(providers, logger)
}

// openAudio opens the audio device, or returns a silent player when muted
// or when no device is available.
func openAudio(logger *log.Logger) audio.Player {
	if flagMute {
		return audio.Nop{}
	}
	p, err := audio.NewSpeakerPlayer()
	if err != nil {
		logger.Warn("audio unavailable, playing silently", "error", err)
		return audio.Nop{}
	}
	return p
}

// runtimeConfig builds the runtime config from the flags and terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// currentPlayer is the name stored with local scores.
func currentPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
