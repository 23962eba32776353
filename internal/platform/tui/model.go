package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-shooter/internal/assets"
	"github.com/vovakirdan/space-shooter/internal/audio"
	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/registry"
	"github.com/vovakirdan/space-shooter/internal/storage"
)

// Options carries the services a game session uses. Every field is optional.
type Options struct {
	Store      *storage.Store
	Audio      audio.Player
	Assets     *assets.Library
	Logger     *log.Logger
	Player     string        // Name stored with scores
	HoldWindow time.Duration // See DefaultHoldWindow
	// ScreenshotDir is where ctrl+s writes the screen.
	// Defaults to ~/.shooter/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keys       *KeyMapper
	clock      *frameClock
	loop       uint64
	sounds     *soundboard
	inputFrame core.InputFrame
	gameState  core.GameState
	started    time.Time
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		keys:       NewKeyMapper(opts.HoldWindow),
		clock:      &frameClock{},
		loop:       newTickLoop(),
		sounds:     newSoundboard(opts.Audio, opts.Assets),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	// Start the tick loop
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.loop != m.loop {
			return m, nil
		}
		return m.handleTick(msg.At)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.opts.Logger.Warn("screenshot failed", "error", err)
		} else {
			m.opts.Logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg, m.gameState)
	if isQuit {
		m.sounds.Stop()
		m.quitting = true
		return m, tea.Quit
	}

	// B returns to the menu once the session has ended or is paused.
	if msg.String() == "b" && (m.gameState.GameOver || m.gameState.Paused) {
		m.sounds.Stop()
		m.backToMenu = true
		return m, nil
	}

	// Space restarts only on a fresh press; R always does
	if key.Matches(msg, m.keys.Keys().Fire) && !m.keys.FirePressed(now) && action == core.ActionRestart {
		action = core.ActionNone
	}

	m.keys.Press(action, now)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}

	// Games that cannot adapt start over
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.started = time.Time{}
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}
	if m.started.IsZero() {
		m.started = now
	}

	m.inputFrame.Elapsed = m.clock.Elapsed(now)
	m.keys.Frame(now, &m.inputFrame)

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	m.sounds.Events(result.Events)
	m.sounds.Music(m.gameState)

	switch {
	case m.gameState.GameOver && !m.scoreSaved:
		m.keys.GameOver(now)
		m.recordGameOver(now)
		m.scoreSaved = true
	case wasOver && !m.gameState.GameOver:
		// Restarted
		m.scoreSaved = false
		m.started = now
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate, m.loop)
}

// recordGameOver logs the finished session and saves its score once.
func (m *Model) recordGameOver(now time.Time) {
	entry := storage.ScoreEntry{
		GameID: m.game.ID(),
		Player: m.opts.Player,
		Score:  m.gameState.Score,
		Level:  m.gameState.Level,
	}
	if stats, ok := m.game.(registry.Stats); ok {
		entry.Kills = stats.Kills()
		entry.Duration = stats.Survived()
	} else {
		entry.Duration = now.Sub(m.started)
	}

	m.opts.Logger.Info("game over",
		"player", entry.Player,
		"score", entry.Score,
		"level", entry.Level,
		"kills", entry.Kills,
		"duration", entry.Duration.Round(time.Millisecond),
	)

	if m.opts.Store == nil || entry.Score <= 0 {
		return
	}
	if _, err := m.opts.Store.SaveScore(entry); err != nil {
		// Best-effort save, game continues regardless
		m.opts.Logger.Warn("could not save score", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() (string, error) {
	// Render current state
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".shooter", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	// Render game to screen buffer
	m.screen.Clear()
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game. It returns true if
// the player asked to go back to the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := finalModel.(Model); ok {
		m.sounds.Stop()
		return m.BackToMenu(), nil
	}
	return false, nil
}
