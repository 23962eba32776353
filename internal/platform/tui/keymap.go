package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-shooter/internal/core"
)

// DefaultHoldWindow is how long a held action stays active after its last
// key event. Terminals report presses and auto-repeats but never releases,
// so the window has to bridge the gap between repeats.
const DefaultHoldWindow = 150 * time.Millisecond

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Fire       key.Binding
	Restart    key.Binding
	Pause      key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Fire, k.Restart, k.Pause},
		{k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "play again"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// restartGuard covers the usual terminal auto-repeat delay, so a held fire
// key cannot restart a finished session.
const restartGuard = 500 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// Movement and fire are held actions: each key event refreshes a timestamp
// and the action stays active for the hold window. Everything else is a
// one-shot action delivered on the next frame only.
type KeyMapper struct {
	keys     GameKeyMap
	hold     time.Duration
	lastSeen map[core.Action]time.Time
	pending  map[core.Action]bool
	lastFire time.Time // Last fire key event, in any state
	overAt   time.Time // When the last session ended
}

// NewKeyMapper creates a key mapper with default bindings.
// A non-positive hold uses DefaultHoldWindow.
func NewKeyMapper(hold time.Duration) *KeyMapper {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &KeyMapper{
		keys:     DefaultGameKeyMap(),
		hold:     hold,
		lastSeen: make(map[core.Action]time.Time),
		pending:  make(map[core.Action]bool),
	}
}

// Keys returns the bindings, for the help view.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to an action for the given state.
// Space fires while playing and restarts after game over; esc pauses while
// playing and quits after game over.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, state core.GameState) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case msg.String() == "esc":
		if state.GameOver {
			return core.ActionQuit, true
		}
		return core.ActionPause, false
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft, false
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight, false
	case key.Matches(msg, km.keys.Up):
		return core.ActionUp, false
	case key.Matches(msg, km.keys.Down):
		return core.ActionDown, false
	case key.Matches(msg, km.keys.Fire):
		if state.GameOver {
			return core.ActionRestart, false
		}
		return core.ActionFire, false
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause, false
	}

	return core.ActionNone, false
}

// Press records an action observed at now.
func (km *KeyMapper) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionNone:
	case core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown, core.ActionFire:
		km.lastSeen[a] = now
		// Opposite directions replace each other; the terminal only
		// reports the key pressed last.
		if opp, ok := opposite(a); ok {
			delete(km.lastSeen, opp)
		}
	default:
		km.pending[a] = true
	}
}

// Frame fills frame with the actions active at now and consumes the
// pending one-shot actions.
func (km *KeyMapper) Frame(now time.Time, frame *core.InputFrame) {
	for a, seen := range km.lastSeen {
		if now.Sub(seen) < km.hold {
			frame.Set(a)
		} else {
			delete(km.lastSeen, a)
		}
	}
	for a := range km.pending {
		frame.Set(a)
		delete(km.pending, a)
	}
}

// Release drops every held action, e.g. when the game pauses or ends.
func (km *KeyMapper) Release() {
	clear(km.lastSeen)
}

// GameOver drops held actions and marks the end of the session at now.
func (km *KeyMapper) GameOver(now time.Time) {
	km.Release()
	km.overAt = now
}

// FirePressed records a fire key event at now and reports whether it is a
// fresh press. Auto-repeat of a fire key held through the end of a session
// is not: a fresh press comes more than restartGuard after both the game
// over and the previous fire key event.
func (km *KeyMapper) FirePressed(now time.Time) bool {
	guard := max(km.hold, restartGuard)
	fresh := now.Sub(km.lastFire) > guard && now.Sub(km.overAt) > guard
	km.lastFire = now
	return fresh
}

func opposite(a core.Action) (core.Action, bool) {
	switch a {
	case core.ActionLeft:
		return core.ActionRight, true
	case core.ActionRight:
		return core.ActionLeft, true
	case core.ActionUp:
		return core.ActionDown, true
	case core.ActionDown:
		return core.ActionUp, true
	}
	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
