package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move left (held)
	ActionRight          // D, Right arrow - move right (held)
	ActionUp             // W, Up arrow - move up (held)
	ActionDown           // S, Down arrow - move down (held)
	ActionFire           // Space - fire laser (held)
	ActionRestart        // R, Space after game over - start a fresh session
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionFire:
		return "Fire"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were active this frame.
	// Movement and fire are "held" actions; the rest are one-shot.
	Actions map[Action]bool

	// Elapsed is the wall time since the previous tick, measured by the platform.
	Elapsed time.Duration
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Elapsed = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Elapsed = f.Elapsed
	return clone
}

// MoveAxis returns the raw movement direction: each component is -1, 0 or 1.
// Opposite keys held together cancel out.
func (f InputFrame) MoveAxis() Vec2 {
	var v Vec2
	if f.Has(ActionRight) {
		v.X++
	}
	if f.Has(ActionLeft) {
		v.X--
	}
	if f.Has(ActionDown) {
		v.Y++
	}
	if f.Has(ActionUp) {
		v.Y--
	}
	return v
}

// Delta returns Elapsed clamped to [0, limit].
// A non-positive limit disables the upper clamp.
func (f InputFrame) Delta(limit time.Duration) time.Duration {
	if f.Elapsed < 0 {
		return 0
	}
	if limit > 0 && f.Elapsed > limit {
		return limit
	}
	return f.Elapsed
}
