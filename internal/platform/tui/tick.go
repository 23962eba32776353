// Package tui provides the Bubble Tea integration for the shooter.
// It handles the terminal UI loop, input mapping, sound and score saving.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg struct {
	At time.Time
	// loop identifies the tick loop that sent the message. A model only
	// reacts to its own loop, so a tick still in flight from a finished
	// game cannot start a second loop in the next one.
	loop uint64
}

var tickLoops atomic.Uint64

// newTickLoop returns a fresh tick loop id.
func newTickLoop() uint64 {
	return tickLoops.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, loop: loop}
	})
}

// frameClock measures the wall time between ticks.
type frameClock struct {
	last time.Time
}

// Elapsed returns the time since the previous call. The first call, and any
// call after a pause in ticking, returns zero.
func (c *frameClock) Elapsed(now time.Time) time.Duration {
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	d := now.Sub(c.last)
	c.last = now
	return max(d, 0)
}

// Reset forgets the previous tick.
func (c *frameClock) Reset() {
	c.last = time.Time{}
}
