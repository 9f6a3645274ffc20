// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, and tick scheduling.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxCatchUp caps how much elapsed time one frame may feed the accumulator.
const MaxCatchUp = 250 * time.Millisecond

// FrameMsg is sent once per render frame.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends one frame message after interval.
func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// Accumulator converts wall time between frames into whole simulation ticks.
type Accumulator struct {
	interval time.Duration
	pending  time.Duration
	last     time.Time
}

// NewAccumulator creates an accumulator emitting one tick per interval.
func NewAccumulator(interval time.Duration) *Accumulator {
	return &Accumulator{interval: interval}
}

// Advance records a frame at now and returns how many ticks are due.
// The first call only sets the reference time.
func (a *Accumulator) Advance(now time.Time) int {
	if a.last.IsZero() {
		a.last = now
		return 0
	}

	elapsed := now.Sub(a.last)
	a.last = now
	if elapsed < 0 {
		return 0
	}
	a.pending += min(elapsed, MaxCatchUp)

	ticks := int(a.pending / a.interval)
	a.pending -= time.Duration(ticks) * a.interval
	return ticks
}

// Reset drops accumulated time and the reference frame, e.g. after a pause.
func (a *Accumulator) Reset() {
	a.pending = 0
	a.last = time.Time{}
}
