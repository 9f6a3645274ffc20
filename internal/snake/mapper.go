package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Intent is what the input mapper decided a command means.
type Intent int

const (
	IntentIgnore Intent = iota
	IntentTurn
	IntentTogglePause
	IntentQuit
	IntentStart
)

// InputMapper filters commands between ticks.
//
// A turn is accepted only if no turn has been accepted since the last tick
// and it is not the reverse of the current heading. Pause and quit are
// accepted at any time, any number of times.
type InputMapper struct {
	pending Direction
	turned  bool
}

// Map classifies cmd against the current heading. An accepted turn is held
// until TakeTurn. AnyKey maps to IntentStart and the engine decides whether
// it matters.
func (m *InputMapper) Map(cmd core.Command, current Direction) Intent {
	switch cmd {
	case core.CmdTogglePause:
		return IntentTogglePause
	case core.CmdQuit:
		return IntentQuit
	case core.CmdAnyKey:
		return IntentStart
	}

	dir, ok := directionFor(cmd)
	if !ok {
		return IntentIgnore
	}
	if m.turned || dir == current.Opposite() {
		return IntentIgnore
	}
	m.pending = dir
	m.turned = true
	return IntentTurn
}

// TakeTurn returns the accepted turn, if any, and opens the gate for the next tick.
func (m *InputMapper) TakeTurn() (Direction, bool) {
	dir, ok := m.pending, m.turned
	m.turned = false
	return dir, ok
}

// Reset drops any pending turn.
func (m *InputMapper) Reset() {
	m.turned = false
}
