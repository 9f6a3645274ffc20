package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// State is the engine's top-level state.
type State int

const (
	StateWelcome State = iota
	StatePlaying
	StatePaused
	// StateDead only exists inside a tick: death and respawn are atomic,
	// so a snapshot never reports it.
	StateDead
)

func (s State) String() string {
	switch s {
	case StateWelcome:
		return "welcome"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// DeathCause records why the last reset happened.
type DeathCause int

const (
	DeathNone DeathCause = iota
	DeathWall
	DeathSelf
)

func (d DeathCause) String() string {
	switch d {
	case DeathWall:
		return "wall"
	case DeathSelf:
		return "self"
	default:
		return "none"
	}
}

// MarshalText encodes the cause by name.
func (d DeathCause) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Snapshot is an immutable copy of the simulation for renderers and tests.
type Snapshot struct {
	Tick      uint64       `yaml:"tick"`
	State     State        `yaml:"state"`
	Grid      core.Grid    `yaml:"grid"`
	Segments  []core.Point `yaml:"segments"` // Head first; owned by the snapshot
	Food      core.Point   `yaml:"food"`
	Score     int          `yaml:"score"`
	Best      int          `yaml:"best"` // Highest score this session, never persisted
	Direction Direction    `yaml:"direction"`
	Ate       bool         `yaml:"ate"` // Food was eaten on the last tick
	Deaths    int          `yaml:"deaths"`
	LastDeath DeathCause   `yaml:"last_death"`
}

// Head returns the first segment.
func (s Snapshot) Head() core.Point {
	if len(s.Segments) == 0 {
		return core.Point{}
	}
	return s.Segments[0]
}

// Len returns the chain length.
func (s Snapshot) Len() int {
	return len(s.Segments)
}

// Snapshot returns the current state. The segment slice is a fresh copy.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Tick:      e.tick,
		State:     e.state,
		Grid:      e.grid,
		Segments:  e.chain.Segments(),
		Food:      e.food,
		Score:     e.score,
		Best:      e.best,
		Direction: e.direction,
		Ate:       e.ate,
		Deaths:    e.deaths,
		LastDeath: e.lastDeath,
	}
}
