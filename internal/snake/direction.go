package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// DefaultDirection is the heading of every freshly reset chain.
const DefaultDirection = DirRight

// Opposite returns the reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the one-cell offset for d. Y grows downward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// Step returns the cell one move from p in direction d.
func (d Direction) Step(p core.Point) core.Point {
	dx, dy := d.Delta()
	return p.Add(dx, dy)
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// MarshalText lets snapshots encode directions by name.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// directionFor maps a turn command to its direction.
func directionFor(cmd core.Command) (Direction, bool) {
	switch cmd {
	case core.CmdTurnUp:
		return DirUp, true
	case core.CmdTurnDown:
		return DirDown, true
	case core.CmdTurnLeft:
		return DirLeft, true
	case core.CmdTurnRight:
		return DirRight, true
	default:
		return 0, false
	}
}
