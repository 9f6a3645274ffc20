package core

// Command is a discrete game command, abstracted from physical key presses.
// The platform maps keys to commands; the engine never sees raw keys.
type Command int

const (
	CmdNone        Command = iota
	CmdTurnUp              // Up arrow, W, K
	CmdTurnDown            // Down arrow, S, J
	CmdTurnLeft            // Left arrow, A, H
	CmdTurnRight           // Right arrow, D, L
	CmdTogglePause         // Space, P
	CmdQuit                // Esc, Q, Ctrl+C
	CmdAnyKey              // Any other key; only meaningful on the welcome screen
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CmdNone:
		return "None"
	case CmdTurnUp:
		return "TurnUp"
	case CmdTurnDown:
		return "TurnDown"
	case CmdTurnLeft:
		return "TurnLeft"
	case CmdTurnRight:
		return "TurnRight"
	case CmdTogglePause:
		return "TogglePause"
	case CmdQuit:
		return "Quit"
	case CmdAnyKey:
		return "AnyKey"
	default:
		return "Unknown"
	}
}

// IsTurn reports whether c is one of the four direction commands.
func (c Command) IsTurn() bool {
	return c >= CmdTurnUp && c <= CmdTurnRight
}

// DefaultQueueCapacity is the command queue size used when none is configured.
const DefaultQueueCapacity = 16

// CommandQueue is a bounded FIFO of commands posted between frames.
// Push never blocks: when the queue is full the newest command is dropped.
// It is not safe for concurrent use; the frame loop owns it.
type CommandQueue struct {
	buf     []Command
	head    int
	size    int
	dropped int
}

// NewCommandQueue creates a queue holding at most capacity commands.
func NewCommandQueue(capacity int) *CommandQueue {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &CommandQueue{buf: make([]Command, capacity)}
}

// Push appends c. Returns false if the queue was full and c was dropped.
func (q *CommandQueue) Push(c Command) bool {
	if q.size == len(q.buf) {
		q.dropped++
		return false
	}
	q.buf[(q.head+q.size)%len(q.buf)] = c
	q.size++
	return true
}

// Drain removes every queued command in arrival order and passes each to fn.
func (q *CommandQueue) Drain(fn func(Command)) {
	for q.size > 0 {
		c := q.buf[q.head]
		q.head = (q.head + 1) % len(q.buf)
		q.size--
		fn(c)
	}
	q.head = 0
}

// Len returns the number of queued commands.
func (q *CommandQueue) Len() int {
	return q.size
}

// Cap returns the queue capacity.
func (q *CommandQueue) Cap() int {
	return len(q.buf)
}

// Dropped returns how many commands were discarded because the queue was full.
func (q *CommandQueue) Dropped() int {
	return q.dropped
}
