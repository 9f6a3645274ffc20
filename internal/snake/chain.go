// Package snake implements the snake simulation: the segment chain, food
// placement, the input mapper and the fixed-tick engine that owns them.
// Nothing in this package knows about terminals or Bubble Tea.
package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Chain is the ordered body of the snake, head at index 0.
// It is backed by a single slice; growth appends and never reallocates nodes.
type Chain struct {
	segments []core.Point
}

// NewChain returns a chain of length n with its head at head, laid out
// behind the head opposite to DefaultDirection.
func NewChain(n int, head core.Point) *Chain {
	c := &Chain{}
	c.Reset(n, head)
	return c
}

// ChainOf builds a chain from explicit segments, head first.
// The segments are copied.
func ChainOf(segments ...core.Point) *Chain {
	return &Chain{segments: append([]core.Point(nil), segments...)}
}

// Reset discards the old chain and builds n segments with the head at center.
// The body trails away from the head opposite to DefaultDirection so every
// segment starts on its own cell.
func (c *Chain) Reset(n int, center core.Point) {
	n = max(n, 1)
	if cap(c.segments) < n {
		c.segments = make([]core.Point, n)
	}
	c.segments = c.segments[:n]

	back := DefaultDirection.Opposite()
	p := center
	for i := range c.segments {
		c.segments[i] = p
		p = back.Step(p)
	}
}

// Advance moves every segment onto the cell its predecessor held, then moves
// the head one cell in dir. Copying runs tail to head so each segment reads
// its predecessor's old position.
func (c *Chain) Advance(dir Direction) {
	for i := len(c.segments) - 1; i > 0; i-- {
		c.segments[i] = c.segments[i-1]
	}
	c.segments[0] = dir.Step(c.segments[0])
}

// Grow appends a segment on the tail's cell. The duplicate is pulled off the
// tail by the next Advance.
func (c *Chain) Grow() {
	c.segments = append(c.segments, c.Tail())
}

// SelfCollision reports whether the head shares a cell with any other segment.
func (c *Chain) SelfCollision() bool {
	head := c.segments[0]
	for _, seg := range c.segments[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// Head returns the first segment.
func (c *Chain) Head() core.Point {
	return c.segments[0]
}

// Tail returns the last segment.
func (c *Chain) Tail() core.Point {
	return c.segments[len(c.segments)-1]
}

// Len returns the number of segments, counting a not-yet-separated grow duplicate.
func (c *Chain) Len() int {
	return len(c.segments)
}

// Occupies reports whether any segment is on p.
func (c *Chain) Occupies(p core.Point) bool {
	for _, seg := range c.segments {
		if seg == p {
			return true
		}
	}
	return false
}

// Segments returns a copy of the chain, head first.
func (c *Chain) Segments() []core.Point {
	out := make([]core.Point, len(c.segments))
	copy(out, c.segments)
	return out
}

// cells exposes the backing slice to the engine without copying.
func (c *Chain) cells() []core.Point {
	return c.segments
}
