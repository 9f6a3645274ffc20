// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Point is a grid cell coordinate.
type Point struct {
	X, Y int
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Grid describes the playfield dimensions in cells.
type Grid struct {
	W, H int
}

// NewGrid creates a grid of the given width and height.
func NewGrid(w, h int) Grid {
	return Grid{W: w, H: h}
}

// InBounds reports whether p lies inside the grid.
func (g Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.W && p.Y >= 0 && p.Y < g.H
}

// Area returns the number of cells in the grid.
func (g Grid) Area() int {
	return g.W * g.H
}

// Index returns the row-major index of p. The caller must check InBounds first.
func (g Grid) Index(p Point) int {
	return p.Y*g.W + p.X
}

// At is the inverse of Index.
func (g Grid) At(i int) Point {
	return Point{X: i % g.W, Y: i / g.W}
}

// Center returns the center cell, rounding down.
func (g Grid) Center() Point {
	return Point{X: g.W / 2, Y: g.H / 2}
}

// Rect represents an axis-aligned box on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
