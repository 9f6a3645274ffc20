package core

// Color represents a foreground color for a screen cell.
// The platform maps these to ANSI codes.
type Color uint8

// Colors used by the snake renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorBrightGreen
	ColorGray
)
