package snake

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// RenderOptions controls presentation only; nothing here touches the simulation.
type RenderOptions struct {
	CellWidth int    // Terminal columns per grid cell
	Frame     uint64 // Render frame counter, drives the welcome animation
}

const (
	hudHeight    = 1
	sidebarWidth = 16
	sidebarGap   = 2
)

// Layout is where the playfield lands on a screen.
type Layout struct {
	FieldX, FieldY int  // Top-left corner of the border box
	FieldW, FieldH int  // Border box size including the border
	Sidebar        bool // Whether the block-glyph score fits to the right
	SidebarX       int
	TooSmall       bool
}

// ComputeLayout centers the bordered playfield below the HUD line.
func ComputeLayout(screenW, screenH int, grid core.Grid, cellWidth int) Layout {
	cellWidth = max(cellWidth, 1)
	l := Layout{
		FieldW: grid.W*cellWidth + 2,
		FieldH: grid.H + 2,
		FieldY: hudHeight,
	}
	if screenW < l.FieldW || screenH < l.FieldH+hudHeight {
		l.TooSmall = true
		return l
	}

	total := l.FieldW
	if screenW >= l.FieldW+sidebarGap+sidebarWidth {
		l.Sidebar = true
		total += sidebarGap + sidebarWidth
	}
	l.FieldX = (screenW - total) / 2
	l.SidebarX = l.FieldX + l.FieldW + sidebarGap
	return l
}

// Render draws snap into dst. It reads only the snapshot.
func Render(dst *core.Screen, snap Snapshot, opts RenderOptions) {
	dst.Clear()
	if snap.State == StateWelcome {
		renderWelcome(dst, opts.Frame)
		return
	}

	cw := max(opts.CellWidth, 1)
	l := ComputeLayout(dst.Width(), dst.Height(), snap.Grid, cw)
	renderHUD(dst, snap)
	if l.TooSmall {
		renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", l.FieldW, l.FieldH+hudHeight))
		return
	}

	dst.DrawBox(core.NewRect(l.FieldX, l.FieldY, l.FieldW, l.FieldH), core.ColorBlue)

	drawCell(dst, l, cw, snap.Food, '█', core.ColorRed)
	// Draw tail first so the head wins when a grow duplicate overlaps.
	for i := len(snap.Segments) - 1; i >= 0; i-- {
		color := core.ColorGreen
		if i == 0 {
			color = core.ColorBrightGreen
		}
		drawCell(dst, l, cw, snap.Segments[i], '█', color)
	}

	if l.Sidebar {
		renderSidebar(dst, l, snap)
	}

	if snap.State == StatePaused {
		renderOverlay(dst, "Paused", "Press Space to continue")
	}
}

// drawCell paints one grid cell, CellWidth columns wide, inside the border.
func drawCell(dst *core.Screen, l Layout, cw int, p core.Point, r rune, c core.Color) {
	x := l.FieldX + 1 + p.X*cw
	y := l.FieldY + 1 + p.Y
	for i := 0; i < cw; i++ {
		dst.SetColor(x+i, y, r, c)
	}
}

func renderHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" SNAKE  Score: %d  Best: %d  Length: %d", snap.Score, snap.Best, snap.Len())
	if snap.Deaths > 0 {
		hud += fmt.Sprintf("  Deaths: %d (%s)", snap.Deaths, snap.LastDeath)
	}
	dst.DrawText(0, 0, hud, core.ColorDefault)
}

// renderSidebar draws the score label and block-glyph digits.
func renderSidebar(dst *core.Screen, l Layout, snap Snapshot) {
	x, y := l.SidebarX, l.FieldY+1
	dst.DrawText(x, y, "SCORE:", core.ColorGreen)
	digits := strconv.Itoa(snap.Score)
	if glyphTextWidth(digits) <= sidebarWidth {
		drawGlyphs(dst, x, y+2, digits, core.ColorYellow)
	} else {
		dst.DrawText(x, y+2, digits, core.ColorYellow)
	}
	dst.DrawText(x, y+2+glyphH+1, fmt.Sprintf("BEST: %d", snap.Best), core.ColorGray)
}

// renderWelcome draws the title screen: a waving snake, a food item, the
// block-letter title and a prompt.
func renderWelcome(dst *core.Screen, frame uint64) {
	w, h := dst.Width(), dst.Height()
	cx, cy := w/2, h/2

	const segments = 10
	anim := float64(frame) * 0.5
	for i := 0; i < segments; i++ {
		phase := anim*0.1 + float64(i)*0.5
		x := cx - segments + i*2 + int(math.Round(math.Sin(phase)*2))
		y := cy - 8 + int(math.Round(math.Cos(phase)))
		dst.SetColor(x, y, '█', core.ColorGreen)
		dst.SetColor(x+1, y, '█', core.ColorGreen)
	}

	dst.SetColor(cx-1, cy-5, '█', core.ColorRed)
	dst.SetColor(cx, cy-5, '█', core.ColorRed)

	title := "SNAKE"
	drawGlyphs(dst, (w-glyphTextWidth(title))/2, cy-2, title, core.ColorGreen)
	dst.DrawTextCentered(cy+5, "PRESS ANY KEY", core.ColorWhite)
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	w, h := dst.Width(), dst.Height()

	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorWhite)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorWhite)
}
