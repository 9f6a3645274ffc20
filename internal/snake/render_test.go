package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestComputeLayout(t *testing.T) {
	grid := core.NewGrid(30, 30)

	tests := []struct {
		name     string
		w, h     int
		tooSmall bool
		sidebar  bool
	}{
		{"roomy", 120, 40, false, true},
		{"no sidebar", 64, 40, false, false},
		{"too narrow", 50, 40, true, false},
		{"too short", 120, 20, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := ComputeLayout(tt.w, tt.h, grid, 2)
			if l.TooSmall != tt.tooSmall {
				t.Errorf("TooSmall = %v, expected %v", l.TooSmall, tt.tooSmall)
			}
			if l.Sidebar != tt.sidebar {
				t.Errorf("Sidebar = %v, expected %v", l.Sidebar, tt.sidebar)
			}
			if l.FieldW != 62 || l.FieldH != 32 {
				t.Errorf("field = %dx%d, expected 62x32", l.FieldW, l.FieldH)
			}
		})
	}
}

func TestRenderPlaying(t *testing.T) {
	e := newPlaying(t, 1)
	e.food = core.Point{X: 3, Y: 4}
	snap := e.Snapshot()

	screen := core.NewScreen(120, 40)
	Render(screen, snap, RenderOptions{CellWidth: 2})
	l := ComputeLayout(120, 40, snap.Grid, 2)

	cellAt := func(p core.Point) core.Cell {
		return screen.GetCell(l.FieldX+1+p.X*2, l.FieldY+1+p.Y)
	}

	if c := cellAt(snap.Head()); c.Rune != '█' || c.Color != core.ColorBrightGreen {
		t.Errorf("head cell = %+v, expected bright green block", c)
	}
	if c := cellAt(snap.Segments[1]); c.Color != core.ColorGreen {
		t.Errorf("body cell color = %v, expected green", c.Color)
	}
	if c := cellAt(snap.Food); c.Rune != '█' || c.Color != core.ColorRed {
		t.Errorf("food cell = %+v, expected red block", c)
	}
	if c := screen.GetCell(l.FieldX, l.FieldY); c.Rune != '┌' {
		t.Errorf("border corner = %q, expected '┌'", c.Rune)
	}
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q, expected score", screen.Row(0))
	}
	if !strings.Contains(screen.String(), "SCORE:") {
		t.Error("sidebar label missing")
	}
}

func TestRenderPaused(t *testing.T) {
	e := newPlaying(t, 1)
	e.HandleCommand(core.CmdTogglePause)

	screen := core.NewScreen(120, 40)
	Render(screen, e.Snapshot(), RenderOptions{CellWidth: 2})

	if !strings.Contains(screen.String(), "Paused") {
		t.Error("paused overlay missing")
	}
}

func TestRenderTooSmall(t *testing.T) {
	e := newPlaying(t, 1)

	screen := core.NewScreen(40, 20)
	Render(screen, e.Snapshot(), RenderOptions{CellWidth: 2})

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("too-small message missing")
	}
}

func TestRenderWelcome(t *testing.T) {
	e, _ := New(testOptions(1))

	screen := core.NewScreen(80, 30)
	Render(screen, e.Snapshot(), RenderOptions{CellWidth: 2, Frame: 10})

	out := screen.String()
	if !strings.Contains(out, "PRESS ANY KEY") {
		t.Error("welcome prompt missing")
	}
	if strings.Contains(out, "Score:") {
		t.Error("welcome screen should not draw the HUD")
	}
}

func TestGlyphTextWidth(t *testing.T) {
	tests := []struct {
		text     string
		expected int
	}{
		{"", 0},
		{"7", 3},
		{"42", 7},
		{"SNAKE", 19},
	}
	for _, tt := range tests {
		if got := glyphTextWidth(tt.text); got != tt.expected {
			t.Errorf("glyphTextWidth(%q) = %d, expected %d", tt.text, got, tt.expected)
		}
	}
}
