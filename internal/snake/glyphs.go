package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Block glyphs are 3 columns by 5 rows; '#' marks a filled cell.
const (
	glyphW = 3
	glyphH = 5
)

var glyphs = map[rune][glyphH]string{
	'0': {"###", "#.#", "#.#", "#.#", "###"},
	'1': {".#.", "##.", ".#.", ".#.", "###"},
	'2': {"###", "..#", "###", "#..", "###"},
	'3': {"###", "..#", "###", "..#", "###"},
	'4': {"#.#", "#.#", "###", "..#", "..#"},
	'5': {"###", "#..", "###", "..#", "###"},
	'6': {"###", "#..", "###", "#.#", "###"},
	'7': {"###", "..#", "..#", "..#", "..#"},
	'8': {"###", "#.#", "###", "#.#", "###"},
	'9': {"###", "#.#", "###", "..#", "###"},
	'S': {"###", "#..", "###", "..#", "###"},
	'N': {"##.", "#.#", "#.#", "#.#", "#.#"},
	'A': {".#.", "#.#", "###", "#.#", "#.#"},
	'K': {"#.#", "#.#", "##.", "#.#", "#.#"},
	'E': {"###", "#..", "##.", "#..", "###"},
}

// glyphTextWidth returns the columns DrawGlyphs uses for text.
func glyphTextWidth(text string) int {
	n := len([]rune(text))
	if n == 0 {
		return 0
	}
	return n*(glyphW+1) - 1
}

// drawGlyphs draws text in block glyphs with its top-left corner at (x, y).
// Runes without a glyph leave a blank gap.
func drawGlyphs(dst *core.Screen, x, y int, text string, c core.Color) {
	for _, r := range text {
		if g, ok := glyphs[r]; ok {
			for row, line := range g {
				for col, ch := range line {
					if ch == '#' {
						dst.SetColor(x+col, y+row, '█', c)
					}
				}
			}
		}
		x += glyphW + 1
	}
}
