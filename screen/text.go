package screen

import (
	"github.com/lixenwraith/termcanvas/pixel"
)

// Print writes text at (x, y) in default colors
func (s *Screen) Print(x, y int, text string) {
	s.PrintColors(x, y, text, pixel.ColorReset, pixel.ColorReset)
}

// PrintColors writes text at (x, y) with the given colors, one rune per cell
//
// '\n' moves to the next row and back to column x, '\r' returns to column x on the same row,
// '\t' is written as a single space. Text reaching the right edge is truncated, never wrapped.
// A negative x hides the leading |x| runes of every line and starts it at column 0; a '\r'
// does not hide them again. A negative y drops the first |y| lines.
func (s *Screen) PrintColors(x, y int, text string, fg, bg pixel.Color) {
	if x >= s.width || y >= s.height {
		return
	}

	left := max(x, 0)
	hidden := max(-x, 0)

	col, row, skip := left, y, hidden
	for _, r := range text {
		switch r {
		case '\n':
			row++
			col, skip = left, hidden
			if row >= s.height {
				return
			}
			continue
		case '\r':
			col = left
			continue
		case '\t':
			r = ' '
		}

		if skip > 0 {
			skip--
			continue
		}
		if row >= 0 && col < s.width {
			s.cells[s.index(col, row)] = pixel.New(r, fg, bg)
		}
		col++
	}
}

// PrintScreen composites src onto s with its top-left corner at (x, y)
// Each source cell is bounds-checked individually
func (s *Screen) PrintScreen(x, y int, src *Screen) {
	for j := 0; j < src.height; j++ {
		for i := 0; i < src.width; i++ {
			s.SetPixel(x+i, y+j, src.cells[src.index(i, j)])
		}
	}
}

// PrintScreenAlpha composites src like PrintScreen but skips source cells whose character is alpha
func (s *Screen) PrintScreenAlpha(x, y int, src *Screen, alpha rune) {
	for j := 0; j < src.height; j++ {
		for i := 0; i < src.width; i++ {
			p := src.cells[src.index(i, j)]
			if p.Char == alpha {
				continue
			}
			s.SetPixel(x+i, y+j, p)
		}
	}
}
