package screen

import (
	"github.com/lixenwraith/termcanvas/pixel"
)

// Scroll shifts the content by (dx, dy) cells, filling vacated cells with bg
//
// Positive values move content left/up and free space at the right/bottom, negative values
// move it right/down. The horizontal shift is applied first, then the vertical one.
// A shift at least as large as the dimension clears the whole screen to bg.
func (s *Screen) Scroll(dx, dy int, bg pixel.Pixel) {
	if dx != 0 {
		s.scrollH(dx, bg)
	}
	if dy != 0 {
		s.scrollV(dy, bg)
	}
}

func (s *Screen) scrollH(dx int, bg pixel.Pixel) {
	w := s.width
	if dx >= w || dx <= -w {
		s.Fill(bg)
		return
	}
	for y := 0; y < s.height; y++ {
		row := s.cells[y*w : (y+1)*w]
		if dx > 0 {
			copy(row, row[dx:])
			fillCells(row[w-dx:], bg)
		} else {
			n := -dx
			copy(row[n:], row[:w-n])
			fillCells(row[:n], bg)
		}
	}
}

func (s *Screen) scrollV(dy int, bg pixel.Pixel) {
	h := s.height
	if dy >= h || dy <= -h {
		s.Fill(bg)
		return
	}
	w := s.width
	if dy > 0 {
		shift := dy * w
		copy(s.cells, s.cells[shift:])
		fillCells(s.cells[len(s.cells)-shift:], bg)
	} else {
		shift := -dy * w
		copy(s.cells[shift:], s.cells[:len(s.cells)-shift])
		fillCells(s.cells[:shift], bg)
	}
}

// Extract copies the rectangle (x0, y0)-(x1, y1) into a new screen
//
// Reversed coordinates (x0 > x1 or y0 > y1) mirror the result horizontally or vertically.
// Cells outside the source bounds take the value def.
func (s *Screen) Extract(x0, y0, x1, y1 int, def pixel.Pixel) *Screen {
	w := abs(x1-x0) + 1
	h := abs(y1-y0) + 1
	out := NewFill(w, h, def)

	xStep, yStep := 1, 1
	if x0 > x1 {
		xStep = -1
	}
	if y0 > y1 {
		yStep = -1
	}

	// Walk the destination in order and the source in the requested direction
	for j := 0; j < h; j++ {
		sy := y0 + j*yStep
		if sy < 0 || sy >= s.height {
			continue
		}
		for i := 0; i < w; i++ {
			sx := x0 + i*xStep
			if sx < 0 || sx >= s.width {
				continue
			}
			out.cells[j*w+i] = s.cells[s.index(sx, sy)]
		}
	}
	return out
}

// Resize changes the dimensions, keeping the top-left overlap and blank-filling new cells
func (s *Screen) Resize(width, height int) {
	width, height = clampSize(width, height)
	cells := make([]pixel.Pixel, width*height)
	fillCells(cells, pixel.Blank)

	copyW := min(s.width, width)
	copyH := min(s.height, height)
	for y := 0; y < copyH; y++ {
		copy(cells[y*width:y*width+copyW], s.cells[y*s.width:y*s.width+copyW])
	}

	s.cells = cells
	s.width = width
	s.height = height
}
