package screen

import (
	"github.com/lixenwraith/termcanvas/pixel"
)

// HLine draws a horizontal line on row y between x0 and x1 inclusive, in either order
func (s *Screen) HLine(x0, y, x1 int, p pixel.Pixel) {
	if y < 0 || y >= s.height {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	// Clip the span instead of testing every cell
	x0 = max(x0, 0)
	x1 = min(x1, s.width-1)
	if x0 > x1 {
		return
	}
	row := s.cells[y*s.width:]
	for x := x0; x <= x1; x++ {
		row[x] = p
	}
}

// VLine draws a vertical line on column x between y0 and y1 inclusive, in either order
func (s *Screen) VLine(x, y0, y1 int, p pixel.Pixel) {
	if x < 0 || x >= s.width {
		return
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	y0 = max(y0, 0)
	y1 = min(y1, s.height-1)
	for y := y0; y <= y1; y++ {
		s.cells[y*s.width+x] = p
	}
}

// Line draws a line between two points using Bresenham's algorithm
// Endpoints may be off-screen; the visible portion is drawn and the result does not depend on endpoint order
func (s *Screen) Line(x0, y0, x1, y1 int, p pixel.Pixel) {
	if y0 == y1 {
		s.HLine(x0, y0, x1, p)
		return
	}
	if x0 == x1 {
		s.VLine(x0, y0, y1, p)
		return
	}

	if abs(y1-y0) < abs(x1-x0) {
		// Shallow: always walk x forward
		if x0 > x1 {
			s.lineLow(x1, y1, x0, y0, p)
		} else {
			s.lineLow(x0, y0, x1, y1, p)
		}
		return
	}

	// Steep: always walk y forward
	if y0 > y1 {
		s.lineHigh(x1, y1, x0, y0, p)
	} else {
		s.lineHigh(x0, y0, x1, y1, p)
	}
}

// lineLow handles |dy| < |dx| with x0 <= x1
func (s *Screen) lineLow(x0, y0, x1, y1 int, p pixel.Pixel) {
	dx := x1 - x0
	dy := y1 - y0
	yi := 1
	if dy < 0 {
		yi = -1
		dy = -dy
	}
	d := 2*dy - dx
	y := y0

	for x := x0; x <= x1; x++ {
		s.SetPixel(x, y, p)
		if d > 0 {
			y += yi
			d -= 2 * dx
		}
		d += 2 * dy
	}
}

// lineHigh handles |dy| >= |dx| with y0 <= y1
func (s *Screen) lineHigh(x0, y0, x1, y1 int, p pixel.Pixel) {
	dx := x1 - x0
	dy := y1 - y0
	xi := 1
	if dx < 0 {
		xi = -1
		dx = -dx
	}
	d := 2*dx - dy
	x := x0

	for y := y0; y <= y1; y++ {
		s.SetPixel(x, y, p)
		if d > 0 {
			x += xi
			d -= 2 * dy
		}
		d += 2 * dx
	}
}

// Rect draws the outline of a rectangle with corners (x0, y0) and (x1, y1)
func (s *Screen) Rect(x0, y0, x1, y1 int, p pixel.Pixel) {
	s.HLine(x0, y0, x1, p) // top
	s.VLine(x1, y0, y1, p) // right
	s.HLine(x1, y1, x0, p) // bottom
	s.VLine(x0, y1, y0, p) // left
}

// RectBorder draws a rectangle outline with the edge and corner pixels of style
// Corners are stamped after the edges
func (s *Screen) RectBorder(x0, y0, x1, y1 int, style BorderStyle) {
	s.HLine(x0, y0, x1, style.Horizontal)
	s.VLine(x1, y0, y1, style.Vertical)
	s.HLine(x1, y1, x0, style.Horizontal)
	s.VLine(x0, y1, y0, style.Vertical)

	s.SetPixel(x0, y0, style.TopLeft)
	s.SetPixel(x1, y0, style.TopRight)
	s.SetPixel(x0, y1, style.BottomLeft)
	s.SetPixel(x1, y1, style.BottomRight)
}

// FillRect fills the rectangle with corners (x0, y0) and (x1, y1), inclusive
func (s *Screen) FillRect(x0, y0, x1, y1 int, p pixel.Pixel) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	y0 = max(y0, 0)
	y1 = min(y1, s.height-1)
	for y := y0; y <= y1; y++ {
		s.HLine(x0, y, x1, p)
	}
}

// Circle draws a circle outline with the midpoint algorithm
// A zero radius draws nothing
func (s *Screen) Circle(cx, cy, radius int, p pixel.Pixel) {
	if radius <= 0 {
		return
	}
	x := 0
	y := radius
	d := 3 - 2*radius

	for y >= x {
		s.SetPixel(cx+x, cy-y, p)
		s.SetPixel(cx+y, cy-x, p)
		s.SetPixel(cx+y, cy+x, p)
		s.SetPixel(cx+x, cy+y, p)
		s.SetPixel(cx-x, cy+y, p)
		s.SetPixel(cx-y, cy+x, p)
		s.SetPixel(cx-y, cy-x, p)
		s.SetPixel(cx-x, cy-y, p)
		if d < 0 {
			d += 4*x + 6
		} else {
			d += 4*(x-y) + 10
			y--
		}
		x++
	}
}

// FillCircle fills a circle, drawing four scanlines per midpoint step
// A zero radius draws nothing
func (s *Screen) FillCircle(cx, cy, radius int, p pixel.Pixel) {
	if radius <= 0 {
		return
	}
	x := 0
	y := radius
	d := 3 - 2*radius

	for y >= x {
		s.HLine(cx-x, cy-y, cx+x, p)
		s.HLine(cx-y, cy-x, cx+y, p)
		s.HLine(cx-x, cy+y, cx+x, p)
		s.HLine(cx-y, cy+x, cx+y, p)
		if d < 0 {
			d += 4*x + 6
		} else {
			d += 4*(x-y) + 10
			y--
		}
		x++
	}
}

// Triangle draws the outline of a triangle
func (s *Screen) Triangle(x0, y0, x1, y1, x2, y2 int, p pixel.Pixel) {
	s.Line(x0, y0, x1, y1, p)
	s.Line(x1, y1, x2, y2, p)
	s.Line(x2, y2, x0, y0, p)
}

// point is a vertex for triangle rasterization
type point struct {
	x, y int
}

// orient2d is the edge function: twice the signed area of (a, b, c)
func orient2d(a, b, c point) int {
	return (b.x-a.x)*(c.y-a.y) - (b.y-a.y)*(c.x-a.x)
}

// isTopLeft reports whether edge a->b owns the pixels lying exactly on it
// Reversing an edge flips the answer, so two triangles sharing an edge never both draw it
func isTopLeft(a, b point) bool {
	dy := b.y - a.y
	dx := b.x - a.x
	return dy < 0 || (dy == 0 && dx > 0)
}

// FillTriangle fills a triangle with edge-function rasterization
// Pixels on an edge are owned by exactly one of two triangles sharing it; degenerate triangles draw nothing
func (s *Screen) FillTriangle(x0, y0, x1, y1, x2, y2 int, p pixel.Pixel) {
	v0 := point{x0, y0}
	v1 := point{x1, y1}
	v2 := point{x2, y2}

	area := orient2d(v0, v1, v2)
	if area == 0 {
		return
	}
	// Normalize winding so inside means all edge functions non-negative
	if area < 0 {
		v1, v2 = v2, v1
	}

	// Bounding box clipped to screen
	minX := max(min(v0.x, v1.x, v2.x), 0)
	maxX := min(max(v0.x, v1.x, v2.x), s.width-1)
	minY := max(min(v0.y, v1.y, v2.y), 0)
	maxY := min(max(v0.y, v1.y, v2.y), s.height-1)
	if minX > maxX || minY > maxY {
		return
	}

	// Per-step increments of each edge function
	a12, b12 := v1.y-v2.y, v2.x-v1.x
	a20, b20 := v2.y-v0.y, v0.x-v2.x
	a01, b01 := v0.y-v1.y, v1.x-v0.x

	// Fill rule bias: edges that do not own their boundary need a strictly positive value
	bias0, bias1, bias2 := 0, 0, 0
	if !isTopLeft(v1, v2) {
		bias0 = -1
	}
	if !isTopLeft(v2, v0) {
		bias1 = -1
	}
	if !isTopLeft(v0, v1) {
		bias2 = -1
	}

	start := point{minX, minY}
	w0Row := orient2d(v1, v2, start) + bias0
	w1Row := orient2d(v2, v0, start) + bias1
	w2Row := orient2d(v0, v1, start) + bias2

	for y := minY; y <= maxY; y++ {
		w0, w1, w2 := w0Row, w1Row, w2Row
		row := s.cells[y*s.width:]
		for x := minX; x <= maxX; x++ {
			if w0|w1|w2 >= 0 {
				row[x] = p
			}
			w0 += a12
			w1 += a20
			w2 += a01
		}
		w0Row += b12
		w1Row += b20
		w2Row += b01
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
