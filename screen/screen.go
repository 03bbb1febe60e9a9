// Package screen provides a fixed-size 2D pixel buffer with drawing primitives.
//
// All drawing primitives clip silently: pixels outside [0,width) x [0,height) are dropped,
// so shapes may be described with off-screen coordinates. GetPixel is the only accessor
// that reports out-of-bounds access, as an error.
//
// A Screen carries a cached "empty" flag (every cell holds the NUL sentinel). The flag is
// only refreshed by Fill and CheckEmpty; IsEmpty returns the cached value without scanning.
// Callers that mutate a buffer in bulk must call CheckEmpty before trusting IsEmpty.
//
// Screens are not synchronized; use from a single goroutine.
package screen

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lixenwraith/termcanvas/pixel"
)

// Screen is a row-major buffer of pixels
type Screen struct {
	width  int
	height int
	cells  []pixel.Pixel
	empty  bool
}

// New creates a screen filled with blank (space) pixels
func New(width, height int) *Screen {
	return NewFill(width, height, pixel.Blank)
}

// NewEmpty creates a screen filled with NUL pixels and marked empty
// Clear or Fill it before drawing anything meant to be seen
func NewEmpty(width, height int) *Screen {
	s := NewFill(width, height, pixel.Empty)
	s.empty = true
	return s
}

// NewFill creates a screen filled with the given pixel
func NewFill(width, height int, p pixel.Pixel) *Screen {
	width, height = clampSize(width, height)
	cells := make([]pixel.Pixel, width*height)
	fillCells(cells, p)
	return &Screen{
		width:  width,
		height: height,
		cells:  cells,
		empty:  false,
	}
}

// FromPixels creates a screen backed by a copy of cells, which must hold exactly width*height pixels
func FromPixels(cells []pixel.Pixel, width, height int) (*Screen, error) {
	width, height = clampSize(width, height)
	if len(cells) != width*height {
		return nil, fmt.Errorf("%w: expected %d pixels (%dx%d), got %d",
			ErrLengthMismatch, width*height, width, height, len(cells))
	}
	owned := make([]pixel.Pixel, len(cells))
	copy(owned, cells)
	return &Screen{
		width:  width,
		height: height,
		cells:  owned,
	}, nil
}

// FromString creates a screen from a flat string, one rune per cell, in the given colors
// The rune count must equal width*height
func FromString(s string, fg, bg pixel.Color, width, height int) (*Screen, error) {
	width, height = clampSize(width, height)
	if n := utf8.RuneCountInString(s); n != width*height {
		return nil, fmt.Errorf("%w: expected %d runes (%dx%d), got %d",
			ErrLengthMismatch, width*height, width, height, n)
	}
	cells := make([]pixel.Pixel, 0, width*height)
	for _, r := range s {
		cells = append(cells, pixel.New(r, fg, bg))
	}
	return &Screen{
		width:  width,
		height: height,
		cells:  cells,
	}, nil
}

// MustFromPixels is FromPixels that panics on length mismatch
func MustFromPixels(cells []pixel.Pixel, width, height int) *Screen {
	s, err := FromPixels(cells, width, height)
	if err != nil {
		panic(err)
	}
	return s
}

// MustFromString is FromString that panics on length mismatch
func MustFromString(str string, fg, bg pixel.Color, width, height int) *Screen {
	s, err := FromString(str, fg, bg, width, height)
	if err != nil {
		panic(err)
	}
	return s
}

// Width returns the screen width
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height
func (s *Screen) Height() int {
	return s.height
}

// inBounds returns true if in screen bounds
func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// index converts coordinates to cell index, caller checks bounds
func (s *Screen) index(x, y int) int {
	return y*s.width + x
}

// SetPixel writes p at (x, y); out of bounds writes are ignored
func (s *Screen) SetPixel(x, y int, p pixel.Pixel) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[s.index(x, y)] = p
}

// GetPixel returns the pixel at (x, y) or an *OutOfBoundsError
func (s *Screen) GetPixel(x, y int) (pixel.Pixel, error) {
	if !s.inBounds(x, y) {
		return pixel.Pixel{}, &OutOfBoundsError{X: x, Y: y, MaxX: s.width - 1, MaxY: s.height - 1}
	}
	return s.cells[s.index(x, y)], nil
}

// At returns the pixel at (x, y) and whether the coordinates were valid
func (s *Screen) At(x, y int) (pixel.Pixel, bool) {
	if !s.inBounds(x, y) {
		return pixel.Pixel{}, false
	}
	return s.cells[s.index(x, y)], true
}

// Clear resets every cell to the blank pixel
func (s *Screen) Clear() {
	s.Fill(pixel.Blank)
}

// Fill sets every cell to p
// Filling with the NUL character marks the screen empty, anything else clears the flag
func (s *Screen) Fill(p pixel.Pixel) {
	s.empty = p.Char == pixel.NUL
	fillCells(s.cells, p)
}

// CheckEmpty scans every cell for the NUL sentinel and refreshes the cached flag
func (s *Screen) CheckEmpty() bool {
	for i := range s.cells {
		if s.cells[i].Char != pixel.NUL {
			s.empty = false
			return false
		}
	}
	s.empty = true
	return true
}

// IsEmpty returns the cached result of the last CheckEmpty or Fill
func (s *Screen) IsEmpty() bool {
	return s.empty
}

// Clone returns an independent copy
func (s *Screen) Clone() *Screen {
	cells := make([]pixel.Pixel, len(s.cells))
	copy(cells, s.cells)
	return &Screen{
		width:  s.width,
		height: s.height,
		cells:  cells,
		empty:  s.empty,
	}
}

// Equal reports whether both screens have the same size and pixels
// The cached empty flag is not compared
func (s *Screen) Equal(other *Screen) bool {
	if other == nil || s.width != other.width || s.height != other.height {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Cells returns a copy of the row-major pixel slice
func (s *Screen) Cells() []pixel.Pixel {
	cells := make([]pixel.Pixel, len(s.cells))
	copy(cells, s.cells)
	return cells
}

// String returns the characters row by row, joined with newlines
// Colors are dropped and NUL cells render as spaces
func (s *Screen) String() string {
	var b strings.Builder
	b.Grow(len(s.cells) + s.height)
	for y := 0; y < s.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		row := s.cells[y*s.width : (y+1)*s.width]
		for _, p := range row {
			b.WriteRune(p.Printable())
		}
	}
	return b.String()
}

// fillCells sets every element using exponential copy
func fillCells(cells []pixel.Pixel, p pixel.Pixel) {
	if len(cells) == 0 {
		return
	}
	cells[0] = p
	for filled := 1; filled < len(cells); filled *= 2 {
		copy(cells[filled:], cells[:filled])
	}
}

func clampSize(width, height int) (int, int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return width, height
}
