package screen

import (
	"github.com/lixenwraith/termcanvas/pixel"
)

// BorderStyle holds the six pixels used by RectBorder
type BorderStyle struct {
	TopLeft     pixel.Pixel
	TopRight    pixel.Pixel
	BottomLeft  pixel.Pixel
	BottomRight pixel.Pixel
	Horizontal  pixel.Pixel
	Vertical    pixel.Pixel
}

// NewBorderStyle creates a user-defined border style
func NewBorderStyle(topLeft, topRight, bottomLeft, bottomRight, horizontal, vertical pixel.Pixel) BorderStyle {
	return BorderStyle{
		TopLeft:     topLeft,
		TopRight:    topRight,
		BottomLeft:  bottomLeft,
		BottomRight: bottomRight,
		Horizontal:  horizontal,
		Vertical:    vertical,
	}
}

// borderFromRunes builds a default-colored style from corner and edge runes
func borderFromRunes(tl, tr, bl, br, h, v rune) BorderStyle {
	return NewBorderStyle(pixel.Char(tl), pixel.Char(tr), pixel.Char(bl), pixel.Char(br), pixel.Char(h), pixel.Char(v))
}

// BorderSimple uses ASCII only: + - |
func BorderSimple() BorderStyle {
	return borderFromRunes('+', '+', '+', '+', '-', '|')
}

// BorderLight uses the Unicode light box drawing set
func BorderLight() BorderStyle {
	return borderFromRunes('┌', '┐', '└', '┘', '─', '│')
}

// BorderHeavy uses the Unicode heavy box drawing set
func BorderHeavy() BorderStyle {
	return borderFromRunes('┏', '┓', '┗', '┛', '━', '┃')
}

// BorderDouble uses the Unicode double box drawing set
func BorderDouble() BorderStyle {
	return borderFromRunes('╔', '╗', '╚', '╝', '═', '║')
}

// WithColors returns a copy with every pixel recolored
func (b BorderStyle) WithColors(fg, bg pixel.Color) BorderStyle {
	recolor := func(p pixel.Pixel) pixel.Pixel {
		return pixel.New(p.Char, fg, bg)
	}
	return BorderStyle{
		TopLeft:     recolor(b.TopLeft),
		TopRight:    recolor(b.TopRight),
		BottomLeft:  recolor(b.BottomLeft),
		BottomRight: recolor(b.BottomRight),
		Horizontal:  recolor(b.Horizontal),
		Vertical:    recolor(b.Vertical),
	}
}
