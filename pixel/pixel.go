// Package pixel defines the single-cell value stored in a screen buffer.
package pixel

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Color is a terminal color (named, 256 palette or RGB)
type Color = tcell.Color

// ColorReset selects the terminal default color
const ColorReset = tcell.ColorReset

// Common named colors re-exported for callers that never touch tcell directly
const (
	ColorBlack   = tcell.ColorBlack
	ColorMaroon  = tcell.ColorMaroon
	ColorGreen   = tcell.ColorGreen
	ColorOlive   = tcell.ColorOlive
	ColorNavy    = tcell.ColorNavy
	ColorPurple  = tcell.ColorPurple
	ColorTeal    = tcell.ColorTeal
	ColorSilver  = tcell.ColorSilver
	ColorGray    = tcell.ColorGray
	ColorRed     = tcell.ColorRed
	ColorLime    = tcell.ColorLime
	ColorYellow  = tcell.ColorYellow
	ColorBlue    = tcell.ColorBlue
	ColorFuchsia = tcell.ColorFuchsia
	ColorAqua    = tcell.ColorAqua
	ColorWhite   = tcell.ColorWhite
)

// NUL marks cells of a buffer that has never been intentionally cleared
const NUL rune = 0

// Pixel is one terminal cell: a character with foreground and background colors
// Compared with ==; replace, never mutate
type Pixel struct {
	Fg   Color
	Bg   Color
	Char rune
}

var (
	// Blank is the default fill: a space in terminal default colors
	Blank = Pixel{Fg: ColorReset, Bg: ColorReset, Char: ' '}

	// Empty is the NUL sentinel used by buffers that must force a full redraw
	Empty = Pixel{Fg: ColorReset, Bg: ColorReset, Char: NUL}
)

// New creates a pixel with explicit colors
func New(r rune, fg, bg Color) Pixel {
	return Pixel{Fg: fg, Bg: bg, Char: r}
}

// Fg creates a pixel with a foreground color on the default background
func Fg(r rune, fg Color) Pixel {
	return Pixel{Fg: fg, Bg: ColorReset, Char: r}
}

// Bg creates a pixel with a background color and default foreground
func Bg(r rune, bg Color) Pixel {
	return Pixel{Fg: ColorReset, Bg: bg, Char: r}
}

// Char creates a pixel in default colors
func Char(r rune) Pixel {
	return Pixel{Fg: ColorReset, Bg: ColorReset, Char: r}
}

// Colors returns the (fg, bg) pair, compared by the renderer to coalesce color changes
func (p Pixel) Colors() (Color, Color) {
	return p.Fg, p.Bg
}

// Style converts the pixel colors to a tcell style
func (p Pixel) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(p.Fg).Background(p.Bg)
}

// Width returns the number of terminal columns the character occupies
// Control characters, NUL included, render as a space and count as one column.
// Combining and other zero-width runes report 0
func (p Pixel) Width() int {
	if isControl(p.Char) {
		return 1
	}
	return runewidth.RuneWidth(p.Char)
}

// IsWide reports whether the character spans two columns
func (p Pixel) IsWide() bool {
	return p.Width() > 1
}

// Printable returns the rune actually written to the terminal
func (p Pixel) Printable() rune {
	if isControl(p.Char) {
		return ' '
	}
	return p.Char
}

func isControl(r rune) bool {
	return r < 0x20 || (r >= 0x7f && r < 0xa0)
}
