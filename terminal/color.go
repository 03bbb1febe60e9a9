package terminal

import (
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorModeAuto      ColorMode = iota // Resolved by DetectColorMode
	ColorMode256                        // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

func (m ColorMode) String() string {
	switch m {
	case ColorModeTrueColor:
		return "truecolor"
	case ColorMode256:
		return "256"
	}
	return "auto"
}

// ParseColorMode accepts "auto", "256" and "truecolor"
func ParseColorMode(s string) (ColorMode, bool) {
	switch strings.ToLower(s) {
	case "", "auto":
		return ColorModeAuto, true
	case "256":
		return ColorMode256, true
	case "truecolor", "24bit":
		return ColorModeTrueColor, true
	}
	return ColorModeAuto, false
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	// COLORTERM is set by most modern terminals
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	for _, v := range []string{
		"KITTY_WINDOW_ID",
		"KONSOLE_VERSION",
		"ITERM_SESSION_ID",
		"ALACRITTY_WINDOW_ID",
		"ALACRITTY_LOG",
		"WEZTERM_PANE",
	} {
		if os.Getenv(v) != "" {
			return ColorModeTrueColor
		}
	}

	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// colorKind classifies a tcell color for SGR emission
type colorKind uint8

const (
	colorDefault colorKind = iota
	colorPalette
	colorRGB
)

// classify returns the kind and, for palette colors, the index
func classify(c tcell.Color) (colorKind, int) {
	switch {
	case c == tcell.ColorReset || c == tcell.ColorDefault || !c.Valid():
		return colorDefault, 0
	case c.IsRGB():
		return colorRGB, 0
	}
	idx := int(c - tcell.ColorValid)
	if idx > 255 {
		// Extended named colors carry RGB values but no palette slot
		return colorRGB, 0
	}
	return colorPalette, idx
}

// nearest256 caches RGB to palette index lookups
var nearest256 sync.Map // tcell.Color -> int

// paletteLab holds palette entries 16-255 in Lab space; 0-15 are user-themed and never matched
var paletteLab = sync.OnceValue(func() []colorful.Color {
	out := make([]colorful.Color, 0, 240)
	for i := 16; i < 256; i++ {
		r, g, b := paletteRGB(uint8(i))
		out = append(out, colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255})
	}
	return out
})

// RGBTo256 converts an RGB color to the nearest xterm palette index by Lab distance
func RGBTo256(c tcell.Color) int {
	if v, ok := nearest256.Load(c); ok {
		return v.(int)
	}
	r, g, b := c.RGB()
	target := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}

	best, bestDist := 0, -1.0
	for i, p := range paletteLab() {
		d := target.DistanceLab(p)
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	idx := best + 16
	nearest256.Store(c, idx)
	return idx
}
