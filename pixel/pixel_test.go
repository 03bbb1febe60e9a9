package pixel

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		got    Pixel
		wantFg Color
		wantBg Color
	}{
		{"full", New('x', ColorRed, ColorBlue), ColorRed, ColorBlue},
		{"fg only", Fg('x', ColorRed), ColorRed, ColorReset},
		{"bg only", Bg('x', ColorBlue), ColorReset, ColorBlue},
		{"bare", Char('x'), ColorReset, ColorReset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fg, bg := tt.got.Colors()
			if fg != tt.wantFg || bg != tt.wantBg {
				t.Errorf("Colors() = (%v, %v), want (%v, %v)", fg, bg, tt.wantFg, tt.wantBg)
			}
			if tt.got.Char != 'x' {
				t.Errorf("Char = %q, want 'x'", tt.got.Char)
			}
		})
	}
}

func TestEquality(t *testing.T) {
	if Char('a') != Char('a') {
		t.Error("Expected identical pixels to compare equal")
	}
	if Char('a') == Fg('a', ColorRed) {
		t.Error("Expected pixels with different fg to differ")
	}
	if Blank == Empty {
		t.Error("Expected Blank and Empty sentinels to differ")
	}
}

func TestWidth(t *testing.T) {
	if w := Char('a').Width(); w != 1 {
		t.Errorf("Expected width 1 for ASCII, got %d", w)
	}
	if w := Char('世').Width(); w != 2 {
		t.Errorf("Expected width 2 for CJK, got %d", w)
	}
	if !Char('😀').IsWide() {
		t.Error("Expected emoji to be wide")
	}
	if w := Empty.Width(); w != 1 {
		t.Errorf("Expected NUL to occupy one column, got %d", w)
	}
	if w := Char('\u0301').Width(); w != 0 {
		t.Errorf("Expected combining mark width 0, got %d", w)
	}
	for _, r := range []rune{'\a', '\x1b', 0x7f, 0x9b} {
		if w := Char(r).Width(); w != 1 {
			t.Errorf("Expected control %q width 1, got %d", r, w)
		}
		if got := Char(r).Printable(); got != ' ' {
			t.Errorf("Expected control %q to print as space, got %q", r, got)
		}
	}
	if Empty.Printable() != ' ' {
		t.Errorf("Expected NUL to print as space, got %q", Empty.Printable())
	}
}

func TestStyle(t *testing.T) {
	fg, bg, _ := New('x', ColorRed, ColorBlue).Style().Decompose()
	if fg != tcell.ColorRed || bg != tcell.ColorBlue {
		t.Errorf("Style colors = (%v, %v), want (red, blue)", fg, bg)
	}
}
