package terminal

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termcanvas/pixel"
)

func TestOutputCoalescesColors(t *testing.T) {
	var buf bytes.Buffer
	o := newOutputWriter(&buf, ColorModeTrueColor)

	red := tcell.NewRGBColor(255, 0, 0)
	o.moveCursor(0, 0)
	o.writeCell(pixel.Fg('a', red))
	o.writeCell(pixel.Fg('b', red))
	o.writeCell(pixel.New('c', red, pixel.ColorBlue))
	o.writeCell(pixel.Char('d'))
	if err := o.flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	want := "\x1b[1;1H" +
		"\x1b[38;2;255;0;0;49m" + "ab" +
		"\x1b[104m" + "c" +
		"\x1b[39;49m" + "d" +
		"\x1b[0m"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestOutputSkipsRedundantMoves(t *testing.T) {
	var buf bytes.Buffer
	o := newOutputWriter(&buf, ColorModeTrueColor)

	o.moveCursor(2, 0)
	o.writeCell(pixel.Char('x'))
	o.moveCursor(3, 0) // already there
	o.writeCell(pixel.Char('世'))
	o.moveCursor(5, 0) // wide glyph advanced by two
	o.writeCell(pixel.Char('y'))
	o.moveCursor(0, 1)
	o.flush()

	want := "\x1b[1;3H\x1b[39;49mx世y\x1b[2;1H\x1b[0m"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestOutputPaletteColors(t *testing.T) {
	tests := []struct {
		name string
		p    pixel.Pixel
		want string
	}{
		{"standard", pixel.New('x', pixel.ColorMaroon, pixel.ColorNavy), "\x1b[31;44mx"},
		{"bright", pixel.New('x', pixel.ColorRed, pixel.ColorWhite), "\x1b[91;107mx"},
		{"extended palette", pixel.New('x', tcell.PaletteColor(200), tcell.PaletteColor(16)), "\x1b[38;5;200;48;5;16mx"},
		{"default", pixel.Char('x'), "\x1b[39;49mx"},
		{"nul prints space", pixel.Empty, "\x1b[39;49m "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			o := newOutputWriter(&buf, ColorModeTrueColor)
			o.writeCell(tt.p)
			o.writer.Flush()
			if got := buf.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOutput256Fallback(t *testing.T) {
	var buf bytes.Buffer
	o := newOutputWriter(&buf, ColorMode256)

	o.writeCell(pixel.New('x', tcell.NewRGBColor(255, 0, 0), tcell.NewRGBColor(8, 8, 8)))
	o.writer.Flush()

	want := "\x1b[38;5;196;48;5;232mx"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestOutputClearInvalidates(t *testing.T) {
	var buf bytes.Buffer
	o := newOutputWriter(&buf, ColorModeTrueColor)

	o.moveCursor(1, 1)
	o.writeCell(pixel.Char('a'))
	o.clear()
	buf.Reset()
	o.writer.Reset(&buf)

	// Same position and colors as before the clear must be re-emitted
	o.moveCursor(2, 1)
	o.writeCell(pixel.Char('b'))
	o.writer.Flush()

	want := "\x1b[2;3H\x1b[39;49mb"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteInt(t *testing.T) {
	for _, n := range []int{0, 7, 42, 255, 1000, 123456} {
		var buf bytes.Buffer
		o := newOutputWriter(&buf, ColorModeTrueColor)
		writeInt(o.writer, n)
		o.writer.Flush()
		if got, want := buf.String(), strconv.Itoa(n); got != want {
			t.Errorf("writeInt(%d) = %q", n, got)
		}
	}
}
