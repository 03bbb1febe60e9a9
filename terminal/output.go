package terminal

import (
	"bufio"
	"io"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termcanvas/pixel"
)

// outputWriter streams positioned, styled cells to the terminal
// It tracks the physical cursor and the active color pair so repeated
// positions and colors cost no bytes
type outputWriter struct {
	writer    *bufio.Writer
	colorMode ColorMode

	cursorX     int
	cursorY     int
	cursorValid bool

	// Style state for coalescing
	lastFg    tcell.Color
	lastBg    tcell.Color
	lastValid bool
}

func newOutputWriter(w io.Writer, colorMode ColorMode) *outputWriter {
	return &outputWriter{
		writer:    bufio.NewWriterSize(w, 65536),
		colorMode: colorMode,
	}
}

// moveCursor positions the cursor unless it is already there
func (o *outputWriter) moveCursor(x, y int) {
	if o.cursorValid && x == o.cursorX && y == o.cursorY {
		return
	}
	writeCursorPos(o.writer, x, y)
	o.cursorX = x
	o.cursorY = y
	o.cursorValid = true
}

// writeCell writes one styled character and advances the tracked cursor by its display width
func (o *outputWriter) writeCell(p pixel.Pixel) {
	o.writeStyle(p.Fg, p.Bg)

	r := p.Printable()
	if r < 0x80 {
		o.writer.WriteByte(byte(r))
	} else {
		o.writer.WriteRune(r)
	}
	o.cursorX += p.Width()
}

// writeStyle emits a single SGR sequence for whichever of fg, bg changed
func (o *outputWriter) writeStyle(fg, bg tcell.Color) {
	fgChanged := !o.lastValid || fg != o.lastFg
	bgChanged := !o.lastValid || bg != o.lastBg
	if !fgChanged && !bgChanged {
		return
	}

	w := o.writer
	w.Write(csi)
	if fgChanged {
		o.writeColorParams(fg, false)
	}
	if bgChanged {
		if fgChanged {
			w.WriteByte(';')
		}
		o.writeColorParams(bg, true)
	}
	w.WriteByte('m')

	o.lastFg = fg
	o.lastBg = bg
	o.lastValid = true
}

// writeColorParams writes the SGR parameters for one color (no CSI prefix, no 'm' suffix)
func (o *outputWriter) writeColorParams(c tcell.Color, background bool) {
	w := o.writer
	base := 30
	if background {
		base = 40
	}

	kind, idx := classify(c)
	switch {
	case kind == colorDefault:
		writeInt(w, base+9)
	case kind == colorPalette && idx < 8:
		writeInt(w, base+idx)
	case kind == colorPalette && idx < 16:
		// Bright variants: 90-97 / 100-107
		writeInt(w, base+60+idx-8)
	case kind == colorRGB && o.colorMode == ColorModeTrueColor:
		r, g, b := c.RGB()
		writeInt(w, base+8)
		w.WriteString(";2;")
		writeInt(w, int(r))
		w.WriteByte(';')
		writeInt(w, int(g))
		w.WriteByte(';')
		writeInt(w, int(b))
	default:
		if kind == colorRGB {
			idx = RGBTo256(c)
		}
		writeInt(w, base+8)
		w.WriteString(";5;")
		writeInt(w, idx)
	}
}

// clear resets attributes and erases the screen
func (o *outputWriter) clear() {
	o.writer.Write(csiSGR0)
	o.writer.Write(csiCls)
	o.invalidate()
}

// invalidate forgets cursor and style state, forcing the next write to emit both
func (o *outputWriter) invalidate() {
	o.lastValid = false
	o.cursorValid = false
}

// flush ends the frame with an attribute reset and writes everything buffered
func (o *outputWriter) flush() error {
	if o.lastValid {
		o.writer.Write(csiSGR0)
		o.lastValid = false
	}
	return o.writer.Flush()
}
