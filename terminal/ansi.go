package terminal

import (
	"bufio"
)

// Pre-allocated ANSI sequence fragments
var (
	csi     = []byte("\x1b[")
	csiRIS  = []byte("\x1bc") // Reset to Initial State (emergency)
	csiSGR0 = []byte("\x1b[0m")
	csiCls  = []byte("\x1b[2J")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	// Screen modes
	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	// DECAWM: ?7l keeps the cursor at the right edge, writing the bottom-right cell never scrolls
	csiAutoWrapOn  = []byte("\x1b[?7h")
	csiAutoWrapOff = []byte("\x1b[?7l")

	// Mouse: button press/release, drag motion, SGR extended coordinates
	csiMouseOn  = []byte("\x1b[?1000h\x1b[?1002h\x1b[?1006h")
	csiMouseOff = []byte("\x1b[?1006l\x1b[?1002l\x1b[?1000l")

	csiPasteOn  = []byte("\x1b[?2004h")
	csiPasteOff = []byte("\x1b[?2004l")
	csiFocusOn  = []byte("\x1b[?1004h")
	csiFocusOff = []byte("\x1b[?1004l")

	// xterm window ops: CSI 8 ; rows ; cols t
	csiResizeWindow = []byte("\x1b[8;")
)

// writeInt writes a non-negative integer without allocation
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	w.Write(buf[i:])
}

// writeCursorPos writes cursor positioning sequence (0-indexed input)
func writeCursorPos(w *bufio.Writer, x, y int) {
	w.Write(csi)
	writeInt(w, y+1)
	w.WriteByte(';')
	writeInt(w, x+1)
	w.WriteByte('H')
}

// writeResizeWindow asks the terminal emulator to resize its window, honored by xterm-like terminals only
func writeResizeWindow(w *bufio.Writer, width, height int) {
	w.Write(csiResizeWindow)
	writeInt(w, height)
	w.WriteByte(';')
	writeInt(w, width)
	w.WriteByte('t')
}
