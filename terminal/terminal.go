package terminal

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/termcanvas/pixel"
)

// ErrResizeUnsupported is returned by SetSize when the terminal cannot be resized
var ErrResizeUnsupported = errors.New("terminal resize not supported")

// Terminal is the device an engine renders into and reads input from
type Terminal interface {
	// Init enters managed mode: raw input, alternate screen, hidden cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// SetSize asks the terminal to resize, ErrResizeUnsupported when it cannot
	SetSize(width, height int) error

	// PollEvent waits up to timeout for the next event, timeout <= 0 never blocks
	PollEvent(timeout time.Duration) (Event, bool)

	// MoveCursor positions the write cursor (0-indexed)
	MoveCursor(x, y int)

	// WriteCell writes a styled character at the cursor and advances it by the character width
	WriteCell(p pixel.Pixel)

	// Flush makes everything written since the last flush visible
	Flush() error
}

// ANSIOptions configures the raw xterm backend
type ANSIOptions struct {
	ColorMode ColorMode
	Mouse     bool
}

// ansiTerm implements Terminal with raw escape sequences over a Backend
type ansiTerm struct {
	backend Backend
	out     *outputWriter
	input   *inputReader
	opts    ANSIOptions

	resizeCh chan Event

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// NewANSI creates a terminal on the process tty that speaks xterm escape sequences directly
func NewANSI(opts ANSIOptions) Terminal {
	return newANSI(newBackend(), opts)
}

func newANSI(b Backend, opts ANSIOptions) *ansiTerm {
	if opts.ColorMode == ColorModeAuto {
		opts.ColorMode = DetectColorMode()
	}
	return &ansiTerm{
		backend:  b,
		out:      newOutputWriter(b, opts.ColorMode),
		opts:     opts,
		resizeCh: make(chan Event, 1),
	}
}

// Init enters raw mode and sets up terminal
func (t *ansiTerm) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return errors.Wrap(err, "ansi init")
	}

	w := t.out.writer
	w.Write(csiAltScreenEnter)
	w.Write(csiCursorHide)
	w.Write(csiAutoWrapOff)
	w.Write(csiPasteOn)
	w.Write(csiFocusOn)
	if t.opts.Mouse {
		w.Write(csiMouseOn)
	}
	t.out.clear()
	if err := w.Flush(); err != nil {
		t.backend.Fini()
		return errors.Wrap(err, "ansi init")
	}

	// Keep only the latest size pending
	t.backend.SetResizeHandler(func(w, h int) {
		ev := Resized(w, h)
		select {
		case t.resizeCh <- ev:
		default:
			select {
			case <-t.resizeCh:
			default:
			}
			select {
			case t.resizeCh <- ev:
			default:
			}
		}
	})

	t.input = newInputReader(t.backend)
	t.input.start()

	t.initialized = true
	return nil
}

// Fini restores terminal state
func (t *ansiTerm) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.finalized = true

	t.input.stop()

	w := t.out.writer
	if t.opts.Mouse {
		w.Write(csiMouseOff)
	}
	w.Write(csiFocusOff)
	w.Write(csiPasteOff)
	w.Write(csiSGR0)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	// Re-enable auto-wrap after leaving the alternate screen so the main buffer has it
	w.Write(csiAutoWrapOn)
	w.Flush()

	t.backend.Fini()
}

func (t *ansiTerm) Size() (int, int) {
	return t.backend.Size()
}

// SetSize requests an xterm window resize and waits briefly for the tty to report it
func (t *ansiTerm) SetSize(width, height int) error {
	t.mu.Lock()
	writeResizeWindow(t.out.writer, width, height)
	err := t.out.writer.Flush()
	t.mu.Unlock()
	if err != nil {
		return errors.Wrap(err, "resize request")
	}

	deadline := time.Now().Add(250 * time.Millisecond)
	for time.Now().Before(deadline) {
		if w, h := t.backend.Size(); w == width && h == height {
			return nil
		}
		time.Sleep(10 * time.Millisecond)
	}
	return ErrResizeUnsupported
}

// PollEvent returns pending resize or input events, waiting up to timeout
func (t *ansiTerm) PollEvent(timeout time.Duration) (Event, bool) {
	if t.input == nil {
		return Event{}, false
	}

	select {
	case ev := <-t.resizeCh:
		return ev, true
	case ev := <-t.input.events():
		return ev, true
	default:
	}
	if timeout <= 0 {
		return Event{}, false
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev := <-t.resizeCh:
		return ev, true
	case ev := <-t.input.events():
		return ev, true
	case <-timer.C:
		return Event{}, false
	}
}

func (t *ansiTerm) MoveCursor(x, y int) {
	t.out.moveCursor(x, y)
}

func (t *ansiTerm) WriteCell(p pixel.Pixel) {
	t.out.writeCell(p)
}

func (t *ansiTerm) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.finalized {
		return nil
	}
	if err := t.out.flush(); err != nil {
		return errors.Wrap(err, "ansi flush")
	}
	return nil
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseOff)
	w.Write(csiPasteOff)
	w.Write(csiFocusOff)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
