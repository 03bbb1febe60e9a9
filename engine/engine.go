// Package engine runs a frame-paced render and input loop over a terminal.
//
// An Engine owns the current screen (its drawing methods are promoted), the snapshot of
// the last drawn frame, and the per-frame key and mouse state. Draw writes only the cells
// that changed since the previous Draw. WaitFrame and Poll pace the loop to the configured
// frame rate while buffering input, and classify keys once per frame.
//
// An Engine is not safe for concurrent use.
package engine

import (
	"io"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/termcanvas/input"
	"github.com/lixenwraith/termcanvas/screen"
	"github.com/lixenwraith/termcanvas/terminal"
)

// Engine composes a screen buffer onto a terminal at a fixed frame rate
type Engine struct {
	*screen.Screen
	last *screen.Screen

	term     terminal.Terminal
	clock    Clock
	log      *slog.Logger
	closer   io.Closer
	bindings input.Bindings

	limit      time.Duration
	frameStart time.Time
	frameCount uint64

	keys  input.KeyState
	mouse input.MouseState

	capturedKeys  []terminal.KeyEvent
	capturedMouse []terminal.MouseEvent

	// Latest resize seen while polling, promoted at the frame boundary
	pendingResize *terminal.Event
	frameResize   *terminal.Event

	err    error
	closed bool
}

// sizeFunc picks the screen size from the terminal size
type sizeFunc func(e *Engine, tw, th int) (int, int, error)

// New creates an engine with a width x height screen
// The terminal must already be at least that large
func New(term terminal.Terminal, width, height, fps int, opts ...Option) (*Engine, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	return open(term, fps, opts, func(_ *Engine, tw, th int) (int, int, error) {
		if err := checkSize(tw, th, width, height); err != nil {
			return 0, 0, err
		}
		return width, height, nil
	})
}

// NewFill creates an engine whose screen covers the whole terminal
func NewFill(term terminal.Terminal, fps int, opts ...Option) (*Engine, error) {
	return open(term, fps, opts, func(_ *Engine, tw, th int) (int, int, error) {
		if err := checkSize(tw, th, 1, 1); err != nil {
			return 0, 0, err
		}
		return tw, th, nil
	})
}

// NewFillRequire creates a full-terminal engine that needs at least minWidth x minHeight
// A smaller terminal is asked to grow first
func NewFillRequire(term terminal.Terminal, minWidth, minHeight, fps int, opts ...Option) (*Engine, error) {
	if minWidth <= 0 || minHeight <= 0 {
		return nil, ErrInvalidSize
	}
	return open(term, fps, opts, func(e *Engine, tw, th int) (int, int, error) {
		if tw < minWidth || th < minHeight {
			if err := e.term.SetSize(max(tw, minWidth), max(th, minHeight)); err != nil {
				e.log.Debug("terminal resize request failed", "error", err)
			}
			tw, th = e.term.Size()
		}
		if err := checkSize(tw, th, minWidth, minHeight); err != nil {
			return 0, 0, err
		}
		return tw, th, nil
	})
}

func open(term terminal.Terminal, fps int, opts []Option, size sizeFunc) (*Engine, error) {
	if fps <= 0 {
		return nil, ErrInvalidFPS
	}

	e := &Engine{
		term:  term,
		clock: SystemClock{},
		log:   slog.New(slog.DiscardHandler),
		limit: time.Second / time.Duration(fps),
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := term.Init(); err != nil {
		e.closeLog()
		return nil, errors.Wrap(err, "terminal init")
	}

	tw, th := term.Size()
	w, h, err := size(e, tw, th)
	if err != nil {
		e.log.Error("engine init failed", "error", err)
		term.Fini()
		e.closeLog()
		return nil, err
	}

	e.Screen = screen.New(w, h)
	e.last = screen.NewEmpty(w, h)
	e.frameStart = e.clock.Now()

	e.log.Info("engine started", "width", w, "height", h, "fps", fps, "terminal_width", tw, "terminal_height", th)
	return e, nil
}

// FrameLimit returns the target duration of one frame
func (e *Engine) FrameLimit() time.Duration {
	return e.limit
}

// Terminal returns the terminal the engine draws on
func (e *Engine) Terminal() terminal.Terminal {
	return e.term
}

// Resize resizes the current screen and forces a full redraw on the next Draw
func (e *Engine) Resize(width, height int) {
	e.Screen.Resize(width, height)
	e.last = screen.NewEmpty(e.Screen.Width(), e.Screen.Height())
	e.log.Debug("screen resized", "width", e.Screen.Width(), "height", e.Screen.Height())
}

// CheckResize resizes the screen to the terminal when their sizes differ
func (e *Engine) CheckResize() bool {
	tw, th := e.term.Size()
	if tw == e.Screen.Width() && th == e.Screen.Height() {
		return false
	}
	e.Resize(tw, th)
	return true
}

// Resized reports the last terminal resize received during the previous frame
func (e *Engine) Resized() (width, height int, ok bool) {
	if e.frameResize == nil {
		return 0, 0, false
	}
	return e.frameResize.Width, e.frameResize.Height, true
}

// SetScreen replaces the current screen with a copy of s and forces a full redraw
func (e *Engine) SetScreen(s *screen.Screen) {
	e.Screen = s.Clone()
	e.last = screen.NewEmpty(s.Width(), s.Height())
}

// CurrentScreen returns a copy of the current screen
func (e *Engine) CurrentScreen() *screen.Screen {
	return e.Screen.Clone()
}

// ClearScreen blanks the current screen
func (e *Engine) ClearScreen() {
	e.Screen.Clear()
}

// Err returns the last error reported by the terminal input stream
func (e *Engine) Err() error {
	return e.err
}

// Close restores the terminal, safe to call more than once
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true
	e.term.Fini()
	e.log.Info("engine closed", "frames", e.frameCount)
	e.closeLog()
}

// Guard closes the engine on the way out of the calling function
// Deferred directly, it also restores the terminal before a panic continues unwinding
//
//	eng, err := engine.NewFill(term, 30)
//	...
//	defer eng.Guard()
func (e *Engine) Guard() {
	if r := recover(); r != nil {
		e.log.Error("panic during session", "panic", r)
		e.Close()
		panic(r)
	}
	e.Close()
}

func (e *Engine) closeLog() {
	if e.closer != nil {
		e.closer.Close()
		e.closer = nil
	}
}
