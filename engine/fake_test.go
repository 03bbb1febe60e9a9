package engine

import (
	"time"

	"github.com/lixenwraith/termcanvas/pixel"
	"github.com/lixenwraith/termcanvas/terminal"
)

type move struct{ x, y int }

// fakeTerm records drawing calls and serves queued events
// When no event is queued PollEvent advances the clock by the full timeout
type fakeTerm struct {
	w, h  int
	clock *MockClock

	events []terminal.Event

	initErr   error
	flushErr  error
	resizable bool

	inits, finis int
	flushes      int
	moves        []move
	writes       []rune
}

func newFakeTerm(w, h int) *fakeTerm {
	return &fakeTerm{w: w, h: h, clock: NewMockClock(time.Unix(0, 0))}
}

func (f *fakeTerm) push(evs ...terminal.Event) {
	f.events = append(f.events, evs...)
}

func (f *fakeTerm) reset() {
	f.moves = nil
	f.writes = nil
}

func (f *fakeTerm) Init() error {
	f.inits++
	return f.initErr
}

func (f *fakeTerm) Fini() {
	f.finis++
}

func (f *fakeTerm) Size() (int, int) {
	return f.w, f.h
}

func (f *fakeTerm) SetSize(w, h int) error {
	if !f.resizable {
		return terminal.ErrResizeUnsupported
	}
	f.w, f.h = w, h
	return nil
}

func (f *fakeTerm) PollEvent(timeout time.Duration) (terminal.Event, bool) {
	if len(f.events) > 0 {
		ev := f.events[0]
		f.events = f.events[1:]
		return ev, true
	}
	if timeout > 0 {
		f.clock.Advance(timeout)
	}
	return terminal.Event{}, false
}

func (f *fakeTerm) MoveCursor(x, y int) {
	f.moves = append(f.moves, move{x, y})
}

func (f *fakeTerm) WriteCell(p pixel.Pixel) {
	f.writes = append(f.writes, p.Char)
}

func (f *fakeTerm) Flush() error {
	f.flushes++
	return f.flushErr
}
