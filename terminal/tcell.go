package terminal

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/termcanvas/pixel"
)

// tcellTerm implements Terminal on a tcell.Screen
type tcellTerm struct {
	screen tcell.Screen
	mouse  bool

	events  chan tcell.Event
	quit    chan struct{}
	done    chan struct{}
	pending []Event

	// Mouse button state for press/drag/release derivation
	buttons      tcell.ButtonMask
	lastX, lastY int

	// Write cursor
	cx, cy int

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// NewTcell creates a terminal backed by tcell's terminfo driver
func NewTcell(mouse bool) (Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "tcell screen")
	}
	return NewTcellFromScreen(s, mouse), nil
}

// NewTcellFromScreen wraps an existing, not yet initialized tcell screen (e.g. a simulation screen)
func NewTcellFromScreen(s tcell.Screen, mouse bool) Terminal {
	return &tcellTerm{
		screen: s,
		mouse:  mouse,
		events: make(chan tcell.Event, 64),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

func (t *tcellTerm) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return errors.Wrap(err, "tcell init")
	}

	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset))
	t.screen.HideCursor()
	if t.mouse {
		t.screen.EnableMouse(tcell.MouseDragEvents)
	}
	t.screen.EnablePaste()
	t.screen.EnableFocus()
	t.screen.Clear()

	go t.pump()

	t.initialized = true
	return nil
}

// pump forwards tcell events until the screen is finalized
func (t *tcellTerm) pump() {
	defer close(t.done)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.quit:
			return
		}
	}
}

func (t *tcellTerm) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.finalized = true

	close(t.quit)
	t.screen.Fini()

	select {
	case <-t.done:
	case <-time.After(100 * time.Millisecond):
	}
}

func (t *tcellTerm) Size() (int, int) {
	return t.screen.Size()
}

func (t *tcellTerm) SetSize(width, height int) error {
	t.screen.SetSize(width, height)
	if w, h := t.screen.Size(); w != width || h != height {
		return ErrResizeUnsupported
	}
	return nil
}

func (t *tcellTerm) PollEvent(timeout time.Duration) (Event, bool) {
	var deadline <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		deadline = timer.C
	}

	for {
		if len(t.pending) > 0 {
			ev := t.pending[0]
			t.pending = t.pending[1:]
			return ev, true
		}

		var tev tcell.Event
		if deadline == nil {
			select {
			case tev = <-t.events:
			default:
				return Event{}, false
			}
		} else {
			select {
			case tev = <-t.events:
			case <-deadline:
				return Event{}, false
			}
		}
		t.pending = append(t.pending, t.convert(tev)...)
	}
}

func (t *tcellTerm) MoveCursor(x, y int) {
	t.cx, t.cy = x, y
}

func (t *tcellTerm) WriteCell(p pixel.Pixel) {
	t.screen.SetContent(t.cx, t.cy, p.Printable(), nil, p.Style())
	t.cx += p.Width()
}

func (t *tcellTerm) Flush() error {
	t.screen.Show()
	return nil
}

// convert maps one tcell event to zero or more terminal events
func (t *tcellTerm) convert(ev tcell.Event) []Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if k, ok := convertKey(ev); ok {
			return []Event{KeyPress(k)}
		}
	case *tcell.EventMouse:
		return t.convertMouse(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return []Event{Resized(w, h)}
	case *tcell.EventFocus:
		return []Event{{Type: EventFocus, Focused: ev.Focused}}
	case *tcell.EventPaste:
		// Pasted text arrives as key events between the markers
		if ev.Start() {
			return []Event{{Type: EventPaste}}
		}
	case *tcell.EventError:
		return []Event{{Type: EventError, Err: ev}}
	}
	return nil
}

func convertMod(m tcell.ModMask) Modifier {
	var mod Modifier
	if m&tcell.ModShift != 0 {
		mod |= ModShift
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		mod |= ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}
	return mod
}

// convertKey normalizes tcell keys to the same events the ANSI parser produces
func convertKey(ev *tcell.EventKey) (KeyEvent, bool) {
	mod := convertMod(ev.Modifiers())
	k := ev.Key()

	switch k {
	case tcell.KeyRune:
		// Case is already in the rune
		return KeyEvent{Key: KeyRune, Rune: ev.Rune(), Mod: mod &^ ModShift}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return NewKey(KeyBackspace, mod&^ModCtrl), true
	case tcell.KeyTab:
		return NewKey(KeyTab, mod&^ModCtrl), true
	case tcell.KeyBacktab:
		return NewKey(KeyBacktab, mod|ModShift), true
	case tcell.KeyEnter, tcell.KeyLF:
		return NewKey(KeyEnter, mod&^ModCtrl), true
	case tcell.KeyEscape:
		return NewKey(KeyEscape, mod&^ModCtrl), true
	case tcell.KeyDelete:
		return NewKey(KeyDelete, mod), true
	case tcell.KeyUp:
		return NewKey(KeyUp, mod), true
	case tcell.KeyDown:
		return NewKey(KeyDown, mod), true
	case tcell.KeyLeft:
		return NewKey(KeyLeft, mod), true
	case tcell.KeyRight:
		return NewKey(KeyRight, mod), true
	case tcell.KeyHome:
		return NewKey(KeyHome, mod), true
	case tcell.KeyEnd:
		return NewKey(KeyEnd, mod), true
	case tcell.KeyPgUp:
		return NewKey(KeyPageUp, mod), true
	case tcell.KeyPgDn:
		return NewKey(KeyPageDown, mod), true
	case tcell.KeyInsert:
		return NewKey(KeyInsert, mod), true
	case tcell.KeyNUL, tcell.KeyCtrlSpace:
		return ctrlRune(' ', mod), true
	case tcell.KeyCtrlLeftSq:
		return NewKey(KeyEscape, mod&^ModCtrl), true
	}

	// tcell reports control letters both as raw control codes and as KeyCtrl* constants
	switch {
	case k >= tcell.KeyF1 && k <= tcell.KeyF12:
		return NewKey(KeyF1+Key(k-tcell.KeyF1), mod), true
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return ctrlRune('a'+rune(k-tcell.KeyCtrlA), mod), true
	case k >= tcell.KeySOH && k <= tcell.KeySUB:
		// Backspace, Tab and Enter codes were matched above
		return ctrlRune('a'+rune(k-tcell.KeySOH), mod), true
	case k >= tcell.KeyCtrlBackslash && k <= tcell.KeyCtrlUnderscore:
		return ctrlRune('\\'+rune(k-tcell.KeyCtrlBackslash), mod), true
	case k >= tcell.KeyFS && k <= tcell.KeyUS:
		return ctrlRune('\\'+rune(k-tcell.KeyFS), mod), true
	}
	return KeyEvent{}, false
}

func ctrlRune(r rune, mod Modifier) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: r, Mod: mod | ModCtrl}
}

var wheelButtons = []struct {
	mask tcell.ButtonMask
	btn  MouseButton
}{
	{tcell.WheelUp, MouseBtnWheelUp},
	{tcell.WheelDown, MouseBtnWheelDown},
	{tcell.WheelLeft, MouseBtnWheelLeft},
	{tcell.WheelRight, MouseBtnWheelRight},
}

var pressButtons = []struct {
	mask tcell.ButtonMask
	btn  MouseButton
}{
	{tcell.Button1, MouseBtnLeft},
	{tcell.Button3, MouseBtnMiddle},
	{tcell.Button2, MouseBtnRight},
}

// convertMouse derives press, release, drag and move actions from button-mask transitions
func (t *tcellTerm) convertMouse(ev *tcell.EventMouse) []Event {
	x, y := ev.Position()
	mod := convertMod(ev.Modifiers())
	mask := ev.Buttons()

	var out []Event
	emit := func(a MouseAction, b MouseButton) {
		out = append(out, MouseInput(MouseEvent{Action: a, Button: b, X: x, Y: y, Mod: mod}))
	}

	wheel := false
	for _, w := range wheelButtons {
		if mask&w.mask != 0 {
			emit(MouseActionScroll, w.btn)
			wheel = true
		}
	}

	var now tcell.ButtonMask
	for _, b := range pressButtons {
		now |= mask & b.mask
	}
	prev := t.buttons
	moved := x != t.lastX || y != t.lastY

	for _, b := range pressButtons {
		switch {
		case prev&b.mask != 0 && now&b.mask == 0:
			emit(MouseActionRelease, b.btn)
		case prev&b.mask == 0 && now&b.mask != 0:
			emit(MouseActionPress, b.btn)
		case prev&b.mask != 0 && now&b.mask != 0 && moved:
			emit(MouseActionDrag, b.btn)
		}
	}
	if now == 0 && prev == 0 && !wheel && moved {
		emit(MouseActionMove, MouseBtnNone)
	}

	t.buttons = now
	t.lastX, t.lastY = x, y
	return out
}
