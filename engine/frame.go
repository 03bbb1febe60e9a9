package engine

import (
	"github.com/lixenwraith/termcanvas/input"
	"github.com/lixenwraith/termcanvas/terminal"
)

// EventType distinguishes what Poll returned
type EventType uint8

const (
	EventFrame EventType = iota // frame budget elapsed, input state advanced
	EventKey
	EventMouse
	EventResize
	EventClosed // engine closed, nothing left to wait for
)

// Event is one step of the frame loop as seen by Poll
type Event struct {
	Type   EventType
	Key    terminal.KeyEvent   // EventKey
	Mouse  terminal.MouseEvent // EventMouse
	Width  int                 // EventResize
	Height int                 // EventResize
}

func (t EventType) String() string {
	switch t {
	case EventFrame:
		return "frame"
	case EventKey:
		return "key"
	case EventMouse:
		return "mouse"
	case EventResize:
		return "resize"
	case EventClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// WaitFrame blocks until the current frame's time budget has elapsed
// Input arriving meanwhile is buffered and classified at the frame boundary
func (e *Engine) WaitFrame() {
	for {
		switch e.Poll().Type {
		case EventFrame, EventClosed:
			return
		}
	}
}

// Poll returns the next input event of the current frame, or EventFrame once the frame's
// time budget has elapsed. Each terminal poll waits only for the remaining budget
func (e *Engine) Poll() Event {
	if e.closed {
		return Event{Type: EventClosed}
	}

	for {
		elapsed := e.clock.Now().Sub(e.frameStart)
		if elapsed >= e.limit {
			e.endFrame()
			return Event{Type: EventFrame}
		}

		ev, ok := e.term.PollEvent(e.limit - elapsed)
		if !ok {
			continue
		}

		switch ev.Type {
		case terminal.EventKey:
			e.capturedKeys = append(e.capturedKeys, ev.Key)
			return Event{Type: EventKey, Key: ev.Key}
		case terminal.EventMouse:
			e.capturedMouse = append(e.capturedMouse, ev.Mouse)
			return Event{Type: EventMouse, Mouse: ev.Mouse}
		case terminal.EventResize:
			e.pendingResize = &ev
			e.log.Debug("terminal resized", "width", ev.Width, "height", ev.Height)
			return Event{Type: EventResize, Width: ev.Width, Height: ev.Height}
		case terminal.EventError:
			e.err = ev.Err
			e.log.Error("terminal input error", "error", ev.Err)
		case terminal.EventClosed:
			e.log.Debug("terminal input closed")
		}
		// Focus and paste notifications are ignored
	}
}

// endFrame closes the current frame and classifies its input
func (e *Engine) endFrame() {
	e.frameStart = e.clock.Now()
	e.frameCount++

	e.keys.Advance(e.capturedKeys)
	e.mouse.Replace(e.capturedMouse)
	e.capturedKeys = e.capturedKeys[:0]
	e.capturedMouse = e.capturedMouse[:0]

	e.frameResize = e.pendingResize
	e.pendingResize = nil
}

// FrameCount returns the number of completed frames, wrapping on overflow
func (e *Engine) FrameCount() uint64 {
	return e.frameCount
}

// IsKeyPressed reports whether k went down this frame
func (e *Engine) IsKeyPressed(k terminal.KeyEvent) bool {
	return e.keys.Pressed(k)
}

// IsKeyPressedWithModifier is IsKeyPressed for k combined with mod
func (e *Engine) IsKeyPressedWithModifier(k terminal.KeyEvent, mod terminal.Modifier) bool {
	return e.keys.Pressed(k.WithMod(mod))
}

// IsKeyHeld reports whether k is down this frame
func (e *Engine) IsKeyHeld(k terminal.KeyEvent) bool {
	return e.keys.Held(k)
}

func (e *Engine) IsKeyHeldWithModifier(k terminal.KeyEvent, mod terminal.Modifier) bool {
	return e.keys.Held(k.WithMod(mod))
}

// IsKeyReleased reports whether k stopped being held this frame
func (e *Engine) IsKeyReleased(k terminal.KeyEvent) bool {
	return e.keys.Released(k)
}

func (e *Engine) IsKeyReleasedWithModifier(k terminal.KeyEvent, mod terminal.Modifier) bool {
	return e.keys.Released(k.WithMod(mod))
}

// IsActionPressed reports whether any key bound to action went down this frame
func (e *Engine) IsActionPressed(action string) bool {
	return e.keys.ActionPressed(e.bindings, action)
}

func (e *Engine) IsActionHeld(action string) bool {
	return e.keys.ActionHeld(e.bindings, action)
}

func (e *Engine) IsActionReleased(action string) bool {
	return e.keys.ActionReleased(e.bindings, action)
}

// Keys returns the key classification of the last completed frame
func (e *Engine) Keys() *input.KeyState {
	return &e.keys
}

// MousePressed returns where btn was pressed this frame without modifiers
func (e *Engine) MousePressed(btn terminal.MouseButton) (x, y int, ok bool) {
	return e.mouse.Pressed(btn, terminal.ModNone)
}

func (e *Engine) MousePressedWithModifier(btn terminal.MouseButton, mod terminal.Modifier) (x, y int, ok bool) {
	return e.mouse.Pressed(btn, mod)
}

// MouseHeld returns where btn was dragged this frame without modifiers
func (e *Engine) MouseHeld(btn terminal.MouseButton) (x, y int, ok bool) {
	return e.mouse.Held(btn, terminal.ModNone)
}

func (e *Engine) MouseHeldWithModifier(btn terminal.MouseButton, mod terminal.Modifier) (x, y int, ok bool) {
	return e.mouse.Held(btn, mod)
}

// MouseReleased returns where btn was released this frame without modifiers
func (e *Engine) MouseReleased(btn terminal.MouseButton) (x, y int, ok bool) {
	return e.mouse.Released(btn, terminal.ModNone)
}

func (e *Engine) MouseReleasedWithModifier(btn terminal.MouseButton, mod terminal.Modifier) (x, y int, ok bool) {
	return e.mouse.Released(btn, mod)
}

// MouseScrolled returns where the wheel moved in direction btn this frame
func (e *Engine) MouseScrolled(btn terminal.MouseButton) (x, y int, ok bool) {
	return e.mouse.Scrolled(btn, terminal.ModNone)
}

// MouseEvents returns every mouse event of the last completed frame
func (e *Engine) MouseEvents() []terminal.MouseEvent {
	return e.mouse.Events()
}
