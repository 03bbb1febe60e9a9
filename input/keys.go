package input

import (
	"github.com/lixenwraith/termcanvas/terminal"
)

// KeyState classifies keys as pressed, held or released across frames
// The zero value is ready to use
type KeyState struct {
	pressed  []terminal.KeyEvent
	held     []terminal.KeyEvent
	released []terminal.KeyEvent
}

// Advance closes a frame with the keys reported during it
// All three sets are replaced, a key held over N frames is pressed on
// frame 1, held on frames 1..N and released on frame N+1
func (s *KeyState) Advance(captured []terminal.KeyEvent) {
	candidate := Union(s.pressed, s.held)
	heldNow := Intersect(candidate, captured)
	released := Difference(s.held, heldNow)
	pressed := Difference(captured, heldNow)

	s.held = Union(heldNow, pressed)
	s.pressed = pressed
	s.released = released
}

// Pressed reports whether k went down this frame
func (s *KeyState) Pressed(k terminal.KeyEvent) bool {
	return contains(s.pressed, k)
}

// Held reports whether k is down this frame, including the frame it was pressed
func (s *KeyState) Held(k terminal.KeyEvent) bool {
	return contains(s.held, k)
}

// Released reports whether k stopped being held this frame
func (s *KeyState) Released(k terminal.KeyEvent) bool {
	return contains(s.released, k)
}

func (s *KeyState) PressedKeys() []terminal.KeyEvent {
	return append([]terminal.KeyEvent(nil), s.pressed...)
}

func (s *KeyState) HeldKeys() []terminal.KeyEvent {
	return append([]terminal.KeyEvent(nil), s.held...)
}

func (s *KeyState) ReleasedKeys() []terminal.KeyEvent {
	return append([]terminal.KeyEvent(nil), s.released...)
}

// Reset forgets all key state
func (s *KeyState) Reset() {
	s.pressed = nil
	s.held = nil
	s.released = nil
}
