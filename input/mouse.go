package input

import (
	"github.com/lixenwraith/termcanvas/terminal"
)

// MouseState is the snapshot of mouse events captured during the last frame
// Nothing carries over between frames
type MouseState struct {
	events []terminal.MouseEvent
}

// Replace installs the events of a new frame
func (s *MouseState) Replace(events []terminal.MouseEvent) {
	s.events = append(s.events[:0], events...)
}

// Pressed returns where btn went down with exactly mod held
func (s *MouseState) Pressed(btn terminal.MouseButton, mod terminal.Modifier) (x, y int, ok bool) {
	return s.find(terminal.MouseActionPress, btn, mod)
}

// Held returns where btn was dragged with exactly mod held
func (s *MouseState) Held(btn terminal.MouseButton, mod terminal.Modifier) (x, y int, ok bool) {
	return s.find(terminal.MouseActionDrag, btn, mod)
}

// Released returns where btn went up with exactly mod held
func (s *MouseState) Released(btn terminal.MouseButton, mod terminal.Modifier) (x, y int, ok bool) {
	return s.find(terminal.MouseActionRelease, btn, mod)
}

// Scrolled returns where the wheel moved in the direction of btn
func (s *MouseState) Scrolled(btn terminal.MouseButton, mod terminal.Modifier) (x, y int, ok bool) {
	return s.find(terminal.MouseActionScroll, btn, mod)
}

// Events returns a copy of this frame's events
func (s *MouseState) Events() []terminal.MouseEvent {
	return append([]terminal.MouseEvent(nil), s.events...)
}

// find returns the first event of the frame matching action, button and modifiers
func (s *MouseState) find(action terminal.MouseAction, btn terminal.MouseButton, mod terminal.Modifier) (int, int, bool) {
	for _, ev := range s.events {
		if ev.Action == action && ev.Button == btn && ev.Mod == mod {
			return ev.X, ev.Y, true
		}
	}
	return 0, 0, false
}
