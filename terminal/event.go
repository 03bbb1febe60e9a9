package terminal

import (
	"fmt"
)

// EventType distinguishes input event categories
type EventType uint8

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	EventFocus
	EventPaste
	EventError  // Read error
	EventClosed // Input closed
)

// Event represents a terminal input event
// Only the fields matching Type are meaningful
type Event struct {
	Type  EventType
	Key   KeyEvent   // EventKey
	Mouse MouseEvent // EventMouse

	Width  int // EventResize
	Height int // EventResize

	Focused bool   // EventFocus
	Text    string // EventPaste, empty when the backend only reports paste boundaries
	Err     error  // EventError
}

// KeyPress builds a key event
func KeyPress(k KeyEvent) Event {
	return Event{Type: EventKey, Key: k}
}

// MouseInput builds a mouse event
func MouseInput(m MouseEvent) Event {
	return Event{Type: EventMouse, Mouse: m}
}

// Resized builds a resize event
func Resized(width, height int) Event {
	return Event{Type: EventResize, Width: width, Height: height}
}

func (t EventType) String() string {
	switch t {
	case EventKey:
		return "key"
	case EventMouse:
		return "mouse"
	case EventResize:
		return "resize"
	case EventFocus:
		return "focus"
	case EventPaste:
		return "paste"
	case EventError:
		return "error"
	case EventClosed:
		return "closed"
	default:
		return "none"
	}
}

func (e Event) String() string {
	switch e.Type {
	case EventKey:
		return "key " + e.Key.String()
	case EventMouse:
		return "mouse " + e.Mouse.String()
	case EventResize:
		return fmt.Sprintf("resize %dx%d", e.Width, e.Height)
	case EventError:
		return fmt.Sprintf("error %v", e.Err)
	default:
		return e.Type.String()
	}
}
