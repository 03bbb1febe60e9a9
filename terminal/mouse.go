package terminal

import "strconv"

// MouseButton represents mouse button identity
type MouseButton uint8

const (
	MouseBtnNone MouseButton = iota
	MouseBtnLeft
	MouseBtnMiddle
	MouseBtnRight
	MouseBtnWheelUp
	MouseBtnWheelDown
	MouseBtnWheelLeft
	MouseBtnWheelRight
)

// MouseAction represents the type of mouse event
type MouseAction uint8

const (
	MouseActionNone MouseAction = iota
	MouseActionPress
	MouseActionRelease
	MouseActionMove
	MouseActionDrag
	MouseActionScroll
)

// MouseEvent is a single mouse report in 0-indexed cell coordinates
// Button is MouseBtnNone for plain motion
type MouseEvent struct {
	Action MouseAction
	Button MouseButton
	X, Y   int
	Mod    Modifier
}

// IsWheel reports whether b is one of the four wheel directions
func (b MouseButton) IsWheel() bool {
	return b >= MouseBtnWheelUp && b <= MouseBtnWheelRight
}

func (m MouseEvent) String() string {
	s := m.Action.String()
	if m.Button != MouseBtnNone {
		s += " " + m.Button.String()
	}
	if m.Mod != ModNone {
		s = m.Mod.String() + "+" + s
	}
	return s + " (" + strconv.Itoa(m.X) + "," + strconv.Itoa(m.Y) + ")"
}

func (b MouseButton) String() string {
	switch b {
	case MouseBtnLeft:
		return "left"
	case MouseBtnMiddle:
		return "middle"
	case MouseBtnRight:
		return "right"
	case MouseBtnWheelUp:
		return "wheel_up"
	case MouseBtnWheelDown:
		return "wheel_down"
	case MouseBtnWheelLeft:
		return "wheel_left"
	case MouseBtnWheelRight:
		return "wheel_right"
	default:
		return "none"
	}
}

func (a MouseAction) String() string {
	switch a {
	case MouseActionPress:
		return "press"
	case MouseActionRelease:
		return "release"
	case MouseActionMove:
		return "move"
	case MouseActionDrag:
		return "drag"
	case MouseActionScroll:
		return "scroll"
	default:
		return "none"
	}
}
