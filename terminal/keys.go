package terminal

import (
	"strings"
)

// Key represents a parsed input key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check KeyEvent.Rune)

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab // Shift+Tab
	KeyBackspace
	KeyDelete

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// Modifier flags
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// String renders the set flags joined by '+', e.g. "ctrl+alt"
func (m Modifier) String() string {
	if m == ModNone {
		return "none"
	}
	var parts []string
	if m&ModCtrl != 0 {
		parts = append(parts, "ctrl")
	}
	if m&ModAlt != 0 {
		parts = append(parts, "alt")
	}
	if m&ModShift != 0 {
		parts = append(parts, "shift")
	}
	return strings.Join(parts, "+")
}

// KeyEvent is a key together with its modifiers
// Comparable with ==; control letters are reported as Rune 'a'..'z' with ModCtrl
type KeyEvent struct {
	Key  Key
	Rune rune
	Mod  Modifier
}

// RuneKey returns the unmodified event for a printable character
func RuneKey(r rune) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: r}
}

// NewKey returns the event for a non-rune key with modifiers
func NewKey(k Key, mod Modifier) KeyEvent {
	return KeyEvent{Key: k, Mod: mod}
}

// WithMod returns a copy of the event carrying mod instead of its own modifiers
func (k KeyEvent) WithMod(mod Modifier) KeyEvent {
	k.Mod = mod
	return k
}

// String returns a readable form such as "ctrl+c", "alt+up" or "x"
func (k KeyEvent) String() string {
	var name string
	switch k.Key {
	case KeyRune:
		if k.Rune == ' ' {
			name = "space"
		} else {
			name = string(k.Rune)
		}
	case KeyNone:
		name = "none"
	default:
		name = KeyName(k.Key)
	}
	if k.Mod == ModNone {
		return name
	}
	return k.Mod.String() + "+" + name
}
