package terminal

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// keyToName maps Key constants to canonical names
var keyToName = map[Key]string{
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBacktab:   "backtab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",

	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "page_up",
	KeyPageDown: "page_down",
	KeyInsert:   "insert",

	KeyF1:  "f1",
	KeyF2:  "f2",
	KeyF3:  "f3",
	KeyF4:  "f4",
	KeyF5:  "f5",
	KeyF6:  "f6",
	KeyF7:  "f7",
	KeyF8:  "f8",
	KeyF9:  "f9",
	KeyF10: "f10",
	KeyF11: "f11",
	KeyF12: "f12",
}

// nameToKey is the reverse lookup, built from keyToName
var nameToKey map[string]Key

var nameToMod = map[string]Modifier{
	"shift": ModShift,
	"alt":   ModAlt,
	"ctrl":  ModCtrl,
}

func init() {
	nameToKey = make(map[string]Key, len(keyToName)+2)
	for k, v := range keyToName {
		nameToKey[v] = k
	}
	// Aliases
	nameToKey["shift_tab"] = KeyBacktab
	nameToKey["esc"] = KeyEscape
}

// KeyName returns the canonical string name for a Key constant
// Returns empty string for KeyNone and KeyRune
func KeyName(k Key) string {
	return keyToName[k]
}

// KeyByName resolves a canonical name to a Key constant
func KeyByName(name string) (Key, bool) {
	k, ok := nameToKey[name]
	return k, ok
}

// ParseKey is the inverse of KeyEvent.String: "q", "space", "ctrl+c", "shift+alt+f5"
func ParseKey(s string) (KeyEvent, error) {
	if s == "" {
		return KeyEvent{}, errors.New("empty key")
	}
	var modPart, last string
	switch {
	case s == "+":
		last = "+"
	case strings.HasSuffix(s, "++"):
		modPart, last = s[:len(s)-2], "+"
	default:
		i := strings.LastIndex(s, "+")
		modPart, last = s[:max(i, 0)], s[i+1:]
	}
	if last == "" {
		return KeyEvent{}, errors.Errorf("missing key in %q", s)
	}

	var mod Modifier
	if modPart != "" {
		for _, p := range strings.Split(modPart, "+") {
			m, ok := nameToMod[strings.ToLower(p)]
			if !ok {
				return KeyEvent{}, errors.Errorf("unknown modifier %q in %q", p, s)
			}
			mod |= m
		}
	}

	if last == "space" {
		return RuneKey(' ').WithMod(mod), nil
	}
	if k, ok := KeyByName(strings.ToLower(last)); ok {
		return NewKey(k, mod), nil
	}
	if utf8.RuneCountInString(last) == 1 {
		r, _ := utf8.DecodeRuneInString(last)
		return RuneKey(r).WithMod(mod), nil
	}
	return KeyEvent{}, errors.Errorf("unknown key %q", s)
}
