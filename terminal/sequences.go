package terminal

import (
	"strconv"
)

// escapeSequence maps the bytes after ESC [ or ESC O to a key
type escapeSequence struct {
	key Key
	mod Modifier
}

// Final bytes of CSI 1;mod X style sequences and SS3 sequences
var letterKeys = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
	'P': KeyF1,
	'Q': KeyF2,
	'R': KeyF3,
	'S': KeyF4,
}

// Numeric parameters of CSI N ~ and CSI N;mod ~ sequences
var tildeKeys = map[int]Key{
	1:  KeyHome,
	2:  KeyInsert,
	3:  KeyDelete,
	4:  KeyEnd,
	5:  KeyPageUp,
	6:  KeyPageDown,
	7:  KeyHome,
	8:  KeyEnd,
	11: KeyF1,
	12: KeyF2,
	13: KeyF3,
	14: KeyF4,
	15: KeyF5,
	17: KeyF6,
	18: KeyF7,
	19: KeyF8,
	20: KeyF9,
	21: KeyF10,
	23: KeyF11,
	24: KeyF12,
}

// xtermModifier decodes the xterm modifier parameter (1 + bitmask)
func xtermModifier(p int) Modifier {
	bits := p - 1
	var m Modifier
	if bits&1 != 0 {
		m |= ModShift
	}
	if bits&2 != 0 {
		m |= ModAlt
	}
	if bits&4 != 0 {
		m |= ModCtrl
	}
	return m
}

var csiMap, ss3Map = buildSequenceMaps()

// buildSequenceMaps expands the key tables with every xterm modifier combination (2..8)
func buildSequenceMaps() (map[string]escapeSequence, map[string]escapeSequence) {
	csiSeq := map[string]escapeSequence{
		"Z": {KeyBacktab, ModShift},
		// Linux console function keys
		"[A": {KeyF1, ModNone},
		"[B": {KeyF2, ModNone},
		"[C": {KeyF3, ModNone},
		"[D": {KeyF4, ModNone},
		"[E": {KeyF5, ModNone},
	}
	ss3Seq := map[string]escapeSequence{
		"M": {KeyEnter, ModNone}, // Keypad Enter
	}

	for final, key := range letterKeys {
		f := string(final)
		ss3Seq[f] = escapeSequence{key, ModNone}
		// F1-F4 only arrive through SS3 unmodified
		if key < KeyF1 {
			csiSeq[f] = escapeSequence{key, ModNone}
		}
		for p := 2; p <= 8; p++ {
			csiSeq["1;"+strconv.Itoa(p)+f] = escapeSequence{key, xtermModifier(p)}
		}
	}

	for n, key := range tildeKeys {
		num := strconv.Itoa(n)
		csiSeq[num+"~"] = escapeSequence{key, ModNone}
		for p := 2; p <= 8; p++ {
			csiSeq[num+";"+strconv.Itoa(p)+"~"] = escapeSequence{key, xtermModifier(p)}
		}
	}

	return csiSeq, ss3Seq
}

// lookupCSI performs zero-alloc map lookup via compiler optimization
// The string([]byte) conversion inline in map access does not allocate
func lookupCSI(seq []byte) (Key, Modifier, bool) {
	if s, ok := csiMap[string(seq)]; ok {
		return s.key, s.mod, true
	}
	return KeyNone, ModNone, false
}

// lookupSS3 performs zero-alloc map lookup
func lookupSS3(seq []byte) (Key, Modifier, bool) {
	if s, ok := ss3Map[string(seq)]; ok {
		return s.key, s.mod, true
	}
	return KeyNone, ModNone, false
}
