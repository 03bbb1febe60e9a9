package terminal

import (
	"bytes"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"
)

var (
	pasteStart = []byte("\x1b[200~")
	pasteEnd   = []byte("\x1b[201~")
)

// parser converts raw xterm input bytes into events
// It holds no buffer of its own: parse reports how many bytes were consumed and
// the caller keeps the unconsumed tail for the next call
type parser struct {
	emit func(Event)
}

// parse parses as many complete events as possible, returns bytes consumed (stops on incomplete sequence)
func (p *parser) parse(data []byte) int {
	i := 0
	n := len(data)

	for i < n {
		b := data[i]

		// Fast path: printable ASCII
		if b >= 0x20 && b < 0x7f {
			p.emit(KeyPress(RuneKey(rune(b))))
			i++
			continue
		}

		// Escape sequence
		if b == 0x1b {
			// Need at least 2 bytes to determine sequence type
			if i+1 >= n {
				return i
			}

			consumed, ev := p.parseEscape(data[i:])
			if consumed == 0 {
				return i
			}

			// Swallowed unknown sequences carry no event
			if ev.Type != EventNone {
				p.emit(ev)
			}
			i += consumed
			continue
		}

		// Control characters
		if b < 0x20 {
			p.emit(KeyPress(controlKey(b)))
			i++
			continue
		}

		// DEL
		if b == 0x7f {
			p.emit(KeyPress(NewKey(KeyBackspace, ModNone)))
			i++
			continue
		}

		// UTF-8 multibyte
		seqLen := utf8SeqLen(b)
		if seqLen == 0 {
			// Invalid start byte, skip
			i++
			continue
		}
		if i+seqLen > n {
			return i
		}
		r, size := utf8.DecodeRune(data[i:])
		p.emit(KeyPress(RuneKey(r)))
		i += size
	}
	return i
}

// utf8SeqLen returns expected UTF-8 sequence length from start byte, 0 if invalid
func utf8SeqLen(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b&0xe0 == 0xc0:
		return 2
	case b&0xf0 == 0xe0:
		return 3
	case b&0xf8 == 0xf0:
		return 4
	}
	return 0
}

// parseEscape attempts to parse an escape sequence, returns 0 on incomplete
func (p *parser) parseEscape(data []byte) (int, Event) {
	// ESC ESC -> Alt+Escape
	if data[1] == 0x1b {
		return 2, KeyPress(NewKey(KeyEscape, ModAlt))
	}

	if data[1] == '[' {
		if bytes.HasPrefix(data, pasteStart) || bytes.HasPrefix(pasteStart, data) {
			return p.parsePaste(data)
		}
		return p.parseCSI(data)
	}
	if data[1] == 'O' {
		return p.parseSS3(data)
	}

	// Alt+Control character (ESC + 0x00-0x1F)
	if data[1] < 0x20 {
		k := controlKey(data[1])
		k.Mod |= ModAlt
		return 2, KeyPress(k)
	}

	// Alt+printable
	if data[1] < 0x7f {
		return 2, KeyPress(KeyEvent{Key: KeyRune, Rune: rune(data[1]), Mod: ModAlt})
	}

	// Alt+Backspace
	if data[1] == 0x7f {
		return 2, KeyPress(NewKey(KeyBackspace, ModAlt))
	}

	// Lone ESC followed by a UTF-8 rune, report the escape and leave the rune
	return 1, KeyPress(NewKey(KeyEscape, ModNone))
}

// parsePaste collects a bracketed paste, returns 0 until the closing marker arrives
func (p *parser) parsePaste(data []byte) (int, Event) {
	if len(data) < len(pasteStart) {
		return 0, Event{}
	}
	body := data[len(pasteStart):]
	end := bytes.Index(body, pasteEnd)
	if end < 0 {
		return 0, Event{}
	}
	return len(pasteStart) + end + len(pasteEnd), Event{Type: EventPaste, Text: string(body[:end])}
}

// parseCSI parses CSI sequence without allocation
func (p *parser) parseCSI(data []byte) (int, Event) {
	if len(data) < 3 {
		return 0, Event{}
	}

	// SGR mouse: ESC [ < Btn ; X ; Y M/m
	if data[2] == '<' {
		return p.parseSGRMouse(data)
	}

	end := 2
	maxScan := min(len(data), 16)
	found := false

	for end < maxScan {
		b := data[end]
		end++
		if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~' {
			found = true
			break
		}
		// Linux console F1-F5: ESC [ [ A-E
		if b == '[' && end == 3 {
			continue
		}
		if b < 0x20 || b > 0x7e {
			// Broken sequence, drop the introducer
			return 2, Event{}
		}
	}

	if !found {
		if maxScan == 16 {
			// Overlong garbage, consume it
			return maxScan, Event{}
		}
		return 0, Event{}
	}

	seq := data[2:end]
	if len(seq) == 1 {
		switch seq[0] {
		case 'I':
			return end, Event{Type: EventFocus, Focused: true}
		case 'O':
			return end, Event{Type: EventFocus, Focused: false}
		}
	}

	if key, mod, ok := lookupCSI(seq); ok {
		return end, KeyPress(NewKey(key, mod))
	}

	// Unknown but valid CSI syntax
	return end, Event{}
}

// parseSS3 parses SS3 sequence, returns length even for unknown sequences
func (p *parser) parseSS3(data []byte) (int, Event) {
	if len(data) < 3 {
		return 0, Event{}
	}
	if key, mod, ok := lookupSS3(data[2:3]); ok {
		return 3, KeyPress(NewKey(key, mod))
	}
	return 3, Event{}
}

// controlKey maps control characters to keys
// Ctrl+letter is reported as the lowercase letter with ModCtrl
func controlKey(b byte) KeyEvent {
	switch b {
	case 0x00: // Ctrl+Space or Ctrl+@
		return KeyEvent{Key: KeyRune, Rune: ' ', Mod: ModCtrl}
	case 0x08: // Ctrl+H or Backspace
		return NewKey(KeyBackspace, ModNone)
	case 0x09:
		return NewKey(KeyTab, ModNone)
	case 0x0a, 0x0d: // LF, CR
		return NewKey(KeyEnter, ModNone)
	case 0x1b:
		return NewKey(KeyEscape, ModNone)
	case 0x1c:
		return KeyEvent{Key: KeyRune, Rune: '\\', Mod: ModCtrl}
	case 0x1d:
		return KeyEvent{Key: KeyRune, Rune: ']', Mod: ModCtrl}
	case 0x1e:
		return KeyEvent{Key: KeyRune, Rune: '^', Mod: ModCtrl}
	case 0x1f:
		return KeyEvent{Key: KeyRune, Rune: '_', Mod: ModCtrl}
	}
	if b >= 0x01 && b <= 0x1a {
		return KeyEvent{Key: KeyRune, Rune: rune('a' + b - 1), Mod: ModCtrl}
	}
	return KeyEvent{}
}

// parseSGRMouse parses mouse SGR sequences
func (p *parser) parseSGRMouse(data []byte) (int, Event) {
	// Format: ESC [ < Btn ; X ; Y M/m
	// Minimum: ESC [ < 0 ; 1 ; 1 M = 9 bytes
	end := 3
	for end < len(data) && end < 32 {
		if data[end] == 'M' || data[end] == 'm' {
			break
		}
		end++
	}
	if end >= len(data) {
		return 0, Event{}
	}
	if data[end] != 'M' && data[end] != 'm' {
		// No terminator within the scan window
		return end, Event{}
	}

	btn, x, y, ok := parseSGRParams(data[3:end])
	if !ok {
		return end + 1, Event{}
	}

	// Convert to 0-indexed
	m := MouseEvent{X: x - 1, Y: y - 1}

	// Bits 0-1: button (0=left, 1=middle, 2=right, 3=none)
	// Bit 5 (32): motion
	// Bit 6 (64): wheel
	buttonID := btn & 0x03
	isMotion := btn&32 != 0
	isWheel := btn&64 != 0

	if isWheel {
		m.Action = MouseActionScroll
		switch buttonID {
		case 0:
			m.Button = MouseBtnWheelUp
		case 1:
			m.Button = MouseBtnWheelDown
		case 2:
			m.Button = MouseBtnWheelLeft
		case 3:
			m.Button = MouseBtnWheelRight
		}
	} else {
		switch buttonID {
		case 0:
			m.Button = MouseBtnLeft
		case 1:
			m.Button = MouseBtnMiddle
		case 2:
			m.Button = MouseBtnRight
		case 3:
			m.Button = MouseBtnNone
		}

		switch {
		case data[end] == 'm':
			m.Action = MouseActionRelease
		case isMotion && m.Button != MouseBtnNone:
			m.Action = MouseActionDrag
		case isMotion:
			m.Action = MouseActionMove
		default:
			m.Action = MouseActionPress
		}
	}

	if btn&4 != 0 {
		m.Mod |= ModShift
	}
	if btn&8 != 0 {
		m.Mod |= ModAlt
	}
	if btn&16 != 0 {
		m.Mod |= ModCtrl
	}

	return end + 1, MouseInput(m)
}

// parseSGRParams extracts btn, x, y from "Btn;X;Y" format
func parseSGRParams(data []byte) (btn, x, y int, ok bool) {
	state := 0 // 0=btn, 1=x, 2=y
	val := 0

	for _, b := range data {
		if b == ';' {
			switch state {
			case 0:
				btn = val
			case 1:
				x = val
			}
			state++
			val = 0
			if state > 2 {
				return 0, 0, 0, false
			}
		} else if b >= '0' && b <= '9' {
			val = val*10 + int(b-'0')
			if val > 9999 { // Sanity limit
				return 0, 0, 0, false
			}
		} else {
			return 0, 0, 0, false
		}
	}

	if state != 2 {
		return 0, 0, 0, false
	}
	y = val
	return btn, x, y, true
}

// escapeTimeout is how long a lone ESC waits for the rest of a sequence
const escapeTimeout = 50 * time.Millisecond

// inputReader pumps backend reads through the parser into an event channel
type inputReader struct {
	backend Backend
	parser  parser
	eventCh chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool

	// Stream assembly buffer, holds partial sequences and UTF-8 across reads
	buf []byte
}

func newInputReader(backend Backend) *inputReader {
	r := &inputReader{
		backend: backend,
		eventCh: make(chan Event, 256),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
		buf:     make([]byte, 0, 256),
	}
	r.parser.emit = r.sendEvent
	return r
}

// start begins reading input in a goroutine
func (r *inputReader) start() {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return
	}
	r.running = true
	r.mu.Unlock()

	go r.readLoop()
}

// stop signals the reader to stop
func (r *inputReader) stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	r.mu.Unlock()

	close(r.stopCh)
	// Don't block forever if read is stuck
	select {
	case <-r.doneCh:
	case <-time.After(100 * time.Millisecond):
	}
}

func (r *inputReader) events() <-chan Event {
	return r.eventCh
}

func (r *inputReader) readLoop() {
	defer close(r.doneCh)

	// A reader panic restores the terminal before the caller hears about it
	defer func() {
		if v := recover(); v != nil {
			EmergencyReset(r.backend)
			r.sendEvent(Event{Type: EventError, Err: fmt.Errorf("input reader: %v", v)})
		}
	}()

	for {
		data, err := r.backend.Read(r.stopCh)
		if err != nil {
			r.sendEvent(Event{Type: EventError, Err: err})
			return
		}

		if len(data) == 0 {
			// Poll timeout or stop: a pending lone ESC is a real Escape key
			if len(r.buf) == 1 && r.buf[0] == 0x1b {
				r.sendEvent(KeyPress(NewKey(KeyEscape, ModNone)))
				r.buf = r.buf[:0]
			}
			select {
			case <-r.stopCh:
				r.sendEvent(Event{Type: EventClosed})
				return
			default:
				continue
			}
		}

		r.buf = append(r.buf, data...)
		consumed := r.parser.parse(r.buf)

		if consumed >= len(r.buf) {
			r.buf = r.buf[:0]
		} else if consumed > 0 {
			copy(r.buf, r.buf[consumed:])
			r.buf = r.buf[:len(r.buf)-consumed]
		}
	}
}

// sendEvent sends an event to the channel, non-blocking
func (r *inputReader) sendEvent(ev Event) {
	select {
	case r.eventCh <- ev:
	default:
		// Channel full, drop
	}
}
