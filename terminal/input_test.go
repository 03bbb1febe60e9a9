package terminal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseAll(data string) ([]Event, int) {
	var events []Event
	p := parser{emit: func(ev Event) { events = append(events, ev) }}
	n := p.parse([]byte(data))
	return events, n
}

func ctrl(r rune) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: r, Mod: ModCtrl}
}

func TestParseKeys(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want KeyEvent
	}{
		{"ascii", "a", RuneKey('a')},
		{"space", " ", RuneKey(' ')},
		{"utf8 two byte", "é", RuneKey('é')},
		{"utf8 wide", "世", RuneKey('世')},
		{"ctrl c", "\x03", ctrl('c')},
		{"ctrl a", "\x01", ctrl('a')},
		{"ctrl z", "\x1a", ctrl('z')},
		{"ctrl space", "\x00", ctrl(' ')},
		{"ctrl backslash", "\x1c", ctrl('\\')},
		{"ctrl underscore", "\x1f", ctrl('_')},
		{"backspace bs", "\x08", NewKey(KeyBackspace, ModNone)},
		{"backspace del", "\x7f", NewKey(KeyBackspace, ModNone)},
		{"tab", "\t", NewKey(KeyTab, ModNone)},
		{"enter cr", "\r", NewKey(KeyEnter, ModNone)},
		{"enter lf", "\n", NewKey(KeyEnter, ModNone)},
		{"up", "\x1b[A", NewKey(KeyUp, ModNone)},
		{"end", "\x1b[F", NewKey(KeyEnd, ModNone)},
		{"ctrl right", "\x1b[1;5C", NewKey(KeyRight, ModCtrl)},
		{"shift up", "\x1b[1;2A", NewKey(KeyUp, ModShift)},
		{"ctrl alt shift down", "\x1b[1;8B", NewKey(KeyDown, ModCtrl|ModAlt|ModShift)},
		{"delete", "\x1b[3~", NewKey(KeyDelete, ModNone)},
		{"page down", "\x1b[6~", NewKey(KeyPageDown, ModNone)},
		{"alt f5", "\x1b[15;3~", NewKey(KeyF5, ModAlt)},
		{"f12", "\x1b[24~", NewKey(KeyF12, ModNone)},
		{"ss3 f1", "\x1bOP", NewKey(KeyF1, ModNone)},
		{"ss3 up", "\x1bOA", NewKey(KeyUp, ModNone)},
		{"ss3 keypad enter", "\x1bOM", NewKey(KeyEnter, ModNone)},
		{"shift f2 csi", "\x1b[1;2Q", NewKey(KeyF2, ModShift)},
		{"backtab", "\x1b[Z", NewKey(KeyBacktab, ModShift)},
		{"linux console f1", "\x1b[[A", NewKey(KeyF1, ModNone)},
		{"linux console f5", "\x1b[[E", NewKey(KeyF5, ModNone)},
		{"alt x", "\x1bx", KeyEvent{Key: KeyRune, Rune: 'x', Mod: ModAlt}},
		{"alt ctrl c", "\x1b\x03", KeyEvent{Key: KeyRune, Rune: 'c', Mod: ModCtrl | ModAlt}},
		{"alt backspace", "\x1b\x7f", NewKey(KeyBackspace, ModAlt)},
		{"alt escape", "\x1b\x1b", NewKey(KeyEscape, ModAlt)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, n := parseAll(tt.in)
			assert.Equal(t, len(tt.in), n, "consumed")
			require.Len(t, events, 1)
			assert.Equal(t, EventKey, events[0].Type)
			assert.Equal(t, tt.want, events[0].Key)
		})
	}
}

func TestParseMouse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want MouseEvent
	}{
		{"left press", "\x1b[<0;5;3M", MouseEvent{Action: MouseActionPress, Button: MouseBtnLeft, X: 4, Y: 2}},
		{"left release", "\x1b[<0;5;3m", MouseEvent{Action: MouseActionRelease, Button: MouseBtnLeft, X: 4, Y: 2}},
		{"right press", "\x1b[<2;1;1M", MouseEvent{Action: MouseActionPress, Button: MouseBtnRight}},
		{"middle press", "\x1b[<1;1;1M", MouseEvent{Action: MouseActionPress, Button: MouseBtnMiddle}},
		{"left drag", "\x1b[<32;6;3M", MouseEvent{Action: MouseActionDrag, Button: MouseBtnLeft, X: 5, Y: 2}},
		{"move", "\x1b[<35;6;3M", MouseEvent{Action: MouseActionMove, Button: MouseBtnNone, X: 5, Y: 2}},
		{"wheel up", "\x1b[<64;10;20M", MouseEvent{Action: MouseActionScroll, Button: MouseBtnWheelUp, X: 9, Y: 19}},
		{"wheel down", "\x1b[<65;1;1M", MouseEvent{Action: MouseActionScroll, Button: MouseBtnWheelDown}},
		{"ctrl press", "\x1b[<16;1;1M", MouseEvent{Action: MouseActionPress, Button: MouseBtnLeft, Mod: ModCtrl}},
		{"shift alt press", "\x1b[<12;1;1M", MouseEvent{Action: MouseActionPress, Button: MouseBtnLeft, Mod: ModShift | ModAlt}},
		{"large coordinates", "\x1b[<0;300;120M", MouseEvent{Action: MouseActionPress, Button: MouseBtnLeft, X: 299, Y: 119}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, n := parseAll(tt.in)
			assert.Equal(t, len(tt.in), n, "consumed")
			require.Len(t, events, 1)
			assert.Equal(t, EventMouse, events[0].Type)
			assert.Equal(t, tt.want, events[0].Mouse)
		})
	}
}

func TestParseFocusAndPaste(t *testing.T) {
	events, n := parseAll("\x1b[I\x1b[O")
	assert.Equal(t, 6, n)
	require.Len(t, events, 2)
	assert.Equal(t, Event{Type: EventFocus, Focused: true}, events[0])
	assert.Equal(t, Event{Type: EventFocus, Focused: false}, events[1])

	in := "\x1b[200~hello\x1b[Aworld\x1b[201~x"
	events, n = parseAll(in)
	assert.Equal(t, len(in), n)
	require.Len(t, events, 2)
	assert.Equal(t, Event{Type: EventPaste, Text: "hello\x1b[Aworld"}, events[0])
	assert.Equal(t, RuneKey('x'), events[1].Key)
}

func TestParseIncomplete(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		consumed  int
		numEvents int
	}{
		{"lone escape", "\x1b", 0, 0},
		{"csi introducer", "\x1b[", 0, 0},
		{"csi params", "\x1b[1;5", 0, 0},
		{"ss3 introducer", "\x1bO", 0, 0},
		{"mouse without terminator", "\x1b[<0;5;", 0, 0},
		{"keys then partial", "ab\x1b[", 2, 2},
		{"partial utf8", "\xe4\xb8", 0, 0},
		{"key then partial utf8", "x\xe4", 1, 1},
		{"open paste", "\x1b[200~abc", 0, 0},
		{"paste marker prefix", "\x1b[20", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, n := parseAll(tt.in)
			assert.Equal(t, tt.consumed, n)
			assert.Len(t, events, tt.numEvents)
		})
	}
}

func TestParseUnknownSequences(t *testing.T) {
	// Unknown but well-formed sequences are swallowed
	events, n := parseAll("\x1b[99~q")
	assert.Equal(t, 6, n)
	require.Len(t, events, 1)
	assert.Equal(t, RuneKey('q'), events[0].Key)

	events, n = parseAll("\x1bOx")
	assert.Equal(t, 3, n)
	assert.Empty(t, events)

	// Invalid UTF-8 start byte is skipped
	events, n = parseAll("\xffz")
	assert.Equal(t, 2, n)
	require.Len(t, events, 1)
	assert.Equal(t, RuneKey('z'), events[0].Key)
}

func TestParseSequenceStream(t *testing.T) {
	events, n := parseAll("k\x1b[1;5Aj\x1b[<0;1;1M\x03")
	require.Equal(t, 18, n)
	require.Len(t, events, 5)

	assert.Equal(t, RuneKey('k'), events[0].Key)
	assert.Equal(t, NewKey(KeyUp, ModCtrl), events[1].Key)
	assert.Equal(t, RuneKey('j'), events[2].Key)
	assert.Equal(t, EventMouse, events[3].Type)
	assert.Equal(t, ctrl('c'), events[4].Key)
}

func TestParseSGRParams(t *testing.T) {
	btn, x, y, ok := parseSGRParams([]byte("35;120;40"))
	require.True(t, ok)
	assert.Equal(t, []int{35, 120, 40}, []int{btn, x, y})

	for _, bad := range []string{"", "1;2", "1;2;3;4", "1;a;3", "1;99999;1"} {
		_, _, _, ok := parseSGRParams([]byte(bad))
		assert.False(t, ok, bad)
	}
}

func TestInputReaderSplitReads(t *testing.T) {
	b := newFakeBackend(80, 24)
	r := newInputReader(b)
	r.start()
	defer r.stop()

	// A sequence split across reads is reassembled
	b.feed("\x1b[1;")
	b.feed("5Cz")

	assert.Equal(t, NewKey(KeyRight, ModCtrl), nextEvent(t, r.events()).Key)
	assert.Equal(t, RuneKey('z'), nextEvent(t, r.events()).Key)
}

func TestInputReaderLoneEscape(t *testing.T) {
	b := newFakeBackend(80, 24)
	r := newInputReader(b)
	r.start()
	defer r.stop()

	// The backend read times out with ESC pending, which must flush as a key
	b.feed("\x1b")
	assert.Equal(t, NewKey(KeyEscape, ModNone), nextEvent(t, r.events()).Key)
}

func TestInputReaderStop(t *testing.T) {
	b := newFakeBackend(80, 24)
	r := newInputReader(b)
	r.start()
	r.stop()

	ev := nextEvent(t, r.events())
	assert.Equal(t, EventClosed, ev.Type)

	// Second stop is a no-op
	r.stop()
}

func nextEvent(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}
