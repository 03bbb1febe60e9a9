package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/termcanvas/terminal"
)

var keyA = terminal.RuneKey('a')

func TestWaitFrameClassifiesKeys(t *testing.T) {
	eng, f := newTestEngine(t, 4, 2, 30)

	type state struct{ pressed, held, released bool }
	frames := []struct {
		captured []terminal.KeyEvent
		want     state
	}{
		{[]terminal.KeyEvent{keyA}, state{pressed: true, held: true}},
		{[]terminal.KeyEvent{keyA}, state{held: true}},
		{nil, state{released: true}},
		{[]terminal.KeyEvent{keyA}, state{pressed: true, held: true}},
	}

	for i, fr := range frames {
		for _, k := range fr.captured {
			f.push(terminal.KeyPress(k))
		}
		eng.WaitFrame()

		got := state{eng.IsKeyPressed(keyA), eng.IsKeyHeld(keyA), eng.IsKeyReleased(keyA)}
		assert.Equal(t, fr.want, got, "frame %d", i+1)
		assert.Equal(t, uint64(i+1), eng.FrameCount())
	}
}

func TestWaitFramePacing(t *testing.T) {
	eng, f := newTestEngine(t, 4, 2, 10)
	start := f.clock.Now()

	// Events arriving mid-frame do not stretch the frame
	f.push(terminal.KeyPress(keyA), terminal.KeyPress(keyA), terminal.Resized(9, 9))
	eng.WaitFrame()
	assert.Equal(t, 100*time.Millisecond, f.clock.Now().Sub(start))

	eng.WaitFrame()
	assert.Equal(t, 200*time.Millisecond, f.clock.Now().Sub(start))
}

func TestWaitFrameOverrun(t *testing.T) {
	eng, f := newTestEngine(t, 4, 2, 10)

	// A frame that already overran its budget ends without polling
	f.clock.Advance(time.Second)
	f.push(terminal.KeyPress(keyA))
	eng.WaitFrame()

	assert.Equal(t, uint64(1), eng.FrameCount())
	assert.Len(t, f.events, 1, "pending input stays for the next frame")
	assert.False(t, eng.IsKeyPressed(keyA))

	eng.WaitFrame()
	assert.True(t, eng.IsKeyPressed(keyA))
}

func TestPollReturnsEventsThenFrame(t *testing.T) {
	eng, f := newTestEngine(t, 4, 2, 30)

	click := terminal.MouseEvent{Action: terminal.MouseActionPress, Button: terminal.MouseBtnLeft, X: 2, Y: 1}
	f.push(
		terminal.KeyPress(keyA),
		terminal.Event{Type: terminal.EventFocus, Focused: true},
		terminal.MouseInput(click),
		terminal.Resized(12, 7),
	)

	ev := eng.Poll()
	assert.Equal(t, Event{Type: EventKey, Key: keyA}, ev)
	ev = eng.Poll()
	assert.Equal(t, Event{Type: EventMouse, Mouse: click}, ev, "focus is skipped")
	ev = eng.Poll()
	assert.Equal(t, Event{Type: EventResize, Width: 12, Height: 7}, ev)

	// Nothing is classified until the frame ends
	assert.False(t, eng.IsKeyPressed(keyA))
	_, _, ok := eng.Resized()
	assert.False(t, ok)

	assert.Equal(t, EventFrame, eng.Poll().Type)
	assert.True(t, eng.IsKeyPressed(keyA))
	x, y, ok := eng.MousePressed(terminal.MouseBtnLeft)
	require.True(t, ok)
	assert.Equal(t, [2]int{2, 1}, [2]int{x, y})
	w, h, ok := eng.Resized()
	require.True(t, ok)
	assert.Equal(t, [2]int{12, 7}, [2]int{w, h})

	// Frame state does not carry over
	eng.WaitFrame()
	_, _, ok = eng.MousePressed(terminal.MouseBtnLeft)
	assert.False(t, ok)
	_, _, ok = eng.Resized()
	assert.False(t, ok)
}

func TestModifierQueries(t *testing.T) {
	eng, f := newTestEngine(t, 4, 2, 30)

	ctrlC := terminal.KeyEvent{Key: terminal.KeyRune, Rune: 'c', Mod: terminal.ModCtrl}
	drag := terminal.MouseEvent{Action: terminal.MouseActionDrag, Button: terminal.MouseBtnRight, X: 3, Y: 0, Mod: terminal.ModAlt}
	f.push(terminal.KeyPress(ctrlC), terminal.MouseInput(drag))
	eng.WaitFrame()

	c := terminal.RuneKey('c')
	assert.False(t, eng.IsKeyPressed(c))
	assert.True(t, eng.IsKeyPressedWithModifier(c, terminal.ModCtrl))
	assert.True(t, eng.IsKeyHeldWithModifier(c, terminal.ModCtrl))
	assert.False(t, eng.IsKeyPressedWithModifier(c, terminal.ModAlt))

	_, _, ok := eng.MouseHeld(terminal.MouseBtnRight)
	assert.False(t, ok)
	x, y, ok := eng.MouseHeldWithModifier(terminal.MouseBtnRight, terminal.ModAlt)
	require.True(t, ok)
	assert.Equal(t, [2]int{3, 0}, [2]int{x, y})
	assert.Len(t, eng.MouseEvents(), 1)

	eng.WaitFrame()
	assert.True(t, eng.IsKeyReleasedWithModifier(c, terminal.ModCtrl))
}

func TestMouseReleaseAndScroll(t *testing.T) {
	eng, f := newTestEngine(t, 4, 2, 30)

	f.push(
		terminal.MouseInput(terminal.MouseEvent{Action: terminal.MouseActionRelease, Button: terminal.MouseBtnLeft, X: 1, Y: 1}),
		terminal.MouseInput(terminal.MouseEvent{Action: terminal.MouseActionScroll, Button: terminal.MouseBtnWheelDown, X: 0, Y: 1}),
	)
	eng.WaitFrame()

	x, _, ok := eng.MouseReleased(terminal.MouseBtnLeft)
	assert.True(t, ok)
	assert.Equal(t, 1, x)
	_, _, ok = eng.MouseReleasedWithModifier(terminal.MouseBtnLeft, terminal.ModShift)
	assert.False(t, ok)
	_, y, ok := eng.MouseScrolled(terminal.MouseBtnWheelDown)
	assert.True(t, ok)
	assert.Equal(t, 1, y)
	_, _, ok = eng.MousePressedWithModifier(terminal.MouseBtnLeft, terminal.ModNone)
	assert.False(t, ok)
}

func TestPollRecordsInputErrors(t *testing.T) {
	eng, f := newTestEngine(t, 4, 2, 30)
	assert.NoError(t, eng.Err())

	readErr := errors.New("read failed")
	f.push(terminal.Event{Type: terminal.EventError, Err: readErr}, terminal.Event{Type: terminal.EventClosed})
	assert.Equal(t, EventFrame, eng.Poll().Type)
	assert.ErrorIs(t, eng.Err(), readErr)
}

func TestFrameCountWraps(t *testing.T) {
	eng, _ := newTestEngine(t, 4, 2, 30)
	eng.frameCount = ^uint64(0)

	eng.WaitFrame()
	assert.Equal(t, uint64(0), eng.FrameCount())
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "frame", EventFrame.String())
	assert.Equal(t, "resize", EventResize.String())
	assert.Equal(t, "closed", EventClosed.String())
}
