package engine

import (
	"github.com/pkg/errors"
)

// Draw writes the cells that changed since the previous Draw and flushes the terminal
//
// Unchanged runs are skipped and the cursor is repositioned once before the next changed
// cell. An empty snapshot, as after construction, Resize or SetScreen, redraws everything.
// The cell after a wide glyph is never written; it is forced when a wide glyph there is
// replaced by a narrow one. A zero-width rune is followed by an explicit cursor move.
func (e *Engine) Draw() error {
	if e.closed {
		return ErrClosed
	}

	cur := e.Screen
	full := e.last.CheckEmpty()
	w, h := cur.Width(), cur.Height()

	for y := 0; y < h; y++ {
		moving := true
		skip, force := false, false

		for x := 0; x < w; x++ {
			if skip {
				skip, force = false, false
				continue
			}

			p, _ := cur.At(x, y)
			prev, ok := e.last.At(x, y)
			changed := full || force || !ok || p != prev
			force = changed && ok && prev.IsWide()

			if changed {
				if moving {
					e.term.MoveCursor(x, y)
				}
				e.term.WriteCell(p)
				// A zero-width rune leaves the terminal cursor in place
				moving = p.Width() == 0
			} else {
				moving = true
			}
			skip = p.IsWide()
		}
	}

	if err := e.term.Flush(); err != nil {
		e.log.Error("draw failed", "error", err)
		return errors.Wrap(err, "draw")
	}

	e.last = cur.Clone()
	return nil
}
