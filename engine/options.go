package engine

import (
	"log/slog"

	"github.com/lixenwraith/termcanvas/input"
)

// Option configures an Engine at construction
type Option func(*Engine)

// WithClock replaces the system clock used for frame pacing
func WithClock(c Clock) Option {
	return func(e *Engine) {
		if c != nil {
			e.clock = c
		}
	}
}

// WithLogger sets the engine logger, the default discards everything
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithBindings merges named key bindings for the IsAction queries over those already installed
// An action bound to no keys is removed
func WithBindings(b input.Bindings) Option {
	return func(e *Engine) {
		e.bindings = input.MergeBindings(e.bindings, b)
	}
}
