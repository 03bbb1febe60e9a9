package engine

import (
	"github.com/lixenwraith/termcanvas/config"
	"github.com/lixenwraith/termcanvas/logging"
	"github.com/lixenwraith/termcanvas/terminal"
)

// NewFromConfig opens the configured backend and sizes the engine from cfg
// Explicit width and height win over a minimum size, which wins over filling the terminal.
// Callers pass default bindings through WithBindings; the keys table is merged over them
func NewFromConfig(cfg config.Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	term, err := openTerminal(cfg)
	if err != nil {
		return nil, err
	}

	log, closer, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	// Keys from the file override bindings passed by the caller
	opts = append([]Option{WithLogger(log)}, opts...)
	opts = append(opts, WithBindings(cfg.Bindings()), func(e *Engine) { e.closer = closer })

	switch {
	case cfg.Width > 0:
		return New(term, cfg.Width, cfg.Height, cfg.FPS, opts...)
	case cfg.MinWidth > 0 || cfg.MinHeight > 0:
		return NewFillRequire(term, max(cfg.MinWidth, 1), max(cfg.MinHeight, 1), cfg.FPS, opts...)
	default:
		return NewFill(term, cfg.FPS, opts...)
	}
}

// openTerminal is replaced in tests
var openTerminal = func(cfg config.Config) (terminal.Terminal, error) {
	if cfg.Backend == config.BackendANSI {
		return terminal.NewANSI(terminal.ANSIOptions{
			ColorMode: cfg.TerminalColorMode(),
			Mouse:     cfg.Mouse,
		}), nil
	}
	return terminal.NewTcell(cfg.Mouse)
}
