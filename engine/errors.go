package engine

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidFPS       = errors.New("fps must be positive")
	ErrInvalidSize      = errors.New("screen size must be positive")
	ErrTerminalTooSmall = errors.New("terminal too small")
	ErrClosed           = errors.New("engine closed")
)

// SizeError reports a terminal smaller than the engine requires
// It matches ErrTerminalTooSmall under errors.Is
type SizeError struct {
	Width, Height       int // actual terminal size
	MinWidth, MinHeight int // required size
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("terminal is %dx%d, need at least %dx%d", e.Width, e.Height, e.MinWidth, e.MinHeight)
}

func (e *SizeError) Is(target error) bool {
	return target == ErrTerminalTooSmall
}

func checkSize(w, h, minW, minH int) error {
	if w < minW || h < minH {
		return &SizeError{Width: w, Height: h, MinWidth: minW, MinHeight: minH}
	}
	return nil
}
