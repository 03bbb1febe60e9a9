package screen

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is matched by every *OutOfBoundsError
	ErrOutOfBounds = errors.New("coordinates out of bounds")

	// ErrLengthMismatch is returned by bulk constructors when the input does not cover width*height cells
	ErrLengthMismatch = errors.New("length does not match width*height")
)

// OutOfBoundsError reports a read outside the buffer
// MaxX/MaxY are the last valid coordinates
type OutOfBoundsError struct {
	X, Y       int
	MaxX, MaxY int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("get pixel out of bounds (coords: [%d, %d], bounds: [%d, %d])", e.X, e.Y, e.MaxX, e.MaxY)
}

// Is makes errors.Is(err, ErrOutOfBounds) succeed
func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}
