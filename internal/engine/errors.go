package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCoordinate reports a grid access outside [0,width)×[0,height).
	// The engine wraps its own coordinates, so this always means a caller bug.
	ErrInvalidCoordinate = errors.New("engine: invalid coordinate")

	// ErrNoSpaceAvailable is returned when food cannot be placed because no
	// empty cell is left. The board skips the spawn and retries on the next move.
	ErrNoSpaceAvailable = errors.New("engine: no space available")

	// ErrUnreachableOrientation means a snake cell has neither neighbour,
	// i.e. the body is shorter than two segments. Renderers must abort.
	ErrUnreachableOrientation = errors.New("engine: unreachable orientation")
)

// ValidationError contains details about a level that cannot be simulated.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func invalidCoordinate(x, y, w, h int) error {
	return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrInvalidCoordinate, x, y, w, h)
}
