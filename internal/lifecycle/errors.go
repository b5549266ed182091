package lifecycle

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is matched by every InvalidTransitionError.
var ErrInvalidTransition = errors.New("invalid lifecycle transition")

// ErrConflict is returned by a Store when the selection changed since it was read.
var ErrConflict = errors.New("selection was modified concurrently")

// ErrEmptyPathway is returned when an operation is given an empty id or name.
var ErrEmptyPathway = errors.New("pathway id or name is required")

// InvalidTransitionError reports an operation that is not allowed from the
// pathway's current state. The selection is left unchanged.
type InvalidTransitionError struct {
	PathwayID string
	Op        Op
	From      State
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s pathway %q: it is %s", e.Op, e.PathwayID, e.From)
}

// Is reports whether target is ErrInvalidTransition.
func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
