package game

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrBoardFull ends a session: a new piece had no room, or a piece locked
// above the top row.
var ErrBoardFull = errors.New("board full")

// InvariantViolation reports a logic bug caught while advancing a frame, such
// as settling onto an occupied cell. A game that returned one is faulted.
type InvariantViolation struct {
	Op  string
	Err error
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation in %s: %v", e.Op, e.Err)
}

func (e *InvariantViolation) Unwrap() error { return e.Err }

// Cause lets errors.Cause from pkg/errors reach the underlying error.
func (e *InvariantViolation) Cause() error { return e.Err }

func violation(op string, err error) error {
	return errors.WithStack(&InvariantViolation{Op: op, Err: err})
}
