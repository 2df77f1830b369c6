package edit

import (
	"errors"
	"fmt"
)

// ErrRowOutOfRange is returned when an operation names a row the store
// does not have.
var ErrRowOutOfRange = errors.New("row out of range")

// Error reports a failed editor operation.
type Error struct {
	Op  string
	Row int
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("edit: %s row %d: %v", e.Op, e.Row, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
