package luasrc

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRowFunc is returned when a script does not define row(i).
	ErrNoRowFunc = errors.New("luasrc: script does not define a row function")

	// ErrTimeout is returned when a script call exceeds its time limit.
	ErrTimeout = errors.New("luasrc: script timed out")
)

// ScriptError is a failure of the row generator.
type ScriptError struct {
	// Row is the row being generated, or -1 while loading the script.
	Row int
	Err error
}

func (e *ScriptError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("luasrc: load: %v", e.Err)
	}
	return fmt.Sprintf("luasrc: row %d: %v", e.Row, e.Err)
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}
