package param

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownParameter is returned when a name has no slot in the vector.
	ErrUnknownParameter = errors.New("unknown parameter")

	// ErrDuplicateParameter is returned when a snapshot names a parameter twice.
	ErrDuplicateParameter = errors.New("duplicate parameter")
)

// ErrShapeMismatch indicates that a free-value slice does not match the
// number of varying slots.
type ErrShapeMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("shape mismatch: %d varying parameters, got %d values", e.Expected, e.Actual)
}

func unknown(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownParameter, name)
}
