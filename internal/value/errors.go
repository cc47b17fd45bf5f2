package value

import (
	"errors"
	"fmt"
)

var (
	// ErrInvariantViolation matches every *InvariantViolationError.
	ErrInvariantViolation = errors.New("invariant violation")
	// ErrNoItem is returned by Text.Save when the text was not loaded
	// from an Item.
	ErrNoItem = errors.New("text has no storage item")
)

// InvariantViolationError reports a programmer error such as an
// array-only operation called on a mapping. It is raised with panic.
type InvariantViolationError struct {
	Op     string
	Reason string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvariantViolation, e.Op, e.Reason)
}

func (e *InvariantViolationError) Is(target error) bool {
	return target == ErrInvariantViolation
}

func violation(op, format string, args ...any) {
	panic(&InvariantViolationError{Op: op, Reason: fmt.Sprintf(format, args...)})
}
