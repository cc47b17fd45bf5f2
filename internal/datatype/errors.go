package datatype

import (
	"errors"
	"fmt"
)

// ErrInvalidTypeString is matched by every InvalidTypeStringError.
var ErrInvalidTypeString = errors.New("invalid type string")

// InvalidTypeStringError reports a string that is not a valid DataType
// or Transformation.
type InvalidTypeStringError struct {
	Input  string
	Reason string
}

func (e *InvalidTypeStringError) Error() string {
	return fmt.Sprintf("invalid type string %q: %s", e.Input, e.Reason)
}

func (e *InvalidTypeStringError) Is(target error) bool {
	return target == ErrInvalidTypeString
}

func invalid(input, reason string) error {
	return &InvalidTypeStringError{Input: input, Reason: reason}
}
