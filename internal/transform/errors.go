package transform

import (
	"errors"
	"fmt"
	"strings"

	"datashell/internal/datatype"
)

// ErrUnsupportedTransformation is matched by UnsupportedTransformationError.
var ErrUnsupportedTransformation = errors.New("unsupported transformation")

// UnsupportedTransformationError is returned when no registered
// transformer supports the requested transformation.
type UnsupportedTransformationError struct {
	Transformation datatype.Transformation
	// Suggestions are declared transformations close to the request.
	Suggestions []string
}

func (e *UnsupportedTransformationError) Error() string {
	msg := fmt.Sprintf("no transformer for transformation %q", e.Transformation.String())
	if len(e.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(quoteAll(e.Suggestions), ", ") + "?)"
	}

	return msg
}

func (e *UnsupportedTransformationError) Is(target error) bool {
	return target == ErrUnsupportedTransformation
}

func quoteAll(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = fmt.Sprintf("%q", s)
	}

	return out
}
