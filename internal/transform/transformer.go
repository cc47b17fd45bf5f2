package transform

import "datashell/internal/datatype"

// Transformer converts values between data types.
type Transformer interface {
	// Supports reports whether the transformer can serve t. It must only
	// compare types and formats (and at most type-assert input).
	Supports(input any, t datatype.Transformation) bool
	// Transform performs the conversion.
	Transform(input any, t datatype.Transformation) (any, error)
}

// Declarer is implemented by transformers that can list the
// transformations they serve. Used for diagnostics only.
type Declarer interface {
	Declared() []datatype.Transformation
}

// Sourced is implemented by values that know what they were derived from.
type Sourced interface {
	Source() any
}

// SourceSetter is implemented by values whose source can be assigned.
type SourceSetter interface {
	SetSource(source any)
}

// TransformationSetter is implemented by values that record the
// transformation which produced them.
type TransformationSetter interface {
	SetSourceTransformation(t datatype.Transformation)
}

// Func adapts a pair of functions to a Transformer.
type Func struct {
	Name        string
	Declares    []datatype.Transformation
	SupportsFn  func(input any, t datatype.Transformation) bool
	TransformFn func(input any, t datatype.Transformation) (any, error)
}

func (f *Func) Supports(input any, t datatype.Transformation) bool {
	return f.SupportsFn(input, t)
}

func (f *Func) Transform(input any, t datatype.Transformation) (any, error) {
	return f.TransformFn(input, t)
}

func (f *Func) Declared() []datatype.Transformation {
	return f.Declares
}

func (f *Func) String() string {
	return f.Name
}

// Declared returns the transformations t declares, or nil.
func Declared(t Transformer) []datatype.Transformation {
	if d, ok := t.(Declarer); ok {
		return d.Declared()
	}

	return nil
}

// RootSource walks Source() links from v to the first value without a
// source. A value that is not Sourced is its own root.
func RootSource(v any) any {
	for {
		s, ok := v.(Sourced)
		if !ok {
			return v
		}

		next := s.Source()
		if next == nil {
			return v
		}

		v = next
	}
}
