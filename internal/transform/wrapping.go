package transform

import "datashell/internal/datatype"

// WrapperSpec describes a wrapper type to the Wrapping decorator.
type WrapperSpec struct {
	// Name is the nominal type of the wrapper, e.g. "Data".
	Name string
	// ValueType replaces Name when delegating, e.g. "object".
	ValueType datatype.DataType
	// Unwrap returns the wrapped value and its format when input is a
	// wrapper instance.
	Unwrap func(input any) (value any, format string, ok bool)
	// Wrap builds a new wrapper around value.
	Wrap func(value any, format string) any
	// KeepsFormat is set for wrappers that track a format.
	KeepsFormat bool
}

// Wrapping lets inner transformers ignore a wrapper type. For each side
// of the requested transformation typed as the wrapper, it substitutes the
// wrapped value type (keeping the side's format), unwraps wrapper inputs,
// delegates, and re-wraps the output when the target side was the
// wrapper.
type Wrapping struct {
	spec  WrapperSpec
	inner Transformer
}

// NewWrapping decorates inner with the wrapper described by spec.
func NewWrapping(spec WrapperSpec, inner Transformer) *Wrapping {
	return &Wrapping{spec: spec, inner: inner}
}

// Inner returns the decorated transformer.
func (w *Wrapping) Inner() Transformer {
	return w.inner
}

type reduced struct {
	input         any
	inputFormat   string
	t             datatype.Transformation
	wrapTarget    bool
	isPassThrough bool
}

func (w *Wrapping) reduce(input any, t datatype.Transformation) reduced {
	r := reduced{input: input, t: t}

	value, inputFormat, isWrapper := w.spec.Unwrap(input)
	if isWrapper {
		r.input = value
		r.inputFormat = inputFormat
	}

	// T:T is an identity even when the wrapper format would differ
	identity := t.IsIdentity()

	if t.Base.Type == w.spec.Name {
		base := w.spec.ValueType.WithFormat(t.Base.Format)
		if !identity && !base.HasFormat() && w.spec.KeepsFormat {
			base = base.WithFormat(r.inputFormat)
		}

		r.t = r.t.WithBase(base)
	}

	if t.Target.Type == w.spec.Name {
		r.wrapTarget = true
		r.t = r.t.WithTarget(w.spec.ValueType.WithFormat(t.Target.Format))
	}

	r.isPassThrough = identity || r.t.IsIdentity()

	return r
}

func (w *Wrapping) Supports(input any, t datatype.Transformation) bool {
	r := w.reduce(input, t)
	if r.isPassThrough {
		return true
	}

	return w.inner.Supports(r.input, r.t)
}

func (w *Wrapping) Transform(input any, t datatype.Transformation) (any, error) {
	r := w.reduce(input, t)

	out := r.input
	if !r.isPassThrough {
		var err error

		out, err = w.inner.Transform(r.input, r.t)
		if err != nil {
			return nil, err
		}
	}

	if !r.wrapTarget {
		return out, nil
	}

	format := ""
	if w.spec.KeepsFormat {
		format = r.t.Target.Format
		if format == "" && r.isPassThrough {
			format = r.inputFormat
		}
	}

	return w.spec.Wrap(out, format), nil
}

// Declared lists the inner declarations; wrapper sides are implicit.
func (w *Wrapping) Declared() []datatype.Transformation {
	return Declared(w.inner)
}
