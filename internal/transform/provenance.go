package transform

import "datashell/internal/datatype"

// SourcePreserving copies the source of a Sourced input onto outputs that
// accept one, overriding whatever the inner transformer set.
type SourcePreserving struct {
	inner Transformer
}

// NewSourcePreserving decorates inner.
func NewSourcePreserving(inner Transformer) *SourcePreserving {
	return &SourcePreserving{inner: inner}
}

func (p *SourcePreserving) Supports(input any, t datatype.Transformation) bool {
	return p.inner.Supports(input, t)
}

func (p *SourcePreserving) Transform(input any, t datatype.Transformation) (any, error) {
	var source any
	if s, ok := input.(Sourced); ok {
		source = s.Source()
	}

	out, err := p.inner.Transform(input, t)
	if err != nil {
		return nil, err
	}

	if setter, ok := out.(SourceSetter); ok && source != nil {
		setter.SetSource(source)
	}

	return out, nil
}

func (p *SourcePreserving) Declared() []datatype.Transformation {
	return Declared(p.inner)
}

// TransformationRecording stamps the requested transformation onto
// outputs that record one. The stamp is metadata only.
type TransformationRecording struct {
	inner Transformer
}

// NewTransformationRecording decorates inner.
func NewTransformationRecording(inner Transformer) *TransformationRecording {
	return &TransformationRecording{inner: inner}
}

func (r *TransformationRecording) Supports(input any, t datatype.Transformation) bool {
	return r.inner.Supports(input, t)
}

func (r *TransformationRecording) Transform(input any, t datatype.Transformation) (any, error) {
	out, err := r.inner.Transform(input, t)
	if err != nil {
		return nil, err
	}

	if setter, ok := out.(TransformationSetter); ok {
		setter.SetSourceTransformation(t)
	}

	return out, nil
}

func (r *TransformationRecording) Declared() []datatype.Transformation {
	return Declared(r.inner)
}
