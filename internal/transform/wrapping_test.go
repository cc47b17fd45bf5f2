package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datashell/internal/datatype"
)

type box struct {
	value  any
	source any
	tr     *datatype.Transformation
}

func (b *box) Source() any { return b.source }
func (b *box) SetSource(source any) { b.source = source }
func (b *box) SetSourceTransformation(t datatype.Transformation) { b.tr = &t }

type label struct {
	value  string
	format string
	source any
}

func (l *label) Source() any { return l.source }
func (l *label) SetSource(source any) { l.source = source }

var boxSpec = WrapperSpec{
	Name:      "Box",
	ValueType: datatype.Object(),
	Unwrap: func(input any) (any, string, bool) {
		if b, ok := input.(*box); ok {
			return b.value, "", true
		}
		return nil, "", false
	},
	Wrap: func(value any, _ string) any { return &box{value: value} },
}

var labelSpec = WrapperSpec{
	Name:        "Label",
	ValueType:   datatype.String(""),
	KeepsFormat: true,
	Unwrap: func(input any) (any, string, bool) {
		if l, ok := input.(*label); ok {
			return l.value, l.format, true
		}
		return nil, "", false
	},
	Wrap: func(value any, format string) any { return &label{value: value.(string), format: format} },
}

// recorder remembers the transformation it was asked for.
type recorder struct {
	seen []datatype.Transformation
	out  any
}

func (r *recorder) Supports(_ any, t datatype.Transformation) bool {
	return t.Base.Type == "object" && t.Target.Type == "string"
}

func (r *recorder) Transform(_ any, t datatype.Transformation) (any, error) {
	r.seen = append(r.seen, t)
	return r.out, nil
}

func chain(inner Transformer) Transformer {
	return NewWrapping(boxSpec, NewWrapping(labelSpec, inner))
}

func TestWrappingSubstitutesWrapperTypes(t *testing.T) {
	rec := &recorder{out: `{"a":1}`}
	root := chain(rec)

	out, err := root.Transform(&box{value: 1}, datatype.MustParseTransformation("Box:Label<application/json>"))
	require.NoError(t, err)

	require.Len(t, rec.seen, 1)
	assert.Equal(t, "object:string<application/json>", rec.seen[0].String())

	l, ok := out.(*label)
	require.True(t, ok)
	assert.Equal(t, `{"a":1}`, l.value)
	assert.Equal(t, "application/json", l.format)
}

func TestWrappingTransparency(t *testing.T) {
	rec := &recorder{out: "converted"}

	wrapped, err := chain(rec).Transform(&box{value: 1}, datatype.MustParseTransformation("Box:Label<application/json>"))
	require.NoError(t, err)

	raw, err := chain(rec).Transform(1, datatype.MustParseTransformation("object:string<application/json>"))
	require.NoError(t, err)

	assert.Equal(t, raw, wrapped.(*label).value)
}

func TestWrappingIdentityShortCircuit(t *testing.T) {
	rec := &recorder{}
	root := chain(rec)

	tests := []struct {
		name  string
		input any
		tr    string
	}{
		{"unknown type", 42, "Foo:Foo"},
		{"box", &box{value: 42}, "Box:Box"},
		{"box to object", &box{value: 42}, "Box:object"},
		{"label", &label{value: "x", format: "text/csv"}, "Label:Label"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := datatype.MustParseTransformation(tt.tr)
			require.True(t, root.Supports(tt.input, tr))

			out, err := root.Transform(tt.input, tr)
			require.NoError(t, err)

			switch in := tt.input.(type) {
			case *box:
				if b, ok := out.(*box); ok {
					assert.Equal(t, in.value, b.value)
					assert.NotSame(t, in, b)
				} else {
					assert.Equal(t, in.value, out)
				}
			case *label:
				l := out.(*label)
				assert.Equal(t, in.value, l.value)
				assert.Equal(t, in.format, l.format)
			default:
				assert.Equal(t, tt.input, out)
			}
		})
	}

	assert.Empty(t, rec.seen)
}

func TestWrappingCarriesInputFormat(t *testing.T) {
	var seen datatype.Transformation

	inner := &Func{
		SupportsFn: func(any, datatype.Transformation) bool { return true },
		TransformFn: func(input any, t datatype.Transformation) (any, error) {
			seen = t
			return input, nil
		},
	}

	_, err := chain(inner).Transform(&label{value: "a,b", format: "text/csv"}, datatype.MustParseTransformation("Label:Box"))
	require.NoError(t, err)
	assert.Equal(t, "string<text/csv>:object", seen.String())
}

func TestWrappingUnsupportedDelegates(t *testing.T) {
	root := chain(NewAny(nil))

	_, err := root.Transform(&box{}, datatype.MustParseTransformation("Box:Bar"))
	require.ErrorIs(t, err, ErrUnsupportedTransformation)
	assert.Contains(t, err.Error(), "object:Bar")
	assert.False(t, root.Supports(&box{}, datatype.MustParseTransformation("Box:Bar")))
}
