package transform

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datashell/internal/datatype"
)

// stub supports a single declared transformation with the given mode and
// tags its output with its name.
func stub(name, declared string, mode datatype.MatchMode) *Func {
	decl := datatype.MustParseTransformation(declared)

	return &Func{
		Name:     name,
		Declares: []datatype.Transformation{decl},
		SupportsFn: func(_ any, t datatype.Transformation) bool {
			return decl.Matches(t, mode)
		},
		TransformFn: func(input any, _ datatype.Transformation) (any, error) {
			return name + "(" + toString(input) + ")", nil
		},
	}
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	return "?"
}

func TestAnyFirstMatchWins(t *testing.T) {
	d := NewAny(nil,
		stub("comma", "string<text/x-comma-list>:object", datatype.Partial),
		stub("lines", "string<text/x-line-list>:object", datatype.Partial),
	)

	tr := datatype.MustParseTransformation("string<text/x-line-list>:object")

	for range 5 {
		out, err := d.Transform("a", tr)
		require.NoError(t, err)
		assert.Equal(t, "comma(a)", out)
	}
}

func TestAnyExactFormatSelectsTransformer(t *testing.T) {
	d := NewAny(nil,
		stub("comma", "string<text/x-comma-list>:object", datatype.TargetPartial),
		stub("lines", "string<text/x-line-list>:object", datatype.TargetPartial),
	)

	out, err := d.Transform("a", datatype.MustParseTransformation("string<text/x-line-list>:object"))
	require.NoError(t, err)
	assert.Equal(t, "lines(a)", out)

	_, idx := d.Lookup("a", datatype.MustParseTransformation("string<text/x-comma-list>:object"))
	assert.Equal(t, 0, idx)
}

func TestAnyUnsupported(t *testing.T) {
	d := NewAny(nil, stub("json", "object:string<application/json>", datatype.BasePartial))

	_, err := d.Transform("x", datatype.MustParseTransformation("Foo:Bar"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedTransformation)
	assert.Contains(t, err.Error(), "Foo:Bar")

	var unsupported *UnsupportedTransformationError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "Foo:Bar", unsupported.Transformation.String())
	assert.False(t, d.Supports("x", unsupported.Transformation))
}

func TestAnyUnsupportedSuggests(t *testing.T) {
	d := NewAny(nil,
		stub("json", "object:string<application/json>", datatype.BasePartial),
		stub("yaml", "object:string<application/yaml>", datatype.BasePartial),
	)

	_, err := d.Transform("x", datatype.MustParseTransformation("object:string<application/jsn>"))

	var unsupported *UnsupportedTransformationError
	require.True(t, errors.As(err, &unsupported))
	require.NotEmpty(t, unsupported.Suggestions)
	assert.Equal(t, "object:string<application/json>", unsupported.Suggestions[0])
	assert.True(t, strings.Contains(err.Error(), "did you mean"))
}

func TestAnyPropagatesErrorsUnchanged(t *testing.T) {
	boom := errors.New("boom")
	d := NewAny(nil, &Func{
		SupportsFn:  func(any, datatype.Transformation) bool { return true },
		TransformFn: func(any, datatype.Transformation) (any, error) { return nil, boom },
	})

	_, err := d.Transform("x", datatype.MustParseTransformation("a:b"))
	assert.Same(t, boom, err)
}

func TestAnyDeclared(t *testing.T) {
	d := NewAny(nil,
		stub("json", "object:string<application/json>", datatype.BasePartial),
		&Func{SupportsFn: func(any, datatype.Transformation) bool { return false }},
	)

	assert.Equal(t, 2, d.Len())
	require.Len(t, d.Declared(), 1)
	assert.Equal(t, "object:string<application/json>", d.Declared()[0].String())
}
