package value

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datashell/internal/codec"
	"datashell/internal/datatype"
	"datashell/internal/format"
	"datashell/internal/item"
	"datashell/internal/transform"
)

func jsonOf(t *testing.T, v any) string {
	t.Helper()

	s, err := codec.EncodeJSON(v, 0)
	require.NoError(t, err)

	return s
}

func mustData(t *testing.T, e *Engine, doc string) *Data {
	t.Helper()

	d, err := e.Text(doc, format.JSON).JSON()
	require.NoError(t, err)

	return d
}

func TestWrapperTransparency(t *testing.T) {
	e := NewEngine()

	x, err := codec.DecodeJSON(`{"a":1,"b":[2,3]}`)
	require.NoError(t, err)

	raw, err := e.TransformString(x, "object:string<application/json>")
	require.NoError(t, err)

	wrapped, err := e.TransformString(e.Data(x), "Data:Text<application/json>")
	require.NoError(t, err)

	text, ok := wrapped.(*Text)
	require.True(t, ok)
	assert.Equal(t, raw, text.Value())
	assert.Equal(t, format.JSON, text.Format())
}

func TestIdentityShortCircuit(t *testing.T) {
	e := NewEngine()
	x := []any{int64(1), "a"}

	tests := []struct {
		name  string
		input any
		t     string
	}{
		{"raw", x, "object:object"},
		{"unknown type", x, "Foo:Foo"},
		{"data", e.Data(x), "Data:Data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := e.TransformString(tt.input, tt.t)
			require.NoError(t, err)
			assert.Equal(t, jsonOf(t, x), jsonOf(t, out))
		})
	}

	t.Run("text keeps its format", func(t *testing.T) {
		out, err := e.TransformString(e.Text("a,b\n", format.CSV), "Text:Text")
		require.NoError(t, err)
		assert.Equal(t, format.CSV, out.(*Text).Format())
		assert.Equal(t, "a,b\n", out.(*Text).Value())
	})
}

func TestUnsupportedTransformation(t *testing.T) {
	_, err := NewEngine().TransformString("x", "Foo:Bar")
	require.Error(t, err)
	assert.True(t, errors.Is(err, transform.ErrUnsupportedTransformation))
	assert.Contains(t, err.Error(), "Foo:Bar")
}

func TestInvalidTransformationString(t *testing.T) {
	_, err := NewEngine().TransformString("x", "object")
	require.Error(t, err)
	assert.ErrorIs(t, err, datatype.ErrInvalidTypeString)
}

func TestMalformedInputPropagates(t *testing.T) {
	for _, in := range []string{`{"a":`, `{"a":1`, `[1,2`, `{"a":[`} {
		t.Run(in, func(t *testing.T) {
			_, err := NewEngine().Text(in, format.JSON).JSON()
			require.Error(t, err)
			assert.NotErrorIs(t, err, transform.ErrUnsupportedTransformation)
		})
	}
}

func TestProvenance(t *testing.T) {
	e := NewEngine()
	fs := afero.NewMemMapFs()
	file := item.NewFile(fs, "in/items.json")
	require.NoError(t, file.Write(`[{"id":1}]`))

	text, err := e.Load(file)
	require.NoError(t, err)
	assert.Equal(t, format.JSON, text.Format())
	assert.Same(t, file, text.Source())

	data, err := text.JSON()
	require.NoError(t, err)
	assert.Same(t, text, data.Source())
	assert.Same(t, file, data.RootSource())

	tr, ok := data.SourceTransformation()
	require.True(t, ok)
	assert.Equal(t, "Text<application/json>:Data", tr.String())

	out, err := data.YAML()
	require.NoError(t, err)
	assert.Same(t, data, out.Source())
	assert.Equal(t, data.RootSource(), out.RootSource())
	assert.Equal(t, "yaml", out.Ext())
}

func TestSourcePreservingThroughEngine(t *testing.T) {
	e := NewEngine()
	origin := e.Text("a,b", format.Comma)

	text := e.Text("[1]", format.JSON)
	text.SetSource(origin)

	out, err := e.TransformString(text, "Text:Data")
	require.NoError(t, err)
	assert.Same(t, origin, out.(*Data).Source())
}

func TestSaveRoundTrip(t *testing.T) {
	e := NewEngine()
	fs := afero.NewMemMapFs()
	file := item.NewFile(fs, "rows.csv")
	require.NoError(t, file.Write("name,qty\nshoe,3\n"))

	text, err := e.Load(file)
	require.NoError(t, err)

	rows, err := text.CSV()
	require.NoError(t, err)

	out, err := rows.Map(func(v, _ any) any {
		m := clone(v)
		_ = e.Data(m).Set("qty", "4")

		return m
	}).CSV()
	require.NoError(t, err)
	require.NoError(t, out.Save())

	content, err := file.Read()
	require.NoError(t, err)
	assert.Equal(t, "name,qty\nshoe,4\n", content)

	assert.ErrorIs(t, e.Text("x", "").Save(), ErrNoItem)
}

func TestCustomTransformersTakePriority(t *testing.T) {
	shout := &transform.Func{
		Name: "shout",
		SupportsFn: func(_ any, t datatype.Transformation) bool {
			return t.Target.Equal(datatype.String(format.JSON))
		},
		TransformFn: func(_ any, _ datatype.Transformation) (any, error) {
			return "JSON!", nil
		},
	}

	e := NewEngine(WithTransformers(shout))

	out, err := e.Data([]any{}).JSON()
	require.NoError(t, err)
	assert.Equal(t, "JSON!", out.Value())
}

func TestDiagnoseShadowedCodec(t *testing.T) {
	d := NewEngine().Diagnose()
	assert.True(t, d.IsValid())

	jsonOut := datatype.NewTransformation(datatype.Object(), datatype.String(format.JSON))
	first := &transform.Func{
		Name:     "compact-json",
		Declares: []datatype.Transformation{jsonOut},
		SupportsFn: func(_ any, t datatype.Transformation) bool {
			return t.Target.Equal(jsonOut.Target)
		},
		TransformFn: func(input any, _ datatype.Transformation) (any, error) {
			return codec.EncodeJSON(input, 0)
		},
	}

	d = NewEngine(WithTransformers(first)).Diagnose()
	require.NotEmpty(t, d.Warnings)
	assert.Equal(t, jsonOut.String(), d.Warnings[0].Transformation)
	assert.Equal(t, "#1 json", d.Warnings[0].Transformer)
}

func TestEngineOptions(t *testing.T) {
	opts := codec.DefaultOptions()
	opts.JSONIndent = 0

	out, err := NewEngine(WithCodecOptions(opts)).Data([]any{int64(1), int64(2)}).JSON()
	require.NoError(t, err)
	assert.Equal(t, "[1,2]", out.Value())
}

func TestTransformations(t *testing.T) {
	list := NewEngine().Transformations()
	require.NotEmpty(t, list)
	assert.Equal(t, "object:string<application/json>", list[0].String())
	assert.Equal(t, "string<application/json>:object", list[1].String())
}

func TestDefaultIsShared(t *testing.T) {
	assert.Same(t, Default(), Default())
	assert.Same(t, Default(), NewData(nil).engine())
}
