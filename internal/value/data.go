package value

import (
	"github.com/davecgh/go-spew/spew"

	"datashell/internal/codec"
	"datashell/internal/datatype"
	"datashell/internal/format"
	"datashell/internal/transform"
)

// Data wraps a structured value.
type Data struct {
	value                any
	source               any
	sourceTransformation *datatype.Transformation
	eng                  *Engine
}

func (d *Data) engine() *Engine {
	if d.eng == nil {
		return Default()
	}

	return d.eng
}

// derive wraps v as a value computed from d.
func (d *Data) derive(v any) *Data {
	return &Data{value: v, source: d, eng: d.eng}
}

// Value returns the wrapped value.
func (d *Data) Value() any {
	return d.value
}

// Unwrap returns the wrapped value.
func (d *Data) Unwrap() any {
	return d.value
}

func (d *Data) Source() any {
	return d.source
}

func (d *Data) SetSource(source any) {
	d.source = source
}

// SourceTransformation returns the transformation that produced d.
func (d *Data) SourceTransformation() (datatype.Transformation, bool) {
	if d.sourceTransformation == nil {
		return datatype.Transformation{}, false
	}

	return *d.sourceTransformation, true
}

func (d *Data) SetSourceTransformation(t datatype.Transformation) {
	d.sourceTransformation = &t
}

// RootSource follows sources to the original value.
func (d *Data) RootSource() any {
	return transform.RootSource(d)
}

// String renders the value in its natural string form.
func (d *Data) String() string {
	s, err := codec.Stringify(d.value)
	if err != nil {
		return ""
	}

	return s
}

var inspector = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Inspect dumps the wrapped value.
func (d *Data) Inspect() string {
	return inspector.Sdump(d.value)
}

// valueTypeFor is the value side of format f. Dates and syntax trees
// have types of their own, every other format is read into Data.
func valueTypeFor(f string) datatype.DataType {
	switch f {
	case format.Date:
		return datatype.New(datatype.TypeDate)
	case format.Go, format.JavaScript, format.TypeScript:
		return datatype.New(datatype.TypeAST)
	default:
		return datatype.New(DataType)
	}
}

// As converts d to text in format f (a format or an alias).
func (d *Data) As(f string) (*Text, error) {
	f = format.Resolve(f)
	t := datatype.NewTransformation(valueTypeFor(f), datatype.NewWithFormat(TextType, f))

	out, err := d.engine().Transform(d, t)
	if err != nil {
		return nil, err
	}

	text := out.(*Text)
	text.source = d

	return text, nil
}

func (d *Data) JSON() (*Text, error)      { return d.As(format.JSON) }
func (d *Data) YAML() (*Text, error)      { return d.As(format.YAML) }
func (d *Data) TOML() (*Text, error)      { return d.As(format.TOML) }
func (d *Data) CSV() (*Text, error)       { return d.As(format.CSV) }
func (d *Data) XML() (*Text, error)       { return d.As(format.XML) }
func (d *Data) HTML() (*Text, error)      { return d.As(format.HTML) }
func (d *Data) Lines() (*Text, error)     { return d.As(format.Lines) }
func (d *Data) Comma() (*Text, error)     { return d.As(format.Comma) }
func (d *Data) Semicolon() (*Text, error) { return d.As(format.Semicolon) }
func (d *Data) URL() (*Text, error)       { return d.As(format.URL) }
func (d *Data) Date() (*Text, error)      { return d.As(format.Date) }

// AST renders a syntax tree back to source in lang (a format or an
// alias); an empty lang means the engine's configured language.
func (d *Data) AST(lang string) (*Text, error) {
	if lang == "" {
		lang = d.engine().astFormat
	}

	return d.As(lang)
}
