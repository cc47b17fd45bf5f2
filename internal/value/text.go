package value

import (
	"strings"

	"go.uber.org/zap"

	"datashell/internal/datatype"
	"datashell/internal/format"
	"datashell/internal/transform"
)

// Text wraps a string in a known format. It behaves as an immutable
// string: every operation returns a new Text.
type Text struct {
	value                string
	format               string
	source               any
	sourceTransformation *datatype.Transformation
	eng                  *Engine
}

func (t *Text) engine() *Engine {
	if t.eng == nil {
		return Default()
	}

	return t.eng
}

func (t *Text) derive(s string) *Text {
	return &Text{value: s, format: t.format, source: t, eng: t.eng}
}

func (t *Text) String() string {
	return t.value
}

// Value returns the wrapped string.
func (t *Text) Value() string {
	return t.value
}

// Unwrap returns the wrapped string.
func (t *Text) Unwrap() any {
	return t.value
}

// Format returns the format qualifier, empty when unknown.
func (t *Text) Format() string {
	return t.format
}

// Ext returns the file extension for the format.
func (t *Text) Ext() string {
	return format.Ext(t.format)
}

// WithFormat returns the same text tagged with format f.
func (t *Text) WithFormat(f string) *Text {
	out := t.derive(t.value)
	out.format = format.Resolve(f)

	return out
}

func (t *Text) Source() any {
	return t.source
}

func (t *Text) SetSource(source any) {
	t.source = source
}

// SourceTransformation returns the transformation that produced t.
func (t *Text) SourceTransformation() (datatype.Transformation, bool) {
	if t.sourceTransformation == nil {
		return datatype.Transformation{}, false
	}

	return *t.sourceTransformation, true
}

func (t *Text) SetSourceTransformation(tr datatype.Transformation) {
	t.sourceTransformation = &tr
}

// RootSource follows sources to the original value.
func (t *Text) RootSource() any {
	return transform.RootSource(t)
}

// Equal compares the string values of t and other, which may be a Text or
// a string. Formats do not take part.
func (t *Text) Equal(other any) bool {
	return t.Compare(other) == 0 && isStringLike(other)
}

// Compare orders t and other by string value.
func (t *Text) Compare(other any) int {
	return strings.Compare(t.value, stringOf(other))
}

func isStringLike(v any) bool {
	switch v.(type) {
	case string, *Text:
		return true
	default:
		return false
	}
}

func stringOf(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case *Text:
		return x.value
	default:
		return ""
	}
}

// parse converts t, read as format f, to target and wraps the result in
// Data with t as source.
func (t *Text) parse(f string, target datatype.DataType) (*Data, error) {
	tr := datatype.NewTransformation(datatype.NewWithFormat(TextType, f), target)

	out, err := t.engine().Transform(t, tr)
	if err != nil {
		return nil, err
	}

	d, ok := out.(*Data)
	if !ok {
		d = t.engine().Data(out)
		d.SetSourceTransformation(tr)
	}

	d.source = t

	return d, nil
}

func dataTarget() datatype.DataType {
	return datatype.New(DataType)
}

func (t *Text) JSON() (*Data, error)      { return t.parse(format.JSON, dataTarget()) }
func (t *Text) YAML() (*Data, error)      { return t.parse(format.YAML, dataTarget()) }
func (t *Text) TOML() (*Data, error)      { return t.parse(format.TOML, dataTarget()) }
func (t *Text) CSV() (*Data, error)       { return t.parse(format.CSV, dataTarget()) }
func (t *Text) XML() (*Data, error)       { return t.parse(format.XML, dataTarget()) }
func (t *Text) HTML() (*Data, error)      { return t.parse(format.HTML, dataTarget()) }
func (t *Text) URL() (*Data, error)       { return t.parse(format.URL, dataTarget()) }
func (t *Text) Lines() (*Data, error)     { return t.parse(format.Lines, dataTarget()) }
func (t *Text) Comma() (*Data, error)     { return t.parse(format.Comma, dataTarget()) }
func (t *Text) Semicolon() (*Data, error) { return t.parse(format.Semicolon, dataTarget()) }

// Date parses t as an ISO 8601 timestamp; the Data wraps a time.Time.
func (t *Text) Date() (*Data, error) {
	return t.parse(format.Date, valueTypeFor(format.Date))
}

// AST parses t as source code. The language follows the text format when
// it names one, otherwise the engine's configured language.
func (t *Text) AST() (*Data, error) {
	lang := t.engine().astFormat

	switch t.format {
	case format.Go, format.JavaScript, format.TypeScript:
		lang = t.format
	}

	return t.parse(lang, valueTypeFor(lang))
}

// Data parses t according to its own format. Dates and source code
// come back as their own value types, see Date and AST.
func (t *Text) Data() (*Data, error) {
	return t.parse(t.format, valueTypeFor(t.format))
}

// Markdown converts HTML text to Markdown.
func (t *Text) Markdown() (*Text, error) {
	tr := datatype.NewTransformation(
		datatype.NewWithFormat(TextType, format.HTML),
		datatype.NewWithFormat(TextType, format.Markdown),
	)

	out, err := t.engine().Transform(t, tr)
	if err != nil {
		return nil, err
	}

	md := out.(*Text)
	md.source = t

	return md, nil
}

// Save writes t to the item it was loaded from.
func (t *Text) Save() error {
	item, ok := t.RootSource().(Item)
	if !ok {
		return ErrNoItem
	}

	return t.SaveAs(item)
}

// SaveAs writes t to item.
func (t *Text) SaveAs(item Item) error {
	t.engine().Logger().Debug("saving text", zap.String("path", item.Path()), zap.String("format", t.format))
	return item.Write(t.value)
}
