package codec

import (
	"fmt"

	"datashell/internal/datatype"
	"datashell/internal/transform"
)

// StringCodec is a registration entry converting between Value and the
// format-qualified string type Text. Either function may be nil for
// one-way codecs.
type StringCodec struct {
	Name      string
	Value     datatype.DataType
	Text      datatype.DataType
	Stringify func(v any) (string, error)
	Parse     func(s string) (any, error)

	// Modes default to BasePartial for stringify and TargetPartial for
	// parse.
	StringifyMode *datatype.MatchMode
	ParseMode     *datatype.MatchMode
}

// StringifyTransformation returns Value:Text.
func (c *StringCodec) StringifyTransformation() datatype.Transformation {
	return datatype.NewTransformation(c.Value, c.Text)
}

// ParseTransformation returns Text:Value.
func (c *StringCodec) ParseTransformation() datatype.Transformation {
	return datatype.NewTransformation(c.Text, c.Value)
}

func (c *StringCodec) stringifyMode() datatype.MatchMode {
	if c.StringifyMode != nil {
		return *c.StringifyMode
	}

	return datatype.BasePartial
}

func (c *StringCodec) parseMode() datatype.MatchMode {
	if c.ParseMode != nil {
		return *c.ParseMode
	}

	return datatype.TargetPartial
}

func (c *StringCodec) stringifies(t datatype.Transformation) bool {
	return c.Stringify != nil && c.StringifyTransformation().Matches(t, c.stringifyMode())
}

func (c *StringCodec) parses(t datatype.Transformation) bool {
	return c.Parse != nil && c.ParseTransformation().Matches(t, c.parseMode())
}

func (c *StringCodec) Supports(_ any, t datatype.Transformation) bool {
	return c.stringifies(t) || c.parses(t)
}

func (c *StringCodec) Transform(input any, t datatype.Transformation) (any, error) {
	switch {
	case c.stringifies(t):
		return c.Stringify(input)
	case c.parses(t):
		s, err := asString(input)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Name, err)
		}

		return c.Parse(s)
	default:
		return nil, &transform.UnsupportedTransformationError{Transformation: t}
	}
}

func (c *StringCodec) Declared() []datatype.Transformation {
	var out []datatype.Transformation
	if c.Stringify != nil {
		out = append(out, c.StringifyTransformation())
	}

	if c.Parse != nil {
		out = append(out, c.ParseTransformation())
	}

	return out
}

func (c *StringCodec) String() string {
	return c.Name
}

// NumberPolicy selects how CSV cells are typed.
type NumberPolicy string

const (
	// NumbersAsStrings keeps every cell a string.
	NumbersAsStrings NumberPolicy = "string"
	// NumbersSniff turns cells that parse as integers or floats into
	// int64 / float64.
	NumbersSniff NumberPolicy = "sniff"
)

// Options configures the default codecs.
type Options struct {
	// JSONIndent is the indentation step of JSON output; 0 is compact.
	JSONIndent int
	// CSVComma is the CSV field delimiter.
	CSVComma rune
	// CSVNumbers is the CSV cell typing policy.
	CSVNumbers NumberPolicy
	// DatePattern is a strftime pattern for date output; empty means
	// RFC 3339.
	DatePattern string
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		JSONIndent: 2,
		CSVComma:   ',',
		CSVNumbers: NumbersAsStrings,
	}
}

// Default returns the built-in transformers in priority order.
func Default(opts Options) []transform.Transformer {
	return []transform.Transformer{
		JSON(opts),
		YAML(),
		TOML(),
		CSV(opts),
		XML(),
		HTML(),
		Markdown(),
		GoAST(),
		JavaScriptAST(),
		TypeScriptAST(),
		Date(opts),
		Comma(),
		Lines(),
		Semicolon(),
		URL(),
		ToString(),
	}
}

func exact() *datatype.MatchMode {
	m := datatype.Exact
	return &m
}
