// Package codec provides the leaf transformers of the conversion engine.
//
// Most formats are string codecs: a registration entry pairing one value
// type (usually "object") with a format-qualified string type, plus a
// stringify and a parse function. A codec serves
//
//	<value>:string<format>   stringify, base side matched partially
//	string<format>:<value>   parse, target side matched partially
//
// Structured values are represented with ordered maps
// (keboola go-utils orderedmap), []any, and scalars (string, bool, int64,
// float64, time.Time, nil). Parse errors of the underlying libraries are
// returned unchanged.
//
// # Registration order
//
// Default returns the codecs in priority order, ToString last:
//
//	JSON, YAML, TOML, CSV, XML, HTML, Markdown, Go AST, JavaScript AST,
//	TypeScript AST, Date, Comma, Lines, Semicolon, URL, ToString
//
// The three delimiter codecs share "object" as value type and are told
// apart only by the requested format. A request without a format on the
// string side never reaches them.
package codec
