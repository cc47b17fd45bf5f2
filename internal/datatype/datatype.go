package datatype

import "strings"

// Well-known type names.
const (
	TypeObject = "object"
	TypeString = "string"
	TypeDate   = "date"
	TypeAST    = "ast"
)

// DataType is a nominal type tag with an optional format qualifier.
// The zero Format means "no format".
type DataType struct {
	Type   string
	Format string
}

// New returns a DataType without format.
func New(typ string) DataType {
	return DataType{Type: typ}
}

// NewWithFormat returns a DataType qualified by format.
func NewWithFormat(typ, format string) DataType {
	return DataType{Type: typ, Format: format}
}

// Object returns the "object" data type.
func Object() DataType { return New(TypeObject) }

// String returns the "string" data type, qualified by format when given.
func String(format string) DataType { return NewWithFormat(TypeString, format) }

// HasFormat reports whether the data type carries a format qualifier.
func (d DataType) HasFormat() bool {
	return d.Format != ""
}

// WithFormat returns a copy of d qualified by format.
func (d DataType) WithFormat(format string) DataType {
	d.Format = format
	return d
}

// WithoutFormat returns a copy of d without format.
func (d DataType) WithoutFormat() DataType {
	d.Format = ""
	return d
}

// Matches compares d with other. Types must be identical; formats are
// compared only when partial is false.
func (d DataType) Matches(other DataType, partial bool) bool {
	if d.Type != other.Type {
		return false
	}

	return partial || d.Format == other.Format
}

// Equal is exact matching.
func (d DataType) Equal(other DataType) bool {
	return d.Matches(other, false)
}

// String returns "type" or "type<format>".
func (d DataType) String() string {
	if d.Format == "" {
		return d.Type
	}

	return d.Type + "<" + d.Format + ">"
}

// ParseDataType parses "type" or "type<format>".
func ParseDataType(s string) (DataType, error) {
	if s == "" {
		return DataType{}, invalid(s, "empty string")
	}

	open := strings.IndexByte(s, '<')
	if open < 0 {
		if strings.IndexByte(s, '>') >= 0 {
			return DataType{}, invalid(s, "unbalanced angle brackets")
		}

		if strings.IndexByte(s, ':') >= 0 {
			return DataType{}, invalid(s, "unexpected ':'")
		}

		return New(s), nil
	}

	if open == 0 {
		return DataType{}, invalid(s, "missing type name")
	}

	if !strings.HasSuffix(s, ">") {
		return DataType{}, invalid(s, "unbalanced angle brackets")
	}

	typ := s[:open]
	format := s[open+1 : len(s)-1]

	switch {
	case strings.ContainsAny(typ, ">:"):
		return DataType{}, invalid(s, "invalid type name")
	case format == "":
		return DataType{}, invalid(s, "empty format")
	case strings.ContainsAny(format, "<>"):
		return DataType{}, invalid(s, "nested angle brackets")
	}

	return NewWithFormat(typ, format), nil
}

// MustParseDataType is like ParseDataType but panics on error.
func MustParseDataType(s string) DataType {
	d, err := ParseDataType(s)
	if err != nil {
		panic(err)
	}

	return d
}
