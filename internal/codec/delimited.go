package codec

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"

	"datashell/internal/datatype"
	"datashell/internal/format"
)

// Comma converts object <-> string<text/x-comma-list>.
func Comma() *StringCodec {
	return delimited("comma", format.Comma, ",", true)
}

// Lines converts object <-> string<text/x-line-list>.
func Lines() *StringCodec {
	return delimited("lines", format.Lines, "\n", false)
}

// Semicolon converts object <-> string<text/x-semicolon-list>.
func Semicolon() *StringCodec {
	return delimited("semicolon", format.Semicolon, ";", true)
}

// delimited builds a list codec. A trailing delimiter is dropped before
// splitting; trim strips whitespace around every item. Line lists end
// with a newline.
func delimited(name, textFormat, sep string, trim bool) *StringCodec {
	return &StringCodec{
		Name:  name,
		Value: datatype.Object(),
		Text:  datatype.String(textFormat),
		Stringify: func(v any) (string, error) {
			items, err := joinItems(v)
			if err != nil {
				return "", fmt.Errorf("%s: %w", name, err)
			}

			out := strings.Join(items, sep)
			if sep == "\n" && len(items) > 0 {
				out += sep
			}

			return out, nil
		},
		Parse: func(s string) (any, error) {
			return splitItems(s, sep, trim), nil
		},
	}
}

func splitItems(s, sep string, trim bool) []any {
	if sep == "\n" {
		s = strings.ReplaceAll(s, "\r\n", "\n")
	}

	s = strings.TrimSuffix(s, sep)
	if s == "" {
		return []any{}
	}

	parts := strings.Split(s, sep)
	out := make([]any, len(parts))

	for i, p := range parts {
		if trim {
			p = strings.TrimSpace(p)
		}

		out[i] = p
	}

	return out
}

func joinItems(v any) ([]string, error) {
	list, ok := Ordered(v).([]any)
	if !ok {
		return nil, fmt.Errorf("expected an array, got %T", v)
	}

	out := make([]string, len(list))

	for i, item := range list {
		s, err := cast.ToStringE(item)
		if err != nil {
			return nil, err
		}

		out[i] = s
	}

	return out, nil
}
