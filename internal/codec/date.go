package codec

import (
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"
	"github.com/relvacode/iso8601"
	"github.com/spf13/cast"

	"datashell/internal/datatype"
	"datashell/internal/format"
)

// Date converts date <-> string<text/x-date>. Parsing accepts ISO 8601;
// output uses opts.DatePattern (strftime) or RFC 3339 when it is empty.
func Date(opts Options) *StringCodec {
	pattern := opts.DatePattern

	return &StringCodec{
		Name:  "date",
		Value: datatype.New(datatype.TypeDate),
		Text:  datatype.String(format.Date),
		Stringify: func(v any) (string, error) {
			return EncodeDate(v, pattern)
		},
		Parse: DecodeDate,
	}
}

// DecodeDate parses an ISO 8601 timestamp.
func DecodeDate(s string) (any, error) {
	return iso8601.ParseString(strings.TrimSpace(s))
}

// EncodeDate formats v, which is a time.Time or anything cast can turn
// into one.
func EncodeDate(v any, pattern string) (string, error) {
	if u, ok := v.(Unwrapper); ok {
		v = u.Unwrap()
	}

	t, ok := v.(time.Time)
	if !ok {
		var err error
		if t, err = cast.ToTimeE(v); err != nil {
			return "", err
		}
	}

	if pattern == "" {
		return t.Format(time.RFC3339Nano), nil
	}

	f, err := strftime.New(pattern)
	if err != nil {
		return "", err
	}

	return f.FormatString(t), nil
}
