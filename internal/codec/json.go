package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/keboola/go-utils/pkg/orderedmap"

	"datashell/internal/datatype"
	"datashell/internal/format"
)

var jsonDecodeAPI = jsoniter.Config{
	EscapeHTML: false,
	UseNumber:  true,
}.Froze()

// JSON converts object <-> string<application/json>. Key order is
// preserved in both directions.
func JSON(opts Options) *StringCodec {
	return &StringCodec{
		Name:  "json",
		Value: datatype.Object(),
		Text:  datatype.String(format.JSON),
		Stringify: func(v any) (string, error) {
			return EncodeJSON(v, opts.JSONIndent)
		},
		Parse: DecodeJSON,
	}
}

// EncodeJSON serializes v, indenting by indent spaces (0 is compact).
func EncodeJSON(v any, indent int) (string, error) {
	api := jsoniter.Config{
		EscapeHTML:    false,
		SortMapKeys:   true,
		IndentionStep: indent,
	}.Froze()

	stream := api.BorrowStream(nil)
	defer api.ReturnStream(stream)

	writeJSON(stream, Ordered(v))

	if stream.Error != nil {
		return "", stream.Error
	}

	return string(stream.Buffer()), nil
}

func writeJSON(stream *jsoniter.Stream, v any) {
	switch x := v.(type) {
	case *orderedmap.OrderedMap:
		keys := x.Keys()
		if len(keys) == 0 {
			stream.WriteEmptyObject()
			return
		}

		stream.WriteObjectStart()

		for i, k := range keys {
			if i > 0 {
				stream.WriteMore()
			}

			stream.WriteObjectField(k)

			val, _ := x.Get(k)
			writeJSON(stream, val)
		}

		stream.WriteObjectEnd()
	case []any:
		if len(x) == 0 {
			stream.WriteEmptyArray()
			return
		}

		stream.WriteArrayStart()

		for i, item := range x {
			if i > 0 {
				stream.WriteMore()
			}

			writeJSON(stream, item)
		}

		stream.WriteArrayEnd()
	default:
		stream.WriteVal(x)
	}
}

// DecodeJSON parses a JSON document. Objects become ordered maps, integral
// numbers int64 and other numbers float64.
func DecodeJSON(s string) (any, error) {
	iter := jsoniter.ParseString(jsonDecodeAPI, s)

	// a top-level number is the only value whose reading may run into
	// the end of input, everything else ends on its own delimiter
	top := iter.WhatIsNext()

	v := readJSON(iter)
	if iter.Error != nil {
		if errors.Is(iter.Error, io.EOF) && top != jsoniter.NumberValue {
			return nil, fmt.Errorf("DecodeJSON: truncated document: %w", io.ErrUnexpectedEOF)
		}

		if err := iterError(iter); err != nil {
			return nil, err
		}
	}

	// anything but a clean EOF after the value is trailing data
	iter.WhatIsNext()

	if iter.Error == nil {
		iter.ReportError("DecodeJSON", "unexpected data after top-level value")
	}

	if err := iterError(iter); err != nil {
		return nil, err
	}

	return v, nil
}

// iterError drops the io.EOF jsoniter sets when it reaches the end of
// input after a complete value.
func iterError(iter *jsoniter.Iterator) error {
	if iter.Error == nil || errors.Is(iter.Error, io.EOF) {
		return nil
	}

	return iter.Error
}

func readJSON(iter *jsoniter.Iterator) any {
	switch iter.WhatIsNext() {
	case jsoniter.ObjectValue:
		m := orderedmap.New()
		iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
			m.Set(key, readJSON(it))
			return it.Error == nil
		})

		return m
	case jsoniter.ArrayValue:
		arr := []any{}
		iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			arr = append(arr, readJSON(it))
			return it.Error == nil
		})

		return arr
	case jsoniter.StringValue:
		return iter.ReadString()
	case jsoniter.NumberValue:
		return jsonNumber(json.Number(iter.ReadNumber()))
	case jsoniter.BoolValue:
		return iter.ReadBool()
	case jsoniter.NilValue:
		iter.ReadNil()
		return nil
	default:
		iter.ReportError("DecodeJSON", "expected a JSON value")
		return nil
	}
}

func jsonNumber(n json.Number) any {
	if i, err := n.Int64(); err == nil {
		return i
	}

	if f, err := n.Float64(); err == nil {
		return f
	}

	return n.String()
}
