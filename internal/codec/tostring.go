package codec

import (
	"fmt"

	"github.com/keboola/go-utils/pkg/orderedmap"
	"github.com/spf13/cast"

	"datashell/internal/datatype"
	"datashell/internal/transform"
)

// ToString is the fallback for requests whose target is a plain string
// without a format. It must stay last in the registry.
func ToString() *transform.Func {
	plain := datatype.String("")

	return &transform.Func{
		Name: "to-string",
		SupportsFn: func(_ any, t datatype.Transformation) bool {
			return t.Target.Equal(plain)
		},
		TransformFn: func(input any, _ datatype.Transformation) (any, error) {
			return Stringify(input)
		},
	}
}

// Stringify coerces v to its natural string form. Structured values that
// cast cannot handle are rendered as compact JSON.
func Stringify(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case []byte:
		return string(x), nil
	case Unwrapper:
		return Stringify(x.Unwrap())
	case *orderedmap.OrderedMap, map[string]any, []any:
		return EncodeJSON(x, 0)
	case fmt.Stringer:
		return x.String(), nil
	}

	if s, err := cast.ToStringE(v); err == nil {
		return s, nil
	}

	return EncodeJSON(v, 0)
}
