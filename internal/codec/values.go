package codec

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"time"

	"github.com/keboola/go-utils/pkg/orderedmap"
)

// Unwrapper is implemented by wrapper values so that codecs can serialize
// structures that contain them.
type Unwrapper interface {
	Unwrap() any
}

var errNotString = errors.New("input is not a string")

func asString(input any) (string, error) {
	switch x := input.(type) {
	case string:
		return x, nil
	case []byte:
		return string(x), nil
	case Unwrapper:
		return asString(x.Unwrap())
	case fmt.Stringer:
		return x.String(), nil
	default:
		return "", fmt.Errorf("%w: %T", errNotString, input)
	}
}

// Ordered normalizes v into the canonical representation: wrappers are
// unwrapped, mappings become *orderedmap.OrderedMap (map[string]any keys
// sorted), slices become []any, integers int64 and floats float64. The
// result never shares maps or slices with v.
func Ordered(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case string, bool, int64, float64, time.Time:
		return x
	case Unwrapper:
		return Ordered(x.Unwrap())
	case *orderedmap.OrderedMap:
		if x == nil {
			return nil
		}

		out := orderedmap.New()
		for _, k := range x.Keys() {
			val, _ := x.Get(k)
			out.Set(k, Ordered(val))
		}

		return out
	case orderedmap.OrderedMap:
		return Ordered(&x)
	case map[string]any:
		out := orderedmap.New()
		for _, k := range sortedKeys(x) {
			out.Set(k, Ordered(x[k]))
		}

		return out
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = Ordered(item)
		}

		return out
	case []byte:
		return string(x)
	}

	return orderedReflect(reflect.ValueOf(v))
}

func orderedReflect(rv reflect.Value) any {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return int64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return rv.Bool()
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = Ordered(rv.Index(i).Interface())
		}

		return out
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return rv.Interface()
		}

		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}

		sort.Strings(keys)

		out := orderedmap.New()
		for _, k := range keys {
			out.Set(k, Ordered(rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())).Interface()))
		}

		return out
	case reflect.Pointer:
		if rv.IsNil() {
			return nil
		}

		return Ordered(rv.Elem().Interface())
	default:
		return rv.Interface()
	}
}

// Plain converts v into builtin maps and slices. Key order is lost.
func Plain(v any) any {
	switch x := Ordered(v).(type) {
	case *orderedmap.OrderedMap:
		out := make(map[string]any, len(x.Keys()))
		for _, k := range x.Keys() {
			val, _ := x.Get(k)
			out[k] = Plain(val)
		}

		return out
	case []any:
		for i, item := range x {
			x[i] = Plain(item)
		}

		return x
	default:
		return x
	}
}

// IsMapping reports whether v is a mapping value.
func IsMapping(v any) bool {
	switch v.(type) {
	case *orderedmap.OrderedMap, orderedmap.OrderedMap, map[string]any:
		return true
	default:
		return false
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
