package value

import (
	"reflect"
	"slices"

	"github.com/keboola/go-utils/pkg/orderedmap"
)

type kind int

const (
	arrayKind kind = iota
	mappingKind
)

// entry is one element of a collection. Array keys are int indices,
// mapping keys are strings.
type entry struct {
	key   any
	value any
}

type collection struct {
	kind    kind
	entries []entry
}

// collect views v as a collection. Mappings iterate in insertion order,
// builtin maps in sorted key order. Anything else violates the invariant
// of op.
func collect(op string, v any) collection {
	switch x := v.(type) {
	case *Data:
		return collect(op, x.value)
	case []any:
		c := collection{kind: arrayKind, entries: make([]entry, len(x))}
		for i, item := range x {
			c.entries[i] = entry{key: i, value: item}
		}

		return c
	case *orderedmap.OrderedMap:
		keys := x.Keys()
		c := collection{kind: mappingKind, entries: make([]entry, len(keys))}

		for i, k := range keys {
			val, _ := x.Get(k)
			c.entries[i] = entry{key: k, value: val}
		}

		return c
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}

		slices.Sort(keys)

		c := collection{kind: mappingKind, entries: make([]entry, len(keys))}
		for i, k := range keys {
			c.entries[i] = entry{key: k, value: x[k]}
		}

		return c
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		c := collection{kind: arrayKind, entries: make([]entry, rv.Len())}
		for i := range c.entries {
			c.entries[i] = entry{key: i, value: rv.Index(i).Interface()}
		}

		return c
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			m := make(map[string]any, rv.Len())
			for _, k := range rv.MapKeys() {
				m[k.String()] = rv.MapIndex(k).Interface()
			}

			return collect(op, m)
		}
	}

	violation(op, "value of type %T is neither an array nor a mapping", v)

	return collection{}
}

func (c collection) isMapping() bool {
	return c.kind == mappingKind
}

// build assembles entries into a value of the same kind as c.
func (c collection) build(entries []entry) any {
	if c.kind == arrayKind {
		out := make([]any, len(entries))
		for i, e := range entries {
			out[i] = e.value
		}

		return out
	}

	out := orderedmap.New()
	for _, e := range entries {
		out.Set(e.key.(string), e.value)
	}

	return out
}

func (c collection) values() []any {
	out := make([]any, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.value
	}

	return out
}

func (c collection) keys() []any {
	out := make([]any, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.key
	}

	return out
}

// lookup returns the field of a record, nil when absent.
func lookup(record any, key string) (any, bool) {
	switch x := record.(type) {
	case *Data:
		return lookup(x.value, key)
	case *orderedmap.OrderedMap:
		return x.Get(key)
	case map[string]any:
		v, ok := x[key]
		return v, ok
	default:
		return nil, false
	}
}

func isRecord(v any) bool {
	switch x := v.(type) {
	case *Data:
		return isRecord(x.value)
	case *orderedmap.OrderedMap, map[string]any:
		return true
	default:
		return false
	}
}

// clone copies maps and slices recursively. Wrapped values are cloned
// with their provenance.
func clone(v any) any {
	switch x := v.(type) {
	case *orderedmap.OrderedMap:
		out := orderedmap.New()
		for _, k := range x.Keys() {
			val, _ := x.Get(k)
			out.Set(k, clone(val))
		}

		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[k] = clone(val)
		}

		return out
	case []any:
		out := make([]any, len(x))
		for i, val := range x {
			out[i] = clone(val)
		}

		return out
	case *Data:
		c := *x
		c.value = clone(x.value)

		return &c
	case *Text:
		c := *x
		return &c
	default:
		return v
	}
}
