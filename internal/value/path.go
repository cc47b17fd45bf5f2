package value

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/keboola/go-utils/pkg/orderedmap"
)

// PathSegment is one step of a Set path: a mapping key or an array index.
type PathSegment struct {
	Key     string
	Index   int
	IsIndex bool
}

// Path is a parsed Set path.
type Path []PathSegment

func (p Path) String() string {
	var b strings.Builder

	for i, s := range p {
		switch {
		case s.IsIndex:
			fmt.Fprintf(&b, "[%d]", s.Index)
		case i > 0:
			b.WriteString("." + s.Key)
		default:
			b.WriteString(s.Key)
		}
	}

	return b.String()
}

// ParsePath parses "a.b[0].c" style paths.
func ParsePath(path string) (Path, error) {
	if path == "" {
		return nil, errors.New("empty path")
	}

	var segments Path

	for part := range strings.SplitSeq(path, ".") {
		name, idx, hasIdx := strings.Cut(part, "[")
		if name == "" && (!hasIdx || len(segments) > 0) {
			return nil, fmt.Errorf("invalid path %q: empty segment", path)
		}

		if name != "" {
			segments = append(segments, PathSegment{Key: name})
		}

		if !hasIdx {
			continue
		}

		for idx = "[" + idx; idx != ""; {
			end := strings.IndexByte(idx, ']')
			if idx[0] != '[' || end < 0 {
				return nil, fmt.Errorf("invalid path %q: malformed index in %q", path, part)
			}

			n, err := strconv.Atoi(idx[1:end])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("invalid path %q: bad index %q", path, idx[1:end])
			}

			segments = append(segments, PathSegment{Index: n, IsIndex: true})
			idx = idx[end+1:]
		}
	}

	return segments, nil
}

// Set assigns v at path, creating missing mappings and arrays on the way.
// Unlike every other operation it modifies d in place. An index may
// address an existing element or append right after the last one.
func (d *Data) Set(path string, v any) error {
	p, err := ParsePath(path)
	if err != nil {
		return err
	}

	updated, err := setIn(d.value, p, unwrapInput(v))
	if err != nil {
		return fmt.Errorf("set %q: %w", path, err)
	}

	d.value = updated

	return nil
}

func unwrapInput(v any) any {
	if d, ok := v.(*Data); ok {
		return d.value
	}

	return v
}

func setIn(container any, p Path, v any) (any, error) {
	if len(p) == 0 {
		return v, nil
	}

	seg, rest := p[0], p[1:]

	if seg.IsIndex {
		var arr []any

		switch x := container.(type) {
		case nil:
		case []any:
			arr = x
		default:
			return nil, fmt.Errorf("index [%d] on %T", seg.Index, container)
		}

		if seg.Index > len(arr) {
			return nil, fmt.Errorf("index [%d] out of range (length %d)", seg.Index, len(arr))
		}

		var current any
		if seg.Index < len(arr) {
			current = arr[seg.Index]
		}

		child, err := setIn(current, rest, v)
		if err != nil {
			return nil, err
		}

		if seg.Index == len(arr) {
			return append(arr, child), nil
		}

		arr[seg.Index] = child

		return arr, nil
	}

	switch x := container.(type) {
	case nil:
		m := orderedmap.New()

		child, err := setIn(nil, rest, v)
		if err != nil {
			return nil, err
		}

		m.Set(seg.Key, child)

		return m, nil
	case *orderedmap.OrderedMap:
		current, _ := x.Get(seg.Key)

		child, err := setIn(current, rest, v)
		if err != nil {
			return nil, err
		}

		x.Set(seg.Key, child)

		return x, nil
	case map[string]any:
		child, err := setIn(x[seg.Key], rest, v)
		if err != nil {
			return nil, err
		}

		x[seg.Key] = child

		return x, nil
	case *Data:
		child, err := setIn(x.value, p, v)
		if err != nil {
			return nil, err
		}

		x.value = child

		return x, nil
	default:
		return nil, fmt.Errorf("key %q on %T", seg.Key, container)
	}
}
