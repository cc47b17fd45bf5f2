package codec

import (
	"fmt"
	"strings"

	"github.com/keboola/go-utils/pkg/orderedmap"
)

// Element keys shared by the XML and HTML codecs. An element is an
// ordered map holding its tag name under NameKey, each attribute under
// AttrPrefix+name and its child nodes (elements or text strings) under
// ChildrenKey.
const (
	NameKey     = "#name"
	ChildrenKey = "#children"
	AttrPrefix  = "@"
)

type element struct {
	name     string
	attrs    [][2]string
	children []any
}

func newElementMap(name string, attrs [][2]string, children []any) *orderedmap.OrderedMap {
	m := orderedmap.New()
	m.Set(NameKey, name)

	for _, a := range attrs {
		m.Set(AttrPrefix+a[0], a[1])
	}

	if len(children) > 0 {
		m.Set(ChildrenKey, children)
	}

	return m
}

func readElement(v any) (element, error) {
	m, ok := v.(*orderedmap.OrderedMap)
	if !ok {
		return element{}, fmt.Errorf("expected an element map, got %T", v)
	}

	nameRaw, _ := m.Get(NameKey)

	name, ok := nameRaw.(string)
	if !ok || name == "" {
		return element{}, fmt.Errorf("element without %q", NameKey)
	}

	el := element{name: name}

	for _, k := range m.Keys() {
		val, _ := m.Get(k)

		switch {
		case k == NameKey:
		case k == ChildrenKey:
			children, ok := val.([]any)
			if !ok {
				return element{}, fmt.Errorf("element %q: %q must be an array", name, ChildrenKey)
			}

			el.children = children
		case strings.HasPrefix(k, AttrPrefix):
			s, err := cellString(val)
			if err != nil {
				return element{}, err
			}

			el.attrs = append(el.attrs, [2]string{strings.TrimPrefix(k, AttrPrefix), s})
		default:
			return element{}, fmt.Errorf("element %q: unexpected key %q", name, k)
		}
	}

	return el, nil
}
