package codec

import (
	"bytes"
	"fmt"

	"github.com/keboola/go-utils/pkg/orderedmap"
	"gopkg.in/yaml.v3"

	"datashell/internal/datatype"
	"datashell/internal/format"
)

// YAML converts object <-> string<application/yaml> through yaml.Node,
// preserving mapping order.
func YAML() *StringCodec {
	return &StringCodec{
		Name:      "yaml",
		Value:     datatype.Object(),
		Text:      datatype.String(format.YAML),
		Stringify: EncodeYAML,
		Parse:     DecodeYAML,
	}
}

// DecodeYAML parses the first document of s.
func DecodeYAML(s string) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(s), &doc); err != nil {
		return nil, err
	}

	return fromYAMLNode(&doc)
}

func fromYAMLNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case 0:
		return nil, nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}

		return fromYAMLNode(n.Content[0])
	case yaml.AliasNode:
		return fromYAMLNode(n.Alias)
	case yaml.MappingNode:
		m := orderedmap.New()

		for i := 0; i+1 < len(n.Content); i += 2 {
			val, err := fromYAMLNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}

			m.Set(n.Content[i].Value, val)
		}

		return m, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))

		for _, item := range n.Content {
			val, err := fromYAMLNode(item)
			if err != nil {
				return nil, err
			}

			out = append(out, val)
		}

		return out, nil
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}

		return Ordered(v), nil
	default:
		return nil, fmt.Errorf("yaml: unexpected node kind %d", n.Kind)
	}
}

// EncodeYAML serializes v with a two space indent.
func EncodeYAML(v any) (string, error) {
	node, err := toYAMLNode(Ordered(v))
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(node); err != nil {
		return "", err
	}

	if err := enc.Close(); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func toYAMLNode(v any) (*yaml.Node, error) {
	switch x := v.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case *orderedmap.OrderedMap:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

		for _, k := range x.Keys() {
			val, _ := x.Get(k)

			child, err := toYAMLNode(val)
			if err != nil {
				return nil, err
			}

			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
				child,
			)
		}

		return n, nil
	case []any:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}

		for _, item := range x {
			child, err := toYAMLNode(item)
			if err != nil {
				return nil, err
			}

			n.Content = append(n.Content, child)
		}

		return n, nil
	default:
		n := &yaml.Node{}
		if err := n.Encode(x); err != nil {
			return nil, err
		}

		return n, nil
	}
}
