package codec

import (
	"strings"

	"github.com/antchfx/xmlquery"

	"datashell/internal/datatype"
	"datashell/internal/format"
)

// XML converts object <-> string<application/xml>. The object is the root
// element (see NameKey); comments, processing instructions and
// whitespace-only text are dropped.
func XML() *StringCodec {
	return &StringCodec{
		Name:      "xml",
		Value:     datatype.Object(),
		Text:      datatype.String(format.XML),
		Stringify: EncodeXML,
		Parse:     DecodeXML,
	}
}

// DecodeXML parses s and returns its root element.
func DecodeXML(s string) (any, error) {
	doc, err := xmlquery.Parse(strings.NewReader(s))
	if err != nil {
		return nil, err
	}

	for n := doc.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == xmlquery.ElementNode {
			return fromXMLNode(n), nil
		}
	}

	return nil, nil
}

func fromXMLNode(n *xmlquery.Node) any {
	var attrs [][2]string

	for _, a := range n.Attr {
		name := a.Name.Local
		if a.Name.Space != "" {
			name = a.Name.Space + ":" + name
		}

		attrs = append(attrs, [2]string{name, a.Value})
	}

	var children []any

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case xmlquery.ElementNode:
			children = append(children, fromXMLNode(c))
		case xmlquery.TextNode, xmlquery.CharDataNode:
			if strings.TrimSpace(c.Data) != "" {
				children = append(children, c.Data)
			}
		}
	}

	name := n.Data
	if n.Prefix != "" {
		name = n.Prefix + ":" + name
	}

	return newElementMap(name, attrs, children)
}

// EncodeXML renders an element map without XML declaration.
func EncodeXML(v any) (string, error) {
	root, err := toXMLNode(Ordered(v))
	if err != nil {
		return "", err
	}

	return root.OutputXML(true), nil
}

func toXMLNode(v any) (*xmlquery.Node, error) {
	if s, ok := v.(string); ok {
		return &xmlquery.Node{Type: xmlquery.TextNode, Data: s}, nil
	}

	el, err := readElement(v)
	if err != nil {
		return nil, err
	}

	n := &xmlquery.Node{Type: xmlquery.ElementNode, Data: el.name}
	if prefix, local, ok := strings.Cut(el.name, ":"); ok {
		n.Prefix, n.Data = prefix, local
	}

	for _, a := range el.attrs {
		xmlquery.AddAttr(n, a[0], a[1])
	}

	for _, c := range el.children {
		child, err := toXMLNode(c)
		if err != nil {
			return nil, err
		}

		xmlquery.AddChild(n, child)
	}

	return n, nil
}
