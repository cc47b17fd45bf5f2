package codec

import (
	"bytes"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"datashell/internal/datatype"
	"datashell/internal/format"
)

var htmlDocumentRe = regexp.MustCompile(`(?i)^\s*(<!doctype|<html)`)

// HTML converts object <-> string<text/html>. Fragments parse to an element
// map (or an array of nodes when there are several top-level nodes);
// complete documents parse to the <html> element.
func HTML() *StringCodec {
	return &StringCodec{
		Name:      "html",
		Value:     datatype.Object(),
		Text:      datatype.String(format.HTML),
		Stringify: EncodeHTML,
		Parse:     DecodeHTML,
	}
}

// DecodeHTML parses a document or fragment.
func DecodeHTML(s string) (any, error) {
	if htmlDocumentRe.MatchString(s) {
		doc, err := html.Parse(strings.NewReader(s))
		if err != nil {
			return nil, err
		}

		for n := doc.FirstChild; n != nil; n = n.NextSibling {
			if n.Type == html.ElementNode {
				return fromHTMLNode(n), nil
			}
		}

		return nil, nil
	}

	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}

	nodes, err := html.ParseFragment(strings.NewReader(s), body)
	if err != nil {
		return nil, err
	}

	var out []any

	for _, n := range nodes {
		if v := fromHTMLNode(n); v != nil {
			out = append(out, v)
		}
	}

	if len(out) == 1 {
		return out[0], nil
	}

	if out == nil {
		out = []any{}
	}

	return out, nil
}

func fromHTMLNode(n *html.Node) any {
	switch n.Type {
	case html.TextNode:
		if strings.TrimSpace(n.Data) == "" {
			return nil
		}

		return n.Data
	case html.ElementNode:
		attrs := make([][2]string, 0, len(n.Attr))
		for _, a := range n.Attr {
			attrs = append(attrs, [2]string{a.Key, a.Val})
		}

		var children []any

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if v := fromHTMLNode(c); v != nil {
				children = append(children, v)
			}
		}

		return newElementMap(n.Data, attrs, children)
	default:
		return nil
	}
}

// EncodeHTML renders an element map, a text string or an array of them.
func EncodeHTML(v any) (string, error) {
	var nodes []any
	if arr, ok := Ordered(v).([]any); ok {
		nodes = arr
	} else {
		nodes = []any{Ordered(v)}
	}

	var buf bytes.Buffer

	for _, item := range nodes {
		n, err := toHTMLNode(item)
		if err != nil {
			return "", err
		}

		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}

	return buf.String(), nil
}

func toHTMLNode(v any) (*html.Node, error) {
	if s, ok := v.(string); ok {
		return &html.Node{Type: html.TextNode, Data: s}, nil
	}

	el, err := readElement(v)
	if err != nil {
		return nil, err
	}

	n := &html.Node{
		Type:     html.ElementNode,
		Data:     el.name,
		DataAtom: atom.Lookup([]byte(el.name)),
	}

	for _, a := range el.attrs {
		n.Attr = append(n.Attr, html.Attribute{Key: a[0], Val: a[1]})
	}

	for _, c := range el.children {
		child, err := toHTMLNode(c)
		if err != nil {
			return nil, err
		}

		n.AppendChild(child)
	}

	return n, nil
}
