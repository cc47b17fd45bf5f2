package value

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"datashell/internal/format"
)

// Select runs a CSS selector over t read as HTML. The result is Data
// wrapping the outer HTML of every match as *Text.
func (t *Text) Select(selector string) (*Data, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(t.value))
	if err != nil {
		return nil, err
	}

	out := []any{}

	var outerErr error

	doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		html, err := goquery.OuterHtml(s)
		if err != nil {
			outerErr = err
			return false
		}

		out = append(out, &Text{value: html, format: format.HTML, source: t, eng: t.eng})

		return true
	})

	if outerErr != nil {
		return nil, outerErr
	}

	return &Data{value: out, source: t, eng: t.eng}, nil
}

// XPath evaluates expr over t read as XML. Elements come back as XML
// text, attributes and text nodes as plain text.
func (t *Text) XPath(expr string) (*Data, error) {
	compiled, err := xpath.Compile(expr)
	if err != nil {
		return nil, err
	}

	doc, err := xmlquery.Parse(strings.NewReader(t.value))
	if err != nil {
		return nil, err
	}

	out := []any{}

	for _, n := range xmlquery.QuerySelectorAll(doc, compiled) {
		switch n.Type {
		case xmlquery.ElementNode:
			out = append(out, &Text{value: n.OutputXML(true), format: format.XML, source: t, eng: t.eng})
		default:
			out = append(out, &Text{value: n.InnerText(), source: t, eng: t.eng})
		}
	}

	return &Data{value: out, source: t, eng: t.eng}, nil
}
