// Package format holds the table of recognized format qualifiers, their
// short aliases and the file extensions used when saving to disk.
package format

import (
	"sort"
	"strings"
)

// Recognized formats.
const (
	JSON       = "application/json"
	YAML       = "application/yaml"
	TOML       = "application/toml"
	CSV        = "text/csv"
	HTML       = "text/html"
	XML        = "application/xml"
	Markdown   = "text/markdown"
	Date       = "text/x-date"
	Comma      = "text/x-comma-list"
	Lines      = "text/x-line-list"
	Semicolon  = "text/x-semicolon-list"
	URL        = "text/x-url"
	Go         = "text/x-go"
	JavaScript = "text/javascript"
	TypeScript = "text/typescript"
)

// DefaultExt is the extension of unknown formats.
const DefaultExt = "txt"

type entry struct {
	format  string
	ext     string
	aliases []string
}

// table is ordered; FromExt returns the first format owning an extension.
var table = []entry{
	{JSON, "json", []string{"json"}},
	{YAML, "yaml", []string{"yaml", "yml"}},
	{TOML, "toml", []string{"toml"}},
	{CSV, "csv", []string{"csv"}},
	{HTML, "html", []string{"html", "htm"}},
	{XML, "xml", []string{"xml"}},
	{Markdown, "md", []string{"markdown", "md"}},
	{Date, "date", []string{"date"}},
	{Comma, DefaultExt, []string{"comma"}},
	{Lines, DefaultExt, []string{"lines"}},
	{Semicolon, DefaultExt, []string{"semicolon"}},
	{URL, "url", []string{"url"}},
	{Go, "go", []string{"go"}},
	{JavaScript, "js", []string{"javascript", "js"}},
	{TypeScript, "ts", []string{"typescript", "ts"}},
}

var (
	byFormat = map[string]*entry{}
	byAlias  = map[string]*entry{}
	byExt    = map[string]*entry{}
)

func init() {
	for i := range table {
		e := &table[i]
		byFormat[e.format] = e

		for _, alias := range e.aliases {
			byAlias[alias] = e
		}

		if e.ext != DefaultExt {
			if _, exists := byExt[e.ext]; !exists {
				byExt[e.ext] = e
			}
		}
	}

	// extra extensions that only map one way
	byExt["yml"] = byFormat[YAML]
	byExt["htm"] = byFormat[HTML]
	byExt["markdown"] = byFormat[Markdown]
	byExt["mjs"] = byFormat[JavaScript]
	byExt["cjs"] = byFormat[JavaScript]
	byExt["jsx"] = byFormat[JavaScript]
	byExt["tsx"] = byFormat[TypeScript]
}

// Ext returns the file extension for a format. Unknown and empty formats
// map to DefaultExt.
func Ext(format string) string {
	if e, ok := byFormat[Resolve(format)]; ok {
		return e.ext
	}

	return DefaultExt
}

// Resolve maps a short alias ("json", "yml") to its format. Recognized
// formats and unknown strings are returned unchanged.
func Resolve(nameOrFormat string) string {
	key := strings.ToLower(strings.TrimSpace(nameOrFormat))
	if e, ok := byAlias[key]; ok {
		return e.format
	}

	if e, ok := byFormat[key]; ok {
		return e.format
	}

	return nameOrFormat
}

// Known reports whether format (or alias) is in the table.
func Known(nameOrFormat string) bool {
	_, ok := byFormat[Resolve(nameOrFormat)]
	return ok
}

// FromExt returns the format for a file extension (with or without the
// leading dot) and false when the extension is unknown.
func FromExt(ext string) (string, bool) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if e, ok := byExt[ext]; ok {
		return e.format, true
	}

	return "", false
}

// Info describes one table row.
type Info struct {
	Format  string
	Ext     string
	Aliases []string
}

// All returns the format table in registration order.
func All() []Info {
	out := make([]Info, 0, len(table))
	for _, e := range table {
		out = append(out, Info{Format: e.format, Ext: e.ext, Aliases: append([]string(nil), e.aliases...)})
	}

	return out
}

// Names returns every format and alias, sorted.
func Names() []string {
	names := make([]string, 0, len(byFormat)+len(byAlias))
	for f := range byFormat {
		names = append(names, f)
	}

	for a := range byAlias {
		names = append(names, a)
	}

	sort.Strings(names)

	return names
}
