package codec

import (
	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"

	"datashell/internal/datatype"
	"datashell/internal/format"
)

// Markdown converts string<text/html> -> string<text/markdown>. It is one
// way and matches exactly on both sides.
func Markdown() *StringCodec {
	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.GitHubFlavored())

	return &StringCodec{
		Name:  "markdown",
		Value: datatype.String(format.HTML),
		Text:  datatype.String(format.Markdown),
		Stringify: func(v any) (string, error) {
			s, err := asString(v)
			if err != nil {
				return "", err
			}

			return converter.ConvertString(s)
		},
		StringifyMode: exact(),
	}
}
