package value

import (
	"mime"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"datashell/internal/format"
)

// Response is Data holding a parsed HTTP response body together with
// the response metadata. Transformations treat it as its Data.
type Response struct {
	*Data
	Status  int
	Headers http.Header
	Body    *Text
}

// FromResty wraps resp. The body becomes a Text in the format named by
// the Content-Type header. Document formats (JSON, YAML, TOML, CSV, XML,
// HTML) are parsed into the Data; other bodies are kept as a string.
func FromResty(e *Engine, resp *resty.Response) (*Response, error) {
	if e == nil {
		e = Default()
	}

	r := &Response{
		Status:  resp.StatusCode(),
		Headers: resp.Header().Clone(),
	}

	r.Body = e.Text(string(resp.Body()), contentFormat(resp.Header().Get("Content-Type")))
	r.Body.source = r

	r.Data = &Data{value: r.Body.value, eng: e}

	switch r.Body.format {
	case format.JSON, format.YAML, format.TOML, format.CSV, format.XML, format.HTML:
	default:
		return r, nil
	}

	parsed, err := r.Body.Data()
	if err != nil {
		return nil, err
	}

	r.Data.value = parsed.value

	return r, nil
}

// contentFormat maps a Content-Type to a known format. Structured syntax
// suffixes such as "+json" are honored.
func contentFormat(contentType string) string {
	if contentType == "" {
		return ""
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}

	candidates := []string{mediaType}
	if _, suffix, ok := strings.Cut(mediaType, "+"); ok {
		candidates = append(candidates, suffix)
	}

	switch mediaType {
	case "text/xml":
		candidates = append(candidates, format.XML)
	case "application/x-yaml", "text/yaml":
		candidates = append(candidates, format.YAML)
	}

	for _, c := range candidates {
		if format.Known(c) {
			return format.Resolve(c)
		}
	}

	return ""
}
