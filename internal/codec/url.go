package codec

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/keboola/go-utils/pkg/orderedmap"
	"github.com/spf13/cast"

	"datashell/internal/datatype"
	"datashell/internal/format"
)

// URL component keys.
const (
	SchemeKey   = "scheme"
	UserKey     = "user"
	HostKey     = "host"
	PathKey     = "path"
	QueryKey    = "query"
	FragmentKey = "fragment"
)

// URL converts object <-> string<text/x-url>.
func URL() *StringCodec {
	return &StringCodec{
		Name:      "url",
		Value:     datatype.Object(),
		Text:      datatype.String(format.URL),
		Stringify: EncodeURL,
		Parse:     DecodeURL,
	}
}

// DecodeURL splits a URL into an ordered map of its components. The query
// keeps parameter order; repeated parameters become string arrays.
func DecodeURL(s string) (any, error) {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}

	query, err := decodeQuery(u.RawQuery)
	if err != nil {
		return nil, err
	}

	path := u.Path
	if u.Opaque != "" {
		path = u.Opaque
	}

	m := orderedmap.New()
	m.Set(SchemeKey, u.Scheme)
	m.Set(UserKey, u.User.String())
	m.Set(HostKey, u.Host)
	m.Set(PathKey, path)
	m.Set(QueryKey, query)
	m.Set(FragmentKey, u.Fragment)

	return m, nil
}

func decodeQuery(raw string) (*orderedmap.OrderedMap, error) {
	query := orderedmap.New()

	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}

		k, v, _ := strings.Cut(pair, "=")

		key, err := url.QueryUnescape(k)
		if err != nil {
			return nil, err
		}

		val, err := url.QueryUnescape(v)
		if err != nil {
			return nil, err
		}

		switch prev, ok := query.Get(key); {
		case !ok:
			query.Set(key, val)
		case isStringList(prev):
			query.Set(key, append(prev.([]any), val))
		default:
			query.Set(key, []any{prev, val})
		}
	}

	return query, nil
}

func isStringList(v any) bool {
	_, ok := v.([]any)
	return ok
}

// EncodeURL assembles a URL from the map produced by DecodeURL.
func EncodeURL(v any) (string, error) {
	m, ok := Ordered(v).(*orderedmap.OrderedMap)
	if !ok {
		return "", fmt.Errorf("url: expected a mapping, got %T", v)
	}

	part := func(key string) string {
		raw, _ := m.Get(key)
		return cast.ToString(raw)
	}

	u := &url.URL{
		Scheme:   part(SchemeKey),
		Host:     part(HostKey),
		Path:     part(PathKey),
		Fragment: part(FragmentKey),
	}

	if user := part(UserKey); user != "" {
		name, pass, hasPass := strings.Cut(user, ":")
		name, _ = url.PathUnescape(name)
		pass, _ = url.PathUnescape(pass)

		if hasPass {
			u.User = url.UserPassword(name, pass)
		} else {
			u.User = url.User(name)
		}
	}

	if u.Scheme != "" && u.Host == "" && u.User == nil && u.Path != "" && !strings.HasPrefix(u.Path, "/") {
		u.Opaque, u.Path = u.Path, ""
	}

	if raw, ok := m.Get(QueryKey); ok && raw != nil {
		query, err := encodeQuery(raw)
		if err != nil {
			return "", err
		}

		u.RawQuery = query
	}

	return u.String(), nil
}

func encodeQuery(raw any) (string, error) {
	query, ok := raw.(*orderedmap.OrderedMap)
	if !ok {
		s, err := cast.ToStringE(raw)
		return s, err
	}

	var b strings.Builder

	add := func(k string, v any) error {
		s, err := cast.ToStringE(v)
		if err != nil {
			return fmt.Errorf("url: query %q: %w", k, err)
		}

		if b.Len() > 0 {
			b.WriteByte('&')
		}

		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(s))

		return nil
	}

	for _, k := range query.Keys() {
		v, _ := query.Get(k)

		values, ok := v.([]any)
		if !ok {
			values = []any{v}
		}

		for _, item := range values {
			if err := add(k, item); err != nil {
				return "", err
			}
		}
	}

	return b.String(), nil
}
