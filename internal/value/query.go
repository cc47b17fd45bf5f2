package value

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/go-jsonnet"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"datashell/internal/codec"
)

// barePathRe matches paths like "a.b[0]" that are evaluated relative to
// the queried value.
var barePathRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*|\[[0-9]+\])*$`)

// Query evaluates a Jsonnet expression with the value bound to v. Bare
// paths ("a.b[0]", ".a", "[0]") are relative to v. Results come back in
// the canonical representation; object keys are sorted.
func Query(value any, expr string) (any, error) {
	doc, err := codec.EncodeJSON(value, 0)
	if err != nil {
		return nil, err
	}

	vm := jsonnet.MakeVM()
	vm.ExtCode("value", doc)

	out, err := vm.EvaluateAnonymousSnippet("query", "local v = std.extVar('value');\n"+queryExpr(expr))
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", expr, err)
	}

	return codec.DecodeJSON(out)
}

func queryExpr(expr string) string {
	expr = strings.TrimSpace(expr)

	switch {
	case expr == "":
		return "v"
	case strings.HasPrefix(expr, "."), strings.HasPrefix(expr, "["):
		return "v" + expr
	case expr == "v", strings.HasPrefix(expr, "v."), strings.HasPrefix(expr, "v["):
		return expr
	case barePathRe.MatchString(expr):
		return "v." + expr
	default:
		return expr
	}
}

// Get resolves key against the value. A string names a field of a
// mapping when one exists and is a query (see Query) otherwise;
// an int indexes an array; anything else looks a mapping up by its
// string form. The result is nil for nil, a *Text for strings and a
// *Data otherwise, with d as source.
func (d *Data) Get(key any) any {
	v, err := d.get(key)
	if err != nil {
		d.engine().Logger().Debug("get failed", zap.Any("key", key), zap.Error(err))
		return nil
	}

	return d.wrap(v)
}

// GetE is Get reporting query errors.
func (d *Data) GetE(key any) (any, error) {
	v, err := d.get(key)
	if err != nil {
		return nil, err
	}

	return d.wrap(v), nil
}

func (d *Data) get(key any) (any, error) {
	switch k := key.(type) {
	case string:
		if v, ok := lookup(d.value, k); ok {
			return v, nil
		}

		return Query(d.value, k)
	case int:
		return d.index(k), nil
	default:
		v, _ := lookup(d.value, cast.ToString(key))
		return v, nil
	}
}

func (d *Data) index(i int) any {
	c := collect("get", d.value)
	if c.isMapping() {
		v, _ := lookup(d.value, strconv.Itoa(i))
		return v
	}

	if i < 0 {
		i += len(c.entries)
	}

	if i < 0 || i >= len(c.entries) {
		return nil
	}

	return c.entries[i].value
}

func (d *Data) wrap(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case *Data, *Text:
		return x
	case string:
		t := d.engine().Text(x, "")
		t.source = d

		return t
	default:
		return d.derive(x)
	}
}
