package value

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datashell/internal/format"
)

func TestCSVScenario(t *testing.T) {
	e := NewEngine()
	in := "name,qty\nshoe,3\nshirt,5\n"

	rows, err := e.Text(in, format.CSV).CSV()
	require.NoError(t, err)
	assert.Equal(t, `[{"name":"shoe","qty":"3"},{"name":"shirt","qty":"5"}]`, jsonOf(t, rows.Value()))

	byQty := func(a, b any) int {
		x, _ := lookup(a, "qty")
		y, _ := lookup(b, "qty")

		return Compare(x, y)
	}

	sorted := rows.Sort(byQty)
	assert.Equal(t, jsonOf(t, rows.Value()), jsonOf(t, sorted.Value()))

	out, err := sorted.CSV()
	require.NoError(t, err)
	assert.Equal(t, in, out.Value())
}

func TestOperationsOnArraysAndMappings(t *testing.T) {
	e := NewEngine()
	arr := mustData(t, e, `[3,1,2]`)
	obj := mustData(t, e, `{"c":3,"a":1,"b":2}`)

	odd := func(v, _ any) bool { return v.(int64)%2 == 1 }
	double := func(v, _ any) any { return v.(int64) * 2 }

	tests := []struct {
		name string
		got  *Data
		want string
	}{
		{"filter array", arr.Filter(odd), `[3,1]`},
		{"filter mapping", obj.Filter(odd), `{"c":3,"a":1}`},
		{"map array", arr.Map(double), `[6,2,4]`},
		{"map mapping", obj.Map(double), `{"c":6,"a":2,"b":4}`},
		{"sort array", arr.Sort(nil), `[1,2,3]`},
		{"sort mapping", obj.Sort(nil), `{"a":1,"b":2,"c":3}`},
		{"group array", arr.Group(func(v, _ any) any { return odd(v, nil) }), `{"true":[3,1],"false":[2]}`},
		{"group mapping", obj.Group(func(v, _ any) any { return odd(v, nil) }), `{"true":{"c":3,"a":1},"false":{"b":2}}`},
		{"chunk array", arr.Chunk(2), `[[3,1],[2]]`},
		{"chunk mapping", obj.Chunk(2), `[{"c":3,"a":1},{"b":2}]`},
		{"keys array", arr.Keys(), `[0,1,2]`},
		{"keys mapping", obj.Keys(), `["c","a","b"]`},
		{"values mapping", obj.Values(), `[3,1,2]`},
		{"diff", arr.Diff([]any{int64(1)}), `[3,2]`},
		{"diff mapping", obj.Diff(mustData(t, e, `[2]`)), `{"c":3,"a":1}`},
		{"intersect", arr.Intersect([]any{int64(2), int64(3), int64(9)}), `[3,2]`},
		{"union", arr.Union([]any{int64(2), int64(4)}), `[3,1,2,4]`},
		{"union mapping", obj.Union(mustData(t, e, `{"a":9,"d":4,"e":1}`)), `{"c":3,"a":1,"b":2,"d":4,"e":1}`},
		{"union mapping same values", mustData(t, e, `{"a":1}`).Union(mustData(t, e, `{"b":1}`)), `{"a":1,"b":1}`},
		{"reduce", arr.Reduce(func(acc, v, _ any) any { return acc.(int64) + v.(int64) }, int64(0)), `6`},
		{"find", arr.Find(func(v, _ any) bool { return v.(int64) < 3 }), `1`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, jsonOf(t, tt.got.Value()))
		})
	}

	assert.Equal(t, `[3,1,2]`, jsonOf(t, arr.Value()), "receiver must not change")
	assert.Equal(t, `{"c":3,"a":1,"b":2}`, jsonOf(t, obj.Value()), "receiver must not change")

	assert.Equal(t, "a", obj.FindKey(func(v, _ any) bool { return v.(int64) == 1 }))
	assert.Equal(t, 1, arr.FindKey(func(v, _ any) bool { return v.(int64) == 1 }))
	assert.Nil(t, arr.FindKey(func(v, _ any) bool { return false }))
	assert.Nil(t, arr.Find(func(v, _ any) bool { return false }))

	assert.True(t, obj.Some(odd))
	assert.False(t, obj.Every(odd))
	assert.True(t, arr.Every(func(v, _ any) bool { return v.(int64) > 0 }))
	assert.Equal(t, 3, obj.Len())

	var visited []any

	assert.Same(t, arr, arr.ForEach(func(_, k any) { visited = append(visited, k) }))
	assert.Equal(t, []any{0, 1, 2}, visited)
}

func TestDerivedDataPointsAtReceiver(t *testing.T) {
	d := mustData(t, NewEngine(), `[1]`)
	assert.Same(t, d, d.Filter(func(any, any) bool { return true }).Source())
	assert.Same(t, d, d.Sort(nil).Source())
}

func TestUnique(t *testing.T) {
	d := mustData(t, NewEngine(), `[{"a":1,"b":2},{"b":2,"a":1},[1,2],[2,1],"x","x",1,1.5,1]`)
	assert.Equal(t, `[{"a":1,"b":2},[1,2],[2,1],"x",1,1.5]`, jsonOf(t, d.Unique().Value()))

	texts := NewData([]any{NewText("a", ""), NewText("a", format.JSON), "a", "b"})
	assert.Equal(t, `["a","b"]`, jsonOf(t, texts.Unique().Value()))
}

func TestSortKeys(t *testing.T) {
	d := mustData(t, NewEngine(), `[{"n":"b","q":2},{"n":"a","q":2},{"n":"c","q":1},{"q":3}]`)
	assert.Equal(t,
		`[{"n":"c","q":1},{"n":"a","q":2},{"n":"b","q":2},{"q":3}]`,
		jsonOf(t, d.SortKeys("q", "n").Value()))

	t.Run("mapping", func(t *testing.T) {
		obj := mustData(t, NewEngine(), `{"a":1}`)

		defer func() {
			r := recover()
			err, ok := r.(*InvariantViolationError)
			require.True(t, ok, "expected *InvariantViolationError, got %v", r)
			assert.ErrorIs(t, err, ErrInvariantViolation)
			assert.Equal(t, "sort keys", err.Op)
		}()

		obj.SortKeys("a")
	})

	t.Run("array of scalars", func(t *testing.T) {
		assert.Panics(t, func() { mustData(t, NewEngine(), `[1,2]`).SortKeys("a") })
	})
}

func TestNonCollectionPanics(t *testing.T) {
	assert.Panics(t, func() { NewData(int64(3)).Filter(func(any, any) bool { return true }) })
	assert.Panics(t, func() { NewData([]any{}).Chunk(0) })
}

func TestSortIsStable(t *testing.T) {
	d := NewData([]any{"b1", "a1", "b2", "a2"})
	byLetter := func(a, b any) int { return Compare(a.(string)[:1], b.(string)[:1]) }

	assert.Equal(t, []any{"a1", "a2", "b1", "b2"}, d.Sort(byLetter).Value())
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want int
	}{
		{"ints", int64(2), int64(10), -1},
		{"int and float", int64(2), 1.5, 1},
		{"strings", "10", "9", -1},
		{"numeric string and number", "3", int64(5), -1},
		{"nil first", nil, int64(0), -1},
		{"equal", "a", "a", 0},
		{"bools", true, false, 1},
		{"text wrapper", NewText("b", ""), "a", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.a, tt.b))
		})
	}
}

func TestGet(t *testing.T) {
	e := NewEngine()
	d := mustData(t, e, `{"a":{"b":[1,2,{"c":"x"}]},"n":null}`)

	text, ok := d.Get("a.b[2].c").(*Text)
	require.True(t, ok)
	assert.Equal(t, "x", text.Value())
	assert.Same(t, d, text.Source())

	num, ok := d.Get(".a.b[0]").(*Data)
	require.True(t, ok)
	assert.Equal(t, int64(1), num.Value())

	length, ok := d.Get("std.length(v.a.b)").(*Data)
	require.True(t, ok)
	assert.Equal(t, int64(3), length.Value())

	assert.Nil(t, d.Get("n"))
	assert.Nil(t, d.Get("missing.field"))

	_, err := d.GetE("missing.field")
	require.Error(t, err)

	arr := mustData(t, e, `["x","y"]`)
	assert.Equal(t, "y", arr.Get(1).(*Text).Value())
	assert.Equal(t, "y", arr.Get(-1).(*Text).Value())
	assert.Equal(t, "x", arr.Get("[0]").(*Text).Value())
	assert.Nil(t, arr.Get(5))

	spaced := mustData(t, e, `{"first name":"Ada"}`)
	assert.Equal(t, "Ada", spaced.Get("first name").(*Text).Value())

	nested, ok := d.Get("a").(*Data)
	require.True(t, ok)
	assert.Equal(t, `{"b":[1,2,{"c":"x"}]}`, jsonOf(t, nested.Value()))
}

func TestSet(t *testing.T) {
	d := mustData(t, NewEngine(), `{"a":{"b":[1]}}`)

	require.NoError(t, d.Set("a.b[0]", int64(5)))
	require.NoError(t, d.Set("a.b[1]", "new"))
	require.NoError(t, d.Set("x.y[0].z", true))
	require.NoError(t, d.Set("a.c", NewData([]any{"wrapped"})))

	assert.Equal(t, `{"a":{"b":[5,"new"],"c":["wrapped"]},"x":{"y":[{"z":true}]}}`, jsonOf(t, d.Value()))

	tests := []struct {
		name string
		path string
	}{
		{"empty", ""},
		{"empty segment", "a..b"},
		{"bad index", "a.b[x]"},
		{"gap", "a.b[7]"},
		{"index on mapping", "a[0]"},
		{"key on array", "a.b.c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, d.Set(tt.path, 1))
		})
	}
}

func TestParsePath(t *testing.T) {
	p, err := ParsePath("a.b[0][1].c")
	require.NoError(t, err)

	want := Path{{Key: "a"}, {Key: "b"}, {Index: 0, IsIndex: true}, {Index: 1, IsIndex: true}, {Key: "c"}}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Fatalf("ParsePath mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, "a.b[0][1].c", p.String())

	p, err = ParsePath("[2].x")
	require.NoError(t, err)
	assert.Equal(t, "[2].x", p.String())
}

func TestClone(t *testing.T) {
	d := mustData(t, NewEngine(), `{"a":[1]}`)
	c := d.Clone()

	require.NoError(t, c.Set("a[0]", int64(2)))
	assert.Equal(t, `{"a":[1]}`, jsonOf(t, d.Value()))
	assert.Equal(t, `{"a":[2]}`, jsonOf(t, c.Value()))
}

func TestInspectAndString(t *testing.T) {
	d := NewData(map[string]any{"k": []any{"v"}})

	assert.Contains(t, d.Inspect(), `"k"`)
	assert.Contains(t, d.Inspect(), `"v"`)
	assert.Equal(t, `{"k":["v"]}`, d.String())
}

func TestDataAccessors(t *testing.T) {
	d := NewData([]any{"a", "b"})

	tests := []struct {
		name string
		fn   func() (*Text, error)
		want string
		f    string
	}{
		{"comma", d.Comma, "a,b", format.Comma},
		{"semicolon", d.Semicolon, "a;b", format.Semicolon},
		{"lines", d.Lines, "a\nb\n", format.Lines},
		{"yaml", d.YAML, "- a\n- b\n", format.YAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.fn()
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Value())
			assert.Equal(t, tt.f, out.Format())
		})
	}

	out, err := d.As("json")
	require.NoError(t, err)
	assert.Equal(t, "[\n  \"a\",\n  \"b\"\n]", out.Value())

	_, err = d.As("csv")
	require.Error(t, err)
}
