package value

import (
	"slices"

	"github.com/keboola/go-utils/pkg/orderedmap"
	"github.com/spf13/cast"
)

// The callbacks below receive the element value and its key: an int
// index for arrays, a string for mappings.

// Filter keeps the elements fn accepts.
func (d *Data) Filter(fn func(value, key any) bool) *Data {
	c := collect("filter", d.value)

	var kept []entry

	for _, e := range c.entries {
		if fn(e.value, e.key) {
			kept = append(kept, e)
		}
	}

	return d.derive(c.build(kept))
}

// Map replaces every element by fn's result; mapping keys are kept.
func (d *Data) Map(fn func(value, key any) any) *Data {
	c := collect("map", d.value)

	out := make([]entry, len(c.entries))
	for i, e := range c.entries {
		out[i] = entry{key: e.key, value: fn(e.value, e.key)}
	}

	return d.derive(c.build(out))
}

// Sort orders elements by cmp, or Compare when cmp is nil. The sort is
// stable; mappings keep each value under its key.
func (d *Data) Sort(cmp func(a, b any) int) *Data {
	if cmp == nil {
		cmp = Compare
	}

	c := collect("sort", d.value)

	sorted := slices.Clone(c.entries)
	slices.SortStableFunc(sorted, func(a, b entry) int {
		return cmp(a.value, b.value)
	})

	return d.derive(c.build(sorted))
}

// SortKeys orders an array of records by the given fields in turn, using
// Compare. Missing fields sort first. It panics on mappings.
func (d *Data) SortKeys(keys ...string) *Data {
	c := collect("sort keys", d.value)
	if c.isMapping() {
		violation("sort keys", "receiver is a mapping, an array of records is required")
	}

	for i, e := range c.entries {
		if !isRecord(e.value) {
			violation("sort keys", "element %d is %T, not a record", i, e.value)
		}
	}

	sorted := slices.Clone(c.entries)
	slices.SortStableFunc(sorted, func(a, b entry) int {
		for _, k := range keys {
			x, _ := lookup(a.value, k)
			y, _ := lookup(b.value, k)

			if r := Compare(x, y); r != 0 {
				return r
			}
		}

		return 0
	})

	return d.derive(c.build(sorted))
}

// Group buckets elements by the string form of fn's result, in order of
// first appearance. Buckets of an array are arrays; buckets of a mapping
// are mappings.
func (d *Data) Group(fn func(value, key any) any) *Data {
	c := collect("group", d.value)

	var names []string

	buckets := map[string][]entry{}

	for _, e := range c.entries {
		name := cast.ToString(unwrap(fn(e.value, e.key)))
		if _, ok := buckets[name]; !ok {
			names = append(names, name)
		}

		buckets[name] = append(buckets[name], e)
	}

	out := orderedmap.New()
	for _, name := range names {
		out.Set(name, c.build(buckets[name]))
	}

	return d.derive(out)
}

// Diff keeps the elements whose value does not occur in other.
func (d *Data) Diff(other any) *Data {
	c := collect("diff", d.value)
	seen := fingerprintsOf(collect("diff", other).values())

	var kept []entry

	for _, e := range c.entries {
		if !seen.has(e.value) {
			kept = append(kept, e)
		}
	}

	return d.derive(c.build(kept))
}

// Intersect keeps the elements whose value also occurs in other.
func (d *Data) Intersect(other any) *Data {
	c := collect("intersect", d.value)
	seen := fingerprintsOf(collect("intersect", other).values())

	var kept []entry

	for _, e := range c.entries {
		if seen.has(e.value) {
			kept = append(kept, e)
		}
	}

	return d.derive(c.build(kept))
}

// Union appends the elements of other whose value is not in d yet.
// Mappings merge by key instead: keys of other that d lacks are added and
// d keeps its value for shared keys.
func (d *Data) Union(other any) *Data {
	c := collect("union", d.value)
	o := collect("union", other)

	out := slices.Clone(c.entries)

	if c.isMapping() {
		keys := make(map[string]bool, len(c.entries))
		for _, e := range c.entries {
			keys[e.key.(string)] = true
		}

		for _, e := range o.entries {
			key := cast.ToString(e.key)
			if keys[key] {
				continue
			}

			keys[key] = true
			out = append(out, entry{key: key, value: e.value})
		}

		return d.derive(c.build(out))
	}

	seen := fingerprintsOf(c.values())
	for _, e := range o.entries {
		if seen.add(e.value) {
			out = append(out, e)
		}
	}

	return d.derive(c.build(out))
}

// Chunk splits the elements into consecutive groups of size elements.
// It panics when size is not positive.
func (d *Data) Chunk(size int) *Data {
	if size <= 0 {
		violation("chunk", "size must be positive, got %d", size)
	}

	c := collect("chunk", d.value)

	chunks := []any{}
	for part := range slices.Chunk(c.entries, size) {
		chunks = append(chunks, c.build(part))
	}

	return d.derive(chunks)
}

// Reduce folds the elements into an accumulator starting at initial.
func (d *Data) Reduce(fn func(acc, value, key any) any, initial any) *Data {
	acc := initial
	for _, e := range collect("reduce", d.value).entries {
		acc = fn(acc, e.value, e.key)
	}

	return d.derive(acc)
}

// Find returns the first element fn accepts, or nil.
func (d *Data) Find(fn func(value, key any) bool) *Data {
	for _, e := range collect("find", d.value).entries {
		if fn(e.value, e.key) {
			return d.derive(e.value)
		}
	}

	return nil
}

// FindKey returns the key of the first element fn accepts, or nil.
func (d *Data) FindKey(fn func(value, key any) bool) any {
	for _, e := range collect("find key", d.value).entries {
		if fn(e.value, e.key) {
			return e.key
		}
	}

	return nil
}

// Some reports whether fn accepts any element.
func (d *Data) Some(fn func(value, key any) bool) bool {
	return slices.ContainsFunc(collect("some", d.value).entries, func(e entry) bool {
		return fn(e.value, e.key)
	})
}

// Every reports whether fn accepts all elements.
func (d *Data) Every(fn func(value, key any) bool) bool {
	return !slices.ContainsFunc(collect("every", d.value).entries, func(e entry) bool {
		return !fn(e.value, e.key)
	})
}

// ForEach calls fn for every element and returns d.
func (d *Data) ForEach(fn func(value, key any)) *Data {
	for _, e := range collect("for each", d.value).entries {
		fn(e.value, e.key)
	}

	return d
}

// Unique drops elements whose unwrapped value was already seen, keeping
// first occurrences.
func (d *Data) Unique() *Data {
	c := collect("unique", d.value)
	seen := fingerprints{}

	var kept []entry

	for _, e := range c.entries {
		if seen.add(e.value) {
			kept = append(kept, e)
		}
	}

	return d.derive(c.build(kept))
}

// Keys returns the indices of an array or the keys of a mapping.
func (d *Data) Keys() *Data {
	return d.derive(collect("keys", d.value).keys())
}

// Values returns the element values as an array.
func (d *Data) Values() *Data {
	return d.derive(collect("values", d.value).values())
}

// Len returns the number of elements.
func (d *Data) Len() int {
	return len(collect("len", d.value).entries)
}

// Clone returns a deep copy of d with the same provenance.
func (d *Data) Clone() *Data {
	return &Data{
		value:                clone(d.value),
		source:               d.source,
		sourceTransformation: d.sourceTransformation,
		eng:                  d.eng,
	}
}
