package value

import (
	"cmp"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/hashstructure/v2"
	"github.com/spf13/cast"

	"datashell/internal/codec"
)

// Compare is the default ordering of Sort, SortKeys and SortLines.
// Numbers compare numerically and strings lexically; mixed scalars are
// compared as numbers when both convert, otherwise by their string form.
// nil sorts first.
func Compare(a, b any) int {
	a, b = unwrap(a), unwrap(b)

	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	if x, ok := a.(string); ok {
		if y, ok := b.(string); ok {
			return strings.Compare(x, y)
		}
	}

	if x, ok := asInt(a); ok {
		if y, ok := asInt(b); ok {
			return cmp.Compare(x, y)
		}
	}

	if x, ok := a.(time.Time); ok {
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	}

	if x, ok := a.(bool); ok {
		if y, ok := b.(bool); ok {
			return cmp.Compare(boolRank(x), boolRank(y))
		}
	}

	if isScalar(a) && isScalar(b) {
		x, errX := cast.ToFloat64E(a)
		y, errY := cast.ToFloat64E(b)

		if errX == nil && errY == nil {
			return cmp.Compare(x, y)
		}
	}

	return strings.Compare(sortString(a), sortString(b))
}

func unwrap(v any) any {
	for {
		u, ok := v.(codec.Unwrapper)
		if !ok {
			return v
		}

		v = u.Unwrap()
	}
}

func asInt(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	default:
		return 0, false
	}
}

func isScalar(v any) bool {
	switch v.(type) {
	case string, bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	default:
		return false
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}

	return 0
}

// sortString renders structured values as compact JSON.
func sortString(v any) string {
	if isScalar(v) {
		return fmt.Sprint(v)
	}

	if s, err := codec.EncodeJSON(v, 0); err == nil {
		return s
	}

	return fmt.Sprint(v)
}

// fingerprint hashes the unwrapped structure of v. Mapping key order does
// not take part.
func fingerprint(v any) uint64 {
	h, err := hashstructure.Hash(codec.Plain(v), hashstructure.FormatV2, nil)
	if err != nil {
		h, _ = hashstructure.Hash(sortString(v), hashstructure.FormatV2, nil)
	}

	return h
}

type fingerprints map[uint64]struct{}

func fingerprintsOf(values []any) fingerprints {
	set := make(fingerprints, len(values))
	for _, v := range values {
		set[fingerprint(v)] = struct{}{}
	}

	return set
}

func (f fingerprints) has(v any) bool {
	_, ok := f[fingerprint(v)]
	return ok
}

func (f fingerprints) add(v any) bool {
	h := fingerprint(v)
	if _, ok := f[h]; ok {
		return false
	}

	f[h] = struct{}{}

	return true
}
