package value

import (
	"slices"
	"strings"

	"github.com/umisama/go-regexpcache"
)

// lines splits t into lines, dropping one trailing newline, and reports
// whether it was there.
func (t *Text) lines() ([]string, bool) {
	s := strings.ReplaceAll(t.value, "\r\n", "\n")
	trailing := strings.HasSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\n")

	if s == "" {
		return nil, trailing
	}

	return strings.Split(s, "\n"), trailing
}

func (t *Text) joinLines(lines []string, trailing bool) *Text {
	s := strings.Join(lines, "\n")
	if trailing && len(lines) > 0 {
		s += "\n"
	}

	return t.derive(s)
}

// LineSlice keeps lines [start, end). Negative bounds count from the end;
// bounds are clamped.
func (t *Text) LineSlice(start, end int) *Text {
	lines, trailing := t.lines()
	n := len(lines)

	clamp := func(i int) int {
		if i < 0 {
			i += n
		}

		return min(max(i, 0), n)
	}

	start, end = clamp(start), clamp(end)
	if start > end {
		start = end
	}

	return t.joinLines(lines[start:end], trailing)
}

// GrepLines keeps the lines matching pattern.
func (t *Text) GrepLines(pattern string) (*Text, error) {
	re, err := regexpcache.Compile(pattern)
	if err != nil {
		return nil, err
	}

	return t.FilterLines(re.MatchString), nil
}

// SortLines sorts lines lexically.
func (t *Text) SortLines() *Text {
	lines, trailing := t.lines()
	slices.Sort(lines)

	return t.joinLines(lines, trailing)
}

// FilterLines keeps the lines fn accepts.
func (t *Text) FilterLines(fn func(line string) bool) *Text {
	lines, trailing := t.lines()

	return t.joinLines(slices.DeleteFunc(lines, func(l string) bool {
		return !fn(l)
	}), trailing)
}

// MapLines replaces every line by fn's result.
func (t *Text) MapLines(fn func(line string) string) *Text {
	lines, trailing := t.lines()
	for i, l := range lines {
		lines[i] = fn(l)
	}

	return t.joinLines(lines, trailing)
}

// ReplaceLines replaces matches of pattern in every line; repl may refer
// to groups as in regexp.Expand.
func (t *Text) ReplaceLines(pattern, repl string) (*Text, error) {
	re, err := regexpcache.Compile(pattern)
	if err != nil {
		return nil, err
	}

	return t.MapLines(func(l string) string {
		return re.ReplaceAllString(l, repl)
	}), nil
}

// Extract collects the matches of pattern line by line. When the pattern
// has groups the first group is taken instead of the whole match. The
// result is Data wrapping an array of *Text.
func (t *Text) Extract(pattern string) (*Data, error) {
	re, err := regexpcache.Compile(pattern)
	if err != nil {
		return nil, err
	}

	lines, _ := t.lines()
	out := []any{}

	for _, l := range lines {
		for _, m := range re.FindAllStringSubmatch(l, -1) {
			match := m[0]
			if len(m) > 1 {
				match = m[1]
			}

			out = append(out, &Text{value: match, format: t.format, source: t, eng: t.eng})
		}
	}

	return &Data{value: out, source: t, eng: t.eng}, nil
}
