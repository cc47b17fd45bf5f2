package diagnostic

import (
	"fmt"

	"datashell/internal/transform"
)

// CheckRegistry inspects transformers in priority order. Support is
// probed with a nil input, which every built-in transformer accepts.
func CheckRegistry(transformers []transform.Transformer) Diagnostics {
	var d Diagnostics

	for i, tr := range transformers {
		name := nameOf(tr, i)

		declared := transform.Declared(tr)
		if len(declared) == 0 {
			d.add(SeverityInfo, CodeOpaque, "declares no transformations", "", name)
			continue
		}

		for _, t := range declared {
			owner := -1

			for j, other := range transformers {
				if other.Supports(nil, t) {
					owner = j
					break
				}
			}

			switch {
			case owner < 0:
				d.add(SeverityError, CodeUnreachable, "no transformer supports this declaration", t.String(), name)
			case owner < i:
				d.add(SeverityWarning, CodeShadowed,
					fmt.Sprintf("served by %s registered earlier", nameOf(transformers[owner], owner)),
					t.String(), name)
			case owner > i:
				d.add(SeverityError, CodeUnreachable,
					fmt.Sprintf("rejected by its declaring transformer, served by %s", nameOf(transformers[owner], owner)),
					t.String(), name)
			}
		}
	}

	return d
}

func nameOf(tr transform.Transformer, index int) string {
	if s, ok := tr.(fmt.Stringer); ok {
		return fmt.Sprintf("#%d %s", index, s.String())
	}

	return fmt.Sprintf("#%d %T", index, tr)
}
