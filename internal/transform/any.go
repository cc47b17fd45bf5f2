package transform

import (
	"go.uber.org/zap"

	"datashell/internal/datatype"
	"datashell/internal/match"
)

const maxSuggestions = 3

// Any dispatches to the first registered transformer that supports the
// requested transformation. The list is fixed at construction.
type Any struct {
	transformers []Transformer
	logger       *zap.Logger
}

// NewAny returns a dispatcher over transformers, in priority order.
// A nil logger disables logging.
func NewAny(logger *zap.Logger, transformers ...Transformer) *Any {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Any{
		transformers: append([]Transformer(nil), transformers...),
		logger:       logger,
	}
}

// Len returns the number of registered transformers.
func (a *Any) Len() int {
	return len(a.transformers)
}

// Transformers returns the registered transformers in priority order.
func (a *Any) Transformers() []Transformer {
	return append([]Transformer(nil), a.transformers...)
}

// Lookup returns the transformer that would serve t and its index,
// or (nil, -1).
func (a *Any) Lookup(input any, t datatype.Transformation) (Transformer, int) {
	for i, tr := range a.transformers {
		if tr.Supports(input, t) {
			return tr, i
		}
	}

	return nil, -1
}

func (a *Any) Supports(input any, t datatype.Transformation) bool {
	_, i := a.Lookup(input, t)
	return i >= 0
}

func (a *Any) Transform(input any, t datatype.Transformation) (any, error) {
	tr, i := a.Lookup(input, t)
	if tr == nil {
		a.logger.Debug("no transformer",
			zap.Stringer("transformation", t),
		)

		return nil, a.unsupported(t)
	}

	a.logger.Debug("dispatch",
		zap.Stringer("transformation", t),
		zap.Int("index", i),
	)

	return tr.Transform(input, t)
}

// Declared returns the declared transformations of all registered
// transformers, in registration order.
func (a *Any) Declared() []datatype.Transformation {
	var out []datatype.Transformation
	for _, tr := range a.transformers {
		out = append(out, Declared(tr)...)
	}

	return out
}

func (a *Any) unsupported(t datatype.Transformation) error {
	declared := a.Declared()

	names := make([]string, 0, len(declared))
	for _, d := range declared {
		names = append(names, d.String())
	}

	ranked := match.Rank(t.String(), names, match.DefaultThreshold, maxSuggestions)

	return &UnsupportedTransformationError{
		Transformation: t,
		Suggestions:    ranked.Names(),
	}
}
