package datatype

import "errors"

// Transformation describes a directed conversion from Base to Target.
type Transformation struct {
	Base   DataType
	Target DataType
}

// NewTransformation returns the conversion base -> target.
func NewTransformation(base, target DataType) Transformation {
	return Transformation{Base: base, Target: target}
}

// WithBase returns a copy of t with a different base type.
func (t Transformation) WithBase(base DataType) Transformation {
	t.Base = base
	return t
}

// WithTarget returns a copy of t with a different target type.
func (t Transformation) WithTarget(target DataType) Transformation {
	t.Target = target
	return t
}

// Reverse returns the conversion target -> base.
func (t Transformation) Reverse() Transformation {
	return Transformation{Base: t.Target, Target: t.Base}
}

// IsIdentity reports whether base and target are exactly equal.
func (t Transformation) IsIdentity() bool {
	return t.Base.Equal(t.Target)
}

// Matches compares both sides, each partial or exact according to mode.
func (t Transformation) Matches(other Transformation, mode MatchMode) bool {
	return t.Base.Matches(other.Base, mode.BaseIsPartial()) &&
		t.Target.Matches(other.Target, mode.TargetIsPartial())
}

// String returns "<base>:<target>".
func (t Transformation) String() string {
	return t.Base.String() + ":" + t.Target.String()
}

// ParseTransformation parses "<base>:<target>". The string is split on
// the first colon that is not enclosed in angle brackets.
func ParseTransformation(s string) (Transformation, error) {
	sep := topLevelColon(s)
	if sep < 0 {
		return Transformation{}, invalid(s, "missing ':' separator")
	}

	if sep == 0 || sep == len(s)-1 {
		return Transformation{}, invalid(s, "empty side")
	}

	base, err := ParseDataType(s[:sep])
	if err != nil {
		return Transformation{}, invalid(s, "base: "+reason(err))
	}

	target, err := ParseDataType(s[sep+1:])
	if err != nil {
		return Transformation{}, invalid(s, "target: "+reason(err))
	}

	return Transformation{Base: base, Target: target}, nil
}

// MustParseTransformation is like ParseTransformation but panics on error.
func MustParseTransformation(s string) Transformation {
	t, err := ParseTransformation(s)
	if err != nil {
		panic(err)
	}

	return t
}

// topLevelColon returns the index of the first ':' at bracket depth zero,
// or -1.
func topLevelColon(s string) int {
	depth := 0

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

func reason(err error) string {
	var e *InvalidTypeStringError
	if errors.As(err, &e) {
		return e.Reason
	}

	return err.Error()
}
