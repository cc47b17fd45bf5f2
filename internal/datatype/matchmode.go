package datatype

//go:generate go tool stringer -type=MatchMode -output=matchmode_string.go

// MatchMode selects which sides of a Transformation ignore formats.
type MatchMode int

const (
	Exact       MatchMode = 0
	BasePartial MatchMode = 1 << (iota - 1)
	TargetPartial
	Partial = BasePartial | TargetPartial
)

// BaseIsPartial reports whether the base side ignores formats.
func (m MatchMode) BaseIsPartial() bool {
	return m&BasePartial != 0
}

// TargetIsPartial reports whether the target side ignores formats.
func (m MatchMode) TargetIsPartial() bool {
	return m&TargetPartial != 0
}
