// Package datatype provides the vocabulary of the conversion engine.
//
// A DataType is a nominal type tag with an optional format qualifier,
// written as "type" or "type<format>". A Transformation is an ordered
// pair of data types describing a requested conversion, written as
// "base:target".
//
// # Matching
//
// Two data types never match when their types differ. Exact matching
// also compares formats (an absent format only equals another absent
// format). Partial matching ignores formats, so a requester without a
// format opinion is served by any format-qualified declaration.
//
// A Transformation resolves each side independently according to a
// MatchMode:
//
//	Exact          both sides exact
//	BasePartial    base side ignores format
//	TargetPartial  target side ignores format
//	Partial        both sides ignore format
//
// # String form
//
//	object:string<application/json>
//	Data:Text<text/csv>
//
// Parsing splits on the first colon outside angle brackets. The round
// trip is lossless for types and formats free of ':', '<' and '>'.
//
// The package has no dependency on wrapper types; it sits at the bottom
// of the import graph.
package datatype
