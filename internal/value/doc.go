// Package value provides the conversion engine and the two universal
// wrappers built on it.
//
// # Engine
//
// An Engine owns the root transformer:
//
//	Recording(SourcePreserving(Wrapping(Data, Wrapping(Text, Any(leaves...)))))
//
// Every conversion, including the lazy accessors of Data and Text, goes
// through Engine.Transform. The registry is built once and is read-only
// afterwards, so an Engine may be shared freely. Default returns a lazily
// built process-wide engine.
//
// # Data and Text
//
// Data wraps a structured value (arrays are []any, mappings are
// *orderedmap.OrderedMap). Text wraps a string and the format it is in.
// Both carry provenance: the value they were derived from (Source) and
// the transformation that produced them (SourceTransformation).
//
//	text := engine.Text("name,qty\nshoe,3\n", format.CSV)
//	rows, err := text.CSV()         // *Data, rows.Source() == text
//	out, err := rows.JSON()         // *Text in application/json
//
// Data operations never modify the receiver, with the exception of Set.
// Invariant violations, like calling SortKeys on a mapping, panic with
// *InvariantViolationError; conversion failures are returned as errors.
//
// # Collaborators
//
// Item abstracts storage for Engine.Load and Text.Save; package item
// provides a filesystem implementation. Response wraps an HTTP response
// received with resty.
package value
