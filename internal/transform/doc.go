// Package transform provides the dispatch machinery of the conversion
// engine.
//
// Every conversion goes through a Transformer: Supports answers, from the
// requested Transformation alone, whether the transformer can serve it;
// Transform performs the conversion. Transformers compose:
//
//   - Any scans an ordered list and dispatches to the first supporter.
//     Registration order is the only priority rule.
//   - Wrapping strips a wrapper type ("Data", "Text") from the requested
//     transformation, unwraps the input, delegates, and re-wraps the result.
//     Equal sides after stripping short-circuit to identity.
//   - SourcePreserving copies the input's source onto the output.
//   - TransformationRecording stamps the requested transformation onto the
//     output.
//
// The canonical chain, built by the value package, is
//
//	TransformationRecording(SourcePreserving(Wrapping(Data, Wrapping(Text, Any(...)))))
//
// This package knows nothing about concrete wrapper types: they are
// injected as a WrapperSpec, and provenance is reached through the small
// Sourced / SourceSetter / TransformationSetter interfaces.
package transform
