// Package diagnostic reports structural problems of a transformer
// registry.
//
// Dispatch picks the first transformer that supports a request, so the
// registration order decides which transformer serves overlapping
// declarations. CheckRegistry makes that visible:
//   - shadowed declarations, served by an earlier transformer
//   - unreachable declarations, which the declaring transformer rejects
//   - opaque transformers, which declare nothing
package diagnostic
