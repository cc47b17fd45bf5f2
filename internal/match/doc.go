// Package match ranks near-miss names by edit distance.
//
// The conversion engine uses it to attach "did you mean" suggestions to
// unsupported transformation errors: the requested transformation string
// is normalized and compared against the declared transformations of
// every registered transformer.
//
// Key functions:
//   - Normalize: case-folds and strips separators for fuzzy comparison
//   - Levenshtein: computes edit distance between strings
//   - Rank: orders candidates by similarity to a query
package match
