// Package match provides name normalization and Levenshtein distance
// calculation for did-you-mean suggestions.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known names close to a misspelled one
package match
