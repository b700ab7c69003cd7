// Package diagnostic provides structured warnings, errors and infos for
// tagged enum declarations.
//
// Key capabilities:
//   - Declaration errors with stable codes (duplicate variant, bad width, ...)
//   - Payload size warnings from type analysis
//   - Did-you-mean suggestions for misspelled names
package diagnostic
