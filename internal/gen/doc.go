// Package gen provides deterministic Go code generation for tagged enums.
//
// Generation approach uses text/template + go/format. Each enum of a plan
// becomes one file named after the enum in snake_case with a "_tagged.go"
// suffix.
//
// Codegen patterns:
//   - Tag constants and a name table indexed by tag
//   - Compile-time assertions that the union and its payloads fit in a word
//   - One constructor per variant
//   - Checked extraction and borrowing per variant
//   - Drop, and optional String, Clone and Equal, dispatched by a switch
//     over the closed tag set
package gen
