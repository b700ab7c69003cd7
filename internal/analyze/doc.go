// Package analyze provides package loading and payload type inspection.
//
// It uses golang.org/x/tools/go/packages with go/types to evaluate payload
// type expressions the way the compiler will see them in the generated file:
// in the scope of the output package, with the declaration's imports and the
// runtime package in view. Sizes follow the gc compiler for a chosen GOARCH.
//
// Key types:
//   - Inspector: loads packages once, then evaluates type expressions
//   - TypeFacts: size, underlying type, scalar-ness and pointer content
package analyze
