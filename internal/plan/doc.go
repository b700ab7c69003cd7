// Package plan provides the resolution pipeline that turns a validated
// declaration into a Plan consumed by code generation.
//
// Resolution pipeline:
//  1. Assign tags 1..n to variants in declaration order
//  2. Classify every payload type and infer its codec and view type
//  3. Optionally inspect payload types (go/types) for size and scalar-ness
//  4. Derive generated identifiers and reject collisions
//  5. Keep only the imports the generated file references
//  6. Emit diagnostics (missing codecs, oversized payloads, pointer payloads)
package plan
