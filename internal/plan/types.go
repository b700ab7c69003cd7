package plan

import (
	"tagword/internal/diagnostic"
	"tagword/internal/schema"
)

// Plan is the final output of the resolution pipeline.
// It contains everything needed for code generation of one declaration file.
type Plan struct {
	// Package is the Go package name of the generated files.
	Package string
	// Imports are the declared imports the generated code references.
	Imports []schema.Import
	// Enums in declaration order.
	Enums []Enum
	// Diagnostics contains all warnings and errors from resolution.
	Diagnostics diagnostic.Diagnostics
}

// Enum is a resolved tagged enum.
type Enum struct {
	// Name is the Go type name of the union.
	Name string
	// Doc is the doc comment text, without comment markers.
	Doc string
	// Bits is the tag width.
	Bits int
	// Width is the word width type expression, e.g. "word.Bits8".
	Width string
	// Derives lists the requested structural behaviors.
	Derives DeriveSet
	// Variants in tag order.
	Variants []Variant
	// VariantsVar names the package-level slice of variant names.
	VariantsVar string
	// FileName is the base name of the generated file.
	FileName string
	// Imports are the declared imports this enum references.
	Imports []schema.Import
}

// Variant is a resolved variant with its tag, codec and generated names.
type Variant struct {
	// Name is the variant identifier.
	Name string
	// Tag is the variant's tag, 1-based in declaration order.
	Tag int
	// Type is the payload type expression.
	Type string
	// Kind classifies the payload representation.
	Kind PayloadKind
	// Elem is the element type of Box and Option payloads.
	Elem string
	// Codec is the Go expression of the payload codec.
	Codec string
	// View is the borrow type; empty when the codec has no View method.
	View string
	// TagConst names the tag constant, e.g. "ShapeTagSmall".
	TagConst string
	// Ctor names the constructor, e.g. "ShapeSmall".
	Ctor string
	// CodecVar names the package-level codec variable, e.g. "shapeSmallCodec".
	CodecVar string
}

// HasView reports whether a checked borrow accessor is generated.
func (v Variant) HasView() bool {
	return v.View != ""
}
