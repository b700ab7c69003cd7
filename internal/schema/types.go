package schema

import (
	"tagword/internal/common"
)

// CurrentVersion is the declaration format version written by this package.
const CurrentVersion = "1"

// DefaultBits is the tag width used when an enum omits bits.
const DefaultBits = 8

// Known derive names.
const (
	DeriveDebug = "debug"
	DeriveClone = "clone"
	DeriveEqual = "equal"
)

// KnownDerives lists every derive name accepted in a declaration.
var KnownDerives = []string{DeriveDebug, DeriveClone, DeriveEqual}

// File represents the root of a YAML declaration file.
type File struct {
	// Version of the declaration format.
	Version string `yaml:"version,omitempty"`

	// Package is the Go package name of the generated file.
	Package string `yaml:"package"`

	// Imports are packages referenced by variant types and codecs.
	Imports []Import `yaml:"imports,omitempty"`

	// Enums are the tagged enums to generate, in output order.
	Enums []Enum `yaml:"enums"`
}

// Import is a package referenced from type or codec expressions.
// It accepts either a bare path or a {path, alias} mapping.
type Import struct {
	Path  string `yaml:"path"`
	Alias string `yaml:"alias,omitempty"`
}

// Name returns the identifier the import is referenced by.
func (i Import) Name() string {
	if i.Alias != "" {
		return i.Alias
	}

	return common.PkgAlias(i.Path)
}

// Enum declares one tagged enum.
type Enum struct {
	// Name is the Go type name of the generated union.
	Name string `yaml:"name"`

	// Bits is the tag width in bits (1..16).
	Bits int `yaml:"bits,omitempty"`

	// Doc is an optional doc comment for the generated type.
	Doc string `yaml:"doc,omitempty"`

	// Derive lists structural behaviors to generate (debug, clone, equal).
	Derive StringOrArray `yaml:"derive,omitempty"`

	// Variants in tag order.
	Variants []Variant `yaml:"variants"`
}

// Variant is one (name, payload type) pair of an enum.
type Variant struct {
	// Name is the Go identifier of the variant.
	Name string `yaml:"name"`

	// Type is the Go type expression of the payload.
	Type string `yaml:"type"`

	// Codec is an optional Go expression of a word.Codec for Type.
	Codec string `yaml:"codec,omitempty"`

	// View is the borrow type returned by Codec's View method, if any.
	View string `yaml:"view,omitempty"`
}

// IsShorthand reports whether the variant can be written as "Name: type".
func (v Variant) IsShorthand() bool {
	return v.Codec == "" && v.View == ""
}

// StringOrArray is a list that also accepts a single scalar in YAML.
type StringOrArray []string
