// Package schema provides the YAML declaration format for tagged enums,
// its loader and structural validation.
//
// A declaration file lists one or more closed sums. Each enum fixes its tag
// width and enumerates its variants in tag order:
//
//	version: "1"
//	package: shapes
//	imports:
//	  - example.com/units
//	  - path: example.com/geometry/v2
//	    alias: geo
//	enums:
//	  - name: Shape
//	    bits: 8
//	    derive: [debug, clone, equal]
//	    variants:
//	      - Empty: struct{}
//	      - Small: uint16
//	      - Named: word.Box[string]
//	      - name: Temp
//	        type: units.Celsius
//	        codec: units.CelsiusCodec{}
//	        view: units.Celsius
//
// # Variants
//
// A variant is either the shorthand single-entry mapping "Name: type" or the
// long form with name, type and optionally codec and view. The codec is a Go
// expression evaluating to a word.Codec for the payload type; view names the
// borrow type when the codec also implements word.Viewer.
//
// Tags are assigned 1, 2, 3, ... in declaration order. Tag 0 is reserved for
// the empty state, so an enum of width b holds at most 2^b - 1 variants.
package schema
