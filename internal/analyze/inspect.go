package analyze

import (
	"errors"
	"fmt"
	"go/token"
	"go/types"
)

// TypeFacts describes a payload type as the compiler lays it out.
type TypeFacts struct {
	// Size in bytes on the target architecture.
	Size int64
	// Underlying is the printed underlying type.
	Underlying string
	// Narrow reports whether the type satisfies word.Narrow: a bool,
	// an integer or float of at most 32 bits, or the empty struct.
	Narrow bool
	// HasPointers reports whether values of the type reference memory the
	// garbage collector must trace.
	HasPointers bool
}

var errNotLoaded = errors.New("analyze: Load was not called")

// Inspect evaluates a type expression and reports its facts.
func (in *Inspector) Inspect(expr string) (TypeFacts, error) {
	if in.scope == nil {
		return TypeFacts{}, errNotLoaded
	}

	tv, err := types.Eval(in.fset, in.scope, token.NoPos, expr)
	if err != nil {
		return TypeFacts{}, fmt.Errorf("evaluating %s: %w", expr, err)
	}

	if !tv.IsType() {
		return TypeFacts{}, fmt.Errorf("%s is not a type", expr)
	}

	t := tv.Type

	return TypeFacts{
		Size:        in.sizes.Sizeof(t),
		Underlying:  types.TypeString(t.Underlying(), in.qualifier),
		Narrow:      isNarrow(t),
		HasPointers: hasPointers(t, map[types.Type]bool{}),
	}, nil
}

// qualifier prints types of the output package unqualified and others by
// package name, as they appear in declarations.
func (in *Inspector) qualifier(pkg *types.Package) string {
	if pkg == in.target || pkg == in.scope {
		return ""
	}

	return pkg.Name()
}

func isNarrow(t types.Type) bool {
	switch u := t.Underlying().(type) {
	case *types.Basic:
		switch u.Kind() {
		case types.Bool, types.Int8, types.Int16, types.Int32,
			types.Uint8, types.Uint16, types.Uint32, types.Float32:
			return true
		}
	case *types.Struct:
		return u.NumFields() == 0
	}

	return false
}

func hasPointers(t types.Type, seen map[types.Type]bool) bool {
	if seen[t] {
		return false
	}

	seen[t] = true

	switch u := t.Underlying().(type) {
	case *types.Basic:
		return u.Kind() == types.String || u.Kind() == types.UnsafePointer
	case *types.Array:
		return u.Len() > 0 && hasPointers(u.Elem(), seen)
	case *types.Struct:
		for i := range u.NumFields() {
			if hasPointers(u.Field(i).Type(), seen) {
				return true
			}
		}

		return false
	default:
		// pointers, slices, maps, chans, funcs, interfaces
		return true
	}
}
