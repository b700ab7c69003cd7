package plan

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/types"
	"sort"

	"tagword/internal/analyze"
	"tagword/internal/common"
	"tagword/internal/diagnostic"
	"tagword/internal/schema"
)

// FileSuffix is appended to the snake_case enum name to form the output file name.
const FileSuffix = "_tagged.go"

// TypeInspector reports facts about payload types as the compiler sees them.
// It is satisfied by *analyze.Inspector.
type TypeInspector interface {
	Inspect(expr string) (analyze.TypeFacts, error)
}

// ResolutionConfig holds configuration for the resolution process.
type ResolutionConfig struct {
	// WordSize is the target machine word in bytes.
	WordSize int64
	// PackageOverride replaces the declaration's package name when set.
	PackageOverride string
}

// DefaultConfig returns the default resolution configuration.
func DefaultConfig() ResolutionConfig {
	return ResolutionConfig{
		WordSize: 8,
	}
}

// Resolver performs the resolution pipeline.
type Resolver struct {
	file      *schema.File
	inspector TypeInspector
	config    ResolutionConfig
}

// NewResolver creates a new Resolver. The inspector may be nil, in which
// case payload sizes are not verified and named types need an explicit codec.
func NewResolver(file *schema.File, inspector TypeInspector, config ResolutionConfig) *Resolver {
	return &Resolver{
		file:      file,
		inspector: inspector,
		config:    config,
	}
}

// Resolve runs the full resolution pipeline and returns a Plan.
// Declaration problems are reported through Plan.Diagnostics; the returned
// error is reserved for misuse.
func (r *Resolver) Resolve() (*Plan, error) {
	if r.file == nil {
		return nil, errors.New("plan: declaration is nil")
	}

	p := &Plan{Package: r.file.Package}
	if r.config.PackageOverride != "" {
		p.Package = r.config.PackageOverride
	}

	p.Diagnostics.Merge(*schema.Validate(&schema.File{
		Version: r.file.Version,
		Package: p.Package,
		Imports: r.file.Imports,
		Enums:   r.file.Enums,
	}))

	if p.Diagnostics.HasErrors() {
		return p, nil
	}

	byName := map[string]schema.Import{}
	for _, imp := range r.file.Imports {
		byName[imp.Name()] = imp
	}

	used := map[string]struct{}{}
	idents := map[string]string{}

	for i := range r.file.Enums {
		e := r.resolveEnum(&r.file.Enums[i], &p.Diagnostics, idents)
		e.Imports = enumImports(e, byName)

		for _, imp := range e.Imports {
			used[imp.Name()] = struct{}{}
		}

		p.Enums = append(p.Enums, e)
	}

	for _, imp := range r.file.Imports {
		if _, ok := used[imp.Name()]; ok {
			p.Imports = append(p.Imports, imp)
			continue
		}

		p.Diagnostics.AddWarning("unused_import", fmt.Sprintf("import %q is not referenced", imp.Path), "", "")
	}

	return p, nil
}

func (r *Resolver) resolveEnum(decl *schema.Enum, diags *diagnostic.Diagnostics, idents map[string]string) Enum {
	e := Enum{
		Name:        decl.Name,
		Doc:         decl.Doc,
		Bits:        decl.Bits,
		Width:       fmt.Sprintf("word.Bits%d", decl.Bits),
		VariantsVar: decl.Name + "Variants",
		FileName:    common.SnakeCase(decl.Name) + FileSuffix,
	}

	for _, name := range decl.Derive {
		if d, ok := ParseDerive(name); ok {
			e.Derives = e.Derives.Add(d)
		}
	}

	claim := func(ident, owner string) {
		if prev, ok := idents[ident]; ok {
			diags.AddError("identifier_collision",
				fmt.Sprintf("generated identifier %q of %s collides with %s", ident, owner, prev), e.Name, "")

			return
		}

		idents[ident] = owner
	}

	claim(e.Name, "enum "+e.Name)
	claim(e.VariantsVar, "enum "+e.Name)

	for i, dv := range decl.Variants {
		v := Variant{
			Name:     dv.Name,
			Tag:      i + 1,
			Type:     dv.Type,
			TagConst: e.Name + "Tag" + dv.Name,
			Ctor:     e.Name + dv.Name,
			CodecVar: common.LowerFirst(e.Name) + dv.Name + "Codec",
		}

		owner := "variant " + e.Name + "." + dv.Name
		claim(v.TagConst, owner)
		claim(v.Ctor, owner)
		claim(v.CodecVar, owner)

		r.resolvePayload(&v, dv, e.Name, diags)
		e.Variants = append(e.Variants, v)
	}

	return e
}

// resolvePayload classifies the payload and picks its codec and view.
func (r *Resolver) resolvePayload(v *Variant, dv schema.Variant, enum string, diags *diagnostic.Diagnostics) {
	expr, err := parser.ParseExpr(dv.Type)
	if err != nil {
		// Already reported by validation.
		return
	}

	v.Kind, v.Elem = classify(expr)

	if dv.Codec != "" {
		v.Codec = dv.Codec
		v.View = dv.View

		if v.Kind != KindCustom {
			diags.AddInfo("codec_override",
				fmt.Sprintf("%s payload %s uses explicit codec %s", v.Kind, dv.Type, dv.Codec), enum, v.Name)
		}

		v.Kind = KindCustom
		r.inspect(v, enum, diags, true)

		return
	}

	switch v.Kind {
	case KindUnit, KindScalar:
		v.Codec = "word.Scalar[" + dv.Type + "]{}"
		v.View = dv.Type
	case KindBox:
		v.Codec = "word.Boxed[" + v.Elem + "]{}"
		v.View = "*" + v.Elem
	case KindOption:
		v.Codec = "word.Optional[" + v.Elem + "]{}"
		v.View = "*" + v.Elem
	default:
		if reason := unsupported(expr); reason != "" {
			diags.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.DiagnosticError,
				Code:        "unsupported_payload",
				Message:     fmt.Sprintf("payload %s %s; wrap it in a box or set codec", dv.Type, reason),
				Enum:        enum,
				Variant:     v.Name,
				Suggestions: []string{"word.Box[" + boxElem(dv.Type, expr) + "]"},
			})

			return
		}

		r.inferCustom(v, dv, enum, diags)

		return
	}

	r.inspect(v, enum, diags, false)
}

// inferCustom handles named payload types without an explicit codec: they
// get the scalar codec when their underlying type is a narrow scalar.
func (r *Resolver) inferCustom(v *Variant, dv schema.Variant, enum string, diags *diagnostic.Diagnostics) {
	if r.inspector == nil {
		diags.AddError("missing_codec",
			fmt.Sprintf("payload %s has no default codec; set codec or enable type checking", dv.Type), enum, v.Name)

		return
	}

	facts, err := r.inspector.Inspect(dv.Type)
	if err != nil {
		diags.AddError("missing_codec",
			fmt.Sprintf("payload %s has no default codec and could not be inspected: %v", dv.Type, err), enum, v.Name)

		return
	}

	if !facts.Narrow {
		diags.AddError("missing_codec",
			fmt.Sprintf("payload %s (%s) has no default codec; set codec", dv.Type, facts.Underlying), enum, v.Name)

		return
	}

	v.Kind = KindScalar
	v.Codec = "word.Scalar[" + dv.Type + "]{}"
	v.View = dv.Type
}

// inspect verifies the payload against the target word size when an
// inspector is available.
func (r *Resolver) inspect(v *Variant, enum string, diags *diagnostic.Diagnostics, custom bool) {
	if r.inspector == nil {
		return
	}

	facts, err := r.inspector.Inspect(v.Type)
	if err != nil {
		diags.AddInfo("size_unchecked", fmt.Sprintf("size of %s not verified: %v", v.Type, err), enum, v.Name)
		return
	}

	if facts.Size > r.config.WordSize {
		diags.AddError("payload_too_large",
			fmt.Sprintf("payload %s is %d bytes, larger than the %d-byte word", v.Type, facts.Size, r.config.WordSize),
			enum, v.Name)
	}

	if custom && facts.HasPointers {
		diags.AddWarning("pointer_payload",
			fmt.Sprintf("payload %s holds pointers; its codec must keep the pointee reachable", v.Type),
			enum, v.Name)
	}
}

var (
	narrowScalars = map[string]bool{
		"bool": true, "int8": true, "int16": true, "int32": true, "rune": true,
		"uint8": true, "byte": true, "uint16": true, "uint32": true, "float32": true,
	}
	wideScalars = map[string]string{
		"int": "is word-wide", "uint": "is word-wide", "int64": "is word-wide",
		"uint64": "is word-wide", "uintptr": "is word-wide", "float64": "is word-wide",
		"complex64": "is word-wide", "complex128": "spans two words",
		"string": "spans two words", "error": "is an interface", "any": "is an interface",
		"unsafe.Pointer": "is a raw pointer",
	}
)

// classify returns the payload kind of a type expression. Types that need an
// explicit codec classify as KindCustom.
func classify(expr ast.Expr) (PayloadKind, string) {
	switch t := expr.(type) {
	case *ast.Ident:
		if narrowScalars[t.Name] {
			return KindScalar, ""
		}
	case *ast.StructType:
		if t.Fields == nil || len(t.Fields.List) == 0 {
			return KindUnit, ""
		}
	case *ast.IndexExpr:
		if sel, ok := t.X.(*ast.SelectorExpr); ok {
			if pkg, ok := sel.X.(*ast.Ident); ok && pkg.Name == schema.RuntimePackage {
				switch sel.Sel.Name {
				case "Box":
					return KindBox, types.ExprString(t.Index)
				case "Option":
					return KindOption, types.ExprString(t.Index)
				}
			}
		}
	case *ast.ParenExpr:
		return classify(t.X)
	}

	return KindCustom, ""
}

// unsupported explains why a type cannot be stored without an explicit
// codec, or returns "" when the type may still be a narrow named type.
func unsupported(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return wideScalars[t.Name]
	case *ast.SelectorExpr:
		return wideScalars[types.ExprString(t)]
	case *ast.StarExpr:
		return "is a raw pointer the garbage collector must see"
	case *ast.MapType, *ast.ChanType, *ast.FuncType:
		return "is pointer-shaped"
	case *ast.InterfaceType:
		return "is an interface"
	case *ast.ArrayType:
		if t.Len == nil {
			return "is a slice spanning three words"
		}

		return "is an array; declare a named type with a codec"
	case *ast.StructType:
		return "is an anonymous struct; declare a named type with a codec"
	case *ast.ParenExpr:
		return unsupported(t.X)
	}

	return ""
}

func boxElem(src string, expr ast.Expr) string {
	if star, ok := expr.(*ast.StarExpr); ok {
		return types.ExprString(star.X)
	}

	return src
}

// enumImports returns the declared imports referenced by the enum's types,
// codecs and views, sorted by path.
func enumImports(e Enum, byName map[string]schema.Import) []schema.Import {
	refs := map[string]struct{}{}

	for _, v := range e.Variants {
		for _, src := range []string{v.Type, v.Codec, v.View} {
			if src == "" {
				continue
			}

			expr, err := parser.ParseExpr(src)
			if err != nil {
				continue
			}

			for _, q := range schema.Qualifiers(expr) {
				refs[q] = struct{}{}
			}
		}
	}

	var out []schema.Import

	for name, imp := range byName {
		if _, ok := refs[name]; ok {
			out = append(out, imp)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})

	return out
}
