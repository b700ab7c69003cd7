package schema

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"slices"
	"sort"

	"tagword/internal/common"
	"tagword/internal/diagnostic"
	"tagword/internal/match"
	"tagword/word"
)

// RuntimePackage is the qualifier generated code uses for the runtime package.
const RuntimePackage = "word"

// RuntimeImportPath is the import path of the runtime package.
const RuntimeImportPath = "tagword/word"

// Validate checks the structure of a declaration file: names, widths,
// variant counts, type and codec expressions, derives and imports.
// Payload representability is checked later, during planning.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("file_is_nil", "declaration file is nil", "", "")
		return res
	}

	if f.Version != CurrentVersion {
		res.AddError("unsupported_version",
			fmt.Sprintf("unsupported version %q, want %q", f.Version, CurrentVersion), "", "")
	}

	switch {
	case f.Package == "":
		res.AddError("missing_package", "package name is required", "", "")
	case !token.IsIdentifier(f.Package):
		res.AddError("invalid_package", fmt.Sprintf("package name %q is not a Go identifier", f.Package), "", "")
	}

	qualifiers := validateImports(res, f.Imports)

	if common.IsEmpty(f.Enums) {
		res.AddWarning("no_enums", "declaration has no enums", "", "")
	}

	seen := map[string]struct{}{}

	for i := range f.Enums {
		e := &f.Enums[i]

		if _, dup := seen[e.Name]; dup {
			res.AddError("duplicate_enum", fmt.Sprintf("duplicate enum %q", e.Name), e.Name, "")
			continue
		}

		seen[e.Name] = struct{}{}

		validateEnum(res, e, qualifiers)
	}

	return res
}

func validateImports(res *diagnostic.Diagnostics, imports []Import) map[string]struct{} {
	qualifiers := map[string]struct{}{RuntimePackage: {}}

	for _, imp := range imports {
		if imp.Path == "" {
			res.AddError("empty_import", "import path is empty", "", "")
			continue
		}

		name := imp.Name()
		if !token.IsIdentifier(name) {
			res.AddError("invalid_import_alias",
				fmt.Sprintf("import %q: %q is not a Go identifier, set alias", imp.Path, name), "", "")

			continue
		}

		if _, dup := qualifiers[name]; dup {
			res.AddError("duplicate_import_alias",
				fmt.Sprintf("import %q: name %q is already in use", imp.Path, name), "", "")

			continue
		}

		qualifiers[name] = struct{}{}
	}

	return qualifiers
}

func validateEnum(res *diagnostic.Diagnostics, e *Enum, qualifiers map[string]struct{}) {
	if !token.IsIdentifier(e.Name) || token.IsKeyword(e.Name) {
		res.AddError("invalid_enum_name", fmt.Sprintf("enum name %q is not a Go identifier", e.Name), e.Name, "")
	}

	bitsOK := common.IsInRange(1, e.Bits, word.MaxBits)
	if !bitsOK {
		res.AddError("bits_out_of_range",
			fmt.Sprintf("bits must be between 1 and %d, got %d", word.MaxBits, e.Bits), e.Name, "")
	}

	switch {
	case common.IsEmpty(e.Variants):
		res.AddError("no_variants", "enum has no variants", e.Name, "")
	case bitsOK && len(e.Variants) >= 1<<e.Bits:
		res.AddError("too_many_variants",
			fmt.Sprintf("%d variants do not fit in %d tag bits (max %d, tag 0 is reserved)",
				len(e.Variants), e.Bits, 1<<e.Bits-1), e.Name, "")
	}

	validateDerives(res, e)

	seen := map[string]struct{}{}

	for _, v := range e.Variants {
		if _, dup := seen[v.Name]; dup {
			res.AddError("duplicate_variant", fmt.Sprintf("duplicate variant %q", v.Name), e.Name, v.Name)
			continue
		}

		seen[v.Name] = struct{}{}

		validateVariant(res, e.Name, v, qualifiers)
	}
}

func validateDerives(res *diagnostic.Diagnostics, e *Enum) {
	seen := map[string]struct{}{}

	for _, d := range e.Derive {
		if _, dup := seen[d]; dup {
			res.AddWarning("duplicate_derive", fmt.Sprintf("derive %q listed twice", d), e.Name, "")
			continue
		}

		seen[d] = struct{}{}

		if !slices.Contains(KnownDerives, d) {
			res.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.DiagnosticError,
				Code:        "unknown_derive",
				Message:     fmt.Sprintf("unknown derive %q", d),
				Enum:        e.Name,
				Suggestions: match.Suggest(d, KnownDerives),
			})
		}
	}
}

func validateVariant(res *diagnostic.Diagnostics, enum string, v Variant, qualifiers map[string]struct{}) {
	if !token.IsIdentifier(v.Name) || token.IsKeyword(v.Name) {
		res.AddError("invalid_variant_name", fmt.Sprintf("variant name %q is not a Go identifier", v.Name), enum, v.Name)
	}

	if v.Type == "" {
		res.AddError("missing_type", "variant has no payload type", enum, v.Name)
	} else {
		validateExpr(res, enum, v.Name, "type", v.Type, qualifiers)
	}

	if v.Codec != "" {
		validateExpr(res, enum, v.Name, "codec", v.Codec, qualifiers)
	}

	if v.View != "" {
		if v.Codec == "" {
			res.AddError("view_without_codec", "view requires an explicit codec", enum, v.Name)
		}

		validateExpr(res, enum, v.Name, "view", v.View, qualifiers)
	}
}

// validateExpr checks that src parses as a Go expression and that every
// package qualifier it uses is imported.
func validateExpr(res *diagnostic.Diagnostics, enum, variant, what, src string, qualifiers map[string]struct{}) {
	expr, err := parser.ParseExpr(src)
	if err != nil {
		res.AddError("invalid_"+what, fmt.Sprintf("%s %q does not parse: %v", what, src, err), enum, variant)
		return
	}

	known := make([]string, 0, len(qualifiers))
	for q := range qualifiers {
		known = append(known, q)
	}

	sort.Strings(known)

	for _, q := range Qualifiers(expr) {
		if _, ok := qualifiers[q]; ok {
			continue
		}

		res.Add(diagnostic.Diagnostic{
			Severity:    diagnostic.DiagnosticError,
			Code:        "unknown_package",
			Message:     fmt.Sprintf("%s %q uses package %q which is not imported", what, src, q),
			Enum:        enum,
			Variant:     variant,
			Suggestions: match.Suggest(q, known),
		})
	}
}

// Qualifiers returns the package names referenced as "pkg.Name" in expr, in
// order of first appearance.
func Qualifiers(expr ast.Expr) []string {
	var (
		out  []string
		seen = map[string]struct{}{}
	)

	ast.Inspect(expr, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}

		if id, ok := sel.X.(*ast.Ident); ok {
			if _, dup := seen[id.Name]; !dup {
				seen[id.Name] = struct{}{}
				out = append(out, id.Name)
			}

			return false
		}

		return true
	})

	return out
}
