package analyze

import (
	"context"
	"fmt"
	"go/token"
	"go/types"
	"os"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"tagword/internal/schema"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Inspector evaluates payload type expressions against loaded packages.
type Inspector struct {
	arch  string
	sizes types.Sizes
	log   *zap.Logger
	fset  *token.FileSet
	scope *types.Package

	// target is the output package, nil when it could not be loaded.
	target *types.Package
}

// NewInspector creates an Inspector computing sizes for the given GOARCH.
// A nil logger discards log output.
func NewInspector(arch string, log *zap.Logger) (*Inspector, error) {
	sizes := types.SizesFor("gc", arch)
	if sizes == nil {
		return nil, fmt.Errorf("unknown architecture %q", arch)
	}

	if log == nil {
		log = zap.NewNop()
	}

	return &Inspector{
		arch:  arch,
		sizes: sizes,
		log:   log,
		fset:  token.NewFileSet(),
	}, nil
}

// WordSize returns the size of a machine word on the target architecture.
func (in *Inspector) WordSize() int64 {
	return in.sizes.Sizeof(types.Typ[types.Uintptr])
}

// Load loads the package in dir (the output package, which may not exist
// yet), the runtime package and the given imports, and builds the scope
// type expressions are evaluated in. Package errors are tolerated: they are
// logged and returned as warnings so that a broken or empty output package
// does not block generation.
func (in *Inspector) Load(ctx context.Context, dir, pkgName string, imports []schema.Import) ([]error, error) {
	patterns := []string{".", schema.RuntimeImportPath}
	for _, imp := range imports {
		patterns = append(patterns, imp.Path)
	}

	cfg := &packages.Config{
		Context: ctx,
		Mode:    LoadMode,
		Dir:     dir,
		Fset:    in.fset,
		Env:     append(os.Environ(), "GOARCH="+in.arch),
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var warnings []error

	byPath := map[string]*packages.Package{}

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			in.log.Debug("package error", zap.String("package", pkg.PkgPath), zap.Error(e))
			warnings = append(warnings, e)
		}

		byPath[pkg.PkgPath] = pkg
	}

	var target *types.Package

	// The output package is the one loaded from ".", the only root not
	// named by an import path pattern.
	for _, pkg := range pkgs {
		if pkg.PkgPath == schema.RuntimeImportPath || isImport(pkg.PkgPath, imports) {
			continue
		}

		if pkg.Types != nil && pkg.Name != "" {
			target = pkg.Types
			break
		}
	}

	scope := types.NewPackage("tagword.scope/"+pkgName, pkgName)

	if target != nil {
		for _, name := range target.Scope().Names() {
			scope.Scope().Insert(target.Scope().Lookup(name))
		}

		in.log.Debug("loaded output package", zap.String("package", target.Path()))
	}

	qualified := append([]schema.Import{{Path: schema.RuntimeImportPath}}, imports...)
	for _, imp := range qualified {
		pkg, ok := byPath[imp.Path]
		if !ok || pkg.Types == nil {
			warnings = append(warnings, fmt.Errorf("package %s could not be loaded", imp.Path))
			continue
		}

		scope.Scope().Insert(types.NewPkgName(token.NoPos, scope, imp.Name(), pkg.Types))
	}

	in.scope = scope
	in.target = target

	return warnings, nil
}

func isImport(path string, imports []schema.Import) bool {
	for _, imp := range imports {
		if imp.Path == path {
			return true
		}
	}

	return false
}
