package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tagword/internal/analyze"
	"tagword/internal/diagnostic"
	"tagword/internal/gen"
	"tagword/internal/plan"
	"tagword/internal/schema"
)

type options struct {
	outDir     string
	pkg        string
	checkSizes bool
	arch       string
	log        *zap.Logger

	// dump receives a spew dump of each plan when non-nil.
	dump io.Writer
}

type result struct {
	path    string
	diags   diagnostic.Diagnostics
	written []string
}

// dumpMu serialises plan dumps so concurrent files do not interleave.
var dumpMu sync.Mutex

// generateAll processes every declaration concurrently. Results keep the
// order of paths. The returned error is the first I/O or generation failure;
// declaration problems are reported through each result's diagnostics.
func generateAll(ctx context.Context, paths []string, opts options) ([]result, error) {
	results := make([]result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			res, err := generateFile(ctx, path, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func generateFile(ctx context.Context, path string, opts options) (result, error) {
	res := result{path: path}

	f, err := schema.LoadFile(path)
	if err != nil {
		return res, err
	}

	outDir := opts.outDir
	if outDir == "" {
		outDir = filepath.Dir(path)
	}

	cfg := plan.DefaultConfig()
	cfg.PackageOverride = opts.pkg

	var inspector plan.TypeInspector

	if opts.checkSizes {
		in, err := analyze.NewInspector(opts.arch, opts.log)
		if err != nil {
			return res, err
		}

		cfg.WordSize = in.WordSize()

		pkgName := f.Package
		if opts.pkg != "" {
			pkgName = opts.pkg
		}

		warnings, err := in.Load(ctx, outDir, pkgName, f.Imports)
		if err != nil {
			opts.log.Warn("size checks disabled", zap.String("decl", path), zap.Error(err))
			res.diags.AddWarning("load_failed", "size checks disabled: "+err.Error(), "", "")
		} else {
			inspector = in
		}

		for _, w := range warnings {
			res.diags.AddInfo("package_error", w.Error(), "", "")
		}
	}

	p, err := plan.NewResolver(f, inspector, cfg).Resolve()
	if err != nil {
		return res, err
	}

	res.diags.Merge(p.Diagnostics)

	if opts.dump != nil {
		dumpMu.Lock()
		fmt.Fprintf(opts.dump, "# %s\n", path)
		spew.Fdump(opts.dump, p)
		dumpMu.Unlock()
	}

	if res.diags.HasErrors() {
		return res, nil
	}

	files, err := gen.NewGenerator(gen.GeneratorConfig{
		PackageName:      opts.pkg,
		OutputDir:        outDir,
		GenerateComments: true,
	}).Generate(p)
	if err != nil {
		return res, err
	}

	if err := gen.WriteFiles(files, outDir); err != nil {
		return res, err
	}

	for _, file := range files {
		res.written = append(res.written, filepath.Join(outDir, file.Filename))
	}

	opts.log.Debug("generated", zap.String("decl", path), zap.Int("files", len(files)))

	return res, nil
}
