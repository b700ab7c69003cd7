// Command tagword-gen generates tagged-union types from YAML declarations.
//
// Usage:
//
//	tagword-gen [flags] decl.yaml...
//
// Each declaration produces one <enum>_tagged.go file per enum, written next
// to the declaration unless -o is given. Payload sizes are verified against
// the output package with go/packages unless -check-sizes=false.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"go.uber.org/zap"

	"tagword/internal/gen"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tagword-gen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.outDir, "o", "", "Output directory (default: directory of each declaration)")
	fs.StringVar(&opts.pkg, "package", "", "Override the package name of the generated files")
	fs.BoolVar(&opts.checkSizes, "check-sizes", true, "Verify payload sizes against the output package")
	fs.StringVar(&opts.arch, "arch", runtime.GOARCH, "Target GOARCH for size checks")
	dump := fs.Bool("dump", false, "Dump the resolved plan to stderr")
	verbose := fs.Bool("v", false, "Verbose logging")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "Usage: tagword-gen [flags] decl.yaml...")
		fs.PrintDefaults()

		return 2
	}

	log := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(stderr, "Error: logger: %v\n", err)
			return 1
		}

		defer func() { _ = l.Sync() }()

		log = l
	}

	gen.SetLogger(log)

	opts.log = log
	if *dump {
		opts.dump = stderr
	}

	results, err := generateAll(ctx, fs.Args(), opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	failed := false
	for _, res := range results {
		for _, d := range res.diags.All() {
			fmt.Fprintf(stderr, "%s: %s: %s\n", res.path, d.Severity, d)
		}

		if res.diags.HasErrors() {
			failed = true
			continue
		}

		for _, name := range res.written {
			fmt.Fprintln(stdout, name)
		}
	}

	if failed {
		return 1
	}

	return 0
}
