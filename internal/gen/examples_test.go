package gen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tagword/internal/analyze"
	"tagword/internal/plan"
	"tagword/internal/schema"
)

// TestExamplesUpToDate regenerates every checked-in example from its
// declaration, with type inspection on, and compares the result.
func TestExamplesUpToDate(t *testing.T) {
	tests := []struct {
		dir  string
		decl string
		file string
	}{
		{"testenum", "enum.yaml", "test_enum_tagged.go"},
		{"shapes", "shapes.yaml", "shape_tagged.go"},
		{"bench", "numbers.yaml", "number_tagged.go"},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			dir := filepath.Join("..", "..", "examples", tt.dir)

			f, err := schema.LoadFile(filepath.Join(dir, tt.decl))
			require.NoError(t, err)

			in, err := analyze.NewInspector("amd64", nil)
			require.NoError(t, err)

			_, err = in.Load(context.Background(), dir, f.Package, f.Imports)
			require.NoError(t, err)

			cfg := plan.DefaultConfig()
			cfg.WordSize = in.WordSize()

			p, err := plan.NewResolver(f, in, cfg).Resolve()
			require.NoError(t, err)
			require.True(t, p.Diagnostics.IsValid(), p.Diagnostics.Error())

			files, err := NewGenerator(DefaultGeneratorConfig()).Generate(p)
			require.NoError(t, err)
			require.Len(t, files, 1)
			assert.Equal(t, tt.file, files[0].Filename)

			want, err := os.ReadFile(filepath.Join(dir, tt.file))
			require.NoError(t, err)
			assert.Equal(t, string(want), string(files[0].Content),
				"%s is stale; run go generate ./examples/...", tt.file)
		})
	}
}
