package analyze

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var shapesDir = filepath.Join("..", "..", "examples", "shapes")

func loadShapes(t *testing.T) *Inspector {
	t.Helper()

	in, err := NewInspector("amd64", nil)
	require.NoError(t, err)

	warnings, err := in.Load(context.Background(), shapesDir, "shapes", nil)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	return in
}

func TestInspector_Facts(t *testing.T) {
	in := loadShapes(t)
	assert.Equal(t, int64(8), in.WordSize())

	tests := []struct {
		expr string
		want TypeFacts
	}{
		{"uint8", TypeFacts{Size: 1, Underlying: "uint8", Narrow: true}},
		{"struct{}", TypeFacts{Size: 0, Underlying: "struct{}", Narrow: true}},
		{"Celsius", TypeFacts{Size: 2, Underlying: "int16", Narrow: true}},
		{"Point", TypeFacts{Size: 4, Underlying: "struct{X int16; Y int16}"}},
		{"int64", TypeFacts{Size: 8, Underlying: "int64"}},
		{"string", TypeFacts{Size: 16, Underlying: "string", HasPointers: true}},
		{"*Point", TypeFacts{Size: 8, Underlying: "*Point", HasPointers: true}},
		{"[2]uint32", TypeFacts{Size: 8, Underlying: "[2]uint32"}},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := in.Inspect(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInspector_RuntimeTypes(t *testing.T) {
	in := loadShapes(t)

	for _, expr := range []string{"word.Box[string]", "word.Option[int64]", "Shape"} {
		t.Run(expr, func(t *testing.T) {
			got, err := in.Inspect(expr)
			require.NoError(t, err)
			assert.Equal(t, int64(8), got.Size)
			assert.False(t, got.HasPointers, "handles are plain integers")
			assert.False(t, got.Narrow)
		})
	}
}

func TestInspector_Errors(t *testing.T) {
	in := loadShapes(t)

	_, err := in.Inspect("Nope")
	assert.Error(t, err)

	_, err = in.Inspect("42")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a type")

	_, err = NewInspector("z80", nil)
	assert.Error(t, err)

	fresh, err := NewInspector("386", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(4), fresh.WordSize())

	_, err = fresh.Inspect("uint8")
	assert.ErrorIs(t, err, errNotLoaded)
}

func TestInspector_MissingOutputPackage(t *testing.T) {
	in, err := NewInspector("amd64", nil)
	require.NoError(t, err)

	// A directory without Go files still gives access to builtin and runtime types.
	dir := filepath.Join("..", "..", "examples", "shapes", "testdata")

	warnings, err := in.Load(context.Background(), dir, "fresh", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, warnings)

	got, err := in.Inspect("word.Box[int]")
	require.NoError(t, err)
	assert.Equal(t, int64(8), got.Size)
}
