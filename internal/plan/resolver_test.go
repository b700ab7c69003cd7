package plan

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tagword/internal/analyze"
	"tagword/internal/diagnostic"
	"tagword/internal/schema"
)

type fakeInspector map[string]analyze.TypeFacts

func (f fakeInspector) Inspect(expr string) (analyze.TypeFacts, error) {
	facts, ok := f[expr]
	if !ok {
		return analyze.TypeFacts{}, errors.New("undefined: " + expr)
	}

	return facts, nil
}

func testEnumFile() *schema.File {
	return &schema.File{
		Version: schema.CurrentVersion,
		Package: "testenum",
		Enums: []schema.Enum{{
			Name:   "TestEnum",
			Bits:   8,
			Derive: schema.StringOrArray{"debug", "clone", "equal"},
			Variants: []schema.Variant{
				{Name: "U8", Type: "uint8"},
				{Name: "StringPtr", Type: "word.Box[string]"},
			},
		}},
	}
}

func resolve(t *testing.T, f *schema.File, in TypeInspector) *Plan {
	t.Helper()

	p, err := NewResolver(f, in, DefaultConfig()).Resolve()
	require.NoError(t, err)
	require.NotNil(t, p)

	return p
}

func errorCodes(d diagnostic.Diagnostics) []string {
	var out []string
	for _, e := range d.Errors {
		out = append(out, e.Code)
	}

	return out
}

func TestResolve_TestEnum(t *testing.T) {
	p := resolve(t, testEnumFile(), nil)
	require.True(t, p.Diagnostics.IsValid(), p.Diagnostics.Error())
	require.Len(t, p.Enums, 1)

	e := p.Enums[0]
	assert.Equal(t, "word.Bits8", e.Width)
	assert.Equal(t, "TestEnumVariants", e.VariantsVar)
	assert.Equal(t, "test_enum_tagged.go", e.FileName)
	assert.Equal(t, []Derive{DeriveDebug, DeriveClone, DeriveEqual}, e.Derives.List())
	assert.Empty(t, e.Imports)

	require.Len(t, e.Variants, 2)

	u8 := e.Variants[0]
	assert.Equal(t, 1, u8.Tag)
	assert.Equal(t, KindScalar, u8.Kind)
	assert.Equal(t, "word.Scalar[uint8]{}", u8.Codec)
	assert.Equal(t, "uint8", u8.View)
	assert.Equal(t, "TestEnumTagU8", u8.TagConst)
	assert.Equal(t, "TestEnumU8", u8.Ctor)
	assert.Equal(t, "testEnumU8Codec", u8.CodecVar)

	sp := e.Variants[1]
	assert.Equal(t, 2, sp.Tag)
	assert.Equal(t, KindBox, sp.Kind)
	assert.Equal(t, "string", sp.Elem)
	assert.Equal(t, "word.Boxed[string]{}", sp.Codec)
	assert.Equal(t, "*string", sp.View)

	if testing.Verbose() {
		spew.Dump(p)
	}
}

func TestResolve_SequentialTags(t *testing.T) {
	f := testEnumFile()
	f.Enums[0].Variants = nil

	for _, name := range []string{"A", "B", "C", "D", "E"} {
		f.Enums[0].Variants = append(f.Enums[0].Variants, schema.Variant{Name: name, Type: "bool"})
	}

	p := resolve(t, f, nil)
	require.True(t, p.Diagnostics.IsValid())

	for i, v := range p.Enums[0].Variants {
		assert.Equal(t, i+1, v.Tag, v.Name)
	}
}

func TestResolve_Classification(t *testing.T) {
	tests := []struct {
		typ   string
		kind  PayloadKind
		codec string
		view  string
	}{
		{"bool", KindScalar, "word.Scalar[bool]{}", "bool"},
		{"int32", KindScalar, "word.Scalar[int32]{}", "int32"},
		{"rune", KindScalar, "word.Scalar[rune]{}", "rune"},
		{"float32", KindScalar, "word.Scalar[float32]{}", "float32"},
		{"struct{}", KindUnit, "word.Scalar[struct{}]{}", "struct{}"},
		{"word.Box[int]", KindBox, "word.Boxed[int]{}", "*int"},
		{"word.Box[[]byte]", KindBox, "word.Boxed[[]byte]{}", "*[]byte"},
		{"word.Option[int64]", KindOption, "word.Optional[int64]{}", "*int64"},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			f := testEnumFile()
			f.Enums[0].Variants = []schema.Variant{{Name: "V", Type: tt.typ}}

			p := resolve(t, f, nil)
			require.True(t, p.Diagnostics.IsValid(), p.Diagnostics.Error())

			v := p.Enums[0].Variants[0]
			assert.Equal(t, tt.kind, v.Kind)
			assert.Equal(t, tt.codec, v.Codec)
			assert.Equal(t, tt.view, v.View)
		})
	}
}

func TestResolve_UnsupportedPayloads(t *testing.T) {
	tests := []struct {
		typ        string
		suggestion string
	}{
		{"int", "word.Box[int]"},
		{"uint64", "word.Box[uint64]"},
		{"float64", "word.Box[float64]"},
		{"string", "word.Box[string]"},
		{"*string", "word.Box[string]"},
		{"[]byte", "word.Box[[]byte]"},
		{"map[string]int", "word.Box[map[string]int]"},
		{"any", "word.Box[any]"},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			f := testEnumFile()
			f.Enums[0].Variants = []schema.Variant{{Name: "V", Type: tt.typ}}

			p := resolve(t, f, nil)
			require.Equal(t, []string{"unsupported_payload"}, errorCodes(p.Diagnostics))
			assert.Equal(t, []string{tt.suggestion}, p.Diagnostics.Errors[0].Suggestions)
		})
	}
}

func TestResolve_ExplicitCodec(t *testing.T) {
	f := testEnumFile()
	f.Imports = []schema.Import{{Path: "example.com/units"}, {Path: "example.com/unused"}}
	f.Enums[0].Variants = append(f.Enums[0].Variants, schema.Variant{
		Name:  "Temp",
		Type:  "units.Celsius",
		Codec: "units.CelsiusCodec{}",
		View:  "units.Celsius",
	})

	p := resolve(t, f, nil)
	require.True(t, p.Diagnostics.IsValid(), p.Diagnostics.Error())

	temp := p.Enums[0].Variants[2]
	assert.Equal(t, KindCustom, temp.Kind)
	assert.Equal(t, "units.CelsiusCodec{}", temp.Codec)
	assert.True(t, temp.HasView())

	assert.Equal(t, []schema.Import{{Path: "example.com/units"}}, p.Imports)
	assert.Equal(t, []schema.Import{{Path: "example.com/units"}}, p.Enums[0].Imports)
	require.Len(t, p.Diagnostics.Warnings, 1)
	assert.Equal(t, "unused_import", p.Diagnostics.Warnings[0].Code)
}

func TestResolve_NamedTypeNeedsInspector(t *testing.T) {
	f := testEnumFile()
	f.Enums[0].Variants = []schema.Variant{{Name: "Temp", Type: "Celsius"}}

	p := resolve(t, f, nil)
	assert.Equal(t, []string{"missing_codec"}, errorCodes(p.Diagnostics))

	in := fakeInspector{
		"Celsius": {Size: 2, Underlying: "int16", Narrow: true},
	}

	p = resolve(t, f, in)
	require.True(t, p.Diagnostics.IsValid(), p.Diagnostics.Error())

	v := p.Enums[0].Variants[0]
	assert.Equal(t, KindScalar, v.Kind)
	assert.Equal(t, "word.Scalar[Celsius]{}", v.Codec)
}

func TestResolve_NamedWideTypeRejected(t *testing.T) {
	f := testEnumFile()
	f.Enums[0].Variants = []schema.Variant{{Name: "ID", Type: "UserID"}}

	p := resolve(t, f, fakeInspector{
		"UserID": {Size: 8, Underlying: "uint64"},
	})
	require.Equal(t, []string{"missing_codec"}, errorCodes(p.Diagnostics))
	assert.Contains(t, p.Diagnostics.Errors[0].Message, "uint64")
}

func TestResolve_SizeChecks(t *testing.T) {
	f := testEnumFile()
	f.Enums[0].Variants = []schema.Variant{
		{Name: "Big", Type: "Pair", Codec: "PairCodec{}"},
		{Name: "Ptr", Type: "Handle", Codec: "HandleCodec{}"},
		{Name: "Opaque", Type: "Opaque", Codec: "OpaqueCodec{}"},
	}

	p := resolve(t, f, fakeInspector{
		"Pair":   {Size: 16, Underlying: "struct{a, b int}"},
		"Handle": {Size: 8, Underlying: "*int", HasPointers: true},
	})

	assert.Equal(t, []string{"payload_too_large"}, errorCodes(p.Diagnostics))
	require.Len(t, p.Diagnostics.Warnings, 1)
	assert.Equal(t, "pointer_payload", p.Diagnostics.Warnings[0].Code)
	require.Len(t, p.Diagnostics.Infos, 1)
	assert.Equal(t, "size_unchecked", p.Diagnostics.Infos[0].Code)
	assert.Equal(t, "Opaque", p.Diagnostics.Infos[0].Variant)
}

func TestResolve_IdentifierCollision(t *testing.T) {
	f := testEnumFile()
	f.Enums[0].Variants = []schema.Variant{
		{Name: "Small", Type: "uint8"},
		{Name: "TagSmall", Type: "uint8"},
	}
	f.Enums = append(f.Enums, schema.Enum{
		Name:     "TestEnumTagSmall",
		Bits:     4,
		Variants: []schema.Variant{{Name: "X", Type: "bool"}},
	})

	p := resolve(t, f, nil)
	assert.Contains(t, errorCodes(p.Diagnostics), "identifier_collision")
}

func TestResolve_PackageOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PackageOverride = "other"

	p, err := NewResolver(testEnumFile(), nil, cfg).Resolve()
	require.NoError(t, err)
	assert.Equal(t, "other", p.Package)
}

func TestResolve_ValidationErrorsStopResolution(t *testing.T) {
	f := testEnumFile()
	f.Enums[0].Bits = 0

	p := resolve(t, f, nil)
	assert.Equal(t, []string{"bits_out_of_range"}, errorCodes(p.Diagnostics))
	assert.Empty(t, p.Enums)
}

func TestResolve_NilFile(t *testing.T) {
	_, err := NewResolver(nil, nil, DefaultConfig()).Resolve()
	assert.Error(t, err)
}

func TestDeriveSet(t *testing.T) {
	var s DeriveSet

	s = s.Add(DeriveEqual).Add(DeriveDebug)
	assert.True(t, s.Has(DeriveDebug))
	assert.False(t, s.Has(DeriveClone))
	assert.Equal(t, []Derive{DeriveDebug, DeriveEqual}, s.List())

	d, ok := ParseDerive("clone")
	assert.True(t, ok)
	assert.Equal(t, DeriveClone, d)

	_, ok = ParseDerive("hash")
	assert.False(t, ok)

	assert.Equal(t, "box", KindBox.String())
	assert.Equal(t, "PayloadKind(0)", PayloadKind(0).String())
}
