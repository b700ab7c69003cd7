package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Severities(t *testing.T) {
	var d Diagnostics

	d.AddInfo("size_unchecked", "size not verified", "Shape", "Temp")
	d.AddWarning("unused_import", "import is unused", "", "")
	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddError("duplicate_variant", `duplicate variant "Circle"`, "Shape", "Circle")
	d.AddError("bits_out_of_range", "bits must be between 1 and 16", "Shape", "")

	assert.True(t, d.HasErrors())
	require.Len(t, d.All(), 4)
	assert.Equal(t, DiagnosticError, d.All()[0].Severity)
	assert.Equal(t, DiagnosticInfo, d.All()[3].Severity)

	assert.EqualError(t, d.Error(),
		`[Shape] Circle: [duplicate_variant] duplicate variant "Circle"; [Shape]: [bits_out_of_range] bits must be between 1 and 16`)
}

func TestDiagnostic_StringWithSuggestions(t *testing.T) {
	d := Diagnostic{
		Severity:    DiagnosticError,
		Code:        "unknown_derive",
		Message:     `unknown derive "debg"`,
		Enum:        "Shape",
		Suggestions: []string{"debug"},
	}

	assert.Equal(t, `[Shape]: [unknown_derive] unknown derive "debg" (did you mean debug?)`, d.String())
	assert.Equal(t, "error", d.Severity.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics

	a.AddWarning("w", "warn", "", "")
	b.AddError("e", "err", "", "")
	b.AddInfo("i", "info", "", "")

	a.Merge(b)
	assert.Len(t, a.Errors, 1)
	assert.Len(t, a.Warnings, 1)
	assert.Len(t, a.Infos, 1)
}
