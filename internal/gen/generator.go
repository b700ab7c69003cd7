package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"

	"go.uber.org/zap"

	"tagword/internal/plan"
	"tagword/internal/schema"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName overrides the plan's package name when set.
	PackageName string
	// OutputDir is where unformatted sidecars are written when formatting fails.
	OutputDir string
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		GenerateComments: true,
	}
}

// Generator generates Go code from a resolved plan.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "test_enum_tagged.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// importSpec is one line of the generated import block.
type importSpec struct {
	Alias string
	Path  string
}

// templateData holds all data needed for the enum template.
type templateData struct {
	PackageName string
	Imports     []importSpec
	Comments    bool
	DocComment  string
	Enum        plan.Enum
	Debug       bool
	Clone       bool
	Equal       bool
}

// Generate generates one file per enum of the plan.
// A plan carrying error diagnostics is rejected.
func (g *Generator) Generate(p *plan.Plan) ([]GeneratedFile, error) {
	if err := p.Diagnostics.Error(); err != nil {
		return nil, fmt.Errorf("plan has errors: %w", err)
	}

	files := make([]GeneratedFile, 0, len(p.Enums))

	for i := range p.Enums {
		file, err := g.generateEnum(p, &p.Enums[i])
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", p.Enums[i].Name, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

func (g *Generator) generateEnum(p *plan.Plan, e *plan.Enum) (*GeneratedFile, error) {
	data := g.buildTemplateData(p, e)

	var buf bytes.Buffer
	if err := enumTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		writeDebugUnformatted(g.config.OutputDir, e.FileName, buf.Bytes())

		return &GeneratedFile{
			Filename: e.FileName,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w", err)
	}

	Logger().Debug("generated enum",
		zap.String("enum", e.Name),
		zap.String("file", e.FileName),
		zap.Int("variants", len(e.Variants)),
		zap.Int("bits", e.Bits))

	return &GeneratedFile{
		Filename: e.FileName,
		Content:  formatted,
	}, nil
}

// buildTemplateData constructs the template data for one enum.
func (g *Generator) buildTemplateData(p *plan.Plan, e *plan.Enum) *templateData {
	data := &templateData{
		PackageName: p.Package,
		Comments:    g.config.GenerateComments,
		Enum:        *e,
		Debug:       e.Derives.Has(plan.DeriveDebug),
		Clone:       e.Derives.Has(plan.DeriveClone),
		Equal:       e.Derives.Has(plan.DeriveEqual),
	}

	if g.config.PackageName != "" {
		data.PackageName = g.config.PackageName
	}

	if e.Doc != "" {
		data.DocComment = docComment(e.Doc)
	}

	data.Imports = append(data.Imports, importSpec{Path: schema.RuntimeImportPath})
	for _, imp := range e.Imports {
		data.Imports = append(data.Imports, importSpec{Alias: imp.Alias, Path: imp.Path})
	}

	sort.Slice(data.Imports, func(i, j int) bool {
		return data.Imports[i].Path < data.Imports[j].Path
	})

	return data
}

// docComment turns free text into a line comment block.
func docComment(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	for i, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			lines[i] = "//"
			continue
		}

		lines[i] = "// " + line
	}

	return strings.Join(lines, "\n")
}
