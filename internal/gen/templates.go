package gen

import (
	"text/template"
)

var enumTemplate = template.Must(template.New("enum").Parse(`// Code generated by tagword-gen. DO NOT EDIT.

package {{.PackageName}}

import (
	"unsafe"

{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{$e := .Enum}}{{$c := .Comments}}
{{if $c}}// Tags of {{$e.Name}}, assigned in declaration order. Tag 0 is the empty state.
{{end}}const (
{{range $e.Variants}}	{{.TagConst}} word.Tag = {{.Tag}}
{{end}})

{{if $c}}// {{$e.VariantsVar}} holds the variant names of {{$e.Name}} indexed by tag.
{{end}}var {{$e.VariantsVar}} = []string{
{{range $e.Variants}}	{{.TagConst}}: "{{.Name}}",
{{end}}}

var (
{{range $e.Variants}}	{{.CodecVar}} = {{.Codec}}
{{end}})

{{if .DocComment}}{{.DocComment}}
{{else if $c}}// {{$e.Name}} is a tagged union held in a single machine word.
// The zero value is empty. A {{$e.Name}} owns its payload: it is consumed by
// an Unwrap method or released by Drop, and must not be used after either.
{{end}}type {{$e.Name}} struct {
	w word.Word[{{$e.Width}}]
}

{{if $c}}// The union is exactly one word and every payload fits in one.
{{end}}var (
	_ [unsafe.Sizeof(uintptr(0)) - unsafe.Sizeof({{$e.Name}}{})]struct{}
	_ [unsafe.Sizeof({{$e.Name}}{}) - unsafe.Sizeof(uintptr(0))]struct{}
{{range $e.Variants}}	_ [unsafe.Sizeof(uintptr(0)) - unsafe.Sizeof(*new({{.Type}}))]struct{}
{{end}})
{{range $e.Variants}}
{{if $c}}// {{.Ctor}} returns a {{$e.Name}} holding v as {{.Name}}.
{{end}}func {{.Ctor}}(v {{.Type}}) {{$e.Name}} {
	return {{$e.Name}}{w: word.Pack[{{$e.Width}}]({{.TagConst}}, v, {{.CodecVar}})}
}
{{end}}
{{if $c}}// Tag returns the tag of the held variant, or word.EmptyTag.
{{end}}func (e {{$e.Name}}) Tag() word.Tag {
	return e.w.Tag()
}

{{if $c}}// Is reports whether e holds the variant with the given tag.
{{end}}func (e {{$e.Name}}) Is(tag word.Tag) bool {
	return e.w.Is(tag)
}

{{if $c}}// IsEmpty reports whether e holds no variant.
{{end}}func (e {{$e.Name}}) IsEmpty() bool {
	return e.w.IsEmpty()
}

{{if $c}}// Variant returns the name of the held variant, or "" when empty.
{{end}}func (e {{$e.Name}}) Variant() string {
	if t := int(e.w.Tag()); t < len({{$e.VariantsVar}}) {
		return {{$e.VariantsVar}}[t]
	}

	return ""
}

{{if $c}}// Word exposes the underlying word for use with word.Unwrap and word.Borrow.
// Those calls do not check the tag.
{{end}}func (e *{{$e.Name}}) Word() *word.Word[{{$e.Width}}] {
	return &e.w
}

{{if $c}}// Take moves the value out of e, leaving e empty.
{{end}}func (e *{{$e.Name}}) Take() {{$e.Name}} {
	return {{$e.Name}}{w: e.w.Take()}
}
{{range $e.Variants}}
{{if $c}}// Unwrap{{.Name}} moves the {{.Name}} payload out of e, leaving e empty.
// If e holds another variant it returns an error matching word.ErrTagMismatch
// and leaves e unchanged.
{{end}}func (e *{{$e.Name}}) Unwrap{{.Name}}() ({{.Type}}, error) {
	return word.UnwrapChecked[{{$e.Width}}, {{.Type}}](&e.w, {{.TagConst}}, {{.CodecVar}})
}
{{if .HasView}}
{{if $c}}// Borrow{{.Name}} returns a view of the {{.Name}} payload without consuming e.
{{end}}func (e {{$e.Name}}) Borrow{{.Name}}() ({{.View}}, error) {
	return word.BorrowChecked[{{$e.Width}}, {{.Type}}, {{.View}}](e.w, {{.TagConst}}, {{.CodecVar}})
}
{{end}}{{end}}
{{if $c}}// Drop releases the payload held by e and leaves e empty.
// Dropping an empty value does nothing.
{{end}}func (e *{{$e.Name}}) Drop() {
	switch e.w.Tag() {
	case word.EmptyTag:
{{range $e.Variants}}	case {{.TagConst}}:
		word.Destroy(&e.w, {{.CodecVar}})
{{end}}	default:
		panic(word.Unreachable("{{$e.Name}}", "drop", e.w.Tag()))
	}
}

{{if $c}}// Release drops e. It makes {{$e.Name}} a word.Releaser, so a boxed
// {{$e.Name}} releases its payload together with the box.
{{end}}func (e *{{$e.Name}}) Release() {
	e.Drop()
}
{{if .Debug}}
{{if $c}}// String renders e as Variant(payload).
{{end}}func (e {{$e.Name}}) String() string {
	switch e.w.Tag() {
{{range $e.Variants}}	case {{.TagConst}}:
		return word.FormatAs(e.w, "{{.Name}}", {{.CodecVar}})
{{end}}	default:
		panic(word.Unreachable("{{$e.Name}}", "format", e.w.Tag()))
	}
}
{{end}}{{if .Clone}}
{{if $c}}// Clone returns an independent copy of e holding the same variant.
{{end}}func (e {{$e.Name}}) Clone() {{$e.Name}} {
	switch e.w.Tag() {
{{range $e.Variants}}	case {{.TagConst}}:
		return {{$e.Name}}{w: word.CloneAs(e.w, {{.CodecVar}})}
{{end}}	default:
		panic(word.Unreachable("{{$e.Name}}", "clone", e.w.Tag()))
	}
}
{{end}}{{if .Equal}}
{{if $c}}// Equal reports whether e and other hold the same variant with equal
// payloads. Comparing an empty value panics.
{{end}}func (e {{$e.Name}}) Equal(other {{$e.Name}}) bool {
	if other.w.IsEmpty() {
		panic(word.Unreachable("{{$e.Name}}", "compare", word.EmptyTag))
	}

	switch e.w.Tag() {
{{range $e.Variants}}	case {{.TagConst}}:
		return word.EqualAs(e.w, other.w, {{.CodecVar}})
{{end}}	default:
		panic(word.Unreachable("{{$e.Name}}", "compare", e.w.Tag()))
	}
}
{{end}}`))
