package gen

import (
	"bytes"
	"go/token"
	"path"
	"strconv"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/tsatke/conststr/internal/manifest"
	"golang.org/x/tools/imports"
)

// DefaultImportPath is the import path of the conststr package.
const DefaultImportPath = "github.com/tsatke/conststr"

// Generator renders manifests into Go source that declares the Literal
// and Capacity implementations and the aliases of the instantiated
// conststr types.
//
//	g := gen.New(gen.WithFs(fs))
//	err := g.WriteFile(m, "zz_generated_conststr.go")
type Generator struct {
	fs afero.Fs

	header     string
	importPath string
}

// New creates a Generator that writes to the OS filesystem, unless
// WithFs is given.
func New(opts ...Option) *Generator {
	g := &Generator{
		fs:         afero.NewOsFs(),
		importPath: DefaultImportPath,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

type constantData struct {
	Name        string
	ValueName   string
	LiteralType string
	Quoted      string
	Doc         string
}

type boundedData struct {
	Name         string
	CapacityType string
	Capacity     int
	Doc          string
}

type fileData struct {
	Header      string
	Package     string
	ImportPath  string
	ImportName  string
	ImportAlias bool
	Constants   []constantData
	Bounded     []boundedData
}

var fileTemplate = template.Must(template.New("file").Parse(`{{ with .Header }}{{ . }}

{{ end }}// Code generated by conststr. DO NOT EDIT.

package {{ .Package }}
{{ if or .Constants .Bounded }}
import {{ if .ImportAlias }}{{ .ImportName }} {{ end }}"{{ .ImportPath }}"
{{ end }}{{ range .Constants }}
// {{ .ValueName }} is the literal of {{ .Name }}.
const {{ .ValueName }} = {{ .Quoted }}

type {{ .LiteralType }} struct{}

func ({{ .LiteralType }}) Literal() string { return {{ .ValueName }} }

// {{ .Doc }}
type {{ .Name }} = {{ $.ImportName }}.String[{{ .LiteralType }}]
{{ end }}{{ range .Bounded }}
type {{ .CapacityType }} struct{}

func ({{ .CapacityType }}) Capacity() int { return {{ .Capacity }} }

// {{ .Doc }}
type {{ .Name }} = {{ $.ImportName }}.Bounded[{{ .CapacityType }}]
{{ end }}`))

// Generate renders m into formatted Go source. m should have been
// validated.
func (g *Generator) Generate(m *manifest.Manifest) ([]byte, error) {
	importName, alias := importName(g.importPath)
	data := fileData{
		Header:      strings.TrimSpace(g.header),
		Package:     m.Package,
		ImportPath:  g.importPath,
		ImportName:  importName,
		ImportAlias: alias,
	}
	for _, c := range m.Constants {
		data.Constants = append(data.Constants, constantData{
			Name:        c.Name,
			ValueName:   c.Name + manifest.ValueSuffix,
			LiteralType: unexport(c.Name) + "Literal",
			Quoted:      strconv.Quote(c.Value),
			Doc:         docLine(c.Name, c.Doc, "is the constant string "+strconv.Quote(c.Value)+"."),
		})
	}
	for _, b := range m.Bounded {
		fallback := "is a string of at most " + strconv.Itoa(b.Capacity) + " characters."
		if b.Capacity == 0 {
			fallback = "is an immutable string."
		}
		data.Bounded = append(data.Bounded, boundedData{
			Name:         b.Name,
			CapacityType: unexport(b.Name) + "Capacity",
			Capacity:     b.Capacity,
			Doc:          docLine(b.Name, b.Doc, fallback),
		})
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(err, "execute template")
	}

	src, err := imports.Process("", buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "format generated source\n%s", buf.String())
	}
	return src, nil
}

// WriteFile generates the source for m and writes it to filename.
func (g *Generator) WriteFile(m *manifest.Manifest, filename string) error {
	src, err := g.Generate(m)
	if err != nil {
		return err
	}
	if err := afero.WriteFile(g.fs, filename, src, 0644); err != nil {
		return errors.Wrapf(err, "write %s", filename)
	}
	return nil
}

// docLine builds a single comment line starting with name. Newlines in doc
// are folded into spaces so that the line stays a comment.
func docLine(name, doc, fallback string) string {
	doc = strings.Join(strings.Fields(doc), " ")
	if doc == "" {
		doc = fallback
	}
	return name + " " + doc
}

// importName returns the name generated code uses to refer to the package
// at importPath, and whether the import needs that name spelled out. A
// major version suffix such as /v2 is skipped, and a last element that is
// not an identifier falls back to "conststr".
func importName(importPath string) (string, bool) {
	name := path.Base(importPath)
	if isMajorVersion(name) {
		if dir := path.Dir(importPath); dir != "." && dir != "/" {
			name = path.Base(dir)
		}
	}
	if token.IsIdentifier(name) && name != "_" {
		return name, false
	}
	return "conststr", true
}

func isMajorVersion(elem string) bool {
	if len(elem) < 2 || elem[0] != 'v' {
		return false
	}
	n, err := strconv.Atoi(elem[1:])
	return err == nil && n >= 2 && elem[1] != '0'
}

func unexport(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToLower(r)) + name[size:]
}
