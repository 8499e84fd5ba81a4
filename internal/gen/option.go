package gen

import "github.com/spf13/afero"

type Option func(*Generator)

// WithFs sets the filesystem that WriteFile writes to.
func WithFs(fs afero.Fs) Option {
	return func(g *Generator) {
		g.fs = fs
	}
}

// WithHeader sets a comment block, such as a license, that is placed
// above the generated code notice. Lines are emitted as they are, so they
// must already be comments.
func WithHeader(header string) Option {
	return func(g *Generator) {
		g.header = header
	}
}

// WithImportPath overrides the import path of the conststr package that
// generated code refers to.
func WithImportPath(path string) Option {
	return func(g *Generator) {
		g.importPath = path
	}
}
