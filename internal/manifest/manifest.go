package manifest

import (
	"bytes"
	"go/token"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ValueSuffix is appended to the name of a constant to form the name of
// the untyped Go constant that holds its literal.
const ValueSuffix = "Value"

// Manifest declares the constant and bounded string types of one Go
// package.
type Manifest struct {
	Package   string     `yaml:"package" toml:"package"`
	Constants []Constant `yaml:"constants" toml:"constants"`
	Bounded   []Bounded  `yaml:"bounded" toml:"bounded"`
}

// Constant declares a string type with a fixed literal.
type Constant struct {
	Name  string `yaml:"name" toml:"name"`
	Value string `yaml:"value" toml:"value"`
	Doc   string `yaml:"doc" toml:"doc"`
}

// Bounded declares a string type with a fixed capacity. A capacity of zero
// means unbounded.
type Bounded struct {
	Name     string `yaml:"name" toml:"name"`
	Capacity int    `yaml:"capacity" toml:"capacity"`
	Doc      string `yaml:"doc" toml:"doc"`
}

// Load reads and validates the manifest at path. The format is chosen by
// the file extension: .yaml and .yml are YAML, .toml is TOML.
func Load(fs afero.Fs, path string) (*Manifest, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrap(err, "read manifest")
	}

	m, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	if err := m.Validate(); err != nil {
		return nil, errors.Wrapf(err, "validate %s", path)
	}
	return m, nil
}

// Parse decodes a manifest. ext is a file extension including the dot.
// The result is not validated.
func Parse(data []byte, ext string) (*Manifest, error) {
	var m Manifest
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil {
			return nil, errors.Wrap(err, "decode yaml")
		}
	case ".toml":
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, errors.Wrap(err, "decode toml")
		}
	default:
		return nil, errors.Errorf("unsupported manifest extension %q", ext)
	}
	return &m, nil
}

// Validate checks that the manifest can be rendered into a compiling Go
// file: the package name and all declared names are identifiers, names
// are exported and unique, values are valid UTF-8, and capacities are not
// negative.
func (m *Manifest) Validate() error {
	if !token.IsIdentifier(m.Package) {
		return errors.Errorf("package name %q is not a Go identifier", m.Package)
	}
	if m.Package == "_" {
		return errors.New("package name must not be the blank identifier")
	}

	seen := make(map[string]string)
	declare := func(name, what string) error {
		if !token.IsIdentifier(name) {
			return errors.Errorf("%s name %q is not a Go identifier", what, name)
		}
		if !token.IsExported(name) {
			return errors.Errorf("%s name %q is not exported", what, name)
		}
		if prev, ok := seen[name]; ok {
			return errors.Errorf("%s name %q is already declared by %s", what, name, prev)
		}
		seen[name] = what
		return nil
	}

	for _, c := range m.Constants {
		if err := declare(c.Name, "constant"); err != nil {
			return err
		}
		if err := declare(c.Name+ValueSuffix, "constant value"); err != nil {
			return err
		}
		if !utf8.ValidString(c.Value) {
			return errors.Errorf("constant %s has a value that is not valid UTF-8", c.Name)
		}
	}
	for _, b := range m.Bounded {
		if err := declare(b.Name, "bounded"); err != nil {
			return err
		}
		if b.Capacity < 0 {
			return errors.Errorf("bounded %s has negative capacity %d", b.Name, b.Capacity)
		}
	}
	return nil
}
