package conststr

import (
	"encoding"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	_ json.Marshaler           = String[Literal]{}
	_ json.Unmarshaler         = (*String[Literal])(nil)
	_ encoding.TextMarshaler   = String[Literal]{}
	_ encoding.TextUnmarshaler = (*String[Literal])(nil)
	_ yaml.Marshaler           = String[Literal]{}
	_ yaml.Unmarshaler         = (*String[Literal])(nil)
	_ SchemaDescriber          = String[Literal]{}

	_ json.Marshaler           = Bounded[Capacity]{}
	_ json.Unmarshaler         = (*Bounded[Capacity])(nil)
	_ encoding.TextMarshaler   = Bounded[Capacity]{}
	_ encoding.TextUnmarshaler = (*Bounded[Capacity])(nil)
	_ yaml.Marshaler           = Bounded[Capacity]{}
	_ yaml.Unmarshaler         = (*Bounded[Capacity])(nil)
	_ SchemaDescriber          = Bounded[Capacity]{}
)

func (c String[L]) MarshalJSON() ([]byte, error) {
	if err := checkUTF8(c.Value()); err != nil {
		return nil, err
	}
	return json.Marshal(c.Value())
}

func (c *String[L]) UnmarshalJSON(data []byte) error {
	s, err := decodeJSON(data)
	if err != nil {
		return err
	}
	return c.check(s)
}

func (c String[L]) MarshalText() ([]byte, error) {
	if err := checkUTF8(c.Value()); err != nil {
		return nil, err
	}
	return []byte(c.Value()), nil
}

func (c *String[L]) UnmarshalText(text []byte) error { return c.check(string(text)) }

func (c String[L]) MarshalYAML() (interface{}, error) {
	if err := checkUTF8(c.Value()); err != nil {
		return nil, err
	}
	return c.Value(), nil
}

func (c *String[L]) UnmarshalYAML(node *yaml.Node) error {
	s, err := decodeYAML(node)
	if err != nil {
		return err
	}
	return c.check(s)
}

func (b Bounded[C]) MarshalJSON() ([]byte, error) { return json.Marshal(b.s) }

func (b *Bounded[C]) UnmarshalJSON(data []byte) error {
	s, err := decodeJSON(data)
	if err != nil {
		return err
	}
	return b.set(s)
}

func (b Bounded[C]) MarshalText() ([]byte, error) { return []byte(b.s), nil }

func (b *Bounded[C]) UnmarshalText(text []byte) error { return b.set(string(text)) }

func (b Bounded[C]) MarshalYAML() (interface{}, error) { return b.s, nil }

func (b *Bounded[C]) UnmarshalYAML(node *yaml.Node) error {
	s, err := decodeYAML(node)
	if err != nil {
		return err
	}
	return b.set(s)
}

// set replaces the content of a value that is being decoded. On error, the
// receiver is left unchanged.
func (b *Bounded[C]) set(s string) error {
	if err := checkBounded[C](s); err != nil {
		return err
	}
	b.s = s
	return nil
}

// decodeJSON returns the string encoded in data. Anything that is not a
// JSON string, null included, is a *DecodeError.
func decodeJSON(data []byte) (string, error) {
	if len(data) == 0 || data[0] != '"' {
		return "", &DecodeError{
			Format: formatJSON,
			Err:    fmt.Errorf("expected string, but got %s", jsonKind(data)),
		}
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", &DecodeError{
			Format: formatJSON,
			Err:    err,
		}
	}
	return s, nil
}

func jsonKind(data []byte) string {
	if len(data) == 0 {
		return "nothing"
	}
	switch data[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

// decodeYAML returns the string held by node. Only scalars that resolve
// to !!str are accepted, so `123` or `true` are rejected while `"123"` is
// not.
func decodeYAML(node *yaml.Node) (string, error) {
	if node.Kind != yaml.ScalarNode {
		return "", &DecodeError{
			Format: formatYAML,
			Err:    fmt.Errorf("line %d: expected scalar, but got %s", node.Line, yamlKind(node.Kind)),
		}
	}
	if tag := node.ShortTag(); tag != "!!str" {
		return "", &DecodeError{
			Format: formatYAML,
			Err:    fmt.Errorf("line %d: expected !!str, but got %s", node.Line, tag),
		}
	}
	return node.Value, nil
}

func yamlKind(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown node"
	}
}
