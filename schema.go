package conststr

// TypeString is the schema type of every value in this package.
const TypeString = "string"

// Schema is an OpenAPI 3 schema object, restricted to the fields that
// describe string values. It marshals to JSON and YAML in the shape that
// API documentation generators expect.
type Schema struct {
	Type        string   `json:"type" yaml:"type"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Enum        []string `json:"enum,omitempty" yaml:"enum,omitempty"`
	MaxLength   *int     `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
}

// SchemaDescriber is implemented by types that can describe their own
// schema. Both String and Bounded implement it.
type SchemaDescriber interface {
	Schema() Schema
}

// LiteralSchema returns the schema of a string that can only hold s.
func LiteralSchema(s string) Schema {
	return Schema{
		Type: TypeString,
		Enum: []string{s},
	}
}

// CapacitySchema returns the schema of a string that holds at most
// capacity code points. If capacity is not positive, the schema carries
// no length restriction.
func CapacitySchema(capacity int) Schema {
	s := Schema{
		Type: TypeString,
	}
	if capacity > 0 {
		s.MaxLength = &capacity
	}
	return s
}

// WithDescription returns a copy of s with the given description.
func (s Schema) WithDescription(description string) Schema {
	s.Description = description
	return s
}
