// Package conststr provides immutable string values whose content or
// capacity is fixed by their type.
//
// String[L] holds exactly one text, given by its Literal type parameter.
// It encodes as that text and refuses to decode anything else, which
// makes it a good fit for discriminator fields such as "type" or "kind".
//
//	type eventLiteral struct{}
//
//	func (eventLiteral) Literal() string { return "event" }
//
//	type Message struct {
//		Type conststr.String[eventLiteral] `json:"type"`
//		Body string                        `json:"body"`
//	}
//
// Bounded[C] holds any text up to the capacity given by its Capacity type
// parameter, counted in code points.
//
// Both types implement json, text and yaml (gopkg.in/yaml.v3) marshaling
// and describe themselves as OpenAPI string schemas. The conststr command
// generates the Literal and Capacity declarations from a manifest.
package conststr
