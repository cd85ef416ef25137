package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

func newReflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		DoNotReference:            true,
		ExpandedStruct:            true,
	}
}

// FromType reflects the Go type of v into an anonymous schema document.
// Struct tags understood by invopop/jsonschema (json, jsonschema) shape the
// result, e.g. `jsonschema:"minimum=18,maximum=65"` or `jsonschema:"enum=a,enum=b"`.
func FromType(v any) (*Document, error) {
	s := newReflector().Reflect(v)
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode reflected schema: %w", err)
	}

	root, err := ParseNode(data)
	if err != nil {
		return nil, err
	}
	return &Document{Root: root, Source: data}, nil
}
