package schema

import (
	"encoding/json"
	"sort"
)

// Document is a model document. When Definitions is non-nil the document is
// in named mode and models are looked up by name; otherwise Root is the
// single anonymous schema.
type Document struct {
	Definitions map[string]Node
	Root        Node

	// Source is the raw document the nodes were decoded from, if any.
	Source []byte
}

// NewDocument wraps a single node as an anonymous document.
func NewDocument(root Node) *Document {
	return &Document{Root: root}
}

// Named reports whether the document exposes a definitions table.
func (d *Document) Named() bool {
	return d != nil && d.Definitions != nil
}

// Model returns the named model from the definitions table.
func (d *Document) Model(name string) (Node, bool) {
	if d == nil || d.Definitions == nil {
		return nil, false
	}
	n, ok := d.Definitions[name]
	return n, ok
}

// Models returns the sorted names of all definitions.
func (d *Document) Models() []string {
	if d == nil {
		return nil
	}
	names := make([]string, 0, len(d.Definitions))
	for name := range d.Definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MarshalJSON encodes the document back into JSON Schema form.
func (d *Document) MarshalJSON() ([]byte, error) {
	out := map[string]any{}
	if d.Root != nil {
		if m, ok := Encode(d.Root).(map[string]any); ok {
			out = m
		}
	}
	if d.Definitions != nil {
		defs := make(map[string]any, len(d.Definitions))
		for name, n := range d.Definitions {
			defs[name] = Encode(n)
		}
		out["definitions"] = defs
	}
	return json.Marshal(out)
}
