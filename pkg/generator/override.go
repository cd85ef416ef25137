package generator

import (
	"github.com/getmockd/schemafaker/pkg/schema"
)

// Override pins or constrains one top-level field.
//
// Value is a string or a sequence of strings. With Random set and a sequence
// Value, a non-array field receives one element picked at random and an
// array field receives a random-length prefix of the shuffled sequence.
// Anything else is used verbatim without checking it against the schema.
//
// Expr, when set, derives the field from the assembled entity instead; see
// Derived.
type Override struct {
	Name   string `json:"name" yaml:"name"`
	Value  any    `json:"value,omitempty" yaml:"value,omitempty"`
	Random bool   `json:"random,omitempty" yaml:"random,omitempty"`
	Expr   string `json:"expr,omitempty" yaml:"expr,omitempty"`
}

// Fixed pins name to value.
func Fixed(name string, value any) Override {
	return Override{Name: name, Value: value}
}

// OneOf picks the value of name at random from values.
func OneOf(name string, values ...string) Override {
	return Override{Name: name, Value: values, Random: true}
}

// findOverride returns the first value override for name.
func findOverride(overrides []Override, name string) *Override {
	for i := range overrides {
		if overrides[i].Name == name && overrides[i].Expr == "" {
			return &overrides[i]
		}
	}
	return nil
}

func (g *Generator) applyOverride(o *Override, n schema.Node) any {
	if !o.Random {
		return o.Value
	}
	_, isArray := n.(*schema.ArrayNode)
	switch values := o.Value.(type) {
	case []string:
		return pickValues(g, values, isArray)
	case []any:
		return pickValues(g, values, isArray)
	default:
		return o.Value
	}
}

// pickValues picks one element, or for array fields shuffles values in
// place and returns a prefix of random length in [0, len(values)].
func pickValues[T any](g *Generator, values []T, array bool) any {
	if !array {
		if len(values) == 0 {
			return nil
		}
		return values[g.faker.IntN(len(values))]
	}
	g.faker.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
	n := g.faker.Number(len(values))
	out := make([]T, n)
	copy(out, values[:n])
	return out
}
