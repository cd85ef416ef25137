package generator

import (
	"maps"
	"strings"

	"github.com/getmockd/schemafaker/pkg/schema"
)

// value dispatches on the node variant. name is the field the node was
// declared under and hints the example block in scope for it.
func (g *Generator) value(n schema.Node, name string, hints map[string]any) any {
	switch v := n.(type) {
	case nil:
		return nil
	case *schema.StringNode:
		return g.stringValue(v, name, hints)
	case *schema.NumberNode:
		return g.number(v)
	case *schema.IntegerNode:
		return g.integer(v)
	case *schema.BooleanNode:
		return g.faker.Boolean()
	case *schema.ArrayNode:
		count := g.faker.Number(10)
		out := make([]any, count)
		for i := range out {
			out[i] = g.value(v.Items, "", nil)
		}
		return out
	case *schema.TupleNode:
		out := make([]any, 0, len(v.Elements))
		for _, e := range v.Elements {
			out = append(out, g.value(itemsOf(e), "", nil))
		}
		return out
	case *schema.ObjectNode:
		if !v.HasProperties() && len(v.AllOf) == 0 {
			return g.faker.FlatObject()
		}
		entity := make(Entity, len(v.Properties))
		for _, p := range v.Properties {
			entity[p.Name] = g.value(p.Node, p.Name, v.Example)
		}
		for _, fragment := range v.AllOf {
			maps.Copy(entity, g.assemble(fragment, nil, nil))
		}
		return entity
	case *schema.UntypedNode:
		entity := make(Entity, len(v.Fields))
		for _, f := range v.Fields {
			entity[f.Name] = g.value(f.Node, f.Name, hints)
		}
		return entity
	case *schema.RefNode:
		g.log.Debug("unresolved reference generates null", "ref", v.Ref, "field", name)
		return nil
	default:
		return nil
	}
}

func (g *Generator) stringValue(n *schema.StringNode, name string, hints map[string]any) any {
	if len(n.Enum) > 0 {
		return n.Enum[g.faker.IntN(len(n.Enum))]
	}
	if strings.EqualFold(name, "id") || strings.EqualFold(name, "_id") {
		return g.faker.CompactID()
	}

	hint, hinted := hints[name]
	hinted = hinted && truthy(hint)

	switch {
	case n.Format != "" && hinted:
		return g.formatted(n.Format, hint)
	case n.Format != "":
		return g.formatted(n.Format, n.Example)
	case hinted:
		if path, ok := hint.(string); ok {
			if fn, ok := g.faker.Lookup(path); ok {
				return fn()
			}
		}
		g.log.Debug("example hint names no generator", "field", name, "hint", hint)
	}
	return g.faker.Sentence()
}

// itemsOf returns the "items" child of a tuple element.
func itemsOf(n schema.Node) schema.Node {
	switch v := n.(type) {
	case *schema.ArrayNode:
		return v.Items
	case *schema.UntypedNode:
		for _, f := range v.Fields {
			if f.Name == "items" {
				return f.Node
			}
		}
	}
	return nil
}

// truthy reports whether an example hint value counts as present.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case int:
		return t != 0
	case float64:
		return t != 0
	default:
		return true
	}
}
