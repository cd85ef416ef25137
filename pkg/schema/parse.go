package schema

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseError represents a document that could not be decoded.
type ParseError struct {
	Line    int
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	msg := e.Message
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Parse decodes a YAML or JSON schema document. Swagger 2.0 and bare JSON
// Schema documents expose "definitions"; OpenAPI 3 documents expose
// "components.schemas". Anything else is an anonymous single schema.
func Parse(data []byte) (*Document, error) {
	root, err := parseRoot(data)
	if err != nil {
		return nil, err
	}
	if root.Kind != yaml.MappingNode {
		return nil, &ParseError{Line: root.Line, Message: "schema document must be a mapping", Cause: errors.New(root.Tag)}
	}

	doc := &Document{Source: data}
	if defs := lookup(root, "definitions"); defs != nil {
		doc.Definitions = decodeDefinitions(defs)
	} else if schemas := lookup(lookup(root, "components"), "schemas"); schemas != nil {
		doc.Definitions = decodeDefinitions(schemas)
	}

	if lookup(root, "swagger") == nil && lookup(root, "openapi") == nil {
		doc.Root = decode(root)
	} else if doc.Definitions == nil {
		doc.Definitions = make(map[string]Node)
	}
	return doc, nil
}

// ParseNode decodes a single schema node from YAML or JSON. A list decodes
// to a TupleNode; a scalar decodes to the absent node.
func ParseNode(data []byte) (Node, error) {
	root, err := parseRoot(data)
	if err != nil {
		return nil, err
	}
	return decode(root), nil
}

func parseRoot(data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Message: "failed to parse schema document", Cause: err}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, &ParseError{Message: "empty schema document"}
	}
	return resolveAlias(doc.Content[0]), nil
}

func decodeDefinitions(m *yaml.Node) map[string]Node {
	defs := make(map[string]Node)
	if m.Kind != yaml.MappingNode {
		return defs
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		defs[m.Content[i].Value] = decode(m.Content[i+1])
	}
	return defs
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

// lookup returns the value stored under key in a mapping node.
func lookup(m *yaml.Node, key string) *yaml.Node {
	m = resolveAlias(m)
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return resolveAlias(m.Content[i+1])
		}
	}
	return nil
}

func decode(n *yaml.Node) Node {
	n = resolveAlias(n)
	if n == nil {
		return nil
	}
	switch n.Kind {
	case yaml.MappingNode:
		return decodeMapping(n)
	case yaml.SequenceNode:
		t := &TupleNode{Elements: make([]Node, 0, len(n.Content))}
		for _, c := range n.Content {
			t.Elements = append(t.Elements, decode(c))
		}
		return t
	default:
		return nil
	}
}

func decodeMapping(n *yaml.Node) Node {
	if ref := lookup(n, "$ref"); ref != nil && ref.Kind == yaml.ScalarNode {
		return &RefNode{Ref: ref.Value}
	}

	switch typeName(lookup(n, "type")) {
	case "string":
		s := &StringNode{Format: scalar(lookup(n, "format"))}
		if enum, ok := decodeAny(lookup(n, "enum")).([]any); ok {
			s.Enum = enum
		}
		s.Example = decodeAny(lookup(n, "example"))
		return s
	case "number":
		return &NumberNode{
			Format:  scalar(lookup(n, "format")),
			Minimum: float(lookup(n, "minimum")),
			Maximum: float(lookup(n, "maximum")),
		}
	case "integer":
		return &IntegerNode{
			Format:  scalar(lookup(n, "format")),
			Minimum: float(lookup(n, "minimum")),
			Maximum: float(lookup(n, "maximum")),
		}
	case "boolean":
		return &BooleanNode{}
	case "array":
		return &ArrayNode{Items: decode(lookup(n, "items"))}
	case "object":
		return &ObjectNode{Shape: decodeShape(n)}
	default:
		u := &UntypedNode{Shape: decodeShape(n)}
		for i := 0; i+1 < len(n.Content); i += 2 {
			u.Fields = append(u.Fields, Property{Name: n.Content[i].Value, Node: decode(n.Content[i+1])})
		}
		return u
	}
}

func decodeShape(n *yaml.Node) Shape {
	var s Shape
	s.Title = scalar(lookup(n, "title"))

	if props := lookup(n, "properties"); props != nil && props.Kind == yaml.MappingNode {
		s.Properties = make([]Property, 0, len(props.Content)/2)
		for i := 0; i+1 < len(props.Content); i += 2 {
			s.Properties = append(s.Properties, Property{
				Name: props.Content[i].Value,
				Node: decode(props.Content[i+1]),
			})
		}
	}

	if allOf := lookup(n, "allOf"); allOf != nil && allOf.Kind == yaml.SequenceNode {
		for _, c := range allOf.Content {
			s.AllOf = append(s.AllOf, decode(c))
		}
	}

	if ex, ok := decodeAny(lookup(n, "example")).(map[string]any); ok {
		s.Example = ex
	}
	return s
}

// typeName reads "type", accepting the list form (["string", "null"]).
func typeName(n *yaml.Node) string {
	if n == nil {
		return ""
	}
	if n.Kind == yaml.SequenceNode {
		for _, c := range n.Content {
			if c.Value != "null" {
				return c.Value
			}
		}
		return ""
	}
	return n.Value
}

func scalar(n *yaml.Node) string {
	if n == nil || n.Kind != yaml.ScalarNode {
		return ""
	}
	return n.Value
}

func float(n *yaml.Node) *float64 {
	if n == nil || n.Kind != yaml.ScalarNode {
		return nil
	}
	var f float64
	if err := n.Decode(&f); err != nil {
		return nil
	}
	return &f
}

func decodeAny(n *yaml.Node) any {
	if n == nil {
		return nil
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return nil
	}
	return v
}
