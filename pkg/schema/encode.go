package schema

// Encode converts a node back into its JSON Schema map form. Tuple nodes
// encode as lists and the absent node encodes as nil.
func Encode(n Node) any {
	switch v := n.(type) {
	case nil:
		return nil
	case *StringNode:
		m := map[string]any{"type": "string"}
		if v.Format != "" {
			m["format"] = v.Format
		}
		if v.Enum != nil {
			m["enum"] = v.Enum
		}
		if v.Example != nil {
			m["example"] = v.Example
		}
		return m
	case *NumberNode:
		return encodeNumeric("number", v.Format, v.Minimum, v.Maximum)
	case *IntegerNode:
		return encodeNumeric("integer", v.Format, v.Minimum, v.Maximum)
	case *BooleanNode:
		return map[string]any{"type": "boolean"}
	case *ArrayNode:
		m := map[string]any{"type": "array"}
		if v.Items != nil {
			m["items"] = Encode(v.Items)
		}
		return m
	case *TupleNode:
		out := make([]any, len(v.Elements))
		for i, e := range v.Elements {
			out[i] = encodeChild(e)
		}
		return out
	case *ObjectNode:
		m := map[string]any{"type": "object"}
		encodeShape(m, &v.Shape)
		return m
	case *UntypedNode:
		m := map[string]any{}
		encodeShape(m, &v.Shape)
		return m
	case *RefNode:
		return map[string]any{"$ref": v.Ref}
	default:
		return nil
	}
}

func encodeNumeric(typ, format string, minimum, maximum *float64) map[string]any {
	m := map[string]any{"type": typ}
	if format != "" {
		m["format"] = format
	}
	if minimum != nil {
		m["minimum"] = *minimum
	}
	if maximum != nil {
		m["maximum"] = *maximum
	}
	return m
}

func encodeShape(m map[string]any, s *Shape) {
	if s.Title != "" {
		m["title"] = s.Title
	}
	if s.Properties != nil {
		props := make(map[string]any, len(s.Properties))
		for _, p := range s.Properties {
			props[p.Name] = encodeChild(p.Node)
		}
		m["properties"] = props
	}
	if len(s.AllOf) > 0 {
		allOf := make([]any, len(s.AllOf))
		for i, f := range s.AllOf {
			allOf[i] = encodeChild(f)
		}
		m["allOf"] = allOf
	}
	if s.Example != nil {
		m["example"] = s.Example
	}
}

// encodeChild encodes a nested node; the absent node becomes the
// always-valid schema.
func encodeChild(n Node) any {
	if n == nil {
		return true
	}
	return Encode(n)
}
