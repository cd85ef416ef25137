package schema

// Kind is the discriminant of a schema node.
type Kind int

// Node kinds. KindUntyped covers nodes without a recognised "type".
const (
	KindUntyped Kind = iota
	KindString
	KindNumber
	KindInteger
	KindBoolean
	KindArray
	KindObject
	KindTuple
	KindRef
)

// String returns the JSON Schema type name for the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindInteger:
		return "integer"
	case KindBoolean:
		return "boolean"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindTuple:
		return "tuple"
	case KindRef:
		return "$ref"
	default:
		return "untyped"
	}
}

// Node is one unit of structural description in a schema document.
// The set of implementations is closed; a nil Node is the absent node.
type Node interface {
	Kind() Kind
	node()
}

// Property is a named child node. Properties keep their declared order.
type Property struct {
	Name string
	Node Node
}

// Shape holds the parts of a node that entity assembly reads: own properties,
// allOf fragments and the per-field example hint map.
type Shape struct {
	Title      string
	Properties []Property
	AllOf      []Node
	Example    map[string]any
}

// HasProperties reports whether a "properties" block was declared.
func (s *Shape) HasProperties() bool {
	return s.Properties != nil
}

// Property returns the child node declared under name.
func (s *Shape) Property(name string) (Node, bool) {
	for _, p := range s.Properties {
		if p.Name == name {
			return p.Node, true
		}
	}
	return nil, false
}

// StringNode is a node with type "string".
type StringNode struct {
	Format  string
	Enum    []any
	Example any
}

// NumberNode is a node with type "number".
type NumberNode struct {
	Format  string
	Minimum *float64
	Maximum *float64
}

// IntegerNode is a node with type "integer".
type IntegerNode struct {
	Format  string
	Minimum *float64
	Maximum *float64
}

// BooleanNode is a node with type "boolean".
type BooleanNode struct{}

// ArrayNode is a node with type "array". Items is a *TupleNode when the
// document declared items as a list.
type ArrayNode struct {
	Items Node
}

// TupleNode is a list of nodes appearing where a single node was expected.
type TupleNode struct {
	Elements []Node
}

// ObjectNode is a node with type "object".
type ObjectNode struct {
	Shape
}

// UntypedNode is the catch-all for nodes without a recognised type. Fields
// holds every key of the raw node; scalar values decode to nil nodes.
type UntypedNode struct {
	Shape
	Fields []Property
}

// RefNode is a "$ref" that was not dereferenced.
type RefNode struct {
	Ref string
}

func (*StringNode) Kind() Kind  { return KindString }
func (*NumberNode) Kind() Kind  { return KindNumber }
func (*IntegerNode) Kind() Kind { return KindInteger }
func (*BooleanNode) Kind() Kind { return KindBoolean }
func (*ArrayNode) Kind() Kind   { return KindArray }
func (*TupleNode) Kind() Kind   { return KindTuple }
func (*ObjectNode) Kind() Kind  { return KindObject }
func (*UntypedNode) Kind() Kind { return KindUntyped }
func (*RefNode) Kind() Kind     { return KindRef }

func (*StringNode) node()  {}
func (*NumberNode) node()  {}
func (*IntegerNode) node() {}
func (*BooleanNode) node() {}
func (*ArrayNode) node()   {}
func (*TupleNode) node()   {}
func (*ObjectNode) node()  {}
func (*UntypedNode) node() {}
func (*RefNode) node()     {}

// ShapeOf returns the assembly shape of n. Nodes that cannot carry properties
// yield an empty shape.
func ShapeOf(n Node) *Shape {
	switch v := n.(type) {
	case *ObjectNode:
		return &v.Shape
	case *UntypedNode:
		return &v.Shape
	default:
		return &Shape{}
	}
}

// Title returns the title of an object or untyped node.
func Title(n Node) string {
	return ShapeOf(n).Title
}
