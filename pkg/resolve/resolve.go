package resolve

import (
	"context"
	"encoding/json"
	"log/slog"
	"maps"
	"slices"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getmockd/schemafaker/pkg/logging"
	"github.com/getmockd/schemafaker/pkg/schema"
	"gopkg.in/yaml.v3"
)

// Document formats reported in Error.Format.
const (
	FormatOpenAPI = "openapi"
	FormatSwagger = "swagger"
	FormatSchema  = "schema"
)

// rootDefinition is the definitions key a bare document's root schema is
// stored under while it is resolved.
const rootDefinition = "_root"

// KinResolver dereferences documents with kin-openapi.
type KinResolver struct {
	external bool
	log      *slog.Logger
}

// Option configures a KinResolver.
type Option func(*KinResolver)

// WithExternalRefs allows references to other files and URLs.
func WithExternalRefs(allow bool) Option {
	return func(r *KinResolver) {
		r.external = allow
	}
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(r *KinResolver) {
		if log != nil {
			r.log = log
		}
	}
}

// NewKinResolver creates a resolver.
func NewKinResolver(opts ...Option) *KinResolver {
	r := &KinResolver{log: logging.Nop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns a copy of doc with every "$ref" replaced by its target.
// The result keeps doc's mode: named documents stay named and a bare root
// schema stays the root.
func (r *KinResolver) Resolve(ctx context.Context, doc *schema.Document) (*schema.Document, error) {
	if doc == nil {
		return nil, nil
	}

	raw, err := rawDocument(doc)
	if err != nil {
		return nil, &Error{Format: FormatSchema, Message: "failed to read document", Cause: err}
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx
	loader.IsExternalRefsAllowed = r.external

	format := detect(raw)
	var spec *openapi3.T
	switch format {
	case FormatOpenAPI:
		data, err := json.Marshal(raw)
		if err != nil {
			return nil, &Error{Format: format, Message: "failed to encode document", Cause: err}
		}
		spec, err = loader.LoadFromData(data)
		if err != nil {
			return nil, &Error{Format: format, Message: "failed to load document", Cause: err}
		}
	case FormatSwagger:
		spec, err = fromSwagger(loader, raw)
		if err != nil {
			return nil, &Error{Format: format, Message: "failed to resolve references", Cause: err}
		}
	default:
		spec, err = fromSwagger(loader, wrapSchema(raw))
		if err != nil {
			return nil, &Error{Format: format, Message: "failed to resolve references", Cause: err}
		}
	}

	var schemas openapi3.Schemas
	if spec.Components != nil {
		schemas = spec.Components.Schemas
	}

	c := newConverter()
	out := &schema.Document{}
	if doc.Named() {
		out.Definitions = make(map[string]schema.Node, len(schemas))
		for name, ref := range schemas {
			if name == rootDefinition && format == FormatSchema {
				continue
			}
			out.Definitions[name] = c.node(ref)
		}
	}
	if doc.Root != nil && format == FormatSchema {
		out.Root = c.node(schemas[rootDefinition])
	}

	r.log.Debug("resolved schema document", "format", format, "models", len(out.Definitions))
	return out, nil
}

// rawDocument decodes the document source, or its encoded form when it was
// built in memory.
func rawDocument(doc *schema.Document) (map[string]any, error) {
	data := doc.Source
	if len(data) == 0 {
		var err error
		if data, err = json.Marshal(doc); err != nil {
			return nil, err
		}
	}
	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func detect(raw map[string]any) string {
	switch {
	case raw["openapi"] != nil:
		return FormatOpenAPI
	case raw["swagger"] != nil:
		return FormatSwagger
	default:
		return FormatSchema
	}
}

func fromSwagger(loader *openapi3.Loader, raw map[string]any) (*openapi3.T, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var v2 openapi2.T
	if err := json.Unmarshal(data, &v2); err != nil {
		return nil, err
	}
	return openapi2conv.ToV3WithLoader(&v2, loader, nil)
}

// wrapSchema places a bare JSON Schema document into a Swagger 2.0
// envelope. Its definitions become the envelope's definitions and any
// remaining root schema is stored under rootDefinition.
func wrapSchema(raw map[string]any) map[string]any {
	defs := map[string]any{}
	if d, ok := raw["definitions"].(map[string]any); ok {
		maps.Copy(defs, d)
	}

	root := maps.Clone(raw)
	delete(root, "definitions")
	delete(root, "$schema")
	if len(root) > 0 {
		defs[rootDefinition] = root
	}

	return map[string]any{
		"swagger":     "2.0",
		"info":        map[string]any{"title": "schemafaker", "version": "1.0.0"},
		"paths":       map[string]any{},
		"definitions": defs,
	}
}

// converter turns resolved kin-openapi schemas into schema nodes. A schema
// already on the current path is emitted as a RefNode.
type converter struct {
	path map[*openapi3.Schema]bool
}

func newConverter() *converter {
	return &converter{path: map[*openapi3.Schema]bool{}}
}

func (c *converter) node(ref *openapi3.SchemaRef) schema.Node {
	if ref == nil {
		return nil
	}
	s := ref.Value
	if s == nil || c.path[s] {
		if ref.Ref == "" {
			return nil
		}
		return &schema.RefNode{Ref: ref.Ref}
	}
	c.path[s] = true
	defer delete(c.path, s)

	switch typeOf(s) {
	case openapi3.TypeString:
		return &schema.StringNode{Format: s.Format, Enum: s.Enum, Example: s.Example}
	case openapi3.TypeNumber:
		return &schema.NumberNode{Format: s.Format, Minimum: s.Min, Maximum: s.Max}
	case openapi3.TypeInteger:
		return &schema.IntegerNode{Format: s.Format, Minimum: s.Min, Maximum: s.Max}
	case openapi3.TypeBoolean:
		return &schema.BooleanNode{}
	case openapi3.TypeArray:
		return &schema.ArrayNode{Items: c.node(s.Items)}
	case openapi3.TypeObject:
		return &schema.ObjectNode{Shape: c.shape(s)}
	default:
		return c.untyped(s)
	}
}

func (c *converter) shape(s *openapi3.Schema) schema.Shape {
	shape := schema.Shape{Title: s.Title}
	if s.Properties != nil {
		shape.Properties = make([]schema.Property, 0, len(s.Properties))
		for _, name := range slices.Sorted(maps.Keys(s.Properties)) {
			shape.Properties = append(shape.Properties, schema.Property{Name: name, Node: c.node(s.Properties[name])})
		}
	}
	for _, fragment := range s.AllOf {
		shape.AllOf = append(shape.AllOf, c.node(fragment))
	}
	if ex, ok := s.Example.(map[string]any); ok {
		shape.Example = ex
	}
	return shape
}

// untyped rebuilds the structural fields of a schema without a type from
// the keywords kin-openapi keeps.
func (c *converter) untyped(s *openapi3.Schema) schema.Node {
	u := &schema.UntypedNode{Shape: c.shape(s)}
	if s.Title != "" {
		u.Fields = append(u.Fields, schema.Property{Name: "title"})
	}
	if u.Properties != nil {
		u.Fields = append(u.Fields, schema.Property{Name: "properties", Node: &schema.UntypedNode{Fields: u.Properties}})
	}
	if len(u.AllOf) > 0 {
		u.Fields = append(u.Fields, schema.Property{Name: "allOf", Node: &schema.TupleNode{Elements: u.AllOf}})
	}
	if s.Items != nil {
		u.Fields = append(u.Fields, schema.Property{Name: "items", Node: c.node(s.Items)})
	}
	if s.Example != nil {
		u.Fields = append(u.Fields, schema.Property{Name: "example"})
	}
	return u
}

// typeOf returns the first non-null type of s.
func typeOf(s *openapi3.Schema) string {
	if s.Type == nil {
		return ""
	}
	for _, t := range s.Type.Slice() {
		if t != "null" {
			return t
		}
	}
	return ""
}
