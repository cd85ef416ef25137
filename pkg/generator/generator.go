package generator

import (
	"context"
	"errors"
	"log/slog"
	"maps"

	"github.com/getmockd/schemafaker/pkg/faker"
	"github.com/getmockd/schemafaker/pkg/logging"
	"github.com/getmockd/schemafaker/pkg/schema"
)

// ErrNoResolver is returned when reference resolution is requested but the
// Generator was built without a Resolver.
var ErrNoResolver = errors.New("reference resolution requested but no resolver is configured")

// Entity is one generated object instance.
type Entity = map[string]any

// Resolver dereferences every "$ref" in a document.
type Resolver interface {
	Resolve(ctx context.Context, doc *schema.Document) (*schema.Document, error)
}

// Generator synthesises example values from schema nodes.
// It holds no per-call state; it is safe for concurrent use when its
// Provider is.
type Generator struct {
	faker    faker.Provider
	resolver Resolver
	log      *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithProvider sets the randomness provider.
func WithProvider(p faker.Provider) Option {
	return func(g *Generator) {
		if p != nil {
			g.faker = p
		}
	}
}

// WithResolver sets the collaborator used when Options.Resolve is set.
func WithResolver(r Resolver) Option {
	return func(g *Generator) {
		g.resolver = r
	}
}

// WithLogger sets the logger for diagnostics such as missing models.
func WithLogger(log *slog.Logger) Option {
	return func(g *Generator) {
		if log != nil {
			g.log = log
		}
	}
}

// New creates a Generator. Without options it uses an unseeded faker.Faker,
// no resolver and a no-op logger.
func New(opts ...Option) *Generator {
	g := &Generator{
		faker: faker.New(),
		log:   logging.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Options controls one Assemble call.
type Options struct {
	// Resolve dereferences the document through the Resolver first.
	Resolve bool

	// Overrides pin or constrain named top-level fields. Random overrides on
	// array fields shuffle their Value in place.
	Overrides []Override
}

// Result is the outcome of one Assemble call.
type Result struct {
	Entity Entity

	// MissingModel is set when a named document has no definition for the
	// requested model. Entity is then empty.
	MissingModel bool

	// Document is the document the entity was built from: the resolved one
	// when Options.Resolve is set. Passing it to later calls without Resolve
	// avoids dereferencing again.
	Document *schema.Document
}

// Assemble generates one entity for model. In a named document the model is
// looked up in the definitions table; in a single-schema document the model
// name is ignored. Only resolver failures are returned as errors.
func (g *Generator) Assemble(ctx context.Context, doc *schema.Document, model string, opts Options) (*Result, error) {
	if opts.Resolve {
		if g.resolver == nil {
			return nil, ErrNoResolver
		}
		resolved, err := g.resolver.Resolve(ctx, doc)
		if err != nil {
			return nil, err
		}
		doc = resolved
	}

	res := &Result{Document: doc}
	var (
		node  schema.Node
		hints map[string]any
	)
	switch {
	case doc.Named():
		n, ok := doc.Model(model)
		if !ok {
			res.MissingModel = true
			g.log.Warn("model not found in definitions", "model", model, "available", doc.Models())
		}
		node = n
		hints = schema.ShapeOf(n).Example
	case doc != nil:
		node = doc.Root
	}

	res.Entity = g.assemble(node, hints, opts.Overrides)
	g.derive(res.Entity, opts.Overrides)

	for _, o := range opts.Overrides {
		if _, ok := res.Entity[o.Name]; !ok {
			g.log.Debug("override matches no property", "model", model, "field", o.Name)
		}
	}
	return res, nil
}

// Generate assembles model from an already dereferenced document.
func (g *Generator) Generate(ctx context.Context, doc *schema.Document, model string, overrides ...Override) (Entity, error) {
	res, err := g.Assemble(ctx, doc, model, Options{Overrides: overrides})
	if err != nil {
		return nil, err
	}
	return res.Entity, nil
}

// Value generates a value for a single node.
func (g *Generator) Value(n schema.Node) any {
	return g.value(n, "", nil)
}

// ValueNamed generates a value for a node declared under name, consulting
// hints the way a property of a model with an example block would.
func (g *Generator) ValueNamed(n schema.Node, name string, hints map[string]any) any {
	return g.value(n, name, hints)
}

// assemble resolves every declared property of n, then folds in its allOf
// fragments. Fragment fields overwrite own fields on collision.
func (g *Generator) assemble(n schema.Node, hints map[string]any, overrides []Override) Entity {
	shape := schema.ShapeOf(n)
	entity := make(Entity, len(shape.Properties))

	for _, p := range shape.Properties {
		if o := findOverride(overrides, p.Name); o != nil {
			entity[p.Name] = g.applyOverride(o, p.Node)
			continue
		}
		entity[p.Name] = g.value(p.Node, p.Name, hints)
	}

	for _, fragment := range shape.AllOf {
		maps.Copy(entity, g.assemble(fragment, nil, overrides))
	}
	return entity
}
