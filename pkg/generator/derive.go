package generator

import (
	"maps"

	"github.com/expr-lang/expr"
)

// Derived computes name from the other fields of the assembled entity,
// e.g. Derived("displayName", `firstName + " " + lastName`).
func Derived(name, expression string) Override {
	return Override{Name: name, Expr: expression}
}

// derive evaluates expression overrides in order against the entity. Each
// result is visible to later expressions. A failing expression leaves the
// generated value in place.
func (g *Generator) derive(entity Entity, overrides []Override) {
	for _, o := range overrides {
		if o.Expr == "" {
			continue
		}
		if _, ok := entity[o.Name]; !ok {
			continue
		}

		env := maps.Clone(entity)
		program, err := expr.Compile(o.Expr, expr.Env(env))
		if err != nil {
			g.log.Warn("failed to compile derived override", "field", o.Name, "expr", o.Expr, "error", err)
			continue
		}
		out, err := expr.Run(program, env)
		if err != nil {
			g.log.Warn("failed to evaluate derived override", "field", o.Name, "expr", o.Expr, "error", err)
			continue
		}
		entity[o.Name] = out
	}
}
