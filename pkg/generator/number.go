package generator

import (
	"math"

	"github.com/getmockd/schemafaker/pkg/faker"
	"github.com/getmockd/schemafaker/pkg/schema"
)

func (g *Generator) number(n *schema.NumberNode) any {
	switch n.Format {
	case "float", "double":
		return g.amount(n.Minimum, n.Maximum)
	default:
		return g.faker.Number(faker.DefaultNumberMax)
	}
}

// amount draws a two-decimal value; a missing bound takes the provider
// default for that side.
func (g *Generator) amount(minimum, maximum *float64) float64 {
	lo, hi := faker.DefaultAmountMin, faker.DefaultAmountMax
	switch {
	case minimum != nil && maximum != nil:
		lo, hi = *minimum, *maximum
	case minimum != nil:
		lo = *minimum
		hi = math.Max(hi, lo)
	case maximum != nil:
		hi = *maximum
		lo = math.Min(lo, hi)
	}
	return g.faker.Amount(lo, hi)
}

// integer keeps the historical single-bound behaviour: a lone minimum or
// maximum is used as the upper bound of [0, bound], and an unbounded integer
// is drawn as a two-decimal amount. Both are kept for fixture compatibility.
func (g *Generator) integer(n *schema.IntegerNode) any {
	switch {
	case n.Minimum != nil && n.Maximum != nil:
		lo, hi := math.Ceil(*n.Minimum), math.Floor(*n.Maximum)
		if lo > hi && *n.Minimum <= *n.Maximum {
			g.log.Debug("integer bounds contain no integer", "minimum", *n.Minimum, "maximum", *n.Maximum)
			return int(math.Round(*n.Minimum))
		}
		return g.faker.NumberBetween(int(lo), int(hi))
	case n.Minimum != nil:
		return g.faker.Number(int(*n.Minimum))
	case n.Maximum != nil:
		return g.faker.Number(int(*n.Maximum))
	default:
		return g.faker.Amount(faker.DefaultAmountMin, faker.DefaultAmountMax)
	}
}
