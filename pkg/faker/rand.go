package faker

import (
	mathrand "math/rand/v2"
)

// intN returns a random int in [0, n) using rng if non-nil, otherwise the
// global math/rand/v2 source.
func intN(rng *mathrand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	if rng != nil {
		return rng.IntN(n)
	}
	return mathrand.IntN(n)
}

// int64N is intN for int64 ranges.
func int64N(rng *mathrand.Rand, n int64) int64 {
	if n <= 0 {
		return 0
	}
	if rng != nil {
		return rng.Int64N(n)
	}
	return mathrand.Int64N(n)
}

// float64v returns a random float64 in [0, 1).
func float64v(rng *mathrand.Rand) float64 {
	if rng != nil {
		return rng.Float64()
	}
	return mathrand.Float64()
}

// pick returns a random element of list.
func pick(rng *mathrand.Rand, list []string) string {
	return list[intN(rng, len(list))]
}

// randReader adapts a seeded RNG to io.Reader for uuid generation.
type randReader struct {
	rng *mathrand.Rand
}

func (r randReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.rng.IntN(256))
	}
	return len(p), nil
}
