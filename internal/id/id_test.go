package id

import (
	mathrand "math/rand/v2"
	"regexp"
	"testing"
)

type seeded struct{ rng *mathrand.Rand }

func (s seeded) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(s.rng.IntN(256))
	}
	return len(p), nil
}

func newSeeded(seed uint64) seeded {
	return seeded{rng: mathrand.New(mathrand.NewPCG(seed, 0))}
}

// --- UUID Tests ---

func TestUUID_Format(t *testing.T) {
	id := UUID(nil)

	// UUID v4 format: xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx
	uuidRegex := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
	if !uuidRegex.MatchString(id) {
		t.Errorf("UUID() = %q, does not match UUID v4 format", id)
	}
}

func TestUUID_Seeded(t *testing.T) {
	a := UUID(newSeeded(7))
	b := UUID(newSeeded(7))
	if a != b {
		t.Fatalf("same seed produced %q and %q", a, b)
	}
	if c := UUID(newSeeded(8)); c == a {
		t.Fatalf("different seeds produced the same UUID %q", a)
	}
}

func TestUUID_Uniqueness(t *testing.T) {
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		id := UUID(nil)
		if seen[id] {
			t.Fatalf("UUID() generated duplicate: %s", id)
		}
		seen[id] = true
	}
}

// --- Compact Tests ---

func TestCompact_Format(t *testing.T) {
	re := regexp.MustCompile(`^[0-9a-f]{12}4[0-9a-f]{3}[89ab][0-9a-f]{15}$`)
	for i := 0; i < 50; i++ {
		id := Compact(nil)
		if !re.MatchString(id) {
			t.Fatalf("Compact() = %q, want 32 hex chars without hyphens", id)
		}
	}
}

// --- Short Tests ---

func TestShort_Length(t *testing.T) {
	if got := len(Short(nil)); got != 16 {
		t.Errorf("Short() length = %d, want 16", got)
	}
}

// --- Alphanumeric Tests ---

func TestAlphanumeric(t *testing.T) {
	re := regexp.MustCompile(`^[a-zA-Z0-9]*$`)
	for _, n := range []int{0, 1, 15, 64} {
		s := Alphanumeric(newSeeded(uint64(n)), n)
		if len(s) != n {
			t.Errorf("Alphanumeric(%d) length = %d", n, len(s))
		}
		if !re.MatchString(s) {
			t.Errorf("Alphanumeric(%d) = %q contains invalid characters", n, s)
		}
	}
	if Alphanumeric(nil, -1) != "" {
		t.Error("Alphanumeric(-1) should be empty")
	}
}
