// Package faker supplies the random primitives and sample-data corpus used
// to synthesise example values.
//
// The Provider interface is what the generator consumes. Faker is the default
// implementation; it draws from an optional *rand.Rand so callers can make
// output repeatable:
//
//	f := faker.NewSeeded(42)
//	f.Email()    // same value for every run with seed 42
//
// Generators can also be reached by dotted path, which is how schema example
// blocks pick a more specific generator for a field:
//
//	fn, ok := f.Lookup("internet.email")
//
// A Faker is not safe for concurrent use when seeded.
package faker
