// Package generator synthesises example entities from schema documents.
//
// Assemble builds one entity for a model: each declared property is resolved
// through a matching Override or generated from its schema node, then every
// allOf fragment is assembled and merged over the result (fragment fields win
// on collision). Generation dispatches on the node variant:
//
//   - string: enum pick, compact id for "id"/"_id", format synthesis
//     (date, date-time, password, byte, binary, email, uuid, uri, hostname,
//     ipv4, ipv6), a generator named by the model's example block, or a
//     sentence
//   - number / integer: bounded amounts and integers
//   - boolean: coin flip
//   - array: 0 to 10 items
//   - object: nested properties and allOf, or a flat word map when neither
//     is declared
//   - untyped: every key of the raw node is generated structurally
//
// Missing models, absent nodes and unknown formats never fail; only the
// Resolver can abort a call.
//
// # Usage
//
//	g := generator.New(generator.WithProvider(faker.NewSeeded(1)))
//	user, err := g.Generate(ctx, doc, "User",
//	    generator.Fixed("role", "admin"),
//	    generator.OneOf("tags", "a", "b", "c"),
//	)
package generator
