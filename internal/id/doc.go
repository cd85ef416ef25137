// Package id provides identifier generation for generated entities.
//
//   - UUID: UUID v4 in canonical grouped form
//   - Compact: UUID v4 with the grouping hyphens stripped (32 hex chars),
//     used for "id" and "_id" fields
//   - Short: 16-character hex IDs
//   - Alphanumeric: configurable-length random alphanumeric strings
//
// Every function draws from the io.Reader it is given. A nil reader means
// crypto/rand; a reader backed by a seeded PRNG makes the output repeatable.
package id
