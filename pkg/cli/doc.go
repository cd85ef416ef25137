// Package cli implements the schemafaker command-line interface.
//
// Commands:
//
//   - generate: produce example entities for a model
//   - models: list the models a document declares
//   - version: print build information
package cli
