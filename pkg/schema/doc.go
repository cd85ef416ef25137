// Package schema models the JSON Schema / OpenAPI documents that example
// values are generated from.
//
// A schema node is a closed set of variants behind the Node interface. The
// variant is chosen from the node's "type"; nodes without a recognised type
// decode to *UntypedNode, which keeps every raw key so generation can walk it
// structurally.
//
// # Parsing
//
// Parse accepts YAML or JSON. Swagger 2.0 and JSON Schema documents expose
// their "definitions" table; OpenAPI 3 documents expose "components.schemas".
// Property order is preserved.
//
//	doc, err := schema.Parse(data)
//	user, ok := doc.Model("User")
//
// FromType builds an anonymous document from a Go type using struct tags.
package schema
