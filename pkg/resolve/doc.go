// Package resolve dereferences "$ref" pointers in schema documents using
// kin-openapi.
//
// OpenAPI 3 documents are loaded directly. Swagger 2.0 documents are
// converted to OpenAPI 3 first, and bare JSON Schema documents are wrapped
// in a minimal Swagger 2.0 envelope so that "#/definitions/..." pointers
// resolve the same way. Recursive references are cut at the second visit and
// left as RefNode values, which generate null.
package resolve
