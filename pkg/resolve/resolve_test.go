package resolve

import (
	"context"
	"errors"
	"testing"

	"github.com/getmockd/schemafaker/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, data string) *schema.Document {
	t.Helper()
	doc, err := schema.Parse([]byte(data))
	require.NoError(t, err)
	return doc
}

func property(t *testing.T, n schema.Node, name string) schema.Node {
	t.Helper()
	p, ok := schema.ShapeOf(n).Property(name)
	require.True(t, ok, "property %q", name)
	return p
}

func TestResolve_Swagger(t *testing.T) {
	doc := parse(t, `
swagger: "2.0"
info: {title: pets, version: "1"}
paths: {}
definitions:
  Tag:
    type: object
    properties:
      label: {type: string, enum: [a, b]}
  Pet:
    type: object
    example:
      contact: internet.email
    properties:
      tag: {$ref: "#/definitions/Tag"}
      tags:
        type: array
        items: {$ref: "#/definitions/Tag"}
      age: {type: integer, minimum: 1, maximum: 9}
    allOf:
      - $ref: "#/definitions/Tag"
`)

	out, err := NewKinResolver().Resolve(context.Background(), doc)
	require.NoError(t, err)
	require.True(t, out.Named())
	assert.Equal(t, []string{"Pet", "Tag"}, out.Models())

	pet, ok := out.Model("Pet")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"contact": "internet.email"}, schema.ShapeOf(pet).Example)

	tag, ok := property(t, pet, "tag").(*schema.ObjectNode)
	require.True(t, ok)
	label, ok := property(t, tag, "label").(*schema.StringNode)
	require.True(t, ok)
	assert.Equal(t, []any{"a", "b"}, label.Enum)

	tags, ok := property(t, pet, "tags").(*schema.ArrayNode)
	require.True(t, ok)
	assert.IsType(t, &schema.ObjectNode{}, tags.Items)

	age, ok := property(t, pet, "age").(*schema.IntegerNode)
	require.True(t, ok)
	require.NotNil(t, age.Minimum)
	assert.Equal(t, 1.0, *age.Minimum)

	require.Len(t, schema.ShapeOf(pet).AllOf, 1)
	assert.IsType(t, &schema.ObjectNode{}, schema.ShapeOf(pet).AllOf[0])
}

func TestResolve_OpenAPI(t *testing.T) {
	doc := parse(t, `{
	  "openapi": "3.0.3",
	  "info": {"title": "users", "version": "1"},
	  "paths": {},
	  "components": {"schemas": {
	    "Address": {"type": "object", "properties": {"city": {"type": "string"}}},
	    "User": {"type": "object", "properties": {
	      "home": {"$ref": "#/components/schemas/Address"},
	      "score": {"type": "number", "format": "double", "maximum": 5}
	    }}
	  }}
	}`)

	out, err := NewKinResolver().Resolve(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"Address", "User"}, out.Models())

	user, _ := out.Model("User")
	home := property(t, user, "home")
	assert.IsType(t, &schema.StringNode{}, property(t, home, "city"))

	score, ok := property(t, user, "score").(*schema.NumberNode)
	require.True(t, ok)
	assert.Equal(t, "double", score.Format)
	assert.Nil(t, score.Minimum)
	require.NotNil(t, score.Maximum)
	assert.Equal(t, 5.0, *score.Maximum)
}

func TestResolve_BareSchema(t *testing.T) {
	doc := parse(t, `{
	  "$schema": "http://json-schema.org/draft-07/schema#",
	  "type": "object",
	  "properties": {
	    "owner": {"$ref": "#/definitions/Person"},
	    "flag": {"type": "boolean"}
	  },
	  "definitions": {
	    "Person": {"type": "object", "properties": {"name": {"type": "string"}}}
	  }
	}`)

	out, err := NewKinResolver().Resolve(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"Person"}, out.Models())

	require.NotNil(t, out.Root)
	owner := property(t, out.Root, "owner")
	assert.IsType(t, &schema.StringNode{}, property(t, owner, "name"))
	assert.IsType(t, &schema.BooleanNode{}, property(t, out.Root, "flag"))
}

func TestResolve_InMemoryDocument(t *testing.T) {
	doc := &schema.Document{Definitions: map[string]schema.Node{
		"Flag": &schema.BooleanNode{},
		"Holder": &schema.ObjectNode{Shape: schema.Shape{Properties: []schema.Property{
			{Name: "flag", Node: &schema.RefNode{Ref: "#/definitions/Flag"}},
		}}},
	}}

	out, err := NewKinResolver().Resolve(context.Background(), doc)
	require.NoError(t, err)
	holder, ok := out.Model("Holder")
	require.True(t, ok)
	assert.IsType(t, &schema.BooleanNode{}, property(t, holder, "flag"))
}

func TestResolve_Recursive(t *testing.T) {
	doc := parse(t, `{"definitions": {"Node": {"type": "object", "properties": {
	  "value": {"type": "string"},
	  "next": {"$ref": "#/definitions/Node"}
	}}}}`)

	out, err := NewKinResolver().Resolve(context.Background(), doc)
	require.NoError(t, err)

	n, _ := out.Model("Node")
	ref, ok := property(t, n, "next").(*schema.RefNode)
	require.True(t, ok)
	assert.Contains(t, ref.Ref, "Node")
}

func TestResolve_Untyped(t *testing.T) {
	doc := parse(t, `{"definitions": {"Loose": {"title": "Loose", "properties": {"a": {"type": "string"}}}}}`)

	out, err := NewKinResolver().Resolve(context.Background(), doc)
	require.NoError(t, err)

	loose, ok := out.Model("Loose")
	require.True(t, ok)
	u, ok := loose.(*schema.UntypedNode)
	require.True(t, ok)
	assert.Equal(t, "Loose", u.Title)

	names := make([]string, 0, len(u.Fields))
	for _, f := range u.Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"title", "properties"}, names)
}

func TestResolve_BrokenReference(t *testing.T) {
	doc := parse(t, `{"definitions": {"A": {"type": "object", "properties": {"b": {"$ref": "#/definitions/Missing"}}}}}`)

	_, err := NewKinResolver().Resolve(context.Background(), doc)
	require.Error(t, err)

	var rerr *Error
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, FormatSchema, rerr.Format)
	assert.NotNil(t, rerr.Cause)
	assert.Contains(t, err.Error(), "schema: failed to resolve references")
}

func TestResolve_Nil(t *testing.T) {
	out, err := NewKinResolver().Resolve(context.Background(), nil)
	assert.NoError(t, err)
	assert.Nil(t, out)
}

func TestError(t *testing.T) {
	cause := errors.New("boom")
	err := &Error{Format: FormatOpenAPI, Message: "failed to load document", Cause: cause}
	assert.Equal(t, "openapi: failed to load document: boom", err.Error())
	assert.ErrorIs(t, err, cause)

	assert.Equal(t, "swagger: bad", (&Error{Format: FormatSwagger, Message: "bad"}).Error())
}
