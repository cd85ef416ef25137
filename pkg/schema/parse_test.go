package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const swaggerDoc = `
swagger: "2.0"
info:
  title: Pets
  version: "1.0"
paths: {}
definitions:
  Pet:
    type: object
    example:
      name: name.firstName
    properties:
      name:
        type: string
      status:
        type: string
        enum: [available, sold]
      age:
        type: integer
        minimum: 1
        maximum: 20
      tags:
        type: array
        items:
          type: string
      owner:
        $ref: '#/definitions/Owner'
    allOf:
      - title: Audit
        properties:
          createdAt:
            type: string
            format: date-time
  Owner:
    type: object
    properties:
      email:
        type: string
        format: email
`

func TestParse_SwaggerDefinitions(t *testing.T) {
	doc, err := Parse([]byte(swaggerDoc))
	require.NoError(t, err)

	assert.True(t, doc.Named())
	assert.Nil(t, doc.Root)
	assert.Equal(t, []string{"Owner", "Pet"}, doc.Models())

	pet, ok := doc.Model("Pet")
	require.True(t, ok)
	obj, ok := pet.(*ObjectNode)
	require.True(t, ok)

	names := make([]string, 0, len(obj.Properties))
	for _, p := range obj.Properties {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"name", "status", "age", "tags", "owner"}, names)
	assert.Equal(t, map[string]any{"name": "name.firstName"}, obj.Example)

	status, _ := obj.Property("status")
	assert.Equal(t, []any{"available", "sold"}, status.(*StringNode).Enum)

	age, _ := obj.Property("age")
	ageNode := age.(*IntegerNode)
	require.NotNil(t, ageNode.Minimum)
	require.NotNil(t, ageNode.Maximum)
	assert.Equal(t, 1.0, *ageNode.Minimum)
	assert.Equal(t, 20.0, *ageNode.Maximum)

	tags, _ := obj.Property("tags")
	assert.Equal(t, KindString, tags.(*ArrayNode).Items.Kind())

	owner, _ := obj.Property("owner")
	assert.Equal(t, &RefNode{Ref: "#/definitions/Owner"}, owner)

	require.Len(t, obj.AllOf, 1)
	assert.Equal(t, "Audit", Title(obj.AllOf[0]))
	assert.Equal(t, KindUntyped, obj.AllOf[0].Kind())
}

func TestParse_OpenAPIComponents(t *testing.T) {
	data := `{
	  "openapi": "3.0.0",
	  "info": {"title": "x", "version": "1"},
	  "paths": {},
	  "components": {"schemas": {"User": {"type": "object", "properties": {"id": {"type": "string"}}}}}
	}`
	doc, err := Parse([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, []string{"User"}, doc.Models())
	assert.Nil(t, doc.Root)
}

func TestParse_APIWithoutModels(t *testing.T) {
	for _, data := range []string{
		`{"swagger": "2.0", "info": {"title": "x", "version": "1"}, "paths": {}}`,
		"openapi: 3.0.0\ninfo: {title: x, version: '1'}\npaths: {}\n",
	} {
		doc, err := Parse([]byte(data))
		require.NoError(t, err)
		assert.True(t, doc.Named())
		assert.Empty(t, doc.Models())
		assert.Nil(t, doc.Root)
	}
}

func TestParse_SingleSchema(t *testing.T) {
	data := `{"type": "object", "properties": {"id": {"type": "string"}, "age": {"type": "integer", "minimum": 18, "maximum": 65}}}`
	doc, err := Parse([]byte(data))
	require.NoError(t, err)
	assert.False(t, doc.Named())
	require.NotNil(t, doc.Root)
	assert.Equal(t, KindObject, doc.Root.Kind())
}

func TestParse_UntypedKeepsFields(t *testing.T) {
	n, err := ParseNode([]byte(`{"a": {"type": "boolean"}, "b": "scalar", "c": [{"items": {"type": "string"}}]}`))
	require.NoError(t, err)

	u, ok := n.(*UntypedNode)
	require.True(t, ok)
	require.Len(t, u.Fields, 3)
	assert.Equal(t, "a", u.Fields[0].Name)
	assert.Equal(t, KindBoolean, u.Fields[0].Node.Kind())
	assert.Nil(t, u.Fields[1].Node)
	assert.Equal(t, KindTuple, u.Fields[2].Node.Kind())
	assert.False(t, u.HasProperties())
}

func TestParse_TypeList(t *testing.T) {
	n, err := ParseNode([]byte(`{"type": ["null", "integer"], "maximum": 3}`))
	require.NoError(t, err)
	assert.Equal(t, KindInteger, n.Kind())
}

func TestParseNode_List(t *testing.T) {
	n, err := ParseNode([]byte("- type: boolean\n- {type: string}\n"))
	require.NoError(t, err)

	tuple, ok := n.(*TupleNode)
	require.True(t, ok)
	require.Len(t, tuple.Elements, 2)
	assert.Equal(t, KindBoolean, tuple.Elements[0].Kind())
	assert.Equal(t, KindString, tuple.Elements[1].Kind())
}

func TestParseNode_Scalar(t *testing.T) {
	n, err := ParseNode([]byte("hello"))
	require.NoError(t, err)
	assert.Nil(t, n)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid yaml", "a: [b"},
		{"empty", ""},
		{"not a mapping", "- a\n- b\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			var perr *ParseError
			assert.ErrorAs(t, err, &perr)
		})
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	doc, err := Parse([]byte(swaggerDoc))
	require.NoError(t, err)

	data, err := doc.MarshalJSON()
	require.NoError(t, err)

	again, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, doc.Models(), again.Models())

	owner, _ := again.Model("Owner")
	email, ok := owner.(*ObjectNode).Property("email")
	require.True(t, ok)
	assert.Equal(t, "email", email.(*StringNode).Format)
}

func TestFromType(t *testing.T) {
	type Person struct {
		ID    string `json:"id"`
		Age   int    `json:"age" jsonschema:"minimum=18,maximum=65"`
		Admin bool   `json:"admin"`
	}

	doc, err := FromType(&Person{})
	require.NoError(t, err)

	obj, ok := doc.Root.(*ObjectNode)
	require.True(t, ok)

	age, ok := obj.Property("age")
	require.True(t, ok)
	n := age.(*IntegerNode)
	require.NotNil(t, n.Minimum)
	assert.Equal(t, 18.0, *n.Minimum)

	admin, _ := obj.Property("admin")
	assert.Equal(t, KindBoolean, admin.Kind())
}
