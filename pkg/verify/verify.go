// Package verify checks generated entities against the schema they were
// generated from.
package verify

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/getmockd/schemafaker/pkg/schema"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const resourceName = "schema.json"

// FieldError is one failed constraint.
type FieldError struct {
	// Field is the dotted path of the offending value; empty for the root.
	Field string `json:"field"`

	// Keyword is the schema location of the failed keyword.
	Keyword string `json:"keyword"`

	Message string `json:"message"`
}

func (e FieldError) String() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Error reports every constraint an entity failed.
type Error struct {
	Errors []FieldError `json:"errors"`
}

func (e *Error) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.String()
	}
	return fmt.Sprintf("entity does not match schema: %s", strings.Join(parts, "; "))
}

// Validate checks value against a single node. References in n must
// already be resolved.
func Validate(n schema.Node, value any) error {
	s, err := compile(schema.Encode(n), "")
	if err != nil {
		return err
	}
	return validate(s, value)
}

// ValidateModel checks value against model in doc. References may use
// either "#/definitions/..." or "#/components/schemas/..." pointers.
func ValidateModel(doc *schema.Document, model string, value any) error {
	if doc == nil {
		return errors.New("verify: nil document")
	}

	root := map[string]any{}
	if m, ok := schema.Encode(doc.Root).(map[string]any); ok {
		root = m
	}

	pointer := ""
	if doc.Named() {
		if _, ok := doc.Model(model); !ok {
			return fmt.Errorf("verify: model %q not found", model)
		}
		defs := make(map[string]any, len(doc.Definitions))
		for name, n := range doc.Definitions {
			defs[name] = schema.Encode(n)
		}
		root["definitions"] = defs
		root["components"] = map[string]any{"schemas": defs}
		pointer = "#/definitions/" + escapePointer(model)
	}

	s, err := compile(root, pointer)
	if err != nil {
		return err
	}
	return validate(s, value)
}

func compile(doc any, pointer string) (*jsonschema.Schema, error) {
	if doc == nil {
		doc = true
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("verify: failed to marshal schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(resourceName, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("verify: failed to add schema resource: %w", err)
	}
	s, err := compiler.Compile(resourceName + pointer)
	if err != nil {
		return nil, fmt.Errorf("verify: failed to compile schema: %w", err)
	}
	return s, nil
}

func validate(s *jsonschema.Schema, value any) error {
	// Round trip through JSON so that time.Time, typed slices and maps
	// reach the validator as plain JSON values.
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("verify: failed to marshal entity: %w", err)
	}
	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return fmt.Errorf("verify: failed to decode entity: %w", err)
	}

	err = s.Validate(instance)
	if err == nil {
		return nil
	}
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	out := &Error{}
	collect(verr, out)
	return out
}

// collect flattens the leaf causes of a validation error.
func collect(err *jsonschema.ValidationError, out *Error) {
	if len(err.Causes) == 0 {
		out.Errors = append(out.Errors, FieldError{
			Field:   fieldFromPointer(err.InstanceLocation),
			Keyword: err.KeywordLocation,
			Message: err.Message,
		})
		return
	}
	for _, cause := range err.Causes {
		collect(cause, out)
	}
}

func fieldFromPointer(path string) string {
	if path == "" || path == "/" {
		return ""
	}
	path = strings.TrimPrefix(path, "/")
	path = strings.ReplaceAll(path, "/", ".")
	path = strings.ReplaceAll(path, "~1", "/")
	return strings.ReplaceAll(path, "~0", "~")
}

func escapePointer(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	return strings.ReplaceAll(s, "/", "~1")
}
